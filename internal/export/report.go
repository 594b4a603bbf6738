package export

import (
	"encoding/json"
	"io"
	"os"
)

// Report is the JSON form of a simulate run.
type Report struct {
	Width    int     `json:"width"`
	Height   int     `json:"height"`
	Frames   int     `json:"frames"`
	Interval float64 `json:"interval_ms"`
	Runs     []Run   `json:"runs"`
}

func NewReport(w, h, frames int, runs []Run) Report {
	return Report{
		Width:    w,
		Height:   h,
		Frames:   frames,
		Interval: float64(FrameInterval.Microseconds()) / 1000,
		Runs:     runs,
	}
}

// WriteJSON writes the report to path, or to stdout when path is "-".
func (r Report) WriteJSON(path string) error {
	if path == "-" {
		return r.Encode(os.Stdout)
	}
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()
	return r.Encode(file)
}

func (r Report) Encode(w io.Writer) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(r)
}
