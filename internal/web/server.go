// Package web serves the portfolio as a static HTML page with a starfield
// snapshot behind it.
package web

import (
	"embed"
	"encoding/json"
	"fmt"
	"html/template"
	"log"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/sanketxmishra/folio/internal/content"
	"github.com/sanketxmishra/folio/internal/export"
	"github.com/sanketxmishra/folio/internal/starfield"
	"github.com/sanketxmishra/folio/internal/theme"
	"github.com/sanketxmishra/folio/internal/typewriter"
)

//go:embed templates/*.html
var templates embed.FS

const (
	DefaultSnapshotWidth  = 800
	DefaultSnapshotHeight = 400
	DefaultSnapshotFrames = 120
	MaxSnapshotSize       = 4096
	MaxSnapshotFrames     = 3600
)

type Options struct {
	Profile    *content.Profile
	Theme      theme.Theme
	Starfield  starfield.Config
	Typewriter typewriter.Config
	Seed       int64
	// Resume is an optional PDF served at /resume.pdf.
	Resume string
}

// NewRouter builds the gin engine for the portfolio page.
func NewRouter(opts Options) (*gin.Engine, error) {
	if opts.Profile == nil {
		opts.Profile = content.Default()
	}
	if opts.Theme.Name == "" {
		opts.Theme = theme.Default
	}
	if err := opts.Starfield.Validate(); err != nil {
		return nil, err
	}
	if opts.Typewriter.Tick <= 0 {
		opts.Typewriter.Tick = typewriter.DefaultTick
	}
	if opts.Typewriter.Hold <= 0 {
		opts.Typewriter.Hold = typewriter.DefaultHold
	}
	roles := opts.Typewriter.Roles
	if len(roles) == 0 {
		roles = opts.Profile.Roles
	}
	rolesJSON, err := json.Marshal(roles)
	if err != nil {
		return nil, fmt.Errorf("web: encode roles: %w", err)
	}

	tmpl, err := template.ParseFS(templates, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("web: parse templates: %w", err)
	}

	r := gin.New()
	r.Use(gin.Logger(), gin.Recovery())
	r.SetHTMLTemplate(tmpl)

	r.GET("/", func(c *gin.Context) {
		c.HTML(http.StatusOK, "index.html", gin.H{
			"profile":  opts.Profile,
			"sections": content.Sections(),
			"theme":    opts.Theme,
			"roles":    string(rolesJSON),
			"tickMs":   opts.Typewriter.Tick.Milliseconds(),
			"holdMs":   opts.Typewriter.Hold.Milliseconds(),
		})
	})

	r.GET("/starfield.svg", func(c *gin.Context) {
		w, err := intQuery(c, "w", DefaultSnapshotWidth, 1, MaxSnapshotSize)
		if err != nil {
			c.String(http.StatusBadRequest, err.Error())
			return
		}
		h, err := intQuery(c, "h", DefaultSnapshotHeight, 1, MaxSnapshotSize)
		if err != nil {
			c.String(http.StatusBadRequest, err.Error())
			return
		}
		frames, err := intQuery(c, "frames", DefaultSnapshotFrames, 1, MaxSnapshotFrames)
		if err != nil {
			c.String(http.StatusBadRequest, err.Error())
			return
		}

		start := time.Now()
		svg := export.NewSVG(w, h, opts.Theme)
		if _, err := export.Simulate(c.Request.Context(), svg, opts.Starfield, opts.Seed, w, h, frames, nil); err != nil {
			c.String(http.StatusInternalServerError, err.Error())
			return
		}
		log.Printf("web: starfield %dx%d frames=%d elements=%d in %v", w, h, frames, svg.Elements(), time.Since(start))

		c.Header("Cache-Control", "public, max-age=3600")
		c.Data(http.StatusOK, "image/svg+xml", []byte(svg.String()))
	})

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	if opts.Resume != "" {
		r.StaticFile("/resume.pdf", opts.Resume)
	}

	return r, nil
}

func intQuery(c *gin.Context, name string, def, lo, hi int) (int, error) {
	raw, ok := c.GetQuery(name)
	if !ok || raw == "" {
		return def, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("%s: not an integer: %q", name, raw)
	}
	if v < lo || v > hi {
		return 0, fmt.Errorf("%s: %d outside %d..%d", name, v, lo, hi)
	}
	return v, nil
}
