package content

// Section is a navigation anchor on the page.
type Section struct {
	ID    string
	Title string
	Key   string
}

var sections = []Section{
	{ID: "about", Title: "About", Key: "1"},
	{ID: "education", Title: "Education", Key: "2"},
	{ID: "projects", Title: "Projects", Key: "3"},
	{ID: "skills", Title: "Skills", Key: "4"},
	{ID: "contact", Title: "Contact", Key: "5"},
}

// Sections returns the navigation anchors in page order.
func Sections() []Section {
	out := make([]Section, len(sections))
	copy(out, sections)
	return out
}

// SectionByKey finds the anchor bound to a navigation key.
func SectionByKey(key string) (Section, bool) {
	for _, s := range sections {
		if s.Key == key {
			return s, true
		}
	}
	return Section{}, false
}
