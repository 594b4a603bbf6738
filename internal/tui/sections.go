package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/sanketxmishra/folio/internal/content"
	"github.com/sanketxmishra/folio/internal/theme"
)

const (
	skillLabelWidth = 14
	minBarWidth     = 10
)

// renderSections lays out the profile below the hero. It returns the body
// and the line offset of each section anchor.
func renderSections(p *content.Profile, th theme.Theme, st theme.Styles, width int) (string, map[string]int) {
	inner := max(width-4, 20)
	anchors := make(map[string]int)

	var blocks []string
	line := 0
	for _, s := range content.Sections() {
		anchors[s.ID] = line
		block := lipgloss.NewStyle().PaddingLeft(2).Render(
			lipgloss.JoinVertical(lipgloss.Left,
				th.SectionTitle(s.Title, inner),
				"",
				sectionBody(s.ID, p, th, st, inner),
			),
		)
		blocks = append(blocks, block)
		line += lipgloss.Height(block) + 1
	}
	return strings.Join(blocks, "\n\n"), anchors
}

func sectionBody(id string, p *content.Profile, th theme.Theme, st theme.Styles, width int) string {
	switch id {
	case "about":
		return renderAbout(p, st, width)
	case "education":
		return renderEducation(p, st, width)
	case "projects":
		return renderProjects(p, st, width)
	case "skills":
		return renderSkills(p, th, st, width)
	case "contact":
		return renderContact(p, st)
	}
	return ""
}

func renderAbout(p *content.Profile, st theme.Styles, width int) string {
	body := st.Body.Width(width)
	paras := make([]string, len(p.About))
	for i, para := range p.About {
		paras[i] = body.Render(para)
	}
	return strings.Join(paras, "\n\n")
}

func renderEducation(p *content.Profile, st theme.Styles, width int) string {
	var rows []string
	for _, e := range p.Education {
		rows = append(rows, lipgloss.JoinVertical(lipgloss.Left,
			st.Subtle.Render(e.Period),
			st.Heading.UnsetBorderBottom().Render(e.Title),
			st.Body.Width(width).Render(e.Detail),
		))
	}
	return strings.Join(rows, "\n\n")
}

func renderProjects(p *content.Profile, st theme.Styles, width int) string {
	cardWidth := max(width-4, 16)
	var cards []string
	for _, pr := range p.Projects {
		parts := []string{
			st.Heading.UnsetBorderBottom().Render(pr.Name),
			st.Body.Width(cardWidth).Render(pr.Summary),
		}
		if len(pr.Features) > 0 {
			parts = append(parts, "")
			for _, f := range pr.Features {
				parts = append(parts, st.Body.Width(cardWidth).Render("• "+f))
			}
		}
		if len(pr.Stack) > 0 {
			parts = append(parts, "", st.Subtle.Width(cardWidth).Render("Stack: "+strings.Join(pr.Stack, ", ")))
		}
		if pr.URL != "" {
			parts = append(parts, st.Link.Render(pr.URL))
		}
		cards = append(cards, st.Card.Render(lipgloss.JoinVertical(lipgloss.Left, parts...)))
	}
	return strings.Join(cards, "\n")
}

func renderSkills(p *content.Profile, th theme.Theme, st theme.Styles, width int) string {
	bar := max(width-skillLabelWidth-6, minBarWidth)
	label := st.Body.Width(skillLabelWidth)
	rows := make([]string, len(p.Skills))
	for i, s := range p.Skills {
		rows[i] = label.Render(s.Name) + th.ProgressBar(s.Fraction(), bar) + st.Subtle.Render(fmt.Sprintf(" %3d%%", s.Level))
	}
	return strings.Join(rows, "\n")
}

func renderContact(p *content.Profile, st theme.Styles) string {
	links := append(append([]content.Link{}, p.Social...), p.Links...)
	label := st.Body.Width(skillLabelWidth)
	rows := make([]string, len(links))
	for i, l := range links {
		rows[i] = label.Render(l.Label) + st.Link.Render(l.URL)
	}
	return strings.Join(rows, "\n")
}
