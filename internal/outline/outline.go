// Package outline renders a site definition as a styled terminal tree.
package outline

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/alexisbeaulieu97/siterender/internal/site"
)

var (
	mutedColor   = lipgloss.Color("245")
	warningColor = lipgloss.Color("214")

	titleCaser = cases.Title(language.English)
)

// Styles colours an outline. Brand colours come from the site theme.
type Styles struct {
	Title   lipgloss.Style
	Page    lipgloss.Style
	Kind    lipgloss.Style
	Detail  lipgloss.Style
	Warning lipgloss.Style
	Swatch  func(color string) string
}

// NewStyles derives styles from theme. Theme colours that lipgloss cannot
// parse simply render uncoloured.
func NewStyles(theme site.Theme) Styles {
	primary := lipgloss.Color(theme.Colors.Primary)
	accent := lipgloss.Color(theme.Colors.Accent)
	if theme.Colors.Accent == "" {
		accent = primary
	}

	return Styles{
		Title:   lipgloss.NewStyle().Bold(true).Foreground(primary),
		Page:    lipgloss.NewStyle().Bold(true).MarginTop(1),
		Kind:    lipgloss.NewStyle().Foreground(accent).Bold(true),
		Detail:  lipgloss.NewStyle().Foreground(mutedColor),
		Warning: lipgloss.NewStyle().Foreground(warningColor),
		Swatch: func(color string) string {
			return lipgloss.NewStyle().Foreground(lipgloss.Color(color)).Render("■") + " " + color
		},
	}
}

// Site renders the whole definition: metadata, theme and every page.
func Site(def *site.Definition) string {
	if def == nil {
		return ""
	}
	st := NewStyles(def.Theme)

	lines := []string{st.Title.Render(def.Metadata.Title)}
	if def.Metadata.Description != "" {
		lines = append(lines, st.Detail.Render(def.Metadata.Description))
	}
	lines = append(lines, themeLine(def.Theme, st))

	if len(def.Pages) == 0 {
		lines = append(lines, st.Warning.Render("no pages"))
	}
	for _, page := range def.Pages {
		lines = append(lines, Page(page, st))
	}
	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

// Page renders one page heading followed by its sections as a tree.
func Page(page site.Page, st Styles) string {
	title := page.Title
	if title == "" {
		title = page.ID
	}
	heading := st.Page.Render(fmt.Sprintf("%s  %s", title, st.Detail.Render(page.Slug)))

	lines := []string{heading}
	for i, sec := range page.Sections {
		branch := "├─"
		if i == len(page.Sections)-1 {
			branch = "└─"
		}
		lines = append(lines, fmt.Sprintf("%s %s", st.Detail.Render(branch), Section(sec, st)))
	}
	if len(page.Sections) == 0 {
		lines = append(lines, st.Detail.Render("└─ (empty)"))
	}
	return strings.Join(lines, "\n")
}

// Section renders a one-line summary of sec.
func Section(sec site.Section, st Styles) string {
	sum := Summarize(sec)
	if sum.Warning != "" {
		return fmt.Sprintf("%s %s", st.Warning.Render(sec.Type), st.Warning.Render("! "+sum.Warning))
	}

	parts := []string{st.Kind.Render(KindLabel(site.Kind(sec.Type)))}
	if sum.Headline != "" {
		parts = append(parts, sum.Headline)
	}
	if len(sum.Details) > 0 {
		parts = append(parts, st.Detail.Render("("+strings.Join(sum.Details, ", ")+")"))
	}
	return strings.Join(parts, " ")
}

// KindLabel turns a kind into a display label.
func KindLabel(kind site.Kind) string {
	if kind == site.KindCTA {
		return "CTA"
	}
	return titleCaser.String(strings.ReplaceAll(string(kind), "-", " "))
}

func themeLine(theme site.Theme, st Styles) string {
	var parts []string
	for _, color := range []string{theme.Colors.Primary, theme.Colors.Secondary, theme.Colors.Accent, theme.Colors.Background, theme.Colors.Text} {
		if color != "" {
			parts = append(parts, st.Swatch(color))
		}
	}
	if theme.Fonts.Heading != "" || theme.Fonts.Body != "" {
		parts = append(parts, st.Detail.Render(fmt.Sprintf("%s / %s", theme.Fonts.Heading, theme.Fonts.Body)))
	}
	return strings.Join(parts, "  ")
}
