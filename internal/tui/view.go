package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/siterender/internal/outline"
)

// View renders the current model state
func (m Model) View() string {
	var body string
	switch m.viewMode {
	case ViewDetail:
		body = m.viewport.View()
	case ViewHelp:
		body = m.help.FullHelpView(m.keys.FullHelp())
	default:
		body = m.renderPageList()
	}

	parts := []string{m.renderHeader()}
	if m.errorMsg != "" {
		parts = append(parts, errorBannerStyle.Render(m.errorMsg))
	}
	parts = append(parts, body, footerStyle.Render(m.help.ShortHelpView(m.keys.ShortHelp())))
	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

func (m Model) renderHeader() string {
	title := "siterender"
	if m.site != nil {
		title = m.site.Metadata.Title
	}

	status := mutedStyle.Render(m.source)
	if m.loading {
		status = fmt.Sprintf("%s %s", m.spinner.View(), mutedStyle.Render("loading "+m.source))
	}
	if page, ok := m.SelectedPage(); ok && m.viewMode == ViewDetail {
		status = mutedStyle.Render(page.Slug)
	}

	return headerStyle.Render(lipgloss.JoinHorizontal(lipgloss.Top, titleStyle.Render(title), status))
}

func (m Model) renderPageList() string {
	pages := m.Pages()
	if len(pages) == 0 {
		if m.site == nil {
			return emptyStateStyle.Render("Waiting for the site definition...")
		}
		return emptyStateStyle.Render("This site has no pages.")
	}

	items := make([]string, 0, len(pages))
	for i, page := range pages {
		title := page.Title
		if title == "" {
			title = page.ID
		}

		kinds := make([]string, 0, len(page.Sections))
		for _, sec := range page.Sections {
			if sec.Known() {
				kinds = append(kinds, outline.KindLabel(sec.Content.Kind()))
			} else {
				kinds = append(kinds, "?"+sec.Type)
			}
		}

		line := fmt.Sprintf("%d. %s  %s", i+1, title, mutedStyle.Render(page.Slug))
		summary := mutedStyle.Render("   " + strings.Join(kinds, " · "))
		content := lipgloss.JoinVertical(lipgloss.Left, line, summary)

		if i == m.cursor {
			items = append(items, selectedItemStyle.Render(content))
		} else {
			items = append(items, itemStyle.Render(content))
		}
	}
	return lipgloss.JoinVertical(lipgloss.Left, items...)
}
