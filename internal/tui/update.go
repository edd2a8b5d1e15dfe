package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexisbeaulieu97/siterender/internal/outline"
)

// chrome is the number of rows taken by the header and footer.
const chrome = 8

// Update handles incoming messages and updates the model
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.viewport.Width = max(msg.Width-4, 10)
		m.viewport.Height = max(msg.Height-chrome, 3)
		return m, nil

	case tea.KeyMsg:
		return m.handleKeyPress(msg)

	case spinner.TickMsg:
		if !m.loading {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case SiteLoadedMsg:
		m.loading = false
		m.errorMsg = ""
		m.site = msg.Site
		if m.cursor >= len(m.Pages()) {
			m.cursor = 0
		}
		if m.viewMode == ViewDetail {
			if !m.refreshDetail() {
				m.viewMode = ViewList
			}
		}
		return m, nil

	case LoadErrorMsg:
		m.loading = false
		m.errorMsg = fmt.Sprintf("Reload failed: %v", msg.Err)
		return m, nil
	}

	return m, nil
}

func (m Model) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		if m.viewMode == ViewHelp {
			m.viewMode = ViewList
		} else {
			m.viewMode = ViewHelp
		}
		return m, nil

	case key.Matches(msg, m.keys.Dismiss):
		m.errorMsg = ""
		return m, nil

	case key.Matches(msg, m.keys.Reload):
		if m.loading {
			return m, nil
		}
		m.loading = true
		return m, tea.Batch(m.spinner.Tick, loadCmd(m.load))
	}

	switch m.viewMode {
	case ViewList:
		return m.handleListKeys(msg)
	case ViewDetail:
		return m.handleDetailKeys(msg)
	case ViewHelp:
		if key.Matches(msg, m.keys.Back) {
			m.viewMode = ViewList
		}
		return m, nil
	default:
		return m, nil
	}
}

func (m Model) handleListKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Up):
		m.MoveCursorUp()
	case key.Matches(msg, m.keys.Down):
		m.MoveCursorDown()
	case key.Matches(msg, m.keys.Select):
		if m.refreshDetail() {
			m.viewMode = ViewDetail
			m.viewport.GotoTop()
		}
	}
	return m, nil
}

func (m Model) handleDetailKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Back) {
		m.viewMode = ViewList
		return m, nil
	}

	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

// refreshDetail loads the selected page outline into the viewport.
func (m *Model) refreshDetail() bool {
	page, ok := m.SelectedPage()
	if !ok {
		return false
	}
	m.viewport.SetContent(outline.Page(page, outline.NewStyles(m.site.Theme)))
	return true
}
