// Package tui is an interactive terminal browser for a site definition.
package tui

import (
	"context"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexisbeaulieu97/siterender/internal/site"
)

// Loader reads the definition being browsed.
type Loader func(ctx context.Context) (*site.Definition, error)

// Model is the browser model
type Model struct {
	source string
	load   Loader
	site   *site.Definition

	// UI state
	viewMode ViewMode
	cursor   int
	loading  bool
	errorMsg string

	spinner  spinner.Model
	viewport viewport.Model
	help     help.Model
	keys     keyMap

	width  int
	height int
}

// NewModel creates a browser for the definition at source.
func NewModel(source string, load Loader) Model {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = spinnerStyle

	return Model{
		source:   source,
		load:     load,
		viewMode: ViewList,
		loading:  true,
		spinner:  s,
		viewport: viewport.New(80, 16),
		help:     help.New(),
		keys:     defaultKeys(),
		width:    80,
		height:   24,
	}
}

// Init starts the spinner and the first load.
func (m Model) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, loadCmd(m.load))
}

// Site returns the definition currently shown, if any.
func (m *Model) Site() *site.Definition {
	return m.site
}

// Pages returns the pages of the loaded definition.
func (m *Model) Pages() []site.Page {
	if m.site == nil {
		return nil
	}
	return m.site.Pages
}

// SelectedPage returns the page under the cursor.
func (m *Model) SelectedPage() (site.Page, bool) {
	pages := m.Pages()
	if m.cursor < 0 || m.cursor >= len(pages) {
		return site.Page{}, false
	}
	return pages[m.cursor], true
}

// MoveCursorUp moves cursor up with wrapping
func (m *Model) MoveCursorUp() {
	n := len(m.Pages())
	if n == 0 {
		return
	}
	m.cursor = (m.cursor - 1 + n) % n
}

// MoveCursorDown moves cursor down with wrapping
func (m *Model) MoveCursorDown() {
	n := len(m.Pages())
	if n == 0 {
		return
	}
	m.cursor = (m.cursor + 1) % n
}

// GetViewMode returns the current view mode
func (m *Model) GetViewMode() ViewMode {
	return m.viewMode
}

// IsLoading reports whether a load is in flight.
func (m *Model) IsLoading() bool {
	return m.loading
}

// Error returns the banner message, empty when there is none.
func (m *Model) Error() string {
	return m.errorMsg
}
