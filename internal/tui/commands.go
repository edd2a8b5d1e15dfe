package tui

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

const loadTimeout = 10 * time.Second

func loadCmd(load Loader) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), loadTimeout)
		defer cancel()

		def, err := load(ctx)
		if err != nil {
			return LoadErrorMsg{Err: err}
		}
		return SiteLoadedMsg{Site: def}
	}
}
