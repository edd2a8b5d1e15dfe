package main

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/siterender/internal/site"
	"github.com/alexisbeaulieu97/siterender/internal/tui"
)

func newBrowseCmd(app *AppContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "browse <file>",
		Short: "Browse a site definition interactively",
		Long: `Browse opens a terminal browser over the pages of a site definition. Press r to
reload the file after editing it. When stdout is not a terminal the outline is
printed instead, as with show.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !isTerminal(cmd.OutOrStdout()) {
				app.Logger.Debug("stdout is not a terminal, printing the outline")
				return runShow(cmd, args[0], &showOptions{})
			}
			return runBrowse(cmd, app, args[0])
		},
	}

	return cmd
}

func runBrowse(cmd *cobra.Command, app *AppContext, path string) error {
	if _, err := loadDocument("browse", path); err != nil {
		return err
	}

	load := func(ctx context.Context) (*site.Definition, error) {
		return site.Load(path)
	}

	app.Logger.With("file", path).Info("launching browser")
	p := tea.NewProgram(tui.NewModel(path, load), tea.WithAltScreen(), tea.WithContext(cmd.Context()))
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("failed to run browser: %w", err)
	}
	return nil
}
