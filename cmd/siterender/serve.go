package main

import (
	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/siterender/internal/server"
	"github.com/alexisbeaulieu97/siterender/internal/store"
)

type serveOptions struct {
	addr string
}

func newServeCmd(app *AppContext) *cobra.Command {
	opts := &serveOptions{}

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve site previews over HTTP",
		Long: `Serve exposes the stored sites as live previews and accepts documents to render.
With the dir store, edits to the files on disk are picked up without a restart.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(cmd, app, opts)
		},
	}

	cmd.Flags().StringVar(&opts.addr, "addr", "", "Listen address (default server.host:server.port)")

	return cmd
}

func runServe(cmd *cobra.Command, app *AppContext, opts *serveOptions) error {
	ctx := cmd.Context()

	st, err := store.Open(ctx, app.Config.Store)
	if err != nil {
		return newCommandError("serve", "opening the "+app.Config.Store.Driver+" store", err, "Check the store.* configuration.")
	}
	defer st.Close()

	r, err := app.renderer()
	if err != nil {
		return newCommandError("serve", "preparing renderer", err, "")
	}
	mode, err := app.themeMode()
	if err != nil {
		return newCommandError("serve", "reading render.theme_mode", err, "Use merge or reset.")
	}

	srv, err := server.New(server.Options{
		Sites:        st,
		Renderer:     r,
		ThemeMode:    mode,
		AllowOrigins: app.Config.Server.AllowOrigins,
		Logger:       app.Logger,
	})
	if err != nil {
		return newCommandError("serve", "building the server", err, "")
	}

	if dir, ok := st.(*store.Dir); ok {
		go func() {
			err := dir.Watch(ctx, func(id string) {
				app.Logger.With("site_id", id).Info("site changed on disk")
				srv.Invalidate(id)
			})
			if err != nil {
				app.Logger.Error(err, "stopped watching site directory")
			}
		}()
	}

	addr := opts.addr
	if addr == "" {
		addr = app.Config.Address()
	}
	if err := srv.Run(ctx, addr); err != nil {
		return newCommandError("serve", "listening on "+addr, err, "Pick a free port with --addr or server.port.")
	}
	return nil
}
