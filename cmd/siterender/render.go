package main

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/siterender/internal/render"
)

type renderOptions struct {
	page     string
	fragment bool
	out      string
	all      bool
}

func newRenderCmd(app *AppContext) *cobra.Command {
	opts := &renderOptions{}

	cmd := &cobra.Command{
		Use:   "render <file>",
		Short: "Render a site definition to HTML",
		Long: `Render writes the page selected by --page as a complete HTML document, or as an
embeddable fragment with --fragment. With --all every page is exported under the
--out directory, one index.html per slug.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRender(cmd, app, args[0], opts)
		},
	}

	cmd.Flags().StringVarP(&opts.page, "page", "p", "/", "Slug of the page to render")
	cmd.Flags().BoolVar(&opts.fragment, "fragment", false, "Write an embeddable fragment instead of a document")
	cmd.Flags().StringVarP(&opts.out, "out", "o", "", "Output file, or directory with --all (default stdout)")
	cmd.Flags().BoolVar(&opts.all, "all", false, "Export every page under --out")

	return cmd
}

func runRender(cmd *cobra.Command, app *AppContext, path string, opts *renderOptions) error {
	if opts.all && opts.out == "" {
		return newCommandError("render", "exporting "+path, errors.New("--all needs an output directory"), "Pass --out <dir>.")
	}
	if opts.all && opts.fragment {
		return newCommandError("render", "exporting "+path, errors.New("--all always writes documents"), "Drop --fragment.")
	}

	def, err := loadDocument("render", path)
	if err != nil {
		return err
	}

	mode := render.ModeDocument
	if opts.fragment {
		mode = render.ModeFragment
	}
	composer, err := app.composer(mode)
	if err != nil {
		return newCommandError("render", "preparing renderer", err, "Check render.theme_mode in the configuration.")
	}

	if opts.all {
		pages, err := composer.Export(cmd.Context(), def, opts.out)
		if err != nil {
			return newCommandError("render", "exporting to "+opts.out, err, "Check that the directory is writable.")
		}
		for _, page := range pages {
			fmt.Fprintf(cmd.OutOrStdout(), "%s -> %s (%d sections, %d skipped)\n", page.Slug, page.Path, page.Rendered, page.Skipped)
		}
		return nil
	}

	var buf bytes.Buffer
	result, err := composer.Display(&buf, def, opts.page)
	if err != nil {
		return newCommandError("render", "rendering "+path, err, "")
	}

	app.Logger.WithFields(map[string]any{
		"page":     result.Slug,
		"rendered": result.Rendered,
		"skipped":  result.Skipped,
	}).Debug("page rendered")
	if !result.Found {
		app.Logger.Warn("site has no pages, wrote the not-found page")
	}

	if opts.out == "" {
		_, err := cmd.OutOrStdout().Write(buf.Bytes())
		return err
	}
	if err := os.MkdirAll(filepath.Dir(opts.out), 0o755); err != nil {
		return newCommandError("render", "creating "+filepath.Dir(opts.out), err, "")
	}
	if err := os.WriteFile(opts.out, buf.Bytes(), 0o644); err != nil {
		return newCommandError("render", "writing "+opts.out, err, "Check that the path is writable.")
	}
	return nil
}
