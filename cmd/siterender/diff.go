package main

import (
	"bytes"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/siterender/internal/render"
	"github.com/alexisbeaulieu97/siterender/pkg/diff"
)

type diffOptions struct {
	page     string
	fragment bool
}

func newDiffCmd(app *AppContext) *cobra.Command {
	opts := &diffOptions{}

	cmd := &cobra.Command{
		Use:   "diff <old> <new>",
		Short: "Compare the rendered HTML of two site definitions",
		Long: `Diff renders the same page of two definitions, typically before and after a
regeneration, and prints a line diff of the output.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDiff(cmd, app, args[0], args[1], opts)
		},
	}

	cmd.Flags().StringVarP(&opts.page, "page", "p", "/", "Slug of the page to compare")
	cmd.Flags().BoolVar(&opts.fragment, "fragment", false, "Compare fragments instead of documents")

	return cmd
}

func runDiff(cmd *cobra.Command, app *AppContext, oldPath, newPath string, opts *diffOptions) error {
	mode := render.ModeDocument
	if opts.fragment {
		mode = render.ModeFragment
	}

	before, err := renderFile(app, oldPath, opts.page, mode)
	if err != nil {
		return err
	}
	after, err := renderFile(app, newPath, opts.page, mode)
	if err != nil {
		return err
	}

	out, stats := diff.GenerateWithStats(before, after, oldPath, newPath)
	if !stats.Changed() {
		fmt.Fprintf(cmd.OutOrStdout(), "no differences on page %s\n", opts.page)
		return nil
	}

	fmt.Fprint(cmd.OutOrStdout(), out)
	fmt.Fprintf(cmd.OutOrStdout(), "\n%d lines added, %d lines removed\n", stats.Added, stats.Removed)
	return nil
}

// renderFile renders one page with a composer of its own so the two sides
// never share theme variables.
func renderFile(app *AppContext, path, page string, mode render.Mode) ([]byte, error) {
	def, err := loadDocument("diff", path)
	if err != nil {
		return nil, err
	}
	composer, err := app.composer(mode)
	if err != nil {
		return nil, newCommandError("diff", "preparing renderer", err, "Check render.theme_mode in the configuration.")
	}

	var buf bytes.Buffer
	if _, err := composer.Display(&buf, def, page); err != nil {
		return nil, newCommandError("diff", "rendering "+path, err, "")
	}
	return buf.Bytes(), nil
}
