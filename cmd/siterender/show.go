package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/siterender/internal/outline"
	"github.com/alexisbeaulieu97/siterender/internal/site"
)

type showOptions struct {
	jsonOutput bool
}

func newShowCmd(app *AppContext) *cobra.Command {
	opts := &showOptions{}

	cmd := &cobra.Command{
		Use:   "show <file>",
		Short: "Print an outline of a site definition",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runShow(cmd, args[0], opts)
		},
	}

	cmd.Flags().BoolVar(&opts.jsonOutput, "json", false, "Output the outline as JSON")

	return cmd
}

func runShow(cmd *cobra.Command, path string, opts *showOptions) error {
	def, err := loadDocument("show", path)
	if err != nil {
		return err
	}

	if opts.jsonOutput {
		return renderShowJSON(cmd, def)
	}
	fmt.Fprintln(cmd.OutOrStdout(), outline.Site(def))
	return nil
}

type showSectionJSON struct {
	ID       string   `json:"id"`
	Type     string   `json:"type"`
	Headline string   `json:"headline,omitempty"`
	Details  []string `json:"details,omitempty"`
	Warning  string   `json:"warning,omitempty"`
}

type showPageJSON struct {
	ID       string            `json:"id"`
	Slug     string            `json:"slug"`
	Title    string            `json:"title"`
	Sections []showSectionJSON `json:"sections"`
}

type showJSONPayload struct {
	Title       string         `json:"title"`
	Description string         `json:"description,omitempty"`
	Theme       site.Theme     `json:"theme"`
	Pages       []showPageJSON `json:"pages"`
}

func renderShowJSON(cmd *cobra.Command, def *site.Definition) error {
	payload := showJSONPayload{
		Title:       def.Metadata.Title,
		Description: def.Metadata.Description,
		Theme:       def.Theme,
		Pages:       make([]showPageJSON, 0, len(def.Pages)),
	}

	for _, page := range def.Pages {
		p := showPageJSON{ID: page.ID, Slug: page.Slug, Title: page.Title, Sections: make([]showSectionJSON, 0, len(page.Sections))}
		for _, sec := range page.Sections {
			sum := outline.Summarize(sec)
			p.Sections = append(p.Sections, showSectionJSON{
				ID:       sec.ID,
				Type:     sec.Type,
				Headline: sum.Headline,
				Details:  sum.Details,
				Warning:  sum.Warning,
			})
		}
		payload.Pages = append(payload.Pages, p)
	}

	encoder := json.NewEncoder(cmd.OutOrStdout())
	encoder.SetIndent("", "  ")
	return encoder.Encode(payload)
}
