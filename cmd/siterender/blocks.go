package main

import (
	"encoding/json"
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/siterender/internal/site"
)

type blocksOptions struct {
	jsonOutput bool
}

func newBlocksCmd() *cobra.Command {
	opts := &blocksOptions{}

	cmd := &cobra.Command{
		Use:         "blocks",
		Short:       "List the section types the renderer understands",
		Args:        cobra.NoArgs,
		Annotations: map[string]string{skipConfigAnnotation: "true"},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBlocks(cmd, opts)
		},
	}

	cmd.Flags().BoolVar(&opts.jsonOutput, "json", false, "Output the block list as JSON")

	return cmd
}

type blockJSON struct {
	Type        string   `json:"type"`
	Description string   `json:"description"`
	Variants    []string `json:"variants,omitempty"`
}

func runBlocks(cmd *cobra.Command, opts *blocksOptions) error {
	kinds := site.Kinds()

	if opts.jsonOutput {
		payload := make([]blockJSON, 0, len(kinds))
		for _, info := range kinds {
			payload = append(payload, blockJSON{Type: string(info.Kind), Description: info.Description, Variants: info.Variants})
		}
		encoder := json.NewEncoder(cmd.OutOrStdout())
		encoder.SetIndent("", "  ")
		return encoder.Encode(payload)
	}

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "TYPE\tVARIANTS\tDESCRIPTION")
	for _, info := range kinds {
		variants := strings.Join(info.Variants, ", ")
		if variants == "" {
			variants = "-"
		}
		fmt.Fprintf(w, "%s\t%s\t%s\n", info.Kind, variants, info.Description)
	}
	return w.Flush()
}
