package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/siterender/internal/site"
)

type validateOptions struct {
	strict     bool
	jsonOutput bool
}

func newValidateCmd(app *AppContext) *cobra.Command {
	opts := &validateOptions{}

	cmd := &cobra.Command{
		Use:   "validate <file>",
		Short: "Check a site definition against the block schemas",
		Long: `Validate reports schema problems. Errors mark missing required fields; warnings
mark things the renderer will skip or ignore, such as unknown section types.
The command fails on errors, and on warnings too with --strict.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runValidate(cmd, app, args[0], opts)
		},
	}

	cmd.Flags().BoolVar(&opts.strict, "strict", false, "Treat warnings as failures")
	cmd.Flags().BoolVar(&opts.jsonOutput, "json", false, "Output issues as JSON")

	return cmd
}

type validateJSONPayload struct {
	File   string       `json:"file"`
	Valid  bool         `json:"valid"`
	Issues []site.Issue `json:"issues"`
}

func runValidate(cmd *cobra.Command, app *AppContext, path string, opts *validateOptions) error {
	def, err := loadDocument("validate", path)
	if err != nil {
		return err
	}

	issues := site.Validate(def)
	errorCount, warningCount := 0, 0
	for _, issue := range issues {
		if issue.Severity == site.SeverityError {
			errorCount++
		} else {
			warningCount++
		}
	}

	valid := errorCount == 0 && (!opts.strict || warningCount == 0)
	app.Logger.WithFields(map[string]any{
		"file":     path,
		"errors":   errorCount,
		"warnings": warningCount,
	}).Debug("validation finished")

	if opts.jsonOutput {
		if issues == nil {
			issues = []site.Issue{}
		}
		encoder := json.NewEncoder(cmd.OutOrStdout())
		encoder.SetIndent("", "  ")
		if err := encoder.Encode(validateJSONPayload{File: path, Valid: valid, Issues: issues}); err != nil {
			return err
		}
	} else {
		for _, issue := range issues {
			fmt.Fprintln(cmd.OutOrStdout(), issue.String())
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%s: %d errors, %d warnings\n", path, errorCount, warningCount)
	}

	if !valid {
		return fmt.Errorf("%s is not valid", path)
	}
	return nil
}
