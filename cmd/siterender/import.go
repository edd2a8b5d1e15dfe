package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/siterender/internal/site"
	"github.com/alexisbeaulieu97/siterender/internal/store"
)

type importOptions struct {
	id    string
	force bool
}

func newImportCmd(app *AppContext) *cobra.Command {
	opts := &importOptions{}

	cmd := &cobra.Command{
		Use:   "import <file>",
		Short: "Store a site definition in the configured store",
		Long: `Import validates a site definition and stores it under --id, or under an id
derived from the file name. An existing site with the same id is replaced.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runImport(cmd, app, args[0], opts)
		},
	}

	cmd.Flags().StringVar(&opts.id, "id", "", "Site id (default derived from the file name)")
	cmd.Flags().BoolVarP(&opts.force, "force", "f", false, "Import even when validation reports errors")

	return cmd
}

func runImport(cmd *cobra.Command, app *AppContext, path string, opts *importOptions) error {
	def, err := loadDocument("import", path)
	if err != nil {
		return err
	}

	issues := site.Validate(def)
	for _, issue := range issues {
		app.Logger.With("path", issue.Path).Warn(issue.Message)
	}
	if site.HasErrors(issues) && !opts.force {
		return newCommandError("import", path, fmt.Errorf("site definition has validation errors"), "Run 'siterender validate "+path+"' or pass --force.")
	}

	id := opts.id
	if id == "" {
		id = store.IDFromPath(path)
	}
	rec, err := store.NewRecord(id, def)
	if err != nil {
		return newCommandError("import", path, err, "Pass a lowercase --id made of letters, digits and dashes.")
	}

	ctx := cmd.Context()
	st, err := store.Open(ctx, app.Config.Store)
	if err != nil {
		return newCommandError("import", "opening the "+app.Config.Store.Driver+" store", err, "Check the store.* configuration.")
	}
	defer st.Close()

	stored, err := st.Put(ctx, rec)
	if err != nil {
		return newCommandError("import", "storing "+id, err, "")
	}

	fmt.Fprintf(cmd.OutOrStdout(), "imported %s (%s)\n", stored.ID, stored.Name)
	return nil
}
