package main

import (
	"github.com/spf13/cobra"
)

// skipConfigAnnotation marks commands that run without loading configuration.
const skipConfigAnnotation = "siterender/skip-config"

type rootFlags struct {
	configPath string
	envFile    string
	verbose    bool
}

func newRootCmd() *cobra.Command {
	flags := &rootFlags{}
	app := &AppContext{}

	cmd := &cobra.Command{
		Use:           "siterender",
		Short:         "siterender turns generated site definitions into HTML",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if cmd.Annotations[skipConfigAnnotation] == "true" {
				return nil
			}
			return app.init(cmd, flags)
		},
	}

	cmd.PersistentFlags().StringVarP(&flags.configPath, "config", "c", "", "Config file (default ./siterender.yaml when present)")
	cmd.PersistentFlags().StringVar(&flags.envFile, "env-file", "", "Environment file loaded before the config (default .env)")
	cmd.PersistentFlags().BoolVarP(&flags.verbose, "verbose", "v", false, "Enable verbose logging")

	cmd.AddCommand(newRenderCmd(app))
	cmd.AddCommand(newValidateCmd(app))
	cmd.AddCommand(newShowCmd(app))
	cmd.AddCommand(newBrowseCmd(app))
	cmd.AddCommand(newBlocksCmd())
	cmd.AddCommand(newDiffCmd(app))
	cmd.AddCommand(newImportCmd(app))
	cmd.AddCommand(newServeCmd(app))
	cmd.AddCommand(newVersionCmd())

	return cmd
}
