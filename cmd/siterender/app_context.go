package main

import (
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/alexisbeaulieu97/siterender/internal/config"
	"github.com/alexisbeaulieu97/siterender/internal/logger"
	"github.com/alexisbeaulieu97/siterender/internal/render"
	"github.com/alexisbeaulieu97/siterender/internal/theme"
)

// AppContext bundles the configuration and services created before any
// subcommand runs.
type AppContext struct {
	Config *config.Config
	Logger *logger.Logger
}

func (a *AppContext) init(cmd *cobra.Command, flags *rootFlags) error {
	cfg, err := config.Load(config.Options{File: flags.configPath, EnvFile: flags.envFile})
	if err != nil {
		return newCommandError("load configuration", flags.configPath, err, "Check the config file and SITERENDER_* environment variables.")
	}

	level := cfg.Log.Level
	if flags.verbose {
		level = "debug"
	}

	errOut := cmd.ErrOrStderr()
	human := cfg.Log.Format == "console" || (cfg.Log.Format == "auto" && isTerminal(errOut))

	log, err := logger.New(logger.Options{Level: level, HumanReadable: human, Writer: errOut})
	if err != nil {
		return newCommandError("create logger", "log.level "+level, err, "Use one of debug, info, warn or error.")
	}

	a.Config = cfg
	a.Logger = log.With("command", cmd.Name())
	return nil
}

func (a *AppContext) renderer() (*render.Renderer, error) {
	return render.New(render.Options{Logger: a.Logger, Markdown: a.Config.Render.Markdown})
}

func (a *AppContext) themeMode() (theme.Mode, error) {
	return theme.ParseMode(a.Config.Render.ThemeMode)
}

// composer builds a composer with its own theme scope.
func (a *AppContext) composer(mode render.Mode) (*render.Composer, error) {
	r, err := a.renderer()
	if err != nil {
		return nil, err
	}
	themeMode, err := a.themeMode()
	if err != nil {
		return nil, err
	}
	return render.NewComposer(r, render.ComposerOptions{
		Mode:   mode,
		Scope:  theme.NewScope(themeMode),
		Logger: a.Logger,
	}), nil
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}
