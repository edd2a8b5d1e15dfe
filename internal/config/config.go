// Package config loads siterender's application settings from defaults, an
// optional YAML file, a .env file and SITERENDER_ environment variables.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	siteerrors "github.com/alexisbeaulieu97/siterender/pkg/errors"
)

// EnvPrefix prefixes every environment variable read by Load.
const EnvPrefix = "SITERENDER"

// Config holds all application settings.
type Config struct {
	Log    LogConfig    `mapstructure:"log"`
	Server ServerConfig `mapstructure:"server"`
	Store  StoreConfig  `mapstructure:"store"`
	Render RenderConfig `mapstructure:"render"`
}

// LogConfig configures the logger.
type LogConfig struct {
	Level  string `mapstructure:"level" validate:"oneof=debug info warn error"`
	Format string `mapstructure:"format" validate:"oneof=auto console json"`
}

// ServerConfig configures the preview server.
type ServerConfig struct {
	Host         string   `mapstructure:"host"`
	Port         int      `mapstructure:"port" validate:"min=1,max=65535"`
	AllowOrigins []string `mapstructure:"allow_origins"`
}

// StoreConfig selects and configures the site store.
type StoreConfig struct {
	Driver string `mapstructure:"driver" validate:"oneof=sqlite postgres dir"`
	Path   string `mapstructure:"path" validate:"required_if=Driver sqlite"`
	DSN    string `mapstructure:"dsn" validate:"required_if=Driver postgres"`
	Dir    string `mapstructure:"dir" validate:"required_if=Driver dir"`
}

// RenderConfig configures rendering.
type RenderConfig struct {
	ThemeMode string `mapstructure:"theme_mode" validate:"oneof=merge reset"`
	Markdown  bool   `mapstructure:"markdown"`
}

// Address returns the server listen address.
func (c *Config) Address() string {
	return fmt.Sprintf("%s:%d", c.Server.Host, c.Server.Port)
}

// Options controls where Load looks for settings.
type Options struct {
	// File is an explicit config file. When empty, siterender.yaml is looked
	// up in the working directory and a missing file is not an error.
	File string
	// EnvFile is loaded before reading the environment. Defaults to ".env";
	// a missing file is ignored.
	EnvFile string
}

// Load resolves the configuration.
func Load(opts Options) (*Config, error) {
	envFile := opts.EnvFile
	if envFile == "" {
		envFile = ".env"
	}
	if err := godotenv.Load(envFile); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, siteerrors.NewParseError(envFile, 0, err)
	}

	v := viper.New()
	setDefaults(v)

	if opts.File != "" {
		v.SetConfigFile(opts.File)
	} else {
		v.SetConfigName("siterender")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if opts.File != "" || !errors.As(err, &notFound) {
			return nil, siteerrors.NewParseError(opts.File, 0, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, siteerrors.NewParseError(v.ConfigFileUsed(), 0, err)
	}
	cfg.Server.AllowOrigins = splitOrigins(cfg.Server.AllowOrigins)

	if err := Validate(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Default returns the configuration used when nothing overrides it.
func Default() *Config {
	v := viper.New()
	setDefaults(v)

	var cfg Config
	_ = v.Unmarshal(&cfg)
	return &cfg
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "auto")

	v.SetDefault("server.host", "127.0.0.1")
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.allow_origins", []string{"*"})

	v.SetDefault("store.driver", "sqlite")
	v.SetDefault("store.path", "./data/sites.db")
	v.SetDefault("store.dsn", "")
	v.SetDefault("store.dir", "./sites")

	v.SetDefault("render.theme_mode", "merge")
	v.SetDefault("render.markdown", true)
}

// splitOrigins accepts both a YAML list and a comma separated env value.
func splitOrigins(values []string) []string {
	var out []string
	for _, value := range values {
		for _, origin := range strings.Split(value, ",") {
			if origin = strings.TrimSpace(origin); origin != "" {
				out = append(out, origin)
			}
		}
	}
	return out
}

var (
	validatorOnce sync.Once
	validateInst  *validator.Validate
)

func validatorInstance() *validator.Validate {
	validatorOnce.Do(func() {
		validateInst = validator.New()
	})
	return validateInst
}

// Validate checks cfg against its constraints.
func Validate(cfg *Config) error {
	err := validatorInstance().Struct(cfg)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if errors.As(err, &fieldErrs) && len(fieldErrs) > 0 {
		first := fieldErrs[0]
		return siteerrors.NewValidationError(configKey(first.Namespace()),
			fmt.Sprintf("invalid value %v (%s)", first.Value(), first.Tag()), err)
	}
	return siteerrors.NewValidationError("config", err.Error(), err)
}

var configKeys = map[string]string{
	"Log.Level":           "log.level",
	"Log.Format":          "log.format",
	"Server.Port":         "server.port",
	"Store.Driver":        "store.driver",
	"Store.Path":          "store.path",
	"Store.DSN":           "store.dsn",
	"Store.Dir":           "store.dir",
	"Render.ThemeMode":    "render.theme_mode",
	"Server.Host":         "server.host",
	"Server.AllowOrigins": "server.allow_origins",
}

func configKey(namespace string) string {
	trimmed := strings.TrimPrefix(namespace, "Config.")
	if key, ok := configKeys[trimmed]; ok {
		return key
	}
	return strings.ToLower(trimmed)
}
