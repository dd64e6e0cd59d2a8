package main

import (
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/katalvlaran/lvsearch/grammar"
	"github.com/katalvlaran/lvsearch/search"
)

// envPrefix is prepended to every environment override, e.g. LVSEARCH_MAX_DEPTH.
const envPrefix = "LVSEARCH"

// Exit codes.
const (
	exitOK     = 0
	exitSearch = 1
	exitConfig = 2
)

// errConfig marks failures caused by user input or configuration.
var errConfig = errors.New("configuration error")

// Config is the merged view of config file, environment and flags.
type Config struct {
	LogLevel      string `mapstructure:"log-level"`
	MaxDepth      int    `mapstructure:"max-depth"`
	MaxExpansions int    `mapstructure:"max-expansions"`
	Rules         string `mapstructure:"rules"`
	Start         string `mapstructure:"start"`
	Direction     string `mapstructure:"direction"`
	Method        string `mapstructure:"method"`
}

// loadConfig reads the optional config file and binds cmd's flags so that
// flags override environment variables, which override the file.
func loadConfig(v *viper.Viper, cmd *cobra.Command, path string) (Config, error) {
	var cfg Config
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	v.SetDefault("log-level", "info")
	v.SetDefault("max-depth", search.DefaultMaxDepth)

	if err := v.BindPFlags(cmd.Flags()); err != nil {
		return cfg, fmt.Errorf("%w: binding flags: %v", errConfig, err)
	}
	if path != "" {
		v.SetConfigFile(path)
		v.SetConfigType("yaml")
		if err := v.ReadInConfig(); err != nil {
			return cfg, fmt.Errorf("%w: reading config file %s: %v", errConfig, path, err)
		}
	}
	if err := v.Unmarshal(&cfg); err != nil {
		return cfg, fmt.Errorf("%w: unmarshalling config: %v", errConfig, err)
	}

	return cfg, nil
}

// newLogger builds a console logger on w at the configured level. Writes are
// serialised so concurrent searches can share it.
func newLogger(w io.Writer, level string) (zerolog.Logger, error) {
	lvl, err := zerolog.ParseLevel(strings.ToLower(level))
	if err != nil {
		return zerolog.Nop(), fmt.Errorf("%w: log level %q", errConfig, level)
	}
	output := zerolog.ConsoleWriter{Out: w, TimeFormat: time.RFC3339}
	output.FormatLevel = func(i interface{}) string {
		return strings.ToUpper(fmt.Sprintf("| %-6s|", i))
	}

	return zerolog.New(zerolog.SyncWriter(output)).Level(lvl).With().Timestamp().Logger(), nil
}

// exitCode maps an error returned by a command to a process exit status.
func exitCode(err error) int {
	switch {
	case err == nil:
		return exitOK
	case errors.Is(err, errConfig), errors.Is(err, search.ErrOptionViolation),
		errors.Is(err, grammar.ErrEmptyTarget), errors.Is(err, grammar.ErrEmptyStart):
		return exitConfig
	default:
		return exitSearch
	}
}
