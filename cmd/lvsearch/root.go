package main

import (
	"context"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/katalvlaran/lvsearch/search"
)

// app carries what every subcommand needs once the root has run.
type app struct {
	v          *viper.Viper
	configPath string
	cfg        Config
	log        zerolog.Logger
}

// newRootCmd assembles the command tree. Each call returns an independent
// tree so tests can run commands side by side.
func newRootCmd() *cobra.Command {
	a := &app{v: viper.New(), log: zerolog.Nop()}

	rootCmd := &cobra.Command{
		Use:   "lvsearch",
		Short: "State-space search over grammars and the river-crossing puzzle",
		Long: `lvsearch runs a generic breadth-first / depth-first search engine over
lazily generated state spaces: the derivations of a context-free grammar,
or the configurations of the missionaries-and-cannibals puzzle.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setup(cmd)
		},
	}

	pf := rootCmd.PersistentFlags()
	pf.StringVar(&a.configPath, "config", "", "YAML config file")
	pf.String("log-level", "info", "log level: trace, debug, info, warn, error")
	pf.Int("max-depth", search.DefaultMaxDepth, "depth bound; nodes at this depth are not expanded")
	pf.Int("max-expansions", 0, "abort after this many expansions (0 = unlimited)")

	rootCmd.AddCommand(newDeriveCmd(a))
	rootCmd.AddCommand(newCrossCmd(a))

	return rootCmd
}

// setup loads configuration and the logger for the command about to run.
func (a *app) setup(cmd *cobra.Command) error {
	cfg, err := loadConfig(a.v, cmd, a.configPath)
	if err != nil {
		return err
	}
	logger, err := newLogger(cmd.ErrOrStderr(), cfg.LogLevel)
	if err != nil {
		return err
	}
	a.cfg, a.log = cfg, logger

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	cmd.SetContext(a.log.WithContext(ctx))
	a.log.Debug().Interface("config", a.cfg).Msg("loaded-config")

	return nil
}
