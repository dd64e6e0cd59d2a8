package main

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/lvsearch/grammar"
	"github.com/katalvlaran/lvsearch/rulefile"
)

// directionBoth asks derive to run leftmost and rightmost searches.
const directionBoth = "both"

func newDeriveCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "derive [target]",
		Short: "List the derivations of a target string and report ambiguity",
		Long: `Loads a rule file (text "1. S -> AB" lines, or YAML) and searches for every
leftmost or rightmost derivation of the target string from the start symbol.
More than one derivation means the grammar is ambiguous for that string.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runDerive(cmd, args[0])
		},
	}
	f := cmd.Flags()
	f.String("rules", "", "rule file (.txt or .yaml)")
	f.String("start", "", "start symbol (default: file's start, else S)")
	f.String("direction", "left", "left, right or both")

	return cmd
}

func (a *app) runDerive(cmd *cobra.Command, target string) error {
	if a.cfg.Rules == "" {
		return fmt.Errorf("%w: no rule file given (--rules)", errConfig)
	}
	rs, err := rulefile.Load(a.cfg.Rules)
	if err != nil {
		return fmt.Errorf("%w: %v", errConfig, err)
	}
	start := rs.Start
	if a.cfg.Start != "" {
		start = a.cfg.Start
	}

	var dirs []grammar.Direction
	if a.cfg.Direction == directionBoth {
		dirs = []grammar.Direction{grammar.Leftmost, grammar.Rightmost}
	} else {
		d, err := grammar.ParseDirection(a.cfg.Direction)
		if err != nil {
			return fmt.Errorf("%w: %v", errConfig, err)
		}
		dirs = []grammar.Direction{d}
	}

	results, err := a.deriveAll(cmd.Context(), rs.Grammar, start, target, dirs)
	if err != nil {
		return err
	}
	for i, res := range results {
		if i > 0 {
			fmt.Fprintln(cmd.OutOrStdout())
		}
		renderDerivations(cmd.OutOrStdout(), start, target, res)
	}

	return nil
}

// deriveAll runs one search per direction concurrently. Each search owns
// its engine state; only the grammar, which is read-only here, is shared.
func (a *app) deriveAll(ctx context.Context, g *grammar.Grammar, start, target string, dirs []grammar.Direction) ([]*grammar.Result, error) {
	results := make([]*grammar.Result, len(dirs))
	eg, ctx := errgroup.WithContext(ctx)
	for i, dir := range dirs {
		i, dir := i, dir
		eg.Go(func() error {
			began := time.Now()
			res, err := grammar.Derive(g, start, target,
				grammar.WithContext(ctx),
				grammar.WithDirection(dir),
				grammar.WithMaxDepth(a.cfg.MaxDepth),
				grammar.WithMaxExpansions(a.cfg.MaxExpansions),
			)
			if err != nil {
				return fmt.Errorf("%s derivation: %w", dir, err)
			}
			zerolog.Ctx(ctx).Info().
				Str("direction", dir.String()).
				Int("derivations", len(res.Derivations)).
				Int("expanded", res.Stats.Expanded).
				Int("pruned-by-depth", res.Stats.PrunedByDepth).
				Dur("elapsed", time.Since(began)).
				Msg("derive-finished")
			results[i] = res
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}

	return results, nil
}
