package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvsearch/crossing"
	"github.com/katalvlaran/lvsearch/search"
)

func newCrossCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "cross",
		Short: "Solve the missionaries-and-cannibals river crossing",
		Long: `Searches from (3,3,1,0,0) to (0,0,0,3,3), where a state is
(left missionaries, left cannibals, boat on left, right missionaries, right cannibals).`,
		Args: cobra.NoArgs,
		RunE: a.runCross,
	}
	cmd.Flags().String("method", "bfs", "bfs, dfs or dfs-recursive")

	return cmd
}

func (a *app) runCross(cmd *cobra.Command, _ []string) error {
	method, err := crossing.ParseMethod(a.cfg.Method)
	if err != nil {
		return fmt.Errorf("%w: %v", errConfig, err)
	}

	began := time.Now()
	sol, err := crossing.Solve(crossing.Classic(), crossing.ClassicGoal(), method,
		search.WithContext(cmd.Context()),
		search.WithMaxDepth(a.cfg.MaxDepth),
		search.WithMaxExpansions(a.cfg.MaxExpansions),
	)
	if err != nil {
		return fmt.Errorf("%s search: %w", method, err)
	}
	a.log.Info().
		Str("method", method.String()).
		Int("expanded", sol.Stats.Expanded).
		Dur("elapsed", time.Since(began)).
		Msg("cross-finished")

	renderCrossing(cmd.OutOrStdout(), sol)

	return nil
}
