package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/ust/matrix"
)

func newCountCmd(a *app) *cobra.Command {
	var gf graphFlags

	cmd := &cobra.Command{
		Use:   "count",
		Short: "Count spanning trees (Kirchhoff's matrix-tree theorem)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			gf.apply(cmd.Flags(), &a.cfg.Graph)
			return runCount(cmd, a)
		},
	}
	gf.bind(cmd.Flags())

	return cmd
}

func runCount(cmd *cobra.Command, a *app) error {
	g, err := buildGraph(a.cfg.Graph)
	if err != nil {
		return fmt.Errorf("build graph: %w", err)
	}
	a.log.Info("graph built", "kind", a.cfg.Graph.Kind, "vertices", g.VertexCount(), "edges", g.EdgeCount())

	c, err := matrix.CountSpanningTrees(g)
	if err != nil {
		return fmt.Errorf("count: %w", err)
	}
	out := cmd.OutOrStdout()
	if c.Exact() {
		fmt.Fprintf(out, "%.0f\n", c.Value)
		return nil
	}
	fmt.Fprintf(out, "e^%.4f\n", c.Log)

	return nil
}
