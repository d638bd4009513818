package main

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/ust/bfs"
	"github.com/katalvlaran/ust/converters"
	"github.com/katalvlaran/ust/core"
	"github.com/katalvlaran/ust/wilson"
)

const (
	formatEdges = "edges"
	formatMaze  = "maze"
	formatStats = "stats"
)

var errFormat = errors.New("unsupported output format")

func newSampleCmd(a *app) *cobra.Command {
	var (
		gf       graphFlags
		seed     int64
		maxSteps int
		format   string
		verify   bool
	)

	cmd := &cobra.Command{
		Use:   "sample",
		Short: "Sample one uniform spanning tree",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			fs := cmd.Flags()
			gf.apply(fs, &a.cfg.Graph)
			if fs.Changed("seed") {
				a.cfg.Seed = seed
			}
			if fs.Changed("max-steps") {
				a.cfg.MaxSteps = maxSteps
			}
			if fs.Changed("format") {
				a.cfg.Format = format
			}
			if fs.Changed("verify") {
				a.cfg.Verify = verify
			}
			return runSample(cmd, a)
		},
	}

	f := cmd.Flags()
	gf.bind(f)
	f.Int64Var(&seed, "seed", 0, "sampler seed (0 = fixed default)")
	f.IntVar(&maxSteps, "max-steps", 0, "abort a single walk after this many steps (0 = unlimited)")
	f.StringVar(&format, "format", formatEdges, "output: edges, maze (grid/triangular only), stats")
	f.BoolVar(&verify, "verify", false, "check the result is a spanning tree")

	return cmd
}

func runSample(cmd *cobra.Command, a *app) error {
	cfg := a.cfg
	if cfg.Format == formatMaze && !isLattice(cfg.Graph) {
		return fmt.Errorf("%w: maze needs a grid or triangular graph, got %q", errFormat, cfg.Graph.Kind)
	}

	g, err := buildGraph(cfg.Graph)
	if err != nil {
		return fmt.Errorf("build graph: %w", err)
	}
	a.log.Info("graph built", "kind", cfg.Graph.Kind, "vertices", g.VertexCount(), "edges", g.EdgeCount())

	totalWalk := 0
	s, err := wilson.NewSampler(g,
		wilson.WithContext(cmd.Context()),
		wilson.WithSeed(cfg.Seed),
		wilson.WithMaxSteps(cfg.MaxSteps),
		wilson.WithOnPath(func(iteration, walkLen, pathLen int) {
			totalWalk += walkLen - 1
			a.log.Debug("path accepted", "iteration", iteration, "walk", walkLen, "path", pathLen)
		}),
	)
	if err != nil {
		return explainSampleError(g, err)
	}
	tree, err := s.Run()
	if err != nil {
		return fmt.Errorf("sample: %w", err)
	}
	a.log.Info("tree sampled", "root", s.Root(), "iterations", s.Iterations(), "steps", totalWalk)

	if cfg.Verify {
		if err := wilson.Verify(g, tree); err != nil {
			return err
		}
		a.log.Info("tree verified")
	}

	out := cmd.OutOrStdout()
	switch cfg.Format {
	case formatEdges:
		writeEdges(out, tree)
	case formatMaze:
		rows, cols, err := gridShape(tree)
		if err != nil {
			return err
		}
		fmt.Fprint(out, renderMaze(tree, rows, cols))
	case formatStats:
		deepest, err := deepestPath(tree, s.Root())
		if err != nil {
			return err
		}
		st := tree.Stats()
		fmt.Fprintf(out, "vertices:   %d\n", st.VertexCount)
		fmt.Fprintf(out, "edges:      %d\n", st.EdgeCount)
		fmt.Fprintf(out, "root:       %s\n", s.Root())
		fmt.Fprintf(out, "height:     %d\n", len(deepest)-1)
		fmt.Fprintf(out, "deepest:    %s\n", strings.Join(deepest, " "))
		fmt.Fprintf(out, "max degree: %d\n", st.MaxDegree)
		fmt.Fprintf(out, "iterations: %d\n", s.Iterations())
		fmt.Fprintf(out, "walk steps: %d\n", totalWalk)
	default:
		return fmt.Errorf("%w: %q", errFormat, cfg.Format)
	}

	return nil
}

// explainSampleError adds component sizes to a disconnected-graph error.
func explainSampleError(g *core.Graph[string], err error) error {
	if !errors.Is(err, wilson.ErrDisconnectedGraph) {
		return fmt.Errorf("sample: %w", err)
	}
	comps, cerr := converters.ConnectedComponents(g)
	if cerr != nil {
		return fmt.Errorf("sample: %w", err)
	}
	sizes := make([]int, len(comps))
	for i, c := range comps {
		sizes[i] = len(c)
	}

	return fmt.Errorf("sample: %w (component sizes %v)", err, sizes)
}

// deepestPath returns the tree path from root to the first vertex reached at
// maximum depth. Its length minus one is the tree's height.
func deepestPath(tree *core.Graph[string], root string) ([]string, error) {
	deepest, height := root, 0
	res, err := bfs.BFS(tree, root, bfs.WithOnVisit(func(v string, depth int) error {
		if depth > height {
			deepest, height = v, depth
		}
		return nil
	}))
	if err != nil {
		return nil, fmt.Errorf("height: %w", err)
	}

	return res.PathTo(deepest)
}

func writeEdges(w io.Writer, tree *core.Graph[string]) {
	for _, e := range tree.Edges() {
		fmt.Fprintf(w, "%s %s\n", e.From, e.To)
	}
}
