package main

import (
	"fmt"
	"os"

	"github.com/spf13/pflag"
	"gopkg.in/yaml.v3"
)

// graphConfig selects a builder generator and its parameters.
type graphConfig struct {
	Kind     string  `yaml:"kind"` // complete, cycle, path, star, wheel, grid, triangular, random, mask
	N        int     `yaml:"n"`
	Rows     int     `yaml:"rows"`
	Cols     int     `yaml:"cols"`
	P        float64 `yaml:"p"`
	Seed     int64   `yaml:"seed"`     // generator seed (random only)
	Mask     string  `yaml:"mask"`     // mask file ('.' land, '#' water)
	Diagonal bool    `yaml:"diagonal"` // mask: 8-neighborhood
}

// config is the full CLI configuration.
type config struct {
	Graph    graphConfig `yaml:"graph"`
	Seed     int64       `yaml:"seed"`
	MaxSteps int         `yaml:"max_steps"`
	Format   string      `yaml:"format"` // edges, maze, stats
	Verify   bool        `yaml:"verify"`
}

func defaultConfig() config {
	return config{
		Graph: graphConfig{
			Kind: kindGrid,
			N:    8,
			Rows: 8,
			Cols: 8,
			P:    0.3,
			Seed: 1,
		},
		Format: formatEdges,
	}
}

// load overlays the YAML file at path onto c. Keys absent from the file
// keep their current values.
func (c *config) load(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(data, c); err != nil {
		return fmt.Errorf("parse config %s: %w", path, err)
	}

	return nil
}

// graphFlags binds the generator flags shared by sample and count.
type graphFlags struct {
	kind       string
	n          int
	rows, cols int
	p          float64
	graphSeed  int64
	mask       string
	diagonal   bool
}

func (gf *graphFlags) bind(fs *pflag.FlagSet) {
	def := defaultConfig().Graph
	fs.StringVar(&gf.kind, "graph", def.Kind, "generator: complete, cycle, path, star, wheel, grid, triangular, random, mask")
	fs.IntVar(&gf.n, "n", def.N, "vertex count (complete, cycle, path, star, wheel, random)")
	fs.IntVar(&gf.rows, "rows", def.Rows, "rows (grid, triangular)")
	fs.IntVar(&gf.cols, "cols", def.Cols, "columns (grid, triangular)")
	fs.Float64Var(&gf.p, "p", def.P, "edge probability (random)")
	fs.Int64Var(&gf.graphSeed, "graph-seed", def.Seed, "generator seed (random)")
	fs.StringVar(&gf.mask, "mask", def.Mask, "mask file, '.' land and '#' water (mask)")
	fs.BoolVar(&gf.diagonal, "diagonal", def.Diagonal, "connect diagonal land cells (mask)")
}

// apply copies explicitly set flags over gc.
func (gf *graphFlags) apply(fs *pflag.FlagSet, gc *graphConfig) {
	if fs.Changed("graph") {
		gc.Kind = gf.kind
	}
	if fs.Changed("n") {
		gc.N = gf.n
	}
	if fs.Changed("rows") {
		gc.Rows = gf.rows
	}
	if fs.Changed("cols") {
		gc.Cols = gf.cols
	}
	if fs.Changed("p") {
		gc.P = gf.p
	}
	if fs.Changed("graph-seed") {
		gc.Seed = gf.graphSeed
	}
	if fs.Changed("mask") {
		gc.Mask = gf.mask
	}
	if fs.Changed("diagonal") {
		gc.Diagonal = gf.diagonal
	}
}
