// config.go — YAML run description for the fxrank command.

package main

import (
	"os"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/avernet/fxrank/digraph"
	"github.com/avernet/fxrank/pagerank"
)

// Config describes one ranking run: the graph and the engine knobs.
// Zero-valued knobs fall back to the engine defaults.
type Config struct {
	Damping   float64    `yaml:"damping"`
	Tolerance float64    `yaml:"tolerance"`
	MaxIter   int        `yaml:"max_iter"`
	Labels    []string   `yaml:"labels"`
	Edges     [][]string `yaml:"edges"`
}

// LoadConfig reads and parses a YAML run description from path.
func LoadConfig(path string) (*Config, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "read config %s", path)
	}

	var cfg Config
	if err := yaml.Unmarshal(raw, &cfg); err != nil {
		return nil, errors.Wrapf(err, "parse config %s", path)
	}

	for i, e := range cfg.Edges {
		if len(e) != 2 {
			return nil, errors.Errorf("parse config %s: edge %d has %d endpoints, want 2", path, i, len(e))
		}
	}
	if len(cfg.Edges) == 0 && len(cfg.Labels) == 0 {
		return nil, errors.Errorf("parse config %s: no edges and no labels", path)
	}

	return &cfg, nil
}

// Graph assembles the directed graph described by the config. Labels
// are registered first so isolated vertices survive; edges auto-register
// any endpoint not listed.
func (c *Config) Graph() (*digraph.Graph, error) {
	g := digraph.New()
	for _, id := range c.Labels {
		if err := g.AddVertex(id); err != nil {
			return nil, err
		}
	}
	for _, e := range c.Edges {
		if err := g.AddEdge(e[0], e[1]); err != nil {
			return nil, err
		}
	}

	return g, nil
}

// EngineOptions converts the set knobs into engine options. Unset knobs
// are omitted so the engine defaults apply.
func (c *Config) EngineOptions() []pagerank.Option {
	var opts []pagerank.Option
	if c.Damping != 0 {
		opts = append(opts, pagerank.WithDamping(c.Damping))
	}
	if c.Tolerance != 0 {
		opts = append(opts, pagerank.WithTolerance(c.Tolerance))
	}
	if c.MaxIter != 0 {
		opts = append(opts, pagerank.WithMaxIter(c.MaxIter))
	}
	if len(c.Labels) != 0 {
		opts = append(opts, pagerank.WithLabels(c.Labels))
	}

	return opts
}
