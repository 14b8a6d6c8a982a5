package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/avernet/fxrank/pagerank"
)

// writeConfig drops a YAML run description into a temp dir.
func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "run.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))

	return path
}

// TestLoadConfig_FourVertex parses the reference scenario end to end.
func TestLoadConfig_FourVertex(t *testing.T) {
	path := writeConfig(t, `
damping: 0.85
tolerance: 1e-6
max_iter: 100
labels: [A, B, C, D]
edges:
  - [A, B]
  - [A, C]
  - [B, D]
  - [C, A]
  - [C, B]
  - [C, D]
  - [D, C]
`)

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, 0.85, cfg.Damping)
	assert.Equal(t, 1e-6, cfg.Tolerance)
	assert.Equal(t, 100, cfg.MaxIter)
	assert.Equal(t, []string{"A", "B", "C", "D"}, cfg.Labels)
	assert.Len(t, cfg.Edges, 7)

	g, err := cfg.Graph()
	require.NoError(t, err)
	assert.Equal(t, 4, g.VertexCount())
	assert.Equal(t, 7, g.EdgeCount())

	sg, err := pagerank.NewStochasticGraph(g)
	require.NoError(t, err)
	table, err := pagerank.Rank(sg, cfg.EngineOptions()...)
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B", "C", "D"}, table.Labels())
}

// TestLoadConfig_Defaults leaves every knob unset.
func TestLoadConfig_Defaults(t *testing.T) {
	path := writeConfig(t, `
edges:
  - [A, B]
  - [B, A]
`)

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Empty(t, cfg.EngineOptions(), "unset knobs should defer to engine defaults")

	g, err := cfg.Graph()
	require.NoError(t, err)
	assert.Equal(t, 2, g.VertexCount(), "edges auto-register endpoints")
}

// TestLoadConfig_Rejections covers the parse-time failure modes.
func TestLoadConfig_Rejections(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "absent.yaml"))
	assert.Error(t, err)

	_, err = LoadConfig(writeConfig(t, "damping: [not, a, number]\n"))
	assert.Error(t, err)

	_, err = LoadConfig(writeConfig(t, "edges:\n  - [A, B, C]\n"))
	assert.ErrorContains(t, err, "endpoints")

	_, err = LoadConfig(writeConfig(t, "damping: 0.85\n"))
	assert.ErrorContains(t, err, "no edges")
}
