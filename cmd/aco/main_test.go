package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/antcolony/config"
)

func TestRun_Usage(t *testing.T) {
	var stdout, stderr bytes.Buffer
	err := run(context.Background(), nil, &stdout, &stderr)
	require.ErrorIs(t, err, errUsage)
	require.Contains(t, stderr.String(), "Usage: aco")

	err = run(context.Background(), []string{"knapsack"}, &stdout, &stderr)
	require.ErrorIs(t, err, errUsage)
}

func TestRun_TSPReferenceGraph(t *testing.T) {
	dir := t.TempDir()
	var stdout, stderr bytes.Buffer
	err := run(context.Background(), []string{
		"tsp", "-iterations", "5", "-ants", "50", "-seed", "7", "-out", dir, "-plot",
	}, &stdout, &stderr)
	require.NoError(t, err)

	out := stdout.String()
	require.Contains(t, out, "=== TSP run 1/1 ===")
	require.Contains(t, out, "Best route: 1 -> ")
	require.True(t, strings.Contains(out, "-> 1\n"), "route is printed closed")
	require.Contains(t, out, "--- Convergence ---")

	reports, err := filepath.Glob(filepath.Join(dir, "aco_tsp_*.json"))
	require.NoError(t, err)
	require.Len(t, reports, 1)
	charts, err := filepath.Glob(filepath.Join(dir, "aco_tsp_*.png"))
	require.NoError(t, err)
	require.Len(t, charts, 1)
}

func TestRun_SchwefelBatch(t *testing.T) {
	dir := t.TempDir()
	var stdout, stderr bytes.Buffer
	err := run(context.Background(), []string{
		"schwefel", "-dim", "2", "-iterations", "10", "-runs", "3", "-out", dir,
	}, &stdout, &stderr)
	require.NoError(t, err)

	out := stdout.String()
	require.Contains(t, out, "=== Schwefel run 3/3 (d=2) ===")
	require.Contains(t, out, "=== 3 runs ===")

	batch, err := filepath.Glob(filepath.Join(dir, "aco_schwefel_*.json"))
	require.NoError(t, err)
	require.Len(t, batch, 4, "three runs and one batch report")
}

func TestRun_NoOutputDirWritesNothing(t *testing.T) {
	var stdout, stderr bytes.Buffer
	err := run(context.Background(), []string{"schwefel", "-dim", "1", "-iterations", "2"}, &stdout, &stderr)
	require.NoError(t, err)
	require.NotContains(t, stdout.String(), "Report:")
	require.Contains(t, stdout.String(), "Best cost:")
}

func TestRun_ConfigFileAndOverrides(t *testing.T) {
	dir := t.TempDir()
	ini := filepath.Join(dir, "run.ini")
	require.NoError(t, os.WriteFile(ini, []byte(`
[schwefel]
dimension = 3
iterations = 4

[output]
dir = `+filepath.Join(dir, "out")+`
`), 0o644))

	var stdout, stderr bytes.Buffer
	err := run(context.Background(), []string{"schwefel", "-config", ini, "-dim", "2"}, &stdout, &stderr)
	require.NoError(t, err)
	require.Contains(t, stdout.String(), "(d=2)")

	saved, err := filepath.Glob(filepath.Join(dir, "out", "aco_schwefel_*.json"))
	require.NoError(t, err)
	require.Len(t, saved, 1)
}

func TestRun_ConfigWithoutOutputDirWritesNothing(t *testing.T) {
	ini := filepath.Join(t.TempDir(), "run.ini")
	require.NoError(t, os.WriteFile(ini, []byte("[schwefel]\ndimension = 1\niterations = 2\n"), 0o644))

	var stdout, stderr bytes.Buffer
	err := run(context.Background(), []string{"schwefel", "-config", ini}, &stdout, &stderr)
	require.NoError(t, err)
	require.NotContains(t, stdout.String(), "Report:")
}

func TestRun_HugeIterationsDoNotPanic(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var stdout, stderr bytes.Buffer
	require.NotPanics(t, func() {
		err := run(ctx, []string{"tsp", "-iterations", "2305843009213693952"}, &stdout, &stderr)
		require.ErrorIs(t, err, context.Canceled)
	})
}

func TestRun_InvalidValues(t *testing.T) {
	var stdout, stderr bytes.Buffer
	err := run(context.Background(), []string{"tsp", "-format", "gif"}, &stdout, &stderr)
	require.ErrorIs(t, err, config.ErrInvalidConfig)

	err = run(context.Background(), []string{"tsp", "-graph", filepath.Join(t.TempDir(), "missing.json")}, &stdout, &stderr)
	require.Error(t, err)

	err = run(context.Background(), []string{"tsp", "-start", "Atlantis", "-iterations", "1"}, &stdout, &stderr)
	require.Error(t, err)
}
