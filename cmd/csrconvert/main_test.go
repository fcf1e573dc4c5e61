package main

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/csrgraph/csr"
	"github.com/katalvlaran/csrgraph/edgelist"
	"github.com/katalvlaran/csrgraph/internal/cli"
)

func writeFile(t *testing.T, dir, name, body string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestRun_Converts(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()
	in := writeFile(t, dir, "edges.txt", "# triangle\n0 1\n1 2\n\n2 0\n")
	out := filepath.Join(dir, "graph.csr")

	buf := &bytes.Buffer{}
	require.NoError(t, run(buf, []string{in, out}))

	want := "Nodes: 3\nEdges: 3\nCSR construction complete.\n" +
		"\nNeighbors of node 0:\n1 \n" +
		"\nNeighbors of node 1:\n2 \n"
	assert.Equal(t, want, buf.String())

	g, err := csr.LoadFile(out)
	require.NoError(t, err)
	assert.Equal(t, []int32{0, 1, 2, 3}, g.RowPtr())
	assert.Equal(t, []int32{1, 2, 0}, g.ColInd())
}

// TestRun_LenientWarnsOnce logs each malformed line a single time even
// though the input is read three times.
func TestRun_LenientWarnsOnce(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()
	in := writeFile(t, dir, "edges.txt", "0 1\nbogus\n1 2\n")

	buf := &bytes.Buffer{}
	require.NoError(t, run(buf, []string{"-preview", "", in, filepath.Join(dir, "g.csr")}))

	assert.Equal(t, 1, strings.Count(buf.String(), "skipping malformed edge line"))
	assert.Contains(t, buf.String(), "Skipped malformed lines: 1")
	assert.NotContains(t, buf.String(), "Neighbors of node")
}

func TestRun_Strict(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()
	in := writeFile(t, dir, "edges.txt", "0 1\n1 x\n")
	out := filepath.Join(dir, "g.csr")

	err := run(&bytes.Buffer{}, []string{"-strict", in, out})
	var exitErr *cli.ExitError
	require.True(t, errors.As(err, &exitErr), "got %v", err)
	assert.Equal(t, 1, exitErr.Code)
	assert.ErrorIs(t, err, edgelist.ErrMalformedLine)
	assert.Contains(t, err.Error(), "line 2")

	_, statErr := os.Stat(out)
	assert.True(t, os.IsNotExist(statErr), "no snapshot on failure")
}

// TestRun_Profile drives strictness, comment prefix and capacity from YAML.
func TestRun_Profile(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()
	in := writeFile(t, dir, "edges.txt", "% header\n0 1\n1 2\n2 3\n")
	profile := writeFile(t, dir, "p.yaml", `
parse:
  strictness: strict
  comment_prefix: "%"
preview: [2]
`)
	buf := &bytes.Buffer{}
	require.NoError(t, run(buf, []string{"-config", profile, in, filepath.Join(dir, "g.csr")}))
	assert.Contains(t, buf.String(), "Nodes: 4\n")
	assert.Contains(t, buf.String(), "Neighbors of node 2:\n3 \n")

	capped := writeFile(t, dir, "cap.yaml", "capacity:\n  max_edges: 2\n")
	err := run(&bytes.Buffer{}, []string{"-config", capped, in, filepath.Join(dir, "h.csr")})
	assert.ErrorIs(t, err, csr.ErrCapacity)
}

func TestRun_Failures(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()
	in := writeFile(t, dir, "edges.txt", "0 1\n")

	cases := map[string][]string{
		"no args":       nil,
		"missing input": {filepath.Join(dir, "none.txt"), filepath.Join(dir, "g.csr")},
		"bad output":    {in, filepath.Join(dir, "no-such-dir", "g.csr")},
		"negative id":   {"-strict", writeFile(t, dir, "neg.txt", "0 -1\n"), filepath.Join(dir, "n.csr")},
	}
	for name, args := range cases {
		t.Run(name, func(t *testing.T) {
			err := run(&bytes.Buffer{}, args)
			var exitErr *cli.ExitError
			require.True(t, errors.As(err, &exitErr), "got %v", err)
			assert.Equal(t, 1, exitErr.Code)
		})
	}
}
