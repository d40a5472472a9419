package main

import (
	"bytes"
	"flag"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/katalvlaran/snngraph/internal/config"
	"github.com/katalvlaran/snngraph/neighbors"
	"github.com/katalvlaran/snngraph/snn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const scenario = "1,2\n0,2\n0,1\n0,1\n"

func runCLI(t *testing.T, stdin string, args ...string) (string, string, error) {
	t.Helper()
	var out, errOut bytes.Buffer
	err := run(args, strings.NewReader(stdin), &out, &errOut)
	return out.String(), errOut.String(), err
}

func TestRun_SNNNumber(t *testing.T) {
	out, _, err := runCLI(t, scenario, "-scheme", "number", "-log-level", "error")
	require.NoError(t, err)
	assert.Equal(t, "0,1,3\n0,2,3\n0,3,2\n1,2,3\n1,3,2\n2,3,2\n", out)
}

func TestRun_DefaultRankLogs(t *testing.T) {
	out, logs, err := runCLI(t, scenario, "-log-level", "debug", "-workers", "2")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "0,1,1.5\n"))
	assert.Contains(t, logs, "table loaded")
	assert.Contains(t, logs, "snn graph built")
	assert.Contains(t, logs, "edges=6")
	assert.Contains(t, logs, "components=1")
}

func TestRun_Backbone(t *testing.T) {
	out, _, err := runCLI(t, scenario, "-scheme", "number", "-backbone", "-log-level", "error")
	require.NoError(t, err)
	assert.Equal(t, "0,1,3\n0,2,3\n0,3,2\n", out)
}

func TestRun_KNNDirectedOneBased(t *testing.T) {
	in := "2\t3\n1\t3\n1\t2\n"
	out, _, err := runCLI(t, in, "-graph", "knn", "-directed", "-delim", "tab", "-index-base", "1", "-log-level", "warn")
	require.NoError(t, err)
	assert.Equal(t, "1\t2\t1\n1\t3\t1\n2\t1\t1\n2\t3\t1\n3\t1\t1\n3\t2\t1\n", out)
}

func TestRun_ConfigFileAndOverride(t *testing.T) {
	dir := t.TempDir()
	cfgPath := filepath.Join(dir, "snngraph.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("scheme: jaccard\nheader: true\nlog_level: error\n"), 0o600))
	inPath := filepath.Join(dir, "table.csv")
	require.NoError(t, os.WriteFile(inPath, []byte("a,b\n"+scenario), 0o600))
	outPath := filepath.Join(dir, "edges.csv")

	_, _, err := runCLI(t, "", "-config", cfgPath, "-in", inPath, "-out", outPath)
	require.NoError(t, err)
	got, err := os.ReadFile(outPath)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(got), "from,to,weight\n0,1,1\n"), string(got))

	// The flag wins over the file.
	out, _, err := runCLI(t, "", "-config", cfgPath, "-in", inPath, "-scheme", "number")
	require.NoError(t, err)
	assert.Contains(t, out, "0,3,2\n")
}

func TestRun_Errors(t *testing.T) {
	_, _, err := runCLI(t, scenario, "-scheme", "cosine")
	assert.ErrorIs(t, err, config.ErrInvalid)

	_, _, err = runCLI(t, scenario, "-directed")
	assert.ErrorIs(t, err, config.ErrInvalid, "directed needs knn")

	_, _, err = runCLI(t, "1,9\n0,1\n", "-log-level", "error")
	assert.ErrorIs(t, err, neighbors.ErrIDOutOfRange)

	_, _, err = runCLI(t, scenario, "-max-edges", "2", "-log-level", "error")
	assert.ErrorIs(t, err, snn.ErrTooManyEdges)

	_, _, err = runCLI(t, scenario, "-in", filepath.Join(t.TempDir(), "missing.csv"))
	assert.ErrorIs(t, err, os.ErrNotExist)

	_, _, err = runCLI(t, scenario, "extra")
	assert.Error(t, err)

	_, _, err = runCLI(t, scenario, "-h")
	assert.ErrorIs(t, err, flag.ErrHelp)
}
