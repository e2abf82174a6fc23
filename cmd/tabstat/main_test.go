package main

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tabstat/pkg/tabular"
)

func writeDataFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func captureStdout(t *testing.T, fn func() error) (string, error) {
	t.Helper()
	old := os.Stdout
	r, w, err := os.Pipe()
	require.NoError(t, err)
	os.Stdout = w
	defer func() { os.Stdout = old }()

	runErr := fn()
	require.NoError(t, w.Close())
	out, err := io.ReadAll(r)
	require.NoError(t, err)
	return string(out), runErr
}

func TestRunOperation_Sum(t *testing.T) {
	path := writeDataFile(t, "marks.csv", "name,mark\nAlice,10\nBob,20\nCarol\n")

	out, err := captureStdout(t, func() error {
		return runOperation(context.Background(), "sum", "mark", "", []string{path})
	})
	require.NoError(t, err)
	assert.Equal(t, "sum(mark) = 30.00\n", out)
}

func TestRunOperation_SumPerFile(t *testing.T) {
	first := writeDataFile(t, "first.csv", "mark\n10\n")
	second := writeDataFile(t, "second.json", `[{"mark": 5}]`)

	out, err := captureStdout(t, func() error {
		return runOperation(context.Background(), "sum", "mark", "", []string{first, second})
	})
	require.NoError(t, err)
	assert.Equal(t, "sum(mark) = 10.00\nsum(mark) = 5.00\n", out)
}

func TestRunOperation_Average(t *testing.T) {
	path := writeDataFile(t, "marks.csv", "name,mark\nAlice,10\nBob,20\n")

	out, err := captureStdout(t, func() error {
		return runOperation(context.Background(), "avg", "mark", "", []string{path})
	})
	require.NoError(t, err)
	assert.Equal(t, "avg(mark) = 15.00\n", out)
}

func TestRunOperation_AverageOrZero(t *testing.T) {
	path := writeDataFile(t, "empty.csv", "mark\n")

	out, err := captureStdout(t, func() error {
		return runOperation(context.Background(), "avg0", "mark", "", []string{path})
	})
	require.NoError(t, err)
	assert.Equal(t, "avg0(mark) = 0.00\n", out)
}

func TestRunOperation_Prefix(t *testing.T) {
	path := writeDataFile(t, "names.csv", "name\nAnn\nBob\nAnnabel\n")

	out, err := captureStdout(t, func() error {
		return runOperation(context.Background(), "prefix", "name", "An", []string{path})
	})
	require.NoError(t, err)
	assert.Equal(t, "prefix(name) = [Ann]\n", out)
}

func TestRunOperation_Suffix(t *testing.T) {
	path := writeDataFile(t, "names.csv", "name\nDan\nAnn\nCarol\n")

	out, err := captureStdout(t, func() error {
		return runOperation(context.Background(), "suffix", "name", "n", []string{path})
	})
	require.NoError(t, err)
	assert.Equal(t, "suffix(name) = [Dan Ann]\n", out)
}

func TestRunOperation_UnknownOp(t *testing.T) {
	err := runOperation(context.Background(), "median", "mark", "", nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), `unknown operation "median"`)
}

func TestRunOperation_PropagatesLibraryErrors(t *testing.T) {
	path := writeDataFile(t, "bad.csv", "mark\nabc\n")

	_, err := captureStdout(t, func() error {
		return runOperation(context.Background(), "sum", "mark", "", []string{path})
	})
	require.Error(t, err)
	assert.True(t, tabular.IsInvalidNumber(err))
}

func TestSortedKeys(t *testing.T) {
	merged := map[string]float64{"c": 1, "a": 2, "b": 3}
	assert.Equal(t, []string{"a", "b", "c"}, sortedKeys(merged))
	assert.Empty(t, sortedKeys(map[string][]string{}))
}
