package main

import (
	"bytes"
	"context"
	"errors"
	"sort"
	"strconv"
	"strings"
	"testing"

	errs "github.com/kay64/computer-science/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runArgs(args ...string) (string, string, error) {
	out := &bytes.Buffer{}
	errOut := &bytes.Buffer{}
	err := run(context.Background(), args, out, errOut)
	return out.String(), errOut.String(), err
}

func TestRunTreeDefaultKeys(t *testing.T) {
	out, _, err := runArgs("tree")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	assert.Len(t, lines, 13)
	assert.Equal(t, "17\t17", lines[0])
	assert.Equal(t, "97\t97", lines[12])
}

func TestRunTreeRemove(t *testing.T) {
	out, logged, err := runArgs("tree", "--keys", "5,2,7,1,3", "--remove", "2,9")
	require.NoError(t, err)

	assert.Equal(t, "1\t1\n3\t3\n5\t5\n7\t7\n", out)
	assert.Contains(t, logged, "found=true")
	assert.Contains(t, logged, "found=false")
}

func TestRunTreeInvalidKeys(t *testing.T) {
	_, _, err := runArgs("tree", "--keys", "1,x")
	assert.Error(t, err)
}

func TestRunSortOK(t *testing.T) {
	out, logged, err := runArgs("sort", "--algorithm", "shaker", "--size", "50", "--seed", "7")
	require.NoError(t, err)

	fields := strings.Fields(strings.Trim(strings.TrimSpace(out), "[]"))
	require.Len(t, fields, 50)

	values := make([]int, 0, len(fields))
	for _, f := range fields {
		n, err := strconv.Atoi(f)
		require.NoError(t, err)
		values = append(values, n)
	}

	assert.True(t, sort.IntsAreSorted(values))
	assert.Contains(t, logged, "operation completed")
	assert.Contains(t, logged, "operation=shaker")
}

func TestRunSortSameSeedSameOutput(t *testing.T) {
	first, _, err := runArgs("sort", "--algorithm", "bubble", "--seed", "3")
	require.NoError(t, err)
	second, _, err := runArgs("sort", "--algorithm", "merge", "--seed", "3")
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestRunSortUnknownAlgorithm(t *testing.T) {
	_, _, err := runArgs("sort", "--algorithm", "bogo")
	assert.True(t, errors.Is(err, errs.ErrUnknownAlgorithm))
}

func TestRunSortNegativeSize(t *testing.T) {
	_, _, err := runArgs("sort", "--size=-1")
	assert.Error(t, err)
}

func TestRunBenchOK(t *testing.T) {
	out, _, err := runArgs("bench", "--bench-size", "1500", "--concurrency", "2",
		"--algorithms", "merge,insertion")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 2)
	assert.True(t, strings.HasPrefix(lines[0], "merge"))
	assert.True(t, strings.HasPrefix(lines[1], "insertion"))
	for _, line := range lines {
		assert.Contains(t, line, "1,500 values")
	}
}

func TestRunBenchAllAlgorithms(t *testing.T) {
	out, _, err := runArgs("bench", "--bench-size", "200")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	assert.Len(t, lines, 6)
}

func TestRunBenchUnknownAlgorithm(t *testing.T) {
	_, _, err := runArgs("bench", "--algorithms", "merge,bogo")
	assert.True(t, errors.Is(err, errs.ErrUnknownAlgorithm))
}

func TestRunUnknownCommand(t *testing.T) {
	_, _, err := runArgs("graph")
	assert.True(t, errors.Is(err, errs.ErrUnknownCommand))
}

func TestRunMissingCommand(t *testing.T) {
	_, _, err := runArgs()
	assert.True(t, errors.Is(err, errs.ErrUnknownCommand))
}

func TestRunJSONLogs(t *testing.T) {
	_, logged, err := runArgs("tree", "--keys", "1", "--remove", "1", "--log-format", "json")
	require.NoError(t, err)

	assert.Contains(t, logged, `"msg":"remove"`)
}
