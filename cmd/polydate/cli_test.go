package main

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"
)

// run executes rootCmd with args and returns its stdout.
func run(t *testing.T, args ...string) string {
	t.Helper()
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	require.NoError(t, rootCmd.Execute())
	return out.String()
}

func TestParseStandardYMD(t *testing.T) {
	out := run(t, "parse", "2011-04-21")
	require.Contains(t, out, "kind=YMD")
	require.Contains(t, out, "year=2011")
	require.Contains(t, out, "month=4")
	require.Contains(t, out, "day=21")
}

func TestFormatReprojectsBetweenFormats(t *testing.T) {
	out := run(t, "format", "2011-04-21", "", "%Y/%m/%d")
	require.Equal(t, "2011/04/21\n", out)
}

func TestAddClampsDayOnMonthOverflow(t *testing.T) {
	out := run(t, "add", "--format", "%F", "--out-format", "%F", "2000-01-31", "1m")
	require.Equal(t, "2000-02-29\n", out)
}

func TestDiffInvertsAdd(t *testing.T) {
	out := run(t, "diff", "--format", "%F", "--kind", "ymd", "2000-01-31", "2000-03-01")
	require.Equal(t, "0-1-1\n", out)
}

func TestCompareSameDate(t *testing.T) {
	out := run(t, "compare", "--format", "%F", "2020-06-15", "2020-06-15")
	require.Equal(t, "0\n", out)
}

func TestCompareIncomparableAcrossKinds(t *testing.T) {
	out := run(t, "compare", "--format", "", "2020-06-15", "2011-04-21-3")
	require.Equal(t, "-2\n", out)
}
