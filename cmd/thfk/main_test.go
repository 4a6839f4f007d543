package main

import (
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

// captureOutput runs fn with stdout/stderr redirected to temp files and
// returns their contents plus fn's return value.
func captureOutput(t *testing.T, fn func(stdout, stderr *os.File) int) (stdout, stderr string, code int) {
	t.Helper()

	outFile, err := os.CreateTemp(t.TempDir(), "stdout")
	require.NoError(t, err)
	errFile, err := os.CreateTemp(t.TempDir(), "stderr")
	require.NoError(t, err)

	code = fn(outFile, errFile)

	_, err = outFile.Seek(0, 0)
	require.NoError(t, err)
	_, err = errFile.Seek(0, 0)
	require.NoError(t, err)

	outBytes := make([]byte, 4096)
	n, _ := outFile.Read(outBytes)
	stdout = string(outBytes[:n])

	errBytes := make([]byte, 4096)
	n, _ = errFile.Read(errBytes)
	stderr = string(errBytes[:n])

	return stdout, stderr, code
}

// TestRun_Unknot runs the standard N=5 unknot grid diagram (the grid of
// scenarios 1-3 of spec.md §8's regression table) through the CLI's
// full flag-to-stdout path and checks that every query prints its
// line; the YES/NO answers themselves are not checked here.
func TestRun_Unknot(t *testing.T) {
	t.Parallel()

	stdout, stderr, code := captureOutput(t, func(stdout, stderr *os.File) int {
		return run([]string{"-X", "2,3,4,5,1", "-O", "1,2,3,4,5", "-n", "2"}, stdout, stderr)
	})

	require.Equal(t, exitSuccess, code, "stderr: %s", stderr)
	require.Contains(t, stdout, "LAMBDA_PLUS: ")
	require.Contains(t, stdout, "LAMBDA_MINUS: ")
	require.Contains(t, stdout, "DELTA1_LAMBDA_PLUS: ")
	require.Contains(t, stdout, "DELTA1_LAMBDA_MINUS: ")
	require.Contains(t, stdout, "THETA_N: ")
}

// TestRun_InvalidGrid checks the exit-code mapping for malformed input
// (spec.md §6: exit code 2).
func TestRun_InvalidGrid(t *testing.T) {
	t.Parallel()

	_, stderr, code := captureOutput(t, func(stdout, stderr *os.File) int {
		return run([]string{"-X", "1,2", "-O", "1,2,3"}, stdout, stderr)
	})

	require.Equal(t, exitInvalidInput, code)
	require.NotEmpty(t, stderr)
}

// TestRun_MissingFlags checks that an empty -X/-O is rejected as
// invalid input rather than panicking on an empty grid.
func TestRun_MissingFlags(t *testing.T) {
	t.Parallel()

	_, _, code := captureOutput(t, func(stdout, stderr *os.File) int {
		return run(nil, stdout, stderr)
	})

	require.Equal(t, exitInvalidInput, code)
}

// TestParseIntList covers the -X/-O flag grammar.
func TestParseIntList(t *testing.T) {
	t.Parallel()

	got, err := parseIntList("2,3,4,5,1")
	require.NoError(t, err)
	require.Equal(t, []int{2, 3, 4, 5, 1}, got)

	_, err = parseIntList("")
	require.Error(t, err)

	_, err = parseIntList("1,x,3")
	require.Error(t, err)
}

// TestParseLogLevel covers the -v flag grammar.
func TestParseLogLevel(t *testing.T) {
	t.Parallel()

	for _, tc := range []string{"silent", "quiet", "verbose", "VERBOSE"} {
		_, err := parseLogLevel(tc)
		require.NoError(t, err, tc)
	}

	_, err := parseLogLevel("loud")
	require.Error(t, err)
	require.True(t, strings.Contains(err.Error(), "unknown level"))
}
