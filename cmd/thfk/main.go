// Command thfk is a thin wrapper over package thfk: it parses a grid
// diagram from flags, runs the five invariant queries, and prints one
// line per query (spec.md §6's "CLI surface (thin wrapper, not core)").
// It contains no combinatorics of its own — only flag parsing,
// cancellation wiring, and the exit-code mapping spec.md §6/§7 define.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"

	"github.com/albenzo/grid-homology/homology"
	"github.com/albenzo/grid-homology/thfk"
)

// Exit codes, spec.md §6.
const (
	exitSuccess      = 0
	exitInvalidInput = 2
	exitCancelled    = 3
	exitOutOfMemory  = 4
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// run is main's testable body: it never calls os.Exit itself, so
// cmd/thfk's tests can exercise the exit-code mapping directly.
func run(args []string, stdout, stderr *os.File) int {
	fs := flag.NewFlagSet("thfk", flag.ContinueOnError)
	fs.SetOutput(stderr)

	var (
		xFlag       = fs.String("X", "", "comma-separated X markings, a permutation of 1..N")
		oFlag       = fs.String("O", "", "comma-separated O markings, a permutation of 1..N")
		nFlag       = fs.Int("n", 2, "cyclic cover order for theta_n")
		verboseFlag = fs.String("v", "silent", "log verbosity: silent|quiet|verbose")
		maxBytes    = fs.Int64("max-bytes", 0, "memory budget for the pivot table, 0 = unbounded")
	)
	if err := fs.Parse(args); err != nil {
		return exitInvalidInput
	}

	x, err := parseIntList(*xFlag)
	if err != nil {
		fmt.Fprintf(stderr, "thfk: -X: %v\n", err)
		return exitInvalidInput
	}
	o, err := parseIntList(*oFlag)
	if err != nil {
		fmt.Fprintf(stderr, "thfk: -O: %v\n", err)
		return exitInvalidInput
	}
	level, err := parseLogLevel(*verboseFlag)
	if err != nil {
		fmt.Fprintf(stderr, "thfk: -v: %v\n", err)
		return exitInvalidInput
	}

	diagram, err := thfk.NewDiagram(x, o)
	if err != nil {
		fmt.Fprintf(stderr, "thfk: %v\n", err)
		return exitInvalidInput
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	logger := log.New(stderr, "thfk: ", 0)
	opts := []homology.Option{
		homology.WithContext(ctx),
		homology.WithLimits(homology.Limits{MaxBytes: *maxBytes}),
		homology.WithOnLog(level, func(lvl homology.LogLevel, msg string) {
			logger.Print(msg)
		}),
	}

	queries := []struct {
		name string
		run  func() (bool, error)
	}{
		{"LAMBDA_PLUS", func() (bool, error) { return diagram.LambdaPlus(opts...) }},
		{"LAMBDA_MINUS", func() (bool, error) { return diagram.LambdaMinus(opts...) }},
		{"DELTA1_LAMBDA_PLUS", func() (bool, error) { return diagram.Delta1LambdaPlus(opts...) }},
		{"DELTA1_LAMBDA_MINUS", func() (bool, error) { return diagram.Delta1LambdaMinus(opts...) }},
		{"THETA_N", func() (bool, error) { return diagram.Theta(*nFlag, opts...) }},
	}

	for _, q := range queries {
		result, err := q.run()
		if err != nil {
			fmt.Fprintf(stderr, "thfk: %s: %v\n", q.name, err)
			switch {
			case errors.Is(err, thfk.ErrCancelled):
				return exitCancelled
			case errors.Is(err, thfk.ErrOutOfMemory):
				return exitOutOfMemory
			case errors.Is(err, thfk.ErrInvalidCoverOrder):
				return exitInvalidInput
			default:
				return exitInvalidInput
			}
		}
		fmt.Fprintf(stdout, "%s: %s\n", q.name, yesNo(result))
	}
	return exitSuccess
}

// parseIntList parses a comma-separated list of integers, e.g. "2,3,4,5,1".
func parseIntList(s string) ([]int, error) {
	if strings.TrimSpace(s) == "" {
		return nil, fmt.Errorf("empty list")
	}
	parts := strings.Split(s, ",")
	out := make([]int, len(parts))
	for i, p := range parts {
		v, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil {
			return nil, fmt.Errorf("%q is not an integer", p)
		}
		out[i] = v
	}
	return out, nil
}

// parseLogLevel maps the -v flag's three accepted values onto
// homology.LogLevel (spec.md §6's "-v {silent|quiet|verbose}").
func parseLogLevel(s string) (homology.LogLevel, error) {
	switch strings.ToLower(s) {
	case "silent", "":
		return homology.Silent, nil
	case "quiet":
		return homology.Quiet, nil
	case "verbose":
		return homology.Verbose, nil
	default:
		return homology.Silent, fmt.Errorf("unknown level %q (want silent|quiet|verbose)", s)
	}
}

// yesNo renders a boolean invariant as the fixed YES/NO vocabulary
// spec.md §6 requires.
func yesNo(b bool) string {
	if b {
		return "YES"
	}
	return "NO"
}
