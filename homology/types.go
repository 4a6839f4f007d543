package homology

import "context"

// LogLevel controls the verbosity of the OnLog callback (spec.md §5).
type LogLevel int

const (
	// Silent suppresses all log callbacks.
	Silent LogLevel = iota
	// Quiet logs only coarse milestones: the walkers emit one message,
	// when a reduced boundary reaches zero. Pivot table growth is not
	// logged.
	Quiet
	// Verbose fires every message Quiet does. The walkers emit no
	// Verbose-only messages, so frontier pops are not logged.
	Verbose
)

// Limits bounds the resources a query may consume.
type Limits struct {
	// MaxBytes caps the estimated size of the pivot table plus
	// frontier. Zero means unbounded. A budget smaller than the cost
	// of a single state fails immediately with ErrOutOfMemory.
	MaxBytes int64

	// ProgressEvery, if > 0, calls OnProgress after every N states
	// popped from the frontier.
	ProgressEvery int
}

// Option configures a query via functional arguments, following the
// same shape as bfs.Option in the teacher's neighbor-search package.
type Option func(*config)

type config struct {
	ctx         context.Context
	limits      Limits
	onProgress  func(statesExplored, pivots int)
	onLog       func(level LogLevel, message string)
	logLevel    LogLevel
	bytesPerKey int64
}

// defaultConfig mirrors bfs.DefaultOptions: a background context, no
// resource limit, and no-op callbacks.
func defaultConfig() config {
	return config{
		ctx:         context.Background(),
		limits:      Limits{},
		onProgress:  func(int, int) {},
		onLog:       func(LogLevel, string) {},
		logLevel:    Silent,
		bytesPerKey: 64,
	}
}

// log invokes the registered OnLog callback only if level is at or
// below the configured verbosity threshold, so "Silent suppresses all
// log callbacks" (above) actually holds: a Silent config's logLevel is
// the zero value, which is below every real message level, so no
// message ever fires.
func (c config) log(level LogLevel, message string) {
	if c.logLevel >= level {
		c.onLog(level, message)
	}
}

// WithContext sets the cancellation token checked at the top of every
// frontier-pop iteration and after computing every boundary (spec.md §5).
func WithContext(ctx context.Context) Option {
	return func(c *config) {
		if ctx != nil {
			c.ctx = ctx
		}
	}
}

// WithLimits sets the resource budget for the query.
func WithLimits(l Limits) Option {
	return func(c *config) { c.limits = l }
}

// WithOnProgress registers a progress callback, invoked according to
// Limits.ProgressEvery.
func WithOnProgress(fn func(statesExplored, pivots int)) Option {
	return func(c *config) {
		if fn != nil {
			c.onProgress = fn
		}
	}
}

// WithOnLog registers a logging callback and the level at which it
// should fire. The core never writes to any stream directly; all
// emission goes through this callback (spec.md §5).
func WithOnLog(level LogLevel, fn func(level LogLevel, message string)) Option {
	return func(c *config) {
		c.logLevel = level
		if fn != nil {
			c.onLog = fn
		}
	}
}

// WithBytesPerKey overrides the per-state memory estimate used against
// Limits.MaxBytes. Exposed for callers with a more precise notion of
// their key's marginal cost than the default estimate.
func WithBytesPerKey(n int64) Option {
	return func(c *config) {
		if n > 0 {
			c.bytesPerKey = n
		}
	}
}
