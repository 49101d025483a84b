package harness

import (
	"io"
	"log/slog"
)

// Option configures Compare and Run.
type Option func(*Options)

// Options holds the comparison settings.
type Options struct {
	// Points is the number of comparison nodes over [0, Width].
	Points int
	// Width is the domain half-width passed to Method.Solve.
	Width float64
	// Dir receives the output files; it is created if missing.
	Dir string
	// Plot enables PNG charts next to the CSV files.
	Plot bool
	// Logger receives one Info record per comparison.
	Logger *slog.Logger
}

// DefaultOptions mirrors the published runs: 5000 points, width 15,
// directory "results", no plots.
func DefaultOptions() Options {
	return Options{
		Points: 5000,
		Width:  15,
		Dir:    "results",
		Logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
}

// WithPoints sets the comparison node count.
func WithPoints(n int) Option { return func(o *Options) { o.Points = n } }

// WithWidth sets the domain half-width.
func WithWidth(w float64) Option { return func(o *Options) { o.Width = w } }

// WithDir sets the output directory.
func WithDir(dir string) Option { return func(o *Options) { o.Dir = dir } }

// WithPlot toggles PNG output.
func WithPlot(on bool) Option { return func(o *Options) { o.Plot = on } }

// WithLogger routes progress records to l. A nil l keeps the default.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

func gatherOptions(opts []Option) Options {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return o
}
