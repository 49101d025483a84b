package harness

import (
	"errors"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/katalvlaran/fredholm/function"
	"github.com/katalvlaran/fredholm/method"
	"github.com/katalvlaran/fredholm/scenario"
)

var (
	// ErrInvalidPoints indicates fewer than two comparison points.
	ErrInvalidPoints = errors.New("harness: at least two comparison points required")

	// ErrNilMethod indicates a Case without a Method.
	ErrNilMethod = errors.New("harness: nil method")
)

// Case names a configured Method; Name becomes part of the file names.
type Case struct {
	Name   string
	Method method.Method
}

// Report is the outcome of one comparison.
type Report struct {
	Prefix, Name string
	// Solve is the wall time of Method.Solve; Save covers the CSV files.
	Solve, Save time.Duration
	Stats
	// Files lists every file written, in order.
	Files []string
}

// String renders the report the way it is stored in the stats file.
func (r Report) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s_%s:\n", r.Prefix, r.Name)
	fmt.Fprintf(&b, "\tCalculation took %dms\n", r.Solve.Milliseconds())
	fmt.Fprintf(&b, "\tSaving took %dms\n", r.Save.Milliseconds())
	fmt.Fprintf(&b, "\tMax difference %s%%\tMean: %s%%\tMedian: %s%%",
		formatFloat(r.Max), formatFloat(r.Mean), formatFloat(r.Median))

	return b.String()
}

// Compare solves s with c.Method and writes the comparison files for the
// pair (s.Name, c.Name).
//
// Errors: ErrNilMethod, ErrInvalidPoints, the wrapped Method.Solve error,
// or the first I/O failure.
func Compare(c Case, s scenario.Scenario, opts ...Option) (*Report, error) {
	o := gatherOptions(opts)
	if c.Method == nil {
		return nil, fmt.Errorf("Compare(%s): %w", c.Name, ErrNilMethod)
	}
	if o.Points < 2 {
		return nil, fmt.Errorf("Compare(points=%d): %w", o.Points, ErrInvalidPoints)
	}
	if err := os.MkdirAll(o.Dir, 0o755); err != nil {
		return nil, fmt.Errorf("Compare: %w", err)
	}

	start := time.Now()
	u, err := c.Method.Solve(s.Birth, s.Death, s.Parameter, o.Width)
	if err != nil {
		return nil, fmt.Errorf("Compare(%s_%s): %w", s.Name, c.Name, err)
	}
	r := &Report{Prefix: s.Name, Name: c.Name, Solve: time.Since(start)}

	diff := function.Func(func(x float64) float64 {
		e := s.Exact.Eval(x)
		return math.Abs(u.Eval(x)-e) / e * 100
	})
	diffPts, err := function.Sample(diff, 0, o.Width, o.Points)
	if err != nil {
		return nil, fmt.Errorf("Compare: %w", err)
	}
	if r.Stats, err = Summarize(function.Values(diffPts)); err != nil {
		return nil, fmt.Errorf("Compare: %w", err)
	}

	// Sample never fails past this point: Points was validated above.
	exactPts, _ := function.Sample(s.Exact, 0, o.Width, o.Points)
	solvedPts, _ := function.Sample(u, 0, o.Width, o.Points)

	base := filepath.Join(o.Dir, s.Name)
	files := []struct {
		path string
		pts  []function.Point
	}{
		{base + "_actual.csv", exactPts},
		{base + "_" + c.Name + ".csv", solvedPts},
		{base + "_" + c.Name + "_diff.csv", diffPts},
	}
	start = time.Now()
	for _, f := range files {
		if err := WriteCSV(f.path, f.pts); err != nil {
			return nil, fmt.Errorf("Compare: %w", err)
		}
		r.Files = append(r.Files, f.path)
	}
	r.Save = time.Since(start)

	stats := base + "_" + c.Name + "_stats.csv"
	if err := os.WriteFile(stats, []byte(r.String()+"\n"), 0o644); err != nil {
		return nil, fmt.Errorf("Compare: %w", err)
	}
	r.Files = append(r.Files, stats)

	if o.Plot {
		solution := base + "_" + c.Name + ".png"
		if err := Plot(solution, "exact vs "+c.Name,
			Series{Label: "exact", Points: exactPts},
			Series{Label: c.Name, Points: solvedPts},
		); err != nil {
			return nil, fmt.Errorf("Compare: %w", err)
		}
		errPlot := base + "_" + c.Name + "_diff.png"
		if err := Plot(errPlot, "difference in %",
			Series{Label: c.Name, Points: diffPts},
		); err != nil {
			return nil, fmt.Errorf("Compare: %w", err)
		}
		r.Files = append(r.Files, solution, errPlot)
	}

	o.Logger.Info("comparison finished",
		"scenario", s.Name,
		"method", c.Name,
		"solve", r.Solve,
		"save", r.Save,
		"max", r.Max,
		"mean", r.Mean,
		"median", r.Median)

	return r, nil
}

// Run compares every case against every scenario, scenarios outermost, and
// stops at the first error. Reports gathered so far are returned with it.
func Run(cases []Case, scenarios []scenario.Scenario, opts ...Option) ([]*Report, error) {
	reports := make([]*Report, 0, len(cases)*len(scenarios))
	for _, s := range scenarios {
		for _, c := range cases {
			r, err := Compare(c, s, opts...)
			if err != nil {
				return reports, err
			}
			reports = append(reports, r)
		}
	}

	return reports, nil
}
