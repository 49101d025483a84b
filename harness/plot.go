package harness

import (
	"fmt"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"

	"github.com/katalvlaran/fredholm/function"
)

// Series is one labelled curve of a chart.
type Series struct {
	Label  string
	Points []function.Point
}

// Plot renders series as lines on one chart and saves it to path. The
// image format follows the extension of path (.png, .svg, .pdf, ...).
//
// Errors: non-finite sample values and unsupported extensions are
// reported by gonum/plot.
func Plot(path, title string, series ...Series) error {
	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = "x"
	p.Add(plotter.NewGrid())

	for i, s := range series {
		xys := make(plotter.XYs, len(s.Points))
		for j, pt := range s.Points {
			xys[j].X, xys[j].Y = pt.X, pt.Y
		}
		line, err := plotter.NewLine(xys)
		if err != nil {
			return fmt.Errorf("Plot(%s, %q): %w", path, s.Label, err)
		}
		line.Color = plotutil.Color(i)
		p.Add(line)
		p.Legend.Add(s.Label, line)
	}

	if err := p.Save(8*vg.Inch, 5*vg.Inch, path); err != nil {
		return fmt.Errorf("Plot(%s): %w", path, err)
	}

	return nil
}
