// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Package figure renders simple figures,
// line plots and histograms,
// into image files.
//
// The format of the image is defined
// by the extension of the file name
// (for example ".png" or ".svg").
package figure

import (
	"github.com/js-arias/sciops/calcerr"
	"github.com/js-arias/sciops/stats"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

// Size of the figures.
const (
	Width  = 6 * vg.Inch
	Height = 4 * vg.Inch
)

// Line saves a line plot of the points (xs, ys).
func Line(name string, xs, ys []float64, xLabel, yLabel string) error {
	if len(xs) != len(ys) {
		return calcerr.Validationf("x and y have different lengths: %d and %d", len(xs), len(ys))
	}
	if len(xs) == 0 {
		return calcerr.Validationf("no points to plot")
	}

	pts := make(plotter.XYs, len(xs))
	for i := range xs {
		pts[i].X = xs[i]
		pts[i].Y = ys[i]
	}

	p := plot.New()
	p.X.Label.Text = xLabel
	p.Y.Label.Text = yLabel

	ln, err := plotter.NewLine(pts)
	if err != nil {
		return err
	}
	ln.LineStyle = plotter.DefaultLineStyle
	p.Add(plotter.NewGrid(), ln)

	return p.Save(Width, Height, name)
}

// A histPlot is a plot of the bins of a histogram
// filled with the color of its relative count.
type histPlot struct {
	hist   stats.Hist
	colors Gradienter
	style  draw.LineStyle
}

// DataRange implements the plot.DataRanger interface.
func (hp *histPlot) DataRange() (xMin, xMax, yMin, yMax float64) {
	e := hp.hist.Edges
	return e[0], e[len(e)-1], 0, float64(hp.hist.Max())
}

// Plot implements the plot.Plotter interface.
func (hp *histPlot) Plot(c draw.Canvas, plt *plot.Plot) {
	trX, trY := plt.Transforms(&c)

	top := float64(hp.hist.Max())
	if top == 0 {
		top = 1
	}

	c.SetLineStyle(hp.style)
	for i, n := range hp.hist.Counts {
		x0 := trX(hp.hist.Edges[i])
		x1 := trX(hp.hist.Edges[i+1])
		y0 := trY(0)
		y1 := trY(float64(n))

		pts := []vg.Point{
			{X: x0, Y: y0},
			{X: x0, Y: y1},
			{X: x1, Y: y1},
			{X: x1, Y: y0},
			{X: x0, Y: y0},
		}
		if n > 0 {
			c.FillPolygon(hp.colors.Gradient(float64(n)/top), pts)
		}

		var p vg.Path
		p.Move(pts[0])
		for _, pt := range pts[1:] {
			p.Line(pt)
		}
		c.Stroke(p)
	}
}

// Histogram saves a histogram,
// with the bins colored by their count
// using the given color scheme.
// If colors is nil,
// it uses a gray scale.
func Histogram(name string, h stats.Hist, label string, colors Gradienter) error {
	if h.Bins() == 0 || len(h.Edges) != h.Bins()+1 {
		return calcerr.Validationf("invalid histogram")
	}
	if colors == nil {
		colors = GrayScale{}
	}

	p := plot.New()
	p.X.Label.Text = label
	p.Y.Label.Text = "count"

	p.Add(&histPlot{
		hist:   h,
		colors: colors,
		style:  plotter.DefaultLineStyle,
	})

	return p.Save(Width, Height, name)
}
