// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Package regress implements a command to fit
// a simple linear regression
// between two columns of a data file.
package regress

import (
	"fmt"
	"slices"

	"github.com/js-arias/command"
	"github.com/js-arias/sciops/cmd/sciops/session"
	"github.com/js-arias/sciops/datatab"
	"github.com/js-arias/sciops/figure"
	"github.com/js-arias/sciops/stats"
	"go.uber.org/zap"
)

var Command = &command.Command{
	Usage: `regress [-d|--delimiter <char>] [--png <image-file>]
	<data-file> <x-column> <y-column>`,
	Short: "fit a linear regression between two columns",
	Long: `
Command regress reads a CSV or TSV file and fits a simple linear regression
y = m*x + b, by least squares, between two numeric columns. It prints the
slope, the intercept, the correlation coefficient r, and the coefficient of
determination r^2.

The first argument of the command is the name of the data file, the second is
the name of the x column, and the third is the name of the y column. Only
the rows in which both values are numeric are used. See "sciops help data
data-files" for the file format.

If the flag --png is defined, the fitted line is drawn in the indicated PNG
file.
	`,
	SetFlags: setFlags,
	Run:      run,
}

var delimFlag string
var pngFlag string

func setFlags(c *command.Command) {
	c.Flags().StringVar(&delimFlag, "delimiter", "", "")
	c.Flags().StringVar(&delimFlag, "d", "", "")
	c.Flags().StringVar(&pngFlag, "png", "", "")
}

func run(c *command.Command, args []string) error {
	if len(args) < 3 {
		return c.UsageError("expecting data file, x column, and y column")
	}
	delim, err := datatab.ParseDelim(delimFlag)
	if err != nil {
		return err
	}
	t, err := datatab.ReadFile(args[0], delim)
	if err != nil {
		return err
	}
	xc, yc := args[1], args[2]
	xs, ys, err := t.Pairs(xc, yc)
	if err != nil {
		return err
	}
	r, err := stats.LinearRegression(xs, ys)
	if err != nil {
		return err
	}

	s, err := session.Open(c)
	if err != nil {
		return err
	}
	defer s.Close()

	title := fmt.Sprintf("Linear regression: %s vs %s (%d points)", yc, xc, len(xs))
	if err := s.Out.Table(title, []string{"Metric", "Value"}, [][]string{
		{"slope (m)", fmt.Sprintf("%.6g", r.Slope)},
		{"intercept (b)", fmt.Sprintf("%.6g", r.Intercept)},
		{"r", fmt.Sprintf("%.6g", r.R)},
		{"r^2", fmt.Sprintf("%.6g", r.R2)},
	}); err != nil {
		return err
	}

	if pngFlag == "" {
		return nil
	}
	lx := []float64{slices.Min(xs), slices.Max(xs)}
	ly := []float64{r.Slope*lx[0] + r.Intercept, r.Slope*lx[1] + r.Intercept}
	if err := figure.Line(pngFlag, lx, ly, xc, yc); err != nil {
		return err
	}
	s.Log.Info("regression image written", zap.String("file", pngFlag))
	return nil
}
