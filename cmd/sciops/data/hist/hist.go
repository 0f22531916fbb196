// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Package hist implements a command to draw
// a histogram of a column of a data file.
package hist

import (
	"strings"

	"github.com/js-arias/command"
	"github.com/js-arias/sciops/calcerr"
	"github.com/js-arias/sciops/cmd/sciops/session"
	"github.com/js-arias/sciops/datatab"
	"github.com/js-arias/sciops/figure"
	"github.com/js-arias/sciops/stats"
	"go.uber.org/zap"
)

var Command = &command.Command{
	Usage: `hist [--bins <number>] [--width <number>]
	[--png <image-file>] [--scheme <color-scheme>]
	[-d|--delimiter <char>] <data-file> <column>`,
	Short: "draw a histogram of a column of a data file",
	Long: `
Command hist reads a CSV or TSV file and draws a text histogram of the values
of a numeric column.

The first argument of the command is the name of the data file, and the second
is the name of the column. See "sciops help data data-files" for the file
format.

By default, ten bins of equal width are used. Use the flag --bins to set a
different number of bins. By default, the longest bar has 40 characters; use
the flag --width to set a different width.

If the flag --png is defined, the histogram is also drawn as an image in the
indicated PNG file. The bars are colored by their count, using the scheme set
with the flag --scheme. Valid schemes are:

	gray          gray scale
	incandescent  from black to yellow (default)
	iridescent    from light blue to red
	rainbow       from purple to red
	`,
	SetFlags: setFlags,
	Run:      run,
}

var binsFlag int
var widthFlag int
var pngFlag string
var schemeFlag string
var delimFlag string

func setFlags(c *command.Command) {
	c.Flags().IntVar(&binsFlag, "bins", 10, "")
	c.Flags().IntVar(&widthFlag, "width", 40, "")
	c.Flags().StringVar(&pngFlag, "png", "", "")
	c.Flags().StringVar(&schemeFlag, "scheme", "incandescent", "")
	c.Flags().StringVar(&delimFlag, "delimiter", "", "")
	c.Flags().StringVar(&delimFlag, "d", "", "")
}

func run(c *command.Command, args []string) error {
	if len(args) < 2 {
		return c.UsageError("expecting data file and column")
	}
	if widthFlag < 1 {
		return c.UsageError("flag --width must be positive")
	}
	delim, err := datatab.ParseDelim(delimFlag)
	if err != nil {
		return err
	}
	var colors figure.Gradienter
	if pngFlag != "" {
		colors, err = figure.Scheme(schemeFlag)
		if err != nil {
			return err
		}
	}

	t, err := datatab.ReadFile(args[0], delim)
	if err != nil {
		return err
	}
	col := args[1]
	xs, err := t.Column(col)
	if err != nil {
		return err
	}
	if len(xs) == 0 {
		return calcerr.Validationf("column %q has no numeric data", col)
	}
	h, err := stats.Histogram(xs, binsFlag)
	if err != nil {
		return err
	}

	s, err := session.Open(c)
	if err != nil {
		return err
	}
	defer s.Close()

	s.Out.Printf("Histogram for %s (%d values):", s.Out.Value(col), len(xs))
	top := h.Max()
	for i, n := range h.Counts {
		bar := 0
		if top > 0 {
			bar = n * widthFlag / top
		}
		s.Out.Printf("[%10.4g, %10.4g) %-*s %d", h.Edges[i], h.Edges[i+1], widthFlag, strings.Repeat("#", bar), n)
	}

	if pngFlag == "" {
		return nil
	}
	if err := figure.Histogram(pngFlag, h, col, colors); err != nil {
		return err
	}
	s.Log.Info("histogram image written", zap.String("file", pngFlag))
	return nil
}
