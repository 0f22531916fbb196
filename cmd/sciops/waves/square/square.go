// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Package square implements a command to draw
// a square wave.
package square

import (
	"github.com/js-arias/command"
	"github.com/js-arias/sciops/cmd/sciops/session"
	"github.com/js-arias/sciops/figure"
	"github.com/js-arias/sciops/waves"
	"go.uber.org/zap"
)

var Command = &command.Command{
	Usage: `square [--freq <frequency>] [--samples <number>] [--duty <fraction>]
	[--height <rows>] [--png <image-file>]`,
	Short: "draw a square wave",
	Long: `
Command square samples a square wave over the interval [0, 1] and draws it
as a text plot, with zero at the middle row. The wave is 1 during the first
part of each cycle, and -1 for the rest of the cycle.

By default the wave has one cycle in the interval. Use the flag --freq to set
a different frequency, in cycles per unit time. By default the wave is 1 for
half of the cycle; use the flag --duty to set a different fraction, between
0 and 1.

By default 40 samples are taken; use the flag --samples to set a different
number of samples. Each sample is a column of the plot. Use the flag --height
to set the number of rows of the plot (default 10).

If the flag --png is defined, the wave is also drawn as an image in the
indicated PNG file.
	`,
	SetFlags: setFlags,
	Run:      run,
}

var freqFlag float64
var samplesFlag int
var dutyFlag float64
var heightFlag int
var pngFlag string

func setFlags(c *command.Command) {
	c.Flags().Float64Var(&freqFlag, "freq", 1, "")
	c.Flags().IntVar(&samplesFlag, "samples", 40, "")
	c.Flags().Float64Var(&dutyFlag, "duty", 0.5, "")
	c.Flags().IntVar(&heightFlag, "height", 10, "")
	c.Flags().StringVar(&pngFlag, "png", "", "")
}

func run(c *command.Command, _ []string) error {
	ts, ys, err := waves.Square(freqFlag, samplesFlag, dutyFlag)
	if err != nil {
		return err
	}
	rows, err := waves.Plot(ys, heightFlag)
	if err != nil {
		return err
	}

	s, err := session.Open(c)
	if err != nil {
		return err
	}
	defer s.Close()

	for _, r := range rows {
		s.Out.Printf("%s", r)
	}

	if pngFlag == "" {
		return nil
	}
	if err := figure.Line(pngFlag, ts, ys, "t", "y"); err != nil {
		return err
	}
	s.Log.Info("wave image written", zap.String("file", pngFlag))
	return nil
}
