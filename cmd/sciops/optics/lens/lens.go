// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Package lens implements a command to calculate
// the image formed by a thin lens.
package lens

import (
	"fmt"

	"github.com/js-arias/command"
	"github.com/js-arias/sciops/cmd/sciops/args"
	"github.com/js-arias/sciops/cmd/sciops/session"
	"github.com/js-arias/sciops/optics"
)

var Command = &command.Command{
	Usage: "lens <focal-length> <object-distance>",
	Short: "calculate the image formed by a thin lens",
	Long: `
Command lens uses the thin lens equation, 1/f = 1/do + 1/di, to calculate the
distance and the magnification (m = -di/do) of the image of an object.

The first argument of the command is the focal length, and the second is the
distance of the object, positive if it is in front of the lens. Both values
must be in the same units. A diverging lens has a negative focal length; in
that case precede the arguments with "--", for example:

	sciops optics lens -- -10 25
	`,
	Run: run,
}

func run(c *command.Command, a []string) error {
	if len(a) < 2 {
		return c.UsageError("expecting focal length and object distance")
	}
	f, err := args.Float("focal length", a[0])
	if err != nil {
		return err
	}
	do, err := args.Float("object distance", a[1])
	if err != nil {
		return err
	}
	img, err := optics.ThinLens(f, do)
	if err != nil {
		return err
	}

	s, err := session.Open(c)
	if err != nil {
		return err
	}
	defer s.Close()

	if img.AtInfinity {
		s.Out.Note("Image at infinity (collimated output).")
		return nil
	}

	kind := "virtual"
	if img.Real {
		kind = "real"
	}
	orient := "upright"
	if img.Inverted {
		orient = "inverted"
	}
	s.Out.Printf("d_i = %s (image distance, %s)", s.Out.Value(fmt.Sprintf("%.6g", img.Distance)), kind)
	s.Out.Printf("m = %s (magnification, %s)", s.Out.Value(fmt.Sprintf("%.6g", img.Magnification)), orient)
	return nil
}
