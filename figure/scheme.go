// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

package figure

import (
	"image/color"
	"sort"
	"strings"

	"github.com/js-arias/blind"
	"github.com/js-arias/sciops/calcerr"
)

// Gradienter returns a color for a value in [0, 1].
type Gradienter interface {
	Gradient(v float64) color.Color
}

// GrayScale returns a gray scale
// between 200 (light gray)
// and 0 (black).
type GrayScale struct{}

func (g GrayScale) Gradient(v float64) color.Color {
	v = clamp(v)
	c := 200 - uint8(v*200)
	return color.RGBA{c, c, c, 255}
}

// Incandescent is the incandescent color scheme
// of Paul Tol
// <https://personal.sron.nl/~pault/#fig:scheme_incandescent>.
type Incandescent struct{}

func (i Incandescent) Gradient(v float64) color.Color {
	return blind.Sequential(blind.Incandescent, clamp(v))
}

// Iridescent is the iridescent color scheme
// of Paul Tol
// <https://personal.sron.nl/~pault/#fig:scheme_iridescent>.
type Iridescent struct{}

func (i Iridescent) Gradient(v float64) color.Color {
	return blind.Sequential(blind.Iridescent, clamp(v))
}

// RainbowPurpleToRed is the rainbow color scheme
// of Paul Tol
// <https://personal.sron.nl/~pault/#fig:scheme_rainbow_smooth>
// starting at purple and ending at red.
type RainbowPurpleToRed struct{}

func (r RainbowPurpleToRed) Gradient(v float64) color.Color {
	return blind.Sequential(blind.RainbowPurpleToRed, clamp(v))
}

var schemes = map[string]Gradienter{
	"gray":         GrayScale{},
	"incandescent": Incandescent{},
	"iridescent":   Iridescent{},
	"rainbow":      RainbowPurpleToRed{},
}

// Schemes returns the names of the color schemes.
func Schemes() []string {
	names := make([]string, 0, len(schemes))
	for n := range schemes {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// Scheme returns a color scheme by its name.
func Scheme(name string) (Gradienter, error) {
	g, ok := schemes[strings.ToLower(name)]
	if !ok {
		return nil, calcerr.NotFoundf("unknown color scheme %q", name).WithHint("valid schemes: " + strings.Join(Schemes(), ", "))
	}
	return g, nil
}

func clamp(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
