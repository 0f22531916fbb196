// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Package physconst provides physical constants
// and presets of celestial bodies.
//
// The values are read from an embedded catalogue
// when the package is initialized,
// and they never change during the execution.
package physconst

import (
	_ "embed"
	"fmt"
	"strings"

	"github.com/js-arias/sciops/calcerr"
	"gopkg.in/yaml.v3"
)

//go:embed catalogue.yaml
var catalogue []byte

// A Constant is a physical constant.
type Constant struct {
	Key       string  `yaml:"key"`
	Name      string  `yaml:"name"`
	Symbol    string  `yaml:"symbol"`
	Value     float64 `yaml:"value"`
	Unit      string  `yaml:"unit"`
	Reference string  `yaml:"reference"`
}

// A Body is a celestial body.
type Body struct {
	Key  string `yaml:"key"`
	Name string `yaml:"name"`

	// Mass in kg.
	Mass float64 `yaml:"mass"`

	// Mean radius in m.
	Radius float64 `yaml:"radius"`

	// Standard gravitational parameter (G·M)
	// in m^3/s^2.
	Mu float64 `yaml:"mu"`

	// Surface gravity in m/s^2.
	G float64 `yaml:"g"`
}

var (
	constants []Constant
	bodies    []Body
)

// Frequently used constants.
var (
	C  float64 // speed of light
	H  float64 // Planck constant
	KB float64 // Boltzmann constant
	NA float64 // Avogadro constant
	G  float64 // Newtonian constant of gravitation
	KE float64 // Coulomb constant
)

func init() {
	if err := load(catalogue); err != nil {
		panic(err)
	}
}

func load(data []byte) error {
	var cat struct {
		Constants []Constant `yaml:"constants"`
		Bodies    []Body     `yaml:"bodies"`
	}
	if err := yaml.Unmarshal(data, &cat); err != nil {
		return fmt.Errorf("physconst: invalid catalogue: %v", err)
	}

	keys := make(map[string]bool)
	for _, c := range cat.Constants {
		if c.Key == "" || keys[c.Key] {
			return fmt.Errorf("physconst: invalid or repeated constant key %q", c.Key)
		}
		keys[c.Key] = true
	}
	for _, b := range cat.Bodies {
		if b.Key == "" || keys[b.Key] {
			return fmt.Errorf("physconst: invalid or repeated body key %q", b.Key)
		}
		keys[b.Key] = true
	}

	constants = cat.Constants
	bodies = cat.Bodies

	for _, p := range []struct {
		key string
		v   *float64
	}{
		{"c", &C},
		{"h", &H},
		{"kb", &KB},
		{"na", &NA},
		{"gn", &G},
		{"ke", &KE},
	} {
		c, ok := constant(p.key)
		if !ok {
			return fmt.Errorf("physconst: constant %q not in catalogue", p.key)
		}
		*p.v = c.Value
	}
	return nil
}

func constant(key string) (Constant, bool) {
	for _, c := range constants {
		if c.Key == key {
			return c, true
		}
	}
	return Constant{}, false
}

// Constants returns all the constants
// in catalogue order.
func Constants() []Constant {
	cs := make([]Constant, len(constants))
	copy(cs, constants)
	return cs
}

// Lookup returns the constants that match a query.
// If the query is a constant key,
// it returns that constant,
// otherwise it returns the constants
// with the query as part of their name or symbol.
// The search is case insensitive.
func Lookup(query string) ([]Constant, error) {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return nil, calcerr.NotFoundf("empty constant query")
	}
	if c, ok := constant(q); ok {
		return []Constant{c}, nil
	}

	var cs []Constant
	for _, c := range constants {
		if strings.Contains(strings.ToLower(c.Name), q) || strings.Contains(strings.ToLower(c.Symbol), q) {
			cs = append(cs, c)
		}
	}
	if len(cs) == 0 {
		return nil, calcerr.NotFoundf("no constants matched %q", query).WithHint("see 'sciops constants list'")
	}
	return cs, nil
}

// Bodies returns all the celestial bodies
// in catalogue order.
func Bodies() []Body {
	bs := make([]Body, len(bodies))
	copy(bs, bodies)
	return bs
}

// BodyKeys returns the keys of the known bodies.
func BodyKeys() []string {
	keys := make([]string, 0, len(bodies))
	for _, b := range bodies {
		keys = append(keys, b.Key)
	}
	return keys
}

// GetBody returns a celestial body by its key
// (case insensitive).
func GetBody(name string) (Body, error) {
	key := strings.ToLower(strings.TrimSpace(name))
	for _, b := range bodies {
		if b.Key == key {
			return b, nil
		}
	}
	return Body{}, calcerr.NotFoundf("unknown body %q", name).WithHint("known bodies: " + strings.Join(BodyKeys(), ", "))
}
