// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Package get implements a command to search
// a physical constant.
package get

import (
	"strings"

	"github.com/js-arias/command"
	"github.com/js-arias/sciops/cmd/sciops/session"
	"github.com/js-arias/sciops/physconst"
	"github.com/js-arias/sciops/termout"
)

var Command = &command.Command{
	Usage: "get <query>",
	Short: "search a physical constant",
	Long: `
Command get searches a physical constant.

The argument of the command is the query. If the query is the key of a
constant (as shown by "sciops constants list"), that constant is printed in
full. Otherwise, the constants with the query as part of their name or symbol
are printed. The search is case insensitive.
	`,
	Run: run,
}

func run(c *command.Command, args []string) error {
	if len(args) < 1 {
		return c.UsageError("expecting a constant key or name")
	}
	q := strings.Join(args, " ")

	cs, err := physconst.Lookup(q)
	if err != nil {
		return err
	}

	s, err := session.Open(c)
	if err != nil {
		return err
	}
	defer s.Close()

	if len(cs) == 1 && cs[0].Key == strings.ToLower(strings.TrimSpace(q)) {
		k := cs[0]
		s.Out.Title(k.Key + " - " + k.Name)
		s.Out.Printf("Symbol   : %s", k.Symbol)
		s.Out.Printf("Value    : %s %s", s.Out.Value(termout.Float(k.Value, 10)), k.Unit)
		s.Out.Printf("Ref      : %s", k.Reference)
		return nil
	}

	for _, k := range cs {
		s.Out.Printf("%s - %s (%s) = %s %s", s.Out.Value(k.Key), k.Name, k.Symbol, termout.Float(k.Value, 10), k.Unit)
	}
	return nil
}
