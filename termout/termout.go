// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Package termout implements the formatted output
// of sciops commands.
package termout

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"
)

var (
	titleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("6")).
			Bold(true)
	valueStyle = lipgloss.NewStyle().Bold(true)
	warnStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("3"))
)

// A Printer writes command results.
type Printer struct {
	w     io.Writer
	color bool
}

// New returns a printer that writes into w.
// If color is true,
// titles and values are styled.
func New(w io.Writer, color bool) *Printer {
	return &Printer{w: w, color: color}
}

// Printf writes a formatted line.
// A new line is added if the format does not end with one.
func (p *Printer) Printf(format string, a ...any) {
	if !strings.HasSuffix(format, "\n") {
		format += "\n"
	}
	fmt.Fprintf(p.w, format, a...)
}

// Value returns s highlighted as a result value.
func (p *Printer) Value(s string) string {
	if !p.color {
		return s
	}
	return valueStyle.Render(s)
}

// Title writes a title line.
func (p *Printer) Title(s string) {
	if p.color {
		s = titleStyle.Render(s)
	}
	fmt.Fprintln(p.w, s)
}

// Note writes a notice line,
// for example an empty result.
func (p *Printer) Note(format string, a ...any) {
	s := fmt.Sprintf(format, a...)
	if p.color {
		s = warnStyle.Render(s)
	}
	fmt.Fprintln(p.w, s)
}

// Table writes a table with aligned columns.
// If the title is not empty,
// it is written before the table.
func (p *Printer) Table(title string, head []string, rows [][]string) error {
	if title != "" {
		p.Title(title)
	}

	tw := tabwriter.NewWriter(p.w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, strings.Join(head, "\t"))
	rule := make([]string, len(head))
	for i, h := range head {
		rule[i] = strings.Repeat("-", len([]rune(h)))
	}
	fmt.Fprintln(tw, strings.Join(rule, "\t"))
	for _, r := range rows {
		fmt.Fprintln(tw, strings.Join(r, "\t"))
	}
	return tw.Flush()
}

// Markdown writes a markdown document.
// If color is enabled,
// the document is rendered for the terminal;
// otherwise it is written as is.
func (p *Printer) Markdown(doc string) error {
	if !p.color {
		_, err := io.WriteString(p.w, doc)
		return err
	}

	r, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(80),
	)
	if err != nil {
		return err
	}
	out, err := r.Render(doc)
	if err != nil {
		return err
	}
	_, err = io.WriteString(p.w, out)
	return err
}

// Float formats a value with the given significant digits,
// in the manner of the %g verb.
func Float(v float64, digits int) string {
	return fmt.Sprintf("%.*g", digits, v)
}
