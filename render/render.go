// SPDX-License-Identifier: MIT
// Package render prints a grammar as text, one rule per line:
//
//	<S> -> <A> 'c'
//	<A> -> epsilon
//
// Terminals are single-quoted and nonterminals are printed verbatim; the
// distinction is looked up in the grammar at render time. Empty right sides
// print as "epsilon".
package render

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	"github.com/mtpro/chomsky/grammar"
)

// ErrUnknownSymbol is returned for a rule symbol that is in neither set.
// A valid grammar never produces it.
var ErrUnknownSymbol = errors.New("render: symbol is neither terminal nor nonterminal")

// Epsilon is the marker printed for an empty right side.
const Epsilon = "epsilon"

// Rules writes every rule of g to w in collection order.
func Rules(w io.Writer, g *grammar.Grammar) error {
	for _, r := range g.Rules() {
		if err := rule(w, g, r); err != nil {
			return err
		}
	}

	return nil
}

// Grammar writes the start symbol line followed by the rules.
func Grammar(w io.Writer, g *grammar.Grammar) error {
	if _, err := fmt.Fprintf(w, "start: %s\n", g.StartSymbol()); err != nil {
		return err
	}

	return Rules(w, g)
}

// String renders the rules of g into a string.
func String(g *grammar.Grammar) (string, error) {
	var buf bytes.Buffer
	if err := Rules(&buf, g); err != nil {
		return "", err
	}

	return buf.String(), nil
}

func rule(w io.Writer, g *grammar.Grammar, r grammar.Rule) error {
	var buf bytes.Buffer
	buf.WriteString(string(r.Left))
	buf.WriteString(" ->")
	if len(r.Right) == 0 {
		buf.WriteString(" " + Epsilon)
	}
	for _, s := range r.Right {
		buf.WriteByte(' ')
		switch {
		case g.IsTerminal(s):
			buf.WriteString("'" + string(s) + "'")
		case g.IsNonterminal(s):
			buf.WriteString(string(s))
		default:
			return fmt.Errorf("render: rule %s: %q: %w", r, s, ErrUnknownSymbol)
		}
	}
	buf.WriteByte('\n')
	_, err := w.Write(buf.Bytes())

	return err
}
