// SPDX-License-Identifier: MIT
// Package grammar_test contains fixtures shared by the grammar tests.
package grammar_test

import (
	"github.com/mtpro/chomsky/grammar"
)

// Common symbols used across grammar tests.
const (
	SymS grammar.Symbol = "S"
	SymA grammar.Symbol = "A"
	SymB grammar.Symbol = "B"
	SymC grammar.Symbol = "C"
	SymD grammar.Symbol = "D"

	TermA grammar.Symbol = "a"
	TermB grammar.Symbol = "b"
	TermC grammar.Symbol = "c"

	SymMissing grammar.Symbol = "X"
	SymEmpty   grammar.Symbol = ""
)

// syms is shorthand for a symbol slice literal.
func syms(ss ...grammar.Symbol) []grammar.Symbol { return ss }

// newABC builds
//
//	S -> A B
//	A -> a | ε
//	B -> b B | c
//	D -> a           (unreachable)
//
// with an unused terminal "d".
func newABC() *grammar.Grammar {
	return grammar.MustNew(SymS,
		syms(TermA, TermB, TermC, "d"),
		syms(SymA, SymB, SymD),
		[]grammar.Rule{
			grammar.NewRule(SymS, SymA, SymB),
			grammar.NewRule(SymA, TermA),
			grammar.NewRule(SymA),
			grammar.NewRule(SymB, TermB, SymB),
			grammar.NewRule(SymB, TermC),
			grammar.NewRule(SymD, TermA),
		})
}

// snapshot captures the observable state for no-mutation checks.
type snapshot struct {
	terminals    []grammar.Symbol
	nonterminals []grammar.Symbol
	rules        []grammar.Rule
	start        grammar.Symbol
}

func snap(g *grammar.Grammar) snapshot {
	return snapshot{
		terminals:    g.Terminals(),
		nonterminals: g.Nonterminals(),
		rules:        g.Rules(),
		start:        g.StartSymbol(),
	}
}
