// SPDX-License-Identifier: MIT
package cnf

import (
	"fmt"

	"github.com/mtpro/chomsky/grammar"
)

// Validate checks that every rule of g has the form A -> t (t a terminal) or
// A -> B C (B, C nonterminals), except for S -> ε on the start symbol S, which
// is allowed only while S appears on no right side.
//
// The first offending rule is reported wrapped in ErrNotCNF.
func Validate(g *grammar.Grammar) error {
	if g == nil {
		return ErrGrammarNil
	}
	start := g.StartSymbol()
	rules := g.Rules()

	startEpsilon, startOnRight := false, false
	for _, r := range rules {
		switch len(r.Right) {
		case 0:
			if r.Left != start {
				return fmt.Errorf("%w: %s: epsilon rule on non-start symbol", ErrNotCNF, r)
			}
			startEpsilon = true
		case 1:
			if !g.IsTerminal(r.Right[0]) {
				return fmt.Errorf("%w: %s: single symbol is not a terminal", ErrNotCNF, r)
			}
		case 2:
			if !g.IsNonterminal(r.Right[0]) || !g.IsNonterminal(r.Right[1]) {
				return fmt.Errorf("%w: %s: pair contains a terminal", ErrNotCNF, r)
			}
		default:
			return fmt.Errorf("%w: %s: right side longer than two", ErrNotCNF, r)
		}
		if r.References(start) {
			startOnRight = true
		}
	}
	if startEpsilon && startOnRight {
		return fmt.Errorf("%w: start symbol %q is nullable and used on a right side", ErrNotCNF, start)
	}

	return nil
}

// IsCNF reports whether Validate accepts g.
func IsCNF(g *grammar.Grammar) bool {
	return Validate(g) == nil
}
