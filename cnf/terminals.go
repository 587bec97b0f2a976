// SPDX-License-Identifier: MIT
package cnf

import "github.com/mtpro/chomsky/grammar"

// EliminateTerminals rewrites every rule whose right side has two or more
// symbols and contains a terminal, so that terminals only appear alone.
//
// Each round finds the first such terminal t in rule order, allocates a fresh
// Z with Z -> t, replaces every occurrence of t in every offending rule by Z,
// and rescans. It stops when no rule of length ≥ 2 holds a terminal.
func EliminateTerminals(g *grammar.Grammar) error {
	if g == nil {
		return ErrGrammarNil
	}
	for {
		t, ok := findMixedTerminal(g)
		if !ok {
			return nil
		}
		isolateTerminal(g, t)
	}
}

// findMixedTerminal returns the first terminal found inside a right side of
// length ≥ 2.
func findMixedTerminal(g *grammar.Grammar) (grammar.Symbol, bool) {
	for _, r := range g.Rules() {
		if len(r.Right) < 2 {
			continue
		}
		for _, s := range r.Right {
			if g.IsTerminal(s) {
				return s, true
			}
		}
	}

	return "", false
}

// isolateTerminal introduces Z -> t and substitutes Z for t in every rule of
// length ≥ 2. Z is fresh, so no rewritten rule can collide with an existing one.
func isolateTerminal(g *grammar.Grammar, t grammar.Symbol) {
	z := mustFresh(g)
	must(g.AddRule(grammar.NewRule(z, t)))

	for _, r := range g.Rules() {
		if len(r.Right) < 2 || !r.References(t) {
			continue
		}
		nr := r.Clone()
		for i, s := range nr.Right {
			if s == t {
				nr.Right[i] = z
			}
		}
		must(g.AddRule(nr))
		must(g.DeleteRule(r))
	}
}
