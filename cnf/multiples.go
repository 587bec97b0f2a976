// SPDX-License-Identifier: MIT
package cnf

import "github.com/mtpro/chomsky/grammar"

// EliminateMultiples splits every rule A -> s1 s2 ... sk with k > 2 into
// A -> s1 Z and Z -> s2 ... sk for a fresh Z, rescanning after each split
// until every right side has at most two symbols.
func EliminateMultiples(g *grammar.Grammar) error {
	if g == nil {
		return ErrGrammarNil
	}
	for {
		r, ok := findLong(g)
		if !ok {
			return nil
		}
		must(g.DeleteRule(r))
		z := mustFresh(g)
		must(g.AddRule(grammar.NewRule(r.Left, r.Right[0], z)))
		must(g.AddRule(grammar.Rule{Left: z, Right: r.Right[1:]}))
	}
}

func findLong(g *grammar.Grammar) (grammar.Rule, bool) {
	for _, r := range g.Rules() {
		if len(r.Right) > 2 {
			return r, true
		}
	}

	return grammar.Rule{}, false
}
