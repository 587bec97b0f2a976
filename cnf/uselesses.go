// SPDX-License-Identifier: MIT
package cnf

import "github.com/mtpro/chomsky/grammar"

// EliminateUselesses prunes dead symbols in three stages:
//
//  1. Repeatedly delete every ruleless nonterminal together with the rules
//     that use it, until none is left. The start symbol is never deleted;
//     if it is ruleless the next stage removes everything else.
//  2. Delete, once, every nonterminal unreachable from the start symbol and
//     all of its rules.
//  3. Delete, once, every terminal no remaining rule uses.
//
// Running it twice in a row changes nothing the second time.
func EliminateUselesses(g *grammar.Grammar) error {
	if g == nil {
		return ErrGrammarNil
	}
	pruneRuleless(g)
	pruneUnreachable(g)
	must(g.DeleteTerminals(g.UnreferencedTerminals()))

	return nil
}

func pruneRuleless(g *grammar.Grammar) {
	for {
		start := g.StartSymbol()
		var found []grammar.Symbol
		for _, n := range g.RulelessNonterminals() {
			if n != start {
				found = append(found, n)
			}
		}
		if len(found) == 0 {
			return
		}
		for _, n := range found {
			rules, err := g.RulesReferencing(n)
			must(err)
			must(g.DeleteRules(rules))
			must(g.DeleteNonterminal(n))
		}
	}
}

func pruneUnreachable(g *grammar.Grammar) {
	unreachable := g.UnreachableNonterminals()
	for _, n := range unreachable {
		rules, err := g.RulesFor(n)
		must(err)
		must(g.DeleteRules(rules))
	}
	must(g.DeleteNonterminals(unreachable))
}
