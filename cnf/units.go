// SPDX-License-Identifier: MIT
package cnf

import "github.com/mtpro/chomsky/grammar"

// EliminateUnits removes every unit rule A -> B (B a nonterminal).
//
// Each nonterminal A receives a copy A -> γ of every non-unit rule B -> γ of
// every B reachable from A through unit rules (its unit closure); rules
// already present are not added twice. All unit rules are then deleted.
//
// The result equals repeatedly copying B's rules into A for the first unit
// rule A -> B and deleting it. Cyclic chains such as A -> B, B -> A terminate.
func EliminateUnits(g *grammar.Grammar) error {
	if g == nil {
		return ErrGrammarNil
	}
	rules := g.Rules()

	var units []grammar.Rule
	unitsOf := make(map[grammar.Symbol][]grammar.Symbol)
	nonUnitsOf := make(map[grammar.Symbol][]grammar.Rule)
	for _, r := range rules {
		if isUnit(g, r) {
			units = append(units, r)
			unitsOf[r.Left] = append(unitsOf[r.Left], r.Right[0])
			continue
		}
		nonUnitsOf[r.Left] = append(nonUnitsOf[r.Left], r)
	}
	if len(units) == 0 {
		return nil
	}

	for _, a := range g.Nonterminals() {
		for _, b := range unitClosure(a, unitsOf) {
			for _, br := range nonUnitsOf[b] {
				addIfMissing(g, grammar.Rule{Left: a, Right: br.Right})
			}
		}
	}
	must(g.DeleteRules(units))

	return nil
}

// unitClosure lists, in breadth-first order, the nonterminals other than a
// reachable from a by following unit rules.
func unitClosure(a grammar.Symbol, unitsOf map[grammar.Symbol][]grammar.Symbol) []grammar.Symbol {
	visited := map[grammar.Symbol]bool{a: true}
	queue := []grammar.Symbol{a}
	var out []grammar.Symbol
	for len(queue) > 0 {
		n := queue[0]
		queue = queue[1:]
		for _, b := range unitsOf[n] {
			if visited[b] {
				continue
			}
			visited[b] = true
			out = append(out, b)
			queue = append(queue, b)
		}
	}

	return out
}

func isUnit(g *grammar.Grammar, r grammar.Rule) bool {
	return len(r.Right) == 1 && g.IsNonterminal(r.Right[0])
}
