// SPDX-License-Identifier: MIT
package cnf

import (
	"strconv"
	"strings"

	"github.com/mtpro/chomsky/grammar"
)

// EliminateEpsilons removes every rule A -> ε whose left side is not the
// start symbol.
//
// For such a rule, every rule L -> γ in the grammar gains L -> γ' for each
// γ' obtained by deleting some non-empty subset of the occurrences of A in γ
// (order of the remaining symbols kept). L -> L is never added, nor is any
// rule already present. Then A -> ε is deleted and the scan restarts.
//
// A nonterminal whose epsilon rule has been removed already is nullable and
// has been dropped from every rule; L -> ε is not re-synthesized for it. This
// keeps cyclic nullable chains (A -> C, C -> A) from looping.
//
// The expansion is exponential in the number of occurrences of A in one
// right side. After EliminateMultiples that number is at most two.
func EliminateEpsilons(g *grammar.Grammar) error {
	if g == nil {
		return ErrGrammarNil
	}
	eliminated := make(map[grammar.Symbol]bool)
	for {
		r, ok := findEpsilon(g)
		if !ok {
			return nil
		}
		a := r.Left
		eliminated[a] = true

		for _, rule := range g.Rules() {
			for _, right := range dropCombos(rule.Right, a) {
				nr := grammar.Rule{Left: rule.Left, Right: right}
				if isSelfLoop(nr) {
					continue
				}
				if nr.IsEpsilon() && eliminated[nr.Left] {
					continue
				}
				addIfMissing(g, nr)
			}
		}
		must(g.DeleteRule(r))
	}
}

// findEpsilon returns the first epsilon rule whose left side is not the start symbol.
func findEpsilon(g *grammar.Grammar) (grammar.Rule, bool) {
	start := g.StartSymbol()
	for _, r := range g.Rules() {
		if r.IsEpsilon() && r.Left != start {
			return r, true
		}
	}

	return grammar.Rule{}, false
}

// dropCombos lists the distinct sequences obtained from right by deleting a
// non-empty subset of the occurrences of a. The identity (nothing deleted) is
// left out because it is the rule itself.
//
// For right = [A b A] and a = A the result is [A b], [b A], [b].
func dropCombos(right []grammar.Symbol, a grammar.Symbol) [][]grammar.Symbol {
	combos := [][]grammar.Symbol{{}}
	for _, s := range right {
		next := make([][]grammar.Symbol, 0, 2*len(combos))
		for _, c := range combos {
			// keeping s first makes combos[0] the identity throughout
			next = append(next, appendSymbol(c, s))
			if s == a {
				next = append(next, appendSymbol(c))
			}
		}
		combos = next
	}

	seen := make(map[string]bool, len(combos))
	out := make([][]grammar.Symbol, 0, len(combos)-1)
	for _, c := range combos[1:] {
		k := seqKey(c)
		if seen[k] {
			continue
		}
		seen[k] = true
		out = append(out, c)
	}

	return out
}

// appendSymbol returns a new slice holding c followed by extra.
func appendSymbol(c []grammar.Symbol, extra ...grammar.Symbol) []grammar.Symbol {
	out := make([]grammar.Symbol, 0, len(c)+len(extra))
	out = append(out, c...)

	return append(out, extra...)
}

func seqKey(c []grammar.Symbol) string {
	var b strings.Builder
	for _, s := range c {
		b.WriteString(strconv.Quote(string(s)))
	}

	return b.String()
}
