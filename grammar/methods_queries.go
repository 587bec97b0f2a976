// SPDX-License-Identifier: MIT
// File: methods_queries.go
// Role: Derived read-only facts: reference checks, rules by left side or by
// right-side occurrence, ruleless nonterminals, (un)referenced terminals.
//
// Determinism:
//   - Every slice result follows rule order or symbol insertion order.
package grammar

import "fmt"

// ReferencesTerminal reports whether t is a terminal used on the right side
// of some rule. O(1).
func (g *Grammar) ReferencesTerminal(t Symbol) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	if _, ok := g.isTerminal[t]; !ok {
		return false
	}

	return g.refs[t] > 0
}

// ReferencesNonterminal reports whether n is a nonterminal used as the left
// side or on the right side of some rule. O(1).
func (g *Grammar) ReferencesNonterminal(n Symbol) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	if _, ok := g.isNonterm[n]; !ok {
		return false
	}

	return g.refs[n] > 0
}

// RulesFor returns the rules whose left side is n.
//
// Errors:
//   - ErrNonterminalNotFound: n is not a nonterminal.
//
// Complexity: O(R).
func (g *Grammar) RulesFor(n Symbol) ([]Rule, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	if _, ok := g.isNonterm[n]; !ok {
		return nil, fmt.Errorf("grammar: RulesFor(%q): %w", n, ErrNonterminalNotFound)
	}

	return g.rulesFor(n), nil
}

func (g *Grammar) rulesFor(n Symbol) []Rule {
	var out []Rule
	for _, r := range g.rules {
		if r.Left == n {
			out = append(out, r.Clone())
		}
	}

	return out
}

// RulesReferencing returns the rules whose right side contains s.
//
// Errors:
//   - ErrSymbolNotFound: s is neither a terminal nor a nonterminal.
//
// Complexity: O(R·k).
func (g *Grammar) RulesReferencing(s Symbol) ([]Rule, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	if !g.hasSymbol(s) {
		return nil, fmt.Errorf("grammar: RulesReferencing(%q): %w", s, ErrSymbolNotFound)
	}
	var out []Rule
	for _, r := range g.rules {
		if r.References(s) {
			out = append(out, r.Clone())
		}
	}

	return out, nil
}

// RulelessNonterminals returns the nonterminals that are the left side of no rule.
//
// Complexity: O(N + R).
func (g *Grammar) RulelessNonterminals() []Symbol {
	g.mu.RLock()
	defer g.mu.RUnlock()

	hasRule := make(map[Symbol]struct{}, len(g.nonterminals))
	for _, r := range g.rules {
		hasRule[r.Left] = struct{}{}
	}
	var out []Symbol
	for _, n := range g.nonterminals {
		if _, ok := hasRule[n]; !ok {
			out = append(out, n)
		}
	}

	return out
}

// ReferencedTerminals returns the terminals used by at least one rule. O(T).
func (g *Grammar) ReferencedTerminals() []Symbol {
	return g.filterTerminals(true)
}

// UnreferencedTerminals returns the terminals used by no rule. O(T).
func (g *Grammar) UnreferencedTerminals() []Symbol {
	return g.filterTerminals(false)
}

func (g *Grammar) filterTerminals(referenced bool) []Symbol {
	g.mu.RLock()
	defer g.mu.RUnlock()

	var out []Symbol
	for _, t := range g.terminals {
		if (g.refs[t] > 0) == referenced {
			out = append(out, t)
		}
	}

	return out
}
