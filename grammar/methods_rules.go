// SPDX-License-Identifier: MIT
// File: methods_rules.go
// Role: Rule lifecycle: AddRule/DeleteRule (+ batch variants) and HasRule.
//
// Determinism:
//   - Rules keep insertion order; DeleteRule preserves the relative order of
//     the remaining rules.
//
// Concurrency:
//   - Mutations under g.mu write lock, HasRule under read lock.
package grammar

import "fmt"

// AddRule appends a copy of r to the rule collection.
//
// Errors:
//   - ErrNonterminalNotFound: r.Left is not a nonterminal.
//   - ErrSymbolNotFound: some symbol of r.Right is neither terminal nor nonterminal.
//   - ErrRuleExists: an equal rule is already present.
//
// Complexity: O(k) where k = len(r.Right).
func (g *Grammar) AddRule(r Rule) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	return g.addRule(r)
}

// addRule is AddRule without locking.
func (g *Grammar) addRule(r Rule) error {
	if _, ok := g.isNonterm[r.Left]; !ok {
		return fmt.Errorf("grammar: AddRule(%s): left %q: %w", r, r.Left, ErrNonterminalNotFound)
	}
	for _, s := range r.Right {
		if !g.hasSymbol(s) {
			return fmt.Errorf("grammar: AddRule(%s): right %q: %w", r, s, ErrSymbolNotFound)
		}
	}
	k := r.key()
	if _, ok := g.ruleIndex[k]; ok {
		return fmt.Errorf("grammar: AddRule(%s): %w", r, ErrRuleExists)
	}

	r = r.Clone()
	g.rules = append(g.rules, r)
	g.ruleIndex[k] = struct{}{}
	for _, s := range distinctSymbols(r) {
		g.refs[s]++
	}

	return nil
}

// AddRules applies AddRule to each element in order and stops at the first error.
func (g *Grammar) AddRules(rs []Rule) error {
	for _, r := range rs {
		if err := g.AddRule(r); err != nil {
			return err
		}
	}

	return nil
}

// DeleteRule removes the rule equal to r.
//
// Errors:
//   - ErrRuleNotFound: no equal rule is present.
//
// Complexity: O(R) to locate and compact the ordered collection.
func (g *Grammar) DeleteRule(r Rule) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	k := r.key()
	if _, ok := g.ruleIndex[k]; !ok {
		return fmt.Errorf("grammar: DeleteRule(%s): %w", r, ErrRuleNotFound)
	}
	for i := range g.rules {
		if g.rules[i].Equal(r) {
			g.rules = append(g.rules[:i], g.rules[i+1:]...)
			break
		}
	}
	delete(g.ruleIndex, k)
	for _, s := range distinctSymbols(r) {
		if g.refs[s]--; g.refs[s] == 0 {
			delete(g.refs, s)
		}
	}

	return nil
}

// DeleteRules applies DeleteRule to each element in order and stops at the
// first error.
func (g *Grammar) DeleteRules(rs []Rule) error {
	for _, r := range rs {
		if err := g.DeleteRule(r); err != nil {
			return err
		}
	}

	return nil
}

// HasRule reports whether a rule equal to r is present. O(k).
func (g *Grammar) HasRule(r Rule) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()
	_, ok := g.ruleIndex[r.key()]

	return ok
}

// distinctSymbols lists the symbols r mentions, each once.
func distinctSymbols(r Rule) []Symbol {
	out := make([]Symbol, 0, len(r.Right)+1)
	out = append(out, r.Left)
	for _, s := range r.Right {
		dup := false
		for _, o := range out {
			if o == s {
				dup = true
				break
			}
		}
		if !dup {
			out = append(out, s)
		}
	}

	return out
}
