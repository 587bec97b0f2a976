// SPDX-License-Identifier: MIT
// File: fresh.go
// Role: Allocation of unused nonterminal names from the reserved family
// produced by the grammar's FreshNamer.
//
// The live symbol set is consulted on every call; nothing is cached, since
// rewrite passes consume names between calls.
package grammar

// FreshNonterminal returns the first name namer(0), namer(1), ... that is
// neither a terminal nor a nonterminal. It does not add the name.
//
// Complexity: O(T+N) in the worst case.
func (g *Grammar) FreshNonterminal() Symbol {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.fresh()
}

// AddFreshNonterminal allocates a fresh name and adds it as a nonterminal in
// one atomic step.
func (g *Grammar) AddFreshNonterminal() (Symbol, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	n := g.fresh()
	if err := g.addNonterminal(n); err != nil {
		return "", err
	}

	return n, nil
}

func (g *Grammar) fresh() Symbol {
	for i := 0; ; i++ {
		if n := g.namer(i); n != "" && !g.hasSymbol(n) {
			return n
		}
	}
}
