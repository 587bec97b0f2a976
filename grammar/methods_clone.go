// SPDX-License-Identifier: MIT
// File: methods_clone.go
// Role: Deep copy of a grammar, used for non-destructive conversion.

package grammar

// Clone returns an independent deep copy: same alphabet, nonterminals, rules
// (in the same order), start symbol and fresh-name pattern.
//
// Complexity: O(T + N + R·k).
func (g *Grammar) Clone() *Grammar {
	g.mu.RLock()
	defer g.mu.RUnlock()

	c := &Grammar{
		namer:        g.namer,
		terminals:    append([]Symbol(nil), g.terminals...),
		nonterminals: append([]Symbol(nil), g.nonterminals...),
		isTerminal:   make(map[Symbol]struct{}, len(g.isTerminal)),
		isNonterm:    make(map[Symbol]struct{}, len(g.isNonterm)),
		ruleIndex:    make(map[string]struct{}, len(g.ruleIndex)),
		refs:         make(map[Symbol]int, len(g.refs)),
		start:        g.start,
	}
	for s := range g.isTerminal {
		c.isTerminal[s] = struct{}{}
	}
	for s := range g.isNonterm {
		c.isNonterm[s] = struct{}{}
	}
	for _, r := range g.rules {
		// source invariants hold, so addRule cannot fail here
		if err := c.addRule(r); err != nil {
			panic(err)
		}
	}

	return c
}
