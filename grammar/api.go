// SPDX-License-Identifier: MIT
//
// File: api.go
// Role: Read-only accessors over the four core collections plus Stats.
// Policy:
//   - Every accessor returns a copy; callers may mutate results freely.
//   - Orders are insertion orders, so renderers produce stable output.

package grammar

// Terminals returns the alphabet in insertion order. O(T).
func (g *Grammar) Terminals() []Symbol {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return append([]Symbol(nil), g.terminals...)
}

// Nonterminals returns the nonterminal set in insertion order. O(N).
func (g *Grammar) Nonterminals() []Symbol {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return append([]Symbol(nil), g.nonterminals...)
}

// Symbols returns the alphabet followed by the nonterminals. O(T+N).
func (g *Grammar) Symbols() []Symbol {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make([]Symbol, 0, len(g.terminals)+len(g.nonterminals))
	out = append(out, g.terminals...)

	return append(out, g.nonterminals...)
}

// Rules returns deep copies of all rules in collection order. O(R·k).
func (g *Grammar) Rules() []Rule {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return cloneRules(g.rules)
}

// RuleCount returns the number of rules. O(1).
func (g *Grammar) RuleCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.rules)
}

// StartSymbol returns the current start symbol. O(1).
func (g *Grammar) StartSymbol() Symbol {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.start
}

// IsTerminal reports alphabet membership. O(1).
func (g *Grammar) IsTerminal(s Symbol) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()
	_, ok := g.isTerminal[s]

	return ok
}

// IsNonterminal reports nonterminal membership. O(1).
func (g *Grammar) IsNonterminal(s Symbol) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()
	_, ok := g.isNonterm[s]

	return ok
}

// HasSymbol reports membership in alphabet ∪ nonterminals. O(1).
func (g *Grammar) HasSymbol(s Symbol) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.hasSymbol(s)
}

func (g *Grammar) hasSymbol(s Symbol) bool {
	if _, ok := g.isTerminal[s]; ok {
		return true
	}
	_, ok := g.isNonterm[s]

	return ok
}

// Stats is a snapshot of collection sizes and rule shapes.
type Stats struct {
	Terminals    int
	Nonterminals int
	Rules        int

	EpsilonRules int // empty right side
	UnitRules    int // right side is a single nonterminal
	LongRules    int // right side longer than two symbols
}

// Stats produces a consistent snapshot of sizes and rule-shape counters.
//
// Complexity: O(R).
func (g *Grammar) Stats() Stats {
	g.mu.RLock()
	defer g.mu.RUnlock()

	st := Stats{
		Terminals:    len(g.terminals),
		Nonterminals: len(g.nonterminals),
		Rules:        len(g.rules),
	}
	for _, r := range g.rules {
		switch n := len(r.Right); {
		case n == 0:
			st.EpsilonRules++
		case n == 1:
			if _, ok := g.isNonterm[r.Right[0]]; ok {
				st.UnitRules++
			}
		case n > 2:
			st.LongRules++
		}
	}

	return st
}

func cloneRules(rs []Rule) []Rule {
	out := make([]Rule, len(rs))
	for i, r := range rs {
		out[i] = r.Clone()
	}

	return out
}
