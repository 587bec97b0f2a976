// SPDX-License-Identifier: MIT
// File: reach.go
// Role: Breadth-first reachability over the "appears on the right side of a
// rule for" relation between nonterminals, seeded with the start symbol.
//
// Determinism:
//   - ReachableNonterminals lists symbols in discovery order: the start
//     symbol first, then the nonterminals of its rules left to right, and so on.
package grammar

// walker holds the mutable state of one reachability run. It is only used
// while g.mu is held for reading.
type walker struct {
	g       *Grammar
	byLeft  map[Symbol][]Rule
	queue   []Symbol
	visited map[Symbol]bool
	order   []Symbol
}

// ReachableNonterminals returns every nonterminal derivable in zero or more
// steps from the start symbol, computed as a worklist fixed point: each
// dequeued nonterminal contributes the nonterminals on the right sides of its
// own rules, each enqueued at most once.
//
// Complexity: O(N + R·k).
func (g *Grammar) ReachableNonterminals() []Symbol {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.reachable()
}

// UnreachableNonterminals returns the nonterminals, in insertion order, that
// ReachableNonterminals does not list.
//
// Complexity: O(N + R·k).
func (g *Grammar) UnreachableNonterminals() []Symbol {
	g.mu.RLock()
	defer g.mu.RUnlock()

	seen := make(map[Symbol]bool, len(g.nonterminals))
	for _, n := range g.reachable() {
		seen[n] = true
	}
	var out []Symbol
	for _, n := range g.nonterminals {
		if !seen[n] {
			out = append(out, n)
		}
	}

	return out
}

func (g *Grammar) reachable() []Symbol {
	w := &walker{
		g:       g,
		byLeft:  make(map[Symbol][]Rule, len(g.nonterminals)),
		queue:   make([]Symbol, 0, len(g.nonterminals)),
		visited: make(map[Symbol]bool, len(g.nonterminals)),
		order:   make([]Symbol, 0, len(g.nonterminals)),
	}
	for _, r := range g.rules {
		w.byLeft[r.Left] = append(w.byLeft[r.Left], r)
	}
	w.enqueue(g.start)
	w.loop()

	return w.order
}

// enqueue marks n visited and schedules it.
func (w *walker) enqueue(n Symbol) {
	w.visited[n] = true
	w.order = append(w.order, n)
	w.queue = append(w.queue, n)
}

// loop drains the queue, enqueueing every unseen nonterminal found on the
// right side of a dequeued nonterminal's rules.
func (w *walker) loop() {
	for len(w.queue) > 0 {
		n := w.queue[0]
		w.queue = w.queue[1:]
		for _, r := range w.byLeft[n] {
			for _, s := range r.Right {
				if _, ok := w.g.isNonterm[s]; !ok {
					continue
				}
				if !w.visited[s] {
					w.enqueue(s)
				}
			}
		}
	}
}
