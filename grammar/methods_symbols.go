// SPDX-License-Identifier: MIT
// File: methods_symbols.go
// Role: Terminal and nonterminal lifecycle, start symbol management.
//
// Determinism:
//   - Terminals() and Nonterminals() preserve insertion order.
//
// Concurrency:
//   - Each exported method holds g.mu for its whole duration.
//   - Batch variants lock per element, so a failure on element k leaves
//     elements before k applied.
package grammar

import "fmt"

// AddTerminal adds t to the alphabet.
//
// Errors:
//   - ErrEmptySymbol: t == "".
//   - ErrTerminalExists: t is already a terminal.
//   - ErrNonterminalExists: t is already a nonterminal.
//
// Complexity: O(1) amortized.
func (g *Grammar) AddTerminal(t Symbol) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	if t == "" {
		return fmt.Errorf("grammar: AddTerminal(%q): %w", t, ErrEmptySymbol)
	}
	if _, ok := g.isTerminal[t]; ok {
		return fmt.Errorf("grammar: AddTerminal(%q): %w", t, ErrTerminalExists)
	}
	if _, ok := g.isNonterm[t]; ok {
		return fmt.Errorf("grammar: AddTerminal(%q): %w", t, ErrNonterminalExists)
	}
	g.terminals = append(g.terminals, t)
	g.isTerminal[t] = struct{}{}

	return nil
}

// AddTerminals applies AddTerminal to each element in order and stops at the
// first error.
func (g *Grammar) AddTerminals(ts []Symbol) error {
	for _, t := range ts {
		if err := g.AddTerminal(t); err != nil {
			return err
		}
	}

	return nil
}

// DeleteTerminal removes t from the alphabet.
//
// Errors:
//   - ErrTerminalNotFound: t is not a terminal.
//   - ErrSymbolReferenced: some rule has t on its right side.
//
// Complexity: O(T) to compact the ordered alphabet.
func (g *Grammar) DeleteTerminal(t Symbol) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	if _, ok := g.isTerminal[t]; !ok {
		return fmt.Errorf("grammar: DeleteTerminal(%q): %w", t, ErrTerminalNotFound)
	}
	if g.refs[t] > 0 {
		return fmt.Errorf("grammar: DeleteTerminal(%q): %w", t, ErrSymbolReferenced)
	}
	g.terminals = removeSymbol(g.terminals, t)
	delete(g.isTerminal, t)

	return nil
}

// DeleteTerminals applies DeleteTerminal to each element in order and stops
// at the first error.
func (g *Grammar) DeleteTerminals(ts []Symbol) error {
	for _, t := range ts {
		if err := g.DeleteTerminal(t); err != nil {
			return err
		}
	}

	return nil
}

// AddNonterminal adds n to the nonterminal set.
//
// Errors:
//   - ErrEmptySymbol: n == "".
//   - ErrTerminalExists: n is already a terminal.
//   - ErrNonterminalExists: n is already a nonterminal.
//
// Complexity: O(1) amortized.
func (g *Grammar) AddNonterminal(n Symbol) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	return g.addNonterminal(n)
}

// addNonterminal is AddNonterminal without locking.
func (g *Grammar) addNonterminal(n Symbol) error {
	if n == "" {
		return fmt.Errorf("grammar: AddNonterminal(%q): %w", n, ErrEmptySymbol)
	}
	if _, ok := g.isTerminal[n]; ok {
		return fmt.Errorf("grammar: AddNonterminal(%q): %w", n, ErrTerminalExists)
	}
	if _, ok := g.isNonterm[n]; ok {
		return fmt.Errorf("grammar: AddNonterminal(%q): %w", n, ErrNonterminalExists)
	}
	g.nonterminals = append(g.nonterminals, n)
	g.isNonterm[n] = struct{}{}

	return nil
}

// AddNonterminals applies AddNonterminal to each element in order and stops
// at the first error.
func (g *Grammar) AddNonterminals(ns []Symbol) error {
	for _, n := range ns {
		if err := g.AddNonterminal(n); err != nil {
			return err
		}
	}

	return nil
}

// DeleteNonterminal removes n from the nonterminal set.
//
// Errors:
//   - ErrNonterminalNotFound: n is not a nonterminal.
//   - ErrSymbolReferenced: some rule has n as its left side or on its right side.
//   - ErrStartSymbol: n is the current start symbol.
//
// Complexity: O(N) to compact the ordered nonterminal set.
func (g *Grammar) DeleteNonterminal(n Symbol) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	if _, ok := g.isNonterm[n]; !ok {
		return fmt.Errorf("grammar: DeleteNonterminal(%q): %w", n, ErrNonterminalNotFound)
	}
	if g.refs[n] > 0 {
		return fmt.Errorf("grammar: DeleteNonterminal(%q): %w", n, ErrSymbolReferenced)
	}
	if n == g.start {
		return fmt.Errorf("grammar: DeleteNonterminal(%q): %w", n, ErrStartSymbol)
	}
	g.nonterminals = removeSymbol(g.nonterminals, n)
	delete(g.isNonterm, n)

	return nil
}

// DeleteNonterminals applies DeleteNonterminal to each element in order and
// stops at the first error.
func (g *Grammar) DeleteNonterminals(ns []Symbol) error {
	for _, n := range ns {
		if err := g.DeleteNonterminal(n); err != nil {
			return err
		}
	}

	return nil
}

// SetStartSymbol makes n the start symbol.
//
// Errors:
//   - ErrNonterminalNotFound: n is not a nonterminal.
func (g *Grammar) SetStartSymbol(n Symbol) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	if _, ok := g.isNonterm[n]; !ok {
		return fmt.Errorf("grammar: SetStartSymbol(%q): %w", n, ErrNonterminalNotFound)
	}
	g.start = n

	return nil
}

// removeSymbol deletes the single occurrence of s from xs, keeping order.
func removeSymbol(xs []Symbol, s Symbol) []Symbol {
	for i, x := range xs {
		if x == s {
			return append(xs[:i], xs[i+1:]...)
		}
	}

	return xs
}
