// SPDX-License-Identifier: MIT
// Package grammar defines the Symbol, Rule and Grammar types together with
// the sentinel errors and the New constructor.
//
// A Grammar keeps four pieces of state: the alphabet (terminals), the
// nonterminal set, the ordered rule collection and the start symbol. Every
// mutating method validates its input against the invariants documented in
// doc.go before touching any of them.
//
// Errors:
//
//	ErrEmptySymbol         - symbol is the empty string.
//	ErrTerminalExists      - symbol is already a terminal.
//	ErrNonterminalExists   - symbol is already a nonterminal.
//	ErrTerminalNotFound    - symbol is not a terminal.
//	ErrNonterminalNotFound - symbol is not a nonterminal.
//	ErrSymbolNotFound      - symbol is neither a terminal nor a nonterminal.
//	ErrSymbolReferenced    - symbol is still used by some rule.
//	ErrRuleExists          - an equal rule is already present.
//	ErrRuleNotFound        - no equal rule is present.
//	ErrStartSymbol         - operation would remove the start symbol.
package grammar

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"sync"
)

// Sentinel errors for grammar operations.
var (
	// ErrEmptySymbol indicates that the empty string was used as a symbol.
	ErrEmptySymbol = errors.New("grammar: symbol is empty")

	// ErrTerminalExists indicates the symbol is already a member of the alphabet.
	ErrTerminalExists = errors.New("grammar: symbol already in alphabet")

	// ErrNonterminalExists indicates the symbol is already a nonterminal.
	ErrNonterminalExists = errors.New("grammar: symbol already a nonterminal")

	// ErrTerminalNotFound indicates the symbol is not a member of the alphabet.
	ErrTerminalNotFound = errors.New("grammar: terminal not found")

	// ErrNonterminalNotFound indicates the symbol is not a nonterminal.
	ErrNonterminalNotFound = errors.New("grammar: nonterminal not found")

	// ErrSymbolNotFound indicates the symbol is neither a terminal nor a nonterminal.
	ErrSymbolNotFound = errors.New("grammar: symbol not in alphabet or nonterminals")

	// ErrSymbolReferenced indicates a symbol cannot be deleted while a rule uses it.
	ErrSymbolReferenced = errors.New("grammar: symbol is referenced by a rule")

	// ErrRuleExists indicates an equal rule is already present.
	ErrRuleExists = errors.New("grammar: rule already exists")

	// ErrRuleNotFound indicates no equal rule is present.
	ErrRuleNotFound = errors.New("grammar: rule not found")

	// ErrStartSymbol indicates an operation would remove the start symbol.
	ErrStartSymbol = errors.New("grammar: start symbol cannot be removed")
)

// Symbol identifies a terminal or a nonterminal. Whether a symbol is a
// terminal is decided by membership in a Grammar's alphabet at query time.
type Symbol string

// Rule is a production Left -> Right. An empty Right is an epsilon rule.
//
// Two rules are equal iff their Left symbols are equal and their Right
// sequences have the same length and the same symbols in the same order.
type Rule struct {
	// Left is the nonterminal being rewritten.
	Left Symbol

	// Right is the replacement sequence; empty for epsilon.
	Right []Symbol
}

// NewRule builds a Rule from a left symbol and a variadic right side.
func NewRule(left Symbol, right ...Symbol) Rule {
	return Rule{Left: left, Right: right}
}

// Equal reports value equality of two rules.
func (r Rule) Equal(o Rule) bool {
	if r.Left != o.Left || len(r.Right) != len(o.Right) {
		return false
	}
	for i := range r.Right {
		if r.Right[i] != o.Right[i] {
			return false
		}
	}

	return true
}

// IsEpsilon reports whether the rule has an empty right side.
func (r Rule) IsEpsilon() bool { return len(r.Right) == 0 }

// References reports whether s occurs anywhere in the right side.
func (r Rule) References(s Symbol) bool {
	for _, x := range r.Right {
		if x == s {
			return true
		}
	}

	return false
}

// Clone returns a copy of r that shares no backing array with it.
func (r Rule) Clone() Rule {
	right := make([]Symbol, len(r.Right))
	copy(right, r.Right)

	return Rule{Left: r.Left, Right: right}
}

// String renders the rule as "L -> a b", or "L -> epsilon".
func (r Rule) String() string {
	if len(r.Right) == 0 {
		return string(r.Left) + " -> epsilon"
	}
	var b strings.Builder
	b.WriteString(string(r.Left))
	b.WriteString(" ->")
	for _, s := range r.Right {
		b.WriteByte(' ')
		b.WriteString(string(s))
	}

	return b.String()
}

// key is an injective textual encoding of the rule used for O(1) duplicate
// detection. Quoting makes every symbol self-delimiting.
func (r Rule) key() string {
	var b strings.Builder
	b.WriteString(strconv.Quote(string(r.Left)))
	for _, s := range r.Right {
		b.WriteByte(' ')
		b.WriteString(strconv.Quote(string(s)))
	}

	return b.String()
}

// Option configures a Grammar before the initial symbols and rules are added.
type Option func(g *Grammar)

// FreshNamer maps an index 0, 1, 2, ... to a candidate nonterminal name.
type FreshNamer func(i int) Symbol

// DefaultFreshNamer produces the reserved family <Z0>, <Z1>, ...
func DefaultFreshNamer(i int) Symbol {
	return Symbol("<Z" + strconv.Itoa(i) + ">")
}

// WithFreshNamer overrides the naming pattern used by FreshNonterminal.
// A nil namer is ignored.
func WithFreshNamer(fn FreshNamer) Option {
	return func(g *Grammar) {
		if fn != nil {
			g.namer = fn
		}
	}
}

// Grammar is a mutable, self-validating context-free grammar.
//
// Invariants (checked on every mutation, never repaired afterwards):
//   - alphabet and nonterminals are disjoint;
//   - every symbol used by a rule is a terminal or a nonterminal;
//   - no two rules are equal;
//   - the start symbol is a nonterminal;
//   - a symbol cannot be deleted while a rule references it.
//
// mu guards all fields. refs counts, per symbol, the rules mentioning it
// (left or right, once per rule) and backs the reference queries.
type Grammar struct {
	mu sync.RWMutex

	namer FreshNamer

	// Storage; slices keep insertion order, maps give O(1) membership.
	terminals    []Symbol
	nonterminals []Symbol
	isTerminal   map[Symbol]struct{}
	isNonterm    map[Symbol]struct{}

	rules     []Rule
	ruleIndex map[string]struct{}
	refs      map[Symbol]int

	start Symbol
}

// New builds a Grammar from a start symbol, the initial alphabet, the extra
// nonterminals and the initial rules, validating each element in order:
// start symbol, terminals, nonterminals, rules. The start symbol is added as
// a nonterminal and must therefore not be repeated in nonterminals.
//
// The first failing element aborts construction and its error is returned.
//
// Complexity: O(T + N + R·k) where k is the longest right side.
func New(start Symbol, terminals, nonterminals []Symbol, rules []Rule, opts ...Option) (*Grammar, error) {
	g := &Grammar{
		namer:      DefaultFreshNamer,
		isTerminal: make(map[Symbol]struct{}),
		isNonterm:  make(map[Symbol]struct{}),
		ruleIndex:  make(map[string]struct{}),
		refs:       make(map[Symbol]int),
	}
	for _, opt := range opts {
		opt(g)
	}

	if err := g.AddNonterminal(start); err != nil {
		return nil, fmt.Errorf("grammar: New: %w", err)
	}
	if err := g.SetStartSymbol(start); err != nil {
		return nil, fmt.Errorf("grammar: New: %w", err)
	}
	if err := g.AddTerminals(terminals); err != nil {
		return nil, fmt.Errorf("grammar: New: %w", err)
	}
	if err := g.AddNonterminals(nonterminals); err != nil {
		return nil, fmt.Errorf("grammar: New: %w", err)
	}
	if err := g.AddRules(rules); err != nil {
		return nil, fmt.Errorf("grammar: New: %w", err)
	}

	return g, nil
}

// MustNew is like New but panics on error. Intended for fixtures and examples.
func MustNew(start Symbol, terminals, nonterminals []Symbol, rules []Rule, opts ...Option) *Grammar {
	g, err := New(start, terminals, nonterminals, rules, opts...)
	if err != nil {
		panic(err)
	}

	return g
}
