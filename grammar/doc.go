// Package grammar provides a mutable, self-validating context-free grammar
// G = (A, N, R, S): an alphabet A of terminals, a set N of nonterminals, an
// ordered collection R of rules and a start symbol S ∈ N.
//
// Invariants, checked by every mutating method before it touches any state:
//
//   - A ∩ N = ∅ (a symbol is a terminal or a nonterminal, never both)
//   - every symbol used by a rule is in A ∪ N
//   - no two rules are equal (same Left, same Right element-wise)
//   - S ∈ N
//   - a symbol cannot be deleted while a rule references it
//
// A violated precondition rejects the call with an error wrapping one of the
// package sentinels; the grammar is left exactly as it was. Batch variants
// (AddTerminals, DeleteRules, ...) apply elements in order and stop at the
// first failure, keeping the elements already applied.
//
// Core Methods:
//
//	// Symbols
//	AddTerminal(t) / AddTerminals(ts)            // O(1) each
//	DeleteTerminal(t) / DeleteTerminals(ts)      // O(T) each
//	AddNonterminal(n) / AddNonterminals(ns)      // O(1) each
//	DeleteNonterminal(n) / DeleteNonterminals(ns)// O(N) each
//	SetStartSymbol(n)                            // O(1)
//	FreshNonterminal() / AddFreshNonterminal()   // first unused <Z0>, <Z1>, ...
//
//	// Rules
//	AddRule(r) / AddRules(rs)                    // O(k)
//	DeleteRule(r) / DeleteRules(rs)              // O(R)
//	HasRule(r)                                   // O(k)
//
//	// Queries
//	ReferencesTerminal(t), ReferencesNonterminal(n)       // O(1)
//	RulesFor(n), RulesReferencing(s)                      // O(R)
//	RulelessNonterminals()                                // O(N+R)
//	ReachableNonterminals(), UnreachableNonterminals()    // O(N+R·k)
//	ReferencedTerminals(), UnreferencedTerminals()        // O(T)
//
//	// Accessors
//	Terminals(), Nonterminals(), Symbols(), Rules(), StartSymbol(), Stats(), Clone()
//
// Symbols are plain strings compared by value. Rule equality is value
// equality as well, so a freshly built Rule can be used to delete or look up
// a stored one.
//
// All methods are safe for concurrent use; each holds an internal
// sync.RWMutex for its duration. Multi-step rewrites (see package cnf) are
// not atomic as a whole and need a single owner.
package grammar
