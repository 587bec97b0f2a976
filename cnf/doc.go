// Package cnf converts a context-free grammar into Chomsky Normal Form (CNF),
// rewriting a *grammar.Grammar in place.
//
// What
//
//   - Six passes, each a fixed point over the grammar's rule set:
//   - EliminateTerminals: terminals only appear alone on a right side.
//   - EliminateMultiples: right sides have at most two symbols.
//   - IntroduceStart:     a fresh start symbol Z0 -> S, run exactly once.
//   - EliminateEpsilons:  no A -> ε except on the start symbol.
//   - EliminateUnits:     no A -> B with B a nonterminal.
//   - EliminateUselesses: no ruleless, unreachable or unused symbols.
//   - ToCNF runs them in exactly that order; Convert does the same on a clone.
//   - Validate / IsCNF check the result.
//
// Order
//
//	Right sides have at most two symbols before EliminateEpsilons runs, and
//	the start symbol appears on no right side. EliminateEpsilons may create
//	unit rules; EliminateUnits may leave nonterminals unreachable, which
//	EliminateUselesses removes.
//
// Determinism
//
//	Passes scan rules in collection order and restart from the top after each
//	rewrite. Fresh nonterminals are drawn from the grammar's FreshNamer
//	(default <Z0>, <Z1>, ...), so a given input always yields the same output.
//
// Usage
//
//	g := grammar.MustNew("S", []grammar.Symbol{"a"}, []grammar.Symbol{"A"}, rules)
//	if err := cnf.ToCNF(g); err != nil {
//		// ErrGrammarNil, or an OnStage hook error
//	}
//
//	// observe intermediate states:
//	err := cnf.ToCNF(g, cnf.WithOnStage(func(s cnf.Stage, g *grammar.Grammar) error {
//		fmt.Println(s, g.RuleCount())
//		return nil
//	}))
//
// Errors
//
//   - ErrGrammarNil  if the grammar pointer is nil.
//   - ErrNotCNF      from Validate for a non-conforming rule.
//   - ErrInvariant   panicked (never returned) if a pass issues an invalid
//     container operation; this indicates a defect in the pass.
//
// Complexity
//
//	The passes favour simplicity over speed: every rewrite triggers a full
//	rescan, giving roughly quadratic behaviour in the number of rules.
package cnf
