// SPDX-License-Identifier: MIT
// Package cnf provides the pipeline options, stage names and error
// definitions for the Chomsky Normal Form rewrite passes.
package cnf

import (
	"errors"
	"fmt"

	"github.com/mtpro/chomsky/grammar"
)

// Sentinel errors for CNF conversion.
var (
	// ErrGrammarNil is returned if a nil grammar pointer is passed.
	ErrGrammarNil = errors.New("cnf: grammar is nil")

	// ErrInvariant wraps a container error raised inside a rewrite pass.
	// Passes only issue valid operations, so it always signals a defect and
	// is delivered by panic, never as a return value.
	ErrInvariant = errors.New("cnf: internal invariant violated")

	// ErrNotCNF is returned by Validate for a rule outside Chomsky Normal Form.
	ErrNotCNF = errors.New("cnf: grammar is not in Chomsky Normal Form")
)

// Stage names one step of the ToCNF pipeline.
type Stage string

// Pipeline stages, in execution order.
const (
	StageTerminals Stage = "terminals" // EliminateTerminals
	StageMultiples Stage = "multiples" // EliminateMultiples
	StageStart     Stage = "start"     // IntroduceStart
	StageEpsilons  Stage = "epsilons"  // EliminateEpsilons
	StageUnits     Stage = "units"     // EliminateUnits
	StageUselesses Stage = "uselesses" // EliminateUselesses
)

// Option configures ToCNF via functional arguments.
type Option func(*Options)

// Options holds the callbacks used by ToCNF.
type Options struct {
	// OnStage is called after each stage completes with the stage name and
	// the grammar in its intermediate state. Returning an error stops the
	// pipeline and ToCNF returns that error wrapped.
	OnStage func(stage Stage, g *grammar.Grammar) error
}

// DefaultOptions returns Options with a no-op OnStage hook.
func DefaultOptions() Options {
	return Options{
		OnStage: func(Stage, *grammar.Grammar) error { return nil },
	}
}

// WithOnStage registers a hook run after every stage. A nil fn is ignored.
func WithOnStage(fn func(stage Stage, g *grammar.Grammar) error) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnStage = fn
		}
	}
}

// must turns a container error raised inside a pass into a panic.
func must(err error) {
	if err != nil {
		panic(fmt.Errorf("%w: %w", ErrInvariant, err))
	}
}

// mustFresh allocates and registers a fresh nonterminal.
func mustFresh(g *grammar.Grammar) grammar.Symbol {
	z, err := g.AddFreshNonterminal()
	must(err)

	return z
}

// isSelfLoop reports whether r is the useless L -> L.
func isSelfLoop(r grammar.Rule) bool {
	return len(r.Right) == 1 && r.Right[0] == r.Left
}

// addIfMissing adds r unless an equal rule is already present.
func addIfMissing(g *grammar.Grammar, r grammar.Rule) {
	if !g.HasRule(r) {
		must(g.AddRule(r))
	}
}
