// SPDX-License-Identifier: MIT
package cnf

import (
	"fmt"

	"github.com/mtpro/chomsky/grammar"
)

// step pairs a stage name with its pass.
type step struct {
	stage Stage
	run   func(*grammar.Grammar) error
}

// pipeline is the fixed pass order. Each pass relies on what the earlier ones
// established: epsilon elimination expects right sides of length ≤ 2 and an
// isolated start symbol, unit elimination expects no epsilon rules besides
// the start symbol's.
var pipeline = []step{
	{StageTerminals, EliminateTerminals},
	{StageMultiples, EliminateMultiples},
	{StageStart, IntroduceStart},
	{StageEpsilons, EliminateEpsilons},
	{StageUnits, EliminateUnits},
	{StageUselesses, EliminateUselesses},
}

// Stages returns the pipeline stage names in execution order.
func Stages() []Stage {
	out := make([]Stage, len(pipeline))
	for i, s := range pipeline {
		out[i] = s.stage
	}

	return out
}

// ToCNF converts g in place into an equivalent grammar in Chomsky Normal Form
// by running EliminateTerminals, EliminateMultiples, IntroduceStart,
// EliminateEpsilons, EliminateUnits and EliminateUselesses in that order.
//
// Returns ErrGrammarNil for a nil grammar, or the wrapped error of an OnStage
// hook. A container error inside a pass panics with ErrInvariant.
func ToCNF(g *grammar.Grammar, opts ...Option) error {
	if g == nil {
		return ErrGrammarNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	for _, s := range pipeline {
		if err := s.run(g); err != nil {
			return fmt.Errorf("cnf: stage %s: %w", s.stage, err)
		}
		if err := o.OnStage(s.stage, g); err != nil {
			return fmt.Errorf("cnf: OnStage(%s): %w", s.stage, err)
		}
	}

	return nil
}

// Convert runs ToCNF on a clone of g and returns the clone; g is not modified.
func Convert(g *grammar.Grammar, opts ...Option) (*grammar.Grammar, error) {
	if g == nil {
		return nil, ErrGrammarNil
	}
	c := g.Clone()
	if err := ToCNF(c, opts...); err != nil {
		return nil, err
	}

	return c, nil
}
