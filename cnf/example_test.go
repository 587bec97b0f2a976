package cnf_test

import (
	"fmt"
	"os"

	"github.com/mtpro/chomsky/cnf"
	"github.com/mtpro/chomsky/grammar"
	"github.com/mtpro/chomsky/render"
)

// ExampleToCNF converts S -> A A, A -> ε | a. The old start symbol is
// nullable, so the new start symbol <Z0> keeps an epsilon rule.
func ExampleToCNF() {
	g := grammar.MustNew("S", []grammar.Symbol{"a"}, []grammar.Symbol{"A"}, []grammar.Rule{
		grammar.NewRule("S", "A", "A"),
		grammar.NewRule("A"),
		grammar.NewRule("A", "a"),
	})

	if err := cnf.ToCNF(g); err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println("start:", g.StartSymbol())
	_ = render.Rules(os.Stdout, g)
	fmt.Println("cnf:", cnf.IsCNF(g))

	// Output:
	// start: <Z0>
	// A -> 'a'
	// <Z0> -> epsilon
	// <Z0> -> A A
	// <Z0> -> 'a'
	// cnf: true
}

// ExampleWithOnStage prints the rule count after every stage.
func ExampleWithOnStage() {
	g := grammar.MustNew("S", []grammar.Symbol{"a", "b", "c"}, []grammar.Symbol{"A", "B", "C"}, []grammar.Rule{
		grammar.NewRule("S", "A", "B", "C"),
		grammar.NewRule("A", "a"),
		grammar.NewRule("B", "b"),
		grammar.NewRule("C", "c"),
	})

	_ = cnf.ToCNF(g, cnf.WithOnStage(func(st cnf.Stage, g *grammar.Grammar) error {
		fmt.Printf("%-9s rules=%d\n", st, g.RuleCount())
		return nil
	}))

	// Output:
	// terminals rules=4
	// multiples rules=5
	// start     rules=6
	// epsilons  rules=6
	// units     rules=6
	// uselesses rules=5
}
