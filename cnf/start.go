// SPDX-License-Identifier: MIT
package cnf

import "github.com/mtpro/chomsky/grammar"

// IntroduceStart allocates a fresh Z, adds Z -> S for the current start
// symbol S and makes Z the start symbol. Afterwards the start symbol never
// occurs on a right side, so an epsilon rule for it is legal CNF.
func IntroduceStart(g *grammar.Grammar) error {
	if g == nil {
		return ErrGrammarNil
	}
	z := mustFresh(g)
	must(g.AddRule(grammar.NewRule(z, g.StartSymbol())))
	must(g.SetStartSymbol(z))

	return nil
}
