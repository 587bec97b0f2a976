// SPDX-License-Identifier: MIT
// Package cnf_test contains fixtures and a bounded language enumerator used to
// check that conversion preserves the generated language.
package cnf_test

import (
	"sort"

	"github.com/mtpro/chomsky/grammar"
)

// syms is shorthand for a symbol slice literal.
func syms(ss ...grammar.Symbol) []grammar.Symbol { return ss }

// rule is shorthand for grammar.NewRule.
func rule(left grammar.Symbol, right ...grammar.Symbol) grammar.Rule {
	return grammar.NewRule(left, right...)
}

// ruleStrings renders the rules of g for order-insensitive comparisons.
func ruleStrings(g *grammar.Grammar) []string {
	rules := g.Rules()
	out := make([]string, len(rules))
	for i, r := range rules {
		out[i] = r.String()
	}

	return out
}

// language returns every terminal string of length ≤ limit that g derives from
// its start symbol. It computes, per nonterminal, the set of short strings it
// derives as a monotone fixed point over the rules, so it handles epsilon,
// unit and left-recursive rules alike.
func language(g *grammar.Grammar, limit int) []string {
	derives := make(map[grammar.Symbol]map[string]bool)
	for _, n := range g.Nonterminals() {
		derives[n] = make(map[string]bool)
	}
	rules := g.Rules()

	for changed := true; changed; {
		changed = false
		for _, r := range rules {
			for w := range expand(g, derives, r.Right, limit) {
				if !derives[r.Left][w] {
					derives[r.Left][w] = true
					changed = true
				}
			}
		}
	}

	out := make([]string, 0, len(derives[g.StartSymbol()]))
	for w := range derives[g.StartSymbol()] {
		out = append(out, w)
	}
	sort.Strings(out)

	return out
}

// expand concatenates the known derivations of each symbol of right,
// dropping anything longer than limit.
func expand(g *grammar.Grammar, derives map[grammar.Symbol]map[string]bool, right []grammar.Symbol, limit int) map[string]bool {
	cur := map[string]bool{"": true}
	for _, s := range right {
		opts := derives[s]
		if g.IsTerminal(s) {
			opts = map[string]bool{string(s): true}
		}
		next := make(map[string]bool)
		for p := range cur {
			for q := range opts {
				if len(p)+len(q) <= limit {
					next[p+q] = true
				}
			}
		}
		cur = next
		if len(cur) == 0 {
			break
		}
	}

	return cur
}

// Fixtures from the classic conversion walkthrough.

// newTerminalMix: <S> -> <A> <B> <B> <A> | <B>; <A> -> ε | 0 <A> 0 | 1;
// <B> -> <B> <S> | <A> <A> <A> | 0 0.
func newTerminalMix() *grammar.Grammar {
	return grammar.MustNew("<S>", syms("0", "1"), syms("<A>", "<B>"), []grammar.Rule{
		rule("<S>", "<A>", "<B>", "<B>", "<A>"),
		rule("<S>", "<B>"),
		rule("<A>"),
		rule("<A>", "0", "<A>", "0"),
		rule("<A>", "1"),
		rule("<B>", "<B>", "<S>"),
		rule("<B>", "<A>", "<A>", "<A>"),
		rule("<B>", "0", "0"),
	})
}

// newSplit: S -> A B C; A -> a; B -> b; C -> c.
func newSplit() *grammar.Grammar {
	return grammar.MustNew("S", syms("a", "b", "c"), syms("A", "B", "C"), []grammar.Rule{
		rule("S", "A", "B", "C"),
		rule("A", "a"),
		rule("B", "b"),
		rule("C", "c"),
	})
}

// newUnit: S -> A; A -> a.
func newUnit() *grammar.Grammar {
	return grammar.MustNew("S", syms("a"), syms("A"), []grammar.Rule{
		rule("S", "A"),
		rule("A", "a"),
	})
}

// newNullablePair: S -> A A; A -> ε | a.
func newNullablePair() *grammar.Grammar {
	return grammar.MustNew("S", syms("a"), syms("A"), []grammar.Rule{
		rule("S", "A", "A"),
		rule("A"),
		rule("A", "a"),
	})
}

// newNullableAround: S -> A b A | B; B -> b | c; A -> ε.
func newNullableAround() *grammar.Grammar {
	return grammar.MustNew("S", syms("a", "b", "c"), syms("A", "B"), []grammar.Rule{
		rule("S", "A", "b", "A"),
		rule("S", "B"),
		rule("B", "b"),
		rule("B", "c"),
		rule("A"),
	})
}

// newTerminalIsolation: S -> A c; A -> a | b.
func newTerminalIsolation() *grammar.Grammar {
	return grammar.MustNew("S", syms("a", "b", "c"), syms("A"), []grammar.Rule{
		rule("S", "A", "c"),
		rule("A", "a"),
		rule("A", "b"),
	})
}

// newBNF is a rough approximation of BNF written as a grammar over a tiny
// alphabet.
func newBNF() *grammar.Grammar {
	return grammar.MustNew("<S>",
		syms("\n", ":", "=", "|", "<", ">", "a", "b", "c", "d", "\"", " "),
		syms("<rule>", "<expression>", "<list>", "<term>", "<ruleref>", "<rulename>",
			"<alpha>", "<literal>", "<text>", "<whitespace>"),
		[]grammar.Rule{
			rule("<S>"),
			rule("<S>", "<whitespace>", "<rule>", "<S>"),
			rule("<rule>", "\n"),
			rule("<rule>", "<ruleref>", "<whitespace>", ":", ":", "=", "<whitespace>", "<list>", "<expression>", "\n"),
			rule("<expression>"),
			rule("<expression>", "|", "<whitespace>", "<list>", "<expression>"),
			rule("<list>"),
			rule("<list>", "<term>", "<whitespace>", "<list>"),
			rule("<term>", "<ruleref>"),
			rule("<term>", "<literal>"),
			rule("<ruleref>", "<", "<rulename>", ">"),
			rule("<rulename>"),
			rule("<rulename>", "<alpha>", "<rulename>"),
			rule("<alpha>", "a"),
			rule("<alpha>", "b"),
			rule("<alpha>", "c"),
			rule("<alpha>", "d"),
			rule("<literal>", "\"", "<text>", "\""),
			rule("<text>"),
			rule("<text>", "<alpha>", "<text>"),
			rule("<whitespace>"),
			rule("<whitespace>", " ", "<whitespace>"),
		})
}
