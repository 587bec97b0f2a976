// Package chomsky is an in-memory toolkit for context-free grammars and
// their conversion to Chomsky Normal Form.
//
// What is chomsky?
//
//	A small, thread-safe library that brings together:
//		• Grammar container: terminals, nonterminals, rules and a start symbol,
//		  mutated under locks with the grammar kept well-formed after every call
//		• Queries: reachability, ruleless nonterminals, referenced terminals
//		• Conversion: the six-stage pipeline to Chomsky Normal Form
//		• Validation: a checker that reports the first rule breaking CNF
//		• Rendering: one rule per line, terminals quoted
//
// Everything is organized under three subpackages:
//
//	grammar/  - Symbol, Rule and the thread-safe Grammar container
//	cnf/      - ToCNF, Convert, the individual stages, Validate
//	render/   - text output for rules and grammars
//
// Quick example:
//
//	<S> -> <A> <A>
//	<A> -> epsilon
//	<A> -> a
//
// converts to
//
//	<A> -> 'a'
//	<Z0> -> epsilon
//	<Z0> -> <A> <A>
//	<Z0> -> 'a'
//
// with <Z0> as the new start symbol. See examples/ for a walkthrough over
// every stage.
//
//	go get github.com/mtpro/chomsky
package chomsky
