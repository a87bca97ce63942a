// Package condition implements the small boolean DSL referenced by any
// metadata item (spec.md §4.1): a hand-written lexer and recursive-descent
// parser over the five-production grammar, and an evaluator that resolves
// file/active/many/is_master/checksum/version calls against a Resolver
// supplied by the caller (plugin views, the load-order handler, and the
// filesystem, per spec.md §4.1: "the evaluator is the only component that
// touches the filesystem during a query").
//
// The parser is hand-rolled rather than built on a parser-combinator
// library: the grammar is five productions and no example repo in the
// corpus pulls in a combinator library for anything this size — see
// DESIGN.md.
package condition
