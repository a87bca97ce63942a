// Package loadorder reads and writes the game's active-plugin list and
// load-order index (spec.md §3 "load-order handler", §6 "load-order
// library"). Ordinator treats the list itself as an external resource: a
// Handler is handed to the sorter and the condition evaluator as the
// authority on which plugins exist, which are active, and what index
// each currently holds.
package loadorder
