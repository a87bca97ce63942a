// Package sorter builds the directed graph over installed plugins
// described in spec.md §4.4 and emits a stable topological order per
// §4.5. It is the only package in this module implementing a
// non-obvious algorithm; everything else is data modelling or
// straightforward I/O plumbing.
//
// The graph is represented as an adjacency list indexed by plugin
// vertex index rather than by name (spec.md §9 design note), which
// keeps the hot DFS loop free of map lookups and lets cycle reports
// carry each edge's contributing rule cheaply.
package sorter
