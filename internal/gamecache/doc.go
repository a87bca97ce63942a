// Package gamecache implements the single-owner cache described in
// spec.md §3 and §4.6: loaded plugin views, condition-evaluation
// results, CRCs, and the active masterlist/userlist snapshots, all
// scoped to one game handle (spec.md §5: "single-threaded cooperative
// per game handle").
package gamecache
