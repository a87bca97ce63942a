// Package pluginview holds the in-memory projection of one plugin file
// (spec.md §3): an immutable snapshot keyed by case-insensitive filename,
// populated once by an Inspector (the external plugin-inspection library
// boundary, spec.md §6) and never mutated afterwards.
package pluginview
