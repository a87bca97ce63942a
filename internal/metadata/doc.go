// Package metadata defines the in-memory metadata schema consumed by the
// sorter and the database facade: plugins, file/tag references, messages,
// cleaning data, conditional wrappers, and the tri-state priority value.
//
// Every mutable value here knows how to merge with another value of the
// same type (MergeMetadata and friends) so that masterlist+userlist
// composition (see package metalist) can be expressed as a sequence of
// pairwise merges rather than bespoke per-field logic at the call site.
package metadata
