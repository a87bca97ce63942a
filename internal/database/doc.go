// Package database implements the query surface over merged metadata
// described in spec.md §4.3: the facade a caller uses instead of
// touching metalist.MetadataList, masterlist.Masterlist, or
// gamecache.Cache directly.
package database
