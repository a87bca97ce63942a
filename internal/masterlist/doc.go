// Package masterlist wraps a metalist.MetadataList with the provenance
// spec.md §3 assigns only to the masterlist: revision id, ISO date, and
// branch, plus the update operation against a remote repository
// (spec.md §4.3 UpdateMasterlist) backed by internal/vcs.
package masterlist
