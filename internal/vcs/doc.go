// Package vcs wraps the git CLI for masterlist repository maintenance
// (spec.md §6: "VCS client (git wrapper)"). It shells out to git the way
// internal/shell.Executor shells out to arbitrary commands, but scoped to
// the handful of operations the masterlist lifecycle needs: cloning or
// updating a checkout, reading the current revision, and checking whether
// a local checkout is already at the remote's tip.
package vcs
