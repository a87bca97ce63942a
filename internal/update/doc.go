// Package update implements ordinatorctl's own release self-update
// check — distinct from UpdateMasterlist in internal/database, which
// brings the game data masterlist up to date. This package only asks
// "is ordinatorctl itself out of date", comparing the running binary's
// version against the latest GitHub release using semver ordering.
package update
