// Package pseudosem implements the loose version ordering defined in
// spec.md's glossary ("pseudosem ordering"): split on any run of
// non-alphanumeric separators, compare numeric runs numerically and
// alphabetic runs case-insensitively, padding the shorter sequence with
// zero/empty components. So 1.2 == 1.2.0, 1.10 > 1.2, 1.0a < 1.0b.
//
// This is deliberately not Masterminds/semver: strict semver requires
// three dot-separated numeric components and treats "1.2" as invalid,
// which would reject the loose, inconsistently-formatted version strings
// plugin description fields actually contain. Masterminds/semver/v3 is
// still a module dependency — it backs the tool's own release-version
// comparison in internal/update, which really is strict semver — but it
// cannot serve pseudosem's looser grammar.
package pseudosem
