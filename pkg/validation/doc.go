// Package validation provides security validation functions for user input.
//
// This package protects against common security vulnerabilities including
// path traversal attacks, symlink attacks, and command injection. Use these
// functions to validate all user-provided paths and inputs before use.
//
// # Path Validation
//
// internal/gamecache.Cache.View is the package's one real caller: a
// plugin name comes from the active load order, ultimately attacker
// -influenced text (a masterlist or userlist entry can name any active
// plugin), so it is validated against the game's data directory before
// being joined into a filesystem path and handed to the plugin inspector:
//
//	path, err := validation.ValidatePath(name, validation.PathValidationOptions{
//	    BaseDir: c.dataDir,
//	})
//	if err != nil {
//	    // name contained "../" or resolved outside dataDir
//	    return nil, err
//	}
//	// path is guaranteed to be within dataDir
//
// # Security Checks
//
// The package detects and prevents:
//   - Path traversal attempts (../)
//   - Absolute paths when relative expected
//   - Symlink attacks pointing outside base directory
//   - Null bytes in paths (security bypass attempts)
//   - Paths outside the allowed base directory
//
// # Error Types
//
// Specific error types for different validation failures:
//
//	if errors.Is(err, validation.ErrPathTraversal) {
//	    // Path contained ../ sequences
//	}
//	if errors.Is(err, validation.ErrSymlinkTraversal) {
//	    // Symlink points outside base directory
//	}
//	if errors.Is(err, validation.ErrAbsolutePath) {
//	    // Absolute path when relative required
//	}
//
// # Best Practices
//
// Always validate paths before:
//   - Reading user-specified files
//   - Writing to user-specified locations
//   - Executing commands with user-provided paths
//   - Including files in responses
package validation
