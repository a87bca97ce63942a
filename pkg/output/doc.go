// Package output provides formatted output management for ordinatorctl.
//
// This package handles all CLI output through a unified Manager interface,
// supporting multiple output formats (table, JSON, YAML, plain) with
// consistent styling and color support.
//
// # Output Manager
//
// Create a manager for formatted output:
//
//	manager := output.NewManager(output.FormatTable, false, false, os.Stdout)
//
//	// Success messages (green)
//	manager.Success("Applied new load order (%d plugins)", len(order))
//
//	// Error messages (red)
//	manager.Error("Masterlist fetch failed")
//
//	// Warning messages (yellow)
//	manager.Warning("Masterlist revision unchanged")
//
//	// Info messages (default color)
//	manager.Info("Computed load order (%d plugins, not applied)", len(order))
//
// # Output Formats
//
// Multiple output formats are supported for different use cases:
//
//	output.FormatTable  // Human-readable tables (default)
//	output.FormatJSON   // Machine-readable JSON
//	output.FormatYAML   // YAML format
//	output.FormatPlain  // Plain text without formatting
//
// Change formats dynamically, as the "--format" flag shared by every
// database-backed command does:
//
//	manager.SetFormat(output.FormatJSON)
//
// # Raw Output
//
// Commands that print one line per result (plugin sort positions, tags,
// messages) bypass the formatter entirely and write through Raw:
//
//	for i, name := range order {
//	    out.Raw(fmt.Sprintf("%4d  %s\n", i+1, name))
//	}
//
// # Color Support
//
// Colors are enabled by default for TTY output:
//
//	manager := output.NewManager(format, quiet, noColor, writer)
//	// noColor=true disables all color output
//
// Environment variable support:
//   - NO_COLOR: Disables colors when set
//   - TERM=dumb: Disables colors
//   - ORDINATOR_ASCII_ICONS: Forces ASCII icon fallbacks (e.g. "[OK]"
//     instead of "✓") for terminals without Unicode support
//
// # Quiet Mode
//
// Suppress non-essential output:
//
//	manager := output.NewManager(format, true, false, writer)
//	manager.Info("This is suppressed in quiet mode")
//	manager.Error("Errors are still shown")
package output
