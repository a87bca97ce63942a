// Package cli provides the command-line interface implementation for
// ordinatorctl.
//
// This package contains the Cobra command tree, command handlers, and
// CLI-specific logic. It integrates with internal/container for
// dependency injection and uses pkg/output formatters for consistent
// output.
//
// # Command Structure
//
// Commands are organized hierarchically:
//
//	ordinatorctl
//	├── sort                 # Compute and optionally persist a load order
//	├── masterlist
//	│   ├── update           # Fetch/fast-forward the masterlist checkout
//	│   └── revision         # Show the on-disk masterlist revision
//	├── tags                 # List known bash tags
//	├── messages             # List general (non-plugin) messages
//	├── metadata
//	│   ├── get              # Show merged or userlist-only plugin metadata
//	│   ├── set              # Set fields of a plugin's userlist entry from flags
//	│   └── discard          # Remove a plugin's userlist entry
//	├── version              # Show version information
//	└── self-update          # Update ordinatorctl in place
//
// # Root Command
//
// Build the root command:
//
//	root := cli.NewRootCommand()
//	if err := root.Execute(); err != nil {
//	    os.Exit(1)
//	}
//
// # Command Options
//
// The root command has no persistent flags. The database-backed commands
// (sort, tags, messages, metadata get/set/discard, masterlist update)
// each take the same flags:
//
//	--data-dir    Plugin data directory
//	--load-order  Path to the active load order file
//	--inspector   Path to an external plugin-inspection binary
//	--format      Output format (table, json, yaml)
//
// # Integration with the container
//
// Commands build an internal/container.Container and pull their
// dependencies out with fx.Populate before running, e.g.:
//
//	var db *database.Database
//	c, err := container.New(fx.Populate(&db))
//	...
//	c.Run(cmd.Context(), func() error {
//	    return runSort(db, out, dryRun)
//	})
package cli
