// Package container provides dependency injection for the ordinatorctl
// game handle using uber-fx.
//
// The container manages dependency lifecycle for a single game instance:
// logger, tool configuration, VCS client, plugin inspector, load-order
// handler, game cache, and database facade, wired in dependency order.
//
// # Basic Usage
//
//	var db *database.Database
//	var out *output.Manager
//	c, err := container.New(fx.Populate(&db, &out))
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	err = c.Run(ctx, func() error {
//	    // db and out were filled in by fx.Populate
//	    out.Success("database ready")
//	    return nil
//	})
//
// # Default Providers
//
// The container automatically provides these dependencies:
//   - *logging.Logger - structured logging
//   - *toolconfig.Loader and toolconfig.Config - tool settings
//   - *output.Manager - CLI output formatting
//   - vcs.Client (a git-backed client) - masterlist repository access
//   - *pluginhost.Manager - plugin-backed or local file inspection
//   - *loadorder.FileHandler - the active load order
//   - *gamecache.Cache and *gamecache.Resolver
//   - *database.Database - the facade every command operates through
//
// # Custom Providers
//
// Override default providers for testing or customization:
//
//	c, err := container.New(container.WithWriter(buf))
//
// # Lifecycle Management
//
// The container manages startup and shutdown of all registered components:
//
//	c.Run(ctx, func() error {
//	    // All dependencies are started
//	    return nil
//	})
package container
