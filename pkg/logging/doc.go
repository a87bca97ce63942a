// Package logging provides structured logging for ordinatorctl.
//
// This package wraps the standard library's log/slog package, providing
// a consistent logging interface with configurable levels, formats, and
// output destinations.
//
// # Basic Usage
//
//	// Use the default logger
//	log := logging.Default()
//	log.Info("Masterlist update started", "repo", cfg.Masterlist.RepositoryURL)
//
//	// Create a custom logger
//	cfg := &logging.Config{
//	    Level:  slog.LevelDebug,
//	    Format: logging.FormatJSON,
//	    Output: os.Stderr,
//	}
//	log := logging.New(cfg)
//
// # Log Levels
//
// Standard slog levels are supported:
//
//   - Debug: Detailed debugging information
//
//   - Info: General operational information
//
//   - Warn: Warning conditions
//
//   - Error: Error conditions
//
//     log.Debug("Evaluating condition", "expr", cond, "plugin", name)
//     log.Info("Active plugin sorted", "name", name, "position", idx)
//     log.Warn("Masterlist revision unchanged", "revision", rev.ID)
//     log.Error("Git fetch failed", "error", err)
//
// # Output Formats
//
// Two output formats are available:
//
//	logging.FormatText  // Human-readable text format
//	logging.FormatJSON  // Structured JSON format for log aggregation
//
// # Context-Aware Logging
//
// Create loggers with bound attributes:
//
//	pluginLog := log.With("plugin", name)
//	pluginLog.Info("Inspecting header")
//	pluginLog.Info("Masters resolved", "count", len(masters))
//
// # Environment Configuration
//
// Configure via environment variables (see Config.FromEnv):
//   - ORDINATOR_LOG_LEVEL: debug, info, warn, error (default: warn)
//   - ORDINATOR_LOG_FORMAT: text, json (default: text)
//   - ORDINATOR_LOG_SOURCE: true, false (default: false)
//   - ORDINATOR_DEBUG: true, false — shorthand for ORDINATOR_LOG_LEVEL=debug
//
// # Integration with Container
//
// internal/container populates a configured logger alongside the
// database facade and output manager:
//
//	var log *logging.Logger
//	c, err := container.New(container.WithToolConfig(cfg), fx.Populate(&log, &db, &out))
//	c.Run(ctx, func() error {
//	    log.Info("Container started")
//	    return nil
//	})
package logging
