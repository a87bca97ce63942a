package container

import (
	"io"
	"os"
	"time"

	"github.com/ordinator-tools/ordinator/internal/database"
	"github.com/ordinator-tools/ordinator/internal/gamecache"
	"github.com/ordinator-tools/ordinator/internal/loadorder"
	"github.com/ordinator-tools/ordinator/internal/toolconfig"
	"github.com/ordinator-tools/ordinator/internal/vcs"
	"github.com/ordinator-tools/ordinator/pkg/logging"
	"github.com/ordinator-tools/ordinator/pkg/output"
	"github.com/ordinator-tools/ordinator/pkg/pluginhost"
	"go.uber.org/fx"
)

// Provider functions create and configure application dependencies.
// These are called by uber-fx in dependency order.

// provideLogger creates the application logger.
//
// The logger is configured from environment variables:
//   - ORDINATOR_LOG_LEVEL: debug, info, warn, error
//   - ORDINATOR_LOG_FORMAT: text, json
//   - ORDINATOR_DEBUG: enables debug logging
func provideLogger() *logging.Logger {
	return logging.New(logging.FromEnv())
}

// provideWriter provides the output writer.
//
// Defaults to os.Stdout. Can be overridden in tests using WithWriter().
func provideWriter() io.Writer {
	return os.Stdout
}

// provideToolConfigLoader creates the tool configuration loader.
func provideToolConfigLoader(logger *logging.Logger) *toolconfig.Loader {
	logger.Debug("creating tool config loader")
	return toolconfig.NewLoader()
}

// ToolConfigParams groups dependencies for the tool config provider.
type ToolConfigParams struct {
	fx.In

	Loader *toolconfig.Loader
	Logger *logging.Logger
}

// provideToolConfig loads ~/.ordinator.yml, falling back to defaults when
// the file does not exist (toolconfig.Loader.Load already does this).
func provideToolConfig(params ToolConfigParams) (toolconfig.Config, error) {
	params.Logger.Debug("loading tool config")
	cfg, err := params.Loader.Load()
	if err != nil {
		return toolconfig.Config{}, err
	}
	params.Logger.Debug("tool config loaded")
	return cfg, nil
}

// OutputManagerParams groups dependencies for the output manager provider.
type OutputManagerParams struct {
	fx.In

	Writer io.Writer
	Logger *logging.Logger
}

// provideOutputManager creates the output manager.
//
// Uses table format by default; individual commands override the format
// via their --format flag.
func provideOutputManager(params OutputManagerParams) *output.Manager {
	params.Logger.Debug("creating output manager")
	return output.NewManager(output.FormatTable, false, false, params.Writer)
}

// provideVCSClient creates the git-backed masterlist transport.
func provideVCSClient(logger *logging.Logger) vcs.Client {
	logger.Debug("creating vcs client")
	return vcs.NewGitClient("", 60*time.Second)
}

// providePluginInspector creates the plugin-backed (or local fallback)
// plugin file inspector, per toolconfig.GameConfig.InspectorPath.
func providePluginInspector(cfg toolconfig.Config, logger *logging.Logger) *pluginhost.Manager {
	logger.Debug("creating plugin inspector", "binary", cfg.Game.InspectorPath)
	return pluginhost.NewManager(cfg.Game.InspectorPath, false)
}

// provideLoadOrderHandler loads the active load order from disk.
func provideLoadOrderHandler(cfg toolconfig.Config, logger *logging.Logger) (*loadorder.FileHandler, error) {
	logger.Debug("loading load order", "path", cfg.Game.LoadOrderPath)
	return loadorder.NewFileHandler(cfg.Game.LoadOrderPath, cfg.Game.DataDir)
}

// provideGameCache creates the single-owner plugin-view/result cache.
func provideGameCache(inspector *pluginhost.Manager, handler *loadorder.FileHandler, cfg toolconfig.Config) *gamecache.Cache {
	return gamecache.New(inspector, handler, cfg.Game.DataDir)
}

// provideResolver adapts the cache into a condition.Resolver.
func provideResolver(cache *gamecache.Cache, handler *loadorder.FileHandler, cfg toolconfig.Config) *gamecache.Resolver {
	return gamecache.NewResolver(cache, handler, cfg.Game.DataDir)
}

// provideDatabase creates the facade every command operates through.
func provideDatabase(cache *gamecache.Cache, resolver *gamecache.Resolver) *database.Database {
	return database.New(cache, resolver)
}
