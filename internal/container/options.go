package container

import (
	"io"

	"github.com/ordinator-tools/ordinator/internal/toolconfig"
	"github.com/ordinator-tools/ordinator/pkg/logging"
	"go.uber.org/fx"
)

// Option is a functional option for configuring the container.
//
// Options are typically used in tests to override default providers.
type Option = fx.Option

// WithLogger overrides the logger provider.
//
// Useful in tests to capture log output or disable logging.
//
// Example:
//
//	testLogger := logging.New(&logging.Config{Level: slog.LevelDebug})
//	c, _ := container.New(container.WithLogger(testLogger))
func WithLogger(logger *logging.Logger) Option {
	return fx.Decorate(func() *logging.Logger {
		return logger
	})
}

// WithWriter overrides the output writer.
//
// Useful in tests to capture output to a buffer.
//
// Example:
//
//	buf := &bytes.Buffer{}
//	c, _ := container.New(container.WithWriter(buf))
func WithWriter(w io.Writer) Option {
	return fx.Decorate(func() io.Writer {
		return w
	})
}

// WithToolConfig overrides the tool config provider.
//
// Useful in tests to provide a specific configuration without touching
// ~/.ordinator.yml.
//
// Example:
//
//	testCfg := toolconfig.Defaults()
//	c, _ := container.New(container.WithToolConfig(testCfg))
func WithToolConfig(cfg toolconfig.Config) Option {
	return fx.Decorate(func(params ToolConfigParams) (toolconfig.Config, error) {
		return cfg, nil
	})
}

// WithoutLifecycle adds a no-op invocation.
//
// It does not remove the hooks that New registers: registerLifecycleHooks
// still runs, so the OnStart and OnStop hooks still execute when the
// container starts and stops.
//
// Example:
//
//	c, _ := container.New(container.WithoutLifecycle())
func WithoutLifecycle() Option {
	return fx.Options(
		// Skip lifecycle invocations
		fx.Invoke(func() {
			// No-op instead of registerLifecycleHooks
		}),
	)
}
