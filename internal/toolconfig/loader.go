package toolconfig

import (
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/ordinator-tools/ordinator/pkg/branding"
	ordinatorerrors "github.com/ordinator-tools/ordinator/pkg/errors"
)

// Loader loads and saves Config at a fixed path, defaulting to
// branding.GetConfigPath().
type Loader struct {
	path string
}

// NewLoader returns a Loader for the default config path.
func NewLoader() *Loader {
	return &Loader{path: branding.GetConfigPath()}
}

// NewLoaderAt returns a Loader for an explicit path, used by tests.
func NewLoaderAt(path string) *Loader {
	return &Loader{path: path}
}

// Load reads Config from disk, applying defaults and validating.
// A missing file is not an error: Defaults() is returned as-is.
func (l *Loader) Load() (Config, error) {
	cfg := Defaults()

	if _, err := os.Stat(l.path); os.IsNotExist(err) {
		return cfg, nil
	}

	data, err := os.ReadFile(l.path)
	if err != nil {
		return Config{}, ordinatorerrors.NewFileAccess(l.path, "cannot read tool config", ordinatorerrors.WithCause(err))
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, ordinatorerrors.NewInvalidArgument("tool config is not valid YAML", ordinatorerrors.WithCause(err))
	}

	applyDefaults(&cfg)
	if err := validate(cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Save writes cfg to disk, creating the parent directory if needed.
func (l *Loader) Save(cfg Config) error {
	dir := filepath.Dir(l.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return ordinatorerrors.NewFileAccess(dir, "cannot create config directory", ordinatorerrors.WithCause(err))
	}
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return ordinatorerrors.NewInvalidArgument("cannot marshal tool config", ordinatorerrors.WithCause(err))
	}
	if err := os.WriteFile(l.path, data, 0o644); err != nil {
		return ordinatorerrors.NewFileAccess(l.path, "cannot write tool config", ordinatorerrors.WithCause(err))
	}
	return nil
}

// Path returns the config file path this loader reads and writes.
func (l *Loader) Path() string {
	return l.path
}

func applyDefaults(cfg *Config) {
	defaults := Defaults()
	if cfg.Colors.Enabled == "" {
		cfg.Colors.Enabled = defaults.Colors.Enabled
	}
	if cfg.Update.CheckIntervalHours == 0 {
		cfg.Update.CheckIntervalHours = defaults.Update.CheckIntervalHours
	}
}

func validate(cfg Config) error {
	switch cfg.Colors.Enabled {
	case "auto", "always", "never":
	default:
		return ordinatorerrors.NewInvalidArgument("colors.enabled must be auto, always, or never")
	}
	if cfg.Update.CheckIntervalHours < 0 {
		return ordinatorerrors.NewInvalidArgument("update.check_interval_hours must not be negative")
	}
	return nil
}
