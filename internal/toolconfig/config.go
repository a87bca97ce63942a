package toolconfig

// Config is ordinator's own persisted settings, read from
// ~/.ordinator.yml (branding.GetConfigPath()). It is distinct from the
// masterlist/userlist metadata documents: this file holds per-machine
// preferences, not game data.
type Config struct {
	Game       GameConfig       `yaml:"game"`
	Masterlist MasterlistConfig `yaml:"masterlist"`
	Colors     ColorConfig      `yaml:"colors"`
	Update     UpdateConfig     `yaml:"update"`
}

// GameConfig locates the install this config applies to.
type GameConfig struct {
	DataDir       string `yaml:"data_dir"`
	LoadOrderPath string `yaml:"load_order_path"`
	InspectorPath string `yaml:"inspector_path,omitempty"` // external plugin-inspection executable; empty uses pluginhost.LocalInspector
}

// MasterlistConfig names the masterlist's remote and local checkout.
type MasterlistConfig struct {
	RepositoryURL string `yaml:"repository_url"`
	Branch        string `yaml:"branch"`
	CheckoutDir   string `yaml:"checkout_dir"`
	DocumentPath  string `yaml:"document_path"`
	UserlistPath  string `yaml:"userlist_path"`
}

// ColorConfig controls CLI output coloring.
type ColorConfig struct {
	Enabled string `yaml:"enabled"` // auto, always, never
}

// UpdateConfig controls the self-update notice (internal/update).
type UpdateConfig struct {
	CheckEnabled       bool `yaml:"check_enabled"`
	CheckIntervalHours int  `yaml:"check_interval_hours"`
	NotifyEnabled      bool `yaml:"notify_enabled"`
}

// Defaults returns a Config with every field set to its default value.
func Defaults() Config {
	return Config{
		Colors: ColorConfig{Enabled: "auto"},
		Update: UpdateConfig{
			CheckEnabled:       true,
			CheckIntervalHours: 24,
			NotifyEnabled:      true,
		},
	}
}
