package cli

import (
	"context"

	"github.com/ordinator-tools/ordinator/internal/container"
	"github.com/ordinator-tools/ordinator/internal/database"
	"github.com/ordinator-tools/ordinator/internal/toolconfig"
	"github.com/ordinator-tools/ordinator/pkg/output"
	"github.com/spf13/cobra"
	"go.uber.org/fx"
)

// gameFlags are the flags every database-backed command shares, overriding
// the loaded toolconfig.Config's Game section for this one invocation.
type gameFlags struct {
	dataDir       string
	loadOrderPath string
	inspectorPath string
	format        string
}

func addGameFlags(cmd *cobra.Command, f *gameFlags) {
	cmd.Flags().StringVar(&f.dataDir, "data-dir", "", "Plugin data directory (overrides ~/.ordinator.yml)")
	cmd.Flags().StringVar(&f.loadOrderPath, "load-order", "", "Path to the active load order file (overrides ~/.ordinator.yml)")
	cmd.Flags().StringVar(&f.inspectorPath, "inspector", "", "Path to an external plugin-inspection binary")
	cmd.Flags().StringVar(&f.format, "format", "table", "Output format: table, json, yaml")
}

func (f *gameFlags) apply(cfg toolconfig.Config) toolconfig.Config {
	if f.dataDir != "" {
		cfg.Game.DataDir = f.dataDir
	}
	if f.loadOrderPath != "" {
		cfg.Game.LoadOrderPath = f.loadOrderPath
	}
	if f.inspectorPath != "" {
		cfg.Game.InspectorPath = f.inspectorPath
	}
	return cfg
}

// withDatabase loads the tool config (honoring flag overrides), builds a
// container, and runs fn against the resulting database facade and output
// manager.
func withDatabase(ctx context.Context, f *gameFlags, fn func(*database.Database, *output.Manager) error) error {
	loader := toolconfig.NewLoader()
	base, err := loader.Load()
	if err != nil {
		return err
	}
	cfg := f.apply(base)

	var db *database.Database
	var out *output.Manager

	c, err := container.New(
		container.WithToolConfig(cfg),
		fx.Populate(&db, &out),
	)
	if err != nil {
		return err
	}

	if format := output.Format(f.format); format != "" {
		out.SetFormat(format)
	}

	return c.Run(ctx, func() error {
		return fn(db, out)
	})
}
