package cli

import (
	"fmt"

	"github.com/ordinator-tools/ordinator/internal/database"
	"github.com/ordinator-tools/ordinator/internal/sorter"
	"github.com/ordinator-tools/ordinator/pkg/output"
	"github.com/ordinator-tools/ordinator/pkg/progress"
	"github.com/spf13/cobra"
)

// NewSortCommand creates the sort command: computes a new load order for
// the active plugins and, unless --dry-run is given, persists it.
func NewSortCommand() *cobra.Command {
	var flags gameFlags
	var dryRun bool

	cmd := &cobra.Command{
		Use:           "sort",
		Short:         "Compute and apply a new plugin load order",
		Aliases:       []string{"sortplugins"},
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withDatabase(cmd.Context(), &flags, func(db *database.Database, out *output.Manager) error {
				return runSort(db, out, dryRun)
			})
		},
	}

	addGameFlags(cmd, &flags)
	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "Print the computed order without writing it")
	return cmd
}

func runSort(db *database.Database, out *output.Manager, dryRun bool) error {
	active, err := db.ActivePlugins()
	if err != nil {
		return err
	}

	progress.SetQuiet(out.IsQuiet())
	bar := progress.CreateBar(len(active), "Inspecting plugins")
	bar.Start()

	plugins, err := db.PluginsForSortWithProgress(func(done, total int) {
		bar.Update(done)
	})
	if err != nil {
		bar.Error("Plugin inspection failed")
		return err
	}
	bar.Success(fmt.Sprintf("Inspected %d plugins", len(plugins)))

	order, err := sorter.Sort(plugins, db.Groups())
	if err != nil {
		return err
	}

	if dryRun {
		out.Info("Computed load order (%d plugins, not applied):", len(order))
	} else {
		if err := db.ApplyOrder(order); err != nil {
			return err
		}
		out.Success("Applied new load order (%d plugins):", len(order))
	}

	for i, name := range order {
		out.Raw(fmt.Sprintf("%4d  %s\n", i+1, name))
	}
	return nil
}
