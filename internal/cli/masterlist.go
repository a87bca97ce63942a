package cli

import (
	"context"
	"time"

	"github.com/ordinator-tools/ordinator/internal/database"
	"github.com/ordinator-tools/ordinator/internal/toolconfig"
	"github.com/ordinator-tools/ordinator/internal/vcs"
	"github.com/ordinator-tools/ordinator/pkg/output"
	"github.com/ordinator-tools/ordinator/pkg/progress"
	"github.com/spf13/cobra"
)

// NewMasterlistCommand creates the masterlist command and its
// update/revision subcommands.
func NewMasterlistCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "masterlist",
		Short: "Manage the shared masterlist checkout",
	}
	cmd.AddCommand(newMasterlistUpdateCommand(), newMasterlistRevisionCommand())
	return cmd
}

func newMasterlistUpdateCommand() *cobra.Command {
	var flags gameFlags
	var timeout time.Duration

	cmd := &cobra.Command{
		Use:           "update",
		Short:         "Fetch the latest masterlist and reload it",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withDatabase(cmd.Context(), &flags, func(db *database.Database, out *output.Manager) error {
				return runMasterlistUpdate(cmd.Context(), db, out, timeout)
			})
		},
	}
	addGameFlags(cmd, &flags)
	cmd.Flags().DurationVar(&timeout, "timeout", 60*time.Second, "Git operation timeout")
	return cmd
}

func runMasterlistUpdate(ctx context.Context, db *database.Database, out *output.Manager, timeout time.Duration) error {
	loader := toolconfig.NewLoader()
	cfg, err := loader.Load()
	if err != nil {
		return err
	}

	client := vcs.NewGitClient("", timeout)

	progress.SetQuiet(out.IsQuiet())
	spinner := progress.CreateSpinner("Fetching masterlist")
	spinner.Start()

	changed, err := db.UpdateMasterlist(
		ctx, client,
		cfg.Masterlist.CheckoutDir,
		cfg.Masterlist.DocumentPath,
		cfg.Masterlist.RepositoryURL,
		cfg.Masterlist.Branch,
	)
	if err != nil {
		spinner.Error("Masterlist fetch failed")
		return err
	}

	if changed {
		spinner.Success("Masterlist updated")
	} else {
		spinner.Success("Masterlist already up to date")
	}

	if changed {
		out.Success("Masterlist reloaded")
	} else {
		out.Info("No changes")
	}
	return nil
}

func newMasterlistRevisionCommand() *cobra.Command {
	var timeout time.Duration
	var checkoutDir string

	cmd := &cobra.Command{
		Use:           "revision",
		Short:         "Print the masterlist checkout's current revision",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			loader := toolconfig.NewLoader()
			cfg, err := loader.Load()
			if err != nil {
				return err
			}
			if checkoutDir != "" {
				cfg.Masterlist.CheckoutDir = checkoutDir
			}

			client := vcs.NewGitClient("", timeout)
			ctx, cancel := context.WithTimeout(cmd.Context(), timeout)
			defer cancel()

			rev, err := client.GetRevision(ctx, cfg.Masterlist.CheckoutDir)
			if err != nil {
				return err
			}
			output.Info("Revision: %s (%s)", rev.ID, rev.Date)
			return nil
		},
	}
	cmd.Flags().DurationVar(&timeout, "timeout", 60*time.Second, "Git operation timeout")
	cmd.Flags().StringVar(&checkoutDir, "checkout-dir", "", "Masterlist checkout directory (overrides ~/.ordinator.yml)")
	return cmd
}
