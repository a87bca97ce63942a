package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/ordinator-tools/ordinator/internal/update"
	"github.com/ordinator-tools/ordinator/pkg/output"
	"github.com/ordinator-tools/ordinator/pkg/progress"
	"github.com/ordinator-tools/ordinator/pkg/version"
	"github.com/spf13/cobra"
)

// NewSelfUpdateCommand creates the self-update command.
func NewSelfUpdateCommand() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "self-update",
		Short: "Update ordinatorctl to the latest version",
		Long: `Update ordinatorctl to the latest version available on GitHub.

This command will:
1. Check for the latest available version
2. Download the appropriate binary for your platform
3. Verify the download with SHA256 checksum (if available)
4. Replace the current binary with the new version (a temporary backup
   is restored if the replacement fails and removed once it succeeds)

Examples:
  ordinatorctl self-update
  ordinatorctl self-update --force`,
		Aliases:       []string{"update", "upgrade"},
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSelfUpdate(force)
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, "Force update even if already on latest version")
	return cmd
}

func runSelfUpdate(force bool) error {
	buildInfo := version.GetBuildInfo()
	currentVersion := buildInfo.Version

	if currentVersion == "dev" {
		output.Error("Cannot self-update development builds")
		return fmt.Errorf("self-update not available for development builds")
	}

	output.Info(fmt.Sprintf("Current version: %s", currentVersion))

	steps := progress.NewMulti()
	checkStep := steps.AddSpinner("Checking for updates")
	downloadStep := steps.AddSpinner("Downloading update")
	steps.Start()

	checker := update.NewChecker(currentVersion)
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	info, err := checker.CheckForUpdate(ctx)
	if err != nil {
		checkStep.Error("Failed to check for updates")
		steps.Stop()
		return err
	}
	checkStep.Success("Checked for updates")

	if !info.Available && !force {
		steps.Stop()
		output.Success(fmt.Sprintf("You are already running the latest version (%s)", currentVersion))
		return nil
	}
	if force && !info.Available {
		output.Warning("Forcing reinstall of current version")
	} else {
		output.Info(fmt.Sprintf("New version available: %s", info.LatestVersion))
	}

	updater := update.NewUpdater(currentVersion)
	updCtx, cancel2 := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel2()

	if err := updater.SelfUpdate(updCtx); err != nil {
		downloadStep.Error("Update failed")
		steps.Stop()
		return err
	}
	downloadStep.Success("Downloaded and installed update")
	steps.Stop()

	output.Success(fmt.Sprintf("Successfully updated to version %s", info.LatestVersion))
	return nil
}
