package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/ordinator-tools/ordinator/internal/update"
	"github.com/ordinator-tools/ordinator/pkg/output"
	"github.com/ordinator-tools/ordinator/pkg/version"
	"github.com/spf13/cobra"
)

// NewVersionCommand creates the version command.
func NewVersionCommand() *cobra.Command {
	var checkUpdate bool

	cmd := &cobra.Command{
		Use:   "version",
		Short: "Display version information",
		Long: `Display version information for ordinatorctl including build details and system information.

Examples:
  ordinatorctl version
  ordinatorctl version --check-update`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runVersion(checkUpdate)
		},
	}

	cmd.Flags().BoolVar(&checkUpdate, "check-update", false, "Check for available updates")
	return cmd
}

func runVersion(checkUpdate bool) error {
	buildInfo := version.GetBuildInfo()

	output.Info(version.GetVersionString())
	output.Raw("\n")
	output.Raw("Build Information:\n")
	output.Raw(fmt.Sprintf("  Git Commit:    %s\n", buildInfo.GitCommit))
	output.Raw(fmt.Sprintf("  Build Time:    %s\n", buildInfo.BuildDate))
	output.Raw(fmt.Sprintf("  Go Version:    %s\n", buildInfo.GoVersion))
	output.Raw(fmt.Sprintf("  OS:            %s\n", buildInfo.OS))
	output.Raw(fmt.Sprintf("  Architecture:  %s\n", buildInfo.Architecture))
	output.Raw(fmt.Sprintf("  Compiler:      %s\n", buildInfo.Compiler))

	if !checkUpdate {
		return nil
	}

	output.Raw("\n")
	output.Info("Checking for updates...")

	checker := update.NewChecker(buildInfo.Version)
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	info, err := checker.CheckForUpdate(ctx)
	if err != nil {
		output.Warning(fmt.Sprintf("Failed to check for updates: %v", err))
		return nil
	}
	output.Raw("\n")
	output.Raw(update.FormatMessage(info) + "\n")
	return nil
}
