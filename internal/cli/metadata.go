package cli

import (
	"strconv"

	"github.com/ordinator-tools/ordinator/internal/database"
	"github.com/ordinator-tools/ordinator/internal/metadata"
	"github.com/ordinator-tools/ordinator/pkg/output"
	ordinatorerrors "github.com/ordinator-tools/ordinator/pkg/errors"
	"github.com/spf13/cobra"
)

// NewMetadataCommand creates the metadata command and its
// get/set/discard subcommands: get prints a plugin's metadata (merged with
// its userlist entry by default), set and discard edit userlist entries
// (spec.md §4.2, §4.3).
func NewMetadataCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "metadata",
		Short: "Inspect and edit per-plugin userlist metadata",
	}
	cmd.AddCommand(
		newMetadataGetCommand(),
		newMetadataSetCommand(),
		newMetadataDiscardCommand(),
	)
	return cmd
}

func newMetadataGetCommand() *cobra.Command {
	var flags gameFlags
	var includeUser, evaluate bool

	cmd := &cobra.Command{
		Use:           "get <plugin>",
		Short:         "Print a plugin's metadata",
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withDatabase(cmd.Context(), &flags, func(db *database.Database, out *output.Manager) error {
				pm, err := db.GetPluginMetadata(args[0], includeUser, evaluate)
				if err != nil {
					return err
				}
				return out.Display(pm)
			})
		},
	}
	addGameFlags(cmd, &flags)
	cmd.Flags().BoolVar(&includeUser, "include-user", true, "Merge in the userlist entry")
	cmd.Flags().BoolVar(&evaluate, "evaluate", true, "Resolve conditions before printing")
	return cmd
}

func newMetadataSetCommand() *cobra.Command {
	var flags gameFlags
	var group, priority, globalPriority string
	var enabled, disabled bool

	cmd := &cobra.Command{
		Use:           "set <plugin>",
		Short:         "Set a plugin's userlist entry",
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withDatabase(cmd.Context(), &flags, func(db *database.Database, out *output.Manager) error {
				pm, err := db.GetPluginUserMetadata(args[0], false)
				if err != nil {
					return err
				}
				pm.Name = args[0]

				if group != "" {
					pm.Group = group
					pm.HasGroup = true
				}
				if priority != "" {
					v, err := parsePriority(priority)
					if err != nil {
						return err
					}
					pm.Priority = v
				}
				if globalPriority != "" {
					v, err := parsePriority(globalPriority)
					if err != nil {
						return err
					}
					pm.GlobalPriority = v
				}
				if enabled {
					pm.Enabled, pm.EnabledSet = true, true
				}
				if disabled {
					pm.Enabled, pm.EnabledSet = false, true
				}

				db.SetPluginUserMetadata(pm)
				out.Success("Updated userlist entry for %s", args[0])
				return nil
			})
		},
	}
	addGameFlags(cmd, &flags)
	cmd.Flags().StringVar(&group, "group", "", "Set the plugin's group")
	cmd.Flags().StringVar(&priority, "priority", "", "Set the plugin's priority (-128..127)")
	cmd.Flags().StringVar(&globalPriority, "global-priority", "", "Set the plugin's global priority (-128..127)")
	cmd.Flags().BoolVar(&enabled, "enable", false, "Mark the plugin enabled")
	cmd.Flags().BoolVar(&disabled, "disable", false, "Mark the plugin disabled")
	return cmd
}

func parsePriority(raw string) (metadata.Priority, error) {
	n, err := strconv.ParseInt(raw, 10, 8)
	if err != nil {
		return metadata.Priority{}, ordinatorerrors.NewInvalidArgument("priority must be an integer between -128 and 127", ordinatorerrors.WithCause(err))
	}
	return metadata.Priority{Value: int8(n), Flag: metadata.PriorityUser}, nil
}

func newMetadataDiscardCommand() *cobra.Command {
	var flags gameFlags
	var all bool

	cmd := &cobra.Command{
		Use:           "discard [plugin]",
		Short:         "Discard a plugin's userlist entry, or all of them with --all",
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withDatabase(cmd.Context(), &flags, func(db *database.Database, out *output.Manager) error {
				if all {
					db.DiscardAllUserMetadata()
					out.Success("Discarded all userlist entries")
					return nil
				}
				if len(args) != 1 {
					return ordinatorerrors.NewInvalidArgument("discard requires a plugin name or --all")
				}
				db.DiscardPluginUserMetadata(args[0])
				out.Success("Discarded userlist entry for %s", args[0])
				return nil
			})
		},
	}
	addGameFlags(cmd, &flags)
	cmd.Flags().BoolVar(&all, "all", false, "Discard every userlist entry")
	return cmd
}
