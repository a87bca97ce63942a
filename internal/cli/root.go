package cli

import (
	"github.com/ordinator-tools/ordinator/pkg/branding"
	"github.com/spf13/cobra"
)

// NewRootCommand builds the ordinatorctl command tree.
func NewRootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:           branding.CommandName,
		Short:         branding.GetShortDescription(),
		Long:          branding.GetFullDescription(),
		SilenceErrors: true,
		SilenceUsage:  true,
	}

	root.AddCommand(
		NewSortCommand(),
		NewMasterlistCommand(),
		NewTagsCommand(),
		NewMessagesCommand(),
		NewMetadataCommand(),
		NewVersionCommand(),
		NewSelfUpdateCommand(),
	)

	return root
}
