package cli

import (
	"github.com/ordinator-tools/ordinator/internal/database"
	"github.com/ordinator-tools/ordinator/pkg/output"
	"github.com/spf13/cobra"
)

// NewTagsCommand creates the tags command, listing the known Bash Tags
// recognised by the loaded masterlist and userlist.
func NewTagsCommand() *cobra.Command {
	var flags gameFlags

	cmd := &cobra.Command{
		Use:           "tags",
		Short:         "List known Bash Tags",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withDatabase(cmd.Context(), &flags, func(db *database.Database, out *output.Manager) error {
				for _, tag := range db.GetKnownBashTags() {
					out.Raw(tag + "\n")
				}
				return nil
			})
		},
	}
	addGameFlags(cmd, &flags)
	return cmd
}
