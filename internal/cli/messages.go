package cli

import (
	"fmt"

	"github.com/ordinator-tools/ordinator/internal/database"
	"github.com/ordinator-tools/ordinator/pkg/output"
	"github.com/spf13/cobra"
	"golang.org/x/text/language"
)

// NewMessagesCommand creates the messages command, printing the general
// (non-plugin-specific) messages carried by the masterlist and userlist.
func NewMessagesCommand() *cobra.Command {
	var flags gameFlags
	var evaluate bool

	cmd := &cobra.Command{
		Use:           "messages",
		Short:         "List general masterlist and userlist messages",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withDatabase(cmd.Context(), &flags, func(db *database.Database, out *output.Manager) error {
				return runMessages(db, out, evaluate)
			})
		},
	}
	addGameFlags(cmd, &flags)
	cmd.Flags().BoolVar(&evaluate, "evaluate", true, "Resolve conditions and show only visible messages")
	return cmd
}

func runMessages(db *database.Database, out *output.Manager, evaluate bool) error {
	messages, err := db.GetGeneralMessages(evaluate)
	if err != nil {
		return err
	}

	for _, msg := range messages {
		content, ok := msg.PreferredContent(language.English)
		if !ok {
			continue
		}
		out.Raw(fmt.Sprintf("[%s] %s\n", msg.Type, content.Text))
	}
	return nil
}
