package client

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/quest-dash/internal/app"
)

var deleteQuestCmd = &cobra.Command{
	Use:   "delete-quest <id>",
	Short: "Delete a quest",
	Args:  cobra.ExactArgs(1),
	RunE:  runDeleteQuest,
}

func runDeleteQuest(cmd *cobra.Command, args []string) error {
	id, err := parseQuestID(args[0])
	if err != nil {
		return err
	}

	return withApp(cmd, func(ctx context.Context, a *app.App) error {
		if _, err := a.Admin.Init(ctx); err != nil {
			return err
		}
		_, err := a.Admin.DeleteQuest(ctx, id)
		return err
	})
}
