package client

import (
	"context"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/quest-dash/internal/app"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show player statistics",
	RunE:  runStats,
}

func runStats(cmd *cobra.Command, _ []string) error {
	return withApp(cmd, func(ctx context.Context, a *app.App) error {
		out, err := a.Admin.Init(ctx)
		if err != nil {
			return err
		}

		st := out.Stats
		w := cmd.OutOrStdout()
		fmt.Fprintf(w, "Users: %d  Quests: %d  Completed: %d  In progress: %d\n",
			st.TotalUsers, st.TotalQuests, st.TotalCompleted, st.TotalInProgress)
		if len(st.Users) == 0 {
			return nil
		}

		t := newTable("User", "Level", "Completed")
		for _, u := range st.Users {
			t.Row(u.Username, strconv.Itoa(u.Level), strconv.Itoa(u.CompletedQuests))
		}
		fmt.Fprintln(w, t.Render())
		return nil
	})
}
