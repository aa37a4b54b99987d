package client

import (
	"context"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/quest-dash/internal/app"
	"github.com/KirkDiggler/quest-dash/internal/decorators"
)

var listQuestsCmd = &cobra.Command{
	Use:   "list-quests",
	Short: "List every quest with its decorators",
	RunE:  runListQuests,
}

func runListQuests(cmd *cobra.Command, _ []string) error {
	return withApp(cmd, func(ctx context.Context, a *app.App) error {
		out, err := a.Admin.Init(ctx)
		if err != nil {
			return err
		}

		if len(out.Quests) == 0 {
			fmt.Fprintln(cmd.OutOrStdout(), "No quests yet")
			return nil
		}

		r := decorators.NewRenderer(a.TUIOptions().Style, a.Catalog)
		t := newTable("ID", "Title", "Type", "XP", "Decorators")
		for _, q := range out.Quests {
			list := decorators.Decode(string(q.Decorators), a.Catalog)
			t.Row(
				strconv.FormatInt(q.ID, 10),
				q.Title,
				q.Type.Label(),
				strconv.Itoa(q.BaseXP),
				strconv.Itoa(list.Len())+" "+summarize(r, list.Items()),
			)
		}
		fmt.Fprintln(cmd.OutOrStdout(), t.Render())
		return nil
	})
}

func summarize(r *decorators.Renderer, items []decorators.Decorator) string {
	s := ""
	for i, d := range items {
		if i > 0 {
			s += ", "
		}
		s += r.Label(d)
	}
	return s
}
