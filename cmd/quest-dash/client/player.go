package client

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/quest-dash/internal/app"
	"github.com/KirkDiggler/quest-dash/internal/decorators"
	"github.com/KirkDiggler/quest-dash/internal/entities"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show the player's level, XP, money and inventory",
	RunE:  runStatus,
}

var questsCmd = &cobra.Command{
	Use:   "quests",
	Short: "List quests with their availability for the player",
	RunE:  runQuests,
}

var completeCmd = &cobra.Command{
	Use:   "complete <id>",
	Short: "Complete a quest",
	Args:  cobra.ExactArgs(1),
	RunE:  runComplete,
}

var talkNPCCmd = &cobra.Command{
	Use:   "talk-npc",
	Short: "Talk to the NPC",
	RunE:  runTalkNPC,
}

func runStatus(cmd *cobra.Command, _ []string) error {
	return withApp(cmd, func(ctx context.Context, a *app.App) error {
		out, err := a.Player.Init(ctx)
		if out == nil || out.Status == nil {
			return err
		}

		st := out.Status
		r := decorators.NewRenderer(a.TUIOptions().Style, a.Catalog)
		w := cmd.OutOrStdout()
		fmt.Fprintf(w, "%s  Level %d\n", st.Name, st.Level)
		fmt.Fprintf(w, "XP: %d  Money: %d\n", st.XP, st.Money)
		if st.SpokenToNPC {
			fmt.Fprintln(w, "✓ NPC contacted")
		}
		if len(st.Inventory) > 0 {
			items := make([]string, 0, len(st.Inventory))
			for _, item := range st.Inventory {
				items = append(items, r.InventoryLabel(item))
			}
			fmt.Fprintf(w, "Inventory: %s\n", strings.Join(items, ", "))
		}
		return err
	})
}

func runQuests(cmd *cobra.Command, _ []string) error {
	return withApp(cmd, func(ctx context.Context, a *app.App) error {
		out, err := a.Player.Init(ctx)
		if out == nil || len(out.Quests) == 0 {
			if err == nil {
				fmt.Fprintln(cmd.OutOrStdout(), "No quests available")
			}
			return err
		}

		t := newTable("ID", "Title", "Type", "XP", "State", "Missing")
		for _, q := range out.Quests {
			t.Row(
				strconv.FormatInt(q.ID, 10),
				q.Title,
				q.Type.Label(),
				strconv.Itoa(q.BaseXP),
				availability(q),
				strings.Join(q.MissingRequirements, ", "),
			)
		}
		fmt.Fprintln(cmd.OutOrStdout(), t.Render())
		return err
	})
}

func availability(q *entities.QuestWithStatus) string {
	switch q.Availability() {
	case "completed":
		return "✓ Completed"
	case "available":
		return "Available"
	default:
		return "Locked"
	}
}

func runComplete(cmd *cobra.Command, args []string) error {
	id, err := parseQuestID(args[0])
	if err != nil {
		return err
	}

	return withApp(cmd, func(ctx context.Context, a *app.App) error {
		if _, err := a.Player.Init(ctx); err != nil {
			return err
		}

		out, err := a.Player.CompleteQuest(ctx, id)
		if err != nil {
			return err
		}
		for _, line := range out.Summary {
			fmt.Fprintf(cmd.OutOrStdout(), "  %s\n", line)
		}
		return nil
	})
}

func runTalkNPC(cmd *cobra.Command, _ []string) error {
	return withApp(cmd, func(ctx context.Context, a *app.App) error {
		if !a.Auth.RequireAuth(ctx) {
			return fmt.Errorf("not logged in, run quest-dash login first")
		}
		_, err := a.Player.TalkToNPC(ctx)
		return err
	})
}
