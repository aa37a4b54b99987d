package client

import (
	"context"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/quest-dash/internal/app"
	"github.com/KirkDiggler/quest-dash/internal/entities"
	"github.com/KirkDiggler/quest-dash/internal/orchestrators/questform"
)

var (
	questTitle       string
	questDescription string
	questBaseXP      int
	questType        string
	questDecorators  []string
)

var createQuestCmd = &cobra.Command{
	Use:   "create-quest",
	Short: "Create a quest",
	Long: `Create a quest. Decorators are given as tag=value, for example
--decorator level_req=3 --decorator item_reward=Sword.`,
	RunE: runCreateQuest,
}

func init() {
	createQuestCmd.Flags().StringVar(&questTitle, "title", "", "Quest title (required)")
	createQuestCmd.Flags().StringVar(&questDescription, "description", "", "Quest description")
	createQuestCmd.Flags().IntVar(&questBaseXP, "base-xp", 0, "Base XP (required)")
	createQuestCmd.Flags().StringVar(&questType, "type", string(entities.QuestTypeSecondary), "PRIMARY or SECONDARY")
	createQuestCmd.Flags().StringArrayVar(&questDecorators, "decorator", nil, "Decorator as tag=value, repeatable")
	_ = createQuestCmd.MarkFlagRequired("title")   // nolint:errcheck // safe to ignore in init
	_ = createQuestCmd.MarkFlagRequired("base-xp") // nolint:errcheck // safe to ignore in init
}

func runCreateQuest(cmd *cobra.Command, _ []string) error {
	return withApp(cmd, func(ctx context.Context, a *app.App) error {
		if _, err := a.Admin.Init(ctx); err != nil {
			return err
		}

		a.Admin.OpenCreate()
		form := a.Admin.Form()
		form.SetFields(questform.Fields{
			Title:       questTitle,
			Description: questDescription,
			BaseXP:      strconv.Itoa(questBaseXP),
			Type:        entities.QuestType(questType),
		})
		if err := applyDecorators(ctx, form, questDecorators); err != nil {
			return err
		}

		out, err := a.Admin.SubmitForm(ctx)
		if err != nil {
			return err
		}
		printQuest(cmd, a, out)
		return nil
	})
}
