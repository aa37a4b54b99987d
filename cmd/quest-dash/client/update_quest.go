package client

import (
	"context"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/quest-dash/internal/app"
	"github.com/KirkDiggler/quest-dash/internal/entities"
)

var (
	updateTitle       string
	updateDescription string
	updateBaseXP      int
	updateType        string
	updateDecorators  []string
	clearDecorators   bool
)

var updateQuestCmd = &cobra.Command{
	Use:   "update-quest <id>",
	Short: "Update a quest",
	Long: `Update the fields given on the command line and keep the others.
Decorators are appended unless --clear-decorators is set.`,
	Args: cobra.ExactArgs(1),
	RunE: runUpdateQuest,
}

func init() {
	updateQuestCmd.Flags().StringVar(&updateTitle, "title", "", "Quest title")
	updateQuestCmd.Flags().StringVar(&updateDescription, "description", "", "Quest description")
	updateQuestCmd.Flags().IntVar(&updateBaseXP, "base-xp", 0, "Base XP")
	updateQuestCmd.Flags().StringVar(&updateType, "type", "", "PRIMARY or SECONDARY")
	updateQuestCmd.Flags().StringArrayVar(&updateDecorators, "decorator", nil, "Decorator as tag=value, repeatable")
	updateQuestCmd.Flags().BoolVar(&clearDecorators, "clear-decorators", false, "Remove existing decorators first")
}

func runUpdateQuest(cmd *cobra.Command, args []string) error {
	id, err := parseQuestID(args[0])
	if err != nil {
		return err
	}

	return withApp(cmd, func(ctx context.Context, a *app.App) error {
		if _, err := a.Admin.Init(ctx); err != nil {
			return err
		}
		if err := a.Admin.EditQuest(ctx, id); err != nil {
			return err
		}

		form := a.Admin.Form()
		fields := form.Fields()
		flags := cmd.Flags()
		if flags.Changed("title") {
			fields.Title = updateTitle
		}
		if flags.Changed("description") {
			fields.Description = updateDescription
		}
		if flags.Changed("base-xp") {
			fields.BaseXP = strconv.Itoa(updateBaseXP)
		}
		if flags.Changed("type") {
			fields.Type = entities.QuestType(updateType)
		}
		form.SetFields(fields)

		if clearDecorators {
			for i := len(form.Decorators()) - 1; i >= 0; i-- {
				form.RemoveDecorator(i)
			}
		}
		if err := applyDecorators(ctx, form, updateDecorators); err != nil {
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
