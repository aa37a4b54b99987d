// Package client provides one-shot commands against the Quest API, for
// scripting and for checking a deployment without opening a dashboard
package client

import (
	"context"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/KirkDiggler/quest-dash/internal/app"
)

var timeout time.Duration

// ClientCmd is the root command for all one-shot commands
var ClientCmd = &cobra.Command{
	Use:   "client",
	Short: "One-shot Quest API commands",
	Long:  `Client commands run a single admin or player action and print the result.`,
}

func init() {
	ClientCmd.PersistentFlags().DurationVar(&timeout, "deadline", 30*time.Second, "Deadline for the whole command")

	// Admin commands
	ClientCmd.AddCommand(listQuestsCmd)
	ClientCmd.AddCommand(createQuestCmd)
	ClientCmd.AddCommand(updateQuestCmd)
	ClientCmd.AddCommand(deleteQuestCmd)
	ClientCmd.AddCommand(fixIDsCmd)
	ClientCmd.AddCommand(statsCmd)

	// Player commands
	ClientCmd.AddCommand(statusCmd)
	ClientCmd.AddCommand(questsCmd)
	ClientCmd.AddCommand(completeCmd)
	ClientCmd.AddCommand(talkNPCCmd)
}

// withApp builds the application, prints its notifications to the command
// output and runs fn under the command deadline
func withApp(cmd *cobra.Command, fn func(ctx context.Context, a *app.App) error) error {
	ctx, cancel := context.WithTimeout(cmd.Context(), timeout)
	defer cancel()

	a, err := app.FromFlags(ctx, cmd.Flags())
	if err != nil {
		return err
	}
	defer func() {
		_ = a.Close() // nolint:errcheck // safe to ignore in cleanup
	}()

	a.PrintNotifications(cmd.OutOrStdout())
	return fn(ctx, a)
}

var headerStyle = lipgloss.NewStyle().Bold(true).Padding(0, 1)
var cellStyle = lipgloss.NewStyle().Padding(0, 1)

func newTable(headers ...string) *table.Table {
	return table.New().
		Border(lipgloss.NormalBorder()).
		Headers(headers...).
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			return cellStyle
		})
}
