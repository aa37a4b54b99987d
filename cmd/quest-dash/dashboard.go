package main

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/quest-dash/internal/app"
	"github.com/KirkDiggler/quest-dash/internal/tui"
)

var adminCmd = &cobra.Command{
	Use:   "admin",
	Short: "Open the admin dashboard",
	Long:  `Manage quests, their decorators and the player statistics. Requires an administrator account.`,
	RunE:  runAdmin,
}

var playerCmd = &cobra.Command{
	Use:   "player",
	Short: "Open the player dashboard",
	Long:  `Browse available quests, complete them and talk to the NPC.`,
	RunE:  runPlayer,
}

func runAdmin(cmd *cobra.Command, _ []string) error {
	return withDashboard(cmd, func(ctx context.Context, a *app.App) error {
		return tui.RunAdmin(ctx, a.Admin, a.TUIOptions())
	})
}

func runPlayer(cmd *cobra.Command, _ []string) error {
	return withDashboard(cmd, func(ctx context.Context, a *app.App) error {
		return tui.RunPlayer(ctx, a.Player, a.TUIOptions())
	})
}

// withDashboard builds the application and prompts for a login first when
// no session is active
func withDashboard(cmd *cobra.Command, run func(ctx context.Context, a *app.App) error) error {
	ctx := cmd.Context()

	a, err := app.FromFlags(ctx, cmd.Flags())
	if err != nil {
		return err
	}
	defer func() {
		_ = a.Close() // nolint:errcheck // safe to ignore in cleanup
	}()

	if !a.Auth.RequireAuth(ctx) {
		if _, err := tui.RunLogin(ctx, a.Auth, a.TUIOptions()); err != nil {
			return err
		}
	}

	return run(ctx, a)
}
