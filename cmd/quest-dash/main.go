// Package main is the entry point for the quest dashboard
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/quest-dash/cmd/quest-dash/client"
	"github.com/KirkDiggler/quest-dash/internal/config"
)

var rootCmd = &cobra.Command{
	Use:   "quest-dash",
	Short: "Quest dashboard for the Quest API",
	Long: `quest-dash is a terminal dashboard for the Quest API. Administrators manage
quests and their decorators, players track and complete them.`,
	SilenceUsage: true,
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		stop()
		os.Exit(1)
	}
}

func init() {
	config.RegisterFlags(rootCmd.PersistentFlags())

	rootCmd.AddCommand(adminCmd)
	rootCmd.AddCommand(playerCmd)
	rootCmd.AddCommand(loginCmd)
	rootCmd.AddCommand(registerCmd)
	rootCmd.AddCommand(logoutCmd)
	rootCmd.AddCommand(whoamiCmd)
	rootCmd.AddCommand(client.ClientCmd)
}
