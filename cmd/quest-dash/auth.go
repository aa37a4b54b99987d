package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/quest-dash/internal/app"
	"github.com/KirkDiggler/quest-dash/internal/errors"
	"github.com/KirkDiggler/quest-dash/internal/tui"
)

var loginCmd = &cobra.Command{
	Use:   "login",
	Short: "Log in and store the session",
	RunE:  runLogin,
}

var registerCmd = &cobra.Command{
	Use:   "register",
	Short: "Create an account and log in",
	RunE:  runRegister,
}

var logoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Forget the stored session",
	RunE:  runLogout,
}

var whoamiCmd = &cobra.Command{
	Use:   "whoami",
	Short: "Show the logged in user",
	RunE:  runWhoami,
}

func runLogin(cmd *cobra.Command, _ []string) error {
	a, err := app.FromFlags(cmd.Context(), cmd.Flags())
	if err != nil {
		return err
	}
	defer func() {
		_ = a.Close() // nolint:errcheck // safe to ignore in cleanup
	}()

	sess, err := tui.RunLogin(cmd.Context(), a.Auth, a.TUIOptions())
	if err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "✅ Logged in as %s\n", sess.User.Username)
	return nil
}

func runRegister(cmd *cobra.Command, _ []string) error {
	a, err := app.FromFlags(cmd.Context(), cmd.Flags())
	if err != nil {
		return err
	}
	defer func() {
		_ = a.Close() // nolint:errcheck // safe to ignore in cleanup
	}()

	sess, err := tui.RunRegister(cmd.Context(), a.Auth, a.TUIOptions())
	if err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "✅ Account created for %s\n", sess.User.Username)
	return nil
}

func runLogout(cmd *cobra.Command, _ []string) error {
	a, err := app.FromFlags(cmd.Context(), cmd.Flags())
	if err != nil {
		return err
	}
	defer func() {
		_ = a.Close() // nolint:errcheck // safe to ignore in cleanup
	}()

	a.PrintNotifications(cmd.OutOrStdout())
	return a.Auth.Logout(cmd.Context())
}

func runWhoami(cmd *cobra.Command, _ []string) error {
	a, err := app.FromFlags(cmd.Context(), cmd.Flags())
	if err != nil {
		return err
	}
	defer func() {
		_ = a.Close() // nolint:errcheck // safe to ignore in cleanup
	}()

	sess, err := a.Auth.Current(cmd.Context())
	if errors.IsNotFound(err) {
		fmt.Fprintln(cmd.OutOrStdout(), "Not logged in")
		return nil
	}
	if err != nil {
		return err
	}

	role := "player"
	if sess.User.IsAdmin {
		role = "admin"
	}
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "User:    %s (%s)\n", sess.User.Username, role)
	fmt.Fprintf(out, "Level:   %d\n", sess.User.Level)
	fmt.Fprintf(out, "Profile: %s\n", sess.Profile)
	fmt.Fprintf(out, "Expires: %s\n", sess.ExpiresAt.Format("2006-01-02 15:04"))
	return nil
}
