package app

import (
	"context"
	"log/slog"

	"github.com/spf13/pflag"

	"github.com/KirkDiggler/quest-dash/internal/config"
	"github.com/KirkDiggler/quest-dash/internal/errors"
)

// FromFlags loads the layered configuration, installs the default logger and
// builds the application. Close also closes the log file.
func FromFlags(ctx context.Context, fs *pflag.FlagSet) (*App, error) {
	settings, err := config.LoadFromFlags(fs)
	if err != nil {
		return nil, err
	}

	w, closeLog, err := settings.Log.Output()
	if err != nil {
		return nil, errors.Wrap(err, "failed to open log output")
	}
	slog.SetDefault(settings.Log.NewLogger(w))

	a, err := New(ctx, &Config{Settings: settings})
	if err != nil {
		_ = closeLog() // nolint:errcheck // already failing
		return nil, err
	}
	a.closers = append([]func() error{closeLog}, a.closers...)

	slog.Debug("Application ready",
		"api_url", settings.API.URL,
		"session_store", settings.Session.Store,
		"profile", settings.Session.Profile)
	return a, nil
}
