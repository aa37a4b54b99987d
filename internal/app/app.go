// Package app wires the quest-dash components from a loaded configuration
package app

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/KirkDiggler/rpg-toolkit/events"

	"github.com/KirkDiggler/quest-dash/internal/clients/questapi"
	"github.com/KirkDiggler/quest-dash/internal/config"
	"github.com/KirkDiggler/quest-dash/internal/decorators"
	"github.com/KirkDiggler/quest-dash/internal/errors"
	"github.com/KirkDiggler/quest-dash/internal/notify"
	"github.com/KirkDiggler/quest-dash/internal/orchestrators/admin"
	"github.com/KirkDiggler/quest-dash/internal/orchestrators/auth"
	"github.com/KirkDiggler/quest-dash/internal/orchestrators/player"
	"github.com/KirkDiggler/quest-dash/internal/orchestrators/questform"
	"github.com/KirkDiggler/quest-dash/internal/pkg/clock"
	"github.com/KirkDiggler/quest-dash/internal/pkg/idgen"
	redisclient "github.com/KirkDiggler/quest-dash/internal/redis"
	"github.com/KirkDiggler/quest-dash/internal/repositories/session"
	"github.com/KirkDiggler/quest-dash/internal/tui"
)

const redisPingTimeout = 3 * time.Second

// Config holds what New needs to assemble the application
type Config struct {
	Settings *config.Config
	// HTTPClient overrides the Quest API transport
	HTTPClient *http.Client
	// Redis overrides the session store connection
	Redis redisclient.Client
	Clock clock.Clock
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	if c == nil {
		return errors.InvalidArgument("config cannot be nil")
	}

	vb := errors.NewValidationBuilder()
	if c.Settings == nil {
		vb.RequiredField("Settings")
	}
	return vb.Build()
}

// App is the assembled object graph
type App struct {
	Settings *config.Config
	Notifier *notify.BusSink
	Sessions session.Repository
	Client   questapi.Client
	Auth     auth.Service
	Admin    admin.Service
	Player   player.Service
	Catalog  *decorators.Catalog

	closers []func() error
}

// New builds every component. Close releases the connections it opened.
func New(ctx context.Context, cfg *Config) (*App, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	settings := cfg.Settings
	clk := cfg.Clock
	if clk == nil {
		clk = clock.New()
	}

	a := &App{Settings: settings, Catalog: decorators.DefaultCatalog()}

	notifier, err := notify.NewBusSink(&notify.BusConfig{
		Bus:   events.NewBus(),
		IDGen: idgen.NewUUID("note"),
		Clock: clk,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to create notifier")
	}
	a.Notifier = notifier
	logSink := &notify.LogSink{Logger: slog.Default()}
	notifier.Subscribe(func(n notify.Notification) {
		logSink.Notify(context.Background(), n.Level, n.Message)
	})

	sessions, err := a.buildSessions(ctx, cfg, clk)
	if err != nil {
		return nil, err
	}
	a.Sessions = sessions

	client, err := questapi.New(&questapi.Config{
		BaseURL:     settings.API.URL,
		HTTPTimeout: settings.API.Timeout.Duration,
		Tokens:      &auth.SessionTokens{Sessions: sessions, Profile: settings.Session.Profile},
		HTTPClient:  cfg.HTTPClient,
	})
	if err != nil {
		_ = a.Close() // nolint:errcheck // already failing
		return nil, errors.Wrap(err, "failed to create Quest API client")
	}
	a.Client = client

	authSvc, err := auth.NewOrchestrator(&auth.Config{
		Client:     client,
		Sessions:   sessions,
		Notifier:   notifier,
		Profile:    settings.Session.Profile,
		SessionTTL: settings.Session.TTL.Duration,
	})
	if err != nil {
		_ = a.Close() // nolint:errcheck // already failing
		return nil, errors.Wrap(err, "failed to create auth orchestrator")
	}
	a.Auth = authSvc

	style := decorators.ParseStyle(settings.Display.Style)
	form, err := questform.New(&questform.Config{
		Quests:   client,
		Notifier: notifier,
		Catalog:  a.Catalog,
		Style:    style,
	})
	if err != nil {
		_ = a.Close() // nolint:errcheck // already failing
		return nil, errors.Wrap(err, "failed to create quest form")
	}

	adminSvc, err := admin.NewOrchestrator(&admin.Config{
		Guard:    authSvc,
		Quests:   client,
		Notifier: notifier,
		Form:     form,
	})
	if err != nil {
		_ = a.Close() // nolint:errcheck // already failing
		return nil, errors.Wrap(err, "failed to create admin orchestrator")
	}
	a.Admin = adminSvc

	playerSvc, err := player.NewOrchestrator(&player.Config{
		Guard:    authSvc,
		Quests:   client,
		Notifier: notifier,
		Renderer: decorators.NewRenderer(style, a.Catalog),
	})
	if err != nil {
		_ = a.Close() // nolint:errcheck // already failing
		return nil, errors.Wrap(err, "failed to create player orchestrator")
	}
	a.Player = playerSvc

	return a, nil
}

func (a *App) buildSessions(ctx context.Context, cfg *Config, clk clock.Clock) (session.Repository, error) {
	settings := cfg.Settings.Session
	if settings.Store == config.StoreMemory {
		slog.Warn("Using in-memory sessions; logins last for this process only")
		return session.NewInMemory(clk), nil
	}

	client := cfg.Redis
	if client == nil {
		c, err := redisclient.NewClient(settings.RedisAddr, &redisclient.Options{
			Password: settings.RedisPassword,
			DB:       settings.RedisDB,
		})
		if err != nil {
			return nil, errors.WrapWithCode(err, errors.CodeInvalidArgument, "failed to create redis client")
		}
		if err := redisclient.Ping(ctx, c, redisPingTimeout); err != nil {
			_ = c.Close() // nolint:errcheck // already failing
			return nil, errors.WrapWithCode(err, errors.CodeUnavailable, "redis is unreachable").
				WithMeta("addr", settings.RedisAddr)
		}
		a.closers = append(a.closers, c.Close)
		client = c
	}

	repo, err := session.NewRedisRepository(&session.Config{Client: client, Clock: clk})
	if err != nil {
		return nil, errors.Wrap(err, "failed to create session repository")
	}
	return repo, nil
}

// TUIOptions returns the presentation settings for the dashboards
func (a *App) TUIOptions() tui.Options {
	return tui.Options{
		Theme:         a.Settings.Display.Theme,
		Style:         decorators.ParseStyle(a.Settings.Display.Style),
		Catalog:       a.Catalog,
		Notifications: a.Notifier,
	}
}

// PrintNotifications writes every notification to w, one per line
func (a *App) PrintNotifications(w io.Writer) string {
	return a.Notifier.Subscribe(func(n notify.Notification) {
		_, _ = io.WriteString(w, notificationPrefix(n.Level)+n.Message+"\n") // nolint:errcheck // best effort
	})
}

func notificationPrefix(level notify.Level) string {
	switch level {
	case notify.LevelSuccess:
		return "✓ "
	case notify.LevelError:
		return "✗ "
	case notify.LevelWarning:
		return "⚠ "
	default:
		return "ℹ "
	}
}

// Close releases the connections opened by New
func (a *App) Close() error {
	var first error
	for i := len(a.closers) - 1; i >= 0; i-- {
		if err := a.closers[i](); err != nil && first == nil {
			first = err
		}
	}
	a.closers = nil
	return first
}
