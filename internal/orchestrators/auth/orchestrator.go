// Package auth manages the dashboard session and the identity guards
package auth

//go:generate mockgen -destination=mock/mock_service.go -package=authmock github.com/KirkDiggler/quest-dash/internal/orchestrators/auth Service

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/KirkDiggler/quest-dash/internal/clients/questapi"
	"github.com/KirkDiggler/quest-dash/internal/entities"
	"github.com/KirkDiggler/quest-dash/internal/errors"
	"github.com/KirkDiggler/quest-dash/internal/notify"
	"github.com/KirkDiggler/quest-dash/internal/repositories/session"
)

const (
	// DefaultProfile is used when no profile is configured
	DefaultProfile = "default"

	minUsernameLength = 3
	minPasswordLength = 6

	msgLoginSucceeded    = "Login successful!"
	msgLoginFailed       = "Invalid username or password"
	msgRegisterSucceeded = "Registration successful!"
	msgPasswordMismatch  = "Passwords do not match"
	msgLoggedOut         = "Logged out"
)

// Service defines the authentication operations
type Service interface {
	Login(ctx context.Context, input *LoginInput) (*LoginOutput, error)
	Register(ctx context.Context, input *RegisterInput) (*RegisterOutput, error)
	Logout(ctx context.Context) error

	// Current returns the active session, NotFound when logged out
	Current(ctx context.Context) (*entities.Session, error)

	// RequireAuth reports whether a session is active
	RequireAuth(ctx context.Context) bool

	// RequireAdmin reports whether the active session belongs to an administrator
	RequireAdmin(ctx context.Context) bool
}

// Config holds the dependencies for the auth orchestrator
type Config struct {
	Client     questapi.Client
	Sessions   session.Repository
	Notifier   notify.Sink
	Profile    string
	SessionTTL time.Duration
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	if c == nil {
		return errors.InvalidArgument("config cannot be nil")
	}

	vb := errors.NewValidationBuilder()
	if c.Client == nil {
		vb.RequiredField("Client")
	}
	if c.Sessions == nil {
		vb.RequiredField("Sessions")
	}
	if c.Notifier == nil {
		vb.RequiredField("Notifier")
	}
	if c.SessionTTL < 0 {
		vb.InvalidField("SessionTTL", "must not be negative")
	}
	return vb.Build()
}

type orchestrator struct {
	client   questapi.Client
	sessions session.Repository
	notifier notify.Sink
	profile  string
	ttl      time.Duration
}

// NewOrchestrator creates a new auth orchestrator
func NewOrchestrator(cfg *Config) (Service, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	profile := cfg.Profile
	if profile == "" {
		profile = DefaultProfile
	}

	return &orchestrator{
		client:   cfg.Client,
		sessions: cfg.Sessions,
		notifier: cfg.Notifier,
		profile:  profile,
		ttl:      cfg.SessionTTL,
	}, nil
}

func (o *orchestrator) Login(ctx context.Context, input *LoginInput) (*LoginOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("username", strings.TrimSpace(input.Username), vb)
	errors.ValidateRequired("password", input.Password, vb)
	if err := vb.Build(); err != nil {
		o.notifier.Notify(ctx, notify.LevelError, msgLoginFailed)
		return nil, err
	}

	token, err := o.client.Login(ctx, &questapi.LoginInput{
		Username: strings.TrimSpace(input.Username),
		Password: input.Password,
	})
	if err != nil {
		slog.Info("Login rejected", "username", input.Username, "error", err)
		o.notifier.Notify(ctx, notify.LevelError, msgLoginFailed)
		return nil, errors.Wrap(err, "login failed")
	}

	sess, err := o.store(ctx, token)
	if err != nil {
		o.notifier.Notify(ctx, notify.LevelError, errors.GetMessage(err))
		return nil, err
	}

	slog.Info("User logged in",
		"profile", o.profile,
		"username", sess.User.Username,
		"is_admin", sess.User.IsAdmin)
	o.notifier.Notify(ctx, notify.LevelSuccess, msgLoginSucceeded)

	return &LoginOutput{Session: sess}, nil
}

func (o *orchestrator) Register(ctx context.Context, input *RegisterInput) (*RegisterOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	if input.Password != input.ConfirmPassword {
		o.notifier.Notify(ctx, notify.LevelError, msgPasswordMismatch)
		return nil, errors.InvalidArgument(msgPasswordMismatch)
	}

	username := strings.TrimSpace(input.Username)
	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("username", username, vb)
	if username != "" && len(username) < minUsernameLength {
		vb.Fieldf("username", "must be at least %d characters", minUsernameLength)
	}
	if len(input.Password) < minPasswordLength {
		vb.Fieldf("password", "must be at least %d characters", minPasswordLength)
	}
	if err := vb.Build(); err != nil {
		o.notifier.Notify(ctx, notify.LevelError, errors.GetMessage(err))
		return nil, err
	}

	token, err := o.client.Register(ctx, &questapi.RegisterInput{
		Username: username,
		Password: input.Password,
		IsAdmin:  input.IsAdmin,
	})
	if err != nil {
		o.notifier.Notify(ctx, notify.LevelError, errors.GetMessage(err))
		return nil, errors.Wrap(err, "registration failed")
	}

	sess, err := o.store(ctx, token)
	if err != nil {
		o.notifier.Notify(ctx, notify.LevelError, errors.GetMessage(err))
		return nil, err
	}

	slog.Info("User registered", "profile", o.profile, "username", sess.User.Username)
	o.notifier.Notify(ctx, notify.LevelSuccess, msgRegisterSucceeded)

	return &RegisterOutput{Session: sess}, nil
}

func (o *orchestrator) store(ctx context.Context, token *entities.Token) (*entities.Session, error) {
	if token == nil || token.AccessToken == "" {
		return nil, errors.DataLoss("Quest API returned no access token")
	}

	out, err := o.sessions.Save(ctx, session.SaveInput{
		Profile:     o.profile,
		AccessToken: token.AccessToken,
		User:        token.User,
		TTL:         o.ttl,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to save session")
	}
	return out.Session, nil
}

func (o *orchestrator) Logout(ctx context.Context) error {
	if _, err := o.sessions.Delete(ctx, session.DeleteInput{Profile: o.profile}); err != nil {
		return errors.Wrap(err, "failed to delete session")
	}
	slog.Info("User logged out", "profile", o.profile)
	o.notifier.Notify(ctx, notify.LevelInfo, msgLoggedOut)
	return nil
}

func (o *orchestrator) Current(ctx context.Context) (*entities.Session, error) {
	out, err := o.sessions.Get(ctx, session.GetInput{Profile: o.profile})
	if err != nil {
		return nil, err
	}
	return out.Session, nil
}

func (o *orchestrator) RequireAuth(ctx context.Context) bool {
	sess, err := o.Current(ctx)
	if err != nil {
		if !errors.IsNotFound(err) {
			slog.Warn("Failed to load session", "profile", o.profile, "error", err)
		}
		return false
	}
	return sess.AccessToken != ""
}

func (o *orchestrator) RequireAdmin(ctx context.Context) bool {
	sess, err := o.Current(ctx)
	if err != nil {
		if !errors.IsNotFound(err) {
			slog.Warn("Failed to load session", "profile", o.profile, "error", err)
		}
		return false
	}
	return sess.AccessToken != "" && sess.User.IsAdmin
}
