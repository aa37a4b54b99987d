package auth

import (
	"context"

	"github.com/KirkDiggler/quest-dash/internal/clients/questapi"
	"github.com/KirkDiggler/quest-dash/internal/repositories/session"
)

// SessionTokens reads the bearer token of a profile from the session repository
type SessionTokens struct {
	Sessions session.Repository
	Profile  string
}

var _ questapi.TokenSource = (*SessionTokens)(nil)

// Token returns the stored access token, NotFound when logged out
func (t *SessionTokens) Token(ctx context.Context) (string, error) {
	profile := t.Profile
	if profile == "" {
		profile = DefaultProfile
	}

	out, err := t.Sessions.Get(ctx, session.GetInput{Profile: profile})
	if err != nil {
		return "", err
	}
	return out.Session.AccessToken, nil
}
