// Package session persists the logged-in user's access token per profile
package session

import (
	"context"
	"time"

	"github.com/KirkDiggler/quest-dash/internal/entities"
)

//go:generate mockgen -destination=mock/mock_repository.go -package=sessionmock github.com/KirkDiggler/quest-dash/internal/repositories/session Repository

// SaveInput contains parameters for storing a session
type SaveInput struct {
	Profile     string
	AccessToken string
	User        entities.User
	TTL         time.Duration // defaults to DefaultTTL
}

// SaveOutput contains the stored session
type SaveOutput struct {
	Session *entities.Session
}

// GetInput contains parameters for loading a session
type GetInput struct {
	Profile string
}

// GetOutput contains the loaded session
type GetOutput struct {
	Session *entities.Session
}

// DeleteInput contains parameters for removing a session
type DeleteInput struct {
	Profile string
}

// DeleteOutput reports whether a session was removed
type DeleteOutput struct {
	Deleted bool
}

// Repository defines session storage operations
type Repository interface {
	// Save stores the session of a profile, replacing any previous one
	Save(ctx context.Context, input SaveInput) (*SaveOutput, error)

	// Get returns the session of a profile, NotFound when missing or expired
	Get(ctx context.Context, input GetInput) (*GetOutput, error)

	// Delete removes the session of a profile
	Delete(ctx context.Context, input DeleteInput) (*DeleteOutput, error)
}
