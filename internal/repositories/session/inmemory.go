package session

import (
	"context"
	"sync"

	"github.com/KirkDiggler/quest-dash/internal/entities"
	"github.com/KirkDiggler/quest-dash/internal/errors"
	"github.com/KirkDiggler/quest-dash/internal/pkg/clock"
)

// InMemoryRepository keeps sessions for the lifetime of the process
type InMemoryRepository struct {
	mu    sync.RWMutex
	clock clock.Clock
	store map[string]entities.Session
}

// NewInMemory creates an in-memory repository; a nil clock uses the real one
func NewInMemory(c clock.Clock) *InMemoryRepository {
	if c == nil {
		c = clock.New()
	}
	return &InMemoryRepository{
		clock: c,
		store: make(map[string]entities.Session),
	}
}

var _ Repository = (*InMemoryRepository)(nil)

// Save stores a session
func (r *InMemoryRepository) Save(_ context.Context, input SaveInput) (*SaveOutput, error) {
	if input.Profile == "" {
		return nil, errors.InvalidArgument(errProfileEmpty)
	}
	if input.AccessToken == "" {
		return nil, errors.InvalidArgument(errTokenEmpty)
	}

	ttl := input.TTL
	if ttl <= 0 {
		ttl = DefaultTTL
	}

	now := r.clock.Now()
	sess := entities.Session{
		Profile:     input.Profile,
		AccessToken: input.AccessToken,
		User:        input.User,
		CreatedAt:   now,
		ExpiresAt:   now.Add(ttl),
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.store[input.Profile] = sess

	return &SaveOutput{Session: &sess}, nil
}

// Get returns a copy of the stored session
func (r *InMemoryRepository) Get(_ context.Context, input GetInput) (*GetOutput, error) {
	if input.Profile == "" {
		return nil, errors.InvalidArgument(errProfileEmpty)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	sess, ok := r.store[input.Profile]
	if !ok {
		return nil, errors.NotFoundf("no session for profile %s", input.Profile)
	}
	if !r.clock.Now().Before(sess.ExpiresAt) {
		delete(r.store, input.Profile)
		return nil, errors.NotFoundf("session for profile %s has expired", input.Profile)
	}

	return &GetOutput{Session: &sess}, nil
}

// Delete removes a session
func (r *InMemoryRepository) Delete(_ context.Context, input DeleteInput) (*DeleteOutput, error) {
	if input.Profile == "" {
		return nil, errors.InvalidArgument(errProfileEmpty)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	_, ok := r.store[input.Profile]
	delete(r.store, input.Profile)
	return &DeleteOutput{Deleted: ok}, nil
}
