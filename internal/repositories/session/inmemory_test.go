package session_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/quest-dash/internal/entities"
	"github.com/KirkDiggler/quest-dash/internal/errors"
	"github.com/KirkDiggler/quest-dash/internal/pkg/clock"
	"github.com/KirkDiggler/quest-dash/internal/repositories/session"
)

type stepClock struct {
	now time.Time
}

func (c *stepClock) Now() time.Time { return c.now }

func TestInMemoryRepository(t *testing.T) {
	ctx := context.Background()
	clk := &stepClock{now: time.Date(2025, 7, 1, 12, 0, 0, 0, time.UTC)}
	repo := session.NewInMemory(clk)

	_, err := repo.Save(ctx, session.SaveInput{
		Profile:     "player1",
		AccessToken: "tok",
		User:        entities.User{Username: "player1", Level: 2},
		TTL:         time.Minute,
	})
	require.NoError(t, err)

	out, err := repo.Get(ctx, session.GetInput{Profile: "player1"})
	require.NoError(t, err)
	assert.Equal(t, "tok", out.Session.AccessToken)

	clk.now = clk.now.Add(time.Minute)
	_, err = repo.Get(ctx, session.GetInput{Profile: "player1"})
	assert.True(t, errors.IsNotFound(err))

	del, err := repo.Delete(ctx, session.DeleteInput{Profile: "player1"})
	require.NoError(t, err)
	assert.False(t, del.Deleted)
}

func TestInMemoryRepositoryFixedClock(t *testing.T) {
	ctx := context.Background()
	at := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	repo := session.NewInMemory(clock.Fixed(at))

	out, err := repo.Save(ctx, session.SaveInput{Profile: "p", AccessToken: "t"})
	require.NoError(t, err)
	assert.True(t, out.Session.ExpiresAt.Equal(at.Add(session.DefaultTTL)))

	del, err := repo.Delete(ctx, session.DeleteInput{Profile: "p"})
	require.NoError(t, err)
	assert.True(t, del.Deleted)
}
