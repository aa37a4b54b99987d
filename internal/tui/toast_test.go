package tui

import (
	"context"
	"testing"
	"time"

	"github.com/KirkDiggler/rpg-toolkit/events"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/quest-dash/internal/notify"
	"github.com/KirkDiggler/quest-dash/internal/pkg/clock"
	"github.com/KirkDiggler/quest-dash/internal/pkg/idgen"
)

func TestFeedForwardsBusNotifications(t *testing.T) {
	now := time.Date(2025, 7, 1, 9, 30, 0, 0, time.UTC)
	sink, err := notify.NewBusSink(&notify.BusConfig{
		Bus:   events.NewBus(),
		IDGen: idgen.NewSequential("note"),
		Clock: clock.Fixed(now),
	})
	require.NoError(t, err)

	f := newFeed(sink)
	defer f.close()

	sink.Notify(context.Background(), notify.LevelWarning, "Please fill in the value")

	msg := f.wait()()
	n, ok := msg.(notificationMsg)
	require.True(t, ok)
	assert.Equal(t, notify.LevelWarning, n.Level)
	assert.Equal(t, "Please fill in the value", n.Message)
	assert.Equal(t, now, n.At)
}

func TestFeedCloseReleasesWaiters(t *testing.T) {
	f := newFeed(nil)
	f.close()
	f.close()

	assert.Nil(t, f.wait()())
}

func TestToastsKeepNewestAndExpire(t *testing.T) {
	base := time.Date(2025, 7, 1, 9, 30, 0, 0, time.UTC)
	var tt toasts

	for i := 0; i < toastLimit+2; i++ {
		cmd := tt.push(notify.Notification{
			Level:   notify.LevelInfo,
			Message: string(rune('a' + i)),
			At:      base.Add(time.Duration(i) * time.Second),
		})
		assert.NotNil(t, cmd)
	}
	require.Len(t, tt.items, toastLimit)
	assert.Equal(t, "c", tt.items[0].Message)

	tt.expire(base.Add(toastDuration + 3*time.Second))
	require.Len(t, tt.items, 2)
	assert.Equal(t, "e", tt.items[0].Message)

	view := tt.view(newStyles(DefaultTheme))
	assert.Contains(t, view, "ℹ e")
	assert.Contains(t, view, "ℹ f")
}
