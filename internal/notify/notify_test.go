package notify_test

import (
	"bytes"
	"context"
	"log/slog"
	"testing"
	"time"

	"github.com/KirkDiggler/rpg-toolkit/events"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/quest-dash/internal/notify"
	"github.com/KirkDiggler/quest-dash/internal/pkg/clock"
	"github.com/KirkDiggler/quest-dash/internal/pkg/idgen"
)

type BusSinkTestSuite struct {
	suite.Suite
	bus  events.EventBus
	sink *notify.BusSink
	ctx  context.Context
	now  time.Time
}

func TestBusSinkSuite(t *testing.T) {
	suite.Run(t, new(BusSinkTestSuite))
}

func (s *BusSinkTestSuite) SetupTest() {
	s.bus = events.NewBus()
	s.ctx = context.Background()
	s.now = time.Date(2025, 7, 1, 9, 30, 0, 0, time.UTC)

	sink, err := notify.NewBusSink(&notify.BusConfig{
		Bus:   s.bus,
		IDGen: idgen.NewSequential("note"),
		Clock: clock.Fixed(s.now),
	})
	s.Require().NoError(err)
	s.sink = sink
}

func (s *BusSinkTestSuite) TestNewBusSinkRequiresBus() {
	_, err := notify.NewBusSink(&notify.BusConfig{IDGen: idgen.NewSequential("n")})
	s.Error(err)

	_, err = notify.NewBusSink(nil)
	s.Error(err)
}

func (s *BusSinkTestSuite) TestSubscribersReceiveNotifications() {
	var got []notify.Notification
	s.sink.Subscribe(func(n notify.Notification) {
		got = append(got, n)
	})

	s.sink.Notify(s.ctx, notify.LevelSuccess, "Quest created")
	s.sink.Notify(s.ctx, notify.LevelError, "Quest not found")

	s.Require().Len(got, 2)
	s.Equal("note_1", got[0].ID)
	s.Equal(notify.LevelSuccess, got[0].Level)
	s.Equal("Quest created", got[0].Message)
	s.True(got[0].At.Equal(s.now))
	s.Equal(notify.LevelError, got[1].Level)
}

func (s *BusSinkTestSuite) TestUnsubscribe() {
	calls := 0
	id := s.sink.Subscribe(func(notify.Notification) { calls++ })

	s.sink.Notify(s.ctx, notify.LevelInfo, "first")
	s.Require().NoError(s.sink.Unsubscribe(id))
	s.sink.Notify(s.ctx, notify.LevelInfo, "second")

	s.Equal(1, calls)
}

func TestLogSink(t *testing.T) {
	var buf bytes.Buffer
	sink := &notify.LogSink{Logger: slog.New(slog.NewTextHandler(&buf, nil))}

	sink.Notify(context.Background(), notify.LevelWarning, "You need a higher level")

	out := buf.String()
	assert.Contains(t, out, "level=WARN")
	assert.Contains(t, out, "You need a higher level")
	assert.Contains(t, out, "notification=warning")
}

func TestRecorder(t *testing.T) {
	r := &notify.Recorder{}
	_, ok := r.Last()
	assert.False(t, ok)

	r.Notify(context.Background(), notify.LevelInfo, "one")
	r.Notify(context.Background(), notify.LevelError, "two")

	all := r.All()
	require.Len(t, all, 2)
	assert.Equal(t, "one", all[0].Message)

	last, ok := r.Last()
	require.True(t, ok)
	assert.Equal(t, notify.LevelError, last.Level)
}
