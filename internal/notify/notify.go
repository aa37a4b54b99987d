// Package notify delivers leveled, user-facing notifications
package notify

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/KirkDiggler/rpg-toolkit/core"
)

//go:generate mockgen -destination=mock/mock_sink.go -package=notifymock github.com/KirkDiggler/quest-dash/internal/notify Sink

// Level is the severity shown with a notification
type Level string

const (
	LevelSuccess Level = "success"
	LevelError   Level = "error"
	LevelWarning Level = "warning"
	LevelInfo    Level = "info"
)

// Sink receives notifications
type Sink interface {
	Notify(ctx context.Context, level Level, message string)
}

// Notification is a delivered message
type Notification struct {
	ID      string
	Level   Level
	Message string
	At      time.Time
}

// GetID returns the notification ID
func (n *Notification) GetID() string {
	return n.ID
}

// GetType returns the entity type used on the event bus
func (n *Notification) GetType() string {
	return "notification"
}

var _ core.Entity = (*Notification)(nil)

// LogSink writes notifications to slog
type LogSink struct {
	Logger *slog.Logger
}

// Notify logs the message at the slog level matching level
func (s *LogSink) Notify(ctx context.Context, level Level, message string) {
	logger := s.Logger
	if logger == nil {
		logger = slog.Default()
	}
	logger.Log(ctx, slogLevel(level), message, "notification", string(level))
}

func slogLevel(level Level) slog.Level {
	switch level {
	case LevelError:
		return slog.LevelError
	case LevelWarning:
		return slog.LevelWarn
	default:
		return slog.LevelInfo
	}
}

// Recorder keeps every notification in memory
type Recorder struct {
	mu    sync.Mutex
	items []Notification
}

// Notify records the notification
func (r *Recorder) Notify(_ context.Context, level Level, message string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.items = append(r.items, Notification{Level: level, Message: message, At: time.Now()})
}

// All returns the recorded notifications in delivery order
func (r *Recorder) All() []Notification {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]Notification, len(r.items))
	copy(out, r.items)
	return out
}

// Last returns the most recent notification
func (r *Recorder) Last() (Notification, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.items) == 0 {
		return Notification{}, false
	}
	return r.items[len(r.items)-1], true
}
