package tui

import (
	"strings"
	"sync"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/KirkDiggler/quest-dash/internal/notify"
)

const (
	toastDuration = 5 * time.Second
	toastLimit    = 4
	feedBuffer    = 32
)

var toastIcons = map[notify.Level]string{
	notify.LevelSuccess: "✓",
	notify.LevelError:   "✗",
	notify.LevelWarning: "⚠",
	notify.LevelInfo:    "ℹ",
}

// notificationMsg carries one notification into the program
type notificationMsg notify.Notification

// expireToastsMsg asks the model to drop stale toasts
type expireToastsMsg time.Time

// Subscriber is the part of notify.BusSink used by the UI
type Subscriber interface {
	Subscribe(fn func(notify.Notification)) string
	Unsubscribe(id string) error
}

// feed forwards bus notifications into a bubbletea program
type feed struct {
	ch     chan notify.Notification
	done   chan struct{}
	sub    Subscriber
	id     string
	closed sync.Once
}

func newFeed(sub Subscriber) *feed {
	f := &feed{
		ch:   make(chan notify.Notification, feedBuffer),
		done: make(chan struct{}),
		sub:  sub,
	}
	if sub != nil {
		f.id = sub.Subscribe(func(n notify.Notification) {
			select {
			case f.ch <- n:
			default:
				// UI is not draining; the notification is already logged
			}
		})
	}
	return f
}

// wait returns a command delivering the next notification
func (f *feed) wait() tea.Cmd {
	return func() tea.Msg {
		select {
		case n := <-f.ch:
			return notificationMsg(n)
		case <-f.done:
			return nil
		}
	}
}

func (f *feed) close() {
	f.closed.Do(func() {
		if f.sub != nil {
			_ = f.sub.Unsubscribe(f.id) // nolint:errcheck // program is exiting
		}
		close(f.done)
	})
}

// toasts holds the visible notifications, newest last
type toasts struct {
	items []notify.Notification
}

func (t *toasts) push(n notify.Notification) tea.Cmd {
	t.items = append(t.items, n)
	if len(t.items) > toastLimit {
		t.items = t.items[len(t.items)-toastLimit:]
	}
	return tea.Tick(toastDuration, func(now time.Time) tea.Msg {
		return expireToastsMsg(now)
	})
}

func (t *toasts) expire(now time.Time) {
	kept := t.items[:0]
	for _, n := range t.items {
		if now.Sub(n.At) < toastDuration {
			kept = append(kept, n)
		}
	}
	t.items = kept
}

func (t *toasts) view(st styles) string {
	if len(t.items) == 0 {
		return ""
	}
	lines := make([]string, 0, len(t.items))
	for _, n := range t.items {
		line := toastIcons[n.Level] + " " + n.Message
		switch n.Level {
		case notify.LevelSuccess:
			line = st.success.Render(line)
		case notify.LevelError:
			line = st.error.Render(line)
		case notify.LevelWarning:
			line = st.warning.Render(line)
		default:
			line = st.info.Render(line)
		}
		lines = append(lines, line)
	}
	return strings.Join(lines, "\n")
}
