package notify

import (
	"context"
	"log/slog"

	"github.com/KirkDiggler/rpg-toolkit/events"

	"github.com/KirkDiggler/quest-dash/internal/errors"
	"github.com/KirkDiggler/quest-dash/internal/pkg/clock"
	"github.com/KirkDiggler/quest-dash/internal/pkg/idgen"
)

// EventType is the bus event carrying a *Notification as its source
const EventType = "quest_dash.notification"

// BusConfig contains the dependencies of a BusSink
type BusConfig struct {
	Bus   events.EventBus
	IDGen idgen.Generator
	Clock clock.Clock
}

// Validate ensures all required dependencies are provided
func (c *BusConfig) Validate() error {
	vb := errors.NewValidationBuilder()
	if c == nil {
		return errors.InvalidArgument("config cannot be nil")
	}
	if c.Bus == nil {
		vb.RequiredField("Bus")
	}
	if c.IDGen == nil {
		vb.RequiredField("IDGen")
	}
	return vb.Build()
}

// BusSink publishes notifications on an event bus so any number of views
// can subscribe to them
type BusSink struct {
	bus   events.EventBus
	idGen idgen.Generator
	clock clock.Clock
}

// NewBusSink creates a sink publishing on cfg.Bus
func NewBusSink(cfg *BusConfig) (*BusSink, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	c := cfg.Clock
	if c == nil {
		c = clock.New()
	}

	return &BusSink{
		bus:   cfg.Bus,
		idGen: cfg.IDGen,
		clock: c,
	}, nil
}

var _ Sink = (*BusSink)(nil)

// Notify publishes the notification. Publishing failures are logged, never returned.
func (s *BusSink) Notify(ctx context.Context, level Level, message string) {
	n := &Notification{
		ID:      s.idGen.Generate(),
		Level:   level,
		Message: message,
		At:      s.clock.Now(),
	}

	if err := s.bus.Publish(ctx, events.NewGameEvent(EventType, n, nil)); err != nil {
		slog.Warn("Failed to publish notification",
			"notification_id", n.ID,
			"level", string(level),
			"error", err)
	}
}

// Subscribe registers fn for every published notification and returns the
// subscription ID accepted by Unsubscribe
func (s *BusSink) Subscribe(fn func(Notification)) string {
	return s.bus.SubscribeFunc(EventType, 0, func(_ context.Context, e events.Event) error {
		n, ok := e.Source().(*Notification)
		if !ok {
			return nil
		}
		fn(*n)
		return nil
	})
}

// Unsubscribe removes a subscription created by Subscribe
func (s *BusSink) Unsubscribe(id string) error {
	return s.bus.Unsubscribe(id)
}
