// Package player implements the player dashboard: progression, quests and actions
package player

//go:generate mockgen -destination=mock/mock_service.go -package=playermock github.com/KirkDiggler/quest-dash/internal/orchestrators/player Service

import (
	"context"
	"fmt"
	"log/slog"

	"golang.org/x/sync/errgroup"

	"github.com/KirkDiggler/quest-dash/internal/decorators"
	"github.com/KirkDiggler/quest-dash/internal/entities"
	"github.com/KirkDiggler/quest-dash/internal/errors"
	"github.com/KirkDiggler/quest-dash/internal/notify"
)

const (
	msgNotAuthenticated = "Please log in first"
	msgStatusFailed     = "Failed to load status"
	msgQuestsFailed     = "Failed to load quests"
	msgCompleteFailed   = "Failed to complete quest"
	msgNPCFailed        = "Failed to talk to the NPC"
)

// Guard decides whether a player session is active
type Guard interface {
	RequireAuth(ctx context.Context) bool
}

// QuestService is the part of the Quest API used by the player dashboard
type QuestService interface {
	GetPlayerStatus(ctx context.Context) (*entities.PlayerStatus, error)
	ListPlayerQuests(ctx context.Context) ([]*entities.QuestWithStatus, error)
	CompleteQuest(ctx context.Context, questID int64) (*entities.QuestResult, error)
	TalkToNPC(ctx context.Context) (*entities.ActionResult, error)
}

// Service defines the player dashboard operations
type Service interface {
	// Init aborts before any request when no session is active
	Init(ctx context.Context) (*DashboardOutput, error)

	// Refresh loads status and quests concurrently. Each failure is notified
	// separately and the output keeps whatever loaded.
	Refresh(ctx context.Context) (*DashboardOutput, error)

	CompleteQuest(ctx context.Context, questID int64) (*CompleteQuestOutput, error)
	TalkToNPC(ctx context.Context) (*TalkToNPCOutput, error)
}

// Config holds the dependencies for the player orchestrator
type Config struct {
	Guard    Guard
	Quests   QuestService
	Notifier notify.Sink
	// Renderer formats reward summaries; defaults to emoji style
	Renderer *decorators.Renderer
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	if c == nil {
		return errors.InvalidArgument("config cannot be nil")
	}

	vb := errors.NewValidationBuilder()
	if c.Guard == nil {
		vb.RequiredField("Guard")
	}
	if c.Quests == nil {
		vb.RequiredField("Quests")
	}
	if c.Notifier == nil {
		vb.RequiredField("Notifier")
	}
	return vb.Build()
}

type orchestrator struct {
	guard    Guard
	quests   QuestService
	notifier notify.Sink
	renderer *decorators.Renderer
}

// NewOrchestrator creates a new player orchestrator
func NewOrchestrator(cfg *Config) (Service, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	renderer := cfg.Renderer
	if renderer == nil {
		renderer = decorators.NewRenderer(decorators.StyleEmoji, nil)
	}

	return &orchestrator{
		guard:    cfg.Guard,
		quests:   cfg.Quests,
		notifier: cfg.Notifier,
		renderer: renderer,
	}, nil
}

func (o *orchestrator) Init(ctx context.Context) (*DashboardOutput, error) {
	if !o.guard.RequireAuth(ctx) {
		return nil, errors.Unauthenticated(msgNotAuthenticated)
	}
	return o.Refresh(ctx)
}

func (o *orchestrator) Refresh(ctx context.Context) (*DashboardOutput, error) {
	out := &DashboardOutput{}

	var g errgroup.Group
	g.Go(func() error {
		status, err := o.quests.GetPlayerStatus(ctx)
		if err != nil {
			slog.Error("Failed to load player status", "error", err)
			o.notifier.Notify(ctx, notify.LevelError, msgStatusFailed)
			return errors.Wrap(err, msgStatusFailed)
		}
		out.Status = status
		return nil
	})
	g.Go(func() error {
		quests, err := o.quests.ListPlayerQuests(ctx)
		if err != nil {
			slog.Error("Failed to load player quests", "error", err)
			o.notifier.Notify(ctx, notify.LevelError, msgQuestsFailed)
			return errors.Wrap(err, msgQuestsFailed)
		}
		out.Quests = quests
		return nil
	})

	return out, g.Wait()
}

func (o *orchestrator) CompleteQuest(ctx context.Context, questID int64) (*CompleteQuestOutput, error) {
	result, err := o.quests.CompleteQuest(ctx, questID)
	if err != nil {
		slog.Error("Failed to complete quest", "quest_id", questID, "error", err)
		o.notifier.Notify(ctx, notify.LevelError, msgCompleteFailed)
		return nil, errors.Wrap(err, msgCompleteFailed)
	}

	out := &CompleteQuestOutput{Result: result}
	if !result.Success {
		o.notifier.Notify(ctx, notify.LevelWarning, result.Message)
		return out, nil
	}

	slog.Info("Quest completed", "quest_id", questID)
	out.Summary = RewardSummary(o.renderer, result.Rewards)
	o.notifier.Notify(ctx, notify.LevelSuccess, result.Message)

	dashboard, err := o.Refresh(ctx)
	out.Dashboard = dashboard
	return out, err
}

func (o *orchestrator) TalkToNPC(ctx context.Context) (*TalkToNPCOutput, error) {
	result, err := o.quests.TalkToNPC(ctx)
	if err != nil {
		slog.Error("Failed to talk to NPC", "error", err)
		o.notifier.Notify(ctx, notify.LevelError, msgNPCFailed)
		return nil, errors.Wrap(err, msgNPCFailed)
	}

	out := &TalkToNPCOutput{Result: result}
	if !result.Success {
		o.notifier.Notify(ctx, notify.LevelInfo, result.Message)
		return out, nil
	}

	o.notifier.Notify(ctx, notify.LevelSuccess, result.Message)
	dashboard, err := o.Refresh(ctx)
	out.Dashboard = dashboard
	return out, err
}

// RewardSummary renders the rewards granted by a completed quest
func RewardSummary(r *decorators.Renderer, rewards *entities.QuestRewards) []string {
	if rewards == nil {
		return nil
	}

	plain := r.Style() == decorators.StylePlain
	var lines []string
	if rewards.XP > 0 {
		lines = append(lines, withGlyph(plain, "⭐", fmt.Sprintf("+%d XP", rewards.XP)))
	}
	if rewards.Money > 0 {
		lines = append(lines, withGlyph(plain, "💰", fmt.Sprintf("+%d coins", rewards.Money)))
	}
	for _, item := range rewards.Items {
		lines = append(lines, r.ItemLabel(item, decorators.DefaultRewardGlyph))
	}
	if rewards.LeveledUp {
		lines = append(lines, withGlyph(plain, "🎉", fmt.Sprintf("LEVEL UP! Level %d", rewards.NewLevel)))
	}
	return lines
}

func withGlyph(plain bool, glyph, text string) string {
	if plain {
		return text
	}
	return glyph + " " + text
}
