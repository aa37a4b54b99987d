// Package admin implements the admin dashboard: quest management and stats
package admin

//go:generate mockgen -destination=mock/mock_service.go -package=adminmock github.com/KirkDiggler/quest-dash/internal/orchestrators/admin Service

import (
	"context"
	"log/slog"

	"golang.org/x/sync/errgroup"

	"github.com/KirkDiggler/quest-dash/internal/entities"
	"github.com/KirkDiggler/quest-dash/internal/errors"
	"github.com/KirkDiggler/quest-dash/internal/notify"
	"github.com/KirkDiggler/quest-dash/internal/orchestrators/questform"
)

const (
	msgAccessDenied  = "Access denied. Administrator rights required."
	msgLoadFailed    = "Failed to load quests"
	msgQuestNotFound = "Quest not found"
	msgQuestDeleted  = "Quest deleted"
	msgDeleteFailed  = "Failed to delete quest"
	msgFixIDsFailed  = "Failed to fix quest IDs"
)

// Guard decides whether the current session may use the admin dashboard
type Guard interface {
	RequireAdmin(ctx context.Context) bool
}

// QuestService is the part of the Quest API used by the admin dashboard
type QuestService interface {
	questform.Persistence
	ListQuests(ctx context.Context) ([]*entities.Quest, error)
	DeleteQuest(ctx context.Context, questID int64) error
	FixQuestIDs(ctx context.Context) (*entities.FixIDsResult, error)
	GetAdminStats(ctx context.Context) (*entities.AdminStats, error)
}

// Service defines the admin dashboard operations
type Service interface {
	// Init checks the admin guard and loads the dashboard. It makes no other
	// call when the guard refuses.
	Init(ctx context.Context) (*DashboardOutput, error)

	// Refresh loads quests and stats concurrently
	Refresh(ctx context.Context) (*DashboardOutput, error)

	// OpenCreate opens an empty quest form
	OpenCreate()

	// EditQuest reloads the quest list and opens the form on questID
	EditQuest(ctx context.Context, questID int64) error

	DeleteQuest(ctx context.Context, questID int64) (*DashboardOutput, error)
	FixIDs(ctx context.Context) (*FixIDsOutput, error)

	// SubmitForm saves the open form and refreshes the dashboard
	SubmitForm(ctx context.Context) (*SubmitFormOutput, error)

	// Form exposes the form controller to the UI
	Form() *questform.Controller
}

// Config holds the dependencies for the admin orchestrator
type Config struct {
	Guard    Guard
	Quests   QuestService
	Notifier notify.Sink
	Form     *questform.Controller
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
	if c.Form == nil {
		vb.RequiredField("Form")
	}
	return vb.Build()
}

type orchestrator struct {
	guard    Guard
	quests   QuestService
	notifier notify.Sink
	form     *questform.Controller
}

// NewOrchestrator creates a new admin orchestrator
func NewOrchestrator(cfg *Config) (Service, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	return &orchestrator{
		guard:    cfg.Guard,
		quests:   cfg.Quests,
		notifier: cfg.Notifier,
		form:     cfg.Form,
	}, nil
}

func (o *orchestrator) Form() *questform.Controller {
	return o.form
}

func (o *orchestrator) Init(ctx context.Context) (*DashboardOutput, error) {
	if !o.guard.RequireAdmin(ctx) {
		o.notifier.Notify(ctx, notify.LevelError, msgAccessDenied)
		return nil, errors.PermissionDenied(msgAccessDenied)
	}
	return o.Refresh(ctx)
}

func (o *orchestrator) Refresh(ctx context.Context) (*DashboardOutput, error) {
	var (
		quests []*entities.Quest
		stats  *entities.AdminStats
	)

	// Neither call cancels the other; a stats failure only zeroes the counters.
	var g errgroup.Group
	g.Go(func() error {
		var err error
		quests, err = o.quests.ListQuests(ctx)
		return err
	})
	g.Go(func() error {
		s, err := o.quests.GetAdminStats(ctx)
		if err != nil {
			slog.Warn("Failed to load admin stats", "error", err)
			s = &entities.AdminStats{}
		}
		stats = s
		return nil
	})

	if err := g.Wait(); err != nil {
		o.notifier.Notify(ctx, notify.LevelError, msgLoadFailed)
		return nil, errors.Wrap(err, msgLoadFailed)
	}

	return &DashboardOutput{Quests: quests, Stats: stats}, nil
}

func (o *orchestrator) OpenCreate() {
	o.form.OpenForCreate()
}

func (o *orchestrator) EditQuest(ctx context.Context, questID int64) error {
	quests, err := o.quests.ListQuests(ctx)
	if err != nil {
		o.notifier.Notify(ctx, notify.LevelError, msgLoadFailed)
		return errors.Wrap(err, msgLoadFailed)
	}

	for _, q := range quests {
		if q != nil && q.ID == questID {
			return o.form.OpenForEdit(q)
		}
	}

	o.notifier.Notify(ctx, notify.LevelError, msgQuestNotFound)
	return errors.NotFound(msgQuestNotFound).WithMeta("quest_id", questID)
}

func (o *orchestrator) DeleteQuest(ctx context.Context, questID int64) (*DashboardOutput, error) {
	if err := o.quests.DeleteQuest(ctx, questID); err != nil {
		slog.Error("Failed to delete quest", "quest_id", questID, "error", err)
		o.notifier.Notify(ctx, notify.LevelError, msgDeleteFailed+": "+errors.GetMessage(err))
		return nil, errors.Wrap(err, msgDeleteFailed)
	}

	slog.Info("Quest deleted", "quest_id", questID)
	o.notifier.Notify(ctx, notify.LevelSuccess, msgQuestDeleted)
	return o.Refresh(ctx)
}

func (o *orchestrator) FixIDs(ctx context.Context) (*FixIDsOutput, error) {
	result, err := o.quests.FixQuestIDs(ctx)
	if err != nil {
		o.notifier.Notify(ctx, notify.LevelError, msgFixIDsFailed+": "+errors.GetMessage(err))
		return nil, errors.Wrap(err, msgFixIDsFailed)
	}

	slog.Info("Quest IDs renumbered", "count", len(result.IDMapping))
	o.notifier.Notify(ctx, notify.LevelSuccess, result.Message)

	dashboard, err := o.Refresh(ctx)
	if err != nil {
		return &FixIDsOutput{Result: result}, err
	}
	return &FixIDsOutput{Result: result, Dashboard: dashboard}, nil
}

func (o *orchestrator) SubmitForm(ctx context.Context) (*SubmitFormOutput, error) {
	out, err := o.form.Submit(ctx)
	if err != nil {
		return nil, err
	}

	result := &SubmitFormOutput{Quest: out.Quest}
	if !out.Refresh {
		return result, nil
	}

	dashboard, err := o.Refresh(ctx)
	if err != nil {
		return result, err
	}
	result.Dashboard = dashboard
	return result, nil
}
