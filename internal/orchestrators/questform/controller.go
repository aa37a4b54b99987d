// Package questform drives the quest create/edit form and its decorator list
package questform

import (
	"context"
	"encoding/json"
	"log/slog"
	"strconv"
	"strings"
	"sync"

	"github.com/KirkDiggler/quest-dash/internal/decorators"
	"github.com/KirkDiggler/quest-dash/internal/entities"
	"github.com/KirkDiggler/quest-dash/internal/errors"
	"github.com/KirkDiggler/quest-dash/internal/notify"
)

const (
	msgCreated        = "Quest created successfully"
	msgUpdated        = "Quest updated successfully"
	msgSaveFailed     = "Failed to save quest"
	msgFillValue      = "Please fill in the value"
	msgNumberRequired = "Value must be a number"
)

// Persistence is the part of the Quest API the form writes to
type Persistence interface {
	CreateQuest(ctx context.Context, data *entities.QuestData) (*entities.Quest, error)
	UpdateQuest(ctx context.Context, questID int64, data *entities.QuestData) (*entities.Quest, error)
}

// Config holds the dependencies of the form controller
type Config struct {
	Quests   Persistence
	Notifier notify.Sink
	Catalog  *decorators.Catalog
	Style    decorators.Style
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	if c == nil {
		return errors.InvalidArgument("config cannot be nil")
	}

	vb := errors.NewValidationBuilder()
	if c.Quests == nil {
		vb.RequiredField("Quests")
	}
	if c.Notifier == nil {
		vb.RequiredField("Notifier")
	}
	return vb.Build()
}

// Controller owns one form session at a time
type Controller struct {
	quests   Persistence
	notifier notify.Sink
	catalog  *decorators.Catalog
	renderer *decorators.Renderer

	mu     sync.Mutex
	state  State
	fields Fields
	list   *decorators.List
	target *int64
	tag    decorators.Tag
}

// New creates a closed form controller
func New(cfg *Config) (*Controller, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	catalog := cfg.Catalog
	if catalog == nil {
		catalog = decorators.DefaultCatalog()
	}

	return &Controller{
		quests:   cfg.Quests,
		notifier: cfg.Notifier,
		catalog:  catalog,
		renderer: decorators.NewRenderer(cfg.Style, catalog),
		state:    StateClosed,
		list:     decorators.NewList(catalog),
		tag:      decorators.TagLevelReq,
	}, nil
}

func defaultFields() Fields {
	return Fields{BaseXP: "0", Type: entities.QuestTypePrimary}
}

// OpenForCreate resets the form for a new quest
func (c *Controller) OpenForCreate() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.fields = defaultFields()
	c.list = decorators.NewList(c.catalog)
	c.target = nil
	c.tag = decorators.TagLevelReq
	c.state = StateOpen
}

// OpenForEdit loads quest into the form. Its decorators are decoded leniently.
func (c *Controller) OpenForEdit(quest *entities.Quest) error {
	if quest == nil {
		return errors.InvalidArgument("quest is required")
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	id := quest.ID
	c.fields = Fields{
		Title:       quest.Title,
		Description: quest.Description,
		BaseXP:      strconv.Itoa(quest.BaseXP),
		Type:        quest.Type,
	}
	c.list = decorators.Decode(string(quest.Decorators), c.catalog)
	c.target = &id
	c.tag = decorators.TagLevelReq
	c.state = StateOpen

	slog.Debug("Opened quest for edit", "quest_id", id, "decorators", c.list.Len())
	return nil
}

// Cancel discards every unsaved edit and closes the form
func (c *Controller) Cancel() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.reset()
}

func (c *Controller) reset() {
	c.fields = Fields{}
	c.list = decorators.NewList(c.catalog)
	c.target = nil
	c.tag = decorators.TagLevelReq
	c.state = StateClosed
}

// State returns whether the form is open
func (c *Controller) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// Mode returns ModeEdit when an editing target is set
func (c *Controller) Mode() Mode {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.target != nil {
		return ModeEdit
	}
	return ModeCreate
}

// Editing returns the id of the quest being edited
func (c *Controller) Editing() (int64, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.target == nil {
		return 0, false
	}
	return *c.target, true
}

// Fields returns the scalar inputs
func (c *Controller) Fields() Fields {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.fields
}

// SetFields replaces the scalar inputs
func (c *Controller) SetFields(f Fields) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.fields = f
}

// SelectTag switches the tag of the next decorator and returns its value control
func (c *Controller) SelectTag(tag decorators.Tag) decorators.Control {
	c.mu.Lock()
	defer c.mu.Unlock()
	if tag.Valid() {
		c.tag = tag
	}
	return decorators.ControlFor(c.tag, c.catalog)
}

// SelectedTag returns the tag of the next decorator
func (c *Controller) SelectedTag() decorators.Tag {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.tag
}

// AddDecorator validates raw and appends a decorator.
// Rejected values are reported through the notifier.
func (c *Controller) AddDecorator(ctx context.Context, tag decorators.Tag, raw string) (decorators.Decorator, error) {
	c.mu.Lock()
	d, err := c.list.Add(tag, raw)
	c.mu.Unlock()

	if err != nil {
		switch {
		case strings.TrimSpace(raw) == "":
			c.notifier.Notify(ctx, notify.LevelWarning, msgFillValue)
		case tag.IsNumeric():
			c.notifier.Notify(ctx, notify.LevelError, msgNumberRequired)
		default:
			c.notifier.Notify(ctx, notify.LevelError, errors.GetMessage(err))
		}
		return decorators.Decorator{}, err
	}
	return d, nil
}

// RemoveDecorator removes the decorator at index; out of range is ignored
func (c *Controller) RemoveDecorator(index int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.list.RemoveAt(index)
}

// Decorators returns the current decorators in order
func (c *Controller) Decorators() []decorators.Decorator {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.list.Items()
}

// Lines returns the display projection of the decorator list
func (c *Controller) Lines() []decorators.Line {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.renderer.Lines(c.list.Items())
}

// Encoded returns the serialized decorator list
func (c *Controller) Encoded() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.list.Encode()
}

// Submit validates the form and creates or updates the quest.
// On failure the form stays open with its content intact.
func (c *Controller) Submit(ctx context.Context) (*SubmitOutput, error) {
	c.mu.Lock()
	if c.state != StateOpen {
		c.mu.Unlock()
		return nil, errors.FailedPrecondition("form is not open")
	}
	fields := c.fields
	encoded := c.list.Encode()
	var target *int64
	if c.target != nil {
		id := *c.target
		target = &id
	}
	c.mu.Unlock()

	data, err := buildQuestData(fields, encoded)
	if err != nil {
		c.notifier.Notify(ctx, notify.LevelError, errors.GetMessage(err))
		return nil, err
	}

	var (
		quest *entities.Quest
		msg   string
	)
	if target != nil {
		quest, err = c.quests.UpdateQuest(ctx, *target, data)
		msg = msgUpdated
	} else {
		quest, err = c.quests.CreateQuest(ctx, data)
		msg = msgCreated
	}
	if err != nil {
		slog.Error("Failed to save quest", "editing", target != nil, "error", err)
		c.notifier.Notify(ctx, notify.LevelError, msgSaveFailed+": "+errors.GetMessage(err))
		return nil, errors.Wrap(err, msgSaveFailed)
	}

	c.mu.Lock()
	c.reset()
	c.mu.Unlock()

	if quest != nil {
		slog.Info("Quest saved", "quest_id", quest.ID, "title", quest.Title)
	}
	c.notifier.Notify(ctx, notify.LevelSuccess, msg)

	return &SubmitOutput{Quest: quest, Refresh: true}, nil
}

func buildQuestData(f Fields, encoded string) (*entities.QuestData, error) {
	vb := errors.NewValidationBuilder()

	title := strings.TrimSpace(f.Title)
	errors.ValidateRequired("title", title, vb)

	xp, err := strconv.Atoi(strings.TrimSpace(f.BaseXP))
	if err != nil {
		vb.Field("base_xp", "must be a number")
	} else {
		errors.ValidateMin("base_xp", xp, 0, vb)
	}

	types := make([]string, len(entities.QuestTypes))
	for i, t := range entities.QuestTypes {
		types[i] = string(t)
	}
	errors.ValidateEnum("type", string(f.Type), types, vb)

	if err := vb.Build(); err != nil {
		return nil, err
	}

	return &entities.QuestData{
		Title:       title,
		Description: strings.TrimSpace(f.Description),
		BaseXP:      xp,
		Type:        f.Type,
		Decorators:  json.RawMessage(encoded),
	}, nil
}
