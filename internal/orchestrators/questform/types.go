package questform

import (
	"github.com/KirkDiggler/quest-dash/internal/entities"
)

// State tells whether the form is shown
type State string

const (
	StateClosed State = "closed"
	StateOpen   State = "open"
)

// Mode distinguishes creating a quest from editing one
type Mode string

const (
	ModeCreate Mode = "create"
	ModeEdit   Mode = "edit"
)

// Fields holds the scalar inputs exactly as typed
type Fields struct {
	Title       string
	Description string
	BaseXP      string
	Type        entities.QuestType
}

// SubmitOutput is returned after a successful submit
type SubmitOutput struct {
	Quest *entities.Quest
	// Refresh asks the caller to reload any quest listing
	Refresh bool
}
