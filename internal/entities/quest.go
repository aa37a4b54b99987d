package entities

import (
	"encoding/json"
	"strconv"

	"github.com/KirkDiggler/rpg-toolkit/core"
)

// QuestType separates the main storyline from side content
type QuestType string

const (
	QuestTypePrimary   QuestType = "PRIMARY"
	QuestTypeSecondary QuestType = "SECONDARY"
)

// QuestTypes lists every type accepted by the Quest API
var QuestTypes = []QuestType{QuestTypePrimary, QuestTypeSecondary}

// Label returns the human readable name of the quest type
func (t QuestType) Label() string {
	if t == QuestTypePrimary {
		return "Primary"
	}
	return "Secondary"
}

// Quest is a quest as returned by the admin endpoints.
// Decorators is kept as the raw encoded list; the dashboard decodes it on demand.
type Quest struct {
	ID          int64           `json:"id"`
	Title       string          `json:"title"`
	Description string          `json:"description"`
	BaseXP      int             `json:"base_xp"`
	Type        QuestType       `json:"type"`
	Decorators  json.RawMessage `json:"decorators"`
}

// GetID returns the quest id as a string
func (q *Quest) GetID() string {
	return strconv.FormatInt(q.ID, 10)
}

// GetType returns the entity type for rpg-toolkit
func (q *Quest) GetType() string {
	return "quest"
}

var _ core.Entity = (*Quest)(nil)

// QuestData is the payload accepted by the create and update endpoints
type QuestData struct {
	Title       string          `json:"title"`
	Description string          `json:"description"`
	BaseXP      int             `json:"base_xp"`
	Type        QuestType       `json:"type"`
	Decorators  json.RawMessage `json:"decorators"`
}

// QuestWithStatus is a quest annotated for the current player
type QuestWithStatus struct {
	Quest
	IsCompleted         bool     `json:"is_completed"`
	CanStart            bool     `json:"can_start"`
	MissingRequirements []string `json:"missing_requirements"`
}

// Availability describes how a quest can be interacted with by the player
func (q *QuestWithStatus) Availability() string {
	switch {
	case q.IsCompleted:
		return "completed"
	case q.CanStart:
		return "available"
	default:
		return "locked"
	}
}

// FixIDsResult is returned when the API renumbers quests
type FixIDsResult struct {
	Success   bool             `json:"success"`
	Message   string           `json:"message"`
	IDMapping map[string]int64 `json:"id_mapping"`
}

// UserStats summarizes one player for the admin dashboard
type UserStats struct {
	Username        string `json:"username"`
	Level           int    `json:"level"`
	CompletedQuests int    `json:"completed_quests"`
}

// AdminStats holds the global counters shown on the admin dashboard
type AdminStats struct {
	TotalUsers      int         `json:"total_users"`
	TotalQuests     int         `json:"total_quests"`
	TotalCompleted  int         `json:"total_completed"`
	TotalInProgress int         `json:"total_in_progress"`
	Users           []UserStats `json:"users"`
}
