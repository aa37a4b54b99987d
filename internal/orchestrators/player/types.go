package player

import (
	"github.com/KirkDiggler/quest-dash/internal/entities"
)

// DashboardOutput is everything the player dashboard shows.
// A field is nil when its request failed.
type DashboardOutput struct {
	Status *entities.PlayerStatus
	Quests []*entities.QuestWithStatus
}

// CompleteQuestOutput reports a completion attempt
type CompleteQuestOutput struct {
	Result *entities.QuestResult
	// Summary lists the granted rewards ready for display, empty when the attempt failed
	Summary   []string
	Dashboard *DashboardOutput
}

// TalkToNPCOutput reports an NPC interaction
type TalkToNPCOutput struct {
	Result    *entities.ActionResult
	Dashboard *DashboardOutput
}
