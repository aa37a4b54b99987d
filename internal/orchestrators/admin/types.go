package admin

import (
	"github.com/KirkDiggler/quest-dash/internal/entities"
)

// DashboardOutput is everything the admin dashboard lists
type DashboardOutput struct {
	Quests []*entities.Quest
	// Stats holds zero values when the stats endpoint failed
	Stats *entities.AdminStats
}

// FixIDsOutput reports a renumbering and the refreshed dashboard
type FixIDsOutput struct {
	Result    *entities.FixIDsResult
	Dashboard *DashboardOutput
}

// SubmitFormOutput reports a saved quest and the refreshed dashboard
type SubmitFormOutput struct {
	Quest     *entities.Quest
	Dashboard *DashboardOutput
}
