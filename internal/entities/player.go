package entities

// PlayerStatus is the progression of the logged in player
type PlayerStatus struct {
	Name            string   `json:"name"`
	Level           int      `json:"level"`
	XP              int      `json:"xp"`
	Money           int      `json:"money"`
	Inventory       []string `json:"inventory"`
	SpokenToNPC     bool     `json:"spoken_to_npc"`
	CompletedQuests []int64  `json:"completed_quests"`
}

// QuestRewards lists what a completion attempt granted, or what was missing
type QuestRewards struct {
	XP                  int      `json:"xp,omitempty"`
	Money               int      `json:"money,omitempty"`
	Items               []string `json:"items,omitempty"`
	LeveledUp           bool     `json:"leveled_up,omitempty"`
	NewLevel            int      `json:"new_level,omitempty"`
	NPCReset            bool     `json:"npc_reset,omitempty"`
	MissingRequirements []string `json:"missing_requirements,omitempty"`
}

// QuestResult is the outcome of a completion attempt
type QuestResult struct {
	Success      bool          `json:"success"`
	Message      string        `json:"message"`
	Rewards      *QuestRewards `json:"rewards,omitempty"`
	PlayerStatus *PlayerStatus `json:"player_status,omitempty"`
}

// ActionResult is the outcome of simple player actions such as talking to the NPC
type ActionResult struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}
