// Scenario record types shared by the generator, validator, and export format.
package scenario

import "time"

// Difficulty selects content tiers and doom budgets.
type Difficulty string

const (
	DifficultyNormal    Difficulty = "Normal"
	DifficultyHard      Difficulty = "Hard"
	DifficultyNightmare Difficulty = "Nightmare"
)

// Rank orders difficulties for tier filtering (Normal < Hard < Nightmare).
// Unknown values rank below Normal.
func (d Difficulty) Rank() int {
	switch d {
	case DifficultyNormal:
		return 1
	case DifficultyHard:
		return 2
	case DifficultyNightmare:
		return 3
	}
	return 0
}

// Objective types.
const (
	ObjectiveFindItem    = "find_item"
	ObjectiveKillEnemies = "kill_enemies"
	ObjectiveKillBoss    = "kill_boss"
	ObjectiveRescue      = "rescue"
	ObjectiveCollect     = "collect"
	ObjectiveSurvive     = "survive"
	ObjectiveExplore     = "explore"
	ObjectiveInvestigate = "investigate"
	ObjectiveEscape      = "escape"
)

// Doom event types.
const (
	DoomSpawnEnemies = "spawn_enemies"
	DoomSpawnBoss    = "spawn_boss"
)

// Defeat condition types.
const (
	DefeatAllDead         = "all_dead"
	DefeatDoomZero        = "doom_zero"
	DefeatObjectiveFailed = "objective_failed"
)

// Reward is granted when an objective completes.
type Reward struct {
	Type   string `json:"type" yaml:"type"`
	Amount int    `json:"amount,omitempty" yaml:"amount,omitempty"`
	ItemID string `json:"itemId,omitempty" yaml:"item_id,omitempty"`
}

// Objective is one concrete, generated mission goal. Progress fields start
// zeroed; play-time mutation happens outside this package.
type Objective struct {
	ID               string   `json:"id"`
	Type             string   `json:"type"`
	Description      string   `json:"description"`
	ShortDescription string   `json:"shortDescription,omitempty"`
	TargetID         string   `json:"targetId,omitempty"`
	TargetAmount     int      `json:"targetAmount,omitempty"`
	CurrentAmount    int      `json:"currentAmount"`
	Completed        bool     `json:"completed"`
	Optional         bool     `json:"isOptional"`
	Hidden           bool     `json:"isHidden"`
	RevealedBy       string   `json:"revealedBy,omitempty"`
	Rewards          []Reward `json:"rewards,omitempty"`
}

// DoomEvent fires once the doom counter crosses its threshold.
type DoomEvent struct {
	Threshold int    `json:"threshold"`
	Type      string `json:"type"`
	TargetID  string `json:"targetId,omitempty"`
	Amount    int    `json:"amount,omitempty"`
	Message   string `json:"message"`
	Triggered bool   `json:"triggered"`
}

// VictoryCondition names the objectives that must complete to win.
type VictoryCondition struct {
	Type               string   `json:"type"`
	RequiredObjectives []string `json:"requiredObjectives"`
	Description        string   `json:"description"`
}

// DefeatCondition names a way the scenario is lost.
type DefeatCondition struct {
	Type        string `json:"type"`
	ObjectiveID string `json:"objectiveId,omitempty"`
	Description string `json:"description"`
}

// DisplayHints carry presentation metadata for the editor and preview UIs.
type DisplayHints struct {
	Icon        string `json:"icon,omitempty"`
	AccentColor string `json:"accentColor,omitempty"`
}

// Scenario is a complete, immutable generated mission definition.
type Scenario struct {
	ID               string             `json:"id"`
	Title            string             `json:"title"`
	Description      string             `json:"description"`
	Briefing         string             `json:"briefing"`
	StartDoom        int                `json:"startDoom"`
	StartLocation    string             `json:"startLocation"`
	SpecialRule      string             `json:"specialRule,omitempty"`
	Difficulty       Difficulty         `json:"difficulty"`
	TileSet          string             `json:"tileSet"`
	Theme            string             `json:"theme"`
	Goal             string             `json:"goal"`
	VictoryType      string             `json:"victoryType"`
	Objectives       []Objective        `json:"objectives"`
	VictoryConditions []VictoryCondition `json:"victoryConditions"`
	DefeatConditions []DefeatCondition  `json:"defeatConditions"`
	DoomEvents       []DoomEvent        `json:"doomEvents"`
	Display          DisplayHints       `json:"display,omitempty"`
	GeneratedAt      time.Time          `json:"generatedAt"`
	Seed             uint64             `json:"seed,omitempty"`
}

// RequiredObjectiveIDs returns the ids of all non-optional objectives, in order.
func RequiredObjectiveIDs(objs []Objective) []string {
	ids := make([]string, 0, len(objs))
	for _, o := range objs {
		if !o.Optional {
			ids = append(ids, o.ID)
		}
	}
	return ids
}
