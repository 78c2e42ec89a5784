// Scenario assembler orchestrating the content pools into one record.
package gen

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"scenforge/internal/content"
	"scenforge/internal/rng"
	"scenforge/internal/scenario"
)

// Generator assembles complete scenarios from a validated content catalog.
// Given well-formed pools, generation always succeeds.
type Generator struct {
	pools *content.Pools
	src   rng.Source
	seed  uint64
}

// NewGenerator creates a Generator drawing randomness from src. The seed is
// recorded on generated scenarios for replay.
func NewGenerator(pools *content.Pools, src rng.Source, seed uint64) *Generator {
	return &Generator{pools: pools, src: src, seed: seed}
}

var difficultyAccents = map[scenario.Difficulty]string{
	scenario.DifficultyNormal:    "#9ece6a",
	scenario.DifficultyHard:      "#e0af68",
	scenario.DifficultyNightmare: "#f7768e",
}

var victoryIcons = map[string]string{
	"escape":      "door",
	"assassinate": "dagger",
	"rescue":      "lantern",
	"collect":     "reliquary",
	"survive":     "barricade",
	"investigate": "magnifier",
}

// RandomScenario builds a fresh immutable scenario for the given difficulty:
// mission and location choice, context, objectives (main and bonus), doom
// events, narrative text, and victory/defeat conditions.
func (g *Generator) RandomScenario(difficulty scenario.Difficulty) *scenario.Scenario {
	mission := rng.Pick(g.src, g.pools.Missions)
	return g.scenarioFor(mission, difficulty)
}

// ScenarioForMission builds a scenario for a specific mission type id.
func (g *Generator) ScenarioForMission(missionID string, difficulty scenario.Difficulty) (*scenario.Scenario, error) {
	mission, ok := g.pools.Mission(missionID)
	if !ok {
		return nil, fmt.Errorf("gen: unknown mission type %q", missionID)
	}
	return g.scenarioFor(mission, difficulty), nil
}

func (g *Generator) scenarioFor(mission content.MissionType, difficulty scenario.Difficulty) *scenario.Scenario {
	baseDoom := mission.BaseDoom[difficulty]
	location := rng.Pick(g.src, g.pools.LocationsForTileSet(mission.TileSet))
	ctx := BuildContext(g.src, g.pools, location, baseDoom)

	objectives := GenerateObjectives(g.src, mission, ctx)
	bonus := GenerateBonusObjectives(g.src, g.pools, 1+g.src.Intn(2), len(objectives), ctx)
	objectives = append(objectives, bonus...)

	doomEvents := GenerateDoomEvents(g.src, g.pools, difficulty, baseDoom)
	for _, ev := range doomEvents {
		ctx.Enemies += ev.Amount
	}

	goal := scenario.Interpolate(mission.VictoryCondition.DescriptionTemplate, ctx)

	return &scenario.Scenario{
		ID:                uuid.New().String(),
		Title:             GenerateTitle(g.src, g.pools, mission, ctx),
		Description:       fmt.Sprintf("%s: %s", mission.Name, location.Atmosphere),
		Briefing:          GenerateBriefing(g.src, g.pools, mission, difficulty, ctx, goal),
		StartDoom:         baseDoom,
		StartLocation:     location.Name,
		SpecialRule:       mission.SpecialRule,
		Difficulty:        difficulty,
		TileSet:           mission.TileSet,
		Theme:             mission.Theme,
		Goal:              goal,
		VictoryType:       mission.VictoryType,
		Objectives:        objectives,
		VictoryConditions: BuildVictoryConditions(mission, objectives, ctx),
		DefeatConditions:  BuildDefeatConditions(mission, objectives, ctx),
		DoomEvents:        doomEvents,
		Display: scenario.DisplayHints{
			Icon:        victoryIcons[mission.VictoryType],
			AccentColor: difficultyAccents[difficulty],
		},
		GeneratedAt: time.Now().UTC(),
		Seed:        g.seed,
	}
}
