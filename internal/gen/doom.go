package gen

import (
	"math"

	"scenforge/internal/content"
	"scenforge/internal/rng"
	"scenforge/internal/scenario"
)

// Threshold fractions of the starting doom budget. Doom counts down, so the
// early event fires first at the highest remaining value.
const (
	earlyFraction = 0.55
	midFraction   = 0.35
	lateFraction  = 0.15
)

// GenerateDoomEvents derives exactly three escalating timed events from a
// difficulty-scaled doom budget: two enemy spawns and a boss spawn, at
// strictly non-increasing thresholds.
func GenerateDoomEvents(src rng.Source, pools *content.Pools, difficulty scenario.Difficulty, baseDoom int) []scenario.DoomEvent {
	spawns := pools.Enemies[difficulty]

	early := spawnEvent(src, spawns, threshold(baseDoom, earlyFraction))
	mid := spawnEvent(src, spawns, threshold(baseDoom, midFraction))

	boss := rng.Pick(src, pools.EligibleBosses(difficulty))
	return []scenario.DoomEvent{
		early,
		mid,
		{
			Threshold: threshold(baseDoom, lateFraction),
			Type:      scenario.DoomSpawnBoss,
			TargetID:  boss.ID,
			Amount:    1,
			Message:   boss.Message,
		},
	}
}

func spawnEvent(src rng.Source, spawns []content.EnemySpawnConfig, at int) scenario.DoomEvent {
	cfg := rng.Pick(src, spawns)
	return scenario.DoomEvent{
		Threshold: at,
		Type:      scenario.DoomSpawnEnemies,
		TargetID:  cfg.Type,
		Amount:    src.Between(cfg.AmountMin, cfg.AmountMax),
		Message:   cfg.Message,
	}
}

func threshold(baseDoom int, fraction float64) int {
	return int(math.Ceil(float64(baseDoom) * fraction))
}
