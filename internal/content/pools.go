// Static content catalogs consumed by scenario generation.
package content

import "scenforge/internal/scenario"

// ObjectiveTemplate parameterizes one objective within a mission type.
type ObjectiveTemplate struct {
	ID                  string            `yaml:"id"`
	Type                string            `yaml:"type"`
	DescriptionTemplate string            `yaml:"description"`
	ShortTemplate       string            `yaml:"short,omitempty"`
	TargetIDOptions     []string          `yaml:"target_options,omitempty"`
	AmountMin           int               `yaml:"amount_min,omitempty"`
	AmountMax           int               `yaml:"amount_max,omitempty"`
	Optional            bool              `yaml:"optional,omitempty"`
	Hidden              bool              `yaml:"hidden,omitempty"`
	RevealedByIndex     *int              `yaml:"revealed_by,omitempty"`
	Rewards             []scenario.Reward `yaml:"rewards,omitempty"`
}

// ConditionTemplate shapes a mission's victory condition.
type ConditionTemplate struct {
	Type                string `yaml:"type"`
	DescriptionTemplate string `yaml:"description"`
}

// MissionType is a named generation pattern (Escape, Assassination, ...).
type MissionType struct {
	ID                string                         `yaml:"id"`
	Name              string                         `yaml:"name"`
	VictoryType       string                         `yaml:"victory_type"`
	TileSet           string                         `yaml:"tile_set"`
	Theme             string                         `yaml:"theme,omitempty"`
	SpecialRule       string                         `yaml:"special_rule,omitempty"`
	BaseDoom          map[scenario.Difficulty]int    `yaml:"base_doom"`
	ObjectiveTemplates []ObjectiveTemplate           `yaml:"objectives"`
	VictoryCondition  ConditionTemplate              `yaml:"victory_condition"`
}

// LocationOption is a candidate start location.
type LocationOption struct {
	Name       string `yaml:"name"`
	TileSet    string `yaml:"tile_set"`
	Atmosphere string `yaml:"atmosphere,omitempty"`
}

// EnemySpawnConfig is difficulty-tiered spawn data for doom events.
type EnemySpawnConfig struct {
	Type      string `yaml:"type"`
	AmountMin int    `yaml:"amount_min"`
	AmountMax int    `yaml:"amount_max"`
	Message   string `yaml:"message"`
}

// BossConfig describes a boss eligible at or below its difficulty tag.
type BossConfig struct {
	ID         string              `yaml:"id"`
	Name       string              `yaml:"name"`
	Difficulty scenario.Difficulty `yaml:"difficulty"`
	Message    string              `yaml:"message"`
}

// Pools bundles every static catalog the generator draws from. Loaded once,
// treated as immutable afterwards.
type Pools struct {
	Missions     []MissionType                               `yaml:"missions"`
	Locations    []LocationOption                            `yaml:"locations"`
	Enemies      map[scenario.Difficulty][]EnemySpawnConfig  `yaml:"enemies"`
	Bosses       []BossConfig                                `yaml:"bosses"`
	Targets      []string                                    `yaml:"targets"`
	Victims      []string                                    `yaml:"victims"`
	Mysteries    []string                                    `yaml:"mysteries"`
	Collectibles []string                                    `yaml:"collectibles"`
	Bonus        []ObjectiveTemplate                         `yaml:"bonus_objectives"`

	// Title templates keyed by mission id, then by victory type as fallback,
	// and a generic fallback pool.
	TitlesByMission map[string][]string `yaml:"titles_by_mission"`
	TitlesByVictory map[string][]string `yaml:"titles_by_victory"`
	TitlesGeneric   []string            `yaml:"titles_generic"`

	BriefingOpenings []string                                 `yaml:"briefing_openings"`
	BriefingMiddles  map[string][]string                      `yaml:"briefing_middles"`  // by victory type
	BriefingClosings map[scenario.Difficulty][]string         `yaml:"briefing_closings"`
}

// Mission returns the mission type with the given id.
func (p *Pools) Mission(id string) (MissionType, bool) {
	for _, m := range p.Missions {
		if m.ID == id {
			return m, true
		}
	}
	return MissionType{}, false
}

// BossByID returns the boss config with the given id.
func (p *Pools) BossByID(id string) (BossConfig, bool) {
	for _, b := range p.Bosses {
		if b.ID == id {
			return b, true
		}
	}
	return BossConfig{}, false
}

// EligibleBosses returns bosses whose difficulty tag is at or below the
// requested tier: Nightmare admits the whole pool, Normal only Normal bosses.
func (p *Pools) EligibleBosses(d scenario.Difficulty) []BossConfig {
	var out []BossConfig
	for _, b := range p.Bosses {
		if b.Difficulty.Rank() <= d.Rank() {
			out = append(out, b)
		}
	}
	return out
}

// LocationsForTileSet returns the locations matching a mission's tile set,
// falling back to the full pool when none match.
func (p *Pools) LocationsForTileSet(tileSet string) []LocationOption {
	var out []LocationOption
	for _, l := range p.Locations {
		if l.TileSet == tileSet {
			out = append(out, l)
		}
	}
	if len(out) == 0 {
		return p.Locations
	}
	return out
}
