// YAML catalog loader with CUE schema validation.
package content

import (
	"fmt"
	"os"

	"cuelang.org/go/cue/cuecontext"
	cueyaml "cuelang.org/go/encoding/yaml"
	"gopkg.in/yaml.v3"

	"scenforge/internal/scenario"
)

// Load returns the builtin catalog with the YAML file at path merged on top.
// An empty path returns the builtin catalog unchanged. When schemaPath is
// non-empty the YAML is validated against the CUE schema before unmarshal.
// The result has passed Check.
func Load(path, schemaPath string) (*Pools, error) {
	pools := BuiltIn()
	if path != "" {
		if schemaPath != "" {
			if err := ValidateWithCue(path, schemaPath); err != nil {
				return nil, err
			}
		}
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read content pools: %w", err)
		}
		var override Pools
		if err := yaml.Unmarshal(data, &override); err != nil {
			return nil, fmt.Errorf("parse content pools: %w", err)
		}
		merge(pools, &override)
	}
	if err := Check(pools); err != nil {
		return nil, err
	}
	return pools, nil
}

// merge replaces whole sections of dst with any section present in src.
// Section-level replacement keeps override files self-contained and avoids
// half-merged catalogs.
func merge(dst, src *Pools) {
	if len(src.Missions) > 0 {
		dst.Missions = src.Missions
	}
	if len(src.Locations) > 0 {
		dst.Locations = src.Locations
	}
	if len(src.Enemies) > 0 {
		for d, cfgs := range src.Enemies {
			if dst.Enemies == nil {
				dst.Enemies = map[scenario.Difficulty][]EnemySpawnConfig{}
			}
			dst.Enemies[d] = cfgs
		}
	}
	if len(src.Bosses) > 0 {
		dst.Bosses = src.Bosses
	}
	if len(src.Targets) > 0 {
		dst.Targets = src.Targets
	}
	if len(src.Victims) > 0 {
		dst.Victims = src.Victims
	}
	if len(src.Mysteries) > 0 {
		dst.Mysteries = src.Mysteries
	}
	if len(src.Collectibles) > 0 {
		dst.Collectibles = src.Collectibles
	}
	if len(src.Bonus) > 0 {
		dst.Bonus = src.Bonus
	}
	if len(src.TitlesByMission) > 0 {
		dst.TitlesByMission = src.TitlesByMission
	}
	if len(src.TitlesByVictory) > 0 {
		dst.TitlesByVictory = src.TitlesByVictory
	}
	if len(src.TitlesGeneric) > 0 {
		dst.TitlesGeneric = src.TitlesGeneric
	}
	if len(src.BriefingOpenings) > 0 {
		dst.BriefingOpenings = src.BriefingOpenings
	}
	if len(src.BriefingMiddles) > 0 {
		dst.BriefingMiddles = src.BriefingMiddles
	}
	if len(src.BriefingClosings) > 0 {
		dst.BriefingClosings = src.BriefingClosings
	}
}

// ValidateWithCue validates a YAML catalog file using a CUE schema file.
func ValidateWithCue(configFile, cueFile string) error {
	ctx := cuecontext.New()

	yamlBytes, err := os.ReadFile(configFile)
	if err != nil {
		return fmt.Errorf("cannot read YAML catalog: %w", err)
	}
	file, err := cueyaml.Extract(configFile, yamlBytes)
	if err != nil {
		return fmt.Errorf("cannot parse YAML catalog: %w", err)
	}
	configVal := ctx.BuildFile(file)

	schemaBytes, err := os.ReadFile(cueFile)
	if err != nil {
		return fmt.Errorf("cannot read CUE schema: %w", err)
	}
	schemaVal := ctx.CompileBytes(schemaBytes)

	final := configVal.Unify(schemaVal)
	if final.Err() != nil {
		return fmt.Errorf("schema unify failed: %w", final.Err())
	}
	if err := final.Validate(); err != nil {
		return fmt.Errorf("schema validation failed: %w", err)
	}
	return nil
}
