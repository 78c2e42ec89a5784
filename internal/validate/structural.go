// Structural and referential scenario validation.
package validate

import (
	"fmt"
	"strings"

	"scenforge/internal/content"
	"scenforge/internal/scenario"
	"scenforge/internal/tile"
)

// Balance heuristics.
const (
	minStartDoom       = 6
	monsterDensityMult = 2
	maxDeadEnds        = 3
)

// Input bundles everything validation reads: scenario metadata, the concrete
// objectives, and the authored tile map keyed by "q,r".
type Input struct {
	Title      string              `json:"title"`
	Briefing   string              `json:"briefing"`
	StartDoom  int                 `json:"startDoom"`
	Difficulty scenario.Difficulty `json:"difficulty"`
	Theme      string              `json:"theme,omitempty"`
	Objectives []scenario.Objective `json:"objectives"`
	Tiles      tile.Map            `json:"tiles"`
}

// Validator checks authored or generated scenarios for playability. It is
// read-only over its inputs and never returns findings as errors; everything
// flows into the issue list.
type Validator struct {
	bestiary map[string]bool
}

// NewValidator builds a validator whose bestiary is drawn from the content
// catalog's boss and enemy tables.
func NewValidator(pools *content.Pools) *Validator {
	bestiary := map[string]bool{}
	for _, b := range pools.Bosses {
		bestiary[b.ID] = true
	}
	for _, spawns := range pools.Enemies {
		for _, s := range spawns {
			bestiary[s.Type] = true
		}
	}
	return &Validator{bestiary: bestiary}
}

// Validate runs every structural, referential, and balance check and merges
// the findings into a severity-bucketed report.
func (v *Validator) Validate(in Input) Result {
	c := &collector{}

	startKey, ok := v.checkStartLocation(c, in.Tiles)
	stats := Stats{TotalTiles: len(in.Tiles)}
	if ok {
		stats.ConnectedTiles, stats.Connections = checkConnectivity(c, in.Tiles, startKey)
	}
	v.checkDoorMismatches(c, in.Tiles)
	v.checkObjectives(c, in)
	v.checkMetadata(c, in)

	for _, t := range in.Tiles {
		stats.Monsters += len(t.Monsters)
		stats.Items += len(t.Items)
	}
	for _, o := range in.Objectives {
		if o.Optional {
			stats.BonusObjectives++
		} else {
			stats.RequiredObjectives++
		}
	}
	return c.result(stats)
}

// checkStartLocation enforces exactly one flagged start tile. With several
// flagged, the lexicographically smallest (q, r) wins and the rest warn; with
// none, validation falls back to the smallest tile overall so connectivity
// can still run, but reports the missing start as an error.
func (v *Validator) checkStartLocation(c *collector, tiles tile.Map) (string, bool) {
	if len(tiles) == 0 {
		c.add(SeverityError, CategoryStart, "Map has no tiles")
		return "", false
	}
	var starts []string
	for _, key := range tiles.SortedKeys() {
		if tiles[key].IsStartLocation {
			starts = append(starts, key)
		}
	}
	switch len(starts) {
	case 0:
		c.add(SeverityError, CategoryStart, "No start location tile is flagged")
		return tiles.SortedKeys()[0], true
	case 1:
		return starts[0], true
	default:
		c.add(SeverityWarning, CategoryStart,
			fmt.Sprintf("%d tiles flagged as start location; using %s", len(starts), starts[0]),
			withTile(starts[0]),
			withDetails("extra start flags: "+strings.Join(starts[1:], " ")))
		return starts[0], true
	}
}

// checkDoorMismatches warns when a DOOR edge faces a neighbor whose opposite
// edge is neither DOOR nor OPEN. Shares tile.Opposite with connectivity.
func (v *Validator) checkDoorMismatches(c *collector, tiles tile.Map) {
	for _, key := range tiles.SortedKeys() {
		t := tiles[key]
		for d := tile.Direction(0); d < tile.DirectionCount; d++ {
			if t.Edge(d) != tile.EdgeDoor {
				continue
			}
			nq, nr := tile.Neighbor(t.Q, t.R, d)
			neighbor, ok := tiles[tile.Key(nq, nr)]
			if !ok {
				continue
			}
			back := neighbor.Edge(tile.Opposite(d))
			if back != tile.EdgeDoor && back != tile.EdgeOpen {
				c.add(SeverityWarning, CategoryDoors,
					fmt.Sprintf("Door on tile %s (%s) faces %s on neighbor %s", key, d, back, neighbor.Key()),
					withTile(key))
			}
		}
	}
}

var needsTargetID = map[string]bool{
	scenario.ObjectiveFindItem:    true,
	scenario.ObjectiveKillEnemies: true,
	scenario.ObjectiveKillBoss:    true,
	scenario.ObjectiveRescue:      true,
	scenario.ObjectiveCollect:     true,
}

var needsTargetAmount = map[string]bool{
	scenario.ObjectiveKillEnemies: true,
	scenario.ObjectiveSurvive:     true,
	scenario.ObjectiveExplore:     true,
	scenario.ObjectiveCollect:     true,
	scenario.ObjectiveInvestigate: true,
}

func (v *Validator) checkObjectives(c *collector, in Input) {
	ids := map[string]bool{}
	for _, o := range in.Objectives {
		ids[o.ID] = true
	}

	totalMonsters := 0
	for _, t := range in.Tiles {
		totalMonsters += len(t.Monsters)
	}

	hasKillObjective := false
	for _, o := range in.Objectives {
		if needsTargetID[o.Type] && o.TargetID == "" {
			c.add(SeverityWarning, CategoryObjectives,
				fmt.Sprintf("Objective %s (%s) has no target id", o.ID, o.Type),
				withObjective(o.ID))
		}
		if needsTargetAmount[o.Type] && o.TargetAmount <= 0 {
			c.add(SeverityWarning, CategoryObjectives,
				fmt.Sprintf("Objective %s (%s) has no target amount", o.ID, o.Type),
				withObjective(o.ID))
		}
		if o.RevealedBy != "" && !ids[o.RevealedBy] {
			c.add(SeverityWarning, CategoryObjectives,
				fmt.Sprintf("Objective %s revealed by unknown objective %q", o.ID, o.RevealedBy),
				withObjective(o.ID))
		}

		switch o.Type {
		case scenario.ObjectiveKillBoss:
			hasKillObjective = true
			v.checkBossObjective(c, in, o)
		case scenario.ObjectiveKillEnemies:
			hasKillObjective = true
			v.checkKillEnemiesObjective(c, in, o)
		case scenario.ObjectiveFindItem:
			v.checkFindItemObjective(c, in, o)
		case scenario.ObjectiveCollect:
			v.checkCollectObjective(c, in, o)
		}
	}

	// A kill objective with an empty map is unwinnable, not merely unbalanced.
	if hasKillObjective && totalMonsters == 0 {
		c.add(SeverityError, CategoryObjectives, "Kill objective but no monsters placed")
	}
}

func (v *Validator) checkBossObjective(c *collector, in Input, o scenario.Objective) {
	if o.TargetID == "" {
		return
	}
	if !v.bestiary[o.TargetID] {
		c.add(SeverityWarning, CategoryObjectives,
			fmt.Sprintf("Boss %q is not in the bestiary", o.TargetID),
			withObjective(o.ID))
	}
	placed := false
	for _, t := range in.Tiles {
		for _, m := range t.Monsters {
			if m.ID == o.TargetID || m.Type == o.TargetID {
				placed = true
			}
		}
	}
	if !placed {
		c.add(SeverityWarning, CategoryObjectives,
			fmt.Sprintf("Boss %q is not placed on any tile", o.TargetID),
			withObjective(o.ID))
	}
}

func (v *Validator) checkKillEnemiesObjective(c *collector, in Input, o scenario.Objective) {
	if o.TargetAmount <= 0 {
		return
	}
	count := 0
	for _, t := range in.Tiles {
		for _, m := range t.Monsters {
			if o.TargetID == "" || m.Type == o.TargetID {
				count++
			}
		}
	}
	if count < o.TargetAmount {
		c.add(SeverityWarning, CategoryObjectives,
			fmt.Sprintf("Objective %s needs %d enemies but only %d are placed", o.ID, o.TargetAmount, count),
			withObjective(o.ID),
			withDetails(fmt.Sprintf("placed=%d required=%d", count, o.TargetAmount)))
	}
}

// itemMatches matches a placed item by exact id, case-insensitive name
// substring, or subtype.
func itemMatches(item tile.Item, targetID string) bool {
	if item.ID == targetID || item.Subtype == targetID {
		return true
	}
	return item.Name != "" && strings.Contains(strings.ToLower(item.Name), strings.ToLower(targetID))
}

func (v *Validator) checkFindItemObjective(c *collector, in Input, o scenario.Objective) {
	if o.TargetID == "" {
		return
	}
	for _, t := range in.Tiles {
		for _, item := range t.Items {
			if itemMatches(item, o.TargetID) {
				return
			}
		}
	}
	c.add(SeverityWarning, CategoryObjectives,
		fmt.Sprintf("Item %q for objective %s is not placed on any tile", o.TargetID, o.ID),
		withObjective(o.ID))
}

func (v *Validator) checkCollectObjective(c *collector, in Input, o scenario.Objective) {
	if o.TargetID == "" || o.TargetAmount <= 0 {
		return
	}
	count := 0
	for _, t := range in.Tiles {
		for _, item := range t.Items {
			if itemMatches(item, o.TargetID) {
				count++
			}
		}
	}
	if count < o.TargetAmount {
		c.add(SeverityWarning, CategoryObjectives,
			fmt.Sprintf("Objective %s needs %d of %q but only %d are placed", o.ID, o.TargetAmount, o.TargetID, count),
			withObjective(o.ID),
			withDetails(fmt.Sprintf("placed=%d required=%d", count, o.TargetAmount)))
	}
}

// checkMetadata runs the advisory metadata and balance heuristics.
func (v *Validator) checkMetadata(c *collector, in Input) {
	if strings.TrimSpace(in.Title) == "" {
		c.add(SeverityInfo, CategoryMetadata, "Scenario has no title")
	}
	if strings.TrimSpace(in.Briefing) == "" {
		c.add(SeverityInfo, CategoryMetadata, "Scenario has no briefing")
	}
	if in.StartDoom < minStartDoom {
		c.add(SeverityWarning, CategoryBalance,
			fmt.Sprintf("Start doom %d is below the floor of %d", in.StartDoom, minStartDoom))
	}

	monsters := 0
	for _, t := range in.Tiles {
		monsters += len(t.Monsters)
	}
	if len(in.Tiles) > 0 && monsters > monsterDensityMult*len(in.Tiles) {
		c.add(SeverityWarning, CategoryBalance,
			fmt.Sprintf("%d monsters on %d tiles exceeds %dx density", monsters, len(in.Tiles), monsterDensityMult))
	}

	deadEnds := 0
	for _, key := range in.Tiles.SortedKeys() {
		t := in.Tiles[key]
		conns := 0
		for d := tile.Direction(0); d < tile.DirectionCount; d++ {
			nq, nr := tile.Neighbor(t.Q, t.R, d)
			if n, ok := in.Tiles[tile.Key(nq, nr)]; ok && connected(t, d, n) {
				conns++
			}
		}
		if conns == 1 {
			deadEnds++
		}
	}
	if deadEnds > maxDeadEnds {
		c.add(SeverityInfo, CategoryBalance,
			fmt.Sprintf("%d dead-end tiles may slow exploration", deadEnds))
	}
}
