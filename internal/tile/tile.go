package tile

import "sort"

// EdgeState types one directional border of a hex tile.
type EdgeState string

const (
	EdgeWall       EdgeState = "WALL"
	EdgeOpen       EdgeState = "OPEN"
	EdgeDoor       EdgeState = "DOOR"
	EdgeWindow     EdgeState = "WINDOW"
	EdgeStreet     EdgeState = "STREET"
	EdgeNature     EdgeState = "NATURE"
	EdgeStairsUp   EdgeState = "STAIRS_UP"
	EdgeStairsDown EdgeState = "STAIRS_DOWN"
	EdgeFacade     EdgeState = "FACADE"
)

// passable is the fixed set of edge states that permit structural passage.
// Locked and sealed doors stay passable here: structural validation proves
// the map is openable in principle, lock state belongs to play-time traversal.
var passable = map[EdgeState]bool{
	EdgeOpen:       true,
	EdgeDoor:       true,
	EdgeWindow:     true,
	EdgeStreet:     true,
	EdgeNature:     true,
	EdgeStairsUp:   true,
	EdgeStairsDown: true,
	EdgeFacade:     true,
}

// Passable reports whether an edge state permits structural passage.
func (e EdgeState) Passable() bool {
	return passable[e]
}

// DoorConfig carries optional play-time door state for a DOOR edge.
type DoorConfig struct {
	Locked bool   `json:"locked,omitempty"`
	Sealed bool   `json:"sealed,omitempty"`
	KeyID  string `json:"keyId,omitempty"`
}

// Monster is one enemy placed on a tile.
type Monster struct {
	ID   string `json:"id,omitempty"`
	Type string `json:"type"`
	Name string `json:"name,omitempty"`
}

// Item is one collectible placed on a tile.
type Item struct {
	ID      string `json:"id,omitempty"`
	Name    string `json:"name,omitempty"`
	Subtype string `json:"subtype,omitempty"`
}

// Tile is one hex cell as authored in the editor. The validator only reads
// tiles; the editor owns their mutation.
type Tile struct {
	Q               int                        `json:"q"`
	R               int                        `json:"r"`
	Edges           [DirectionCount]EdgeState  `json:"edges"`
	DoorConfigs     map[Direction]*DoorConfig  `json:"doorConfigs,omitempty"`
	Monsters        []Monster                  `json:"monsters,omitempty"`
	Items           []Item                     `json:"items,omitempty"`
	IsStartLocation bool                       `json:"isStartLocation,omitempty"`
	Name            string                     `json:"name,omitempty"`
}

// Key returns the canonical map key for this tile's position.
func (t Tile) Key() string {
	return Key(t.Q, t.R)
}

// Edge returns the edge state in direction d, defaulting missing entries to
// WALL so partially populated imports stay safe to traverse.
func (t Tile) Edge(d Direction) EdgeState {
	if d < 0 || d >= DirectionCount {
		return EdgeWall
	}
	if t.Edges[d] == "" {
		return EdgeWall
	}
	return t.Edges[d]
}

// Map is a tile map keyed by "q,r".
type Map map[string]Tile

// SortedKeys returns map keys ordered lexicographically by (q, r). This is
// the explicit tie-break for anything that needs "the first tile".
func (m Map) SortedKeys() []string {
	type pos struct {
		q, r int
		key  string
	}
	positions := make([]pos, 0, len(m))
	for k, t := range m {
		positions = append(positions, pos{t.Q, t.R, k})
	}
	sort.Slice(positions, func(i, j int) bool {
		if positions[i].q != positions[j].q {
			return positions[i].q < positions[j].q
		}
		return positions[i].r < positions[j].r
	})
	keys := make([]string, len(positions))
	for i, p := range positions {
		keys[i] = p.key
	}
	return keys
}
