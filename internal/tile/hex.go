// Hex-grid geometry shared by connectivity and door checks.
package tile

import (
	"fmt"
	"strconv"
	"strings"
)

// Direction indexes the six ordered edges of a hex tile.
type Direction int

const (
	North Direction = iota
	NorthEast
	SouthEast
	South
	SouthWest
	NorthWest
	DirectionCount = 6
)

var directionNames = [DirectionCount]string{"N", "NE", "SE", "S", "SW", "NW"}

func (d Direction) String() string {
	if d < 0 || d >= DirectionCount {
		return fmt.Sprintf("Direction(%d)", int(d))
	}
	return directionNames[d]
}

// Opposite returns the direction facing back at d. This is the single source
// of truth for the six-direction ordering; both the connectivity and the
// door-mismatch checks rely on it.
func Opposite(d Direction) Direction {
	return (d + 3) % DirectionCount
}

// Axial coordinate deltas per direction for flat-top hexes in (q, r).
var offsets = [DirectionCount][2]int{
	{0, -1},  // N
	{1, -1},  // NE
	{1, 0},   // SE
	{0, 1},   // S
	{-1, 1},  // SW
	{-1, 0},  // NW
}

// Neighbor returns the axial coordinates of the tile adjacent in direction d.
func Neighbor(q, r int, d Direction) (int, int) {
	return q + offsets[d][0], r + offsets[d][1]
}

// Key builds the canonical "q,r" map key for a tile position.
func Key(q, r int) string {
	return fmt.Sprintf("%d,%d", q, r)
}

// ParseKey parses a "q,r" key back into coordinates.
func ParseKey(key string) (q, r int, err error) {
	parts := strings.SplitN(key, ",", 2)
	if len(parts) != 2 {
		return 0, 0, fmt.Errorf("tile: malformed key %q", key)
	}
	q, err = strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil {
		return 0, 0, fmt.Errorf("tile: malformed key %q: %w", key, err)
	}
	r, err = strconv.Atoi(strings.TrimSpace(parts[1]))
	if err != nil {
		return 0, 0, fmt.Errorf("tile: malformed key %q: %w", key, err)
	}
	return q, r, nil
}
