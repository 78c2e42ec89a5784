package validate

import (
	"fmt"

	"scenforge/internal/tile"
)

// connected reports whether passage exists from t toward direction d into
// neighbor n. Both facing edges must independently permit passage.
func connected(t tile.Tile, d tile.Direction, n tile.Tile) bool {
	return t.Edge(d).Passable() && n.Edge(tile.Opposite(d)).Passable()
}

// reachableFrom runs a BFS over the hex adjacency graph starting at startKey,
// honoring directional edge passability on both sides of every border.
// It returns the set of reached keys and the number of distinct passable
// connections among reached tiles.
func reachableFrom(tiles tile.Map, startKey string) (map[string]bool, int) {
	reached := map[string]bool{startKey: true}
	connections := 0
	queue := []string{startKey}
	for len(queue) > 0 {
		key := queue[0]
		queue = queue[1:]
		cur := tiles[key]
		for d := tile.Direction(0); d < tile.DirectionCount; d++ {
			nq, nr := tile.Neighbor(cur.Q, cur.R, d)
			nkey := tile.Key(nq, nr)
			neighbor, ok := tiles[nkey]
			if !ok || !connected(cur, d, neighbor) {
				continue
			}
			// Count each undirected connection once.
			if d < 3 {
				connections++
			}
			if !reached[nkey] {
				reached[nkey] = true
				queue = append(queue, nkey)
			}
		}
	}
	return reached, connections
}

// checkConnectivity reports every tile unreachable from the start tile as an
// error and returns the reached-tile count for the stats block.
func checkConnectivity(c *collector, tiles tile.Map, startKey string) (connectedTiles, connections int) {
	if len(tiles) == 0 {
		c.add(SeverityError, CategoryConnectivity, "Map has no tiles")
		return 0, 0
	}
	reached, connections := reachableFrom(tiles, startKey)
	for _, key := range tiles.SortedKeys() {
		if !reached[key] {
			c.add(SeverityError, CategoryConnectivity,
				fmt.Sprintf("Tile %s is not reachable from the start location", key),
				withTile(key))
		}
	}
	return len(reached), connections
}
