package engine

import "github.com/gridduel/gridduel/game"

// ReachableArea counts the free cells connected to start with a breadth-first
// flood fill, treating ownBody and otherBody as walls. Expansion stops after
// nodeBudget visits, so the result never exceeds the budget and the cost is
// O(nodeBudget) regardless of grid size. When the connected region is smaller
// than the budget the exact cell count is returned.
//
// start itself is always counted (it is where a head sits or would sit).
func ReachableArea(start game.Cell, ownBody, otherBody []game.Cell, cfg *game.Config, nodeBudget int) int {
	if nodeBudget <= 0 || !cfg.InBounds(start) {
		return 0
	}

	blocked := make(map[game.Cell]struct{}, len(ownBody)+len(otherBody))
	for _, c := range ownBody {
		blocked[c] = struct{}{}
	}
	for _, c := range otherBody {
		blocked[c] = struct{}{}
	}

	visited := make(map[game.Cell]struct{}, nodeBudget)
	visited[start] = struct{}{}
	queue := make([]game.Cell, 0, nodeBudget)
	queue = append(queue, start)

	for len(queue) > 0 && len(visited) < nodeBudget {
		c := queue[0]
		queue = queue[1:]
		for _, d := range game.Directions {
			n := c.Add(d)
			if !cfg.InBounds(n) {
				continue
			}
			if _, ok := blocked[n]; ok {
				continue
			}
			if _, ok := visited[n]; ok {
				continue
			}
			visited[n] = struct{}{}
			queue = append(queue, n)
			if len(visited) >= nodeBudget {
				break
			}
		}
	}

	return len(visited)
}
