package engine

import (
	"container/heap"

	"github.com/gridduel/gridduel/game"
)

// PathCosts augments the A* heuristic with repulsion away from traps and
// away from the opponent's predicted trajectory. Zero weights (or empty
// sets) disable a term.
type PathCosts struct {
	Traps             game.CellSet
	OpponentPath      []game.Cell
	TrapRepulsion     float64
	OpponentRepulsion float64
	Epsilon           float64
}

// repulsion grows as 1/distance toward the nearest trap and toward the
// nearest cell on the predicted opponent path.
func (pc *PathCosts) repulsion(c game.Cell) float64 {
	total := 0.0
	if pc.TrapRepulsion != 0 && len(pc.Traps) > 0 {
		total += pc.TrapRepulsion / (pc.Traps.MinDistance(c) + pc.Epsilon)
	}
	if pc.OpponentRepulsion != 0 && len(pc.OpponentPath) > 0 {
		min := game.Distance(c, pc.OpponentPath[0])
		for _, p := range pc.OpponentPath[1:] {
			if d := game.Distance(c, p); d < min {
				min = d
			}
		}
		total += pc.OpponentRepulsion / (min + pc.Epsilon)
	}
	return total
}

type pathNode struct {
	cell game.Cell
	f    float64
	seq  int // insertion order, the tie-breaker
}

type pathQueue []pathNode

func (q pathQueue) Len() int { return len(q) }
func (q pathQueue) Less(i, j int) bool {
	if q[i].f != q[j].f {
		return q[i].f < q[j].f
	}
	return q[i].seq < q[j].seq
}
func (q pathQueue) Swap(i, j int)      { q[i], q[j] = q[j], q[i] }
func (q *pathQueue) Push(x any)        { *q = append(*q, x.(pathNode)) }
func (q *pathQueue) Pop() any {
	old := *q
	n := len(old)
	x := old[n-1]
	*q = old[:n-1]
	return x
}

// FindPath runs a budgeted A* search over the 4-connected grid from start to
// target, avoiding obstacles. The returned path includes start; callers take
// path[1] as the next step. A nil result means no path was found within
// nodeBudget pops; that is an expected outcome, not an error.
func FindPath(start, target game.Cell, obstacles game.CellSet, cfg *game.Config, costs PathCosts, nodeBudget int) []game.Cell {
	if !cfg.InBounds(start) || !cfg.InBounds(target) {
		return nil
	}
	if start == target {
		return []game.Cell{start}
	}

	h := func(c game.Cell) float64 {
		return game.Distance(c, target) + costs.repulsion(c)
	}

	gScore := map[game.Cell]float64{start: 0}
	cameFrom := make(map[game.Cell]game.Cell)
	closed := make(map[game.Cell]struct{})

	q := pathQueue{{cell: start, f: h(start)}}
	seq := 1

	for pops := 0; q.Len() > 0 && pops < nodeBudget; pops++ {
		cur := heap.Pop(&q).(pathNode)
		if cur.cell == target {
			return reconstruct(cameFrom, start, target)
		}
		if _, done := closed[cur.cell]; done {
			continue
		}
		closed[cur.cell] = struct{}{}

		for _, d := range game.Directions {
			n := cur.cell.Add(d)
			if !cfg.InBounds(n) || obstacles.Contains(n) {
				continue
			}
			if _, done := closed[n]; done {
				continue
			}
			g := gScore[cur.cell] + 1
			if old, seen := gScore[n]; seen && g >= old {
				continue
			}
			gScore[n] = g
			cameFrom[n] = cur.cell
			heap.Push(&q, pathNode{cell: n, f: g + h(n), seq: seq})
			seq++
		}
	}

	return nil
}

func reconstruct(cameFrom map[game.Cell]game.Cell, start, target game.Cell) []game.Cell {
	path := []game.Cell{target}
	for c := target; c != start; {
		c = cameFrom[c]
		path = append(path, c)
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path
}
