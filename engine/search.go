package engine

import (
	"math"
	"sort"

	"github.com/gridduel/gridduel/game"
	"github.com/gridduel/gridduel/rules"
)

// minimize is the opponent's ply. Depth is the number of own moves still to
// be simulated; when it runs out (or the clock does) the static evaluation
// is returned. The opponent's move set is pruned to the top-K candidates by
// proximity to the nearest food, a cheap ordering model that keeps the
// branching factor small under the time budget. An opponent with no legal
// move is trapped, not dead: the branch scores as the evaluation.
func (s *searcher) minimize(depth int, alpha, beta float64) float64 {
	if depth <= 0 || s.expired() {
		return s.evaluate()
	}
	if s.opp == nil || !s.opp.Alive {
		return s.maximize(depth-1, alpha, beta)
	}

	cands := s.opponentCandidates()
	if len(cands) == 0 {
		return s.evaluate()
	}

	worst := math.Inf(1)
	for _, mv := range cands {
		u := rules.Step(s.opp, mv, s.food, s.traps, s.self, s.gameCfg)
		if !s.opp.Alive {
			u.Revert(s.opp, s.food, s.traps, s.self)
			continue
		}
		v := s.maximize(depth-1, alpha, beta)
		u.Revert(s.opp, s.food, s.traps, s.self)

		if v < worst {
			worst = v
		}
		if worst < beta {
			beta = worst
		}
		if alpha >= beta {
			break
		}
	}
	if math.IsInf(worst, 1) {
		return s.evaluate()
	}
	return worst
}

// maximize is the acting snake's ply. Moves producing a terminal step are
// filtered out; if nothing survivable remains the branch is a loss.
func (s *searcher) maximize(depth int, alpha, beta float64) float64 {
	if depth <= 0 || s.expired() {
		return s.evaluate()
	}

	best := math.Inf(-1)
	survivable := false
	for _, mv := range rules.CandidateMoves(s.self) {
		u := rules.Step(s.self, mv, s.food, s.traps, s.opp, s.gameCfg)
		if !s.self.Alive {
			u.Revert(s.self, s.food, s.traps, s.opp)
			continue
		}
		survivable = true
		v := s.minimize(depth, alpha, beta)
		u.Revert(s.self, s.food, s.traps, s.opp)

		if v > best {
			best = v
		}
		if best > alpha {
			alpha = best
		}
		if alpha >= beta {
			break
		}
	}
	if !survivable {
		return lossScore
	}
	return best
}

// moveScore applies one own move and scores it with a lookahead of the given
// depth. Moves that kill the snake outright score the loss sentinel.
func (s *searcher) moveScore(mv game.Direction, depth int) float64 {
	u := rules.Step(s.self, mv, s.food, s.traps, s.opp, s.gameCfg)
	defer u.Revert(s.self, s.food, s.traps, s.opp)
	if !s.self.Alive {
		return lossScore
	}
	return s.minimize(depth, math.Inf(-1), math.Inf(1))
}

// opponentCandidates returns the opponent's legal moves ranked by how close
// the resulting head lands to the nearest food, truncated to the configured
// top-K. The sort is stable over the fixed direction order, so ranking does
// not depend on map iteration.
func (s *searcher) opponentCandidates() []game.Direction {
	head := s.opp.Head()
	type cand struct {
		mv   game.Direction
		dist float64
	}
	cands := make([]cand, 0, 3)
	for _, mv := range rules.CandidateMoves(s.opp) {
		next := head.Add(mv)
		if !rules.IsSafe(s.opp, next, s.self, s.gameCfg) {
			continue
		}
		cands = append(cands, cand{mv: mv, dist: s.food.MinDistance(next)})
	}
	sort.SliceStable(cands, func(i, j int) bool { return cands[i].dist < cands[j].dist })

	k := s.cfg.TopOpponentMoves
	if k <= 0 || k > len(cands) {
		k = len(cands)
	}
	out := make([]game.Direction, 0, k)
	for _, c := range cands[:k] {
		out = append(out, c.mv)
	}
	return out
}

// escapeMove picks the legal move that leaves the most reachable space,
// the policy used when the position is classified critical.
func (s *searcher) escapeMove() (game.Direction, bool) {
	bestArea := -1
	var best game.Direction
	for _, mv := range rules.CandidateMoves(s.self) {
		u := rules.Step(s.self, mv, s.food, s.traps, s.opp, s.gameCfg)
		if s.self.Alive {
			a := ReachableArea(s.self.Head(), s.self.Segments[1:], s.oppSegments(), s.gameCfg, s.cfg.AreaNodeBudget)
			if a > bestArea {
				bestArea = a
				best = mv
			}
		}
		u.Revert(s.self, s.food, s.traps, s.opp)
	}
	return best, bestArea >= 0
}
