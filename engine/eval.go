package engine

import (
	"math"
	"time"

	"github.com/gridduel/gridduel/game"
	"github.com/gridduel/gridduel/rules"
)

// searcher owns one decision's worth of mutable state: a private clone of
// the caller's snapshot plus the wall-clock deadline. It is created per
// DecideMove call and discarded on return, so concurrent decisions never
// share anything.
type searcher struct {
	cfg     *Config
	gameCfg *game.Config

	self  *game.Snake
	opp   *game.Snake // nil when absent or dead
	food  game.CellSet
	traps game.CellSet

	deadline time.Time
}

func (s *searcher) expired() bool {
	return time.Now().After(s.deadline)
}

func (s *searcher) oppSegments() []game.Cell {
	if s.opp != nil && s.opp.Alive {
		return s.opp.Segments
	}
	return nil
}

// obstacles builds the A* obstacle set: the snake's own body (the head
// moves away, so it doesn't count) plus every opponent segment.
func (s *searcher) obstacles() game.CellSet {
	obs := make(game.CellSet, s.self.Len()+8)
	for _, c := range s.self.Segments[1:] {
		obs.Add(c)
	}
	for _, c := range s.oppSegments() {
		obs.Add(c)
	}
	return obs
}

// evaluate scores the current simulated position from the acting snake's
// perspective. Terminal positions dominate; otherwise the score is a
// weighted blend of food pull, mobility, area control, a path-existence
// probe, length advantage, and trap/danger repulsion. An active shield adds
// a flat bonus and discounts the trap and danger penalties.
func (s *searcher) evaluate() float64 {
	if !s.self.Alive {
		return lossScore
	}
	if s.opp != nil && !s.opp.Alive {
		return winScore
	}

	cfg := s.cfg
	head := s.self.Head()
	score := 0.0

	shieldFactor := 1.0
	if s.self.ShieldActive() {
		score += cfg.ShieldBonus
		shieldFactor = cfg.ShieldDiscount
	}

	if target, ok := s.food.Nearest(head); ok {
		score += cfg.FoodWeight / (game.Distance(head, target) + cfg.Epsilon)
		if FindPath(head, target, s.obstacles(), s.gameCfg, PathCosts{}, cfg.PathProbeBudget) != nil {
			score += cfg.PathBonus
		} else {
			score -= cfg.PathBonus
		}
	}

	score += cfg.MobilityWeight * float64(len(rules.LegalMoves(s.self, s.opp, s.gameCfg)))

	ownArea := ReachableArea(head, s.self.Segments[1:], s.oppSegments(), s.gameCfg, cfg.AreaNodeBudget)
	oppArea := 0
	if s.opp != nil {
		oppArea = ReachableArea(s.opp.Head(), s.opp.Segments[1:], s.self.Segments, s.gameCfg, cfg.AreaNodeBudget)
	}
	score += cfg.AreaWeight * float64(ownArea-oppArea)

	if s.opp != nil {
		score += cfg.LengthWeight * math.Tanh(float64(s.self.Len()-s.opp.Len())/3)
	}

	if d := s.traps.MinDistance(head); d < cfg.TrapRadius {
		score -= shieldFactor * cfg.TrapWeight / (d + cfg.Epsilon)
	}

	if s.opp != nil {
		if pred := PredictTrajectory(s.opp, cfg.PredictionHorizon, s.gameCfg); len(pred) > 0 {
			min := game.Distance(head, pred[0])
			for _, p := range pred[1:] {
				if d := game.Distance(head, p); d < min {
					min = d
				}
			}
			if min < cfg.DangerRadius {
				danger := cfg.DangerWeight * (cfg.DangerRadius - min)
				if s.opp.Len() >= s.self.Len() {
					danger *= 2
				}
				score -= shieldFactor * danger
			}
		}
	}

	return score
}
