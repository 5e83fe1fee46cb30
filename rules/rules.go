// Package rules implements the grid-world model: one simulated tick for a
// single snake, per-cell legality, and legal move generation.
//
// Step mutates the snake (and the caller-held food/trap sets) in place and
// returns an Undo record, so the adversarial search can explore a branch and
// restore it without deep-copying state on every node.
package rules

import (
	"github.com/gridduel/gridduel/game"
)

// Events report what happened during one Step.
type Events struct {
	Died       bool
	AteFood    bool
	FoodCell   game.Cell
	HitTrap    bool
	TrapCell   game.Cell
	HeadToHead bool
}

// Undo captures everything Step changed so Revert can restore it exactly.
type Undo struct {
	Events Events

	prevDirection game.Direction
	prevShield    float64
	prevScore     int
	prevGrowth    int
	prevAlive     bool

	headPushed bool
	tailPopped bool
	tailCell   game.Cell
	trimmed    []game.Cell // penalty pops, in pop order

	oppPrevScore  int
	oppPrevShield float64
	oppTrimmed    []game.Cell

	foodRemoved bool
	trapRemoved bool
}

// Step applies one candidate move for s, in the fixed rule order:
// wall death, head advance and tail/growth, self-collision,
// opponent-body collision, food, trap, head-to-head.
//
// The move must be a unit vector and not the reverse of s.Direction; that is
// the caller's contract, not checked here. food and traps are mutated when
// consumed (Revert restores them). opp may be nil.
func Step(s *game.Snake, move game.Direction, food, traps game.CellSet, opp *game.Snake, cfg *game.Config) Undo {
	u := Undo{
		prevDirection: s.Direction,
		prevShield:    s.ShieldTimer,
		prevScore:     s.Score,
		prevGrowth:    s.PendingGrowth,
		prevAlive:     s.Alive,
	}
	if opp != nil {
		u.oppPrevScore = opp.Score
		u.oppPrevShield = opp.ShieldTimer
	}

	// Shield decays by one tick before anything else, matching the game
	// loop's own clock.
	if s.ShieldTimer > 0 {
		s.ShieldTimer -= cfg.TickSeconds
		if s.ShieldTimer < 0 {
			s.ShieldTimer = 0
		}
	}
	s.Direction = move

	newHead := s.Head().Add(move)

	// Wall collision: terminal, segments untouched.
	if !cfg.InBounds(newHead) {
		s.Alive = false
		u.Events.Died = true
		return u
	}

	// Advance: prepend head, then consume growth or drop the tail.
	pushHead(s, newHead)
	u.headPushed = true
	if s.PendingGrowth > 0 {
		s.PendingGrowth--
	} else {
		u.tailCell = popTail(s)
		u.tailPopped = true
	}

	// Self collision against the remaining body.
	for _, seg := range s.Segments[1:] {
		if seg == newHead {
			s.Alive = false
			u.Events.Died = true
			return u
		}
	}

	// Opponent body collision (head-to-head is resolved separately below).
	if opp != nil && opp.Alive && !s.ShieldActive() {
		for _, seg := range opp.Segments[1:] {
			if seg == newHead {
				s.Alive = false
				u.Events.Died = true
				return u
			}
		}
	}

	// Food: the snake's score/growth update here; the caller owns the
	// canonical set, which we edit and Revert restores.
	if food.Contains(newHead) {
		s.Score++
		s.PendingGrowth += cfg.GrowthPerFood
		food.Remove(newHead)
		u.foodRemoved = true
		u.Events.AteFood = true
		u.Events.FoodCell = newHead
	}

	// Trap: score penalty (floored at zero), tail truncation respecting the
	// minimum length, then a shield.
	if traps.Contains(newHead) && !s.ShieldActive() {
		s.Score -= cfg.TrapPenalty
		if s.Score < 0 {
			s.Score = 0
		}
		u.trimmed = trimTail(s, cfg.TrapSegmentPenalty, cfg.MinSnakeLength, true, u.trimmed)
		s.ShieldTimer = cfg.ShieldDuration
		traps.Remove(newHead)
		u.trapRemoved = true
		u.Events.HitTrap = true
		u.Events.TrapCell = newHead
	}

	// Head-to-head: simultaneous occupancy of the opponent's head cell.
	// Lower or equal score suffers the penalty; equal scores punish both.
	if opp != nil && opp.Alive && newHead == opp.Head() &&
		!s.ShieldActive() && !opp.ShieldActive() {
		u.Events.HeadToHead = true
		selfScore, oppScore := s.Score, opp.Score
		if selfScore <= oppScore {
			s.Score -= cfg.HeadCollisionPenalty
			if s.Score < 0 {
				s.Score = 0
			}
			u.trimmed = trimTail(s, cfg.CollisionSegmentPenalty, cfg.MinSnakeLength, false, u.trimmed)
			s.ShieldTimer = cfg.ShieldDuration
		}
		if oppScore <= selfScore {
			opp.Score -= cfg.HeadCollisionPenalty
			if opp.Score < 0 {
				opp.Score = 0
			}
			u.oppTrimmed = trimTail(opp, cfg.CollisionSegmentPenalty, cfg.MinSnakeLength, false, u.oppTrimmed)
			opp.ShieldTimer = cfg.ShieldDuration
		}
	}

	return u
}

// Revert restores the snake, the opponent, and the food/trap sets to their
// exact state before the matching Step call.
func (u *Undo) Revert(s *game.Snake, food, traps game.CellSet, opp *game.Snake) {
	if opp != nil {
		for i := len(u.oppTrimmed) - 1; i >= 0; i-- {
			opp.Segments = append(opp.Segments, u.oppTrimmed[i])
		}
		opp.Score = u.oppPrevScore
		opp.ShieldTimer = u.oppPrevShield
	}
	if u.trapRemoved {
		traps.Add(u.Events.TrapCell)
	}
	if u.foodRemoved {
		food.Add(u.Events.FoodCell)
	}
	for i := len(u.trimmed) - 1; i >= 0; i-- {
		s.Segments = append(s.Segments, u.trimmed[i])
	}
	if u.tailPopped {
		s.Segments = append(s.Segments, u.tailCell)
	}
	if u.headPushed {
		copy(s.Segments, s.Segments[1:])
		s.Segments = s.Segments[:len(s.Segments)-1]
	}
	s.Direction = u.prevDirection
	s.ShieldTimer = u.prevShield
	s.Score = u.prevScore
	s.PendingGrowth = u.prevGrowth
	s.Alive = u.prevAlive
}

// pushHead prepends c by shifting segments right within the slice.
func pushHead(s *game.Snake, c game.Cell) {
	s.Segments = append(s.Segments, game.Cell{})
	copy(s.Segments[1:], s.Segments)
	s.Segments[0] = c
}

// popTail removes and returns the last segment.
func popTail(s *game.Snake) game.Cell {
	last := len(s.Segments) - 1
	c := s.Segments[last]
	s.Segments = s.Segments[:last]
	return c
}

// trimTail removes up to n segments from the tail, never shrinking below
// minLen. When consumeGrowth is set, pending growth absorbs removals first
// (trap hits cancel queued growth before eating into the body).
func trimTail(s *game.Snake, n, minLen int, consumeGrowth bool, log []game.Cell) []game.Cell {
	for i := 0; i < n; i++ {
		if consumeGrowth && s.PendingGrowth > 0 {
			s.PendingGrowth--
			continue
		}
		if len(s.Segments) <= minLen {
			break
		}
		log = append(log, popTail(s))
	}
	return log
}
