package engine

import (
	"fmt"
	"math"
	"math/rand"
	"time"

	"github.com/gridduel/gridduel/game"
	"github.com/gridduel/gridduel/rules"
)

// Engine picks moves for one snake. It holds no mutable state between calls;
// every DecideMove works on a private clone of the snapshot, so independent
// decisions may run concurrently as long as each gets its own snapshot.
type Engine struct {
	cfg Config
}

// New returns an engine with the given configuration.
func New(cfg Config) *Engine {
	return &Engine{cfg: cfg}
}

// Config returns the engine's configuration.
func (e *Engine) Config() Config {
	return e.cfg
}

// DecideMove selects the next unit move for the snapshot's snake.
//
// Policy, in order: if the position is critical (opponent close or little
// reachable space) take the move with the most room; otherwise try a
// budgeted A* step toward the nearest food, validated by one ply of
// adversarial lookahead; otherwise score every survivable first move with
// the full search; fall back to any legal move, then to the current heading.
//
// The returned direction is always one of the four unit vectors and never
// the reverse of the snake's current direction. Time-budget exhaustion and
// unreachable food are normal outcomes, not errors; the only error is a
// malformed snapshot.
func (e *Engine) DecideMove(snap *game.Snapshot) (game.Direction, error) {
	if snap == nil || snap.Self == nil || snap.Self.Len() == 0 {
		return game.Direction{}, fmt.Errorf("engine: malformed snapshot: self snake missing or has no segments")
	}

	work := snap.Clone()
	if work.Food == nil {
		work.Food = game.NewCellSet()
	}
	if work.Traps == nil {
		work.Traps = game.NewCellSet()
	}
	if work.Opponent != nil && (!work.Opponent.Alive || work.Opponent.Len() == 0) {
		work.Opponent = nil
	}

	cfg := &e.cfg
	s := &searcher{
		cfg:      cfg,
		gameCfg:  &e.cfg.Game,
		self:     work.Self,
		opp:      work.Opponent,
		food:     work.Food,
		traps:    work.Traps,
		deadline: time.Now().Add(cfg.TimeBudget),
	}
	head := s.self.Head()

	// Stage 1: escape when boxed in or under the opponent's nose.
	area := ReachableArea(head, s.self.Segments[1:], s.oppSegments(), s.gameCfg, cfg.AreaNodeBudget)
	critical := area < cfg.CriticalArea
	if s.opp != nil && game.Distance(head, s.opp.Head()) < cfg.CriticalDistance {
		critical = true
	}
	if critical {
		if mv, ok := s.escapeMove(); ok {
			return mv, nil
		}
	}

	// Stage 2: head for the nearest food if a safe corridor exists.
	if target, ok := s.food.Nearest(head); ok {
		costs := PathCosts{
			Traps:             s.traps,
			OpponentPath:      PredictTrajectory(s.opp, cfg.PredictionHorizon, s.gameCfg),
			TrapRepulsion:     cfg.TrapRepulsion,
			OpponentRepulsion: cfg.OpponentRepulsion,
			Epsilon:           cfg.Epsilon,
		}
		path := FindPath(head, target, s.obstacles(), s.gameCfg, costs, cfg.PathNodeBudget)
		if len(path) >= 2 {
			if mv, ok := game.Toward(head, path[1]); ok && mv != s.self.Direction.Reverse() {
				if s.moveScore(mv, 1) > rejectScore {
					return mv, nil
				}
			}
		}
	}

	// Stage 3: full adversarial search over every survivable first move.
	rng := e.newRand()
	var best game.Direction
	bestScore := math.Inf(-1)
	found := false
	for _, mv := range rules.CandidateMoves(s.self) {
		u := rules.Step(s.self, mv, s.food, s.traps, s.opp, s.gameCfg)
		alive := s.self.Alive
		v := math.Inf(-1)
		if alive {
			v = s.minimize(cfg.SearchDepth, math.Inf(-1), math.Inf(1))
		}
		u.Revert(s.self, s.food, s.traps, s.opp)
		if !alive {
			continue
		}
		if rng != nil && v > lossScore {
			v += rng.Float64() * cfg.Jitter
		}
		if v > bestScore {
			bestScore = v
			best = mv
			found = true
		}
	}
	if found && bestScore > lossScore {
		return best, nil
	}

	// Stage 4: any legal move beats giving up.
	if legal := rules.LegalMoves(s.self, s.opp, s.gameCfg); len(legal) > 0 {
		return legal[0], nil
	}

	// Stage 5: nothing is survivable; keep the current heading.
	return s.self.Direction, nil
}

// newRand builds the per-call jitter source. Returning nil disables jitter
// entirely, which makes DecideMove deterministic.
func (e *Engine) newRand() *rand.Rand {
	if e.cfg.Jitter <= 0 {
		return nil
	}
	seed := e.cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return rand.New(rand.NewSource(seed))
}
