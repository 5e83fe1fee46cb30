// Package arena runs headless matches between two decision engines and
// reports the outcome. It owns spawning, the tick loop, and win/draw
// resolution; rendering is out of scope, but every tick can be observed
// through a callback for dashboards or live broadcast.
package arena

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/gridduel/gridduel/engine"
	"github.com/gridduel/gridduel/game"
	"github.com/gridduel/gridduel/rules"
)

// Winner identifies the outcome of a match.
type Winner string

const (
	WinnerA    Winner = "A"
	WinnerB    Winner = "B"
	WinnerDraw Winner = "draw"
)

// Options configures a single match.
type Options struct {
	Game    game.Config
	EngineA engine.Config
	EngineB engine.Config

	// Seed drives spawn positions and the food/trap layout. The same seed
	// with the same engine configs reproduces the same match.
	Seed int64

	// MaxTicks caps the match length; 0 means DefaultMaxTicks. A match
	// that reaches the cap resolves by score.
	MaxTicks int

	InitialFood int
	TrapCount   int

	// OnTick, when set, observes the board after every tick.
	OnTick func(Frame)
}

const (
	DefaultMaxTicks    = 2000
	DefaultInitialFood = 30
	DefaultTrapCount   = 3
)

// Result is the outcome of one match.
type Result struct {
	ID     string `json:"id"`
	Winner Winner `json:"winner"`
	ScoreA int    `json:"score_a"`
	ScoreB int    `json:"score_b"`
	Ticks  int    `json:"ticks"`
}

// SnakeFrame is the broadcast view of one snake.
type SnakeFrame struct {
	Segments []game.Cell `json:"segments"`
	Alive    bool        `json:"alive"`
	Score    int         `json:"score"`
	Shield   float64     `json:"shield"`
}

// Frame is the broadcast view of the board after one tick.
type Frame struct {
	MatchID string      `json:"match_id"`
	Tick    int         `json:"tick"`
	SnakeA  SnakeFrame  `json:"snake_a"`
	SnakeB  SnakeFrame  `json:"snake_b"`
	Food    []game.Cell `json:"food"`
	Traps   []game.Cell `json:"traps"`
}

func snakeFrame(s *game.Snake) SnakeFrame {
	f := SnakeFrame{Alive: s.Alive, Score: s.Score, Shield: s.ShieldTimer}
	f.Segments = append(f.Segments, s.Segments...)
	return f
}

// PlayMatch runs one match to completion. A match ends when the food runs
// out, when a snake dies without a score lead, or at the tick cap; in every
// case the higher score wins and equal scores draw. ctx cancellation aborts
// the match with ctx's error.
func PlayMatch(ctx context.Context, opts Options) (*Result, error) {
	cfg := opts.Game
	maxTicks := opts.MaxTicks
	if maxTicks <= 0 {
		maxTicks = DefaultMaxTicks
	}
	initialFood := opts.InitialFood
	if initialFood <= 0 {
		initialFood = DefaultInitialFood
	}
	trapCount := opts.TrapCount
	if trapCount < 0 {
		trapCount = DefaultTrapCount
	}

	board, err := SpawnBoard(&cfg, opts.Seed, initialFood, trapCount)
	if err != nil {
		return nil, fmt.Errorf("arena: spawn: %w", err)
	}
	snakeA, snakeB := board.SnakeA, board.SnakeB

	opts.EngineA.Game = cfg
	opts.EngineB.Game = cfg
	engA := engine.New(opts.EngineA)
	engB := engine.New(opts.EngineB)

	res := &Result{ID: uuid.NewString()}

	for tick := 1; tick <= maxTicks; tick++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		res.Ticks = tick

		// Both engines decide from the same pre-tick board, then the moves
		// apply in a fixed order. A decision error forfeits the match.
		moveA, errA := decide(engA, snakeA, snakeB, board)
		moveB, errB := decide(engB, snakeB, snakeA, board)
		if errA != nil {
			return finish(res, WinnerB, snakeA, snakeB), nil
		}
		if errB != nil {
			return finish(res, WinnerA, snakeA, snakeB), nil
		}

		if snakeA.Alive {
			rules.Step(snakeA, moveA, board.Food, board.Traps, liveOpponent(snakeB), &cfg)
		}
		if snakeB.Alive {
			rules.Step(snakeB, moveB, board.Food, board.Traps, liveOpponent(snakeA), &cfg)
		}

		if opts.OnTick != nil {
			opts.OnTick(Frame{
				MatchID: res.ID,
				Tick:    tick,
				SnakeA:  snakeFrame(snakeA),
				SnakeB:  snakeFrame(snakeB),
				Food:    board.Food.Cells(),
				Traps:   board.Traps.Cells(),
			})
		}

		if over, w := resolve(snakeA, snakeB, board.Food); over {
			return finish(res, w, snakeA, snakeB), nil
		}
	}

	return finish(res, winnerByScore(snakeA, snakeB), snakeA, snakeB), nil
}

// decide builds the mover's view of the board and asks its engine for a move.
// Dead snakes keep their last heading; they no longer act.
func decide(e *engine.Engine, self, other *game.Snake, board *Board) (game.Direction, error) {
	if !self.Alive {
		return self.Direction, nil
	}
	snap := &game.Snapshot{
		Self:     self,
		Opponent: liveOpponent(other),
		Food:     board.Food,
		Traps:    board.Traps,
	}
	return e.DecideMove(snap)
}

// liveOpponent returns nil for a dead snake; a corpse is off the board.
func liveOpponent(s *game.Snake) *game.Snake {
	if s == nil || !s.Alive {
		return nil
	}
	return s
}

// resolve decides whether the match is over.
//
// Food exhaustion always ends the match. A death ends it only when the dead
// snake is not ahead on score; a dead snake holding the lead leaves the
// survivor playing for the remaining food.
func resolve(a, b *game.Snake, food game.CellSet) (bool, Winner) {
	if len(food) == 0 {
		return true, winnerByScore(a, b)
	}
	if !a.Alive && !b.Alive {
		return true, winnerByScore(a, b)
	}
	if !a.Alive && a.Score <= b.Score {
		return true, WinnerB
	}
	if !b.Alive && b.Score <= a.Score {
		return true, WinnerA
	}
	return false, ""
}

func winnerByScore(a, b *game.Snake) Winner {
	switch {
	case a.Score > b.Score:
		return WinnerA
	case b.Score > a.Score:
		return WinnerB
	default:
		return WinnerDraw
	}
}

func finish(res *Result, w Winner, a, b *game.Snake) *Result {
	res.Winner = w
	res.ScoreA = a.Score
	res.ScoreB = b.Score
	return res
}
