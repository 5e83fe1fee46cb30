// Package engine implements the adversarial decision core: reachability
// analysis, budgeted A* pathfinding, opponent trajectory prediction, and a
// time-boxed depth-limited minimax with alpha-beta pruning, orchestrated
// behind a single DecideMove call.
package engine

import (
	"time"

	"github.com/gridduel/gridduel/game"
)

// Config carries every tunable of the decision engine. It is immutable for
// the lifetime of an Engine; a "simple" bot is just a Config with
// SearchDepth 0 (pure heuristic, no recursion).
type Config struct {
	Game game.Config

	// Evaluation weights.
	FoodWeight     float64 // attraction to the nearest food
	MobilityWeight float64 // per immediately-safe follow-up move
	DangerWeight   float64 // proximity to the predicted opponent path
	TrapWeight     float64 // proximity to traps within TrapRadius
	AreaWeight     float64 // per cell of reachable-area advantage
	LengthWeight   float64 // bounded length-advantage term
	ShieldBonus    float64 // flat bonus while a shield is active
	PathBonus      float64 // +/- for an existing A* path to the nearest food
	ShieldDiscount float64 // multiplier on trap/danger terms under a shield

	// Search shape.
	SearchDepth      int           // own moves simulated beyond the first
	TimeBudget       time.Duration // wall-clock budget per DecideMove
	TopOpponentMoves int           // minimizing-ply branching cap

	// Bounded sub-searches.
	PathNodeBudget  int // A* pops for the food path
	PathProbeBudget int // A* pops for the eval path-existence probe
	AreaNodeBudget  int // flood-fill expansions

	// Opponent model.
	PredictionHorizon int // straight-line projection length

	// Criticality thresholds for escape mode.
	CriticalDistance float64
	CriticalArea     int

	// Radii for penalty terms.
	TrapRadius   float64
	DangerRadius float64

	// A* heuristic repulsion weights.
	TrapRepulsion     float64
	OpponentRepulsion float64

	// Jitter breaks near-ties between root moves. Zero disables it and
	// makes DecideMove fully deterministic.
	Jitter float64
	Seed   int64 // jitter seed; 0 seeds from the clock

	Epsilon float64 // guards divisions by zero distance
}

// DefaultConfig returns the competitive tuning. The food/mobility/danger
// trio keeps the proportions of the classic greedy heuristic; the rest are
// sized so no single term drowns the others on a 40x30 board.
func DefaultConfig() Config {
	return Config{
		Game: game.DefaultConfig(),

		FoodWeight:     100,
		MobilityWeight: 20,
		DangerWeight:   150,
		TrapWeight:     60,
		AreaWeight:     2,
		LengthWeight:   30,
		ShieldBonus:    25,
		PathBonus:      50,
		ShieldDiscount: 0.25,

		SearchDepth:      3,
		TimeBudget:       40 * time.Millisecond,
		TopOpponentMoves: 2,

		PathNodeBudget:  512,
		PathProbeBudget: 128,
		AreaNodeBudget:  64,

		PredictionHorizon: 3,

		CriticalDistance: 3,
		CriticalArea:     12,

		TrapRadius:   3,
		DangerRadius: 4,

		TrapRepulsion:     8,
		OpponentRepulsion: 12,

		Jitter:  0,
		Epsilon: 1e-5,
	}
}

// Terminal sentinels. They dominate any heuristic blend.
const (
	lossScore = -1e6
	winScore  = 1e6

	// rejectScore separates "bad but playable" from "certain death":
	// heuristic values stay within a few thousand of zero, so anything at
	// or below this is a lost line.
	rejectScore = lossScore / 2
)
