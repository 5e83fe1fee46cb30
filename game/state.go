// Package game defines the core state types for the grid duel.
//
// These types represent the minimal state needed for rules evaluation and
// adversarial search. The state is designed to be cheap to clone once per
// decision and mutated in place (with undo) inside the search tree.
package game

import "math"

// Cell is a board coordinate.
// (0,0) is the top-left corner; Y grows downward.
type Cell struct {
	X int
	Y int
}

// Direction is a unit move vector.
type Direction struct {
	DX int
	DY int
}

var (
	Up    = Direction{DX: 0, DY: -1}
	Down  = Direction{DX: 0, DY: 1}
	Left  = Direction{DX: -1, DY: 0}
	Right = Direction{DX: 1, DY: 0}
)

// Directions lists the four unit vectors in a fixed order. Iteration order
// matters: move generation and tie-breaking depend on it being stable.
var Directions = [4]Direction{Up, Down, Left, Right}

// Reverse returns the opposite direction.
func (d Direction) Reverse() Direction {
	return Direction{DX: -d.DX, DY: -d.DY}
}

// Add returns the cell one step from c in direction d.
func (c Cell) Add(d Direction) Cell {
	return Cell{X: c.X + d.DX, Y: c.Y + d.DY}
}

// Distance is the Euclidean distance between two cells.
func Distance(a, b Cell) float64 {
	return math.Hypot(float64(a.X-b.X), float64(a.Y-b.Y))
}

// ManhattanDistance is the L1 distance between two cells.
func ManhattanDistance(a, b Cell) int {
	dx := a.X - b.X
	if dx < 0 {
		dx = -dx
	}
	dy := a.Y - b.Y
	if dy < 0 {
		dy = -dy
	}
	return dx + dy
}

// Toward returns the unit direction from a to an adjacent cell b.
// ok is false if b is not exactly one axis-aligned step from a.
func Toward(a, b Cell) (Direction, bool) {
	d := Direction{DX: b.X - a.X, DY: b.Y - a.Y}
	for _, dir := range Directions {
		if d == dir {
			return d, true
		}
	}
	return Direction{}, false
}

// Snake is an ordered sequence of cells, head first.
//
// Segments are always axis-aligned unit steps apart; the rules package is
// responsible for enforcing collision behavior, the container does not.
type Snake struct {
	Segments      []Cell
	Direction     Direction
	PendingGrowth int
	Alive         bool
	Score         int
	ShieldTimer   float64 // seconds of collision immunity remaining
}

// NewSnake creates a single-segment snake at start, heading right.
func NewSnake(start Cell) *Snake {
	return &Snake{
		Segments:  []Cell{start},
		Direction: Right,
		Alive:     true,
	}
}

// Head returns the first segment. Callers must not invoke Head on a
// zero-segment snake; the decision engine rejects such snapshots up front.
func (s *Snake) Head() Cell {
	return s.Segments[0]
}

// Len returns the number of segments.
func (s *Snake) Len() int {
	return len(s.Segments)
}

// ShieldActive reports whether the snake currently ignores collisions.
func (s *Snake) ShieldActive() bool {
	return s.ShieldTimer > 0
}

// Clone performs a deep copy of the snake.
func (s *Snake) Clone() *Snake {
	if s == nil {
		return nil
	}
	out := *s
	out.Segments = make([]Cell, len(s.Segments))
	copy(out.Segments, s.Segments)
	return &out
}

// Snapshot is the read-only tuple handed to the decision engine.
// The engine never mutates a caller's snapshot; it clones it internally.
type Snapshot struct {
	Self     *Snake
	Opponent *Snake // nil in single-player mode
	Food     CellSet
	Traps    CellSet
}

// Clone performs a deep copy of the snapshot.
func (s *Snapshot) Clone() *Snapshot {
	if s == nil {
		return nil
	}
	return &Snapshot{
		Self:     s.Self.Clone(),
		Opponent: s.Opponent.Clone(),
		Food:     s.Food.Clone(),
		Traps:    s.Traps.Clone(),
	}
}
