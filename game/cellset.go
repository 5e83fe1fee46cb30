package game

import (
	"math"
	"sort"
)

// CellSet is an unordered collection of cells with no duplicates,
// used for food and traps.
type CellSet map[Cell]struct{}

// NewCellSet builds a set from the given cells.
func NewCellSet(cells ...Cell) CellSet {
	s := make(CellSet, len(cells))
	for _, c := range cells {
		s[c] = struct{}{}
	}
	return s
}

func (s CellSet) Add(c Cell) {
	s[c] = struct{}{}
}

func (s CellSet) Remove(c Cell) {
	delete(s, c)
}

func (s CellSet) Contains(c Cell) bool {
	_, ok := s[c]
	return ok
}

// Clone performs a deep copy. Cloning a nil set yields a nil set.
func (s CellSet) Clone() CellSet {
	if s == nil {
		return nil
	}
	out := make(CellSet, len(s))
	for c := range s {
		out[c] = struct{}{}
	}
	return out
}

// Cells returns the members sorted by (X, Y), so the slice does not depend
// on map iteration order.
func (s CellSet) Cells() []Cell {
	out := make([]Cell, 0, len(s))
	for c := range s {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].X != out[j].X {
			return out[i].X < out[j].X
		}
		return out[i].Y < out[j].Y
	})
	return out
}

// Nearest returns the member closest to from by Euclidean distance.
// Ties break on (X, Y) so the result does not depend on map iteration order.
func (s CellSet) Nearest(from Cell) (Cell, bool) {
	best := Cell{}
	bestDist := math.Inf(1)
	found := false
	for c := range s {
		d := Distance(from, c)
		switch {
		case d < bestDist:
			best, bestDist, found = c, d, true
		case d == bestDist && (c.X < best.X || (c.X == best.X && c.Y < best.Y)):
			best = c
		}
	}
	return best, found
}

// MinDistance returns the Euclidean distance to the nearest member,
// or +Inf for an empty set.
func (s CellSet) MinDistance(from Cell) float64 {
	min := math.Inf(1)
	for c := range s {
		if d := Distance(from, c); d < min {
			min = d
		}
	}
	return min
}
