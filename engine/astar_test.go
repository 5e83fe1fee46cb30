package engine

import (
	"testing"

	"github.com/gridduel/gridduel/game"
)

// checkPath verifies the structural invariants every returned path has:
// starts at start, ends at target, moves in unit steps, stays in bounds and
// off the obstacles.
func checkPath(t *testing.T, path []game.Cell, start, target game.Cell, obstacles game.CellSet, cfg *game.Config) {
	t.Helper()
	if len(path) == 0 {
		t.Fatalf("nil path")
	}
	if path[0] != start {
		t.Errorf("path starts at %+v, want %+v", path[0], start)
	}
	if path[len(path)-1] != target {
		t.Errorf("path ends at %+v, want %+v", path[len(path)-1], target)
	}
	for i, c := range path {
		if !cfg.InBounds(c) {
			t.Errorf("path[%d]=%+v out of bounds", i, c)
		}
		if obstacles.Contains(c) {
			t.Errorf("path[%d]=%+v is an obstacle", i, c)
		}
		if i > 0 {
			if _, ok := game.Toward(path[i-1], c); !ok {
				t.Errorf("path[%d-1]->%+v is not a unit step", i, c)
			}
		}
	}
}

func TestFindPath_OpenGridIsShortest(t *testing.T) {
	cfg := testConfig().Game
	start := game.Cell{X: 1, Y: 1}
	target := game.Cell{X: 7, Y: 4}

	path := FindPath(start, target, nil, &cfg, PathCosts{}, 512)
	checkPath(t, path, start, target, nil, &cfg)

	want := game.ManhattanDistance(start, target) + 1
	if len(path) != want {
		t.Errorf("path length %d, want %d", len(path), want)
	}
}

func TestFindPath_DetoursAroundWall(t *testing.T) {
	cfg := testConfig().Game

	// Wall at x=2 with a single gap at the bottom row.
	obstacles := game.NewCellSet()
	for y := 0; y < cfg.Height-1; y++ {
		obstacles.Add(game.Cell{X: 2, Y: y})
	}
	start := game.Cell{X: 0, Y: 0}
	target := game.Cell{X: 4, Y: 0}

	path := FindPath(start, target, obstacles, &cfg, PathCosts{}, 512)
	checkPath(t, path, start, target, obstacles, &cfg)

	// Shortest route passes through the gap at (2,9): 22 steps.
	if len(path) != 23 {
		t.Errorf("path length %d, want 23", len(path))
	}
}

func TestFindPath_BudgetExhaustion(t *testing.T) {
	cfg := testConfig().Game

	obstacles := game.NewCellSet()
	for y := 0; y < cfg.Height-1; y++ {
		obstacles.Add(game.Cell{X: 2, Y: y})
	}

	path := FindPath(game.Cell{X: 0, Y: 0}, game.Cell{X: 4, Y: 0}, obstacles, &cfg, PathCosts{}, 5)
	if path != nil {
		t.Errorf("got a path within a 5-pop budget, want nil")
	}
}

func TestFindPath_Unreachable(t *testing.T) {
	cfg := testConfig().Game

	obstacles := game.NewCellSet()
	for y := 0; y < cfg.Height; y++ {
		obstacles.Add(game.Cell{X: 2, Y: y})
	}

	path := FindPath(game.Cell{X: 0, Y: 0}, game.Cell{X: 4, Y: 0}, obstacles, &cfg, PathCosts{}, 1000)
	if path != nil {
		t.Errorf("got a path through a sealed wall, want nil")
	}
}

func TestFindPath_StartEqualsTarget(t *testing.T) {
	cfg := testConfig().Game
	c := game.Cell{X: 3, Y: 3}

	path := FindPath(c, c, nil, &cfg, PathCosts{}, 10)
	if len(path) != 1 || path[0] != c {
		t.Errorf("got %v, want the single-cell path", path)
	}
}

func TestFindPath_RepulsionAvoidsTrap(t *testing.T) {
	cfg := testConfig().Game
	start := game.Cell{X: 0, Y: 0}
	target := game.Cell{X: 2, Y: 0}
	trap := game.Cell{X: 1, Y: 0}

	costs := PathCosts{
		Traps:         game.NewCellSet(trap),
		TrapRepulsion: 100,
		Epsilon:       1e-5,
	}
	path := FindPath(start, target, nil, &cfg, costs, 200)
	checkPath(t, path, start, target, nil, &cfg)

	for _, c := range path {
		if c == trap {
			t.Errorf("path crosses the trap at %+v:\n%v", trap, path)
		}
	}
}
