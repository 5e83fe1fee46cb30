package engine

import (
	"testing"

	"github.com/gridduel/gridduel/game"
)

func TestReachableArea_CountsWholeOpenGrid(t *testing.T) {
	cfg := testConfig().Game
	cfg.Width, cfg.Height = 4, 4

	got := ReachableArea(game.Cell{X: 0, Y: 0}, nil, nil, &cfg, 100)
	if got != 16 {
		t.Errorf("got %d, want 16", got)
	}
}

func TestReachableArea_StopsAtBudget(t *testing.T) {
	cfg := testConfig().Game

	got := ReachableArea(game.Cell{X: 5, Y: 5}, nil, nil, &cfg, 7)
	if got != 7 {
		t.Errorf("got %d, want exactly the 7-node budget", got)
	}
}

func TestReachableArea_CornerPocket(t *testing.T) {
	cfg := testConfig().Game

	// The start cell is sealed into the corner by two body cells.
	body := []game.Cell{{X: 1, Y: 0}, {X: 0, Y: 1}}
	got := ReachableArea(game.Cell{X: 0, Y: 0}, body, nil, &cfg, 100)
	if got != 1 {
		t.Errorf("got %d, want 1", got)
	}
}

func TestReachableArea_WallSplitsGrid(t *testing.T) {
	cfg := testConfig().Game

	wall := make([]game.Cell, 0, cfg.Height)
	for y := 0; y < cfg.Height; y++ {
		wall = append(wall, game.Cell{X: 4, Y: y})
	}

	// Left of the wall: columns 0..3, 40 cells.
	got := ReachableArea(game.Cell{X: 0, Y: 0}, nil, wall, &cfg, 200)
	if got != 40 {
		t.Errorf("got %d, want 40", got)
	}
}

func TestReachableArea_OutOfBoundsStart(t *testing.T) {
	cfg := testConfig().Game

	if got := ReachableArea(game.Cell{X: -1, Y: 0}, nil, nil, &cfg, 100); got != 0 {
		t.Errorf("got %d, want 0", got)
	}
	if got := ReachableArea(game.Cell{X: 0, Y: 0}, nil, nil, &cfg, 0); got != 0 {
		t.Errorf("zero budget: got %d, want 0", got)
	}
}
