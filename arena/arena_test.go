package arena

import (
	"context"
	"testing"
	"time"

	"github.com/gridduel/gridduel/engine"
	"github.com/gridduel/gridduel/game"
)

// fastEngine keeps decisions shallow so matches finish quickly and never
// race the wall clock.
func fastEngine() engine.Config {
	cfg := engine.DefaultConfig()
	cfg.SearchDepth = 1
	cfg.TimeBudget = time.Second
	return cfg
}

func TestSpawnBoard_Layout(t *testing.T) {
	cfg := game.DefaultConfig()

	for seed := int64(0); seed < 5; seed++ {
		board, err := SpawnBoard(&cfg, seed, 30, 3)
		if err != nil {
			t.Fatalf("seed %d: %v", seed, err)
		}

		headA, headB := board.SnakeA.Head(), board.SnakeB.Head()
		if d := game.Distance(headA, headB); d < minSpawnSeparation {
			t.Errorf("seed %d: heads %.2f apart, want >= %v", seed, d, minSpawnSeparation)
		}
		if len(board.Food) != 30 {
			t.Errorf("seed %d: %d food, want 30", seed, len(board.Food))
		}
		if len(board.Traps) != 3 {
			t.Errorf("seed %d: %d traps, want 3", seed, len(board.Traps))
		}

		occupied := game.NewCellSet(headA, headB)
		for c := range board.Food {
			if occupied.Contains(c) {
				t.Errorf("seed %d: food on a snake at %+v", seed, c)
			}
			if c.X < 1 || c.X > cfg.Width-2 || c.Y < 1 || c.Y > cfg.Height-2 {
				t.Errorf("seed %d: food on the border at %+v", seed, c)
			}
		}
		for c := range board.Traps {
			if occupied.Contains(c) || board.Food.Contains(c) {
				t.Errorf("seed %d: trap overlaps at %+v", seed, c)
			}
		}
	}
}

func TestSpawnBoard_SameSeedSameBoard(t *testing.T) {
	cfg := game.DefaultConfig()

	a, err := SpawnBoard(&cfg, 7, 10, 3)
	if err != nil {
		t.Fatal(err)
	}
	b, err := SpawnBoard(&cfg, 7, 10, 3)
	if err != nil {
		t.Fatal(err)
	}

	if a.SnakeA.Head() != b.SnakeA.Head() || a.SnakeB.Head() != b.SnakeB.Head() {
		t.Errorf("heads differ: %+v/%+v vs %+v/%+v", a.SnakeA.Head(), a.SnakeB.Head(), b.SnakeA.Head(), b.SnakeB.Head())
	}
	for c := range a.Food {
		if !b.Food.Contains(c) {
			t.Errorf("food layouts differ at %+v", c)
		}
	}
	for c := range a.Traps {
		if !b.Traps.Contains(c) {
			t.Errorf("trap layouts differ at %+v", c)
		}
	}
}

func TestPlayMatch_Completes(t *testing.T) {
	opts := Options{
		Game:        game.DefaultConfig(),
		EngineA:     fastEngine(),
		EngineB:     fastEngine(),
		Seed:        42,
		MaxTicks:    100,
		InitialFood: 10,
		TrapCount:   2,
	}

	frames := 0
	opts.OnTick = func(f Frame) {
		frames++
		if f.Tick != frames {
			t.Errorf("frame tick %d out of order (want %d)", f.Tick, frames)
		}
	}

	res, err := PlayMatch(context.Background(), opts)
	if err != nil {
		t.Fatalf("PlayMatch: %v", err)
	}
	if res.ID == "" {
		t.Error("missing match ID")
	}
	if res.Ticks < 1 || res.Ticks > 100 {
		t.Errorf("ticks %d out of range", res.Ticks)
	}
	if frames != res.Ticks {
		t.Errorf("observed %d frames over %d ticks", frames, res.Ticks)
	}
	switch res.Winner {
	case WinnerA, WinnerB, WinnerDraw:
	default:
		t.Errorf("unexpected winner %q", res.Winner)
	}
}

func TestPlayMatch_SameSeedSameOutcome(t *testing.T) {
	opts := Options{
		Game:        game.DefaultConfig(),
		EngineA:     fastEngine(),
		EngineB:     fastEngine(),
		Seed:        9,
		MaxTicks:    60,
		InitialFood: 8,
		TrapCount:   2,
	}

	first, err := PlayMatch(context.Background(), opts)
	if err != nil {
		t.Fatal(err)
	}
	second, err := PlayMatch(context.Background(), opts)
	if err != nil {
		t.Fatal(err)
	}

	if first.Winner != second.Winner || first.ScoreA != second.ScoreA ||
		first.ScoreB != second.ScoreB || first.Ticks != second.Ticks {
		t.Errorf("same seed diverged: %+v vs %+v", first, second)
	}
}

func TestPlayMatch_ContextCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := PlayMatch(ctx, Options{
		Game:    game.DefaultConfig(),
		EngineA: fastEngine(),
		EngineB: fastEngine(),
		Seed:    1,
	})
	if err == nil {
		t.Fatal("want a context error, got none")
	}
}
