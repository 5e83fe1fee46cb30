package arena

import (
	"fmt"
	"math/rand"

	"github.com/gridduel/gridduel/game"
)

// Board is a freshly spawned match position.
type Board struct {
	SnakeA *game.Snake
	SnakeB *game.Snake
	Food   game.CellSet
	Traps  game.CellSet
}

// minSpawnSeparation keeps the heads far enough apart that neither engine
// opens in escape mode.
const minSpawnSeparation = 5.0

const spawnAttempts = 100

// SpawnBoard builds a starting position from the seed: two single-segment
// snakes with pending growth up to the minimum length, heads at least
// minSpawnSeparation apart, and food and traps scattered on unoccupied
// interior cells. Traps additionally avoid food. Cells on the border are
// never used.
func SpawnBoard(cfg *game.Config, seed int64, foodCount, trapCount int) (*Board, error) {
	if cfg.Width < 4 || cfg.Height < 4 {
		return nil, fmt.Errorf("board %dx%d too small to spawn", cfg.Width, cfg.Height)
	}
	rng := rand.New(rand.NewSource(seed))

	interior := func() game.Cell {
		return game.Cell{
			X: 1 + rng.Intn(cfg.Width-2),
			Y: 1 + rng.Intn(cfg.Height-2),
		}
	}

	headA := interior()
	headB := interior()
	for i := 0; game.Distance(headA, headB) < minSpawnSeparation; i++ {
		if i >= spawnAttempts {
			return nil, fmt.Errorf("no spawn separation of %.0f found on %dx%d board", minSpawnSeparation, cfg.Width, cfg.Height)
		}
		headB = interior()
	}

	newSnake := func(head game.Cell) *game.Snake {
		s := game.NewSnake(head)
		if cfg.MinSnakeLength > 1 {
			s.PendingGrowth = cfg.MinSnakeLength - 1
		}
		return s
	}
	snakeA := newSnake(headA)
	snakeB := newSnake(headB)

	occupied := game.NewCellSet(headA, headB)

	place := func(count int, avoid game.CellSet) game.CellSet {
		out := game.NewCellSet()
		for len(out) < count {
			placed := false
			for i := 0; i < spawnAttempts; i++ {
				c := interior()
				if occupied.Contains(c) || out.Contains(c) {
					continue
				}
				if avoid != nil && avoid.Contains(c) {
					continue
				}
				out.Add(c)
				placed = true
				break
			}
			if !placed {
				break // board too crowded; live with fewer
			}
		}
		return out
	}

	food := place(foodCount, nil)
	traps := place(trapCount, food)

	return &Board{SnakeA: snakeA, SnakeB: snakeB, Food: food, Traps: traps}, nil
}
