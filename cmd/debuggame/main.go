// debuggame plays one seeded match and traces it to stdout, turn by turn,
// for inspecting engine behavior without the dashboard.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/gridduel/gridduel/arena"
	"github.com/gridduel/gridduel/engine"
	"github.com/gridduel/gridduel/game"
)

func main() {
	seed := flag.Int64("seed", 1, "Spawn seed")
	depth := flag.Int("depth", engine.DefaultConfig().SearchDepth, "Search depth for both engines")
	budget := flag.Duration("budget", engine.DefaultConfig().TimeBudget, "Per-move time budget")
	maxTicks := flag.Int("max-ticks", arena.DefaultMaxTicks, "Tick cap")
	board := flag.Bool("board", false, "Print the board every tick")
	every := flag.Int("every", 1, "Trace every Nth tick")
	flag.Parse()

	engCfg := engine.DefaultConfig()
	engCfg.SearchDepth = *depth
	engCfg.TimeBudget = *budget

	gameCfg := game.DefaultConfig()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	log.Printf("Playing debug match: seed=%d depth=%d budget=%s", *seed, *depth, *budget)

	opts := arena.Options{
		Game:     gameCfg,
		EngineA:  engCfg,
		EngineB:  engCfg,
		Seed:     *seed,
		MaxTicks: *maxTicks,
		OnTick: func(f arena.Frame) {
			if *every > 1 && f.Tick%*every != 0 {
				return
			}
			fmt.Printf("  Turn %4d | A %d (len %d, alive %v) | B %d (len %d, alive %v) | food %d\n",
				f.Tick,
				f.SnakeA.Score, len(f.SnakeA.Segments), f.SnakeA.Alive,
				f.SnakeB.Score, len(f.SnakeB.Segments), f.SnakeB.Alive,
				len(f.Food))
			if *board {
				fmt.Print(drawBoard(&f, &gameCfg))
			}
		},
	}

	res, err := arena.PlayMatch(ctx, opts)
	if err != nil {
		log.Fatalf("Match failed: %v", err)
	}

	log.Printf("Match %s complete: winner=%s score %d-%d over %d ticks",
		res.ID, res.Winner, res.ScoreA, res.ScoreB, res.Ticks)
}

func drawBoard(f *arena.Frame, cfg *game.Config) string {
	mark := func(grid [][]byte, cells []game.Cell, head, body byte) {
		for i, c := range cells {
			ch := body
			if i == 0 {
				ch = head
			}
			grid[c.Y][c.X] = ch
		}
	}

	grid := make([][]byte, cfg.Height)
	for y := range grid {
		grid[y] = []byte(strings.Repeat(".", cfg.Width))
	}
	for _, c := range f.Food {
		grid[c.Y][c.X] = 'o'
	}
	for _, c := range f.Traps {
		grid[c.Y][c.X] = 'x'
	}
	mark(grid, f.SnakeB.Segments, 'B', 'b')
	mark(grid, f.SnakeA.Segments, 'A', 'a')

	var b strings.Builder
	for _, row := range grid {
		b.Write(row)
		b.WriteByte('\n')
	}
	return b.String()
}
