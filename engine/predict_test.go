package engine

import (
	"reflect"
	"testing"

	"github.com/gridduel/gridduel/game"
)

func TestPredictTrajectory_StraightLine(t *testing.T) {
	cfg := testConfig().Game
	opp := straightSnake(game.Cell{X: 3, Y: 5}, game.Right, 3)

	got := PredictTrajectory(opp, 3, &cfg)
	want := []game.Cell{{X: 4, Y: 5}, {X: 5, Y: 5}, {X: 6, Y: 5}}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestPredictTrajectory_StopsAtWall(t *testing.T) {
	cfg := testConfig().Game
	opp := straightSnake(game.Cell{X: 8, Y: 5}, game.Right, 3)

	got := PredictTrajectory(opp, 5, &cfg)
	want := []game.Cell{{X: 9, Y: 5}}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestPredictTrajectory_StopsAtOwnBody(t *testing.T) {
	cfg := testConfig().Game

	// The head is about to run into the snake's own flank.
	opp := &game.Snake{
		Segments: []game.Cell{
			{X: 3, Y: 3}, {X: 3, Y: 4}, {X: 4, Y: 4}, {X: 5, Y: 4}, {X: 5, Y: 3}, {X: 5, Y: 2},
		},
		Direction: game.Right,
		Alive:     true,
	}

	got := PredictTrajectory(opp, 5, &cfg)
	want := []game.Cell{{X: 4, Y: 3}}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestPredictTrajectory_Degenerate(t *testing.T) {
	cfg := testConfig().Game
	opp := straightSnake(game.Cell{X: 5, Y: 5}, game.Up, 3)

	if got := PredictTrajectory(nil, 3, &cfg); got != nil {
		t.Errorf("nil snake: got %v", got)
	}
	if got := PredictTrajectory(opp, 0, &cfg); got != nil {
		t.Errorf("zero horizon: got %v", got)
	}
	dead := straightSnake(game.Cell{X: 5, Y: 5}, game.Up, 3)
	dead.Alive = false
	if got := PredictTrajectory(dead, 3, &cfg); got != nil {
		t.Errorf("dead snake: got %v", got)
	}
}
