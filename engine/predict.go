package engine

import "github.com/gridduel/gridduel/game"

// PredictTrajectory projects the opponent's head along its last known
// direction for up to horizon steps, stopping early at the wall or at its
// own body. This is a deliberately cheap straight-line forecast, not a model
// of the opponent's actual decision logic; callers treat it as approximate.
func PredictTrajectory(opp *game.Snake, horizon int, cfg *game.Config) []game.Cell {
	if opp == nil || !opp.Alive || opp.Len() == 0 || horizon <= 0 {
		return nil
	}

	out := make([]game.Cell, 0, horizon)
	pos := opp.Head()
	for i := 0; i < horizon; i++ {
		pos = pos.Add(opp.Direction)
		if !cfg.InBounds(pos) {
			break
		}
		hit := false
		for _, seg := range opp.Segments {
			if seg == pos {
				hit = true
				break
			}
		}
		if hit {
			break
		}
		out = append(out, pos)
	}
	return out
}
