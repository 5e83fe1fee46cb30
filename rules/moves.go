package rules

import "github.com/gridduel/gridduel/game"

// IsSafe reports whether candidate is a cell s could occupy without an
// immediate collision: in bounds, not on s's own body (the head doesn't
// count, it moves away), and not on any opponent segment.
func IsSafe(s *game.Snake, candidate game.Cell, opp *game.Snake, cfg *game.Config) bool {
	if !cfg.InBounds(candidate) {
		return false
	}
	for _, seg := range s.Segments[1:] {
		if seg == candidate {
			return false
		}
	}
	if opp != nil {
		for _, seg := range opp.Segments {
			if seg == candidate {
				return false
			}
		}
	}
	return true
}

// CandidateMoves returns the directions s may attempt: all four unit vectors
// minus the reverse of its current heading, in the fixed global order.
func CandidateMoves(s *game.Snake) []game.Direction {
	reverse := s.Direction.Reverse()
	out := make([]game.Direction, 0, 3)
	for _, d := range game.Directions {
		if d != reverse {
			out = append(out, d)
		}
	}
	return out
}

// LegalMoves returns the candidate moves whose resulting head cell passes
// IsSafe.
func LegalMoves(s *game.Snake, opp *game.Snake, cfg *game.Config) []game.Direction {
	head := s.Head()
	out := make([]game.Direction, 0, 3)
	for _, d := range CandidateMoves(s) {
		if IsSafe(s, head.Add(d), opp, cfg) {
			out = append(out, d)
		}
	}
	return out
}
