package searcher

import (
	"kinarow/game"
)

// HeuristicBound caps the magnitude of any heuristic score. Scores stay
// strictly inside (-HeuristicBound, HeuristicBound) while terminal utilities
// sit at ±game.WinUtility, so a real win or loss always outranks a
// heuristic estimate in a comparison.
const HeuristicBound = 100.0

// heuristicCap keeps clamped scores strictly inside the bound.
const heuristicCap = HeuristicBound - 1

// Weights parameterizes the static evaluator.
type Weights struct {
	// Quadratic scales the squared-count score of each open window.
	Quadratic float64
	// CenterBonus is awarded for holding the central cell.
	CenterBonus float64
}

// DefaultWeights returns the standard evaluation weights.
func DefaultWeights() Weights {
	return Weights{Quadratic: 1, CenterBonus: 0.5}
}

// Evaluate scores a position from p's perspective. Every window of exactly k
// consecutive cells on every maximal line is inspected: a window free of
// opponent marks contributes Quadratic*n² for the n marks p has in it, and
// the opponent's open windows contribute the same amount negatively.
// Quadratic weighting makes a nearly complete line worth far more than the
// same marks scattered across separate lines. Holding the central cell adds
// ±CenterBonus. The result is antisymmetric between the players and clamped
// strictly inside (-HeuristicBound, HeuristicBound).
func Evaluate(s game.State, p game.Player, w Weights) float64 {
	opponent := p.Opponent()
	k := s.WinLength()

	score := 0.0
	for _, line := range s.Lines() {
		for i := 0; i+k <= len(line); i++ {
			mine, theirs := 0, 0
			for _, cell := range line[i : i+k] {
				switch cell {
				case p:
					mine++
				case opponent:
					theirs++
				}
			}
			if mine > 0 && theirs == 0 {
				score += w.Quadratic * float64(mine*mine)
			} else if theirs > 0 && mine == 0 {
				score -= w.Quadratic * float64(theirs*theirs)
			}
		}
	}

	center := s.Size() / 2
	switch s.Cell(center, center) {
	case p:
		score += w.CenterBonus
	case opponent:
		score -= w.CenterBonus
	}

	if score > heuristicCap {
		return heuristicCap
	}
	if score < -heuristicCap {
		return -heuristicCap
	}
	return score
}
