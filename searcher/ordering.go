package searcher

import (
	"sort"

	"kinarow/game"
)

// OrderMoves ranks the legal actions of s for the side to move, best first.
// Good ordering is what makes alpha-beta pruning effective: exploring strong
// moves early tightens the window and cuts weak siblings sooner.
//
// Priority, highest first:
//  1. moves that win the game outright
//  2. higher static evaluation of the resulting position
//  3. closer to the board center (Chebyshev distance)
//  4. lexicographic (row, col), so the order is fully deterministic
//
// The returned slice covers exactly the legal actions of s.
func OrderMoves(s game.State, w Weights) []game.Action {
	mover := s.Player()
	center := s.Size() / 2
	actions := s.LegalActions()

	type ranked struct {
		action game.Action
		wins   bool
		score  float64
		dist   int
	}
	rs := make([]ranked, len(actions))
	for i, a := range actions {
		child := s.Apply(a)
		rs[i] = ranked{
			action: a,
			wins:   child.Winner() == mover,
			score:  Evaluate(child, mover, w),
			dist:   chebyshev(a, center),
		}
	}

	sort.Slice(rs, func(i, j int) bool {
		a, b := rs[i], rs[j]
		if a.wins != b.wins {
			return a.wins
		}
		if a.score != b.score {
			return a.score > b.score
		}
		if a.dist != b.dist {
			return a.dist < b.dist
		}
		if a.action.Row != b.action.Row {
			return a.action.Row < b.action.Row
		}
		return a.action.Col < b.action.Col
	})

	for i, r := range rs {
		actions[i] = r.action
	}
	return actions
}

func chebyshev(a game.Action, center int) int {
	dr := a.Row - center
	if dr < 0 {
		dr = -dr
	}
	dc := a.Col - center
	if dc < 0 {
		dc = -dc
	}
	if dr > dc {
		return dr
	}
	return dc
}
