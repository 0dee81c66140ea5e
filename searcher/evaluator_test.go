package searcher

import (
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/exp/rand"

	"kinarow/game"
)

func newBoard(t *testing.T, m, k int, moves ...game.Action) game.State {
	t.Helper()
	s, err := game.NewState(m, k)
	require.NoError(t, err)
	for _, mv := range moves {
		s = s.Apply(mv)
	}
	return s
}

// randomPlayout plays n random moves from an empty board, stopping early if
// the game ends.
func randomPlayout(t *testing.T, rng *rand.Rand, m, k, n int) game.State {
	t.Helper()
	s, err := game.NewState(m, k)
	require.NoError(t, err)
	for i := 0; i < n && !s.Terminal(); i++ {
		actions := s.LegalActions()
		s = s.Apply(actions[rng.Intn(len(actions))])
	}
	return s
}

func TestEvaluateEmptyBoardIsNeutral(t *testing.T) {
	s := newBoard(t, 3, 3)
	require.Zero(t, Evaluate(s, game.X, DefaultWeights()))
	require.Zero(t, Evaluate(s, game.O, DefaultWeights()))
}

func TestEvaluateLoneCenterMark(t *testing.T) {
	s := newBoard(t, 3, 3, game.Action{Row: 1, Col: 1})

	// The center mark sits in four open windows (its row, column, and both
	// diagonals) worth 1 each, plus the center bonus.
	require.Equal(t, 4.5, Evaluate(s, game.X, DefaultWeights()))
	require.Equal(t, -4.5, Evaluate(s, game.O, DefaultWeights()))
}

func TestEvaluateWeightsAreApplied(t *testing.T) {
	s := newBoard(t, 3, 3, game.Action{Row: 1, Col: 1})

	w := Weights{Quadratic: 2, CenterBonus: 0.25}
	require.Equal(t, 8.25, Evaluate(s, game.X, w))
}

func TestEvaluateSymmetry(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	w := DefaultWeights()
	for i := 0; i < 200; i++ {
		s := randomPlayout(t, rng, 4, 3, rng.Intn(10))
		require.Equal(t, Evaluate(s, game.X, w), -Evaluate(s, game.O, w),
			"evaluation must be antisymmetric between the players:\n%s", s)
	}
}

func TestEvaluateBlockedWindowScoresNothing(t *testing.T) {
	// X on both ends of the top row of a 3x3 board: the row window holds an
	// O in between, so neither player scores it.
	s := newBoard(t, 3, 3,
		game.Action{Row: 0, Col: 0},
		game.Action{Row: 0, Col: 1},
		game.Action{Row: 0, Col: 2})

	// X(0,0): col0 + main diagonal = 2. X(0,2): col2 + anti-diagonal = 2.
	// O(0,1): col1 = 1. Row 0 is dead for both sides.
	require.Equal(t, 3.0, Evaluate(s, game.X, DefaultWeights()))
}

func TestEvaluateMonotonicity(t *testing.T) {
	// Adding one of the evaluated player's marks never lowers their score.
	// Positions differing by exactly one X mark are built by extending an
	// even-length move sequence with one more X move.
	bases := [][]game.Action{
		{},
		{{Row: 1, Col: 1}, {Row: 2, Col: 2}},
		{{Row: 0, Col: 0}, {Row: 2, Col: 0}, {Row: 1, Col: 1}, {Row: 2, Col: 2}},
	}
	w := DefaultWeights()
	for _, base := range bases {
		before := newBoard(t, 3, 3, base...)
		require.Equal(t, game.X, before.Player())
		for _, a := range before.LegalActions() {
			after := before.Apply(a)
			require.GreaterOrEqual(t, Evaluate(after, game.X, w), Evaluate(before, game.X, w),
				"adding X at %v lowered X's score:\n%s", a, before)
		}
	}
}

func TestEvaluateStaysInsideHeuristicBound(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	w := DefaultWeights()
	for i := 0; i < 300; i++ {
		m := 3 + rng.Intn(4) // 3..6
		k := 3
		s := randomPlayout(t, rng, m, k, rng.Intn(m*m+1))
		v := Evaluate(s, game.X, w)
		require.Less(t, v, HeuristicBound)
		require.Greater(t, v, -HeuristicBound)
	}
}

func TestEvaluateClampsExtremeScores(t *testing.T) {
	// Inflated weights push the raw score far past the bound; the result
	// must still be strictly inside it.
	s := newBoard(t, 3, 3, game.Action{Row: 1, Col: 1})
	w := Weights{Quadratic: 1000, CenterBonus: 0.5}

	require.Equal(t, HeuristicBound-1, Evaluate(s, game.X, w))
	require.Equal(t, -(HeuristicBound - 1), Evaluate(s, game.O, w))
}
