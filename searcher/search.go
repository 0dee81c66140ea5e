package searcher

import (
	"math"

	"kinarow/game"
)

// Searcher selects moves by adversarial game-tree search. The zero
// configuration is exhaustive minimax with move ordering; options enable
// alpha-beta pruning and a depth limit with heuristic evaluation at the
// horizon. All variants share one recursion, so pruning and depth limiting
// can never change the backed-up value by accident, only the work done.
type Searcher struct {
	alphaBeta    bool
	depthLimited bool
	depth        int
	ordering     bool
	weights      Weights
}

type Option func(s *Searcher)

// WithAlphaBeta enables alpha-beta pruning.
func WithAlphaBeta() Option {
	return func(s *Searcher) {
		s.alphaBeta = true
	}
}

// WithDepth limits the search to the given number of plies, scoring
// horizon positions with the static evaluator. Depth 0 at the root
// evaluates the root directly and selects no action.
func WithDepth(depth int) Option {
	return func(s *Searcher) {
		if depth >= 0 {
			s.depthLimited = true
			s.depth = depth
		}
	}
}

// WithWeights overrides the evaluation weights used by the move orderer and
// the depth-limited horizon.
func WithWeights(w Weights) Option {
	return func(s *Searcher) {
		s.weights = w
	}
}

// WithoutOrdering expands children in plain lexicographic order instead of
// consulting the move orderer. Values are unaffected; only pruning volume
// and which of several equally good moves is found first.
func WithoutOrdering() Option {
	return func(s *Searcher) {
		s.ordering = false
	}
}

func New(options ...Option) *Searcher {
	s := &Searcher{
		ordering: true,
		weights:  DefaultWeights(),
	}
	for _, option := range options {
		option(s)
	}
	return s
}

// Result is the outcome of one search invocation.
type Result struct {
	// Action is the best move found. It is meaningless when HasAction is
	// false: the root was terminal or the depth limit was 0.
	Action    game.Action
	HasAction bool
	// Value is the backed-up score from the root mover's perspective: a
	// terminal utility (±game.WinUtility or 0) under full-depth search, or
	// possibly a heuristic estimate under a depth limit.
	Value float64
	Stats Stats
}

// FindMove searches from st and returns the best action for the side to
// move together with its backed-up value and the search statistics. The
// side to move at the root is the maximizer throughout the search.
func (s *Searcher) FindMove(st game.State) Result {
	var stats Stats
	depth := -1 // recurse to terminal states
	if s.depthLimited {
		depth = s.depth
	}
	value, action, ok := s.minimax(st, st.Player(), depth, math.Inf(-1), math.Inf(1), &stats)
	return Result{
		Action:    action,
		HasAction: ok,
		Value:     value,
		Stats:     stats,
	}
}

// minimax is the shared recursion behind all three variants. maximizer is
// fixed at the root; depth counts down only in depth-limited mode. alpha and
// beta are maintained regardless but only trigger cutoffs when pruning is
// enabled.
func (s *Searcher) minimax(st game.State, maximizer game.Player, depth int, alpha, beta float64, stats *Stats) (float64, game.Action, bool) {
	stats.NodesVisited++

	if st.Terminal() {
		return st.Utility(maximizer), game.Action{}, false
	}
	if s.depthLimited && depth == 0 {
		return Evaluate(st, maximizer, s.weights), game.Action{}, false
	}

	var moves []game.Action
	if s.ordering {
		moves = OrderMoves(st, s.weights)
	} else {
		moves = st.LegalActions() // already lexicographic
	}

	maximizing := st.Player() == maximizer
	best := math.Inf(1)
	if maximizing {
		best = math.Inf(-1)
	}
	var bestMove game.Action
	found := false

	for _, a := range moves {
		value, _, _ := s.minimax(st.Apply(a), maximizer, depth-1, alpha, beta, stats)

		if maximizing {
			if value > best {
				best, bestMove, found = value, a, true
			}
			if best > alpha {
				alpha = best
			}
		} else {
			if value < best {
				best, bestMove, found = value, a, true
			}
			if best < beta {
				beta = best
			}
		}

		if s.alphaBeta && alpha >= beta {
			stats.Cutoffs++
			break
		}
	}

	return best, bestMove, found
}
