package game

// Outcome classifies a state as still in progress, won, or drawn.
type Outcome uint8

const (
	InProgress Outcome = iota
	XWins
	OWins
	Draw
)

func (o Outcome) String() string {
	switch o {
	case XWins:
		return "X wins"
	case OWins:
		return "O wins"
	case Draw:
		return "draw"
	}
	return "in progress"
}

// WinUtility is the magnitude of a terminal utility value. Heuristic scores
// are bounded well inside (-WinUtility, WinUtility) so a discovered win or
// loss always dominates any heuristic estimate.
const WinUtility = 1000.0

// Winner returns the player with k in a row, or None. Each maximal line is
// scanned with a sliding run counter.
func (s State) Winner() Player {
	for _, line := range s.Lines() {
		run := 0
		current := None
		for _, cell := range line {
			if cell != None && cell == current {
				run++
			} else {
				current = cell
				run = 1
			}
			if current != None && run >= s.k {
				return current
			}
		}
	}
	return None
}

// Outcome computes the game status of the state.
func (s State) Outcome() Outcome {
	switch s.Winner() {
	case X:
		return XWins
	case O:
		return OWins
	}
	if s.MoveCount() == s.m*s.m {
		return Draw
	}
	return InProgress
}

// Terminal reports whether the game is over: a player has won or the board
// is full.
func (s State) Terminal() bool {
	return s.Outcome() != InProgress
}

// Utility scores a terminal state from the given player's perspective:
// +WinUtility for a win, -WinUtility for a loss, 0 for a draw. Calling it on
// a non-terminal state is a programming error.
func (s State) Utility(p Player) float64 {
	switch s.Outcome() {
	case XWins:
		if p == X {
			return WinUtility
		}
		return -WinUtility
	case OWins:
		if p == O {
			return WinUtility
		}
		return -WinUtility
	case Draw:
		return 0
	}
	panic("utility of a non-terminal state")
}
