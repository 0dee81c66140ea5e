package game

import (
	"fmt"
	"strings"
)

// Player marks a cell. X always moves first.
type Player uint8

const (
	None Player = iota
	X
	O
)

func (p Player) Opponent() Player {
	switch p {
	case X:
		return O
	case O:
		return X
	}
	return None
}

func (p Player) String() string {
	switch p {
	case X:
		return "X"
	case O:
		return "O"
	}
	return "."
}

// Action places the mover's mark at (Row, Col). An Action is only meaningful
// for the State whose legal actions it was enumerated from.
type Action struct {
	Row int
	Col int
}

func (a Action) String() string {
	return fmt.Sprintf("(%d,%d)", a.Row, a.Col)
}

// State is an immutable snapshot of an m×m board with a k-in-a-row win
// condition. Operations on State always return a new copy; the side to move
// is derived from the mark counts and never stored separately.
type State struct {
	cells []Player
	m     int
	k     int
}

// NewState creates an empty m×m board requiring k in a row to win.
func NewState(m, k int) (State, error) {
	if m < 1 {
		return State{}, fmt.Errorf("invalid board size %d: must be at least 1", m)
	}
	if k < 1 || k > m {
		return State{}, fmt.Errorf("invalid win length %d for board size %d: must be in [1, %d]", k, m, m)
	}
	return State{
		cells: make([]Player, m*m),
		m:     m,
		k:     k,
	}, nil
}

func (s State) Size() int      { return s.m }
func (s State) WinLength() int { return s.k }

func (s State) Cell(row, col int) Player {
	return s.cells[row*s.m+col]
}

// MoveCount reports how many marks have been placed.
func (s State) MoveCount() int {
	n := 0
	for _, c := range s.cells {
		if c != None {
			n++
		}
	}
	return n
}

// Player returns the side to move. X moves first and the players alternate,
// so the side to move follows from the number of filled cells.
func (s State) Player() Player {
	if s.MoveCount()%2 == 0 {
		return X
	}
	return O
}

// LegalActions enumerates every empty cell in row-major order.
func (s State) LegalActions() []Action {
	actions := make([]Action, 0, len(s.cells)-s.MoveCount())
	for r := 0; r < s.m; r++ {
		for c := 0; c < s.m; c++ {
			if s.Cell(r, c) == None {
				actions = append(actions, Action{Row: r, Col: c})
			}
		}
	}
	return actions
}

// Apply places the mover's mark and returns the resulting state. The
// receiver is left untouched. Applying an action to an occupied or
// out-of-bounds cell is a programming error and panics.
func (s State) Apply(a Action) State {
	if a.Row < 0 || a.Row >= s.m || a.Col < 0 || a.Col >= s.m {
		panic(fmt.Sprintf("illegal action %v: out of bounds on %dx%d board", a, s.m, s.m))
	}
	if s.Cell(a.Row, a.Col) != None {
		panic(fmt.Sprintf("illegal action %v: cell already occupied", a))
	}
	cells := make([]Player, len(s.cells))
	copy(cells, s.cells)
	cells[a.Row*s.m+a.Col] = s.Player()
	return State{cells: cells, m: s.m, k: s.k}
}

// Equal reports whether two states have identical grids.
func (s State) Equal(other State) bool {
	if s.m != other.m || s.k != other.k {
		return false
	}
	for i := range s.cells {
		if s.cells[i] != other.cells[i] {
			return false
		}
	}
	return true
}

// Lines returns every maximal line of length >= k: all rows, all columns,
// and both diagonal directions. Win detection and heuristic evaluation share
// this enumeration so they always agree on which lines exist.
func (s State) Lines() [][]Player {
	m, k := s.m, s.k
	lines := make([][]Player, 0, 2*m+2*(2*(m-k)+1))

	for r := 0; r < m; r++ {
		row := make([]Player, m)
		for c := 0; c < m; c++ {
			row[c] = s.Cell(r, c)
		}
		lines = append(lines, row)
	}

	for c := 0; c < m; c++ {
		col := make([]Player, m)
		for r := 0; r < m; r++ {
			col[r] = s.Cell(r, c)
		}
		lines = append(lines, col)
	}

	// Down-right diagonals, one per starting cell on the top row or left edge.
	for start := -(m - k); start <= m-k; start++ {
		r, c := 0, start
		if start < 0 {
			r, c = -start, 0
		}
		diag := make([]Player, 0, m)
		for r < m && c < m {
			diag = append(diag, s.Cell(r, c))
			r++
			c++
		}
		lines = append(lines, diag)
	}

	// Down-left diagonals, starting on the top row or right edge.
	for start := k - 1; start <= 2*(m-1)-(k-1); start++ {
		r, c := 0, start
		if start >= m {
			r, c = start-m+1, m-1
		}
		diag := make([]Player, 0, m)
		for r < m && c >= 0 {
			diag = append(diag, s.Cell(r, c))
			r++
			c--
		}
		lines = append(lines, diag)
	}

	return lines
}

// String renders the board with row and column indices, '.' for empty cells.
func (s State) String() string {
	var b strings.Builder
	b.WriteString("  ")
	for c := 0; c < s.m; c++ {
		fmt.Fprintf(&b, " %d", c)
	}
	b.WriteByte('\n')
	for r := 0; r < s.m; r++ {
		fmt.Fprintf(&b, "%d ", r)
		for c := 0; c < s.m; c++ {
			fmt.Fprintf(&b, " %s", s.Cell(r, c))
		}
		b.WriteByte('\n')
	}
	return b.String()
}
