package engine

import (
	"bufio"
	"fmt"
	"io"

	"golang.org/x/exp/rand"

	"kinarow/game"
	"kinarow/searcher"
)

// Agent chooses a move for the side to move in a non-terminal state.
type Agent interface {
	Name() string
	ChooseMove(s game.State) game.Action
}

// SearchAgent plays the move selected by a Searcher.
type SearchAgent struct {
	name     string
	searcher *searcher.Searcher
}

func NewSearchAgent(name string, s *searcher.Searcher) *SearchAgent {
	return &SearchAgent{name: name, searcher: s}
}

func (a *SearchAgent) Name() string { return a.name }

func (a *SearchAgent) ChooseMove(s game.State) game.Action {
	result := a.searcher.FindMove(s)
	if !result.HasAction {
		panic("search agent asked to move in a state with no choices")
	}
	return result.Action
}

// RandomAgent plays a uniformly random legal move. The seed is explicit so
// games are reproducible.
type RandomAgent struct {
	rng *rand.Rand
}

func NewRandomAgent(seed uint64) *RandomAgent {
	return &RandomAgent{rng: rand.New(rand.NewSource(seed))}
}

func (a *RandomAgent) Name() string { return "random" }

func (a *RandomAgent) ChooseMove(s game.State) game.Action {
	actions := s.LegalActions()
	if len(actions) == 0 {
		panic("random agent asked to move on a full board")
	}
	return actions[a.rng.Intn(len(actions))]
}

// HumanAgent reads moves as "row col" pairs, re-prompting until the input
// parses and names an empty cell.
type HumanAgent struct {
	in  *bufio.Scanner
	out io.Writer
}

func NewHumanAgent(in io.Reader, out io.Writer) *HumanAgent {
	return &HumanAgent{in: bufio.NewScanner(in), out: out}
}

func (a *HumanAgent) Name() string { return "human" }

func (a *HumanAgent) ChooseMove(s game.State) game.Action {
	legal := s.LegalActions()
	for {
		fmt.Fprintf(a.out, "enter move as: row col > ")
		if !a.in.Scan() {
			panic("input closed while waiting for a move")
		}
		var row, col int
		if _, err := fmt.Sscan(a.in.Text(), &row, &col); err != nil {
			fmt.Fprintf(a.out, "could not parse that, expected two numbers\n")
			continue
		}
		move := game.Action{Row: row, Col: col}
		for _, l := range legal {
			if move == l {
				return move
			}
		}
		fmt.Fprintf(a.out, "%v is not a legal move\n", move)
	}
}
