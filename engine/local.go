package engine

import (
	"time"

	"github.com/rs/zerolog/log"

	"kinarow/game"
)

// Update records one played move for observers of the game loop.
type Update struct {
	Step   int
	Player game.Player
	Move   game.Action
	State  game.State
}

// LocalEngine runs a complete game between two agents on one machine.
type LocalEngine struct {
	State  game.State
	agents [2]Agent // X first, then O
}

// NewLocalEngine sets up a game on an empty m×m board with win length k.
// agentX moves first.
func NewLocalEngine(m, k int, agentX, agentO Agent) (*LocalEngine, error) {
	state, err := game.NewState(m, k)
	if err != nil {
		return nil, err
	}
	return &LocalEngine{
		State:  state,
		agents: [2]Agent{agentX, agentO},
	}, nil
}

// Run plays the game to completion and returns the outcome together with
// every move played. The loop is bounded by the board filling up. observer
// may be nil; otherwise it is called after every move.
func (e *LocalEngine) Run(observer func(Update)) (game.Outcome, []Update) {
	log.Info().
		Str("x", e.agents[0].Name()).
		Str("o", e.agents[1].Name()).
		Int("board", e.State.Size()).
		Int("win", e.State.WinLength()).
		Msg("game started")

	var updates []Update
	step := 0
	for !e.State.Terminal() {
		mover := e.State.Player()
		agent := e.agents[0]
		if mover == game.O {
			agent = e.agents[1]
		}

		start := time.Now()
		move := agent.ChooseMove(e.State)
		e.State = e.State.Apply(move)
		step++

		log.Debug().
			Int("step", step).
			Stringer("player", mover).
			Stringer("move", move).
			Dur("took", time.Since(start)).
			Msg("move played")

		u := Update{Step: step, Player: mover, Move: move, State: e.State}
		updates = append(updates, u)
		if observer != nil {
			observer(u)
		}
	}

	outcome := e.State.Outcome()
	log.Info().Stringer("outcome", outcome).Int("moves", step).Msg("game over")
	return outcome, updates
}
