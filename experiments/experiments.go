// Package experiments benchmarks the search variants against each other:
// node counts, cutoff counts, and wall time across algorithms, move
// ordering settings, and board sizes.
package experiments

import (
	"fmt"
	"time"

	"github.com/rs/zerolog/log"

	"kinarow/engine"
	"kinarow/experiments/metrics"
	"kinarow/game"
	"kinarow/searcher"
)

type variant struct {
	name    string
	options []searcher.Option
}

func measure(scenario string, v variant, s game.State, depth int) metrics.SearchRecord {
	start := time.Now()
	result := searcher.New(v.options...).FindMove(s)
	elapsed := time.Since(start)

	move := ""
	if result.HasAction {
		move = result.Action.String()
	}
	record := metrics.SearchRecord{
		Scenario:  scenario,
		Algorithm: v.name,
		Board:     s.Size(),
		Win:       s.WinLength(),
		Depth:     depth,
		Nodes:     result.Stats.NodesVisited,
		Cutoffs:   result.Stats.Cutoffs,
		Value:     result.Value,
		Move:      move,
		Duration:  elapsed,
	}

	log.Info().
		Str("scenario", scenario).
		Str("algorithm", v.name).
		Int("nodes", record.Nodes).
		Int("cutoffs", record.Cutoffs).
		Float64("value", record.Value).
		Str("move", move).
		Dur("took", elapsed).
		Msg("search measured")

	return record
}

// CompareAlgorithms3x3 runs every full-depth variant from the empty 3x3
// board. Plain minimax sets the node-count baseline the pruned variants are
// judged against.
func CompareAlgorithms3x3() []metrics.SearchRecord {
	variants := []variant{
		{name: "minimax", options: []searcher.Option{searcher.WithoutOrdering()}},
		{name: "alphabeta", options: []searcher.Option{searcher.WithAlphaBeta(), searcher.WithoutOrdering()}},
		{name: "alphabeta+ordering", options: []searcher.Option{searcher.WithAlphaBeta()}},
	}

	records := make([]metrics.SearchRecord, 0, len(variants))
	for _, v := range variants {
		s, err := game.NewState(3, 3)
		if err != nil {
			panic(err)
		}
		records = append(records, measure("3x3 full search", v, s, 0))
	}
	return records
}

// OrderingImpact4x4 measures how much move ordering changes pruning from a
// midgame 4x4 position.
func OrderingImpact4x4() []metrics.SearchRecord {
	s, err := game.NewState(4, 3)
	if err != nil {
		panic(err)
	}
	s = s.Apply(game.Action{Row: 1, Col: 1})
	s = s.Apply(game.Action{Row: 0, Col: 0})
	s = s.Apply(game.Action{Row: 2, Col: 2})

	variants := []variant{
		{name: "alphabeta", options: []searcher.Option{searcher.WithAlphaBeta(), searcher.WithoutOrdering()}},
		{name: "alphabeta+ordering", options: []searcher.Option{searcher.WithAlphaBeta()}},
	}

	records := make([]metrics.SearchRecord, 0, len(variants))
	for _, v := range variants {
		records = append(records, measure("4x4 ordering impact", v, s, 0))
	}
	return records
}

// ScalabilitySweep runs the first move of progressively larger boards,
// switching to depth-limited heuristic search where full search is
// infeasible.
func ScalabilitySweep() []metrics.SearchRecord {
	configs := []struct {
		board, win, depth int // depth 0: full search
	}{
		{3, 3, 0},
		{4, 3, 3},
		{4, 4, 3},
		{5, 4, 2},
	}

	var records []metrics.SearchRecord
	for _, cfg := range configs {
		s, err := game.NewState(cfg.board, cfg.win)
		if err != nil {
			panic(err)
		}
		options := []searcher.Option{searcher.WithAlphaBeta()}
		name := "alphabeta+ordering"
		if cfg.depth > 0 {
			options = append(options, searcher.WithDepth(cfg.depth))
			name = "depth-limited"
		}
		scenario := fmt.Sprintf("%dx%d k=%d first move", cfg.board, cfg.board, cfg.win)
		records = append(records, measure(scenario, variant{name: name, options: options}, s, cfg.depth))
	}
	return records
}

// RunMatchups plays head-to-head games: the full-depth agent against a
// random mover from both sides, then against itself.
func RunMatchups(games int) []metrics.GameRecord {
	perfect := func(name string) engine.Agent {
		return engine.NewSearchAgent(name, searcher.New(searcher.WithAlphaBeta()))
	}

	var records []metrics.GameRecord
	id := 0
	for i := 0; i < games; i++ {
		seed := uint64(i + 1)
		pairings := []struct {
			x, o engine.Agent
		}{
			{perfect("alphabeta"), engine.NewRandomAgent(seed)},
			{engine.NewRandomAgent(seed), perfect("alphabeta")},
			{perfect("alphabeta"), perfect("alphabeta")},
		}
		for _, p := range pairings {
			e, err := engine.NewLocalEngine(3, 3, p.x, p.o)
			if err != nil {
				panic(err)
			}
			start := time.Now()
			outcome, updates := e.Run(nil)
			id++
			records = append(records, metrics.GameRecord{
				ID:       id,
				AgentX:   p.x.Name(),
				AgentO:   p.o.Name(),
				Board:    3,
				Win:      3,
				Outcome:  outcome.String(),
				Moves:    len(updates),
				Duration: time.Since(start),
			})
		}
	}
	return records
}

// RunAll executes the full benchmark suite and writes the records as CSV
// files under dir.
func RunAll(dir string, games int) error {
	var searches []metrics.SearchRecord
	searches = append(searches, CompareAlgorithms3x3()...)
	searches = append(searches, OrderingImpact4x4()...)
	searches = append(searches, ScalabilitySweep()...)

	gameRecords := RunMatchups(games)

	writer, err := metrics.NewWriter(dir)
	if err != nil {
		return err
	}
	if err := writer.WriteSearchRecords(searches); err != nil {
		return err
	}
	if err := writer.WriteGameRecords(gameRecords); err != nil {
		return err
	}

	log.Info().
		Int("searches", len(searches)).
		Int("games", len(gameRecords)).
		Str("dir", dir).
		Msg("benchmark suite finished")
	return nil
}
