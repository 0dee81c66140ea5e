package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"kinarow/engine"
	"kinarow/experiments"
	"kinarow/searcher"
)

func main() {
	board := flag.Int("board", 3, "board size m (the board is m x m)")
	win := flag.Int("win", 3, "marks in a row needed to win")
	depth := flag.Int("depth", 0, "search depth limit; 0 picks full search on 3x3 and depth 3 elsewhere")
	aiVsAI := flag.Bool("ai-vs-ai", false, "watch the engine play itself")
	benchmark := flag.Bool("benchmark", false, "run the benchmark suite instead of a game")
	out := flag.String("out", "results", "benchmark output directory")
	games := flag.Int("games", 5, "benchmark games per match-up")
	verbose := flag.Bool("v", false, "debug logging")
	flag.Parse()

	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	if *verbose {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}

	if *benchmark {
		if err := experiments.RunAll(*out, *games); err != nil {
			log.Fatal().Err(err).Msg("benchmark suite failed")
		}
		return
	}

	if *board < 3 {
		fatalf("board size must be at least 3, got %d", *board)
	}
	if *win < 1 || *win > *board {
		fatalf("win length must be between 1 and %d, got %d", *board, *win)
	}
	if *depth < 0 {
		fatalf("depth must be non-negative, got %d", *depth)
	}

	// Full search is only feasible on the smallest board; larger ones fall
	// back to depth-limited heuristic search.
	searchDepth := *depth
	if searchDepth == 0 && *board > 3 {
		searchDepth = 3
	}

	newAgent := func(name string) engine.Agent {
		options := []searcher.Option{searcher.WithAlphaBeta()}
		if searchDepth > 0 {
			options = append(options, searcher.WithDepth(searchDepth))
		}
		return engine.NewSearchAgent(name, searcher.New(options...))
	}

	if *aiVsAI {
		runGame(*board, *win, newAgent("engine-x"), newAgent("engine-o"))
		return
	}

	fmt.Printf("%dx%d board, %d in a row to win\n", *board, *board, *win)
	fmt.Println("the engine is X and moves first, you are O")
	runGame(*board, *win, newAgent("engine"), engine.NewHumanAgent(os.Stdin, os.Stdout))
}

func fatalf(format string, args ...any) {
	fmt.Fprintf(os.Stderr, format+"\n", args...)
	os.Exit(2)
}
