package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/muesli/termenv"

	"kinarow/engine"
	"kinarow/game"
)

var output = termenv.NewOutput(os.Stdout)

func runGame(m, k int, agentX, agentO engine.Agent) {
	e, err := engine.NewLocalEngine(m, k, agentX, agentO)
	if err != nil {
		fatalf("%v", err)
	}

	fmt.Println(renderBoard(e.State))
	outcome, _ := e.Run(func(u engine.Update) {
		fmt.Printf("%s (%s) plays %s\n", u.Player, agentFor(u.Player, agentX, agentO).Name(), u.Move)
		fmt.Println(renderBoard(u.State))
	})

	switch outcome {
	case game.XWins:
		fmt.Println(styleFor(game.X).Styled("X wins!"))
	case game.OWins:
		fmt.Println(styleFor(game.O).Styled("O wins!"))
	default:
		fmt.Println("Draw!")
	}
}

func agentFor(p game.Player, agentX, agentO engine.Agent) engine.Agent {
	if p == game.X {
		return agentX
	}
	return agentO
}

func styleFor(p game.Player) termenv.Style {
	switch p {
	case game.X:
		return output.String().Foreground(termenv.ANSIBrightRed).Bold()
	case game.O:
		return output.String().Foreground(termenv.ANSIBrightBlue).Bold()
	}
	return output.String().Faint()
}

func renderBoard(s game.State) string {
	var b strings.Builder
	b.WriteString("   ")
	for c := 0; c < s.Size(); c++ {
		fmt.Fprintf(&b, " %d", c)
	}
	b.WriteByte('\n')
	for r := 0; r < s.Size(); r++ {
		fmt.Fprintf(&b, " %d ", r)
		for c := 0; c < s.Size(); c++ {
			cell := s.Cell(r, c)
			b.WriteByte(' ')
			b.WriteString(styleFor(cell).Styled(cell.String()))
		}
		b.WriteByte('\n')
	}
	return b.String()
}
