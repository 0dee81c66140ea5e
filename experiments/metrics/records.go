package metrics

import "time"

// SearchRecord captures one instrumented search invocation.
type SearchRecord struct {
	Scenario  string
	Algorithm string
	Board     int
	Win       int
	Depth     int // 0 means full-depth search
	Nodes     int
	Cutoffs   int
	Value     float64
	Move      string
	Duration  time.Duration
}

// GameRecord captures one complete game between two agents.
type GameRecord struct {
	ID       int
	AgentX   string
	AgentO   string
	Board    int
	Win      int
	Outcome  string
	Moves    int
	Duration time.Duration
}
