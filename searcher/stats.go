package searcher

// Stats counts the work done by a single search invocation. Every call to
// FindMove owns a fresh Stats; once the call returns the counters are final.
type Stats struct {
	// NodesVisited counts every state examined, the root included.
	NodesVisited int
	// Cutoffs counts pruning events: each time a node abandons its
	// remaining children because alpha >= beta, regardless of how many
	// siblings were skipped.
	Cutoffs int
}
