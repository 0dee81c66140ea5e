package metrics

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func readCSV(t *testing.T, path string) [][]string {
	t.Helper()
	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()
	rows, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err)
	return rows
}

func TestWriteSearchRecords(t *testing.T) {
	dir := t.TempDir()
	w, err := NewWriter(dir)
	require.NoError(t, err)

	records := []SearchRecord{
		{
			Scenario:  "3x3 full search",
			Algorithm: "alphabeta",
			Board:     3,
			Win:       3,
			Nodes:     12345,
			Cutoffs:   678,
			Value:     0,
			Move:      "(1,1)",
			Duration:  250 * time.Millisecond,
		},
	}
	require.NoError(t, w.WriteSearchRecords(records))

	rows := readCSV(t, filepath.Join(dir, "search_records.csv"))
	require.Len(t, rows, 2)
	require.Equal(t, "algorithm", rows[0][1])
	require.Equal(t, "alphabeta", rows[1][1])
	require.Equal(t, "12345", rows[1][5])
	require.Equal(t, "(1,1)", rows[1][8])
}

func TestWriteGameRecords(t *testing.T) {
	dir := t.TempDir()
	w, err := NewWriter(dir)
	require.NoError(t, err)

	records := []GameRecord{
		{ID: 1, AgentX: "alphabeta", AgentO: "random", Board: 3, Win: 3, Outcome: "X wins", Moves: 7, Duration: time.Second},
	}
	require.NoError(t, w.WriteGameRecords(records))

	rows := readCSV(t, filepath.Join(dir, "game_records.csv"))
	require.Len(t, rows, 2)
	require.Equal(t, "X wins", rows[1][5])
	require.Equal(t, "7", rows[1][6])
}
