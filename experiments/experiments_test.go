package experiments

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"klondike/config"

	"github.com/stretchr/testify/require"
)

func loadConfig(t *testing.T, args ...string) *config.Config {
	cfg := &config.Config{}
	require.NoError(t, cfg.Load(append([]string{"--output-dir", t.TempDir()}, args...)))
	return cfg
}

func TestRunBenchmark(t *testing.T) {
	cfg := loadConfig(t, "--games", "2", "--seed", "3", "--samples-per-move", "2",
		"--goroutines", "2", "--max-turns", "15", "--cutoff", "200")

	dir, err := RunBenchmark(context.Background(), cfg)
	require.NoError(t, err)
	for _, name := range []string{"agent_configs.csv", "game_records.csv", "move_records.csv"} {
		require.FileExists(t, filepath.Join(dir, name))
	}

	data, err := os.ReadFile(filepath.Join(dir, "game_records.csv"))
	require.NoError(t, err)
	require.Contains(t, string(data), "id,agent,seed,outcome")
	require.Contains(t, string(data), ",1,3,", "Game 1 of agent 1 uses the configured seed")
}

func TestRunBenchmarkCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := RunBenchmark(ctx, loadConfig(t, "--games", "1", "--seed", "1"))
	require.ErrorIs(t, err, context.Canceled)
}

func TestDealSeeds(t *testing.T) {
	require.Equal(t, []uint64{5, 6, 7}, dealSeeds(loadConfig(t, "--games", "3", "--seed", "5")))
	require.Len(t, dealSeeds(loadConfig(t, "--games", "4")), 4)
}

func TestGoroutineCounts(t *testing.T) {
	require.Equal(t, []int{1}, goroutineCounts(1))
	require.Equal(t, []int{1, 2, 4, 6}, goroutineCounts(6))
	require.Equal(t, []int{1, 2, 4, 8}, goroutineCounts(8))
}

func TestRunThroughput(t *testing.T) {
	cfg := loadConfig(t, "--goroutines", "2", "--samples-per-move", "2", "--seed", "4")

	records, err := RunThroughput(context.Background(), cfg)
	require.NoError(t, err)
	require.Len(t, records, 2)
	require.Equal(t, 1, records[0].Goroutines)
	require.Equal(t, 2, records[1].Goroutines)
	require.Equal(t, records[0].Episodes, records[1].Episodes, "Same budget whatever the goroutines")
	require.Positive(t, records[0].Episodes)
}
