package experiments

import (
	"context"

	"klondike/config"
	"klondike/engine"
	"klondike/experiments/metrics"
	"klondike/searcher"

	"github.com/rs/zerolog/log"
	"golang.org/x/exp/rand"
)

const ThroughputSamplesPerMove = 100

// goroutineCounts doubles from 1 up to and including limit.
func goroutineCounts(limit int) []int {
	counts := []int{}
	for n := 1; n < limit; n *= 2 {
		counts = append(counts, n)
	}
	return append(counts, limit)
}

// RunThroughput measures rollouts per second of a flat search on one deal
// for an increasing number of goroutines.
func RunThroughput(ctx context.Context, cfg *config.Config) ([]metrics.ThroughputRecord, error) {
	samples := cfg.GetInt(config.ConfigSamplesPerMove)
	if samples <= 0 {
		samples = ThroughputSamplesPerMove
	}
	seed := cfg.GetUint64(config.ConfigSeed)
	board, err := engine.DealTable(rand.New(rand.NewSource(seed))).Snapshot(ctx)
	if err != nil {
		return nil, err
	}

	log.Info().Msg("starting throughput experiment...")

	records := []metrics.ThroughputRecord{}
	for _, goroutines := range goroutineCounts(cfg.GetInt(config.ConfigGoroutines)) {
		selector := searcher.NewFlat(
			searcher.WithGoroutines(goroutines),
			searcher.WithSamplesPerMove(samples),
			searcher.WithCutoff(cfg.GetInt(config.ConfigCutoff)),
			searcher.WithSeed(seed),
			searcher.WithMetrics(),
		)
		result, err := selector.Search(ctx, board)
		if err != nil {
			return nil, err
		}
		records = append(records, metrics.ThroughputRecord{Goroutines: goroutines, SearchMetric: result.Metric})
		log.Info().Msgf("%d goroutines: %.0f rollouts/s", goroutines, result.Metric.EpisodesPerSecond())
	}

	log.Info().Msg("completed throughput experiment")

	writer, err := metrics.NewWriter(cfg.GetString(config.ConfigOutputDir), "throughput")
	if err != nil {
		return nil, err
	}
	if err := writer.WriteThroughputRecords(records); err != nil {
		return nil, err
	}
	log.Info().Msgf("stored records in %s", writer.Dir())
	return records, nil
}
