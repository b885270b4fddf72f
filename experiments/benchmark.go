package experiments

import (
	"context"
	"fmt"
	"math"

	"klondike/agent"
	"klondike/config"
	"klondike/engine"
	"klondike/experiments/metrics"
	"klondike/searcher"

	"github.com/rs/zerolog/log"
	"github.com/samber/lo"
	"golang.org/x/exp/rand"
	"lukechampine.com/frand"
)

// benchmarkConfigs pits both selectors against the same deals.
func benchmarkConfigs() []metrics.AgentConfig {
	return []metrics.AgentConfig{
		{ID: 1, Selector: searcher.FlatName},
		{ID: 2, Selector: searcher.UCB1Name},
	}
}

// RunBenchmark plays the configured number of dealt games with every agent
// config and writes the records. It returns the directory written to.
func RunBenchmark(ctx context.Context, cfg *config.Config) (string, error) {
	configs := benchmarkConfigs()
	for i := range configs {
		configs[i].Goroutines = cfg.GetInt(config.ConfigGoroutines)
		configs[i].SamplesPerMove = cfg.GetInt(config.ConfigSamplesPerMove)
		configs[i].Cutoff = cfg.GetInt(config.ConfigCutoff)
	}
	seeds := dealSeeds(cfg)

	count := 0
	gameRecords := []metrics.GameRecord{}
	moveRecords := []metrics.MoveRecord{}

	log.Info().Msgf("starting benchmark with %d games per agent...", len(seeds))

	for _, agentConfig := range configs {
		log.Info().Msgf("starting agent %+v...", agentConfig)

		for i, seed := range seeds {
			gameMetric, moveMetrics, err := runGame(ctx, cfg, agentConfig, seed)
			if err != nil {
				return "", fmt.Errorf("agent %d game %d: %w", agentConfig.ID, i+1, err)
			}
			count++
			gameRecords = append(gameRecords, metrics.GameRecord{
				ID:         count,
				Agent:      agentConfig.ID,
				GameMetric: gameMetric,
			})
			for _, mm := range moveMetrics {
				moveRecords = append(moveRecords, metrics.MoveRecord{
					Game:       count,
					MoveMetric: mm,
				})
			}

			log.Info().Msgf("completed game %d of %d: %s after %d moves", i+1, len(seeds), gameMetric.Outcome, gameMetric.TotalMoves)
		}

		won := lo.CountBy(gameRecords, func(r metrics.GameRecord) bool {
			return r.Agent == agentConfig.ID && r.Outcome == engine.Won.String()
		})
		log.Info().Msgf("agent %d won %d of %d games", agentConfig.ID, won, len(seeds))
	}

	writer, err := metrics.NewWriter(cfg.GetString(config.ConfigOutputDir), "benchmark")
	if err != nil {
		return "", err
	}
	if err := writer.WriteAgentConfigs(configs); err != nil {
		return "", err
	}
	if err := writer.WriteGameRecords(gameRecords); err != nil {
		return "", err
	}
	if err := writer.WriteMoveRecords(moveRecords); err != nil {
		return "", err
	}
	log.Info().Msgf("stored records in %s", writer.Dir())
	return writer.Dir(), nil
}

// dealSeeds derives one seed per game so that every agent plays the same
// deals; without a configured seed the deals are random.
func dealSeeds(cfg *config.Config) []uint64 {
	seeds := make([]uint64, cfg.GetInt(config.ConfigGames))
	for i := range seeds {
		if cfg.Seeded() {
			seeds[i] = cfg.GetUint64(config.ConfigSeed) + uint64(i)
		} else {
			seeds[i] = frand.Uint64n(math.MaxUint64)
		}
	}
	return seeds
}

// runGame plays a single dealt game with one agent config.
func runGame(ctx context.Context, cfg *config.Config, agentConfig metrics.AgentConfig, seed uint64) (metrics.GameMetric, []metrics.MoveMetric, error) {
	selector, err := searcher.New(agentConfig.Selector,
		searcher.WithGoroutines(agentConfig.Goroutines),
		searcher.WithSamplesPerMove(agentConfig.SamplesPerMove),
		searcher.WithCutoff(agentConfig.Cutoff),
		searcher.WithExploration(cfg.GetFloat64(config.ConfigExploration)),
		searcher.WithSeed(seed),
		searcher.WithMetrics(),
	)
	if err != nil {
		return metrics.GameMetric{}, nil, err
	}

	controller := engine.NewController(
		agent.NewSearchAgent(selector),
		agent.NewRandomAgent(rand.New(rand.NewSource(seed))),
		engine.WithResign(cfg.GetBool(config.ConfigResign)),
	)

	table := engine.DealTable(rand.New(rand.NewSource(seed)))
	g := &engine.Game{
		Producer:      table,
		Executor:      table,
		Controller:    controller,
		MaxTurns:      cfg.GetInt(config.ConfigMaxTurns),
		RetryAttempts: cfg.GetUint(config.ConfigRetryAttempts),
		RetryDelay:    cfg.GetDuration(config.ConfigRetryDelay),
	}
	gameMetric, moveMetrics, err := g.Run(ctx)
	gameMetric.Seed = seed
	return gameMetric, moveMetrics, err
}
