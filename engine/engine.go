package engine

import (
	"context"
	"errors"
	"fmt"
	"time"

	"klondike/experiments/metrics"
	"klondike/game"
	"klondike/meta"

	"github.com/avast/retry-go/v4"
	"github.com/rs/zerolog/log"
	"github.com/samber/lo"
)

// SnapshotProducer reads the current board from wherever the game is played.
type SnapshotProducer interface {
	Snapshot(ctx context.Context) (*game.Board, error)
}

// Executor carries out a move. Failures are retried by Game.Run, except for
// ErrIllegalMove.
type Executor interface {
	Execute(ctx context.Context, move game.Move) error
}

type Game struct {
	Producer   SnapshotProducer
	Executor   Executor
	Controller *Controller

	MaxTurns      int
	RetryAttempts uint
	RetryDelay    time.Duration
}

// Outcome of a game stopped by MaxTurns
const Unfinished = "unfinished"

// Run drives the decision cycle until the controller reaches a terminal
// phase or MaxTurns moves have been executed.
func (g *Game) Run(ctx context.Context) (metrics.GameMetric, []metrics.MoveMetric, error) {
	gameMetric := metrics.GameMetric{StartTime: time.Now(), Outcome: Unfinished}
	var moveMetrics []metrics.MoveMetric
	maxTurns := lo.Ternary(g.MaxTurns > 0, g.MaxTurns, meta.MAX_TURNS)

	finish := func(board *game.Board) metrics.GameMetric {
		gameMetric.EndTime = time.Now()
		gameMetric.Duration = gameMetric.EndTime.Sub(gameMetric.StartTime)
		gameMetric.TotalMoves = len(moveMetrics)
		if board != nil {
			gameMetric.Progress = game.Progress(board)
		}
		return gameMetric
	}

	var board *game.Board
	for turn := 1; ; turn++ {
		next, err := g.Producer.Snapshot(ctx)
		if err != nil {
			return finish(board), moveMetrics, fmt.Errorf("snapshot at turn %d: %w", turn, err)
		}
		board = next

		if turn > maxTurns {
			log.Info().Msgf("stopping after %d turns", maxTurns)
			return finish(board), moveMetrics, nil
		}

		decision, err := g.Controller.Observe(ctx, board)
		if err != nil {
			return finish(board), moveMetrics, fmt.Errorf("decision at turn %d: %w", turn, err)
		}
		if phase := g.Controller.Phase(); phase.Terminal() {
			gameMetric.Outcome = phase.String()
			log.Info().Msgf("game over after %d moves: %s", len(moveMetrics), phase)
			return finish(board), moveMetrics, nil
		}

		move := *decision.Move
		moveMetric := metrics.MoveMetric{
			Step:     turn,
			Move:     move.Name,
			Shortcut: decision.Shortcut,
			EarlyWin: g.Controller.EarlyWin(),
		}
		if decision.Result != nil {
			moveMetric.BestWinRate = decision.Result.BestWinRate
			moveMetric.WorstWinRate = decision.Result.WorstWinRate
			moveMetric.SearchMetric = decision.Result.Metric
		}
		moveMetrics = append(moveMetrics, moveMetric)
		log.Info().
			Int("turn", turn).
			Str("move", move.Name).
			Bool("shortcut", decision.Shortcut).
			Float64("best", moveMetric.BestWinRate).
			Float64("worst", moveMetric.WorstWinRate).
			Msg("decision")

		if err := g.execute(ctx, move); err != nil {
			return finish(board), moveMetrics, fmt.Errorf("execute %s at turn %d: %w", move.Name, turn, err)
		}
		if err := g.Controller.Confirm(); err != nil {
			return finish(board), moveMetrics, err
		}
	}
}

func (g *Game) execute(ctx context.Context, move game.Move) error {
	attempts := lo.Ternary(g.RetryAttempts > 0, g.RetryAttempts, 1)
	return retry.Do(
		func() error {
			return g.Executor.Execute(ctx, move)
		},
		retry.Context(ctx),
		retry.Attempts(attempts),
		retry.Delay(g.RetryDelay),
		retry.LastErrorOnly(true),
		retry.RetryIf(func(err error) bool {
			return !errors.Is(err, ErrIllegalMove)
		}),
		retry.DelayType(func(n uint, err error, config *retry.Config) time.Duration {
			log.Warn().Err(err).Uint("n", n).Str("move", move.Name).Msg("move failed, trying again")
			return retry.BackOffDelay(n, err, config)
		}),
	)
}
