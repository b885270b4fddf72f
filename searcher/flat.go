package searcher

import (
	"context"
	"fmt"
	"time"

	"klondike/game"
)

// Flat is a flat Monte-Carlo selector: it spends samples-per-move times the
// number of legal moves on rollouts, each starting from a uniformly random
// root move, and ranks the moves by win rate.
type Flat struct {
	settings
}

func NewFlat(options ...Option) *Flat {
	return &Flat{settings: newSettings(FlatSamplesPerMove, options)}
}

// Search never fails on a board without legal moves; the Result then has
// no BestMove.
func (f *Flat) Search(ctx context.Context, board *game.Board) (*Result, error) {
	start := time.Now()
	moves := game.LegalMoves(board)
	root, children, boards := expand(board, moves)
	f.metrics.Start(FlatName, f.goroutines, len(children))
	if len(children) > 0 {
		rng := f.newRand()
		samples := make([]sample, len(children)*f.samples)
		for i := range samples {
			samples[i] = sample{arm: rng.Intn(len(children)), seed: rng.Uint64()}
		}

		err := f.playout(ctx, boards, samples, func(out outcome) {
			root.backup(out.won)
			children[out.arm].backup(out.won)
		})
		if err != nil {
			return nil, fmt.Errorf("flat search: %w", err)
		}
	}

	result := aggregate(root, children, moves, f.metrics.Complete())
	result.log(FlatName, time.Since(start))
	return result, nil
}
