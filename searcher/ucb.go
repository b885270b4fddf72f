package searcher

import (
	"context"
	"fmt"
	"math"
	"time"

	"klondike/game"
)

// UCB1 treats the legal moves as bandit arms: each iteration rolls out the
// arm with the highest UCB1 score. Goroutines > 1 runs iterations in batches,
// with virtual losses steering the batch away from a single arm.
type UCB1 struct {
	settings
}

func NewUCB1(options ...Option) *UCB1 {
	return &UCB1{settings: newSettings(UCBSamplesPerMove, options)}
}

func (u *UCB1) Search(ctx context.Context, board *game.Board) (*Result, error) {
	start := time.Now()
	moves := game.LegalMoves(board)
	if len(moves) == 0 {
		return nil, ErrEmptyCandidateSet
	}
	root, children, boards := expand(board, moves)
	u.metrics.Start(UCB1Name, u.goroutines, len(children))

	rng := u.newRand()
	budget := len(children) * u.samples
	batch := make([]sample, 0, u.goroutines)
	for done := 0; done < budget; done += len(batch) {
		batch = batch[:0]
		for len(batch) < u.goroutines && done+len(batch) < budget {
			arm := u.selectArm(root, children)
			root.applyLoss()
			children[arm].applyLoss()
			batch = append(batch, sample{arm: arm, seed: rng.Uint64()})
		}

		err := u.playout(ctx, boards, batch, func(out outcome) {
			root.reverseLoss()
			children[out.arm].reverseLoss()
			root.backup(out.won)
			children[out.arm].backup(out.won)
		})
		if err != nil {
			return nil, fmt.Errorf("ucb1 search: %w", err)
		}
	}

	result := aggregate(root, children, moves, u.metrics.Complete())
	result.log(UCB1Name, time.Since(start))
	return result, nil
}

// selectArm returns the first arm with the maximum score, counting rollouts
// in flight as visits.
func (u *UCB1) selectArm(root *Node, children []*Node) int {
	policy := newUCB1(u.exploration, root.visits+root.pending)
	best, bestScore := 0, math.Inf(-1)
	for i, child := range children {
		score := child.score(policy)
		if score > bestScore {
			best, bestScore = i, score
		}
	}
	return best
}
