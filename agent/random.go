package agent

import (
	"context"

	"klondike/game"

	"golang.org/x/exp/rand"
)

type randomAgent struct {
	rng *rand.Rand
}

// NewRandomAgent returns the agent used once a position is known to be won
// whatever is played: a uniformly random draw pile move, or a tableau move
// when the draw pile has none. The agent is not safe for concurrent use.
func NewRandomAgent(rng *rand.Rand) Agent {
	return randomAgent{rng: rng}
}

func (a randomAgent) FindMove(ctx context.Context, board *game.Board) (Decision, error) {
	if err := ctx.Err(); err != nil {
		return Decision{}, err
	}
	moves := game.DrawPileMoves(board)
	if len(moves) == 0 {
		moves = game.TableauMoves(board)
	}
	if len(moves) == 0 {
		return Decision{}, ErrNoMove
	}
	move := moves[a.rng.Intn(len(moves))]
	return Decision{Move: &move, Shortcut: true}, nil
}
