package agent

import (
	"context"
	"errors"

	"klondike/game"
	"klondike/searcher"
)

type searchAgent struct {
	selector searcher.Selector
}

// NewSearchAgent returns an agent playing the selector's best move.
func NewSearchAgent(selector searcher.Selector) Agent {
	return searchAgent{selector: selector}
}

func (a searchAgent) FindMove(ctx context.Context, board *game.Board) (Decision, error) {
	result, err := a.selector.Search(ctx, board)
	if errors.Is(err, searcher.ErrEmptyCandidateSet) {
		return Decision{}, nil
	}
	if err != nil {
		return Decision{}, err
	}
	return Decision{Move: result.BestMove, Result: result}, nil
}
