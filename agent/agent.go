package agent

import (
	"context"
	"errors"

	"klondike/game"
	"klondike/searcher"
)

var ErrNoMove = errors.New("no legal move")

// Decision is the move an agent settled on. Result is nil when the move was
// chosen without a search.
type Decision struct {
	Move     *game.Move
	Result   *searcher.Result
	Shortcut bool
}

type Agent interface {
	// FindMove picks the next move for board. A search that finds no
	// candidate returns a Decision without Move and a nil error.
	FindMove(ctx context.Context, board *game.Board) (Decision, error)
}
