package engine

import (
	"context"
	"errors"
	"fmt"

	"klondike/game"

	"github.com/samber/lo"
	"golang.org/x/exp/rand"
)

var ErrIllegalMove = errors.New("illegal move")

// Table is an in-memory game serving as both snapshot producer and move
// executor.
type Table struct {
	board   *game.Board
	history []game.Move
}

func NewTable(board *game.Board) *Table {
	return &Table{board: board.Clone()}
}

func DealTable(rng *rand.Rand) *Table {
	return &Table{board: game.Deal(rng)}
}

func (t *Table) Snapshot(ctx context.Context) (*game.Board, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return t.board.Clone(), nil
}

// Execute plays move if it is legal on the current board.
func (t *Table) Execute(ctx context.Context, move game.Move) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	legal := lo.ContainsBy(game.LegalMoves(t.board), func(m game.Move) bool {
		return m.Name == move.Name
	})
	if !legal {
		return fmt.Errorf("%w: %s", ErrIllegalMove, move.Name)
	}
	t.board = game.ApplyAndReveal(t.board, move)
	t.history = append(t.history, move)
	return nil
}

// Board returns a copy of the current board.
func (t *Table) Board() *game.Board {
	return t.board.Clone()
}

func (t *Table) History() []game.Move {
	return t.history
}
