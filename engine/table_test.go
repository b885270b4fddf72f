package engine

import (
	"context"
	"testing"

	"klondike/game"

	"github.com/stretchr/testify/require"
	"golang.org/x/exp/rand"
)

func TestTable(t *testing.T) {
	t.Run("executes legal moves", func(t *testing.T) {
		table := NewTable(kingsBoard())
		move := game.LegalMoves(kingsBoard())[0]

		require.NoError(t, table.Execute(context.Background(), move))
		require.Equal(t, []game.Move{move}, table.History())
		require.True(t, game.ApplyAndReveal(kingsBoard(), move).Equal(table.Board()))
	})

	t.Run("rejects illegal moves", func(t *testing.T) {
		table := NewTable(kingsBoard())
		move := game.LegalMoves(kingsBoard())[0]
		require.NoError(t, table.Execute(context.Background(), move))

		err := table.Execute(context.Background(), move)
		require.ErrorIs(t, err, ErrIllegalMove, "Same card cannot be played twice")
		require.Len(t, table.History(), 1)
	})

	t.Run("snapshots are copies", func(t *testing.T) {
		table := NewTable(kingsBoard())
		snapshot, err := table.Snapshot(context.Background())
		require.NoError(t, err)

		snapshot.DrawPile = nil
		require.Len(t, table.Board().DrawPile, 2)
	})

	t.Run("dealt table is valid", func(t *testing.T) {
		table := DealTable(rand.New(rand.NewSource(3)))
		require.NoError(t, game.Validate(table.Board()))
		require.Empty(t, table.History())
	})

	t.Run("cancelled", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		_, err := NewTable(kingsBoard()).Snapshot(ctx)
		require.ErrorIs(t, err, context.Canceled)
	})
}
