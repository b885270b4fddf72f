package searcher

import (
	"context"
	"testing"

	"klondike/game"

	"github.com/stretchr/testify/require"
)

func TestUCB1Search(t *testing.T) {
	t.Run("single winning move", func(t *testing.T) {
		result, err := NewUCB1(WithSeed(1)).Search(context.Background(), lastKingBoard())
		require.NoError(t, err)

		require.Len(t, result.Children, 1)
		require.Equal(t, UCBSamplesPerMove, result.Children[0].Visits())
		require.Equal(t, 100.0, result.BestWinRate)
	})

	t.Run("every arm is tried first", func(t *testing.T) {
		for _, goroutines := range []int{1, 4} {
			result, err := NewUCB1(WithSeed(2), WithSamplesPerMove(1), WithGoroutines(goroutines)).
				Search(context.Background(), fourKingsBoard())
			require.NoError(t, err)

			require.Equal(t, []int{1, 1, 1, 1, 1, 1}, childVisits(result),
				"Each arm should get exactly one visit with %d goroutines", goroutines)
		}
	})

	t.Run("ties go to the latest move", func(t *testing.T) {
		result, err := NewUCB1(WithSeed(3), WithSamplesPerMove(4)).Search(context.Background(), fourKingsBoard())
		require.NoError(t, err)

		require.Same(t, result.Children[5], result.Best, "All arms win, the last one is best")
		require.Same(t, result.Children[5], result.Worst)
		require.Equal(t, "K♠(col-1) [1] -> Q♠(base-1)", result.BestMove.Name)
		require.Equal(t, 24, result.Visits)
	})

	t.Run("no legal moves", func(t *testing.T) {
		b := game.Apply(deadEndBoard(), game.LegalMoves(deadEndBoard())[0])
		_, err := NewUCB1().Search(context.Background(), b)
		require.ErrorIs(t, err, ErrEmptyCandidateSet)
	})

	t.Run("same seed same result", func(t *testing.T) {
		b := dealtBoard(21)
		first, err := NewUCB1(WithSeed(8), WithSamplesPerMove(10), WithGoroutines(2)).Search(context.Background(), b)
		require.NoError(t, err)
		second, err := NewUCB1(WithSeed(8), WithSamplesPerMove(10), WithGoroutines(2)).Search(context.Background(), b)
		require.NoError(t, err)

		require.Equal(t, childVisits(first), childVisits(second))
		require.Equal(t, childWins(first), childWins(second))
	})

	t.Run("cancelled", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		_, err := NewUCB1(WithSeed(1)).Search(ctx, fourKingsBoard())
		require.ErrorIs(t, err, context.Canceled)
	})
}

func TestUCB1SelectArm(t *testing.T) {
	u := NewUCB1()
	root := newNode(0, nil)
	children := []*Node{newNode(1, nil), newNode(2, nil)}

	for iter := 0; iter < 3; iter++ {
		root.backup(true)
		children[0].backup(true)
	}
	require.Equal(t, 1, u.selectArm(root, children), "Unvisited arm is selected first")

	root.backup(false)
	children[1].backup(false)
	require.Equal(t, 0, u.selectArm(root, children), "Winning arm has the higher score")
}
