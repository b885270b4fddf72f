package searcher

import (
	"testing"

	"klondike/game"

	"github.com/stretchr/testify/require"
	"golang.org/x/exp/rand"
)

func newSeededRand(seed uint64) *rand.Rand {
	return rand.New(rand.NewSource(seed))
}

func TestRollout(t *testing.T) {
	t.Run("won board", func(t *testing.T) {
		b := game.Apply(lastKingBoard(), game.LegalMoves(lastKingBoard())[0])
		require.True(t, game.IsWon(b))
		require.True(t, Rollout(b, newSeededRand(1)), "Won board should roll out as a win")
	})

	t.Run("winning move", func(t *testing.T) {
		require.True(t, Rollout(lastKingBoard(), newSeededRand(1)), "Only move wins the game")
	})

	t.Run("dead end", func(t *testing.T) {
		require.False(t, Rollout(deadEndBoard(), newSeededRand(1)), "Dead end can never be won")
	})

	t.Run("does not modify the board", func(t *testing.T) {
		b := dealtBoard(3)
		before := b.Clone()
		Rollout(b, newSeededRand(2))
		require.True(t, before.Equal(b), "Rollout should play on a copy")
	})

	t.Run("same seed same outcome", func(t *testing.T) {
		b := dealtBoard(5)
		for seed := uint64(0); seed < 20; seed++ {
			require.Equal(t,
				Rollout(b, newSeededRand(seed)),
				Rollout(b, newSeededRand(seed)),
				"Rollout should only depend on the board and the rng")
		}
	})

	t.Run("cutoff counts as a loss", func(t *testing.T) {
		won, cut := rollout(fourKingsBoard(), newSeededRand(1), 1)
		require.False(t, won, "Cut off rollout is a loss")
		require.True(t, cut, "Four moves are needed to win, cutoff is one")
	})
}
