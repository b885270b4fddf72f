package searcher

import (
	"klondike/game"

	"golang.org/x/exp/rand"
)

// Rollout plays a copy of board to the end with uniformly random legal
// moves and reports whether the game was won. The board is not modified and
// rng is the only state touched, so independent calls may run in parallel.
func Rollout(board *game.Board, rng *rand.Rand) bool {
	won, _ := rollout(board, rng, MaxCutoff)
	return won
}

// rollout also reports whether the playout was cut off after cutoff moves;
// a cut off playout counts as a loss.
func rollout(board *game.Board, rng *rand.Rand, cutoff int) (won bool, cut bool) {
	state := board.Clone()
	for depth := 0; ; depth++ {
		if game.IsWon(state) {
			return true, false
		}
		moves := game.LegalMoves(state)
		if len(moves) == 0 {
			return false, false
		}
		if depth >= cutoff {
			return false, true
		}
		state.Play(moves[rng.Intn(len(moves))]) // Random rollout policy
	}
}
