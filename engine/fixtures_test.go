package engine

import (
	"context"

	"klondike/agent"
	"klondike/game"
)

func suitRun(suit game.Suit, upTo int) []game.Card {
	var pile []game.Card
	for rank := game.Ace; rank <= upTo; rank++ {
		pile = append(pile, game.NewCard(rank, suit))
	}
	return pile
}

func wonBoard() *game.Board {
	b := &game.Board{}
	for suit := game.Hearts; suit <= game.Clubs; suit++ {
		b.Foundations[suit] = suitRun(suit, game.King)
	}
	return b
}

// kingsBoard is a full deck where only the Kings are left to play and every
// move keeps the game won.
func kingsBoard() *game.Board {
	b := &game.Board{}
	for suit := game.Hearts; suit <= game.Clubs; suit++ {
		b.Foundations[suit] = suitRun(suit, game.Queen)
	}
	b.DrawPile = []game.Card{game.NewCard(game.King, game.Diamonds), game.NewCard(game.King, game.Clubs)}
	b.Tableau[0] = []game.Card{game.NewCard(game.King, game.Hearts)}
	b.Tableau[1] = []game.Card{game.NewCard(game.King, game.Spades)}
	return b
}

// lostBoard is a full deck with the clubs spread over the tableau so that
// no card can move.
func lostBoard() *game.Board {
	b := &game.Board{}
	for _, suit := range []game.Suit{game.Hearts, game.Spades, game.Diamonds} {
		b.Foundations[suit] = suitRun(suit, game.King)
	}
	for rank := game.Ace; rank <= 7; rank++ {
		card := game.NewCard(rank, game.Clubs)
		card.Hidden = rank < 7
		b.Tableau[0] = append(b.Tableau[0], card)
	}
	for i, rank := 1, 8; rank <= game.King; i, rank = i+1, rank+1 {
		b.Tableau[i] = []game.Card{game.NewCard(rank, game.Clubs)}
	}
	return b
}

type stubAgent struct {
	decision agent.Decision
	err      error
	calls    int
}

func (a *stubAgent) FindMove(ctx context.Context, board *game.Board) (agent.Decision, error) {
	a.calls++
	return a.decision, a.err
}
