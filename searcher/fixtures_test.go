package searcher

import "klondike/game"

func suitRun(suit game.Suit, upTo int) []game.Card {
	var pile []game.Card
	for rank := game.Ace; rank <= upTo; rank++ {
		pile = append(pile, game.NewCard(rank, suit))
	}
	return pile
}

// lastKingBoard has one legal move left: K♥ from the first column to its
// foundation, which wins the game.
func lastKingBoard() *game.Board {
	b := &game.Board{}
	b.Foundations[game.Hearts] = suitRun(game.Hearts, game.Queen)
	b.Foundations[game.Spades] = suitRun(game.Spades, game.King)
	b.Foundations[game.Diamonds] = suitRun(game.Diamonds, game.King)
	b.Foundations[game.Clubs] = suitRun(game.Clubs, game.King)
	b.Tableau[0] = []game.Card{game.NewCard(game.King, game.Hearts)}
	return b
}

// fourKingsBoard has six legal moves, all of them winning: every King can
// reach its foundation and the draw pile Kings can also go to column 2.
func fourKingsBoard() *game.Board {
	b := &game.Board{}
	for suit := game.Hearts; suit <= game.Clubs; suit++ {
		b.Foundations[suit] = suitRun(suit, game.Queen)
	}
	b.DrawPile = []game.Card{game.NewCard(game.King, game.Diamonds), game.NewCard(game.King, game.Clubs)}
	b.Tableau[0] = []game.Card{game.NewCard(game.King, game.Hearts)}
	b.Tableau[1] = []game.Card{game.NewCard(game.King, game.Spades)}
	return b
}

// deadEndBoard has one legal move, 5♥ onto 6♠, after which nothing moves
// and the foundations stay incomplete.
func deadEndBoard() *game.Board {
	b := &game.Board{}
	b.Tableau[0] = []game.Card{game.NewCard(5, game.Hearts)}
	b.Tableau[1] = []game.Card{game.NewCard(6, game.Spades)}
	return b
}

func dealtBoard(seed uint64) *game.Board {
	return game.Deal(newSeededRand(seed))
}
