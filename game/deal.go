package game

import "golang.org/x/exp/rand"

// NewDeck returns the 52 cards ordered by suit then rank, all face-up.
func NewDeck() []Card {
	deck := make([]Card, 0, DeckSize)
	for suit := Hearts; suit <= Clubs; suit++ {
		for rank := Ace; rank <= King; rank++ {
			deck = append(deck, NewCard(rank, suit))
		}
	}
	return deck
}

// Deal shuffles a deck and lays out a standard Klondike table: column i
// holds i+1 cards with only the top one face-up, the remaining 24 cards go
// to the draw pile. Draw pile cards are dealt face-up since the move
// generator treats the whole pile as known.
func Deal(rng *rand.Rand) *Board {
	deck := NewDeck()
	rng.Shuffle(len(deck), func(i, j int) {
		deck[i], deck[j] = deck[j], deck[i]
	})

	b := &Board{}
	next := 0
	for col := 0; col < NumColumns; col++ {
		for row := 0; row <= col; row++ {
			card := deck[next]
			card.Hidden = row < col
			b.Tableau[col] = append(b.Tableau[col], card)
			next++
		}
	}
	b.DrawPile = append([]Card(nil), deck[next:]...)
	return b
}
