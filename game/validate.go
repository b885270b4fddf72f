package game

import (
	"errors"
	"fmt"
)

var ErrInvalidBoard = errors.New("invalid board")

// Validate checks the structural invariants a snapshot must satisfy before
// it is searched: 52 distinct, well-formed cards, foundations that are
// face-up same-suit runs from the Ace in their home slot, and no face-down
// card where a move could pick it up (the draw pile or a column top).
// Tableau ordering is not checked.
func Validate(b *Board) error {
	if b == nil {
		return fmt.Errorf("%w: nil board", ErrInvalidBoard)
	}

	var seen [DeckSize]bool
	for _, card := range b.Cards() {
		if !card.valid() {
			return fmt.Errorf("%w: malformed card rank=%d suit=%d", ErrInvalidBoard, card.Rank, card.Suit)
		}
		if seen[card.index()] {
			return fmt.Errorf("%w: duplicate card %s", ErrInvalidBoard, card.ID())
		}
		seen[card.index()] = true
	}
	if count := b.CardCount(); count != DeckSize {
		return fmt.Errorf("%w: %d cards, want %d", ErrInvalidBoard, count, DeckSize)
	}

	for _, card := range b.DrawPile {
		if card.Hidden {
			return fmt.Errorf("%w: face-down %s in %s", ErrInvalidBoard, card.ID(), DrawPileLocation)
		}
	}
	for i, column := range b.Tableau {
		if card, ok := top(column); ok && card.Hidden {
			return fmt.Errorf("%w: face-down %s on top of %s", ErrInvalidBoard, card.ID(), ColumnLocation(i))
		}
	}

	for i, pile := range b.Foundations {
		for j, card := range pile {
			if card.Home() != i || card.Rank != j+1 {
				return fmt.Errorf("%w: %s out of order on %s", ErrInvalidBoard, card.ID(), FoundationLocation(i))
			}
			if card.Hidden {
				return fmt.Errorf("%w: face-down %s on %s", ErrInvalidBoard, card.ID(), FoundationLocation(i))
			}
		}
	}
	return nil
}
