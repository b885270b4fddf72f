package game

import (
	"fmt"
	"slices"
	"strings"

	"github.com/cespare/xxhash"
)

// Board is a snapshot of a Klondike table. Foundations are indexed by suit
// (see Card.Home); tableau columns are ordered bottom to top.
type Board struct {
	DrawPile    []Card
	Foundations [NumFoundations][]Card
	Tableau     [NumColumns][]Card
}

// Clone returns a deep copy; no pile shares memory with the receiver.
func (b *Board) Clone() *Board {
	clone := &Board{DrawPile: clonePile(b.DrawPile)}
	for i, pile := range b.Foundations {
		clone.Foundations[i] = clonePile(pile)
	}
	for i, column := range b.Tableau {
		clone.Tableau[i] = clonePile(column)
	}
	return clone
}

func clonePile(pile []Card) []Card {
	if len(pile) == 0 {
		return nil
	}
	out := make([]Card, len(pile))
	copy(out, pile)
	return out
}

func (b *Board) CardCount() int {
	count := len(b.DrawPile)
	for _, pile := range b.Foundations {
		count += len(pile)
	}
	for _, column := range b.Tableau {
		count += len(column)
	}
	return count
}

// Cards returns every card on the board: draw pile, foundations, then tableau.
func (b *Board) Cards() []Card {
	cards := make([]Card, 0, b.CardCount())
	cards = append(cards, b.DrawPile...)
	for _, pile := range b.Foundations {
		cards = append(cards, pile...)
	}
	for _, column := range b.Tableau {
		cards = append(cards, column...)
	}
	return cards
}

// Hash is a structural hash of every pile, including face-down flags.
func (b *Board) Hash() StateHash {
	return StateHash(xxhash.Sum64(b.appendBytes(make([]byte, 0, 2*DeckSize))))
}

// HashWith hashes the board together with an annotation, so that equal
// boards reached by different moves get distinct identities.
func (b *Board) HashWith(annotation string) StateHash {
	buf := b.appendBytes(make([]byte, 0, 2*DeckSize+len(annotation)))
	buf = append(buf, annotation...)
	return StateHash(xxhash.Sum64(buf))
}

func (b *Board) appendBytes(buf []byte) []byte {
	buf = appendPile(buf, b.DrawPile)
	for _, pile := range b.Foundations {
		buf = appendPile(buf, pile)
	}
	for _, column := range b.Tableau {
		buf = appendPile(buf, column)
	}
	return buf
}

func appendPile(buf []byte, pile []Card) []byte {
	buf = append(buf, 0xff)
	for _, card := range pile {
		v := byte(card.index())
		if card.Hidden {
			v |= 0x80
		}
		buf = append(buf, v)
	}
	return buf
}

func (b *Board) Equal(other *Board) bool {
	if b == nil || other == nil {
		return b == other
	}
	if !slices.Equal(b.DrawPile, other.DrawPile) {
		return false
	}
	for i := range b.Foundations {
		if !slices.Equal(b.Foundations[i], other.Foundations[i]) {
			return false
		}
	}
	for i := range b.Tableau {
		if !slices.Equal(b.Tableau[i], other.Tableau[i]) {
			return false
		}
	}
	return true
}

// Key is a canonical, human readable rendering of the board.
func (b *Board) Key() string {
	var sb strings.Builder
	writePile(&sb, DrawPileLocation.String(), b.DrawPile)
	for i, pile := range b.Foundations {
		sb.WriteByte('|')
		writePile(&sb, FoundationLocation(i).String(), pile)
	}
	for i, column := range b.Tableau {
		sb.WriteByte('|')
		writePile(&sb, ColumnLocation(i).String(), column)
	}
	return sb.String()
}

func writePile(sb *strings.Builder, name string, pile []Card) {
	sb.WriteString(name)
	sb.WriteByte(':')
	for i, card := range pile {
		if i > 0 {
			sb.WriteByte(',')
		}
		sb.WriteString(card.String())
	}
}

func (b *Board) String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "%-7s %s\n", "draw", pileString(b.DrawPile))
	for i, pile := range b.Foundations {
		fmt.Fprintf(&sb, "%-7s %s\n", FoundationLocation(i), pileString(pile))
	}
	for i, column := range b.Tableau {
		fmt.Fprintf(&sb, "%-7s %s\n", ColumnLocation(i), pileString(column))
	}
	return sb.String()
}

func pileString(pile []Card) string {
	parts := make([]string, len(pile))
	for i, card := range pile {
		parts[i] = card.String()
	}
	return strings.Join(parts, " ")
}

func top(pile []Card) (Card, bool) {
	if len(pile) == 0 {
		return Card{}, false
	}
	return pile[len(pile)-1], true
}

func (b *Board) firstEmptyColumn() int {
	for i, column := range b.Tableau {
		if len(column) == 0 {
			return i
		}
	}
	return -1
}
