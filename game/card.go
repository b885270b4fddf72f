package game

import (
	"fmt"
	"strconv"
	"strings"

	"klondike/utils"
)

type Suit int

// Suits are ordered by their foundation slot.
const (
	Hearts Suit = iota
	Spades
	Diamonds
	Clubs
)

type Color int

const (
	Red Color = iota
	Black
)

const (
	Ace   = 1
	Jack  = 11
	Queen = 12
	King  = 13
)

var suitSymbols = []string{"♥", "♠", "♦", "♣"}
var suitLetters = []string{"H", "S", "D", "C"}

func (s Suit) String() string {
	if !s.valid() {
		return "?"
	}
	return suitSymbols[s]
}

func (s Suit) Color() Color {
	if s == Hearts || s == Diamonds {
		return Red
	}
	return Black
}

func (s Suit) valid() bool {
	return s >= Hearts && s <= Clubs
}

func (c Color) String() string {
	if c == Red {
		return "red"
	}
	return "black"
}

// Card is a single playing card. Rank and Suit never change once a card is
// created; Hidden tracks whether it is face-down.
type Card struct {
	Rank   int
	Suit   Suit
	Hidden bool
}

func NewCard(rank int, suit Suit) Card {
	return Card{Rank: rank, Suit: suit}
}

func (c Card) Color() Color {
	return c.Suit.Color()
}

// Home is the index of the foundation this card is built on.
func (c Card) Home() int {
	return int(c.Suit)
}

func (c Card) IsAce() bool {
	return c.Rank == Ace
}

func (c Card) IsKing() bool {
	return c.Rank == King
}

// ID is the stable identity of a card, e.g. "A♥" or "10♣".
func (c Card) ID() string {
	return rankString(c.Rank) + c.Suit.String()
}

// Same reports whether both values describe the same physical card.
func (c Card) Same(other Card) bool {
	return c.Rank == other.Rank && c.Suit == other.Suit
}

// Token is the ASCII form used in board files; face-down cards are
// wrapped in parentheses.
func (c Card) Token() string {
	token := rankString(c.Rank)
	if c.Suit.valid() {
		token += suitLetters[c.Suit]
	}
	if c.Hidden {
		return "(" + token + ")"
	}
	return token
}

func (c Card) String() string {
	if c.Hidden {
		return "(" + c.ID() + ")"
	}
	return c.ID()
}

// index maps a card to 0..51, used for duplicate detection and hashing.
func (c Card) index() int {
	return int(c.Suit)*SuitSize + c.Rank - 1
}

func (c Card) valid() bool {
	return c.Rank >= Ace && c.Rank <= King && c.Suit.valid()
}

func (c Card) oppositeColor(other Card) bool {
	return c.Color() != other.Color()
}

func rankString(rank int) string {
	switch rank {
	case Ace:
		return "A"
	case Jack:
		return "J"
	case Queen:
		return "Q"
	case King:
		return "K"
	}
	return strconv.Itoa(rank)
}

// ParseCard reads a card token such as "QH", "10♣" or "(7C)".
func ParseCard(token string) (Card, error) {
	s := strings.TrimSpace(token)
	var card Card
	if strings.HasPrefix(s, "(") && strings.HasSuffix(s, ")") {
		card.Hidden = true
		s = s[1 : len(s)-1]
	}

	runes := []rune(s)
	if len(runes) < 2 {
		return Card{}, fmt.Errorf("invalid card %q", token)
	}
	suit := strings.ToUpper(string(runes[len(runes)-1]))
	index := utils.FindIndex(suitLetters, suit)
	if index < 0 {
		index = utils.FindIndex(suitSymbols, suit)
	}
	if index < 0 {
		return Card{}, fmt.Errorf("invalid suit in card %q", token)
	}
	card.Suit = Suit(index)

	switch rank := strings.ToUpper(string(runes[:len(runes)-1])); rank {
	case "A":
		card.Rank = Ace
	case "J":
		card.Rank = Jack
	case "Q":
		card.Rank = Queen
	case "K":
		card.Rank = King
	case "T":
		card.Rank = 10
	default:
		n, err := strconv.Atoi(rank)
		if err != nil || n < 2 || n > 10 {
			return Card{}, fmt.Errorf("invalid rank in card %q", token)
		}
		card.Rank = n
	}
	return card, nil
}

// MustParseCard is ParseCard for fixtures; it panics on bad input.
func MustParseCard(token string) Card {
	card, err := ParseCard(token)
	if err != nil {
		panic(err)
	}
	return card
}
