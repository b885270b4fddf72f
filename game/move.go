package game

import "fmt"

type PileKind int

const (
	DrawPile PileKind = iota
	Column
	Foundation
)

// Location names a pile symbolically.
type Location struct {
	Kind  PileKind
	Index int
}

var DrawPileLocation = Location{Kind: DrawPile}

func ColumnLocation(i int) Location {
	return Location{Kind: Column, Index: i}
}

func FoundationLocation(i int) Location {
	return Location{Kind: Foundation, Index: i}
}

func (l Location) String() string {
	switch l.Kind {
	case DrawPile:
		return "draw"
	case Column:
		return fmt.Sprintf("col-%d", l.Index)
	case Foundation:
		return fmt.Sprintf("base-%d", l.Index)
	}
	return "unknown"
}

// Move relocates Cards from one pile to another. Target is the card the
// move lands on, nil when landing on an empty pile. Moves are computed
// fresh from a board and are not part of its state.
type Move struct {
	Name   string
	From   Location
	To     Location
	Cards  []Card
	Target *Card
}

func newMove(from, to Location, cards []Card, target *Card) Move {
	moved := make([]Card, len(cards))
	copy(moved, cards)
	m := Move{
		From:   from,
		To:     to,
		Cards:  moved,
		Target: target,
	}
	m.Name = m.describe()
	return m
}

// describe renders e.g. "7♣(col-2) [3] -> 8♥(col-5)".
func (m Move) describe() string {
	landing := "null"
	if m.Target != nil {
		landing = m.Target.ID()
	}
	return fmt.Sprintf("%s(%s) [%d] -> %s(%s)", m.Cards[0].ID(), m.From, len(m.Cards), landing, m.To)
}

func (m Move) String() string {
	return m.Name
}
