// Package game models a Klondike (turn-one) table and its rules. All rule
// functions are pure: they never mutate the board they are given.
package game

type StateHash uint64

const (
	NumFoundations = 4
	NumColumns     = 7
	SuitSize       = 13
	DeckSize       = NumFoundations * SuitSize
)
