package game

// DrawPileMoves lists the moves for every card in the draw pile. The whole
// pile is inspected, not only its top card.
func DrawPileMoves(b *Board) []Move {
	var moves []Move
	empty := b.firstEmptyColumn()
	for _, card := range b.DrawPile {
		home := card.Home()

		if card.IsAce() && len(b.Foundations[home]) == 0 {
			moves = append(moves, newMove(DrawPileLocation, FoundationLocation(home), []Card{card}, nil))
		}

		for i, column := range b.Tableau {
			target, ok := top(column)
			if !ok {
				if card.IsKing() && i == empty {
					moves = append(moves, newMove(DrawPileLocation, ColumnLocation(i), []Card{card}, nil))
				}
				continue
			}
			if card.oppositeColor(target) && card.Rank == target.Rank-1 {
				moves = append(moves, newMove(DrawPileLocation, ColumnLocation(i), []Card{card}, &target))
			}
		}

		if target, ok := top(b.Foundations[home]); ok && card.Rank == target.Rank+1 {
			moves = append(moves, newMove(DrawPileLocation, FoundationLocation(home), []Card{card}, &target))
		}
	}
	return moves
}

// TableauMoves lists the moves of each column's movable run: to a
// foundation, a King run to the first empty column, or onto another column.
func TableauMoves(b *Board) []Move {
	var moves []Move
	empty := b.firstEmptyColumn()
	for ci, column := range b.Tableau {
		if len(column) == 0 {
			continue
		}
		run := movableRun(column)
		bottom, last := run[0], run[len(run)-1]
		from := ColumnLocation(ci)

		home := last.Home()
		if last.IsAce() && len(b.Foundations[home]) == 0 {
			moves = append(moves, newMove(from, FoundationLocation(home), []Card{last}, nil))
		}
		if target, ok := top(b.Foundations[home]); ok && last.Rank == target.Rank+1 {
			moves = append(moves, newMove(from, FoundationLocation(home), []Card{last}, &target))
		}

		// The card directly beneath the run must be face-down (or absent)
		// for the run to leave its column.
		below := len(column) - len(run) - 1
		if bottom.IsKing() && empty >= 0 && below >= 0 && column[below].Hidden {
			moves = append(moves, newMove(from, ColumnLocation(empty), run, nil))
		}
		if below >= 0 && !column[below].Hidden {
			continue
		}
		for oi, other := range b.Tableau {
			if oi == ci {
				continue
			}
			target, ok := top(other)
			if !ok {
				continue
			}
			if bottom.oppositeColor(target) && bottom.Rank == target.Rank-1 {
				moves = append(moves, newMove(from, ColumnLocation(oi), run, &target))
			}
		}
	}
	return moves
}

// movableRun is the contiguous face-up cards at the top of a non-empty
// column when there is more than one of them, otherwise the top card alone.
func movableRun(column []Card) []Card {
	start := len(column)
	for start > 0 && !column[start-1].Hidden {
		start--
	}
	if len(column)-start > 1 {
		return column[start:]
	}
	return column[len(column)-1:]
}

// LegalMoves returns draw pile moves followed by tableau moves.
func LegalMoves(b *Board) []Move {
	return append(DrawPileMoves(b), TableauMoves(b)...)
}

func IsWon(b *Board) bool {
	for _, pile := range b.Foundations {
		if len(pile) != SuitSize {
			return false
		}
	}
	return true
}

// IsLost reports a dead end: not won and no legal move left.
func IsLost(b *Board) bool {
	return !IsWon(b) && len(LegalMoves(b)) == 0
}

// IsEarlyWin reports whether every tableau and foundation card is face-up,
// at which point the game can be finished without further search.
func IsEarlyWin(b *Board) bool {
	for _, pile := range b.Foundations {
		for _, card := range pile {
			if card.Hidden {
				return false
			}
		}
	}
	for _, column := range b.Tableau {
		for _, card := range column {
			if card.Hidden {
				return false
			}
		}
	}
	return true
}
