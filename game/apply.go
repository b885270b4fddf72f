package game

import "klondike/utils"

// Apply returns a new board with the move's cards taken from the source and
// appended to the destination in order. Face-down flags are untouched. A
// move that no longer fits the board (empty source, missing cards) is a
// no-op and the input board itself is returned.
func Apply(b *Board, m Move) *Board {
	next := b.Clone()
	if !next.relocate(m) {
		return b
	}
	return next
}

// ApplyAndReveal is Apply followed by turning face-up the new top card of
// the source column.
func ApplyAndReveal(b *Board, m Move) *Board {
	next := b.Clone()
	if !next.Play(m) {
		return b
	}
	return next
}

// Play applies m with reveal to the receiver in place and reports whether
// anything changed. Only use it on a board you own, e.g. a rollout copy.
func (b *Board) Play(m Move) bool {
	if !b.relocate(m) {
		return false
	}
	if m.From.Kind == Column {
		column := b.Tableau[m.From.Index]
		if len(column) > 0 {
			column[len(column)-1].Hidden = false
		}
	}
	return true
}

func (b *Board) relocate(m Move) bool {
	if len(m.Cards) == 0 || !validDestination(m.To) {
		return false
	}

	var moved []Card
	switch m.From.Kind {
	case DrawPile:
		i := utils.FindIndexFunc(b.DrawPile, m.Cards[0].Same)
		if i < 0 {
			return false
		}
		moved = []Card{b.DrawPile[i]}
		b.DrawPile = append(b.DrawPile[:i], b.DrawPile[i+1:]...)
	case Column:
		if !validColumn(m.From.Index) {
			return false
		}
		column := b.Tableau[m.From.Index]
		start := len(column) - len(m.Cards)
		if start < 0 || !column[start].Same(m.Cards[0]) {
			return false
		}
		moved = column[start:]
		b.Tableau[m.From.Index] = column[:start]
	default:
		return false
	}

	if m.To.Kind == Column {
		b.Tableau[m.To.Index] = append(b.Tableau[m.To.Index], moved...)
	} else {
		b.Foundations[m.To.Index] = append(b.Foundations[m.To.Index], moved...)
	}
	return true
}

func validColumn(i int) bool {
	return i >= 0 && i < NumColumns
}

func validDestination(l Location) bool {
	switch l.Kind {
	case Column:
		return validColumn(l.Index)
	case Foundation:
		return l.Index >= 0 && l.Index < NumFoundations
	}
	return false
}
