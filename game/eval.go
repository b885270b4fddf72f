package game

// Progress is the fraction of the deck already on the foundations, from 0
// for a fresh deal to 1 for a won game.
func Progress(b *Board) float64 {
	count := 0
	for _, pile := range b.Foundations {
		count += len(pile)
	}
	return float64(count) / DeckSize
}

// Hidden counts the face-down cards left in the tableau.
func Hidden(b *Board) int {
	count := 0
	for _, column := range b.Tableau {
		for _, card := range column {
			if card.Hidden {
				count++
			}
		}
	}
	return count
}
