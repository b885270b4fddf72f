package game

func cards(tokens ...string) []Card {
	out := make([]Card, len(tokens))
	for i, token := range tokens {
		out[i] = MustParseCard(token)
	}
	return out
}

func suitRun(suit Suit, upTo int) []Card {
	var pile []Card
	for rank := Ace; rank <= upTo; rank++ {
		pile = append(pile, NewCard(rank, suit))
	}
	return pile
}

func moveNames(moves []Move) []string {
	names := make([]string, len(moves))
	for i, m := range moves {
		names[i] = m.Name
	}
	return names
}
