// Package snapshot reads and writes boards as YAML files:
//
//	draw: [KD, 7C]
//	foundations:
//	  - [AH, 2H]
//	tableau:
//	  - ["(5S)", QH]
//
// Face-down cards are wrapped in parentheses. Foundations may be listed in
// any order; each pile goes to the slot of its suit. JSON documents with the
// same keys are accepted too.
package snapshot

import (
	"errors"
	"fmt"
	"io"
	"os"

	"klondike/game"

	"github.com/samber/lo"
	"gopkg.in/yaml.v3"
)

var ErrFormat = errors.New("malformed snapshot")

type file struct {
	Draw        []string   `yaml:"draw"`
	Foundations [][]string `yaml:"foundations"`
	Tableau     [][]string `yaml:"tableau"`
}

// Decode reads one board and validates it.
func Decode(r io.Reader) (*game.Board, error) {
	var f file
	if err := yaml.NewDecoder(r).Decode(&f); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrFormat, err)
	}
	if len(f.Foundations) > game.NumFoundations {
		return nil, fmt.Errorf("%w: %d foundations", ErrFormat, len(f.Foundations))
	}
	if len(f.Tableau) > game.NumColumns {
		return nil, fmt.Errorf("%w: %d tableau columns", ErrFormat, len(f.Tableau))
	}

	b := &game.Board{}
	var err error
	if b.DrawPile, err = parsePile(f.Draw); err != nil {
		return nil, err
	}
	for _, tokens := range f.Foundations {
		pile, err := parsePile(tokens)
		if err != nil {
			return nil, err
		}
		if len(pile) == 0 {
			continue
		}
		home := pile[0].Home()
		if len(b.Foundations[home]) > 0 {
			return nil, fmt.Errorf("%w: two %s foundations", ErrFormat, pile[0].Suit)
		}
		b.Foundations[home] = pile
	}
	for i, tokens := range f.Tableau {
		if b.Tableau[i], err = parsePile(tokens); err != nil {
			return nil, err
		}
	}

	if err := game.Validate(b); err != nil {
		return nil, err
	}
	return b, nil
}

func parsePile(tokens []string) ([]game.Card, error) {
	if len(tokens) == 0 {
		return nil, nil
	}
	pile := make([]game.Card, len(tokens))
	for i, token := range tokens {
		card, err := game.ParseCard(token)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrFormat, err)
		}
		pile[i] = card
	}
	return pile, nil
}

func Load(path string) (*game.Board, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	b, err := Decode(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return b, nil
}

// Encode writes b in the format read by Decode, with every foundation and
// tableau column listed in slot order.
func Encode(w io.Writer, b *game.Board) error {
	f := file{
		Draw:        tokens(b.DrawPile),
		Foundations: make([][]string, game.NumFoundations),
		Tableau:     make([][]string, game.NumColumns),
	}
	for i, pile := range b.Foundations {
		f.Foundations[i] = tokens(pile)
	}
	for i, column := range b.Tableau {
		f.Tableau[i] = tokens(column)
	}

	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(f); err != nil {
		return err
	}
	return enc.Close()
}

func tokens(pile []game.Card) []string {
	return lo.Map(pile, func(card game.Card, _ int) string {
		return card.Token()
	})
}
