// Package handfile reads hands stored as card tokens in plain text files.
package handfile

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	mapset "github.com/deckarep/golang-set"

	"github.com/lox/pokai/card"
)

// ErrDuplicateCard is returned when a card appears twice in a hand file.
var ErrDuplicateCard = errors.New("duplicate card")

// Load reads the hand stored at path.
func Load(path string) ([]card.Card, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open hand file: %w", err)
	}
	defer f.Close()

	cards, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cards, nil
}

// Parse reads whitespace separated card tokens. Blank lines and text after
// '#' are ignored.
func Parse(r io.Reader) ([]card.Card, error) {
	var cards []card.Card
	seen := mapset.NewSet()

	scanner := bufio.NewScanner(r)
	line := 0
	for scanner.Scan() {
		line++
		text, _, _ := strings.Cut(scanner.Text(), "#")
		for _, token := range strings.Fields(text) {
			c, err := card.ParseCard(token)
			if err != nil {
				return nil, fmt.Errorf("line %d: %w", line, err)
			}
			if !seen.Add(c) {
				return nil, fmt.Errorf("line %d: %w: %s", line, ErrDuplicateCard, c)
			}
			cards = append(cards, c)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return cards, nil
}

// Remainder returns the cards of deck not present in any of taken, sorted.
func Remainder(deck []card.Card, taken ...[]card.Card) []card.Card {
	rest := toSet(deck)
	for _, cards := range taken {
		rest = rest.Difference(toSet(cards))
	}

	out := make([]card.Card, 0, rest.Cardinality())
	for _, v := range rest.ToSlice() {
		out = append(out, v.(card.Card))
	}
	card.SortCards(out)
	return out
}

// Overlap returns cards that appear in more than one of hands, sorted.
func Overlap(hands ...[]card.Card) []card.Card {
	seen := mapset.NewSet()
	dup := mapset.NewSet()
	for _, h := range hands {
		for _, v := range toSet(h).ToSlice() {
			if !seen.Add(v) {
				dup.Add(v)
			}
		}
	}
	out := make([]card.Card, 0, dup.Cardinality())
	for _, v := range dup.ToSlice() {
		out = append(out, v.(card.Card))
	}
	card.SortCards(out)
	return out
}

func toSet(cards []card.Card) mapset.Set {
	s := mapset.NewSet()
	for _, c := range cards {
		s.Add(c)
	}
	return s
}
