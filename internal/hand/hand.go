// Package hand holds a player's cards together with an index of every group
// they can form, and answers "cheapest play that beats X" queries against it.
package hand

import (
	"errors"
	"fmt"
	"slices"

	"github.com/lox/pokai/card"
	"github.com/lox/pokai/internal/combo"
)

// ErrCardNotInHand is returned by MustRemove when a card is missing.
var ErrCardNotInHand = errors.New("card not in hand")

// Hand is a sorted set of cards and its classification. The index is rebuilt
// after every mutation so it always matches the cards.
type Hand struct {
	cards []card.Card
	index Index
}

// New returns a hand holding cards. Invalid and duplicate cards are dropped.
func New(cards []card.Card) *Hand {
	h := &Hand{}
	h.Add(cards...)
	return h
}

// Add inserts cards, ignoring invalid ones and ones already held.
func (h *Hand) Add(cards ...card.Card) {
	for _, c := range cards {
		if c.Valid() && !h.Contains(c) {
			h.cards = append(h.cards, c)
		}
	}
	h.reclassify()
}

// Remove deletes every given card that is present and ignores the rest.
func (h *Hand) Remove(cards ...card.Card) {
	h.cards = slices.DeleteFunc(h.cards, func(c card.Card) bool {
		return slices.Contains(cards, c)
	})
	h.reclassify()
}

// MustRemove deletes cards only if all of them are held.
func (h *Hand) MustRemove(cards ...card.Card) error {
	for _, c := range cards {
		if !h.Contains(c) {
			return fmt.Errorf("%w: %s", ErrCardNotInHand, c)
		}
	}
	h.Remove(cards...)
	return nil
}

func (h *Hand) reclassify() {
	card.SortCards(h.cards)
	h.index = Classify(h.cards)
}

// Contains reports whether c is held.
func (h *Hand) Contains(c card.Card) bool {
	return slices.Contains(h.cards, c)
}

// ContainsAll reports whether every card in cards is held.
func (h *Hand) ContainsAll(cards []card.Card) bool {
	for _, c := range cards {
		if !h.Contains(c) {
			return false
		}
	}
	return true
}

// Cards returns a sorted copy of the held cards.
func (h *Hand) Cards() []card.Card {
	return slices.Clone(h.cards)
}

// Len returns the number of held cards.
func (h *Hand) Len() int {
	return len(h.cards)
}

// Index returns the current classification.
func (h *Hand) Index() Index {
	return h.index
}

// Groups returns the groups filed under shape, ascending by anchor.
func (h *Hand) Groups(shape combo.Shape) [][]card.Card {
	return h.index.Groups(shape)
}

// Category is one non-empty entry of the index.
type Category struct {
	Shape  combo.Shape
	Groups [][]card.Card
}

// Categories lists every shape the hand can currently form, in shape order.
func (h *Hand) Categories() []Category {
	var out []Category
	for _, s := range combo.Shapes {
		if groups := h.index.Groups(s); len(groups) > 0 {
			out = append(out, Category{Shape: s, Groups: groups})
		}
	}
	return out
}

// NumWild counts the bombs held: every quadruplet plus the joker bomb.
func (h *Hand) NumWild() int {
	return len(h.index.groups[combo.Quadruplet]) + len(h.index.groups[combo.JokerBomb])
}

func (h *Hand) String() string {
	return fmt.Sprint(card.Strings(h.cards))
}
