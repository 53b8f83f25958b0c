package card

import (
	"math/rand/v2"
)

// DeckSize is the number of cards in a full deck including both jokers.
const DeckSize = 54

// Deck represents a standard 52-card deck plus two jokers
type Deck struct {
	cards [DeckSize]Card
	next  int
	rng   *rand.Rand // Random source for deterministic shuffling
}

// OrderedDeck returns all 54 cards sorted by rank then suit.
func OrderedDeck() []Card {
	cards := make([]Card, 0, DeckSize)
	for rank := Three; rank <= Two; rank++ {
		for suit := Hearts; suit < NoSuit; suit++ {
			cards = append(cards, New(rank, suit))
		}
	}
	return append(cards, Joker(LowJoker), Joker(HighJoker))
}

// NewDeck creates a new shuffled deck with explicit RNG
func NewDeck(rng *rand.Rand) *Deck {
	d := &Deck{rng: rng}
	copy(d.cards[:], OrderedDeck())
	d.Shuffle()
	return d
}

// Shuffle shuffles the deck using Fisher-Yates
func (d *Deck) Shuffle() {
	d.next = 0
	for i := len(d.cards) - 1; i > 0; i-- {
		var j int
		if d.rng != nil {
			j = d.rng.IntN(i + 1)
		} else {
			j = rand.IntN(i + 1)
		}
		d.cards[i], d.cards[j] = d.cards[j], d.cards[i]
	}
}

// Deal deals n cards from the deck. The returned slice is a copy.
func (d *Deck) Deal(n int) []Card {
	if n < 0 || d.next+n > len(d.cards) {
		return nil
	}
	cards := make([]Card, n)
	copy(cards, d.cards[d.next:d.next+n])
	d.next += n
	return cards
}

// Remaining returns the number of cards left in the deck
func (d *Deck) Remaining() int {
	return len(d.cards) - d.next
}
