package card

import (
	"errors"
	"fmt"
	"slices"
	"strings"
)

// ErrInvalidCard is returned when a token does not name a card.
var ErrInvalidCard = errors.New("invalid card")

// Rank orders cards for every comparison in the game. Two outranks Ace and
// both jokers outrank Two.
type Rank int8

// Rank constants (0-14 for 3-HighJoker)
const (
	RankInvalid Rank = -1

	Three     Rank = 0
	Four      Rank = 1
	Five      Rank = 2
	Six       Rank = 3
	Seven     Rank = 4
	Eight     Rank = 5
	Nine      Rank = 6
	Ten       Rank = 7
	Jack      Rank = 8
	Queen     Rank = 9
	King      Rank = 10
	Ace       Rank = 11
	Two       Rank = 12
	LowJoker  Rank = 13
	HighJoker Rank = 14
)

// MinRank and MaxRank bound the valid ranks.
const (
	MinRank  = Three
	MaxRank  = HighJoker
	NumRanks = int(MaxRank) + 1
)

// Suit is decorative: it never affects comparison or legality.
type Suit uint8

// Suit constants. Jokers carry NoSuit.
const (
	Hearts Suit = iota
	Diamonds
	Spades
	Clubs
	NoSuit
)

const (
	rankTokens  = "34567890JQKA2"
	suitTokens  = "hdsc"
	jokerToken  = 'Z'
	suitSymbols = "♥♦♠♣"
)

var rankDisplay = [...]string{"3", "4", "5", "6", "7", "8", "9", "10", "J", "Q", "K", "A", "2", "joker", "JOKER"}

// String returns the display name of the rank.
func (r Rank) String() string {
	if !r.Valid() {
		return "INVALID"
	}
	return rankDisplay[r]
}

// Valid reports whether r is a real rank.
func (r Rank) Valid() bool {
	return r >= MinRank && r <= MaxRank
}

// IsJoker reports whether r is one of the two joker ranks.
func (r Rank) IsJoker() bool {
	return r == LowJoker || r == HighJoker
}

// String returns the suit symbol.
func (s Suit) String() string {
	if s >= NoSuit {
		return ""
	}
	return string([]rune(suitSymbols)[s])
}

// IsRed reports whether the suit is hearts or diamonds.
func (s Suit) IsRed() bool {
	return s == Hearts || s == Diamonds
}

// Card is a single card. Equality is by rank and suit.
type Card struct {
	Rank Rank
	Suit Suit
}

// Invalid is the sentinel produced for unrecognized tokens. It compares below
// every real card and must never be inserted into a hand.
var Invalid = Card{Rank: RankInvalid, Suit: NoSuit}

// New creates a normal card. Use Joker for jokers.
func New(rank Rank, suit Suit) Card {
	if rank.IsJoker() {
		return Joker(rank)
	}
	return Card{Rank: rank, Suit: suit}
}

// Joker creates the low or high joker.
func Joker(rank Rank) Card {
	if !rank.IsJoker() {
		return Invalid
	}
	return Card{Rank: rank, Suit: NoSuit}
}

// Valid reports whether c is a real card.
func (c Card) Valid() bool {
	if !c.Rank.Valid() {
		return false
	}
	if c.Rank.IsJoker() {
		return c.Suit == NoSuit
	}
	return c.Suit < NoSuit
}

// IsJoker reports whether c is a joker.
func (c Card) IsJoker() bool {
	return c.Rank.IsJoker()
}

// Less orders by rank only.
func (c Card) Less(other Card) bool {
	return c.Rank < other.Rank
}

// Compare orders two cards by rank. Suit is ignored.
func Compare(a, b Card) int {
	switch {
	case a.Rank < b.Rank:
		return -1
	case a.Rank > b.Rank:
		return 1
	default:
		return 0
	}
}

// Decode converts a token such as "3h", "0s" or "Z1" into a card. Unknown
// tokens decode to Invalid.
func Decode(token string) Card {
	if len(token) != 2 {
		return Invalid
	}
	name := upper(token[0])
	if name == jokerToken {
		switch token[1] {
		case '0':
			return Joker(LowJoker)
		case '1':
			return Joker(HighJoker)
		}
		return Invalid
	}

	rank := strings.IndexByte(rankTokens, name)
	if rank < 0 {
		return Invalid
	}
	suit := strings.IndexByte(suitTokens, lower(token[1]))
	if suit < 0 {
		return Invalid
	}
	return Card{Rank: Rank(rank), Suit: Suit(suit)}
}

// ParseCard is the strict form of Decode.
func ParseCard(token string) (Card, error) {
	c := Decode(token)
	if !c.Valid() {
		return Invalid, fmt.Errorf("%w: %q", ErrInvalidCard, token)
	}
	return c, nil
}

// ParseCards parses every token, failing on the first bad one.
func ParseCards(tokens []string) ([]Card, error) {
	cards := make([]Card, 0, len(tokens))
	for _, tok := range tokens {
		c, err := ParseCard(tok)
		if err != nil {
			return nil, err
		}
		cards = append(cards, c)
	}
	return cards, nil
}

// MustParseCards parses tokens and panics on error. Intended for tests.
func MustParseCards(tokens ...string) []Card {
	cards, err := ParseCards(tokens)
	if err != nil {
		panic(err)
	}
	return cards
}

// String returns the canonical token, the inverse of Decode.
func (c Card) String() string {
	if !c.Valid() {
		return "??"
	}
	if c.IsJoker() {
		if c.Rank == LowJoker {
			return "Z0"
		}
		return "Z1"
	}
	return string([]byte{rankTokens[c.Rank], suitTokens[c.Suit]})
}

// Display returns the human form, e.g. "♥3", "♦10", "joker" or "JOKER".
func (c Card) Display() string {
	if !c.Valid() {
		return "INVALID"
	}
	if c.IsJoker() {
		return c.Rank.String()
	}
	return c.Suit.String() + c.Rank.String()
}

// Strings encodes a list of cards as tokens.
func Strings(cards []Card) []string {
	out := make([]string, len(cards))
	for i, c := range cards {
		out[i] = c.String()
	}
	return out
}

// SortCards sorts ascending by rank, breaking ties by suit so the order is
// deterministic.
func SortCards(cards []Card) {
	slices.SortFunc(cards, func(a, b Card) int {
		if n := Compare(a, b); n != 0 {
			return n
		}
		return int(a.Suit) - int(b.Suit)
	})
}

func upper(b byte) byte {
	if b >= 'a' && b <= 'z' {
		return b - 'a' + 'A'
	}
	return b
}

func lower(b byte) byte {
	if b >= 'A' && b <= 'Z' {
		return b - 'A' + 'a'
	}
	return b
}
