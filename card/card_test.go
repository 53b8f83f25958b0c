package card

import (
	"errors"
	"math/rand/v2"
	"testing"
)

func TestDecode(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name  string
		input string
		want  Card
	}{
		{name: "three of hearts", input: "3h", want: New(Three, Hearts)},
		{name: "ten uses zero", input: "0c", want: New(Ten, Clubs)},
		{name: "two of diamonds", input: "2d", want: New(Two, Diamonds)},
		{name: "upper case", input: "QH", want: New(Queen, Hearts)},
		{name: "lower case face", input: "ks", want: New(King, Spades)},
		{name: "low joker", input: "Z0", want: Joker(LowJoker)},
		{name: "high joker", input: "z1", want: Joker(HighJoker)},
		{name: "invalid rank", input: "Xs", want: Invalid},
		{name: "invalid suit", input: "Ax", want: Invalid},
		{name: "bad joker digit", input: "Z2", want: Invalid},
		{name: "empty", input: "", want: Invalid},
		{name: "too long", input: "10h", want: Invalid},
	}

	for _, testCase := range tests {
		tc := testCase
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			if got := Decode(tc.input); got != tc.want {
				t.Errorf("Decode(%q) = %v, want %v", tc.input, got, tc.want)
			}
		})
	}
}

func TestParseCardError(t *testing.T) {
	t.Parallel()
	_, err := ParseCard("1h")
	if !errors.Is(err, ErrInvalidCard) {
		t.Fatalf("expected ErrInvalidCard, got %v", err)
	}
	if _, err := ParseCards([]string{"3h", "??"}); !errors.Is(err, ErrInvalidCard) {
		t.Fatalf("expected ErrInvalidCard from ParseCards, got %v", err)
	}
}

func TestAll54CardsRoundTrip(t *testing.T) {
	t.Parallel()
	seen := make(map[string]bool)
	for _, c := range OrderedDeck() {
		token := c.String()
		if seen[token] {
			t.Errorf("Duplicate card: %s", token)
		}
		seen[token] = true

		parsed, err := ParseCard(token)
		if err != nil {
			t.Errorf("Failed to parse %s: %v", token, err)
		}
		if parsed != c {
			t.Errorf("Round-trip failed for %s", token)
		}
	}
	if len(seen) != DeckSize {
		t.Errorf("Expected %d unique cards, got %d", DeckSize, len(seen))
	}
}

func TestOrdering(t *testing.T) {
	t.Parallel()
	order := []string{"3h", "4s", "0d", "Jc", "Ah", "2s", "Z0", "Z1"}
	cards := MustParseCards(order...)
	for i := 1; i < len(cards); i++ {
		if !cards[i-1].Less(cards[i]) {
			t.Errorf("%s should rank below %s", cards[i-1], cards[i])
		}
	}

	if Compare(New(Nine, Hearts), New(Nine, Clubs)) != 0 {
		t.Error("suit must not affect comparison")
	}
	if !Invalid.Less(New(Three, Hearts)) {
		t.Error("Invalid must compare below every card")
	}
}

func TestDisplay(t *testing.T) {
	t.Parallel()
	tests := map[string]string{
		"3h": "♥3",
		"0d": "♦10",
		"As": "♠A",
		"2c": "♣2",
		"Z0": "joker",
		"Z1": "JOKER",
	}
	for token, want := range tests {
		if got := Decode(token).Display(); got != want {
			t.Errorf("Display(%s) = %q, want %q", token, got, want)
		}
	}
	if Invalid.Display() != "INVALID" {
		t.Errorf("unexpected display for invalid card: %q", Invalid.Display())
	}
}

func TestSortCards(t *testing.T) {
	t.Parallel()
	cards := MustParseCards("Z1", "2c", "3s", "3h", "Kd")
	SortCards(cards)
	want := []string{"3h", "3s", "Kd", "2c", "Z1"}
	for i, tok := range Strings(cards) {
		if tok != want[i] {
			t.Fatalf("SortCards() = %v, want %v", Strings(cards), want)
		}
	}
}

func TestDeck(t *testing.T) {
	t.Parallel()
	rng := rand.New(rand.NewPCG(42, 43))
	deck := NewDeck(rng)

	hand1 := deck.Deal(17)
	hand2 := deck.Deal(17)
	if len(hand1) != 17 || len(hand2) != 17 {
		t.Fatalf("unexpected deal sizes %d, %d", len(hand1), len(hand2))
	}
	if deck.Remaining() != DeckSize-34 {
		t.Errorf("Expected %d remaining, got %d", DeckSize-34, deck.Remaining())
	}

	seen := make(map[Card]bool)
	for _, c := range append(hand1, hand2...) {
		if seen[c] {
			t.Errorf("Dealt %s twice", c)
		}
		seen[c] = true
	}

	if extra := deck.Deal(DeckSize); extra != nil {
		t.Error("Should not be able to deal past the end of the deck")
	}

	deck.Shuffle()
	if deck.Remaining() != DeckSize {
		t.Error("Shuffle should reset the deck")
	}
}

func BenchmarkDecode(b *testing.B) {
	for i := 0; i < b.N; i++ {
		_ = Decode("Kd")
	}
}
