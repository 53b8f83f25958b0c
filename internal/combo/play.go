package combo

import (
	"strings"

	"github.com/lox/pokai/card"
)

// StraightCeiling is the highest rank allowed in a straight, tractor or plane.
const StraightCeiling = card.Ace

// NoSeat marks a play that has not been committed by a seat yet.
const NoSeat = -1

// Play is a classified group of cards. Core cards come first, in ascending
// rank order, followed by Kickers kicker cards.
type Play struct {
	Shape   Shape
	Cards   []card.Card
	Kickers int // number of kicker cards: 0, 1, 2 or 4
	Seat    int
}

// NewPlay builds an unowned play.
func NewPlay(shape Shape, cards []card.Card, kickers int) Play {
	return Play{Shape: shape, Cards: cards, Kickers: kickers, Seat: NoSeat}
}

// PassPlay returns an explicit pass for seat.
func PassPlay(seat int) Play {
	return Play{Shape: Pass, Seat: seat}
}

// IsPass reports whether the play carries no cards.
func (p Play) IsPass() bool {
	return p.Shape == Pass || len(p.Cards) == 0
}

// IsBomb reports whether the play can beat any non-bomb play.
func (p Play) IsBomb() bool {
	switch p.Shape {
	case JokerBomb:
		return true
	case Quadruplet:
		return p.Kickers == 0
	case Pass, Single, Pair, Triple, SingleStraight, Tractor, Plane:
		return false
	}
	return false
}

// Core returns the non-kicker cards.
func (p Play) Core() []card.Card {
	return p.Cards[:len(p.Cards)-p.Kickers]
}

// KickerCards returns the cards riding along with the core.
func (p Play) KickerCards() []card.Card {
	return p.Cards[len(p.Cards)-p.Kickers:]
}

// Anchor returns the lowest-ranked core card, or card.Invalid for a pass.
func (p Play) Anchor() card.Card {
	if p.IsPass() {
		return card.Invalid
	}
	return p.Cards[0]
}

// CoreLen returns the number of ranks spanned by the core.
func (p Play) CoreLen() int {
	per := p.Shape.PerRank()
	if per == 0 {
		return 0
	}
	if p.Shape == JokerBomb {
		return 2
	}
	return len(p.Core()) / per
}

// WithSeat returns a copy of the play stamped with seat.
func (p Play) WithSeat(seat int) Play {
	p.Seat = seat
	return p
}

func (p Play) String() string {
	if p.IsPass() {
		return "pass"
	}
	var b strings.Builder
	b.WriteString(p.Shape.String())
	b.WriteString(" [")
	b.WriteString(strings.Join(card.Strings(p.Core()), " "))
	if p.Kickers > 0 {
		b.WriteString(" + ")
		b.WriteString(strings.Join(card.Strings(p.KickerCards()), " "))
	}
	b.WriteString("]")
	return b.String()
}
