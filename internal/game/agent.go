package game

import (
	"github.com/lox/pokai/card"
	"github.com/lox/pokai/internal/combo"
)

// Decision represents a seat's chosen play with reasoning
type Decision struct {
	Play      combo.Play
	Reasoning string // Human-readable explanation
	Err       error  // Set when the agent can no longer act, e.g. its input closed
}

// View is the read-only state handed to an agent when it is due to act
type View struct {
	Seat      int
	Hand      []card.Card // Only the acting seat's cards
	Prev      combo.Play  // Last non-pass play, Pass when leading
	Leading   bool
	Remaining []int // Cards left per seat
	Attempt   int   // 1 for the first try, higher after a rejected play
	Rejection error // Why the previous attempt was refused
}

// Agent represents any entity (human or AI) that plays a seat.
// Agents receive an immutable view and return a decision; the engine only
// calls Commit once the table has accepted the play.
type Agent interface {
	// MakeDecision analyzes the view and returns a decision
	MakeDecision(view View) Decision

	// Commit removes an accepted play from the agent's hand
	Commit(play combo.Play) error

	// Cards returns the agent's current hand
	Cards() []card.Card
}
