// Package match tracks the shared state of one game: whose turn it is, how
// many cards each seat holds, and the play that must be beaten.
package match

import (
	"errors"
	"fmt"

	"github.com/lox/pokai/card"
	"github.com/lox/pokai/internal/combo"
)

// Errors returned by Check and Record.
var (
	ErrNotYourTurn  = errors.New("not your turn")
	ErrMustLead     = errors.New("cannot pass while leading")
	ErrCardsPlayed  = errors.New("card already played")
	ErrTooManyCards = errors.New("play has more cards than the seat holds")
	ErrDoesNotBeat  = errors.New("play does not beat previous play")
	ErrGameOver     = errors.New("game is over")
)

// State is the table-level view of a game in progress
type State struct {
	counts  []int
	turn    int
	prev    combo.Play
	hasPrev bool
	played  map[card.Card]bool
	winner  int
}

// New creates a state with one remaining-card count per seat. Seat 0 acts
// first.
func New(counts ...int) *State {
	return &State{
		counts: append([]int(nil), counts...),
		played: make(map[card.Card]bool),
		winner: combo.NoSeat,
	}
}

// Seats returns the number of seats at the table
func (s *State) Seats() int { return len(s.counts) }

// Turn returns the seat due to act.
func (s *State) Turn() int { return s.turn }

// Remaining returns how many cards seat still holds.
func (s *State) Remaining(seat int) int {
	if seat < 0 || seat >= len(s.counts) {
		return 0
	}
	return s.counts[seat]
}

// Counts returns a copy of every seat's remaining count.
func (s *State) Counts() []int {
	return append([]int(nil), s.counts...)
}

// Prev returns the last non-pass play, if any.
func (s *State) Prev() (combo.Play, bool) {
	return s.prev, s.hasPrev
}

// IsLeading reports whether seat may play any shape: nobody has played yet or
// everyone else passed on the seat's own play.
func (s *State) IsLeading(seat int) bool {
	return !s.hasPrev || s.prev.Seat == seat
}

// Played reports whether c has already been committed by any seat.
func (s *State) Played(c card.Card) bool {
	return s.played[c]
}

// Check validates play for the seat on turn without applying it.
func (s *State) Check(play combo.Play) error {
	if s.IsOver() {
		return ErrGameOver
	}
	if play.Seat != s.turn {
		return fmt.Errorf("%w: seat %d acted, seat %d is due", ErrNotYourTurn, play.Seat, s.turn)
	}
	if play.IsPass() {
		if s.IsLeading(play.Seat) {
			return ErrMustLead
		}
		return nil
	}
	for _, c := range play.Cards {
		if s.played[c] {
			return fmt.Errorf("%w: %s", ErrCardsPlayed, c)
		}
	}
	if len(play.Cards) > s.counts[play.Seat] {
		return fmt.Errorf("%w: %d > %d", ErrTooManyCards, len(play.Cards), s.counts[play.Seat])
	}
	if !s.IsLeading(play.Seat) && !combo.Beats(s.prev, play) {
		return fmt.Errorf("%w: %s over %s", ErrDoesNotBeat, play, s.prev)
	}
	return nil
}

// Record applies a checked play for the seat on turn. Passes leave the
// previous play in place.
func (s *State) Record(play combo.Play) error {
	if err := s.Check(play); err != nil {
		return err
	}
	if play.IsPass() {
		return nil
	}
	for _, c := range play.Cards {
		s.played[c] = true
	}
	s.counts[play.Seat] -= len(play.Cards)
	s.prev = play
	s.hasPrev = true
	if s.counts[play.Seat] == 0 {
		s.winner = play.Seat
	}
	return nil
}

// Advance passes the turn to the next seat.
func (s *State) Advance() {
	if len(s.counts) > 0 {
		s.turn = (s.turn + 1) % len(s.counts)
	}
}

// IsOver reports whether some seat has emptied its hand.
func (s *State) IsOver() bool {
	return s.winner != combo.NoSeat
}

// Winner returns the seat that emptied its hand first.
func (s *State) Winner() (int, bool) {
	return s.winner, s.IsOver()
}
