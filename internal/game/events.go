package game

import (
	"time"

	"github.com/lox/pokai/internal/combo"
)

// EventType represents a game event type with type safety
type EventType string

// EventType constants emitted by the engine
const (
	EventTypeTurn     EventType = "turn"
	EventTypeRejected EventType = "rejected"
	EventTypeGameOver EventType = "game_over"
)

// String returns the string representation of the event type
func (et EventType) String() string {
	return string(et)
}

// Event is anything the engine reports to an observer
type Event interface {
	EventType() EventType
}

// Observer receives events synchronously from the game loop
type Observer func(Event)

// TurnEvent is published after a play or pass is accepted
type TurnEvent struct {
	Number    int
	Seat      int
	Play      combo.Play
	Reasoning string
	Remaining int // Cards the seat holds after the play
}

// RejectedEvent is published when the table refuses an attempted play
type RejectedEvent struct {
	Seat    int
	Play    combo.Play
	Attempt int
	Err     error
}

// GameOverEvent is published once a seat empties its hand
type GameOverEvent struct {
	Winner   int
	Turns    int
	Duration time.Duration
}

func (TurnEvent) EventType() EventType     { return EventTypeTurn }
func (RejectedEvent) EventType() EventType { return EventTypeRejected }
func (GameOverEvent) EventType() EventType { return EventTypeGameOver }
