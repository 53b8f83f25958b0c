package game

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"

	"github.com/lox/pokai/internal/combo"
	"github.com/lox/pokai/internal/history"
	"github.com/lox/pokai/internal/match"
)

// DefaultMaxAttempts bounds how often a seat is re-prompted after an illegal
// play.
const DefaultMaxAttempts = 3

// ErrTooManyAttempts is returned when a seat keeps submitting illegal plays.
var ErrTooManyAttempts = errors.New("too many illegal attempts")

// Engine runs one game to completion over a fixed set of agents
type Engine struct {
	agents      []Agent
	state       *match.State
	maxAttempts int
	recorder    *history.Recorder
	observer    Observer
	logger      *log.Logger
	clock       quartz.Clock
}

// EngineOption configures an Engine during creation.
type EngineOption func(*Engine)

// WithMaxAttempts sets how many tries a seat gets per turn.
func WithMaxAttempts(n int) EngineOption {
	return func(e *Engine) {
		if n > 0 {
			e.maxAttempts = n
		}
	}
}

// WithRecorder captures every accepted turn in a transcript.
func WithRecorder(r *history.Recorder) EngineOption {
	return func(e *Engine) { e.recorder = r }
}

// WithObserver receives turn, rejection and game over events.
func WithObserver(o Observer) EngineOption {
	return func(e *Engine) { e.observer = o }
}

// WithClock overrides the clock used to time the game.
func WithClock(c quartz.Clock) EngineOption {
	return func(e *Engine) { e.clock = c }
}

// NewEngine seats agents in order. Seat 0 acts first.
func NewEngine(agents []Agent, logger *log.Logger, opts ...EngineOption) *Engine {
	counts := make([]int, len(agents))
	for i, a := range agents {
		counts[i] = len(a.Cards())
	}
	e := &Engine{
		agents:      agents,
		state:       match.New(counts...),
		maxAttempts: DefaultMaxAttempts,
		logger:      logger.WithPrefix("game"),
		clock:       quartz.NewReal(),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// State exposes the table state, read-only by convention.
func (e *Engine) State() *match.State {
	return e.state
}

// Result summarizes a finished game
type Result struct {
	Winner   int
	Turns    int
	Duration time.Duration
	History  *history.Game // nil without a recorder
}

// PlayGame runs turns until a seat empties its hand. Cancellation is checked
// between turns.
func (e *Engine) PlayGame(ctx context.Context) (*Result, error) {
	if len(e.agents) < 2 {
		return nil, fmt.Errorf("need at least 2 seats, got %d", len(e.agents))
	}
	start := e.clock.Now()
	turns := 0

	e.logger.Debug("Starting game", "seats", len(e.agents), "counts", e.state.Counts())

	for !e.state.IsOver() {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		seat := e.state.Turn()
		play, reasoning, err := e.takeTurn(seat)
		if err != nil {
			return nil, err
		}
		if err := e.state.Record(play); err != nil {
			return nil, fmt.Errorf("seat %d: %w", seat, err)
		}
		turns++
		if e.recorder != nil {
			e.recorder.Record(play)
		}

		e.logger.Debug("Turn", "number", turns, "seat", seat, "play", play, "remaining", e.state.Remaining(seat))
		e.emit(TurnEvent{
			Number:    turns,
			Seat:      seat,
			Play:      play,
			Reasoning: reasoning,
			Remaining: e.state.Remaining(seat),
		})
		e.state.Advance()
	}

	winner, _ := e.state.Winner()
	result := &Result{
		Winner:   winner,
		Turns:    turns,
		Duration: e.clock.Since(start),
	}
	if e.recorder != nil {
		result.History = e.recorder.Finish(winner)
	}

	e.logger.Debug("Game over", "winner", winner, "turns", turns)
	e.emit(GameOverEvent{Winner: winner, Turns: turns, Duration: result.Duration})
	return result, nil
}

// takeTurn asks the seat's agent for a play until the table accepts one or
// the attempt budget runs out.
func (e *Engine) takeTurn(seat int) (combo.Play, string, error) {
	agent := e.agents[seat]
	var rejection error

	for attempt := 1; attempt <= e.maxAttempts; attempt++ {
		d := agent.MakeDecision(e.view(seat, attempt, rejection))
		if d.Err != nil {
			return combo.Play{}, "", fmt.Errorf("seat %d: %w", seat, d.Err)
		}

		play := d.Play.WithSeat(seat)
		if d.Play.IsPass() {
			play = combo.PassPlay(seat)
		}

		rejection = e.state.Check(play)
		if rejection == nil {
			rejection = agent.Commit(play)
		}
		if rejection == nil {
			return play, d.Reasoning, nil
		}

		e.logger.Warn("Rejected play", "seat", seat, "play", play, "attempt", attempt, "error", rejection)
		e.emit(RejectedEvent{Seat: seat, Play: play, Attempt: attempt, Err: rejection})
	}
	return combo.Play{}, "", fmt.Errorf("%w: seat %d: %w", ErrTooManyAttempts, seat, rejection)
}

func (e *Engine) view(seat, attempt int, rejection error) View {
	v := View{
		Seat:      seat,
		Hand:      e.agents[seat].Cards(),
		Prev:      combo.PassPlay(combo.NoSeat),
		Leading:   e.state.IsLeading(seat),
		Remaining: e.state.Counts(),
		Attempt:   attempt,
		Rejection: rejection,
	}
	if prev, ok := e.state.Prev(); ok {
		v.Prev = prev
	}
	return v
}

func (e *Engine) emit(ev Event) {
	if e.observer != nil {
		e.observer(ev)
	}
}
