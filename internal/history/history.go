// Package history records finished games as TOML transcripts that can be
// saved, reloaded and replayed for verification.
package history

import (
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/google/uuid"

	"github.com/lox/pokai/card"
	"github.com/lox/pokai/internal/combo"
	"github.com/lox/pokai/internal/fileutil"
	"github.com/lox/pokai/internal/match"
)

// ErrUnfinished is returned when saving a game that has no winner yet.
var ErrUnfinished = errors.New("game has no winner")

// Game is one complete transcript.
type Game struct {
	ID       string     `toml:"id"`
	Seed     int64      `toml:"seed,omitempty"` // TOML integers are signed
	Started  time.Time  `toml:"started"`
	Seats    int        `toml:"seats"`
	Starting [][]string `toml:"starting_hands"`
	Kitty    []string   `toml:"kitty,omitempty"`
	Winner   int        `toml:"winner"`
	Turns    []Turn     `toml:"turn"`
}

// Turn is one seat's action. Passes carry no cards.
type Turn struct {
	Number  int      `toml:"number"`
	Seat    int      `toml:"seat"`
	Shape   string   `toml:"shape"`
	Cards   []string `toml:"cards,omitempty"`
	Kickers int      `toml:"kickers,omitempty"`
}

// NewID returns a time-ordered game identifier.
func NewID() string {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}
	return id.String()
}

// Recorder accumulates turns while a game is played.
type Recorder struct {
	game Game
}

// NewRecorder starts a transcript for the given starting hands.
func NewRecorder(id string, seed uint64, started time.Time, hands [][]card.Card, kitty []card.Card) *Recorder {
	starting := make([][]string, len(hands))
	for i, h := range hands {
		sorted := append([]card.Card(nil), h...)
		card.SortCards(sorted)
		starting[i] = card.Strings(sorted)
	}
	return &Recorder{game: Game{
		ID:       id,
		Seed:     int64(seed),
		Started:  started.UTC(),
		Seats:    len(hands),
		Starting: starting,
		Kitty:    card.Strings(kitty),
		Winner:   combo.NoSeat,
	}}
}

// Record appends an accepted play or pass.
func (r *Recorder) Record(play combo.Play) {
	t := Turn{
		Number: len(r.game.Turns) + 1,
		Seat:   play.Seat,
		Shape:  play.Shape.String(),
	}
	if !play.IsPass() {
		t.Cards = card.Strings(play.Cards)
		t.Kickers = play.Kickers
	} else {
		t.Shape = combo.Pass.String()
	}
	r.game.Turns = append(r.game.Turns, t)
}

// Finish stamps the winner and returns the transcript.
func (r *Recorder) Finish(winner int) *Game {
	r.game.Winner = winner
	g := r.game
	return &g
}

// Encode writes the transcript as TOML.
func Encode(w io.Writer, g *Game) error {
	if g == nil {
		return fmt.Errorf("history: game is nil")
	}
	enc := toml.NewEncoder(w)
	enc.Indent = "\t"
	return enc.Encode(g)
}

// Decode reads a transcript written by Encode.
func Decode(r io.Reader) (*Game, error) {
	var g Game
	if _, err := toml.NewDecoder(r).Decode(&g); err != nil {
		return nil, fmt.Errorf("history: %w", err)
	}
	return &g, nil
}

// Save writes the transcript to path atomically.
func Save(path string, g *Game) error {
	if g == nil || g.Winner == combo.NoSeat {
		return ErrUnfinished
	}
	return fileutil.WriteAtomic(path, 0o644, func(w io.Writer) error {
		return Encode(w, g)
	})
}

// Load reads a transcript from path.
func Load(path string) (*Game, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return Decode(f)
}

// Verify replays every turn against the rules and checks the recorded
// winner. Each seat may only play cards it was dealt.
func (g *Game) Verify() error {
	if len(g.Starting) != g.Seats {
		return fmt.Errorf("history: %d starting hands for %d seats", len(g.Starting), g.Seats)
	}
	held := make([]map[card.Card]bool, g.Seats)
	counts := make([]int, g.Seats)
	for seat, tokens := range g.Starting {
		cards, err := card.ParseCards(tokens)
		if err != nil {
			return fmt.Errorf("history: seat %d hand: %w", seat, err)
		}
		held[seat] = make(map[card.Card]bool, len(cards))
		for _, c := range cards {
			held[seat][c] = true
		}
		counts[seat] = len(cards)
	}

	state := match.New(counts...)
	for _, t := range g.Turns {
		cards, err := card.ParseCards(t.Cards)
		if err != nil {
			return fmt.Errorf("history: turn %d: %w", t.Number, err)
		}
		play, err := combo.Infer(cards)
		if err != nil {
			return fmt.Errorf("history: turn %d: %w", t.Number, err)
		}
		if play.Shape.String() != t.Shape {
			return fmt.Errorf("history: turn %d: recorded %s but cards form %s", t.Number, t.Shape, play.Shape)
		}
		play = play.WithSeat(t.Seat)
		for _, c := range play.Cards {
			if t.Seat < 0 || t.Seat >= g.Seats || !held[t.Seat][c] {
				return fmt.Errorf("history: turn %d: seat %d was not dealt %s", t.Number, t.Seat, c)
			}
		}
		if err := state.Record(play); err != nil {
			return fmt.Errorf("history: turn %d: %w", t.Number, err)
		}
		state.Advance()
	}

	winner, ok := state.Winner()
	if !ok || winner != g.Winner {
		return fmt.Errorf("history: recorded winner %d, replay gives %d", g.Winner, winner)
	}
	return nil
}
