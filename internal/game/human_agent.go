package game

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/lox/pokai/card"
	"github.com/lox/pokai/internal/combo"
	"github.com/lox/pokai/internal/hand"
)

// PromptPlayedCards is shown before reading a human's play
const PromptPlayedCards = "Enter played cards separated by spaces (empty line to pass)"

// ErrInputClosed is returned when a human's input stream ends
var ErrInputClosed = errors.New("input closed")

// HumanAgent reads plays as card tokens, one line per attempt
type HumanAgent struct {
	hand    *hand.Hand
	scanner *bufio.Scanner
	out     io.Writer

	// Prompt renders the view before each read. Defaults to a plain prompt.
	Prompt func(w io.Writer, view View)
}

// NewHumanAgent creates a human agent holding h
func NewHumanAgent(h *hand.Hand, in io.Reader, out io.Writer) *HumanAgent {
	return NewSharedHumanAgent(h, bufio.NewScanner(in), out)
}

// NewSharedHumanAgent creates a human agent reading from a scanner that other
// seats may share, so several humans can take turns at one terminal.
func NewSharedHumanAgent(h *hand.Hand, scanner *bufio.Scanner, out io.Writer) *HumanAgent {
	return &HumanAgent{
		hand:    h,
		scanner: scanner,
		out:     out,
		Prompt:  defaultPrompt,
	}
}

func defaultPrompt(w io.Writer, view View) {
	if view.Rejection != nil {
		fmt.Fprintf(w, "Rejected: %v\n", view.Rejection)
	}
	fmt.Fprintln(w, PromptPlayedCards)
}

// MakeDecision prompts the human and reads one line. Input that does not
// parse into a combination becomes a pass.
func (h *HumanAgent) MakeDecision(view View) Decision {
	if h.Prompt != nil {
		h.Prompt(h.out, view)
	}
	if !h.scanner.Scan() {
		err := h.scanner.Err()
		if err == nil {
			err = ErrInputClosed
		}
		return Decision{Play: combo.PassPlay(view.Seat), Err: err}
	}

	play, err := ParsePlay(h.scanner.Text())
	if err != nil {
		return Decision{
			Play:      combo.PassPlay(view.Seat),
			Reasoning: fmt.Sprintf("Input error: %v", err),
		}
	}
	return Decision{Play: play.WithSeat(view.Seat), Reasoning: "entered by player"}
}

// Commit removes the play from the human's hand, rejecting cards not held
func (h *HumanAgent) Commit(play combo.Play) error {
	if play.IsPass() {
		return nil
	}
	return h.hand.MustRemove(play.Cards...)
}

// Cards returns the human's remaining cards
func (h *HumanAgent) Cards() []card.Card {
	return h.hand.Cards()
}

// ParsePlay turns a line of whitespace separated tokens into a play. An empty
// line is a pass.
func ParsePlay(line string) (combo.Play, error) {
	cards, err := card.ParseCards(strings.Fields(line))
	if err != nil {
		return combo.Play{}, err
	}
	return combo.Infer(cards)
}
