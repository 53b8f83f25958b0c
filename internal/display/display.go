// Package display renders cards, plays and game events for the terminal.
package display

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/lox/pokai/card"
	"github.com/lox/pokai/internal/combo"
	"github.com/lox/pokai/internal/game"
	"github.com/lox/pokai/internal/hand"
)

// Styles contains all styling for terminal output
type Styles struct {
	Header    lipgloss.Style
	RedCard   lipgloss.Style
	BlackCard lipgloss.Style
	Joker     lipgloss.Style
	Shape     lipgloss.Style
	Pass      lipgloss.Style
	Success   lipgloss.Style
	Error     lipgloss.Style
	Info      lipgloss.Style
}

func newStyles(r *lipgloss.Renderer) Styles {
	return Styles{
		Header: r.NewStyle().
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")).
			Bold(true).
			Padding(0, 1),
		RedCard: r.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B")).
			Bold(true),
		BlackCard: r.NewStyle().
			Foreground(lipgloss.Color("#FAFAFA")).
			Bold(true),
		Joker: r.NewStyle().
			Foreground(lipgloss.Color("#FFD700")).
			Bold(true),
		Shape: r.NewStyle().
			Foreground(lipgloss.Color("#96CEB4")),
		Pass: r.NewStyle().
			Foreground(lipgloss.Color("#626262")).
			Italic(true),
		Success: r.NewStyle().
			Foreground(lipgloss.Color("#96CEB4")).
			Bold(true),
		Error: r.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B")).
			Bold(true),
		Info: r.NewStyle().
			Foreground(lipgloss.Color("#626262")),
	}
}

// Printer writes styled output to a terminal
type Printer struct {
	out    *termenv.Output
	styles Styles
}

// NewPrinter creates a printer for w. The color profile is detected from w
// unless overridden with termenv.WithProfile.
func NewPrinter(w io.Writer, opts ...termenv.OutputOption) *Printer {
	out := termenv.NewOutput(w, opts...)
	renderer := lipgloss.NewRenderer(w, opts...)
	return &Printer{out: out, styles: newStyles(renderer)}
}

// Card renders one card in its suit color
func (p *Printer) Card(c card.Card) string {
	switch {
	case c.IsJoker():
		return p.styles.Joker.Render(c.Display())
	case c.Suit.IsRed():
		return p.styles.RedCard.Render(c.Display())
	default:
		return p.styles.BlackCard.Render(c.Display())
	}
}

// Cards renders a list of cards in brackets
func (p *Printer) Cards(cards []card.Card) string {
	parts := make([]string, len(cards))
	for i, c := range cards {
		parts[i] = p.Card(c)
	}
	return "[" + strings.Join(parts, " ") + "]"
}

// Play renders a play as its shape followed by core and kicker cards
func (p *Printer) Play(play combo.Play) string {
	if play.IsPass() {
		return p.styles.Pass.Render("pass")
	}
	s := p.styles.Shape.Render(play.Shape.String()) + " " + p.Cards(play.Core())
	if play.Kickers > 0 {
		s += " + " + p.Cards(play.KickerCards())
	}
	return s
}

// Categories lists every shape the hand can form, one line per shape
func (p *Printer) Categories(h *hand.Hand) string {
	var b strings.Builder
	for _, cat := range h.Categories() {
		groups := make([]string, len(cat.Groups))
		for i, g := range cat.Groups {
			groups[i] = p.Cards(g)
		}
		fmt.Fprintf(&b, "%-15s %s\n", p.styles.Shape.Render(cat.Shape.String()), strings.Join(groups, " "))
	}
	return b.String()
}

// Banner renders a header line
func (p *Printer) Banner(title string) string {
	return p.styles.Header.Render(title)
}

// Prompt shows a human seat its hand and the play to beat before reading
// input. It matches the signature of game.HumanAgent.Prompt.
func (p *Printer) Prompt(w io.Writer, view game.View) {
	fmt.Fprintf(w, "%s\n", p.Banner(fmt.Sprintf("Seat %d", view.Seat)))
	fmt.Fprintf(w, "Hand: %s\n", p.Cards(view.Hand))
	if view.Leading {
		fmt.Fprintln(w, p.styles.Info.Render("You lead"))
	} else {
		fmt.Fprintf(w, "To beat: %s (seat %d)\n", p.Play(view.Prev), view.Prev.Seat)
	}
	fmt.Fprintf(w, "Cards left: %v\n", view.Remaining)
	if view.Rejection != nil {
		fmt.Fprintln(w, p.styles.Error.Render(fmt.Sprintf("Rejected: %v", view.Rejection)))
	}
	fmt.Fprintln(w, game.PromptPlayedCards)
}

// Observe prints engine events as they happen
func (p *Printer) Observe(ev game.Event) {
	switch e := ev.(type) {
	case game.TurnEvent:
		fmt.Fprintf(p.out, "%3d. seat %d: %s (%d left)\n", e.Number, e.Seat, p.Play(e.Play), e.Remaining)
	case game.RejectedEvent:
		fmt.Fprintf(p.out, "     seat %d: %s\n", e.Seat, p.styles.Error.Render(fmt.Sprintf("rejected %s: %v", e.Play, e.Err)))
	case game.GameOverEvent:
		fmt.Fprintf(p.out, "%s\n", p.styles.Success.Render(fmt.Sprintf("Seat %d wins after %d turns", e.Winner, e.Turns)))
	}
}

// ClearLines erases the last n lines, used to hide a human's hand before the
// next seat takes the keyboard.
func (p *Printer) ClearLines(n int) {
	p.out.ClearLines(n)
}
