package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/lox/pokai/internal/bot"
	"github.com/lox/pokai/internal/display"
	"github.com/lox/pokai/internal/game"
	"github.com/lox/pokai/internal/hand"
)

// SuggestCmd shows the AI's choice for a hand, leading or following a play
type SuggestCmd struct {
	Cards     []string `arg:"" optional:"" help:"Card tokens of the hand to play from"`
	File      string   `short:"f" type:"existingfile" help:"Read the hand from a hand file"`
	Prev      string   `short:"p" help:"Play to beat as card tokens; leave empty to lead"`
	Remaining int      `default:"17" help:"Cards left to the seat that made --prev"`
}

func (c *SuggestCmd) Run(g *Globals) error {
	cfg, err := g.loadConfig()
	if err != nil {
		return err
	}
	policy, err := cfg.Policy()
	if err != nil {
		return err
	}
	cards, err := readHand(c.Cards, c.File)
	if err != nil {
		return err
	}

	logger := log.NewWithOptions(io.Discard, log.Options{})
	h := hand.New(cards)
	player := bot.NewPlayer(0, h, policy, logger)
	printer := display.NewPrinter(os.Stdout)

	if strings.TrimSpace(c.Prev) == "" {
		play, ok := player.LeadingPlay()
		if !ok {
			fmt.Println("Nothing to lead")
			return nil
		}
		fmt.Printf("Lead: %s\n", printer.Play(play))
		return nil
	}

	prev, err := game.ParsePlay(c.Prev)
	if err != nil {
		return fmt.Errorf("--prev: %w", err)
	}
	if prev.IsPass() {
		return fmt.Errorf("--prev: a pass cannot be beaten")
	}
	prev = prev.WithSeat(1)

	play, ok := player.FollowingPlay(prev, []int{h.Len(), c.Remaining})
	if !ok {
		fmt.Printf("Pass (nothing beats %s)\n", printer.Play(prev))
		return nil
	}
	fmt.Printf("Beat %s with %s\n", printer.Play(prev), printer.Play(play))
	return nil
}
