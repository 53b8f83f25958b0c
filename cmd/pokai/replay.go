package main

import (
	"fmt"
	"os"

	"github.com/lox/pokai/card"
	"github.com/lox/pokai/internal/combo"
	"github.com/lox/pokai/internal/display"
	"github.com/lox/pokai/internal/history"
)

// ReplayCmd checks a saved transcript against the rules and prints it
type ReplayCmd struct {
	File  string `arg:"" type:"existingfile" help:"Transcript written by play --save"`
	Quiet bool   `short:"q" help:"Only verify, do not print the turns"`
}

func (c *ReplayCmd) Run(g *Globals) error {
	game, err := history.Load(c.File)
	if err != nil {
		return err
	}
	if err := game.Verify(); err != nil {
		return err
	}

	printer := display.NewPrinter(os.Stdout)
	if !c.Quiet {
		fmt.Println(printer.Banner(" Game " + game.ID + " "))
		for seat, tokens := range game.Starting {
			cards, err := card.ParseCards(tokens)
			if err != nil {
				return err
			}
			fmt.Printf("Seat %d: %s\n", seat, printer.Cards(cards))
		}
		for _, t := range game.Turns {
			cards, err := card.ParseCards(t.Cards)
			if err != nil {
				return err
			}
			play, err := combo.Infer(cards)
			if err != nil {
				return err
			}
			fmt.Printf("%3d. seat %d: %s\n", t.Number, t.Seat, printer.Play(play))
		}
	}
	fmt.Printf("Verified %d turns, seat %d won\n", len(game.Turns), game.Winner)
	return nil
}
