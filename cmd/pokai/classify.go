package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/lox/pokai/card"
	"github.com/lox/pokai/internal/display"
	"github.com/lox/pokai/internal/hand"
	"github.com/lox/pokai/internal/handfile"
)

// ClassifyCmd prints the combination index of a hand
type ClassifyCmd struct {
	Cards []string `arg:"" optional:"" help:"Card tokens, e.g. 3h 3d 0s Z0"`
	File  string   `short:"f" type:"existingfile" help:"Read the hand from a hand file"`
}

func (c *ClassifyCmd) Run(g *Globals) error {
	cards, err := readHand(c.Cards, c.File)
	if err != nil {
		return err
	}
	h := hand.New(cards)
	printer := display.NewPrinter(os.Stdout)

	fmt.Printf("Hand: %s (%d cards)\n", printer.Cards(h.Cards()), h.Len())
	fmt.Print(printer.Categories(h))
	fmt.Printf("Bombs: %d\n", h.NumWild())
	return nil
}

// readHand takes cards from tokens or a hand file
func readHand(tokens []string, file string) ([]card.Card, error) {
	switch {
	case file != "" && len(tokens) > 0:
		return nil, errors.New("pass either card tokens or --file, not both")
	case file != "":
		return handfile.Load(file)
	case len(tokens) > 0:
		return card.ParseCards(tokens)
	default:
		return nil, errors.New("no cards given")
	}
}
