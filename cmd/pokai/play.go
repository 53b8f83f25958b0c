package main

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/lox/pokai/card"
	"github.com/lox/pokai/cmd/pokai/shared"
	"github.com/lox/pokai/internal/bot"
	"github.com/lox/pokai/internal/config"
	"github.com/lox/pokai/internal/display"
	"github.com/lox/pokai/internal/game"
	"github.com/lox/pokai/internal/hand"
	"github.com/lox/pokai/internal/handfile"
	"github.com/lox/pokai/internal/history"
	"github.com/lox/pokai/internal/randutil"
)

// PlayCmd plays one game at the terminal. With hand files the AI sits at
// seat 0 holding every card the files leave out and each file is a human
// seat. With --deal the deck is shuffled and seat 0 takes the kitty.
type PlayCmd struct {
	HandFiles []string `arg:"" optional:"" type:"existingfile" help:"Hand files for the human seats"`
	Deal      bool     `help:"Deal a shuffled deck instead of reading hand files"`
	Humans    int      `default:"1" help:"Human seats when dealing (0 to watch the AI play itself)"`
	Seed      uint64   `help:"Deal seed (0 for random)"`
	Save      string   `type:"path" help:"Write the game transcript to this TOML file"`
	Hide      bool     `help:"Clear each human's hand from the screen after their turn"`
}

func (c *PlayCmd) Run(g *Globals) error {
	cfg, err := g.loadConfig()
	if err != nil {
		return err
	}
	logger, closeLog, err := shared.SetupLogger(cfg.Log.Level, cfg.Log.File)
	if err != nil {
		return err
	}
	defer closeLog()

	policy, err := cfg.Policy()
	if err != nil {
		return err
	}

	var (
		hands  [][]card.Card
		kitty  []card.Card
		humans int
		seed   uint64
	)
	switch {
	case c.Deal && len(c.HandFiles) > 0:
		return errors.New("use either hand files or --deal, not both")
	case c.Deal:
		seed = c.Seed
		if seed == 0 {
			seed = randutil.RandomSeed()
		}
		hands, kitty = deal(cfg.Game, seed)
		humans = c.Humans
	case len(c.HandFiles) > 0:
		hands, err = loadHands(c.HandFiles)
		if err != nil {
			return err
		}
		humans = len(c.HandFiles)
	default:
		return errors.New("pass hand files or --deal")
	}
	if humans < 0 || humans >= len(hands) {
		return fmt.Errorf("humans must be between 0 and %d", len(hands)-1)
	}

	printer := display.NewPrinter(os.Stdout)
	scanner := bufio.NewScanner(os.Stdin)
	prompted := &lineCounter{}

	agents := make([]game.Agent, len(hands))
	for seat, cards := range hands {
		h := hand.New(cards)
		if seat >= 1 && seat <= humans {
			human := game.NewSharedHumanAgent(h, scanner, os.Stdout)
			human.Prompt = func(w io.Writer, view game.View) {
				prompted.w = w
				printer.Prompt(prompted, view)
				prompted.n++ // the line the player types
			}
			agents[seat] = human
			continue
		}
		agents[seat] = game.NewAIAgent(bot.NewPlayer(seat, h, policy, logger))
	}

	observer := func(ev game.Event) {
		if turn, ok := ev.(game.TurnEvent); ok && c.Hide && turn.Seat >= 1 && turn.Seat <= humans {
			printer.ClearLines(prompted.n)
			prompted.n = 0
		}
		printer.Observe(ev)
	}

	recorder := history.NewRecorder(history.NewID(), seed, time.Now(), hands, kitty)
	engine := game.NewEngine(agents, logger,
		game.WithMaxAttempts(cfg.Game.MaxAttempts),
		game.WithRecorder(recorder),
		game.WithObserver(observer),
	)

	ctx, cancel := shared.SetupSignalHandler(logger)
	defer cancel()

	fmt.Println(printer.Banner(" Dou Dizhu "))
	for seat, cards := range hands {
		role := "AI"
		if seat >= 1 && seat <= humans {
			role = "human"
		}
		fmt.Printf("Seat %d (%s): %d cards\n", seat, role, len(cards))
	}
	fmt.Println()

	result, err := engine.PlayGame(ctx)
	if err != nil {
		return err
	}

	if c.Save != "" {
		if err := history.Save(c.Save, result.History); err != nil {
			return fmt.Errorf("failed to save transcript: %w", err)
		}
		logger.Info("Saved transcript", "path", c.Save, "id", result.History.ID)
	}
	return nil
}

// deal shuffles a deck from seed. Seat 0 is dealt the kitty on top of its
// hand, and the kitty is also returned on its own for the transcript.
func deal(settings *config.GameSettings, seed uint64) ([][]card.Card, []card.Card) {
	deck := card.NewDeck(randutil.New(seed))
	hands := make([][]card.Card, settings.Seats)
	for seat := range hands {
		hands[seat] = deck.Deal(settings.HandSize)
	}
	kitty := deck.Deal(settings.Kitty)
	hands[0] = append(hands[0], kitty...)
	return hands, kitty
}

// loadHands reads each human's file and gives seat 0 the rest of the deck
func loadHands(paths []string) ([][]card.Card, error) {
	files := make([][]card.Card, len(paths))
	for i, path := range paths {
		cards, err := handfile.Load(path)
		if err != nil {
			return nil, err
		}
		files[i] = cards
	}
	if dup := handfile.Overlap(files...); len(dup) > 0 {
		return nil, fmt.Errorf("%w: %v appear in more than one hand file", handfile.ErrDuplicateCard, card.Strings(dup))
	}

	hands := [][]card.Card{handfile.Remainder(card.OrderedDeck(), files...)}
	return append(hands, files...), nil
}

// lineCounter counts the lines written through it so a prompt can be
// cleared once the turn is over
type lineCounter struct {
	w io.Writer
	n int
}

func (l *lineCounter) Write(p []byte) (int, error) {
	l.n += bytes.Count(p, []byte{'\n'})
	return l.w.Write(p)
}
