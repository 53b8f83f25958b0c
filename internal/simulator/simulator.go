package simulator

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"
	"golang.org/x/sync/errgroup"

	"github.com/lox/pokai/card"
	"github.com/lox/pokai/internal/bot"
	"github.com/lox/pokai/internal/game"
	"github.com/lox/pokai/internal/hand"
	"github.com/lox/pokai/internal/randutil"
	"github.com/lox/pokai/internal/statistics"
)

// Config holds configuration for running simulations
type Config struct {
	Games    int
	Seed     uint64
	Workers  int
	Seats    int
	HandSize int
	Kitty    int // Extra cards dealt to seat 0
	Timeout  time.Duration
	Policy   bot.Policy
	Logger   *log.Logger
	Clock    quartz.Clock
}

// Simulator runs batches of all-AI games
type Simulator struct {
	config Config
}

// New creates a new simulator with the given configuration
func New(config Config) *Simulator {
	if config.Workers < 1 {
		config.Workers = 1
	}
	if config.Clock == nil {
		config.Clock = quartz.NewReal()
	}
	if config.Logger == nil {
		config.Logger = log.Default()
	}
	if len(config.Policy.LeadOrder) == 0 {
		config.Policy = bot.DefaultPolicy()
	}
	return &Simulator{config: config}
}

// Run plays every game and aggregates the results in game order. Results do
// not depend on the worker count. The first failing game cancels the batch.
func (s *Simulator) Run(ctx context.Context) (*statistics.Statistics, error) {
	cfg := s.config
	if need := cfg.Seats*cfg.HandSize + cfg.Kitty; need > card.DeckSize {
		return nil, fmt.Errorf("deal needs %d cards, deck has %d", need, card.DeckSize)
	}

	results := make([]statistics.GameResult, cfg.Games)
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(cfg.Workers)

	for i := 0; i < cfg.Games; i++ {
		g.Go(func() error {
			result, err := s.playGame(ctx, i)
			if err != nil {
				return fmt.Errorf("game %d (seed %d): %w", i, randutil.GameSeed(cfg.Seed, i), err)
			}
			results[i] = result
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	stats := statistics.New(cfg.Seats)
	for _, r := range results {
		stats.Add(r)
	}
	if cfg.Games > 0 {
		if err := stats.Validate(); err != nil {
			return nil, fmt.Errorf("statistics validation failed: %w", err)
		}
	}
	cfg.Logger.Info("Simulation complete", "games", stats.Games, "mean_turns", stats.MeanTurns())
	return stats, nil
}

// Deal returns the hands for game n of the batch. Seat 0 receives the kitty.
func (s *Simulator) Deal(n int) [][]card.Card {
	cfg := s.config
	deck := card.NewDeck(randutil.ForGame(cfg.Seed, n))
	hands := make([][]card.Card, cfg.Seats)
	for seat := range hands {
		size := cfg.HandSize
		if seat == 0 {
			size += cfg.Kitty
		}
		hands[seat] = deck.Deal(size)
	}
	return hands
}

// playGame runs a single game with timeout protection
func (s *Simulator) playGame(ctx context.Context, n int) (statistics.GameResult, error) {
	cfg := s.config
	if cfg.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, cfg.Timeout)
		defer cancel()
	}

	logger := cfg.Logger.With("game", n)
	hands := s.Deal(n)
	agents := make([]game.Agent, len(hands))
	for seat, cards := range hands {
		agents[seat] = game.NewAIAgent(bot.NewPlayer(seat, hand.New(cards), cfg.Policy, logger))
	}

	bombs := 0
	engine := game.NewEngine(agents, logger,
		game.WithClock(cfg.Clock),
		game.WithObserver(func(ev game.Event) {
			if turn, ok := ev.(game.TurnEvent); ok && turn.Play.IsBomb() {
				bombs++
			}
		}),
	)

	res, err := engine.PlayGame(ctx)
	if err != nil {
		return statistics.GameResult{}, err
	}
	return statistics.GameResult{
		Game:     n,
		Seed:     randutil.GameSeed(cfg.Seed, n),
		Winner:   res.Winner,
		Turns:    res.Turns,
		Bombs:    bombs,
		Duration: res.Duration,
	}, nil
}
