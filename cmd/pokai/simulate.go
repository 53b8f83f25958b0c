package main

import (
	"fmt"
	"os"
	"time"

	"github.com/lox/pokai/cmd/pokai/shared"
	"github.com/lox/pokai/internal/display"
	"github.com/lox/pokai/internal/randutil"
	"github.com/lox/pokai/internal/simulator"
)

// SimulateCmd runs AI-only games and reports per-seat win rates
type SimulateCmd struct {
	Games   int           `help:"Number of games (overrides config)"`
	Workers int           `help:"Parallel workers (overrides config)"`
	Seed    uint64        `help:"Batch seed (0 uses the configured seed, then a random one)"`
	Timeout time.Duration `default:"10s" help:"Per-game timeout"`
}

func (c *SimulateCmd) Run(g *Globals) error {
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

	games, workers, seed := cfg.Simulate.Games, cfg.Simulate.Workers, cfg.Simulate.Seed
	if c.Games > 0 {
		games = c.Games
	}
	if c.Workers > 0 {
		workers = c.Workers
	}
	if c.Seed != 0 {
		seed = c.Seed
	}
	if seed == 0 {
		seed = randutil.RandomSeed()
	}

	ctx, cancel := shared.SetupSignalHandler(logger)
	defer cancel()

	logger.Info("Starting simulation", "games", games, "workers", workers, "seed", seed)
	start := time.Now()
	sim := simulator.New(simulator.Config{
		Games:    games,
		Seed:     seed,
		Workers:  workers,
		Seats:    cfg.Game.Seats,
		HandSize: cfg.Game.HandSize,
		Kitty:    cfg.Game.Kitty,
		Timeout:  c.Timeout,
		Policy:   policy,
		Logger:   logger,
	})
	stats, err := sim.Run(ctx)
	if err != nil {
		return err
	}

	printer := display.NewPrinter(os.Stdout)
	fmt.Println(printer.Banner(fmt.Sprintf(" %d games, seed %d ", stats.Games, seed)))
	for seat := range stats.Wins {
		low, high := stats.ConfidenceInterval95(seat)
		fmt.Printf("Seat %d: %6.2f%% wins  (95%% CI %.2f%% - %.2f%%)\n",
			seat, stats.WinRate(seat)*100, low*100, high*100)
	}
	fmt.Printf("Turns:  mean %.1f  sd %.1f  median %.1f  p90 %.1f  max %d\n",
		stats.MeanTurns(), stats.StdDevTurns(), stats.MedianTurns(), stats.Percentile(0.9), stats.MaxTurns)
	fmt.Printf("Bombs:  %.2f per game\n", float64(stats.Bombs)/float64(stats.Games))
	fmt.Printf("Time:   %v per game, %v total\n", stats.MeanDuration(), time.Since(start).Round(time.Millisecond))
	return nil
}
