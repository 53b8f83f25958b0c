package main

import (
	"fmt"

	"github.com/alecthomas/kong"
	"github.com/joho/godotenv"

	"github.com/lox/pokai/internal/config"
)

// version is set by ldflags during build
var version = "dev"

// Globals are flags shared by every command
type Globals struct {
	Config   string `short:"c" default:"pokai.hcl" env:"POKAI_CONFIG" help:"Configuration file (HCL)"`
	LogLevel string `env:"POKAI_LOG_LEVEL" help:"Override the configured log level (debug, info, warn, error)"`
}

type CLI struct {
	Globals

	Version  kong.VersionFlag `short:"v" help:"Show version"`
	Play     PlayCmd          `cmd:"" help:"Play a game against the AI"`
	Simulate SimulateCmd      `cmd:"" help:"Run a batch of AI-only games"`
	Classify ClassifyCmd      `cmd:"" help:"List every combination a hand contains"`
	Suggest  SuggestCmd       `cmd:"" help:"Show the play the AI would make"`
	Replay   ReplayCmd        `cmd:"" help:"Check and print a saved game transcript"`
}

// loadConfig reads the configuration file and applies flag overrides
func (g *Globals) loadConfig() (*config.Config, error) {
	cfg, err := config.Load(g.Config)
	if err != nil {
		return nil, err
	}
	if g.LogLevel != "" {
		cfg.Log.Level = g.LogLevel
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

func main() {
	// A missing .env file is fine
	_ = godotenv.Load()

	var cli CLI
	ctx := kong.Parse(&cli,
		kong.Name("pokai"),
		kong.Description("Dou Dizhu rules engine and AI opponent"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact: true,
		}),
		kong.Vars{
			"version": version,
		},
	)
	err := ctx.Run(&cli.Globals)
	ctx.FatalIfErrorf(err)
}
