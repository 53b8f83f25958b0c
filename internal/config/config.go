// Package config loads pokai settings from an HCL file.
package config

import (
	"fmt"
	"os"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"

	"github.com/lox/pokai/card"
	"github.com/lox/pokai/internal/bot"
)

// Config represents the complete pokai configuration
type Config struct {
	Game     *GameSettings     `hcl:"game,block"`
	Bot      *BotSettings      `hcl:"bot,block"`
	Log      *LogSettings      `hcl:"log,block"`
	Simulate *SimulateSettings `hcl:"simulate,block"`
}

// GameSettings describes the table and the deal
type GameSettings struct {
	Seats       int `hcl:"seats,optional"`
	HandSize    int `hcl:"hand_size,optional"`
	Kitty       int `hcl:"kitty,optional"`
	MaxAttempts int `hcl:"max_attempts,optional"`
}

// BotSettings tunes the decision engine
type BotSettings struct {
	WildRatio int      `hcl:"wild_ratio,optional"`
	LeadOrder []string `hcl:"lead_order,optional"`
}

// LogSettings contains logging settings
type LogSettings struct {
	Level string `hcl:"level,optional"`
	File  string `hcl:"file,optional"`
}

// SimulateSettings controls batch simulations
type SimulateSettings struct {
	Games   int    `hcl:"games,optional"`
	Workers int    `hcl:"workers,optional"`
	Seed    uint64 `hcl:"seed,optional"`
}

// Default returns the configuration used when no file is present
func Default() *Config {
	policy := bot.DefaultPolicy()
	order := make([]string, len(policy.LeadOrder))
	for i, s := range policy.LeadOrder {
		order[i] = s.String()
	}
	return &Config{
		Game: &GameSettings{
			Seats:       3,
			HandSize:    17,
			Kitty:       3,
			MaxAttempts: 3,
		},
		Bot: &BotSettings{
			WildRatio: policy.WildRatio,
			LeadOrder: order,
		},
		Log: &LogSettings{
			Level: "info",
		},
		Simulate: &SimulateSettings{
			Games:   1000,
			Workers: 4,
		},
	}
}

// Load reads configuration from an HCL file. A missing file yields the
// defaults; fields left out of the file keep their default values.
func Load(filename string) (*Config, error) {
	if _, err := os.Stat(filename); os.IsNotExist(err) {
		return Default(), nil
	}

	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL file: %s", diags.Error())
	}

	var config Config
	diags = gohcl.DecodeBody(file.Body, nil, &config)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode HCL: %s", diags.Error())
	}

	config.applyDefaults(Default())
	return &config, nil
}

func (c *Config) applyDefaults(defaults *Config) {
	if c.Game == nil {
		c.Game = defaults.Game
	}
	if c.Game.Seats == 0 {
		c.Game.Seats = defaults.Game.Seats
	}
	if c.Game.HandSize == 0 {
		c.Game.HandSize = defaults.Game.HandSize
	}
	if c.Game.MaxAttempts == 0 {
		c.Game.MaxAttempts = defaults.Game.MaxAttempts
	}
	// a zero kitty is meaningful, so kitty is only defaulted with its block

	if c.Bot == nil {
		c.Bot = defaults.Bot
	}
	if c.Bot.WildRatio == 0 {
		c.Bot.WildRatio = defaults.Bot.WildRatio
	}
	if len(c.Bot.LeadOrder) == 0 {
		c.Bot.LeadOrder = defaults.Bot.LeadOrder
	}

	if c.Log == nil {
		c.Log = defaults.Log
	}
	if c.Log.Level == "" {
		c.Log.Level = defaults.Log.Level
	}

	if c.Simulate == nil {
		c.Simulate = defaults.Simulate
	}
	if c.Simulate.Games == 0 {
		c.Simulate.Games = defaults.Simulate.Games
	}
	if c.Simulate.Workers == 0 {
		c.Simulate.Workers = defaults.Simulate.Workers
	}
}

// Policy converts the bot block into a decision policy
func (c *Config) Policy() (bot.Policy, error) {
	order, err := bot.ParseLeadOrder(c.Bot.LeadOrder)
	if err != nil {
		return bot.Policy{}, err
	}
	return bot.Policy{LeadOrder: order, WildRatio: c.Bot.WildRatio}, nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	g := c.Game
	if g.Seats < 2 {
		return fmt.Errorf("game: at least 2 seats required, got %d", g.Seats)
	}
	if g.HandSize < 1 {
		return fmt.Errorf("game: hand size must be positive")
	}
	if g.Kitty < 0 {
		return fmt.Errorf("game: kitty cannot be negative")
	}
	if g.Seats*g.HandSize+g.Kitty > card.DeckSize {
		return fmt.Errorf("game: %d seats of %d cards plus %d kitty exceeds the %d card deck",
			g.Seats, g.HandSize, g.Kitty, card.DeckSize)
	}
	if g.MaxAttempts < 1 {
		return fmt.Errorf("game: max attempts must be positive")
	}

	policy, err := c.Policy()
	if err != nil {
		return fmt.Errorf("bot: %w", err)
	}
	if err := policy.Validate(); err != nil {
		return fmt.Errorf("bot: %w", err)
	}

	validLogLevels := map[string]bool{
		"debug": true,
		"info":  true,
		"warn":  true,
		"error": true,
	}
	if !validLogLevels[c.Log.Level] {
		return fmt.Errorf("invalid log level: %s", c.Log.Level)
	}

	if c.Simulate.Games < 1 {
		return fmt.Errorf("simulate: games must be positive")
	}
	if c.Simulate.Workers < 1 {
		return fmt.Errorf("simulate: workers must be positive")
	}
	return nil
}
