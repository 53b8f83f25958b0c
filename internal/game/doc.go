// Package game runs a Dou Dizhu game from the first lead to the seat that
// empties its hand.
//
// The main type is Engine, which owns the match state and asks each seat's
// Agent for a play in turn, checking it against the table before the agent
// removes the cards from its hand.
//
// # Basic Usage
//
// Seat two AI players and play to completion:
//
//	logger := log.New(os.Stderr)
//	agents := []game.Agent{
//	    game.NewAIAgent(bot.NewPlayer(0, hand.New(north), bot.DefaultPolicy(), logger)),
//	    game.NewAIAgent(bot.NewPlayer(1, hand.New(south), bot.DefaultPolicy(), logger)),
//	}
//	result, err := game.NewEngine(agents, logger).PlayGame(ctx)
//
// # Humans
//
// HumanAgent reads one line of card tokens per attempt. Lines that do not
// form a combination become a pass, and a refused play is offered again up
// to the configured number of attempts:
//
//	human := game.NewHumanAgent(hand.New(cards), os.Stdin, os.Stdout)
//	engine := game.NewEngine(agents, logger, game.WithMaxAttempts(3))
//
// # Architecture
//
// Engine delegates responsibilities to specialized components:
//   - match.State: Turn order, card counts and legality of each play
//   - bot.Player: Cheapest legal play for an AI seat
//   - history.Recorder: Transcript of accepted turns
//   - Observer: Synchronous turn, rejection and game over events
package game
