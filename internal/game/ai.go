package game

import (
	"github.com/lox/pokai/card"
	"github.com/lox/pokai/internal/bot"
	"github.com/lox/pokai/internal/combo"
)

// AIAgent plays a seat with the decision engine
type AIAgent struct {
	player *bot.Player
}

// NewAIAgent wraps a bot player as an agent
func NewAIAgent(player *bot.Player) *AIAgent {
	return &AIAgent{player: player}
}

// MakeDecision asks the bot for the cheapest satisfying play
func (a *AIAgent) MakeDecision(view View) Decision {
	var (
		play      combo.Play
		ok        bool
		reasoning string
	)
	if view.Leading {
		play, ok = a.player.LeadingPlay()
		reasoning = "lead cheapest shape"
	} else {
		play, ok = a.player.FollowingPlay(view.Prev, view.Remaining)
		reasoning = "beat " + view.Prev.String()
	}
	if !ok {
		return Decision{Play: combo.PassPlay(view.Seat), Reasoning: "nothing beats " + view.Prev.String()}
	}
	return Decision{Play: play, Reasoning: reasoning}
}

// Commit removes the play from the bot's hand
func (a *AIAgent) Commit(play combo.Play) error {
	return a.player.Commit(play)
}

// Cards returns the bot's remaining cards
func (a *AIAgent) Cards() []card.Card {
	return a.player.Hand.Cards()
}
