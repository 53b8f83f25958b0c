// Package bot implements the automated opponent: it always plays the cheapest
// combination that satisfies the table, falling back to bombs when an
// opponent is close to going out.
package bot

import (
	"github.com/charmbracelet/log"

	"github.com/lox/pokai/internal/combo"
	"github.com/lox/pokai/internal/hand"
	"github.com/lox/pokai/internal/match"
)

// Player is an AI seat
type Player struct {
	Seat   int
	Hand   *hand.Hand
	Policy Policy
	logger *log.Logger
}

// NewPlayer creates a bot for seat holding h
func NewPlayer(seat int, h *hand.Hand, policy Policy, logger *log.Logger) *Player {
	return &Player{
		Seat:   seat,
		Hand:   h,
		Policy: policy,
		logger: logger.WithPrefix("bot").With("seat", seat),
	}
}

// Decide returns the seat's next play for state, a pass when nothing fits.
func (p *Player) Decide(state *match.State) combo.Play {
	var (
		play combo.Play
		ok   bool
	)
	if state.IsLeading(p.Seat) {
		play, ok = p.LeadingPlay()
	} else {
		prev, _ := state.Prev()
		play, ok = p.FollowingPlay(prev, state.Counts())
	}
	if !ok {
		return combo.PassPlay(p.Seat)
	}
	return play
}

// LeadingPlay returns the first shape in the lead order the hand can form.
func (p *Player) LeadingPlay() (combo.Play, bool) {
	for _, shape := range p.Policy.LeadOrder {
		if play, ok := p.lead(shape); ok {
			p.logger.Debug("Leading", "shape", shape, "play", play)
			return play.WithSeat(p.Seat), true
		}
	}
	return combo.Play{}, false
}

func (p *Player) lead(shape combo.Shape) (combo.Play, bool) {
	h := p.Hand
	switch shape {
	case combo.Single, combo.Pair:
		return h.Basic(hand.NoThreshold, shape.PerRank(), 0)
	case combo.Triple:
		return withKickers([]int{2, 1, 0}, func(k int) (combo.Play, bool) {
			return h.Basic(hand.NoThreshold, 3, k)
		})
	case combo.Plane:
		return withKickers([]int{2, 4, 0}, func(k int) (combo.Play, bool) {
			return h.PlaneOfTriples(hand.NoThreshold, k)
		})
	case combo.SingleStraight, combo.Tractor:
		return h.Straight(hand.NoThreshold, shape.PerRank(), hand.WholeRun)
	case combo.Quadruplet:
		return h.Basic(hand.NoThreshold, 4, 0)
	case combo.JokerBomb:
		return h.Wild(hand.NoThreshold)
	case combo.Pass:
	}
	return combo.Play{}, false
}

// withKickers runs query with each kicker count in turn, first hit wins.
func withKickers(kickers []int, query func(int) (combo.Play, bool)) (combo.Play, bool) {
	for _, k := range kickers {
		if play, ok := query(k); ok {
			return play, true
		}
	}
	return combo.Play{}, false
}

// FollowingPlay returns the cheapest play that beats prev. remaining holds
// every seat's card count and feeds the wild fallback.
func (p *Player) FollowingPlay(prev combo.Play, remaining []int) (combo.Play, bool) {
	play, ok := p.follow(prev)
	if !ok {
		play, ok = p.withWildFallback(prev, remaining)
	}
	p.logger.Debug("Following", "prev", prev, "play", play, "found", ok)
	if !ok {
		return combo.Play{}, false
	}
	return play.WithSeat(p.Seat), true
}

func (p *Player) follow(prev combo.Play) (combo.Play, bool) {
	h := p.Hand
	anchor := prev.Anchor()
	switch prev.Shape {
	case combo.Pass:
		return p.LeadingPlay()
	case combo.Single, combo.Pair:
		return h.Basic(anchor, prev.Shape.PerRank(), 0)
	case combo.Triple:
		return h.Basic(anchor, 3, prev.Kickers)
	case combo.SingleStraight, combo.Tractor:
		return h.Straight(anchor, prev.Shape.PerRank(), prev.CoreLen())
	case combo.Plane:
		if prev.CoreLen() != combo.MinPlaneLen {
			return combo.Play{}, false
		}
		return h.PlaneOfTriples(anchor, prev.Kickers)
	case combo.Quadruplet:
		if prev.Kickers == 0 {
			return h.Wild(anchor)
		}
		return h.Basic(anchor, 4, prev.Kickers)
	case combo.JokerBomb:
	}
	return combo.Play{}, false
}

// withWildFallback bombs a non-bomb play when its owner is close to going
// out relative to the bombs we hold.
func (p *Player) withWildFallback(prev combo.Play, remaining []int) (combo.Play, bool) {
	if prev.IsPass() || prev.IsBomb() {
		return combo.Play{}, false
	}
	if prev.Seat < 0 || prev.Seat >= len(remaining) {
		return combo.Play{}, false
	}
	if remaining[prev.Seat] > p.Policy.WildRatio*p.Hand.NumWild() {
		return combo.Play{}, false
	}
	return p.Hand.Wild(hand.NoThreshold)
}

// Commit removes a play's cards from the hand once the table accepted it.
func (p *Player) Commit(play combo.Play) error {
	if play.IsPass() {
		return nil
	}
	return p.Hand.MustRemove(play.Cards...)
}
