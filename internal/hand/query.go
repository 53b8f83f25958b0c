package hand

import (
	"slices"

	"github.com/lox/pokai/card"
	"github.com/lox/pokai/internal/combo"
)

// NoThreshold asks a query for the cheapest group regardless of rank.
var NoThreshold = card.Invalid

// WholeRun asks Straight for the full run instead of a fixed length.
const WholeRun = -1

// candidate is a rank whose cards can supply a group of some arity.
type candidate struct {
	rank  card.Rank
	cards []card.Card
}

// candidates returns ranks able to supply arity cards, ascending. Ranks held
// four times are only offered for arity 4 so bombs are never broken up.
func (h *Hand) candidates(arity int) []candidate {
	var out []candidate
	add := func(shape combo.Shape) {
		for _, g := range h.index.groups[shape] {
			out = append(out, candidate{rank: g[0].Rank, cards: g})
		}
	}
	switch arity {
	case 1, 2, 3:
		for n := arity; n <= 3; n++ {
			add(basicShapes[n])
		}
	case 4:
		add(combo.Quadruplet)
	}
	slices.SortFunc(out, func(a, b candidate) int { return int(a.rank) - int(b.rank) })
	return out
}

// lowest returns the cheapest arity cards above threshold from a rank not in
// exclude.
func (h *Hand) lowest(threshold card.Card, arity int, exclude ...card.Rank) ([]card.Card, bool) {
	for _, c := range h.candidates(arity) {
		if c.rank <= threshold.Rank || slices.Contains(exclude, c.rank) {
			continue
		}
		return slices.Clone(c.cards[:arity]), true
	}
	return nil, false
}

// lowestKicker prefers a rank holding exactly per cards and only breaks up a
// larger group when no such rank is left.
func (h *Hand) lowestKicker(per int, exclude []card.Rank) ([]card.Card, bool) {
	for _, g := range h.index.groups[basicShapes[per]] {
		if !slices.Contains(exclude, g[0].Rank) {
			return slices.Clone(g), true
		}
	}
	return h.lowest(NoThreshold, per, exclude...)
}

// kickerCards picks total kicker cards in groups of per, excluding ranks
// already used.
func (h *Hand) kickerCards(total, per int, used []card.Rank) ([]card.Card, bool) {
	var out []card.Card
	exclude := slices.Clone(used)
	for len(out) < total {
		k, ok := h.lowestKicker(per, exclude)
		if !ok {
			return nil, false
		}
		out = append(out, k...)
		exclude = append(exclude, k[0].Rank)
	}
	return out, true
}

// Basic returns the cheapest single, pair, triple or quadruplet whose rank
// exceeds threshold, carrying kickers kicker cards. Triples take 1 or 2
// kickers (a single or a pair), quadruplets take 2 or 4 (two singles or two
// pairs). Singles and pairs ignore kickers.
func (h *Hand) Basic(threshold card.Card, arity, kickers int) (combo.Play, bool) {
	if arity < 1 || arity > 4 {
		return combo.Play{}, false
	}
	shape := basicShapes[arity]
	if arity < 3 {
		kickers = 0
	}

	core, ok := h.lowest(threshold, arity)
	if !ok {
		return combo.Play{}, false
	}
	if kickers == 0 {
		return combo.NewPlay(shape, core, 0), true
	}

	var extra []card.Card
	switch {
	case arity == 3 && (kickers == 1 || kickers == 2):
		extra, ok = h.kickerCards(kickers, kickers, []card.Rank{core[0].Rank})
	case arity == 4 && (kickers == 2 || kickers == 4):
		extra, ok = h.kickerCards(kickers, kickers/2, []card.Rank{core[0].Rank})
	default:
		return combo.Play{}, false
	}
	if !ok {
		return combo.Play{}, false
	}
	return combo.NewPlay(shape, append(core, extra...), kickers), true
}

var runShapes = [...]combo.Shape{combo.Pass, combo.SingleStraight, combo.Tractor, combo.Plane}

// Straight returns the cheapest run of perRank cards per rank and length
// ranks whose anchor exceeds threshold. A length of WholeRun returns the
// entire stored run, or the remainder of it above threshold.
func (h *Hand) Straight(threshold card.Card, perRank, length int) (combo.Play, bool) {
	if perRank < 1 || perRank > 3 {
		return combo.Play{}, false
	}
	shape := runShapes[perRank]
	whole := length == WholeRun
	if whole {
		length = shape.MinLen()
	}
	need := length * perRank

	for _, run := range h.index.groups[shape] {
		if len(run) < need {
			continue
		}
		if run[0].Rank > threshold.Rank {
			if whole {
				return combo.NewPlay(shape, slices.Clone(run), 0), true
			}
			return combo.NewPlay(shape, slices.Clone(run[:need]), 0), true
		}
		// the run starts too low; look for a suffix starting above threshold
		for i := 0; i < len(run); i += perRank {
			if run[i].Rank <= threshold.Rank {
				continue
			}
			if len(run)-i < need {
				break
			}
			if whole {
				return combo.NewPlay(shape, slices.Clone(run[i:]), 0), true
			}
			return combo.NewPlay(shape, slices.Clone(run[i:i+need]), 0), true
		}
	}
	return combo.Play{}, false
}

// PlaneOfTriples returns the cheapest two-rank plane above threshold carrying
// kickerTotal kicker cards: 0, 2 singles or 2 pairs.
func (h *Hand) PlaneOfTriples(threshold card.Card, kickerTotal int) (combo.Play, bool) {
	core, ok := h.Straight(threshold, 3, combo.MinPlaneLen)
	if !ok {
		return combo.Play{}, false
	}
	if kickerTotal == 0 {
		return core, true
	}

	used := []card.Rank{core.Cards[0].Rank, core.Cards[3].Rank}
	var extra []card.Card
	switch kickerTotal {
	case 2:
		extra, ok = h.kickerCards(2, 1, used)
	case 4:
		extra, ok = h.kickerCards(4, 2, used)
	default:
		return combo.Play{}, false
	}
	if !ok {
		return combo.Play{}, false
	}
	return combo.NewPlay(combo.Plane, append(core.Cards, extra...), kickerTotal), true
}

// Wild returns the cheapest bomb that beats threshold: a quadruplet above it,
// or failing that the joker bomb.
func (h *Hand) Wild(threshold card.Card) (combo.Play, bool) {
	if quad, ok := h.lowest(threshold, 4); ok {
		return combo.NewPlay(combo.Quadruplet, quad, 0), true
	}
	if bombs := h.index.groups[combo.JokerBomb]; len(bombs) > 0 {
		return combo.NewPlay(combo.JokerBomb, slices.Clone(bombs[0]), 0), true
	}
	return combo.Play{}, false
}
