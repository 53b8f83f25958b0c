package combo

import (
	"errors"
	"fmt"
	"slices"

	"github.com/lox/pokai/card"
)

// ErrNotACombination is returned when cards form no recognized shape.
var ErrNotACombination = errors.New("not a combination")

// rankGroups partitions sorted cards by rank, ascending.
type rankGroups struct {
	ranks  []card.Rank
	byRank map[card.Rank][]card.Card
}

func groupByRank(cards []card.Card) rankGroups {
	g := rankGroups{byRank: make(map[card.Rank][]card.Card)}
	for _, c := range cards {
		if _, ok := g.byRank[c.Rank]; !ok {
			g.ranks = append(g.ranks, c.Rank)
		}
		g.byRank[c.Rank] = append(g.byRank[c.Rank], c)
	}
	slices.Sort(g.ranks)
	return g
}

func (g rankGroups) count(r card.Rank) int { return len(g.byRank[r]) }

// ranksWithCount returns ranks holding exactly n cards, ascending.
func (g rankGroups) ranksWithCount(n int) []card.Rank {
	var out []card.Rank
	for _, r := range g.ranks {
		if g.count(r) == n {
			out = append(out, r)
		}
	}
	return out
}

func (g rankGroups) collect(ranks []card.Rank) []card.Card {
	var out []card.Card
	for _, r := range ranks {
		out = append(out, g.byRank[r]...)
	}
	return out
}

// consecutive reports whether ranks form a gapless ascending run that stays
// within the straight ceiling.
func consecutive(ranks []card.Rank) bool {
	for i, r := range ranks {
		if r > StraightCeiling {
			return false
		}
		if i > 0 && ranks[i-1]+1 != r {
			return false
		}
	}
	return len(ranks) > 0
}

// Infer classifies cards typed in by a caller. An empty list is a pass.
func Infer(cards []card.Card) (Play, error) {
	if len(cards) == 0 {
		return PassPlay(NoSeat), nil
	}

	sorted := slices.Clone(cards)
	card.SortCards(sorted)
	for i, c := range sorted {
		if !c.Valid() {
			return Play{}, fmt.Errorf("%w: contains %v", ErrNotACombination, c)
		}
		if i > 0 && sorted[i-1] == c {
			return Play{}, fmt.Errorf("%w: duplicate card %s", ErrNotACombination, c)
		}
	}

	g := groupByRank(sorted)
	n := len(sorted)

	if n == 2 && sorted[0].Rank == card.LowJoker && sorted[1].Rank == card.HighJoker {
		return NewPlay(JokerBomb, sorted, 0), nil
	}

	if len(g.ranks) == 1 {
		shape := [...]Shape{Pass, Single, Pair, Triple, Quadruplet}
		if n <= 4 {
			return NewPlay(shape[n], sorted, 0), nil
		}
	}

	if p, ok := inferWithKickers(g, n); ok {
		return p, nil
	}
	if p, ok := inferRun(g, sorted); ok {
		return p, nil
	}
	if p, ok := inferPlaneWithKickers(g, n); ok {
		return p, nil
	}

	return Play{}, fmt.Errorf("%w: %v", ErrNotACombination, card.Strings(sorted))
}

// inferWithKickers recognizes triple+1, triple+pair, four+2 and four+2 pairs.
func inferWithKickers(g rankGroups, n int) (Play, bool) {
	if len(g.ranks) < 2 {
		return Play{}, false
	}
	for _, base := range []int{3, 4} {
		cores := g.ranksWithCount(base)
		if len(cores) != 1 {
			continue
		}
		core := g.byRank[cores[0]]
		var rest []card.Rank
		for _, r := range g.ranks {
			if r != cores[0] {
				rest = append(rest, r)
			}
		}
		kickers := g.collect(rest)

		switch {
		case base == 3 && n == 4:
		case base == 3 && n == 5 && len(rest) == 1:
		case base == 4 && n == 6:
		case base == 4 && n == 8 && len(rest) == 2 && g.count(rest[0]) == 2 && g.count(rest[1]) == 2:
		default:
			continue
		}
		shape := Triple
		if base == 4 {
			shape = Quadruplet
		}
		return NewPlay(shape, append(slices.Clone(core), kickers...), len(kickers)), true
	}
	return Play{}, false
}

// inferRun recognizes straights, tractors and bare planes.
func inferRun(g rankGroups, sorted []card.Card) (Play, bool) {
	per := g.count(g.ranks[0])
	for _, r := range g.ranks {
		if g.count(r) != per {
			return Play{}, false
		}
	}
	if !consecutive(g.ranks) {
		return Play{}, false
	}
	var shape Shape
	switch per {
	case 1:
		shape = SingleStraight
	case 2:
		shape = Tractor
	case 3:
		shape = Plane
	default:
		return Play{}, false
	}
	if len(g.ranks) < shape.MinLen() {
		return Play{}, false
	}
	return NewPlay(shape, sorted, 0), true
}

// inferPlaneWithKickers recognizes a plane core followed by one single or one
// pair per core rank.
func inferPlaneWithKickers(g rankGroups, n int) (Play, bool) {
	core := g.ranksWithCount(3)
	if len(core) < MinPlaneLen || !consecutive(core) {
		return Play{}, false
	}
	var rest []card.Rank
	for _, r := range g.ranks {
		if !slices.Contains(core, r) {
			rest = append(rest, r)
		}
	}
	kickers := g.collect(rest)
	k := len(core)

	switch {
	case n == 4*k && len(rest) == k:
		// every remaining rank contributes one card
	case n == 5*k && len(rest) == k && len(g.ranksWithCount(2)) == k:
	default:
		return Play{}, false
	}
	cards := append(g.collect(core), kickers...)
	return NewPlay(Plane, cards, len(kickers)), true
}
