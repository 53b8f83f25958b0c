package hand

import (
	"slices"

	"github.com/lox/pokai/card"
	"github.com/lox/pokai/internal/combo"
)

// Index maps each shape to the maximal groups of that shape realizable from a
// multiset of cards, ascending by anchor rank. It is a pure function of the
// multiset.
type Index struct {
	groups [combo.JokerBomb + 1][][]card.Card
}

// basicShapes maps a rank's card count to the shape it is filed under.
var basicShapes = [...]combo.Shape{combo.Pass, combo.Single, combo.Pair, combo.Triple, combo.Quadruplet}

// Classify builds the index for cards from scratch.
func Classify(cards []card.Card) Index {
	var byRank [card.NumRanks][]card.Card
	sorted := slices.Clone(cards)
	card.SortCards(sorted)
	for _, c := range sorted {
		if c.Valid() {
			byRank[c.Rank] = append(byRank[c.Rank], c)
		}
	}

	var idx Index
	idx.classifyBasics(&byRank)
	idx.classifyRuns(&byRank, combo.SingleStraight)
	idx.classifyRuns(&byRank, combo.Tractor)
	idx.classifyJokers(&byRank)
	return idx
}

func (idx *Index) add(shape combo.Shape, group []card.Card) {
	idx.groups[shape] = append(idx.groups[shape], group)
}

func (idx *Index) classifyBasics(byRank *[card.NumRanks][]card.Card) {
	for r := card.MinRank; r <= card.MaxRank; r++ {
		group := byRank[r]
		if len(group) == 0 {
			continue
		}
		idx.add(basicShapes[len(group)], group)

		// two adjacent triples form a plane core
		next := r + 1
		if next <= combo.StraightCeiling && len(group) == 3 && len(byRank[next]) == 3 {
			idx.add(combo.Plane, slices.Concat(group, byRank[next]))
		}
	}
}

// classifyRuns records maximal, non-overlapping runs where every rank
// contributes at least shape.PerRank() cards.
func (idx *Index) classifyRuns(byRank *[card.NumRanks][]card.Card, shape combo.Shape) {
	need := shape.PerRank()
	for r := card.MinRank; r <= combo.StraightCeiling; r++ {
		end := r
		for end <= combo.StraightCeiling && len(byRank[end]) >= need {
			end++
		}
		if int(end-r) >= shape.MinLen() {
			run := make([]card.Card, 0, int(end-r)*need)
			for x := r; x < end; x++ {
				run = append(run, byRank[x][:need]...)
			}
			idx.add(shape, run)
		}
		if end > r {
			r = end - 1
		}
	}
}

func (idx *Index) classifyJokers(byRank *[card.NumRanks][]card.Card) {
	low, high := byRank[card.LowJoker], byRank[card.HighJoker]
	if len(low) > 0 && len(high) > 0 {
		idx.add(combo.JokerBomb, []card.Card{low[0], high[0]})
	}
}

// Groups returns a copy of the groups filed under shape.
func (idx Index) Groups(shape combo.Shape) [][]card.Card {
	if int(shape) >= len(idx.groups) {
		return nil
	}
	out := make([][]card.Card, len(idx.groups[shape]))
	for i, g := range idx.groups[shape] {
		out[i] = slices.Clone(g)
	}
	return out
}

// Equal reports whether two indexes hold identical groups.
func (idx Index) Equal(other Index) bool {
	for s := range idx.groups {
		a, b := idx.groups[s], other.groups[s]
		if len(a) != len(b) {
			return false
		}
		for i := range a {
			if !slices.Equal(a[i], b[i]) {
				return false
			}
		}
	}
	return true
}
