// Package combo models classified groups of cards (plays) and the rules for
// recognizing and comparing them.
package combo

import "fmt"

// Shape is the structural category of a play.
type Shape uint8

const (
	Pass Shape = iota
	Single
	Pair
	Triple
	Quadruplet
	SingleStraight
	Tractor
	Plane
	JokerBomb
)

// Shapes lists every non-pass shape in index order.
var Shapes = []Shape{Single, Pair, Triple, Quadruplet, SingleStraight, Tractor, Plane, JokerBomb}

// Minimum number of ranks in a straight-like run.
const (
	MinStraightLen = 5
	MinTractorLen  = 3
	MinPlaneLen    = 2
)

func (s Shape) String() string {
	switch s {
	case Pass:
		return "pass"
	case Single:
		return "single"
	case Pair:
		return "pair"
	case Triple:
		return "triple"
	case Quadruplet:
		return "quadruplet"
	case SingleStraight:
		return "straight"
	case Tractor:
		return "tractor"
	case Plane:
		return "plane"
	case JokerBomb:
		return "joker-bomb"
	default:
		return fmt.Sprintf("shape(%d)", uint8(s))
	}
}

// ParseShape is the inverse of String.
func ParseShape(name string) (Shape, error) {
	for _, s := range append([]Shape{Pass}, Shapes...) {
		if s.String() == name {
			return s, nil
		}
	}
	return Pass, fmt.Errorf("unknown shape %q", name)
}

// PerRank returns how many core cards each rank contributes to the shape.
func (s Shape) PerRank() int {
	switch s {
	case Single, SingleStraight:
		return 1
	case Pair, Tractor:
		return 2
	case Triple, Plane:
		return 3
	case Quadruplet:
		return 4
	case JokerBomb:
		return 1
	case Pass:
		return 0
	}
	return 0
}

// IsRun reports whether the shape spans consecutive ranks.
func (s Shape) IsRun() bool {
	switch s {
	case SingleStraight, Tractor, Plane:
		return true
	case Pass, Single, Pair, Triple, Quadruplet, JokerBomb:
		return false
	}
	return false
}

// MinLen returns the minimum number of ranks for run shapes, 1 otherwise.
func (s Shape) MinLen() int {
	switch s {
	case SingleStraight:
		return MinStraightLen
	case Tractor:
		return MinTractorLen
	case Plane:
		return MinPlaneLen
	case Pass, Single, Pair, Triple, Quadruplet, JokerBomb:
		return 1
	}
	return 1
}
