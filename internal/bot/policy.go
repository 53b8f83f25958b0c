package bot

import (
	"fmt"

	"github.com/lox/pokai/internal/combo"
)

// DefaultWildRatio is the cards-per-bomb ratio under which the bot bombs an
// opponent it cannot otherwise beat.
const DefaultWildRatio = 5

// Policy tunes the decision engine.
type Policy struct {
	// LeadOrder lists the shapes tried when leading, first match wins.
	// JokerBomb stands for "any bomb".
	LeadOrder []combo.Shape

	// WildRatio triggers the wild fallback when the previous player's
	// remaining count is at most WildRatio times the bombs held.
	WildRatio int
}

// DefaultPolicy sheds long shapes first and keeps bombs for last.
func DefaultPolicy() Policy {
	return Policy{
		LeadOrder: []combo.Shape{
			combo.Plane,
			combo.Tractor,
			combo.SingleStraight,
			combo.Triple,
			combo.Pair,
			combo.Single,
			combo.Quadruplet,
			combo.JokerBomb,
		},
		WildRatio: DefaultWildRatio,
	}
}

// ParseLeadOrder converts shape names into a lead order.
func ParseLeadOrder(names []string) ([]combo.Shape, error) {
	order := make([]combo.Shape, 0, len(names))
	for _, name := range names {
		s, err := combo.ParseShape(name)
		if err != nil {
			return nil, fmt.Errorf("lead order: %w", err)
		}
		if s == combo.Pass {
			return nil, fmt.Errorf("lead order: cannot lead with %q", name)
		}
		order = append(order, s)
	}
	return order, nil
}

// Validate checks the policy is usable.
func (p Policy) Validate() error {
	if len(p.LeadOrder) == 0 {
		return fmt.Errorf("lead order is empty")
	}
	if p.WildRatio < 0 {
		return fmt.Errorf("wild ratio must be non-negative, got %d", p.WildRatio)
	}
	return nil
}
