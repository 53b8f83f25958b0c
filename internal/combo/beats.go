package combo

// Beats reports whether next legally beats prev. A pass never beats anything.
func Beats(prev, next Play) bool {
	if next.IsPass() {
		return false
	}
	if prev.IsPass() {
		return true
	}

	switch {
	case prev.Shape == JokerBomb:
		return false
	case next.Shape == JokerBomb:
		return true
	case next.IsBomb() && !prev.IsBomb():
		return true
	case prev.IsBomb() && !next.IsBomb():
		return false
	}

	return SameForm(prev, next) && prev.Anchor().Less(next.Anchor())
}

// SameForm reports whether two plays share shape, kicker count and core length,
// the conditions for comparing them by anchor.
func SameForm(a, b Play) bool {
	return a.Shape == b.Shape && a.Kickers == b.Kickers && a.CoreLen() == b.CoreLen()
}
