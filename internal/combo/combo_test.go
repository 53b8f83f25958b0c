package combo

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lox/pokai/card"
)

func mustInfer(t *testing.T, tokens ...string) Play {
	t.Helper()
	p, err := Infer(card.MustParseCards(tokens...))
	require.NoError(t, err)
	return p
}

func TestInfer(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name    string
		tokens  []string
		shape   Shape
		kickers int
		anchor  string
		coreLen int
	}{
		{"single", []string{"9h"}, Single, 0, "9h", 1},
		{"single joker", []string{"Z1"}, Single, 0, "Z1", 1},
		{"pair", []string{"4s", "4h"}, Pair, 0, "4h", 1},
		{"triple", []string{"Jc", "Jh", "Jd"}, Triple, 0, "Jh", 1},
		{"quadruplet", []string{"0s", "0c", "0d", "0h"}, Quadruplet, 0, "0h", 1},
		{"joker bomb", []string{"Z1", "Z0"}, JokerBomb, 0, "Z0", 2},
		{"straight", []string{"7c", "3h", "4d", "5c", "6s"}, SingleStraight, 0, "3h", 5},
		{"straight to ace", []string{"0h", "Jd", "Qc", "Ks", "Ah"}, SingleStraight, 0, "0h", 5},
		{"tractor", []string{"3h", "3d", "4c", "4s", "5s", "5c"}, Tractor, 0, "3h", 3},
		{"plane", []string{"8s", "8d", "8c", "9s", "9d", "9c"}, Plane, 0, "8d", 2},
		{"triple with single", []string{"Jh", "Jd", "Jc", "4c"}, Triple, 1, "Jh", 1},
		{"triple with pair", []string{"5h", "5d", "5c", "4c", "4s"}, Triple, 2, "5h", 1},
		{"four with two", []string{"7h", "7d", "7c", "7s", "3h", "Z0"}, Quadruplet, 2, "7h", 1},
		{"four with two pairs", []string{"4s", "4c", "4d", "4h", "3h", "3s", "5h", "5s"}, Quadruplet, 4, "4h", 1},
		{"plane with singles", []string{"3h", "3d", "3c", "4d", "4s", "4c", "5h", "6d"}, Plane, 2, "3h", 2},
		{"plane with pairs", []string{"3h", "3d", "3c", "4d", "4s", "4c", "5h", "5d", "6d", "6s"}, Plane, 4, "3h", 2},
	}

	for _, testCase := range tests {
		tc := testCase
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			p := mustInfer(t, tc.tokens...)
			assert.Equal(t, tc.shape, p.Shape)
			assert.Equal(t, tc.kickers, p.Kickers)
			assert.Equal(t, tc.anchor, p.Anchor().String())
			assert.Equal(t, tc.coreLen, p.CoreLen())
			assert.Len(t, p.Cards, len(tc.tokens))
			assert.Equal(t, NoSeat, p.Seat)
		})
	}
}

func TestInferRejects(t *testing.T) {
	t.Parallel()
	tests := map[string][]string{
		"two different ranks":     {"3h", "4h"},
		"short straight":          {"3h", "4d", "5c", "6s"},
		"straight through two":    {"Jh", "Qd", "Kc", "As", "2h"},
		"gap in straight":         {"3h", "4d", "5c", "6s", "8h"},
		"short tractor":           {"3h", "3d", "4c", "4s"},
		"tractor with two":        {"Kh", "Kd", "Ac", "As", "2s", "2c"},
		"plane wrong kickers":     {"3h", "3d", "3c", "4d", "4s", "4c", "5h"},
		"mixed kicker kinds":      {"3h", "3d", "3c", "4d", "4s", "4c", "5h", "6d", "6s"},
		"four with one":           {"7h", "7d", "7c", "7s", "3h"},
		"triple with two singles": {"5h", "5d", "5c", "4c", "6s"},
	}
	for name, tokens := range tests {
		_, err := Infer(card.MustParseCards(tokens...))
		assert.ErrorIs(t, err, ErrNotACombination, name)
	}

	_, err := Infer([]card.Card{card.Invalid})
	assert.True(t, errors.Is(err, ErrNotACombination))

	dup := card.MustParseCards("3h", "3h")
	_, err = Infer(dup)
	assert.ErrorIs(t, err, ErrNotACombination)
}

func TestInferEmptyIsPass(t *testing.T) {
	t.Parallel()
	p, err := Infer(nil)
	require.NoError(t, err)
	assert.True(t, p.IsPass())
	assert.Equal(t, card.Invalid, p.Anchor())
}

func TestBombs(t *testing.T) {
	t.Parallel()
	assert.True(t, mustInfer(t, "0s", "0c", "0d", "0h").IsBomb())
	assert.True(t, mustInfer(t, "Z0", "Z1").IsBomb())
	assert.False(t, mustInfer(t, "7h", "7d", "7c", "7s", "3h", "Z0").IsBomb())
	assert.False(t, mustInfer(t, "Jc", "Jh", "Jd").IsBomb())
}

func TestBeats(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name string
		prev []string
		next []string
		want bool
	}{
		{"higher single", []string{"8c"}, []string{"9h"}, true},
		{"equal single", []string{"8c"}, []string{"8h"}, false},
		{"two beats ace", []string{"Ac"}, []string{"2h"}, true},
		{"pair cannot beat single", []string{"8c"}, []string{"9h", "9d"}, false},
		{"kicker count must match", []string{"5h", "5d", "5c", "4c"}, []string{"7h", "7d", "7c", "4s", "4h"}, false},
		{"same kicker count", []string{"5h", "5d", "5c", "4c"}, []string{"7h", "7d", "7c", "3s"}, true},
		{"straight length must match", []string{"3h", "4d", "5c", "6s", "7h"}, []string{"4h", "5d", "6c", "7s", "8h", "9h"}, false},
		{"longer anchor straight", []string{"3h", "4d", "5c", "6s", "7h"}, []string{"4h", "5d", "6c", "7s", "8h"}, true},
		{"bomb beats straight", []string{"3h", "4d", "5c", "6s", "7h"}, []string{"4s", "4c", "4d", "4h"}, true},
		{"higher bomb", []string{"4s", "4c", "4d", "4h"}, []string{"5s", "5c", "5d", "5h"}, true},
		{"lower bomb", []string{"5s", "5c", "5d", "5h"}, []string{"4s", "4c", "4d", "4h"}, false},
		{"joker bomb beats bomb", []string{"2s", "2c", "2d", "2h"}, []string{"Z0", "Z1"}, true},
		{"nothing beats joker bomb", []string{"Z0", "Z1"}, []string{"2s", "2c", "2d", "2h"}, false},
		{"single cannot beat bomb", []string{"3s", "3c", "3d", "3h"}, []string{"Z1"}, false},
	}

	for _, testCase := range tests {
		tc := testCase
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			prev := mustInfer(t, tc.prev...)
			next := mustInfer(t, tc.next...)
			assert.Equal(t, tc.want, Beats(prev, next))
		})
	}

	assert.False(t, Beats(mustInfer(t, "3h"), PassPlay(0)))
	assert.True(t, Beats(PassPlay(0), mustInfer(t, "3h")))
}

func TestShapeNames(t *testing.T) {
	t.Parallel()
	for _, s := range append([]Shape{Pass}, Shapes...) {
		parsed, err := ParseShape(s.String())
		require.NoError(t, err)
		assert.Equal(t, s, parsed)
	}
	_, err := ParseShape("rocket")
	assert.Error(t, err)
}

func TestPlayString(t *testing.T) {
	t.Parallel()
	p := mustInfer(t, "5h", "5d", "5c", "4c", "4s")
	assert.Equal(t, "triple [5h 5d 5c + 4s 4c]", p.String())
	assert.Equal(t, "pass", PassPlay(1).String())
}
