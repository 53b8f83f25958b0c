package bot

import (
	"io"
	"math/rand/v2"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lox/pokai/card"
	"github.com/lox/pokai/internal/combo"
	"github.com/lox/pokai/internal/hand"
	"github.com/lox/pokai/internal/match"
)

func testLogger() *log.Logger {
	return log.NewWithOptions(io.Discard, log.Options{Level: log.DebugLevel})
}

func newBot(seat int, tokens ...string) *Player {
	return NewPlayer(seat, hand.New(card.MustParseCards(tokens...)), DefaultPolicy(), testLogger())
}

func prevPlay(t *testing.T, seat int, tokens ...string) combo.Play {
	t.Helper()
	p, err := combo.Infer(card.MustParseCards(tokens...))
	require.NoError(t, err)
	return p.WithSeat(seat)
}

var sampleHand = []string{
	"3h", "4s", "4h", "5d", "6s", "7c", "9h", "9d", "0c",
	"Jh", "Jc", "Ks", "Kd", "Ac", "Ah", "2c", "2d",
}

func TestFollowSingle(t *testing.T) {
	t.Parallel()
	b := newBot(0, sampleHand...)

	play, ok := b.FollowingPlay(prevPlay(t, 1, "8c"), []int{17, 16, 17})
	require.True(t, ok)
	assert.Equal(t, combo.Single, play.Shape)
	assert.Equal(t, card.Nine, play.Anchor().Rank)
	assert.Equal(t, 0, play.Seat)
}

func TestLeadingOrder(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name string
		hand []string
		want string
	}{
		{"straight before pairs", sampleHand, "straight [3h 4h 5d 6s 7c]"},
		{"plane with singles", []string{"3h", "3d", "3c", "4h", "4d", "4c", "8s", "9s", "Kh"}, "plane [3h 3d 3c 4h 4d 4c + 8s 9s]"},
		{"tractor", []string{"5h", "5d", "6h", "6d", "7h", "7d", "Kh"}, "tractor [5h 5d 6h 6d 7h 7d]"},
		{"triple prefers pair kicker", []string{"5h", "5d", "5c", "3h", "3d", "9s"}, "triple [5h 5d 5c + 3h 3d]"},
		{"triple with single", []string{"5h", "5d", "5c", "9s"}, "triple [5h 5d 5c + 9s]"},
		{"pair before single", []string{"3h", "8h", "8d"}, "pair [8h 8d]"},
		{"single", []string{"Kh", "3d"}, "single [3d]"},
		{"bomb last", []string{"6h", "6d", "6s", "6c"}, "quadruplet [6h 6d 6s 6c]"},
		{"jokers lead as singles", []string{"Z0", "Z1"}, "single [Z0]"},
	}
	for _, testCase := range tests {
		tc := testCase
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			play, ok := newBot(2, tc.hand...).LeadingPlay()
			require.True(t, ok)
			assert.Equal(t, tc.want, play.String())
			assert.Equal(t, 2, play.Seat)
		})
	}
}

func TestLeadsLowestSingleBeforeJokers(t *testing.T) {
	t.Parallel()
	play, ok := newBot(0, "Z0", "Z1", "4h").LeadingPlay()
	require.True(t, ok)
	assert.Equal(t, "single [4h]", play.String())
}

func TestWildFallback(t *testing.T) {
	t.Parallel()
	prev := prevPlay(t, 1, "Kh", "Kd")

	b := newBot(0, "8h", "9h", "6h", "6d", "6s", "6c")
	play, ok := b.FollowingPlay(prev, []int{6, 3, 17})
	require.True(t, ok, "opponent close to going out")
	assert.Equal(t, combo.Quadruplet, play.Shape)
	assert.True(t, combo.Beats(prev, play))

	_, ok = b.FollowingPlay(prev, []int{6, 6, 17})
	assert.False(t, ok, "opponent still has plenty of cards")

	b = newBot(0, "8h", "9h", "3h", "3d")
	_, ok = b.FollowingPlay(prev, []int{4, 1, 17})
	assert.False(t, ok, "no bombs to fall back on")
}

func TestFollowBombs(t *testing.T) {
	t.Parallel()
	b := newBot(0, "7h", "7d", "7s", "7c", "Z0", "Z1")

	play, ok := b.FollowingPlay(prevPlay(t, 1, "5h", "5d", "5s", "5c"), []int{6, 10, 10})
	require.True(t, ok)
	assert.Equal(t, "quadruplet [7h 7d 7s 7c]", play.String())

	play, ok = b.FollowingPlay(prevPlay(t, 1, "8h", "8d", "8s", "8c"), []int{6, 10, 10})
	require.True(t, ok)
	assert.Equal(t, combo.JokerBomb, play.Shape)

	_, ok = b.FollowingPlay(prevPlay(t, 1, "Z0", "Z1"), []int{6, 1, 10})
	assert.False(t, ok)
}

func TestFollowQuadWithKickers(t *testing.T) {
	t.Parallel()
	b := newBot(0, "7h", "7d", "7s", "7c", "8h", "9h")
	prev := prevPlay(t, 1, "5h", "5d", "5s", "5c", "3h", "4h")

	play, ok := b.FollowingPlay(prev, []int{6, 10, 10})
	require.True(t, ok)
	assert.Equal(t, "quadruplet [7h 7d 7s 7c + 8h 9h]", play.String())
}

func TestFollowRuns(t *testing.T) {
	t.Parallel()
	b := newBot(0, "4h", "5h", "6h", "7h", "8h", "9h", "5d", "6d", "7d")

	play, ok := b.FollowingPlay(prevPlay(t, 1, "3c", "4c", "5c", "6c", "7c"), []int{9, 10, 10})
	require.True(t, ok)
	assert.Equal(t, "straight [4h 5h 6h 7h 8h]", play.String())

	_, ok = b.FollowingPlay(prevPlay(t, 1, "3c", "4c", "5c", "6c", "7c", "8c", "9c"), []int{9, 10, 10})
	assert.False(t, ok, "straight length must match")

	play, ok = b.FollowingPlay(prevPlay(t, 1, "3c", "3s", "4c", "4s", "5c", "5s"), []int{9, 10, 10})
	require.True(t, ok)
	assert.Equal(t, combo.Tractor, play.Shape)
	assert.Equal(t, card.Five, play.Anchor().Rank)
}

func TestFollowPlanes(t *testing.T) {
	t.Parallel()
	b := newBot(0, "5h", "5d", "5c", "6h", "6d", "6c", "7h", "7d", "7c", "9s", "0s")

	play, ok := b.FollowingPlay(prevPlay(t, 1, "3h", "3d", "3c", "4h", "4d", "4c", "8h", "Jh"), []int{11, 10, 10})
	require.True(t, ok)
	assert.Equal(t, "plane [5h 5d 5c 6h 6d 6c + 9s 0s]", play.String())

	prev := prevPlay(t, 1, "8h", "8d", "8s", "9h", "9d", "9s", "0h", "0d", "0c")
	_, ok = b.FollowingPlay(prev, []int{11, 10, 10})
	assert.False(t, ok, "three-rank planes have no cheaper answer")
}

func TestFollowTripleNone(t *testing.T) {
	t.Parallel()
	b := newBot(0, "5h", "5d", "5c", "7h", "8d", "9s")
	_, ok := b.FollowingPlay(prevPlay(t, 1, "6h", "6d", "6c", "3s"), []int{6, 10, 10})
	assert.False(t, ok)
}

func TestDecide(t *testing.T) {
	t.Parallel()
	b := newBot(0, "3h", "9d", "9s")
	state := match.New(3, 3, 3)

	play := b.Decide(state)
	assert.Equal(t, "pair [9d 9s]", play.String())
	require.NoError(t, state.Record(play))
	require.NoError(t, b.Commit(play))
	assert.Equal(t, 1, b.Hand.Len())
	state.Advance()

	other := newBot(1, "4h", "5h", "6h")
	assert.True(t, other.Decide(state).IsPass())

	require.ErrorIs(t, b.Commit(prevPlay(t, 0, "Ah")), hand.ErrCardNotInHand)
	assert.NoError(t, b.Commit(combo.PassPlay(0)))
}

func TestParseLeadOrder(t *testing.T) {
	t.Parallel()
	order, err := ParseLeadOrder([]string{"single", "joker-bomb"})
	require.NoError(t, err)
	assert.Equal(t, []combo.Shape{combo.Single, combo.JokerBomb}, order)

	_, err = ParseLeadOrder([]string{"pass"})
	assert.Error(t, err)
	_, err = ParseLeadOrder([]string{"rocket"})
	assert.Error(t, err)

	assert.NoError(t, DefaultPolicy().Validate())
	assert.Error(t, Policy{}.Validate())
	assert.Error(t, Policy{LeadOrder: order, WildRatio: -1}.Validate())
}

// Every play the bot produces is a well-formed combination it holds, and
// every following play beats what it answers.
func TestPlaysAreLegal(t *testing.T) {
	t.Parallel()
	for seed := uint64(0); seed < 200; seed++ {
		deck := card.NewDeck(rand.New(rand.NewPCG(seed, 7)))
		bots := make([]*Player, 3)
		for i := range bots {
			bots[i] = NewPlayer(i, hand.New(deck.Deal(17)), DefaultPolicy(), testLogger())
		}
		remaining := []int{17, 17, 17}

		for i, b := range bots {
			lead, ok := b.LeadingPlay()
			require.True(t, ok)
			assertWellFormed(t, b, lead)

			for j, other := range bots {
				if i == j {
					continue
				}
				reply, ok := other.FollowingPlay(lead, remaining)
				if !ok {
					continue
				}
				assertWellFormed(t, other, reply)
				assert.True(t, combo.Beats(lead, reply), "seed %d: %s over %s", seed, reply, lead)
			}
		}
	}
}

func assertWellFormed(t *testing.T, b *Player, play combo.Play) {
	t.Helper()
	require.True(t, b.Hand.ContainsAll(play.Cards), "%s not held", play)
	inferred, err := combo.Infer(play.Cards)
	require.NoError(t, err, "%s", play)
	assert.Equal(t, play.Shape, inferred.Shape, "%s", play)
	assert.Equal(t, play.Kickers, inferred.Kickers, "%s", play)
	assert.Equal(t, play.Anchor(), inferred.Anchor(), "%s", play)
	assert.Equal(t, b.Seat, play.Seat)
}
