package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lox/pokai/card"
	"github.com/lox/pokai/internal/config"
	"github.com/lox/pokai/internal/handfile"
)

func writeHand(t *testing.T, name, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestLoadHandsGivesAIRestOfDeck(t *testing.T) {
	t.Parallel()
	a := writeHand(t, "a.txt", "3h\n4h\n# comment\n5h\n")
	b := writeHand(t, "b.txt", "Z0\nZ1\n")

	hands, err := loadHands([]string{a, b})
	require.NoError(t, err)
	require.Len(t, hands, 3)
	assert.Len(t, hands[0], card.DeckSize-5)
	assert.Equal(t, card.MustParseCards("3h", "4h", "5h"), hands[1])
	assert.Empty(t, handfile.Overlap(hands...))
}

func TestLoadHandsRejectsOverlap(t *testing.T) {
	t.Parallel()
	a := writeHand(t, "a.txt", "3h\n4h\n")
	b := writeHand(t, "b.txt", "4h\n")

	_, err := loadHands([]string{a, b})
	assert.ErrorIs(t, err, handfile.ErrDuplicateCard)
}

func TestDealGivesKittyToSeatZero(t *testing.T) {
	t.Parallel()
	settings := config.Default().Game
	hands, kitty := deal(settings, 7)
	require.Len(t, hands, 3)
	assert.Len(t, hands[0], 20)
	assert.Len(t, hands[1], 17)
	assert.Len(t, hands[2], 17)
	assert.Equal(t, kitty, hands[0][17:])

	again, _ := deal(settings, 7)
	assert.Equal(t, hands, again)
}

func TestLineCounter(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	lc := &lineCounter{w: &buf}
	_, err := lc.Write([]byte("one\ntwo\nthree"))
	require.NoError(t, err)
	assert.Equal(t, 2, lc.n)
	assert.Equal(t, "one\ntwo\nthree", buf.String())
}
