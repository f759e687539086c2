package movetable_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"keywalk/internal/keypad"
	"keywalk/internal/movetable"
	"keywalk/internal/piece"
)

func referenceLayout(t *testing.T) *keypad.Layout {
	t.Helper()
	l, err := keypad.ParseRows('_', []string{
		"ABCDE",
		"FGHIJ",
		"KLMNO",
		"_123_",
	})
	require.NoError(t, err)
	return l
}

func TestBuild(t *testing.T) {
	l := referenceLayout(t)
	table := movetable.Build(l, piece.Knight{})

	// One entry per live key, none for the sentinel.
	assert.Len(t, table, 18)
	_, found := table['_']
	assert.False(t, found)

	moves, err := table.Moves('A')
	require.NoError(t, err)
	assert.ElementsMatch(t, []keypad.Offset{{1, 2}, {2, 1}}, moves)

	moves, err = table.Moves('M')
	require.NoError(t, err)
	assert.ElementsMatch(t,
		[]keypad.Offset{{-2, -1}, {-2, 1}, {-1, -2}, {-1, 2}}, moves)
}

func TestMovesUnknownKey(t *testing.T) {
	l := referenceLayout(t)
	table := movetable.Build(l, piece.Knight{})

	_, err := table.Moves('_')
	assert.ErrorIs(t, err, movetable.ErrUnknownKey)

	_, err = table.Moves('z')
	assert.ErrorIs(t, err, movetable.ErrUnknownKey)
}

func TestBuildIsIdempotent(t *testing.T) {
	l := referenceLayout(t)
	first := movetable.Build(l, piece.Knight{})
	second := movetable.Build(l, piece.Knight{})
	assert.Equal(t, first, second)
}

func TestBuildDuplicateKeyLastCellWins(t *testing.T) {
	// X appears twice: on the edge (0,0) and in the open row below (1,1).
	// The table is keyed by key, so the later cell's legality replaces the
	// edge cell's.
	l, err := keypad.ParseRows('_', []string{
		"XAB",
		"CXD",
		"EFG",
	})
	require.NoError(t, err)
	table := movetable.Build(l, piece.King{})

	moves, err := table.Moves('X')
	require.NoError(t, err)
	// All 8 king moves are legal from (1,1); only 3 would be from (0,0).
	assert.Len(t, moves, 8)
}

func TestDeadEndKeyHasEmptyEntry(t *testing.T) {
	// A 1x2 layout leaves a knight with no legal move anywhere, but both
	// keys still get (empty) entries.
	l, err := keypad.ParseRows('_', []string{"AB"})
	require.NoError(t, err)
	table := movetable.Build(l, piece.Knight{})

	for _, key := range []keypad.Key{'A', 'B'} {
		moves, err := table.Moves(key)
		require.NoError(t, err)
		assert.Empty(t, moves)
	}
}
