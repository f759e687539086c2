package enumerator_test

import (
	"context"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"keywalk/internal/enumerator"
	"keywalk/internal/generics"
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

func enumerateReference(t *testing.T, opts enumerator.Options) enumerator.Collection {
	t.Helper()
	l := referenceLayout(t)
	table := movetable.Build(l, piece.Knight{})
	collection, err := enumerator.Enumerate(context.Background(), l, table, opts)
	require.NoError(t, err)
	return collection
}

func total(t *testing.T, c enumerator.Collection) uint64 {
	t.Helper()
	n, err := c.Total()
	require.NoError(t, err)
	return n
}

// TestReferenceCount checks the full reference configuration: knight walks of
// length 10 with at most 2 vowels on the 18-key pad total 1,013,398.
func TestReferenceCount(t *testing.T) {
	collection := enumerateReference(t, enumerator.Options{TargetLength: 10, MaxVowels: 2})
	assert.Equal(t, uint64(1013398), total(t, collection))
}

func TestLengthOneYieldsOneSequencePerKey(t *testing.T) {
	collection := enumerateReference(t, enumerator.Options{TargetLength: 1, MaxVowels: 2})
	assert.Equal(t, uint64(18), total(t, collection))
	for key, seqs := range collection {
		assert.Equal(t, []enumerator.Sequence{enumerator.Sequence(key.String())}, seqs)
	}
}

func TestZeroVowelBudgetPrunesVowelStarts(t *testing.T) {
	// With no vowels allowed, even the length-1 walk starting on a vowel is
	// pruned. The pad holds 4 vowels (A, E, I, O), leaving 14 starts.
	collection := enumerateReference(t, enumerator.Options{TargetLength: 1, MaxVowels: 0})
	assert.Equal(t, uint64(14), total(t, collection))
	for _, vowel := range []keypad.Key{'A', 'E', 'I', 'O'} {
		assert.NotContains(t, collection, vowel)
	}
}

func TestPruningIsMonotone(t *testing.T) {
	// A budget at least as large as the length prunes nothing, so its count
	// bounds every stricter budget.
	unpruned := total(t, enumerateReference(t, enumerator.Options{TargetLength: 5, MaxVowels: 5}))
	strict := total(t, enumerateReference(t, enumerator.Options{TargetLength: 5, MaxVowels: 0}))
	assert.Greater(t, unpruned, strict)

	previous := uint64(0)
	for budget := 0; budget <= 5; budget++ {
		count := total(t, enumerateReference(t, enumerator.Options{TargetLength: 5, MaxVowels: budget}))
		assert.GreaterOrEqual(t, count, previous, "budget %d", budget)
		previous = count
	}
	assert.Equal(t, unpruned, previous)
}

// legalPairs returns the set of (from, to) key pairs the piece can move
// between somewhere on the layout.
func legalPairs(l *keypad.Layout, p piece.ChessPiece) generics.Set[[2]keypad.Key] {
	pairs := generics.MakeSet[[2]keypad.Key]()
	for pos, key := range l.Positions() {
		for _, off := range p.Offsets() {
			if p.IsLegal(l, pos, off) {
				pairs.Insert([2]keypad.Key{key, l.At(pos.Shift(off))})
			}
		}
	}
	return pairs
}

func TestSequenceProperties(t *testing.T) {
	const targetLength, maxVowels = 6, 2
	l := referenceLayout(t)
	vowels := enumerator.DefaultVowels()
	pairs := legalPairs(l, piece.Knight{})

	collection := enumerateReference(t, enumerator.Options{
		TargetLength: targetLength,
		MaxVowels:    maxVowels,
	})
	require.NotEmpty(t, collection)

	for key, seqs := range collection {
		for _, seq := range seqs {
			assert.Len(t, seq, targetLength)
			assert.Equal(t, key, keypad.Key(seq[0]), "sequence %q stored under wrong key", seq)

			vowelCount := 0
			for ii := 0; ii < len(seq); ii++ {
				assert.NotEqual(t, l.Sentinel(), keypad.Key(seq[ii]),
					"sequence %q contains the sentinel", seq)
				if vowels.Has(keypad.Key(seq[ii])) {
					vowelCount++
				}
				if ii > 0 {
					pair := [2]keypad.Key{keypad.Key(seq[ii-1]), keypad.Key(seq[ii])}
					assert.True(t, pairs.Has(pair),
						"sequence %q has illegal transition %c->%c", seq, seq[ii-1], seq[ii])
				}
			}
			assert.LessOrEqual(t, vowelCount, maxVowels, "sequence %q", seq)
		}
	}
}

func TestDeterminism(t *testing.T) {
	opts := enumerator.Options{TargetLength: 5, MaxVowels: 2}
	first := enumerateReference(t, opts)
	second := enumerateReference(t, opts)

	require.Equal(t, len(first), len(second))
	for key, seqs := range first {
		got := slices.Clone(second[key])
		want := slices.Clone(seqs)
		slices.Sort(got)
		slices.Sort(want)
		assert.Equal(t, want, got, "key %s", key)
	}
}

func TestParallelismDoesNotChangeResults(t *testing.T) {
	serial := enumerateReference(t, enumerator.Options{TargetLength: 5, MaxVowels: 2, Parallelism: 1})
	parallel := enumerateReference(t, enumerator.Options{TargetLength: 5, MaxVowels: 2, Parallelism: 8})
	assert.Equal(t, total(t, serial), total(t, parallel))
}

func TestInvalidOptions(t *testing.T) {
	l := referenceLayout(t)
	table := movetable.Build(l, piece.Knight{})

	_, err := enumerator.Enumerate(context.Background(), l, table, enumerator.Options{TargetLength: 0})
	assert.ErrorContains(t, err, "target length")

	_, err = enumerator.Enumerate(context.Background(), l, table,
		enumerator.Options{TargetLength: 1, MaxVowels: -1})
	assert.ErrorContains(t, err, "max vowels")
}

func TestInconsistentTableIsFatal(t *testing.T) {
	l := referenceLayout(t)
	// A table built from a different layout misses most of l's keys.
	small, err := keypad.ParseRows('_', []string{"A_"})
	require.NoError(t, err)
	table := movetable.Build(small, piece.Knight{})

	_, err = enumerator.Enumerate(context.Background(), l, table,
		enumerator.Options{TargetLength: 2, MaxVowels: 2})
	assert.ErrorIs(t, err, movetable.ErrUnknownKey)
}

func TestCancellation(t *testing.T) {
	l := referenceLayout(t)
	table := movetable.Build(l, piece.Knight{})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := enumerator.Enumerate(ctx, l, table,
		enumerator.Options{TargetLength: 10, MaxVowels: 2})
	assert.ErrorIs(t, err, context.Canceled)
}

func TestCollectionTotalAndCounts(t *testing.T) {
	collection := enumerateReference(t, enumerator.Options{TargetLength: 3, MaxVowels: 2})
	counts := collection.CountByKey()

	var want uint64
	for key, seqs := range collection {
		assert.Equal(t, len(seqs), counts[key])
		want += uint64(len(seqs))
	}
	assert.Equal(t, want, total(t, collection))
}
