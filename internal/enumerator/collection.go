package enumerator

import (
	"github.com/pkg/errors"

	"keywalk/internal/generics"
	"keywalk/internal/keypad"
)

// Collection holds every emitted sequence, grouped by starting key. It is
// populated by Enumerate and never mutated afterwards.
type Collection map[keypad.Key][]Sequence

// Total sums the sequence counts of every starting key. Overflow of the
// aggregate is detected and reported, never wrapped silently.
func (c Collection) Total() (uint64, error) {
	var total uint64
	for key, seqs := range c {
		sum, ok := generics.CheckedAdd(total, uint64(len(seqs)))
		if !ok {
			return 0, errors.Errorf("total sequence count overflows uint64 adding key %q", key)
		}
		total = sum
	}
	return total, nil
}

// CountByKey returns the number of sequences per starting key.
func (c Collection) CountByKey() map[keypad.Key]int {
	counts := make(map[keypad.Key]int, len(c))
	for key, seqs := range c {
		counts[key] = len(seqs)
	}
	return counts
}
