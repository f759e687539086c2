// Package enumerator exhaustively generates every fixed-length key sequence
// a piece can walk on a layout, pruning sequences that use too many vowels.
//
// Despite the level-order traversal this is not a shortest-path search:
// every walk reaching the target length is recorded, and all of them have
// the same length by construction. The explicit FIFO worklist is there to
// bound live state to the current frontier and to keep stack depth constant
// no matter how long the target length is; never replace it with recursion.
package enumerator

import (
	"context"
	"runtime"

	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"
	"k8s.io/klog/v2"

	"keywalk/internal/generics"
	"keywalk/internal/keypad"
	"keywalk/internal/movetable"
)

// Sequence is an immutable ordered list of keys; the first key is the
// starting key of the walk.
type Sequence string

// Options configure one enumeration run.
type Options struct {
	// TargetLength is the exact length every emitted sequence must have. Must
	// be at least 1.
	TargetLength int

	// MaxVowels is the largest number of vowels a sequence may contain.
	// Branches exceeding it are pruned: the vowel count only grows as a
	// sequence grows, so once over the limit a branch can never recover.
	MaxVowels int

	// Vowels is the restricted key class counted against MaxVowels.
	// Defaults to DefaultVowels when nil.
	Vowels generics.Set[keypad.Key]

	// Parallelism bounds how many starting keys are walked simultaneously.
	// 0 means GOMAXPROCS. The result does not depend on it: every starting
	// key's traversal is independent given the read-only layout and table.
	Parallelism int
}

// DefaultVowels is the restricted class used when Options.Vowels is nil.
func DefaultVowels() generics.Set[keypad.Key] {
	return generics.SetWith[keypad.Key]('A', 'E', 'I', 'O', 'U')
}

func (opts *Options) validate() error {
	if opts.TargetLength < 1 {
		return errors.Errorf("target length must be positive, got %d", opts.TargetLength)
	}
	if opts.MaxVowels < 0 {
		return errors.Errorf("max vowels must be non-negative, got %d", opts.MaxVowels)
	}
	if opts.Vowels == nil {
		opts.Vowels = DefaultVowels()
	}
	if opts.Parallelism <= 0 {
		opts.Parallelism = runtime.GOMAXPROCS(0)
	}
	return nil
}

// workItem is one partial walk: the keys visited so far and the cell the
// walk currently stands on.
type workItem struct {
	seq Sequence
	pos keypad.Pos
}

// Enumerate walks every live cell of the layout and returns, per starting
// key, all sequences of exactly opts.TargetLength with at most
// opts.MaxVowels vowels.
//
// Options are validated eagerly; no partial result is ever returned. A move
// table inconsistent with the layout aborts the whole run with an error
// wrapping movetable.ErrUnknownKey. Cancelling ctx aborts with its error;
// on success the context has no effect on the result.
func Enumerate(ctx context.Context, l *keypad.Layout, table movetable.Table, opts Options) (Collection, error) {
	if err := opts.validate(); err != nil {
		return nil, err
	}

	// Each starting cell gets a disjoint slot, so workers share nothing and
	// the per-key merge happens only after Wait.
	starts := generics.CollectPairs(l.Positions())
	perStart := make([][]Sequence, len(starts))
	var group errgroup.Group
	group.SetLimit(opts.Parallelism)
	for ii, start := range starts {
		group.Go(func() error {
			seqs, err := enumerateFrom(ctx, l, table, start.A, opts)
			if err != nil {
				return errors.WithMessagef(err, "enumerating from key %q at %s", start.B, start.A)
			}
			perStart[ii] = seqs
			return nil
		})
	}
	if err := group.Wait(); err != nil {
		return nil, err
	}

	// Keys whose every walk was pruned get no entry, they produced nothing.
	collection := make(Collection, len(starts))
	for ii, start := range starts {
		klog.V(1).Infof("key %s at %s: %d sequences", start.B, start.A, len(perStart[ii]))
		if len(perStart[ii]) == 0 {
			continue
		}
		collection[start.B] = append(collection[start.B], perStart[ii]...)
	}
	return collection, nil
}

// enumerateFrom runs the level-order traversal for a single starting cell.
func enumerateFrom(ctx context.Context, l *keypad.Layout, table movetable.Table, start keypad.Pos, opts Options) ([]Sequence, error) {
	var done []Sequence
	queue := []workItem{{seq: Sequence(l.At(start).String()), pos: start}}
	for len(queue) > 0 {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		item := queue[0]
		queue = queue[1:]

		// Prune before anything else, mirroring the pruning contract: a
		// sequence over the vowel limit is dropped even at target length.
		if countVowels(item.seq, opts.Vowels) > opts.MaxVowels {
			continue
		}
		if len(item.seq) == opts.TargetLength {
			done = append(done, item.seq)
			continue
		}
		moves, err := table.Moves(l.At(item.pos))
		if err != nil {
			return nil, errors.WithMessagef(err, "move table inconsistent with layout at %s", item.pos)
		}
		for _, off := range moves {
			target := item.pos.Shift(off)
			queue = append(queue, workItem{
				seq: item.seq + Sequence(l.At(target).String()),
				pos: target,
			})
		}
	}
	return done, nil
}

func countVowels(seq Sequence, vowels generics.Set[keypad.Key]) int {
	count := 0
	for ii := 0; ii < len(seq); ii++ {
		if vowels.Has(keypad.Key(seq[ii])) {
			count++
		}
	}
	return count
}
