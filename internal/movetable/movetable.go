// Package movetable precomputes, once per run, which offsets of a piece are
// legal from the cells holding each key.
//
// Building the table up front decouples traversal cost from move-legality
// checks: the enumerator only ever does table lookups, never re-evaluates the
// piece's predicate.
package movetable

import (
	"github.com/pkg/errors"
	"k8s.io/klog/v2"

	"keywalk/internal/keypad"
	"keywalk/internal/piece"
)

// ErrUnknownKey reports a lookup for a key the table has no entry for: the
// sentinel, or a key foreign to the layout the table was built from. It
// means the table and the layout are inconsistent, a defect in the caller's
// setup rather than a recoverable condition.
var ErrUnknownKey = errors.New("key not present in move table")

// Table maps each live key to the offsets legal from its cell.
// Built once by Build and read-only afterwards.
type Table map[keypad.Key][]keypad.Offset

// Build evaluates the piece's legality predicate on every offset from every
// live cell of the layout. O(rows * cols * |offsets|), run once per
// configuration.
//
// The table is keyed by key, not by cell: if the same key appears on several
// cells, the last cell scanned (row-major order) wins, and the earlier
// cells' legality is lost. Layouts with every key unique, like the default
// keypad, are unaffected.
func Build(l *keypad.Layout, p piece.ChessPiece) Table {
	t := make(Table, l.NumKeys())
	offsets := p.Offsets()
	for pos, key := range l.Positions() {
		legal := make([]keypad.Offset, 0, len(offsets))
		for _, off := range offsets {
			if p.IsLegal(l, pos, off) {
				legal = append(legal, off)
			}
		}
		t[key] = legal
		klog.V(2).Infof("key %s at %s: %d legal moves", key, pos, len(legal))
	}
	klog.V(1).Infof("move table built for %d keys (%d piece offsets)", len(t), len(offsets))
	return t
}

// Moves returns the legal offsets for key. The slice may be empty (a dead
// end). A key without an entry returns ErrUnknownKey.
func (t Table) Moves(key keypad.Key) ([]keypad.Offset, error) {
	moves, found := t[key]
	if !found {
		return nil, errors.Wrapf(ErrUnknownKey, "key %q", key)
	}
	return moves, nil
}
