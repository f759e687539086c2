// Package keypad models the rectangular layout of labeled keys that walks are
// enumerated on.
//
// A layout is a fixed grid of keys plus one sentinel key that marks cells
// that don't exist (dead keys, e.g. the blank corners of a phone keypad).
// Layouts are validated once at construction and read-only afterwards.
package keypad

import (
	"fmt"
	"iter"
	"strings"

	"github.com/pkg/errors"
)

// Key is a single keypad symbol.
type Key byte

// String returns the key as a one-character string.
func (k Key) String() string {
	return string(rune(k))
}

// Pos packages the (row, column) coordinates of a cell.
type Pos [2]int

// Row coordinate of the position.
func (pos Pos) Row() int {
	return pos[0]
}

// Col coordinate of the position.
func (pos Pos) Col() int {
	return pos[1]
}

// Shift returns the position reached by applying the given offset.
func (pos Pos) Shift(off Offset) Pos {
	return Pos{pos[0] + off[0], pos[1] + off[1]}
}

// String returns a text representation of Pos.
func (pos Pos) String() string {
	return fmt.Sprintf("(%d, %d)", pos[0], pos[1])
}

// Offset packages the (Δrow, Δcolumn) deltas of one relative move.
// Offsets are translation-invariant: legality at the grid boundary is
// checked separately, against a concrete position.
type Offset [2]int

// DRow is the row delta of the offset.
func (off Offset) DRow() int {
	return off[0]
}

// DCol is the column delta of the offset.
func (off Offset) DCol() int {
	return off[1]
}

// String returns a text representation of Offset.
func (off Offset) String() string {
	return fmt.Sprintf("(%+d, %+d)", off[0], off[1])
}

// Layout is the immutable arrangement of keys.
type Layout struct {
	sentinel Key
	keys     [][]Key
	numKeys  int
}

// New validates and builds a Layout. The rows are deep-copied, so the caller
// may keep mutating its slice.
//
// Configuration errors -- empty grid, ragged rows, a grid made only of dead
// cells -- are reported here, never later during traversal.
func New(sentinel Key, rows [][]Key) (*Layout, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, errors.New("layout dimensions must be non-zero")
	}
	cols := len(rows[0])
	l := &Layout{
		sentinel: sentinel,
		keys:     make([][]Key, len(rows)),
	}
	for ii, row := range rows {
		if len(row) != cols {
			return nil, errors.Errorf(
				"layout must be rectangular: row %d has %d keys, want %d", ii, len(row), cols)
		}
		l.keys[ii] = make([]Key, cols)
		copy(l.keys[ii], row)
		for _, key := range row {
			if key != sentinel {
				l.numKeys++
			}
		}
	}
	if l.numKeys == 0 {
		return nil, errors.Errorf("layout has no keys, every cell is the sentinel %q", sentinel)
	}
	return l, nil
}

// ParseRows builds a Layout from one string per row, one byte per key.
func ParseRows(sentinel Key, rows []string) (*Layout, error) {
	keys := make([][]Key, len(rows))
	for ii, row := range rows {
		keys[ii] = []Key(row)
	}
	return New(sentinel, keys)
}

// Rows returns the number of rows.
func (l *Layout) Rows() int {
	return len(l.keys)
}

// Cols returns the number of columns.
func (l *Layout) Cols() int {
	return len(l.keys[0])
}

// Sentinel returns the key that marks dead cells.
func (l *Layout) Sentinel() Key {
	return l.sentinel
}

// NumKeys returns the number of live (non-sentinel) cells.
func (l *Layout) NumKeys() int {
	return l.numKeys
}

// Contains reports whether pos is within the grid bounds.
func (l *Layout) Contains(pos Pos) bool {
	return pos.Row() >= 0 && pos.Row() < l.Rows() &&
		pos.Col() >= 0 && pos.Col() < l.Cols()
}

// At returns the key at pos. It panics if pos is out of bounds, use Contains
// first for positions built from arbitrary offsets.
func (l *Layout) At(pos Pos) Key {
	return l.keys[pos.Row()][pos.Col()]
}

// IsDead reports whether pos is out of bounds or holds the sentinel.
func (l *Layout) IsDead(pos Pos) bool {
	return !l.Contains(pos) || l.At(pos) == l.sentinel
}

// Positions iterates over the live cells in row-major order, yielding the
// position and the key it holds.
func (l *Layout) Positions() iter.Seq2[Pos, Key] {
	return func(yield func(Pos, Key) bool) {
		for rowIdx, row := range l.keys {
			for colIdx, key := range row {
				if key == l.sentinel {
					continue
				}
				if !yield(Pos{rowIdx, colIdx}, key) {
					return
				}
			}
		}
	}
}

// String returns a plain-text rendering of the layout, one row per line.
func (l *Layout) String() string {
	var b strings.Builder
	for _, row := range l.keys {
		for colIdx, key := range row {
			if colIdx > 0 {
				b.WriteByte(' ')
			}
			b.WriteByte(byte(key))
		}
		b.WriteByte('\n')
	}
	return b.String()
}
