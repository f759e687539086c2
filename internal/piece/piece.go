// Package piece defines the movement capability of the chess pieces a walk
// may use, and a registry to select one by name.
//
// A piece exposes its full move shape as a set of relative offsets, plus a
// predicate deciding whether an offset applied at a concrete position lands
// on a live key. Both are pure functions, so every other component can treat
// a ChessPiece as an immutable value.
package piece

import (
	"slices"
	"strings"

	"github.com/pkg/errors"

	"keywalk/internal/generics"
	"keywalk/internal/keypad"
)

// ChessPiece is the movement policy of a walk.
//
// Implementations must be stateless: IsLegal is a pure function of its
// arguments, and Offsets always returns the same shape.
type ChessPiece interface {
	// Offsets returns the piece's full move shape, as relative offsets.
	Offsets() []keypad.Offset

	// IsLegal reports whether moving by off from pos lands on a live key of
	// the layout and satisfies the piece's shape constraint.
	IsLegal(l *keypad.Layout, pos keypad.Pos, off keypad.Offset) bool
}

// Constructor builds a piece for the given layout. Most pieces ignore the
// layout; sliders use it to bound their reach.
type Constructor func(l *keypad.Layout) ChessPiece

var registry = map[string]Constructor{
	"knight": func(*keypad.Layout) ChessPiece { return Knight{} },
	"king":   func(*keypad.Layout) ChessPiece { return King{} },
	"rook":   func(l *keypad.Layout) ChessPiece { return NewRook(reachFor(l)) },
	"bishop": func(l *keypad.Layout) ChessPiece { return NewBishop(reachFor(l)) },
}

// New returns the piece registered under name (case-insensitive), built for
// the given layout. An unknown name is a configuration error.
func New(name string, l *keypad.Layout) (ChessPiece, error) {
	ctor, found := registry[strings.ToLower(name)]
	if !found {
		return nil, errors.Errorf("unknown piece %q, valid pieces are: %s",
			name, strings.Join(Names(), ", "))
	}
	return ctor(l), nil
}

// Names lists the registered piece names, sorted.
func Names() []string {
	return slices.Collect(generics.SortedKeys(registry))
}

// reachFor bounds a slider's offsets to the longest straight line that fits
// in the layout.
func reachFor(l *keypad.Layout) int {
	return max(l.Rows(), l.Cols()) - 1
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

// landsOnKey is the bounds-and-sentinel half of every piece's IsLegal.
func landsOnKey(l *keypad.Layout, pos keypad.Pos, off keypad.Offset) bool {
	return !l.IsDead(pos.Shift(off))
}
