package piece

import "keywalk/internal/keypad"

// Rook and Bishop are modeled as translation-invariant leapers: their shape
// is every multiple of their directions up to a reach bound, and legality
// depends only on the destination cell. There is no blocking: a slider hops
// over dead keys, since an offset carries no information about the cells in
// between. The reach bound is taken from the layout at construction (see
// reachFor), so the shape covers any straight line the grid can hold.

// Rook moves any number of cells along a row or a column.
type Rook struct {
	offsets []keypad.Offset
}

// NewRook returns a rook that reaches up to reach cells away.
func NewRook(reach int) Rook {
	return Rook{offsets: slidingOffsets(reach, [][2]int{{-1, 0}, {1, 0}, {0, -1}, {0, 1}})}
}

// Offsets returns the 4*reach rook moves.
func (r Rook) Offsets() []keypad.Offset {
	return r.offsets
}

// IsLegal reports whether the offset is a straight move from pos onto a live key.
func (r Rook) IsLegal(l *keypad.Layout, pos keypad.Pos, off keypad.Offset) bool {
	return landsOnKey(l, pos, off) &&
		(off.DRow() == 0) != (off.DCol() == 0)
}

// Bishop moves any number of cells along a diagonal.
type Bishop struct {
	offsets []keypad.Offset
}

// NewBishop returns a bishop that reaches up to reach cells away.
func NewBishop(reach int) Bishop {
	return Bishop{offsets: slidingOffsets(reach, [][2]int{{-1, -1}, {-1, 1}, {1, -1}, {1, 1}})}
}

// Offsets returns the 4*reach bishop moves.
func (b Bishop) Offsets() []keypad.Offset {
	return b.offsets
}

// IsLegal reports whether the offset is a diagonal move from pos onto a live key.
func (b Bishop) IsLegal(l *keypad.Layout, pos keypad.Pos, off keypad.Offset) bool {
	dRow, dCol := abs(off.DRow()), abs(off.DCol())
	return landsOnKey(l, pos, off) &&
		dRow == dCol && dRow > 0
}

func slidingOffsets(reach int, directions [][2]int) []keypad.Offset {
	offsets := make([]keypad.Offset, 0, reach*len(directions))
	for step := 1; step <= reach; step++ {
		for _, dir := range directions {
			offsets = append(offsets, keypad.Offset{step * dir[0], step * dir[1]})
		}
	}
	return offsets
}
