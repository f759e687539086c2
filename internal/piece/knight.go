package piece

import "keywalk/internal/keypad"

// Knight moves in the usual L shape: two cells along one axis and one along
// the other, in any direction.
type Knight struct{}

var knightOffsets = []keypad.Offset{
	{-2, -1}, {-2, 1}, {-1, -2}, {-1, 2}, {1, -2}, {1, 2}, {2, -1}, {2, 1},
}

// Offsets returns the 8 knight moves.
func (Knight) Offsets() []keypad.Offset {
	return knightOffsets
}

// IsLegal reports whether the offset is an L-shaped move from pos onto a
// live key.
func (Knight) IsLegal(l *keypad.Layout, pos keypad.Pos, off keypad.Offset) bool {
	dRow, dCol := abs(off.DRow()), abs(off.DCol())
	return landsOnKey(l, pos, off) &&
		((dRow == 1 && dCol == 2) || (dRow == 2 && dCol == 1))
}
