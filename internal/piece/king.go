package piece

import "keywalk/internal/keypad"

// King moves one cell in any of the 8 directions.
type King struct{}

var kingOffsets = []keypad.Offset{
	{-1, -1}, {-1, 0}, {-1, 1}, {0, -1}, {0, 1}, {1, -1}, {1, 0}, {1, 1},
}

// Offsets returns the 8 unit moves.
func (King) Offsets() []keypad.Offset {
	return kingOffsets
}

// IsLegal reports whether the offset is a single step from pos onto a live key.
func (King) IsLegal(l *keypad.Layout, pos keypad.Pos, off keypad.Offset) bool {
	dRow, dCol := abs(off.DRow()), abs(off.DCol())
	return landsOnKey(l, pos, off) &&
		max(dRow, dCol) == 1
}
