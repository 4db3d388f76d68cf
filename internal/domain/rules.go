package domain

// Directions are the four line orientations: horizontal, vertical,
// main diagonal and anti-diagonal.
var Directions = [4][2]int{
	{0, 1},
	{1, 0},
	{1, 1},
	{1, -1},
}

// HasWin reports whether player owns a run of WinLength stones anywhere.
// It only depends on the current grid, never on move history.
func (b *Board) HasWin(player PlayerID) bool {
	if player == Empty {
		return false
	}
	n, need := b.size, b.winLength
	for row := 0; row < n; row++ {
		for col := 0; col < n; col++ {
			if b.cells[row*n+col] != player {
				continue
			}
			for _, d := range Directions {
				if b.runLength(row, col, d[0], d[1], player, need) == need {
					return true
				}
			}
		}
	}
	return false
}

// runLength counts stones of player starting at (row, col) and stepping by
// (dRow, dCol), stopping at limit.
func (b *Board) runLength(row, col, dRow, dCol int, player PlayerID, limit int) int {
	count := 0
	for count < limit && b.InBounds(row, col) && b.cells[row*b.size+col] == player {
		count++
		row += dRow
		col += dCol
	}
	return count
}

// CountInDirection counts consecutive stones of player next to (row, col),
// not including the cell itself.
func (b *Board) CountInDirection(row, col, dRow, dCol int, player PlayerID) int {
	return b.runLength(row+dRow, col+dCol, dRow, dCol, player, b.size)
}
