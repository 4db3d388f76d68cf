package domain

import (
	"fmt"
	"strings"
)

// Board is a square grid of cells stored row-major. It is mutated in place
// by ApplyMove/UndoMove and is not safe for concurrent use.
type Board struct {
	size      int
	winLength int
	cells     []PlayerID
}

func NewBoard(size int) *Board {
	return NewBoardWithRules(size, DefaultWinLength)
}

func NewBoardWithRules(size, winLength int) *Board {
	if size < 1 {
		size = DefaultSize
	}
	if winLength < 1 {
		winLength = DefaultWinLength
	}
	return &Board{
		size:      size,
		winLength: winLength,
		cells:     make([]PlayerID, size*size),
	}
}

func (b *Board) Size() int {
	return b.size
}

func (b *Board) WinLength() int {
	return b.winLength
}

func (b *Board) InBounds(row, col int) bool {
	return row >= 0 && row < b.size && col >= 0 && col < b.size
}

// At returns the cell state, treating anything off the board as Empty
func (b *Board) At(row, col int) PlayerID {
	if !b.InBounds(row, col) {
		return Empty
	}
	return b.cells[row*b.size+col]
}

func (b *Board) IsValidMove(row, col int) bool {
	return b.InBounds(row, col) && b.cells[row*b.size+col] == Empty
}

// ApplyMove places a stone. Occupied or off-board cells are never overwritten.
func (b *Board) ApplyMove(row, col int, player PlayerID) error {
	if player != Black && player != White {
		return fmt.Errorf("%w: %v cannot place a stone", ErrInvalidMove, player)
	}
	if !b.IsValidMove(row, col) {
		return fmt.Errorf("%w: (%d, %d)", ErrInvalidMove, row, col)
	}
	b.cells[row*b.size+col] = player
	return nil
}

// UndoMove clears a cell. Off-board coordinates are ignored.
func (b *Board) UndoMove(row, col int) {
	if !b.InBounds(row, col) {
		return
	}
	b.cells[row*b.size+col] = Empty
}

func (b *Board) HasStones() bool {
	for _, cell := range b.cells {
		if cell != Empty {
			return true
		}
	}
	return false
}

func (b *Board) CountEmpty() int {
	count := 0
	for _, cell := range b.cells {
		if cell == Empty {
			count++
		}
	}
	return count
}

// this creates a deep copy of the board
func (b *Board) Clone() *Board {
	clone := &Board{size: b.size, winLength: b.winLength}
	clone.cells = make([]PlayerID, len(b.cells))
	copy(clone.cells, b.cells)
	return clone
}

func (b *Board) Equal(other *Board) bool {
	if other == nil || b.size != other.size || b.winLength != other.winLength {
		return false
	}
	for i := range b.cells {
		if b.cells[i] != other.cells[i] {
			return false
		}
	}
	return true
}

// SwapColors returns a copy with every Black stone turned White and vice versa
func (b *Board) SwapColors() *Board {
	clone := b.Clone()
	for i, cell := range clone.cells {
		clone.cells[i] = cell.Opponent()
	}
	return clone
}

// Grid exports the board as rows of ints for rendering or JSON
func (b *Board) Grid() [][]int {
	grid := make([][]int, b.size)
	for r := range grid {
		grid[r] = make([]int, b.size)
		for c := range grid[r] {
			grid[r][c] = int(b.cells[r*b.size+c])
		}
	}
	return grid
}

func (b *Board) String() string {
	var sb strings.Builder
	sb.WriteString("  ")
	for i := 0; i < b.size; i++ {
		if i > 0 {
			sb.WriteByte(' ')
		}
		fmt.Fprintf(&sb, "%2d", i)
	}
	sb.WriteByte('\n')
	for r := 0; r < b.size; r++ {
		fmt.Fprintf(&sb, "%2d ", r)
		for c := 0; c < b.size; c++ {
			if c > 0 {
				sb.WriteString("  ")
			}
			sb.WriteString(b.cells[r*b.size+c].Symbol())
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
