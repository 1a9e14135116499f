package board

import (
	"fmt"
	"iter"
)

// Board holds 9 cells packed 2 bits each, 4 cells per byte.
// Index 0 is the top-left cell, 8 the bottom-right (row-major).
// The zero value is an empty board.
type Board [unitCount]uint8

func New() *Board {
	return &Board{}
}

// Clear every cell
func (b *Board) Reset() {
	*b = Board{}
}

func locate(index int) (unit int, offset uint) {
	if uint(index) >= Size {
		panic(fmt.Sprintf("board: cell index %d out of range [0, %d)", index, Size))
	}
	return index / cellsPerUnit, uint(index%cellsPerUnit) * cellBits
}

// Overwrite the 2 bits of given cell, leaving the rest of the board untouched
func (b *Board) Set(index int, c Cell) {
	unit, offset := locate(index)
	b[unit] &^= cellMask << offset
	b[unit] |= (uint8(c) & cellMask) << offset
}

// Read the cell at given index
func (b *Board) Get(index int) Cell {
	unit, offset := locate(index)
	return Cell((b[unit] >> offset) & cellMask)
}

// All yields every (index, cell) pair in index order.
func (b *Board) All() iter.Seq2[int, Cell] {
	return func(yield func(int, Cell) bool) {
		for i := range Size {
			if !yield(i, b.Get(i)) {
				return
			}
		}
	}
}

// Empty cells in ascending index order
func (b *Board) EmptyCells() *MoveList {
	ml := NewMoveList()
	for i, c := range b.All() {
		if c == Empty {
			ml.AppendMove(i)
		}
	}
	return ml
}

// Number of cells occupied by given mark
func (b *Board) Count(c Cell) int {
	n := 0
	for _, v := range b.All() {
		if v == c {
			n++
		}
	}
	return n
}

func (b *Board) IsFull() bool {
	return b.Count(Empty) == 0
}

// Side to move, assuming Cross always makes the first move
func (b *Board) Turn() Cell {
	if b.Count(Cross) > b.Count(Circle) {
		return Circle
	}
	return Cross
}
