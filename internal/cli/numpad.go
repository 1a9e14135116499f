package cli

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/IlikeChooros/go-tictactoe/pkg/board"
)

var (
	ErrInvalidInput = errors.New("invalid input")
	ErrOutOfBoard   = errors.New("key is not on the board")
	ErrCellOccupied = errors.New("cell is already occupied")
)

// Keys follow the numeric keypad, so the top row is 7 8 9:
//
//	7 | 8 | 9
//	4 | 5 | 6
//	1 | 2 | 3
const (
	numpadFirst = 1
	numpadLast  = 9
)

// NumpadToIndex maps a keypad key (1..9) to a board index (0..8)
func NumpadToIndex(key int) (int, bool) {
	if key < numpadFirst || key > numpadLast {
		return -1, false
	}
	row := 2 - (key-1)/3
	col := (key - 1) % 3
	return row*3 + col, true
}

// IndexToNumpad is the inverse of NumpadToIndex, panics on indices outside the board
func IndexToNumpad(index int) int {
	if index < 0 || index >= board.Size {
		panic(fmt.Sprintf("cli: cell index %d out of range [0, %d)", index, board.Size))
	}
	row, col := index/3, index%3
	return (2-row)*3 + col + 1
}

// ParseMove turns a line typed by the player into a board index
// that is safe to pass to board.Set.
func ParseMove(input string, b *board.Board) (int, error) {
	trimmed := strings.TrimSpace(input)
	key, err := strconv.Atoi(trimmed)
	if err != nil {
		return -1, fmt.Errorf("%w: %q", ErrInvalidInput, trimmed)
	}

	index, ok := NumpadToIndex(key)
	if !ok {
		return -1, fmt.Errorf("%w: %d", ErrOutOfBoard, key)
	}

	if b.Get(index) != board.Empty {
		return -1, fmt.Errorf("%w: %d", ErrCellOccupied, key)
	}

	return index, nil
}
