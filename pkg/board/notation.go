package board

import (
	"errors"
	"fmt"
	"strings"
)

// Notation lists the cells row by row, e.g. "xo-/-x-/--o",
// separators are optional ("xo--x---o" is the same board)

const (
	StartingPosition string = "---/---/---"
	rowSeparator     byte   = '/'
)

var (
	ErrNotationLength = errors.New("notation must describe exactly 9 cells")
	ErrNotationSymbol = errors.New("unknown cell symbol")
)

func parseSymbol(r byte) (Cell, bool) {
	switch r {
	case 'x', 'X':
		return Cross, true
	case 'o', 'O':
		return Circle, true
	case '-', '.', '_':
		return Empty, true
	}
	return Empty, false
}

// Parse a board from its notation
func Parse(notation string) (Board, error) {
	var b Board
	index := 0
	for i := 0; i < len(notation); i++ {
		ch := notation[i]
		if ch == rowSeparator {
			continue
		}

		c, ok := parseSymbol(ch)
		if !ok {
			return Board{}, fmt.Errorf("%w: %q at position %d", ErrNotationSymbol, ch, i)
		}
		if index >= Size {
			return Board{}, fmt.Errorf("%w: got more than %d", ErrNotationLength, Size)
		}

		b.Set(index, c)
		index++
	}

	if index != Size {
		return Board{}, fmt.Errorf("%w: got %d", ErrNotationLength, index)
	}
	return b, nil
}

// Same as Parse, but panics on invalid notation, meant for tests and constants
func MustParse(notation string) Board {
	b, err := Parse(notation)
	if err != nil {
		panic(err)
	}
	return b
}

func (b Board) String() string {
	builder := strings.Builder{}
	builder.Grow(Size + 2)
	for i, c := range b.All() {
		if i > 0 && i%3 == 0 {
			builder.WriteByte(rowSeparator)
		}
		builder.WriteString(c.String())
	}
	return builder.String()
}
