package board

// Cell is the occupant of a single square, stored in 2 bits
type Cell uint8

const (
	Empty  Cell = 0
	Cross  Cell = 1
	Circle Cell = 2
)

// Number of cells on the board
const Size = 9

const (
	cellBits     = 2
	cellMask     = 0b11
	cellsPerUnit = 8 / cellBits
	unitCount    = (Size + cellsPerUnit - 1) / cellsPerUnit
)

// Returns the other player's mark, Empty stays Empty
func (c Cell) Opponent() Cell {
	switch c {
	case Cross:
		return Circle
	case Circle:
		return Cross
	}
	return Empty
}

func (c Cell) String() string {
	switch c {
	case Cross:
		return "x"
	case Circle:
		return "o"
	}
	return "-"
}
