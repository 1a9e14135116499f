package board

// Fixed-capacity list of cell indices, there are never more than 9 moves
type MoveList struct {
	Moves [Size]int
	Size  uint8
}

func NewMoveList() *MoveList {
	return &MoveList{}
}

func (ml *MoveList) AppendMove(index int) {
	ml.Moves[ml.Size] = index
	ml.Size++
}

// View of the appended moves, shares memory with the list
func (ml *MoveList) Slice() []int {
	return ml.Moves[:ml.Size]
}
