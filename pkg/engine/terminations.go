package engine

import "github.com/IlikeChooros/go-tictactoe/pkg/board"

type Termination int

const (
	TerminationNone      Termination = 0
	TerminationCircleWon Termination = 1
	TerminationCrossWon  Termination = 2
	TerminationDraw      Termination = 4
)

// rows, columns and diagonals, as cell indices
var _winningTriples = [8][3]int{
	{0, 1, 2}, {3, 4, 5}, {6, 7, 8},
	{0, 3, 6}, {1, 4, 7}, {2, 5, 8},
	{0, 4, 8}, {2, 4, 6},
}

func (t Termination) String() string {
	switch t {
	case TerminationNone:
		return "none"
	case TerminationCircleWon:
		return "circle won"
	case TerminationCrossWon:
		return "cross won"
	case TerminationDraw:
		return "draw"
	}
	return "unknown"
}

// Mark of the winning player, Empty for draws and unfinished games
func (t Termination) Winner() board.Cell {
	switch t {
	case TerminationCrossWon:
		return board.Cross
	case TerminationCircleWon:
		return board.Circle
	}
	return board.Empty
}

// True if 'player' occupies all three cells of any winning triple
func IsWinner(b *board.Board, player board.Cell) bool {
	for _, triple := range _winningTriples {
		if b.Get(triple[0]) == player &&
			b.Get(triple[1]) == player &&
			b.Get(triple[2]) == player {
			return true
		}
	}
	return false
}

// A draw is a full board, on which no one has won
func IsDraw(b *board.Board) bool {
	if IsWinner(b, board.Cross) || IsWinner(b, board.Circle) {
		return false
	}
	return b.IsFull()
}

// Evaluate the termination of the game, wins take precedence over draws
func Status(b *board.Board) Termination {
	switch {
	case IsWinner(b, board.Cross):
		return TerminationCrossWon
	case IsWinner(b, board.Circle):
		return TerminationCircleWon
	case b.IsFull():
		return TerminationDraw
	}
	return TerminationNone
}
