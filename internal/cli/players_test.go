package cli

import (
	"bufio"
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/IlikeChooros/go-tictactoe/pkg/board"
	"github.com/IlikeChooros/go-tictactoe/pkg/engine"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestHuman(input string) (*HumanPlayer, *bytes.Buffer) {
	var out bytes.Buffer
	scanner := bufio.NewScanner(strings.NewReader(input))
	return NewHumanPlayer(scanner, NewRenderer(&out, DefaultSymbols(), false)), &out
}

func TestHumanPlayerRepromptsUntilValid(t *testing.T) {
	// Given: a board with the top-left cell taken and a few bad inputs first
	b := board.MustParse("x--/---/---")
	human, out := newTestHuman("abc\n0\n7\n5\n")

	// When: asking for a move
	index, err := human.Move(context.Background(), &b, board.Circle)

	// Then: the first legal key is returned and every mistake was reported
	require.NoError(t, err)
	assert.Equal(t, 4, index)
	assert.Equal(t, 4, strings.Count(out.String(), "to move"))
	assert.Contains(t, out.String(), ErrInvalidInput.Error())
	assert.Contains(t, out.String(), ErrOutOfBoard.Error())
	assert.Contains(t, out.String(), ErrCellOccupied.Error())
	assert.Equal(t, "x--/---/---", b.String(), "the board must not be touched")
}

func TestHumanPlayerAborts(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"end of input", ""},
		{"end of input after a bad key", "12\n"},
		{"quit", "q\n"},
		{"quit word", " quit \n5\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := board.New()
			human, _ := newTestHuman(tt.input)

			index, err := human.Move(context.Background(), b, board.Cross)
			assert.ErrorIs(t, err, ErrAborted)
			assert.Equal(t, -1, index)
		})
	}
}

func TestHumanPlayerCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	human, _ := newTestHuman("5\n")
	_, err := human.Move(ctx, board.New(), board.Cross)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestComputerPlayer(t *testing.T) {
	computer := NewComputerPlayer()
	assert.Equal(t, "computer", computer.Name())

	// blocks the row as circle
	b := board.MustParse("xx-/-o-/---")
	index, err := computer.Move(context.Background(), &b, board.Circle)
	require.NoError(t, err)
	assert.Equal(t, 2, index)
	assert.Equal(t, 2, computer.LastResult().Move)
	assert.Equal(t, engine.ScoreDraw, computer.LastResult().Score)

	// the same player can switch sides and wins when it can
	b = board.MustParse("xo-/xo-/---")
	index, err = computer.Move(context.Background(), &b, board.Cross)
	require.NoError(t, err)
	assert.Equal(t, 6, index)
	assert.Equal(t, engine.ScoreWin, computer.LastResult().Score)
}

func TestComputerPlayerFullBoard(t *testing.T) {
	b := board.MustParse("xox/xoo/oxx")
	_, err := NewComputerPlayer().Move(context.Background(), &b, board.Cross)
	assert.Error(t, err)
}
