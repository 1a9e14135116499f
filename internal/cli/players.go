package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/IlikeChooros/go-tictactoe/pkg/board"
	"github.com/IlikeChooros/go-tictactoe/pkg/engine"
)

//go:generate mockgen -source=players.go -destination=mock_player_test.go -package=cli

// ErrAborted is returned when the human player quits or the input ends mid-game
var ErrAborted = errors.New("game aborted")

type Player interface {
	Name() string
	// Move returns a valid empty cell index for 'mark' to play on 'b',
	// the board must be left unchanged
	Move(ctx context.Context, b *board.Board, mark board.Cell) (int, error)
}

// Reads keypad moves line by line, re-prompting until one is legal
type HumanPlayer struct {
	scanner  *bufio.Scanner
	renderer *Renderer
}

// The scanner is shared with the game, so the start prompt and the moves
// read from the same buffer
func NewHumanPlayer(scanner *bufio.Scanner, renderer *Renderer) *HumanPlayer {
	return &HumanPlayer{scanner: scanner, renderer: renderer}
}

func (h *HumanPlayer) Name() string {
	return "human"
}

func (h *HumanPlayer) Move(ctx context.Context, b *board.Board, mark board.Cell) (int, error) {
	for {
		if err := ctx.Err(); err != nil {
			return -1, err
		}

		h.renderer.Prompt(mark)
		if !h.scanner.Scan() {
			if err := h.scanner.Err(); err != nil {
				return -1, fmt.Errorf("unable to read move: %w", err)
			}
			return -1, ErrAborted
		}

		line := strings.TrimSpace(h.scanner.Text())
		if line == "q" || line == "quit" {
			return -1, ErrAborted
		}

		index, err := ParseMove(line, b)
		if err == nil {
			return index, nil
		}
		h.renderer.Error(err)
	}
}

// Plays the minimax best move, keeping the analysis of the last search
type ComputerPlayer struct {
	engine *engine.Minimax
	last   engine.Result
}

func NewComputerPlayer() *ComputerPlayer {
	return &ComputerPlayer{}
}

func (c *ComputerPlayer) Name() string {
	return "computer"
}

func (c *ComputerPlayer) Move(ctx context.Context, b *board.Board, mark board.Cell) (int, error) {
	if c.engine == nil || c.engine.Maximizer() != mark {
		c.engine = engine.NewMinimax(mark)
	}

	c.last = c.engine.Search(ctx, b)
	if c.last.Move == -1 {
		return -1, fmt.Errorf("no move for %v on a full board %s", mark, b)
	}
	return c.last.Move, nil
}

func (c *ComputerPlayer) LastResult() engine.Result {
	return c.last
}
