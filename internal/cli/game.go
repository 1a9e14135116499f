package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/IlikeChooros/go-tictactoe/pkg/board"
	"github.com/IlikeChooros/go-tictactoe/pkg/engine"
	"github.com/google/uuid"
)

var ErrIllegalMove = errors.New("illegal move")

type analyzer interface {
	LastResult() engine.Result
}

// Game is a single transient session between two players
type Game struct {
	ID       uuid.UUID
	board    board.Board
	players  map[board.Cell]Player
	first    board.Cell
	renderer *Renderer
	log      *slog.Logger
	start    *bufio.Scanner
}

func NewGame(cross, circle Player, renderer *Renderer, log *slog.Logger) *Game {
	id := uuid.New()
	return &Game{
		ID:       id,
		players:  map[board.Cell]Player{board.Cross: cross, board.Circle: circle},
		first:    board.Cross,
		renderer: renderer,
		log:      log.With("game", id.String()),
	}
}

// SetFirst sets which mark moves first, cross by default
func (g *Game) SetFirst(mark board.Cell) *Game {
	if mark != board.Cross && mark != board.Circle {
		panic(fmt.Sprintf("cli: first mark must be cross or circle, got %v", mark))
	}
	g.first = mark
	return g
}

// SetStartPrompt makes Play wait for ENTER on 'scanner' before the first move
func (g *Game) SetStartPrompt(scanner *bufio.Scanner) *Game {
	g.start = scanner
	return g
}

func (g *Game) Board() board.Board {
	return g.board
}

func (g *Game) names() map[board.Cell]string {
	return map[board.Cell]string{
		board.Cross:  g.players[board.Cross].Name(),
		board.Circle: g.players[board.Circle].Name(),
	}
}

func (g *Game) waitForStart() error {
	if g.start == nil {
		return nil
	}

	g.renderer.Printf("Press ENTER to begin...")
	if !g.start.Scan() {
		if err := g.start.Err(); err != nil {
			return fmt.Errorf("unable to read input: %w", err)
		}
		return ErrAborted
	}
	return nil
}

// Play runs the game until a win or a draw and returns how it ended.
// On error the termination is TerminationNone.
func (g *Game) Play(ctx context.Context) (engine.Termination, error) {
	g.log.Info("game started",
		"cross", g.players[board.Cross].Name(),
		"circle", g.players[board.Circle].Name(),
		"first", g.first.String(),
	)

	if err := g.waitForStart(); err != nil {
		g.log.Info("game aborted before start", "err", err)
		return engine.TerminationNone, err
	}

	mark := g.first
	var analysis *engine.Result
	for ply := 1; ; ply++ {
		g.renderer.Clear()
		g.renderer.DrawBoard(&g.board)
		if analysis != nil {
			g.renderer.Analysis(*analysis)
			analysis = nil
		}

		player := g.players[mark]
		index, err := player.Move(ctx, &g.board, mark)
		if err != nil {
			g.log.Info("game aborted", "ply", ply, "err", err)
			return engine.TerminationNone, err
		}

		if index < 0 || index >= board.Size || g.board.Get(index) != board.Empty {
			return engine.TerminationNone, fmt.Errorf("%w: %s played %d on %s", ErrIllegalMove, player.Name(), index, g.board)
		}
		g.board.Set(index, mark)

		attrs := []any{"ply", ply, "player", player.Name(), "mark", mark.String(), "cell", index}
		if a, ok := player.(analyzer); ok {
			result := a.LastResult()
			analysis = &result
			attrs = append(attrs, "score", result.Score.String(), "nodes", result.Nodes)
		}
		g.log.Debug("move played", attrs...)

		termination := engine.TerminationNone
		if engine.IsWinner(&g.board, mark) {
			termination = engine.TerminationCrossWon
			if mark == board.Circle {
				termination = engine.TerminationCircleWon
			}
		} else if engine.IsDraw(&g.board) {
			termination = engine.TerminationDraw
		}

		if termination != engine.TerminationNone {
			g.renderer.Clear()
			g.renderer.DrawBoard(&g.board)
			if analysis != nil {
				g.renderer.Analysis(*analysis)
			}
			g.renderer.Banner(termination, g.names())
			g.log.Info("game finished", "termination", termination.String(), "plies", ply, "board", g.board.String())
			return termination, nil
		}

		mark = mark.Opponent()
	}
}
