package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/IlikeChooros/go-tictactoe/pkg/board"
	"github.com/IlikeChooros/go-tictactoe/pkg/engine"
	"github.com/muesli/termenv"
)

// Symbols is the presentation table of the three cell states
type Symbols struct {
	Empty  string
	Cross  string
	Circle string
}

func DefaultSymbols() Symbols {
	return Symbols{Empty: "_", Cross: "x", Circle: "o"}
}

func (s Symbols) Of(c board.Cell) string {
	switch c {
	case board.Cross:
		return s.Cross
	case board.Circle:
		return s.Circle
	}
	return s.Empty
}

const (
	crossColor  = "9"  // bright red
	circleColor = "12" // bright blue
	hintColor   = "8"  // gray
)

// Renderer draws the board and game messages on a terminal
type Renderer struct {
	out     *termenv.Output
	symbols Symbols
}

// NewRenderer writes to 'w', with 'color' false every style is dropped.
// When 'w' is not a terminal the profile falls back to plain text anyway.
func NewRenderer(w io.Writer, symbols Symbols, color bool) *Renderer {
	opts := []termenv.OutputOption{}
	if !color {
		opts = append(opts, termenv.WithProfile(termenv.Ascii))
	}
	return &Renderer{
		out:     termenv.NewOutput(w, opts...),
		symbols: symbols,
	}
}

func (r *Renderer) Output() *termenv.Output {
	return r.out
}

func (r *Renderer) Clear() {
	r.out.ClearScreen()
}

func (r *Renderer) mark(c board.Cell) string {
	style := r.out.String(r.symbols.Of(c))
	switch c {
	case board.Cross:
		style = style.Foreground(r.out.Color(crossColor)).Bold()
	case board.Circle:
		style = style.Foreground(r.out.Color(circleColor)).Bold()
	default:
		style = style.Faint()
	}
	return style.String()
}

// Board returns the grid, rows top to bottom, next to the keypad layout
func (r *Renderer) Board(b *board.Board) string {
	var cells [board.Size]string
	for index, cell := range b.All() {
		cells[index] = r.mark(cell)
	}

	var sb strings.Builder
	for row := range 3 {
		if row > 0 {
			sb.WriteString("---+---+---\n")
		}
		fmt.Fprintf(&sb, " %s | %s | %s ", cells[row*3], cells[row*3+1], cells[row*3+2])

		keys := r.out.String(fmt.Sprintf("   %d %d %d",
			IndexToNumpad(row*3), IndexToNumpad(row*3+1), IndexToNumpad(row*3+2)),
		).Foreground(r.out.Color(hintColor))
		sb.WriteString(keys.String())
		sb.WriteByte('\n')
	}
	return sb.String()
}

func (r *Renderer) DrawBoard(b *board.Board) {
	fmt.Fprint(r.out, r.Board(b))
}

func (r *Renderer) Printf(format string, args ...any) {
	fmt.Fprintf(r.out, format, args...)
}

// Prompt asks the player with given mark for the next key
func (r *Renderer) Prompt(mark board.Cell) {
	fmt.Fprintf(r.out, "%s to move (1-9, q to quit): ", r.mark(mark))
}

func (r *Renderer) Error(err error) {
	fmt.Fprintln(r.out, r.out.String(err.Error()).Foreground(r.out.Color(crossColor)).String())
}

// Analysis prints the score of every root move of a search, using keypad keys
func (r *Renderer) Analysis(result engine.Result) {
	parts := make([]string, 0, len(result.Lines))
	for _, line := range result.Lines {
		parts = append(parts, fmt.Sprintf("%d:%s", IndexToNumpad(line.Move), line.Score))
	}
	fmt.Fprintf(r.out, "%s\n", r.out.String(
		fmt.Sprintf("analysis [%s] nodes %d, %dms", strings.Join(parts, " "), result.Nodes, result.TimeMs),
	).Faint().String())
}

// Banner announces how the game ended, 'names' holds the player name per mark
func (r *Renderer) Banner(termination engine.Termination, names map[board.Cell]string) {
	var text string
	switch winner := termination.Winner(); {
	case termination == engine.TerminationDraw:
		text = "It's a draw!"
	case winner != board.Empty:
		text = fmt.Sprintf("%s (%s) wins!", r.symbols.Of(winner), names[winner])
	default:
		text = "Game aborted"
	}
	fmt.Fprintln(r.out, r.out.String(text).Bold().String())
}
