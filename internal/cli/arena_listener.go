package cli

import (
	"fmt"
	"sync"

	"github.com/IlikeChooros/go-tictactoe/pkg/bench"
)

// ArenaListener draws one live progress line per arena worker, followed by
// the summary once every worker is done. Clones share the output lock.
type ArenaListener struct {
	renderer *Renderer
	mu       *sync.Mutex
	workers  int
	row      int
}

func NewArenaListener(renderer *Renderer, workers int) *ArenaListener {
	return &ArenaListener{
		renderer: renderer,
		mu:       &sync.Mutex{},
		workers:  workers,
	}
}

func (l *ArenaListener) SetRow(row int) {
	l.row = row
}

func (l *ArenaListener) OnStart() {
	l.mu.Lock()
	defer l.mu.Unlock()

	out := l.renderer.Output()
	out.ClearScreen()
	out.HideCursor()
}

func (l *ArenaListener) OnGameStart() {}

// a line per move would only flicker, the game count is enough
func (l *ArenaListener) OnMoveMade(bench.VersusWorkerInfo) {}

func (l *ArenaListener) OnFinishedGame(info bench.VersusWorkerInfo) {
	l.line(info, false)
}

func (l *ArenaListener) OnFinishedWork(info bench.VersusWorkerInfo) {
	l.line(info, true)
}

func (l *ArenaListener) line(info bench.VersusWorkerInfo, done bool) {
	l.mu.Lock()
	defer l.mu.Unlock()

	out := l.renderer.Output()
	out.MoveCursor(l.row, 1)
	out.ClearLine()

	state := "playing"
	if done {
		state = out.String("done").Bold().String()
	}
	fmt.Fprintf(out, "worker %d: %d/%d games | %s %d - %d %s | draws %d | %s",
		info.WorkerID, info.FinishedGames, info.NGames,
		info.P1Name, info.P1Wins, info.P2Wins, info.P2Name,
		info.Draws, state,
	)
}

func (l *ArenaListener) Summary(summary bench.VersusSummaryInfo) {
	l.mu.Lock()
	defer l.mu.Unlock()

	out := l.renderer.Output()
	out.MoveCursor(l.workers+2, 1)
	fmt.Fprintf(out, "%s\n", out.String("Summary").Bold().String())
	fmt.Fprintf(out, "games:       %d\n", summary.TotalGames)
	fmt.Fprintf(out, "%-12s %d wins\n", summary.P1Name+":", summary.P1Wins)
	fmt.Fprintf(out, "%-12s %d wins\n", summary.P2Name+":", summary.P2Wins)
	fmt.Fprintf(out, "draws:       %d\n", summary.Draws)
	fmt.Fprintf(out, "first wins:  %d, second wins: %d\n", summary.FirstToMoveWins, summary.SecondToMoveWins)
}

func (l *ArenaListener) OnEnd() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.renderer.Output().ShowCursor()
}

func (l *ArenaListener) Clone() bench.ListenerLike {
	return &ArenaListener{
		renderer: l.renderer,
		mu:       l.mu,
		workers:  l.workers,
		row:      l.row,
	}
}
