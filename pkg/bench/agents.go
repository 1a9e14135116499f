package bench

import (
	"context"
	"math/rand"
	"time"

	"github.com/IlikeChooros/go-tictactoe/pkg/board"
	"github.com/IlikeChooros/go-tictactoe/pkg/engine"
)

type SeedGeneratorFnType func() int64

var SeedGeneratorFn SeedGeneratorFnType = func() int64 {
	return time.Now().UnixNano()
}

// Set custom seed generator function for the random agents and the arena,
// by default uses current time in nanoseconds
func SetSeedGeneratorFn(f SeedGeneratorFnType) {
	if f != nil {
		SeedGeneratorFn = f
	}
}

// Agent picks moves for either side of the board. Agents are not required
// to be safe for concurrent use, the arena gives each worker its own clone.
type Agent interface {
	Name() string
	// Must return an empty cell, the board is non-terminal and has at least one
	NextMove(ctx context.Context, b *board.Board, mark board.Cell) int
	Clone() Agent
}

// Plays the optimal move found by the full-depth minimax search
type MinimaxAgent struct {
	searchers map[board.Cell]*engine.Minimax
}

func NewMinimaxAgent() *MinimaxAgent {
	return &MinimaxAgent{
		searchers: map[board.Cell]*engine.Minimax{
			board.Cross:  engine.NewMinimax(board.Cross),
			board.Circle: engine.NewMinimax(board.Circle),
		},
	}
}

func (a *MinimaxAgent) Name() string {
	return "minimax"
}

func (a *MinimaxAgent) NextMove(ctx context.Context, b *board.Board, mark board.Cell) int {
	return a.searchers[mark].Search(ctx, b).Move
}

// Total number of positions searched, for both marks
func (a *MinimaxAgent) Nodes() uint64 {
	return a.searchers[board.Cross].Nodes() + a.searchers[board.Circle].Nodes()
}

func (a *MinimaxAgent) Clone() Agent {
	return &MinimaxAgent{
		searchers: map[board.Cell]*engine.Minimax{
			board.Cross:  a.searchers[board.Cross].Clone(),
			board.Circle: a.searchers[board.Circle].Clone(),
		},
	}
}

// Picks uniformly among the empty cells
type RandomAgent struct {
	rand *rand.Rand
}

func NewRandomAgent(seed int64) *RandomAgent {
	return &RandomAgent{rand: rand.New(rand.NewSource(seed))}
}

func (a *RandomAgent) Name() string {
	return "random"
}

func (a *RandomAgent) NextMove(_ context.Context, b *board.Board, _ board.Cell) int {
	moves := b.EmptyCells()
	return moves.Moves[a.rand.Intn(int(moves.Size))]
}

// The clone gets its own generator, seeded from the original one
func (a *RandomAgent) Clone() Agent {
	return NewRandomAgent(a.rand.Int63())
}

// Plays a fixed list of cells in order, skipping the occupied ones,
// falls back to the first empty cell when the list runs out
type ScriptedAgent struct {
	script []int
	next   int
}

func NewScriptedAgent(script ...int) *ScriptedAgent {
	return &ScriptedAgent{script: script}
}

func (a *ScriptedAgent) Name() string {
	return "scripted"
}

func (a *ScriptedAgent) NextMove(_ context.Context, b *board.Board, _ board.Cell) int {
	for a.next < len(a.script) {
		index := a.script[a.next]
		a.next++
		if b.Get(index) == board.Empty {
			return index
		}
	}
	return b.EmptyCells().Moves[0]
}

// Start the script over, called by the arena before every game
func (a *ScriptedAgent) Reset() {
	a.next = 0
}

func (a *ScriptedAgent) Clone() Agent {
	return NewScriptedAgent(a.script...)
}
