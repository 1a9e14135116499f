package bench

import (
	"context"
	"fmt"
	"os"
	"sync"
	"testing"

	"github.com/IlikeChooros/go-tictactoe/pkg/board"
	"github.com/IlikeChooros/go-tictactoe/pkg/engine"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	SetSeedGeneratorFn(func() int64 {
		return 42
	})
	fmt.Printf("Using seed %d\n", SeedGeneratorFn())

	os.Exit(m.Run())
}

func TestPlayGameMinimaxDraws(t *testing.T) {
	moves := 0
	record := PlayGame(context.Background(), NewMinimaxAgent(), NewMinimaxAgent(), func(m []int) {
		moves = len(m)
	})

	assert.Equal(t, engine.TerminationDraw, record.Termination)
	assert.Len(t, record.Moves, board.Size)
	assert.Equal(t, board.Size, moves)
	assert.True(t, record.Final.IsFull())
	assert.Equal(t, GameOutcome{IsDraw: true}, record.Outcome())
}

func TestPlayGameScripted(t *testing.T) {
	// cross takes the top row, circle plays the middle one but is one move short
	record := PlayGame(context.Background(), NewScriptedAgent(0, 1, 2), NewScriptedAgent(3, 4, 5), nil)

	assert.Equal(t, []int{0, 3, 1, 4, 2}, record.Moves)
	assert.Equal(t, engine.TerminationCrossWon, record.Termination)
	assert.Equal(t, "xxx/oo-/---", record.Final.String())
	assert.Equal(t, GameOutcome{FirstPlayerWon: true}, record.Outcome())
}

func TestPlayGameCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	record := PlayGame(ctx, NewMinimaxAgent(), NewMinimaxAgent(), nil)
	assert.Equal(t, engine.TerminationNone, record.Termination)
	assert.Empty(t, record.Moves)
}

func TestScriptedAgent(t *testing.T) {
	agent := NewScriptedAgent(4, 0)
	b := board.MustParse("---/-x-/---")

	// 4 is taken, so the next scripted cell is used
	assert.Equal(t, 0, agent.NextMove(context.Background(), &b, board.Circle))
	b.Set(0, board.Circle)

	// script exhausted, first empty cell
	assert.Equal(t, 1, agent.NextMove(context.Background(), &b, board.Circle))

	agent.Reset()
	assert.Equal(t, 1, agent.NextMove(context.Background(), &b, board.Circle))
}

func TestRandomAgentPicksEmptyCells(t *testing.T) {
	agent := NewRandomAgent(SeedGeneratorFn())
	b := board.MustParse("xox/-o-/x-o")

	for range 100 {
		move := agent.NextMove(context.Background(), &b, board.Cross)
		assert.Contains(t, []int{3, 5, 7}, move)
	}
}

func TestToAgentResult(t *testing.T) {
	tests := []struct {
		outcome     GameOutcome
		p1WentFirst bool
		want        VersusMatchResult
	}{
		{GameOutcome{IsDraw: true}, true, VersusDraw},
		{GameOutcome{IsDraw: true}, false, VersusDraw},
		{GameOutcome{FirstPlayerWon: true}, true, VersusPl1Win},
		{GameOutcome{FirstPlayerWon: true}, false, VersusPl2Win},
		{GameOutcome{FirstPlayerWon: false}, true, VersusPl2Win},
		{GameOutcome{FirstPlayerWon: false}, false, VersusPl1Win},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, toAgentResult(tt.outcome, tt.p1WentFirst), "%+v p1 first=%v", tt.outcome, tt.p1WentFirst)
	}
}

func TestArenaMinimaxVsMinimax(t *testing.T) {
	arena := NewVersusArena(NewMinimaxAgent(), NewMinimaxAgent())
	arena.Setup(6, 3)

	listener := NewRecordingListener()
	arena.Start(listener)
	arena.Wait()

	assert.Equal(t, 6, arena.Total())
	assert.Equal(t, 6, arena.Draws())
	assert.Zero(t, arena.P1Wins())
	assert.Zero(t, arena.P2Wins())

	games := listener.Games()
	require.Len(t, games, 6)
	for _, game := range games {
		assert.Equal(t, engine.TerminationDraw, game.Termination)
		assert.Len(t, game.Moves, board.Size)
	}

	summary, ok := listener.LastSummary()
	require.True(t, ok)
	assert.Equal(t, VersusSummaryInfo{
		TotalGames: 6,
		Draws:      6,
		Workers:    3,
		P1Name:     "minimax",
		P2Name:     "minimax",
	}, summary)
}

func TestArenaMinimaxNeverLosesToRandom(t *testing.T) {
	arena := NewVersusArena(NewMinimaxAgent(), NewRandomAgent(SeedGeneratorFn()))
	arena.Setup(20, 4)
	arena.Start(nil)
	arena.Wait()

	assert.Equal(t, 20, arena.Total())
	assert.Zero(t, arena.P2Wins(), "minimax lost %d games", arena.P2Wins())
	assert.Equal(t, arena.P1Wins(), arena.FirstToMoveWins()+arena.SecondToMoveWins())
}

func TestArenaUnevenSplit(t *testing.T) {
	// 5 games on 3 workers: 2 + 2 + 1
	arena := NewVersusArena(NewScriptedAgent(0, 1, 2), NewScriptedAgent(3, 4, 5))
	arena.Setup(5, 3)

	listener := NewRecordingListener()
	arena.Start(listener)
	arena.Wait()

	assert.Equal(t, 5, arena.Total())
	// whoever starts completes the top row first
	assert.Equal(t, 5, arena.FirstToMoveWins())
	assert.Zero(t, arena.Draws())

	perWorker := map[int]int{}
	for _, game := range listener.Games() {
		perWorker[game.WorkerID]++
	}
	assert.Equal(t, map[int]int{0: 2, 1: 2, 2: 1}, perWorker)
}

func TestArenaCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	arena := NewVersusArena(NewMinimaxAgent(), NewMinimaxAgent()).WithContext(ctx)
	arena.Setup(10, 2)

	listener := NewRecordingListener()
	arena.Start(listener)
	arena.Wait()

	assert.Zero(t, arena.Total())
	_, ok := listener.LastSummary()
	assert.True(t, ok)
}

// Records the row handed to every worker's clone
type rowListener struct {
	DefaultListener
	mu   *sync.Mutex
	rows *[]int
}

func (l rowListener) SetRow(row int) {
	l.mu.Lock()
	defer l.mu.Unlock()
	*l.rows = append(*l.rows, row)
}

func (l rowListener) Clone() ListenerLike {
	return l
}

func TestArenaAssignsRows(t *testing.T) {
	rows := []int{}
	listener := rowListener{mu: &sync.Mutex{}, rows: &rows}
	assert.Equal(t, DefaultListener{}, DefaultListener{}.Clone())

	arena := NewVersusArena(NewScriptedAgent(0, 1, 2), NewScriptedAgent(3, 4, 5))
	arena.Setup(3, 3)
	arena.Start(listener)
	arena.Wait()

	assert.Equal(t, []int{statsRowStart, statsRowStart + 1, statsRowStart + 2}, rows)
}

func BenchmarkMinimaxSelfPlay(b *testing.B) {
	p1, p2 := NewMinimaxAgent(), NewMinimaxAgent()
	for i := 0; i < b.N; i++ {
		PlayGame(context.Background(), p1, p2, nil)
	}
}
