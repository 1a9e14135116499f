package bench

import (
	"context"
	"math/rand"
	"runtime"
	"sync"
	"sync/atomic"

	"github.com/IlikeChooros/go-tictactoe/pkg/board"
	"github.com/IlikeChooros/go-tictactoe/pkg/engine"
)

/*
Arena benchmark subpackage, plays a series of games between two agents.
Every worker owns its board and clones of both agents, the first mover
is picked at random for each game.
*/

type VersusArena struct {
	VersusArenaStats
	Player1  Agent
	Player2  Agent
	NGames   uint
	NThreads uint
	wg       sync.WaitGroup
	finished atomic.Bool
	ctx      context.Context
}

func NewVersusArena(player1, player2 Agent) *VersusArena {
	return &VersusArena{
		Player1:  player1,
		Player2:  player2,
		NGames:   100,
		NThreads: 2,
		ctx:      context.Background(),
	}
}

func (va *VersusArena) WithContext(ctx context.Context) *VersusArena {
	va.ctx = ctx
	return va
}

func (va *VersusArena) Setup(nGames uint, nThreads uint) {
	va.NGames = nGames
	va.NThreads = max(1, nThreads)
}

// Block until every worker is done and the summary was delivered
func (va *VersusArena) Wait() {
	va.wg.Wait()

	for !va.finished.Load() {
		runtime.Gosched()
	}
}

func (va *VersusArena) Summary() VersusSummaryInfo {
	return VersusSummaryInfo{
		TotalGames:       va.Total(),
		P1Wins:           va.P1Wins(),
		P2Wins:           va.P2Wins(),
		Draws:            va.Draws(),
		FirstToMoveWins:  va.FirstToMoveWins(),
		SecondToMoveWins: va.SecondToMoveWins(),
		Workers:          int(va.NThreads),
		P1Name:           va.Player1.Name(),
		P2Name:           va.Player2.Name(),
	}
}

func (va *VersusArena) Start(listener ListenerLike) {
	if listener == nil {
		listener = DefaultListener{}
	}

	// Start equally distributed work between worker threads
	va.finished.Store(false)
	va.NThreads = max(1, va.NThreads)
	listener.OnStart()
	nGames := va.NGames / va.NThreads
	rest := va.NGames % va.NThreads
	// register every worker up front, the first one waits on the others
	va.wg.Add(int(va.NThreads))

	for i := range va.NThreads {
		delta := uint(0)
		if rest > 0 {
			delta = 1
			rest--
		}

		// Always use a clone, agents keep per-game state
		p1 := va.Player1.Clone()
		p2 := va.Player2.Clone()
		l := listener.Clone()
		l.SetRow(int(i) + statsRowStart)

		go va.worker(int(i), int(nGames+delta), l, p1, p2)
	}
}

func (va *VersusArena) worker(id, nGames int, listener ListenerLike, p1, p2 Agent) {
	r := rand.New(rand.NewSource(SeedGeneratorFn() + int64(id)))
	localStats := VersusArenaStats{}
	info := VersusWorkerInfo{
		WorkerID: id,
		NGames:   nGames,
		P1Name:   p1.Name(),
		P2Name:   p2.Name(),
	}

Loop:
	for i := range nGames {
		select {
		case <-va.ctx.Done():
			break Loop
		default:
			// continue
		}

		p1First := r.Int()%2 == 0
		first, second := p1, p2
		if !p1First {
			first, second = p2, p1
		}

		listener.OnGameStart()
		record := PlayGame(va.ctx, first, second, func(moves []int) {
			info.Moves = moves
			info.GameMoveNum = len(moves)
			listener.OnMoveMade(info)
		})

		// a cancelled game is not counted
		if record.Termination == engine.TerminationNone {
			break Loop
		}

		outcome := record.Outcome()
		result := toAgentResult(outcome, p1First)
		va.add(result, outcome)
		localStats.add(result, outcome)

		info.FinishedGames = i + 1
		info.Moves = record.Moves
		info.GameMoveNum = len(record.Moves)
		info.Termination = record.Termination
		info.P1Wins = localStats.P1Wins()
		info.P2Wins = localStats.P2Wins()
		info.Draws = localStats.Draws()
		info.FirstToMoveWins = localStats.FirstToMoveWins()
		info.SecondToMoveWins = localStats.SecondToMoveWins()
		listener.OnFinishedGame(info)
	}

	listener.OnFinishedWork(info)
	va.wg.Done()

	if id == 0 {
		va.wg.Wait()
		listener.Summary(va.Summary())
		listener.OnEnd()
		va.finished.Store(true)
	}
}

type resetter interface {
	Reset()
}

// PlayGame plays a single game from the empty board, 'first' plays cross.
// 'onMove' (optional) receives the move history after every move.
// If the context gets cancelled, the returned record has no termination.
func PlayGame(ctx context.Context, first, second Agent, onMove func([]int)) GameRecord {
	for _, agent := range []Agent{first, second} {
		if r, ok := agent.(resetter); ok {
			r.Reset()
		}
	}

	b := board.New()
	moves := make([]int, 0, board.Size)
	agents := map[board.Cell]Agent{board.Cross: first, board.Circle: second}
	mark := board.Cross

	termination := engine.Status(b)
	for termination == engine.TerminationNone {
		select {
		case <-ctx.Done():
			return GameRecord{Moves: moves, Final: *b}
		default:
			// continue
		}

		move := agents[mark].NextMove(ctx, b, mark)
		if b.Get(move) != board.Empty {
			panic("bench: agent " + agents[mark].Name() + " played an occupied cell")
		}

		b.Set(move, mark)
		moves = append(moves, move)
		if onMove != nil {
			onMove(moves)
		}

		termination = engine.Status(b)
		mark = mark.Opponent()
	}

	return GameRecord{Moves: moves, Termination: termination, Final: *b}
}
