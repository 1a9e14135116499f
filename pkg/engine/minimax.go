package engine

import (
	"context"
	"fmt"
	"time"

	"github.com/IlikeChooros/go-tictactoe/pkg/board"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
)

const instrumentationName = "github.com/IlikeChooros/go-tictactoe/pkg/engine"

var (
	tracer = otel.Tracer(instrumentationName)
	meter  = otel.Meter(instrumentationName)

	searchNodes, _ = meter.Int64Counter("engine.search.nodes",
		metric.WithDescription("Number of positions visited by the minimax search"),
		metric.WithUnit("{node}"),
	)
	searchDuration, _ = meter.Float64Histogram("engine.search.duration",
		metric.WithDescription("Wall time of a single minimax search"),
		metric.WithUnit("ms"),
	)
)

// Full-depth minimax over a single board. The board is borrowed for the
// duration of the search: every speculative move is undone before returning.
type searcher struct {
	board     *board.Board
	maximizer board.Cell
	minimizer board.Cell
	nodes     uint64
}

func checkMaximizer(maximizer board.Cell) {
	if maximizer != board.Cross && maximizer != board.Circle {
		panic(fmt.Sprintf("engine: maximizer must be cross or circle, got %v", maximizer))
	}
}

func newSearcher(b *board.Board, maximizer board.Cell) *searcher {
	checkMaximizer(maximizer)
	return &searcher{
		board:     b,
		maximizer: maximizer,
		minimizer: maximizer.Opponent(),
	}
}

func (s *searcher) evaluate(maximizing bool) Score {
	s.nodes++

	if IsWinner(s.board, s.maximizer) {
		return ScoreWin
	}
	if IsWinner(s.board, s.minimizer) {
		return ScoreLoss
	}
	// wins are already ruled out
	if s.board.IsFull() {
		return ScoreDraw
	}

	mark, best := s.minimizer, scoreMax
	if maximizing {
		mark, best = s.maximizer, scoreMin
	}

	for index := range board.Size {
		if s.board.Get(index) != board.Empty {
			continue
		}

		s.board.Set(index, mark)
		score := s.evaluate(!maximizing)
		s.board.Set(index, board.Empty)

		if maximizing {
			best = max(best, score)
		} else {
			best = min(best, score)
		}
	}

	return best
}

// Try every empty cell for the maximizer, keeps the first one with strictly
// the best score, so ties resolve to the lowest index
func (s *searcher) root(onMove func(Line)) (bestMove int, bestScore Score, lines []Line) {
	bestMove, bestScore = -1, scoreMin
	lines = make([]Line, 0, board.Size)

	for index := range board.Size {
		if s.board.Get(index) != board.Empty {
			continue
		}

		s.board.Set(index, s.maximizer)
		score := s.evaluate(false)
		s.board.Set(index, board.Empty)

		line := Line{Move: index, Score: score}
		lines = append(lines, line)
		if onMove != nil {
			onMove(line)
		}

		if score > bestScore {
			bestMove, bestScore = index, score
		}
	}

	return bestMove, bestScore, lines
}

// Evaluate returns the minimax score of the position for 'maximizer', with
// 'maximizing' telling whether the maximizer is the side to move.
// The board is left unchanged.
func Evaluate(b *board.Board, maximizer board.Cell, maximizing bool) Score {
	return newSearcher(b, maximizer).evaluate(maximizing)
}

// FindBestMove returns the optimal cell for 'maximizer' to play, or -1 if
// the board has no empty cells. The board is left unchanged.
func FindBestMove(b *board.Board, maximizer board.Cell) int {
	move, _, _ := newSearcher(b, maximizer).root(nil)
	return move
}

type Stats struct {
	searches int
	nodes    uint64
	timeMs   int
}

// Number of searches ran so far
func (stats *Stats) Searches() int {
	return stats.searches
}

// Total number of positions visited across all searches
func (stats *Stats) Nodes() uint64 {
	return stats.nodes
}

// Total time spent searching, in milliseconds
func (stats *Stats) TimeMs() int {
	return stats.timeMs
}

// Minimax is a reusable searcher playing as a fixed mark, keeping
// cumulative statistics and reporting through a StatsListener.
// Not safe for concurrent use, clone it for each goroutine.
type Minimax struct {
	Stats
	maximizer board.Cell
	listener  StatsListener
}

func NewMinimax(maximizer board.Cell) *Minimax {
	checkMaximizer(maximizer)
	return &Minimax{
		maximizer: maximizer,
		listener:  NewStatsListener(),
	}
}

func (m *Minimax) Maximizer() board.Cell {
	return m.maximizer
}

func (m *Minimax) SetListener(listener StatsListener) {
	m.listener = listener
}

func (m *Minimax) ResetListener() {
	m.listener = NewStatsListener()
}

// Copy of the searcher with the same mark and listener, but fresh statistics
func (m *Minimax) Clone() *Minimax {
	return &Minimax{
		maximizer: m.maximizer,
		listener:  m.listener,
	}
}

// Search finds the best move on given board for the maximizer.
// The context only carries telemetry; the search always runs to completion.
func (m *Minimax) Search(ctx context.Context, b *board.Board) Result {
	ctx, span := tracer.Start(ctx, "engine.Search", trace.WithAttributes(
		attribute.String("engine.maximizer", m.maximizer.String()),
		attribute.String("engine.board", b.String()),
	))
	defer span.End()

	start := time.Now()
	s := newSearcher(b, m.maximizer)
	move, score, lines := s.root(m.listener.onMove)
	elapsed := time.Since(start)

	result := Result{
		Move:   move,
		Score:  score,
		Lines:  lines,
		Nodes:  s.nodes,
		TimeMs: int(elapsed.Milliseconds()),
	}
	if move == -1 {
		// nothing to search, report a draw instead of the sentinel bound
		result.Score = ScoreDraw
		span.SetStatus(codes.Error, "no empty cells")
	}

	m.searches++
	m.nodes += s.nodes
	m.timeMs += result.TimeMs

	span.SetAttributes(
		attribute.Int("engine.move", move),
		attribute.Int("engine.score", int(result.Score)),
		attribute.Int64("engine.nodes", int64(s.nodes)),
	)
	attrs := metric.WithAttributes(attribute.String("engine.maximizer", m.maximizer.String()))
	searchNodes.Add(ctx, int64(s.nodes), attrs)
	searchDuration.Record(ctx, float64(elapsed.Microseconds())/1e3, attrs)

	if m.listener.onStop != nil {
		m.listener.onStop(result)
	}

	return result
}
