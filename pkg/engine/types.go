package engine

import (
	"fmt"
	"strings"
)

// Game-theoretical value of a position, from the maximizer's perspective
type Score int

const (
	ScoreLoss Score = -1
	ScoreDraw Score = 0
	ScoreWin  Score = 1

	// bounds, outside of any reachable score
	scoreMin = ScoreLoss - 1
	scoreMax = ScoreWin + 1
)

func (s Score) String() string {
	switch s {
	case ScoreWin:
		return "win"
	case ScoreDraw:
		return "draw"
	case ScoreLoss:
		return "loss"
	}
	return fmt.Sprintf("score(%d)", int(s))
}

// Evaluation of a single root move
type Line struct {
	Move  int
	Score Score
}

type Result struct {
	// Best move, -1 if there were no empty cells
	Move  int
	Score Score
	// Every root move with its score, in index order
	Lines  []Line
	Nodes  uint64
	TimeMs int
}

func (r Result) String() string {
	builder := strings.Builder{}
	fmt.Fprintf(&builder, "move=%d score=%s nodes=%d time=%dms lines=[", r.Move, r.Score, r.Nodes, r.TimeMs)
	for i, line := range r.Lines {
		if i > 0 {
			builder.WriteByte(' ')
		}
		fmt.Fprintf(&builder, "%d:%+d", line.Move, int(line.Score))
	}
	builder.WriteByte(']')
	return builder.String()
}
