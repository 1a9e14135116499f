package bench

import "sync"

// Collects every finished game and the summary, shared by all of its clones
type RecordingListener struct {
	DefaultListener
	state *recordingState
}

type recordingState struct {
	mu      sync.Mutex
	games   []VersusWorkerInfo
	summary *VersusSummaryInfo
}

func NewRecordingListener() *RecordingListener {
	return &RecordingListener{state: &recordingState{}}
}

func (rl *RecordingListener) OnFinishedGame(info VersusWorkerInfo) {
	info.Moves = append([]int(nil), info.Moves...)

	rl.state.mu.Lock()
	defer rl.state.mu.Unlock()
	rl.state.games = append(rl.state.games, info)
}

func (rl *RecordingListener) Summary(summary VersusSummaryInfo) {
	rl.state.mu.Lock()
	defer rl.state.mu.Unlock()
	rl.state.summary = &summary
}

func (rl *RecordingListener) Clone() ListenerLike {
	return &RecordingListener{state: rl.state}
}

// Finished games, in completion order
func (rl *RecordingListener) Games() []VersusWorkerInfo {
	rl.state.mu.Lock()
	defer rl.state.mu.Unlock()
	return append([]VersusWorkerInfo(nil), rl.state.games...)
}

func (rl *RecordingListener) LastSummary() (VersusSummaryInfo, bool) {
	rl.state.mu.Lock()
	defer rl.state.mu.Unlock()
	if rl.state.summary == nil {
		return VersusSummaryInfo{}, false
	}
	return *rl.state.summary, true
}
