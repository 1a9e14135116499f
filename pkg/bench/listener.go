package bench

// first terminal row used by per-worker progress lines
const statsRowStart = 1

type ListenerLike interface {
	SetRow(row int)
	OnStart()
	OnGameStart()
	OnMoveMade(info VersusWorkerInfo)
	OnFinishedGame(info VersusWorkerInfo)
	OnFinishedWork(info VersusWorkerInfo)
	// called once, by the first worker, after every worker is done
	Summary(summary VersusSummaryInfo)
	OnEnd()
	// every worker gets its own clone
	Clone() ListenerLike
}

// Ignores every event, embed it to implement only a few callbacks
type DefaultListener struct{}

func (d DefaultListener) SetRow(row int) {}
func (d DefaultListener) OnStart() {}
func (d DefaultListener) OnGameStart() {}
func (d DefaultListener) OnMoveMade(VersusWorkerInfo) {}
func (d DefaultListener) OnFinishedGame(VersusWorkerInfo) {}
func (d DefaultListener) OnFinishedWork(VersusWorkerInfo) {}
func (d DefaultListener) Summary(VersusSummaryInfo) {}
func (d DefaultListener) OnEnd() {}
func (d DefaultListener) Clone() ListenerLike { return DefaultListener{} }
