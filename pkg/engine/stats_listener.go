package engine

type StatsListener struct {
	// called after each root move is fully evaluated
	onMove func(Line)

	// called once the search finishes, with the final result
	onStop func(Result)
}

func NewStatsListener() StatsListener {
	return StatsListener{}
}

// Attach root move callback, receives moves in ascending index order
func (listener *StatsListener) OnMove(onMove func(Line)) *StatsListener {
	listener.onMove = onMove
	return listener
}

// Attach 'on search end' callback
func (listener *StatsListener) OnStop(onStop func(Result)) *StatsListener {
	listener.onStop = onStop
	return listener
}
