package pipeline

// State is a stage of a single pipeline run. A run only moves forward:
// Idle → Reading → Aggregating → Ranking → Rendering → Done, or to Failed
// from any stage.
type State int

const (
	StateIdle State = iota
	StateReading
	StateAggregating
	StateRanking
	StateRendering
	StateDone
	StateFailed
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateReading:
		return "reading"
	case StateAggregating:
		return "aggregating"
	case StateRanking:
		return "ranking"
	case StateRendering:
		return "rendering"
	case StateDone:
		return "done"
	case StateFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// Terminal reports whether no further transitions are possible.
func (s State) Terminal() bool {
	return s == StateDone || s == StateFailed
}
