package engine

// Snapshot is a read-only copy of the engine state for renderers and
// determinism tests.
type Snapshot struct {
	Mode       Mode
	Phase      Phase
	Paused     bool
	Board      [][]Cell
	Piece      Shape
	Anchor     Point
	Next       Shape
	Score      int
	Lines      int
	Level      int
	IntervalMs int
	Spawned    int
	Usage      []int // indexed by catalog position
}

// Snapshot copies the current state. The result shares no memory with e.
func (e *Engine) Snapshot() Snapshot {
	usage := make([]int, CatalogSize(e.cfg.Mode))
	for i := range usage {
		usage[i] = e.Usage(i)
	}
	return Snapshot{
		Mode:       e.cfg.Mode,
		Phase:      e.phase,
		Paused:     e.paused,
		Board:      e.board.Rows(),
		Piece:      e.piece.clone(),
		Anchor:     e.anchor,
		Next:       e.next.clone(),
		Score:      e.score,
		Lines:      e.lines,
		Level:      e.level,
		IntervalMs: e.interval,
		Spawned:    e.spawned,
		Usage:      usage,
	}
}
