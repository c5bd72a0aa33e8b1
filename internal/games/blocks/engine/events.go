package engine

// Event is a notification raised by the engine for presentation and
// persistence layers. Events are plain data and are drained with
// Engine.Events.
type Event interface {
	isEvent()
}

// PieceSpawned is raised when a new piece enters the board.
type PieceSpawned struct {
	Type   int
	Anchor Point
}

// PieceLocked is raised when the active piece is merged into the board.
type PieceLocked struct {
	Type   int
	Anchor Point
	Bonus  int
}

// LinesCleared is raised after a lock that removed at least one row.
type LinesCleared struct {
	Count   int
	Bonus   int
	Message Message
}

// LevelChanged is raised when the cleared-lines total crosses a level.
type LevelChanged struct {
	Level      int
	IntervalMs int
}

// GameOver is raised once when a spawn collides. Result carries no name; the
// caller attaches one before persisting.
type GameOver struct {
	Result Result
}

func (PieceSpawned) isEvent() {}
func (PieceLocked) isEvent()  {}
func (LinesCleared) isEvent() {}
func (LevelChanged) isEvent() {}
func (GameOver) isEvent()     {}
