package engine

import (
	"math/rand"

	"github.com/kamstrup/intmap"
)

// Phase is the lifecycle state of the current piece.
type Phase int

const (
	PhaseSpawning Phase = iota
	PhaseActive
	PhaseLocking
	PhaseGameOver
)

// String returns a human-readable name for the phase.
func (p Phase) String() string {
	switch p {
	case PhaseSpawning:
		return "spawning"
	case PhaseActive:
		return "active"
	case PhaseLocking:
		return "locking"
	case PhaseGameOver:
		return "game_over"
	default:
		return "unknown"
	}
}

// Input is a discrete intent queued by a driver and applied on the next Tick.
type Input int

const (
	InputNone Input = iota
	InputLeft
	InputRight
	InputSoftDrop
	InputHardDrop
	InputRotateCW
	InputRotateCCW
	InputRotate180
	InputPause
	InputNewGame
)

// Engine owns one game: board, active and next piece, score and level.
// It is not safe for concurrent use; a driver owns it exclusively.
type Engine struct {
	cfg Config
	rng *rand.Rand

	board  *Board
	piece  Shape
	anchor Point
	next   Shape
	phase  Phase
	paused bool

	score    int
	lines    int
	level    int
	interval int
	dropTime int

	usage   *intmap.Map[int, int]
	spawned int

	queue  []Input
	events []Event
}

// New validates cfg and starts a game.
func New(cfg Config) (*Engine, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	cfg.Slide = cfg.Slide.Clone()
	e := &Engine{
		cfg:   cfg,
		rng:   rand.New(rand.NewSource(cfg.Seed)),
		usage: intmap.New[int, int](CatalogSize(ModeHextris)),
	}
	e.NewGame()
	return e, nil
}

// NewGame discards all game state and starts over with the current mode,
// size and slide table. The random stream continues, so consecutive games
// get different pieces.
func (e *Engine) NewGame() {
	e.board = NewBoard(e.cfg.Width, e.cfg.Height)
	e.score = 0
	e.lines = 0
	e.level = 0
	e.interval = e.cfg.Speed.Interval(0)
	e.dropTime = 0
	e.paused = false
	e.usage.Clear()
	e.spawned = 0
	e.queue = nil
	e.events = nil

	e.next = e.draw()
	e.spawn()
}

// SetMode switches the piece catalog and starts a new game.
func (e *Engine) SetMode(m Mode) error {
	if !m.Valid() {
		return ErrUnknownMode
	}
	e.cfg.Mode = m
	e.NewGame()
	return nil
}

// SetBoardSize resizes the board and starts a new game.
func (e *Engine) SetBoardSize(w, h int) error {
	if err := validateSize(w, h); err != nil {
		return err
	}
	e.cfg.Width = w
	e.cfg.Height = h
	e.NewGame()
	return nil
}

// ConfigureSlide replaces the slide table. The running game is kept.
func (e *Engine) ConfigureSlide(t SlideTable) error {
	if err := t.Validate(); err != nil {
		return err
	}
	e.cfg.Slide = t.Clone()
	return nil
}

// SetSpeedCurve replaces the gravity curve and reapplies it to the current
// level.
func (e *Engine) SetSpeedCurve(c SpeedCurve) error {
	if err := c.Validate(); err != nil {
		return err
	}
	e.cfg.Speed = c
	e.interval = c.Interval(e.level)
	return nil
}

func (e *Engine) draw() Shape {
	return PieceFor(e.cfg.Mode, e.rng.Intn(CatalogSize(e.cfg.Mode)))
}

// spawn promotes the next piece. It reports false and ends the run when the
// spawn anchor collides; the board is left untouched in that case.
func (e *Engine) spawn() bool {
	e.phase = PhaseSpawning
	e.piece = e.next
	e.anchor = Point{X: e.board.Width() / 2, Y: 0}
	e.next = e.draw()

	n, _ := e.usage.Get(e.piece.Type)
	e.usage.Put(e.piece.Type, n+1)
	e.spawned++

	if Collides(e.piece, e.anchor, e.board) {
		e.phase = PhaseGameOver
		e.paused = false
		e.emit(GameOver{Result: e.Result("")})
		return false
	}

	e.phase = PhaseActive
	e.emit(PieceSpawned{Type: e.piece.Type, Anchor: e.anchor})
	return true
}

// MovePiece shifts the active piece. Vertical moves, and all moves when
// sliding is off, must land exactly; horizontal moves may slide. It reports
// whether the piece ended up somewhere new.
func (e *Engine) MovePiece(dx, dy int) bool {
	if e.phase != PhaseActive {
		return false
	}
	target := e.anchor.Add(Point{X: dx, Y: dy})

	if dy != 0 || !e.cfg.Slide.Enabled {
		if Collides(e.piece, target, e.board) {
			return false
		}
		e.anchor = target
		return true
	}

	p, ok := Resolve(e.piece, target, e.board, e.cfg.Slide)
	if !ok || p == e.anchor {
		return false
	}
	e.anchor = p
	return true
}

// RotatePiece turns the active piece about its anchor. Either the rotated
// shape is placed (possibly slid) or nothing changes.
func (e *Engine) RotatePiece(r Rotation) bool {
	if e.phase != PhaseActive {
		return false
	}
	candidate := e.piece.Rotate(r)
	p, ok := Resolve(candidate, e.anchor, e.board, e.cfg.Slide)
	if !ok {
		return false
	}
	e.piece = candidate
	e.anchor = p
	return true
}

// DropOneRow moves the piece down one row. When it cannot move it is locked
// and the next piece is spawned; DropOneRow then returns false.
func (e *Engine) DropOneRow() bool {
	if e.phase != PhaseActive {
		return false
	}
	if e.MovePiece(0, 1) {
		return true
	}
	e.lock()
	return false
}

// HardDrop drops the piece as far as it goes and locks it. It returns the
// number of rows fallen.
func (e *Engine) HardDrop() int {
	if e.phase != PhaseActive {
		return 0
	}
	rows := 0
	for e.MovePiece(0, 1) {
		rows++
	}
	e.lock()
	return rows
}

func (e *Engine) lock() {
	e.phase = PhaseLocking
	e.board.Place(e.piece, e.anchor)

	bonus := LockBonus(e.level)
	e.score += bonus
	e.emit(PieceLocked{Type: e.piece.Type, Anchor: e.anchor, Bonus: bonus})

	if rows := e.board.ClearFullLines(); rows > 0 {
		cleared := ClearBonus(rows)
		e.score += cleared
		e.lines += rows
		e.emit(LinesCleared{Count: rows, Bonus: cleared, Message: MessageFor(e.cfg.Mode, rows)})

		if level := LevelForLines(e.lines); level != e.level {
			e.level = level
			e.interval = e.cfg.Speed.Interval(level)
			e.emit(LevelChanged{Level: level, IntervalMs: e.interval})
		}
	}

	e.spawn()
}

// TogglePause flips the paused flag. A finished game cannot be paused.
func (e *Engine) TogglePause() {
	if e.phase == PhaseGameOver {
		return
	}
	e.paused = !e.paused
}

// Enqueue queues an input for the next Tick.
func (e *Engine) Enqueue(in Input) {
	if in == InputNone {
		return
	}
	e.queue = append(e.queue, in)
}

// Tick applies queued inputs in order, then advances gravity by elapsedMs.
// At most one row is dropped per tick.
func (e *Engine) Tick(elapsedMs int) {
	pending := e.queue
	e.queue = nil
	for _, in := range pending {
		e.apply(in)
	}

	if e.phase != PhaseActive || e.paused {
		return
	}
	e.dropTime += max(elapsedMs, 0)
	if e.dropTime >= e.interval {
		e.dropTime = 0
		e.DropOneRow()
	}
}

func (e *Engine) apply(in Input) {
	switch in {
	case InputPause:
		e.TogglePause()
		return
	case InputNewGame:
		e.NewGame()
		return
	}

	if e.phase != PhaseActive || e.paused {
		return
	}

	switch in {
	case InputLeft:
		e.MovePiece(-1, 0)
	case InputRight:
		e.MovePiece(1, 0)
	case InputSoftDrop:
		e.DropOneRow()
		e.dropTime = 0
	case InputHardDrop:
		e.HardDrop()
		e.dropTime = 0
	case InputRotateCW:
		e.RotatePiece(RotateCW)
	case InputRotateCCW:
		e.RotatePiece(RotateCCW)
	case InputRotate180:
		e.RotatePiece(Rotate180)
	}
}

func (e *Engine) emit(ev Event) {
	e.events = append(e.events, ev)
}

// Events returns and clears the events raised since the last call.
func (e *Engine) Events() []Event {
	out := e.events
	e.events = nil
	return out
}

// Phase returns the lifecycle phase.
func (e *Engine) Phase() Phase { return e.phase }

// Playing reports whether the run is still going.
func (e *Engine) Playing() bool { return e.phase != PhaseGameOver }

// Paused reports whether gravity and piece inputs are suspended.
func (e *Engine) Paused() bool { return e.paused }

// Score returns the current score.
func (e *Engine) Score() int { return e.score }

// Lines returns the total rows cleared.
func (e *Engine) Lines() int { return e.lines }

// Level returns the current level.
func (e *Engine) Level() int { return e.level }

// IntervalMs returns the current gravity interval.
func (e *Engine) IntervalMs() int { return e.interval }

// Config returns a copy of the active configuration.
func (e *Engine) Config() Config {
	c := e.cfg
	c.Slide = c.Slide.Clone()
	return c
}

// Board returns the live board. Callers must treat it as read-only.
func (e *Engine) Board() *Board { return e.board }

// Active returns a copy of the active piece and its anchor.
func (e *Engine) Active() (Shape, Point) { return e.piece.clone(), e.anchor }

// Next returns a copy of the piece that spawns next.
func (e *Engine) Next() Shape { return e.next.clone() }

// Usage returns how many pieces of catalog index t have spawned this game.
func (e *Engine) Usage(t int) int {
	n, _ := e.usage.Get(t)
	return n
}

// Spawned returns the number of pieces spawned this game.
func (e *Engine) Spawned() int { return e.spawned }

// Result returns the persistence record for the current run.
func (e *Engine) Result(name string) Result {
	return Result{Name: name, Score: e.score, Lines: e.lines}
}
