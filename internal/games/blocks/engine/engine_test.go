package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestEngine(t *testing.T, mode Mode, w, h int, slide SlideTable) *Engine {
	t.Helper()
	cfg := DefaultConfig()
	cfg.Mode = mode
	cfg.Width = w
	cfg.Height = h
	cfg.Slide = slide
	cfg.Seed = 7
	e, err := New(cfg)
	require.NoError(t, err)
	e.Events()
	return e
}

// setActive replaces the active piece so tests control the geometry.
func setActive(e *Engine, s Shape, at Point) {
	e.piece = s
	e.anchor = at
	e.phase = PhaseActive
}

func vline(n int) Shape {
	s := Shape{Style: 2}
	for y := range n {
		s.Offsets = append(s.Offsets, Point{X: 0, Y: y})
	}
	return s
}

func TestNewRejectsInvalidConfig(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		want   error
	}{
		{"mode", func(c *Config) { c.Mode = Mode(9) }, ErrUnknownMode},
		{"narrow", func(c *Config) { c.Width = 2 }, ErrInvalidConfig},
		{"tall", func(c *Config) { c.Height = 500 }, ErrInvalidConfig},
		{"slide", func(c *Config) { c.Slide.Attempts[0] = Point{X: 1} }, ErrInvalidConfig},
		{"speed", func(c *Config) { c.Speed.FloorMs = 0 }, ErrInvalidConfig},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(&cfg)
			_, err := New(cfg)
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestSpawnAnchor(t *testing.T) {
	for _, size := range BoardSizes {
		t.Run(size.Name, func(t *testing.T) {
			e := newTestEngine(t, ModeHextris, size.Width, size.Height, DefaultSlideTable())
			_, anchor := e.Active()
			assert.Equal(t, Point{X: size.Width / 2, Y: 0}, anchor)
			assert.Equal(t, PhaseActive, e.Phase())
			assert.Equal(t, 1, e.Spawned())
		})
	}
}

func TestSpawnCollisionEndsGameWithoutMutatingBoard(t *testing.T) {
	e := newTestEngine(t, ModeTetris, 10, 20, DefaultSlideTable())
	fillRow(e.board, 0, 0)
	before := e.board.Rows()

	ok := e.spawn()

	assert.False(t, ok)
	assert.Equal(t, PhaseGameOver, e.Phase())
	assert.False(t, e.Playing())
	assert.Equal(t, before, e.board.Rows())
	assert.Equal(t, 2, e.Spawned(), "the spawn that ends the game is counted")

	events := e.Events()
	require.Len(t, events, 1)
	assert.Equal(t, GameOver{Result: Result{}}, events[0])

	assert.False(t, e.MovePiece(-1, 0))
	assert.False(t, e.RotatePiece(RotateCW))
	assert.False(t, e.DropOneRow())
	assert.Equal(t, 0, e.HardDrop())
	e.TogglePause()
	assert.False(t, e.Paused())
	assert.Equal(t, before, e.board.Rows())
}

func TestLockBonusPerLevel(t *testing.T) {
	for _, level := range []int{0, 1, 5} {
		e := newTestEngine(t, ModeTetris, 10, 20, DefaultSlideTable())
		e.level = level
		e.lines = level * LinesPerLevel
		setActive(e, dot(), Point{X: 0, Y: 19})
		before := e.Score()

		assert.False(t, e.DropOneRow())

		assert.Equal(t, before+30+10*level, e.Score(), "level %d", level)
		assert.Equal(t, Cell(1), e.board.Cell(0, 19))
		assert.Equal(t, PhaseActive, e.Phase())
	}
}

func TestFourLineClearBonusIndependentOfLevel(t *testing.T) {
	for _, level := range []int{0, 7} {
		e := newTestEngine(t, ModeTetris, 6, 10, DefaultSlideTable())
		e.level = level
		e.lines = level * LinesPerLevel
		for y := 6; y < 10; y++ {
			fillRow(e.board, y, 0)
		}
		setActive(e, vline(4), Point{X: 0, Y: 6})
		e.Events()
		before := e.Score()

		e.DropOneRow()

		assert.Equal(t, before+LockBonus(level)+5000, e.Score())
		assert.Equal(t, level*LinesPerLevel+4, e.Lines())
		assert.Equal(t, 0, e.board.Filled())

		events := e.Events()
		require.GreaterOrEqual(t, len(events), 2)
		assert.Equal(t, LinesCleared{Count: 4, Bonus: 5000, Message: MessageAwesome}, events[1])
	}
}

func TestLevelUpChangesInterval(t *testing.T) {
	e := newTestEngine(t, ModeTetris, 6, 10, DefaultSlideTable())
	e.lines = 9
	fillRow(e.board, 9, 0)
	setActive(e, dot(), Point{X: 0, Y: 9})
	e.Events()

	e.DropOneRow()

	assert.Equal(t, 10, e.Lines())
	assert.Equal(t, 1, e.Level())
	assert.Equal(t, 325, e.IntervalMs())
	assert.Contains(t, e.Events(), Event(LevelChanged{Level: 1, IntervalMs: 325}))
}

func TestMoveSlidesInListOrder(t *testing.T) {
	e := newTestEngine(t, ModeTetris, 10, 10, mustPreset(t, "minimal"))
	setActive(e, dot(), Point{X: 5, Y: 5})
	e.board.SetCell(4, 5, 1)

	require.True(t, e.MovePiece(-1, 0))
	_, at := e.Active()
	assert.Equal(t, Point{X: 3, Y: 5}, at)
}

func TestRotateSlidesInListOrder(t *testing.T) {
	e := newTestEngine(t, ModeTetris, 10, 10, mustPreset(t, "minimal"))
	domino := Shape{Style: 3, Offsets: []Point{{0, 0}, {1, 0}}}
	setActive(e, domino, Point{X: 5, Y: 5})
	e.board.SetCell(5, 6, 1)

	require.True(t, e.RotatePiece(RotateCW))

	s, at := e.Active()
	assert.Equal(t, Point{X: 4, Y: 5}, at, "left slide wins over right")
	assert.Equal(t, []Point{{0, 0}, {0, 1}}, s.Offsets)
}

func TestMoveRespectsMaxSlideDistance(t *testing.T) {
	e := newTestEngine(t, ModeTetris, 10, 10, DefaultSlideTable())
	require.NoError(t, e.ConfigureSlide(SlideTable{
		Enabled:     true,
		MaxDistance: 2,
		Attempts:    []Point{{0, 0}, {-3, 0}},
	}))
	setActive(e, dot(), Point{X: 5, Y: 5})
	e.board.SetCell(4, 5, 1)

	assert.False(t, e.MovePiece(-1, 0))
	_, at := e.Active()
	assert.Equal(t, Point{X: 5, Y: 5}, at)
}

func TestVerticalMoveNeverSlides(t *testing.T) {
	e := newTestEngine(t, ModeTetris, 10, 10, DefaultSlideTable())
	setActive(e, dot(), Point{X: 5, Y: 5})
	e.board.SetCell(5, 6, 1)

	assert.False(t, e.MovePiece(0, 1))
	_, at := e.Active()
	assert.Equal(t, Point{X: 5, Y: 5}, at)
}

func TestSlideDisabledRejectsBlockedMoves(t *testing.T) {
	e := newTestEngine(t, ModeTetris, 10, 10, mustPreset(t, "disabled"))
	setActive(e, dot(), Point{X: 5, Y: 5})
	e.board.SetCell(4, 5, 1)

	assert.False(t, e.MovePiece(-1, 0))
	assert.True(t, e.MovePiece(1, 0))
	_, at := e.Active()
	assert.Equal(t, Point{X: 6, Y: 5}, at)
}

func TestRotationIsAllOrNothing(t *testing.T) {
	e := newTestEngine(t, ModeTetris, 10, 10, mustPreset(t, "disabled"))
	domino := Shape{Style: 3, Offsets: []Point{{0, 0}, {1, 0}}}
	setActive(e, domino, Point{X: 5, Y: 5})
	e.board.SetCell(5, 6, 1)

	assert.False(t, e.RotatePiece(RotateCW))

	s, at := e.Active()
	assert.Equal(t, domino.Offsets, s.Offsets)
	assert.Equal(t, Point{X: 5, Y: 5}, at)
}

func TestIdleTicksBelowIntervalChangeNothing(t *testing.T) {
	e := newTestEngine(t, ModeHextris, 15, 25, DefaultSlideTable())
	before := e.Snapshot()

	for range 20 {
		e.Tick(16)
		assert.False(t, e.MovePiece(0, 0))
	}

	after := e.Snapshot()
	assert.Equal(t, before.Anchor, after.Anchor)
	assert.Equal(t, before.Board, after.Board)
	assert.Equal(t, before.Piece, after.Piece)
}

func TestGravityDropsOneRowPerInterval(t *testing.T) {
	e := newTestEngine(t, ModeTetris, 10, 20, DefaultSlideTable())
	_, start := e.Active()

	e.Tick(e.IntervalMs())
	_, at := e.Active()
	assert.Equal(t, start.Y+1, at.Y)

	e.Tick(e.IntervalMs() * 5)
	_, at = e.Active()
	assert.Equal(t, start.Y+2, at.Y, "a long tick still drops a single row")
}

func TestPauseSuspendsGravityAndPieceInput(t *testing.T) {
	e := newTestEngine(t, ModeTetris, 10, 20, DefaultSlideTable())
	_, start := e.Active()

	e.Enqueue(InputPause)
	e.Tick(1000)
	require.True(t, e.Paused())

	e.Enqueue(InputLeft)
	e.Enqueue(InputHardDrop)
	e.Tick(1000)
	_, at := e.Active()
	assert.Equal(t, start, at)

	e.Enqueue(InputPause)
	e.Tick(0)
	assert.False(t, e.Paused())
}

func TestQueuedInputs(t *testing.T) {
	e := newTestEngine(t, ModeTetris, 10, 20, DefaultSlideTable())
	setActive(e, dot(), Point{X: 5, Y: 0})

	e.Enqueue(InputLeft)
	e.Enqueue(InputLeft)
	e.Enqueue(InputSoftDrop)
	e.Enqueue(InputNone)
	e.Tick(0)

	_, at := e.Active()
	assert.Equal(t, Point{X: 3, Y: 1}, at)

	e.Enqueue(InputHardDrop)
	e.Tick(0)
	assert.Equal(t, Cell(1), e.board.Cell(3, 19))
	assert.Equal(t, 30, e.Score())
}

func TestHardDropReturnsRowsFallen(t *testing.T) {
	e := newTestEngine(t, ModeTetris, 10, 10, DefaultSlideTable())
	setActive(e, dot(), Point{X: 0, Y: 0})

	assert.Equal(t, 9, e.HardDrop())
	assert.Equal(t, Cell(1), e.board.Cell(0, 9))
	assert.Equal(t, 2, e.Spawned())
}

func TestNewGameInputResets(t *testing.T) {
	e := newTestEngine(t, ModeTetris, 10, 20, DefaultSlideTable())
	setActive(e, dot(), Point{X: 0, Y: 0})
	e.HardDrop()
	require.Positive(t, e.Score())

	e.Enqueue(InputNewGame)
	e.Tick(0)

	assert.Equal(t, 0, e.Score())
	assert.Equal(t, 0, e.board.Filled())
	assert.Equal(t, 1, e.Spawned())
}

func TestSetModeAndSize(t *testing.T) {
	e := newTestEngine(t, ModeTetris, 10, 20, DefaultSlideTable())
	setActive(e, dot(), Point{X: 0, Y: 0})
	e.HardDrop()

	require.NoError(t, e.SetMode(ModeTritris))
	assert.Equal(t, ModeTritris, e.Config().Mode)
	assert.Equal(t, 0, e.Score())
	assert.Less(t, e.Next().Type, CatalogSize(ModeTritris))
	assert.ErrorIs(t, e.SetMode(Mode(-1)), ErrUnknownMode)

	require.NoError(t, e.SetBoardSize(15, 25))
	assert.Equal(t, 15, e.Board().Width())
	assert.Equal(t, 25, e.Board().Height())
	assert.ErrorIs(t, e.SetBoardSize(0, 25), ErrInvalidConfig)
	assert.Equal(t, 15, e.Board().Width())
}

func TestConfigureSlideKeepsGame(t *testing.T) {
	e := newTestEngine(t, ModeTetris, 10, 20, DefaultSlideTable())
	setActive(e, dot(), Point{X: 0, Y: 0})
	e.HardDrop()
	score := e.Score()

	require.NoError(t, e.ConfigureSlide(mustPreset(t, "minimal")))
	assert.Equal(t, score, e.Score())
	assert.Equal(t, 1, e.Config().Slide.MaxDistance)

	assert.ErrorIs(t, e.ConfigureSlide(SlideTable{Enabled: true}), ErrInvalidConfig)
	assert.Equal(t, 1, e.Config().Slide.MaxDistance)
}

func TestUsageCounters(t *testing.T) {
	e := newTestEngine(t, ModeHextris, 15, 25, DefaultSlideTable())
	for range 30 {
		e.HardDrop()
		if !e.Playing() {
			break
		}
	}

	snap := e.Snapshot()
	total := 0
	for _, n := range snap.Usage {
		total += n
	}
	assert.Equal(t, e.Spawned(), total)
	assert.Len(t, snap.Usage, 29)
}

func TestDeterminism(t *testing.T) {
	script := []Input{
		InputLeft, InputRotateCW, InputNone, InputRight, InputRight, InputSoftDrop,
		InputRotate180, InputHardDrop, InputRotateCCW, InputLeft, InputLeft, InputHardDrop,
	}

	run := func() Snapshot {
		e := newTestEngine(t, ModeHextris, 15, 25, DefaultSlideTable())
		for i := range 600 {
			e.Enqueue(script[i%len(script)])
			e.Tick(16)
		}
		return e.Snapshot()
	}

	assert.Equal(t, run(), run())
}

func TestEventsDrain(t *testing.T) {
	e := newTestEngine(t, ModeTetris, 10, 20, DefaultSlideTable())
	setActive(e, dot(), Point{X: 0, Y: 0})
	e.HardDrop()

	events := e.Events()
	require.Len(t, events, 2)
	assert.IsType(t, PieceLocked{}, events[0])
	assert.IsType(t, PieceSpawned{}, events[1])
	assert.Empty(t, e.Events())
}
