package blocks

import (
	"fmt"
	"unicode/utf8"

	"github.com/vovakirdan/tui-blocks/internal/core"
	"github.com/vovakirdan/tui-blocks/internal/games/blocks/engine"
)

const (
	cellWidth  = 2 // terminal columns per board cell
	panelWidth = 24
	panelGap   = 2
	panelMinH  = 20
	previewW   = 6 // preview area in cells
	previewH   = 6
	histWidth  = 20 // histogram columns per row
)

var sparks = []rune("▁▂▃▄▅▆▇█")

// Render draws the well, the side panel and any overlay.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	board := g.eng.Board()
	wellW := board.Width()*cellWidth + 2
	wellH := board.Height() + 2
	totalW := wellW + panelGap + panelWidth
	totalH := max(wellH, panelMinH)

	if dst.Width() < totalW || dst.Height() < totalH {
		renderTooSmall(dst, totalW, totalH)
		return
	}

	area := core.NewRect(0, 0, dst.Width(), dst.Height()).CenterIn(totalW, totalH)
	well := core.NewRect(area.X, area.Y, wellW, wellH)
	panel := core.NewRect(well.Right()+panelGap, area.Y, panelWidth, totalH)

	g.renderWell(dst, well)
	g.renderPanel(dst, panel)
	g.renderOverlays(dst, well)
}

func renderTooSmall(dst *core.Screen, w, h int) {
	y := dst.Height() / 2
	dst.DrawTextCentered(y-1, "Window too small", core.ColorBrightRed)
	dst.DrawTextCentered(y, fmt.Sprintf("need %dx%d, have %dx%d", w, h, dst.Width(), dst.Height()), core.ColorDefault)
	dst.DrawTextCentered(y+1, "Please resize terminal", core.ColorGray)
}

// renderWell draws the border, the locked cells, the landing ghost and the
// active piece.
func (g *Game) renderWell(dst *core.Screen, well core.Rect) {
	dst.DrawBox(well, core.ColorGray)
	inner := well.Inset(1)
	board := g.eng.Board()

	for y := range board.Height() {
		for x := range board.Width() {
			if c := board.Cell(x, y); c != engine.Empty {
				drawCell(dst, inner, x, y, '█', core.PieceColor(int(c)))
				continue
			}
			dst.SetColored(inner.X+x*cellWidth+1, inner.Y+y, '·', core.ColorGray)
		}
	}

	if g.eng.Phase() != engine.PhaseActive {
		return
	}

	piece, anchor := g.eng.Active()
	ghost := anchor
	for !engine.Collides(piece, ghost.Add(engine.Point{Y: 1}), board) {
		ghost.Y++
	}
	if ghost != anchor {
		for _, p := range piece.Cells(ghost) {
			drawBoardCell(dst, inner, board, p, '░', core.ColorGray)
		}
	}
	for _, p := range piece.Cells(anchor) {
		drawBoardCell(dst, inner, board, p, '█', core.PieceColor(int(piece.Style)))
	}
}

// drawBoardCell draws p if it lies on the board. Spawned pieces can stick
// out above the top row.
func drawBoardCell(dst *core.Screen, inner core.Rect, b *engine.Board, p engine.Point, r rune, c core.Color) {
	if p.X < 0 || p.X >= b.Width() || p.Y < 0 || p.Y >= b.Height() {
		return
	}
	drawCell(dst, inner, p.X, p.Y, r, c)
}

func drawCell(dst *core.Screen, inner core.Rect, x, y int, r rune, c core.Color) {
	dst.DrawHLine(inner.X+x*cellWidth, inner.Y+y, cellWidth, r, c)
}

// renderPanel draws the title, next-piece preview, counters and the
// per-type usage histogram.
func (g *Game) renderPanel(dst *core.Screen, panel core.Rect) {
	y := panel.Y
	dst.DrawTextColored(panel.X, y, g.mode.String(), core.ColorBrightWhite)
	y += 2

	preview := core.NewRect(panel.X, y, previewW*cellWidth+2, previewH+2)
	dst.DrawBox(preview, core.ColorGray)
	dst.DrawTextColored(preview.X+2, preview.Y, " NEXT ", core.ColorWhite)
	renderPreview(dst, preview.Inset(1), g.eng.Next())
	y = preview.Bottom() + 1

	stats := []struct {
		label string
		value string
	}{
		{"SCORE", fmt.Sprint(g.eng.Score())},
		{"LINES", fmt.Sprint(g.eng.Lines())},
		{"LEVEL", fmt.Sprint(g.eng.Level())},
		{"SPEED", fmt.Sprintf("%dms", g.eng.IntervalMs())},
	}
	for _, s := range stats {
		dst.DrawTextColored(panel.X, y, s.label, core.ColorGray)
		dst.DrawTextColored(panel.X+7, y, s.value, core.ColorBrightWhite)
		y++
	}
	y++

	dst.DrawTextColored(panel.X, y, "PIECES", core.ColorGray)
	dst.DrawTextColored(panel.X+7, y, fmt.Sprint(g.eng.Spawned()), core.ColorBrightWhite)
	y++
	g.renderHistogram(dst, panel.X, y)
}

// renderPreview centers shape inside area.
func renderPreview(dst *core.Screen, area core.Rect, shape engine.Shape) {
	minP, maxP := shape.Bounds()
	offX := (previewW - (maxP.X - minP.X + 1)) / 2
	offY := (previewH - (maxP.Y - minP.Y + 1)) / 2
	color := core.PieceColor(int(shape.Style))

	for _, o := range shape.Offsets {
		x := o.X - minP.X + offX
		y := o.Y - minP.Y + offY
		if x < 0 || x >= previewW || y < 0 || y >= previewH {
			continue
		}
		drawCell(dst, area, x, y, '█', color)
	}
}

// renderHistogram draws one spark per catalog entry, scaled to the most
// used type and colored like the piece.
func (g *Game) renderHistogram(dst *core.Screen, x, y int) {
	n := engine.CatalogSize(g.mode)
	peak := 0
	for t := range n {
		peak = max(peak, g.eng.Usage(t))
	}

	for t := range n {
		px := x + t%histWidth
		py := y + t/histWidth
		used := g.eng.Usage(t)
		if used == 0 || peak == 0 {
			dst.SetColored(px, py, sparks[0], core.ColorGray)
			continue
		}
		level := max(used*(len(sparks)-1)/peak, 1)
		dst.SetColored(px, py, sparks[level], core.PieceColor(t+1))
	}
}

// renderOverlays draws pause, game over and message banners over the well.
func (g *Game) renderOverlays(dst *core.Screen, well core.Rect) {
	mid := well.Y + well.H/2

	switch {
	case !g.eng.Playing():
		drawBanner(dst, well, mid-1, "GAME OVER", core.ColorBrightRed)
		if g.highRank > 0 {
			drawBanner(dst, well, mid, fmt.Sprintf("%s #%d", engine.MessageNewHighScore, g.highRank), core.ColorBrightYellow)
		}
		drawBanner(dst, well, mid+1, "R: new game", core.ColorWhite)
		return
	case g.eng.Paused():
		drawBanner(dst, well, mid, "PAUSED", core.ColorBrightYellow)
		return
	}

	if g.message != engine.MessageNone {
		drawBanner(dst, well, well.Y+well.H/3, g.message.String(), core.ColorBrightYellow)
	}
}

// drawBanner centers text on row y inside r, padded with one space on each
// side.
func drawBanner(dst *core.Screen, r core.Rect, y int, text string, c core.Color) {
	text = " " + text + " "
	x := r.X + max((r.W-utf8.RuneCountInString(text))/2, 0)
	dst.DrawTextColored(x, y, text, c)
}
