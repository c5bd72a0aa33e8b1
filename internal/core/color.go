package core

// Color is a foreground color for a screen cell. The platform maps each value
// to an ANSI 256-color code.
type Color uint8

const (
	ColorDefault Color = iota
	ColorRed
	ColorGreen
	ColorYellow
	ColorBlue
	ColorMagenta
	ColorCyan
	ColorWhite
	ColorBrightRed
	ColorBrightGreen
	ColorBrightYellow
	ColorBrightBlue
	ColorBrightMagenta
	ColorBrightCyan
	ColorBrightWhite
	ColorOrange
	ColorGray
)

// piecePalette cycles for piece styles. Gray is kept for borders and ghost
// cells, so it is not in the cycle.
var piecePalette = []Color{
	ColorBrightYellow,
	ColorOrange,
	ColorBrightBlue,
	ColorBrightCyan,
	ColorBrightGreen,
	ColorBrightRed,
	ColorBrightMagenta,
	ColorYellow,
	ColorBlue,
	ColorCyan,
	ColorGreen,
	ColorRed,
	ColorMagenta,
	ColorBrightWhite,
}

// PieceColor returns the color for a piece style id. Style 0 is empty.
func PieceColor(style int) Color {
	if style <= 0 {
		return ColorDefault
	}
	return piecePalette[(style-1)%len(piecePalette)]
}
