package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-blocks/internal/core"
	"github.com/vovakirdan/tui-blocks/internal/games/blocks/engine"
	"github.com/vovakirdan/tui-blocks/internal/platform/tui"
)

var flagRotations bool

var piecesCmd = &cobra.Command{
	Use:   "pieces <mode>",
	Short: "Print the piece catalog of a mode",
	Long: `Print every piece of a mode as it spawns, in catalog order.
The anchor cell is drawn as '@' when the piece covers it and '+' when it
does not.

Examples:
  blocks pieces tritris
  blocks pieces hextris --rotations`,
	Args: cobra.ExactArgs(1),
	Run:  runPieces,
}

func init() {
	piecesCmd.Flags().BoolVar(&flagRotations, "rotations", false, "Also show the three other orientations")
}

func runPieces(_ *cobra.Command, args []string) {
	mode, err := engine.ParseMode(args[0])
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: unknown mode %q\n", args[0])
		fmt.Fprintln(os.Stderr, "Run 'blocks list' to see available modes.")
		os.Exit(1)
	}

	catalog := engine.Catalog(mode)
	fmt.Printf("%s - %d pieces\n\n", mode, len(catalog))

	for _, s := range catalog {
		title := fmt.Sprintf("%2d  %s (%d cells)", s.Type+1, s.Name, distinctCells(s))
		fmt.Println(lipgloss.NewStyle().Bold(true).Render(title))

		views := []string{drawShape(s)}
		if flagRotations {
			r := s
			for range 3 {
				r = r.Rotate(engine.RotateCW)
				views = append(views, drawShape(r))
			}
		}
		fmt.Println(lipgloss.JoinHorizontal(lipgloss.Top, spaced(views)...))
		fmt.Println()
	}
}

// distinctCells counts the board cells s covers; repeated offsets count once.
func distinctCells(s engine.Shape) int {
	seen := make(map[engine.Point]struct{}, len(s.Offsets))
	for _, o := range s.Offsets {
		seen[o] = struct{}{}
	}
	return len(seen)
}

// drawShape renders s as a small grid that always includes the anchor.
func drawShape(s engine.Shape) string {
	minP, maxP := s.Bounds()
	minP.X, minP.Y = min(minP.X, 0), min(minP.Y, 0)
	maxP.X, maxP.Y = max(maxP.X, 0), max(maxP.Y, 0)

	filled := make(map[engine.Point]bool, len(s.Offsets))
	for _, o := range s.Offsets {
		filled[o] = true
	}

	style := tui.ColorStyle(core.PieceColor(int(s.Style)))

	var b strings.Builder
	for y := minP.Y; y <= maxP.Y; y++ {
		if y > minP.Y {
			b.WriteByte('\n')
		}
		for x := minP.X; x <= maxP.X; x++ {
			p := engine.Point{X: x, Y: y}
			anchor := x == 0 && y == 0
			switch {
			case anchor && filled[p]:
				b.WriteString(style.Render("@ "))
			case anchor:
				b.WriteString("+ ")
			case filled[p]:
				b.WriteString(style.Render("# "))
			default:
				b.WriteString(". ")
			}
		}
	}
	return b.String()
}

// spaced puts a gap between side-by-side views.
func spaced(views []string) []string {
	out := make([]string, 0, 2*len(views))
	for i, v := range views {
		if i > 0 {
			out = append(out, "   ")
		}
		out = append(out, v)
	}
	return out
}
