package game

import (
	"fmt"

	"github.com/okurenko/conduit/internal/core"
	"github.com/okurenko/conduit/internal/puzzle"
)

// Theme selects the tile glyph set.
type Theme int

const (
	// ThemeUnicode draws tiles with box-drawing characters.
	ThemeUnicode Theme = iota
	// ThemeASCII draws tiles with the characters of the text level format.
	ThemeASCII
)

// ParseTheme resolves a theme name from configuration.
func ParseTheme(s string) (Theme, bool) {
	switch s {
	case "", "unicode":
		return ThemeUnicode, true
	case "ascii":
		return ThemeASCII, true
	}
	return ThemeUnicode, false
}

// Rendering layout constants.
const (
	cellW     = 2 // Each tile is 2 chars wide (glyph + gap)
	hudHeight = 3
)

// squareGlyphs maps a square port set (bit d set when direction d is open,
// N=1 E=2 S=4 W=8) to its box-drawing character.
var squareGlyphs = [16]rune{
	' ', '╵', '╶', '└', '╷', '│', '┌', '├',
	'╴', '┘', '─', '┴', '┐', '┤', '┬', '┼',
}

// squareASCII is the same table in text level format characters.
var squareASCII = [16]rune{
	' ', '^', '>', '1', 'v', '/', '7', '4',
	'<', '3', '-', '2', '9', '6', '8', '5',
}

// glyphFor returns the display rune for a square cell.
func glyphFor(ports puzzle.PortSet, theme Theme) rune {
	if theme == ThemeASCII {
		return squareASCII[ports&0xf]
	}
	return squareGlyphs[ports&0xf]
}

// hexGlyphFor returns the display rune for a hex cell: blank cells are
// empty and ported cells show their rotation step, which is what the
// player needs to judge a turn.
func hexGlyphFor(cell puzzle.CellView) rune {
	if cell.Kind == puzzle.ShapeBlank {
		return ' '
	}
	return rune('0' + cell.Rot%10)
}

// Render draws the game to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	g.renderHUD(dst)

	if g.board == nil {
		g.renderNotice(dst, "No levels found", "Check the levels directory")
		return
	}
	if g.tooSmall {
		g.renderNotice(dst, "Window too small", "Resize to continue")
		return
	}

	g.renderBoard(dst)

	if g.won {
		g.renderNotice(dst, "All circuits closed!", "Press R to play again")
	}
}

// renderHUD draws the top status bar.
func (g *Game) renderHUD(dst *core.Screen) {
	hud := " Conduit"
	if g.level.ID != "" {
		hud = fmt.Sprintf(" Conduit | %s (%d/%d) | Moves: %d",
			g.level.Name, g.levelIndex+1, len(g.allLevels), g.moves)
	}
	if g.solved && !g.won {
		hud += " | SOLVED"
		dst.DrawTextWithColor(0, 0, hud, core.ColorGreen)
	} else {
		dst.DrawTextWithColor(0, 0, hud, core.ColorCyan)
	}

	for x := 0; x < dst.Width(); x++ {
		dst.SetWithColor(x, 1, '─', core.ColorGray)
	}

	controls := " ←↑↓→: Move | Space: Rotate | U: Unrotate | R: Restart | [ ]: Level | Q: Quit"
	if g.solved && !g.won {
		controls = " Circuit closed! Enter: next level | [ ]: Level | Q: Quit"
	}
	dst.DrawTextWithColor(0, 2, controls, core.ColorGray)
}

// renderBoard draws the tiles with state colors: dangling connectors red,
// a solved board green, the cursor bright yellow.
func (g *Game) renderBoard(dst *core.Screen) {
	snap := g.board.Snapshot()
	dangling := g.eval.DanglingCells()

	boardW := snap.Width * cellW
	offsetX := core.Max((dst.Width()-boardW)/2, 0)
	offsetY := hudHeight + core.Max((dst.Height()-hudHeight-snap.Height)/2, 0)

	hexBoard := snap.Topo.Dirs != 4
	for y := 0; y < snap.Height; y++ {
		for x := 0; x < snap.Width; x++ {
			cell, _ := snap.At(puzzle.C(x, y))

			var r rune
			sx := offsetX + x*cellW
			if hexBoard {
				r = hexGlyphFor(cell)
				// Odd rows shift right half a cell in odd-r layout.
				if y%2 == 1 {
					sx++
				}
			} else {
				r = glyphFor(cell.Ports, g.theme)
			}

			color := core.ColorDefault
			switch {
			case g.solved:
				color = core.ColorGreen
			case dangling[puzzle.C(x, y)]:
				color = core.ColorRed
			}
			if g.cursor == puzzle.C(x, y) {
				color = core.ColorBrightYellow
				if r == ' ' {
					r = '·'
				}
			}
			dst.SetWithColor(sx, offsetY+y, r, color)
		}
	}
}

// renderNotice draws a centered two-line message box.
func (g *Game) renderNotice(dst *core.Screen, line1, line2 string) {
	maxLen := core.Max(len([]rune(line1)), len([]rune(line2)))
	boxW := maxLen + 4
	boxH := 5
	boxX := (dst.Width() - boxW) / 2
	boxY := (dst.Height() - boxH) / 2

	dst.DrawBox(core.NewRect(boxX, boxY, boxW, boxH))
	dst.DrawTextCentered(boxY+1, line1)
	dst.DrawTextCentered(boxY+3, line2)
}
