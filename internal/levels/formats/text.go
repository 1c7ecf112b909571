// Package formats provides pluggable level file format parsers.
package formats

import (
	"fmt"
	"strings"

	"github.com/okurenko/conduit/internal/puzzle"
)

// The text format is a compact square-grid notation: a "height,width"
// header line followed by one character per cell. Each character encodes a
// shape at a fixed rotation:
//
//	' '        blank
//	^ > v <    endpoint facing up/right/down/left
//	/ -        straight, vertical / horizontal
//	1 7 9 3    elbow opening up+right / right+down / down+left / left+up
//	8 6 2 4    tee with the up/right/down/left side blocked
//	5          cross
type textCell struct {
	kind puzzle.ShapeKind
	rot  int
}

var textCells = map[rune]textCell{
	' ': {puzzle.ShapeBlank, 0},
	'^': {puzzle.ShapeEnd, 0},
	'>': {puzzle.ShapeEnd, 1},
	'v': {puzzle.ShapeEnd, 2},
	'<': {puzzle.ShapeEnd, 3},
	'/': {puzzle.ShapeStraight, 0},
	'-': {puzzle.ShapeStraight, 1},
	'1': {puzzle.ShapeElbow, 0},
	'7': {puzzle.ShapeElbow, 1},
	'9': {puzzle.ShapeElbow, 2},
	'3': {puzzle.ShapeElbow, 3},
	'8': {puzzle.ShapeTee, 0},
	'6': {puzzle.ShapeTee, 1},
	'2': {puzzle.ShapeTee, 2},
	'4': {puzzle.ShapeTee, 3},
	'5': {puzzle.ShapeCross, 0},
}

// textRune is the inverse of textCells, indexed by kind then rotation.
var textRune = func() map[puzzle.ShapeKind]map[int]rune {
	m := make(map[puzzle.ShapeKind]map[int]rune)
	for r, c := range textCells {
		if m[c.kind] == nil {
			m[c.kind] = make(map[int]rune)
		}
		m[c.kind][c.rot] = r
	}
	return m
}()

// CellForRune resolves a text format character to its cell spec.
// Used by the editor for keyboard tile placement.
func CellForRune(r rune) (puzzle.CellSpec, bool) {
	c, ok := textCells[r]
	if !ok {
		return puzzle.CellSpec{}, false
	}
	return puzzle.CellSpec{Kind: c.kind, Rot: c.rot}, true
}

// ParseText parses the text level format. The returned level has no ID or
// name; callers derive those from the file name.
func ParseText(data []byte) (puzzle.Level, error) {
	lines := strings.Split(strings.TrimRight(string(data), "\n"), "\n")
	if len(lines) == 0 {
		return puzzle.Level{}, fmt.Errorf("missing size line")
	}

	var h, w int
	if _, err := fmt.Sscanf(lines[0], "%d,%d", &h, &w); err != nil {
		return puzzle.Level{}, fmt.Errorf("bad size line %q: %w", lines[0], err)
	}
	if h <= 0 || w <= 0 {
		return puzzle.Level{}, fmt.Errorf("dimensions %dx%d must be positive", w, h)
	}
	if len(lines)-1 != h {
		return puzzle.Level{}, fmt.Errorf("have %d rows, header says %d", len(lines)-1, h)
	}

	cells := make([]puzzle.CellSpec, 0, w*h)
	for y, line := range lines[1:] {
		runes := []rune(line)
		if len(runes) != w {
			return puzzle.Level{}, fmt.Errorf("row %d has %d cells, header says %d", y, len(runes), w)
		}
		for _, r := range runes {
			c, ok := textCells[r]
			if !ok {
				return puzzle.Level{}, fmt.Errorf("row %d: invalid cell character %q", y, r)
			}
			cells = append(cells, puzzle.CellSpec{Kind: c.kind, Rot: c.rot})
		}
	}

	return puzzle.Level{
		Topology: puzzle.Square.Name,
		Width:    w,
		Height:   h,
		Cells:    cells,
	}, nil
}

// EncodeText renders a square-grid level in the text format, including its
// current rotations. Fails for non-square topologies, which the notation
// cannot express.
func EncodeText(level puzzle.Level) (string, error) {
	if level.Topology != puzzle.Square.Name {
		return "", fmt.Errorf("text format cannot encode %q levels", level.Topology)
	}
	if err := level.Validate(); err != nil {
		return "", err
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "%d,%d\n", level.Height, level.Width)
	for y := 0; y < level.Height; y++ {
		for x := 0; x < level.Width; x++ {
			cell := level.Cells[y*level.Width+x]
			r, ok := textRune[cell.Kind][cell.Rot]
			if !ok {
				return "", fmt.Errorf("cell (%d,%d): no character for %s rot %d",
					x, y, cell.Kind, cell.Rot)
			}
			sb.WriteRune(r)
		}
		sb.WriteRune('\n')
	}
	return sb.String(), nil
}
