package game

import (
	"fmt"

	"github.com/okurenko/conduit/internal/core"
	"github.com/okurenko/conduit/internal/levels/formats"
	"github.com/okurenko/conduit/internal/puzzle"
	"github.com/okurenko/conduit/internal/registry"
)

// Editor implements the level editor mode. Square grids only, since its
// input and output are the text level format. Typing a format character
// places that tile under the cursor; row and column operations use
// { } ( ) to shrink or grow the grid.
type Editor struct {
	level  puzzle.Level
	cursor puzzle.Coord
	solved bool

	screenW int
	screenH int
	theme   Theme
}

// Package-level editor configuration, set by the CLI before Reset.
var (
	editorSource *puzzle.Level
	editorW      = 4
	editorH      = 4
)

// SetEditorSource provides an existing level to edit. Nil starts blank.
func SetEditorSource(lvl *puzzle.Level) {
	editorSource = lvl
}

// SetEditorSize sets the grid size for a blank editing session.
func SetEditorSize(w, h int) {
	editorW = w
	editorH = h
}

func init() {
	registry.Register("editor", func() registry.Game {
		return NewEditor()
	})
}

// NewEditor creates a new editor.
func NewEditor() *Editor {
	return &Editor{theme: selectedTheme}
}

// ID returns the mode identifier.
func (e *Editor) ID() string {
	return "editor"
}

// Title returns the display name.
func (e *Editor) Title() string {
	return "Conduit Editor"
}

// Reset initializes the editing session.
func (e *Editor) Reset(cfg core.RuntimeConfig) {
	e.screenW = cfg.ScreenW
	e.screenH = cfg.ScreenH
	e.theme = selectedTheme
	e.cursor = puzzle.C(0, 0)

	if editorSource != nil && editorSource.Topology == puzzle.Square.Name {
		e.level = *editorSource
		e.level.Cells = append([]puzzle.CellSpec(nil), editorSource.Cells...)
	} else {
		w := core.Max(editorW, 1)
		h := core.Max(editorH, 1)
		e.level = puzzle.Level{
			Topology: puzzle.Square.Name,
			Width:    w,
			Height:   h,
			Cells:    make([]puzzle.CellSpec, w*h),
		}
	}
	e.reevaluate()
}

// Resize updates the screen dimensions without resetting the session.
func (e *Editor) Resize(w, h int) {
	e.screenW = w
	e.screenH = h
}

// Step applies one frame of editing input.
func (e *Editor) Step(input core.InputFrame) core.StepResult {
	if input.Has(core.ActionUp) {
		e.cursor.Y--
	}
	if input.Has(core.ActionDown) {
		e.cursor.Y++
	}
	if input.Has(core.ActionLeft) {
		e.cursor.X--
	}
	if input.Has(core.ActionRight) {
		e.cursor.X++
	}
	e.cursor.X = core.Clamp(e.cursor.X, 0, e.level.Width-1)
	e.cursor.Y = core.Clamp(e.cursor.Y, 0, e.level.Height-1)

	if input.Has(core.ActionRotate) {
		e.rotateCursor(1)
	}
	if input.Has(core.ActionRotateBack) {
		e.rotateCursor(-1)
	}

	if input.Rune != 0 {
		e.applyRune(input.Rune)
	}

	return core.StepResult{State: e.State()}
}

// applyRune handles tile placement and grid resizing keys.
func (e *Editor) applyRune(r rune) {
	switch r {
	case ')':
		e.resize(e.level.Width+1, e.level.Height)
	case '(':
		e.resize(e.level.Width-1, e.level.Height)
	case '}':
		e.resize(e.level.Width, e.level.Height+1)
	case '{':
		e.resize(e.level.Width, e.level.Height-1)
	case '.':
		// Space is taken by rotation, so '.' erases instead.
		e.level.Cells[e.index(e.cursor)] = puzzle.CellSpec{Kind: puzzle.ShapeBlank}
		e.reevaluate()
	default:
		cell, ok := formats.CellForRune(r)
		if !ok {
			return
		}
		e.level.Cells[e.index(e.cursor)] = cell
		e.reevaluate()
	}
}

// rotateCursor rotates the tile under the cursor by delta steps.
func (e *Editor) rotateCursor(delta int) {
	topo, _ := puzzle.TopologyByName(e.level.Topology)
	cell := &e.level.Cells[e.index(e.cursor)]
	shape, ok := topo.Shape(cell.Kind)
	if !ok || shape.Period == 1 {
		return
	}
	cell.Rot = ((cell.Rot+delta)%shape.Period + shape.Period) % shape.Period
	e.reevaluate()
}

// resize grows or shrinks the grid, preserving the top-left content.
func (e *Editor) resize(w, h int) {
	if w < 1 || h < 1 {
		return
	}
	cells := make([]puzzle.CellSpec, w*h)
	copyW := core.Min(w, e.level.Width)
	copyH := core.Min(h, e.level.Height)
	for y := 0; y < copyH; y++ {
		copy(cells[y*w:y*w+copyW], e.level.Cells[y*e.level.Width:y*e.level.Width+copyW])
	}
	e.level.Width = w
	e.level.Height = h
	e.level.Cells = cells
	e.cursor.X = core.Clamp(e.cursor.X, 0, w-1)
	e.cursor.Y = core.Clamp(e.cursor.Y, 0, h-1)
	e.reevaluate()
}

func (e *Editor) index(c puzzle.Coord) int {
	return c.Y*e.level.Width + c.X
}

// reevaluate refreshes the solved indicator for the edited grid.
func (e *Editor) reevaluate() {
	board, err := puzzle.NewBoard(e.level)
	if err != nil {
		e.solved = false
		return
	}
	e.solved = puzzle.Solved(board.Snapshot())
}

// World encodes the edited level in the text format, for saving on exit.
func (e *Editor) World() (string, error) {
	return formats.EncodeText(e.level)
}

// Level returns a copy of the edited level.
func (e *Editor) Level() puzzle.Level {
	lvl := e.level
	lvl.Cells = append([]puzzle.CellSpec(nil), e.level.Cells...)
	return lvl
}

// Render draws the editing grid.
func (e *Editor) Render(dst *core.Screen) {
	dst.Clear()

	status := fmt.Sprintf(" Editor | %dx%d", e.level.Width, e.level.Height)
	if e.solved {
		status += " | closed circuit"
		dst.DrawTextWithColor(0, 0, status, core.ColorGreen)
	} else {
		dst.DrawTextWithColor(0, 0, status, core.ColorCyan)
	}
	for x := 0; x < dst.Width(); x++ {
		dst.SetWithColor(x, 1, '─', core.ColorGray)
	}
	dst.DrawTextWithColor(0, 2,
		" Type a tile to place | .: Erase | Space: Rotate | ({)}: Resize | Esc: Done",
		core.ColorGray)

	topo, _ := puzzle.TopologyByName(e.level.Topology)
	boardW := e.level.Width * cellW
	offsetX := core.Max((dst.Width()-boardW)/2, 0)
	offsetY := hudHeight + core.Max((dst.Height()-hudHeight-e.level.Height)/2, 0)

	for y := 0; y < e.level.Height; y++ {
		for x := 0; x < e.level.Width; x++ {
			cell := e.level.Cells[y*e.level.Width+x]
			shape, _ := topo.Shape(cell.Kind)
			r := glyphFor(puzzle.EffectivePorts(topo, shape, cell.Rot), e.theme)

			color := core.ColorDefault
			if e.cursor == puzzle.C(x, y) {
				color = core.ColorBrightYellow
				if r == ' ' {
					r = '·'
				}
			}
			dst.SetWithColor(offsetX+x*cellW, offsetY+y, r, color)
		}
	}
}

// State returns the editor state. Moves is unused; Solved mirrors the
// closed-circuit indicator.
func (e *Editor) State() core.GameState {
	return core.GameState{
		LevelID: e.level.ID,
		Solved:  e.solved,
	}
}
