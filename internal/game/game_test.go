package game

import (
	"math/rand"
	"sync"
	"testing"

	"github.com/okurenko/conduit/internal/core"
	"github.com/okurenko/conduit/internal/levels/formats"
	"github.com/okurenko/conduit/internal/puzzle"
)

func frame(actions ...core.Action) core.InputFrame {
	f := core.NewInputFrame()
	for _, a := range actions {
		f.Set(a)
	}
	return f
}

// facingPair is a 1x2 level solved as shipped: two endpoints meeting.
func facingPair() puzzle.Level {
	return puzzle.Level{
		ID:       "pair",
		Name:     "Pair",
		Topology: puzzle.Square.Name,
		Width:    2,
		Height:   1,
		Cells: []puzzle.CellSpec{
			{Kind: puzzle.ShapeEnd, Rot: 1},
			{Kind: puzzle.ShapeEnd, Rot: 3},
		},
	}
}

func newTestGame(t *testing.T, doScramble bool, lvls ...puzzle.Level) *Game {
	t.Helper()
	g := New()
	g.rng = rand.New(rand.NewSource(7))
	g.screenW = 80
	g.screenH = 24
	g.allLevels = lvls

	old := scramble
	scramble = doScramble
	t.Cleanup(func() { scramble = old })

	g.loadCurrentLevel()
	return g
}

func TestResetDeterministicScramble(t *testing.T) {
	a := newTestGame(t, true, facingPair())
	b := New()
	b.rng = rand.New(rand.NewSource(7))
	b.screenW = 80
	b.screenH = 24
	b.allLevels = []puzzle.Level{facingPair()}
	b.loadCurrentLevel()

	la, lb := a.board.Level(), b.board.Level()
	for i := range la.Cells {
		if la.Cells[i] != lb.Cells[i] {
			t.Fatalf("cell %d differs across same-seed loads: %+v vs %+v",
				i, la.Cells[i], lb.Cells[i])
		}
	}
}

func TestResetSelectsStartLevelFromConfig(t *testing.T) {
	g := New()
	g.Reset(core.RuntimeConfig{
		ScreenW:    80,
		ScreenH:    24,
		Seed:       1,
		StartLevel: "03-ring",
	})

	if got := g.State().LevelID; got != "03-ring" {
		t.Fatalf("LevelID = %q, want 03-ring", got)
	}
}

func TestConcurrentResetsKeepOwnSelections(t *testing.T) {
	// Each session carries its selection in its own RuntimeConfig, so
	// parallel resets must never see each other's start level.
	ids := []string{"01-first-link", "03-ring", "05-crossroads"}
	games := make([]*Game, len(ids))

	var wg sync.WaitGroup
	for i := range ids {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			g := New()
			g.Reset(core.RuntimeConfig{
				ScreenW:    80,
				ScreenH:    24,
				Seed:       int64(i + 1),
				StartLevel: ids[i],
			})
			games[i] = g
		}(i)
	}
	wg.Wait()

	for i, g := range games {
		if got := g.State().LevelID; got != ids[i] {
			t.Errorf("session %d: LevelID = %q, want %q", i, got, ids[i])
		}
	}
}

func TestGameOverRestartKeepsSelection(t *testing.T) {
	g := New()
	g.Reset(core.RuntimeConfig{
		ScreenW:    80,
		ScreenH:    24,
		Seed:       1,
		StartLevel: "02-pocket-loop",
	})
	g.gameOver = true

	g.Step(frame(core.ActionRestart))
	if got := g.State().LevelID; got != "02-pocket-loop" {
		t.Fatalf("LevelID after restart = %q, want 02-pocket-loop", got)
	}
}

func TestRotateCountsMoves(t *testing.T) {
	lvl := puzzle.Level{
		ID:       "solo",
		Topology: puzzle.Square.Name,
		Width:    1, Height: 1,
		Cells: []puzzle.CellSpec{{Kind: puzzle.ShapeEnd}},
	}
	g := newTestGame(t, false, lvl)

	g.Step(frame(core.ActionRotate))
	if g.moves != 1 {
		t.Fatalf("moves = %d after one rotation, want 1", g.moves)
	}
	g.Step(frame(core.ActionRotateBack))
	if g.moves != 2 {
		t.Fatalf("moves = %d after rotate back, want 2", g.moves)
	}
	tile, err := g.board.Tile(puzzle.C(0, 0))
	if err != nil {
		t.Fatal(err)
	}
	if tile.Rot != 0 {
		t.Errorf("rotate then rotate back should restore rot 0, got %d", tile.Rot)
	}
}

func TestRotatePeriodOneTileIsFree(t *testing.T) {
	// A cross looks the same in every rotation; spinning it must not
	// inflate the move count.
	lvl := puzzle.Level{
		ID:       "hub",
		Topology: puzzle.Square.Name,
		Width:    1, Height: 1,
		Cells: []puzzle.CellSpec{{Kind: puzzle.ShapeCross}},
	}
	g := newTestGame(t, false, lvl)

	g.Step(frame(core.ActionRotate))
	g.Step(frame(core.ActionRotateBack))
	if g.moves != 0 {
		t.Errorf("moves = %d after rotating a cross, want 0", g.moves)
	}
}

func TestSolveAdvancesOnConfirm(t *testing.T) {
	g := newTestGame(t, false, facingPair(), facingPair())

	// Shipped solved, scramble disabled, so the first level starts solved.
	if !g.solved {
		t.Fatal("level should start solved with scrambling off")
	}

	st := g.Step(frame(core.ActionConfirm)).State
	if st.GameOver {
		t.Fatal("confirm should advance to level 2, not end the session")
	}
	if g.levelIndex != 1 {
		t.Fatalf("levelIndex = %d, want 1", g.levelIndex)
	}

	st = g.Step(frame(core.ActionConfirm)).State
	if !st.GameOver || !g.won {
		t.Fatal("confirming the last solved level should end the session")
	}
}

func TestSolvedBoardFreezesRotation(t *testing.T) {
	g := newTestGame(t, false, facingPair(), facingPair())

	g.Step(frame(core.ActionRotate))
	if g.moves != 0 {
		t.Errorf("rotation on a solved board should not count a move, got %d", g.moves)
	}
}

func TestRestartRestoresScrambledStart(t *testing.T) {
	g := newTestGame(t, true, facingPair())
	want := g.board.Level()

	g.Step(frame(core.ActionRotate))
	g.Step(frame(core.ActionRight, core.ActionRotate))
	g.Step(frame(core.ActionRestart))

	got := g.board.Level()
	for i := range want.Cells {
		if got.Cells[i] != want.Cells[i] {
			t.Fatalf("cell %d = %+v after restart, want %+v", i, got.Cells[i], want.Cells[i])
		}
	}
	if g.moves != 0 {
		t.Errorf("moves = %d after restart, want 0", g.moves)
	}
}

func TestLevelSwitchWrapsAround(t *testing.T) {
	a, b := facingPair(), facingPair()
	a.ID, b.ID = "a", "b"
	g := newTestGame(t, true, a, b)

	g.Step(frame(core.ActionPrevLevel))
	if g.level.ID != "b" {
		t.Fatalf("prev from first level should wrap to %q, got %q", "b", g.level.ID)
	}
	g.Step(frame(core.ActionNextLevel))
	if g.level.ID != "a" {
		t.Fatalf("next should wrap back to %q, got %q", "a", g.level.ID)
	}
}

func TestCursorClampedToBoard(t *testing.T) {
	g := newTestGame(t, true, facingPair())

	for i := 0; i < 5; i++ {
		g.Step(frame(core.ActionRight))
	}
	if g.cursor.X != 1 {
		t.Errorf("cursor.X = %d, want clamped to 1", g.cursor.X)
	}
	for i := 0; i < 5; i++ {
		g.Step(frame(core.ActionUp))
	}
	if g.cursor.Y != 0 {
		t.Errorf("cursor.Y = %d, want clamped to 0", g.cursor.Y)
	}
}

func TestCursorWrapsWhenEnabled(t *testing.T) {
	g := newTestGame(t, true, facingPair())
	g.wrap = true

	g.Step(frame(core.ActionLeft))
	if g.cursor.X != 1 {
		t.Errorf("cursor.X = %d after wrapping left from 0, want 1", g.cursor.X)
	}
	g.Step(frame(core.ActionRight))
	if g.cursor.X != 0 {
		t.Errorf("cursor.X = %d after wrapping right from 1, want 0", g.cursor.X)
	}
}

func TestRenderMarksDanglingAndSolved(t *testing.T) {
	g := newTestGame(t, false, facingPair())
	dst := core.NewScreen(80, 24)

	// Solved board renders green tiles.
	g.Render(dst)
	if !screenHasColor(dst, core.ColorGreen) {
		t.Error("solved board should render green tiles")
	}

	// Break the circuit; the endpoints dangle and render red.
	g.solved = false
	if err := g.board.Rotate(puzzle.C(0, 0), 1); err != nil {
		t.Fatal(err)
	}
	g.evaluate()
	g.Render(dst)
	if !screenHasColor(dst, core.ColorRed) {
		t.Error("dangling connectors should render red")
	}
}

func screenHasColor(s *core.Screen, c core.Color) bool {
	for y := 0; y < s.Height(); y++ {
		for x := 0; x < s.Width(); x++ {
			if s.ColorAt(x, y) == c {
				return true
			}
		}
	}
	return false
}

func TestGlyphTablesMatchTextFormat(t *testing.T) {
	topo := puzzle.Square
	for mask := puzzle.PortSet(0); mask < 16; mask++ {
		r := glyphFor(mask, ThemeASCII)
		cell, ok := formats.CellForRune(r)
		if !ok {
			t.Fatalf("mask %04b: glyph %q is not a text format character", mask, r)
		}
		shape, _ := topo.Shape(cell.Kind)
		if got := puzzle.EffectivePorts(topo, shape, cell.Rot); got != mask {
			t.Errorf("mask %04b: glyph %q decodes to ports %04b", mask, r, got)
		}
	}
}

func TestParseTheme(t *testing.T) {
	if th, ok := ParseTheme("ascii"); !ok || th != ThemeASCII {
		t.Error("ascii theme should parse")
	}
	if th, ok := ParseTheme(""); !ok || th != ThemeUnicode {
		t.Error("empty theme should default to unicode")
	}
	if _, ok := ParseTheme("neon"); ok {
		t.Error("unknown theme should not parse")
	}
}
