// Package game provides the conduit play mode: rotate tiles until every
// connector meets a matching neighbor and the network forms a single circuit.
package game

import (
	"math/rand"

	"github.com/okurenko/conduit/internal/core"
	"github.com/okurenko/conduit/internal/levels"
	"github.com/okurenko/conduit/internal/puzzle"
	"github.com/okurenko/conduit/internal/registry"
)

// Game implements the conduit puzzle play mode.
type Game struct {
	rng    *rand.Rand
	board  *puzzle.Board
	level  puzzle.Level
	start  puzzle.Level // post-scramble arrangement, for restart
	eval   puzzle.Evaluation
	cursor puzzle.Coord

	levelIndex int
	allLevels  []puzzle.Level

	moves    int
	solved   bool
	won      bool
	gameOver bool

	screenW  int
	screenH  int
	tooSmall bool

	// Per-instance copies of the runtime selection, so concurrent
	// sessions never share level state.
	levelsRoot string
	startID    string

	theme Theme
	wrap  bool
}

// Package-level variables for configuration, set by the CLI before Reset.
var (
	levelsDir     string
	scramble      = true
	cursorWrap    = false
	selectedTheme = ThemeUnicode
)

// SetLevelsDir points the loader at a user level directory.
// Empty means built-ins only.
func SetLevelsDir(dir string) {
	levelsDir = dir
}

// SetScramble controls whether levels are shuffled on load.
// Disabling it is useful for inspecting level files, which ship solved.
func SetScramble(on bool) {
	scramble = on
}

// SetCursorWrap makes the cursor cross to the opposite edge instead of
// stopping at the boundary.
func SetCursorWrap(on bool) {
	cursorWrap = on
}

// SetTheme selects the tile glyph set.
func SetTheme(t Theme) {
	selectedTheme = t
}

func init() {
	registry.Register("play", func() registry.Game {
		return New()
	})
}

// New creates a new conduit game.
func New() *Game {
	return &Game{theme: selectedTheme}
}

// ID returns the mode identifier.
func (g *Game) ID() string {
	return "play"
}

// Title returns the display name.
func (g *Game) Title() string {
	return "Conduit"
}

// Reset initializes or restarts the game.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.rng = rand.New(rand.NewSource(cfg.Seed))
	g.screenW = cfg.ScreenW
	g.screenH = cfg.ScreenH
	g.moves = 0
	g.solved = false
	g.won = false
	g.gameOver = false
	g.theme = selectedTheme
	g.wrap = cursorWrap

	g.levelsRoot = cfg.LevelsDir
	if g.levelsRoot == "" {
		g.levelsRoot = levelsDir
	}
	g.startID = cfg.StartLevel

	loader := levels.NewLoader(g.levelsRoot)
	all, err := loader.LoadAll()
	if err != nil || len(all) == 0 {
		g.gameOver = true
		return
	}
	g.allLevels = all

	g.levelIndex = 0
	if g.startID != "" {
		for i, lvl := range all {
			if lvl.ID == g.startID {
				g.levelIndex = i
				break
			}
		}
	}

	g.loadCurrentLevel()
}

// loadCurrentLevel builds a board for the level at levelIndex and
// scrambles it.
func (g *Game) loadCurrentLevel() {
	if g.levelIndex >= len(g.allLevels) {
		g.won = true
		g.gameOver = true
		return
	}

	g.level = g.allLevels[g.levelIndex]
	board, err := puzzle.NewBoard(g.level)
	if err != nil {
		g.gameOver = true
		return
	}
	g.board = board

	if scramble {
		g.board.Scramble(g.rng)
	}
	g.start = g.board.Level()
	g.start.ID = g.level.ID
	g.start.Name = g.level.Name

	g.cursor = puzzle.C(0, 0)
	g.moves = 0
	g.evaluate()
	g.checkLayout()
}

// rotateCursor rotates the tile under the cursor by delta steps.
// Tiles whose rotation cannot change the board (blank, cross) are
// skipped so the move count stays meaningful.
func (g *Game) rotateCursor(delta int) {
	tile, err := g.board.Tile(g.cursor)
	if err != nil || tile.Shape.Period == 1 {
		return
	}
	if err := g.board.Rotate(g.cursor, delta); err == nil {
		g.moves++
		g.evaluate()
	}
}

// restartLevel replays the post-scramble starting arrangement rather than
// drawing a fresh scramble, so restart always returns to the same start.
func (g *Game) restartLevel() {
	board, err := puzzle.NewBoard(g.start)
	if err != nil {
		return
	}
	g.board = board
	g.moves = 0
	g.evaluate()
}

// Step advances the game by one tick.
func (g *Game) Step(input core.InputFrame) core.StepResult {
	if g.gameOver {
		if input.Has(core.ActionRestart) {
			g.Reset(core.RuntimeConfig{
				Seed:       g.rng.Int63(),
				ScreenW:    g.screenW,
				ScreenH:    g.screenH,
				LevelsDir:  g.levelsRoot,
				StartLevel: g.startID,
			})
		}
		return core.StepResult{State: g.State()}
	}
	if g.board == nil {
		return core.StepResult{State: g.State()}
	}

	if input.Has(core.ActionRestart) {
		g.restartLevel()
		return core.StepResult{State: g.State()}
	}
	if input.Has(core.ActionNextLevel) {
		g.switchLevel(1)
		return core.StepResult{State: g.State()}
	}
	if input.Has(core.ActionPrevLevel) {
		g.switchLevel(-1)
		return core.StepResult{State: g.State()}
	}

	// Solved boards freeze until the player confirms or switches level.
	if g.solved {
		if input.Has(core.ActionConfirm) {
			g.advance()
		}
		return core.StepResult{State: g.State()}
	}

	g.moveCursor(input)

	if input.Has(core.ActionRotate) {
		g.rotateCursor(1)
	}
	if input.Has(core.ActionRotateBack) {
		g.rotateCursor(-1)
	}

	return core.StepResult{State: g.State()}
}

// moveCursor applies directional input, clamped or wrapped at the edges.
func (g *Game) moveCursor(input core.InputFrame) {
	c := g.cursor
	if input.Has(core.ActionUp) {
		c.Y--
	}
	if input.Has(core.ActionDown) {
		c.Y++
	}
	if input.Has(core.ActionLeft) {
		c.X--
	}
	if input.Has(core.ActionRight) {
		c.X++
	}
	w, h := g.board.Width(), g.board.Height()
	if g.wrap {
		c.X = ((c.X % w) + w) % w
		c.Y = ((c.Y % h) + h) % h
	} else {
		c.X = core.Clamp(c.X, 0, w-1)
		c.Y = core.Clamp(c.Y, 0, h-1)
	}
	g.cursor = c
}

// switchLevel jumps delta levels forward or backward, wrapping around.
func (g *Game) switchLevel(delta int) {
	n := len(g.allLevels)
	if n == 0 {
		return
	}
	g.levelIndex = ((g.levelIndex+delta)%n + n) % n
	g.loadCurrentLevel()
}

// advance moves to the next level after a solve. Completing the last level
// ends the session.
func (g *Game) advance() {
	g.levelIndex++
	if g.levelIndex >= len(g.allLevels) {
		g.won = true
		g.gameOver = true
		return
	}
	g.loadCurrentLevel()
}

// evaluate recomputes the board evaluation and the solved flag.
func (g *Game) evaluate() {
	g.eval = puzzle.Evaluate(g.board.Snapshot())
	g.solved = g.eval.Solved
}

// checkLayout verifies the board fits the screen.
func (g *Game) checkLayout() {
	neededW := g.board.Width()*cellW + 4
	neededH := g.board.Height() + hudHeight + 3
	g.tooSmall = g.screenW < neededW || g.screenH < neededH
}

// Resize updates the screen dimensions without resetting the puzzle.
func (g *Game) Resize(w, h int) {
	g.screenW = w
	g.screenH = h
	if g.board != nil {
		g.checkLayout()
	}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		LevelID:  g.level.ID,
		Moves:    g.moves,
		Solved:   g.solved,
		GameOver: g.gameOver,
	}
}
