package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/okurenko/conduit/internal/core"
)

func TestMapKeyActions(t *testing.T) {
	km := NewKeyMapper()

	tests := []struct {
		key    tea.KeyMsg
		action core.Action
		quit   bool
	}{
		{tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("w")}, core.ActionUp, false},
		{tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("j")}, core.ActionDown, false},
		{tea.KeyMsg{Type: tea.KeyLeft}, core.ActionLeft, false},
		{tea.KeyMsg{Type: tea.KeySpace, Runes: []rune(" ")}, core.ActionRotate, false},
		{tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("u")}, core.ActionRotateBack, false},
		{tea.KeyMsg{Type: tea.KeyEnter}, core.ActionConfirm, false},
		{tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("r")}, core.ActionRestart, false},
		{tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("]")}, core.ActionNextLevel, false},
		{tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("[")}, core.ActionPrevLevel, false},
		{tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")}, core.ActionQuit, true},
		{tea.KeyMsg{Type: tea.KeyCtrlC}, core.ActionQuit, true},
		{tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("7")}, core.ActionNone, false},
	}

	for _, tt := range tests {
		action, quit := km.MapKey(tt.key)
		if action != tt.action || quit != tt.quit {
			t.Errorf("MapKey(%q) = (%v, %v), want (%v, %v)",
				tt.key.String(), action, quit, tt.action, tt.quit)
		}
	}
}

func TestMapKeyToFrameCarriesRunes(t *testing.T) {
	km := NewKeyMapper()
	frame := core.NewInputFrame()

	// Tile characters pass through as literal runes
	km.MapKeyToFrame(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("7")}, &frame)
	if frame.Rune != '7' {
		t.Errorf("Rune = %q, want '7'", frame.Rune)
	}

	// Space is rotation only, never a literal rune
	frame.Clear()
	km.MapKeyToFrame(tea.KeyMsg{Type: tea.KeySpace, Runes: []rune(" ")}, &frame)
	if !frame.Has(core.ActionRotate) {
		t.Error("space should map to rotate")
	}
	if frame.Rune != 0 {
		t.Errorf("space should not carry a rune, got %q", frame.Rune)
	}

	// Movement keys carry both the action and the rune
	frame.Clear()
	km.MapKeyToFrame(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("w")}, &frame)
	if !frame.Has(core.ActionUp) {
		t.Error("w should map to up")
	}
	if frame.Rune != 'w' {
		t.Errorf("Rune = %q, want 'w'", frame.Rune)
	}
}
