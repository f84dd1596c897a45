package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/blockfall/internal/core"
)

func TestMenuSelect(t *testing.T) {
	m := NewMenuModel(core.RuntimeConfig{ScreenW: 80, ScreenH: 24})

	// The cursor stays on the only entry.
	for _, msg := range []tea.KeyMsg{{Type: tea.KeyDown}, {Type: tea.KeyUp}, {Type: tea.KeyEnter}} {
		next, _ := m.Update(msg)
		m = next.(MenuModel)
	}

	sel := m.Selected()
	if sel == nil {
		t.Fatal("nothing selected")
	}
	if sel.GameID != "fake" {
		t.Errorf("selected %q, expected %q", sel.GameID, "fake")
	}
}

func TestMenuResizeUpdatesConfig(t *testing.T) {
	m := NewMenuModel(core.RuntimeConfig{ScreenW: 80, ScreenH: 24})
	next, _ := m.Update(tea.WindowSizeMsg{Width: 120, Height: 50})
	m = next.(MenuModel)

	if cfg := m.Config(); cfg.ScreenW != 120 || cfg.ScreenH != 50 {
		t.Errorf("Config() = %dx%d, expected 120x50", cfg.ScreenW, cfg.ScreenH)
	}
}

func TestMenuView(t *testing.T) {
	m := NewMenuModel(core.RuntimeConfig{ScreenW: 80, ScreenH: 24})
	view := m.View()
	for _, want := range []string{"B L O C K F A L L", "> Fake", "enter"} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q:\n%s", want, view)
		}
	}

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")})
	if !next.(MenuModel).IsQuitting() {
		t.Error("q should quit")
	}
}
