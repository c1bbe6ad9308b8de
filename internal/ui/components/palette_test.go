package components

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func typeInto(p Palette, s string) Palette {
	p, _ = p.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)})
	return p
}

func TestPaletteSubmitRemembersHistory(t *testing.T) {
	p := NewPalette()
	p.Open()
	p = typeInto(p, "refresh")

	p, cmd := p.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if p.Visible() {
		t.Fatalf("palette still visible after enter")
	}
	msg, ok := cmd().(PaletteSubmitMsg)
	if !ok || msg.Input != "refresh" {
		t.Fatalf("submit msg = %#v", cmd())
	}

	p.Open()
	p, _ = p.Update(tea.KeyMsg{Type: tea.KeyUp})
	if got := p.input.Value(); got != "refresh" {
		t.Fatalf("recalled %q, want refresh", got)
	}
	p, _ = p.Update(tea.KeyMsg{Type: tea.KeyDown})
	if got := p.input.Value(); got != "" {
		t.Fatalf("down past newest should clear input, got %q", got)
	}
}

func TestPaletteTabCompletesCommandWord(t *testing.T) {
	p := NewPalette()
	p.Open()
	p = typeInto(p, "exercise:st")
	p, _ = p.Update(tea.KeyMsg{Type: tea.KeyTab})
	if got := p.input.Value(); got != "exercise:start " {
		t.Fatalf("completion = %q", got)
	}
}

func TestPaletteEscCancels(t *testing.T) {
	p := NewPalette()
	p.Open()
	p, cmd := p.Update(tea.KeyMsg{Type: tea.KeyEsc})
	if p.Visible() {
		t.Fatalf("palette still visible after esc")
	}
	if _, ok := cmd().(PaletteCancelMsg); !ok {
		t.Fatalf("expected PaletteCancelMsg")
	}
	if len(p.History()) != 0 {
		t.Fatalf("cancelled input must not enter history")
	}
}
