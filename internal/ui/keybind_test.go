package ui

import (
	"testing"

	"recipemaker/internal/recipe"

	tea "github.com/charmbracelet/bubbletea"
)

func TestKeybindRegistry_BindLookup(t *testing.T) {
	reg := NewKeybindRegistry()
	reg.Bind("ctrl+c", tea.Quit)
	reg.Bind("C-x q", tea.Quit)
	reg.Bind("j", nil)

	if reg.Lookup("ctrl+c") == nil {
		t.Error("expected ctrl+c to be bound")
	}
	if reg.Lookup("C-c") == nil {
		t.Error("expected C-c to resolve to the ctrl+c binding")
	}
	if reg.Lookup("ctrl+x q") == nil {
		t.Error("expected ctrl+x q to resolve to C-x q")
	}
	if reg.Lookup("unknown") != nil {
		t.Error("expected unknown to be unbound")
	}
}

func TestKeyHandler_LeaderKey(t *testing.T) {
	reg := NewKeybindRegistry()
	var executed bool
	reg.Bind("C-x s", func() tea.Msg {
		executed = true
		return nil
	})
	h := NewKeyHandler(reg)

	consumed, cmd := h.Handle(keyMsg("ctrl+x"), recipe.StateIdle)
	if !consumed || cmd != nil {
		t.Errorf("ctrl+x: consumed=%v cmd=%v", consumed, cmd)
	}
	if !h.LeaderWaiting {
		t.Error("expected leader waiting after ctrl+x")
	}

	consumed, cmd = h.Handle(keyMsg("s"), recipe.StateIdle)
	if !consumed {
		t.Errorf("s: expected consumed")
	}
	if h.LeaderWaiting {
		t.Error("leader should not be waiting after completing sequence")
	}
	if cmd == nil {
		t.Fatal("expected command for C-x s")
	}
	cmd()
	if !executed {
		t.Error("expected command to execute")
	}
}

func TestKeyHandler_EscCancelsLeader(t *testing.T) {
	reg := NewKeybindRegistry()
	reg.Bind("C-x q", tea.Quit)
	h := NewKeyHandler(reg)

	h.Handle(keyMsg("ctrl+x"), recipe.StateIdle)
	if !h.LeaderWaiting {
		t.Fatal("expected leader waiting")
	}

	consumed, cmd := h.Handle(keyMsg("esc"), recipe.StateIdle)
	if !consumed || cmd != nil {
		t.Errorf("esc: consumed=%v cmd=%v", consumed, cmd)
	}
	if h.LeaderWaiting {
		t.Error("esc should cancel leader mode")
	}
}

func TestKeyHandler_UnknownLeaderSequenceResets(t *testing.T) {
	reg := NewKeybindRegistry()
	reg.Bind("C-x q", tea.Quit)
	h := NewKeyHandler(reg)

	h.Handle(keyMsg("ctrl+x"), recipe.StateIdle)
	consumed, cmd := h.Handle(keyMsg("z"), recipe.StateIdle)
	if !consumed || cmd != nil {
		t.Errorf("z: consumed=%v cmd=%v", consumed, cmd)
	}
	if h.LeaderWaiting {
		t.Error("unknown sequence should leave leader mode")
	}
}

func TestKeyHandler_SingleKey(t *testing.T) {
	reg := NewKeybindRegistry()
	reg.Bind("ctrl+y", tea.Quit)
	h := NewKeyHandler(reg)

	consumed, cmd := h.Handle(keyMsg("ctrl+y"), recipe.StateIdle)
	if !consumed || cmd == nil {
		t.Errorf("ctrl+y: consumed=%v cmd=%v", consumed, cmd)
	}
}

func TestKeyHandler_UnboundFallsThrough(t *testing.T) {
	reg := NewKeybindRegistry()
	reg.Bind("ctrl+c", tea.Quit)
	h := NewKeyHandler(reg)

	// Plain letters belong to the dish input.
	for _, k := range []string{"q", "s", " ", "enter"} {
		if consumed, _ := h.Handle(keyMsg(k), recipe.StateIdle); consumed {
			t.Errorf("unbound %q should not be consumed", k)
		}
	}
}

func TestKeyHandler_StateFilter(t *testing.T) {
	reg := NewKeybindRegistry()
	reg.BindWithDescForStates("ctrl+s", tea.Quit, "submit", []recipe.State{recipe.StateIdle})
	h := NewKeyHandler(reg)

	consumed, cmd := h.Handle(keyMsg("ctrl+s"), recipe.StateLoading)
	if !consumed {
		t.Error("filtered binding should still be consumed")
	}
	if cmd != nil {
		t.Error("filtered binding should not fire while loading")
	}
	if _, cmd := h.Handle(keyMsg("ctrl+s"), recipe.StateIdle); cmd == nil {
		t.Error("binding should fire while idle")
	}
}

func TestKeybindRegistry_Hints(t *testing.T) {
	reg := newRegistry()

	single := reg.Hints("", false, recipe.StateIdle)
	if single["C-s"] != "submit" {
		t.Errorf("C-s hint = %q, want submit", single["C-s"])
	}
	if _, ok := single["C-x s"]; ok {
		t.Error("leader sequences should not be listed as single keys")
	}
	if _, ok := single["shift+tab"]; ok {
		t.Error("bindings without description should not be hinted")
	}
	if _, ok := single["esc"]; ok {
		t.Error("esc cancel should only be hinted while loading")
	}

	leader := reg.Hints("C-x", true, recipe.StateIdle)
	for k, want := range map[string]string{"s": "Submit", "c": "Copy recipe", "l": "Clear", "q": "Quit"} {
		if leader[k] != want {
			t.Errorf("leader hint %q = %q, want %q", k, leader[k], want)
		}
	}

	loading := reg.Hints("C-x", true, recipe.StateLoading)
	if _, ok := loading["s"]; ok {
		t.Error("submit should not be hinted while loading")
	}
	if loading["c"] == "" {
		t.Error("copy should stay available while loading")
	}
}

// keyMsg creates a tea.KeyMsg for testing. Bubble Tea uses KeyType and Runes.
// KeySpace.String() returns " ", KeyCtrlX returns "ctrl+x", etc.
func keyMsg(s string) tea.KeyMsg {
	switch s {
	case "space", " ":
		return tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "alt+enter":
		return tea.KeyMsg{Type: tea.KeyEnter, Alt: true}
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	case "shift+tab":
		return tea.KeyMsg{Type: tea.KeyShiftTab}
	case "pgdown":
		return tea.KeyMsg{Type: tea.KeyPgDown}
	case "ctrl+c":
		return tea.KeyMsg{Type: tea.KeyCtrlC}
	case "ctrl+s":
		return tea.KeyMsg{Type: tea.KeyCtrlS}
	case "ctrl+x":
		return tea.KeyMsg{Type: tea.KeyCtrlX}
	case "ctrl+y":
		return tea.KeyMsg{Type: tea.KeyCtrlY}
	default:
		return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
	}
}

// typeText feeds s to m one rune at a time.
func typeText(m tea.Model, s string) {
	for _, r := range s {
		m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
}
