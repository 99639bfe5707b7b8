package ui

import (
	"sort"
	"strings"

	"recipemaker/internal/recipe"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// KeybindRegistry maps key sequences to commands.
// Key sequences use emacs-style notation: "C-x" for the leader, "C-x s" for C-x then s.
// Single keys: "ctrl+s", "ctrl+y", "esc", "ctrl+c".
type KeybindRegistry struct {
	bindings     map[string]tea.Cmd
	descriptions map[string]string
	stateFilter  map[string][]recipe.State // nil/empty = applies to all states
}

// NewKeybindRegistry creates an empty registry.
func NewKeybindRegistry() *KeybindRegistry {
	return &KeybindRegistry{
		bindings:     make(map[string]tea.Cmd),
		descriptions: make(map[string]string),
		stateFilter:  make(map[string][]recipe.State),
	}
}

// Bind registers a key sequence to a command.
// Overwrites any existing binding for the sequence.
func (r *KeybindRegistry) Bind(seq string, cmd tea.Cmd) {
	r.BindWithDesc(seq, cmd, "")
}

// BindWithDesc registers a key sequence with a description for the help view.
// The binding applies in every page state.
func (r *KeybindRegistry) BindWithDesc(seq string, cmd tea.Cmd, desc string) {
	r.BindWithDescForStates(seq, cmd, desc, nil)
}

// BindWithDescForStates registers a key sequence with a description and state filter.
// If states is nil or empty, the binding applies to all states.
// Otherwise, it only fires and is only hinted while the page is in one of states.
func (r *KeybindRegistry) BindWithDescForStates(seq string, cmd tea.Cmd, desc string, states []recipe.State) {
	n := normalizeSeq(seq)
	r.bindings[n] = cmd
	if desc != "" {
		r.descriptions[n] = desc
	}
	if len(states) > 0 {
		r.stateFilter[n] = states
	}
}

// Lookup returns the command for a key sequence, or nil if not bound.
func (r *KeybindRegistry) Lookup(seq string) tea.Cmd {
	return r.bindings[normalizeSeq(seq)]
}

// LookupForState returns the command for seq if it applies in state.
func (r *KeybindRegistry) LookupForState(seq string, state recipe.State) tea.Cmd {
	n := normalizeSeq(seq)
	if !r.appliesToState(n, state) {
		return nil
	}
	return r.bindings[n]
}

// HasPrefix returns true if any binding starts with seq and a space (i.e. more keys follow).
func (r *KeybindRegistry) HasPrefix(seq string) bool {
	prefix := normalizeSeq(seq) + " "
	for k := range r.bindings {
		if strings.HasPrefix(k, prefix) {
			return true
		}
	}
	return false
}

// Hints returns bound sequences with descriptions for display, filtered by
// state. When leader is false only described single-key bindings are returned; when
// true only sequences continuing currentSeq, keyed by their next key.
func (r *KeybindRegistry) Hints(currentSeq string, leader bool, state recipe.State) map[string]string {
	out := make(map[string]string)
	prefix := normalizeSeq(currentSeq) + " "
	for seq, cmd := range r.bindings {
		if cmd == nil || !r.appliesToState(seq, state) {
			continue
		}
		if !leader {
			if strings.Contains(seq, " ") || r.descriptions[seq] == "" {
				continue
			}
			out[seq] = r.describe(seq)
			continue
		}
		if !strings.HasPrefix(seq, prefix) {
			continue
		}
		rest := strings.Fields(strings.TrimPrefix(seq, prefix))
		if len(rest) == 0 {
			continue
		}
		if len(rest) > 1 {
			out[rest[0]] = rest[0] + "…"
			continue
		}
		out[rest[0]] = r.describe(seq)
	}
	return out
}

func (r *KeybindRegistry) describe(seq string) string {
	if d, ok := r.descriptions[seq]; ok && d != "" {
		return d
	}
	return seq
}

// appliesToState returns true if the binding applies to the given state.
func (r *KeybindRegistry) appliesToState(seq string, state recipe.State) bool {
	states, ok := r.stateFilter[seq]
	if !ok || len(states) == 0 {
		return true
	}
	for _, s := range states {
		if s == state {
			return true
		}
	}
	return false
}

// normalizeSeq converts tea key strings to our canonical format.
// "ctrl+x s" -> "C-x s", "space" -> "SPC".
func normalizeSeq(seq string) string {
	parts := strings.Fields(seq)
	for i, p := range parts {
		parts[i] = keyToSeqPart(p)
	}
	return strings.Join(parts, " ")
}

// KeyHandler manages leader key state and dispatches to the registry.
type KeyHandler struct {
	Registry      *KeybindRegistry
	LeaderKey     string   // "ctrl+x" (tea.KeyMsg.String() format)
	LeaderSeq     string   // "C-x" (our format)
	LeaderWaiting bool     // true when waiting for key after leader
	Buffer        []string // accumulated sequence in leader mode
}

// NewKeyHandler creates a handler with C-x as leader.
// Space cannot lead here because it is typed into the dish textarea.
func NewKeyHandler(reg *KeybindRegistry) *KeyHandler {
	return &KeyHandler{
		Registry:  reg,
		LeaderKey: "ctrl+x",
		LeaderSeq: "C-x",
	}
}

// Handle processes a KeyMsg for the page in state. Returns (consumed, cmd).
// If consumed is true, the key was handled by the keybind system and should not be passed to views.
// cmd is the command to run, if any.
func (h *KeyHandler) Handle(msg tea.KeyMsg, state recipe.State) (consumed bool, cmd tea.Cmd) {
	s := msg.String()

	// Esc cancels leader mode
	if s == "esc" && h.LeaderWaiting {
		h.Reset()
		return true, nil
	}

	// Leader key pressed
	if s == h.LeaderKey && !h.LeaderWaiting {
		h.LeaderWaiting = true
		h.Buffer = []string{h.LeaderSeq}
		return true, nil
	}

	// In leader mode: append key and look up
	if h.LeaderWaiting {
		h.Buffer = append(h.Buffer, keyToSeqPart(s))
		seq := strings.Join(h.Buffer, " ")

		if c := h.Registry.LookupForState(seq, state); c != nil {
			h.Reset()
			return true, c
		}
		// No exact match; stay in leader mode if a longer binding exists
		if h.Registry.HasPrefix(seq) {
			return true, nil
		}
		h.Reset()
		return true, nil
	}

	// Not in leader mode: check single-key bindings
	part := keyToSeqPart(s)
	if c := h.Registry.LookupForState(part, state); c != nil {
		return true, c
	}
	// Bound but filtered out in this state: swallow it rather than typing it.
	if h.Registry.Lookup(part) != nil {
		return true, nil
	}
	return false, nil
}

// Reset leaves leader mode.
func (h *KeyHandler) Reset() {
	h.LeaderWaiting = false
	h.Buffer = nil
}

// CurrentSeq returns the accumulated leader sequence, or "".
func (h *KeyHandler) CurrentSeq() string {
	return strings.Join(h.Buffer, " ")
}

// keyToSeqPart converts a tea key string to our sequence part.
func keyToSeqPart(s string) string {
	switch {
	case s == " " || s == "space":
		return "SPC"
	case strings.HasPrefix(s, "ctrl+") && len(s) == len("ctrl+")+1:
		return "C-" + strings.TrimPrefix(s, "ctrl+")
	}
	return s
}

// KeyMap implements help.KeyMap for rendering keybind help with bubbles/help.Model.
// Outside leader mode it lists the single-key bindings for the page state;
// in leader mode it lists the keys that continue the current sequence.
type KeyMap struct {
	registry   *KeybindRegistry
	keyHandler *KeyHandler
	state      recipe.State
}

// NewKeyMap creates a KeyMap for the given registry, handler, and page state.
func NewKeyMap(registry *KeybindRegistry, keyHandler *KeyHandler, state recipe.State) help.KeyMap {
	return &KeyMap{
		registry:   registry,
		keyHandler: keyHandler,
		state:      state,
	}
}

// ShortHelp returns bindings for the short help view.
func (km *KeyMap) ShortHelp() []key.Binding {
	if km.registry == nil {
		return nil
	}
	leader := km.keyHandler != nil && km.keyHandler.LeaderWaiting
	currentSeq := ""
	if leader {
		currentSeq = km.keyHandler.CurrentSeq()
	}
	hints := km.registry.Hints(currentSeq, leader, km.state)

	// Sort keys for stable display
	keys := make([]string, 0, len(hints))
	for k := range hints {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	bindings := make([]key.Binding, 0, len(keys)+1)
	for _, k := range keys {
		bindings = append(bindings, key.NewBinding(
			key.WithKeys(k),
			key.WithHelp(k, hints[k]),
		))
	}
	if leader {
		bindings = append(bindings, key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "cancel"),
		))
	} else if km.keyHandler != nil {
		bindings = append(bindings, key.NewBinding(
			key.WithKeys(km.keyHandler.LeaderKey),
			key.WithHelp(km.keyHandler.LeaderSeq, "menu"),
		))
	}
	return bindings
}

// FullHelp returns bindings grouped by columns for the full help view.
// For now, returns a single column with the same bindings as ShortHelp.
func (km *KeyMap) FullHelp() [][]key.Binding {
	short := km.ShortHelp()
	if len(short) == 0 {
		return nil
	}
	return [][]key.Binding{short}
}
