package ui

import (
	"slices"
	"sort"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// binding is one registered key sequence.
type binding struct {
	cmd    tea.Cmd
	desc   string
	scopes []string // panel IDs; empty = global
}

// KeybindRegistry maps key sequences to commands.
// Key sequences use spacemacs-style notation: "SPC" for space, "SPC f t" for SPC, f, t.
// Single keys: "q", "tab", "ctrl+c", "?".
type KeybindRegistry struct {
	bindings map[string]binding
	submenus map[string]string // "SPC f" -> "Focus"
}

// NewKeybindRegistry creates an empty registry.
func NewKeybindRegistry() *KeybindRegistry {
	return &KeybindRegistry{
		bindings: make(map[string]binding),
		submenus: make(map[string]string),
	}
}

// Bind registers a global key sequence. Overwrites any existing binding.
func (r *KeybindRegistry) Bind(seq string, cmd tea.Cmd) {
	r.BindWithDesc(seq, cmd, "")
}

// BindWithDesc registers a global key sequence with a description for the help view.
func (r *KeybindRegistry) BindWithDesc(seq string, cmd tea.Cmd, desc string) {
	r.BindScoped(seq, cmd, desc)
}

// BindScoped registers a key sequence that only fires while one of scopes
// (panel IDs) is focused. No scopes means global.
func (r *KeybindRegistry) BindScoped(seq string, cmd tea.Cmd, desc string, scopes ...string) {
	r.bindings[normalizeSeq(seq)] = binding{cmd: cmd, desc: desc, scopes: scopes}
}

// Submenu labels a prefix that has sub-bindings, e.g. "SPC f" -> "Focus".
func (r *KeybindRegistry) Submenu(prefix, label string) {
	r.submenus[normalizeSeq(prefix)] = label
}

// Lookup returns the command for a key sequence in scope, or nil if not bound.
func (r *KeybindRegistry) Lookup(seq, scope string) tea.Cmd {
	b, ok := r.bindings[normalizeSeq(seq)]
	if !ok || !b.appliesTo(scope) {
		return nil
	}
	return b.cmd
}

// HasPrefix returns true if any binding in scope starts with seq and a space (i.e. more keys follow).
func (r *KeybindRegistry) HasPrefix(seq, scope string) bool {
	prefix := normalizeSeq(seq) + " "
	for k, b := range r.bindings {
		if strings.HasPrefix(k, prefix) && b.appliesTo(scope) {
			return true
		}
	}
	return false
}

// Hints returns all bound sequences with descriptions for display.
// Values are descriptions, or the sequence itself if none was set.
func (r *KeybindRegistry) Hints() map[string]string {
	out := make(map[string]string)
	for seq, b := range r.bindings {
		if b.cmd == nil {
			continue
		}
		out[seq] = b.describe(seq)
	}
	return out
}

// LeaderHints returns the keys that may follow currentSeq in scope.
// When currentSeq is empty or "SPC", returns first-level hints (e.g. "q", "f").
// Keys that open a submenu are labeled with the submenu name, or "key…".
func (r *KeybindRegistry) LeaderHints(currentSeq, scope string) map[string]string {
	out := make(map[string]string)
	if currentSeq == "" {
		currentSeq = "SPC"
	}
	prefix := normalizeSeq(currentSeq) + " "
	for seq, b := range r.bindings {
		if b.cmd == nil || !strings.HasPrefix(seq, prefix) || !b.appliesTo(scope) {
			continue
		}
		next := strings.Fields(strings.TrimPrefix(seq, prefix))[0]
		if sub := prefix + next; r.HasPrefix(sub, scope) {
			if label, ok := r.submenus[sub]; ok {
				out[next] = label
			} else {
				out[next] = next + "…"
			}
			continue
		}
		out[next] = b.describe(seq)
	}
	return out
}

func (b binding) appliesTo(scope string) bool {
	return len(b.scopes) == 0 || slices.Contains(b.scopes, scope)
}

func (b binding) describe(seq string) string {
	if b.desc != "" {
		return b.desc
	}
	return seq
}

// normalizeSeq converts tea key strings to our canonical format.
// "space" -> "SPC", "ctrl+c" -> "ctrl+c", "j" -> "j".
func normalizeSeq(seq string) string {
	parts := strings.Fields(seq)
	if seq == " " {
		parts = []string{"SPC"}
	}
	for i, p := range parts {
		parts[i] = keyToSeqPart(p)
	}
	return strings.Join(parts, " ")
}

// KeyHandler manages leader key state and dispatches to the registry.
type KeyHandler struct {
	Registry      *KeybindRegistry
	LeaderKey     string   // " " (tea.KeyMsg.String() format)
	LeaderSeq     string   // "SPC" (our format)
	LeaderWaiting bool     // true when waiting for key after leader
	Buffer        []string // accumulated sequence in leader mode
}

// NewKeyHandler creates a handler with SPC as leader.
// Bubble Tea reports space as " " (KeySpace), not "space".
func NewKeyHandler(reg *KeybindRegistry) *KeyHandler {
	return &KeyHandler{
		Registry:  reg,
		LeaderKey: " ",
		LeaderSeq: "SPC",
	}
}

// Handle processes a KeyMsg for the focused panel scope. Returns (consumed, cmd).
// If consumed is true, the key was handled by the keybind system and should not be passed to views.
func (h *KeyHandler) Handle(msg tea.KeyMsg, scope string) (consumed bool, cmd tea.Cmd) {
	s := msg.String()

	if s == "esc" {
		if h.LeaderWaiting {
			h.Cancel()
			return true, nil
		}
		return false, nil
	}

	if s == h.LeaderKey && !h.LeaderWaiting {
		h.LeaderWaiting = true
		h.Buffer = []string{h.LeaderSeq}
		return true, nil
	}

	if h.LeaderWaiting {
		h.Buffer = append(h.Buffer, keyToSeqPart(s))
		seq := strings.Join(h.Buffer, " ")

		if c := h.Registry.Lookup(seq, scope); c != nil {
			h.Cancel()
			return true, c
		}
		// Stay in leader mode if a longer binding exists
		if h.Registry.HasPrefix(seq, scope) {
			return true, nil
		}
		h.Cancel()
		return true, nil
	}

	if c := h.Registry.Lookup(keyToSeqPart(s), scope); c != nil {
		return true, c
	}
	return false, nil
}

// Cancel leaves leader mode.
func (h *KeyHandler) Cancel() {
	h.LeaderWaiting = false
	h.Buffer = nil
}

// keyToSeqPart converts a tea key string to our sequence part.
func keyToSeqPart(s string) string {
	if s == " " || s == "space" {
		return "SPC"
	}
	return s
}

// KeyMap implements help.KeyMap for rendering leader hints with bubbles/help.
type KeyMap struct {
	handler *KeyHandler
	scope   string
}

// NewKeyMap creates a KeyMap for the handler's current sequence in scope.
func NewKeyMap(handler *KeyHandler, scope string) help.KeyMap {
	return &KeyMap{handler: handler, scope: scope}
}

// ShortHelp returns one binding per next key, sorted, followed by esc.
func (km *KeyMap) ShortHelp() []key.Binding {
	if km.handler == nil || km.handler.Registry == nil {
		return nil
	}
	hints := km.handler.Registry.LeaderHints(strings.Join(km.handler.Buffer, " "), km.scope)
	if len(hints) == 0 {
		return nil
	}
	keys := make([]string, 0, len(hints))
	for k := range hints {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	bindings := make([]key.Binding, 0, len(keys)+1)
	for _, k := range keys {
		bindings = append(bindings, key.NewBinding(key.WithKeys(k), key.WithHelp(k, hints[k])))
	}
	return append(bindings, key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "cancel")))
}

// FullHelp returns a single column with the same bindings as ShortHelp.
func (km *KeyMap) FullHelp() [][]key.Binding {
	short := km.ShortHelp()
	if len(short) == 0 {
		return nil
	}
	return [][]key.Binding{short}
}
