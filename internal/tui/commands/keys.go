package commands

import (
    "github.com/charmbracelet/bubbles/key"
    tea "github.com/charmbracelet/bubbletea"
)

type binding struct {
    name Name
    key  key.Binding
}

// KeyMap binds modifier shortcuts to command names.
type KeyMap struct {
    bindings []binding
}

func bind(n Name, keys ...string) binding {
    return binding{name: n, key: key.NewBinding(key.WithKeys(keys...), key.WithHelp(keys[0], string(n)))}
}

// DefaultKeyMap returns the stock shortcuts. Every entry needs a modifier
// so that plain typing always reaches the editor.
func DefaultKeyMap() KeyMap {
    return KeyMap{bindings: []binding{
        bind(Run, "ctrl+r"),
        bind(Visualize, "ctrl+e"),
        bind(Debug, "ctrl+d"),
        bind(Save, "ctrl+s"),
        bind(Load, "ctrl+o"),
        bind(Format, "ctrl+f"),
        bind(New, "ctrl+n"),
        bind(ClearConsole, "ctrl+k"),
        bind(ThemeToggle, "ctrl+t"),
        bind(Help, "f1"),
        bind(ZoomIn, "alt+=", "alt++"),
        bind(ZoomOut, "alt+-"),
        bind(ZoomReset, "alt+0"),
        bind(ViewStructure, "alt+1"),
        bind(ViewConsole, "alt+2"),
        bind(ViewFlow, "alt+3"),
        bind(Console, "ctrl+l"),
        bind(Copy, "ctrl+y"),
        bind(Palette, "ctrl+p"),
        bind(Quit, "ctrl+q", "ctrl+c"),
    }}
}

// Lookup returns the command bound to msg.
func (k KeyMap) Lookup(msg tea.KeyMsg) (Name, bool) {
    for _, b := range k.bindings {
        if key.Matches(msg, b.key) {
            return b.name, true
        }
    }
    return "", false
}

// Global reports whether n dispatches regardless of focus.
func Global(n Name) bool { return n == Console || n == Quit }

// Binding returns the key binding for n.
func (k KeyMap) Binding(n Name) (key.Binding, bool) {
    for _, b := range k.bindings {
        if b.name == n {
            return b.key, true
        }
    }
    return key.Binding{}, false
}

// ShortHelp implements help.KeyMap.
func (k KeyMap) ShortHelp() []key.Binding {
    var out []key.Binding
    for _, n := range []Name{Run, Save, Load, Format, Palette, Help, Quit} {
        if b, ok := k.Binding(n); ok {
            out = append(out, b)
        }
    }
    return out
}

// FullHelp implements help.KeyMap, grouped as actions, files, view.
func (k KeyMap) FullHelp() [][]key.Binding {
    groups := [][]Name{
        {Run, Visualize, Debug, Format, Copy},
        {New, Save, Load, ClearConsole, Palette},
        {ViewStructure, ViewConsole, ViewFlow, Console, ThemeToggle},
        {ZoomIn, ZoomOut, ZoomReset, Help, Quit},
    }
    out := make([][]key.Binding, 0, len(groups))
    for _, g := range groups {
        var col []key.Binding
        for _, n := range g {
            if b, ok := k.Binding(n); ok {
                col = append(col, b)
            }
        }
        out = append(out, col)
    }
    return out
}
