package helpoverlay

import (
    "fmt"
    "strings"

    "github.com/charmbracelet/bubbles/help"
    "github.com/charmbracelet/glamour"

    "cppviz/internal/tui/commands"
    "cppviz/internal/tui/state"
)

type HelpOverlay struct {
    keys commands.KeyMap
}

func NewHelpOverlay(keys commands.KeyMap) HelpOverlay { return HelpOverlay{keys: keys} }

// Markdown lists every command with its shortcut, grouped the same way as
// the full key help.
func (h HelpOverlay) Markdown() string {
    var b strings.Builder
    b.WriteString("# C++ Code Visualizer\n\n")
    b.WriteString("| Command | Key | What it does |\n|---|---|---|\n")
    for _, n := range append(append([]commands.Name{}, commands.Toolbar...),
        commands.ZoomReset, commands.ViewStructure, commands.ViewConsole, commands.ViewFlow,
        commands.Console, commands.Copy, commands.Find, commands.Palette, commands.Quit) {
        k := "palette"
        if kb, ok := h.keys.Binding(n); ok {
            k = "`" + kb.Help().Key + "`"
        }
        fmt.Fprintf(&b, "| %s | %s | %s |\n", n, k, commands.Descriptions[n])
    }
    b.WriteString("\nRun, visualize and debug are simulations: nothing is compiled or executed.\n")
    return b.String()
}

// View renders the overlay for the current theme. Markdown styling is
// skipped when color is off or rendering fails.
func (h HelpOverlay) View(s state.UIState, width int, noColor bool) string {
    if width < 40 {
        width = 40
    }
    md := h.Markdown()
    style := "light"
    if s.Theme.IsDark() {
        style = "dark"
    }
    if noColor {
        style = "notty"
    }
    r, err := glamour.NewTermRenderer(glamour.WithStandardStyle(style), glamour.WithWordWrap(width))
    if err != nil {
        return md
    }
    out, err := r.Render(md)
    if err != nil {
        return md
    }
    return out
}

// Footer is the one-line key hint shown under the panels.
func (h HelpOverlay) Footer(width int) string {
    m := help.New()
    m.Width = width
    return m.View(h.keys)
}
