// Package tabs renders the view selector row. The active tab is derived from
// the current view, so it always matches the visible panel.
package tabs

import (
    "fmt"
    "strings"

    "github.com/charmbracelet/lipgloss"

    "cppviz/internal/tui/state"
    "cppviz/internal/tui/util"
)

var titles = map[state.View]string{
    state.Structure: "Structure",
    state.Console:   "Console",
    state.Flow:      "Flow",
}

// View renders one tab per view; the active one is marked.
func View(active state.View, p util.Palette, noColor bool) string {
    noColor = util.NoColor(noColor)
    parts := make([]string, 0, 3)
    for i, v := range state.Views() {
        label := fmt.Sprintf("%d %s", i+1, titles[v])
        switch {
        case noColor && v == active:
            label = "[" + label + "]"
        case noColor:
            label = " " + label + " "
        case v == active:
            label = lipgloss.NewStyle().Bold(true).Underline(true).Foreground(p.Primary).Padding(0, 1).Render(label)
        default:
            label = lipgloss.NewStyle().Foreground(p.Muted).Padding(0, 1).Render(label)
        }
        parts = append(parts, label)
    }
    return strings.Join(parts, " ")
}
