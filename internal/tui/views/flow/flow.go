// Package flow renders the flow view: the simulated debug session and the
// last formatter pass as a diff.
package flow

import (
    "strings"

    "github.com/charmbracelet/lipgloss"

    "cppviz/internal/tui/state"
    "cppviz/internal/tui/util"
    "cppviz/internal/tui/widgets/diff"
)

// Pass is the before/after of one format run.
type Pass struct {
    Before string
    After  string
}

// sideBySideMin is the width from which the diff uses two columns.
const sideBySideMin = 100

// Render draws the debug banner (when a session is active) and the diff of
// the last format pass.
func Render(s state.UIState, debugging bool, last *Pass, width int, noColor bool) string {
    p := util.PaletteFor(s.Theme)
    title := lipgloss.NewStyle().Bold(true)
    if !noColor {
        title = title.Foreground(p.Primary)
    }
    var b strings.Builder
    b.WriteString(title.Render("Execution flow") + "\n")
    if debugging {
        b.WriteString("  Debug session active (simulated). Breakpoints and stepping are not implemented.\n")
    } else {
        b.WriteString("  No debug session. Press ctrl+d to start one.\n")
    }
    b.WriteString("\n" + title.Render("Last format") + "\n")
    if last == nil {
        b.WriteString("  Format the code (ctrl+f) to compare before and after.\n")
        return b.String()
    }
    if width >= sideBySideMin {
        b.WriteString(diff.SideBySide(last.Before, last.After, (width-5)/2, p, noColor))
    } else {
        b.WriteString(diff.Unified(last.Before, last.After, p, noColor))
    }
    return b.String()
}
