package console

import (
    "cppviz/internal/tui/state"
    "cppviz/internal/tui/util"
    logw "cppviz/internal/tui/widgets/console"
)

// Render is a thin adapter over the console widget for the console panel.
func Render(l *logw.Log, s state.UIState, width int, noColor bool) string {
    if l.Len() == 0 {
        return "(console is empty)"
    }
    return l.Render(width, util.PaletteFor(s.Theme), util.NoColor(noColor))
}
