package statusbar

import (
    "strings"

    "github.com/charmbracelet/lipgloss"

    "cppviz/internal/codetext"
    "cppviz/internal/tui/state"
    "cppviz/internal/tui/util"
    "cppviz/internal/tui/widgets/tagchips"
)

type StatusBar struct{}

func NewStatusBar() StatusBar { return StatusBar{} }

// View composes the bottom status line.
func (StatusBar) View(s state.UIState, c codetext.Counters, noColor bool) string {
    p := util.PaletteFor(s.Theme)
    chips := tagchips.View(util.ComputeChips(c, s.Zoom), p, noColor)

    icon, label := state.ThemeButton(s.Theme)
    conn := "Connecting..."
    if s.Connected {
        conn = "Connected"
    }
    parts := []string{chips, icon + " " + label, "View: " + s.View.String(), conn}
    if s.Notice != "" {
        notice := s.Notice
        if !util.NoColor(noColor) {
            notice = lipgloss.NewStyle().Foreground(p.Warning).Render(notice)
        }
        parts = append(parts, notice)
    }
    return strings.Join(parts, "  ")
}
