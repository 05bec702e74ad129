// Package structure renders the structure view: the detected classes and
// structs followed by the highlighted source.
package structure

import (
    "fmt"
    "strings"

    "github.com/charmbracelet/lipgloss"

    "cppviz/internal/codetext"
    "cppviz/internal/highlight"
    "cppviz/internal/tui/state"
    "cppviz/internal/tui/util"
)

// Render lists detected types with their line numbers, then the source.
func Render(src string, theme state.Theme, noColor bool) string {
    p := util.PaletteFor(theme)
    title := lipgloss.NewStyle().Bold(true)
    if !noColor {
        title = title.Foreground(p.Primary)
    }
    var b strings.Builder
    objs := codetext.ObjectNames(src)
    b.WriteString(title.Render(fmt.Sprintf("Classes and structs (%d)", len(objs))) + "\n")
    if len(objs) == 0 {
        b.WriteString("  (none detected)\n")
    }
    for _, o := range objs {
        fmt.Fprintf(&b, "  %-6s %s  line %d\n", o.Kind, o.Name, o.Line)
    }
    b.WriteString("\n")
    b.WriteString(title.Render("Source") + "\n")
    if strings.TrimSpace(src) == "" {
        b.WriteString("  (empty buffer)\n")
        return b.String()
    }
    style := string(state.Light)
    if theme.IsDark() {
        style = string(state.Dark)
    }
    b.WriteString(highlight.Source(src, style, noColor))
    return b.String()
}
