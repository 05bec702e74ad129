package tagchips

import (
    "fmt"
    "strings"

    "github.com/charmbracelet/lipgloss"

    "cppviz/internal/tui/state"
    "cppviz/internal/tui/util"
)

// View renders counter chips in a stable order using colored chips when
// possible and ASCII fallbacks when color is disabled.
func View(chips []state.Chip, p util.Palette, noColor bool) string {
    if len(chips) == 0 {
        return ""
    }
    noColor = util.NoColor(noColor)

    parts := make([]string, 0, len(chips))
    for _, c := range chips {
        parts = append(parts, renderChip(c, p, noColor))
    }
    return strings.Join(parts, " ")
}

func renderChip(c state.Chip, p util.Palette, noColor bool) string {
    label := chipLabel(c)
    if noColor {
        return fmt.Sprintf("[%s]", label)
    }
    return chipStyle(c, p).Render(label)
}

func chipLabel(c state.Chip) string {
    switch c.Kind {
    case state.LINES:
        return fmt.Sprintf("Lines: %d", c.Value)
    case state.CHARS:
        return fmt.Sprintf("Chars: %d", c.Value)
    case state.OBJECTS:
        return fmt.Sprintf("Objects: %d", c.Value)
    case state.FONT:
        return fmt.Sprintf("Font: %dpx", c.Value)
    default:
        return "?"
    }
}

func chipStyle(c state.Chip, p util.Palette) lipgloss.Style {
    base := lipgloss.NewStyle().Padding(0, 1).Bold(true).Foreground(lipgloss.Color("#FFFFFF"))
    switch c.Kind {
    case state.LINES:
        return base.Background(p.Primary)
    case state.CHARS:
        return base.Background(p.Info)
    case state.OBJECTS:
        return base.Background(p.Success)
    case state.FONT:
        return base.Background(p.MutedDark)
    default:
        return base
    }
}
