package util

import (
    "os"

    "github.com/charmbracelet/lipgloss"

    "cppviz/internal/tui/state"
)

// NoColor returns true if color output should be disabled.
func NoColor(explicit bool) bool {
    if explicit {
        return true
    }
    return os.Getenv("NO_COLOR") != ""
}

// Palette defines the colors used across widgets for one theme.
type Palette struct {
    Foreground lipgloss.Color
    Background lipgloss.Color
    Border     lipgloss.Color
    Primary    lipgloss.Color
    Success    lipgloss.Color
    Danger     lipgloss.Color
    Warning    lipgloss.Color
    Info       lipgloss.Color
    Muted      lipgloss.Color
    MutedDark  lipgloss.Color
}

// LightPalette is used for the light theme and for unrecognized theme names.
func LightPalette() Palette {
    return Palette{
        Foreground: lipgloss.Color("#101F38"),
        Background: lipgloss.Color("#F4F5F6"),
        Border:     lipgloss.Color("#C9CED6"),
        Primary:    lipgloss.Color("#3D6DFF"),
        Success:    lipgloss.Color("#2F855A"),
        Danger:     lipgloss.Color("#C53030"),
        Warning:    lipgloss.Color("#B7791F"),
        Info:       lipgloss.Color("#2B6CB0"),
        Muted:      lipgloss.Color("#6C757D"),
        MutedDark:  lipgloss.Color("#5A5A5A"),
    }
}

// DarkPalette is used for the dark theme.
func DarkPalette() Palette {
    return Palette{
        Foreground: lipgloss.Color("#F2F2F2"),
        Background: lipgloss.Color("#141D2B"),
        Border:     lipgloss.Color("#2A3850"),
        Primary:    lipgloss.Color("#8BC34A"),
        Success:    lipgloss.Color("#48BB78"),
        Danger:     lipgloss.Color("#F56565"),
        Warning:    lipgloss.Color("#F0AD4E"),
        Info:       lipgloss.Color("#4299E1"),
        Muted:      lipgloss.Color("#A0AEC0"),
        MutedDark:  lipgloss.Color("#718096"),
    }
}

// PaletteFor returns the palette for theme t.
func PaletteFor(t state.Theme) Palette {
    if t.IsDark() {
        return DarkPalette()
    }
    return LightPalette()
}
