package state

// SwitchView activates the panel named id. Unknown identifiers leave the
// state unchanged and report false. Moving to a different panel invalidates
// pending simulation messages.
func SwitchView(s UIState, id string) (UIState, bool) {
    v, ok := ParseView(id)
    if !ok {
        return s, false
    }
    if v != s.View {
        s.View = v
        s.SimGen++
    }
    return s, true
}

// BeginSimulation starts a new scripted action and returns the generation its
// delayed messages must carry.
func BeginSimulation(s UIState) (UIState, uint64) {
    s.SimGen++
    return s, s.SimGen
}

// SimulationCurrent reports whether a delayed message with gen may still post.
func SimulationCurrent(s UIState, gen uint64) bool { return gen == s.SimGen }

// TouchBuffer records an edit and returns the generation for its auto-save tick.
func TouchBuffer(s UIState) (UIState, uint64) {
    s.SaveGen++
    return s, s.SaveGen
}

// AutoSaveCurrent reports whether no edit happened since gen was issued.
func AutoSaveCurrent(s UIState, gen uint64) bool { return gen == s.SaveGen }

// SetTheme stores t as the active theme.
func SetTheme(s UIState, t Theme) UIState {
    s.Theme = t
    return s
}

// ToggleTheme flips light to dark; anything else becomes light.
func ToggleTheme(s UIState) UIState {
    if s.Theme == Light {
        s.Theme = Dark
    } else {
        s.Theme = Light
    }
    return s
}

// ThemeButton returns the toggle button's icon and label for theme t: the
// button offers the other theme.
func ThemeButton(t Theme) (icon, label string) {
    if t.IsDark() {
        return "☀", "Light"
    }
    return "☾", "Dark"
}

// ZoomIn grows the editor by one step, clamped to ZoomMax.
func ZoomIn(s UIState) UIState {
    s.Zoom = clamp(s.Zoom+1, s.ZoomMin, s.ZoomMax)
    return s
}

// ZoomOut shrinks the editor by one step, clamped to ZoomMin.
func ZoomOut(s UIState) UIState {
    s.Zoom = clamp(s.Zoom-1, s.ZoomMin, s.ZoomMax)
    return s
}

func ZoomReset(s UIState) UIState {
    s.Zoom = s.ZoomDefault
    return s
}

// EditorShare is the fraction of the width given to the editor pane:
// 0.4 at ZoomMin up to 0.8 at ZoomMax.
func EditorShare(s UIState) float64 {
    span := s.ZoomMax - s.ZoomMin
    if span <= 0 {
        return 0.6
    }
    return 0.4 + 0.4*float64(clamp(s.Zoom, s.ZoomMin, s.ZoomMax)-s.ZoomMin)/float64(span)
}

// Resize updates the terminal dimensions.
func Resize(s UIState, width, height int) UIState {
    s.Width = width
    s.Height = height
    return s
}

// SetFocus moves keyboard focus and clears any notice tied to the old focus.
func SetFocus(s UIState, f Focus) UIState {
    s.Focus = f
    s.Notice = ""
    return s
}

// ToggleHelp shows or hides the key help overlay.
func ToggleHelp(s UIState) UIState {
    s.ShowHelp = !s.ShowHelp
    return s
}

func clamp(v, lo, hi int) int {
    if v < lo {
        return lo
    }
    if v > hi {
        return hi
    }
    return v
}
