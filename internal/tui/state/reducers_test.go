package state

import "testing"

func TestSwitchViewActivatesExactlyOne(t *testing.T) {
    for _, v := range Views() {
        s := New(10, 20, 14)
        s, ok := SwitchView(s, v.String())
        if !ok { t.Fatalf("expected %s to be accepted", v) }
        if s.View != v { t.Fatalf("expected view %s, got %s", v, s.View) }
    }
}

func TestSwitchViewRejectsUnknown(t *testing.T) {
    s := New(10, 20, 14)
    s, _ = SwitchView(s, "console")
    before := s
    s, ok := SwitchView(s, "memory")
    if ok { t.Fatalf("expected unknown view to be rejected") }
    if s != before { t.Fatalf("expected state unchanged, got %+v", s) }
}

func TestSwitchViewInvalidatesSimulation(t *testing.T) {
    s := New(10, 20, 14)
    s, gen := BeginSimulation(s)
    s, _ = SwitchView(s, "structure") // same view
    if !SimulationCurrent(s, gen) { t.Fatalf("same-view switch should keep simulation") }
    s, _ = SwitchView(s, "flow")
    if SimulationCurrent(s, gen) { t.Fatalf("expected simulation to be stale after switch") }
}

func TestBeginSimulationSupersedes(t *testing.T) {
    s := New(10, 20, 14)
    s, first := BeginSimulation(s)
    s, second := BeginSimulation(s)
    if SimulationCurrent(s, first) || !SimulationCurrent(s, second) {
        t.Fatalf("expected only the newest simulation to be current")
    }
}

func TestTouchBufferDebounce(t *testing.T) {
    s := New(10, 20, 14)
    s, g1 := TouchBuffer(s)
    s, g2 := TouchBuffer(s)
    if AutoSaveCurrent(s, g1) { t.Fatalf("older auto-save tick must be stale") }
    if !AutoSaveCurrent(s, g2) { t.Fatalf("latest auto-save tick must be current") }
}

func TestToggleThemeTwiceRestores(t *testing.T) {
    s := New(10, 20, 14)
    s = ToggleTheme(s)
    if s.Theme != Dark { t.Fatalf("expected dark") }
    icon, label := ThemeButton(s.Theme)
    if icon != "☀" || label != "Light" { t.Fatalf("unexpected button %s %s", icon, label) }
    s = ToggleTheme(s)
    if s.Theme != Light { t.Fatalf("expected light") }
    icon, label = ThemeButton(s.Theme)
    if icon != "☾" || label != "Dark" { t.Fatalf("unexpected button %s %s", icon, label) }
}

func TestToggleUnknownThemeGoesLight(t *testing.T) {
    s := SetTheme(New(10, 20, 14), Theme("solarized"))
    s = ToggleTheme(s)
    if s.Theme != Light { t.Fatalf("expected light, got %s", s.Theme) }
}

func TestZoomClamps(t *testing.T) {
    s := New(10, 20, 14)
    for i := 0; i < 20; i++ { s = ZoomIn(s) }
    if s.Zoom != 20 { t.Fatalf("expected max 20, got %d", s.Zoom) }
    if EditorShare(s) != 0.8 { t.Fatalf("expected 0.8 share at max") }
    for i := 0; i < 20; i++ { s = ZoomOut(s) }
    if s.Zoom != 10 { t.Fatalf("expected min 10, got %d", s.Zoom) }
    if EditorShare(s) != 0.4 { t.Fatalf("expected 0.4 share at min") }
    s = ZoomReset(s)
    if s.Zoom != 14 { t.Fatalf("expected reset to 14, got %d", s.Zoom) }
}

func TestSetFocusClearsNotice(t *testing.T) {
    s := New(10, 20, 14)
    s.Notice = "Open file"
    s = SetFocus(s, FocusEditor)
    if s.Notice != "" { t.Fatalf("expected notice cleared") }
}
