package util

import (
    "testing"

    "cppviz/internal/codetext"
    "cppviz/internal/tui/state"
)

func TestComputeChipsStableOrder(t *testing.T) {
    chips := ComputeChips(codetext.Count("class A {};\n"), 14)
    order := []state.ChipKind{state.LINES, state.CHARS, state.OBJECTS, state.FONT}
    if len(chips) != len(order) {
        t.Fatalf("expected %d chips, got %d", len(order), len(chips))
    }
    for i, k := range order {
        if chips[i].Kind != k {
            t.Fatalf("chip %d: expected kind %v, got %v", i, k, chips[i].Kind)
        }
    }
    if chips[0].Value != 2 || chips[2].Value != 1 || chips[3].Value != 14 {
        t.Fatalf("unexpected chip values: %+v", chips)
    }
}

func TestPaletteFor(t *testing.T) {
    if PaletteFor(state.Dark) != DarkPalette() {
        t.Fatalf("expected dark palette")
    }
    if PaletteFor(state.Theme("solarized")) != LightPalette() {
        t.Fatalf("unknown themes should style as light")
    }
}

func TestNoColorEnv(t *testing.T) {
    t.Setenv("NO_COLOR", "1")
    if !NoColor(false) {
        t.Fatalf("expected NO_COLOR to disable color")
    }
}
