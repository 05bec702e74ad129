package editor

import (
    "strings"
    "testing"

    "cppviz/internal/tui/state"
)

func TestNewHasNoLimits(t *testing.T) {
    ta := New()
    if ta.CharLimit != 0 || ta.MaxHeight != 0 {
        t.Fatalf("expected unlimited editor, got limit=%d height=%d", ta.CharLimit, ta.MaxHeight)
    }
    ta.SetValue(strings.Repeat("x", 5000))
    if len(ta.Value()) != 5000 {
        t.Fatalf("buffer truncated to %d", len(ta.Value()))
    }
}

func TestHeaderModes(t *testing.T) {
    s := state.New(10, 20, 14)
    if got := Header(s, "code.cpp", true); got != "[EDIT]  code.cpp*" {
        t.Fatalf("unexpected header %q", got)
    }
    s = state.SetFocus(s, state.FocusPalette)
    if !strings.HasPrefix(Header(s, "code.cpp", false), "[PALETTE]") {
        t.Fatalf("expected palette mode")
    }
}
