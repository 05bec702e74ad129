package statusbar

import (
    "strings"
    "testing"

    "cppviz/internal/codetext"
    "cppviz/internal/tui/state"
)

func TestStatusBarSnapshot(t *testing.T) {
    s := state.New(10, 20, 14)
    s.Theme = state.Dark
    s.Notice = "Saved"
    out := NewStatusBar().View(s, codetext.Count("class A {};\nint x;"), true)

    for _, want := range []string{"[Lines: 2]", "[Objects: 1]", "[Font: 14px]", "☀ Light", "View: structure", "Connecting...", "Saved"} {
        if !strings.Contains(out, want) {
            t.Fatalf("expected %q in %q", want, out)
        }
    }

    s.Connected = true
    s.Theme = state.Light
    out = NewStatusBar().View(s, codetext.Count(""), true)
    if !strings.Contains(out, "Connected") || !strings.Contains(out, "☾ Dark") {
        t.Fatalf("unexpected status %q", out)
    }
}
