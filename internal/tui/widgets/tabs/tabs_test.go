package tabs

import (
    "strings"
    "testing"

    "cppviz/internal/tui/state"
    "cppviz/internal/tui/util"
)

func TestExactlyOneActiveTab(t *testing.T) {
    for _, v := range state.Views() {
        out := View(v, util.LightPalette(), true)
        if strings.Count(out, "[") != 1 {
            t.Fatalf("expected one active tab for %s, got %q", v, out)
        }
    }
    out := View(state.Flow, util.LightPalette(), true)
    if !strings.Contains(out, "[3 Flow]") {
        t.Fatalf("flow not marked active: %q", out)
    }
}
