package diff

import (
    "strings"
    "testing"

    "cppviz/internal/tui/util"
)

func TestSummaryCountsRunes(t *testing.T) {
    ins, del := Summary("int a=1;", "int a = 1;")
    if ins != 2 || del != 0 {
        t.Fatalf("expected +2 -0, got +%d -%d", ins, del)
    }
    if got := SummaryText("ab", "a"); got != "+0 -1 chars" {
        t.Fatalf("unexpected summary %q", got)
    }
}

func TestUnifiedSnapshot(t *testing.T) {
    out := Unified("a\nb", "a\nc", util.LightPalette(), true)
    if !strings.Contains(out, "BEFORE → AFTER") {
        t.Fatalf("missing unified header")
    }
    if !strings.Contains(out, "- b") || !strings.Contains(out, "+ c") {
        t.Fatalf("expected +/- lines in unified output: %q", out)
    }
    if strings.Contains(out, "- a") {
        t.Fatalf("unchanged line marked as removed: %q", out)
    }
    if got := Unified("x", "x", util.LightPalette(), true); got != "No changes\n" {
        t.Fatalf("expected no changes, got %q", got)
    }
}

func TestSideBySideSnapshot(t *testing.T) {
    out := SideBySide("left", "right", 20, util.DarkPalette(), true)
    if !strings.HasPrefix(out, "BEFORE") {
        t.Fatalf("missing sbs header: %q", out)
    }
    if !strings.Contains(out, "  |  ") {
        t.Fatalf("missing separator")
    }
}
