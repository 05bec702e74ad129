package console

import (
    "strings"
    "testing"
    "time"

    "github.com/stretchr/testify/assert"
    "github.com/stretchr/testify/require"

    "cppviz/internal/tui/util"
)

func fixedClock() func() time.Time {
    t0 := time.Date(2024, 3, 1, 9, 5, 7, 0, time.UTC)
    return func() time.Time { return t0 }
}

func TestLogAppendsInOrder(t *testing.T) {
    c := New()
    c.Now = fixedClock()
    c.Log("Executing code...", Info)
    c.Log("Execution finished", Success)

    lines := c.Lines()
    require.Len(t, lines, 2)
    assert.Equal(t, "[09:05:07] > Executing code...", lines[0].Text())
    assert.Equal(t, Success, lines[1].Severity)
}

func TestClearLeavesMarker(t *testing.T) {
    c := New()
    c.Log("a", Info)
    c.Log("b", Error)
    c.Clear()
    assert.Equal(t, []string{"Console cleared"}, c.Messages())

    c.Reset()
    assert.Equal(t, 0, c.Len())
}

func TestParseSeverityDefaultsToInfo(t *testing.T) {
    assert.Equal(t, Error, ParseSeverity("ERROR"))
    assert.Equal(t, Info, ParseSeverity("loud"))
    c := New()
    c.Log("x", "")
    assert.Equal(t, Info, c.Lines()[0].Severity)
}

func TestFindIsCaseInsensitive(t *testing.T) {
    c := New()
    c.Log("Code saved successfully: code.cpp", Success)
    c.Log("Switched to dark theme", Info)
    c.Log("code auto-saved", Info)

    c.SetQuery("  CODE ")
    assert.Equal(t, []int{0, 2}, c.Find())

    c.SetQuery("")
    assert.Nil(t, c.Find())
}

func TestRenderNoColorMarksMatches(t *testing.T) {
    c := New()
    c.Now = fixedClock()
    c.Log("alpha", Info)
    c.Log("beta", Error)
    c.SetQuery("beta")

    out := c.Render(80, util.LightPalette(), true)
    lines := strings.Split(out, "\n")
    require.Len(t, lines, 2)
    assert.Equal(t, "[09:05:07] > alpha", lines[0])
    assert.Equal(t, "* [09:05:07] > beta", lines[1])
}

func TestOffsetCountsWrappedRows(t *testing.T) {
    c := New()
    c.Now = fixedClock()
    c.Log("short", Info)
    c.Log(strings.Repeat("word ", 20), Info)
    c.Log("last", Info)

    assert.Equal(t, 0, c.Offset(0, 40))
    assert.Equal(t, 1, c.Offset(1, 40))
    assert.Greater(t, c.Offset(2, 40), 2)
}
