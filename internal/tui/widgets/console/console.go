// Package console is the append-only message log shown in the console view.
package console

import (
    "fmt"
    "strings"
    "time"

    "github.com/charmbracelet/lipgloss"
    "github.com/muesli/reflow/wordwrap"

    "cppviz/internal/tui/util"
)

// Severity selects how a line is styled.
type Severity string

const (
    Info    Severity = "info"
    Success Severity = "success"
    Error   Severity = "error"
    Warning Severity = "warning"
)

// ParseSeverity maps unknown names to Info.
func ParseSeverity(s string) Severity {
    switch Severity(strings.ToLower(strings.TrimSpace(s))) {
    case Success:
        return Success
    case Error:
        return Error
    case Warning:
        return Warning
    default:
        return Info
    }
}

// Line is a single timestamped console entry.
type Line struct {
    Time     time.Time
    Severity Severity
    Message  string
}

// Text is the plain rendering: "[HH:MM:SS] > message".
func (l Line) Text() string {
    return fmt.Sprintf("[%s] > %s", l.Time.Format("15:04:05"), l.Message)
}

// Log keeps every line until cleared.
type Log struct {
    lines []Line
    query string
    // Now is the clock used for timestamps.
    Now func() time.Time
}

func New() *Log { return &Log{Now: time.Now} }

// Log appends msg with the given severity.
func (c *Log) Log(msg string, sev Severity) {
    now := time.Now
    if c.Now != nil {
        now = c.Now
    }
    if sev == "" {
        sev = Info
    }
    c.lines = append(c.lines, Line{Time: now(), Severity: sev, Message: msg})
}

// Clear empties the log and records that it did.
func (c *Log) Clear() {
    c.lines = nil
    c.Log("Console cleared", Info)
}

// Reset empties the log without a trace.
func (c *Log) Reset() { c.lines = nil }

// Lines returns a copy of the current entries.
func (c *Log) Lines() []Line { return append([]Line(nil), c.lines...) }

func (c *Log) Len() int { return len(c.lines) }

// Messages returns only the message text of each line, oldest first.
func (c *Log) Messages() []string {
    out := make([]string, len(c.lines))
    for i, l := range c.lines {
        out[i] = l.Message
    }
    return out
}

// SetQuery sets the search term used by Find and highlighting. Empty clears it.
func (c *Log) SetQuery(q string) { c.query = strings.TrimSpace(q) }

func (c *Log) Query() string { return c.query }

// Find returns the indexes of lines containing the current query,
// case-insensitively.
func (c *Log) Find() []int {
    q := strings.ToLower(c.query)
    if q == "" {
        return nil
    }
    var idxs []int
    for i, l := range c.lines {
        if strings.Contains(strings.ToLower(l.Message), q) {
            idxs = append(idxs, i)
        }
    }
    return idxs
}

// Offset is the number of wrapped rows before line idx at the given width,
// for scrolling a viewport to it.
func (c *Log) Offset(idx, width int) int {
    if width < 20 {
        width = 20
    }
    rows := 0
    for i := 0; i < idx && i < len(c.lines); i++ {
        rows += strings.Count(wordwrap.String(c.lines[i].Text(), width), "\n") + 1
    }
    return rows
}

// Render draws every line wrapped to width with severity colors from p.
func (c *Log) Render(width int, p util.Palette, noColor bool) string {
    if width < 20 {
        width = 20
    }
    matches := map[int]bool{}
    for _, i := range c.Find() {
        matches[i] = true
    }
    out := make([]string, 0, len(c.lines))
    for i, l := range c.lines {
        text := wordwrap.String(l.Text(), width)
        if noColor {
            if matches[i] {
                text = "* " + text
            }
            out = append(out, text)
            continue
        }
        st := severityStyle(l.Severity, p)
        if matches[i] {
            st = st.Background(p.Warning).Foreground(p.Background)
        }
        out = append(out, st.Render(text))
    }
    return strings.Join(out, "\n")
}

func severityStyle(s Severity, p util.Palette) lipgloss.Style {
    base := lipgloss.NewStyle()
    switch s {
    case Success:
        return base.Foreground(p.Success)
    case Error:
        return base.Foreground(p.Danger).Bold(true)
    case Warning:
        return base.Foreground(p.Warning)
    default:
        return base.Foreground(p.Info)
    }
}
