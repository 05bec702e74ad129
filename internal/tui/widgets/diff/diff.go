// Package diff renders before/after views of a formatter pass.
package diff

import (
    "fmt"
    "strings"

    "github.com/charmbracelet/lipgloss"
    dmp "github.com/sergi/go-diff/diffmatchpatch"

    "cppviz/internal/tui/util"
)

// Summary counts inserted and deleted characters between before and after.
func Summary(before, after string) (ins, del int) {
    d := dmp.New()
    diffs := d.DiffMain(before, after, false)
    for _, df := range diffs {
        switch df.Type {
        case dmp.DiffInsert:
            ins += len([]rune(df.Text))
        case dmp.DiffDelete:
            del += len([]rune(df.Text))
        }
    }
    return ins, del
}

// SummaryText is the console suffix for a format pass, e.g. "+12 -3 chars".
func SummaryText(before, after string) string {
    ins, del := Summary(before, after)
    return fmt.Sprintf("+%d -%d chars", ins, del)
}

type styles struct {
    del, add, delChar, addChar, faint, tag lipgloss.Style
}

func newStyles(p util.Palette, noColor bool) styles {
    if noColor {
        plain := lipgloss.NewStyle()
        return styles{plain, plain, plain, plain, plain, plain}
    }
    return styles{
        del:     lipgloss.NewStyle().Foreground(p.Danger),
        add:     lipgloss.NewStyle().Foreground(p.Success),
        delChar: lipgloss.NewStyle().Foreground(p.Danger).Underline(true),
        addChar: lipgloss.NewStyle().Foreground(p.Success).Underline(true),
        faint:   lipgloss.NewStyle().Faint(true),
        tag:     lipgloss.NewStyle().Bold(true).Foreground(p.Primary),
    }
}

// Unified renders a line diff with -/+ markers; unchanged lines are faint.
func Unified(before, after string, p util.Palette, noColor bool) string {
    if before == after {
        return "No changes\n"
    }
    st := newStyles(p, noColor)
    d := dmp.New()
    a, b, lines := d.DiffLinesToChars(before, after)
    diffs := d.DiffCharsToLines(d.DiffMain(a, b, false), lines)

    var sb strings.Builder
    sb.WriteString(st.tag.Render("BEFORE → AFTER") + "\n")
    for _, df := range diffs {
        for _, l := range splitLines(df.Text) {
            switch df.Type {
            case dmp.DiffDelete:
                sb.WriteString(st.del.Render("- "+l) + "\n")
            case dmp.DiffInsert:
                sb.WriteString(st.add.Render("+ "+l) + "\n")
            default:
                if strings.TrimSpace(l) == "" {
                    continue
                }
                sb.WriteString("  " + st.faint.Render(l) + "\n")
            }
        }
    }
    return sb.String()
}

// SideBySide renders before and after in two columns of the given width,
// with character-level highlights on lines that differ.
func SideBySide(before, after string, width int, p util.Palette, noColor bool) string {
    if width < 10 {
        width = 10
    }
    st := newStyles(p, noColor)
    bLines := strings.Split(before, "\n")
    aLines := strings.Split(after, "\n")
    max := len(bLines)
    if len(aLines) > max {
        max = len(aLines)
    }
    pad := func(s string, n int) string {
        if w := lipgloss.Width(s); w < n {
            return s + strings.Repeat(" ", n-w)
        }
        return s
    }
    var sb strings.Builder
    sb.WriteString(pad(st.tag.Render("BEFORE"), width) + "  |  " + st.tag.Render("AFTER") + "\n")
    d := dmp.New()
    for i := 0; i < max; i++ {
        var bl, al string
        if i < len(bLines) {
            bl = bLines[i]
        }
        if i < len(aLines) {
            al = aLines[i]
        }
        if bl == al {
            sb.WriteString(pad(st.faint.Render(bl), width) + "  |  " + st.faint.Render(al) + "\n")
            continue
        }
        diffs := d.DiffCleanupSemantic(d.DiffMain(bl, al, false))
        var lbuf, rbuf strings.Builder
        for _, df := range diffs {
            switch df.Type {
            case dmp.DiffDelete:
                lbuf.WriteString(st.delChar.Render(df.Text))
            case dmp.DiffInsert:
                rbuf.WriteString(st.addChar.Render(df.Text))
            case dmp.DiffEqual:
                lbuf.WriteString(st.del.Render(df.Text))
                rbuf.WriteString(st.add.Render(df.Text))
            }
        }
        left := pad(st.del.Render("- ")+lbuf.String(), width)
        right := st.add.Render("+ ") + rbuf.String()
        sb.WriteString(left + "  |  " + right + "\n")
    }
    return sb.String()
}

func splitLines(s string) []string {
    s = strings.TrimSuffix(s, "\n")
    if s == "" {
        return []string{""}
    }
    return strings.Split(s, "\n")
}
