package tui

import (
    "fmt"
    "os"
    "path/filepath"
    "strings"
    "unicode/utf8"

    tea "github.com/charmbracelet/bubbletea"
    "github.com/dustin/go-humanize"
    "go.uber.org/zap"

    "cppviz/internal/tui/state"
    logw "cppviz/internal/tui/widgets/console"
)

const maxSuggestions = 8

// fileLoadedMsg carries the result of an asynchronous file read.
type fileLoadedMsg struct {
    path string
    data []byte
    err  error
}

func loadFileCmd(path string) tea.Cmd {
    return func() tea.Msg {
        data, err := os.ReadFile(path)
        return fileLoadedMsg{path: path, data: data, err: err}
    }
}

// openPrompt asks for a path to load.
func (m *Model) openPrompt(string) tea.Cmd {
    m.input.Reset()
    m.input.Placeholder = "path to " + strings.Join(m.cfg.AcceptExt, ", ") + " file"
    m.suggest = nil
    m.setFocus(state.FocusPrompt)
    return m.input.Focus()
}

func (m *Model) updatePrompt(msg tea.KeyMsg) tea.Cmd {
    switch msg.String() {
    case "esc":
        m.suggest = nil
        m.setFocus(state.FocusEditor)
        return nil
    case "tab":
        if len(m.suggest) > 0 {
            m.input.SetValue(m.suggest[0])
            m.input.CursorEnd()
            m.suggest = computeSuggestions(m.input.Value(), m.cfg.Accepts)
        }
        return nil
    case "enter":
        path := expandPath(m.input.Value())
        m.suggest = nil
        m.setFocus(state.FocusEditor)
        if path == "" {
            return nil
        }
        return loadFileCmd(path)
    }
    var cmd tea.Cmd
    m.input, cmd = m.input.Update(msg)
    m.suggest = computeSuggestions(m.input.Value(), m.cfg.Accepts)
    return cmd
}

// fileLoaded replaces the buffer on success. On failure the buffer is left
// untouched.
func (m *Model) fileLoaded(msg fileLoadedMsg) tea.Cmd {
    name := filepath.Base(msg.path)
    if msg.err != nil {
        m.log.Warn("load", zap.String("path", msg.path), zap.Error(msg.err))
        m.console.Log("Error loading file: "+msg.err.Error(), logw.Error)
        return nil
    }
    if !utf8.Valid(msg.data) {
        m.console.Log(fmt.Sprintf("Error loading file: %s is not a text file", name), logw.Error)
        return nil
    }
    cmd := m.setBuffer(string(msg.data))
    m.dirty = false
    m.console.Log(fmt.Sprintf("Loaded: %s (%s)", name, humanize.Bytes(uint64(len(msg.data)))), logw.Success)
    return cmd
}

// computeSuggestions lists directory entries matching the input, keeping
// directories and files that pass accept.
func computeSuggestions(in string, accept func(string) bool) []string {
    if strings.TrimSpace(in) == "" {
        return nil
    }
    expanded := in
    if strings.HasPrefix(in, "~") {
        expanded = expandPath(in)
    }
    dir := expanded
    base := ""
    if fi, err := os.Stat(expanded); err != nil || !fi.IsDir() {
        dir = filepath.Dir(expanded)
        base = filepath.Base(expanded)
    }
    entries, err := os.ReadDir(dir)
    if err != nil {
        return nil
    }
    var out []string
    for _, e := range entries {
        name := e.Name()
        if !e.IsDir() && !accept(name) {
            continue
        }
        if base != "" && !strings.Contains(strings.ToLower(name), strings.ToLower(base)) {
            continue
        }
        cand := filepath.Join(dir, name)
        if e.IsDir() {
            cand += string(filepath.Separator)
        }
        // Present with ~/ when within home
        if h, _ := os.UserHomeDir(); h != "" && strings.HasPrefix(cand, h) {
            cand = "~" + strings.TrimPrefix(cand, h)
        }
        out = append(out, cand)
        if len(out) >= maxSuggestions {
            break
        }
    }
    return out
}

func expandPath(p string) string {
    p = strings.TrimSpace(p)
    if p == "" {
        return ""
    }
    if strings.HasPrefix(p, "~/") {
        if h, err := os.UserHomeDir(); err == nil {
            p = filepath.Join(h, p[2:])
        }
    }
    p = os.ExpandEnv(p)
    if !filepath.IsAbs(p) {
        if abs, err := filepath.Abs(p); err == nil {
            p = abs
        }
    }
    return p
}
