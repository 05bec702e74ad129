package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"cppviz/internal/codetext"
	"cppviz/internal/tui/commands"
	"cppviz/internal/tui/state"
	"cppviz/internal/tui/views/flow"
	logw "cppviz/internal/tui/widgets/console"
	"cppviz/internal/tui/widgets/diff"
)

func (m *Model) registerCommands() {
	r := m.reg
	r.Register(commands.Run, m.runCode)
	r.Register(commands.Visualize, m.visualize)
	r.Register(commands.Debug, m.debug)
	r.Register(commands.Save, m.saveCode)
	r.Register(commands.Load, m.openPrompt)
	r.Register(commands.Format, m.formatCode)
	r.Register(commands.New, m.newFile)
	r.Register(commands.ClearConsole, func(string) tea.Cmd {
		m.console.Clear()
		return nil
	})
	r.Register(commands.ThemeToggle, func(string) tea.Cmd {
		m.setTheme(state.ToggleTheme(m.ui).Theme)
		return nil
	})
	r.Register(commands.Help, m.showHelp)
	r.Register(commands.ZoomIn, m.zoom(state.ZoomIn))
	r.Register(commands.ZoomOut, m.zoom(state.ZoomOut))
	r.Register(commands.ZoomReset, m.zoom(state.ZoomReset))
	r.Register(commands.ViewStructure, m.viewCmd(state.Structure))
	r.Register(commands.ViewConsole, m.viewCmd(state.Console))
	r.Register(commands.ViewFlow, m.viewCmd(state.Flow))
	r.Register(commands.Console, m.viewCmd(state.Console))
	r.Register(commands.Copy, m.copyCode)
	r.Register(commands.Find, m.find)
	r.Register(commands.Palette, func(string) tea.Cmd {
		m.input.Reset()
		m.input.Placeholder = "command, e.g. run or find <text>"
		m.setFocus(state.FocusPalette)
		return m.input.Focus()
	})
	r.Register(commands.Quit, func(string) tea.Cmd { return tea.Quit })
}

// ===== Simulations =====

// simulate schedules the completion of action after d, tagged with a fresh
// generation so that a later action or view change drops it.
func (m *Model) simulate(action commands.Name, d time.Duration) tea.Cmd {
	var gen uint64
	m.ui, gen = state.BeginSimulation(m.ui)
	return tea.Tick(d, func(time.Time) tea.Msg { return simDoneMsg{gen: gen, action: action} })
}

func (m *Model) finishSimulation(msg simDoneMsg) {
	if !state.SimulationCurrent(m.ui, msg.gen) {
		m.log.Debug("stale simulation dropped", zap.String("action", string(msg.action)), zap.Uint64("gen", msg.gen))
		return
	}
	switch msg.action {
	case commands.Run:
		m.console.Log("Execution finished", logw.Success)
		m.console.Log("Note: no code was compiled or executed; this is a simulation", logw.Info)
	case commands.Visualize:
		n := codetext.Count(m.editor.Value()).Objects
		m.console.Log(fmt.Sprintf("Visualization ready: %d classes/structs detected", n), logw.Success)
		m.console.Log("Note: diagrams are simulated", logw.Info)
	case commands.Debug:
		m.console.Log("Step through your code execution", logw.Info)
		m.console.Log("Note: breakpoints and stepping are simulated", logw.Info)
	}
}

func (m *Model) switchView(v state.View) {
	m.ui, _ = state.SwitchView(m.ui, v.String())
	m.ui.ShowHelp = false
}

func (m *Model) viewCmd(v state.View) commands.Handler {
	return func(string) tea.Cmd {
		m.switchView(v)
		return nil
	}
}

func (m *Model) runCode(string) tea.Cmd {
	if m.blank() {
		m.console.Log("Error: No code to execute", logw.Error)
		return nil
	}
	m.switchView(state.Console)
	m.console.Log("Executing code...", logw.Info)
	return m.simulate(commands.Run, m.cfg.RunDelay.D())
}

func (m *Model) visualize(string) tea.Cmd {
	if m.blank() {
		m.console.Log("Error: No code to visualize", logw.Error)
		return nil
	}
	m.switchView(state.Structure)
	m.console.Log("Generating visualizations...", logw.Info)
	return m.simulate(commands.Visualize, m.cfg.VisualizeDelay.D())
}

func (m *Model) debug(string) tea.Cmd {
	if m.blank() {
		m.console.Log("Error: No code to debug", logw.Error)
		return nil
	}
	m.switchView(state.Flow)
	m.debugging = true
	m.console.Log("Debug mode activated", logw.Info)
	return m.simulate(commands.Debug, m.cfg.DebugDelay.D())
}

// ===== Files =====

func (m *Model) saveCode(string) tea.Cmd {
	path := m.cfg.ExportPath()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		m.saveFailed(path, err)
		return nil
	}
	if err := os.WriteFile(path, []byte(m.editor.Value()), 0o644); err != nil {
		m.saveFailed(path, err)
		return nil
	}
	m.dirty = false
	m.console.Log("Code saved successfully: "+path, logw.Success)
	return nil
}

func (m *Model) saveFailed(path string, err error) {
	m.log.Warn("save", zap.String("path", path), zap.Error(err))
	m.console.Log("Save failed: "+err.Error(), logw.Error)
}

func (m *Model) newFile(string) tea.Cmd {
	m.ask("Create new file? Unsaved changes will be lost. (y/n)", func() tea.Cmd {
		cmd := m.setBuffer("")
		m.dirty = false
		m.debugging = false
		m.console.Log("New file created", logw.Info)
		return cmd
	}, nil)
	return nil
}

func (m *Model) copyCode(string) tea.Cmd {
	if err := m.copy(m.editor.Value()); err != nil {
		m.log.Warn("clipboard", zap.Error(err))
		m.console.Log("Copy failed: "+err.Error(), logw.Error)
		return nil
	}
	m.console.Log(fmt.Sprintf("Copied %d lines to clipboard", m.counters.Lines), logw.Success)
	return nil
}

// ===== Format =====

// safeFormat turns a formatter panic into an error so the buffer is never
// left half-written.
func safeFormat(f func(string) (string, error), src string) (out string, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("formatter panic: %v", r)
		}
	}()
	return f(src)
}

func (m *Model) formatCode(string) tea.Cmd {
	before := m.editor.Value()
	after, err := safeFormat(m.format, before)
	if err != nil {
		m.log.Warn("format", zap.Error(err))
		m.console.Log("Format failed: "+err.Error(), logw.Error)
		return nil
	}
	m.lastFormat = &flow.Pass{Before: before, After: after}
	m.console.Log("Code formatted: "+diff.SummaryText(before, after), logw.Info)
	if after == before {
		return nil
	}
	return m.setBuffer(after)
}

// ===== Appearance =====

// setTheme applies and persists t. A storage failure only costs persistence.
func (m *Model) setTheme(t state.Theme) {
	m.ui = state.SetTheme(m.ui, t)
	m.applyTheme()
	if err := m.prefs.SetTheme(m.ctx, string(t)); err != nil {
		m.log.Warn("persist theme", zap.Error(err))
		m.console.Log("Could not save theme: "+err.Error(), logw.Warning)
	}
	m.console.Log(fmt.Sprintf("Switched to %s theme", t), logw.Info)
}

func (m *Model) zoom(step func(state.UIState) state.UIState) commands.Handler {
	return func(string) tea.Cmd {
		m.ui = step(m.ui)
		m.layout()
		m.console.Log(fmt.Sprintf("Font size: %dpx", m.ui.Zoom), logw.Info)
		return nil
	}
}

func (m *Model) showHelp(string) tea.Cmd {
	if m.ui.ShowHelp {
		m.ui = state.ToggleHelp(m.ui)
		return nil
	}
	m.switchView(state.Console)
	m.console.Reset()
	key := func(n commands.Name) string {
		if b, ok := m.keys.Binding(n); ok {
			return b.Help().Key
		}
		return string(n)
	}
	m.console.Log("=== C++ Code Visualizer Help ===", logw.Info)
	m.console.Log(fmt.Sprintf("Write C++ code in the editor and press %s to run it", key(commands.Run)), logw.Info)
	m.console.Log(fmt.Sprintf("Use %s to visualize class diagrams and memory layout", key(commands.Visualize)), logw.Info)
	m.console.Log(fmt.Sprintf("Switch views with %s, %s and %s", key(commands.ViewStructure), key(commands.ViewConsole), key(commands.ViewFlow)), logw.Info)
	m.console.Log(fmt.Sprintf("Save with %s and load files with %s", key(commands.Save), key(commands.Load)), logw.Info)
	m.console.Log(fmt.Sprintf("Format your code for better readability with %s", key(commands.Format)), logw.Info)
	m.ui = state.ToggleHelp(m.ui)
	return nil
}

// ===== Console search =====

// find highlights console lines containing args and scrolls to the last one.
// An empty query clears the highlight.
func (m *Model) find(args string) tea.Cmd {
	m.console.SetQuery(args)
	m.switchView(state.Console)
	if args == "" {
		m.ui.Notice = ""
		return nil
	}
	idxs := m.console.Find()
	m.ui.Notice = fmt.Sprintf("%d matches for %q", len(idxs), args)
	m.refreshPanel()
	if len(idxs) > 0 {
		m.panel.SetYOffset(m.console.Offset(idxs[len(idxs)-1], m.panel.Width))
	}
	return nil
}
