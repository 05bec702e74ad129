package tui

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"

	"cppviz/internal/codetext"
	"cppviz/internal/config"
	"cppviz/internal/store"
	"cppviz/internal/tui/commands"
	"cppviz/internal/tui/state"
	"cppviz/internal/tui/util"
	cviews "cppviz/internal/tui/views/console"
	"cppviz/internal/tui/views/flow"
	"cppviz/internal/tui/views/structure"
	logw "cppviz/internal/tui/widgets/console"
	"cppviz/internal/tui/widgets/editor"
	"cppviz/internal/tui/widgets/helpoverlay"
	"cppviz/internal/tui/widgets/statusbar"
	"cppviz/internal/tui/widgets/tabs"
)

// Options wires the editor to its configuration and persistence.
type Options struct {
	Settings *config.Settings
	Prefs    *store.Prefs
	Logger   *zap.Logger
	// InitialFile is loaded into the buffer at startup when set.
	InitialFile string
	// Clipboard receives the buffer for the copy command. Defaults to the
	// system clipboard.
	Clipboard func(string) error
}

// Run starts the editor on the alternate screen and blocks until it exits.
func Run(opts Options) error {
	m := New(opts)
	p := tea.NewProgram(m, tea.WithAltScreen())
	_, err := p.Run()
	return err
}

const connectDelay = 5 * time.Second

// ===== Messages =====

// simDoneMsg completes a scripted action. It only posts while gen is current.
type simDoneMsg struct {
	gen    uint64
	action commands.Name
}

// autoSaveMsg fires after the idle period that followed edit gen.
type autoSaveMsg struct{ gen uint64 }

type welcomeMsg struct{}

type connectedMsg struct{}

// ===== Model =====

// confirmation is a pending y/n question.
type confirmation struct {
	question string
	yes      func() tea.Cmd
	no       func() tea.Cmd
}

type Model struct {
	cfg   *config.Settings
	prefs *store.Prefs
	log   *zap.Logger
	ctx   context.Context

	keys   commands.KeyMap
	reg    *commands.Registry
	help   helpoverlay.HelpOverlay
	status statusbar.StatusBar

	ui      state.UIState
	editor  textarea.Model
	panel   viewport.Model
	input   textinput.Model
	console *logw.Log

	counters    codetext.Counters
	suggest     []string
	confirm     *confirmation
	lastFormat  *flow.Pass
	debugging   bool
	dirty       bool
	noColor     bool
	seenLines   int
	editorWidth int
	initialFile string

	format func(string) (string, error)
	copy   func(string) error
}

// New builds the root model, applies the persisted theme and queues the
// auto-save restore question when a saved buffer exists.
func New(opts Options) *Model {
	cfg := opts.Settings
	if cfg == nil {
		cfg = config.DefaultSettings()
	}
	prefs := opts.Prefs
	if prefs == nil {
		prefs = store.NewPrefs(store.NewMemory())
	}
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	copyFn := opts.Clipboard
	if copyFn == nil {
		copyFn = clipboard.WriteAll
	}

	in := textinput.New()
	in.Prompt = "> "
	in.CharLimit = 0

	m := &Model{
		cfg:         cfg,
		prefs:       prefs,
		log:         logger,
		ctx:         context.Background(),
		keys:        commands.DefaultKeyMap(),
		reg:         commands.NewRegistry(),
		status:      statusbar.NewStatusBar(),
		ui:          state.New(cfg.ZoomMin, cfg.ZoomMax, cfg.ZoomDefault),
		editor:      editor.New(),
		panel:       viewport.New(0, 0),
		input:       in,
		console:     logw.New(),
		noColor:     util.NoColor(cfg.NoColor),
		initialFile: opts.InitialFile,
		format:      codetext.Format,
		copy:        copyFn,
	}
	m.help = helpoverlay.NewHelpOverlay(m.keys)
	m.registerCommands()
	m.counters = codetext.Count(m.editor.Value())

	theme, err := m.prefs.Theme(m.ctx)
	if err != nil {
		m.log.Warn("read theme", zap.Error(err))
	}
	m.setTheme(state.Theme(theme))

	saved, err := m.prefs.AutoSave(m.ctx)
	if err != nil {
		m.log.Warn("read auto-save", zap.Error(err))
		m.console.Log("Could not read auto-saved code: "+err.Error(), logw.Warning)
	}
	if strings.TrimSpace(saved) != "" {
		m.ask("Restore auto-saved code? (y/n)", func() tea.Cmd {
			m.console.Log("Auto-saved code restored", logw.Info)
			return m.setBuffer(saved)
		}, nil)
	}
	m.layout()
	return m
}

func (m *Model) Init() tea.Cmd {
	cmds := []tea.Cmd{
		textarea.Blink,
		m.titleCmd(),
		tea.Tick(m.cfg.WelcomeDelay.D(), func(time.Time) tea.Msg { return welcomeMsg{} }),
		tea.Tick(connectDelay, func(time.Time) tea.Msg { return connectedMsg{} }),
	}
	if m.initialFile != "" {
		cmds = append(cmds, loadFileCmd(m.initialFile))
	}
	return tea.Batch(cmds...)
}

// Update handles all TUI interactions.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.ui = state.Resize(m.ui, msg.Width, msg.Height)
		m.layout()
	case tea.KeyMsg:
		cmd = m.handleKey(msg)
	case simDoneMsg:
		m.finishSimulation(msg)
	case autoSaveMsg:
		m.autoSave(msg.gen)
	case welcomeMsg:
		m.console.Log("Welcome to C++ Code Visualizer", logw.Info)
		m.console.Log("Start by writing C++ code in the editor", logw.Info)
	case connectedMsg:
		m.ui.Connected = true
	case fileLoadedMsg:
		cmd = m.fileLoaded(msg)
	default:
		// cursor blinks for whichever input is focused
		var inCmd tea.Cmd
		m.editor, cmd = m.editor.Update(msg)
		m.input, inCmd = m.input.Update(msg)
		cmd = tea.Batch(cmd, inCmd)
	}
	m.refreshPanel()
	return m, cmd
}

func (m *Model) handleKey(msg tea.KeyMsg) tea.Cmd {
	if name, ok := m.keys.Lookup(msg); ok {
		if commands.Global(name) || m.ui.Focus == state.FocusEditor {
			return m.dispatch(name, "")
		}
	}
	switch m.ui.Focus {
	case state.FocusConfirm:
		return m.updateConfirm(msg)
	case state.FocusPrompt:
		return m.updatePrompt(msg)
	case state.FocusPalette:
		return m.updatePalette(msg)
	}

	switch msg.String() {
	case "esc":
		if m.ui.ShowHelp {
			m.ui = state.ToggleHelp(m.ui)
			return nil
		}
	case "pgup":
		m.panel.HalfViewUp()
		return nil
	case "pgdown":
		m.panel.HalfViewDown()
		return nil
	}

	before := m.editor.Value()
	var cmd tea.Cmd
	m.editor, cmd = m.editor.Update(msg)
	if m.editor.Value() != before {
		return tea.Batch(cmd, m.bufferChanged())
	}
	return cmd
}

// dispatch runs the named command through the registry.
func (m *Model) dispatch(name commands.Name, args string) tea.Cmd {
	m.log.Debug("dispatch", zap.String("command", string(name)), zap.String("args", args))
	cmd, err := m.reg.Dispatch(name, args)
	if err != nil {
		m.log.Warn("dispatch", zap.Error(err))
		m.console.Log(err.Error(), logw.Error)
		return nil
	}
	return cmd
}

// ===== Buffer =====

// setBuffer replaces the editor contents and runs the change hooks.
func (m *Model) setBuffer(code string) tea.Cmd {
	m.editor.SetValue(code)
	return m.bufferChanged()
}

// bufferChanged recomputes counters and restarts the auto-save idle timer.
func (m *Model) bufferChanged() tea.Cmd {
	m.dirty = true
	m.counters = codetext.Count(m.editor.Value())
	var gen uint64
	m.ui, gen = state.TouchBuffer(m.ui)
	return tea.Batch(
		m.titleCmd(),
		tea.Tick(m.cfg.AutoSaveIdle.D(), func(time.Time) tea.Msg { return autoSaveMsg{gen: gen} }),
	)
}

func (m *Model) autoSave(gen uint64) {
	if !state.AutoSaveCurrent(m.ui, gen) {
		return
	}
	code := m.editor.Value()
	if strings.TrimSpace(code) == "" {
		return
	}
	if err := m.prefs.SetAutoSave(m.ctx, code); err != nil {
		m.log.Warn("auto-save", zap.Error(err))
		m.console.Log("Auto-save failed: "+err.Error(), logw.Warning)
		return
	}
	m.console.Log("Code auto-saved", logw.Info)
}

func (m *Model) blank() bool { return strings.TrimSpace(m.editor.Value()) == "" }

func (m *Model) title() string {
	return fmt.Sprintf("C++ Code Visualizer - %d lines", m.counters.Lines)
}

func (m *Model) titleCmd() tea.Cmd { return tea.SetWindowTitle(m.title()) }

// ===== Focus =====

func (m *Model) setFocus(f state.Focus) {
	m.ui = state.SetFocus(m.ui, f)
	if f == state.FocusEditor {
		m.input.Blur()
		m.editor.Focus()
		return
	}
	m.editor.Blur()
}

// ask opens a y/n question. A nil callback does nothing.
func (m *Model) ask(question string, yes, no func() tea.Cmd) {
	m.confirm = &confirmation{question: question, yes: yes, no: no}
	m.setFocus(state.FocusConfirm)
}

func (m *Model) updateConfirm(msg tea.KeyMsg) tea.Cmd {
	c := m.confirm
	var answer func() tea.Cmd
	switch strings.ToLower(msg.String()) {
	case "y":
		answer = c.yes
	case "n", "esc":
		answer = c.no
	default:
		return nil
	}
	m.confirm = nil
	m.setFocus(state.FocusEditor)
	if answer == nil {
		return nil
	}
	return answer()
}

func (m *Model) updatePalette(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "esc":
		m.setFocus(state.FocusEditor)
		return nil
	case "tab":
		if c := m.reg.Complete(m.input.Value()); len(c) > 0 {
			m.input.SetValue(string(c[0]) + " ")
			m.input.CursorEnd()
		}
		return nil
	case "enter":
		text := m.input.Value()
		m.setFocus(state.FocusEditor)
		name, args, err := m.reg.Resolve(text)
		if err != nil {
			if errors.Is(err, commands.ErrEmptyCommand) {
				return nil
			}
			m.console.Log("Error: "+err.Error(), logw.Error)
			return nil
		}
		return m.dispatch(name, args)
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return cmd
}

// ===== Layout =====

func (m *Model) size() (int, int) {
	w, h := m.ui.Width, m.ui.Height
	if w <= 0 {
		w = 100
	}
	if h <= 0 {
		h = 30
	}
	return w, h
}

// layout sizes the editor and panel from the terminal size and zoom.
func (m *Model) layout() {
	w, h := m.size()
	body := h - 6
	if body < 4 {
		body = 4
	}
	m.editorWidth = int(float64(w) * state.EditorShare(m.ui))
	panelWidth := w - m.editorWidth - 1
	if panelWidth < 20 {
		panelWidth = 20
	}
	m.editor.SetWidth(m.editorWidth)
	m.editor.SetHeight(body - 1)
	m.panel.Width = panelWidth
	m.panel.Height = body - 1
	m.input.Width = w - 4
}

// refreshPanel fills the right-hand viewport for the active view.
func (m *Model) refreshPanel() {
	if m.ui.ShowHelp {
		m.panel.SetContent(m.help.View(m.ui, m.panel.Width, m.noColor))
		return
	}
	switch m.ui.View {
	case state.Structure:
		m.panel.SetContent(structure.Render(m.editor.Value(), m.ui.Theme, m.noColor))
	case state.Flow:
		m.panel.SetContent(flow.Render(m.ui, m.debugging, m.lastFormat, m.panel.Width, m.noColor))
	case state.Console:
		m.panel.SetContent(cviews.Render(m.console, m.ui, m.panel.Width, m.noColor))
		if n := m.console.Len(); n != m.seenLines {
			m.seenLines = n
			m.panel.GotoBottom()
		}
	}
}

func (m *Model) applyTheme() {
	p := util.PaletteFor(m.ui.Theme)
	if m.noColor {
		m.editor.FocusedStyle = textarea.Style{}
		m.editor.BlurredStyle = textarea.Style{}
		return
	}
	m.editor.FocusedStyle.LineNumber = lipgloss.NewStyle().Foreground(p.Muted)
	m.editor.FocusedStyle.CursorLineNumber = lipgloss.NewStyle().Foreground(p.Primary)
	m.editor.FocusedStyle.CursorLine = lipgloss.NewStyle()
	m.editor.FocusedStyle.Text = lipgloss.NewStyle().Foreground(p.Foreground)
	m.editor.BlurredStyle.LineNumber = lipgloss.NewStyle().Foreground(p.Muted)
	m.editor.BlurredStyle.Text = lipgloss.NewStyle().Foreground(p.Muted)
}

// ===== Views =====

func (m *Model) View() string {
	w, _ := m.size()
	p := util.PaletteFor(m.ui.Theme)

	titleStyle := lipgloss.NewStyle().Bold(true)
	faintStyle := lipgloss.NewStyle().Faint(true)
	if !m.noColor {
		titleStyle = titleStyle.Foreground(p.Primary)
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render("C++ Code Visualizer") + "  " + faintStyle.Render(m.toolbar()) + "\n")

	left := lipgloss.JoinVertical(lipgloss.Left,
		editor.Header(m.ui, m.cfg.ExportName, m.dirty),
		m.editor.View(),
	)
	right := lipgloss.JoinVertical(lipgloss.Left,
		tabs.View(m.ui.View, p, m.noColor),
		m.panel.View(),
	)
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top,
		lipgloss.NewStyle().Width(m.editorWidth).Render(left), " ", right) + "\n")

	b.WriteString(m.inputLine() + "\n")
	b.WriteString(m.status.View(m.ui, m.counters, m.noColor) + "\n")
	b.WriteString(m.help.Footer(w))
	return b.String()
}

func (m *Model) toolbar() string {
	parts := make([]string, 0, len(commands.Toolbar))
	for _, n := range commands.Toolbar {
		label := string(n)
		if n == commands.ThemeToggle {
			icon, text := state.ThemeButton(m.ui.Theme)
			label = icon + " " + text
		}
		if b, ok := m.keys.Binding(n); ok {
			label += "(" + b.Help().Key + ")"
		}
		parts = append(parts, label)
	}
	return strings.Join(parts, " ")
}

func (m *Model) inputLine() string {
	switch m.ui.Focus {
	case state.FocusConfirm:
		if m.confirm != nil {
			return m.confirm.question
		}
	case state.FocusPrompt:
		line := "Open file " + m.input.View()
		if len(m.suggest) > 0 {
			line += "  " + strings.Join(m.suggest, "  ")
		}
		return line
	case state.FocusPalette:
		line := "Command " + m.input.View()
		if c := m.reg.Complete(m.input.Value()); len(c) > 0 && len(c) <= 6 {
			names := make([]string, len(c))
			for i, n := range c {
				names[i] = string(n)
			}
			line += "  " + strings.Join(names, " ")
		}
		return line
	}
	return ""
}
