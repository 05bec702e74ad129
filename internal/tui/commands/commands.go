// Package commands names every user action once. Key bindings and the
// command palette both resolve to a Name, and the Registry maps a Name to the
// single handler that implements it.
package commands

import (
    "errors"
    "fmt"
    "sort"
    "strings"

    tea "github.com/charmbracelet/bubbletea"
)

// Name identifies a command.
type Name string

const (
    Run           Name = "run"
    Visualize     Name = "visualize"
    Debug         Name = "debug"
    Save          Name = "save"
    Load          Name = "load"
    Format        Name = "format"
    New           Name = "new"
    ClearConsole  Name = "clear-console"
    ThemeToggle   Name = "theme-toggle"
    Help          Name = "help"
    ZoomIn        Name = "zoom-in"
    ZoomOut       Name = "zoom-out"
    ZoomReset     Name = "zoom-reset"
    ViewStructure Name = "view-structure"
    ViewConsole   Name = "view-console"
    ViewFlow      Name = "view-flow"
    Console       Name = "console"
    Copy          Name = "copy"
    Find          Name = "find"
    Palette       Name = "palette"
    Quit          Name = "quit"
)

// Toolbar is the fixed button row, in display order.
var Toolbar = []Name{Run, Visualize, Debug, New, Save, Load, Format, ClearConsole, ThemeToggle, Help, ZoomIn, ZoomOut}

// Descriptions shown in the palette and help overlay.
var Descriptions = map[Name]string{
    Run:           "simulate compiling and running the buffer",
    Visualize:     "simulate diagram generation",
    Debug:         "simulate a debugging session",
    Save:          "write the buffer to the export file",
    Load:          "replace the buffer with a file from disk",
    Format:        "reflow braces, semicolons and operators",
    New:           "start an empty buffer",
    ClearConsole:  "empty the console",
    ThemeToggle:   "switch between light and dark",
    Help:          "show usage in the console",
    ZoomIn:        "widen the editor",
    ZoomOut:       "narrow the editor",
    ZoomReset:     "restore the default editor width",
    ViewStructure: "show the structure view",
    ViewConsole:   "show the console view",
    ViewFlow:      "show the flow view",
    Console:       "jump to the console from anywhere",
    Copy:          "copy the buffer to the clipboard",
    Find:          "highlight console lines containing text",
    Palette:       "run a command by name",
    Quit:          "exit",
}

// Handler runs a command. args is the palette text after the command name;
// it is empty for key-triggered commands.
type Handler func(args string) tea.Cmd

var (
    ErrUnknownCommand = errors.New("unknown command")
    ErrEmptyCommand   = errors.New("empty command")
)

// Registry maps command names to their handlers.
type Registry struct {
    handlers map[Name]Handler
}

func NewRegistry() *Registry { return &Registry{handlers: map[Name]Handler{}} }

// Register installs h for n, replacing any previous handler.
func (r *Registry) Register(n Name, h Handler) { r.handlers[n] = h }

func (r *Registry) Has(n Name) bool {
    _, ok := r.handlers[n]
    return ok
}

// Dispatch runs the handler for n.
func (r *Registry) Dispatch(n Name, args string) (tea.Cmd, error) {
    h, ok := r.handlers[n]
    if !ok {
        return nil, fmt.Errorf("%w: %s", ErrUnknownCommand, n)
    }
    return h(args), nil
}

// Names lists the registered commands alphabetically.
func (r *Registry) Names() []Name {
    out := make([]Name, 0, len(r.handlers))
    for n := range r.handlers {
        out = append(out, n)
    }
    sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
    return out
}

// Resolve splits palette input into a registered command and its arguments.
func (r *Registry) Resolve(input string) (Name, string, error) {
    input = strings.TrimSpace(input)
    if input == "" {
        return "", "", ErrEmptyCommand
    }
    head, args, _ := strings.Cut(input, " ")
    n := Name(strings.ToLower(head))
    if !r.Has(n) {
        return "", "", fmt.Errorf("%w: %s", ErrUnknownCommand, head)
    }
    return n, strings.TrimSpace(args), nil
}

// Complete returns registered names starting with prefix, for palette hints.
func (r *Registry) Complete(prefix string) []Name {
    prefix = strings.ToLower(strings.TrimSpace(prefix))
    var out []Name
    for _, n := range r.Names() {
        if strings.HasPrefix(string(n), prefix) {
            out = append(out, n)
        }
    }
    return out
}
