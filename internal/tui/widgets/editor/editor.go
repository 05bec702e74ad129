package editor

import (
    "fmt"

    "github.com/charmbracelet/bubbles/textarea"

    "cppviz/internal/tui/state"
)

// New returns the code editor: line numbers on, no length or height limit.
func New() textarea.Model {
    ta := textarea.New()
    ta.Placeholder = "// Write your C++ code here"
    ta.ShowLineNumbers = true
    ta.Prompt = ""
    ta.CharLimit = 0
    ta.MaxHeight = 0
    ta.Focus()
    return ta
}

// Header renders the line above the editor with the input mode and the
// export file name.
func Header(s state.UIState, name string, dirty bool) string {
    mode := "[EDIT]"
    switch s.Focus {
    case state.FocusPrompt:
        mode = "[OPEN]"
    case state.FocusConfirm:
        mode = "[CONFIRM]"
    case state.FocusPalette:
        mode = "[PALETTE]"
    }
    mark := ""
    if dirty {
        mark = "*"
    }
    return fmt.Sprintf("%s  %s%s", mode, name, mark)
}
