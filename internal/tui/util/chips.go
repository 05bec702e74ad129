package util

import (
    "cppviz/internal/codetext"
    "cppviz/internal/tui/state"
)

// ComputeChips turns buffer counters and the zoom level into status chips.
//
// The returned slice preserves a stable order:
//   Lines, Chars, Objects, Font
func ComputeChips(c codetext.Counters, zoom int) []state.Chip {
    return []state.Chip{
        {Kind: state.LINES, Value: c.Lines},
        {Kind: state.CHARS, Value: c.Chars},
        {Kind: state.OBJECTS, Value: c.Objects},
        {Kind: state.FONT, Value: zoom},
    }
}
