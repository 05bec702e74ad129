package state

// ChipKind enumerates the counters shown as status chips.
type ChipKind int

const (
    // Stable ordering for display: Lines, Chars, Objects, Font
    LINES ChipKind = iota
    CHARS
    OBJECTS
    FONT
)

// Chip is a single status chip with its numeric value.
type Chip struct {
    Kind  ChipKind
    Value int
}
