package state

// View is one of the fixed, mutually exclusive display panels.
type View int

const (
    Structure View = iota
    Console
    Flow
)

var viewNames = [...]string{"structure", "console", "flow"}

func (v View) String() string {
    if v < 0 || int(v) >= len(viewNames) {
        return "unknown"
    }
    return viewNames[v]
}

// Views returns every view in tab order.
func Views() []View { return []View{Structure, Console, Flow} }

// ParseView resolves a view identifier. Unknown identifiers report false.
func ParseView(id string) (View, bool) {
    for i, n := range viewNames {
        if n == id {
            return View(i), true
        }
    }
    return Structure, false
}

// Theme is the persisted appearance preference. Values other than Light and
// Dark can arrive from storage; they are kept but styled as Light.
type Theme string

const (
    Light Theme = "light"
    Dark  Theme = "dark"
)

func (t Theme) IsDark() bool { return t == Dark }

// Focus tracks which input currently receives keystrokes.
type Focus int

const (
    FocusEditor Focus = iota
    FocusPrompt       // load-file path prompt
    FocusConfirm      // y/n dialog
    FocusPalette      // command palette
)

// UIState holds cross-widget UI state used by the status bar, tabs, panels
// and the command handlers.
type UIState struct {
    // Active panel & appearance
    View  View
    Theme Theme

    // Zoom controls the editor pane's share of the width.
    Zoom        int
    ZoomMin     int
    ZoomMax     int
    ZoomDefault int

    // Layout
    Width  int
    Height int
    Focus  Focus

    // Generation tokens for delayed messages. A tick whose generation no
    // longer matches is stale and must be dropped.
    SimGen  uint64
    SaveGen uint64

    ShowHelp  bool
    Connected bool

    // Notices and ephemeral messages
    Notice string
}

// New returns the startup state for the given zoom bounds.
func New(zoomMin, zoomMax, zoomDefault int) UIState {
    return UIState{
        View:        Structure,
        Theme:       Light,
        Zoom:        zoomDefault,
        ZoomMin:     zoomMin,
        ZoomMax:     zoomMax,
        ZoomDefault: zoomDefault,
    }
}
