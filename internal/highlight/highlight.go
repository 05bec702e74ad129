// Package highlight renders C++ source with ANSI colors for the structure view.
package highlight

import (
	"strings"

	"github.com/alecthomas/chroma/v2/quick"
)

// Chroma style names per editor theme.
const (
	LightStyle = "github"
	DarkStyle  = "monokai"
)

// StyleFor maps an editor theme to a chroma style. Anything but "dark"
// gets the light style.
func StyleFor(theme string) string {
	if theme == "dark" {
		return DarkStyle
	}
	return LightStyle
}

// Source highlights src as C++ using the style for theme. With noColor, or if
// chroma fails, src is returned unchanged.
func Source(src, theme string, noColor bool) string {
	if noColor || src == "" {
		return src
	}
	var b strings.Builder
	if err := quick.Highlight(&b, src, "cpp", "terminal256", StyleFor(theme)); err != nil {
		return src
	}
	return b.String()
}
