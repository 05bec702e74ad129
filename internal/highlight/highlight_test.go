package highlight

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStyleFor(t *testing.T) {
	assert.Equal(t, DarkStyle, StyleFor("dark"))
	assert.Equal(t, LightStyle, StyleFor("light"))
	assert.Equal(t, LightStyle, StyleFor("solarized"))
}

func TestSourceKeepsText(t *testing.T) {
	src := "int main() { return 0; }"
	out := Source(src, "dark", false)
	assert.Contains(t, out, "main")
	assert.Contains(t, out, "\x1b[")

	assert.Equal(t, src, Source(src, "dark", true))
	assert.Equal(t, "", Source("", "light", false))
	assert.True(t, strings.Contains(Source(src, "light", false), "return"))
}
