package codetext

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCountLinesFollowsNewlines(t *testing.T) {
	cases := map[string]int{
		"":            1,
		"a":           1,
		"a\n":         2,
		"a\nb\nc":     3,
		"\n\n\n":      4,
		"int x;\r\n":  2,
	}
	for buf, want := range cases {
		assert.Equal(t, want, Count(buf).Lines, "buffer %q", buf)
		assert.Equal(t, strings.Count(buf, "\n")+1, Count(buf).Lines)
	}
}

func TestCountCharsIsRuneLength(t *testing.T) {
	assert.Equal(t, 0, Count("").Chars)
	assert.Equal(t, 5, Count("hello").Chars)
	assert.Equal(t, 3, Count("äöü").Chars)
}

func TestCountObjectsIsLexical(t *testing.T) {
	src := `class Foo {};
struct Bar { int x; };
// class InComment
template <class T> class Box {};
struct
  Split {};
`
	c := Count(src)
	// Foo, Bar, InComment, T, Box, Split: comments and template
	// parameters count too
	assert.Equal(t, 6, c.Objects)
	assert.Equal(t, 0, Count("classy structure subclass").Objects)
}

func TestObjectNamesInSourceOrder(t *testing.T) {
	src := "struct A {};\nclass B {};\nstruct C {}; class D {};\n"
	got := ObjectNames(src)
	require.Len(t, got, 4)
	assert.Equal(t, Object{Kind: "struct", Name: "A", Line: 1}, got[0])
	assert.Equal(t, Object{Kind: "class", Name: "B", Line: 2}, got[1])
	assert.Equal(t, 3, got[2].Line)
	assert.Equal(t, 3, got[3].Line)
}

func TestFormatBracesAndStatements(t *testing.T) {
	out, err := Format("int main(){return 0;}")
	require.NoError(t, err)
	assert.Equal(t, "int main() {\n    return 0;\n}", out)
}

func TestFormatCommasAndOperators(t *testing.T) {
	out, err := Format("int a=1,b=2;")
	require.NoError(t, err)
	assert.Equal(t, "int a = 1, b = 2;", out)

	out, err = Format("if(a==b){x+=1;}")
	require.NoError(t, err)
	assert.Equal(t, "if(a == b) {\n    x += 1;\n}", out)
}

func TestFormatLeavesCompoundTokens(t *testing.T) {
	out, err := Format("p->x++;\nstd::cout;")
	require.NoError(t, err)
	assert.Equal(t, "p->x++;\nstd::cout;", out)
}

func TestFormatSkipsPreprocessorLines(t *testing.T) {
	out, err := Format("#include <iostream>\nint x=1;")
	require.NoError(t, err)
	assert.Equal(t, "#include <iostream>\nint x = 1;", out)
}

func TestFormatCollapsesBlankRuns(t *testing.T) {
	out, err := Format("a;\n\n\n\nb;")
	require.NoError(t, err)
	assert.Equal(t, "a;\n\nb;", out)
}

func TestFormatNestedIndent(t *testing.T) {
	out, err := Format("class A{void f(){if(x){y();}}};")
	require.NoError(t, err)
	want := strings.Join([]string{
		"class A {",
		"    void f() {",
		"        if(x) {",
		"            y();",
		"        }",
		"    }",
		"};",
	}, "\n")
	assert.Equal(t, want, out)
}

func TestFormatRejectsBinary(t *testing.T) {
	_, err := Format("int\x00main")
	assert.ErrorIs(t, err, ErrBinaryInput)

	_, err = Format(string([]byte{0xff, 0xfe, 'a'}))
	assert.ErrorIs(t, err, ErrBinaryInput)
}
