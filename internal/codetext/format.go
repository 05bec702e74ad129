package codetext

import (
	"errors"
	"regexp"
	"strings"
	"unicode/utf8"
)

// ErrBinaryInput is returned by Format for buffers that are not text.
var ErrBinaryInput = errors.New("buffer is not valid UTF-8 text")

const indentUnit = "    "

var (
	blankRunRe   = regexp.MustCompile(`\n[ \t]*\n(?:[ \t]*\n)+`)
	commaRe      = regexp.MustCompile(`,[ \t]*`)
	openBraceRe  = regexp.MustCompile(`\s*\{\s*`)
	closeBraceRe = regexp.MustCompile(`\s*\}\s*(;?)`)
	semicolonRe  = regexp.MustCompile(`;[ \t]*(?:\r?\n)?`)
	operatorRe   = regexp.MustCompile(`==|!=|<=|>=|\+=|-=|\*=|/=|&&|\|\||<<|>>|\+\+|--|->|::|//|[=+\-*/%<>]`)
	multiSpaceRe = regexp.MustCompile(` {2,}`)
)

// tokens matched by operatorRe that are left as written
var passthrough = map[string]bool{"++": true, "--": true, "->": true, "::": true, "//": true}

// Format reflows src with a fixed sequence of regular-expression rewrites and
// re-indents it by brace depth. It is a best-effort text transform: output is
// not guaranteed to compile, and braces or operators inside strings and
// comments are treated like code.
func Format(src string) (string, error) {
	if !utf8.ValidString(src) || strings.IndexByte(src, 0) >= 0 {
		return "", ErrBinaryInput
	}
	s := strings.ReplaceAll(src, "\r\n", "\n")

	s = blankRunRe.ReplaceAllString(s, "\n\n")
	s = commaRe.ReplaceAllString(s, ", ")
	s = openBraceRe.ReplaceAllString(s, " {\n")
	s = closeBraceRe.ReplaceAllString(s, "\n}${1}\n")
	s = semicolonRe.ReplaceAllString(s, ";\n")
	s = spaceOperators(s)

	return reindent(s), nil
}

func spaceOperators(s string) string {
	lines := strings.Split(s, "\n")
	for i, ln := range lines {
		// preprocessor lines keep <header> intact
		if strings.HasPrefix(strings.TrimSpace(ln), "#") {
			continue
		}
		ln = operatorRe.ReplaceAllStringFunc(ln, func(op string) string {
			if passthrough[op] {
				return op
			}
			return " " + op + " "
		})
		lines[i] = multiSpaceRe.ReplaceAllString(ln, " ")
	}
	return strings.Join(lines, "\n")
}

// reindent indents every line by the number of unmatched braces on the
// lines before it. Blank lines that brace insertion leaves next to a brace are
// dropped; other single blank lines survive.
func reindent(s string) string {
	lines := strings.Split(s, "\n")
	out := make([]string, 0, len(lines))
	depth := 0
	for i, ln := range lines {
		t := strings.TrimSpace(ln)
		if t == "" {
			if len(out) == 0 || out[len(out)-1] == "" {
				continue
			}
			prev := strings.TrimSpace(out[len(out)-1])
			next := nextNonBlank(lines, i+1)
			if strings.HasSuffix(prev, "{") || strings.HasPrefix(next, "}") {
				continue
			}
			out = append(out, "")
			continue
		}
		level := depth
		if strings.HasPrefix(t, "}") {
			level--
		}
		if level < 0 {
			level = 0
		}
		out = append(out, strings.Repeat(indentUnit, level)+t)
		depth += strings.Count(t, "{") - strings.Count(t, "}")
		if depth < 0 {
			depth = 0
		}
	}
	return strings.TrimSpace(strings.Join(out, "\n"))
}

func nextNonBlank(lines []string, from int) string {
	for _, ln := range lines[from:] {
		if t := strings.TrimSpace(ln); t != "" {
			return t
		}
	}
	return ""
}
