// Package codetext holds the lexical heuristics the editor applies to its
// buffer: counters and the reflow formatter. Neither is a parser. Both work on
// raw text and will be fooled by braces or keywords inside string literals and
// comments.
package codetext

import (
	"regexp"
	"sort"
	"strings"
	"unicode/utf8"
)

var (
	classRe  = regexp.MustCompile(`\bclass\s+(\w+)`)
	structRe = regexp.MustCompile(`\bstruct\s+(\w+)`)
)

// Counters summarizes a buffer for the status bar.
type Counters struct {
	Lines   int
	Chars   int
	Objects int
}

// Count computes line, character and class/struct counts for buf.
// Lines follows split-on-newline semantics, so an empty buffer has one line.
func Count(buf string) Counters {
	return Counters{
		Lines:   strings.Count(buf, "\n") + 1,
		Chars:   utf8.RuneCountInString(buf),
		Objects: len(classRe.FindAllStringIndex(buf, -1)) + len(structRe.FindAllStringIndex(buf, -1)),
	}
}

// Object is a class or struct declaration found by the heuristic.
type Object struct {
	Kind string // "class" or "struct"
	Name string
	Line int // 1-based
}

// ObjectNames lists class and struct declarations in source order.
func ObjectNames(buf string) []Object {
	var out []Object
	collect := func(re *regexp.Regexp, kind string) {
		for _, m := range re.FindAllStringSubmatchIndex(buf, -1) {
			out = append(out, Object{
				Kind: kind,
				Name: buf[m[2]:m[3]],
				Line: strings.Count(buf[:m[0]], "\n") + 1,
			})
		}
	}
	collect(classRe, "class")
	collect(structRe, "struct")
	// stable by line, class before struct on the same line
	sort.SliceStable(out, func(i, j int) bool { return out[i].Line < out[j].Line })
	return out
}
