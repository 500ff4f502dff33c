// Copyright 2009 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package typesig derives parameter/return type-name strings from a
// symbol's declaration fragments and applies Swift's syntactic sugar
// (spec §4.3). It has no dependency on the hierarchy package: callers
// convert their own fragment representation to typesig.Fragment before
// calling, which keeps the extraction pass usable from both the builder
// (internal/hierarchy) and standalone tests without an import cycle.
package typesig

import "strings"

// sugarNames lists the generic type names ApplySugar rewrites. Only the
// keys are consulted: matchGenericName matches each name in place and
// ApplySugar writes the sugared form directly, so the marker byte values
// are not used.
var sugarNames = map[string]byte{
	"Array":      'A',
	"Optional":   'O',
	"Dictionary": 'D',
}

// ApplySugar rewrites Array<T>, Optional<T>, and Dictionary<K,V> spellings
// into [T], T?, and [K:V] respectively, recursing into nested generic
// arguments first so that e.g. Array<Optional<Int>> becomes [Int?].
func ApplySugar(s string) string {
	var out strings.Builder
	i := 0
	for i < len(s) {
		name, ok := matchGenericName(s, i)
		if !ok {
			out.WriteByte(s[i])
			i++
			continue
		}
		open := i + len(name)
		end := matchAngleBrackets(s, open)
		if end < 0 {
			out.WriteByte(s[i])
			i++
			continue
		}
		inner := ApplySugar(s[open+1 : end-1])
		switch name {
		case "Array":
			out.WriteByte('[')
			out.WriteString(inner)
			out.WriteByte(']')
		case "Optional":
			out.WriteString(inner)
			out.WriteByte('?')
		case "Dictionary":
			parts := splitTopLevelComma(inner)
			out.WriteByte('[')
			if len(parts) == 2 {
				out.WriteString(parts[0])
				out.WriteByte(':')
				out.WriteString(parts[1])
			} else {
				out.WriteString(inner)
			}
			out.WriteByte(']')
		}
		i = end
	}
	return out.String()
}

// matchGenericName reports whether s[i:] begins with one of Array,
// Optional, or Dictionary as a whole identifier, immediately followed by
// '<', and not preceded by another identifier character (so "MyArray<T>"
// is left untouched).
func matchGenericName(s string, i int) (string, bool) {
	for name := range sugarNames {
		if !strings.HasPrefix(s[i:], name) {
			continue
		}
		end := i + len(name)
		if end >= len(s) || s[end] != '<' {
			continue
		}
		if i > 0 && isIdentByte(s[i-1]) {
			continue
		}
		return name, true
	}
	return "", false
}

func isIdentByte(c byte) bool {
	return c == '_' || (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') || (c >= '0' && c <= '9')
}

// matchAngleBrackets returns the index just past the '>' that closes the
// '<' at s[open], tracking nested angle-bracket depth, or -1 if unbalanced.
func matchAngleBrackets(s string, open int) int {
	if open >= len(s) || s[open] != '<' {
		return -1
	}
	depth := 0
	for i := open; i < len(s); i++ {
		switch s[i] {
		case '<':
			depth++
		case '>':
			depth--
			if depth == 0 {
				return i + 1
			}
		}
	}
	return -1
}

func splitTopLevelComma(s string) []string {
	var out []string
	depth := 0
	start := 0
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '<', '(', '[':
			depth++
		case '>', ')', ']':
			depth--
		case ',':
			if depth == 0 {
				out = append(out, s[start:i])
				start = i + 1
			}
		}
	}
	out = append(out, s[start:])
	return out
}

// StripWhitespace removes every ASCII whitespace byte, per spec §4.3
// ("with whitespace removed").
func StripWhitespace(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case ' ', '\t', '\n', '\r':
			continue
		}
		b.WriteByte(s[i])
	}
	return b.String()
}

// StripRedundantOuterParens removes a matching pair of outer parentheses
// as long as doing so would not hide a top-level tuple comma, per spec
// §4.3 ("redundant outer parentheses stripped (unless they denote a
// tuple)"). It repeats until no more redundant wrapping remains.
func StripRedundantOuterParens(s string) string {
	for {
		if len(s) < 2 || s[0] != '(' || s[len(s)-1] != ')' {
			return s
		}
		depth := 0
		matchesOuter := true
		for i := 0; i < len(s); i++ {
			switch s[i] {
			case '(':
				depth++
			case ')':
				depth--
				if depth == 0 && i != len(s)-1 {
					matchesOuter = false
				}
			}
		}
		if !matchesOuter {
			return s
		}
		inner := s[1 : len(s)-1]
		if hasTopLevelComma(inner) {
			return s
		}
		s = inner
	}
}

func hasTopLevelComma(s string) bool {
	depth := 0
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '(', '[', '<':
			depth++
		case ')', ']', '>':
			depth--
		case ',':
			if depth == 0 {
				return true
			}
		}
	}
	return false
}
