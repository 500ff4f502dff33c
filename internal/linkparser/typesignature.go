// Copyright 2009 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package linkparser

import "strings"

// splitBalancedArgs splits s (the interior of a balanced parenthesized
// group, not including the outer parens) on depth-0 commas, treating
// parens as balanced delimiters for tuples and nested closure types (spec
// §4.2). Each returned string is the verbatim argument text, including any
// nested "->" closure arrow.
func splitBalancedArgs(s string) []string {
	if s == "" {
		return nil
	}
	var out []string
	depth := 0
	start := 0
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '(', '[':
			depth++
		case ')', ']':
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

// findBalancedParenEnd returns the index just past the ')' that closes the
// '(' at s[open], or -1 if s is not balanced from there.
func findBalancedParenEnd(s string, open int) int {
	depth := 0
	for i := open; i < len(s); i++ {
		switch s[i] {
		case '(':
			depth++
		case ')':
			depth--
			if depth == 0 {
				return i + 1
			}
		}
	}
	return -1
}

// typeSignatureSuffix is the parsed result of scanning a component's
// trailing type-signature disambiguator.
type typeSignatureSuffix struct {
	hasParams bool
	params    []string
	hasReturn bool
	returns   []string
}

// parseTypeSignatureSuffix scans s — the text immediately following a
// component's name — for a "-(params)", "->return", or combined
// "-(params)->return" type-signature disambiguator, per spec §4.2. ok is
// false if s does not begin with one of those two introducers, in which
// case the caller should fall back to kind/hash parsing.
func parseTypeSignatureSuffix(s string) (sig typeSignatureSuffix, rest string, ok bool) {
	if strings.HasPrefix(s, "-(") {
		end := findBalancedParenEnd(s, 1)
		if end < 0 {
			return sig, s, false
		}
		inner := s[2 : end-1]
		sig.hasParams = true
		sig.params = normalizeUnused(splitBalancedArgs(inner))
		if sig.params == nil {
			sig.params = []string{} // "-()" means zero arity, not "unconstrained"
		}
		rest = s[end:]
		if strings.HasPrefix(rest, "->") {
			sig.hasReturn, sig.returns, rest = parseReturnSpec(rest[2:])
		}
		return sig, rest, true
	}
	if strings.HasPrefix(s, "->") {
		sig.hasReturn, sig.returns, rest = parseReturnSpec(s[2:])
		return sig, rest, true
	}
	return sig, s, false
}

// parseReturnSpec parses the text following "->": either a single type, or
// a parenthesized tuple split on depth-0 commas (spec §4.3: "a top-level
// tuple return is split on depth-0 commas so each element becomes an
// independently addressable return-type disambiguator").
func parseReturnSpec(s string) (ok bool, returns []string, rest string) {
	if strings.HasPrefix(s, "(") {
		end := findBalancedParenEnd(s, 0)
		if end > 0 {
			inner := s[1 : end-1]
			returns := normalizeUnused(splitBalancedArgs(inner))
			if returns == nil {
				returns = []string{} // "->()" means an explicit zero-element tuple
			}
			return true, returns, s[end:]
		}
	}
	// A single return type runs until a following "-kind"/"-hash" suffix,
	// if any; in practice type-signature disambiguators consume the rest
	// of the component, so we take everything.
	if s == "" {
		return true, nil, ""
	}
	return true, []string{s}, ""
}

// normalizeUnused trims surrounding whitespace from each argument and
// otherwise leaves it untouched, so sugar like "[T]" and "T?" survives
// verbatim. The "_" placeholder (spec §6: "Placeholder '_' indicates an
// unused disambiguation position") is kept as "_"; the disambiguation
// container's matcher treats it as unconstrained.
func normalizeUnused(args []string) []string {
	for i, a := range args {
		args[i] = strings.TrimSpace(a)
		_ = i
	}
	return args
}
