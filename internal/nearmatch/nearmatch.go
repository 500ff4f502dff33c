// Copyright 2019 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package nearmatch ranks sibling names by edit distance to an unresolved
// query, for the "near-miss suggestions" spec §7 attaches to UnknownName
// and ModuleNotFound errors.
//
// It is adapted from the rune-scanning style of the teacher's
// internal/lsp/fuzzymatch package, which scores a subsequence match for
// interactive completion; near-miss suggestions need a true edit distance
// instead; see the DESIGN.md grounding ledger entry for nearmatch.
package nearmatch

import "unicode/utf8"

// MaxSuggestions is the cap spec §7 puts on near-miss results ("a small
// (≤3) result cap").
const MaxSuggestions = 3

// Suggestions returns up to MaxSuggestions candidates from the pool of
// available names, ordered by ascending Levenshtein distance to query
// (ties broken by candidates' original order).
func Suggestions(query string, candidates []string) []string {
	type scored struct {
		name string
		dist int
		idx  int
	}
	scoredCandidates := make([]scored, len(candidates))
	for i, c := range candidates {
		scoredCandidates[i] = scored{name: c, dist: distance(query, c), idx: i}
	}
	// simple insertion sort: candidate pools are small (one node's sibling
	// names), and preserves original-order ties without an extra compare.
	for i := 1; i < len(scoredCandidates); i++ {
		for j := i; j > 0 && less(scoredCandidates[j], scoredCandidates[j-1]); j-- {
			scoredCandidates[j], scoredCandidates[j-1] = scoredCandidates[j-1], scoredCandidates[j]
		}
	}
	n := MaxSuggestions
	if n > len(scoredCandidates) {
		n = len(scoredCandidates)
	}
	out := make([]string, n)
	for i := 0; i < n; i++ {
		out[i] = scoredCandidates[i].name
	}
	return out
}

func less(a, b struct {
	name string
	dist int
	idx  int
}) bool {
	if a.dist != b.dist {
		return a.dist < b.dist
	}
	return a.idx < b.idx
}

// distance computes the Levenshtein edit distance between a and b over
// runes (so multi-byte identifiers from a non-ASCII symbol graph score
// correctly rather than by UTF-8 byte length).
func distance(a, b string) int {
	ra, rb := toRunes(a), toRunes(b)
	if len(ra) == 0 {
		return len(rb)
	}
	if len(rb) == 0 {
		return len(ra)
	}
	prev := make([]int, len(rb)+1)
	curr := make([]int, len(rb)+1)
	for j := range prev {
		prev[j] = j
	}
	for i := 1; i <= len(ra); i++ {
		curr[0] = i
		for j := 1; j <= len(rb); j++ {
			cost := 1
			if ra[i-1] == rb[j-1] {
				cost = 0
			}
			del := prev[j] + 1
			ins := curr[j-1] + 1
			sub := prev[j-1] + cost
			curr[j] = min3(del, ins, sub)
		}
		prev, curr = curr, prev
	}
	return prev[len(rb)]
}

func min3(a, b, c int) int {
	m := a
	if b < m {
		m = b
	}
	if c < m {
		m = c
	}
	return m
}

func toRunes(s string) []rune {
	out := make([]rune, 0, utf8.RuneCountInString(s))
	for _, r := range s {
		out = append(out, r)
	}
	return out
}
