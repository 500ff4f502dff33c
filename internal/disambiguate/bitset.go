// Copyright 2009 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package disambiguate

import (
	"math/bits"
	"sort"

	"golang.org/x/doclink/internal/hierarchy"
)

// maxInformativePositions bounds how many informative positions the fast
// path will enumerate full subset masks over. Spec §4.5 allows up to 64
// positions in principle, but common-position pruning leaves only the
// positions where overloads actually differ, which in practice is a
// handful even for large overload sets; a generic symbol graph import
// falls back to fallbackMinimize (spec §4.5 "fallback path") rather than
// enumerate an astronomical mask space.
const maxInformativePositions = 24

// bitsetMinimize implements spec §4.5's fast path: positions whose type
// name is identical across every overload convey no information and are
// pruned (common-position pruning); for each remaining ("informative")
// position, a 64-bit bitset records which overloads share a given type
// name there. Candidate subsets of informative positions are the raw
// values 1..2^k-1 of a k-bit mask, walked in increasing popcount order
// (math/bits.OnesCount64); for overload i, a mask disambiguates it iff
// intersecting "who shares i's value" across every position in the mask
// yields exactly {i}. The search for i stops as soon as a mask's popcount
// exceeds the best popcount already found for i (spec §4.5).
func bitsetMinimize(overloads []overload) (resolved map[hierarchy.Identifier]Suffix, unresolved []hierarchy.Element) {
	informative := informativePositions(overloads)
	resolved = make(map[hierarchy.Identifier]Suffix, len(overloads))
	if len(informative) > maxInformativePositions {
		return fallbackMinimize(overloads)
	}
	k := len(informative)

	byPosValue := make([]map[string]uint64, k)
	for idx, p := range informative {
		byPosValue[idx] = make(map[string]uint64)
		for i, ov := range overloads {
			v := valueAt(ov.positions, p)
			byPosValue[idx][v] |= uint64(1) << uint(i)
		}
	}

	masks := sortedMasksByPopcount(k)

	for i, ov := range overloads {
		self := uint64(1) << uint(i)
		bestPopcount := -1
		var bestMask uint64
		bestLen := -1
		for _, mask := range masks {
			pc := bits.OnesCount64(mask)
			if bestPopcount >= 0 && pc > bestPopcount {
				break
			}
			isect := ^uint64(0)
			for idx := 0; idx < k; idx++ {
				if mask&(1<<uint(idx)) == 0 {
					continue
				}
				v := valueAt(ov.positions, informative[idx])
				isect &= byPosValue[idx][v]
			}
			if isect != self {
				continue
			}
			length := renderedByteLen(ov, mask, informative)
			if bestPopcount < 0 || length < bestLen {
				bestPopcount, bestMask, bestLen = pc, mask, length
			}
		}
		if bestPopcount < 0 {
			unresolved = append(unresolved, ov.elem)
			continue
		}
		var positions []int
		for idx := 0; idx < k; idx++ {
			if bestMask&(1<<uint(idx)) != 0 {
				positions = append(positions, informative[idx])
			}
		}
		resolved[ov.id] = render(ov, positions)
	}
	return resolved, unresolved
}

func renderedByteLen(ov overload, mask uint64, informative []int) int {
	n := 0
	for idx, p := range informative {
		if mask&(1<<uint(idx)) != 0 {
			n += len(valueAt(ov.positions, p))
		}
	}
	return n
}

// sortedMasksByPopcount returns every non-zero k-bit mask sorted by
// ascending popcount (ties broken by numeric value for determinism).
func sortedMasksByPopcount(k int) []uint64 {
	n := 1 << uint(k)
	masks := make([]uint64, 0, n-1)
	for m := 1; m < n; m++ {
		masks = append(masks, uint64(m))
	}
	sort.Slice(masks, func(i, j int) bool {
		pi, pj := bits.OnesCount64(masks[i]), bits.OnesCount64(masks[j])
		if pi != pj {
			return pi < pj
		}
		return masks[i] < masks[j]
	})
	return masks
}

// informativePositions returns the position indices where not every
// overload shares the identical type name (spec §4.5 "common-position
// pruning").
func informativePositions(overloads []overload) []int {
	maxLen := 0
	for _, ov := range overloads {
		if len(ov.positions) > maxLen {
			maxLen = len(ov.positions)
		}
	}
	var out []int
	for p := 0; p < maxLen; p++ {
		first := valueAt(overloads[0].positions, p)
		same := true
		for _, ov := range overloads[1:] {
			if valueAt(ov.positions, p) != first {
				same = false
				break
			}
		}
		if !same {
			out = append(out, p)
		}
	}
	return out
}

func valueAt(positions []string, p int) string {
	if p < 0 || p >= len(positions) {
		return "\x00absent"
	}
	return positions[p]
}

// render builds the final Suffix for overload ov given the chosen position
// indices, splitting back into parameter vs. return axes and padding
// unused positions with "_" (spec §6).
func render(ov overload, positions []int) Suffix {
	chosen := make(map[int]bool, len(positions))
	for _, p := range positions {
		chosen[p] = true
	}
	s := Suffix{Shape: ShapeTypeSignature}
	if len(ov.elem.ParameterTypes) > 0 {
		s.ParameterTypes = make([]string, len(ov.elem.ParameterTypes))
		for i := range s.ParameterTypes {
			if chosen[i] {
				s.ParameterTypes[i] = ov.elem.ParameterTypes[i]
			} else {
				s.ParameterTypes[i] = "_"
			}
		}
	}
	if len(ov.elem.ReturnTypes) > 0 {
		s.ReturnTypes = make([]string, len(ov.elem.ReturnTypes))
		for i := range s.ReturnTypes {
			p := ov.nParams + i
			if chosen[p] {
				s.ReturnTypes[i] = ov.elem.ReturnTypes[i]
			} else {
				s.ReturnTypes[i] = "_"
			}
		}
	}
	return s
}
