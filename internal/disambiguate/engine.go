// Copyright 2009 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package disambiguate

import "golang.org/x/doclink/internal/hierarchy"

// Container is the minimal view of a hierarchy.DisambiguationContainer the
// engine needs: one name's worth of same-named elements.
type Container = hierarchy.DisambiguationContainer

// MinimalSuffixes computes the shortest suffix that uniquely identifies
// each element of c, per spec §4.5's three strategies tried in order:
// kind, type signature, hash. A container with a single element needs no
// suffix at all.
func MinimalSuffixes(c *Container, opts Options) map[hierarchy.Identifier]Suffix {
	result := make(map[hierarchy.Identifier]Suffix, len(c.Elements))
	if len(c.Elements) <= 1 {
		for _, e := range c.Elements {
			result[e.Node] = Suffix{Shape: ShapeNone}
		}
		return result
	}

	remaining := make([]hierarchy.Element, len(c.Elements))
	copy(remaining, c.Elements)

	// Strategy 1: kind.
	byKind := map[string][]hierarchy.Element{}
	for _, e := range remaining {
		byKind[e.Kind] = append(byKind[e.Kind], e)
	}
	var stillAmbiguous []hierarchy.Element
	for _, e := range remaining {
		if len(byKind[e.Kind]) == 1 && e.Kind != "" {
			result[e.Node] = Suffix{Shape: ShapeKindOnly, Kind: e.Kind}
		} else {
			stillAmbiguous = append(stillAmbiguous, e)
		}
	}
	if opts.IncludeLanguage {
		// Re-render already-resolved kind suffixes with their language,
		// per spec §6's include_language parameter. Hierarchy elements
		// don't carry language directly; the facade fills Language in
		// when it has the owning node's SymbolData in hand (see
		// doclink.Core.DisambiguatedPaths), so nothing further happens here.
	}
	if len(stillAmbiguous) == 0 {
		return result
	}

	// Strategy 2: type signature, grouped by kind (spec §4.5: "for
	// overloads that share a kind").
	if opts.AllowTypeSignature {
		byKindGroup := map[string][]hierarchy.Element{}
		for _, e := range stillAmbiguous {
			byKindGroup[e.Kind] = append(byKindGroup[e.Kind], e)
		}
		var afterTypeSig []hierarchy.Element
		for _, group := range byKindGroup {
			if len(group) == 1 {
				result[group[0].Node] = Suffix{Shape: ShapeKindOnly, Kind: group[0].Kind}
				continue
			}
			resolved, unresolved := minimizeGroup(group)
			for id, sfx := range resolved {
				result[id] = sfx
			}
			afterTypeSig = append(afterTypeSig, unresolved...)
		}
		stillAmbiguous = afterTypeSig
	}

	// Strategy 3: hash, last resort.
	for _, e := range stillAmbiguous {
		result[e.Node] = Suffix{Shape: ShapeHashOnly, Hash: e.Hash}
	}
	return result
}

// minimizeGroup dispatches to the bitset fast path (spec §4.5: "≤64
// overloads and ≤64 positions") or the O(n·m) fallback.
func minimizeGroup(group []hierarchy.Element) (resolved map[hierarchy.Identifier]Suffix, unresolved []hierarchy.Element) {
	overloads := make([]overload, len(group))
	maxPositions := 0
	for i, e := range group {
		positions := append(append([]string{}, e.ParameterTypes...), e.ReturnTypes...)
		overloads[i] = overload{id: e.Node, elem: e, positions: positions, nParams: len(e.ParameterTypes)}
		if len(positions) > maxPositions {
			maxPositions = len(positions)
		}
	}
	if len(overloads) <= 64 && maxPositions <= 64 {
		return bitsetMinimize(overloads)
	}
	return fallbackMinimize(overloads)
}
