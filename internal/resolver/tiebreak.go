// Copyright 2009 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package resolver

import (
	"golang.org/x/doclink/internal/hierarchy"
	"golang.org/x/doclink/internal/resolveerror"
)

// tieBreak applies spec §4.4's fallback rules once look-ahead fails to
// single out one candidate: first disfavor-in-collision, then (for
// only_symbols lookups) symbol-vs-non-symbol preference, and only then
// report an ambiguous LookupCollision.
func (r *Resolver) tieBreak(candidates []hierarchy.Element, onlySymbols bool, container *hierarchy.DisambiguationContainer, raw string) (hierarchy.Element, *resolveerror.Error) {
	if w, ok := r.singleUndisfavored(candidates); ok {
		return w, nil
	}
	if onlySymbols {
		if w, ok := r.singleSymbolMatch(candidates); ok {
			return w, nil
		}
	}
	return hierarchy.Element{}, resolveerror.NewLookupCollision(raw, candidatesFor(container))
}

// singleUndisfavored picks the one candidate not marked DisfavorInCollision
// when every other candidate is marked (spec §4.4's tie-break step 1:
// default protocol-requirement implementations, synthesized symbols, and
// sparse placeholders all lose to a sibling without the flag).
func (r *Resolver) singleUndisfavored(candidates []hierarchy.Element) (hierarchy.Element, bool) {
	var winner hierarchy.Element
	count := 0
	for _, c := range candidates {
		node := r.h.MustNode(c.Node)
		if !node.Special.Has(hierarchy.DisfavorInCollision) {
			count++
			winner = c
		}
	}
	return winner, count == 1
}

// singleSymbolMatch picks the one candidate whose "has symbol" flag equals
// onlySymbols's requirement, when exactly one candidate qualifies (spec
// §4.4's tie-break step 2).
func (r *Resolver) singleSymbolMatch(candidates []hierarchy.Element) (hierarchy.Element, bool) {
	var winner hierarchy.Element
	count := 0
	for _, c := range candidates {
		node := r.h.MustNode(c.Node)
		if node.Symbol != nil {
			count++
			winner = c
		}
	}
	return winner, count == 1
}
