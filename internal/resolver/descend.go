// Copyright 2009 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package resolver

import (
	"golang.org/x/doclink/internal/disambiguate"
	"golang.org/x/doclink/internal/hierarchy"
	"golang.org/x/doclink/internal/linkparser"
	"golang.org/x/doclink/internal/resolveerror"
)

// descend implements spec §4.4's searchForNode: walk components one at a
// time from start, consulting each DisambiguationContainer in turn and
// applying look-ahead and tie-breaking whenever a name alone does not
// settle which sibling is meant.
func (r *Resolver) descend(start *hierarchy.Node, components []linkparser.PathComponent, onlySymbols bool, raw string) (hierarchy.Identifier, *resolveerror.Error) {
	cur := start
	for i := 0; i < len(components); i++ {
		comp := components[i]

		container, ok := cur.Children.Lookup(comp.Full)
		if !ok {
			container, ok = cur.Children.Lookup(comp.Name)
		}
		if !ok {
			return hierarchy.Identifier{}, resolveerror.NewUnknownName(raw, comp.Full, nearMissNames(comp.Name, cur.Children.Names()))
		}

		candidates := elementsFor(container, comp.Disambiguation)
		if len(candidates) == 0 {
			return hierarchy.Identifier{}, resolveerror.NewUnknownDisambiguation(raw, comp.Full, candidatesFor(container))
		}

		var winner hierarchy.Element
		switch {
		case len(candidates) == 1:
			winner = candidates[0]
		default:
			if i+1 < len(components) {
				if w, ok := r.lookAhead(candidates, components[i+1]); ok {
					winner = w
					break
				}
			}
			w, rerr := r.tieBreak(candidates, onlySymbols, container, raw)
			if rerr != nil {
				return hierarchy.Identifier{}, rerr
			}
			winner = w
		}

		cur = r.h.MustNode(winner.Node)
	}

	if onlySymbols && cur.Symbol == nil {
		return hierarchy.Identifier{}, resolveerror.NewNonSymbolMatchForSymbolLink(cur.Name, generalLinkHint(cur))
	}
	if cur.IsSparsePlaceholder() {
		return hierarchy.Identifier{}, resolveerror.NewUnfindableMatch(cur.Name)
	}
	return cur.ID, nil
}

// lookAhead implements spec §4.4's collision-breaking look-ahead: if
// exactly one candidate has a child matching the next path component, that
// candidate wins without consulting the tie-break rules at all.
func (r *Resolver) lookAhead(candidates []hierarchy.Element, next linkparser.PathComponent) (hierarchy.Element, bool) {
	var winner hierarchy.Element
	matches := 0
	for _, c := range candidates {
		node := r.h.MustNode(c.Node)
		if childHasMatch(node, next) {
			matches++
			winner = c
		}
	}
	return winner, matches == 1
}

func childHasMatch(node *hierarchy.Node, comp linkparser.PathComponent) bool {
	container, ok := node.Children.Lookup(comp.Full)
	if !ok {
		container, ok = node.Children.Lookup(comp.Name)
	}
	if !ok {
		return false
	}
	return len(elementsFor(container, comp.Disambiguation)) > 0
}

// elementsFor narrows container's elements by comp's disambiguation shape.
func elementsFor(container *hierarchy.DisambiguationContainer, d linkparser.Disambiguation) []hierarchy.Element {
	switch d.Shape {
	case linkparser.DisambiguationKindOnly:
		return container.ByKindAndHash(d.Kind, "")
	case linkparser.DisambiguationHashOnly:
		return container.ByKindAndHash("", d.Hash)
	case linkparser.DisambiguationKindAndHash:
		return container.ByKindAndHash(d.Kind, d.Hash)
	case linkparser.DisambiguationTypeSignature:
		var params, returns []string
		if d.HasParameterTypes {
			params = d.ParameterTypes
		}
		if d.HasReturnTypes {
			returns = d.ReturnTypes
		}
		return container.ByTypeSignature(params, returns)
	default:
		return container.ByKindAndHash("", "")
	}
}

// candidatesFor renders every element of container as a resolveerror
// Candidate, using the minimal-disambiguation engine so the suggested
// suffix is the shortest one that actually works (spec §7: "candidates and
// the suffix each would need").
func candidatesFor(container *hierarchy.DisambiguationContainer) []resolveerror.Candidate {
	suffixes := disambiguate.MinimalSuffixes(container, disambiguate.Options{AllowTypeSignature: true})
	out := make([]resolveerror.Candidate, 0, len(container.Elements))
	for _, e := range container.Elements {
		out = append(out, resolveerror.Candidate{
			Name:           container.Name,
			RequiredSuffix: suffixes[e.Node].Render(),
		})
	}
	return out
}

// generalLinkHint spells the documentation-link form a symbol-only link
// should have used instead of landing on a non-symbol node (spec §7's
// NonSymbolMatchForSymbolLink solution).
func generalLinkHint(n *hierarchy.Node) string {
	return "<doc:" + n.Name + ">"
}
