// Copyright 2009 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package resolver implements descent-with-fallback link resolution over a
// *hierarchy.Hierarchy (spec §4.4).
package resolver

import (
	"golang.org/x/doclink/internal/hierarchy"
	"golang.org/x/doclink/internal/linkparser"
	"golang.org/x/doclink/internal/resolveerror"
)

// Resolver resolves parsed link paths against one Hierarchy.
type Resolver struct {
	h     *hierarchy.Hierarchy
	cfg   linkparser.Config
	cache *Cache
}

// New returns a Resolver over h using cfg for link parsing.
func New(h *hierarchy.Hierarchy, cfg linkparser.Config) *Resolver {
	return &Resolver{h: h, cfg: cfg, cache: NewCache()}
}

// Cache exposes the resolver's per-parent resolution cache, so a bundle
// unregistration hook (spec §5) can clear it.
func (r *Resolver) Cache() *Cache { return r.cache }

// Resolve implements spec §4.4's top-level algorithm.
func (r *Resolver) Resolve(raw string, parent *hierarchy.Identifier, onlySymbols bool) (hierarchy.Identifier, *resolveerror.Error) {
	if parent != nil {
		if id, cachedErr, hit := r.cache.Lookup(*parent, raw, onlySymbols); hit {
			return id, cachedErr
		}
	}
	id, rerr := r.resolveUncached(raw, parent, onlySymbols)
	if parent != nil {
		r.cache.Store(*parent, raw, onlySymbols, id, rerr)
	}
	return id, rerr
}

func (r *Resolver) resolveUncached(raw string, parent *hierarchy.Identifier, onlySymbols bool) (hierarchy.Identifier, *resolveerror.Error) {
	parsed := linkparser.Parse(raw, r.cfg)
	components := parsed.Components

	// Step 1: drop a leading "documentation"/"tutorials" component.
	if len(components) > 0 && (components[0].Name == "documentation" || components[0].Name == "tutorials") {
		components = components[1:]
	}
	if len(components) == 0 {
		return hierarchy.Identifier{}, resolveerror.NewNotFound(raw, "", r.topLevelNames())
	}

	// Step 2: non-symbol roots, tried in fixed order.
	if !onlySymbols {
		for _, rootID := range r.nonSymbolRootsInOrder() {
			if rootID.IsZero() {
				continue
			}
			rootNode, ok := r.h.Node(rootID)
			if !ok {
				continue
			}
			remaining, matched := matchRoot(rootNode, components)
			if !matched {
				continue
			}
			return r.descend(rootNode, remaining, onlySymbols, raw)
		}
	}

	// Step 3: module root.
	if moduleID, ok := r.h.Modules[components[0].Name]; ok {
		return r.descend(r.h.MustNode(moduleID), components[1:], onlySymbols, raw)
	}

	// Step 4: relative walk-up, only for a relative link with a parent.
	if !parsed.IsAbsolute && parent != nil {
		return r.walkUp(*parent, components, onlySymbols, raw)
	}

	return hierarchy.Identifier{}, resolveerror.NewModuleNotFound(raw, components[0].Full, r.nearMissModules(components[0].Name))
}

// nonSymbolRootsInOrder returns the three synthetic roots in the fixed
// order spec §4.4 step 2 requires.
func (r *Resolver) nonSymbolRootsInOrder() []hierarchy.Identifier {
	return []hierarchy.Identifier{r.h.ArticlesContainer, r.h.TutorialContainer, r.h.TutorialOverviewContainer}
}

// matchRoot implements spec §4.4: "A root matches if either the root
// node's own name matches the first component or one of its direct
// children matches." When the root's own name matches, that leading
// component is consumed (the root itself stands for it); otherwise the
// full component list is handed to descent since the first component
// names a child.
func matchRoot(root *hierarchy.Node, components []linkparser.PathComponent) ([]linkparser.PathComponent, bool) {
	if len(components) == 0 {
		return nil, false
	}
	first := components[0]
	if root.Name == first.Name {
		return components[1:], true
	}
	if _, ok := root.Children.Lookup(first.Full); ok {
		return components, true
	}
	if _, ok := root.Children.Lookup(first.Name); ok {
		return components, true
	}
	return nil, false
}

func (r *Resolver) topLevelNames() []string {
	var names []string
	for name := range r.h.Modules {
		names = append(names, name)
	}
	return names
}

func (r *Resolver) nearMissModules(query string) []string {
	return nearMissNames(query, r.topLevelNames())
}
