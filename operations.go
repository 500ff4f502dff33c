// Copyright 2009 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package doclink

import (
	"net/url"
	"sort"
	"strings"

	"golang.org/x/text/cases"

	"golang.org/x/doclink/internal/disambiguate"
	"golang.org/x/doclink/internal/docfile"
	"golang.org/x/doclink/internal/hierarchy"
	"golang.org/x/doclink/internal/linkparser"
	"golang.org/x/doclink/internal/resolveerror"
)

// Resolve implements spec §6's resolve(raw, parent?, only_symbols). raw may
// be a full "doc://bundle/documentation/..." link or a bare path (for
// relative resolution against parent); see splitDocLink.
func (c *Core) Resolve(raw string, parent *Identifier, onlySymbols bool) (ResolutionResult, *resolveerror.Error) {
	bundleID, path := splitDocLink(raw)

	id, rerr := c.resolver.Resolve(path, parent, onlySymbols)
	if rerr == nil {
		return ResolutionResult{Identifier: id}, nil
	}

	if bundleID == "" || (rerr.Kind != resolveerror.ModuleNotFound && rerr.Kind != resolveerror.NotFound) {
		return ResolutionResult{}, rerr
	}
	ext, ok := c.externalResolverFor(bundleID)
	if !ok {
		return ResolutionResult{}, rerr
	}
	sourceLanguage := ""
	if parent != nil {
		if n, ok := c.h.Node(*parent); ok && n.Symbol != nil {
			sourceLanguage = n.Symbol.InterfaceLanguage
		}
	}
	ref, err := ext.Resolve(path, sourceLanguage)
	if err != nil {
		return ResolutionResult{}, rerr
	}
	return ResolutionResult{External: &ref}, nil
}

// splitDocLink peels the "doc://bundle" scheme and host from raw, per spec
// §6's link textual format; a raw value with no such scheme is returned
// unchanged as the path, with an empty bundle id.
func splitDocLink(raw string) (bundleID, path string) {
	if !strings.HasPrefix(raw, "doc://") && !strings.HasPrefix(raw, "doc:") {
		return "", raw
	}
	u, err := url.Parse(raw)
	if err != nil {
		return "", raw
	}
	path = u.Path
	if u.Fragment != "" {
		path += "#" + u.Fragment
	}
	return u.Host, path
}

// ReferenceOf implements spec §6's reference_of(identifier) -> Reference.
func (c *Core) ReferenceOf(id Identifier) (Reference, bool) {
	n, ok := c.h.Node(id)
	if !ok {
		return Reference{}, false
	}
	comps := c.pathComponentsFor(n)
	if len(comps) == 0 {
		return Reference{}, false
	}

	prefix := "documentation"
	if n.Kind == hierarchy.KindTutorial {
		prefix = "tutorials"
	}
	path := "/" + prefix + "/" + strings.Join(comps, "/")
	bundleID := c.bundleIDForModule(comps[0])

	var langs []string
	if n.Symbol != nil {
		langs = append(langs, n.Symbol.InterfaceLanguage)
	}
	if cp := c.h.Counterpart(n); cp != nil && cp.Symbol != nil {
		langs = append(langs, cp.Symbol.InterfaceLanguage)
	}

	ref := c.pool.Intern(bundleID, path, "", langs)
	c.recordReference(bundleID, path, "", id)
	return *ref, true
}

func (c *Core) pathComponentsFor(n *hierarchy.Node) []string {
	var comps []string
	for cur := n; cur != nil; cur = c.h.Parent(cur) {
		comps = append([]string{cur.Name}, comps...)
	}
	return comps
}

func refKey(bundleID, path, fragment string) string {
	return bundleID + "\x00" + path + "\x00" + fragment
}

func (c *Core) recordReference(bundleID, path, fragment string, id Identifier) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.refToID[refKey(bundleID, path, fragment)] = id
}

func (c *Core) identifierForReference(r Reference) (Identifier, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	id, ok := c.refToID[refKey(r.BundleID, r.Path, r.Fragment)]
	return id, ok
}

// DisambiguatedPaths implements spec §6's disambiguated_paths(case_sensitive,
// include_language, allow_type_signature) -> map<precise_id, String>.
func (c *Core) DisambiguatedPaths(caseSensitive, includeLanguage, allowTypeSignature bool) map[string]string {
	result := make(map[string]string)
	fold := cases.Fold()

	var walk func(n *hierarchy.Node, prefix []string)
	walk = func(n *hierarchy.Node, prefix []string) {
		for _, name := range n.Children.Names() {
			container, _ := n.Children.Lookup(name)
			suffixes := disambiguate.MinimalSuffixes(container, disambiguate.Options{
				IncludeLanguage:    includeLanguage,
				AllowTypeSignature: allowTypeSignature,
			})
			collision := !caseSensitive && caseFoldCollides(fold, n, name)

			for _, e := range container.Elements {
				child := c.h.MustNode(e.Node)
				suffix := suffixes[e.Node]
				if collision && suffix.Shape == disambiguate.ShapeNone {
					// force a kind suffix so two names that differ only by
					// case still produce distinct paths
					suffix = disambiguate.Suffix{Shape: disambiguate.ShapeKindOnly, Kind: e.Kind}
				}
				if includeLanguage && suffix.Shape == disambiguate.ShapeKindOnly && child.Symbol != nil {
					suffix.Language = child.Symbol.InterfaceLanguage
				}
				comp := name + suffix.Render()
				nextPrefix := append(append([]string{}, prefix...), comp)

				if child.Symbol != nil {
					result[child.Symbol.PreciseID] = "/documentation/" + strings.Join(nextPrefix, "/")
				}
				walk(child, nextPrefix)
			}
		}
	}

	for _, name := range sortedModuleNames(c.h) {
		modID := c.h.Modules[name]
		walk(c.h.MustNode(modID), []string{name})
	}
	return result
}

func sortedModuleNames(h *hierarchy.Hierarchy) []string {
	names := make([]string, 0, len(h.Modules))
	for name := range h.Modules {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func caseFoldCollides(fold cases.Caser, parent *hierarchy.Node, name string) bool {
	folded := fold.String(name)
	for _, other := range parent.Children.Names() {
		if other != name && fold.String(other) == folded {
			return true
		}
	}
	return false
}

// Breadcrumbs implements spec §6's breadcrumbs(reference, language) ->
// [Reference]: the chain of references from the owning module down to ref,
// preferring each ancestor's language counterpart when one exists.
func (c *Core) Breadcrumbs(ref Reference, language string) ([]Reference, bool) {
	id, ok := c.identifierForReference(ref)
	if !ok {
		return nil, false
	}
	n, ok := c.h.Node(id)
	if !ok {
		return nil, false
	}

	var chain []*hierarchy.Node
	for cur := n; cur != nil; cur = c.h.Parent(cur) {
		chain = append([]*hierarchy.Node{cur}, chain...)
	}

	out := make([]Reference, 0, len(chain))
	for _, node := range chain {
		use := node
		if language != "" && node.Symbol != nil && node.Symbol.InterfaceLanguage != language {
			if cp := c.h.Counterpart(node); cp != nil && cp.Symbol != nil && cp.Symbol.InterfaceLanguage == language {
				use = cp
			}
		}
		if r, ok := c.ReferenceOf(use.ID); ok {
			out = append(out, r)
		}
	}
	return out, true
}

// OverloadsOfGroup implements spec §6's overloads_of_group(reference) ->
// [Reference]: every sibling sharing ref's name and symbol kind.
func (c *Core) OverloadsOfGroup(ref Reference) ([]Reference, bool) {
	id, ok := c.identifierForReference(ref)
	if !ok {
		return nil, false
	}
	n, ok := c.h.Node(id)
	if !ok || n.Symbol == nil {
		return nil, false
	}
	parent := c.h.Parent(n)
	if parent == nil {
		return nil, false
	}
	container, ok := parent.Children.Lookup(n.Name)
	if !ok {
		return nil, false
	}

	var out []Reference
	for _, e := range container.Elements {
		if e.Node == id || e.Kind != n.Symbol.KindID {
			continue
		}
		if r, ok := c.ReferenceOf(e.Node); ok {
			out = append(out, r)
		}
	}
	return out, true
}

// SerializableLinkResolutionInformation is the result of
// prepare_for_serialization(bundle_id), spec §6: a docfile ready to persist
// and share across documentation builds.
type SerializableLinkResolutionInformation struct {
	File *docfile.File
}

// PrepareForSerialization implements spec §6's
// prepare_for_serialization(bundle_id) -> SerializableLinkResolutionInformation.
// bundleID is accepted for interface fidelity; the current hierarchy is
// single-process and shared across bundles, so the whole hierarchy is
// encoded and non-symbol paths are recorded for every bundle's nodes.
func (c *Core) PrepareForSerialization(bundleID string) SerializableLinkResolutionInformation {
	nonSymbolPaths := make(map[hierarchy.Identifier]string)
	for _, id := range c.h.Findable() {
		n := c.h.MustNode(id)
		if n.Symbol != nil {
			continue
		}
		if ref, ok := c.ReferenceOf(id); ok {
			nonSymbolPaths[id] = ref.Path
		}
	}
	return SerializableLinkResolutionInformation{File: docfile.Encode(c.h, nonSymbolPaths, nil)}
}

// AddAnchorSection ingests one anchor-section input (spec §6 "Anchor
// sections"), attaching a new anchor-kind node under the node a.ParentReference
// addresses.
func (c *Core) AddAnchorSection(a AnchorSection) (Identifier, bool) {
	parentID, ok := c.identifierForReference(a.ParentReference)
	if !ok {
		return Identifier{}, false
	}
	parent, ok := c.h.Node(parentID)
	if !ok {
		return Identifier{}, false
	}
	anchor := c.h.NewNode(a.FragmentTitle, hierarchy.KindAnchor)
	c.h.AddChild(parent, a.FragmentTitle, hierarchy.Element{Node: anchor.ID, Kind: linkparser.AnchorKindID})
	return anchor.ID, true
}
