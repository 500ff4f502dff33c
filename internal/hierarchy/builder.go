// Copyright 2009 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package hierarchy

import (
	"sort"
	"strings"
)

// Relationship kinds recognized by the builder (spec §4.1 step 3/4).
const (
	RelMemberOf             = "memberOf"
	RelOptionalMemberOf     = "optionalMemberOf"
	RelRequirementOf        = "requirementOf"
	RelOptionalRequirementOf = "optionalRequirementOf"
	RelExtensionTo          = "extensionTo"
	RelDeclaredIn           = "declaredIn"
	RelDefaultImplementationOf = "defaultImplementationOf"
)

var hierarchicalRelationships = map[string]bool{
	RelMemberOf:              true,
	RelOptionalMemberOf:      true,
	RelRequirementOf:         true,
	RelOptionalRequirementOf: true,
	RelExtensionTo:           true,
	RelDeclaredIn:            true,
}

// Symbol is the subset of symbol-graph symbol data the builder needs. It is
// supplied by the symbol-graph-ingestion collaborator (spec §1, §6).
type Symbol struct {
	PreciseID         string
	InterfaceLanguage string
	PathComponents    []string
	KindID            string
	Declaration       []DeclarationFragment
	FunctionSignature *FunctionSignature
}

// Relationship connects two symbols by precise id (spec §4.1 step 3/4).
type Relationship struct {
	Source string
	Target string
	Kind   string
}

// SymbolGraph is one module's worth of symbol-graph input (spec §4.1
// "Input").
type SymbolGraph struct {
	ModuleName    string
	Symbols       []Symbol
	Relationships []Relationship
}

// PathComponentOverride lets a caller pre-supply the disambiguated path
// components for a precise id, per spec §4.1's
// known_disambiguated_path_components parameter (used for partial builds).
type PathComponentOverride struct {
	Name string
	Kind string
	Hash string
}

// BuildOptions configures Build.
type BuildOptions struct {
	// KnownDisambiguatedPathComponents overrides, by precise id, the path
	// components the builder would otherwise derive from PathComponents.
	KnownDisambiguatedPathComponents map[string][]PathComponentOverride
}

type builderState struct {
	h *Hierarchy
	// nodeBySymbolID holds each symbol's allocated node by precise id, so
	// it can be placed once relationships for its graph have all been
	// scanned.
	nodeBySymbolID map[string]*Node
	relBySource    map[string][]Relationship
	optionalRequirementTargets map[string]string // default implementation precise id -> requirement precise id
}

// Build constructs a Hierarchy from graphs, implementing spec §4.1's
// six-step algorithm. Construction never fails (spec §4.1 "Failure
// semantics"): unplaceable symbols attach to their best-known ancestor and
// missing parents are materialized as sparse placeholders.
func Build(graphs map[string]*SymbolGraph, opts BuildOptions) *Hierarchy {
	h := New()
	st := &builderState{
		h:                          h,
		nodeBySymbolID:             make(map[string]*Node),
		relBySource:                make(map[string][]Relationship),
		optionalRequirementTargets: make(map[string]string),
	}

	// Step 1: stable order, non-extension graphs first.
	names := make([]string, 0, len(graphs))
	for name := range graphs {
		names = append(names, name)
	}
	sort.Slice(names, func(i, j int) bool {
		ei, ej := strings.Contains(names[i], "@"), strings.Contains(names[j], "@")
		if ei != ej {
			return !ei // non-extension first
		}
		return names[i] < names[j]
	})

	for _, name := range names {
		g := graphs[name]
		st.placeGraph(g, opts)
	}

	// Step 6: close dead-end placeholders, then assign identifiers depth-first.
	st.closeDeadEnds()
	st.assignIdentifiers()

	return h
}

func (st *builderState) placeGraph(g *SymbolGraph, opts BuildOptions) {
	h := st.h
	module := h.ModuleNode(g.ModuleName)

	// Step 2: create or reuse a node per symbol, handling counterparts.
	for _, sym := range g.Symbols {
		sym := sym
		if existing, ok := st.nodeBySymbolID[sym.PreciseID]; ok {
			if st.isCounterpart(existing, sym) {
				name := sym.PathComponents[len(sym.PathComponents)-1]
				counterpart := h.NewSymbolNode(name, symbolData(sym))
				h.SetCounterparts(existing, counterpart)
				st.nodeBySymbolID[sym.PreciseID+"\x00"+sym.InterfaceLanguage] = counterpart
			}
			continue
		}
		name := ""
		if len(sym.PathComponents) > 0 {
			name = sym.PathComponents[len(sym.PathComponents)-1]
		}
		n := h.NewSymbolNode(name, symbolData(sym))
		if strings.Contains(sym.PreciseID, "::SYNTHESIZED::") {
			n.Special |= DisfavorInCollision // step 5
		}
		st.nodeBySymbolID[sym.PreciseID] = n
	}

	for _, rel := range g.Relationships {
		st.relBySource[rel.Source] = append(st.relBySource[rel.Source], rel)
		if rel.Kind == RelDefaultImplementationOf {
			st.optionalRequirementTargets[rel.Source] = rel.Target
		}
	}

	st.extractSignatures(g)

	// Step 3/4: place each symbol using hierarchical relationships, falling
	// back to path components with sparse placeholders for gaps.
	for _, sym := range g.Symbols {
		n := st.nodeBySymbolID[sym.PreciseID]
		if !n.Parent.IsZero() {
			continue // already placed via an earlier relationship scan
		}
		st.place(n, sym, module, opts)
	}
}

// isCounterpart implements spec §4.1 step 2: a repeated precise id is
// treated as another language's view of the same entity if either the
// interface languages differ, or the last path component and kind id
// still match. In the same-language case a counterpart is created only
// while the existing node has none, so a precise id repeated several
// times in one language yields at most one counterpart.
func (st *builderState) isCounterpart(existing *Node, sym Symbol) bool {
	if existing.Symbol == nil {
		return false
	}
	if existing.Symbol.InterfaceLanguage != sym.InterfaceLanguage {
		return true
	}
	lastEq := existing.Name == lastComponent(sym.PathComponents)
	return lastEq && existing.Symbol.KindID == sym.KindID && existing.Counterpart.IsZero()
}

func lastComponent(path []string) string {
	if len(path) == 0 {
		return ""
	}
	return path[len(path)-1]
}

func symbolData(sym Symbol) *SymbolData {
	return &SymbolData{
		PreciseID:         sym.PreciseID,
		KindID:            sym.KindID,
		InterfaceLanguage: sym.InterfaceLanguage,
		Declaration:       sym.Declaration,
		FunctionSignature: sym.FunctionSignature,
	}
}

func (st *builderState) place(n *Node, sym Symbol, module *Node, opts BuildOptions) {
	h := st.h

	// Prefer a hierarchical relationship naming this symbol as source.
	for _, rel := range st.relBySource[sym.PreciseID] {
		if !hierarchicalRelationships[rel.Kind] {
			continue
		}
		parent, ok := st.nodeBySymbolID[rel.Target]
		if !ok {
			continue
		}
		h.AddChild(parent, n.Name, st.elementFor(n, sym))
		return
	}

	// defaultImplementationOf: attach under the requirement's parent,
	// disfavored (step 4).
	if protocolReq, ok := st.optionalRequirementTargets[sym.PreciseID]; ok {
		if reqNode, ok := st.nodeBySymbolID[protocolReq]; ok {
			if reqParent := h.Parent(reqNode); reqParent != nil {
				n.Special |= DisfavorInCollision
				h.AddChild(reqParent, n.Name, st.elementFor(n, sym))
				return
			}
		}
	}

	// Step 3 fallback: place by path components, materializing sparse
	// placeholders for any missing intermediate.
	if overrides, ok := opts.KnownDisambiguatedPathComponents[sym.PreciseID]; ok && len(overrides) > 0 {
		st.placeByOverride(n, overrides, module)
		return
	}
	st.placeByPathComponents(n, sym, module)
}

// elementFor builds the DisambiguationContainer key for sym's node,
// including the parameter/return type names extractSignatures already
// computed, so overloads collide on the right key from the start.
func (st *builderState) elementFor(n *Node, sym Symbol) Element {
	e := Element{Node: n.ID, Kind: sym.KindID}
	if n.Symbol != nil {
		e.ParameterTypes = n.Symbol.ParameterTypes
		e.ReturnTypes = n.Symbol.ReturnTypes
	}
	return e
}

func (st *builderState) placeByOverride(n *Node, overrides []PathComponentOverride, module *Node) {
	h := st.h
	cur := module
	for i, ov := range overrides {
		last := i == len(overrides)-1
		if last {
			h.AddChild(cur, ov.Name, Element{Node: n.ID, Kind: ov.Kind, Hash: ov.Hash})
			return
		}
		cur = st.descendOrPlaceholder(cur, ov.Name)
	}
}

func (st *builderState) placeByPathComponents(n *Node, sym Symbol, module *Node) {
	h := st.h
	path := sym.PathComponents
	if len(path) == 0 {
		h.AddChild(module, n.Name, st.elementFor(n, sym))
		return
	}
	cur := module
	for i, name := range path {
		last := i == len(path)-1
		if last {
			h.AddChild(cur, name, st.elementFor(n, sym))
			return
		}
		cur = st.descendOrPlaceholder(cur, name)
	}
}

// descendOrPlaceholder finds (or creates as a sparse placeholder) the child
// of cur named name.
func (st *builderState) descendOrPlaceholder(cur *Node, name string) *Node {
	h := st.h
	if c, ok := cur.Children.Lookup(name); ok && len(c.Elements) > 0 {
		return h.MustNode(c.Elements[0].Node)
	}
	placeholder := h.NewSparsePlaceholder(name)
	h.AddChild(cur, name, Element{Node: placeholder.ID})
	return placeholder
}

// closeDeadEnds collapses sparse placeholders that never turned out to
// branch: a placeholder materialized while descending one path that ends up
// owning exactly one child (and no symbol of its own) is a dead end, and is
// closed by re-pointing that child directly to the placeholder's own parent
// (spec §4.1 step 6, "closes dead-ends by re-pointing children to their
// observed parent"). It walks bottom-up so a chain of several placeholders
// collapses down to a single edge.
func (st *builderState) closeDeadEnds() {
	h := st.h
	seen := make(map[Identifier]bool)
	var visit func(n *Node)
	visit = func(n *Node) {
		if seen[n.ID] {
			return
		}
		seen[n.ID] = true
		for _, name := range n.Children.Names() {
			c, _ := n.Children.Lookup(name)
			for _, e := range c.Elements {
				visit(h.MustNode(e.Node))
			}
		}
		for _, name := range n.Children.Names() {
			c, _ := n.Children.Lookup(name)
			kept := c.Elements[:0]
			for _, e := range c.Elements {
				child := h.MustNode(e.Node)
				if only, ok := deadEndChild(child); ok {
					grandchild := h.MustNode(only)
					h.Replace(grandchild, n, grandchild.Name)
					continue
				}
				kept = append(kept, e)
			}
			c.Elements = kept
		}
	}
	for _, id := range h.Modules {
		visit(h.MustNode(id))
	}
}

// deadEndChild reports whether n is an unbranching sparse placeholder, and
// if so, the identifier of its single child.
func deadEndChild(n *Node) (Identifier, bool) {
	if n.Kind != KindSparsePlaceholder || n.Symbol != nil {
		return Identifier{}, false
	}
	return singleChild(n)
}

// singleChild reports the lone child of n across all of its name
// containers, if it has exactly one.
func singleChild(n *Node) (Identifier, bool) {
	var found Identifier
	count := 0
	for _, name := range n.Children.Names() {
		c, _ := n.Children.Lookup(name)
		count += len(c.Elements)
		if count > 1 {
			return Identifier{}, false
		}
		if len(c.Elements) == 1 {
			found = c.Elements[0].Node
		}
	}
	if count == 1 {
		return found, true
	}
	return Identifier{}, false
}

// assignIdentifiers performs the step-6 depth-first pass that makes every
// node owning symbol metadata findable, after closeDeadEnds has already
// collapsed placeholder chains.
func (st *builderState) assignIdentifiers() {
	h := st.h
	seen := make(map[Identifier]bool)
	var visit func(n *Node)
	visit = func(n *Node) {
		if seen[n.ID] {
			return
		}
		seen[n.ID] = true
		if n.Symbol != nil {
			h.AssignIdentifier(n)
		}
		for _, name := range n.Children.Names() {
			c, _ := n.Children.Lookup(name)
			for _, e := range c.Elements {
				child := h.MustNode(e.Node)
				visit(child)
			}
		}
	}
	for _, id := range h.Modules {
		visit(h.MustNode(id))
	}
}
