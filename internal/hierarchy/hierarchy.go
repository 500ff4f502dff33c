// Copyright 2009 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package hierarchy

// Hierarchy owns every Node reachable from its module roots plus the three
// synthetic non-symbol roots (articles, tutorials, tutorial overviews). It
// is built once (see Build in builder.go) and is safe for unsynchronized
// concurrent reads thereafter (spec §5).
type Hierarchy struct {
	arena []*Node // arena[0] is an unused sentinel so the zero Identifier is invalid

	Modules                   map[string]Identifier
	ArticlesContainer         Identifier
	TutorialContainer         Identifier
	TutorialOverviewContainer Identifier

	lookup map[Identifier]struct{}

	bySymbolID map[string]Identifier // precise id -> first-seen node, for counterpart reuse
}

// New returns an empty Hierarchy ready for Build (or a decoder) to populate.
func New() *Hierarchy {
	h := &Hierarchy{
		arena:      make([]*Node, 1, 64),
		Modules:    make(map[string]Identifier),
		lookup:     make(map[Identifier]struct{}),
		bySymbolID: make(map[string]Identifier),
	}
	return h
}

// newRawNode allocates a node in the arena without assigning it a findable
// Identifier; HasIdentifier stays false until AssignIdentifier is called.
func (h *Hierarchy) newRawNode(name string, kind NodeKind) *Node {
	idx := int32(len(h.arena))
	n := newNode(Identifier{idx: idx}, name, kind)
	h.arena = append(h.arena, n)
	return n
}

// AssignIdentifier marks n findable and records it in the lookup table, per
// spec §4.1 step 6 and invariant (1). It is idempotent.
func (h *Hierarchy) AssignIdentifier(n *Node) Identifier {
	if !n.HasIdentifier {
		n.HasIdentifier = true
		h.lookup[n.ID] = struct{}{}
	}
	return n.ID
}

// Node resolves id to its Node. ok is false for the zero Identifier or one
// from a different Hierarchy.
func (h *Hierarchy) Node(id Identifier) (*Node, bool) {
	if id.idx <= 0 || int(id.idx) >= len(h.arena) {
		return nil, false
	}
	return h.arena[id.idx], true
}

// MustNode is Node but panics on a bad Identifier; used internally once an
// Identifier is already known to have come from this Hierarchy.
func (h *Hierarchy) MustNode(id Identifier) *Node {
	n, ok := h.Node(id)
	if !ok {
		panic("hierarchy: invalid Identifier")
	}
	return n
}

// IsFindable reports whether id is present in h's lookup table (invariant
// (1)): a node with a non-zero-value identifier that AssignIdentifier has
// been called for.
func (h *Hierarchy) IsFindable(id Identifier) bool {
	_, ok := h.lookup[id]
	return ok
}

// Findable returns every Identifier currently in the lookup table. The
// order is unspecified; callers that need determinism must sort.
func (h *Hierarchy) Findable() []Identifier {
	out := make([]Identifier, 0, len(h.lookup))
	for id := range h.lookup {
		out = append(out, id)
	}
	return out
}

// Parent returns n's parent Node, or nil if n has no parent (it is a module root).
func (h *Hierarchy) Parent(n *Node) *Node {
	if n.Parent.IsZero() {
		return nil
	}
	p, ok := h.Node(n.Parent)
	if !ok {
		return nil
	}
	return p
}

// Counterpart returns n's cross-language counterpart, or nil.
func (h *Hierarchy) Counterpart(n *Node) *Node {
	if n.Counterpart.IsZero() {
		return nil
	}
	c, ok := h.Node(n.Counterpart)
	if !ok {
		return nil
	}
	return c
}

// SetCounterparts links a and b mutually (invariant (4)).
func (h *Hierarchy) SetCounterparts(a, b *Node) {
	a.Counterpart = b.ID
	b.Counterpart = a.ID
}

// AddChild inserts elem naming child under parent's ChildMap container for
// name. If an element with the same disambiguation key already exists, the
// two nodes are merged per spec §4.1 "insertion rules" (lhs, the existing
// node, wins for conflicting grandchildren) and the surviving Identifier is
// returned with merged=true.
func (h *Hierarchy) AddChild(parent *Node, name string, elem Element) (survivor Identifier, merged bool) {
	child, ok := h.Node(elem.Node)
	if !ok {
		panic("hierarchy: AddChild given an element from a foreign node")
	}
	container := parent.Children.Container(name)
	existing, collided := container.Insert(elem)
	if !collided {
		child.Parent = parent.ID
		return elem.Node, false
	}
	lhs := h.MustNode(existing.Node)
	h.mergeInto(lhs, child)
	return lhs.ID, true
}

// mergeInto folds rhs into lhs: rhs's children are merged into lhs's
// (lhs winning ties) and rhs's own identifier is retired. Container
// entries elsewhere in the tree that point at rhs are not rewritten; the
// AddChild collision path never inserts rhs into a container, so the merge
// itself creates none. lhs's parent is left untouched; rhs's subtree is
// now unreachable except through lhs.
func (h *Hierarchy) mergeInto(lhs, rhs *Node) {
	if lhs == rhs {
		return
	}
	for _, name := range rhs.Children.Names() {
		rc, _ := rhs.Children.Lookup(name)
		for _, e := range rc.Elements {
			grandchild := h.MustNode(e.Node)
			grandchild.Parent = lhs.ID
			lc := lhs.Children.Container(name)
			if existingElem, collided := lc.Insert(e); collided {
				h.mergeInto(h.MustNode(existingElem.Node), grandchild)
			}
		}
	}
	if rhs.HasIdentifier {
		h.AssignIdentifier(lhs)
		delete(h.lookup, rhs.ID)
	}
	if lhs.Symbol == nil && rhs.Symbol != nil {
		lhs.Symbol = rhs.Symbol
	}
	if !rhs.Counterpart.IsZero() {
		cp := h.MustNode(rhs.Counterpart)
		h.SetCounterparts(lhs, cp)
	}
	rhs.Special |= lhs.Special
	lhs.Special = rhs.Special
}

// ModuleNode returns (creating if necessary) the module-kind root node
// named name.
func (h *Hierarchy) ModuleNode(name string) *Node {
	if id, ok := h.Modules[name]; ok {
		return h.MustNode(id)
	}
	n := h.newRawNode(name, KindSymbol)
	n.Symbol = &SymbolData{KindID: "module", InterfaceLanguage: "swift"}
	h.AssignIdentifier(n)
	h.Modules[name] = n.ID
	return n
}

// EnsureSyntheticRoots creates the three non-symbol roots if absent, per
// spec §4.1 step 7. If a module named bundleName already exists, the
// articles container aliases it rather than duplicating a root, matching
// "may alias the bundle-name module if one exists" in spec §4.1.
func (h *Hierarchy) EnsureSyntheticRoots(bundleName string) {
	if h.ArticlesContainer.IsZero() {
		if id, ok := h.Modules[bundleName]; ok {
			h.ArticlesContainer = id
		} else {
			n := h.newRawNode(bundleName, KindArticle)
			h.AssignIdentifier(n)
			h.ArticlesContainer = n.ID
		}
	}
	if h.TutorialContainer.IsZero() {
		n := h.newRawNode("tutorials", KindTutorial)
		h.AssignIdentifier(n)
		h.TutorialContainer = n.ID
	}
	if h.TutorialOverviewContainer.IsZero() {
		n := h.newRawNode("tutorials", KindTutorial)
		h.AssignIdentifier(n)
		h.TutorialOverviewContainer = n.ID
	}
}

// NewSparsePlaceholder allocates and registers (findable=false) a
// placeholder node, per spec §4.1 step 3 and §3 "sparse placeholder".
func (h *Hierarchy) NewSparsePlaceholder(name string) *Node {
	n := h.newRawNode(name, KindSparsePlaceholder)
	n.Special |= DisfavorInCollision
	return n
}

// NewNode allocates a findable node of the given kind and name, e.g. for
// articles, tutorials, landmarks, and task groups appended after the
// initial symbol-graph build (spec §3 "Lifecycle" (a)).
func (h *Hierarchy) NewNode(name string, kind NodeKind) *Node {
	n := h.newRawNode(name, kind)
	h.AssignIdentifier(n)
	return n
}

// NewSymbolNode allocates a node for a symbol-graph symbol without yet
// assigning it an Identifier (that happens in the builder's depth-first
// identifier-assignment pass, spec §4.1 step 6).
func (h *Hierarchy) NewSymbolNode(name string, data *SymbolData) *Node {
	n := h.newRawNode(name, KindSymbol)
	n.Symbol = data
	return n
}

// RemoveBundle clears findability for every node whose symbol belongs to
// bundleID-owned modules without restructuring the tree, per spec §3
// Lifecycle (b). owns reports whether a module name belongs to the bundle
// being removed.
func (h *Hierarchy) RemoveBundle(owns func(moduleName string) bool) {
	for name, id := range h.Modules {
		if !owns(name) {
			continue
		}
		h.removeSubtree(h.MustNode(id))
	}
}

func (h *Hierarchy) removeSubtree(n *Node) {
	delete(h.lookup, n.ID)
	for _, name := range n.Children.Names() {
		c, _ := n.Children.Lookup(name)
		for _, e := range c.Elements {
			h.removeSubtree(h.MustNode(e.Node))
		}
	}
}

// IndexOf returns id's stable arena index as a small integer, for a
// serialization format (internal/docfile) that needs one. The sentinel
// index 0 corresponds to the zero Identifier.
func (h *Hierarchy) IndexOf(id Identifier) int32 { return id.idx }

// IdentifierAt is the inverse of IndexOf: it resolves a previously reported
// arena index back into an Identifier, for decoding a serialized file
// representation.
func (h *Hierarchy) IdentifierAt(idx int32) Identifier { return Identifier{idx: idx} }

// NewIndexedNode allocates a node without going through the usual builder
// path, for internal/docfile's decoder: callers must allocate nodes in
// increasing order matching a serialized node list so the resulting
// Identifier indices line up with that file's node_index values.
func (h *Hierarchy) NewIndexedNode(name string, kind NodeKind) *Node {
	return h.newRawNode(name, kind)
}

// AllNodes returns every node currently in the arena, findable or not, in
// arena order — the order internal/docfile's encoder serializes them in.
func (h *Hierarchy) AllNodes() []*Node {
	out := make([]*Node, len(h.arena)-1)
	copy(out, h.arena[1:])
	return out
}

// Replace reassigns node's parent to newParent under newName, preserving
// node's own Identifier and children, per spec §3 Lifecycle (c) ("the
// 'replace' operation on the bidirectional tree preserves edges").
func (h *Hierarchy) Replace(node, newParent *Node, newName string) {
	elem := Element{Node: node.ID}
	if node.Symbol != nil {
		elem.Kind = node.Symbol.KindID
		elem.ParameterTypes = node.Symbol.ParameterTypes
		elem.ReturnTypes = node.Symbol.ReturnTypes
	}
	if oldParent := h.Parent(node); oldParent != nil {
		if c, ok := oldParent.Children.Lookup(node.Name); ok {
			kept := c.Elements[:0]
			for _, e := range c.Elements {
				if e.Node != node.ID {
					kept = append(kept, e)
				} else {
					elem = e // keep the existing disambiguation key, hash included
				}
			}
			c.Elements = kept
		}
	}
	node.Name = newName
	h.AddChild(newParent, newName, elem)
}
