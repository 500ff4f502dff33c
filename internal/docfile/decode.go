// Copyright 2009 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package docfile

import (
	"fmt"

	"golang.org/x/doclink/internal/hierarchy"
)

// AttachFunc is invoked once per decoded node, in file order, so a caller
// can attach a resolved reference (or any other per-identifier state it
// keeps outside the Hierarchy, e.g. a refintern.Pool entry) once every
// Identifier in the file is valid, per spec §4.6: "a callback invoked at
// construction time lets the caller attach resolved references to each
// identifier."
type AttachFunc func(id hierarchy.Identifier, rec NodeRecord)

// Decode reconstructs a *hierarchy.Hierarchy from f, allocating one node
// per record and rewiring children by index, per spec §4.6. attach may be
// nil.
func Decode(f *File, attach AttachFunc) (*hierarchy.Hierarchy, error) {
	h := hierarchy.New()

	created := make([]*hierarchy.Node, len(f.Nodes))
	for i, rec := range f.Nodes {
		n := h.NewIndexedNode(rec.Name, kindFromString(rec.Kind))
		n.Special = hierarchy.SpecialBehavior(rec.RawSpecialBehavior)
		if rec.SymbolID != "" {
			n.Symbol = &hierarchy.SymbolData{PreciseID: rec.SymbolID}
		}
		if rec.Findable {
			h.AssignIdentifier(n)
		}
		created[i] = n
	}

	for i, rec := range f.Nodes {
		n := created[i]
		for _, group := range rec.Children {
			container := n.Children.Container(group.Name)
			for _, er := range group.Elements {
				if er.NodeIndex < 1 || int(er.NodeIndex) > len(created) {
					return nil, fmt.Errorf("docfile: node %d (%q) references out-of-range child index %d", i+1, rec.Name, er.NodeIndex)
				}
				child := created[er.NodeIndex-1]
				container.Insert(hierarchy.Element{
					Node:           child.ID,
					Kind:           er.Kind,
					Hash:           er.Hash,
					ParameterTypes: er.ParameterTypes,
					ReturnTypes:    er.ReturnTypes,
				})
				child.Parent = n.ID
			}
		}
		if rec.CounterpartIndex != 0 {
			if int(rec.CounterpartIndex) > len(created) {
				return nil, fmt.Errorf("docfile: node %d (%q) has out-of-range counterpart index %d", i+1, rec.Name, rec.CounterpartIndex)
			}
			n.Counterpart = created[rec.CounterpartIndex-1].ID
		}
	}

	for name, idx := range f.Modules {
		h.Modules[name] = h.IdentifierAt(idx)
	}
	h.ArticlesContainer = h.IdentifierAt(f.ArticlesContainer)
	h.TutorialContainer = h.IdentifierAt(f.TutorialContainer)
	h.TutorialOverviewContainer = h.IdentifierAt(f.TutorialOverviewContainer)

	if attach != nil {
		for i, rec := range f.Nodes {
			attach(created[i].ID, rec)
		}
	}
	return h, nil
}
