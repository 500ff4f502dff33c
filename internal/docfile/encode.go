// Copyright 2009 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package docfile

import "golang.org/x/doclink/internal/hierarchy"

// Encode serializes h into a File. nonSymbolPaths and summaries are the
// side maps spec §4.6 describes; either may be nil.
func Encode(h *hierarchy.Hierarchy, nonSymbolPaths map[hierarchy.Identifier]string, summaries map[hierarchy.Identifier]EntitySummary) *File {
	nodes := h.AllNodes()

	f := &File{
		Version: CurrentVersion,
		Nodes:   make([]NodeRecord, len(nodes)),
		Modules: make(map[string]int32, len(h.Modules)),
	}

	for i, n := range nodes {
		rec := NodeRecord{
			Name:               n.Name,
			Kind:               kindToString(n.Kind),
			RawSpecialBehavior: uint8(n.Special),
			Findable:           n.HasIdentifier,
		}
		if n.Symbol != nil {
			rec.SymbolID = n.Symbol.PreciseID
		}
		if !n.Counterpart.IsZero() {
			rec.CounterpartIndex = h.IndexOf(n.Counterpart)
		}
		for _, name := range n.Children.Names() {
			container, _ := n.Children.Lookup(name)
			group := ChildGroup{Name: name, Elements: make([]ChildRef, len(container.Elements))}
			for j, e := range container.Elements {
				group.Elements[j] = ChildRef{
					Kind:           e.Kind,
					Hash:           e.Hash,
					ParameterTypes: e.ParameterTypes,
					ReturnTypes:    e.ReturnTypes,
					NodeIndex:      h.IndexOf(e.Node),
				}
			}
			rec.Children = append(rec.Children, group)
		}
		f.Nodes[i] = rec
	}

	for name, id := range h.Modules {
		f.Modules[name] = h.IndexOf(id)
	}
	f.ArticlesContainer = h.IndexOf(h.ArticlesContainer)
	f.TutorialContainer = h.IndexOf(h.TutorialContainer)
	f.TutorialOverviewContainer = h.IndexOf(h.TutorialOverviewContainer)

	if len(nonSymbolPaths) > 0 {
		f.NonSymbolPaths = make(map[int32]string, len(nonSymbolPaths))
		for id, path := range nonSymbolPaths {
			f.NonSymbolPaths[h.IndexOf(id)] = path
		}
	}
	if len(summaries) > 0 {
		f.EntitySummaries = make(map[int32]EntitySummary, len(summaries))
		for id, s := range summaries {
			f.EntitySummaries[h.IndexOf(id)] = s
		}
	}
	return f
}
