// Copyright 2009 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package resolver

import (
	"golang.org/x/doclink/internal/hierarchy"
	"golang.org/x/doclink/internal/linkparser"
	"golang.org/x/doclink/internal/resolveerror"
)

// walkUp implements spec §4.4's relative-link fallback: retry descent from
// parent, then each of parent's ancestors in turn, keeping only the first
// (innermost) error encountered since it is the most relevant to report if
// every ancestor fails. At each ancestor, descent is attempted both with the
// full component list and, when the leading component repeats the
// ancestor's own name, with that component already consumed (spec §4.4:
// "both with and without consuming the first path component, to handle the
// case where the path begins with the ancestor's own name").
func (r *Resolver) walkUp(parent hierarchy.Identifier, components []linkparser.PathComponent, onlySymbols bool, raw string) (hierarchy.Identifier, *resolveerror.Error) {
	cur, ok := r.h.Node(parent)
	if !ok {
		return hierarchy.Identifier{}, resolveerror.NewNotFound(raw, "", nil)
	}

	var innermost *resolveerror.Error
	keep := func(rerr *resolveerror.Error) {
		if innermost == nil {
			innermost = rerr
		}
	}

	for cur != nil {
		// Only consuming when something remains after the match: a lone
		// component equal to cur's own name is already covered by the
		// unconsumed attempt below, and blindly consuming it here would
		// silently drop whatever disambiguator it carried.
		if len(components) > 1 && components[0].Name == cur.Name {
			id, rerr := r.descend(cur, components[1:], onlySymbols, raw)
			if rerr == nil {
				return id, nil
			}
			keep(rerr)
		}
		id, rerr := r.descend(cur, components, onlySymbols, raw)
		if rerr == nil {
			return id, nil
		}
		keep(rerr)
		cur = r.h.Parent(cur)
	}
	return hierarchy.Identifier{}, innermost
}
