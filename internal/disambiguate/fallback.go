// Copyright 2009 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package disambiguate

import "golang.org/x/doclink/internal/hierarchy"

// fallbackMinimize implements spec §4.5's fallback path (">64 overloads or
// positions"): for each overload, find any single position whose type name
// does not appear at that position in any other overload. This is O(n·m)
// and, per spec, "sufficient for the vanishingly rare cases where the fast
// path cannot apply".
func fallbackMinimize(overloads []overload) (resolved map[hierarchy.Identifier]Suffix, unresolved []hierarchy.Element) {
	resolved = make(map[hierarchy.Identifier]Suffix, len(overloads))
	maxLen := 0
	for _, ov := range overloads {
		if len(ov.positions) > maxLen {
			maxLen = len(ov.positions)
		}
	}

	for i, ov := range overloads {
		found := -1
		for p := 0; p < len(ov.positions); p++ {
			if positionUniqueTo(overloads, i, p) {
				found = p
				break
			}
		}
		if found < 0 {
			unresolved = append(unresolved, ov.elem)
			continue
		}
		resolved[ov.id] = render(ov, []int{found})
	}
	return resolved, unresolved
}

func positionUniqueTo(overloads []overload, self, p int) bool {
	v := valueAt(overloads[self].positions, p)
	for j, other := range overloads {
		if j == self {
			continue
		}
		if valueAt(other.positions, p) == v {
			return false
		}
	}
	return true
}
