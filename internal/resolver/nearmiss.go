// Copyright 2009 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package resolver

import "golang.org/x/doclink/internal/nearmatch"

// nearMissNames wraps internal/nearmatch for resolveerror's NearMisses
// field, kept as a thin indirection point in case the resolver ever needs
// to restrict the candidate pool before scoring (e.g. case folding).
func nearMissNames(query string, candidates []string) []string {
	return nearmatch.Suggestions(query, candidates)
}
