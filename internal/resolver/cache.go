// Copyright 2009 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package resolver

import (
	"sync"

	"golang.org/x/doclink/internal/hierarchy"
	"golang.org/x/doclink/internal/resolveerror"
)

type cacheKey struct {
	parent      hierarchy.Identifier
	raw         string
	onlySymbols bool
}

type cacheEntry struct {
	id  hierarchy.Identifier
	err *resolveerror.Error
}

// Cache memoizes resolution results keyed by (parent, raw link, only_symbols),
// per spec §5: "resolution results may be cached per parent identifier; the
// cache must be invalidated whenever the owning bundle is unregistered."
type Cache struct {
	mu      sync.Mutex
	entries map[cacheKey]cacheEntry
}

// NewCache returns an empty Cache.
func NewCache() *Cache {
	return &Cache{entries: make(map[cacheKey]cacheEntry)}
}

// Lookup reports whether a memoized answer exists for this key; hit is
// false if nothing was cached, in which case id and err are meaningless.
func (c *Cache) Lookup(parent hierarchy.Identifier, raw string, onlySymbols bool) (id hierarchy.Identifier, err *resolveerror.Error, hit bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	e, found := c.entries[cacheKey{parent, raw, onlySymbols}]
	return e.id, e.err, found
}

// Store memoizes a resolution outcome, success or failure.
func (c *Cache) Store(parent hierarchy.Identifier, raw string, onlySymbols bool, id hierarchy.Identifier, err *resolveerror.Error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[cacheKey{parent, raw, onlySymbols}] = cacheEntry{id: id, err: err}
}

// InvalidateParent drops every cached entry keyed to parent, e.g. when the
// node itself is removed by a bundle unregistration.
func (c *Cache) InvalidateParent(parent hierarchy.Identifier) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for k := range c.entries {
		if k.parent == parent {
			delete(c.entries, k)
		}
	}
}

// InvalidateAll drops every cached entry, used when a bundle unregistration
// may have touched resolution outcomes anywhere in the hierarchy.
func (c *Cache) InvalidateAll() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries = make(map[cacheKey]cacheEntry)
}
