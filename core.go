// Copyright 2009 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package doclink

import (
	"sync"

	"go.uber.org/zap"

	"golang.org/x/doclink/internal/hierarchy"
	"golang.org/x/doclink/internal/linkparser"
	"golang.org/x/doclink/internal/refintern"
	"golang.org/x/doclink/internal/resolver"
)

// Core is the facade over one built Hierarchy: it owns the resolver, the
// reference intern pool, and the bundle/external-resolver registries that
// sit outside the hierarchy proper.
//
// Per Design Note §9 ("global state"), the Reference intern pool is a
// field on Core rather than a package-level global, so independent tests
// construct independent Cores with no shared state between them.
type Core struct {
	h        *hierarchy.Hierarchy
	resolver *resolver.Resolver
	pool     *refintern.Pool
	cfg      linkparser.Config
	log      *zap.Logger

	mu           sync.RWMutex
	bundles      map[string]Bundle
	moduleBundle map[string]string
	externalByID map[string]ExternalResolver
	refToID      map[string]hierarchy.Identifier
}

// New wraps an already-built Hierarchy in a Core, ready to serve resolve,
// reference_of, and the other facade operations.
func New(h *hierarchy.Hierarchy, cfg linkparser.Config, log *zap.Logger) *Core {
	if log == nil {
		log = zap.NewNop()
	}
	return &Core{
		h:            h,
		resolver:     resolver.New(h, cfg),
		pool:         refintern.NewPool(),
		cfg:          cfg,
		log:          log,
		bundles:      make(map[string]Bundle),
		moduleBundle: make(map[string]string),
		externalByID: make(map[string]ExternalResolver),
		refToID:      make(map[string]hierarchy.Identifier),
	}
}

// Build runs the hierarchy builder (spec §4.1) over graphs and wraps the
// result in a new Core.
func Build(graphs map[string]*SymbolGraph, opts hierarchy.BuildOptions, cfg linkparser.Config, log *zap.Logger) *Core {
	h := hierarchy.Build(graphs, opts)
	return New(h, cfg, log)
}

// RegisterBundle records b's roots and associates its owned module names,
// so reference_of and disambiguated_paths can map a node back to the
// bundle id that owns it.
func (c *Core) RegisterBundle(b Bundle, moduleNames ...string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.bundles[b.ID] = b
	for _, m := range moduleNames {
		c.moduleBundle[m] = b.ID
	}
	c.h.EnsureSyntheticRoots(b.DisplayName)
}

// RegisterExternalResolver installs r as the fallback for links whose
// bundle id is bundleID but which this Core does not itself own (Design
// Note §9 "dynamic dispatch for external resolvers").
func (c *Core) RegisterExternalResolver(bundleID string, r ExternalResolver) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.externalByID[bundleID] = r
}

// UnregisterBundle clears findability for every node owned by bundleID
// (spec §3 Lifecycle (b)) and drops its resolver cache entries and
// registry rows.
func (c *Core) UnregisterBundle(bundleID string) {
	c.mu.Lock()
	owned := map[string]bool{}
	for module, owner := range c.moduleBundle {
		if owner == bundleID {
			owned[module] = true
			delete(c.moduleBundle, module)
		}
	}
	delete(c.bundles, bundleID)
	delete(c.externalByID, bundleID)
	c.mu.Unlock()

	c.h.RemoveBundle(func(moduleName string) bool { return owned[moduleName] })
	c.resolver.Cache().InvalidateAll()
	c.log.Info("unregistered bundle", zap.String("bundle_id", bundleID))
}

func (c *Core) externalResolverFor(bundleID string) (ExternalResolver, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	r, ok := c.externalByID[bundleID]
	return r, ok
}

func (c *Core) bundleIDForModule(module string) string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.moduleBundle[module]
}

// IdentifierAt addresses node idx in the decoded hierarchy's arena. It
// exists for callers (such as the CLI) that accept a raw node index as a
// --parent flag and need to turn it into an Identifier before calling
// Resolve.
func (c *Core) IdentifierAt(idx int32) Identifier {
	return c.h.IdentifierAt(idx)
}
