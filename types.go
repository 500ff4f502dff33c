// Copyright 2009 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package doclink is the facade collaborators use: it builds a hierarchy
// from a symbol graph, resolves authored links against it, and computes
// canonical disambiguated paths, per spec §6's external interfaces.
//
// Symbol-graph ingestion, markup parsing, and diagnostic rendering are
// external collaborator concerns (spec §1); this package only declares the
// shapes those collaborators hand in.
package doclink

import (
	"golang.org/x/doclink/internal/hierarchy"
	"golang.org/x/doclink/internal/refintern"
)

// Symbol, Relationship, SymbolGraph, and PathComponentOverride are the
// symbol-graph shapes the hierarchy builder consumes (spec §6 "Inputs
// consumed from collaborators"); they are defined in internal/hierarchy
// and re-exported here since that is the boundary collaborators see.
type (
	Symbol                = hierarchy.Symbol
	Relationship          = hierarchy.Relationship
	SymbolGraph           = hierarchy.SymbolGraph
	PathComponentOverride = hierarchy.PathComponentOverride
)

// Identifier is the opaque handle collaborators thread through resolve and
// reference_of calls.
type Identifier = hierarchy.Identifier

// Reference is the externally visible address a resolved Identifier maps
// to (spec §6 "Outputs exposed to collaborators").
type Reference = refintern.Reference

// Bundle is the per-documentation-bundle metadata collaborators register,
// spec §6: "{id, display_name, articles_root, tutorials_root,
// tutorial_toc_root, documentation_root}".
type Bundle struct {
	ID                string
	DisplayName       string
	ArticlesRoot      string
	TutorialsRoot     string
	TutorialTOCRoot   string
	DocumentationRoot string
}

// AnchorSection is one landmark/anchor collaborators attach to an existing
// reference, spec §6: "[{parent_reference, fragment_title}]".
type AnchorSection struct {
	ParentReference Reference
	FragmentTitle   string
}

// KnownDisambiguatedPathComponents is the optional override map spec §6
// lists: "map<precise_id, [path_components]>".
type KnownDisambiguatedPathComponents = map[string][]PathComponentOverride

// ExternalResolver is the pluggable dispatch target for links whose bundle
// this Core does not own, per Design Note §9 "dynamic dispatch for
// external resolvers".
type ExternalResolver interface {
	Resolve(unresolved string, sourceLanguage string) (Reference, error)
}

// ResolutionResult is the outcome of Resolve: either a local Identifier, or
// (when the link's bundle is owned by a registered ExternalResolver
// instead of this Core) an externally supplied Reference.
type ResolutionResult struct {
	Identifier Identifier
	External   *Reference
}

// IsExternal reports whether r was satisfied by an ExternalResolver rather
// than this Core's own hierarchy.
func (r ResolutionResult) IsExternal() bool { return r.External != nil }
