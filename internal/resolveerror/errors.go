// Copyright 2009 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package resolveerror is the ErrorShaper (spec §2, §7): it defines the
// resolver's error taxonomy as pure data, deferring diagnostic rendering
// (source ranges, color, message formatting for a human) to the caller.
package resolveerror

import (
	"fmt"

	"golang.org/x/xerrors"
)

// Kind identifies which row of spec §7's error table an Error reports.
type Kind int

const (
	ModuleNotFound Kind = iota
	NotFound
	UnknownName
	UnknownDisambiguation
	LookupCollision
	UnfindableMatch
	NonSymbolMatchForSymbolLink
)

func (k Kind) String() string {
	switch k {
	case ModuleNotFound:
		return "ModuleNotFound"
	case NotFound:
		return "NotFound"
	case UnknownName:
		return "UnknownName"
	case UnknownDisambiguation:
		return "UnknownDisambiguation"
	case LookupCollision:
		return "LookupCollision"
	case UnfindableMatch:
		return "UnfindableMatch"
	case NonSymbolMatchForSymbolLink:
		return "NonSymbolMatchForSymbolLink"
	default:
		return "UnknownErrorKind"
	}
}

// Range is a column-offset range relative to the raw link string (spec §7:
// "range is relative to the raw link string ... source file mapping is the
// caller's concern").
type Range struct {
	Start, End int
}

// Replacement is one proposed text edit within a Range.
type Replacement struct {
	Range Range
	Text  string
}

// Solution is one suggested fix, carrying the replacements that would
// apply it.
type Solution struct {
	Summary      string
	Replacements []Replacement
}

// Candidate is one still-ambiguous node a LookupCollision or
// UnknownDisambiguation error reports, along with the suffix that would
// select it.
type Candidate struct {
	Name            string
	RequiredSuffix  string
}

// Error is the single concrete type behind every taxonomy row; Kind
// selects which fields are meaningful (spec §7's payload column).
type Error struct {
	Kind Kind

	PathPrefix string
	Remaining  string

	Solutions       []Solution
	RangeAdjustment Range

	// UnknownName, ModuleNotFound: near-misses by edit distance.
	NearMisses []string
	// NotFound: available top-level names.
	AvailableTopLevel []string
	// UnknownDisambiguation, LookupCollision: candidates and the suffix
	// each would need.
	Candidates []Candidate
	// UnfindableMatch, NonSymbolMatchForSymbolLink: the node name matched.
	MatchedName string

	cause error
}

func (e *Error) Error() string {
	switch e.Kind {
	case ModuleNotFound:
		return fmt.Sprintf("no module named %q", e.PathPrefix)
	case NotFound:
		return fmt.Sprintf("nothing resolved for %q", e.PathPrefix)
	case UnknownName:
		return fmt.Sprintf("%q has no child named %q", e.PathPrefix, e.Remaining)
	case UnknownDisambiguation:
		return fmt.Sprintf("%q: no entry matches disambiguation %q", e.PathPrefix, e.Remaining)
	case LookupCollision:
		return fmt.Sprintf("%q is ambiguous; %d candidates", e.PathPrefix, len(e.Candidates))
	case UnfindableMatch:
		return fmt.Sprintf("%q resolved to an unfindable placeholder", e.MatchedName)
	case NonSymbolMatchForSymbolLink:
		return fmt.Sprintf("%q is not a symbol; use a general documentation link", e.MatchedName)
	default:
		return "unknown link resolution error"
	}
}

func (e *Error) Unwrap() error { return e.cause }

// Wrap attaches a lower-level cause to e using golang.org/x/xerrors, so
// callers using errors.Is/errors.As still see through to it.
func (e *Error) Wrap(cause error) *Error {
	e.cause = xerrors.Errorf("%s: %w", e.Kind, cause)
	return e
}

func newNearMiss(kind Kind, pathPrefix, remaining string, nearMisses []string) *Error {
	return &Error{Kind: kind, PathPrefix: pathPrefix, Remaining: remaining, NearMisses: nearMisses}
}

// NewModuleNotFound reports that the first component of an absolute link
// matched no module.
func NewModuleNotFound(pathPrefix, remaining string, nearMisses []string) *Error {
	return newNearMiss(ModuleNotFound, pathPrefix, remaining, nearMisses)
}

// NewNotFound reports that nothing resolved at any root.
func NewNotFound(pathPrefix, remaining string, availableTopLevel []string) *Error {
	return &Error{Kind: NotFound, PathPrefix: pathPrefix, Remaining: remaining, AvailableTopLevel: availableTopLevel}
}

// NewUnknownName reports that descent stopped because the current node has
// no matching child.
func NewUnknownName(pathPrefix, remaining string, nearMisses []string) *Error {
	return newNearMiss(UnknownName, pathPrefix, remaining, nearMisses)
}

// NewUnknownDisambiguation reports a name match whose suffix matched no
// entry.
func NewUnknownDisambiguation(pathPrefix, remaining string, candidates []Candidate) *Error {
	return &Error{Kind: UnknownDisambiguation, PathPrefix: pathPrefix, Remaining: remaining, Candidates: candidates}
}

// NewLookupCollision reports that multiple candidates remained after
// disambiguation.
func NewLookupCollision(pathPrefix string, candidates []Candidate) *Error {
	return &Error{Kind: LookupCollision, PathPrefix: pathPrefix, Candidates: candidates}
}

// NewUnfindableMatch reports a resolution that landed on a sparse
// placeholder.
func NewUnfindableMatch(nodeName string) *Error {
	return &Error{Kind: UnfindableMatch, MatchedName: nodeName}
}

// NewNonSymbolMatchForSymbolLink reports a symbol-only link that matched a
// non-symbol node, with a suggested replacement syntax.
func NewNonSymbolMatchForSymbolLink(matchedPath string, suggestedReplacement string) *Error {
	return &Error{
		Kind:        NonSymbolMatchForSymbolLink,
		MatchedName: matchedPath,
		Solutions: []Solution{{
			Summary: "use a general documentation link instead of a symbol link",
			Replacements: []Replacement{{
				Text: suggestedReplacement,
			}},
		}},
	}
}
