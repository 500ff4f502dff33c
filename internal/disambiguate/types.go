// Copyright 2009 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package disambiguate implements the minimal-disambiguation engine (spec
// §4.5): for every DisambiguationContainer in a hierarchy, it finds the
// shortest suffix — kind, type signature, or hash, tried in that order —
// that uniquely addresses each element.
package disambiguate

import (
	"strings"

	"golang.org/x/doclink/internal/hierarchy"
)

// Shape mirrors linkparser.DisambiguationKind without importing that
// package, since a Suffix is produced here and only later rendered into
// link syntax by the facade.
type Shape int

const (
	ShapeNone Shape = iota
	ShapeKindOnly
	ShapeHashOnly
	ShapeKindAndHash
	ShapeTypeSignature
)

// Suffix is the minimal disambiguator computed for one DisambiguationContainer element.
type Suffix struct {
	Shape Shape

	Kind     string
	Language string
	Hash     string

	// ParameterTypes/ReturnTypes are set only for ShapeTypeSignature, with
	// unused positions rendered as "_" per spec §6.
	ParameterTypes []string
	ReturnTypes    []string
}

// Render spells s in the link-suffix syntax spec §6 defines: "-kind",
// "-hash", "-(paramtypes)", "->returntype", or the combined forms
// "-kind-hash" and "-(params)->return".
func (s Suffix) Render() string {
	switch s.Shape {
	case ShapeNone:
		return ""
	case ShapeKindOnly:
		if s.Language != "" {
			return "-" + s.Language + "." + s.Kind
		}
		return "-" + s.Kind
	case ShapeHashOnly:
		return "-" + s.Hash
	case ShapeKindAndHash:
		return "-" + s.Kind + "-" + s.Hash
	case ShapeTypeSignature:
		var b strings.Builder
		b.WriteString("-(")
		b.WriteString(strings.Join(s.ParameterTypes, ", "))
		b.WriteByte(')')
		if len(s.ReturnTypes) > 0 {
			b.WriteString("->")
			b.WriteString(strings.Join(s.ReturnTypes, ", "))
		}
		return b.String()
	default:
		return ""
	}
}

// Options configures the engine per spec §6's
// disambiguated_paths(case_sensitive, include_language, allow_type_signature).
type Options struct {
	// IncludeLanguage prefixes a kind-only suffix with its interface
	// language even when the bare kind id would already be unique.
	IncludeLanguage bool
	// AllowTypeSignature permits the type-signature strategy; when false,
	// the engine falls straight from kind to hash.
	AllowTypeSignature bool
}

// overload is the engine's working view of one DisambiguationContainer
// element, with its combined parameter+return position list precomputed.
type overload struct {
	id        hierarchy.Identifier
	elem      hierarchy.Element
	positions []string
	nParams   int
}
