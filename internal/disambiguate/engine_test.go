// Copyright 2009 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package disambiguate

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"golang.org/x/doclink/internal/hierarchy"
)

func buildContainer(elems ...hierarchy.Element) *hierarchy.DisambiguationContainer {
	h := hierarchy.New()
	module := h.ModuleNode("M")
	for _, e := range elems {
		n := h.NewIndexedNode("x", hierarchy.KindSymbol)
		h.AssignIdentifier(n)
		e.Node = n.ID
		h.AddChild(module, "sameName", e)
	}
	container, _ := module.Children.Lookup("sameName")
	return container
}

func TestMinimalSuffixes_SingleElementNeedsNone(t *testing.T) {
	c := buildContainer(hierarchy.Element{Kind: "class"})
	suffixes := MinimalSuffixes(c, Options{AllowTypeSignature: true})
	require.Len(t, suffixes, 1)
	for _, sfx := range suffixes {
		assert.Equal(t, ShapeNone, sfx.Shape)
	}
}

func TestMinimalSuffixes_KindAloneDisambiguates(t *testing.T) {
	c := buildContainer(
		hierarchy.Element{Kind: "class", Hash: "h1"},
		hierarchy.Element{Kind: "struct", Hash: "h2"},
	)
	suffixes := MinimalSuffixes(c, Options{AllowTypeSignature: true})
	for _, e := range c.Elements {
		sfx := suffixes[e.Node]
		assert.Equal(t, ShapeKindOnly, sfx.Shape)
		assert.Equal(t, e.Kind, sfx.Kind)
	}
}

func TestMinimalSuffixes_TypeSignatureBreaksOverloadTie(t *testing.T) {
	c := buildContainer(
		hierarchy.Element{Kind: "func", Hash: "h1", ParameterTypes: []string{"Int"}},
		hierarchy.Element{Kind: "func", Hash: "h2", ParameterTypes: []string{"String"}},
	)
	suffixes := MinimalSuffixes(c, Options{AllowTypeSignature: true})
	for _, e := range c.Elements {
		sfx := suffixes[e.Node]
		assert.Equal(t, ShapeTypeSignature, sfx.Shape)
		assert.Equal(t, e.ParameterTypes, sfx.ParameterTypes)
	}
}

func TestMinimalSuffixes_FallsBackToHashWhenTypeSignatureDisallowed(t *testing.T) {
	c := buildContainer(
		hierarchy.Element{Kind: "func", Hash: "h1", ParameterTypes: []string{"Int"}},
		hierarchy.Element{Kind: "func", Hash: "h2", ParameterTypes: []string{"String"}},
	)
	suffixes := MinimalSuffixes(c, Options{AllowTypeSignature: false})
	for _, e := range c.Elements {
		sfx := suffixes[e.Node]
		assert.Equal(t, ShapeHashOnly, sfx.Shape)
		assert.Equal(t, e.Hash, sfx.Hash)
	}
}

func TestMinimalSuffixes_FallsBackToHashWhenNoPositionDisambiguates(t *testing.T) {
	c := buildContainer(
		hierarchy.Element{Kind: "func", Hash: "h1", ParameterTypes: []string{"Int"}},
		hierarchy.Element{Kind: "func", Hash: "h2", ParameterTypes: []string{"Int"}},
	)
	suffixes := MinimalSuffixes(c, Options{AllowTypeSignature: true})
	for _, e := range c.Elements {
		sfx := suffixes[e.Node]
		assert.Equal(t, ShapeHashOnly, sfx.Shape)
	}
}

func TestSuffixRender(t *testing.T) {
	cases := []struct {
		name string
		s    Suffix
		want string
	}{
		{"none", Suffix{Shape: ShapeNone}, ""},
		{"kind only", Suffix{Shape: ShapeKindOnly, Kind: "class"}, "-class"},
		{"kind with language", Suffix{Shape: ShapeKindOnly, Kind: "struct", Language: "occ"}, "-occ.struct"},
		{"hash only", Suffix{Shape: ShapeHashOnly, Hash: "a1b2c"}, "-a1b2c"},
		{"kind and hash", Suffix{Shape: ShapeKindAndHash, Kind: "class", Hash: "a1b2c"}, "-class-a1b2c"},
		{"type signature params only", Suffix{Shape: ShapeTypeSignature, ParameterTypes: []string{"Int", "String"}}, "-(Int, String)"},
		{
			"type signature with return",
			Suffix{Shape: ShapeTypeSignature, ParameterTypes: []string{"Int"}, ReturnTypes: []string{"String"}},
			"-(Int)->String",
		},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			assert.Equal(t, c.want, c.s.Render())
		})
	}
}

func TestBitsetAndFallbackAgreeOnMinimization(t *testing.T) {
	// 65 overloads forces the O(n*m) fallback path (spec boundary: the fast
	// path only applies to <=64 overloads); every overload still gets a
	// unique first parameter type, so every one must resolve. On the first
	// 64 overloads both paths apply and must choose the same suffixes.
	elems := make([]hierarchy.Element, 65)
	for i := range elems {
		elems[i] = hierarchy.Element{
			Kind:           "func",
			Hash:           "h",
			ParameterTypes: []string{string(rune('a' + i%26)) + string(rune('A'+i/26))},
		}
	}
	c := buildContainer(elems...)
	suffixes := MinimalSuffixes(c, Options{AllowTypeSignature: true})
	require.Len(t, suffixes, 65)
	for _, e := range c.Elements {
		assert.Equal(t, ShapeTypeSignature, suffixes[e.Node].Shape)
	}

	small := make([]overload, 64)
	for i, e := range c.Elements[:64] {
		small[i] = overload{id: e.Node, elem: e, positions: e.ParameterTypes, nParams: len(e.ParameterTypes)}
	}
	fast, fastUnresolved := bitsetMinimize(small)
	slow, slowUnresolved := fallbackMinimize(small)
	assert.Empty(t, fastUnresolved)
	assert.Empty(t, slowUnresolved)
	assert.Equal(t, slow, fast)
}
