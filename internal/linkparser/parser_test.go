// Copyright 2009 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package linkparser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse_AbsoluteVsRelative(t *testing.T) {
	cfg := DefaultConfig()

	t.Run("absolute leading slash", func(t *testing.T) {
		got := Parse("/documentation/MyModule/Foo", cfg)
		require.True(t, got.IsAbsolute)
		require.Len(t, got.Components, 3)
		assert.Equal(t, "documentation", got.Components[0].Name)
		assert.Equal(t, "Foo", got.Components[2].Name)
	})

	t.Run("bare documentation prefix is still absolute", func(t *testing.T) {
		got := Parse("documentation/MyModule/Foo", cfg)
		assert.True(t, got.IsAbsolute)
	})

	t.Run("relative link has no documentation prefix", func(t *testing.T) {
		got := Parse("Foo/bar", cfg)
		assert.False(t, got.IsAbsolute)
		require.Len(t, got.Components, 2)
	})

	t.Run("trailing slash drops an empty final component", func(t *testing.T) {
		got := Parse("/documentation/MyModule/", cfg)
		require.Len(t, got.Components, 2)
	})
}

func TestParse_Fragment(t *testing.T) {
	cfg := DefaultConfig()
	got := Parse("/documentation/MyModule/Foo#Discussion", cfg)
	require.True(t, got.IsAbsolute)
	last := got.Components[len(got.Components)-1]
	assert.Equal(t, "Discussion", last.Name)
	assert.Equal(t, DisambiguationKindOnly, last.Disambiguation.Shape)
	assert.Equal(t, AnchorKindID, last.Disambiguation.Kind)
}

func TestParseComponent_KindOnly(t *testing.T) {
	cfg := DefaultConfig()
	c := parseComponent("Foo-class", cfg)
	assert.Equal(t, "Foo", c.Name)
	assert.Equal(t, DisambiguationKindOnly, c.Disambiguation.Shape)
	assert.Equal(t, "class", c.Disambiguation.Kind)
}

func TestParseComponent_HashOnly(t *testing.T) {
	cfg := DefaultConfig()
	c := parseComponent("Foo-a1b2c", cfg)
	assert.Equal(t, "Foo", c.Name)
	assert.Equal(t, DisambiguationHashOnly, c.Disambiguation.Shape)
	assert.Equal(t, "a1b2c", c.Disambiguation.Hash)
}

func TestParseComponent_KindAndHash(t *testing.T) {
	cfg := DefaultConfig()
	c := parseComponent("Foo-class-a1b2c", cfg)
	assert.Equal(t, "Foo", c.Name)
	assert.Equal(t, DisambiguationKindAndHash, c.Disambiguation.Shape)
	assert.Equal(t, "class", c.Disambiguation.Kind)
	assert.Equal(t, "a1b2c", c.Disambiguation.Hash)
}

func TestParseComponent_LanguagePrefixedKind(t *testing.T) {
	cfg := DefaultConfig()
	c := parseComponent("Foo-occ.struct", cfg)
	assert.Equal(t, "Foo", c.Name)
	assert.Equal(t, DisambiguationKindOnly, c.Disambiguation.Shape)
	assert.Equal(t, "struct", c.Disambiguation.Kind)
	assert.Equal(t, "occ", c.Disambiguation.Language)
}

func TestParseComponent_TypeSignature(t *testing.T) {
	cfg := DefaultConfig()

	t.Run("params only", func(t *testing.T) {
		c := parseComponent("doSomething(_:)-(Int, String)", cfg)
		require.Equal(t, DisambiguationTypeSignature, c.Disambiguation.Shape)
		assert.True(t, c.Disambiguation.HasParameterTypes)
		assert.Equal(t, []string{"Int", "String"}, c.Disambiguation.ParameterTypes)
		assert.False(t, c.Disambiguation.HasReturnTypes)
	})

	t.Run("zero arity is explicit empty slice, not unconstrained", func(t *testing.T) {
		c := parseComponent("doSomething()-()", cfg)
		require.Equal(t, DisambiguationTypeSignature, c.Disambiguation.Shape)
		assert.True(t, c.Disambiguation.HasParameterTypes)
		assert.Equal(t, []string{}, c.Disambiguation.ParameterTypes)
	})

	t.Run("params and return", func(t *testing.T) {
		c := parseComponent("doSomething(_:)-(Int)->String", cfg)
		require.Equal(t, DisambiguationTypeSignature, c.Disambiguation.Shape)
		assert.Equal(t, []string{"Int"}, c.Disambiguation.ParameterTypes)
		assert.True(t, c.Disambiguation.HasReturnTypes)
		assert.Equal(t, []string{"String"}, c.Disambiguation.ReturnTypes)
	})

	t.Run("tuple return splits per element", func(t *testing.T) {
		c := parseComponent("doSomething(_:)-(Int)->(String, Bool)", cfg)
		assert.Equal(t, []string{"String", "Bool"}, c.Disambiguation.ReturnTypes)
	})

	t.Run("unbalanced parens falls back to plain name", func(t *testing.T) {
		c := parseComponent("doSomething(_:)-(Int", cfg)
		assert.Equal(t, "doSomething(_:)-(Int", c.Name)
		assert.True(t, c.Disambiguation.IsNone())
	})
}

func TestParseComponent_OperatorName(t *testing.T) {
	cfg := DefaultConfig()
	c := parseComponent("-(_:_:)", cfg)
	assert.Equal(t, "-(_:_:)", c.Name)
	assert.True(t, c.Disambiguation.IsNone())
}

func TestParseComponent_OperatorNameWithKindSuffix(t *testing.T) {
	cfg := DefaultConfig()
	c := parseComponent("-(_:_:)-func.op", cfg)
	assert.Equal(t, "-(_:_:)", c.Name)
	assert.Equal(t, DisambiguationKindOnly, c.Disambiguation.Shape)
	assert.Equal(t, "func.op", c.Disambiguation.Kind)
}

func TestMatchHash_RespectsMaxHashLength(t *testing.T) {
	cfg := Config{MaxHashLength: -1}
	_, ok := matchHash("averylonghashvalue123", cfg)
	assert.True(t, ok, "negative MaxHashLength disables the length bound")

	cfg = DefaultConfig()
	_, ok = matchHash("averylonghashvalue123", cfg)
	assert.False(t, ok, "default config caps hash length at 5")
}
