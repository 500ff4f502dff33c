// Copyright 2009 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package resolveerror

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKind_String(t *testing.T) {
	cases := []struct {
		k    Kind
		want string
	}{
		{ModuleNotFound, "ModuleNotFound"},
		{NotFound, "NotFound"},
		{UnknownName, "UnknownName"},
		{UnknownDisambiguation, "UnknownDisambiguation"},
		{LookupCollision, "LookupCollision"},
		{UnfindableMatch, "UnfindableMatch"},
		{NonSymbolMatchForSymbolLink, "NonSymbolMatchForSymbolLink"},
		{Kind(99), "UnknownErrorKind"},
	}
	for _, c := range cases {
		t.Run(c.want, func(t *testing.T) {
			assert.Equal(t, c.want, c.k.String())
		})
	}
}

func TestNewModuleNotFound(t *testing.T) {
	e := NewModuleNotFound("/documentation/Nope", "Nope", []string{"Nope2"})
	assert.Equal(t, ModuleNotFound, e.Kind)
	assert.Equal(t, []string{"Nope2"}, e.NearMisses)
	assert.Contains(t, e.Error(), "Nope")
}

func TestNewUnknownName(t *testing.T) {
	e := NewUnknownName("/documentation/M/Foo", "Ba", []string{"Bar"})
	assert.Equal(t, UnknownName, e.Kind)
	assert.Equal(t, "Bar", e.NearMisses[0])
	assert.Contains(t, e.Error(), "Ba")
}

func TestNewLookupCollision(t *testing.T) {
	cands := []Candidate{{Name: "bar", RequiredSuffix: "-(Int)"}, {Name: "bar", RequiredSuffix: "-(String)"}}
	e := NewLookupCollision("/documentation/M/Foo/bar", cands)
	assert.Equal(t, LookupCollision, e.Kind)
	require.Len(t, e.Candidates, 2)
	assert.Contains(t, e.Error(), "2 candidates")
}

func TestNewUnfindableMatch(t *testing.T) {
	e := NewUnfindableMatch("Foo")
	assert.Equal(t, UnfindableMatch, e.Kind)
	assert.Equal(t, "Foo", e.MatchedName)
	assert.Contains(t, e.Error(), "unfindable placeholder")
}

func TestNewNonSymbolMatchForSymbolLink(t *testing.T) {
	e := NewNonSymbolMatchForSymbolLink("Foo", "<doc:Foo>")
	assert.Equal(t, NonSymbolMatchForSymbolLink, e.Kind)
	require.Len(t, e.Solutions, 1)
	assert.Equal(t, "<doc:Foo>", e.Solutions[0].Replacements[0].Text)
}

func TestWrap_UnwrapsToCause(t *testing.T) {
	cause := errors.New("boom")
	e := NewModuleNotFound("/documentation/Nope", "Nope", nil).Wrap(cause)
	assert.True(t, errors.Is(e, cause))
}
