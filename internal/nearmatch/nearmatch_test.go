// Copyright 2019 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package nearmatch

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSuggestions_OrdersByDistanceThenOriginalIndex(t *testing.T) {
	// "Foo" and "Fob2" are both one edit away from "Fob"; "Foo" keeps its
	// earlier position in the input slice over the equally-close "Fob2".
	got := Suggestions("Fob", []string{"Zzz", "Foo", "Fob2", "Bar"})
	assert.Equal(t, []string{"Foo", "Fob2", "Zzz"}, got)
}

func TestSuggestions_CapsAtMaxSuggestions(t *testing.T) {
	got := Suggestions("x", []string{"a", "b", "c", "d", "e"})
	assert.Len(t, got, MaxSuggestions)
}

func TestSuggestions_FewerCandidatesThanCapReturnsAll(t *testing.T) {
	got := Suggestions("x", []string{"a", "b"})
	assert.Len(t, got, 2)
}

func TestSuggestions_EmptyCandidatePool(t *testing.T) {
	got := Suggestions("x", nil)
	assert.Empty(t, got)
}

func TestSuggestions_NoDistanceThresholdSoEvenPoorMatchesReturn(t *testing.T) {
	// Unlike a typical fuzzy-matcher, there's no cutoff: with only one
	// candidate available it comes back regardless of how far it is.
	got := Suggestions("Zzz", []string{"Abcdef"})
	assert.Equal(t, []string{"Abcdef"}, got)
}

func TestDistance_UTF8RunesNotBytes(t *testing.T) {
	// "café" vs "cafe": a single rune substitution, not a multi-byte one.
	assert.Equal(t, 1, distance("café", "cafe"))
}

func TestDistance_Symmetric(t *testing.T) {
	assert.Equal(t, distance("kitten", "sitting"), distance("sitting", "kitten"))
}

func TestDistance_EmptyStrings(t *testing.T) {
	assert.Equal(t, 0, distance("", ""))
	assert.Equal(t, 3, distance("", "abc"))
	assert.Equal(t, 3, distance("abc", ""))
}
