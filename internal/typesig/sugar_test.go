// Copyright 2009 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package typesig

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestApplySugar(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want string
	}{
		{"array", "Array<Int>", "[Int]"},
		{"optional", "Optional<Int>", "Int?"},
		{"dictionary", "Dictionary<String,Int>", "[String:Int]"},
		{"nested", "Array<Optional<Int>>", "[Int?]"},
		{"unrelated identifier prefix left alone", "MyArray<Int>", "MyArray<Int>"},
		{"no generics", "Int", "Int"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			assert.Equal(t, c.want, ApplySugar(c.in))
		})
	}
}

func TestStripRedundantOuterParens(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want string
	}{
		{"single wrap", "(Int)", "Int"},
		{"double wrap", "((Int))", "Int"},
		{"tuple kept", "(Int, String)", "(Int, String)"},
		{"no wrap", "Int", "Int"},
		{"nested tuple kept", "((Int), String)", "((Int), String)"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			assert.Equal(t, c.want, StripRedundantOuterParens(c.in))
		})
	}
}

func TestStripWhitespace(t *testing.T) {
	assert.Equal(t, "Int", StripWhitespace(" I\tn\nt "))
}

func TestExtractReturnTypes(t *testing.T) {
	frag := func(s string) []Fragment { return []Fragment{{Kind: "typeIdentifier", Spelling: s}} }

	t.Run("void spelling yields empty list", func(t *testing.T) {
		got := ExtractReturnTypes(frag("Void"), "swift", DefaultVoidSpellings)
		assert.Empty(t, got)
	})

	t.Run("tuple return splits on top level comma", func(t *testing.T) {
		got := ExtractReturnTypes(frag("(Int, String)"), "swift", DefaultVoidSpellings)
		assert.Equal(t, []string{"Int", "String"}, got)
	})

	t.Run("single return yields one element list", func(t *testing.T) {
		got := ExtractReturnTypes(frag("Int"), "swift", DefaultVoidSpellings)
		assert.Equal(t, []string{"Int"}, got)
	})

	t.Run("no return fragments at all is not the same as a void spelling", func(t *testing.T) {
		got := ExtractReturnTypes(nil, "swift", DefaultVoidSpellings)
		assert.Equal(t, []string{""}, got, "an absent Returns still produces one uninformative entry, not nil")
	})
}

func TestExtractParameterTypes(t *testing.T) {
	params := []Parameter{
		{Declaration: []Fragment{{Kind: "typeIdentifier", Spelling: "Array<Int>"}}},
		{Declaration: []Fragment{{Kind: "typeIdentifier", Spelling: "String"}}},
	}
	got := ExtractParameterTypes(params, "swift")
	assert.Equal(t, []string{"[Int]", "String"}, got)
}

