// Copyright 2009 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package linkparser

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSplitBalancedArgs(t *testing.T) {
	assert.Nil(t, splitBalancedArgs(""))
	assert.Equal(t, []string{"Int"}, splitBalancedArgs("Int"))
	assert.Equal(t, []string{"Int", " String"}, splitBalancedArgs("Int, String"))
	assert.Equal(t, []string{"[Int, Int]", " String"}, splitBalancedArgs("[Int, Int], String"),
		"commas inside a nested bracket group must not split the top-level list")
}

func TestParseTypeSignatureSuffix_NotASignature(t *testing.T) {
	_, _, ok := parseTypeSignatureSuffix("-class")
	assert.False(t, ok)
}

func TestParseTypeSignatureSuffix_EmptyTupleReturn(t *testing.T) {
	sig, rest, ok := parseTypeSignatureSuffix("->()")
	assert.True(t, ok)
	assert.Equal(t, "", rest)
	assert.True(t, sig.hasReturn)
	assert.Equal(t, []string{}, sig.returns)
}
