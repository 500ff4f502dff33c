// Copyright 2009 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package refintern

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPool_InternReturnsSharedPointerForEqualTuples(t *testing.T) {
	p := NewPool()
	a := p.Intern("com.example.MyModule", "/documentation/MyModule/Foo", "", []string{"swift"})
	b := p.Intern("com.example.MyModule", "/documentation/MyModule/Foo", "", []string{"swift"})
	assert.Same(t, a, b)
	assert.Equal(t, 1, p.Len())
}

func TestPool_SourceLanguageOrderDoesNotAffectIdentity(t *testing.T) {
	p := NewPool()
	a := p.Intern("com.example.MyModule", "/documentation/MyModule/Foo", "", []string{"swift", "occ"})
	b := p.Intern("com.example.MyModule", "/documentation/MyModule/Foo", "", []string{"occ", "swift"})
	assert.Same(t, a, b, "source languages are sorted before keying, so order shouldn't create a distinct entry")
}

func TestPool_DistinctFragmentsInternSeparately(t *testing.T) {
	p := NewPool()
	a := p.Intern("com.example.MyModule", "/documentation/MyModule/Foo", "", nil)
	b := p.Intern("com.example.MyModule", "/documentation/MyModule/Foo", "discussion", nil)
	assert.NotSame(t, a, b)
	assert.Equal(t, 2, p.Len())
}

func TestPool_ConcurrentInternIsSafe(t *testing.T) {
	p := NewPool()
	var wg sync.WaitGroup
	results := make([]*Reference, 100)
	for i := 0; i < 100; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i] = p.Intern("com.example.MyModule", "/documentation/MyModule/Foo", "", []string{"swift"})
		}(i)
	}
	wg.Wait()
	assert.Equal(t, 1, p.Len())
	for _, r := range results {
		assert.Same(t, results[0], r)
	}
}
