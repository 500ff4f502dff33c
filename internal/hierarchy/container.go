// Copyright 2009 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package hierarchy

import "strings"

// Element is one entry in a DisambiguationContainer: a node plus the key
// under which it is disambiguated from its same-named siblings.
type Element struct {
	Node           Identifier
	Kind           string
	Hash           string
	ParameterTypes []string
	ReturnTypes    []string
}

// key returns the tuple spec §3 invariant (5) forbids duplicating within one
// container.
func (e Element) key() string {
	var b strings.Builder
	b.WriteString(e.Kind)
	b.WriteByte('\x00')
	b.WriteString(e.Hash)
	b.WriteByte('\x00')
	for _, p := range e.ParameterTypes {
		b.WriteString(p)
		b.WriteByte('\x01')
	}
	b.WriteByte('\x00')
	for _, r := range e.ReturnTypes {
		b.WriteString(r)
		b.WriteByte('\x01')
	}
	return b.String()
}

// DisambiguationContainer holds every entity that shares one child name
// under a single parent node. It is the sole site where disambiguation
// suffixes are interpreted (spec §3).
type DisambiguationContainer struct {
	Name     string
	Elements []Element // insertion order, per spec §5 ordering guarantee

	byKey map[string]int // key() -> index into Elements
}

func newDisambiguationContainer(name string) *DisambiguationContainer {
	return &DisambiguationContainer{Name: name, byKey: make(map[string]int)}
}

// Insert adds elem to the container. It returns the existing element and
// true if an element with the same key was already present (a merge
// candidate per spec §4.1 "insertion rules"), otherwise it appends elem and
// returns the zero Element and false.
func (c *DisambiguationContainer) Insert(elem Element) (existing Element, collided bool) {
	k := elem.key()
	if idx, ok := c.byKey[k]; ok {
		return c.Elements[idx], true
	}
	c.byKey[k] = len(c.Elements)
	c.Elements = append(c.Elements, elem)
	return Element{}, false
}

// ReplaceNode rewrites the Node field of every element currently pointing
// at old to point at new instead. Nothing in this module calls it;
// mergeInto does not.
func (c *DisambiguationContainer) ReplaceNode(old, new Identifier) {
	for i := range c.Elements {
		if c.Elements[i].Node == old {
			c.Elements[i].Node = new
		}
	}
}

// ByKindAndHash returns every element whose kind and hash match the
// (possibly empty) disambiguator components given. An empty string means
// "unconstrained" for that axis.
func (c *DisambiguationContainer) ByKindAndHash(kind, hash string) []Element {
	var out []Element
	for _, e := range c.Elements {
		if kind != "" && e.Kind != kind {
			continue
		}
		if hash != "" && e.Hash != hash {
			continue
		}
		out = append(out, e)
	}
	return out
}

// ByTypeSignature returns every element whose parameter/return types match
// the given (possibly partial, "_"-padded) disambiguator. A nil slice
// argument means "unconstrained" for that axis, while a non-nil empty
// slice matches only elements with no types on that axis; a "_" (or
// empty-string) entry means "unconstrained at this position".
func (c *DisambiguationContainer) ByTypeSignature(params, returns []string) []Element {
	var out []Element
	for _, e := range c.Elements {
		if matchTypeList(params, e.ParameterTypes) && matchTypeList(returns, e.ReturnTypes) {
			out = append(out, e)
		}
	}
	return out
}

func matchTypeList(want, have []string) bool {
	if want == nil {
		return true // no disambiguator on this axis at all
	}
	if len(want) != len(have) {
		return false
	}
	for i, w := range want {
		if w == "_" || w == "" {
			continue
		}
		if w != have[i] {
			return false
		}
	}
	return true
}

// ChildMap is an insertion-ordered map from child name to its
// DisambiguationContainer, giving deterministic iteration for the file
// representation and for disambiguation (spec §5 "ordering").
type ChildMap struct {
	order      []string
	containers map[string]*DisambiguationContainer
}

func newChildMap() *ChildMap {
	return &ChildMap{containers: make(map[string]*DisambiguationContainer)}
}

// Container returns the container for name, creating it (and recording
// insertion order) if it does not yet exist.
func (m *ChildMap) Container(name string) *DisambiguationContainer {
	if c, ok := m.containers[name]; ok {
		return c
	}
	c := newDisambiguationContainer(name)
	m.containers[name] = c
	m.order = append(m.order, name)
	return c
}

// Lookup returns the container for name without creating it.
func (m *ChildMap) Lookup(name string) (*DisambiguationContainer, bool) {
	c, ok := m.containers[name]
	return c, ok
}

// Names returns the child names in first-insertion order.
func (m *ChildMap) Names() []string {
	out := make([]string, len(m.order))
	copy(out, m.order)
	return out
}

// Len reports the number of distinct child names.
func (m *ChildMap) Len() int { return len(m.order) }
