// Copyright 2009 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package hierarchy

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func frag(kind, spelling string) DeclarationFragment {
	return DeclarationFragment{Kind: kind, Spelling: spelling}
}

func TestBuild_SimpleMemberOf(t *testing.T) {
	g := &SymbolGraph{
		ModuleName: "MyModule",
		Symbols: []Symbol{
			{PreciseID: "s:Foo", InterfaceLanguage: "swift", PathComponents: []string{"Foo"}, KindID: "class"},
			{PreciseID: "s:Foo.bar", InterfaceLanguage: "swift", PathComponents: []string{"Foo", "bar"}, KindID: "func"},
		},
		Relationships: []Relationship{
			{Source: "s:Foo.bar", Target: "s:Foo", Kind: RelMemberOf},
		},
	}
	h := Build(map[string]*SymbolGraph{"MyModule": g}, BuildOptions{})

	moduleID, ok := h.Modules["MyModule"]
	require.True(t, ok)
	module := h.MustNode(moduleID)

	fooContainer, ok := module.Children.Lookup("Foo")
	require.True(t, ok)
	require.Len(t, fooContainer.Elements, 1)
	foo := h.MustNode(fooContainer.Elements[0].Node)
	assert.True(t, h.IsFindable(foo.ID))

	barContainer, ok := foo.Children.Lookup("bar")
	require.True(t, ok)
	require.Len(t, barContainer.Elements, 1)
	bar := h.MustNode(barContainer.Elements[0].Node)
	assert.Equal(t, foo.ID, bar.Parent)
}

func TestBuild_MissingParentChainIsClosedAsDeadEnd(t *testing.T) {
	// Foo and Bar are both materialized as sparse placeholders to carry
	// baz's path, but neither ever branches: step 6 must close both dead
	// ends, re-pointing baz directly at the module.
	g := &SymbolGraph{
		ModuleName: "MyModule",
		Symbols: []Symbol{
			{PreciseID: "s:Foo.Bar.baz", InterfaceLanguage: "swift", PathComponents: []string{"Foo", "Bar", "baz"}, KindID: "func"},
		},
	}
	h := Build(map[string]*SymbolGraph{"MyModule": g}, BuildOptions{})

	module := h.MustNode(h.Modules["MyModule"])

	if c, ok := module.Children.Lookup("Foo"); ok {
		assert.Empty(t, c.Elements, "the Foo placeholder should have been closed, not left pointing anywhere")
	}

	bazContainer, ok := module.Children.Lookup("baz")
	require.True(t, ok, "baz should have been re-pointed directly under the module")
	require.Len(t, bazContainer.Elements, 1)
	baz := h.MustNode(bazContainer.Elements[0].Node)
	assert.Equal(t, module.ID, baz.Parent)
	assert.True(t, h.IsFindable(baz.ID))
}

func TestBuild_BranchingPlaceholderIsNotClosed(t *testing.T) {
	// Foo is missing, but two symbols need it as their shared parent, so
	// it genuinely branches and must survive as a findable-less container
	// rather than being collapsed.
	g := &SymbolGraph{
		ModuleName: "MyModule",
		Symbols: []Symbol{
			{PreciseID: "s:Foo.bar", InterfaceLanguage: "swift", PathComponents: []string{"Foo", "bar"}, KindID: "func"},
			{PreciseID: "s:Foo.baz", InterfaceLanguage: "swift", PathComponents: []string{"Foo", "baz"}, KindID: "func"},
		},
	}
	h := Build(map[string]*SymbolGraph{"MyModule": g}, BuildOptions{})

	module := h.MustNode(h.Modules["MyModule"])
	fooContainer, ok := module.Children.Lookup("Foo")
	require.True(t, ok)
	require.Len(t, fooContainer.Elements, 1)
	foo := h.MustNode(fooContainer.Elements[0].Node)
	assert.True(t, foo.IsSparsePlaceholder())

	barContainer, ok := foo.Children.Lookup("bar")
	require.True(t, ok)
	require.Len(t, barContainer.Elements, 1)
	bazContainer, ok := foo.Children.Lookup("baz")
	require.True(t, ok)
	require.Len(t, bazContainer.Elements, 1)
}

func TestBuild_CounterpartsLinkedAcrossLanguages(t *testing.T) {
	g := &SymbolGraph{
		ModuleName: "MyModule",
		Symbols: []Symbol{
			{PreciseID: "s:Foo", InterfaceLanguage: "swift", PathComponents: []string{"Foo"}, KindID: "class"},
			{PreciseID: "s:Foo", InterfaceLanguage: "occ", PathComponents: []string{"Foo"}, KindID: "class"},
		},
	}
	h := Build(map[string]*SymbolGraph{"MyModule": g}, BuildOptions{})

	module := h.MustNode(h.Modules["MyModule"])
	container, ok := module.Children.Lookup("Foo")
	require.True(t, ok)
	require.Len(t, container.Elements, 1, "the counterpart shares its sibling's child-map slot rather than getting its own")

	swift := h.MustNode(container.Elements[0].Node)
	require.Equal(t, "swift", swift.Symbol.InterfaceLanguage)
	occ := h.Counterpart(swift)
	require.NotNil(t, occ)
	assert.Equal(t, "occ", occ.Symbol.InterfaceLanguage)
	assert.Equal(t, swift.ID, occ.Counterpart)
}

func TestBuild_DefaultImplementationIsDisfavored(t *testing.T) {
	// The synthesized default implementation is given a distinct parameter
	// list so its disambiguation key differs from the requirement's own
	// (otherwise the two would collide and merge into a single element,
	// per the container's insertion rules).
	g := &SymbolGraph{
		ModuleName: "MyModule",
		Symbols: []Symbol{
			{PreciseID: "s:P", InterfaceLanguage: "swift", PathComponents: []string{"P"}, KindID: "protocol"},
			{PreciseID: "s:P.req", InterfaceLanguage: "swift", PathComponents: []string{"P", "req"}, KindID: "method"},
			{
				PreciseID: "s:P.req.Default::SYNTHESIZED::", InterfaceLanguage: "swift",
				PathComponents: []string{"P", "req"}, KindID: "method",
				FunctionSignature: &FunctionSignature{
					Parameters: []Parameter{{Declaration: []DeclarationFragment{frag("typeIdentifier", "Int")}}},
				},
			},
		},
		Relationships: []Relationship{
			{Source: "s:P.req", Target: "s:P", Kind: RelRequirementOf},
			{Source: "s:P.req.Default::SYNTHESIZED::", Target: "s:P.req", Kind: RelDefaultImplementationOf},
		},
	}
	h := Build(map[string]*SymbolGraph{"MyModule": g}, BuildOptions{})

	protocol := h.MustNode(h.Modules["MyModule"])
	reqContainer, ok := protocol.Children.Lookup("P")
	require.True(t, ok)
	p := h.MustNode(reqContainer.Elements[0].Node)

	reqGroup, ok := p.Children.Lookup("req")
	require.True(t, ok)
	require.Len(t, reqGroup.Elements, 2)

	var sawDisfavored, sawFavored bool
	for _, e := range reqGroup.Elements {
		n := h.MustNode(e.Node)
		if n.Special.Has(DisfavorInCollision) {
			sawDisfavored = true
		} else {
			sawFavored = true
		}
	}
	assert.True(t, sawDisfavored)
	assert.True(t, sawFavored)
}

func TestBuild_KnownDisambiguatedPathComponentsOverride(t *testing.T) {
	g := &SymbolGraph{
		ModuleName: "MyModule",
		Symbols: []Symbol{
			{PreciseID: "s:Foo.bar", InterfaceLanguage: "swift", PathComponents: []string{"Should", "Be", "Ignored"}, KindID: "func"},
		},
	}
	opts := BuildOptions{
		KnownDisambiguatedPathComponents: map[string][]PathComponentOverride{
			"s:Foo.bar": {{Name: "Foo"}, {Name: "bar", Kind: "func", Hash: "abcde"}},
		},
	}
	h := Build(map[string]*SymbolGraph{"MyModule": g}, opts)

	// "Foo" is an override-materialized placeholder with exactly one
	// child, so step 6's dead-end closure re-points bar directly at the
	// module rather than leaving it hanging under Foo.
	module := h.MustNode(h.Modules["MyModule"])
	barContainer, ok := module.Children.Lookup("bar")
	require.True(t, ok)
	require.Len(t, barContainer.Elements, 1)
	assert.Equal(t, "abcde", barContainer.Elements[0].Hash)
}

func TestExtractSignatures_PopulatesParameterAndReturnTypes(t *testing.T) {
	g := &SymbolGraph{
		ModuleName: "MyModule",
		Symbols: []Symbol{
			{PreciseID: "s:Foo", InterfaceLanguage: "swift", PathComponents: []string{"Foo"}, KindID: "class"},
			{
				PreciseID:         "s:Foo.bar",
				InterfaceLanguage: "swift",
				PathComponents:    []string{"Foo", "bar"},
				KindID:            "func",
				FunctionSignature: &FunctionSignature{
					Parameters: []Parameter{{Declaration: []DeclarationFragment{frag("typeIdentifier", "Int")}}},
					Returns:    []DeclarationFragment{frag("typeIdentifier", "Void")},
				},
			},
		},
	}
	h := Build(map[string]*SymbolGraph{"MyModule": g}, BuildOptions{})

	module := h.MustNode(h.Modules["MyModule"])
	container, ok := module.Children.Lookup("Foo")
	require.True(t, ok)
	foo := h.MustNode(container.Elements[0].Node)
	barContainer, ok := foo.Children.Lookup("bar")
	require.True(t, ok)
	bar := h.MustNode(barContainer.Elements[0].Node)

	require.NotNil(t, bar.Symbol)
	assert.Equal(t, []string{"Int"}, bar.Symbol.ParameterTypes)
	assert.Empty(t, bar.Symbol.ReturnTypes, "a Void return yields an empty return-type list")
}
