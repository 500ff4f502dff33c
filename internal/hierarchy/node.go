// Copyright 2009 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package hierarchy implements the disambiguation-aware path hierarchy that
// mirrors a symbol graph's namespace: one N-ary tree of Nodes, indexed at
// each level by a DisambiguationContainer so that same-named siblings
// (overloads, cross-language counterparts, sparse placeholders) can coexist
// until a link asks for one of them specifically.
//
// Nodes live in an arena owned by a *Hierarchy and are addressed by
// Identifier, an opaque index. parent and counterpart edges are stored as
// Identifier values rather than pointers back into the node that owns them,
// so the tree has no reference cycle for a garbage collector (or a reader)
// to reason about.
package hierarchy

// Identifier is an opaque handle into a Hierarchy's node arena. The zero
// Identifier never refers to a real node; Hierarchy.Node reports ok=false
// for it.
//
// Identifiers are only ever produced by a Hierarchy's builder methods and
// are not meaningful across different Hierarchy values or process runs.
type Identifier struct {
	idx int32
}

// IsZero reports whether id is the zero Identifier (never assigned).
func (id Identifier) IsZero() bool { return id.idx == 0 }

// NodeKind tags the kind of entity a Node addresses.
type NodeKind int

const (
	KindSymbol NodeKind = iota
	KindArticle
	KindTutorial
	KindLandmark
	KindTaskGroup
	KindAnchor
	KindSparsePlaceholder
)

func (k NodeKind) String() string {
	switch k {
	case KindSymbol:
		return "symbol"
	case KindArticle:
		return "article"
	case KindTutorial:
		return "tutorial"
	case KindLandmark:
		return "landmark"
	case KindTaskGroup:
		return "taskGroup"
	case KindAnchor:
		return "anchor"
	case KindSparsePlaceholder:
		return "sparsePlaceholder"
	default:
		return "unknown"
	}
}

// SpecialBehavior is a bitset of per-node behaviors consulted by the
// resolver's tie-breaking rules and by automatic curation.
type SpecialBehavior uint8

const (
	// DisfavorInCollision marks a node that should lose a resolver
	// collision to any sibling that doesn't carry the flag: default
	// protocol-requirement implementations, synthesized symbols, and
	// sparse placeholders are all disfavored this way.
	DisfavorInCollision SpecialBehavior = 1 << iota
	// ExcludeFromAutomaticCuration marks a node that should not appear
	// in generated "Topics" groupings even though it is findable.
	ExcludeFromAutomaticCuration
)

func (b SpecialBehavior) Has(flag SpecialBehavior) bool { return b&flag != 0 }

// DeclarationFragment is one spelled-out token of a symbol's declaration,
// e.g. a type-identifier fragment naming a parameter's type.
type DeclarationFragment struct {
	Kind string // "typeIdentifier", "text", "identifier", ...
	Spelling string
	PreciseID string // non-empty only for typeIdentifier fragments
}

// Parameter is one parameter of a function-signature mixin.
type Parameter struct {
	Name        string
	Declaration []DeclarationFragment
}

// FunctionSignature is the subset of symbol-graph mixin data the
// TypeSignatureExtraction component (spec §4.3) needs.
type FunctionSignature struct {
	Parameters []Parameter
	Returns    []DeclarationFragment
}

// SymbolData is the symbol-graph metadata attached to a Symbol-kind Node.
type SymbolData struct {
	PreciseID         string
	KindID            string
	InterfaceLanguage string
	Declaration       []DeclarationFragment
	FunctionSignature *FunctionSignature

	// ParameterTypes and ReturnTypes are populated by the
	// TypeSignatureExtraction pass (internal/typesig) during the build and
	// consumed by both the resolver and the disambiguation engine.
	ParameterTypes []string
	ReturnTypes    []string
}

// Node is one addressable entity in the hierarchy: a symbol, article,
// tutorial, landmark, task group, anchor, or sparse placeholder.
type Node struct {
	ID   Identifier
	Name string
	Kind NodeKind
	Symbol *SymbolData

	Parent      Identifier
	Counterpart Identifier

	HasIdentifier bool
	Special       SpecialBehavior

	Children *ChildMap
}

func newNode(id Identifier, name string, kind NodeKind) *Node {
	return &Node{
		ID:       id,
		Name:     name,
		Kind:     kind,
		Children: newChildMap(),
	}
}

// IsSparsePlaceholder reports whether n was materialized only to preserve a
// path chain, per spec §3/§4.1 step 3. It also reports true for any other
// node that was never assigned an identifier, such as an unplaced
// language counterpart.
func (n *Node) IsSparsePlaceholder() bool {
	return n.Kind == KindSparsePlaceholder || !n.HasIdentifier
}
