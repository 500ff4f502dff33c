// Copyright 2009 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package hierarchy

import (
	"golang.org/x/sync/errgroup"

	"golang.org/x/doclink/internal/typesig"
)

// extractSignatures runs TypeSignatureExtraction (spec §4.3) for every
// symbol in g that carries a FunctionSignature mixin, writing the derived
// ParameterTypes/ReturnTypes back onto each symbol's node.
//
// Extraction over one symbol's fragments is pure and writes only into that
// symbol's own SymbolData, so the pass runs concurrently across symbols
// (spec §5: "per-symbol type-signature extraction is performed in parallel
// over the symbol-graph symbols").
func (st *builderState) extractSignatures(g *SymbolGraph) {
	var grp errgroup.Group
	for _, sym := range g.Symbols {
		sym := sym
		if sym.FunctionSignature == nil {
			continue
		}
		n, ok := st.nodeBySymbolID[sym.PreciseID]
		if !ok || n.Symbol == nil {
			continue
		}
		node := n
		grp.Go(func() error {
			node.Symbol.ParameterTypes = typesig.ExtractParameterTypes(
				toTypesigParameters(sym.FunctionSignature.Parameters), sym.InterfaceLanguage)
			node.Symbol.ReturnTypes = typesig.ExtractReturnTypes(
				toTypesigFragments(sym.FunctionSignature.Returns), sym.InterfaceLanguage, typesig.DefaultVoidSpellings)
			return nil
		})
	}
	_ = grp.Wait() // extraction never errors; Wait only awaits completion
}

func toTypesigFragments(frags []DeclarationFragment) []typesig.Fragment {
	out := make([]typesig.Fragment, len(frags))
	for i, f := range frags {
		out[i] = typesig.Fragment{Kind: f.Kind, Spelling: f.Spelling}
	}
	return out
}

func toTypesigParameters(params []Parameter) []typesig.Parameter {
	out := make([]typesig.Parameter, len(params))
	for i, p := range params {
		out[i] = typesig.Parameter{Declaration: toTypesigFragments(p.Declaration)}
	}
	return out
}
