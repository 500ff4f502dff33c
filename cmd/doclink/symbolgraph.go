// Copyright 2009 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"encoding/json"
	"fmt"
	"os"

	"golang.org/x/doclink/internal/hierarchy"
)

// jsonDeclarationFragment mirrors hierarchy.DeclarationFragment's wire
// shape in a symbol-graph JSON file.
type jsonDeclarationFragment struct {
	Kind      string `json:"kind"`
	Spelling  string `json:"spelling"`
	PreciseID string `json:"preciseIdentifier,omitempty"`
}

type jsonParameter struct {
	Name        string                    `json:"name"`
	Declaration []jsonDeclarationFragment `json:"declarationFragments"`
}

type jsonFunctionSignature struct {
	Parameters []jsonParameter           `json:"parameters,omitempty"`
	Returns    []jsonDeclarationFragment `json:"returns,omitempty"`
}

type jsonSymbol struct {
	PreciseID         string                    `json:"precise_id"`
	InterfaceLanguage string                    `json:"interface_language"`
	PathComponents    []string                  `json:"path_components"`
	KindID            string                    `json:"kind_id"`
	Declaration       []jsonDeclarationFragment `json:"declaration_fragments"`
	FunctionSignature *jsonFunctionSignature    `json:"function_signature,omitempty"`
}

type jsonRelationship struct {
	Source string `json:"source"`
	Target string `json:"target"`
	Kind   string `json:"kind"`
}

type jsonSymbolGraph struct {
	ModuleName    string             `json:"module_name"`
	Symbols       []jsonSymbol       `json:"symbols"`
	Relationships []jsonRelationship `json:"relationships"`
}

// loadSymbolGraph reads one symbol-graph JSON file and converts it into the
// hierarchy builder's input shape (spec §6 "Symbol graph" input).
func loadSymbolGraph(path string) (*hierarchy.SymbolGraph, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	var jg jsonSymbolGraph
	if err := json.Unmarshal(raw, &jg); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}

	g := &hierarchy.SymbolGraph{
		ModuleName:    jg.ModuleName,
		Symbols:       make([]hierarchy.Symbol, len(jg.Symbols)),
		Relationships: make([]hierarchy.Relationship, len(jg.Relationships)),
	}
	for i, s := range jg.Symbols {
		g.Symbols[i] = hierarchy.Symbol{
			PreciseID:         s.PreciseID,
			InterfaceLanguage: s.InterfaceLanguage,
			PathComponents:    s.PathComponents,
			KindID:            s.KindID,
			Declaration:       toFragments(s.Declaration),
			FunctionSignature: toFunctionSignature(s.FunctionSignature),
		}
	}
	for i, r := range jg.Relationships {
		g.Relationships[i] = hierarchy.Relationship{Source: r.Source, Target: r.Target, Kind: r.Kind}
	}
	return g, nil
}

func toFragments(fs []jsonDeclarationFragment) []hierarchy.DeclarationFragment {
	if fs == nil {
		return nil
	}
	out := make([]hierarchy.DeclarationFragment, len(fs))
	for i, f := range fs {
		out[i] = hierarchy.DeclarationFragment{Kind: f.Kind, Spelling: f.Spelling, PreciseID: f.PreciseID}
	}
	return out
}

func toFunctionSignature(fs *jsonFunctionSignature) *hierarchy.FunctionSignature {
	if fs == nil {
		return nil
	}
	out := &hierarchy.FunctionSignature{Returns: toFragments(fs.Returns)}
	out.Parameters = make([]hierarchy.Parameter, len(fs.Parameters))
	for i, p := range fs.Parameters {
		out.Parameters[i] = hierarchy.Parameter{Name: p.Name, Declaration: toFragments(p.Declaration)}
	}
	return out
}
