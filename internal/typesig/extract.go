// Copyright 2009 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package typesig

// Fragment mirrors the subset of a symbol-graph declaration fragment the
// extractor cares about: its kind tag and spelled text.
type Fragment struct {
	Kind     string // "typeIdentifier", "text", ...
	Spelling string
}

// Parameter is one function parameter's declaration fragments.
type Parameter struct {
	Declaration []Fragment
}

// DefaultVoidSpellings is the bundle-provided list of spellings that denote
// "no return value" (spec §4.3: "A single-fragment 'void'/'Void' ... yields
// an empty return list").
var DefaultVoidSpellings = []string{"Void", "()", "void"}

const swiftLanguage = "swift"

// ExtractParameterTypes derives one type-name string per parameter, per
// spec §4.3.
func ExtractParameterTypes(params []Parameter, language string) []string {
	out := make([]string, len(params))
	for i, p := range params {
		out[i] = extractOne(p.Declaration, language)
	}
	return out
}

// ExtractReturnTypes derives the function's return-type disambiguator
// list, per spec §4.3: a top-level tuple return is split into one entry
// per element; a void return yields an empty list; anything else yields a
// single-element list.
func ExtractReturnTypes(fragments []Fragment, language string, voidSpellings []string) []string {
	raw := extractOne(fragments, language)
	for _, void := range voidSpellings {
		if raw == void {
			return nil
		}
	}
	if len(raw) >= 2 && raw[0] == '(' && raw[len(raw)-1] == ')' && hasTopLevelComma(raw[1:len(raw)-1]) {
		parts := splitTopLevelComma(raw[1 : len(raw)-1])
		out := make([]string, len(parts))
		for i, p := range parts {
			out[i] = StripRedundantOuterParens(p)
		}
		return out
	}
	return []string{raw}
}

func extractOne(fragments []Fragment, language string) string {
	var concat string
	for _, f := range fragments {
		if f.Kind != "typeIdentifier" && f.Kind != "text" {
			continue
		}
		concat += f.Spelling
	}
	concat = StripWhitespace(concat)
	if language == swiftLanguage {
		concat = ApplySugar(concat)
	}
	return StripRedundantOuterParens(concat)
}
