// Copyright 2009 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"encoding/json"
	"fmt"
	"os"

	"go.uber.org/zap"

	doclink "golang.org/x/doclink"
	"golang.org/x/doclink/internal/docfile"
	"golang.org/x/doclink/internal/linkparser"
)

func defaultLinkConfig() linkparser.Config {
	return linkparser.DefaultConfig()
}

// loadCore decodes a hierarchy.docfile at path and wraps it in a *doclink.Core.
func loadCore(path string, log *zap.Logger) (*doclink.Core, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	var f docfile.File
	if err := json.Unmarshal(raw, &f); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	h, err := docfile.Decode(&f, nil)
	if err != nil {
		return nil, fmt.Errorf("decoding %s: %w", path, err)
	}
	return doclink.New(h, defaultLinkConfig(), log), nil
}
