// Copyright 2009 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	doclink "golang.org/x/doclink"
	"golang.org/x/doclink/internal/hierarchy"
)

func newBuildCmd() *cobra.Command {
	var out, bundleID, bundleName string

	cmd := &cobra.Command{
		Use:   "build <symbolgraph.json>...",
		Short: "Build a hierarchy from one or more symbol-graph JSON files",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			log := newLogger()
			defer log.Sync()

			graphs := make(map[string]*hierarchy.SymbolGraph, len(args))
			for _, path := range args {
				g, err := loadSymbolGraph(path)
				if err != nil {
					return err
				}
				graphs[g.ModuleName] = g
				log.Info("loaded symbol graph", zap.String("path", path), zap.String("module", g.ModuleName), zap.Int("symbols", len(g.Symbols)))
			}

			core := doclink.Build(graphs, hierarchy.BuildOptions{}, defaultLinkConfig(), log)
			if bundleID != "" {
				moduleNames := make([]string, 0, len(graphs))
				for name := range graphs {
					moduleNames = append(moduleNames, name)
				}
				core.RegisterBundle(doclink.Bundle{ID: bundleID, DisplayName: bundleName}, moduleNames...)
			}

			info := core.PrepareForSerialization(bundleID)
			encoded, err := json.MarshalIndent(info.File, "", "  ")
			if err != nil {
				return fmt.Errorf("encoding hierarchy: %w", err)
			}
			if err := os.WriteFile(out, encoded, 0o644); err != nil {
				return fmt.Errorf("writing %s: %w", out, err)
			}
			log.Info("wrote hierarchy", zap.String("path", out), zap.Int("nodes", len(info.File.Nodes)))
			return nil
		},
	}

	cmd.Flags().StringVar(&out, "out", "hierarchy.docfile", "output path for the encoded hierarchy")
	cmd.Flags().StringVar(&bundleID, "bundle-id", "", "bundle id owning the built modules")
	cmd.Flags().StringVar(&bundleName, "bundle-name", "", "bundle display name")
	return cmd
}
