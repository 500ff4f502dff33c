// Copyright 2009 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	doclink "golang.org/x/doclink"
)

func newResolveCmd() *cobra.Command {
	var parentIdx int32
	var hasParent bool
	var onlySymbols bool

	cmd := &cobra.Command{
		Use:   "resolve <hierarchy.docfile> <link>",
		Short: "Resolve one link against a decoded hierarchy",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			log := newLogger()
			defer log.Sync()

			core, err := loadCore(args[0], log)
			if err != nil {
				return err
			}

			var parent *doclink.Identifier
			if hasParent {
				id := core.IdentifierAt(parentIdx)
				parent = &id
			}

			result, rerr := core.Resolve(args[1], parent, onlySymbols)
			if rerr != nil {
				fmt.Printf("error: %s (%s)\n", rerr.Error(), rerr.Kind)
				if len(rerr.NearMisses) > 0 {
					fmt.Printf("  did you mean: %v\n", rerr.NearMisses)
				}
				if len(rerr.Candidates) > 0 {
					fmt.Println("  candidates:")
					for _, c := range rerr.Candidates {
						fmt.Printf("    %s%s\n", c.Name, c.RequiredSuffix)
					}
				}
				log.Warn("resolve failed", zap.String("link", args[1]), zap.Stringer("kind", rerr.Kind))
				return nil
			}

			if result.IsExternal() {
				fmt.Printf("external: doc://%s%s\n", result.External.BundleID, result.External.Path)
				return nil
			}

			ref, ok := core.ReferenceOf(result.Identifier)
			if !ok {
				fmt.Println("resolved, but the target has no reference (synthetic or orphaned node)")
				return nil
			}
			fmt.Printf("doc://%s%s\n", ref.BundleID, ref.Path)
			return nil
		},
	}

	cmd.Flags().Int32Var(&parentIdx, "parent", 0, "node index to resolve relative to")
	cmd.Flags().BoolVar(&onlySymbols, "only-symbols", false, "reject matches against non-symbol nodes")
	cmd.PreRun = func(cmd *cobra.Command, args []string) {
		hasParent = cmd.Flags().Changed("parent")
	}
	return cmd
}
