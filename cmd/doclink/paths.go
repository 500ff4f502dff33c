// Copyright 2009 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func newPathsCmd() *cobra.Command {
	var caseSensitive, includeLanguage, allowTypeSignature bool
	var out string

	cmd := &cobra.Command{
		Use:   "paths <hierarchy.docfile>",
		Short: "Print the minimal disambiguated path for every symbol",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			log := newLogger()
			defer log.Sync()

			core, err := loadCore(args[0], log)
			if err != nil {
				return err
			}

			paths := core.DisambiguatedPaths(caseSensitive, includeLanguage, allowTypeSignature)
			encoded, err := json.MarshalIndent(paths, "", "  ")
			if err != nil {
				return fmt.Errorf("encoding paths: %w", err)
			}
			if out == "" {
				fmt.Println(string(encoded))
				return nil
			}
			return os.WriteFile(out, encoded, 0o644)
		},
	}

	cmd.Flags().BoolVar(&caseSensitive, "case-sensitive", true, "treat names that differ only by case as distinct")
	cmd.Flags().BoolVar(&includeLanguage, "include-language", false, "include the source language in kind suffixes")
	cmd.Flags().BoolVar(&allowTypeSignature, "allow-type-signature", true, "allow type-signature suffixes for overloaded symbols")
	cmd.Flags().StringVar(&out, "out", "", "write JSON to this path instead of stdout")
	return cmd
}
