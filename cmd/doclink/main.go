// Copyright 2009 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command doclink exercises the documentation link resolution core end to
// end: building a hierarchy from symbol-graph JSON, resolving links against
// it, and printing the minimal disambiguated path for every symbol.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var verbose bool

func newLogger() *zap.Logger {
	var cfg zap.Config
	if verbose {
		cfg = zap.NewDevelopmentConfig()
	} else {
		cfg = zap.NewProductionConfig()
	}
	log, err := cfg.Build()
	if err != nil {
		// zap itself failing to construct is unrecoverable for a CLI whose
		// whole job is to report outcomes; fall back to a no-op logger
		// rather than leaving callers with a nil *zap.Logger.
		return zap.NewNop()
	}
	return log
}

func main() {
	root := &cobra.Command{
		Use:   "doclink",
		Short: "Documentation link resolution core (build, resolve, paths)",
	}
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable development-mode logging")

	root.AddCommand(newBuildCmd(), newResolveCmd(), newPathsCmd())

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
