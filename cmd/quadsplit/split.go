// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/quadsplit/internal/logging"
	"github.com/pdiddy/quadsplit/internal/split"
	"github.com/pdiddy/quadsplit/pkg/types"
)

func runSplit(cmd *cobra.Command, args []string) error {
	cfg := splitConfig(args)

	log := logging.New(cfg.Verbose)
	defer func() { _ = log.Sync() }()

	started := time.Now()
	result, err := split.SplitDir(split.NewPDFSplitter(log), cfg, cmd.OutOrStdout())
	if err != nil {
		return err
	}

	if cfg.ReportPath != "" {
		report := split.NewReport(cfg, result, started)
		if err := split.WriteReport(cfg.ReportPath, report); err != nil {
			return err
		}
		fmt.Fprintf(cmd.ErrOrStderr(), "Report written to %s\n", cfg.ReportPath)
	}

	if result.HasFailures() {
		return fmt.Errorf("%d file(s) failed", result.Failed)
	}
	return nil
}

// splitConfig resolves flags, environment and config file into a
// SplitConfig. The directory argument wins over a configured dir.
func splitConfig(args []string) types.SplitConfig {
	dir := viper.GetString("dir")
	if len(args) > 0 {
		dir = args[0]
	}
	if dir == "" {
		dir = "."
	}
	return types.SplitConfig{
		Dir:          dir,
		SkipExisting: viper.GetBool("skip-existing"),
		DryRun:       viper.GetBool("dry-run"),
		ReportPath:   viper.GetString("report"),
		Verbose:      viper.GetBool("verbose"),
	}
}
