// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the quadsplit CLI.
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// version is set at build time via ldflags.
var version = "dev"

// rootCmd splits every 4-up PDF in a directory.
var rootCmd = &cobra.Command{
	Use:   "quadsplit [dir]",
	Short: "Split 4-up slide PDFs into one slide per page",
	Long: `quadsplit converts PDFs printed four slides to a page (2x2 grid) into
PDFs with one slide per page. Each page is copied four times and each copy
is cropped to one quadrant: top-left, top-right, bottom-left, bottom-right.

Every *.pdf in dir (default: the current directory) is processed, except
files whose name contains "_split". The result for name.pdf is written next
to it as name_split.pdf, replacing any earlier output unless
--skip-existing is given.`,
	Args:         cobra.MaximumNArgs(1),
	SilenceUsage: true,
	RunE:         runSplit,
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./quadsplit.yaml or ~/.config/quadsplit/config.yaml)")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "log diagnostics at debug level to stderr")

	rootCmd.Flags().Bool("skip-existing", false, "leave an existing <name>_split.pdf untouched")
	rootCmd.Flags().Bool("dry-run", false, "list the files that would be split without writing anything")
	rootCmd.Flags().String("report", "", "write a YAML report of the run to this file")

	_ = viper.BindPFlag("verbose", rootCmd.PersistentFlags().Lookup("verbose"))
	for _, key := range []string{"skip-existing", "dry-run", "report"} {
		_ = viper.BindPFlag(key, rootCmd.Flags().Lookup(key))
	}
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("quadsplit")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "quadsplit"))
		}
	}

	viper.SetEnvPrefix("QUADSPLIT")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

func main() {
	// Keep pdfcpu from creating its own config directory under the user's home.
	api.DisableConfigDir()

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
