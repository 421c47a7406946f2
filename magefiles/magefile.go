//go:build mage

// Package main contains Mage build targets for quadsplit developer tooling.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/magefile/mage/mg"
	"github.com/magefile/mage/sh"
)

const (
	binDir  = "bin"
	binName = "quadsplit"
	cmdPkg  = "./cmd/quadsplit"
)

// Default is the target run by a bare `mage`.
var Default = Build

// Build compiles the CLI binary into bin/. The version is taken from
// QUADSPLIT_VERSION when set.
func Build() error {
	if err := os.MkdirAll(binDir, 0o755); err != nil {
		return fmt.Errorf("creating %s: %w", binDir, err)
	}
	version := versionOrDev()
	out := filepath.Join(binDir, binName)
	ldflags := "-X main.version=" + version
	if err := sh.RunV("go", "build", "-ldflags", ldflags, "-o", out, cmdPkg); err != nil {
		return fmt.Errorf("go build: %w", err)
	}
	fmt.Printf("Built %s (%s)\n", out, version)
	return nil
}

// Test runs the unit tests.
func Test() error {
	return sh.RunV("go", "test", "./...")
}

// Vet runs go vet over the module.
func Vet() error {
	return sh.RunV("go", "vet", "./...")
}

// Check runs vet and the tests.
func Check() {
	mg.SerialDeps(Vet, Test)
}

// Install builds and copies the binary into GOBIN.
func Install() error {
	return sh.RunV("go", "install", "-ldflags", "-X main.version="+versionOrDev(), cmdPkg)
}

// Clean removes build output.
func Clean() error {
	return sh.Rm(binDir)
}

func versionOrDev() string {
	if v := os.Getenv("QUADSPLIT_VERSION"); v != "" {
		return v
	}
	return "dev"
}
