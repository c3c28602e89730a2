// Package main provides build targets for the capwire project using Mage.
//
// Usage:
//
//	mage build      Compile the capwire binary to bin/
//	mage test       Run all tests
//	mage bench      Run all benchmarks
//	mage lint       Run golangci-lint
//	mage clean      Remove build artifacts
//	mage install    Install capwire to GOPATH/bin
package main

import (
	"os"
	"path/filepath"

	"github.com/magefile/mage/mg"
	"github.com/magefile/mage/sh"
)

const (
	binaryName = "capwire"
	binaryDir  = "bin"
	cmdDir     = "./cmd/capwire"
)

// Build compiles the capwire binary to bin/.
func Build() error {
	if err := os.MkdirAll(binaryDir, 0o755); err != nil {
		return err
	}
	return sh.RunV("go", "build", "-v", "-o", filepath.Join(binaryDir, binaryName), cmdDir)
}

// Test runs all tests with the race detector.
func Test() error {
	return sh.RunV("go", "test", "-race", "./...")
}

// Bench runs all benchmarks once through.
func Bench() error {
	return sh.RunV("go", "test", "-run", "^$", "-bench", ".", "-benchmem", "./...")
}

// Lint runs golangci-lint.
func Lint() error {
	return sh.RunV("golangci-lint", "run", "./...")
}

// Clean removes build artifacts.
func Clean() error {
	if err := os.RemoveAll(binaryDir); err != nil {
		return err
	}
	return sh.RunV("go", "clean")
}

// Install builds and copies the binary to GOPATH/bin.
func Install() error {
	mg.Deps(Build)
	gopath, err := sh.Output("go", "env", "GOPATH")
	if err != nil {
		return err
	}
	src := filepath.Join(binaryDir, binaryName)
	dst := filepath.Join(gopath, "bin", binaryName)
	return sh.Copy(dst, src)
}
