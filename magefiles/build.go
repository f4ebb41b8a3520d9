//go:build mage

// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

package main

import (
	"os"
	"path/filepath"

	"github.com/magefile/mage/mg"
	"github.com/magefile/mage/sh"
)

const (
	binGo      = "go"
	binaryName = "typereg"
	binaryDir  = "bin"
	cmdDir     = "./cmd/typereg"

	sampleManifest = "internal/manifest/testdata/catalog.yaml"
)

// Build compiles the typereg binary to bin/.
func Build() error {
	if err := os.MkdirAll(binaryDir, 0o755); err != nil {
		return err
	}
	return sh.RunV(binGo, "build", "-v", "-o", filepath.Join(binaryDir, binaryName), cmdDir)
}

// Clean removes build artifacts.
func Clean() error {
	if err := os.RemoveAll(binaryDir); err != nil {
		return err
	}
	return sh.RunV(binGo, "clean")
}

// Install builds and copies the binary to GOPATH/bin.
func Install() error {
	mg.Deps(Build)
	gopath, err := sh.Output(binGo, "env", "GOPATH")
	if err != nil {
		return err
	}
	src := filepath.Join(binaryDir, binaryName)
	dst := filepath.Join(gopath, "bin", binaryName)
	return sh.Copy(dst, src)
}

// Demo activates the sample manifest against the memory backend and
// renders an article's panels.
func Demo() error {
	mg.Deps(Build)

	configDir, err := os.MkdirTemp("", "typereg-demo-")
	if err != nil {
		return err
	}
	defer os.RemoveAll(configDir)

	if err := os.WriteFile(filepath.Join(configDir, "config.yaml"), []byte("backend: memory\n"), 0o644); err != nil {
		return err
	}

	bin := filepath.Join(binaryDir, binaryName)
	if err := sh.RunV(bin, "--config-dir", configDir, "activate", sampleManifest); err != nil {
		return err
	}
	return sh.RunV(bin, "--config-dir", configDir, "render", sampleManifest, "article", "--title", "Demo", "--metrics")
}
