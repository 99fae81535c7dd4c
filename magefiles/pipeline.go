//go:build mage

package main

import (
	"github.com/magefile/mage/mg"
	"github.com/magefile/mage/sh"
)

// Process extracts and transforms one category.
func Process(category string) error {
	mg.Deps(Build, Init)
	return sh.RunV(binary(), "process", category)
}

// ProcessAll runs every category and writes the catalogs of the current release.
func ProcessAll() error {
	mg.Deps(Build, Init)
	return sh.RunV(binary(), "process-all")
}

// Index loads the catalogs of the current release into the SQLite index.
func Index() error {
	mg.Deps(ProcessAll)
	return sh.RunV(binary(), "index")
}
