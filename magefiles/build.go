//go:build mage

package main

import (
	"fmt"

	"github.com/magefile/mage/mg"
	"github.com/magefile/mage/sh"
)

type Build mg.Namespace

// Binary builds the partialgen binary into bin/
func (Build) Binary() error {
	fmt.Println("Building partialgen binary...")
	return sh.RunV("go", "build", "-o", "bin/partialgen", ".")
}

// Install installs partialgen to GOPATH/bin
func (Build) Install() error {
	fmt.Println("Installing partialgen...")
	return sh.RunV("go", "install", ".")
}

// Clean removes built artifacts and coverage reports
func (Build) Clean() error {
	fmt.Println("Cleaning build artifacts...")
	for _, path := range []string{"bin", "coverage.out", "coverage.html"} {
		if err := sh.Rm(path); err != nil {
			return err
		}
	}
	return nil
}
