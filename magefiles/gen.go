//go:build mage

package main

import (
	"fmt"

	"github.com/magefile/mage/mg"
	"github.com/magefile/mage/sh"
)

type Gen mg.Namespace

// Example regenerates the partial types of the example package
func (Gen) Example() error {
	fmt.Println("Regenerating example partial types...")
	return sh.RunV("go", "run", ".", "-output=example/config_partial.go", "example", "Config", "Server")
}

// Golden rewrites the golden files under testdata/ from the current generator
func (Gen) Golden() error {
	fmt.Println("Updating golden files...")
	return sh.RunV("go", "test", "-run", "TestGoldenFiles", ".", "-update")
}

// Verify regenerates the example and checks that no generated file changed
func (Gen) Verify() error {
	fmt.Println("Verifying generated files are up to date...")
	mg.Deps(Gen.Example)

	out, err := sh.Output("git", "status", "--porcelain", "example/")
	if err != nil {
		return err
	}

	if out != "" {
		return fmt.Errorf("generated files are out of date, run 'mage gen:example':\n%s", out)
	}

	fmt.Println("Generated files are up to date!")
	return nil
}
