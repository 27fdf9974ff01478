//go:build mage

package main

import (
	"fmt"

	"github.com/magefile/mage/mg"
	"github.com/magefile/mage/sh"
)

type Test mg.Namespace

// Unit runs the unit tests of every package
func (Test) Unit() error {
	fmt.Println("Running unit tests...")
	return sh.RunV("go", "test", "-race", "./...")
}

// Golden runs the generator against testdata/ and compares with golden files
func (Test) Golden() error {
	fmt.Println("Running golden file tests...")
	return sh.RunV("go", "test", "-run", "TestGoldenFiles|TestDiagnostics", "-v", ".")
}

// Coverage runs tests with coverage report
func (Test) Coverage() error {
	fmt.Println("Running tests with coverage...")
	if err := sh.RunV("go", "test", "-coverpkg=./...", "-coverprofile=coverage.out", "./..."); err != nil {
		return err
	}
	return sh.RunV("go", "tool", "cover", "-html=coverage.out", "-o", "coverage.html")
}

// All runs all tests
func (Test) All() error {
	mg.Deps(Test.Unit)
	return nil
}
