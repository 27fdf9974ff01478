//go:build mage

package main

import (
	"fmt"

	"github.com/magefile/mage/mg"
)

// Default target runs tests
var Default = Test.All

// CI runs tests, linters and checks the example is regenerated
func CI() error {
	fmt.Println("Running CI checks...")
	mg.SerialDeps(Test.All, Lint.All, Gen.Verify)
	return nil
}
