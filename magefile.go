//go:build mage

package main

import (
	"fmt"
	"strings"

	"github.com/magefile/mage/mg"
	"github.com/magefile/mage/sh"
)

// Default target to run when no target is specified.
var Default = Test

const smokeSnippet = `
let total = 0;
for (let i = 0; i < 10; i++) {
	total += i;
}
const double = x => x * 2;
class Counter {
	#count = 0;
	increment() { this.#count++; return this.#count; }
}
export default Counter;
`

// Test runs vet, the unit test suite, and a smoke parse.
func Test() error {
	mg.SerialDeps(Vet, TestUnit, Smoke)
	return nil
}

// Vet runs go vet across the module.
func Vet() error {
	fmt.Println("Running go vet...")
	return sh.RunV("go", "vet", "./...")
}

// TestUnit runs the package test suite.
func TestUnit() error {
	fmt.Println("Running unit tests...")
	return sh.RunV("go", "test", "./...")
}

// Bench runs benchmarks across the module.
func Bench() error {
	fmt.Println("Running benchmarks...")
	return sh.RunV("go", "test", "-run=^$", "-bench=.", "-benchmem", "./...")
}

// Smoke builds xjsparse and feeds it a known-valid snippet covering loops,
// arrow functions, classes with private fields, and a module export, to
// catch regressions the unit tests don't reach end-to-end.
func Smoke() error {
	fmt.Println("Building xjsparse...")
	if err := sh.RunV("go", "build", "-o", "bin/xjsparse", "./cmd/xjsparse"); err != nil {
		return err
	}
	fmt.Println("Smoke-parsing a sample module...")
	return sh.RunWith(map[string]string{}, "bash", "-c",
		fmt.Sprintf("echo %q | ./bin/xjsparse parse --source-type module", strings.TrimSpace(smokeSnippet)))
}

// Build compiles the xjsparse CLI.
func Build() error {
	fmt.Println("Building xjsparse...")
	return sh.RunV("go", "build", "-o", "bin/xjsparse", "./cmd/xjsparse")
}

// Clean removes generated files.
func Clean() error {
	fmt.Println("Cleaning generated files...")
	return sh.Rm("bin")
}

// Tidy runs go mod tidy.
func Tidy() error {
	fmt.Println("Tidying go.mod...")
	return sh.RunV("go", "mod", "tidy")
}

// CI runs the full pipeline: vet, unit tests, smoke parse, build.
func CI() error {
	mg.SerialDeps(Vet, TestUnit, Smoke, Build)
	return nil
}
