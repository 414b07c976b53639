// Package xjsfront provides a JavaScript-family lexer and parser with
// pluggable dialect support (structural types, nominal types, JSX-style
// markup, and an ESTree-shaped output mode).
//
// Example usage:
//
//	package main
//
//	import (
//		"fmt"
//		"github.com/xjslang/xjsfront"
//	)
//
//	func main() {
//		program, errs := xjsfront.Parse(`let x = 5; const add = (a, b) => a + b;`, xjsfront.Options{})
//		if len(errs) > 0 {
//			panic(errs[0])
//		}
//		fmt.Println(program.Body)
//	}
package xjsfront

import (
	"github.com/xjslang/xjsfront/ast"
	"github.com/xjslang/xjsfront/parser"
)

// Options re-exports parser.Options so callers never need to import
// package parser directly for the common case.
type Options = parser.Options

// Error re-exports parser.Error.
type Error = parser.Error

// Parse lexes and parses input as a full program and returns the resulting
// AST along with any errors. In TolerantMode errs may be non-empty even
// when program is non-nil and usable; otherwise a non-empty errs means
// program reflects only what was parsed before the first fatal error.
func Parse(input string, opts Options) (*ast.Program, []*Error) {
	p := parser.New(input, opts)
	return p.Parse()
}

// ParseExpression lexes and parses input as a single standalone expression.
func ParseExpression(input string, opts Options) (ast.Expression, []*Error) {
	p := parser.New(input, opts)
	return p.ParseExpression()
}

// Version is the current version of xjsfront.
const Version = "0.1.0"
