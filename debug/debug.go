// Package debug prints ast.Node values for inspection during development.
package debug

import (
	"strings"

	"github.com/davecgh/go-spew/spew"
	"github.com/xjslang/xjsfront/ast"
)

var cfg = &spew.ConfigState{
	Indent:                  "   ",
	DisableMethods:          true,
	DisablePointerAddresses: true,
	ContinueOnMethod:        false,
}

// Dump returns a multi-line, indented representation of node's full
// struct tree (every field, including nested nodes, comments, and Extra
// side-table entries).
func Dump(node ast.Node) string {
	var b strings.Builder
	cfg.Fdump(&b, node)
	return b.String()
}

// Print writes Dump's output to stdout.
func Print(node ast.Node) {
	cfg.Dump(node)
}
