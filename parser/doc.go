// Package parser turns a token stream into an *ast.Program or a single
// *ast.Expression. The base grammar (New/NewBuilder with no plugins
// installed) covers the full non-typed, non-markup language; dialect
// packages layer additional statement/expression/token productions on top
// via Builder.Install.
package parser
