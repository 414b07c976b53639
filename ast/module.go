package ast

func (*ImportDeclaration) Type() string      { return "ImportDeclaration" }
func (*ImportSpecifier) Type() string        { return "ImportSpecifier" }
func (*ImportDefaultSpecifier) Type() string { return "ImportDefaultSpecifier" }
func (*ImportNamespaceSpecifier) Type() string { return "ImportNamespaceSpecifier" }
func (*ExportNamedDeclaration) Type() string { return "ExportNamedDeclaration" }
func (*ExportDefaultDeclaration) Type() string { return "ExportDefaultDeclaration" }
func (*ExportAllDeclaration) Type() string   { return "ExportAllDeclaration" }
func (*ExportSpecifier) Type() string        { return "ExportSpecifier" }

func (*ImportDeclaration) statementNode()        {}
func (*ExportNamedDeclaration) statementNode()   {}
func (*ExportDefaultDeclaration) statementNode() {}
func (*ExportAllDeclaration) statementNode()     {}

// ImportSpecifier is one `{ imported as local }` clause of an import.
type ImportSpecifier struct {
	base
	Imported *Identifier
	Local    *Identifier
}

type ImportDefaultSpecifier struct {
	base
	Local *Identifier
}

type ImportNamespaceSpecifier struct {
	base
	Local *Identifier
}

type ImportDeclaration struct {
	base
	Specifiers []Node // *ImportSpecifier, *ImportDefaultSpecifier, *ImportNamespaceSpecifier
	Source     *StringLiteral
}

type ExportSpecifier struct {
	base
	Local    *Identifier
	Exported *Identifier
}

type ExportNamedDeclaration struct {
	base
	// Declaration is non-nil for `export const x = 1` and nil for
	// `export { a, b as c } [from "m"]`.
	Declaration Declaration
	Specifiers  []*ExportSpecifier
	Source      *StringLiteral
}

type ExportDefaultDeclaration struct {
	base
	// Declaration is a Declaration or an Expression (`export default 1 + 1`).
	Declaration Node
}

type ExportAllDeclaration struct {
	base
	Exported *Identifier // non-nil for `export * as ns from "m"`
	Source   *StringLiteral
}
