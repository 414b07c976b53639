package ast

// Type annotation nodes shared by the structural-types (dialect/structuraltypes)
// and nominal-types (dialect/nominaltypes) plugins. Both plugins produce the
// same TypeAnnotation wrapper and the same family of type-expression nodes;
// what differs between them is which surface syntax is accepted (nominal
// interfaces/enums vs. structural object/union types) and the early-error
// rules each enforces, not the node shapes themselves, so one shared node
// family serves both rather than forking the catalog in two.

// Extra keys used to attach type-system side data onto base-grammar nodes
// without giving every node a field only one dialect ever populates: a
// Param's `: T` annotation and `?` optional marker, a VariableDeclarator's
// `: T` annotation, and a function's `): T` return-type annotation.
const (
	ExtraTypeAnnotation = "typeAnnotation"
	ExtraReturnType     = "returnType"
	ExtraOptional       = "optional"
)

func (*TypeAnnotation) Type() string        { return "TypeAnnotation" }
func (*TypeReference) Type() string         { return "TSTypeReference" }
func (*UnionType) Type() string             { return "UnionType" }
func (*IntersectionType) Type() string      { return "IntersectionType" }
func (*ObjectType) Type() string            { return "ObjectType" }
func (*ObjectTypeProperty) Type() string    { return "ObjectTypeProperty" }
func (*ArrayType) Type() string             { return "ArrayType" }
func (*FunctionType) Type() string          { return "FunctionType" }
func (*GenericTypeParameter) Type() string  { return "TypeParameter" }
func (*InterfaceDeclaration) Type() string  { return "InterfaceDeclaration" }
func (*TypeAliasDeclaration) Type() string  { return "TypeAliasDeclaration" }
func (*EnumDeclaration) Type() string       { return "EnumDeclaration" }
func (*EnumMember) Type() string            { return "EnumMember" }
func (*AsExpression) Type() string          { return "AsExpression" }
func (*NonNullExpression) Type() string     { return "NonNullExpression" }
func (*NamespaceDeclaration) Type() string  { return "TSModuleDeclaration" }

func (*InterfaceDeclaration) statementNode()   {}
func (*InterfaceDeclaration) declarationNode() {}
func (*TypeAliasDeclaration) statementNode()   {}
func (*TypeAliasDeclaration) declarationNode() {}
func (*EnumDeclaration) statementNode()        {}
func (*EnumDeclaration) declarationNode()      {}
func (*AsExpression) expressionNode()          {}
func (*NonNullExpression) expressionNode()     {}
func (*NamespaceDeclaration) statementNode()   {}
func (*NamespaceDeclaration) declarationNode() {}

// NamespaceDeclaration is nominal-types' `namespace Foo { ... }` (or the
// legacy `module Foo { ... }` spelling, tracked via Module).
type NamespaceDeclaration struct {
	base
	ID     *Identifier
	Body   []Statement
	Module bool
}

// TypeAnnotation wraps a type expression where it attaches to a binding,
// parameter, or return position: `let x: Foo`, `function f(): Bar`.
type TypeAnnotation struct {
	base
	TypeExpression Node
}

// TypeReference names a type by identifier, with optional generic
// instantiation arguments: `Array<string>`, `Foo`.
type TypeReference struct {
	base
	Name           *Identifier
	TypeParameters []Node
}

type UnionType struct {
	base
	Types []Node
}

type IntersectionType struct {
	base
	Types []Node
}

// ObjectTypeProperty is one field of an ObjectType: `foo: string`, or a
// `...` spread of another type.
type ObjectTypeProperty struct {
	base
	Key      *Identifier
	Value    Node
	Optional bool
	Readonly bool
}

type ObjectType struct {
	base
	Properties []*ObjectTypeProperty
	Exact      bool // structural-types `{| ... |}` exact-object syntax
}

type ArrayType struct {
	base
	ElementType Node
}

type FunctionType struct {
	base
	Params     []*Param
	ReturnType Node
}

// GenericTypeParameter is one entry of a `<T, U extends V>` parameter list.
type GenericTypeParameter struct {
	base
	Name       *Identifier
	Constraint Node
	Default    Node
}

type InterfaceDeclaration struct {
	base
	ID             *Identifier
	TypeParameters []*GenericTypeParameter
	Extends        []*TypeReference
	Body           *ObjectType
}

type TypeAliasDeclaration struct {
	base
	ID             *Identifier
	TypeParameters []*GenericTypeParameter
	Right          Node
}

type EnumMember struct {
	base
	ID          *Identifier
	Initializer Expression
}

type EnumDeclaration struct {
	base
	ID      *Identifier
	Members []*EnumMember
	Const   bool
}

// AsExpression is nominal-types' `expr as Type` cast.
type AsExpression struct {
	base
	Expression     Expression
	TypeExpression Node
}

// NonNullExpression is nominal-types' `expr!` non-null assertion.
type NonNullExpression struct {
	base
	Expression Expression
}
