package structuraltypes

import (
	"testing"

	"github.com/xjslang/xjsfront/ast"
	"github.com/xjslang/xjsfront/parser"
)

func mustParse(t *testing.T, src string) *ast.Program {
	t.Helper()
	p := parser.NewBuilder().Install(Plugin).Build(src, parser.Options{})
	prog, errs := p.Parse()
	if len(errs) > 0 {
		t.Fatalf("unexpected errors parsing %q: %v", src, errs)
	}
	return prog
}

func TestVariableAnnotation(t *testing.T) {
	prog := mustParse(t, "let x: number = 1;")
	decl := prog.Body[0].(*ast.VariableDeclaration)
	raw, ok := ast.GetExtra(decl.Declarations[0], ast.ExtraTypeAnnotation)
	if !ok {
		t.Fatalf("expected type annotation on declarator")
	}
	annotation := raw.(*ast.TypeAnnotation)
	ref, ok := annotation.TypeExpression.(*ast.TypeReference)
	if !ok || ref.Name.Name != "number" {
		t.Fatalf("expected TypeReference(number), got %#v", annotation.TypeExpression)
	}
}

func TestFunctionParamsAndReturnType(t *testing.T) {
	prog := mustParse(t, "function add(a: number, b?: number): number { return a + b; }")
	fn := prog.Body[0].(*ast.FunctionDeclaration)
	if len(fn.Params) != 2 {
		t.Fatalf("expected 2 params, got %d", len(fn.Params))
	}
	if _, ok := ast.GetExtra(fn.Params[1], ast.ExtraOptional); !ok {
		t.Fatalf("expected second param to be marked optional")
	}
	if _, ok := ast.GetExtra(fn, ast.ExtraReturnType); !ok {
		t.Fatalf("expected a return type annotation on the declaration")
	}
}

func TestTypeAliasUnionAndIntersection(t *testing.T) {
	prog := mustParse(t, "type ID = string | number; type Both = A & B;")
	alias := prog.Body[0].(*ast.TypeAliasDeclaration)
	if alias.ID.Name != "ID" {
		t.Fatalf("unexpected alias name: %s", alias.ID.Name)
	}
	if _, ok := alias.Right.(*ast.UnionType); !ok {
		t.Fatalf("expected UnionType, got %T", alias.Right)
	}
	alias2 := prog.Body[1].(*ast.TypeAliasDeclaration)
	if _, ok := alias2.Right.(*ast.IntersectionType); !ok {
		t.Fatalf("expected IntersectionType, got %T", alias2.Right)
	}
}

func TestObjectAndExactObjectTypes(t *testing.T) {
	prog := mustParse(t, "type Point = { x: number, y: number }; type Exact = {| x: number |};")
	point := prog.Body[0].(*ast.TypeAliasDeclaration).Right.(*ast.ObjectType)
	if point.Exact || len(point.Properties) != 2 {
		t.Fatalf("unexpected Point shape: %#v", point)
	}
	exact := prog.Body[1].(*ast.TypeAliasDeclaration).Right.(*ast.ObjectType)
	if !exact.Exact {
		t.Fatalf("expected exact object type")
	}
}

func TestArrayAndFunctionTypes(t *testing.T) {
	prog := mustParse(t, "type Nums = number[]; type Mapper = (x: number) => string;")
	nums := prog.Body[0].(*ast.TypeAliasDeclaration).Right
	if _, ok := nums.(*ast.ArrayType); !ok {
		t.Fatalf("expected ArrayType, got %T", nums)
	}
	mapper := prog.Body[1].(*ast.TypeAliasDeclaration).Right
	fnType, ok := mapper.(*ast.FunctionType)
	if !ok || len(fnType.Params) != 1 {
		t.Fatalf("expected FunctionType with 1 param, got %#v", mapper)
	}
}

func TestInterfaceDeclaration(t *testing.T) {
	prog := mustParse(t, "interface Shape extends Base { area(): number, readonly sides: number }")
	iface := prog.Body[0].(*ast.InterfaceDeclaration)
	if iface.ID.Name != "Shape" || len(iface.Extends) != 1 || iface.Extends[0].Name.Name != "Base" {
		t.Fatalf("unexpected interface shape: %#v", iface)
	}
	if len(iface.Body.Properties) != 2 || !iface.Body.Properties[1].Readonly {
		t.Fatalf("expected second property to be readonly: %#v", iface.Body.Properties)
	}
}

func TestGenericTypeAlias(t *testing.T) {
	prog := mustParse(t, "type Box<T extends object = {}> = { value: T };")
	alias := prog.Body[0].(*ast.TypeAliasDeclaration)
	if len(alias.TypeParameters) != 1 || alias.TypeParameters[0].Name.Name != "T" {
		t.Fatalf("unexpected type parameters: %#v", alias.TypeParameters)
	}
	if alias.TypeParameters[0].Constraint == nil || alias.TypeParameters[0].Default == nil {
		t.Fatalf("expected both constraint and default on T")
	}
}

func TestTypeCastExpression(t *testing.T) {
	prog := mustParse(t, "let y = (x: number);")
	decl := prog.Body[0].(*ast.VariableDeclaration)
	if _, ok := decl.Declarations[0].Init.(*ast.AsExpression); !ok {
		t.Fatalf("expected AsExpression for a parenthesized type cast, got %T", decl.Declarations[0].Init)
	}
}

func TestDeclareWrapsAmbientDeclaration(t *testing.T) {
	prog := mustParse(t, "declare type T = string;")
	stmt := prog.Body[0]
	if _, ok := ast.GetExtra(stmt, "ambient"); !ok {
		t.Fatalf("expected declare to mark the inner declaration ambient")
	}
}

func TestTypeKeywordAsOrdinaryIdentifier(t *testing.T) {
	prog := mustParse(t, "let type = 1; type = type + 1;")
	if len(prog.Body) != 2 {
		t.Fatalf("expected `type` usable as an ordinary identifier, got %d statements", len(prog.Body))
	}
}
