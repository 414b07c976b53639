package nominaltypes

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

func TestInterfaceAndTypeAlias(t *testing.T) {
	prog := mustParse(t, "interface Animal { name: string; } type ID = string | number;")
	iface := prog.Body[0].(*ast.InterfaceDeclaration)
	if iface.ID.Name != "Animal" || len(iface.Body.Properties) != 1 {
		t.Fatalf("unexpected interface: %#v", iface)
	}
	alias := prog.Body[1].(*ast.TypeAliasDeclaration)
	if _, ok := alias.Right.(*ast.UnionType); !ok {
		t.Fatalf("expected UnionType, got %T", alias.Right)
	}
}

func TestEnumDeclaration(t *testing.T) {
	prog := mustParse(t, "enum Color { Red, Green, Blue = 5 } const enum Direction { Up, Down }")
	e := prog.Body[0].(*ast.EnumDeclaration)
	if e.ID.Name != "Color" || len(e.Members) != 3 || e.Const {
		t.Fatalf("unexpected enum: %#v", e)
	}
	if e.Members[2].Initializer == nil {
		t.Fatalf("expected Blue to have an initializer")
	}
	ce := prog.Body[1].(*ast.EnumDeclaration)
	if !ce.Const || ce.ID.Name != "Direction" {
		t.Fatalf("unexpected const enum: %#v", ce)
	}
}

func TestNamespaceDeclaration(t *testing.T) {
	prog := mustParse(t, "namespace Util { let x = 1; }")
	ns := prog.Body[0].(*ast.NamespaceDeclaration)
	if ns.ID.Name != "Util" || ns.Module || len(ns.Body) != 1 {
		t.Fatalf("unexpected namespace: %#v", ns)
	}
}

func TestAsExpressionAndNonNull(t *testing.T) {
	prog := mustParse(t, "let a = (x as number); let b = y!.z;")
	decl := prog.Body[0].(*ast.VariableDeclaration)
	paren := decl.Declarations[0].Init.(*ast.ParenthesizedExpression)
	if _, ok := paren.Expression.(*ast.AsExpression); !ok {
		t.Fatalf("expected AsExpression inside parens, got %T", paren.Expression)
	}
	decl2 := prog.Body[1].(*ast.VariableDeclaration)
	member := decl2.Declarations[0].Init.(*ast.MemberExpression)
	if _, ok := member.Object.(*ast.NonNullExpression); !ok {
		t.Fatalf("expected NonNullExpression as member object, got %T", member.Object)
	}
}

func TestParamAndReturnTypeAnnotations(t *testing.T) {
	prog := mustParse(t, "function id(x: number): number { return x; }")
	fn := prog.Body[0].(*ast.FunctionDeclaration)
	raw, ok := ast.GetExtra(fn.Params[0], ast.ExtraTypeAnnotation)
	if !ok {
		t.Fatalf("expected param type annotation")
	}
	ref := raw.(*ast.TypeAnnotation).TypeExpression.(*ast.TypeReference)
	if ref.Name.Name != "number" {
		t.Fatalf("unexpected param type: %#v", ref)
	}
	if _, ok := ast.GetExtra(fn, ast.ExtraReturnType); !ok {
		t.Fatalf("expected return type annotation")
	}
}

func TestEnumKeywordAsOrdinaryIdentifier(t *testing.T) {
	prog := mustParse(t, "let enum = 1; enum = enum + 1;")
	if len(prog.Body) != 2 {
		t.Fatalf("expected `enum` usable as an ordinary identifier outside declaration position, got %d statements", len(prog.Body))
	}
}
