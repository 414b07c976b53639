package estreeshape

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/xjslang/xjsfront/ast"
	"github.com/xjslang/xjsfront/parser"
)

type span struct{ Start, End int }

func topLevelSpans(prog *ast.Program) []span {
	spans := make([]span, len(prog.Body))
	for i, stmt := range prog.Body {
		spans[i] = span{Start: ast.Start(stmt), End: ast.End(stmt)}
	}
	return spans
}

// TestShapeDoesNotMoveSpans pins down the invariant that the estree-shape
// rewrite only ever substitutes node tags, never shifts what source range a
// statement covers: parsing the same program with and without the dialect
// installed must yield identical top-level spans.
func TestShapeDoesNotMoveSpans(t *testing.T) {
	src := `1; "x"; true; null; /a/g; class C { foo() {} } let o = { a: 1 };`
	plain := parser.NewBuilder().Build(src, parser.Options{})
	plainProg, errs := plain.Parse()
	if len(errs) > 0 {
		t.Fatalf("unexpected errors in plain parse: %v", errs)
	}
	shaped := mustParse(t, src)
	if diff := cmp.Diff(topLevelSpans(plainProg), topLevelSpans(shaped)); diff != "" {
		t.Fatalf("top-level spans differ between plain and estree-shaped parse (-plain +shaped):\n%s", diff)
	}
}

func mustParse(t *testing.T, src string) *ast.Program {
	t.Helper()
	p := parser.NewBuilder().Install(Plugin).Build(src, parser.Options{})
	prog, errs := p.Parse()
	if len(errs) > 0 {
		t.Fatalf("unexpected errors parsing %q: %v", src, errs)
	}
	return prog
}

func exprOf(t *testing.T, prog *ast.Program) ast.Expression {
	t.Helper()
	stmt, ok := prog.Body[0].(*ast.ExpressionStatement)
	if !ok {
		t.Fatalf("expected an expression statement, got %T", prog.Body[0])
	}
	return stmt.Expression
}

func TestNumericAndStringLiteralsUnify(t *testing.T) {
	prog := mustParse(t, `1; "x";`)
	num := prog.Body[0].(*ast.ExpressionStatement).Expression.(*ast.Literal)
	if num.Value.(float64) != 1 {
		t.Fatalf("unexpected numeric literal value: %#v", num.Value)
	}
	str := prog.Body[1].(*ast.ExpressionStatement).Expression.(*ast.Literal)
	if str.Value.(string) != "x" {
		t.Fatalf("unexpected string literal value: %#v", str.Value)
	}
}

func TestBooleanAndNullLiteralsUnify(t *testing.T) {
	prog := mustParse(t, `true; null;`)
	b := prog.Body[0].(*ast.ExpressionStatement).Expression.(*ast.Literal)
	if b.Value.(bool) != true {
		t.Fatalf("unexpected boolean literal value: %#v", b.Value)
	}
	n := prog.Body[1].(*ast.ExpressionStatement).Expression.(*ast.Literal)
	if n.Value != nil {
		t.Fatalf("expected a nil Value for null literal, got %#v", n.Value)
	}
	if n.Raw != "null" {
		t.Fatalf("expected Raw %q, got %q", "null", n.Raw)
	}
}

func TestRegexLiteralCarriesRegexField(t *testing.T) {
	prog := mustParse(t, `let r = /ab+c/gi;`)
	decl := prog.Body[0].(*ast.VariableDeclaration)
	lit := decl.Declarations[0].Init.(*ast.Literal)
	if lit.Regex == nil || lit.Regex.Pattern != "ab+c" || lit.Regex.Flags != "gi" {
		t.Fatalf("unexpected regex literal: %#v", lit.Regex)
	}
}

func TestClassMethodsBecomeMethodDefinitions(t *testing.T) {
	prog := mustParse(t, `class C { constructor() {} foo() { return 1; } }`)
	cls := prog.Body[0].(*ast.ClassDeclaration)
	if len(cls.Body.Body) != 2 {
		t.Fatalf("expected 2 class members, got %d", len(cls.Body.Body))
	}
	for _, member := range cls.Body.Body {
		md, ok := member.(*ast.MethodDefinition)
		if !ok {
			t.Fatalf("expected MethodDefinition, got %T", member)
		}
		if md.Value == nil || md.Value.Body == nil {
			t.Fatalf("expected MethodDefinition.Value to carry the method body")
		}
	}
}

func TestClassExpressionMethodsAlsoWrapped(t *testing.T) {
	prog := mustParse(t, `let C = class { bar() {} };`)
	decl := prog.Body[0].(*ast.VariableDeclaration)
	cls := decl.Declarations[0].Init.(*ast.ClassExpression)
	if _, ok := cls.Body.Body[0].(*ast.MethodDefinition); !ok {
		t.Fatalf("expected MethodDefinition inside class expression body, got %T", cls.Body.Body[0])
	}
}

func TestObjectPropertyShapeUnchanged(t *testing.T) {
	prog := mustParse(t, `let o = { a: 1, foo() {} };`)
	decl := prog.Body[0].(*ast.VariableDeclaration)
	obj := decl.Declarations[0].Init.(*ast.ObjectExpression)
	if len(obj.Properties) != 2 {
		t.Fatalf("expected 2 properties, got %d", len(obj.Properties))
	}
	if obj.Properties[1].Kind == "" {
		t.Fatalf("expected a method property to still carry a Kind")
	}
}
