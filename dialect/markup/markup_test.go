package markup

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

func exprOf(t *testing.T, prog *ast.Program) ast.Expression {
	t.Helper()
	stmt, ok := prog.Body[0].(*ast.ExpressionStatement)
	if !ok {
		t.Fatalf("expected an expression statement, got %T", prog.Body[0])
	}
	return stmt.Expression
}

func TestSelfClosingElementWithAttributes(t *testing.T) {
	prog := mustParse(t, `<input type="text" disabled />;`)
	el := exprOf(t, prog).(*ast.JSXElement)
	if !el.Opening.SelfClosing {
		t.Fatalf("expected a self-closing element")
	}
	name := el.Opening.Name.(*ast.JSXIdentifier)
	if name.Name != "input" {
		t.Fatalf("unexpected tag name: %q", name.Name)
	}
	if len(el.Opening.Attributes) != 2 {
		t.Fatalf("expected 2 attributes, got %d", len(el.Opening.Attributes))
	}
	typeAttr := el.Opening.Attributes[0].(*ast.JSXAttribute)
	if typeAttr.Name.Name != "type" {
		t.Fatalf("unexpected first attribute name: %q", typeAttr.Name.Name)
	}
	str, ok := typeAttr.Value.(*ast.StringLiteral)
	if !ok || str.Value != "text" {
		t.Fatalf("expected string attribute value %q, got %#v", "text", typeAttr.Value)
	}
	disabledAttr := el.Opening.Attributes[1].(*ast.JSXAttribute)
	if disabledAttr.Name.Name != "disabled" || disabledAttr.Value != nil {
		t.Fatalf("expected a valueless boolean attribute, got %#v", disabledAttr)
	}
}

func TestElementWithTextAndExpressionChildren(t *testing.T) {
	prog := mustParse(t, `<div>hello {name}</div>;`)
	el := exprOf(t, prog).(*ast.JSXElement)
	if len(el.Children) != 2 {
		t.Fatalf("expected 2 children, got %d", len(el.Children))
	}
	text := el.Children[0].(*ast.JSXText)
	if text.Value != "hello" {
		t.Fatalf("unexpected text child: %q", text.Value)
	}
	container := el.Children[1].(*ast.JSXExpressionContainer)
	if _, ok := container.Expression.(*ast.Identifier); !ok {
		t.Fatalf("expected an identifier inside the expression container, got %T", container.Expression)
	}
	if el.Closing.Name.(*ast.JSXIdentifier).Name != "div" {
		t.Fatalf("unexpected closing tag name")
	}
}

func TestTextChildDecodesEntityReference(t *testing.T) {
	prog := mustParse(t, `<p>Tom &amp; Jerry</p>;`)
	el := exprOf(t, prog).(*ast.JSXElement)
	text := el.Children[0].(*ast.JSXText)
	if text.Value != "Tom & Jerry" {
		t.Fatalf("expected decoded entity, got %q", text.Value)
	}
	if text.Raw != "Tom &amp; Jerry" {
		t.Fatalf("expected undecoded Raw to keep the entity spelling, got %q", text.Raw)
	}
}

func TestNestedElementsAndFragment(t *testing.T) {
	prog := mustParse(t, `<><span>a</span><span>b</span></>;`)
	frag := exprOf(t, prog).(*ast.JSXFragment)
	if len(frag.Children) != 2 {
		t.Fatalf("expected 2 children in fragment, got %d", len(frag.Children))
	}
	first := frag.Children[0].(*ast.JSXElement)
	if first.Opening.Name.(*ast.JSXIdentifier).Name != "span" {
		t.Fatalf("unexpected first child tag")
	}
}

func TestSpreadAttributeAndDottedName(t *testing.T) {
	prog := mustParse(t, `<Foo.Bar {...props} />;`)
	el := exprOf(t, prog).(*ast.JSXElement)
	member, ok := el.Opening.Name.(*ast.JSXMemberExpression)
	if !ok {
		t.Fatalf("expected a dotted JSX name, got %T", el.Opening.Name)
	}
	if member.Property.Name != "Bar" {
		t.Fatalf("unexpected property name: %q", member.Property.Name)
	}
	spread, ok := el.Opening.Attributes[0].(*ast.JSXSpreadAttribute)
	if !ok {
		t.Fatalf("expected a spread attribute, got %T", el.Opening.Attributes[0])
	}
	if _, ok := spread.Argument.(*ast.Identifier); !ok {
		t.Fatalf("expected an identifier spread argument, got %T", spread.Argument)
	}
}

func TestHyphenatedAttributeName(t *testing.T) {
	prog := mustParse(t, `<div data-id="1" />;`)
	el := exprOf(t, prog).(*ast.JSXElement)
	attr := el.Opening.Attributes[0].(*ast.JSXAttribute)
	if attr.Name.Name != "data-id" {
		t.Fatalf("expected hyphenated attribute name, got %q", attr.Name.Name)
	}
}

func TestLessThanStillBinaryOutsidePrefixPosition(t *testing.T) {
	prog := mustParse(t, "let ok = a < b;")
	decl := prog.Body[0].(*ast.VariableDeclaration)
	if _, ok := decl.Declarations[0].Init.(*ast.BinaryExpression); !ok {
		t.Fatalf("expected a binary expression for infix `<`, got %T", decl.Declarations[0].Init)
	}
}
