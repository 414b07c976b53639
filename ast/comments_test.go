package ast

import (
	"testing"

	"github.com/xjslang/xjsfront/token"
)

func TestAttachCommentsLeadingAndTrailing(t *testing.T) {
	// source: "a; // trail\n// lead\nb;"
	src := []rune("a; // trail\n// lead\nb;")
	f := NewFactory("", false)

	a := Finish(f, &Identifier{Name: "a"}, 0, 1, token.Position{}, token.Position{})
	stmtA := Finish(f, &ExpressionStatement{Expression: a}, 0, 2, token.Position{}, token.Position{})

	b := Finish(f, &Identifier{Name: "b"}, 20, 21, token.Position{}, token.Position{})
	stmtB := Finish(f, &ExpressionStatement{Expression: b}, 20, 22, token.Position{}, token.Position{})

	program := Finish(f, &Program{Body: []Statement{stmtA, stmtB}, SourceType: "script"}, 0, 22, token.Position{}, token.Position{})

	comments := []token.Comment{
		{Kind: token.CommentLine, Value: " trail", Span: token.Span{Start: 3, End: 11}},
		{Kind: token.CommentLine, Value: " lead", Span: token.Span{Start: 12, End: 19}},
	}

	AttachComments(program, comments, src)

	if len(stmtA.TrailingComments) != 1 || stmtA.TrailingComments[0].Value != " trail" {
		t.Fatalf("expected trailing comment on stmtA, got %+v", stmtA.TrailingComments)
	}
	if len(stmtB.LeadingComments) != 1 || stmtB.LeadingComments[0].Value != " lead" {
		t.Fatalf("expected leading comment on stmtB, got %+v", stmtB.LeadingComments)
	}
}

func TestNodeWalkCollectsNested(t *testing.T) {
	f := NewFactory("", false)
	left := Finish(f, &Identifier{Name: "x"}, 0, 1, token.Position{}, token.Position{})
	right := Finish(f, &NumericLiteral{Value: 1}, 4, 5, token.Position{}, token.Position{})
	bin := Finish(f, &BinaryExpression{Operator: "+", Left: left, Right: right}, 0, 5, token.Position{}, token.Position{})
	stmt := Finish(f, &ExpressionStatement{Expression: bin}, 0, 6, token.Position{}, token.Position{})
	program := Finish(f, &Program{Body: []Statement{stmt}}, 0, 6, token.Position{}, token.Position{})

	nodes := nodeWalk(program)
	if len(nodes) != 5 {
		t.Fatalf("expected 5 nodes (program, stmt, bin, left, right), got %d: %+v", len(nodes), nodes)
	}
}
