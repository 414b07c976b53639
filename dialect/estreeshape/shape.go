package estreeshape

import (
	"github.com/xjslang/xjsfront/ast"
	"github.com/xjslang/xjsfront/parser"
	"github.com/xjslang/xjsfront/token"
)

// transformExpression runs after the base grammar (and any dialect layered
// further out) has already built e: it only ever replaces a node with an
// equivalent one of the same span, never reshapes the tree around it.
func transformExpression(p *parser.Parser, e ast.Expression) ast.Expression {
	switch n := e.(type) {
	case *ast.NumericLiteral:
		return finishLiteral(p, n, n.Value, n.Raw, nil)
	case *ast.StringLiteral:
		return finishLiteral(p, n, n.Value, n.Raw, nil)
	case *ast.BooleanLiteral:
		return finishLiteral(p, n, n.Value, "", nil)
	case *ast.NullLiteral:
		return finishLiteral(p, n, nil, "null", nil)
	case *ast.RegExpLiteral:
		raw := "/" + n.Pattern + "/" + n.Flags
		return finishLiteral(p, n, nil, raw, &ast.RegexValue{Pattern: n.Pattern, Flags: n.Flags})
	case *ast.ClassExpression:
		transformClassBody(p, n.Body)
		return n
	default:
		return e
	}
}

func transformStatement(p *parser.Parser, s ast.Statement) ast.Statement {
	if cd, ok := s.(*ast.ClassDeclaration); ok {
		transformClassBody(p, cd.Body)
	}
	return s
}

func finishLiteral(p *parser.Parser, n ast.Node, value any, raw string, regex *ast.RegexValue) ast.Expression {
	return ast.Finish(p.Factory(), &ast.Literal{Value: value, Raw: raw, Regex: regex}, ast.Start(n), ast.End(n), token.Position{}, token.Position{})
}

// transformClassBody replaces each ClassMethod entry in body.Body with a
// MethodDefinition wrapping a FunctionExpression, in place. ClassProperty
// and StaticBlock entries are left untouched; a community-standard tree
// already represents those the same way this grammar does.
func transformClassBody(p *parser.Parser, body *ast.ClassBody) {
	for i, member := range body.Body {
		cm, ok := member.(*ast.ClassMethod)
		if !ok {
			continue
		}
		fn := ast.Finish(p.Factory(), &ast.FunctionExpression{
			Params:    cm.Params,
			Body:      cm.Body,
			Generator: cm.Generator,
			Async:     cm.Async,
		}, ast.Start(cm), ast.End(cm), token.Position{}, token.Position{})
		body.Body[i] = ast.Finish(p.Factory(), &ast.MethodDefinition{
			Key:        cm.Key,
			Value:      fn,
			Kind:       cm.Kind,
			Static:     cm.Static,
			Computed:   cm.Computed,
			Decorators: cm.Decorators,
		}, ast.Start(cm), ast.End(cm), token.Position{}, token.Position{})
	}
}
