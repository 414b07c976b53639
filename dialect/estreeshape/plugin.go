package estreeshape

import (
	"github.com/xjslang/xjsfront/ast"
	"github.com/xjslang/xjsfront/parser"
)

// Plugin installs the estree-shape dialect onto a parser.Builder.
func Plugin(b *parser.Builder) {
	b.UseExpressionInterceptor(func(p *parser.Parser, next func() ast.Expression) ast.Expression {
		return transformExpression(p, next())
	})
	b.UseStatementInterceptor(func(p *parser.Parser, next func() ast.Statement) ast.Statement {
		return transformStatement(p, next())
	})
}
