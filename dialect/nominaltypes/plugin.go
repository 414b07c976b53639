package nominaltypes

import (
	"github.com/xjslang/xjsfront/parser"
	"github.com/xjslang/xjsfront/token"
)

// Plugin installs the nominal-types ("typescript") dialect onto a
// parser.Builder: `interface`/`type`/`enum`/`namespace` declarations at
// statement position, `: T` annotations on bindings/parameters/return
// types, and the `as`/`!` postfix-position operators.
func Plugin(b *parser.Builder) {
	b.UseStatementInterceptor(statementInterceptor)
	b.UseTypeAnnotationHook(parseTypeAnnotation)
	b.UseParserSetup(func(p *parser.Parser) {
		asPrecedence := parser.BINARY + token.Lookup(token.LT).Precedence
		p.RegisterInfix(token.AS, asPrecedence, parseAsExpression)
		p.RegisterPostfix(token.NOT, parseNonNullPostfix)
	})
}
