package parser

import (
	"github.com/xjslang/xjsfront/ast"
	"github.com/xjslang/xjsfront/token"
)

// parseDirectivePrologue consumes the leading run of bare string-literal
// expression statements at the start of a Program or function body,
// wrapping each as a Directive/DirectiveLiteral rather than the ordinary
// ExpressionStatement/StringLiteral pair parseExpressionStatement would
// produce. "use strict" among them flips p.inStrict for the remainder of
// the enclosing scope, per spec.
//
// A string literal only belongs to the prologue while it stands alone as a
// full statement: p.peekTok must be what expectSemicolonASI would accept
// (an explicit `;`, EOF, `}`, or a token after a line break), never an
// operator that would fold the literal into a larger expression like
// `"use strict" + x`. One token of lookahead is enough to tell the two
// apart, so this needs no speculative parse.
func parseDirectivePrologue(p *Parser) []*ast.Directive {
	var directives []*ast.Directive
	for p.curTok.Type == token.STRING && directiveTerminatorAhead(p) {
		tok := p.curTok
		if tok.Unterminated {
			p.raiseLexical(tok, "unterminated string literal")
		}
		p.next()
		literal := ast.Finish(p.factory, &ast.DirectiveLiteral{Value: tok.Value.(string), Raw: tok.Literal}, tok.Start, tok.End, tok.StartPos, tok.EndPos)
		p.expectSemicolonASI()
		directive := ast.Finish(p.factory, &ast.Directive{Value: literal}, tok.Start, p.prevEnd(), tok.StartPos, p.curStartPos())
		directives = append(directives, directive)
		if literal.Value == "use strict" {
			p.inStrict = true
		}
	}
	return directives
}

// directiveTerminatorAhead reports whether the token following the current
// string literal ends the statement there, rather than continuing it into
// a larger expression.
func directiveTerminatorAhead(p *Parser) bool {
	return p.peekTok.Type == token.SEMICOLON ||
		p.peekTok.Type == token.EOF ||
		p.peekTok.Type == token.RBRACE ||
		p.peekTok.AfterNewline
}

// parseFunctionBody parses a function's `{ ... }` body, recognizing its
// directive prologue (including "use strict") before the ordinary statement
// list. inStrict is restored to its pre-call value on return, since a
// function's own strict directive only applies to that function, not to
// whatever follows it at the call site.
func parseFunctionBody(p *Parser, params []*ast.Param) *ast.BlockStatement {
	outerStrict := p.inStrict
	defer func() { p.inStrict = outerStrict }()

	start := p.expect(token.LBRACE)
	directives := parseDirectivePrologue(p)
	var body []ast.Statement
	for !p.at(token.RBRACE) && !p.at(token.EOF) {
		body = append(body, p.parseStatement())
	}
	p.expect(token.RBRACE)
	return ast.Finish(p.factory, &ast.BlockStatement{Body: body, Directives: directives}, start.Start, p.prevEnd(), start.StartPos, p.curStartPos())
}
