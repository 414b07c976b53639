package parser

import (
	"github.com/xjslang/xjsfront/ast"
	"github.com/xjslang/xjsfront/token"
)

func parseClassDeclaration(p *Parser) ast.Statement {
	start := p.curTok
	decorators := parsePendingDecorators(p)
	p.expect(token.CLASS)
	var id *ast.Identifier
	if p.at(token.IDENT) {
		nameTok := p.curTok
		p.next()
		id = ast.Finish(p.factory, &ast.Identifier{Name: nameTok.Literal}, nameTok.Start, nameTok.End, nameTok.StartPos, nameTok.EndPos)
	}
	super, body := parseClassTail(p)
	return ast.Finish(p.factory, &ast.ClassDeclaration{ID: id, SuperClass: super, Body: body, Decorators: decorators}, start.Start, p.prevEnd(), start.StartPos, p.curStartPos())
}

func parseClassExpr(p *Parser) ast.Expression {
	start := p.curTok
	p.expect(token.CLASS)
	var id *ast.Identifier
	if p.at(token.IDENT) {
		nameTok := p.curTok
		p.next()
		id = ast.Finish(p.factory, &ast.Identifier{Name: nameTok.Literal}, nameTok.Start, nameTok.End, nameTok.StartPos, nameTok.EndPos)
	}
	super, body := parseClassTail(p)
	return ast.Finish(p.factory, &ast.ClassExpression{ID: id, SuperClass: super, Body: body}, start.Start, p.prevEnd(), start.StartPos, p.curStartPos())
}

func parseClassTail(p *Parser) (ast.Expression, *ast.ClassBody) {
	var super ast.Expression
	if p.consumeIf(token.EXTENDS) {
		super = p.parseExpression(CALL)
	}
	body := parseClassBody(p)
	return super, body
}

// parsePendingDecorators consumes zero or more leading `@expr` decorators
// attached to the class or member that follows.
func parsePendingDecorators(p *Parser) []*ast.Decorator {
	var decs []*ast.Decorator
	for p.at(token.AT) {
		start := p.curTok
		p.next()
		expr := p.parseExpression(CALL)
		decs = append(decs, ast.Finish(p.factory, &ast.Decorator{Expression: expr}, start.Start, p.prevEnd(), start.StartPos, p.curStartPos()))
	}
	return decs
}

func parseClassBody(p *Parser) *ast.ClassBody {
	start := p.expect(token.LBRACE)
	var members []ast.Node
	for !p.at(token.RBRACE) && !p.at(token.EOF) {
		if p.consumeIf(token.SEMICOLON) {
			continue
		}
		members = append(members, parseClassMember(p))
	}
	p.expect(token.RBRACE)
	return ast.Finish(p.factory, &ast.ClassBody{Body: members}, start.Start, p.prevEnd(), start.StartPos, p.curStartPos())
}

func parseClassMember(p *Parser) ast.Node {
	start := p.curTok
	decorators := parsePendingDecorators(p)

	if p.at(token.STATIC) && p.peekAt(token.LBRACE) {
		p.next()
		body := parseBlock(p)
		return ast.Finish(p.factory, &ast.StaticBlock{Body: body.Body}, start.Start, p.prevEnd(), start.StartPos, p.curStartPos())
	}

	static := false
	if p.at(token.STATIC) && !p.peekAt(token.LPAREN) && !p.peekAt(token.ASSIGN) && !p.peekAt(token.SEMICOLON) {
		static = true
		p.next()
	}

	async := false
	generator := false
	kind := "method"

	if p.at(token.ASYNC) && !p.peekAt(token.LPAREN) && !p.peekAt(token.ASSIGN) && !p.peekTok.AfterNewline {
		async = true
		p.next()
	}
	if p.consumeIf(token.MULTIPLY) {
		generator = true
	}
	if (p.at(token.GET) || p.at(token.SET)) && !p.peekAt(token.LPAREN) && !p.peekAt(token.ASSIGN) && !p.peekAt(token.SEMICOLON) {
		kind = p.curTok.Literal
		p.next()
	}

	key, computed := parseClassMemberKey(p)

	if p.at(token.LPAREN) {
		params := parseFunctionParams(p)
		p.pushScope(scopeClassMethod)
		body := parseFunctionBody(p, params)
		p.popScope()
		if id, ok := key.(*ast.Identifier); ok && id.Name == "constructor" && !static {
			kind = "constructor"
		}
		return ast.Finish(p.factory, &ast.ClassMethod{Key: key, Params: params, Body: body, Kind: kind, Static: static, Computed: computed, Generator: generator, Async: async, Decorators: decorators}, start.Start, p.prevEnd(), start.StartPos, p.curStartPos())
	}

	var val ast.Expression
	if p.consumeIf(token.ASSIGN) {
		val = p.parseExpression(ASSIGNMENT)
	}
	p.expectSemicolonASI()
	return ast.Finish(p.factory, &ast.ClassProperty{Key: key, Value: val, Static: static, Computed: computed, Decorators: decorators}, start.Start, p.prevEnd(), start.StartPos, p.curStartPos())
}

func parseClassMemberKey(p *Parser) (ast.Expression, bool) {
	if p.at(token.PRIVATE_NAME) {
		tok := p.curTok
		p.next()
		return ast.Finish(p.factory, &ast.PrivateName{Name: tok.Literal}, tok.Start, tok.End, tok.StartPos, tok.EndPos), false
	}
	return parsePropertyKey(p)
}
