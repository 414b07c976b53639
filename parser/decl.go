package parser

import (
	"github.com/xjslang/xjsfront/ast"
	"github.com/xjslang/xjsfront/token"
)

// parseVariableDeclaration parses a full `var|let|const decl[, decl]* ;`
// statement; parseForStatement instead calls parseVariableDeclaratorList
// directly so it can inspect the result before deciding between a classic
// for-loop and a for-in/for-of loop.
func parseVariableDeclaration(p *Parser) ast.Statement {
	start := p.curTok
	kind := p.curTok.Literal
	p.next()
	decl := parseVariableDeclaratorList(p, kind)
	p.expectSemicolonASI()
	return ast.Finish(p.factory, decl, start.Start, p.prevEnd(), start.StartPos, p.curStartPos())
}

func parseVariableDeclaratorList(p *Parser, kind string) *ast.VariableDeclaration {
	start := p.curTok
	var decls []*ast.VariableDeclarator
	for {
		dstart := p.curTok
		id := parseBindingPattern(p)
		var annotation *ast.TypeAnnotation
		if p.typeAnnotationHook != nil && p.at(token.COLON) {
			annotation = p.typeAnnotationHook(p)
		}
		var init ast.Expression
		if p.consumeIf(token.ASSIGN) {
			init = p.parseExpression(ASSIGNMENT)
		}
		decl := ast.Finish(p.factory, &ast.VariableDeclarator{ID: id, Init: init}, dstart.Start, p.prevEnd(), dstart.StartPos, p.curStartPos())
		if annotation != nil {
			ast.SetExtra(decl, ast.ExtraTypeAnnotation, annotation)
		}
		decls = append(decls, decl)
		if !p.consumeIf(token.COMMA) {
			break
		}
	}
	return ast.Finish(p.factory, &ast.VariableDeclaration{Kind: kind, Declarations: decls}, start.Start, p.prevEnd(), start.StartPos, p.curStartPos())
}

// parseFunctionDeclaration parses a `function name(...) {...}` statement,
// with or without a leading `async`; the caller has checked the leading
// `async`/`function` keyword, and this function consumes both.
func parseFunctionDeclaration(p *Parser) ast.Statement {
	start := p.curTok
	async := false
	if start.Type == token.ASYNC {
		async = true
		p.next()
		start = p.curTok
	}
	p.expect(token.FUNCTION)
	generator := p.consumeIf(token.MULTIPLY)
	nameTok := p.expect(token.IDENT)
	id := ast.Finish(p.factory, &ast.Identifier{Name: nameTok.Literal}, nameTok.Start, nameTok.End, nameTok.StartPos, nameTok.EndPos)
	params := parseFunctionParams(p)
	returnType := parseReturnTypeAnnotation(p)
	p.pushScope(scopeFunction)
	body := parseFunctionBody(p, params)
	p.popScope()
	decl := ast.Finish(p.factory, &ast.FunctionDeclaration{ID: id, Params: params, Body: body, Generator: generator, Async: async}, start.Start, p.prevEnd(), start.StartPos, p.curStartPos())
	if returnType != nil {
		ast.SetExtra(decl, ast.ExtraReturnType, returnType)
	}
	return decl
}

// parseReturnTypeAnnotation parses the `: T` a typing dialect allows between
// a parameter list and a function/arrow body, when one is installed.
func parseReturnTypeAnnotation(p *Parser) *ast.TypeAnnotation {
	if p.typeAnnotationHook == nil || !p.at(token.COLON) {
		return nil
	}
	return p.typeAnnotationHook(p)
}

// parseFunctionExprStmt parses a function as an expression: used both for
// `function foo() {}` in expression position and, via the shared
// prefixParseFns[FUNCTION] entry, as part of dispatching `async function`.
// The ID is optional since function expressions may be anonymous.
func parseFunctionExprStmt(p *Parser) ast.Expression {
	start := p.curTok
	async := false
	if start.Type == token.ASYNC {
		async = true
		p.next()
		start = p.curTok
	}
	p.expect(token.FUNCTION)
	generator := p.consumeIf(token.MULTIPLY)
	var id *ast.Identifier
	if p.at(token.IDENT) {
		nameTok := p.curTok
		p.next()
		id = ast.Finish(p.factory, &ast.Identifier{Name: nameTok.Literal}, nameTok.Start, nameTok.End, nameTok.StartPos, nameTok.EndPos)
	}
	params := parseFunctionParams(p)
	returnType := parseReturnTypeAnnotation(p)
	p.pushScope(scopeFunction)
	body := parseFunctionBody(p, params)
	p.popScope()
	expr := ast.Finish(p.factory, &ast.FunctionExpression{ID: id, Params: params, Body: body, Generator: generator, Async: async}, start.Start, p.prevEnd(), start.StartPos, p.curStartPos())
	if returnType != nil {
		ast.SetExtra(expr, ast.ExtraReturnType, returnType)
	}
	return expr
}
