package parser

import (
	"github.com/xjslang/xjsfront/ast"
	"github.com/xjslang/xjsfront/token"
)

func (p *Parser) parseStatement() ast.Statement {
	return p.statementParseFn(p)
}

// baseParseStatement is the innermost layer of the statement-interceptor
// chain, dispatching on the current token to the right statement
// production.
func baseParseStatement(p *Parser) ast.Statement {
	switch p.curTok.Type {
	case token.LBRACE:
		return parseBlock(p)
	case token.SEMICOLON:
		return parseEmptyStatement(p)
	case token.VAR, token.LET, token.CONST:
		return parseVariableDeclaration(p)
	case token.FUNCTION:
		return parseFunctionDeclaration(p)
	case token.ASYNC:
		if p.peekAt(token.FUNCTION) && !p.peekTok.AfterNewline {
			return parseFunctionDeclaration(p)
		}
	case token.CLASS:
		return parseClassDeclaration(p)
	case token.IF:
		return parseIfStatement(p)
	case token.WHILE:
		return parseWhileStatement(p)
	case token.DO:
		return parseDoWhileStatement(p)
	case token.FOR:
		return parseForStatement(p)
	case token.RETURN:
		return parseReturnStatement(p)
	case token.BREAK:
		return parseBreakStatement(p)
	case token.CONTINUE:
		return parseContinueStatement(p)
	case token.SWITCH:
		return parseSwitchStatement(p)
	case token.THROW:
		return parseThrowStatement(p)
	case token.TRY:
		return parseTryStatement(p)
	case token.DEBUGGER:
		return parseDebuggerStatement(p)
	case token.WITH:
		return parseWithStatement(p)
	case token.IMPORT:
		if !p.peekAt(token.LPAREN) && !p.peekAt(token.DOT) {
			return parseImportDeclaration(p)
		}
	case token.EXPORT:
		return parseExportDeclaration(p)
	}
	if p.at(token.IDENT) && p.peekAt(token.COLON) {
		return parseLabeledStatement(p)
	}
	return parseExpressionStatement(p)
}

func parseBlock(p *Parser) *ast.BlockStatement {
	start := p.expect(token.LBRACE)
	var body []ast.Statement
	for !p.at(token.RBRACE) && !p.at(token.EOF) {
		body = append(body, p.parseStatement())
	}
	p.expect(token.RBRACE)
	return ast.Finish(p.factory, &ast.BlockStatement{Body: body}, start.Start, p.prevEnd(), start.StartPos, p.curStartPos())
}

func parseEmptyStatement(p *Parser) ast.Statement {
	tok := p.curTok
	p.next()
	return ast.Finish(p.factory, &ast.EmptyStatement{}, tok.Start, tok.End, tok.StartPos, tok.EndPos)
}

func parseExpressionStatement(p *Parser) ast.Statement {
	start := p.curTok
	expr := p.parseExpression(LOWEST)
	p.expectSemicolonASI()
	return ast.Finish(p.factory, &ast.ExpressionStatement{Expression: expr}, start.Start, p.prevEnd(), start.StartPos, p.curStartPos())
}

func parseIfStatement(p *Parser) ast.Statement {
	start := p.expect(token.IF)
	p.expect(token.LPAREN)
	test := p.parseExpression(LOWEST)
	p.expect(token.RPAREN)
	consequent := p.parseStatement()
	var alternate ast.Statement
	if p.consumeIf(token.ELSE) {
		alternate = p.parseStatement()
	}
	return ast.Finish(p.factory, &ast.IfStatement{Test: test, Consequent: consequent, Alternate: alternate}, start.Start, p.prevEnd(), start.StartPos, p.curStartPos())
}

func parseWhileStatement(p *Parser) ast.Statement {
	start := p.expect(token.WHILE)
	p.expect(token.LPAREN)
	test := p.parseExpression(LOWEST)
	p.expect(token.RPAREN)
	p.pushScope(scopeLoop)
	body := p.parseStatement()
	p.popScope()
	return ast.Finish(p.factory, &ast.WhileStatement{Test: test, Body: body}, start.Start, p.prevEnd(), start.StartPos, p.curStartPos())
}

func parseDoWhileStatement(p *Parser) ast.Statement {
	start := p.expect(token.DO)
	p.pushScope(scopeLoop)
	body := p.parseStatement()
	p.popScope()
	p.expect(token.WHILE)
	p.expect(token.LPAREN)
	test := p.parseExpression(LOWEST)
	p.expect(token.RPAREN)
	p.consumeIf(token.SEMICOLON)
	return ast.Finish(p.factory, &ast.DoWhileStatement{Body: body, Test: test}, start.Start, p.prevEnd(), start.StartPos, p.curStartPos())
}

// parseForStatement disambiguates the four `for (...)` forms (classic,
// for-in, for-of, and a bare expression/declaration init) by speculatively
// parsing the init clause and checking what follows it.
func parseForStatement(p *Parser) ast.Statement {
	start := p.expect(token.FOR)
	isAwait := p.consumeIf(token.AWAIT)
	p.expect(token.LPAREN)

	var init ast.Node
	prevNoIn := p.noIn
	p.noIn = true
	if p.at(token.SEMICOLON) {
		init = nil
	} else if p.at(token.VAR) || p.at(token.LET) || p.at(token.CONST) {
		kind := p.curTok.Literal
		p.next()
		decl := parseVariableDeclaratorList(p, kind)
		if (p.at(token.IN) || p.at(token.OF)) && len(decl.Declarations) == 1 {
			p.noIn = prevNoIn
			return finishForInOf(p, start, decl, isAwait)
		}
		init = decl
	} else {
		expr := p.parseExpression(LOWEST + 1) // exclude top-level comma so `for (a in b)` isn't swallowed by sequence
		if p.at(token.IN) || p.at(token.OF) {
			p.noIn = prevNoIn
			return finishForInOf(p, start, toAssignable(p, expr), isAwait)
		}
		init = expr
	}
	p.noIn = prevNoIn

	p.expect(token.SEMICOLON)
	var test ast.Expression
	if !p.at(token.SEMICOLON) {
		test = p.parseExpression(LOWEST)
	}
	p.expect(token.SEMICOLON)
	var update ast.Expression
	if !p.at(token.RPAREN) {
		update = p.parseExpression(LOWEST)
	}
	p.expect(token.RPAREN)
	p.pushScope(scopeLoop)
	body := p.parseStatement()
	p.popScope()
	return ast.Finish(p.factory, &ast.ForStatement{Init: init, Test: test, Update: update, Body: body}, start.Start, p.prevEnd(), start.StartPos, p.curStartPos())
}

func finishForInOf(p *Parser, start token.Token, left ast.Node, isAwait bool) ast.Statement {
	isOf := p.at(token.OF)
	p.next()
	right := p.parseExpression(LOWEST)
	p.expect(token.RPAREN)
	p.pushScope(scopeLoop)
	body := p.parseStatement()
	p.popScope()
	if isOf {
		return ast.Finish(p.factory, &ast.ForOfStatement{Left: left, Right: right, Body: body, Await: isAwait}, start.Start, p.prevEnd(), start.StartPos, p.curStartPos())
	}
	return ast.Finish(p.factory, &ast.ForInStatement{Left: left, Right: right, Body: body}, start.Start, p.prevEnd(), start.StartPos, p.curStartPos())
}

func parseReturnStatement(p *Parser) ast.Statement {
	start := p.expect(token.RETURN)
	if !p.inFunction() && !p.opts.AllowReturnOutsideFunction {
		p.raiseEarly(start, "'return' outside of function")
	}
	var arg ast.Expression
	if !p.at(token.SEMICOLON) && !p.at(token.RBRACE) && !p.at(token.EOF) && !p.curTok.AfterNewline {
		arg = p.parseExpression(LOWEST)
	}
	p.expectSemicolonASI()
	return ast.Finish(p.factory, &ast.ReturnStatement{Argument: arg}, start.Start, p.prevEnd(), start.StartPos, p.curStartPos())
}

func parseBreakStatement(p *Parser) ast.Statement {
	start := p.expect(token.BREAK)
	var label *ast.Identifier
	if p.at(token.IDENT) && !p.curTok.AfterNewline {
		tok := p.curTok
		p.next()
		label = ast.Finish(p.factory, &ast.Identifier{Name: tok.Literal}, tok.Start, tok.End, tok.StartPos, tok.EndPos)
	} else if !p.inLoopOrSwitch() {
		p.raiseEarly(start, "illegal break statement")
	}
	p.expectSemicolonASI()
	return ast.Finish(p.factory, &ast.BreakStatement{Label: label}, start.Start, p.prevEnd(), start.StartPos, p.curStartPos())
}

func parseContinueStatement(p *Parser) ast.Statement {
	start := p.expect(token.CONTINUE)
	var label *ast.Identifier
	if p.at(token.IDENT) && !p.curTok.AfterNewline {
		tok := p.curTok
		p.next()
		label = ast.Finish(p.factory, &ast.Identifier{Name: tok.Literal}, tok.Start, tok.End, tok.StartPos, tok.EndPos)
	} else if !p.inLoop() {
		p.raiseEarly(start, "illegal continue statement")
	}
	p.expectSemicolonASI()
	return ast.Finish(p.factory, &ast.ContinueStatement{Label: label}, start.Start, p.prevEnd(), start.StartPos, p.curStartPos())
}

func parseSwitchStatement(p *Parser) ast.Statement {
	start := p.expect(token.SWITCH)
	p.expect(token.LPAREN)
	disc := p.parseExpression(LOWEST)
	p.expect(token.RPAREN)
	p.expect(token.LBRACE)
	p.pushScope(scopeSwitch)
	var cases []*ast.SwitchCase
	seenDefault := false
	for !p.at(token.RBRACE) && !p.at(token.EOF) {
		caseStart := p.curTok
		var test ast.Expression
		if p.consumeIf(token.CASE) {
			test = p.parseExpression(LOWEST)
		} else {
			p.expect(token.DEFAULT)
			if seenDefault {
				p.raiseEarly(caseStart, "multiple default clauses in switch statement")
			}
			seenDefault = true
		}
		p.expect(token.COLON)
		var body []ast.Statement
		for !p.at(token.CASE) && !p.at(token.DEFAULT) && !p.at(token.RBRACE) && !p.at(token.EOF) {
			body = append(body, p.parseStatement())
		}
		cases = append(cases, ast.Finish(p.factory, &ast.SwitchCase{Test: test, Consequent: body}, caseStart.Start, p.prevEnd(), caseStart.StartPos, p.curStartPos()))
	}
	p.popScope()
	p.expect(token.RBRACE)
	return ast.Finish(p.factory, &ast.SwitchStatement{Discriminant: disc, Cases: cases}, start.Start, p.prevEnd(), start.StartPos, p.curStartPos())
}

func parseThrowStatement(p *Parser) ast.Statement {
	start := p.expect(token.THROW)
	if p.curTok.AfterNewline {
		p.raiseSyntax("illegal newline after throw")
	}
	arg := p.parseExpression(LOWEST)
	p.expectSemicolonASI()
	return ast.Finish(p.factory, &ast.ThrowStatement{Argument: arg}, start.Start, p.prevEnd(), start.StartPos, p.curStartPos())
}

func parseTryStatement(p *Parser) ast.Statement {
	start := p.expect(token.TRY)
	block := parseBlock(p)
	var handler *ast.CatchClause
	if p.at(token.CATCH) {
		catchStart := p.curTok
		p.next()
		var param ast.Pattern
		if p.consumeIf(token.LPAREN) {
			param = parseBindingPattern(p)
			p.expect(token.RPAREN)
		}
		body := parseBlock(p)
		handler = ast.Finish(p.factory, &ast.CatchClause{Param: param, Body: body}, catchStart.Start, p.prevEnd(), catchStart.StartPos, p.curStartPos())
	}
	var finalizer *ast.BlockStatement
	if p.consumeIf(token.FINALLY) {
		finalizer = parseBlock(p)
	}
	if handler == nil && finalizer == nil {
		p.raiseEarly(start, "missing catch or finally after try")
	}
	return ast.Finish(p.factory, &ast.TryStatement{Block: block, Handler: handler, Finalizer: finalizer}, start.Start, p.prevEnd(), start.StartPos, p.curStartPos())
}

func parseDebuggerStatement(p *Parser) ast.Statement {
	start := p.expect(token.DEBUGGER)
	p.expectSemicolonASI()
	return ast.Finish(p.factory, &ast.DebuggerStatement{}, start.Start, p.prevEnd(), start.StartPos, p.curStartPos())
}

func parseWithStatement(p *Parser) ast.Statement {
	start := p.expect(token.WITH)
	p.expect(token.LPAREN)
	obj := p.parseExpression(LOWEST)
	p.expect(token.RPAREN)
	body := p.parseStatement()
	return ast.Finish(p.factory, &ast.WithStatement{Object: obj, Body: body}, start.Start, p.prevEnd(), start.StartPos, p.curStartPos())
}

func parseLabeledStatement(p *Parser) ast.Statement {
	tok := p.curTok
	p.next()
	p.expect(token.COLON)
	label := ast.Finish(p.factory, &ast.Identifier{Name: tok.Literal}, tok.Start, tok.End, tok.StartPos, tok.EndPos)
	body := p.parseStatement()
	return ast.Finish(p.factory, &ast.LabeledStatement{Label: label, Body: body}, tok.Start, p.prevEnd(), tok.StartPos, p.curStartPos())
}
