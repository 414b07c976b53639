package nominaltypes

import (
	"github.com/xjslang/xjsfront/ast"
	"github.com/xjslang/xjsfront/parser"
	"github.com/xjslang/xjsfront/token"
)

// Contextual keywords: none of these are in the base token catalog's
// reserved-word table, so they lex as plain IDENT and are only treated
// specially with enough lookahead to stay safe as ordinary identifiers
// elsewhere.
func isInterfaceStart(p *parser.Parser) bool {
	return p.At(token.IDENT) && p.Cur().Literal == "interface" && p.PeekAt(token.IDENT)
}

func isTypeAliasStart(p *parser.Parser) bool {
	return p.At(token.IDENT) && p.Cur().Literal == "type" && p.PeekAt(token.IDENT)
}

func isEnumStart(p *parser.Parser) bool {
	return p.At(token.IDENT) && p.Cur().Literal == "enum" && p.PeekAt(token.IDENT)
}

func isConstEnumStart(p *parser.Parser) bool {
	return p.At(token.CONST) && p.PeekAt(token.IDENT) && p.Peek().Literal == "enum"
}

func isNamespaceStart(p *parser.Parser) bool {
	return p.At(token.IDENT) && (p.Cur().Literal == "namespace" || p.Cur().Literal == "module") && p.PeekAt(token.IDENT)
}

func isDeclareStart(p *parser.Parser) bool {
	return p.At(token.IDENT) && p.Cur().Literal == "declare"
}

func statementInterceptor(p *parser.Parser, next func() ast.Statement) ast.Statement {
	if isDeclareStart(p) {
		p.Advance()
		stmt := statementInterceptor(p, next)
		ast.SetExtra(stmt, "ambient", true)
		return stmt
	}
	switch {
	case isConstEnumStart(p):
		p.Advance() // const
		return parseEnumDeclaration(p, true)
	case isEnumStart(p):
		return parseEnumDeclaration(p, false)
	case isTypeAliasStart(p):
		return parseTypeAliasDeclaration(p)
	case isInterfaceStart(p):
		return parseInterfaceDeclaration(p)
	case isNamespaceStart(p):
		return parseNamespaceDeclaration(p)
	}
	return next()
}

func parseTypeAliasDeclaration(p *parser.Parser) ast.Statement {
	start := p.Cur()
	p.Advance() // type
	nameTok := p.Expect(token.IDENT)
	id := ast.Finish(p.Factory(), &ast.Identifier{Name: nameTok.Literal}, nameTok.Start, nameTok.End, nameTok.StartPos, nameTok.EndPos)
	typeParams := parseGenericTypeParameters(p)
	p.Expect(token.ASSIGN)
	right := parseType(p)
	consumeOptionalSemicolon(p)
	return ast.Finish(p.Factory(), &ast.TypeAliasDeclaration{ID: id, TypeParameters: typeParams, Right: right}, start.Start, p.PrevEnd(), start.StartPos, p.CurStartPos())
}

func parseInterfaceDeclaration(p *parser.Parser) ast.Statement {
	start := p.Cur()
	p.Advance() // interface
	nameTok := p.Expect(token.IDENT)
	id := ast.Finish(p.Factory(), &ast.Identifier{Name: nameTok.Literal}, nameTok.Start, nameTok.End, nameTok.StartPos, nameTok.EndPos)
	typeParams := parseGenericTypeParameters(p)
	var extends []*ast.TypeReference
	if p.At(token.EXTENDS) {
		p.Advance()
		for {
			ref := parseTypeReference(p).(*ast.TypeReference)
			extends = append(extends, ref)
			if !p.ConsumeIf(token.COMMA) {
				break
			}
		}
	}
	body := parseObjectType(p).(*ast.ObjectType)
	return ast.Finish(p.Factory(), &ast.InterfaceDeclaration{ID: id, TypeParameters: typeParams, Extends: extends, Body: body}, start.Start, p.PrevEnd(), start.StartPos, p.CurStartPos())
}

func parseEnumDeclaration(p *parser.Parser, isConst bool) ast.Statement {
	start := p.Cur()
	p.Advance() // enum
	nameTok := p.Expect(token.IDENT)
	id := ast.Finish(p.Factory(), &ast.Identifier{Name: nameTok.Literal}, nameTok.Start, nameTok.End, nameTok.StartPos, nameTok.EndPos)
	p.Expect(token.LBRACE)
	var members []*ast.EnumMember
	for !p.At(token.RBRACE) {
		mstart := p.Cur()
		memberTok := p.Expect(token.IDENT)
		memberID := ast.Finish(p.Factory(), &ast.Identifier{Name: memberTok.Literal}, memberTok.Start, memberTok.End, memberTok.StartPos, memberTok.EndPos)
		var init ast.Expression
		if p.ConsumeIf(token.ASSIGN) {
			init = p.ParseExpr(parser.ASSIGNMENT)
		}
		members = append(members, ast.Finish(p.Factory(), &ast.EnumMember{ID: memberID, Initializer: init}, mstart.Start, p.PrevEnd(), mstart.StartPos, p.CurStartPos()))
		if !p.ConsumeIf(token.COMMA) {
			break
		}
	}
	p.Expect(token.RBRACE)
	return ast.Finish(p.Factory(), &ast.EnumDeclaration{ID: id, Members: members, Const: isConst}, start.Start, p.PrevEnd(), start.StartPos, p.CurStartPos())
}

func parseNamespaceDeclaration(p *parser.Parser) ast.Statement {
	start := p.Cur()
	isModule := p.Cur().Literal == "module"
	p.Advance() // namespace | module
	nameTok := p.Expect(token.IDENT)
	id := ast.Finish(p.Factory(), &ast.Identifier{Name: nameTok.Literal}, nameTok.Start, nameTok.End, nameTok.StartPos, nameTok.EndPos)
	p.Expect(token.LBRACE)
	var body []ast.Statement
	for !p.At(token.RBRACE) {
		body = append(body, p.ParseStatement())
	}
	p.Expect(token.RBRACE)
	return ast.Finish(p.Factory(), &ast.NamespaceDeclaration{ID: id, Body: body, Module: isModule}, start.Start, p.PrevEnd(), start.StartPos, p.CurStartPos())
}

// consumeOptionalSemicolon mirrors the base grammar's ASI tolerance for a
// declaration form dialects own end-to-end.
func consumeOptionalSemicolon(p *parser.Parser) {
	p.ConsumeIf(token.SEMICOLON)
}

// parseAsExpression is registered as the infix parser for `as`, at
// relational-operator precedence (same binding power as `<`/`instanceof`,
// matching how TypeScript specifies `as`).
func parseAsExpression(p *parser.Parser, left ast.Expression) ast.Expression {
	startOffset := ast.Start(left)
	p.Advance() // as
	texpr := parseType(p)
	return ast.Finish(p.Factory(), &ast.AsExpression{Expression: left, TypeExpression: texpr}, startOffset, p.PrevEnd(), token.Position{}, p.CurStartPos())
}

// parseNonNullPostfix is registered as the postfix parser for `!`.
func parseNonNullPostfix(p *parser.Parser, operand ast.Expression) ast.Expression {
	startOffset := ast.Start(operand)
	p.Advance() // !
	return ast.Finish(p.Factory(), &ast.NonNullExpression{Expression: operand}, startOffset, p.PrevEnd(), token.Position{}, p.CurStartPos())
}
