package structuraltypes

import (
	"github.com/xjslang/xjsfront/ast"
	"github.com/xjslang/xjsfront/parser"
	"github.com/xjslang/xjsfront/token"
)

// isTypeAliasStart / isInterfaceStart recognize the contextual keywords
// `type` and `interface`: neither is in the base token catalog's reserved
// word table, so they arrive as plain IDENT tokens and are only treated
// specially when immediately followed by a binding name, keeping `type` and
// `interface` free to be used as ordinary identifiers elsewhere.
func isTypeAliasStart(p *parser.Parser) bool {
	return p.At(token.IDENT) && p.Cur().Literal == "type" && p.PeekAt(token.IDENT)
}

func isInterfaceStart(p *parser.Parser) bool {
	return p.At(token.IDENT) && p.Cur().Literal == "interface" && p.PeekAt(token.IDENT)
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
	if isTypeAliasStart(p) {
		return parseTypeAliasDeclaration(p)
	}
	if isInterfaceStart(p) {
		return parseInterfaceDeclaration(p)
	}
	return next()
}

func parseTypeAliasDeclaration(p *parser.Parser) ast.Statement {
	start := p.Cur()
	p.Advance() // `type`
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
	p.Advance() // `interface`
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

// consumeOptionalSemicolon mirrors the base grammar's ASI tolerance for a
// declaration form dialects own end-to-end (the base parser's
// expectSemicolonASI is unexported).
func consumeOptionalSemicolon(p *parser.Parser) {
	p.ConsumeIf(token.SEMICOLON)
}
