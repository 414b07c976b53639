package parser

import (
	"math/big"

	"github.com/xjslang/xjsfront/ast"
	"github.com/xjslang/xjsfront/lexer"
	"github.com/xjslang/xjsfront/token"
)

// ParseExpression parses src as a single expression (no statements), the
// entry point xjsfront.ParseExpression exposes. Errors are returned rather
// than panicked, matching Parse's contract.
func (p *Parser) ParseExpression() (expr ast.Expression, errs []*Error) {
	defer func() {
		if r := recover(); r != nil {
			if e, ok := r.(*Error); ok {
				p.errors = append(p.errors, e)
				errs = p.errors
				return
			}
			panic(r)
		}
	}()
	expr = p.parseExpression(LOWEST)
	if !p.at(token.EOF) {
		p.raiseSyntax("unexpected token %s after expression", p.curTok.Type)
	}
	return expr, p.errors
}

// Precedence levels for the non-binary-operator part of the expression
// grammar; binary/logical operator precedence comes from each token's
// Descriptor.Precedence (1..11) instead, per the base grammar's ladder.
const (
	LOWEST = iota
	COMMA
	ASSIGNMENT
	CONDITIONAL
	NULLISH
	BINARY // placeholder level; real binary precedence read from the token
	UNARY
	POSTFIX_PREC
	CALL
	MEMBER
)

func (p *Parser) parseExpression(precedence int) ast.Expression {
	return p.expressionParseFn(p, precedence)
}

// baseParseExpression is the innermost layer of the expression-interceptor
// chain: Pratt-style precedence climbing over the prefix/infix/postfix
// tables a Builder assembles.
func baseParseExpression(p *Parser, precedence int) ast.Expression {
	if p.curTok.Type == token.ILLEGAL {
		p.raiseLexical(p.curTok, "%s", p.curTok.Literal)
	}
	prefix, ok := p.prefixParseFns[p.curTok.Type]
	if !ok {
		p.raiseSyntax("unexpected token %s", p.curTok.Type)
	}
	left := prefix(p)

	for {
		if postfix, ok := p.postfixParseFns[p.curTok.Type]; ok && !p.curTok.AfterNewline && precedence < POSTFIX_PREC {
			left = postfix(p, left)
			continue
		}
		tt := p.curTok.Type
		infixPrec := p.infixBindingPower(tt)
		if infixPrec <= precedence {
			break
		}
		infix, ok := p.infixParseFns[tt]
		if !ok {
			break
		}
		left = infix(p, left)
	}
	return left
}

// infixBindingPower maps a token to the precedence level parseExpression's
// loop compares against: binary/logical operators use their Descriptor's
// 1..11 ladder (offset above LOWEST so they always bind tighter than
// sequence/assignment/conditional), assignment operators bind at ASSIGNMENT,
// just below CONDITIONAL (right-associative, looser than every binary
// operator), `?`
// starts a conditional, `,` a sequence.
func (p *Parser) infixBindingPower(tt token.Type) int {
	if tt == token.IN && p.noIn {
		return LOWEST
	}
	if prec, ok := p.infixPrecedenceOverride[tt]; ok {
		return prec
	}
	switch tt {
	case token.COMMA:
		return LOWEST + 1
	case token.ASSIGN, token.PLUS_ASSIGN, token.MINUS_ASSIGN, token.MULTIPLY_ASSIGN,
		token.DIVIDE_ASSIGN, token.MODULO_ASSIGN, token.EXP_ASSIGN, token.AND_ASSIGN,
		token.OR_ASSIGN, token.NULLISH_ASSIGN, token.BITAND_ASSIGN, token.BITOR_ASSIGN,
		token.BITXOR_ASSIGN, token.SHL_ASSIGN, token.SHR_ASSIGN, token.SAR_ASSIGN:
		return ASSIGNMENT
	case token.QUESTION:
		return CONDITIONAL
	case token.LPAREN:
		return CALL
	case token.DOT, token.LBRACKET, token.QUESTION_DOT:
		return MEMBER
	case token.BACKTICK:
		return MEMBER
	}
	if d := token.Lookup(tt); d.Precedence > 0 {
		return BINARY + d.Precedence
	}
	return LOWEST
}

func (p *Parser) registerBaseParseFns() {
	p.prefixParseFns[token.IDENT] = parseIdentifierExpr
	p.prefixParseFns[token.NUMBER] = parseNumericLiteral
	p.prefixParseFns[token.BIGINT] = parseBigIntLiteral
	p.prefixParseFns[token.STRING] = parseStringLiteral
	p.prefixParseFns[token.TRUE] = parseBooleanLiteral
	p.prefixParseFns[token.FALSE] = parseBooleanLiteral
	p.prefixParseFns[token.NULL] = parseNullLiteral
	p.prefixParseFns[token.UNDEFINED] = parseIdentifierExpr
	p.prefixParseFns[token.THIS] = parseThisExpr
	p.prefixParseFns[token.SUPER] = parseSuperExpr
	p.prefixParseFns[token.REGEXP] = parseRegexLiteral
	p.prefixParseFns[token.BACKTICK] = parseTemplateLiteral
	p.prefixParseFns[token.LPAREN] = parseParenOrArrow
	p.prefixParseFns[token.LBRACKET] = parseArrayExpr
	p.prefixParseFns[token.LBRACE] = parseObjectExpr
	p.prefixParseFns[token.FUNCTION] = parseFunctionExprStmt
	p.prefixParseFns[token.CLASS] = parseClassExpr
	p.prefixParseFns[token.NEW] = parseNewExpr
	p.prefixParseFns[token.NOT] = parseUnaryPrefix
	p.prefixParseFns[token.BITNOT] = parseUnaryPrefix
	p.prefixParseFns[token.PLUS] = parseUnaryPrefix
	p.prefixParseFns[token.MINUS] = parseUnaryPrefix
	p.prefixParseFns[token.TYPEOF] = parseUnaryPrefix
	p.prefixParseFns[token.VOID] = parseUnaryPrefix
	p.prefixParseFns[token.DELETE] = parseUnaryPrefix
	p.prefixParseFns[token.INCREMENT] = parseUpdatePrefix
	p.prefixParseFns[token.DECREMENT] = parseUpdatePrefix
	p.prefixParseFns[token.YIELD] = parseYieldExpr
	p.prefixParseFns[token.AWAIT] = parseAwaitExpr
	p.prefixParseFns[token.ASYNC] = parseAsyncPrefixed
	p.prefixParseFns[token.PRIVATE_NAME] = parsePrivateNameExpr
	p.prefixParseFns[token.ELLIPSIS] = parseSpreadElement

	p.infixParseFns[token.PLUS] = parseBinaryOrLogical
	p.infixParseFns[token.MINUS] = parseBinaryOrLogical
	p.infixParseFns[token.MULTIPLY] = parseBinaryOrLogical
	p.infixParseFns[token.DIVIDE] = parseBinaryOrLogical
	p.infixParseFns[token.MODULO] = parseBinaryOrLogical
	p.infixParseFns[token.EXP] = parseBinaryOrLogical
	p.infixParseFns[token.EQ] = parseBinaryOrLogical
	p.infixParseFns[token.NOT_EQ] = parseBinaryOrLogical
	p.infixParseFns[token.EQ_STRICT] = parseBinaryOrLogical
	p.infixParseFns[token.NOT_EQ_STRICT] = parseBinaryOrLogical
	p.infixParseFns[token.LT] = parseBinaryOrLogical
	p.infixParseFns[token.GT] = parseBinaryOrLogical
	p.infixParseFns[token.LTE] = parseBinaryOrLogical
	p.infixParseFns[token.GTE] = parseBinaryOrLogical
	p.infixParseFns[token.INSTANCEOF] = parseBinaryOrLogical
	p.infixParseFns[token.IN] = parseBinaryOrLogical
	p.infixParseFns[token.SHL] = parseBinaryOrLogical
	p.infixParseFns[token.SHR] = parseBinaryOrLogical
	p.infixParseFns[token.SAR] = parseBinaryOrLogical
	p.infixParseFns[token.BITAND] = parseBinaryOrLogical
	p.infixParseFns[token.BITOR] = parseBinaryOrLogical
	p.infixParseFns[token.BITXOR] = parseBinaryOrLogical
	p.infixParseFns[token.AND] = parseBinaryOrLogical
	p.infixParseFns[token.OR] = parseBinaryOrLogical
	p.infixParseFns[token.QUESTION_QUESTION] = parseBinaryOrLogical
	p.infixParseFns[token.QUESTION] = parseConditionalExpr
	p.infixParseFns[token.COMMA] = parseSequenceExpr
	p.infixParseFns[token.DOT] = parseMemberExpr
	p.infixParseFns[token.QUESTION_DOT] = parseMemberExpr
	p.infixParseFns[token.LBRACKET] = parseComputedMemberExpr
	p.infixParseFns[token.LPAREN] = parseCallExpr
	p.infixParseFns[token.BACKTICK] = parseTaggedTemplate
	for _, t := range []token.Type{
		token.ASSIGN, token.PLUS_ASSIGN, token.MINUS_ASSIGN, token.MULTIPLY_ASSIGN,
		token.DIVIDE_ASSIGN, token.MODULO_ASSIGN, token.EXP_ASSIGN, token.AND_ASSIGN,
		token.OR_ASSIGN, token.NULLISH_ASSIGN, token.BITAND_ASSIGN, token.BITOR_ASSIGN,
		token.BITXOR_ASSIGN, token.SHL_ASSIGN, token.SHR_ASSIGN, token.SAR_ASSIGN,
	} {
		p.infixParseFns[t] = parseAssignmentExpr
	}

	p.postfixParseFns[token.INCREMENT] = parseUpdatePostfix
	p.postfixParseFns[token.DECREMENT] = parseUpdatePostfix
}

func parseIdentifierExpr(p *Parser) ast.Expression {
	tok := p.curTok
	p.next()
	return ast.Finish(p.factory, &ast.Identifier{Name: tok.Literal}, tok.Start, tok.End, tok.StartPos, tok.EndPos)
}

func parsePrivateNameExpr(p *Parser) ast.Expression {
	tok := p.curTok
	p.next()
	return ast.Finish(p.factory, &ast.PrivateName{Name: tok.Literal}, tok.Start, tok.End, tok.StartPos, tok.EndPos)
}

func parseNumericLiteral(p *Parser) ast.Expression {
	tok := p.curTok
	p.next()
	return ast.Finish(p.factory, &ast.NumericLiteral{Value: tok.Value.(float64), Raw: tok.Literal}, tok.Start, tok.End, tok.StartPos, tok.EndPos)
}

func parseBigIntLiteral(p *Parser) ast.Expression {
	tok := p.curTok
	p.next()
	return ast.Finish(p.factory, &ast.BigIntLiteral{Value: tok.Value.(*big.Int), Raw: tok.Literal}, tok.Start, tok.End, tok.StartPos, tok.EndPos)
}

func parseStringLiteral(p *Parser) ast.Expression {
	tok := p.curTok
	if tok.Unterminated {
		p.raiseLexical(tok, "unterminated string literal")
	}
	p.next()
	return ast.Finish(p.factory, &ast.StringLiteral{Value: tok.Value.(string), Raw: tok.Literal}, tok.Start, tok.End, tok.StartPos, tok.EndPos)
}

func parseBooleanLiteral(p *Parser) ast.Expression {
	tok := p.curTok
	p.next()
	return ast.Finish(p.factory, &ast.BooleanLiteral{Value: tok.Type == token.TRUE}, tok.Start, tok.End, tok.StartPos, tok.EndPos)
}

func parseNullLiteral(p *Parser) ast.Expression {
	tok := p.curTok
	p.next()
	return ast.Finish(p.factory, &ast.NullLiteral{}, tok.Start, tok.End, tok.StartPos, tok.EndPos)
}

func parseThisExpr(p *Parser) ast.Expression {
	tok := p.curTok
	p.next()
	return ast.Finish(p.factory, &ast.ThisExpression{}, tok.Start, tok.End, tok.StartPos, tok.EndPos)
}

func parseSuperExpr(p *Parser) ast.Expression {
	tok := p.curTok
	p.next()
	return ast.Finish(p.factory, &ast.SuperExpression{}, tok.Start, tok.End, tok.StartPos, tok.EndPos)
}

// validRegexFlag is the flag alphabet a regex literal's flags must be drawn
// from: global, multiline, dotAll, ignoreCase, sticky, unicode.
func validRegexFlag(r rune) bool {
	switch r {
	case 'g', 'm', 's', 'i', 'y', 'u':
		return true
	default:
		return false
	}
}

func parseRegexLiteral(p *Parser) ast.Expression {
	tok := p.curTok
	if tok.Unterminated {
		p.raiseLexical(tok, "unterminated regular expression literal")
	}
	rv := tok.Value.(token.RegexValue)
	for _, r := range rv.Flags {
		if !validRegexFlag(r) {
			p.raiseLexical(tok, "invalid regular expression flag %q", r)
		}
	}
	if err := lexer.ValidateRegexLiteral(rv); err != nil {
		p.raiseLexical(tok, "%s", err)
	}
	p.next()
	return ast.Finish(p.factory, &ast.RegExpLiteral{Pattern: rv.Pattern, Flags: rv.Flags}, tok.Start, tok.End, tok.StartPos, tok.EndPos)
}

func parseSpreadElement(p *Parser) ast.Expression {
	start := p.curTok
	p.next()
	arg := p.parseExpression(ASSIGNMENT)
	return ast.Finish(p.factory, &ast.SpreadElement{Argument: arg}, start.Start, p.prevEnd(), start.StartPos, p.curStartPos())
}

func parseUnaryPrefix(p *Parser) ast.Expression {
	tok := p.curTok
	p.next()
	arg := p.parseExpression(UNARY)
	return ast.Finish(p.factory, &ast.UnaryExpression{Operator: tok.Literal, Argument: arg, Prefix: true}, tok.Start, p.prevEnd(), tok.StartPos, p.curStartPos())
}

func parseUpdatePrefix(p *Parser) ast.Expression {
	tok := p.curTok
	p.next()
	arg := p.parseExpression(UNARY)
	return ast.Finish(p.factory, &ast.UpdateExpression{Operator: tok.Literal, Argument: arg, Prefix: true}, tok.Start, p.prevEnd(), tok.StartPos, p.curStartPos())
}

func parseUpdatePostfix(p *Parser, operand ast.Expression) ast.Expression {
	tok := p.curTok
	p.next()
	return ast.Finish(p.factory, &ast.UpdateExpression{Operator: tok.Literal, Argument: operand, Prefix: false}, ast.Start(operand), tok.End, token.Position{}, tok.EndPos)
}

func parseYieldExpr(p *Parser) ast.Expression {
	tok := p.curTok
	p.next()
	delegate := p.consumeIf(token.MULTIPLY)
	var arg ast.Expression
	if !p.at(token.SEMICOLON) && !p.at(token.RBRACE) && !p.at(token.RPAREN) && !p.at(token.RBRACKET) &&
		!p.at(token.COMMA) && !p.at(token.COLON) && !p.at(token.EOF) && !p.curTok.AfterNewline {
		arg = p.parseExpression(ASSIGNMENT)
	}
	return ast.Finish(p.factory, &ast.YieldExpression{Argument: arg, Delegate: delegate}, tok.Start, p.prevEnd(), tok.StartPos, p.curStartPos())
}

func parseAwaitExpr(p *Parser) ast.Expression {
	tok := p.curTok
	p.next()
	arg := p.parseExpression(UNARY)
	return ast.Finish(p.factory, &ast.AwaitExpression{Argument: arg}, tok.Start, p.prevEnd(), tok.StartPos, p.curStartPos())
}

// parseAsyncPrefixed handles `async function`, `async (params) => body`, and
// `async ident => body`; `async` bound as a plain identifier falls out of
// the fallback branch.
func parseAsyncPrefixed(p *Parser) ast.Expression {
	tok := p.curTok
	if p.peekAt(token.FUNCTION) && !p.peekTok.AfterNewline {
		p.next()
		return parseFunctionExprStmt(p)
	}
	if (p.peekAt(token.IDENT) || p.peekAt(token.LPAREN)) && !p.peekTok.AfterNewline {
		if arrow, ok := tryParseArrow(p, true); ok {
			return arrow
		}
	}
	p.next()
	return ast.Finish(p.factory, &ast.Identifier{Name: tok.Literal}, tok.Start, tok.End, tok.StartPos, tok.EndPos)
}

func parseBinaryOrLogical(p *Parser, left ast.Expression) ast.Expression {
	tok := p.curTok
	prec := p.precedenceOf(tok.Type)
	rightAssoc := token.Lookup(tok.Type).RightAssociative
	p.next()
	nextPrec := BINARY + prec
	if rightAssoc {
		nextPrec--
	}
	right := p.parseExpression(nextPrec)
	switch tok.Type {
	case token.AND, token.OR, token.QUESTION_QUESTION:
		return ast.Finish(p.factory, &ast.LogicalExpression{Operator: tok.Literal, Left: left, Right: right}, ast.Start(left), p.prevEnd(), token.Position{}, p.curStartPos())
	default:
		return ast.Finish(p.factory, &ast.BinaryExpression{Operator: tok.Literal, Left: left, Right: right}, ast.Start(left), p.prevEnd(), token.Position{}, p.curStartPos())
	}
}

func parseConditionalExpr(p *Parser, test ast.Expression) ast.Expression {
	p.next() // ?
	consequent := p.parseExpression(ASSIGNMENT)
	p.expect(token.COLON)
	alternate := p.parseExpression(ASSIGNMENT)
	return ast.Finish(p.factory, &ast.ConditionalExpression{Test: test, Consequent: consequent, Alternate: alternate}, ast.Start(test), p.prevEnd(), token.Position{}, p.curStartPos())
}

func parseSequenceExpr(p *Parser, first ast.Expression) ast.Expression {
	exprs := []ast.Expression{first}
	for p.consumeIf(token.COMMA) {
		exprs = append(exprs, p.parseExpression(ASSIGNMENT))
	}
	return ast.Finish(p.factory, &ast.SequenceExpression{Expressions: exprs}, ast.Start(first), p.prevEnd(), token.Position{}, p.curStartPos())
}

func parseAssignmentExpr(p *Parser, left ast.Expression) ast.Expression {
	tok := p.curTok
	target := toAssignable(p, left)
	p.next()
	right := p.parseExpression(ASSIGNMENT - 1)
	return ast.Finish(p.factory, &ast.AssignmentExpression{Operator: tok.Literal, Left: target, Right: right}, ast.Start(left), p.prevEnd(), token.Position{}, p.curStartPos())
}

func parseMemberExpr(p *Parser, object ast.Expression) ast.Expression {
	optional := p.at(token.QUESTION_DOT)
	p.next()
	if p.at(token.LBRACKET) {
		return finishComputedMember(p, object, optional)
	}
	propTok := p.curTok
	var prop ast.Expression
	if propTok.Type == token.PRIVATE_NAME {
		p.next()
		prop = ast.Finish(p.factory, &ast.PrivateName{Name: propTok.Literal}, propTok.Start, propTok.End, propTok.StartPos, propTok.EndPos)
	} else {
		p.next()
		prop = ast.Finish(p.factory, &ast.Identifier{Name: propTok.Literal}, propTok.Start, propTok.End, propTok.StartPos, propTok.EndPos)
	}
	return ast.Finish(p.factory, &ast.MemberExpression{Object: object, Property: prop, Computed: false, Optional: optional}, ast.Start(object), p.prevEnd(), token.Position{}, p.curStartPos())
}

func parseComputedMemberExpr(p *Parser, object ast.Expression) ast.Expression {
	return finishComputedMember(p, object, false)
}

func finishComputedMember(p *Parser, object ast.Expression, optional bool) ast.Expression {
	p.expect(token.LBRACKET)
	var prop ast.Expression
	p.withInAllowed(func() { prop = p.parseExpression(LOWEST) })
	p.expect(token.RBRACKET)
	return ast.Finish(p.factory, &ast.MemberExpression{Object: object, Property: prop, Computed: true, Optional: optional}, ast.Start(object), p.prevEnd(), token.Position{}, p.curStartPos())
}

func parseCallExpr(p *Parser, callee ast.Expression) ast.Expression {
	args := parseArguments(p)
	return ast.Finish(p.factory, &ast.CallExpression{Callee: callee, Arguments: args}, ast.Start(callee), p.prevEnd(), token.Position{}, p.curStartPos())
}

func parseArguments(p *Parser) []ast.Expression {
	p.expect(token.LPAREN)
	var args []ast.Expression
	p.withInAllowed(func() {
		for !p.at(token.RPAREN) {
			if p.at(token.ELLIPSIS) {
				args = append(args, parseSpreadElement(p))
			} else {
				args = append(args, p.parseExpression(ASSIGNMENT))
			}
			if !p.consumeIf(token.COMMA) {
				break
			}
		}
	})
	p.expect(token.RPAREN)
	return args
}

func parseNewExpr(p *Parser) ast.Expression {
	tok := p.curTok
	p.next()
	callee := p.parseExpression(MEMBER)
	var args []ast.Expression
	if p.at(token.LPAREN) {
		args = parseArguments(p)
	}
	return ast.Finish(p.factory, &ast.NewExpression{Callee: callee, Arguments: args}, tok.Start, p.prevEnd(), tok.StartPos, p.curStartPos())
}

func parseTaggedTemplate(p *Parser, tag ast.Expression) ast.Expression {
	quasi := parseTemplateLiteral(p).(*ast.TemplateLiteral)
	return ast.Finish(p.factory, &ast.TaggedTemplateExpr{Tag: tag, Quasi: quasi}, ast.Start(tag), p.prevEnd(), token.Position{}, p.curStartPos())
}

func parseTemplateLiteral(p *Parser) ast.Expression {
	startTok := p.curTok
	p.expect(token.BACKTICK)
	var quasis []*ast.TemplateElement
	var exprs []ast.Expression
	for {
		qtok := p.curTok
		if qtok.Unterminated {
			p.raiseLexical(qtok, "unterminated template literal")
		}
		cooked, _ := qtok.Value.(string)
		p.expect(token.TEMPLATE)
		tail := p.at(token.BACKTICK)
		quasis = append(quasis, ast.Finish(p.factory, &ast.TemplateElement{Cooked: cooked, Raw: qtok.Literal, Tail: tail}, qtok.Start, qtok.End, qtok.StartPos, qtok.EndPos))
		if tail {
			break
		}
		p.expect(token.DOLLAR_BRACE)
		p.withInAllowed(func() { exprs = append(exprs, p.parseExpression(LOWEST)) })
		p.expect(token.RBRACE)
	}
	p.expect(token.BACKTICK)
	return ast.Finish(p.factory, &ast.TemplateLiteral{Quasis: quasis, Expressions: exprs}, startTok.Start, p.prevEnd(), startTok.StartPos, p.curStartPos())
}

func parseArrayExpr(p *Parser) ast.Expression {
	startTok := p.curTok
	p.expect(token.LBRACKET)
	var elems []ast.Expression
	p.withInAllowed(func() {
		for !p.at(token.RBRACKET) {
			if p.at(token.COMMA) {
				elems = append(elems, nil)
				p.next()
				continue
			}
			if p.at(token.ELLIPSIS) {
				elems = append(elems, parseSpreadElement(p))
			} else {
				elems = append(elems, p.parseExpression(ASSIGNMENT))
			}
			if !p.at(token.RBRACKET) {
				p.expect(token.COMMA)
			}
		}
	})
	p.expect(token.RBRACKET)
	return ast.Finish(p.factory, &ast.ArrayExpression{Elements: elems}, startTok.Start, p.prevEnd(), startTok.StartPos, p.curStartPos())
}

func parseObjectExpr(p *Parser) ast.Expression {
	startTok := p.curTok
	p.expect(token.LBRACE)
	var props []*ast.Property
	p.withInAllowed(func() {
		for !p.at(token.RBRACE) {
			props = append(props, parseObjectProperty(p))
			if !p.at(token.RBRACE) {
				p.expect(token.COMMA)
			}
		}
	})
	p.expect(token.RBRACE)
	checkDuplicateProto(p, startTok, props)
	return ast.Finish(p.factory, &ast.ObjectExpression{Properties: props}, startTok.Start, p.prevEnd(), startTok.StartPos, p.curStartPos())
}

// checkDuplicateProto flags a second `__proto__: value` entry in a single
// object literal: a plain, non-computed, non-shorthand "init" property named
// __proto__, which is the one form ECMAScript special-cases as the
// prototype-setting syntax rather than an ordinary own property.
func checkDuplicateProto(p *Parser, tok token.Token, props []*ast.Property) {
	seen := false
	for _, prop := range props {
		if prop.Computed || prop.Shorthand || prop.Kind != "init" {
			continue
		}
		var name string
		switch k := prop.Key.(type) {
		case *ast.Identifier:
			name = k.Name
		case *ast.StringLiteral:
			name = k.Value
		default:
			continue
		}
		if name != "__proto__" {
			continue
		}
		if seen {
			p.raiseEarly(tok, "duplicate __proto__ fields are not allowed in object literals")
			return
		}
		seen = true
	}
}

func parseObjectProperty(p *Parser) *ast.Property {
	start := p.curTok

	if p.at(token.ELLIPSIS) {
		p.next()
		arg := p.parseExpression(ASSIGNMENT)
		return ast.Finish(p.factory, &ast.Property{Value: arg, Kind: "spread"}, start.Start, p.prevEnd(), start.StartPos, p.curStartPos())
	}

	if (p.at(token.GET) || p.at(token.SET)) && !p.peekAt(token.COLON) && !p.peekAt(token.COMMA) && !p.peekAt(token.RBRACE) && !p.peekAt(token.LPAREN) {
		kind := p.curTok.Literal
		p.next()
		key, computed := parsePropertyKey(p)
		params := parseFunctionParams(p)
		body := parseFunctionBody(p, params)
		fn := ast.Finish(p.factory, &ast.FunctionExpression{Params: params, Body: body}, start.Start, p.prevEnd(), start.StartPos, p.curStartPos())
		return ast.Finish(p.factory, &ast.Property{Key: key, Value: fn, Computed: computed, Kind: kind}, start.Start, p.prevEnd(), start.StartPos, p.curStartPos())
	}

	generator := p.consumeIf(token.MULTIPLY)
	key, computed := parsePropertyKey(p)

	if p.at(token.LPAREN) {
		params := parseFunctionParams(p)
		body := parseFunctionBody(p, params)
		fn := ast.Finish(p.factory, &ast.FunctionExpression{Params: params, Body: body, Generator: generator}, start.Start, p.prevEnd(), start.StartPos, p.curStartPos())
		return ast.Finish(p.factory, &ast.Property{Key: key, Value: fn, Computed: computed, Kind: "init"}, start.Start, p.prevEnd(), start.StartPos, p.curStartPos())
	}

	if p.consumeIf(token.COLON) {
		val := p.parseExpression(ASSIGNMENT)
		return ast.Finish(p.factory, &ast.Property{Key: key, Value: val, Computed: computed, Kind: "init"}, start.Start, p.prevEnd(), start.StartPos, p.curStartPos())
	}

	// shorthand: { x } or { x = defaultValue } (the latter only valid when
	// this object literal is later converted to a pattern)
	if p.consumeIf(token.ASSIGN) {
		def := p.parseExpression(ASSIGNMENT)
		val := ast.Finish(p.factory, &ast.AssignmentPattern{Left: key.(ast.Pattern), Right: def}, start.Start, p.prevEnd(), start.StartPos, p.curStartPos())
		return ast.Finish(p.factory, &ast.Property{Key: key, Value: val, Shorthand: true, Kind: "init"}, start.Start, p.prevEnd(), start.StartPos, p.curStartPos())
	}
	return ast.Finish(p.factory, &ast.Property{Key: key, Value: key, Shorthand: true, Kind: "init"}, start.Start, p.prevEnd(), start.StartPos, p.curStartPos())
}

func parsePropertyKey(p *Parser) (key ast.Expression, computed bool) {
	if p.at(token.LBRACKET) {
		p.next()
		k := p.parseExpression(ASSIGNMENT)
		p.expect(token.RBRACKET)
		return k, true
	}
	tok := p.curTok
	switch tok.Type {
	case token.STRING:
		p.next()
		return ast.Finish(p.factory, &ast.StringLiteral{Value: tok.Value.(string), Raw: tok.Literal}, tok.Start, tok.End, tok.StartPos, tok.EndPos), false
	case token.NUMBER:
		p.next()
		return ast.Finish(p.factory, &ast.NumericLiteral{Value: tok.Value.(float64), Raw: tok.Literal}, tok.Start, tok.End, tok.StartPos, tok.EndPos), false
	default:
		p.next()
		return ast.Finish(p.factory, &ast.Identifier{Name: tok.Literal}, tok.Start, tok.End, tok.StartPos, tok.EndPos), false
	}
}

// parseParenOrArrow resolves the `(` ambiguity: a parenthesized expression
// vs. an arrow function's parameter list. It speculatively tries the arrow
// reading first (cheap: parameter lists are short and a failed attempt just
// rolls back via Checkpoint) and falls back to a grouped expression.
func parseParenOrArrow(p *Parser) ast.Expression {
	if arrow, ok := tryParseArrow(p, false); ok {
		return arrow
	}
	startTok := p.expect(token.LPAREN)
	var inner ast.Expression
	var annotation *ast.TypeAnnotation
	p.withInAllowed(func() {
		inner = p.parseExpression(LOWEST)
		if p.typeAnnotationHook != nil && p.at(token.COLON) {
			annotation = p.typeAnnotationHook(p)
		}
	})
	p.expect(token.RPAREN)
	if annotation != nil {
		return ast.Finish(p.factory, &ast.AsExpression{Expression: inner, TypeExpression: annotation.TypeExpression}, startTok.Start, p.prevEnd(), startTok.StartPos, p.curStartPos())
	}
	return ast.Finish(p.factory, &ast.ParenthesizedExpression{Expression: inner}, startTok.Start, p.prevEnd(), startTok.StartPos, p.curStartPos())
}

func tryParseArrow(p *Parser, async bool) (ast.Expression, bool) {
	result, err := Try(p, func() (ast.Expression, error) {
		startTok := p.curTok
		params, perr := parseArrowParams(p)
		if perr != nil {
			return nil, perr
		}
		returnType := parseReturnTypeAnnotation(p)
		if !p.at(token.ARROW) || p.curTok.AfterNewline {
			return nil, errNotArrow
		}
		p.next() // =>
		var body ast.Node
		exprBody := !p.at(token.LBRACE)
		if exprBody {
			body = p.parseExpression(ASSIGNMENT)
		} else {
			body = parseFunctionBody(p, params)
		}
		arrow := ast.Finish(p.factory, &ast.ArrowFunctionExpression{Params: params, Body: body, Async: async, ExpressionBody: exprBody}, startTok.Start, p.prevEnd(), startTok.StartPos, p.curStartPos())
		if returnType != nil {
			ast.SetExtra(arrow, ast.ExtraReturnType, returnType)
		}
		return arrow, nil
	})
	if err != nil {
		return nil, false
	}
	return result, true
}

func parseArrowParams(p *Parser) ([]*ast.Param, error) {
	if p.at(token.IDENT) {
		tok := p.curTok
		p.next()
		id := ast.Finish(p.factory, &ast.Identifier{Name: tok.Literal}, tok.Start, tok.End, tok.StartPos, tok.EndPos)
		return []*ast.Param{{Pattern: id}}, nil
	}
	if !p.at(token.LPAREN) {
		return nil, errNotArrow
	}
	return parseFunctionParamsChecked(p)
}

func parseFunctionParamsChecked(p *Parser) (params []*ast.Param, err error) {
	defer func() {
		if r := recover(); r != nil {
			if e, ok := r.(*Error); ok {
				err = e
				return
			}
			panic(r)
		}
	}()
	return parseFunctionParams(p), nil
}

var errNotArrow = &Error{Kind: Syntactic, Message: "not an arrow function"}
