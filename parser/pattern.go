package parser

import (
	"github.com/xjslang/xjsfront/ast"
	"github.com/xjslang/xjsfront/token"
)

// toAssignable converts an expression already parsed as if it were a value
// (an array/object literal, an identifier, a member expression) into the
// equivalent assignment target, reusing the same node instances rather than
// re-parsing: `[a, {b}] = x` first parses its left side as an
// ArrayExpression containing an ObjectExpression, then this function walks
// it, turning each AssignmentExpression found inside into an
// AssignmentPattern and validating every leaf is itself a valid target.
func toAssignable(p *Parser, expr ast.Expression) ast.Node {
	switch n := expr.(type) {
	case *ast.Identifier, *ast.MemberExpression:
		return n
	case *ast.ParenthesizedExpression:
		return toAssignable(p, n.Expression)
	case *ast.ArrayExpression:
		for i, el := range n.Elements {
			if el == nil {
				continue
			}
			n.Elements[i] = toAssignableExpr(p, el)
		}
		return n
	case *ast.ObjectExpression:
		for _, prop := range n.Properties {
			if prop.Kind == "spread" {
				continue
			}
			prop.Value = toAssignableExpr(p, prop.Value)
		}
		return n
	case *ast.AssignmentExpression:
		if n.Operator == "=" {
			left, _ := n.Left.(ast.Pattern)
			return &ast.AssignmentPattern{Left: left, Right: n.Right}
		}
		p.raiseEarly(p.curTok, "invalid assignment target")
		return n
	case *ast.SpreadElement:
		return &ast.RestElement{Argument: toAssignable(p, n.Argument).(ast.Pattern)}
	default:
		p.raiseEarly(p.curTok, "invalid assignment target")
		return n
	}
}

func toAssignableExpr(p *Parser, n ast.Expression) ast.Expression {
	converted := toAssignable(p, n)
	if e, ok := converted.(ast.Expression); ok {
		return e
	}
	return n
}

// parseBindingPattern parses a single binding target for a var/let/const
// declarator, a catch clause parameter, or a function parameter: an
// identifier, or an array/object destructuring pattern.
func parseBindingPattern(p *Parser) ast.Pattern {
	switch {
	case p.at(token.LBRACKET):
		return parseArrayPattern(p)
	case p.at(token.LBRACE):
		return parseObjectPattern(p)
	default:
		tok := p.expect(token.IDENT)
		if p.inStrict && (tok.Literal == "eval" || tok.Literal == "arguments") {
			p.raiseEarly(tok, "Binding %s in strict mode", tok.Literal)
		}
		return ast.Finish(p.factory, &ast.Identifier{Name: tok.Literal}, tok.Start, tok.End, tok.StartPos, tok.EndPos)
	}
}

func parseArrayPattern(p *Parser) ast.Pattern {
	start := p.expect(token.LBRACKET)
	var elems []ast.Expression
	for !p.at(token.RBRACKET) {
		if p.at(token.COMMA) {
			elems = append(elems, nil)
			p.next()
			continue
		}
		var el ast.Pattern
		if p.at(token.ELLIPSIS) {
			p.next()
			el = &ast.RestElement{Argument: parseBindingPattern(p)}
		} else {
			el = parseBindingPattern(p)
			if p.consumeIf(token.ASSIGN) {
				def := p.parseExpression(ASSIGNMENT)
				el = &ast.AssignmentPattern{Left: el, Right: def}
			}
		}
		elems = append(elems, el.(ast.Expression))
		if !p.at(token.RBRACKET) {
			p.expect(token.COMMA)
		}
	}
	p.expect(token.RBRACKET)
	return ast.Finish(p.factory, &ast.ArrayExpression{Elements: elems}, start.Start, p.prevEnd(), start.StartPos, p.curStartPos())
}

func parseObjectPattern(p *Parser) ast.Pattern {
	start := p.expect(token.LBRACE)
	var props []*ast.Property
	for !p.at(token.RBRACE) {
		if p.at(token.ELLIPSIS) {
			p.next()
			arg := parseBindingPattern(p)
			props = append(props, &ast.Property{Value: arg.(ast.Expression), Kind: "spread"})
		} else {
			key, computed := parsePropertyKey(p)
			var val ast.Expression
			shorthand := false
			if p.consumeIf(token.COLON) {
				val = parseBindingPattern(p).(ast.Expression)
			} else {
				val = key
				shorthand = true
			}
			if p.consumeIf(token.ASSIGN) {
				def := p.parseExpression(ASSIGNMENT)
				val = &ast.AssignmentPattern{Left: val.(ast.Pattern), Right: def}
			}
			props = append(props, &ast.Property{Key: key, Value: val, Computed: computed, Shorthand: shorthand, Kind: "init"})
		}
		if !p.at(token.RBRACE) {
			p.expect(token.COMMA)
		}
	}
	p.expect(token.RBRACE)
	return ast.Finish(p.factory, &ast.ObjectExpression{Properties: props}, start.Start, p.prevEnd(), start.StartPos, p.curStartPos())
}

// parseFunctionParams parses a parenthesized parameter list shared by
// function expressions/declarations, methods, and (via parseArrowParams)
// arrow functions with parenthesized parameters.
func parseFunctionParams(p *Parser) []*ast.Param {
	p.expect(token.LPAREN)
	var params []*ast.Param
	seen := map[string]bool{}
	for !p.at(token.RPAREN) {
		start := p.curTok
		rest := p.consumeIf(token.ELLIPSIS)
		pat := parseBindingPattern(p)
		if p.inStrict {
			if name, ok := pat.(*ast.Identifier); ok {
				if seen[name.Name] {
					p.raiseEarly(start, "duplicate parameter name %q in strict mode", name.Name)
				}
				seen[name.Name] = true
			}
		}
		optional := p.typeAnnotationHook != nil && p.consumeIf(token.QUESTION)
		var annotation *ast.TypeAnnotation
		if p.typeAnnotationHook != nil && p.at(token.COLON) {
			annotation = p.typeAnnotationHook(p)
		}
		var def ast.Expression
		if !rest && p.consumeIf(token.ASSIGN) {
			def = p.parseExpression(ASSIGNMENT)
		}
		param := ast.Finish(p.factory, &ast.Param{Pattern: pat, Default: def, Rest: rest}, start.Start, p.prevEnd(), start.StartPos, p.curStartPos())
		if optional {
			ast.SetExtra(param, ast.ExtraOptional, true)
		}
		if annotation != nil {
			ast.SetExtra(param, ast.ExtraTypeAnnotation, annotation)
		}
		params = append(params, param)
		if !p.consumeIf(token.COMMA) {
			break
		}
	}
	p.expect(token.RPAREN)
	return params
}
