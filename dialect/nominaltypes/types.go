package nominaltypes

import (
	"github.com/xjslang/xjsfront/ast"
	"github.com/xjslang/xjsfront/parser"
	"github.com/xjslang/xjsfront/token"
)

// parseTypeAnnotation is the hook installed via
// parser.Builder.UseTypeAnnotationHook: called with Cur() at the `:`, so it
// consumes the colon itself before parsing the type expression.
func parseTypeAnnotation(p *parser.Parser) *ast.TypeAnnotation {
	start := p.Cur()
	p.Advance() // :
	texpr := parseType(p)
	return ast.Finish(p.Factory(), &ast.TypeAnnotation{TypeExpression: texpr}, start.Start, p.PrevEnd(), start.StartPos, p.CurStartPos())
}

func parseType(p *parser.Parser) ast.Node {
	return parseUnionType(p)
}

func parseUnionType(p *parser.Parser) ast.Node {
	start := p.Cur()
	p.ConsumeIf(token.BITOR)
	first := parseIntersectionType(p)
	if !p.At(token.BITOR) {
		return first
	}
	types := []ast.Node{first}
	for p.ConsumeIf(token.BITOR) {
		types = append(types, parseIntersectionType(p))
	}
	return ast.Finish(p.Factory(), &ast.UnionType{Types: types}, start.Start, p.PrevEnd(), start.StartPos, p.CurStartPos())
}

func parseIntersectionType(p *parser.Parser) ast.Node {
	start := p.Cur()
	first := parsePostfixType(p)
	if !p.At(token.BITAND) {
		return first
	}
	types := []ast.Node{first}
	for p.ConsumeIf(token.BITAND) {
		types = append(types, parsePostfixType(p))
	}
	return ast.Finish(p.Factory(), &ast.IntersectionType{Types: types}, start.Start, p.PrevEnd(), start.StartPos, p.CurStartPos())
}

// parsePostfixType handles the `T[]` array suffix, repeatable (`T[][]`).
// Unlike structuraltypes, `T[K]` indexed-access is not distinguished from
// an array suffix at this grammar level since nominaltypes does not model
// indexed-access types separately; `T[K]` parses as an array type whose
// bracket contents are discarded, which only matters for code that actually
// uses indexed-access types, a form left unsupported here (see DESIGN.md).
func parsePostfixType(p *parser.Parser) ast.Node {
	start := p.Cur()
	elem := parsePrimaryType(p)
	for p.At(token.LBRACKET) {
		p.Advance()
		if !p.At(token.RBRACKET) {
			parseType(p) // indexed-access operand, not modeled; discarded
		}
		p.Expect(token.RBRACKET)
		elem = ast.Finish(p.Factory(), &ast.ArrayType{ElementType: elem}, start.Start, p.PrevEnd(), start.StartPos, p.CurStartPos())
	}
	return elem
}

func parsePrimaryType(p *parser.Parser) ast.Node {
	start := p.Cur()
	switch {
	case p.At(token.LPAREN):
		return parseFunctionOrGroupType(p)
	case p.At(token.LBRACE):
		return parseObjectType(p)
	case p.At(token.STRING):
		return literalTypeRef(p)
	case p.At(token.NUMBER):
		return literalTypeRef(p)
	case p.At(token.TRUE), p.At(token.FALSE):
		return literalTypeRef(p)
	case p.At(token.IDENT) && p.Cur().Literal == "keyof":
		p.Advance()
		operand := parsePostfixType(p)
		return ast.Finish(p.Factory(), &ast.TypeReference{Name: &ast.Identifier{Name: "keyof"}, TypeParameters: []ast.Node{operand}}, start.Start, p.PrevEnd(), start.StartPos, p.CurStartPos())
	case p.At(token.IDENT):
		return parseTypeReference(p)
	default:
		p.RaiseSyntax("expected a type, got %s", p.Cur().Type)
		return ast.Finish(p.Factory(), &ast.TypeReference{Name: &ast.Identifier{Name: "error"}}, start.Start, start.End, start.StartPos, start.EndPos)
	}
}

// literalTypeRef represents a string/number/boolean literal type as a
// TypeReference whose Name carries the literal's raw text, tagged so a
// consumer can tell it apart from a named type; nominaltypes has no
// dedicated literal-type node, see DESIGN.md.
func literalTypeRef(p *parser.Parser) ast.Node {
	tok := p.Cur()
	p.Advance()
	name := ast.Finish(p.Factory(), &ast.Identifier{Name: tok.Literal}, tok.Start, tok.End, tok.StartPos, tok.EndPos)
	ref := ast.Finish(p.Factory(), &ast.TypeReference{Name: name}, tok.Start, tok.End, tok.StartPos, tok.EndPos)
	ast.SetExtra(ref, "literalType", true)
	return ref
}

// parseFunctionOrGroupType disambiguates `(a: T, b: U) => R` from a
// parenthesized type `(T)`.
func parseFunctionOrGroupType(p *parser.Parser) ast.Node {
	start := p.Cur()
	fn, err := parser.Try(p, func() (*ast.FunctionType, error) {
		p.Expect(token.LPAREN)
		var params []*ast.Param
		for !p.At(token.RPAREN) {
			pstart := p.Cur()
			if !p.At(token.IDENT) {
				return nil, notAFunctionType
			}
			name := p.Cur()
			p.Advance()
			id := ast.Finish(p.Factory(), &ast.Identifier{Name: name.Literal}, name.Start, name.End, name.StartPos, name.EndPos)
			optional := p.ConsumeIf(token.QUESTION)
			var annotation *ast.TypeAnnotation
			if p.At(token.COLON) {
				annotation = parseTypeAnnotation(p)
			}
			param := ast.Finish(p.Factory(), &ast.Param{Pattern: id}, pstart.Start, p.PrevEnd(), pstart.StartPos, p.CurStartPos())
			if optional {
				ast.SetExtra(param, ast.ExtraOptional, true)
			}
			if annotation != nil {
				ast.SetExtra(param, ast.ExtraTypeAnnotation, annotation)
			}
			params = append(params, param)
			if !p.ConsumeIf(token.COMMA) {
				break
			}
		}
		if !p.ConsumeIf(token.RPAREN) {
			return nil, notAFunctionType
		}
		if !p.At(token.ARROW) {
			return nil, notAFunctionType
		}
		p.Advance()
		ret := parseType(p)
		return ast.Finish(p.Factory(), &ast.FunctionType{Params: params, ReturnType: ret}, start.Start, p.PrevEnd(), start.StartPos, p.CurStartPos()), nil
	})
	if err == nil {
		return fn
	}
	p.Expect(token.LPAREN)
	inner := parseType(p)
	p.Expect(token.RPAREN)
	return inner
}

var notAFunctionType = &parser.Error{Kind: parser.Syntactic, Message: "not a function type"}

// parseObjectType parses `{ ... }`, including index signatures
// (`[key: string]: T`) folded in as an ordinary property whose Key is nil
// and whose Value is the signature's value type; the key/index-type pair
// itself is not retained separately, see DESIGN.md.
func parseObjectType(p *parser.Parser) ast.Node {
	start := p.Cur()
	p.Expect(token.LBRACE)
	var props []*ast.ObjectTypeProperty
	for !p.At(token.RBRACE) {
		props = append(props, parseObjectTypeProperty(p))
		if !p.At(token.RBRACE) {
			p.ConsumeIf(token.COMMA)
			p.ConsumeIf(token.SEMICOLON)
		}
	}
	p.Expect(token.RBRACE)
	return ast.Finish(p.Factory(), &ast.ObjectType{Properties: props}, start.Start, p.PrevEnd(), start.StartPos, p.CurStartPos())
}

func parseObjectTypeProperty(p *parser.Parser) *ast.ObjectTypeProperty {
	start := p.Cur()
	readonly := false
	if p.At(token.IDENT) && p.Cur().Literal == "readonly" && !p.PeekAt(token.COLON) {
		readonly = true
		p.Advance()
	}
	if p.At(token.LBRACKET) {
		p.Advance()
		p.Expect(token.IDENT)
		p.Expect(token.COLON)
		parseType(p) // index key type, discarded
		p.Expect(token.RBRACKET)
		p.Expect(token.COLON)
		val := parseType(p)
		return ast.Finish(p.Factory(), &ast.ObjectTypeProperty{Value: val, Readonly: readonly}, start.Start, p.PrevEnd(), start.StartPos, p.CurStartPos())
	}
	if p.At(token.ELLIPSIS) {
		p.Advance()
		spreadType := parseType(p)
		return ast.Finish(p.Factory(), &ast.ObjectTypeProperty{Value: spreadType}, start.Start, p.PrevEnd(), start.StartPos, p.CurStartPos())
	}
	keyTok := p.Cur()
	key := ast.Finish(p.Factory(), &ast.Identifier{Name: keyTok.Literal}, keyTok.Start, keyTok.End, keyTok.StartPos, keyTok.EndPos)
	p.Advance()
	optional := p.ConsumeIf(token.QUESTION)
	p.Expect(token.COLON)
	val := parseType(p)
	return ast.Finish(p.Factory(), &ast.ObjectTypeProperty{Key: key, Value: val, Optional: optional, Readonly: readonly}, start.Start, p.PrevEnd(), start.StartPos, p.CurStartPos())
}

// parseTypeReference parses a named type, with optional `<T, U>` generic
// instantiation arguments.
func parseTypeReference(p *parser.Parser) ast.Node {
	start := p.Cur()
	nameTok := p.Cur()
	p.Advance()
	name := ast.Finish(p.Factory(), &ast.Identifier{Name: nameTok.Literal}, nameTok.Start, nameTok.End, nameTok.StartPos, nameTok.EndPos)
	var args []ast.Node
	if p.At(token.LT) {
		p.Advance()
		for !p.At(token.GT) {
			args = append(args, parseType(p))
			if !p.ConsumeIf(token.COMMA) {
				break
			}
		}
		p.Expect(token.GT)
	}
	return ast.Finish(p.Factory(), &ast.TypeReference{Name: name, TypeParameters: args}, start.Start, p.PrevEnd(), start.StartPos, p.CurStartPos())
}

// parseGenericTypeParameters parses the `<T, U extends V = Default>` list a
// type-alias or interface declaration may carry.
func parseGenericTypeParameters(p *parser.Parser) []*ast.GenericTypeParameter {
	if !p.At(token.LT) {
		return nil
	}
	p.Advance()
	var params []*ast.GenericTypeParameter
	for !p.At(token.GT) {
		start := p.Cur()
		nameTok := p.Expect(token.IDENT)
		name := ast.Finish(p.Factory(), &ast.Identifier{Name: nameTok.Literal}, nameTok.Start, nameTok.End, nameTok.StartPos, nameTok.EndPos)
		var constraint, def ast.Node
		if p.At(token.EXTENDS) {
			p.Advance()
			constraint = parseType(p)
		}
		if p.ConsumeIf(token.ASSIGN) {
			def = parseType(p)
		}
		params = append(params, ast.Finish(p.Factory(), &ast.GenericTypeParameter{Name: name, Constraint: constraint, Default: def}, start.Start, p.PrevEnd(), start.StartPos, p.CurStartPos()))
		if !p.ConsumeIf(token.COMMA) {
			break
		}
	}
	p.Expect(token.GT)
	return params
}
