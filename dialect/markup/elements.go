package markup

import (
	"html"
	"strings"

	"github.com/xjslang/xjsfront/ast"
	"github.com/xjslang/xjsfront/parser"
	"github.com/xjslang/xjsfront/token"
)

// parseJSXElementOrFragment is installed as the prefix parser for `<`: the
// token never otherwise starts an expression, so claiming prefix position
// for it is unambiguous with the base grammar's infix `<` (less-than).
func parseJSXElementOrFragment(p *parser.Parser) ast.Expression {
	start := p.Cur()
	p.Expect(token.LT)

	if p.At(token.GT) {
		p.Advance()
		children := parseJSXChildren(p)
		p.Expect(token.LT)
		p.Expect(token.DIVIDE)
		p.Expect(token.GT)
		return ast.Finish(p.Factory(), &ast.JSXFragment{Children: children}, start.Start, p.PrevEnd(), start.StartPos, p.CurStartPos())
	}

	name := parseJSXName(p)
	attrs := parseJSXAttributes(p)

	if p.ConsumeIf(token.DIVIDE) {
		p.Expect(token.GT)
		opening := ast.Finish(p.Factory(), &ast.JSXOpeningElement{Name: name, Attributes: attrs, SelfClosing: true}, start.Start, p.PrevEnd(), start.StartPos, p.CurStartPos())
		return ast.Finish(p.Factory(), &ast.JSXElement{Opening: opening}, start.Start, p.PrevEnd(), start.StartPos, p.CurStartPos())
	}

	p.Expect(token.GT)
	opening := ast.Finish(p.Factory(), &ast.JSXOpeningElement{Name: name, Attributes: attrs}, start.Start, p.PrevEnd(), start.StartPos, p.CurStartPos())
	children := parseJSXChildren(p)
	closing := parseJSXClosingElement(p)
	return ast.Finish(p.Factory(), &ast.JSXElement{Opening: opening, Children: children, Closing: closing}, start.Start, p.PrevEnd(), start.StartPos, p.CurStartPos())
}

func parseJSXClosingElement(p *parser.Parser) *ast.JSXClosingElement {
	start := p.Cur()
	p.Expect(token.LT)
	p.Expect(token.DIVIDE)
	name := parseJSXName(p)
	p.Expect(token.GT)
	return ast.Finish(p.Factory(), &ast.JSXClosingElement{Name: name}, start.Start, p.PrevEnd(), start.StartPos, p.CurStartPos())
}

// parseJSXIdentifier joins a run of `IDENT (- IDENT)*` into one name, the
// hyphenated tag/attribute spelling markup allows (`data-id`, `aria-label`)
// that an ordinary identifier token can never contain.
func parseJSXIdentifier(p *parser.Parser) *ast.JSXIdentifier {
	start := p.Cur()
	var b strings.Builder
	b.WriteString(start.Literal)
	p.Advance()
	for p.At(token.MINUS) && p.Peek().Type == token.IDENT {
		p.Advance()
		b.WriteByte('-')
		b.WriteString(p.Cur().Literal)
		p.Advance()
	}
	return ast.Finish(p.Factory(), &ast.JSXIdentifier{Name: b.String()}, start.Start, p.PrevEnd(), start.StartPos, p.CurStartPos())
}

// parseJSXName parses a tag or attribute name, including a dotted member
// form (`Foo.Bar`) for namespaced/qualified element names.
func parseJSXName(p *parser.Parser) ast.Node {
	start := p.Cur()
	var name ast.Node = parseJSXIdentifier(p)
	for p.At(token.DOT) {
		p.Advance()
		prop := parseJSXIdentifier(p)
		name = ast.Finish(p.Factory(), &ast.JSXMemberExpression{Object: name, Property: prop}, start.Start, p.PrevEnd(), start.StartPos, p.CurStartPos())
	}
	return name
}

func parseJSXAttributes(p *parser.Parser) []ast.Node {
	var attrs []ast.Node
	for !p.At(token.GT) && !p.At(token.DIVIDE) && !p.At(token.EOF) {
		if p.At(token.LBRACE) && p.PeekAt(token.ELLIPSIS) {
			start := p.Cur()
			p.Advance()
			p.Advance()
			arg := p.ParseExpr(parser.ASSIGNMENT)
			p.Expect(token.RBRACE)
			attrs = append(attrs, ast.Finish(p.Factory(), &ast.JSXSpreadAttribute{Argument: arg}, start.Start, p.PrevEnd(), start.StartPos, p.CurStartPos()))
			continue
		}

		start := p.Cur()
		name := parseJSXIdentifier(p)
		var value ast.Node
		if p.ConsumeIf(token.ASSIGN) {
			switch {
			case p.At(token.STRING):
				tok := p.Cur()
				p.Advance()
				value = ast.Finish(p.Factory(), &ast.StringLiteral{Value: tok.Value.(string), Raw: tok.Literal}, tok.Start, tok.End, tok.StartPos, tok.EndPos)
			case p.At(token.LBRACE):
				value = parseJSXExpressionContainer(p)
			default:
				p.RaiseSyntax("expected a string or {expression} attribute value")
			}
		}
		attrs = append(attrs, ast.Finish(p.Factory(), &ast.JSXAttribute{Name: name, Value: value}, start.Start, p.PrevEnd(), start.StartPos, p.CurStartPos()))
	}
	return attrs
}

func parseJSXExpressionContainer(p *parser.Parser) *ast.JSXExpressionContainer {
	start := p.Cur()
	p.Expect(token.LBRACE)
	var expr ast.Expression
	p.WithInAllowed(func() { expr = p.ParseExpr(parser.LOWEST) })
	p.Expect(token.RBRACE)
	return ast.Finish(p.Factory(), &ast.JSXExpressionContainer{Expression: expr}, start.Start, p.PrevEnd(), start.StartPos, p.CurStartPos())
}

// parseJSXChildren parses element children up to (not including) the
// closing tag's `<`. A nested element consumes its own open/close pair
// recursively; an expression container consumes its own braces; everything
// else between two markup boundaries is reconstructed as a single JSXText
// node.
func parseJSXChildren(p *parser.Parser) []ast.Node {
	var children []ast.Node
	for {
		switch {
		case p.At(token.LT):
			if p.PeekAt(token.DIVIDE) {
				return children
			}
			children = append(children, parseJSXElementOrFragment(p))
		case p.At(token.LBRACE):
			children = append(children, parseJSXExpressionContainer(p))
		case p.At(token.EOF):
			p.RaiseSyntax("unterminated JSX element")
			return children
		default:
			children = append(children, parseJSXText(p))
		}
	}
}

// parseJSXText reconstructs a run of ordinary tokens between markup
// boundaries as a single JSXText node. Consecutive tokens that sat flush
// against each other in the source (no byte gap between one's end offset
// and the next's start) are joined directly so a split entity reference
// like `&amp;` (tokenized as `&`, `amp`, `;`) rejoins without an inserted
// space; any other gap becomes a single space, which does not reproduce
// the source's exact whitespace width (multiple spaces, newlines) but does
// preserve whether a separator existed at all. Value holds the text with
// XHTML entities decoded via html.UnescapeString; Raw keeps the
// undecoded, rejoined source text.
func parseJSXText(p *parser.Parser) *ast.JSXText {
	start := p.Cur()
	var b strings.Builder
	prevEnd := -1
	for !p.At(token.LT) && !p.At(token.LBRACE) && !p.At(token.EOF) {
		tok := p.Cur()
		if prevEnd >= 0 && tok.Start != prevEnd {
			b.WriteByte(' ')
		}
		b.WriteString(tok.Literal)
		prevEnd = tok.End
		p.Advance()
	}
	raw := b.String()
	return ast.Finish(p.Factory(), &ast.JSXText{Value: html.UnescapeString(raw), Raw: raw}, start.Start, p.PrevEnd(), start.StartPos, p.CurStartPos())
}
