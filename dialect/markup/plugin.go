package markup

import (
	"github.com/xjslang/xjsfront/parser"
	"github.com/xjslang/xjsfront/token"
)

// Plugin installs the markup dialect onto a parser.Builder: `<` at prefix
// position now opens a JSX element or fragment instead of only ever being
// read as the less-than operator.
func Plugin(b *parser.Builder) {
	b.UseParserSetup(func(p *parser.Parser) {
		p.RegisterPrefix(token.LT, parseJSXElementOrFragment)
	})
}
