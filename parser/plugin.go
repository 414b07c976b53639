package parser

import (
	"github.com/xjslang/xjsfront/ast"
	"github.com/xjslang/xjsfront/lexer"
)

// Builder assembles a Parser with dialect plugins installed: each plugin
// wraps a layer around the base statement/expression parse functions and,
// if it needs new lexical forms, a layer around the lexer's token
// production (none of the dialects in this module does). The first-installed
// interceptor is outermost, matching lexer.Builder's composition rule.
type Builder struct {
	stmtInterceptors   []Interceptor[ast.Statement]
	exprInterceptors   []Interceptor[ast.Expression]
	typeAnnotationHook func(p *Parser) *ast.TypeAnnotation
	setupFns           []func(p *Parser)
	lexBuilder         *lexer.Builder
}

// NewBuilder returns a Builder with no dialect plugins installed.
func NewBuilder() *Builder {
	return &Builder{lexBuilder: lexer.NewBuilder()}
}

// Install runs plugin against this Builder. dialect/structuraltypes,
// dialect/nominaltypes, dialect/markup, and dialect/estreeshape each expose
// one of these.
func (b *Builder) Install(plugin Plugin) *Builder {
	plugin(b)
	return b
}

// UseStatementInterceptor adds a layer to the statement-parsing chain.
func (b *Builder) UseStatementInterceptor(i Interceptor[ast.Statement]) *Builder {
	b.stmtInterceptors = append(b.stmtInterceptors, i)
	return b
}

// UseExpressionInterceptor adds a layer to the expression-parsing chain.
func (b *Builder) UseExpressionInterceptor(i Interceptor[ast.Expression]) *Builder {
	b.exprInterceptors = append(b.exprInterceptors, i)
	return b
}

// UseTokenInterceptor forwards a lexical interceptor to the underlying
// lexer.Builder, for a dialect that needs to recognize new token
// shapes rather than just new statement/expression productions.
func (b *Builder) UseTokenInterceptor(i lexer.Interceptor) *Builder {
	b.lexBuilder.UseTokenInterceptor(i)
	return b
}

// UseTypeAnnotationHook installs the function a typing dialect
// (structuraltypes, nominaltypes) uses to parse a `: T` annotation at one of
// the base grammar's fixed annotation points (binding, parameter, return
// type). Installing it a second time replaces the previous hook rather than
// composing, since structural-types and nominal-types are mutually
// exclusive — see 4.4 of the distilled spec.
func (b *Builder) UseTypeAnnotationHook(fn func(p *Parser) *ast.TypeAnnotation) *Builder {
	b.typeAnnotationHook = fn
	return b
}

// UseParserSetup registers fn to run once against the built Parser, after
// its base prefix/infix/postfix tables exist but before any source is
// parsed. A dialect that adds a genuine new operator (nominaltypes' `as`,
// its non-null `!`) uses this to call RegisterPrefix/RegisterInfix/
// RegisterPostfix, since those need a live *Parser rather than composing
// like the statement/expression interceptor chains.
func (b *Builder) UseParserSetup(fn func(p *Parser)) *Builder {
	b.setupFns = append(b.setupFns, fn)
	return b
}

// Build assembles the composed Parser: lexer interceptors feed the
// lexer.Builder, statement/expression interceptors are composed around
// baseParseStatement/baseParseExpression.
func (b *Builder) Build(src string, opts Options) *Parser {
	for _, pluginFn := range opts.Plugins {
		b.Install(pluginFn)
	}
	l := b.lexBuilder.
		WithFilename(opts.SourceFilename).
		WithStartLine(opts.StartLine).
		Build(src)
	p := newParser(l, opts)
	p.statementParseFn = composeStatementInterceptors(b.stmtInterceptors)
	p.expressionParseFn = composeExpressionInterceptors(b.exprInterceptors)
	p.typeAnnotationHook = b.typeAnnotationHook
	for _, setup := range b.setupFns {
		setup(p)
	}
	return p
}

func composeStatementInterceptors(interceptors []Interceptor[ast.Statement]) func(p *Parser) ast.Statement {
	fn := baseParseStatement
	for i := len(interceptors) - 1; i >= 0; i-- {
		ic := interceptors[i]
		inner := fn
		fn = func(p *Parser) ast.Statement {
			return ic(p, func() ast.Statement { return inner(p) })
		}
	}
	return fn
}

// composeExpressionInterceptors wraps baseParseExpression, threading the
// Pratt-loop precedence argument through every installed layer unchanged;
// a dialect interceptor that wants to recognize a new prefix form (`<T>` type
// arguments, a `<Tag>` JSX element) inspects the current token and either
// produces its own node or calls next() to defer to the next layer in.
func composeExpressionInterceptors(interceptors []Interceptor[ast.Expression]) func(p *Parser, precedence int) ast.Expression {
	return func(p *Parser, precedence int) ast.Expression {
		wrapped := func() ast.Expression { return baseParseExpression(p, precedence) }
		for i := len(interceptors) - 1; i >= 0; i-- {
			ic := interceptors[i]
			inner := wrapped
			wrapped = func() ast.Expression { return ic(p, inner) }
		}
		return wrapped()
	}
}
