// Package parser implements a recursive-descent, operator-precedence parser
// for xjsfront's source language. A Parser is built directly with New for
// the base grammar, or assembled through a Builder when one or more dialect
// plugins (dialect/structuraltypes, dialect/nominaltypes, dialect/markup,
// dialect/estreeshape) are installed.
package parser

import (
	"github.com/xjslang/xjsfront/ast"
	"github.com/xjslang/xjsfront/lexer"
	"github.com/xjslang/xjsfront/token"
)

// Interceptor wraps one layer of statement or expression parsing: a dialect
// plugin installs one to recognize productions the base parser doesn't know
// about (e.g. a `type` alias declaration) by inspecting
// the upcoming token and either producing its own node or deferring to
// next(), the next layer in (the first-installed interceptor is outermost).
type Interceptor[T ast.Node] func(p *Parser, next func() T) T

// Parser holds the full mutable state of one parse: current/peek tokens,
// the scope stack, accumulated errors, and the prefix/infix/postfix parse
// function tables a Builder composes dialect interceptors around.
type Parser struct {
	lex     *lexer.Lexer
	factory *ast.Factory
	opts    Options

	curTok  token.Token
	peekTok token.Token

	scopes []scope

	errors   []*Error
	inStrict bool

	// noIn suppresses treating the `in` keyword as a binary operator while
	// parsing a for-statement's init clause, so `for (a in b)` stops at
	// `in` instead of folding it into `a in b`. Any bracketed sub-expression
	// (parens, array/object literal, call arguments, computed member) turns
	// it back off, since the ambiguity can't reach across a closing
	// delimiter.
	noIn bool

	prefixParseFns  map[token.Type]prefixParseFn
	infixParseFns   map[token.Type]infixParseFn
	postfixParseFns map[token.Type]postfixParseFn

	// infixPrecedenceOverride lets a dialect register a new infix operator
	// (nominaltypes' `as`, same precedence as relational operators) without
	// the base grammar's static token.Descriptor table having to know about
	// it; infixBindingPower consults this before Descriptor.Precedence.
	infixPrecedenceOverride map[token.Type]int

	statementParseFn  func(p *Parser) ast.Statement
	expressionParseFn func(p *Parser, precedence int) ast.Expression

	// typeAnnotationHook, when installed by a typing dialect (structuraltypes,
	// nominaltypes), is called at every `:` annotation point the base grammar
	// recognizes but does not itself know how to parse: a binding's type, a
	// parameter's type, a function's return type. nil means no typing dialect
	// is installed and `:` there is always a syntax error, same as today.
	typeAnnotationHook func(p *Parser) *ast.TypeAnnotation

	comments []token.Comment

	// exportedNames tracks every name this module has exported so far, so a
	// second `export` of the same name (including the implicit "default")
	// can be flagged as a strict-mode/module early error.
	exportedNames map[string]bool
}

// checkDuplicateExport raises an EarlyError if name was already exported
// earlier in this module.
func (p *Parser) checkDuplicateExport(tok token.Token, name string) {
	if p.exportedNames == nil {
		p.exportedNames = map[string]bool{}
	}
	if p.exportedNames[name] {
		p.raiseEarly(tok, "duplicate export %q", name)
		return
	}
	p.exportedNames[name] = true
}

type prefixParseFn func(p *Parser) ast.Expression
type infixParseFn func(p *Parser, left ast.Expression) ast.Expression
type postfixParseFn func(p *Parser, operand ast.Expression) ast.Expression

// New builds a Parser over src with no dialect plugins installed;
// equivalent to NewBuilder().Build(src, opts).
func New(src string, opts Options) *Parser {
	return NewBuilder().Build(src, opts)
}

func newParser(l *lexer.Lexer, opts Options) *Parser {
	p := &Parser{
		lex:             l,
		factory:         ast.NewFactory(opts.SourceFilename, opts.Ranges),
		opts:            opts,
		prefixParseFns:  map[token.Type]prefixParseFn{},
		infixParseFns:   map[token.Type]infixParseFn{},
		postfixParseFns: map[token.Type]postfixParseFn{},
	}
	p.inStrict = opts.StrictMode || opts.SourceType == "module"
	p.pushScope(scopeProgram)
	p.registerBaseParseFns()
	p.statementParseFn = baseParseStatement
	p.expressionParseFn = baseParseExpression

	p.next()
	p.next()
	return p
}

// Result groups a parse's program, errors and tokens. Parse returns the
// program and errors directly and does not build a Result.
type Result struct {
	Program *ast.Program
	Errors  []*Error
	Tokens  []token.Token
}

// Parse runs a full program parse and returns the errors collected (nil on
// success). In TolerantMode it keeps parsing past recoverable syntax
// errors; otherwise the first Syntactic/Lexical error aborts immediately and
// is the sole entry in the returned slice.
func (p *Parser) Parse() (*ast.Program, []*Error) {
	startOffset := p.curTok.Start
	startPos := p.curTok.StartPos
	directives := p.parseDirectivePrologueTopLevel()
	var body []ast.Statement
	for p.curTok.Type != token.EOF {
		stmt := p.parseStatementTopLevel()
		if stmt != nil {
			body = append(body, stmt)
		}
		if !p.opts.TolerantMode && len(p.errors) > 0 {
			break
		}
	}
	sourceType := p.opts.SourceType
	if sourceType == "" {
		sourceType = "script"
	}
	program := ast.Finish(p.factory, &ast.Program{Body: body, SourceType: sourceType, Directives: directives}, startOffset, p.prevEnd(), startPos, p.curTok.StartPos)

	if len(p.errors) == 0 || p.opts.TolerantMode {
		ast.AttachComments(program, p.lex.Comments(), nil)
	}
	return program, p.errors
}

// parseDirectivePrologueTopLevel wraps parseDirectivePrologue with the same
// recover-and-record behavior parseStatementTopLevel gives every other
// top-level statement, so a malformed directive (e.g. an unterminated
// string literal) reports a Lexical error instead of an uncaught panic.
func (p *Parser) parseDirectivePrologueTopLevel() (directives []*ast.Directive) {
	defer func() {
		if r := recover(); r != nil {
			if e, ok := r.(*Error); ok {
				p.errors = append(p.errors, e)
				p.synchronize()
				return
			}
			panic(r)
		}
	}()
	return parseDirectivePrologue(p)
}

func (p *Parser) parseStatementTopLevel() (stmt ast.Statement) {
	defer func() {
		if r := recover(); r != nil {
			if e, ok := r.(*Error); ok {
				p.errors = append(p.errors, e)
				p.synchronize()
				stmt = nil
				return
			}
			panic(r)
		}
	}()
	return p.statementParseFn(p)
}

// synchronize discards tokens up to the next statement boundary after a
// syntax error, so TolerantMode can keep going instead of re-erroring on
// every remaining token of a broken statement.
func (p *Parser) synchronize() {
	for p.curTok.Type != token.EOF && p.curTok.Type != token.SEMICOLON && p.curTok.Type != token.RBRACE {
		p.next()
	}
	if p.curTok.Type == token.SEMICOLON {
		p.next()
	}
}

// next advances the token window by one, tracking the end offset/position
// of the token that just left curTok (used by Factory.Finish call sites).
func (p *Parser) next() {
	p.curTok = p.peekTok
	p.peekTok = p.lex.NextToken()
}

func (p *Parser) prevEnd() int                { return p.curTok.Start }
func (p *Parser) curEnd() int                 { return p.curTok.End }
func (p *Parser) curStart() int               { return p.curTok.Start }
func (p *Parser) curStartPos() token.Position { return p.curTok.StartPos }

// expect consumes the current token if it has type tt, else raises a
// Syntactic error.
func (p *Parser) expect(tt token.Type) token.Token {
	if p.curTok.Type != tt {
		p.raiseSyntax("expected %s, got %s", token.Lookup(tt).Label, p.curTok.Type)
	}
	tok := p.curTok
	p.next()
	return tok
}

func (p *Parser) at(tt token.Type) bool     { return p.curTok.Type == tt }
func (p *Parser) peekAt(tt token.Type) bool { return p.peekTok.Type == tt }

// consumeIf advances past curTok and returns true if it has type tt.
func (p *Parser) consumeIf(tt token.Type) bool {
	if p.at(tt) {
		p.next()
		return true
	}
	return false
}

// expectSemicolonASI implements automatic semicolon insertion: an explicit
// `;` is always accepted; otherwise ASI kicks in at EOF, before a `}`, or
// when the next token was preceded by a line terminator. TolerantMode
// accepts a missing semicolon even when none of those hold, recording a
// Syntactic error instead of aborting.
func (p *Parser) expectSemicolonASI() {
	if p.consumeIf(token.SEMICOLON) {
		return
	}
	if p.at(token.EOF) || p.at(token.RBRACE) || p.curTok.AfterNewline {
		return
	}
	if p.opts.TolerantMode {
		p.errors = append(p.errors, newError(Syntactic, p.opts.SourceFilename, p.curTok, "missing semicolon"))
		return
	}
	p.raiseSyntax("missing semicolon")
}

func (p *Parser) raiseSyntax(format string, args ...any) {
	err := newError(Syntactic, p.opts.SourceFilename, p.curTok, format, args...)
	panic(err)
}

// raiseLexical aborts the parse the same way raiseSyntax does, but tags the
// error Lexical: a malformed token (unterminated literal/comment, invalid
// regex) rather than a well-formed token in the wrong place.
func (p *Parser) raiseLexical(tok token.Token, format string, args ...any) {
	err := newError(Lexical, p.opts.SourceFilename, tok, format, args...)
	panic(err)
}

func (p *Parser) raiseEarly(tok token.Token, format string, args ...any) {
	p.errors = append(p.errors, newError(EarlyError, p.opts.SourceFilename, tok, format, args...))
}

func (p *Parser) precedenceOf(tt token.Type) int {
	return token.Lookup(tt).Precedence
}
