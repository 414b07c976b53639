package lexer

import "github.com/xjslang/xjsfront/token"

// Builder assembles a Lexer with dialect-installed token interceptors, the
// same composition style parser.Builder uses for statement/expression
// interceptors: each dialect plugin wraps the previous production function
// in a layer of its own, and the outermost-installed layer runs first.
type Builder struct {
	interceptors []Interceptor
	opts         Options
}

// NewBuilder returns a Builder with no interceptors installed.
func NewBuilder() *Builder {
	return &Builder{}
}

// Install runs plugin against this Builder, letting a dialect package
// register its token interceptors without the caller needing to know its
// internals — the same shape as parser.Builder.Install.
func (b *Builder) Install(plugin func(*Builder)) *Builder {
	plugin(b)
	return b
}

// UseTokenInterceptor adds a layer to the token-production chain. The first
// interceptor installed is the outermost: it sees every token before any
// later-installed interceptor does, and decides whether to call next() or
// produce its own token instead.
func (b *Builder) UseTokenInterceptor(i Interceptor) *Builder {
	b.interceptors = append(b.interceptors, i)
	return b
}

// WithFilename sets the filename attached to tokens/errors/Locs.
func (b *Builder) WithFilename(name string) *Builder {
	b.opts.Filename = name
	return b
}

// WithStartLine offsets line numbers, e.g. for an embedded code fence.
func (b *Builder) WithStartLine(line int) *Builder {
	b.opts.StartLine = line
	return b
}

// Build constructs the Lexer, composing installed interceptors around
// baseNextToken in the order they were installed (first-installed runs
// outermost, matching parser.Builder's composition rule so a dialect author
// only has to learn the pattern once).
func (b *Builder) Build(input string) *Lexer {
	l := newLexer(input, b.opts)
	l.nextTokenFn = composeInterceptors(b.interceptors)
	return l
}

func composeInterceptors(interceptors []Interceptor) func(l *Lexer) token.Token {
	fn := baseNextToken
	for i := len(interceptors) - 1; i >= 0; i-- {
		ic := interceptors[i]
		inner := fn
		fn = func(l *Lexer) token.Token {
			return ic(l, func() token.Token { return inner(l) })
		}
	}
	return fn
}
