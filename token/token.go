// Package token defines the terminal catalog shared by the lexer and parser:
// the Type enumeration, the per-type Descriptor (precedence, associativity,
// and the flags the parser and lexer use to disambiguate context-sensitive
// lexing), and the Token value itself.
package token

import "fmt"

// Type identifies a class of lexeme. Punctuators and keywords share the same
// namespace, matching how the base grammar treats reserved words as just
// another terminal with a Keyword string attached.
type Type int

const (
	ILLEGAL Type = iota
	EOF

	// literals
	IDENT
	PRIVATE_NAME // #field
	NUMBER
	BIGINT
	STRING
	TEMPLATE   // a quasi chunk between ` and ${ or }
	RAW_STRING // catalog entry only: the lexer scans every template as BACKTICK/TEMPLATE tokens
	REGEXP

	// punctuation
	LPAREN
	RPAREN
	LBRACE
	RBRACE
	LBRACKET
	RBRACKET
	COMMA
	SEMICOLON
	COLON
	DOT
	ELLIPSIS // ...
	QUESTION
	QUESTION_DOT // ?.
	QUESTION_QUESTION
	ARROW // =>
	BACKTICK
	DOLLAR_BRACE // ${
	AT           // @ (decorators)
	HASH         // # (private fields, when not part of an identifier)

	// assignment operators
	ASSIGN
	PLUS_ASSIGN
	MINUS_ASSIGN
	MULTIPLY_ASSIGN
	DIVIDE_ASSIGN
	MODULO_ASSIGN
	EXP_ASSIGN
	AND_ASSIGN
	OR_ASSIGN
	NULLISH_ASSIGN
	BITAND_ASSIGN
	BITOR_ASSIGN
	BITXOR_ASSIGN
	SHL_ASSIGN
	SHR_ASSIGN
	SAR_ASSIGN

	// arithmetic / logical / bitwise operators
	PLUS
	MINUS
	MULTIPLY
	DIVIDE
	MODULO
	EXP // **
	EQ
	NOT_EQ
	EQ_STRICT
	NOT_EQ_STRICT
	LT
	GT
	LTE
	GTE
	AND
	OR
	NOT
	BITAND
	BITOR
	BITXOR
	BITNOT
	SHL
	SHR
	SAR // >>>
	INCREMENT
	DECREMENT

	// keywords
	FUNCTION
	VAR
	LET
	CONST
	IF
	ELSE
	WHILE
	DO
	FOR
	RETURN
	TRUE
	FALSE
	NULL
	UNDEFINED
	THIS
	SUPER
	NEW
	DELETE
	TYPEOF
	VOID
	IN
	OF
	INSTANCEOF
	CLASS
	EXTENDS
	STATIC
	GET
	SET
	YIELD
	ASYNC
	AWAIT
	BREAK
	CONTINUE
	SWITCH
	CASE
	DEFAULT
	THROW
	TRY
	CATCH
	FINALLY
	IMPORT
	EXPORT
	FROM
	AS
	DEBUGGER
	WITH

	// a comment, only ever materialized into a Token when the caller asked
	// for the full token stream (Options.Tokens)
	COMMENT_LINE
	COMMENT_BLOCK

	// DYNAMIC_TOKENS_START is the first Type handed out by
	// lexer.Lexer.RegisterTokenType for dialect-registered dynamic
	// operators; everything below it is part of the static base catalog.
	DYNAMIC_TOKENS_START
)

// Descriptor carries the immutable, precomputed facts about a token Type
// that the parser and lexer consult on every token: whether it can start an
// expression, whether a regex is legal to follow it, its binary precedence
// and associativity, and so on. The base catalog is built once at package
// init; a dynamic token type registered through RegisterDynamic is added to
// this same table.
type Descriptor struct {
	Label            string
	Keyword          string
	BeforeExpr       bool // a '/' or regex-start may follow this token
	StartsExpr       bool // this token itself can start an expression
	IsLoop           bool
	IsAssign         bool
	Prefix           bool
	Postfix          bool
	RightAssociative bool
	Precedence       int // 0 means "not a binary/logical operator"
}

var descriptors = map[Type]*Descriptor{}

func reg(t Type, d Descriptor) {
	dd := d
	descriptors[t] = &dd
}

func init() {
	reg(ILLEGAL, Descriptor{Label: "illegal"})
	reg(EOF, Descriptor{Label: "eof"})

	reg(IDENT, Descriptor{Label: "ident", StartsExpr: true})
	reg(PRIVATE_NAME, Descriptor{Label: "privateName", StartsExpr: true})
	reg(NUMBER, Descriptor{Label: "num", StartsExpr: true})
	reg(BIGINT, Descriptor{Label: "bigint", StartsExpr: true})
	reg(STRING, Descriptor{Label: "string", StartsExpr: true})
	reg(TEMPLATE, Descriptor{Label: "template", StartsExpr: true})
	reg(RAW_STRING, Descriptor{Label: "rawString", StartsExpr: true})
	reg(REGEXP, Descriptor{Label: "regexp", StartsExpr: true})

	reg(LPAREN, Descriptor{Label: "(", BeforeExpr: true, StartsExpr: true})
	reg(RPAREN, Descriptor{Label: ")"})
	reg(LBRACE, Descriptor{Label: "{", BeforeExpr: true, StartsExpr: true})
	reg(RBRACE, Descriptor{Label: "}"})
	reg(LBRACKET, Descriptor{Label: "[", BeforeExpr: true, StartsExpr: true})
	reg(RBRACKET, Descriptor{Label: "]"})
	reg(COMMA, Descriptor{Label: ",", BeforeExpr: true})
	reg(SEMICOLON, Descriptor{Label: ";", BeforeExpr: true})
	reg(COLON, Descriptor{Label: ":", BeforeExpr: true})
	reg(DOT, Descriptor{Label: "."})
	reg(ELLIPSIS, Descriptor{Label: "...", BeforeExpr: true})
	reg(QUESTION, Descriptor{Label: "?", BeforeExpr: true})
	reg(QUESTION_DOT, Descriptor{Label: "?."})
	reg(QUESTION_QUESTION, Descriptor{Label: "??", BeforeExpr: true, Precedence: 1})
	reg(ARROW, Descriptor{Label: "=>", BeforeExpr: true})
	reg(BACKTICK, Descriptor{Label: "`", BeforeExpr: true, StartsExpr: true})
	reg(DOLLAR_BRACE, Descriptor{Label: "${", BeforeExpr: true, StartsExpr: true})
	reg(AT, Descriptor{Label: "@"})
	reg(HASH, Descriptor{Label: "#"})

	assign := func(t Type, label string) {
		reg(t, Descriptor{Label: label, BeforeExpr: true, IsAssign: true, Precedence: assignPrecedence, RightAssociative: true})
	}
	assign(ASSIGN, "=")
	assign(PLUS_ASSIGN, "+=")
	assign(MINUS_ASSIGN, "-=")
	assign(MULTIPLY_ASSIGN, "*=")
	assign(DIVIDE_ASSIGN, "/=")
	assign(MODULO_ASSIGN, "%=")
	assign(EXP_ASSIGN, "**=")
	assign(AND_ASSIGN, "&&=")
	assign(OR_ASSIGN, "||=")
	assign(NULLISH_ASSIGN, "??=")
	assign(BITAND_ASSIGN, "&=")
	assign(BITOR_ASSIGN, "|=")
	assign(BITXOR_ASSIGN, "^=")
	assign(SHL_ASSIGN, "<<=")
	assign(SHR_ASSIGN, ">>=")
	assign(SAR_ASSIGN, ">>>=")

	bin := func(t Type, label string, prec int, rightAssoc bool) {
		reg(t, Descriptor{Label: label, BeforeExpr: true, Precedence: prec, RightAssociative: rightAssoc})
	}
	bin(OR, "||", 1, false)
	bin(AND, "&&", 2, false)
	bin(BITOR, "|", 3, false)
	bin(BITXOR, "^", 4, false)
	bin(BITAND, "&", 5, false)
	bin(EQ, "==", 6, false)
	bin(NOT_EQ, "!=", 6, false)
	bin(EQ_STRICT, "===", 6, false)
	bin(NOT_EQ_STRICT, "!==", 6, false)
	bin(LT, "<", 7, false)
	bin(GT, ">", 7, false)
	bin(LTE, "<=", 7, false)
	bin(GTE, ">=", 7, false)
	bin(INSTANCEOF, "instanceof", 7, false)
	bin(IN, "in", 7, false)
	bin(SHL, "<<", 8, false)
	bin(SHR, ">>", 8, false)
	bin(SAR, ">>>", 8, false)
	bin(PLUS, "+", 9, false)
	bin(MINUS, "-", 9, false)
	bin(MULTIPLY, "*", 10, false)
	bin(DIVIDE, "/", 10, false)
	bin(MODULO, "%", 10, false)
	bin(EXP, "**", 11, true)

	reg(NOT, Descriptor{Label: "!", BeforeExpr: true, Prefix: true, StartsExpr: true})
	reg(BITNOT, Descriptor{Label: "~", BeforeExpr: true, Prefix: true, StartsExpr: true})
	reg(INCREMENT, Descriptor{Label: "++", BeforeExpr: true, Prefix: true, Postfix: true, StartsExpr: true})
	reg(DECREMENT, Descriptor{Label: "--", BeforeExpr: true, Prefix: true, Postfix: true, StartsExpr: true})

	kw := func(t Type, literal string, beforeExpr, startsExpr bool) {
		prec := 0
		if d, ok := descriptors[t]; ok {
			prec = d.Precedence // keep the binary precedence of `in`/`instanceof`
		}
		reg(t, Descriptor{Label: literal, Keyword: literal, BeforeExpr: beforeExpr, StartsExpr: startsExpr, Precedence: prec})
		Keywords[literal] = t
	}
	kw(FUNCTION, "function", false, true)
	kw(VAR, "var", false, false)
	kw(LET, "let", false, false)
	kw(CONST, "const", false, false)
	kw(IF, "if", false, false)
	kw(ELSE, "else", true, false)
	kw(WHILE, "while", false, false)
	kw(DO, "do", false, false)
	kw(FOR, "for", false, false)
	kw(RETURN, "return", true, false)
	kw(TRUE, "true", false, true)
	kw(FALSE, "false", false, true)
	kw(NULL, "null", false, true)
	kw(UNDEFINED, "undefined", false, true)
	kw(THIS, "this", false, true)
	kw(SUPER, "super", false, true)
	kw(NEW, "new", true, true)
	kw(DELETE, "delete", true, true)
	kw(TYPEOF, "typeof", true, true)
	kw(VOID, "void", true, true)
	kw(IN, "in", true, false)
	kw(OF, "of", false, false)
	kw(INSTANCEOF, "instanceof", true, false)
	kw(CLASS, "class", false, true)
	kw(EXTENDS, "extends", true, false)
	kw(STATIC, "static", false, false)
	kw(GET, "get", false, false)
	kw(SET, "set", false, false)
	kw(YIELD, "yield", true, true)
	kw(ASYNC, "async", false, true)
	kw(AWAIT, "await", true, true)
	kw(BREAK, "break", false, false)
	kw(CONTINUE, "continue", false, false)
	kw(SWITCH, "switch", false, false)
	kw(CASE, "case", true, false)
	kw(DEFAULT, "default", true, false)
	kw(THROW, "throw", true, false)
	kw(TRY, "try", false, false)
	kw(CATCH, "catch", false, false)
	kw(FINALLY, "finally", false, false)
	kw(IMPORT, "import", true, true)
	kw(EXPORT, "export", false, false)
	kw(FROM, "from", false, false)
	kw(AS, "as", false, false)
	kw(DEBUGGER, "debugger", false, false)
	kw(WITH, "with", false, false)

	descriptors[FOR].IsLoop = true
	descriptors[WHILE].IsLoop = true
	descriptors[DO].IsLoop = true

	reg(COMMENT_LINE, Descriptor{Label: "commentLine"})
	reg(COMMENT_BLOCK, Descriptor{Label: "commentBlock"})
}

// assignPrecedence is kept out of the 1..11 binary ladder: assignment binds
// looser than every binary/logical operator and is right-associative.
const assignPrecedence = 0

// Lookup returns the Descriptor for t. Every Type produced by the lexer
// (including dynamically-registered dialect tokens, which RegisterDynamic
// adds to the same table) has one; Lookup never returns nil for a Type the
// lexer actually emits.
func Lookup(t Type) *Descriptor {
	if d, ok := descriptors[t]; ok {
		return d
	}
	return &Descriptor{Label: "unknown"}
}

// RegisterDynamic installs the Descriptor for a dialect-issued dynamic Type
// (one >= DYNAMIC_TOKENS_START, handed out by lexer.Lexer.RegisterTokenType).
// It writes into the package-wide descriptor table without locking.
func RegisterDynamic(t Type, d Descriptor) {
	reg(t, d)
}

// Keywords maps reserved words to their Type. Populated by init() above;
// nothing else in this module adds entries.
var Keywords = map[string]Type{}

// LookupIdent classifies an identifier-shaped lexeme: keyword or plain name.
// An identifier containing a \uXXXX escape must never be classified as a
// keyword even if its decoded text matches one — callers enforce that by
// not calling LookupIdent on escaped text.
func LookupIdent(ident string) Type {
	if t, ok := Keywords[ident]; ok {
		return t
	}
	return IDENT
}

func (t Type) String() string {
	return Lookup(t).Label
}

// RegexValue is the cooked value of a REGEXP token.
type RegexValue struct {
	Pattern string
	Flags   string
}

// Token is the ephemeral unit the lexer hands to the parser. Value holds a
// string (IDENT/STRING/TEMPLATE/keyword literal), a float64 (NUMBER),
// *big.Int (BIGINT), or RegexValue (REGEXP); it is nil otherwise.
type Token struct {
	Type  Type
	Value any
	// Literal is the raw source text of the token (used for operator
	// dispatch, error messages, and the `raw` side-table on literal nodes).
	Literal string

	Span

	StartPos Position
	EndPos   Position

	// AfterNewline records whether a line terminator appeared between the
	// previous token and this one; used by automatic-semicolon-insertion
	// and by the `yield`/`return`/postfix-operator restricted productions.
	AfterNewline bool

	// Unterminated marks a STRING/REGEXP/TEMPLATE token the lexer had to cut
	// short at end of input or an illegal line break instead of finding its
	// proper closing delimiter. The parser checks this before building the
	// corresponding literal node and raises a Lexical error instead.
	Unterminated bool
}

func (t Token) String() string {
	return fmt.Sprintf("%s(%q)@%d:%d", t.Type, t.Literal, t.StartPos.Line, t.StartPos.Column)
}

// CommentKind distinguishes `/* block */` from `// line` comments.
type CommentKind int

const (
	CommentBlock CommentKind = iota
	CommentLine
)

func (k CommentKind) String() string {
	if k == CommentLine {
		return "Line"
	}
	return "Block"
}

// Comment is a single comment lexed from the source. Comments never
// participate in grammar productions; they are collected by the lexer and
// distributed onto AST nodes by the comment-attachment engine (see
// ast.AttachComments). They are never part of the token stream.
type Comment struct {
	Kind  CommentKind
	Value string
	Span
	StartPos Position
	EndPos   Position

	// Unterminated marks a block comment that ran to end of input without a
	// closing `*/`.
	Unterminated bool
}
