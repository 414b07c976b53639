package lexer

import (
	"testing"

	"github.com/xjslang/xjsfront/token"
)

func tokenize(t *testing.T, src string) []token.Token {
	t.Helper()
	l := New(src, Options{})
	var toks []token.Token
	for {
		tok := l.NextToken()
		toks = append(toks, tok)
		if tok.Type == token.EOF {
			break
		}
	}
	return toks
}

func types(toks []token.Token) []token.Type {
	out := make([]token.Type, len(toks))
	for i, tok := range toks {
		out[i] = tok.Type
	}
	return out
}

func TestLexerPunctuationAndKeywords(t *testing.T) {
	toks := tokenize(t, "let x = 1 + 2;")
	got := types(toks)
	want := []token.Type{token.LET, token.IDENT, token.ASSIGN, token.NUMBER, token.PLUS, token.NUMBER, token.SEMICOLON, token.EOF}
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("token %d: got %v want %v", i, got[i], want[i])
		}
	}
}

func TestLexerRegexVsDivideDisambiguation(t *testing.T) {
	// after an identifier, '/' divides
	toks := tokenize(t, "a / b")
	if toks[1].Type != token.DIVIDE {
		t.Fatalf("expected DIVIDE after identifier, got %v", toks[1].Type)
	}

	// after '(' or 'return', '/' starts a regex
	toks = tokenize(t, "return /ab+c/g")
	if toks[1].Type != token.REGEXP {
		t.Fatalf("expected REGEXP after return, got %v", toks[1].Type)
	}
	rv, ok := toks[1].Value.(token.RegexValue)
	if !ok {
		t.Fatalf("expected RegexValue, got %T", toks[1].Value)
	}
	if rv.Pattern != "ab+c" || rv.Flags != "g" {
		t.Fatalf("got pattern=%q flags=%q", rv.Pattern, rv.Flags)
	}
}

func TestLexerTemplateLiteralChunks(t *testing.T) {
	toks := tokenize(t, "`a${b}c`")
	got := types(toks)
	want := []token.Type{token.BACKTICK, token.TEMPLATE, token.DOLLAR_BRACE, token.IDENT, token.RBRACE, token.TEMPLATE, token.BACKTICK, token.EOF}
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("token %d: got %v want %v", i, got[i], want[i])
		}
	}
	if toks[1].Value.(string) != "a" || toks[5].Value.(string) != "c" {
		t.Fatalf("unexpected quasi values: %q %q", toks[1].Value, toks[5].Value)
	}
}

func TestLexerNumberForms(t *testing.T) {
	cases := map[string]float64{
		"0xFF":  255,
		"0o17":  15,
		"0b101": 5,
		"3.14":  3.14,
		"1_000": 1000,
		"1e3":   1000,
	}
	for src, want := range cases {
		toks := tokenize(t, src)
		if toks[0].Type != token.NUMBER {
			t.Fatalf("%s: expected NUMBER, got %v", src, toks[0].Type)
		}
		if toks[0].Value.(float64) != want {
			t.Fatalf("%s: got %v want %v", src, toks[0].Value, want)
		}
	}
}

func TestLexerBigIntSuffix(t *testing.T) {
	toks := tokenize(t, "10n")
	if toks[0].Type != token.BIGINT {
		t.Fatalf("expected BIGINT, got %v", toks[0].Type)
	}
}

func TestLexerStringEscapes(t *testing.T) {
	toks := tokenize(t, `"a\nbA"`)
	if toks[0].Type != token.STRING {
		t.Fatalf("expected STRING, got %v", toks[0].Type)
	}
	if toks[0].Value.(string) != "a\nbA" {
		t.Fatalf("got %q", toks[0].Value)
	}
}

func TestLexerSnapshotRestore(t *testing.T) {
	l := New("foo bar baz", Options{})
	first := l.NextToken()
	if first.Literal != "foo" {
		t.Fatalf("got %q", first.Literal)
	}
	snap := l.Snapshot()
	second := l.NextToken()
	if second.Literal != "bar" {
		t.Fatalf("got %q", second.Literal)
	}
	l.Restore(snap)
	replay := l.NextToken()
	if replay.Literal != "bar" {
		t.Fatalf("restore did not rewind: got %q", replay.Literal)
	}
}

func TestLexerAfterNewlineForASI(t *testing.T) {
	toks := tokenize(t, "return\n1")
	if !toks[1].AfterNewline {
		t.Fatalf("expected AfterNewline on token after return\\n, got %+v", toks[1])
	}
}

func TestLexerCommentsCollected(t *testing.T) {
	l := New("// hi\nlet /* mid */ x", Options{})
	for {
		tok := l.NextToken()
		if tok.Type == token.EOF {
			break
		}
	}
	comments := l.Comments()
	if len(comments) != 2 {
		t.Fatalf("expected 2 comments, got %d: %+v", len(comments), comments)
	}
	if comments[0].Kind != token.CommentLine || comments[0].Value != " hi" {
		t.Fatalf("unexpected first comment: %+v", comments[0])
	}
	if comments[1].Kind != token.CommentBlock || comments[1].Value != " mid " {
		t.Fatalf("unexpected second comment: %+v", comments[1])
	}
}

func TestLexerUnterminatedStringIsFlagged(t *testing.T) {
	toks := tokenize(t, "\"never closed\n")
	if !toks[0].Unterminated {
		t.Fatalf("expected Unterminated on the STRING token, got %+v", toks[0])
	}
}

func TestLexerUnterminatedRegexIsFlagged(t *testing.T) {
	toks := tokenize(t, "/abc\n")
	if toks[0].Type != token.REGEXP || !toks[0].Unterminated {
		t.Fatalf("expected an Unterminated REGEXP token, got %+v", toks[0])
	}
}

func TestLexerTerminatedStringIsNotFlagged(t *testing.T) {
	toks := tokenize(t, `"fine"`)
	if toks[0].Unterminated {
		t.Fatalf("did not expect Unterminated on a properly closed string, got %+v", toks[0])
	}
}

func TestLexerUnterminatedBlockCommentYieldsIllegalToken(t *testing.T) {
	toks := tokenize(t, "let x /* never closed")
	var sawIllegal bool
	for _, tok := range toks {
		if tok.Type == token.ILLEGAL {
			sawIllegal = true
		}
	}
	if !sawIllegal {
		t.Fatalf("expected an ILLEGAL token for the unterminated block comment, got %+v", toks)
	}
}
