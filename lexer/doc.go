// Package lexer implements the context-sensitive tokenizer for xjsfront's
// source language.
//
// A Lexer is constructed directly with New, or assembled through a Builder
// when token interceptors are to be installed; dynamic token types are
// registered on a built Lexer with RegisterTokenType. Token production is
// context-sensitive: a lexical context stack (see context.go) disambiguates
// `/` (regex vs divide), `` ` `` (template literal boundaries) and `{`
// (block vs object literal) without backtracking, and speculative parsing
// is supported by Snapshot/Restore rather than by re-lexing.
package lexer
