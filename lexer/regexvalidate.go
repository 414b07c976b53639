package lexer

import (
	"fmt"

	"github.com/dlclark/regexp2"
	"github.com/xjslang/xjsfront/token"
)

// ValidateRegexLiteral reports whether a lexed regex literal's pattern is
// well-formed ECMAScript syntax. Go's stdlib regexp (RE2) rejects
// constructs this language's regex literals allow — lookaround,
// backreferences — so validation is delegated to regexp2's ECMAScript
// compatibility mode instead of being attempted by hand.
func ValidateRegexLiteral(v token.RegexValue) error {
	opts := regexp2.ECMAScript
	if containsRune(v.Flags, 'i') {
		opts |= regexp2.IgnoreCase
	}
	if containsRune(v.Flags, 's') {
		opts |= regexp2.Singleline
	}
	if containsRune(v.Flags, 'm') {
		opts |= regexp2.Multiline
	}
	_, err := regexp2.Compile(v.Pattern, opts)
	if err != nil {
		return fmt.Errorf("invalid regular expression /%s/%s: %w", v.Pattern, v.Flags, err)
	}
	return nil
}

func containsRune(s string, r rune) bool {
	for _, c := range s {
		if c == r {
			return true
		}
	}
	return false
}
