package parser

// Options configures a single Parse/ParseExpression call. It is a plain
// struct passed at construction — no env vars, no config file, matching how
// a parser frontend's configuration is exactly the caller's option struct.
type Options struct {
	// SourceType is "script" or "module"; module sourceType allows
	// import/export declarations and implies strict mode.
	SourceType string
	// SourceFilename is attached to every error and, when Ranges is set,
	// every node's Loc.
	SourceFilename string
	// StartLine offsets line numbers, e.g. for an embedded code fence.
	StartLine int
	// Ranges, when true, populates every node's Loc (line/column start and
	// end) in addition to its always-present byte-offset Span.
	Ranges bool
	// Tokens is not read by the parser: no token list is collected, whatever
	// its value.
	Tokens bool
	// AllowReturnOutsideFunction permits a top-level `return`, for callers
	// embedding a parse inside a synthesized function body (e.g. a REPL).
	AllowReturnOutsideFunction bool
	// AllowImportExportEverywhere permits import/export declarations outside
	// module sourceType. Their placement (top level or nested in a block) is
	// not checked either way.
	AllowImportExportEverywhere bool
	// AllowSuperOutsideMethod is not read by the parser, which accepts
	// `super` in any position whatever its value.
	AllowSuperOutsideMethod bool
	// StrictMode forces strict-mode early-error rules regardless of
	// SourceType or a "use strict" directive prologue.
	StrictMode bool
	// TolerantMode keeps parsing past a recoverable syntax error instead of
	// aborting, collecting every error into the slice Parse returns.
	TolerantMode bool
	// Plugins lists dialect plugins, as Plugin values, that Builder.Build
	// installs after any already installed on the Builder.
	Plugins []Plugin
}

// Plugin installs a dialect's token/statement/expression interceptors onto
// a Builder. dialect/structuraltypes, dialect/nominaltypes, dialect/markup,
// and dialect/estreeshape each expose one.
type Plugin func(*Builder)
