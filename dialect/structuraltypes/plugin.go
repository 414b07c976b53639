package structuraltypes

import "github.com/xjslang/xjsfront/parser"

// Plugin installs the structural-types ("flow") dialect onto a
// parser.Builder: `type`/`interface` declarations at statement position and
// `: T` annotations on bindings, parameters, and return types.
func Plugin(b *parser.Builder) {
	b.UseStatementInterceptor(statementInterceptor)
	b.UseTypeAnnotationHook(parseTypeAnnotation)
}
