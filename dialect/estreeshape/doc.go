// Package estreeshape implements the "estree" dialect plugin: it rewrites
// the base grammar's NumericLiteral/StringLiteral/BooleanLiteral/
// NullLiteral/RegExpLiteral into a single Literal node, and wraps each class
// method in a MethodDefinition the way a community-standard tree shape
// expects. The base grammar already builds object members as a unified
// Property (method/getter/setter/init share one node with a Kind field), so
// those need no reshaping here. Directive prologues are left as the base
// grammar's Directive nodes on Program and BlockStatement; this plugin does
// not turn them into string-literal expression statements.
//
// Despite Install composing interceptors outermost-first, this plugin must
// be the LAST one installed on a Builder when combined with structuraltypes
// or nominaltypes: the last-installed interceptor sits innermost, directly
// around the base parse functions, so its rewrite runs before the typing
// dialects' interceptors ever see the node.
package estreeshape
