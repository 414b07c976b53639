// Package ast defines every node produced by package parser: the base
// grammar plus the structural-types, nominal-types, markup, and
// estree-shape dialect node families. Every node embeds Location, which
// carries its byte-offset Span, optional derived Loc, and any comments the
// comment-attachment engine (AttachComments) pinned to it.
package ast
