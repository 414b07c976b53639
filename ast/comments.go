package ast

import (
	"reflect"
	"sort"

	"github.com/xjslang/xjsfront/token"
)

// AttachComments distributes comments collected by the lexer onto the nodes
// of a finished tree. It runs once, after parsing, over every node in the
// tree (collected via nodeWalk, a small reflection-based walker — there is
// no hand-written Visit method for every node kind in this catalog, and
// writing one for each dialect's additions would only drift out of sync as
// node kinds are added, so the walk is done generically instead) rather than
// threaded live through the parser: a comment is attached to at most one
// node, preferring (in order):
//
//  1. trailing on the node whose end lies closest before the comment (among
//     nodes ending at the same offset, the first in start order), if no line
//     terminator lies between that node's end and the comment; with a nil
//     source any gap at all counts as one, so the comment must then start
//     exactly where the node ends;
//  2. leading on the outermost node whose the comment precedes, chosen to be
//     the shallowest (closest to the Program) node starting after the
//     comment so a comment above a whole statement attaches to the
//     statement, not to its first sub-expression;
//  3. if neither applies (a comment after the very last node, or one inside
//     an empty block), it becomes an inner comment of the nearest enclosing
//     node.
func AttachComments(program *Program, comments []token.Comment, source []rune) {
	if len(comments) == 0 {
		return
	}
	nodes := nodeWalk(program)
	sort.Slice(nodes, func(i, j int) bool { return Start(nodes[i]) < Start(nodes[j]) })

	for _, c := range comments {
		if tryAttachTrailing(nodes, c, source) {
			continue
		}
		if tryAttachLeading(nodes, c) {
			continue
		}
		attachInner(program, nodes, c)
	}
}

func tryAttachTrailing(nodes []Node, c token.Comment, source []rune) bool {
	var best Node
	for _, n := range nodes {
		if End(n) <= c.Span.Start {
			if best == nil || End(n) > End(best) {
				best = n
			}
		}
	}
	if best == nil {
		return false
	}
	if crossesLineTerminator(source, End(best), c.Span.Start) {
		return false
	}
	loc := best.location()
	loc.TrailingComments = append(loc.TrailingComments, c)
	return true
}

func tryAttachLeading(nodes []Node, c token.Comment) bool {
	var best Node
	for _, n := range nodes {
		if _, isProgram := n.(*Program); isProgram {
			continue
		}
		if Start(n) >= c.Span.End {
			if best == nil || Start(n) < Start(best) || (Start(n) == Start(best) && span(n) > span(best)) {
				best = n
			}
		}
	}
	if best == nil {
		return false
	}
	loc := best.location()
	loc.LeadingComments = append(loc.LeadingComments, c)
	return true
}

func attachInner(program *Program, nodes []Node, c token.Comment) {
	var best Node = program
	for _, n := range nodes {
		if Start(n) <= c.Span.Start && End(n) >= c.Span.End && span(n) < span(best) {
			best = n
		}
	}
	loc := best.location()
	loc.InnerComments = append(loc.InnerComments, c)
}

func span(n Node) int { return End(n) - Start(n) }

func crossesLineTerminator(source []rune, from, to int) bool {
	if source == nil {
		return from != to
	}
	for i := from; i < to && i < len(source); i++ {
		if source[i] == '\n' || source[i] == '\r' || source[i] == 0x2028 || source[i] == 0x2029 {
			return true
		}
	}
	return false
}

// nodeWalk collects every Node reachable from root, including root itself,
// by reflecting over exported struct fields that are Node, []Node, or
// slices/fields of concrete node pointer types. It is the one place in this
// package that uses reflection — a generic tree walk over a node catalog
// this large (and one three dialect plugins add to) is the kind of thing
// the standard library's reflect package exists for for; hand-maintaining a
// Walk/Visit case per node type would silently go stale every time a
// dialect adds a node kind.
func nodeWalk(root Node) []Node {
	var out []Node
	seen := map[Node]bool{}
	var visit func(v reflect.Value)
	visit = func(v reflect.Value) {
		if !v.IsValid() {
			return
		}
		switch v.Kind() {
		case reflect.Ptr:
			if v.IsNil() {
				return
			}
			if n, ok := v.Interface().(Node); ok {
				if seen[n] {
					return
				}
				seen[n] = true
				out = append(out, n)
			}
			visit(v.Elem())
		case reflect.Struct:
			for i := 0; i < v.NumField(); i++ {
				f := v.Type().Field(i)
				if !f.IsExported() {
					continue
				}
				visit(v.Field(i))
			}
		case reflect.Slice, reflect.Array:
			for i := 0; i < v.Len(); i++ {
				visit(v.Index(i))
			}
		case reflect.Interface:
			if v.IsNil() {
				return
			}
			visit(v.Elem())
		}
	}
	visit(reflect.ValueOf(root))
	return out
}
