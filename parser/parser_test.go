package parser

import (
	"testing"

	"github.com/xjslang/xjsfront/ast"
)

func mustParse(t *testing.T, src string) *ast.Program {
	t.Helper()
	p := New(src, Options{})
	prog, errs := p.Parse()
	if len(errs) > 0 {
		t.Fatalf("unexpected errors parsing %q: %v", src, errs)
	}
	return prog
}

func TestParseVariableDeclarations(t *testing.T) {
	prog := mustParse(t, "let a = 1, b = a + 1; const [x, y = 2] = pair;")
	if len(prog.Body) != 2 {
		t.Fatalf("expected 2 statements, got %d", len(prog.Body))
	}
	decl, ok := prog.Body[0].(*ast.VariableDeclaration)
	if !ok || decl.Kind != "let" || len(decl.Declarations) != 2 {
		t.Fatalf("unexpected first statement: %#v", prog.Body[0])
	}
}

func TestAutomaticSemicolonInsertion(t *testing.T) {
	prog := mustParse(t, "let a = 1\nlet b = 2\n")
	if len(prog.Body) != 2 {
		t.Fatalf("expected ASI to split into 2 statements, got %d", len(prog.Body))
	}
}

func TestArrowFunctionDisambiguation(t *testing.T) {
	prog := mustParse(t, "const f = (a, b) => a + b; const g = (1 + 2);")
	decl := prog.Body[0].(*ast.VariableDeclaration)
	arrow, ok := decl.Declarations[0].Init.(*ast.ArrowFunctionExpression)
	if !ok {
		t.Fatalf("expected ArrowFunctionExpression, got %T", decl.Declarations[0].Init)
	}
	if len(arrow.Params) != 2 {
		t.Fatalf("expected 2 params, got %d", len(arrow.Params))
	}
	decl2 := prog.Body[1].(*ast.VariableDeclaration)
	if _, ok := decl2.Declarations[0].Init.(*ast.ParenthesizedExpression); !ok {
		t.Fatalf("expected ParenthesizedExpression, got %T", decl2.Declarations[0].Init)
	}
}

func TestForInAndForOf(t *testing.T) {
	prog := mustParse(t, "for (const k in obj) { use(k); } for (const v of list) { use(v); }")
	if _, ok := prog.Body[0].(*ast.ForInStatement); !ok {
		t.Fatalf("expected ForInStatement, got %T", prog.Body[0])
	}
	if _, ok := prog.Body[1].(*ast.ForOfStatement); !ok {
		t.Fatalf("expected ForOfStatement, got %T", prog.Body[1])
	}
}

func TestForInDisambiguationAgainstBinaryIn(t *testing.T) {
	prog := mustParse(t, "for (a in b) c(a);")
	stmt, ok := prog.Body[0].(*ast.ForInStatement)
	if !ok {
		t.Fatalf("expected ForInStatement, got %T", prog.Body[0])
	}
	if _, ok := stmt.Left.(*ast.Identifier); !ok {
		t.Fatalf("expected Left to be Identifier, got %T", stmt.Left)
	}
}

func TestBinaryInStillWorksInsideParens(t *testing.T) {
	prog := mustParse(t, "let ok = (a in b);")
	decl := prog.Body[0].(*ast.VariableDeclaration)
	paren, ok := decl.Declarations[0].Init.(*ast.ParenthesizedExpression)
	if !ok {
		t.Fatalf("expected ParenthesizedExpression, got %T", decl.Declarations[0].Init)
	}
	if _, ok := paren.Expression.(*ast.BinaryExpression); !ok {
		t.Fatalf("expected BinaryExpression inside parens, got %T", paren.Expression)
	}
}

func TestDestructuringAssignment(t *testing.T) {
	prog := mustParse(t, "[a, b] = [b, a];")
	stmt := prog.Body[0].(*ast.ExpressionStatement)
	assign, ok := stmt.Expression.(*ast.AssignmentExpression)
	if !ok {
		t.Fatalf("expected AssignmentExpression, got %T", stmt.Expression)
	}
	if _, ok := assign.Left.(*ast.ArrayExpression); !ok {
		t.Fatalf("expected ArrayExpression pattern, got %T", assign.Left)
	}
}

func TestClassDeclarationWithMethodsAndFields(t *testing.T) {
	prog := mustParse(t, `
		class Point {
			#x = 0;
			static origin = new Point();
			constructor(x, y) { this.#x = x; this.y = y; }
			get x() { return this.#x; }
		}
	`)
	cls, ok := prog.Body[0].(*ast.ClassDeclaration)
	if !ok {
		t.Fatalf("expected ClassDeclaration, got %T", prog.Body[0])
	}
	if cls.ID == nil || cls.ID.Name != "Point" {
		t.Fatalf("unexpected class id: %#v", cls.ID)
	}
	if len(cls.Body.Body) != 4 {
		t.Fatalf("expected 4 class members, got %d", len(cls.Body.Body))
	}
	ctor, ok := cls.Body.Body[2].(*ast.ClassMethod)
	if !ok || ctor.Kind != "constructor" {
		t.Fatalf("expected constructor method, got %#v", cls.Body.Body[2])
	}
}

func TestTryCatchFinally(t *testing.T) {
	prog := mustParse(t, "try { risky(); } catch (e) { log(e); } finally { cleanup(); }")
	stmt, ok := prog.Body[0].(*ast.TryStatement)
	if !ok {
		t.Fatalf("expected TryStatement, got %T", prog.Body[0])
	}
	if stmt.Handler == nil || stmt.Finalizer == nil {
		t.Fatalf("expected both handler and finalizer present")
	}
}

func TestSwitchStatement(t *testing.T) {
	prog := mustParse(t, `
		switch (x) {
		case 1:
			a();
			break;
		default:
			b();
		}
	`)
	stmt, ok := prog.Body[0].(*ast.SwitchStatement)
	if !ok {
		t.Fatalf("expected SwitchStatement, got %T", prog.Body[0])
	}
	if len(stmt.Cases) != 2 {
		t.Fatalf("expected 2 cases, got %d", len(stmt.Cases))
	}
}

func TestTemplateLiteralWithEmbeddedExpression(t *testing.T) {
	prog := mustParse(t, "let s = `a${1 + 1}b`;")
	decl := prog.Body[0].(*ast.VariableDeclaration)
	tmpl, ok := decl.Declarations[0].Init.(*ast.TemplateLiteral)
	if !ok {
		t.Fatalf("expected TemplateLiteral, got %T", decl.Declarations[0].Init)
	}
	if len(tmpl.Quasis) != 2 || len(tmpl.Expressions) != 1 {
		t.Fatalf("unexpected template shape: %d quasis, %d expressions", len(tmpl.Quasis), len(tmpl.Expressions))
	}
}

func TestModuleImportExport(t *testing.T) {
	p := New(`
		import def, { a, b as c } from "mod";
		export const x = 1;
		export default function named() {}
	`, Options{SourceType: "module"})
	prog, errs := p.Parse()
	if len(errs) > 0 {
		t.Fatalf("unexpected errors: %v", errs)
	}
	if _, ok := prog.Body[0].(*ast.ImportDeclaration); !ok {
		t.Fatalf("expected ImportDeclaration, got %T", prog.Body[0])
	}
	if _, ok := prog.Body[1].(*ast.ExportNamedDeclaration); !ok {
		t.Fatalf("expected ExportNamedDeclaration, got %T", prog.Body[1])
	}
	if _, ok := prog.Body[2].(*ast.ExportDefaultDeclaration); !ok {
		t.Fatalf("expected ExportDefaultDeclaration, got %T", prog.Body[2])
	}
}

func TestTolerantModeCollectsErrors(t *testing.T) {
	p := New("let a = ;", Options{TolerantMode: true})
	_, errs := p.Parse()
	if len(errs) == 0 {
		t.Fatalf("expected at least one error in tolerant mode")
	}
}

func TestParseExpressionEntryPoint(t *testing.T) {
	p := New("1 + 2 * 3", Options{})
	expr, errs := p.ParseExpression()
	if len(errs) > 0 {
		t.Fatalf("unexpected errors: %v", errs)
	}
	bin, ok := expr.(*ast.BinaryExpression)
	if !ok || bin.Operator != "+" {
		t.Fatalf("expected top-level + expression, got %#v", expr)
	}
}

func TestLabeledBreakAndContinue(t *testing.T) {
	prog := mustParse(t, `
		outer: for (let i = 0; i < 10; i++) {
			for (let j = 0; j < 10; j++) {
				if (j === 2) continue outer;
				if (i === 5) break outer;
			}
		}
	`)
	if _, ok := prog.Body[0].(*ast.LabeledStatement); !ok {
		t.Fatalf("expected LabeledStatement, got %T", prog.Body[0])
	}
}

func TestDirectivePrologueEntersStrictMode(t *testing.T) {
	prog := mustParse(t, `"use strict"; let a = 1;`)
	if len(prog.Directives) != 1 || prog.Directives[0].Value.Value != "use strict" {
		t.Fatalf("expected one use-strict directive, got %#v", prog.Directives)
	}
	if len(prog.Body) != 1 {
		t.Fatalf("expected the directive to stay out of Body, got %d statements", len(prog.Body))
	}
}

func TestBindingEvalInStrictModeIsEarlyError(t *testing.T) {
	p := New(`function f() { "use strict"; var eval = 1; }`, Options{})
	_, errs := p.Parse()
	if len(errs) != 1 || errs[0].Kind != EarlyError {
		t.Fatalf("expected a single EarlyError, got %#v", errs)
	}
}

func TestBindingArgumentsOutsideStrictModeIsAllowed(t *testing.T) {
	mustParse(t, `function f() { var arguments = 1; }`)
}

func TestDuplicateParameterNameInStrictModeIsEarlyError(t *testing.T) {
	p := New(`"use strict"; function f(a, a) {}`, Options{})
	_, errs := p.Parse()
	if len(errs) != 1 || errs[0].Kind != EarlyError {
		t.Fatalf("expected a single EarlyError, got %#v", errs)
	}
}

func TestDuplicateParameterNameOutsideStrictModeIsAllowed(t *testing.T) {
	mustParse(t, `function f(a, a) {}`)
}

func TestDuplicateProtoInObjectLiteralIsEarlyError(t *testing.T) {
	p := New(`const o = { __proto__: a, __proto__: b };`, Options{})
	_, errs := p.Parse()
	if len(errs) != 1 || errs[0].Kind != EarlyError {
		t.Fatalf("expected a single EarlyError, got %#v", errs)
	}
}

func TestDuplicateExportIsEarlyError(t *testing.T) {
	p := New(`export const a = 1; export { a };`, Options{SourceType: "module"})
	_, errs := p.Parse()
	if len(errs) != 1 || errs[0].Kind != EarlyError {
		t.Fatalf("expected a single EarlyError, got %#v", errs)
	}
}

func TestUnterminatedStringLiteralIsLexicalError(t *testing.T) {
	p := New("let a = \"oops\n", Options{})
	_, errs := p.Parse()
	if len(errs) != 1 || errs[0].Kind != Lexical {
		t.Fatalf("expected a single Lexical error, got %#v", errs)
	}
}

func TestUnterminatedBlockCommentIsLexicalError(t *testing.T) {
	p := New("let a = 1; /* never closed", Options{})
	_, errs := p.Parse()
	if len(errs) != 1 || errs[0].Kind != Lexical {
		t.Fatalf("expected a single Lexical error, got %#v", errs)
	}
}

func TestInvalidRegexFlagIsLexicalError(t *testing.T) {
	p := New("let a = /x/qq;", Options{})
	_, errs := p.Parse()
	if len(errs) != 1 || errs[0].Kind != Lexical {
		t.Fatalf("expected a single Lexical error, got %#v", errs)
	}
}

func TestInvalidRegexPatternIsLexicalError(t *testing.T) {
	p := New(`let a = /(/;`, Options{})
	_, errs := p.Parse()
	if len(errs) != 1 || errs[0].Kind != Lexical {
		t.Fatalf("expected a single Lexical error, got %#v", errs)
	}
}
