package parser

import (
	"github.com/xjslang/xjsfront/ast"
	"github.com/xjslang/xjsfront/token"
)

// parseImportDeclaration parses every form of `import`: default, namespace,
// named, their combinations, and the source-less `import "m"` side-effect
// form. Outside module sourceType it records an EarlyError unless
// AllowImportExportEverywhere is set; where the declaration appears (top
// level or nested in a block) is not checked.
func parseImportDeclaration(p *Parser) ast.Statement {
	start := p.expect(token.IMPORT)
	if p.opts.SourceType != "module" && !p.opts.AllowImportExportEverywhere {
		p.raiseEarly(start, "'import' declaration only allowed in module sourceType")
	}

	if p.at(token.STRING) {
		srcTok := p.curTok
		p.next()
		src := ast.Finish(p.factory, &ast.StringLiteral{Value: srcTok.Value.(string), Raw: srcTok.Literal}, srcTok.Start, srcTok.End, srcTok.StartPos, srcTok.EndPos)
		p.expectSemicolonASI()
		return ast.Finish(p.factory, &ast.ImportDeclaration{Source: src}, start.Start, p.prevEnd(), start.StartPos, p.curStartPos())
	}

	var specs []ast.Node
	if p.at(token.IDENT) {
		nameTok := p.curTok
		p.next()
		local := ast.Finish(p.factory, &ast.Identifier{Name: nameTok.Literal}, nameTok.Start, nameTok.End, nameTok.StartPos, nameTok.EndPos)
		specs = append(specs, ast.Finish(p.factory, &ast.ImportDefaultSpecifier{Local: local}, nameTok.Start, nameTok.End, nameTok.StartPos, nameTok.EndPos))
		if p.consumeIf(token.COMMA) {
			specs = append(specs, parseImportClauseTail(p)...)
		}
	} else {
		specs = append(specs, parseImportClauseTail(p)...)
	}

	p.expect(token.FROM)
	srcTok := p.expect(token.STRING)
	src := ast.Finish(p.factory, &ast.StringLiteral{Value: srcTok.Value.(string), Raw: srcTok.Literal}, srcTok.Start, srcTok.End, srcTok.StartPos, srcTok.EndPos)
	p.expectSemicolonASI()
	return ast.Finish(p.factory, &ast.ImportDeclaration{Specifiers: specs, Source: src}, start.Start, p.prevEnd(), start.StartPos, p.curStartPos())
}

// parseImportClauseTail parses either `* as ns` or a `{ a, b as c }` named
// list, the two forms that can follow a default specifier (or stand alone).
func parseImportClauseTail(p *Parser) []ast.Node {
	if p.at(token.MULTIPLY) {
		start := p.curTok
		p.next()
		p.expect(token.AS)
		nameTok := p.expect(token.IDENT)
		local := ast.Finish(p.factory, &ast.Identifier{Name: nameTok.Literal}, nameTok.Start, nameTok.End, nameTok.StartPos, nameTok.EndPos)
		return []ast.Node{ast.Finish(p.factory, &ast.ImportNamespaceSpecifier{Local: local}, start.Start, p.prevEnd(), start.StartPos, p.curStartPos())}
	}
	p.expect(token.LBRACE)
	var specs []ast.Node
	for !p.at(token.RBRACE) {
		start := p.curTok
		importedTok := p.expect(token.IDENT)
		imported := ast.Finish(p.factory, &ast.Identifier{Name: importedTok.Literal}, importedTok.Start, importedTok.End, importedTok.StartPos, importedTok.EndPos)
		local := imported
		if p.consumeIf(token.AS) {
			localTok := p.expect(token.IDENT)
			local = ast.Finish(p.factory, &ast.Identifier{Name: localTok.Literal}, localTok.Start, localTok.End, localTok.StartPos, localTok.EndPos)
		}
		specs = append(specs, ast.Finish(p.factory, &ast.ImportSpecifier{Imported: imported, Local: local}, start.Start, p.prevEnd(), start.StartPos, p.curStartPos()))
		if !p.consumeIf(token.COMMA) {
			break
		}
	}
	p.expect(token.RBRACE)
	return specs
}

// parseExportDeclaration parses `export default`, `export { ... } [from
// "m"]`, `export * [as ns] from "m"`, and `export <declaration>`.
func parseExportDeclaration(p *Parser) ast.Statement {
	start := p.expect(token.EXPORT)
	if p.opts.SourceType != "module" && !p.opts.AllowImportExportEverywhere {
		p.raiseEarly(start, "'export' declaration only allowed in module sourceType")
	}

	if p.consumeIf(token.DEFAULT) {
		p.checkDuplicateExport(start, "default")
		var decl ast.Node
		switch {
		case p.at(token.FUNCTION) || (p.at(token.ASYNC) && p.peekAt(token.FUNCTION)):
			decl = parseFunctionDeclaration(p)
		case p.at(token.CLASS):
			decl = parseClassDeclaration(p)
		default:
			decl = p.parseExpression(ASSIGNMENT)
			p.expectSemicolonASI()
		}
		return ast.Finish(p.factory, &ast.ExportDefaultDeclaration{Declaration: decl}, start.Start, p.prevEnd(), start.StartPos, p.curStartPos())
	}

	if p.at(token.MULTIPLY) {
		p.next()
		var exported *ast.Identifier
		if p.consumeIf(token.AS) {
			nameTok := p.expect(token.IDENT)
			exported = ast.Finish(p.factory, &ast.Identifier{Name: nameTok.Literal}, nameTok.Start, nameTok.End, nameTok.StartPos, nameTok.EndPos)
			p.checkDuplicateExport(nameTok, nameTok.Literal)
		}
		p.expect(token.FROM)
		srcTok := p.expect(token.STRING)
		src := ast.Finish(p.factory, &ast.StringLiteral{Value: srcTok.Value.(string), Raw: srcTok.Literal}, srcTok.Start, srcTok.End, srcTok.StartPos, srcTok.EndPos)
		p.expectSemicolonASI()
		return ast.Finish(p.factory, &ast.ExportAllDeclaration{Exported: exported, Source: src}, start.Start, p.prevEnd(), start.StartPos, p.curStartPos())
	}

	if p.at(token.LBRACE) {
		p.next()
		var specs []*ast.ExportSpecifier
		for !p.at(token.RBRACE) {
			specStart := p.curTok
			localTok := p.expect(token.IDENT)
			local := ast.Finish(p.factory, &ast.Identifier{Name: localTok.Literal}, localTok.Start, localTok.End, localTok.StartPos, localTok.EndPos)
			exported := local
			exportedTok := localTok
			if p.consumeIf(token.AS) {
				exportedTok = p.expect(token.IDENT)
				exported = ast.Finish(p.factory, &ast.Identifier{Name: exportedTok.Literal}, exportedTok.Start, exportedTok.End, exportedTok.StartPos, exportedTok.EndPos)
			}
			p.checkDuplicateExport(exportedTok, exported.Name)
			specs = append(specs, ast.Finish(p.factory, &ast.ExportSpecifier{Local: local, Exported: exported}, specStart.Start, p.prevEnd(), specStart.StartPos, p.curStartPos()))
			if !p.consumeIf(token.COMMA) {
				break
			}
		}
		p.expect(token.RBRACE)
		var src *ast.StringLiteral
		if p.consumeIf(token.FROM) {
			srcTok := p.expect(token.STRING)
			src = ast.Finish(p.factory, &ast.StringLiteral{Value: srcTok.Value.(string), Raw: srcTok.Literal}, srcTok.Start, srcTok.End, srcTok.StartPos, srcTok.EndPos)
		}
		p.expectSemicolonASI()
		return ast.Finish(p.factory, &ast.ExportNamedDeclaration{Specifiers: specs, Source: src}, start.Start, p.prevEnd(), start.StartPos, p.curStartPos())
	}

	var decl ast.Declaration
	switch {
	case p.at(token.VAR) || p.at(token.LET) || p.at(token.CONST):
		decl = parseVariableDeclaration(p).(ast.Declaration)
	case p.at(token.FUNCTION) || (p.at(token.ASYNC) && p.peekAt(token.FUNCTION)):
		decl = parseFunctionDeclaration(p).(ast.Declaration)
	case p.at(token.CLASS):
		decl = parseClassDeclaration(p).(ast.Declaration)
	default:
		p.raiseSyntax("unexpected token %s after export", p.curTok.Type)
	}
	p.checkDuplicateDeclarationExports(start, decl)
	return ast.Finish(p.factory, &ast.ExportNamedDeclaration{Declaration: decl}, start.Start, p.prevEnd(), start.StartPos, p.curStartPos())
}

// checkDuplicateDeclarationExports registers the name(s) an `export
// <declaration>` binds against exportedNames. Only simple identifier
// bindings are tracked (a function/class name, or a `var`/`let`/`const`
// declarator with a plain identifier); destructuring declarators are left
// unchecked, since a destructured export is rare enough that the
// completeness isn't worth the extra pattern-walking here.
func (p *Parser) checkDuplicateDeclarationExports(tok token.Token, decl ast.Declaration) {
	switch d := decl.(type) {
	case *ast.FunctionDeclaration:
		if d.ID != nil {
			p.checkDuplicateExport(tok, d.ID.Name)
		}
	case *ast.ClassDeclaration:
		if d.ID != nil {
			p.checkDuplicateExport(tok, d.ID.Name)
		}
	case *ast.VariableDeclaration:
		for _, decltor := range d.Declarations {
			if id, ok := decltor.ID.(*ast.Identifier); ok {
				p.checkDuplicateExport(tok, id.Name)
			}
		}
	}
}
