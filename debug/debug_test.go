package debug

import (
	"bytes"
	"io"
	"os"
	"strings"
	"testing"

	"github.com/xjslang/xjsfront/parser"
)

func TestDump(t *testing.T) {
	p := parser.New("let x = 5;", parser.Options{})
	prog, errs := p.Parse()
	if len(errs) > 0 {
		t.Fatalf("parser errors: %v", errs)
	}
	out := Dump(prog)
	for _, want := range []string{"VariableDeclaration", "Identifier", "x", "NumericLiteral"} {
		if !strings.Contains(out, want) {
			t.Errorf("Dump() output missing %q, got:\n%s", want, out)
		}
	}
}

func TestPrint(t *testing.T) {
	p := parser.New("let x = 5;", parser.Options{})
	prog, errs := p.Parse()
	if len(errs) > 0 {
		t.Fatalf("parser errors: %v", errs)
	}

	output := captureOutput(func() {
		Print(prog)
	})
	if output == "" {
		t.Error("Print() produced no output")
	}
	if !strings.Contains(output, "VariableDeclaration") {
		t.Errorf("Print() output missing VariableDeclaration, got:\n%s", output)
	}
}

func captureOutput(f func()) string {
	old := os.Stdout
	r, w, _ := os.Pipe()
	os.Stdout = w

	f()

	w.Close()
	os.Stdout = old

	var buf bytes.Buffer
	io.Copy(&buf, r)
	return buf.String()
}
