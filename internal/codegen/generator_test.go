package codegen

import (
	"bytes"
	"reflect"
	"strings"
	"testing"

	"github.com/tangzhangming/tava/internal/i18n"
	"github.com/tangzhangming/tava/internal/jasm"
	"github.com/tangzhangming/tava/internal/parser"
	"github.com/tangzhangming/tava/internal/report"
	"github.com/tangzhangming/tava/internal/symbol"
)

func init() {
	i18n.SetLanguage(i18n.LangEnglish)
}

func parse(t *testing.T, source string) *parser.Program {
	t.Helper()
	reporter := report.NewReporter()
	program := parser.Parse(source, reporter)
	if reporter.HasErrors() {
		t.Fatalf("source does not parse: %v", reporter.Errors())
	}
	return program
}

func generate(t *testing.T, source string) *Generator {
	t.Helper()
	g := New()
	if _, err := g.Generate(parse(t, source), "Main"); err != nil {
		t.Fatalf("generate failed: %v", err)
	}
	return g
}

func ins(op jasm.Opcode, arg int) jasm.Instruction {
	return jasm.Instruction{Op: op, Arg: arg}
}

func TestVarDeclAndPrint(t *testing.T) {
	g := generate(t, `
var x = 2 + 3
print x
`)
	want := []jasm.Instruction{
		ins(jasm.OP_ICONST, 2),
		ins(jasm.OP_ICONST, 3),
		ins(jasm.OP_IADD, 0),
		ins(jasm.OP_ISTORE, 1),
		ins(jasm.OP_ILOAD, 1),
		ins(jasm.OP_GETSTATIC_OUT, 0),
		ins(jasm.OP_SWAP, 0),
		ins(jasm.OP_PRINTLN, 0),
		ins(jasm.OP_RETURN, 0),
	}
	if !reflect.DeepEqual(g.Instructions(), want) {
		t.Errorf("instructions = %v, want %v", g.Instructions(), want)
	}
}

func TestArithmeticChain(t *testing.T) {
	g := generate(t, `
var a = 5
var b = a * 2
print b - 1
`)
	want := []jasm.Instruction{
		ins(jasm.OP_ICONST, 5),
		ins(jasm.OP_ISTORE, 1),
		ins(jasm.OP_ILOAD, 1),
		ins(jasm.OP_ICONST, 2),
		ins(jasm.OP_IMUL, 0),
		ins(jasm.OP_ISTORE, 2),
		ins(jasm.OP_ILOAD, 2),
		ins(jasm.OP_ICONST, 1),
		ins(jasm.OP_ISUB, 0),
		ins(jasm.OP_GETSTATIC_OUT, 0),
		ins(jasm.OP_SWAP, 0),
		ins(jasm.OP_PRINTLN, 0),
		ins(jasm.OP_RETURN, 0),
	}
	if !reflect.DeepEqual(g.Instructions(), want) {
		t.Errorf("instructions = %v, want %v", g.Instructions(), want)
	}
}

func TestSlotAllocation(t *testing.T) {
	// 槽 0 被 args 占用，变量从槽 1 起按声明顺序分配
	g := generate(t, `
var a = 1
var b = 2
var c = 3
`)
	for i, name := range []string{"a", "b", "c"} {
		detail := g.Lookup(name)
		if detail == nil {
			t.Fatalf("variable %q has no binding", name)
		}
		if detail.Slot != i+1 {
			t.Errorf("%q slot = %d, want %d", name, detail.Slot, i+1)
		}
		if detail.Type != symbol.TypeInt {
			t.Errorf("%q type = %s, want int", name, detail.Type)
		}
	}
}

func TestListUsesReferenceStore(t *testing.T) {
	g := generate(t, `var l = list`)
	want := []jasm.Instruction{
		ins(jasm.OP_NEWLIST, 0),
		ins(jasm.OP_ASTORE, 1),
		ins(jasm.OP_RETURN, 0),
	}
	if !reflect.DeepEqual(g.Instructions(), want) {
		t.Errorf("instructions = %v, want %v", g.Instructions(), want)
	}
	if detail := g.Lookup("l"); detail == nil || detail.Type != symbol.TypeObject {
		t.Errorf("l = %+v, want Object binding", detail)
	}
}

func TestAssignReusesSlot(t *testing.T) {
	g := generate(t, `
var x = 1
x = 2
`)
	want := []jasm.Instruction{
		ins(jasm.OP_ICONST, 1),
		ins(jasm.OP_ISTORE, 1),
		ins(jasm.OP_ICONST, 2),
		ins(jasm.OP_ISTORE, 1),
		ins(jasm.OP_RETURN, 0),
	}
	if !reflect.DeepEqual(g.Instructions(), want) {
		t.Errorf("instructions = %v, want %v", g.Instructions(), want)
	}
}

func TestControlFlowIsSkipped(t *testing.T) {
	// if/while/for/fun/class 语句不降低，只产出 return
	g := generate(t, `
if true { print 1 }
while false { print 2 }
fun f() { print 3 }
class C { var x = 0 }
`)
	want := []jasm.Instruction{ins(jasm.OP_RETURN, 0)}
	if !reflect.DeepEqual(g.Instructions(), want) {
		t.Errorf("instructions = %v, want %v", g.Instructions(), want)
	}
}

func TestClassFileMagic(t *testing.T) {
	g := New()
	data, err := g.Generate(parse(t, `print 1 + 2`), "Main")
	if err != nil {
		t.Fatalf("generate failed: %v", err)
	}
	if !bytes.HasPrefix(data, []byte{0xCA, 0xFE, 0xBA, 0xBE}) {
		t.Errorf("output does not start with class file magic: % x", data[:4])
	}
	if !bytes.Contains(data, []byte("Main")) {
		t.Error("output does not name the class")
	}
}

func TestUnsupportedExpressionIsInternalError(t *testing.T) {
	tests := []struct {
		source   string
		fragment string
	}{
		{`var b = true`, "no lowering for boolean"},
		{`print "hi"`, "no lowering for string"},
		{`print not true`, "no lowering for unary"},
		{`print f(1)`, "no lowering for call"},
		{`var x = 1 == 1`, "no lowering for '=='"},
	}
	for _, tt := range tests {
		g := New()
		data, err := g.Generate(parse(t, tt.source), "Main")
		if err == nil {
			t.Errorf("%q: expected error", tt.source)
			continue
		}
		if data != nil {
			t.Errorf("%q: expected no output bytes", tt.source)
		}
		if !strings.Contains(err.Error(), tt.fragment) {
			t.Errorf("%q: error = %q, want substring %q", tt.source, err.Error(), tt.fragment)
		}
	}
}

func TestUnboundVariableIsInternalError(t *testing.T) {
	g := New()
	if _, err := g.Generate(parse(t, `print x`), "Main"); err == nil {
		t.Error("expected error for unbound variable")
	} else if !strings.Contains(err.Error(), "internal") {
		t.Errorf("error = %q, want internal error", err.Error())
	}

	g = New()
	if _, err := g.Generate(parse(t, `x = 1`), "Main"); err == nil {
		t.Error("expected error for assignment to unbound variable")
	}
}
