package parser

import (
	"testing"

	"github.com/tangzhangming/tava/internal/i18n"
	"github.com/tangzhangming/tava/internal/report"
)

func init() {
	i18n.SetLanguage(i18n.LangEnglish)
}

// parseOK 解析一段源码并要求没有任何诊断
func parseOK(t *testing.T, source string) *Program {
	t.Helper()
	reporter := report.NewReporter()
	program := Parse(source, reporter)
	if reporter.HasErrors() {
		t.Fatalf("unexpected errors parsing %q: %v", source, reporter.Errors())
	}
	return program
}

// parseExpr 解析 "print <expr>" 并返回表达式的字符串形式
func parseExpr(t *testing.T, expr string) string {
	t.Helper()
	program := parseOK(t, "print "+expr)
	stmt, ok := program.Statements[0].(*PrintStmt)
	if !ok {
		t.Fatalf("statement is %T, want *PrintStmt", program.Statements[0])
	}
	return stmt.Value.String()
}

func TestOperatorPrecedence(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"2 + 3 * 4", "(2 + (3 * 4))"},
		{"2 * 3 + 4", "((2 * 3) + 4)"},
		{"8 - 4 + 2", "((8 - 4) + 2)"},
		{"100 / 10 / 5", "((100 / 10) / 5)"},
		{"10 % 3 + 1", "((10 % 3) + 1)"},
		{"(2 + 3) * 4", "((2 + 3) * 4)"},
		{"1 < 2 == true", "((1 < 2) == true)"},
		{"a and b or c", "((a and b) or c)"},
		{"x == 1 and y == 2", "((x == 1) and (y == 2))"},
		{"not true and false", "((not true) and false)"},
		{"not x == y", "((not x) == y)"},
		{"1 + 2 < 3 * 4", "((1 + 2) < (3 * 4))"},
		{"a <= b != c >= d", "(((a <= b) != c) >= d)"},
	}
	for _, tt := range tests {
		if got := parseExpr(t, tt.input); got != tt.want {
			t.Errorf("%q parsed as %s, want %s", tt.input, got, tt.want)
		}
	}
}

func TestVarDecl(t *testing.T) {
	program := parseOK(t, `var answer = 42;`)
	stmt, ok := program.Statements[0].(*VarDeclStmt)
	if !ok {
		t.Fatalf("statement is %T, want *VarDeclStmt", program.Statements[0])
	}
	if stmt.Name != "answer" {
		t.Errorf("name = %q, want %q", stmt.Name, "answer")
	}
	lit, ok := stmt.Value.(*IntegerLiteral)
	if !ok || lit.Value != 42 {
		t.Errorf("value = %s, want 42", stmt.Value.String())
	}
}

func TestAssignStmt(t *testing.T) {
	program := parseOK(t, `x = x + 1`)
	stmt, ok := program.Statements[0].(*AssignStmt)
	if !ok {
		t.Fatalf("statement is %T, want *AssignStmt", program.Statements[0])
	}
	if stmt.String() != "x = (x + 1)" {
		t.Errorf("got %s", stmt.String())
	}
}

func TestIfElse(t *testing.T) {
	program := parseOK(t, `if x < 10 { print x } else { print 0 }`)
	stmt, ok := program.Statements[0].(*IfStmt)
	if !ok {
		t.Fatalf("statement is %T, want *IfStmt", program.Statements[0])
	}
	if stmt.Condition.String() != "(x < 10)" {
		t.Errorf("condition = %s", stmt.Condition.String())
	}
	if len(stmt.Then.Statements) != 1 || stmt.Else == nil || len(stmt.Else.Statements) != 1 {
		t.Errorf("unexpected branch shape: %s", stmt.String())
	}

	noElse := parseOK(t, `if true { print 1 }`).Statements[0].(*IfStmt)
	if noElse.Else != nil {
		t.Errorf("else = %v, want nil", noElse.Else)
	}
}

func TestWhile(t *testing.T) {
	program := parseOK(t, `while i < 5 { i = i + 1 }`)
	stmt, ok := program.Statements[0].(*WhileStmt)
	if !ok {
		t.Fatalf("statement is %T, want *WhileStmt", program.Statements[0])
	}
	if stmt.Condition.String() != "(i < 5)" || len(stmt.Body.Statements) != 1 {
		t.Errorf("unexpected loop shape: %s", stmt.String())
	}
}

func TestFor(t *testing.T) {
	program := parseOK(t, `for var i = 0; i < 3; i = i + 1 { print i }`)
	stmt, ok := program.Statements[0].(*ForStmt)
	if !ok {
		t.Fatalf("statement is %T, want *ForStmt", program.Statements[0])
	}
	if _, ok := stmt.Init.(*VarDeclStmt); !ok {
		t.Errorf("init is %T, want *VarDeclStmt", stmt.Init)
	}
	if stmt.Condition.String() != "(i < 3)" {
		t.Errorf("condition = %s", stmt.Condition.String())
	}
	if _, ok := stmt.Update.(*AssignStmt); !ok {
		t.Errorf("update is %T, want *AssignStmt", stmt.Update)
	}
}

func TestForWithoutInitAndUpdate(t *testing.T) {
	program := parseOK(t, `for ; x < 3; { print x }`)
	stmt := program.Statements[0].(*ForStmt)
	if stmt.Init != nil || stmt.Update != nil {
		t.Errorf("init = %v, update = %v, want both nil", stmt.Init, stmt.Update)
	}
}

func TestFunDecl(t *testing.T) {
	program := parseOK(t, `fun add(a, b) { print a + b }`)
	stmt, ok := program.Statements[0].(*FunDeclStmt)
	if !ok {
		t.Fatalf("statement is %T, want *FunDeclStmt", program.Statements[0])
	}
	if stmt.Name != "add" || len(stmt.Params) != 2 || stmt.Params[0] != "a" || stmt.Params[1] != "b" {
		t.Errorf("unexpected signature: %s", stmt.String())
	}

	empty := parseOK(t, `fun main() { }`).Statements[0].(*FunDeclStmt)
	if len(empty.Params) != 0 {
		t.Errorf("params = %v, want none", empty.Params)
	}
}

func TestClassDecl(t *testing.T) {
	program := parseOK(t, `
class Point {
	var x = 0
	var y = 0
	fun sum() { print 0 }
}`)
	stmt, ok := program.Statements[0].(*ClassDeclStmt)
	if !ok {
		t.Fatalf("statement is %T, want *ClassDeclStmt", program.Statements[0])
	}
	if stmt.Name != "Point" || len(stmt.Members) != 3 {
		t.Fatalf("unexpected class shape: %s", stmt.String())
	}
	if _, ok := stmt.Members[0].(*VarDeclStmt); !ok {
		t.Errorf("member 0 is %T, want *VarDeclStmt", stmt.Members[0])
	}
	if _, ok := stmt.Members[2].(*FunDeclStmt); !ok {
		t.Errorf("member 2 is %T, want *FunDeclStmt", stmt.Members[2])
	}
}

func TestNewAndMemberAccess(t *testing.T) {
	program := parseOK(t, `var p = new Point(1, 2); print p.x`)
	decl := program.Statements[0].(*VarDeclStmt)
	ne, ok := decl.Value.(*NewExpr)
	if !ok || ne.ClassName != "Point" || len(ne.Args) != 2 {
		t.Fatalf("value = %s, want new Point(1, 2)", decl.Value.String())
	}
	pr := program.Statements[1].(*PrintStmt)
	if pr.Value.String() != "p.x" {
		t.Errorf("print value = %s, want p.x", pr.Value.String())
	}
}

func TestMemberAssign(t *testing.T) {
	program := parseOK(t, `p.x = 5`)
	stmt, ok := program.Statements[0].(*MemberAssignStmt)
	if !ok {
		t.Fatalf("statement is %T, want *MemberAssignStmt", program.Statements[0])
	}
	if stmt.String() != "p.x = 5" {
		t.Errorf("got %s", stmt.String())
	}
}

func TestCalls(t *testing.T) {
	program := parseOK(t, `f(); g(1, 2 + 3); p.move(4)`)

	call := program.Statements[0].(*ExprStmt).Expression.(*CallExpr)
	if call.Name != "f" || len(call.Args) != 0 {
		t.Errorf("got %s, want f()", call.String())
	}

	call = program.Statements[1].(*ExprStmt).Expression.(*CallExpr)
	if call.Name != "g" || len(call.Args) != 2 || call.Args[1].String() != "(2 + 3)" {
		t.Errorf("got %s, want g(1, (2 + 3))", call.String())
	}

	mc := program.Statements[2].(*ExprStmt).Expression.(*MethodCallExpr)
	if mc.Method != "move" || len(mc.Args) != 1 || mc.Object.String() != "p" {
		t.Errorf("got %s, want p.move(4)", mc.String())
	}
}

func TestLiterals(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"true", "true"},
		{"false", "false"},
		{"list", "list"},
		{`"hi"`, `"hi"`},
		{"0", "0"},
	}
	for _, tt := range tests {
		if got := parseExpr(t, tt.input); got != tt.want {
			t.Errorf("%q parsed as %s, want %s", tt.input, got, tt.want)
		}
	}
}

func TestSyntaxErrorRecovery(t *testing.T) {
	tests := []struct {
		source string
		errors int
		stmts  int
	}{
		// 缺少变量名，consume 报告后照常前进，后续 '=' 和表达式也错位
		{"var = 5", 3, 1},
		// 缺少表达式，替换为合成的 0 字面量
		{"print ;", 1, 1},
		// 语句不能以 ')' 开头，替换为合成语句后下一条正常解析
		{") print 1", 1, 2},
		// 只有函数名可以被调用
		{"print 1(2)", 1, 1},
	}
	for _, tt := range tests {
		reporter := report.NewReporter()
		program := Parse(tt.source, reporter)
		if reporter.Count() != tt.errors {
			t.Errorf("%q: got %d errors, want %d: %v", tt.source, reporter.Count(), tt.errors, reporter.Errors())
		}
		if len(program.Statements) != tt.stmts {
			t.Errorf("%q: got %d statements, want %d", tt.source, len(program.Statements), tt.stmts)
		}
	}
}

func TestParserNeverStalls(t *testing.T) {
	// 一串无法开始语句的 token 也必须推进到 EOF
	reporter := report.NewReporter()
	program := Parse(") } + =", reporter)
	if !reporter.HasErrors() {
		t.Fatal("expected errors")
	}
	if len(program.Statements) == 0 {
		t.Fatal("expected synthetic statements")
	}
}
