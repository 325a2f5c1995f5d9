package lexer

import (
	"testing"

	"github.com/tangzhangming/tava/internal/i18n"
	"github.com/tangzhangming/tava/internal/report"
)

func init() {
	i18n.SetLanguage(i18n.LangEnglish)
}

func tokenize(t *testing.T, input string) ([]Token, *report.Reporter) {
	t.Helper()
	reporter := report.NewReporter()
	return Tokenize(input, reporter), reporter
}

func TestTokenizeStatement(t *testing.T) {
	tokens, reporter := tokenize(t, `var x = 1 + 23`)

	expected := []struct {
		typ     TokenType
		literal string
	}{
		{TOKEN_VAR, "var"},
		{TOKEN_IDENT, "x"},
		{TOKEN_ASSIGN, "="},
		{TOKEN_INT, "1"},
		{TOKEN_PLUS, "+"},
		{TOKEN_INT, "23"},
		{TOKEN_EOF, ""},
	}

	if reporter.HasErrors() {
		t.Fatalf("unexpected errors: %v", reporter.Errors())
	}
	if len(tokens) != len(expected) {
		t.Fatalf("got %d tokens, want %d", len(tokens), len(expected))
	}
	for i, want := range expected {
		if tokens[i].Type != want.typ || tokens[i].Literal != want.literal {
			t.Errorf("token %d = (%s, %q), want (%s, %q)",
				i, TokenTypeName(tokens[i].Type), tokens[i].Literal, TokenTypeName(want.typ), want.literal)
		}
	}
}

func TestTwoCharOperators(t *testing.T) {
	tokens, reporter := tokenize(t, `== != <= >= < > =`)
	if reporter.HasErrors() {
		t.Fatalf("unexpected errors: %v", reporter.Errors())
	}

	want := []TokenType{
		TOKEN_EQ, TOKEN_NOT_EQ, TOKEN_LT_EQ, TOKEN_GT_EQ,
		TOKEN_LT, TOKEN_GT, TOKEN_ASSIGN, TOKEN_EOF,
	}
	if len(tokens) != len(want) {
		t.Fatalf("got %d tokens, want %d", len(tokens), len(want))
	}
	for i, typ := range want {
		if tokens[i].Type != typ {
			t.Errorf("token %d = %s, want %s", i, TokenTypeName(tokens[i].Type), TokenTypeName(typ))
		}
	}
}

func TestKeywords(t *testing.T) {
	tests := []struct {
		literal string
		typ     TokenType
	}{
		{"var", TOKEN_VAR},
		{"print", TOKEN_PRINT},
		{"list", TOKEN_LIST},
		{"true", TOKEN_TRUE},
		{"false", TOKEN_FALSE},
		{"if", TOKEN_IF},
		{"else", TOKEN_ELSE},
		{"while", TOKEN_WHILE},
		{"for", TOKEN_FOR},
		{"fun", TOKEN_FUN},
		{"class", TOKEN_CLASS},
		{"new", TOKEN_NEW},
		{"and", TOKEN_AND},
		{"or", TOKEN_OR},
		{"not", TOKEN_NOT},
		{"variable", TOKEN_IDENT}, // 关键字必须整词匹配
	}
	for _, tt := range tests {
		if got := LookupIdent(tt.literal); got != tt.typ {
			t.Errorf("LookupIdent(%q) = %s, want %s", tt.literal, TokenTypeName(got), TokenTypeName(tt.typ))
		}
	}
}

func TestStringLiteral(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{`"hello"`, "hello"},
		{`""`, ""},
		{`"say \"hi\""`, `say "hi"`},
		{`"a\\b"`, `a\b`},
		// 反斜杠让下一个字符原样通过，没有转义序列
		{`"a\nb"`, "anb"},
	}
	for _, tt := range tests {
		tokens, reporter := tokenize(t, tt.input)
		if reporter.HasErrors() {
			t.Errorf("%s: unexpected errors: %v", tt.input, reporter.Errors())
			continue
		}
		if tokens[0].Type != TOKEN_STRING || tokens[0].Literal != tt.want {
			t.Errorf("%s = (%s, %q), want (STRING, %q)",
				tt.input, TokenTypeName(tokens[0].Type), tokens[0].Literal, tt.want)
		}
	}
}

func TestUnterminatedString(t *testing.T) {
	tokens, reporter := tokenize(t, `"abc`)
	if reporter.Count() != 1 {
		t.Fatalf("got %d errors, want 1", reporter.Count())
	}
	if reporter.Errors()[0].Phase != report.PhaseLexical {
		t.Errorf("phase = %v, want lexical", reporter.Errors()[0].Phase)
	}
	// 已读到的内容仍然产出为 token
	if tokens[0].Type != TOKEN_STRING || tokens[0].Literal != "abc" {
		t.Errorf("token = (%s, %q), want (STRING, %q)", TokenTypeName(tokens[0].Type), tokens[0].Literal, "abc")
	}
}

func TestRecoveryOnStrayChars(t *testing.T) {
	// '@' 和孤立的 '!' 都不是合法 token，跳过后继续扫描
	tokens, reporter := tokenize(t, `var @ x ! y`)
	if reporter.Count() != 2 {
		t.Fatalf("got %d errors, want 2: %v", reporter.Count(), reporter.Errors())
	}

	want := []TokenType{TOKEN_VAR, TOKEN_IDENT, TOKEN_IDENT, TOKEN_EOF}
	if len(tokens) != len(want) {
		t.Fatalf("got %d tokens, want %d", len(tokens), len(want))
	}
	for i, typ := range want {
		if tokens[i].Type != typ {
			t.Errorf("token %d = %s, want %s", i, TokenTypeName(tokens[i].Type), TokenTypeName(typ))
		}
	}
}

func TestLineAndColumn(t *testing.T) {
	tokens, _ := tokenize(t, "var x\nprint y")

	positions := []struct {
		line, column int
	}{
		{1, 1}, // var
		{1, 5}, // x
		{2, 1}, // print
		{2, 7}, // y
	}
	for i, pos := range positions {
		if tokens[i].Line != pos.line || tokens[i].Column != pos.column {
			t.Errorf("token %d at %d:%d, want %d:%d",
				i, tokens[i].Line, tokens[i].Column, pos.line, pos.column)
		}
	}
}

func TestTokenizeEmptyInput(t *testing.T) {
	tokens, reporter := tokenize(t, "")
	if reporter.HasErrors() {
		t.Fatalf("unexpected errors: %v", reporter.Errors())
	}
	if len(tokens) != 1 || tokens[0].Type != TOKEN_EOF {
		t.Fatalf("got %d tokens, want single EOF", len(tokens))
	}
}
