package report

import (
	"testing"

	"github.com/tangzhangming/tava/internal/i18n"
)

func init() {
	i18n.SetLanguage(i18n.LangEnglish)
}

func TestReporterAccumulates(t *testing.T) {
	r := NewReporter()
	if r.HasErrors() {
		t.Fatal("new reporter should be empty")
	}

	r.ReportLexicalError("bad char", 1, 2)
	r.ReportSyntaxError("bad token", 3, 4)
	r.ReportSemanticError("bad type", 5, 6)

	if !r.HasErrors() || r.Count() != 3 {
		t.Fatalf("count = %d, want 3", r.Count())
	}

	// 诊断按记录顺序保留
	diags := r.Errors()
	phases := []Phase{PhaseLexical, PhaseSyntax, PhaseSemantic}
	for i, phase := range phases {
		if diags[i].Phase != phase {
			t.Errorf("diagnostic %d phase = %v, want %v", i, diags[i].Phase, phase)
		}
	}
	if diags[1].Line != 3 || diags[1].Column != 4 || diags[1].Message != "bad token" {
		t.Errorf("diagnostic 1 = %+v", diags[1])
	}
}

func TestDiagnosticString(t *testing.T) {
	d := Diagnostic{Phase: PhaseSemantic, Message: "Variable 'y' is not declared", Line: 3, Column: 7}
	want := "line 3:7: semantic error: Variable 'y' is not declared"
	if got := d.String(); got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}

func TestPhaseNames(t *testing.T) {
	tests := []struct {
		phase Phase
		want  string
	}{
		{PhaseLexical, "lexical"},
		{PhaseSyntax, "syntax"},
		{PhaseSemantic, "semantic"},
	}
	for _, tt := range tests {
		if got := tt.phase.Name(); got != tt.want {
			t.Errorf("Name() = %q, want %q", got, tt.want)
		}
	}
}
