// Package report 收集编译各阶段产生的诊断信息
package report

import (
	"github.com/tangzhangming/tava/internal/i18n"
)

// Phase 诊断所属的编译阶段
type Phase int

const (
	PhaseLexical Phase = iota
	PhaseSyntax
	PhaseSemantic
)

// Name 返回阶段的本地化名称
func (p Phase) Name() string {
	switch p {
	case PhaseLexical:
		return i18n.T(i18n.PhaseLexical)
	case PhaseSyntax:
		return i18n.T(i18n.PhaseSyntax)
	default:
		return i18n.T(i18n.PhaseSemantic)
	}
}

// Diagnostic 表示一条诊断信息
type Diagnostic struct {
	Phase   Phase  // 所属阶段
	Message string // 已本地化的消息文本
	Line    int    // 行号 (1 起始)
	Column  int    // 列号 (1 起始)
}

// String 渲染为用户可读的一行
func (d Diagnostic) String() string {
	return i18n.T(i18n.MsgDiagnostic, d.Line, d.Column, d.Phase.Name(), d.Message)
}

// Reporter 诊断收集器
//
// 由 Lexer/Parser/SemanticAnalyzer 共享写入，诊断只累积不抛出。
// 一个 Reporter 只服务一次编译，不能跨并发编译共享。
type Reporter struct {
	diagnostics []Diagnostic
}

// NewReporter 创建一个新的诊断收集器
func NewReporter() *Reporter {
	return &Reporter{}
}

// ReportLexicalError 记录一条词法错误
func (r *Reporter) ReportLexicalError(msg string, line, column int) {
	r.add(PhaseLexical, msg, line, column)
}

// ReportSyntaxError 记录一条语法错误
func (r *Reporter) ReportSyntaxError(msg string, line, column int) {
	r.add(PhaseSyntax, msg, line, column)
}

// ReportSemanticError 记录一条语义错误
func (r *Reporter) ReportSemanticError(msg string, line, column int) {
	r.add(PhaseSemantic, msg, line, column)
}

func (r *Reporter) add(phase Phase, msg string, line, column int) {
	r.diagnostics = append(r.diagnostics, Diagnostic{
		Phase:   phase,
		Message: msg,
		Line:    line,
		Column:  column,
	})
}

// HasErrors 报告是否记录了任何诊断
func (r *Reporter) HasErrors() bool {
	return len(r.diagnostics) > 0
}

// Count 返回诊断数量
func (r *Reporter) Count() int {
	return len(r.diagnostics)
}

// Errors 按记录顺序返回全部诊断
func (r *Reporter) Errors() []Diagnostic {
	return r.diagnostics
}
