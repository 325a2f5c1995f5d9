package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/tangzhangming/tava/internal/codegen"
	"github.com/tangzhangming/tava/internal/config"
	"github.com/tangzhangming/tava/internal/i18n"
	"github.com/tangzhangming/tava/internal/lexer"
	"github.com/tangzhangming/tava/internal/parser"
	"github.com/tangzhangming/tava/internal/report"
	"github.com/tangzhangming/tava/internal/semantic"
)

// DiagnosticsError 编译因源码错误而失败
type DiagnosticsError struct {
	Diagnostics []report.Diagnostic
}

func (e *DiagnosticsError) Error() string {
	return i18n.T(i18n.ErrCompileFailed, len(e.Diagnostics))
}

// InternalError 编译器自身的故障，与用户源码无关
type InternalError struct {
	Err error
}

func (e *InternalError) Error() string {
	return i18n.T(i18n.ErrInternal, e.Err)
}

// compileSource 完整编译管线：词法 -> 语法 -> 语义 -> 指令生成 -> 装配
//
// 词法和语法阶段共享一次诊断收集；默认在语法阶段出错后就停止，
// continue_on_error 打开时语义分析照常进行以收集更多诊断。
// 只要出现过任何诊断就不会产出字节码。
func compileSource(source, className string, cfg *config.Config) ([]byte, error) {
	reporter := report.NewReporter()

	tokens := lexer.Tokenize(source, reporter)
	program := parser.New(tokens, reporter).ParseProgram()
	if reporter.HasErrors() && !cfg.Build.ContinueOnError {
		return nil, &DiagnosticsError{Diagnostics: reporter.Errors()}
	}

	semantic.New(reporter).Analyze(program)
	if reporter.HasErrors() {
		return nil, &DiagnosticsError{Diagnostics: reporter.Errors()}
	}

	bytecode, err := codegen.New().Generate(program, className)
	if err != nil {
		return nil, &InternalError{Err: err}
	}
	return bytecode, nil
}

// classNameFor 从源文件路径推导 class 名
func classNameFor(input string) string {
	return strings.TrimSuffix(filepath.Base(input), ".tava")
}

// buildInput 编译一个 .tava 文件并把 class 文件写入输出目录
//
// 返回生成的 class 文件路径。
func buildInput(input, outputDir string, cfg *config.Config, verbose bool) (string, error) {
	if !strings.HasSuffix(input, ".tava") {
		return "", fmt.Errorf("%s", i18n.T(i18n.ErrNotTavaFile, input))
	}

	source, err := os.ReadFile(input)
	if err != nil {
		return "", fmt.Errorf("%s", i18n.T(i18n.ErrCannotReadFile, input, err))
	}

	className := classNameFor(input)
	outputPath := filepath.Join(outputDir, className+".class")
	if verbose {
		printInfo(i18n.T(i18n.MsgCompiling, input, outputPath))
	}

	bytecode, err := compileSource(string(source), className, cfg)
	if err != nil {
		return "", err
	}

	if err := os.MkdirAll(outputDir, 0755); err != nil {
		return "", fmt.Errorf("%s", i18n.T(i18n.ErrCannotCreateDir, outputDir, err))
	}
	if err := os.WriteFile(outputPath, bytecode, 0644); err != nil {
		return "", fmt.Errorf("%s", i18n.T(i18n.ErrCannotWriteFile, outputPath, err))
	}
	return outputPath, nil
}

// reportCompileError 打印编译失败的原因
//
// 诊断逐条打印，超过 max_errors 的部分折叠为一条汇总。
func reportCompileError(err error, cfg *config.Config) {
	diagErr, ok := err.(*DiagnosticsError)
	if !ok {
		printError(err.Error())
		return
	}

	diags := diagErr.Diagnostics
	max := cfg.Build.MaxErrors
	if max <= 0 || max > len(diags) {
		max = len(diags)
	}
	for _, d := range diags[:max] {
		printError(d.String())
	}
	if rest := len(diags) - max; rest > 0 {
		printError(i18n.T(i18n.MsgMoreErrors, rest))
	}
	printError(diagErr.Error())
}
