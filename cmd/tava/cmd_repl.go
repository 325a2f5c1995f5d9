package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/peterh/liner"

	"github.com/tangzhangming/tava/internal/i18n"
	"github.com/tangzhangming/tava/internal/lexer"
	"github.com/tangzhangming/tava/internal/parser"
	"github.com/tangzhangming/tava/internal/report"
	"github.com/tangzhangming/tava/internal/semantic"
)

// replCmd 交互式前端检查器
//
// 逐行走 词法 -> 语法 -> 语义 管线：有诊断打印诊断，
// 没有诊断打印解析后的 AST。声明不跨行保留，每行独立分析。
func replCmd(args []string) {
	line := liner.NewLiner()
	defer line.Close()
	line.SetCtrlCAborts(true)

	historyPath := replHistoryPath()
	if historyPath != "" {
		if f, err := os.Open(historyPath); err == nil {
			line.ReadHistory(f)
			f.Close()
		}
	}

	fmt.Println(i18n.T(i18n.MsgReplBanner, version))

	for {
		input, err := line.Prompt("tava> ")
		if err != nil {
			// Ctrl+C 取消当前输入，Ctrl+D 或读取失败退出
			if err == liner.ErrPromptAborted {
				continue
			}
			break
		}

		input = strings.TrimSpace(input)
		if input == "" {
			continue
		}
		line.AppendHistory(input)

		switch {
		case input == ":quit":
			saveReplHistory(line, historyPath)
			return
		case input == ":help":
			fmt.Println(i18n.T(i18n.MsgReplHelp))
		case strings.HasPrefix(input, ":tokens "):
			showTokens(strings.TrimPrefix(input, ":tokens "))
		default:
			inspect(input)
		}
	}

	saveReplHistory(line, historyPath)
}

// inspect 对一行输入跑完整前端并打印结果
func inspect(input string) {
	reporter := report.NewReporter()
	program := parser.Parse(input, reporter)
	if !reporter.HasErrors() {
		semantic.New(reporter).Analyze(program)
	}

	if reporter.HasErrors() {
		for _, d := range reporter.Errors() {
			fmt.Println(d.String())
		}
		return
	}
	fmt.Print(program.String())
}

// showTokens 打印一段代码的 token 流
func showTokens(code string) {
	reporter := report.NewReporter()
	for _, tok := range lexer.Tokenize(code, reporter) {
		fmt.Printf("%-14s %q (line %d:%d)\n", lexer.TokenTypeName(tok.Type), tok.Literal, tok.Line, tok.Column)
	}
	for _, d := range reporter.Errors() {
		fmt.Println(d.String())
	}
}

func replHistoryPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".tava_history")
}

func saveReplHistory(line *liner.State, path string) {
	if path == "" {
		return
	}
	if f, err := os.Create(path); err == nil {
		line.WriteHistory(f)
		f.Close()
	}
}
