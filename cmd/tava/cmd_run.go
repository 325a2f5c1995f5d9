package main

import (
	"flag"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"

	"github.com/tangzhangming/tava/internal/config"
	"github.com/tangzhangming/tava/internal/i18n"
)

// runCmd 编译并用 java 运行 tava 源码
func runCmd(args []string) {
	fs := flag.NewFlagSet("run", flag.ExitOnError)
	verbose := fs.Bool("v", false, i18n.T(i18n.MsgRunOptVerbose))

	fs.Usage = func() {
		fmt.Println(i18n.T(i18n.MsgRunUsage))
		fmt.Println()
		fmt.Println(i18n.T(i18n.MsgRunDescription))
		fmt.Println()
		fmt.Println("Arguments:")
		fmt.Println(i18n.T(i18n.MsgRunArgInput))
		fmt.Println()
		fmt.Println("Options:")
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		os.Exit(1)
	}

	if fs.NArg() < 1 {
		printError(i18n.T(i18n.ErrInputRequired))
		fs.Usage()
		os.Exit(1)
	}

	input := fs.Arg(0)

	// 获取当前工作目录
	cwd, err := os.Getwd()
	if err != nil {
		printError(i18n.T(i18n.ErrCannotGetCwd, err))
		os.Exit(1)
	}

	cfg, _, err := config.FindAndLoad(cwd)
	if err != nil {
		printError(i18n.T(i18n.ErrCannotLoadConfig, err))
		os.Exit(1)
	}

	// 输出目录为 .output
	outputDir := filepath.Join(cwd, ".output")

	// 清理并创建输出目录
	if err := os.RemoveAll(outputDir); err != nil {
		printError(i18n.T(i18n.ErrCannotCleanDir, err))
		os.Exit(1)
	}

	// 编译
	if _, err := buildInput(input, outputDir, cfg, *verbose); err != nil {
		reportCompileError(err, cfg)
		os.Exit(1)
	}

	// 运行
	if *verbose {
		printInfo(i18n.T(i18n.MsgRunning))
	}

	cmd := exec.Command("java", "-cp", outputDir, classNameFor(input))
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		printError(i18n.T(i18n.ErrRunError, err))
		os.Exit(1)
	}
}
