package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/tangzhangming/tava/internal/config"
	"github.com/tangzhangming/tava/internal/i18n"
)

// buildCmd 编译 tava 源码到 JVM class 文件
func buildCmd(args []string) {
	fs := flag.NewFlagSet("build", flag.ExitOnError)
	outputDir := fs.String("o", "", i18n.T(i18n.MsgBuildOptOutput))
	verbose := fs.Bool("v", false, i18n.T(i18n.MsgBuildOptVerbose))

	fs.Usage = func() {
		fmt.Println(i18n.T(i18n.MsgBuildUsage))
		fmt.Println()
		fmt.Println(i18n.T(i18n.MsgBuildDescription))
		fmt.Println()
		fmt.Println("Arguments:")
		fmt.Println(i18n.T(i18n.MsgBuildArgInput))
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

	cwd, err := os.Getwd()
	if err != nil {
		printError(i18n.T(i18n.ErrCannotGetCwd, err))
		os.Exit(1)
	}

	cfg, configPath, err := config.FindAndLoad(cwd)
	if err != nil {
		printError(i18n.T(i18n.ErrCannotLoadConfig, err))
		os.Exit(1)
	}
	if *verbose {
		if configPath != "" {
			printInfo(i18n.T(i18n.MsgUsingConfig, configPath))
		} else {
			printInfo(i18n.T(i18n.MsgNoConfig))
		}
	}
	if *verbose {
		cfg.Build.Verbose = true
	}

	// 命令行 -o 优先于配置文件
	dir := cfg.Build.Output
	if *outputDir != "" {
		dir = *outputDir
	}

	outputPath, err := buildInput(input, dir, cfg, cfg.Build.Verbose)
	if err != nil {
		reportCompileError(err, cfg)
		os.Exit(1)
	}

	fmt.Println(i18n.T(i18n.MsgBuildCompleted, outputPath))
}
