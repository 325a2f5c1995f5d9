package i18n

// zhMessages contains Chinese translations
var zhMessages = map[string]string{
	// Lexer errors
	ErrUnterminatedString: "字符串字面量未闭合",
	ErrUnexpectedChar:     "意外的字符 '%s'",

	// Parser errors
	ErrExpectedToken:      "期望 %s, 实际是 %s",
	ErrUnexpectedStmt:     "语句不能以 %s 开头",
	ErrExpectedExpression: "期望表达式, 实际是 %s",
	ErrInvalidInteger:     "无效的整数字面量 '%s'",
	ErrCallTarget:         "只能调用函数名",

	// Semantic errors
	ErrVarRedeclared:      "变量 '%s' 已经声明过",
	ErrVarNotDeclared:     "变量 '%s' 未声明",
	ErrAssignTypeMismatch: "不能将 %s 赋值给变量 '%s' (类型为 %s)",
	ErrConditionNotBool:   "条件必须是 boolean 类型, 实际是 %s",
	ErrAddOperands:        "运算符 '+' 不能作用于 %s 和 %s",
	ErrIntOperands:        "运算符 '%s' 要求 int 类型操作数",
	ErrBoolOperands:       "运算符 '%s' 要求 boolean 类型操作数",
	ErrCompareMismatch:    "不能比较 %s 和 %s",
	ErrClassRedeclared:    "类 '%s' 已经声明过",
	ErrClassNotDeclared:   "类 '%s' 未声明",
	ErrNotAClass:          "类型 %s 不是类",
	ErrMemberNotDeclared:  "类 '%s' 没有成员 '%s'",
	ErrMemberRedeclared:   "类 '%s' 已经声明了成员 '%s'",
	ErrInvalidClassMember: "类 '%s' 只能包含字段和方法",
	ErrMemberTypeMismatch: "不能将 %s 赋值给成员 '%s' (类型为 %s)",
	ErrArgNotInt:          "第 %d 个参数必须是 int 类型 (调用 '%s')",

	// Codegen internal failures
	ErrSlotRedeclared:  "内部错误: 变量 '%s' 已经绑定到局部变量槽",
	ErrSlotUnbound:     "内部错误: 变量 '%s' 没有局部变量槽",
	ErrAssignUnbound:   "内部错误: 赋值给未绑定的变量 '%s'",
	ErrUnsupportedExpr: "内部错误: %s 表达式没有对应的指令生成",
	ErrTooManyLocals:   "内部错误: 局部变量过多 (%d)",

	// Diagnostic rendering
	MsgDiagnostic: "第 %d 行第 %d 列: %s错误: %s",
	PhaseLexical:  "词法",
	PhaseSyntax:   "语法",
	PhaseSemantic: "语义",

	// Usage and help
	MsgUsage:          "用法: tava <命令> [参数]",
	MsgCommands:       "命令:",
	MsgCmdBuild:       "  build     编译 .tava 文件为 JVM class 文件",
	MsgCmdRun:         "  run       编译并用 java 运行 .tava 文件",
	MsgCmdRepl:        "  repl      交互式前端检查器",
	MsgCmdVersion:     "  version   打印 tava 版本",
	MsgCmdHelp:        "  help      打印帮助信息",
	MsgUseHelp:        "使用 \"tava help\" 查看更多信息。",
	MsgUnknownCommand: "未知命令: %s",

	// Build command
	MsgBuildUsage:       "用法: tava build [选项] <file.tava>",
	MsgBuildDescription: "编译 tava 源文件为 JVM class 文件。",
	MsgBuildArgInput:    "  file.tava    要编译的源文件",
	MsgBuildOptOutput:   "class 文件的输出目录",
	MsgBuildOptVerbose:  "详细输出",
	MsgBuildCompleted:   "已生成 %s",

	// Run command
	MsgRunUsage:       "用法: tava run [选项] <file.tava>",
	MsgRunDescription: "编译 tava 源文件并用 java 启动器运行。",
	MsgRunArgInput:    "  file.tava    要运行的源文件",
	MsgRunOptVerbose:  "详细输出",
	MsgRunning:        "运行中...",

	// Repl command
	MsgReplBanner: "tava %s 检查器\nCtrl+C 取消输入, Ctrl+D 退出。输入 :quit 退出。",
	MsgReplHelp:   "检查器命令:\n  :tokens <代码>  显示 token 流\n  :help           显示帮助\n  :quit           退出",

	// Common errors
	ErrInputRequired:     "错误: 需要输入文件",
	ErrCannotGetCwd:      "无法获取工作目录: %v",
	ErrCannotCleanDir:    "无法清理输出目录: %v",
	ErrCannotAccessInput: "无法访问输入: %v",
	ErrCannotLoadConfig:  "无法加载 tava.toml: %v",
	ErrCannotReadFile:    "无法读取文件 %s: %v",
	ErrCannotCreateDir:   "无法创建目录 %s: %v",
	ErrCannotWriteFile:   "无法写入文件 %s: %v",
	ErrCompileFailed:     "编译失败, 共 %d 个错误",
	ErrInternal:          "编译器内部错误: %v",
	ErrRunError:          "运行失败: %v",
	ErrNotTavaFile:       "%s 不是 .tava 文件",

	// Info messages
	MsgUsingConfig: "使用配置 %s",
	MsgNoConfig:    "未找到 tava.toml, 使用默认配置",
	MsgCompiling:   "正在编译 %s -> %s",
	MsgMoreErrors:  "... 还有 %d 个错误",
}
