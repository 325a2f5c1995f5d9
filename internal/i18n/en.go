package i18n

// enMessages contains English translations
var enMessages = map[string]string{
	// Lexer errors
	ErrUnterminatedString: "unterminated string literal",
	ErrUnexpectedChar:     "unexpected character '%s'",

	// Parser errors
	ErrExpectedToken:      "expected %s, got %s",
	ErrUnexpectedStmt:     "unexpected token %s at start of statement",
	ErrExpectedExpression: "expected expression, got %s",
	ErrInvalidInteger:     "invalid integer literal '%s'",
	ErrCallTarget:         "only a function name can be called",

	// Semantic errors
	ErrVarRedeclared:      "Variable '%s' is already declared",
	ErrVarNotDeclared:     "Variable '%s' is not declared",
	ErrAssignTypeMismatch: "cannot assign %s to variable '%s' of type %s",
	ErrConditionNotBool:   "condition must be boolean, got %s",
	ErrAddOperands:        "operator '+' cannot combine %s and %s",
	ErrIntOperands:        "operator '%s' requires int operands",
	ErrBoolOperands:       "operator '%s' requires boolean operands",
	ErrCompareMismatch:    "cannot compare %s with %s",
	ErrClassRedeclared:    "Class '%s' is already declared",
	ErrClassNotDeclared:   "Class '%s' is not declared",
	ErrNotAClass:          "type %s is not a class",
	ErrMemberNotDeclared:  "class '%s' has no member '%s'",
	ErrMemberRedeclared:   "class '%s' already declares member '%s'",
	ErrInvalidClassMember: "class '%s' may only contain fields and methods",
	ErrMemberTypeMismatch: "cannot assign %s to member '%s' of type %s",
	ErrArgNotInt:          "argument %d of call to '%s' must be int",

	// Codegen internal failures
	ErrSlotRedeclared:  "internal: variable '%s' already bound to a slot",
	ErrSlotUnbound:     "internal: variable '%s' has no slot binding",
	ErrAssignUnbound:   "internal: assignment to unbound variable '%s'",
	ErrUnsupportedExpr: "internal: no lowering for %s expression",
	ErrTooManyLocals:   "internal: too many local variables (%d)",

	// Diagnostic rendering
	MsgDiagnostic: "line %d:%d: %s error: %s",
	PhaseLexical:  "lexical",
	PhaseSyntax:   "syntax",
	PhaseSemantic: "semantic",

	// Usage and help
	MsgUsage:          "Usage: tava <command> [arguments]",
	MsgCommands:       "Commands:",
	MsgCmdBuild:       "  build     compile a .tava file to a JVM class file",
	MsgCmdRun:         "  run       compile and run a .tava file with java",
	MsgCmdRepl:        "  repl      interactive front-end inspector",
	MsgCmdVersion:     "  version   print the tava version",
	MsgCmdHelp:        "  help      print this help",
	MsgUseHelp:        "Use \"tava help\" for more information.",
	MsgUnknownCommand: "unknown command: %s",

	// Build command
	MsgBuildUsage:       "Usage: tava build [options] <file.tava>",
	MsgBuildDescription: "Compile a tava source file to a JVM class file.",
	MsgBuildArgInput:    "  file.tava    the source file to compile",
	MsgBuildOptOutput:   "output directory for the class file",
	MsgBuildOptVerbose:  "verbose output",
	MsgBuildCompleted:   "wrote %s",

	// Run command
	MsgRunUsage:       "Usage: tava run [options] <file.tava>",
	MsgRunDescription: "Compile a tava source file and run it with the java launcher.",
	MsgRunArgInput:    "  file.tava    the source file to run",
	MsgRunOptVerbose:  "verbose output",
	MsgRunning:        "Running...",

	// Repl command
	MsgReplBanner: "tava %s inspector\nCtrl+C cancels input, Ctrl+D exits. Type :quit to exit.",
	MsgReplHelp:   "Inspector commands:\n  :tokens <code>  show the token stream\n  :help           print this help\n  :quit           exit",

	// Common errors
	ErrInputRequired:     "error: input file required",
	ErrCannotGetCwd:      "cannot determine working directory: %v",
	ErrCannotCleanDir:    "cannot clean output directory: %v",
	ErrCannotAccessInput: "cannot access input: %v",
	ErrCannotLoadConfig:  "cannot load tava.toml: %v",
	ErrCannotReadFile:    "cannot read file %s: %v",
	ErrCannotCreateDir:   "cannot create directory %s: %v",
	ErrCannotWriteFile:   "cannot write file %s: %v",
	ErrCompileFailed:     "compilation failed with %d error(s)",
	ErrInternal:          "internal compiler error: %v",
	ErrRunError:          "run failed: %v",
	ErrNotTavaFile:       "%s is not a .tava file",

	// Info messages
	MsgUsingConfig: "using config %s",
	MsgNoConfig:    "no tava.toml found, using defaults",
	MsgCompiling:   "compiling %s -> %s",
	MsgMoreErrors:  "... and %d more error(s)",
}
