package i18n

// Message keys for diagnostics
const (
	// Lexer errors
	ErrUnterminatedString = "lexer.unterminated_string"
	ErrUnexpectedChar     = "lexer.unexpected_char" // args: char

	// Parser errors
	ErrExpectedToken      = "parser.expected_token"       // args: expected, got
	ErrUnexpectedStmt     = "parser.unexpected_statement" // args: got
	ErrExpectedExpression = "parser.expected_expression"  // args: got
	ErrInvalidInteger     = "parser.invalid_integer"      // args: literal
	ErrCallTarget         = "parser.call_target"

	// Semantic errors
	ErrVarRedeclared      = "semantic.var_redeclared"       // args: name
	ErrVarNotDeclared     = "semantic.var_not_declared"     // args: name
	ErrAssignTypeMismatch = "semantic.assign_type_mismatch" // args: exprType, name, varType
	ErrConditionNotBool   = "semantic.condition_not_bool"   // args: got
	ErrAddOperands        = "semantic.add_operands"         // args: left, right
	ErrIntOperands        = "semantic.int_operands"         // args: operator
	ErrBoolOperands       = "semantic.bool_operands"        // args: operator
	ErrCompareMismatch    = "semantic.compare_mismatch"     // args: left, right
	ErrClassRedeclared    = "semantic.class_redeclared"     // args: name
	ErrClassNotDeclared   = "semantic.class_not_declared"   // args: name
	ErrNotAClass          = "semantic.not_a_class"          // args: type
	ErrMemberNotDeclared  = "semantic.member_not_declared"  // args: class, member
	ErrMemberRedeclared   = "semantic.member_redeclared"    // args: class, member
	ErrInvalidClassMember = "semantic.invalid_class_member" // args: class
	ErrMemberTypeMismatch = "semantic.member_type_mismatch" // args: exprType, member, memberType
	ErrArgNotInt          = "semantic.arg_not_int"          // args: index, callee
)

// Message keys for code generation (internal failures, not user diagnostics)
const (
	ErrSlotRedeclared   = "codegen.slot_redeclared"    // args: name
	ErrSlotUnbound      = "codegen.slot_unbound"       // args: name
	ErrAssignUnbound    = "codegen.assign_unbound"     // args: name
	ErrUnsupportedExpr  = "codegen.unsupported_expr"   // args: node
	ErrTooManyLocals    = "codegen.too_many_locals"    // args: count
)

// Message keys for diagnostic rendering
const (
	MsgDiagnostic = "report.diagnostic" // args: line, column, phase, message
	PhaseLexical  = "report.phase_lexical"
	PhaseSyntax   = "report.phase_syntax"
	PhaseSemantic = "report.phase_semantic"
)

// Message keys for CLI
const (
	// Usage and help
	MsgUsage          = "cli.usage"
	MsgCommands       = "cli.commands"
	MsgCmdBuild       = "cli.cmd_build"
	MsgCmdRun         = "cli.cmd_run"
	MsgCmdRepl        = "cli.cmd_repl"
	MsgCmdVersion     = "cli.cmd_version"
	MsgCmdHelp        = "cli.cmd_help"
	MsgUseHelp        = "cli.use_help"
	MsgUnknownCommand = "cli.unknown_command" // args: command

	// Build command
	MsgBuildUsage       = "cli.build_usage"
	MsgBuildDescription = "cli.build_description"
	MsgBuildArgInput    = "cli.build_arg_input"
	MsgBuildOptOutput   = "cli.build_opt_output"
	MsgBuildOptVerbose  = "cli.build_opt_verbose"
	MsgBuildCompleted   = "cli.build_completed" // args: outputPath

	// Run command
	MsgRunUsage       = "cli.run_usage"
	MsgRunDescription = "cli.run_description"
	MsgRunArgInput    = "cli.run_arg_input"
	MsgRunOptVerbose  = "cli.run_opt_verbose"
	MsgRunning        = "cli.running"

	// Repl command
	MsgReplBanner = "cli.repl_banner"
	MsgReplHelp   = "cli.repl_help"

	// Common errors
	ErrInputRequired     = "cli.input_required"
	ErrCannotGetCwd      = "cli.cannot_get_cwd"      // args: error
	ErrCannotCleanDir    = "cli.cannot_clean_dir"    // args: error
	ErrCannotAccessInput = "cli.cannot_access_input" // args: error
	ErrCannotLoadConfig  = "cli.cannot_load_config"  // args: error
	ErrCannotReadFile    = "cli.cannot_read_file"    // args: path, error
	ErrCannotCreateDir   = "cli.cannot_create_dir"   // args: path, error
	ErrCannotWriteFile   = "cli.cannot_write_file"   // args: path, error
	ErrCompileFailed     = "cli.compile_failed"      // args: count
	ErrInternal          = "cli.internal_error"      // args: error
	ErrRunError          = "cli.run_error"           // args: error
	ErrNotTavaFile       = "cli.not_tava_file"       // args: path

	// Info messages
	MsgUsingConfig = "cli.using_config" // args: configPath
	MsgNoConfig    = "cli.no_config"
	MsgCompiling   = "cli.compiling" // args: input, output
	MsgMoreErrors  = "cli.more_errors" // args: count
)
