// Package semantic 实现语义分析：基于作用域的名字解析和结构化类型检查
package semantic

import (
	"github.com/tangzhangming/tava/internal/i18n"
	"github.com/tangzhangming/tava/internal/parser"
	"github.com/tangzhangming/tava/internal/report"
	"github.com/tangzhangming/tava/internal/symbol"
)

// Analyzer 语义分析器
//
// 对 AST 做一次校验遍历，不产生新的树。类型用结构化字符串标签表示。
// 任何失败只报告一次并返回 "error" 标签，"error" 与一切类型兼容，
// 这样一个错误不会级联出重复报告，遍历也从不中断。
type Analyzer struct {
	table    *symbol.Table
	reporter *report.Reporter
}

// New 创建一个新的语义分析器，自带独立的符号表
func New(reporter *report.Reporter) *Analyzer {
	return &Analyzer{
		table:    symbol.New(),
		reporter: reporter,
	}
}

// Analyze 校验整个程序并返回同一棵树
func (a *Analyzer) Analyze(program *parser.Program) *parser.Program {
	for _, stmt := range program.Statements {
		a.analyzeStatement(stmt)
	}
	return program
}

// analyzeStatement 校验单条语句
func (a *Analyzer) analyzeStatement(stmt parser.Statement) {
	switch s := stmt.(type) {
	case *parser.VarDeclStmt:
		a.analyzeVarDecl(s)
	case *parser.AssignStmt:
		a.analyzeAssign(s)
	case *parser.PrintStmt:
		a.analyzeExpression(s.Value)
	case *parser.IfStmt:
		a.checkCondition(s.Condition, s.Token.Line, s.Token.Column)
		a.analyzeBlock(s.Then)
		if s.Else != nil {
			a.analyzeBlock(s.Else)
		}
	case *parser.WhileStmt:
		a.checkCondition(s.Condition, s.Token.Line, s.Token.Column)
		a.analyzeBlock(s.Body)
	case *parser.ForStmt:
		a.analyzeFor(s)
	case *parser.FunDeclStmt:
		a.analyzeFunDecl(s)
	case *parser.ClassDeclStmt:
		a.analyzeClassDecl(s)
	case *parser.MemberAssignStmt:
		a.analyzeMemberAssign(s)
	case *parser.ExprStmt:
		a.analyzeExpression(s.Expression)
	case *parser.BlockStmt:
		a.analyzeBlock(s)
	}
}

// analyzeBlock 在新作用域中校验语句块
func (a *Analyzer) analyzeBlock(block *parser.BlockStmt) {
	if block == nil {
		return
	}
	a.table.EnterScope()
	for _, stmt := range block.Statements {
		a.analyzeStatement(stmt)
	}
	a.table.ExitScope()
}

// analyzeVarDecl 校验变量声明
//
// 名字在任何外层作用域可见时即报错（严于"仅当前作用域"），
// 报错时不覆盖已有声明的类型。
func (a *Analyzer) analyzeVarDecl(s *parser.VarDeclStmt) {
	valueType := a.analyzeExpression(s.Value)
	if a.table.Lookup(s.Name) != nil {
		a.reporter.ReportSemanticError(i18n.T(i18n.ErrVarRedeclared, s.Name), s.Token.Line, s.Token.Column)
		return
	}
	// 声明不会失败：上面已经排除了重名
	a.table.Declare(s.Name, valueType, s.Token.Line, s.Token.Column)
}

// analyzeAssign 校验变量赋值
func (a *Analyzer) analyzeAssign(s *parser.AssignStmt) {
	sym := a.table.Lookup(s.Name)
	valueType := a.analyzeExpression(s.Value)
	if sym == nil {
		a.reporter.ReportSemanticError(i18n.T(i18n.ErrVarNotDeclared, s.Name), s.Token.Line, s.Token.Column)
		return
	}
	// Object 可以接受任何类型的赋值
	if valueType != symbol.TypeError && sym.Type != symbol.TypeError &&
		sym.Type != symbol.TypeObject && sym.Type != valueType {
		a.reporter.ReportSemanticError(
			i18n.T(i18n.ErrAssignTypeMismatch, valueType, s.Name, sym.Type),
			s.Token.Line, s.Token.Column)
	}
}

// checkCondition 条件表达式必须推断为 boolean
func (a *Analyzer) checkCondition(cond parser.Expression, line, column int) {
	condType := a.analyzeExpression(cond)
	if condType != symbol.TypeBoolean && condType != symbol.TypeError {
		a.reporter.ReportSemanticError(i18n.T(i18n.ErrConditionNotBool, condType), line, column)
	}
}

// analyzeFor 校验 for 循环
//
// 循环自身的作用域持有 init 语句的声明，循环变量对外不可见。
func (a *Analyzer) analyzeFor(s *parser.ForStmt) {
	a.table.EnterScope()
	if s.Init != nil {
		a.analyzeStatement(s.Init)
	}
	a.checkCondition(s.Condition, s.Token.Line, s.Token.Column)
	if s.Update != nil {
		a.analyzeStatement(s.Update)
	}
	if s.Body != nil {
		for _, stmt := range s.Body.Statements {
			a.analyzeStatement(stmt)
		}
	}
	a.table.ExitScope()
}

// analyzeFunDecl 校验函数声明
//
// 没有参数类型语法，所有参数一律声明为 int。
func (a *Analyzer) analyzeFunDecl(s *parser.FunDeclStmt) {
	a.table.EnterScope()
	for _, param := range s.Params {
		if err := a.table.Declare(param, symbol.TypeInt, s.Token.Line, s.Token.Column); err != nil {
			a.reporter.ReportSemanticError(i18n.T(i18n.ErrVarRedeclared, param), s.Token.Line, s.Token.Column)
		}
	}
	if s.Body != nil {
		for _, stmt := range s.Body.Statements {
			a.analyzeStatement(stmt)
		}
	}
	a.table.ExitScope()
}

// analyzeClassDecl 校验类声明
//
// 类注册进全局类表；成员在新作用域中逐个校验，
// VarDecl 成员成为带类型的字段，FunctionDecl 成员类型为 method，
// 其他语句种类不允许作为类成员。
func (a *Analyzer) analyzeClassDecl(s *parser.ClassDeclStmt) {
	cls, err := a.table.DeclareClass(s.Name, s.Token.Line, s.Token.Column)
	if err != nil {
		a.reporter.ReportSemanticError(i18n.T(i18n.ErrClassRedeclared, s.Name), s.Token.Line, s.Token.Column)
	}

	a.table.EnterScope()
	for _, member := range s.Members {
		switch m := member.(type) {
		case *parser.VarDeclStmt:
			fieldType := a.analyzeExpression(m.Value)
			if cls != nil {
				if err := cls.DeclareMember(m.Name, fieldType, m.Token.Line, m.Token.Column); err != nil {
					a.reporter.ReportSemanticError(
						i18n.T(i18n.ErrMemberRedeclared, s.Name, m.Name),
						m.Token.Line, m.Token.Column)
				}
			}
		case *parser.FunDeclStmt:
			if cls != nil {
				if err := cls.DeclareMember(m.Name, symbol.TypeMethod, m.Token.Line, m.Token.Column); err != nil {
					a.reporter.ReportSemanticError(
						i18n.T(i18n.ErrMemberRedeclared, s.Name, m.Name),
						m.Token.Line, m.Token.Column)
				}
			}
			a.analyzeFunDecl(m)
		default:
			a.reporter.ReportSemanticError(
				i18n.T(i18n.ErrInvalidClassMember, s.Name),
				s.Token.Line, s.Token.Column)
		}
	}
	a.table.ExitScope()
}

// analyzeMemberAssign 校验成员赋值语句
func (a *Analyzer) analyzeMemberAssign(s *parser.MemberAssignStmt) {
	objType := a.analyzeExpression(s.Object)
	valueType := a.analyzeExpression(s.Value)
	if objType == symbol.TypeError {
		return
	}

	cls := a.table.LookupClass(objType)
	if cls == nil {
		a.reporter.ReportSemanticError(i18n.T(i18n.ErrNotAClass, objType), s.Token.Line, s.Token.Column)
		return
	}
	mem := cls.LookupMember(s.Member)
	if mem == nil {
		a.reporter.ReportSemanticError(
			i18n.T(i18n.ErrMemberNotDeclared, cls.Name, s.Member),
			s.Token.Line, s.Token.Column)
		return
	}
	if valueType != symbol.TypeError && mem.Type != symbol.TypeError &&
		mem.Type != symbol.TypeObject && mem.Type != valueType {
		a.reporter.ReportSemanticError(
			i18n.T(i18n.ErrMemberTypeMismatch, valueType, s.Member, mem.Type),
			s.Token.Line, s.Token.Column)
	}
}

// analyzeExpression 推断表达式类型
//
// 永远返回一个类型标签。失败时报告一次并返回 "error"。
func (a *Analyzer) analyzeExpression(expr parser.Expression) string {
	switch e := expr.(type) {
	case *parser.IntegerLiteral:
		return symbol.TypeInt
	case *parser.BooleanLiteral:
		return symbol.TypeBoolean
	case *parser.StringLiteral:
		return symbol.TypeString
	case *parser.ListExpr:
		return symbol.TypeObject
	case *parser.VariableRef:
		sym := a.table.Lookup(e.Name)
		if sym == nil {
			a.reporter.ReportSemanticError(i18n.T(i18n.ErrVarNotDeclared, e.Name), e.Token.Line, e.Token.Column)
			return symbol.TypeError
		}
		return sym.Type
	case *parser.BinaryExpr:
		return a.analyzeBinary(e)
	case *parser.UnaryExpr:
		return a.analyzeUnary(e)
	case *parser.NewExpr:
		return a.analyzeNew(e)
	case *parser.MemberAccessExpr:
		return a.analyzeMemberAccess(e)
	case *parser.MethodCallExpr:
		return a.analyzeMethodCall(e)
	case *parser.CallExpr:
		return a.analyzeCall(e)
	default:
		return symbol.TypeError
	}
}

// analyzeBinary 推断二元表达式类型
func (a *Analyzer) analyzeBinary(e *parser.BinaryExpr) string {
	left := a.analyzeExpression(e.Left)
	right := a.analyzeExpression(e.Right)
	line, column := e.Token.Line, e.Token.Column

	// 任一操作数已经是 error 时直接传播，不再重复报告
	if left == symbol.TypeError || right == symbol.TypeError {
		return symbol.TypeError
	}

	switch e.Operator {
	case "+":
		// '+' 有重载：字符串拼接时 int 会被隐式转为字符串
		switch {
		case left == symbol.TypeString && (right == symbol.TypeString || right == symbol.TypeInt):
			return symbol.TypeString
		case left == symbol.TypeInt && right == symbol.TypeString:
			return symbol.TypeString
		case left == symbol.TypeInt && right == symbol.TypeInt:
			return symbol.TypeInt
		default:
			a.reporter.ReportSemanticError(i18n.T(i18n.ErrAddOperands, left, right), line, column)
			return symbol.TypeError
		}
	case "-", "*", "/", "%":
		if left == symbol.TypeInt && right == symbol.TypeInt {
			return symbol.TypeInt
		}
		a.reporter.ReportSemanticError(i18n.T(i18n.ErrIntOperands, e.Operator), line, column)
		return symbol.TypeError
	case "and", "or":
		if left == symbol.TypeBoolean && right == symbol.TypeBoolean {
			return symbol.TypeBoolean
		}
		a.reporter.ReportSemanticError(i18n.T(i18n.ErrBoolOperands, e.Operator), line, column)
		return symbol.TypeError
	case "==", "!=":
		if left != right {
			a.reporter.ReportSemanticError(i18n.T(i18n.ErrCompareMismatch, left, right), line, column)
			return symbol.TypeError
		}
		return symbol.TypeBoolean
	case "<", ">", "<=", ">=":
		if left == symbol.TypeInt && right == symbol.TypeInt {
			return symbol.TypeBoolean
		}
		a.reporter.ReportSemanticError(i18n.T(i18n.ErrIntOperands, e.Operator), line, column)
		return symbol.TypeError
	default:
		return symbol.TypeError
	}
}

// analyzeUnary 推断一元表达式类型
func (a *Analyzer) analyzeUnary(e *parser.UnaryExpr) string {
	operand := a.analyzeExpression(e.Operand)
	if operand == symbol.TypeError {
		return symbol.TypeError
	}
	if operand == symbol.TypeBoolean {
		return symbol.TypeBoolean
	}
	a.reporter.ReportSemanticError(i18n.T(i18n.ErrBoolOperands, e.Operator), e.Token.Line, e.Token.Column)
	return symbol.TypeError
}

// analyzeNew 推断类实例化类型
//
// 实参会被遍历以发现嵌套错误，但不做个数和类型检查。
func (a *Analyzer) analyzeNew(e *parser.NewExpr) string {
	for _, arg := range e.Args {
		a.analyzeExpression(arg)
	}
	if a.table.LookupClass(e.ClassName) == nil {
		a.reporter.ReportSemanticError(i18n.T(i18n.ErrClassNotDeclared, e.ClassName), e.Token.Line, e.Token.Column)
		return symbol.TypeError
	}
	return e.ClassName
}

// analyzeMemberAccess 推断成员访问类型
func (a *Analyzer) analyzeMemberAccess(e *parser.MemberAccessExpr) string {
	objType := a.analyzeExpression(e.Object)
	if objType == symbol.TypeError {
		return symbol.TypeError
	}
	cls := a.table.LookupClass(objType)
	if cls == nil {
		a.reporter.ReportSemanticError(i18n.T(i18n.ErrNotAClass, objType), e.Token.Line, e.Token.Column)
		return symbol.TypeError
	}
	mem := cls.LookupMember(e.Member)
	if mem == nil {
		a.reporter.ReportSemanticError(
			i18n.T(i18n.ErrMemberNotDeclared, cls.Name, e.Member),
			e.Token.Line, e.Token.Column)
		return symbol.TypeError
	}
	return mem.Type
}

// analyzeMethodCall 推断方法调用类型
//
// 接收者必须是声明过该成员的类；没有返回类型跟踪，
// 调用一律推断为 int。实参只遍历不检查。
func (a *Analyzer) analyzeMethodCall(e *parser.MethodCallExpr) string {
	objType := a.analyzeExpression(e.Object)
	for _, arg := range e.Args {
		a.analyzeExpression(arg)
	}
	if objType == symbol.TypeError {
		return symbol.TypeError
	}
	cls := a.table.LookupClass(objType)
	if cls == nil {
		a.reporter.ReportSemanticError(i18n.T(i18n.ErrNotAClass, objType), e.Token.Line, e.Token.Column)
		return symbol.TypeError
	}
	if !cls.IsMemberDeclared(e.Method) {
		a.reporter.ReportSemanticError(
			i18n.T(i18n.ErrMemberNotDeclared, cls.Name, e.Method),
			e.Token.Line, e.Token.Column)
		return symbol.TypeError
	}
	return symbol.TypeInt
}

// analyzeCall 推断函数调用类型
//
// 函数调用不做名字解析，一律推断为 int；
// 每个实参必须推断为 int。
func (a *Analyzer) analyzeCall(e *parser.CallExpr) string {
	for i, arg := range e.Args {
		argType := a.analyzeExpression(arg)
		if argType != symbol.TypeInt && argType != symbol.TypeError {
			a.reporter.ReportSemanticError(
				i18n.T(i18n.ErrArgNotInt, i+1, e.Name),
				e.Token.Line, e.Token.Column)
		}
	}
	return symbol.TypeInt
}
