package parser

import (
	"strconv"
	"strings"

	"github.com/tangzhangming/tava/internal/lexer"
)

// Node AST 节点接口
type Node interface {
	TokenLiteral() string
	String() string // 节点的字符串表示（用于调试）
}

// Statement 语句接口
type Statement interface {
	Node
	statementNode()
}

// Expression 表达式接口
type Expression interface {
	Node
	expressionNode()
}

// Program 表示一个编译单元：顶层语句的有序序列
type Program struct {
	Statements []Statement
}

func (p *Program) TokenLiteral() string { return "program" }

func (p *Program) String() string {
	var sb strings.Builder
	for _, stmt := range p.Statements {
		sb.WriteString(stmt.String())
		sb.WriteString("\n")
	}
	return sb.String()
}

// ============================================================================
// 表达式节点
// ============================================================================

// IntegerLiteral 整数字面量
type IntegerLiteral struct {
	Token lexer.Token
	Value int
}

func (i *IntegerLiteral) TokenLiteral() string { return i.Token.Literal }
func (i *IntegerLiteral) String() string       { return strconv.Itoa(i.Value) }
func (i *IntegerLiteral) expressionNode()      {}

// BooleanLiteral 布尔字面量
type BooleanLiteral struct {
	Token lexer.Token
	Value bool
}

func (b *BooleanLiteral) TokenLiteral() string { return b.Token.Literal }
func (b *BooleanLiteral) String() string       { return strconv.FormatBool(b.Value) }
func (b *BooleanLiteral) expressionNode()      {}

// StringLiteral 字符串字面量
type StringLiteral struct {
	Token lexer.Token
	Value string
}

func (s *StringLiteral) TokenLiteral() string { return s.Token.Literal }
func (s *StringLiteral) String() string       { return strconv.Quote(s.Value) }
func (s *StringLiteral) expressionNode()      {}

// VariableRef 变量引用
type VariableRef struct {
	Token lexer.Token
	Name  string
}

func (v *VariableRef) TokenLiteral() string { return v.Token.Literal }
func (v *VariableRef) String() string       { return v.Name }
func (v *VariableRef) expressionNode()      {}

// BinaryExpr 二元表达式（算术、逻辑、比较）
type BinaryExpr struct {
	Token    lexer.Token // 运算符 token
	Operator string
	Left     Expression
	Right    Expression
}

func (b *BinaryExpr) TokenLiteral() string { return b.Token.Literal }
func (b *BinaryExpr) String() string {
	return "(" + b.Left.String() + " " + b.Operator + " " + b.Right.String() + ")"
}
func (b *BinaryExpr) expressionNode() {}

// UnaryExpr 一元表达式（not）
type UnaryExpr struct {
	Token    lexer.Token // 运算符 token
	Operator string
	Operand  Expression
}

func (u *UnaryExpr) TokenLiteral() string { return u.Token.Literal }
func (u *UnaryExpr) String() string       { return "(" + u.Operator + " " + u.Operand.String() + ")" }
func (u *UnaryExpr) expressionNode()      {}

// ListExpr 列表构造（通用引用类型）
type ListExpr struct {
	Token lexer.Token // list token
}

func (l *ListExpr) TokenLiteral() string { return l.Token.Literal }
func (l *ListExpr) String() string       { return "list" }
func (l *ListExpr) expressionNode()      {}

// CallExpr 函数调用
type CallExpr struct {
	Token lexer.Token // 函数名 token
	Name  string
	Args  []Expression
}

func (c *CallExpr) TokenLiteral() string { return c.Token.Literal }
func (c *CallExpr) String() string       { return c.Name + "(" + exprList(c.Args) + ")" }
func (c *CallExpr) expressionNode()      {}

// NewExpr 类实例化
type NewExpr struct {
	Token     lexer.Token // new token
	ClassName string
	Args      []Expression
}

func (n *NewExpr) TokenLiteral() string { return n.Token.Literal }
func (n *NewExpr) String() string       { return "new " + n.ClassName + "(" + exprList(n.Args) + ")" }
func (n *NewExpr) expressionNode()      {}

// MemberAccessExpr 成员访问
type MemberAccessExpr struct {
	Token  lexer.Token // . token
	Object Expression
	Member string
}

func (m *MemberAccessExpr) TokenLiteral() string { return m.Token.Literal }
func (m *MemberAccessExpr) String() string       { return m.Object.String() + "." + m.Member }
func (m *MemberAccessExpr) expressionNode()      {}

// MethodCallExpr 方法调用
type MethodCallExpr struct {
	Token  lexer.Token // . token
	Object Expression
	Method string
	Args   []Expression
}

func (m *MethodCallExpr) TokenLiteral() string { return m.Token.Literal }
func (m *MethodCallExpr) String() string {
	return m.Object.String() + "." + m.Method + "(" + exprList(m.Args) + ")"
}
func (m *MethodCallExpr) expressionNode() {}

// exprList 渲染逗号分隔的表达式列表
func exprList(exprs []Expression) string {
	parts := make([]string, 0, len(exprs))
	for _, e := range exprs {
		parts = append(parts, e.String())
	}
	return strings.Join(parts, ", ")
}

// ============================================================================
// 语句节点
// ============================================================================

// VarDeclStmt 变量声明
type VarDeclStmt struct {
	Token lexer.Token // var token
	Name  string
	Value Expression
}

func (v *VarDeclStmt) TokenLiteral() string { return v.Token.Literal }
func (v *VarDeclStmt) String() string       { return "var " + v.Name + " = " + v.Value.String() }
func (v *VarDeclStmt) statementNode()       {}

// AssignStmt 变量赋值
type AssignStmt struct {
	Token lexer.Token // 变量名 token
	Name  string
	Value Expression
}

func (a *AssignStmt) TokenLiteral() string { return a.Token.Literal }
func (a *AssignStmt) String() string       { return a.Name + " = " + a.Value.String() }
func (a *AssignStmt) statementNode()       {}

// PrintStmt 打印语句
type PrintStmt struct {
	Token lexer.Token // print token
	Value Expression
}

func (p *PrintStmt) TokenLiteral() string { return p.Token.Literal }
func (p *PrintStmt) String() string       { return "print " + p.Value.String() }
func (p *PrintStmt) statementNode()       {}

// BlockStmt 语句块
type BlockStmt struct {
	Token      lexer.Token // { token
	Statements []Statement
}

func (b *BlockStmt) TokenLiteral() string { return b.Token.Literal }
func (b *BlockStmt) String() string {
	var sb strings.Builder
	sb.WriteString("{ ")
	for _, stmt := range b.Statements {
		sb.WriteString(stmt.String())
		sb.WriteString("; ")
	}
	sb.WriteString("}")
	return sb.String()
}
func (b *BlockStmt) statementNode() {}

// IfStmt if/else 语句
type IfStmt struct {
	Token     lexer.Token // if token
	Condition Expression
	Then      *BlockStmt
	Else      *BlockStmt // 可选
}

func (i *IfStmt) TokenLiteral() string { return i.Token.Literal }
func (i *IfStmt) String() string {
	s := "if " + i.Condition.String() + " " + i.Then.String()
	if i.Else != nil {
		s += " else " + i.Else.String()
	}
	return s
}
func (i *IfStmt) statementNode() {}

// WhileStmt while 循环
type WhileStmt struct {
	Token     lexer.Token // while token
	Condition Expression
	Body      *BlockStmt
}

func (w *WhileStmt) TokenLiteral() string { return w.Token.Literal }
func (w *WhileStmt) String() string {
	return "while " + w.Condition.String() + " " + w.Body.String()
}
func (w *WhileStmt) statementNode() {}

// ForStmt for 循环
type ForStmt struct {
	Token     lexer.Token // for token
	Init      Statement   // 可选
	Condition Expression
	Update    Statement // 可选
	Body      *BlockStmt
}

func (f *ForStmt) TokenLiteral() string { return f.Token.Literal }
func (f *ForStmt) String() string {
	s := "for "
	if f.Init != nil {
		s += f.Init.String()
	}
	s += "; " + f.Condition.String() + "; "
	if f.Update != nil {
		s += f.Update.String()
	}
	return s + " " + f.Body.String()
}
func (f *ForStmt) statementNode() {}

// FunDeclStmt 函数声明
type FunDeclStmt struct {
	Token  lexer.Token // fun token
	Name   string
	Params []string
	Body   *BlockStmt
}

func (f *FunDeclStmt) TokenLiteral() string { return f.Token.Literal }
func (f *FunDeclStmt) String() string {
	return "fun " + f.Name + "(" + strings.Join(f.Params, ", ") + ") " + f.Body.String()
}
func (f *FunDeclStmt) statementNode() {}

// ClassDeclStmt 类声明
type ClassDeclStmt struct {
	Token   lexer.Token // class token
	Name    string
	Members []Statement
}

func (c *ClassDeclStmt) TokenLiteral() string { return c.Token.Literal }
func (c *ClassDeclStmt) String() string {
	var sb strings.Builder
	sb.WriteString("class " + c.Name + " { ")
	for _, m := range c.Members {
		sb.WriteString(m.String())
		sb.WriteString("; ")
	}
	sb.WriteString("}")
	return sb.String()
}
func (c *ClassDeclStmt) statementNode() {}

// MemberAssignStmt 成员赋值语句
type MemberAssignStmt struct {
	Token  lexer.Token // 对象名 token
	Object Expression
	Member string
	Value  Expression
}

func (m *MemberAssignStmt) TokenLiteral() string { return m.Token.Literal }
func (m *MemberAssignStmt) String() string {
	return m.Object.String() + "." + m.Member + " = " + m.Value.String()
}
func (m *MemberAssignStmt) statementNode() {}

// ExprStmt 表达式语句（成员访问、方法调用、函数调用）
type ExprStmt struct {
	Token      lexer.Token
	Expression Expression
}

func (e *ExprStmt) TokenLiteral() string { return e.Token.Literal }
func (e *ExprStmt) String() string       { return e.Expression.String() }
func (e *ExprStmt) statementNode()       {}
