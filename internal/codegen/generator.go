// Package codegen 把通过语义分析的 AST 降低为 JVM 指令并装配 class 文件
package codegen

import (
	"fmt"

	"github.com/tangzhangming/tava/internal/i18n"
	"github.com/tangzhangming/tava/internal/jasm"
	"github.com/tangzhangming/tava/internal/parser"
	"github.com/tangzhangming/tava/internal/symbol"
)

// VariableDetail 变量的代码生成视图：类型标签加局部变量槽号
type VariableDetail struct {
	Name string
	Type string
	Slot int
}

// Generator 代码生成器
//
// 只处理变量声明、变量赋值和打印三种语句，其他语句种类直接跳过。
// 输入默认已通过语义分析，这里再遇到的问题（重复槽绑定、未绑定
// 变量、无法降低的表达式）都是编译器自身的内部错误，以 error 返回
// 而不是用户诊断。
type Generator struct {
	vars     map[string]*VariableDetail
	nextSlot int
	code     []jasm.Instruction
}

// New 创建一个新的代码生成器
//
// 槽 0 被 main 的 args 参数占用，局部变量从槽 1 开始分配。
func New() *Generator {
	return &Generator{
		vars:     make(map[string]*VariableDetail),
		nextSlot: 1,
	}
}

// Generate 为整个程序生成 class 文件字节
func (g *Generator) Generate(program *parser.Program, className string) ([]byte, error) {
	for _, stmt := range program.Statements {
		if err := g.genStatement(stmt); err != nil {
			return nil, err
		}
	}
	g.emit(jasm.OP_RETURN, 0)

	if g.nextSlot > 256 {
		return nil, fmt.Errorf("%s", i18n.T(i18n.ErrTooManyLocals, g.nextSlot))
	}
	return jasm.Assemble(className, g.code, g.nextSlot)
}

// Instructions 返回已生成的指令序列（调试和测试用）
func (g *Generator) Instructions() []jasm.Instruction {
	return g.code
}

// Lookup 返回变量的代码生成视图，未绑定返回 nil
func (g *Generator) Lookup(name string) *VariableDetail {
	return g.vars[name]
}

func (g *Generator) emit(op jasm.Opcode, arg int) {
	g.code = append(g.code, jasm.Instruction{Op: op, Arg: arg})
}

// genStatement 为单条语句生成指令
func (g *Generator) genStatement(stmt parser.Statement) error {
	switch s := stmt.(type) {
	case *parser.VarDeclStmt:
		return g.genVarDecl(s)
	case *parser.AssignStmt:
		return g.genAssign(s)
	case *parser.PrintStmt:
		return g.genPrint(s)
	default:
		// if/while/for/fun/class 等暂不降低，静默跳过
		return nil
	}
}

// genVarDecl 变量声明：求值表达式，分配新槽，存入
//
// list 初始化得到引用值，用 astore 存储；其余一律按 int 处理。
func (g *Generator) genVarDecl(s *parser.VarDeclStmt) error {
	if _, exists := g.vars[s.Name]; exists {
		return fmt.Errorf("%s", i18n.T(i18n.ErrSlotRedeclared, s.Name))
	}
	if err := g.genExpression(s.Value); err != nil {
		return err
	}

	slot := g.nextSlot
	g.nextSlot++

	if _, isList := s.Value.(*parser.ListExpr); isList {
		g.vars[s.Name] = &VariableDetail{Name: s.Name, Type: symbol.TypeObject, Slot: slot}
		g.emit(jasm.OP_ASTORE, slot)
		return nil
	}
	g.vars[s.Name] = &VariableDetail{Name: s.Name, Type: symbol.TypeInt, Slot: slot}
	g.emit(jasm.OP_ISTORE, slot)
	return nil
}

// genAssign 变量赋值：求值表达式，存入已有槽
func (g *Generator) genAssign(s *parser.AssignStmt) error {
	detail, exists := g.vars[s.Name]
	if !exists {
		return fmt.Errorf("%s", i18n.T(i18n.ErrAssignUnbound, s.Name))
	}
	if err := g.genExpression(s.Value); err != nil {
		return err
	}
	g.emit(jasm.OP_ISTORE, detail.Slot)
	return nil
}

// genPrint 打印语句
//
// 先求值再取 System.out，用 swap 把接收者换到值下面，
// 这样表达式指令保持在最前而无需临时槽。
func (g *Generator) genPrint(s *parser.PrintStmt) error {
	if err := g.genExpression(s.Value); err != nil {
		return err
	}
	g.emit(jasm.OP_GETSTATIC_OUT, 0)
	g.emit(jasm.OP_SWAP, 0)
	g.emit(jasm.OP_PRINTLN, 0)
	return nil
}

// genExpression 为表达式生成指令，结果留在操作数栈顶
func (g *Generator) genExpression(expr parser.Expression) error {
	switch e := expr.(type) {
	case *parser.IntegerLiteral:
		g.emit(jasm.OP_ICONST, e.Value)
		return nil
	case *parser.VariableRef:
		detail, exists := g.vars[e.Name]
		if !exists {
			return fmt.Errorf("%s", i18n.T(i18n.ErrSlotUnbound, e.Name))
		}
		g.emit(jasm.OP_ILOAD, detail.Slot)
		return nil
	case *parser.ListExpr:
		g.emit(jasm.OP_NEWLIST, 0)
		return nil
	case *parser.BinaryExpr:
		return g.genBinary(e)
	default:
		return fmt.Errorf("%s", i18n.T(i18n.ErrUnsupportedExpr, nodeName(expr)))
	}
}

// genBinary 二元算术：左、右、运算
func (g *Generator) genBinary(e *parser.BinaryExpr) error {
	var op jasm.Opcode
	switch e.Operator {
	case "+":
		op = jasm.OP_IADD
	case "-":
		op = jasm.OP_ISUB
	case "*":
		op = jasm.OP_IMUL
	case "/":
		op = jasm.OP_IDIV
	case "%":
		op = jasm.OP_IREM
	default:
		return fmt.Errorf("%s", i18n.T(i18n.ErrUnsupportedExpr, "'"+e.Operator+"'"))
	}
	if err := g.genExpression(e.Left); err != nil {
		return err
	}
	if err := g.genExpression(e.Right); err != nil {
		return err
	}
	g.emit(op, 0)
	return nil
}

// nodeName 表达式节点的人类可读名称，用于内部错误消息
func nodeName(expr parser.Expression) string {
	switch expr.(type) {
	case *parser.BooleanLiteral:
		return "boolean"
	case *parser.StringLiteral:
		return "string"
	case *parser.UnaryExpr:
		return "unary"
	case *parser.CallExpr:
		return "call"
	case *parser.NewExpr:
		return "new"
	case *parser.MemberAccessExpr:
		return "member access"
	case *parser.MethodCallExpr:
		return "method call"
	default:
		return fmt.Sprintf("%T", expr)
	}
}
