// Package jasm 生成 JVM class 文件
//
// 输入是一串面向栈机的抽象指令，输出是可以直接被 java 加载执行的
// 字节码。只支持 tava 编译器用到的指令子集。
package jasm

import "fmt"

// Opcode 抽象指令操作码
type Opcode int

const (
	OP_ICONST        Opcode = iota // 压入整数常量
	OP_ILOAD                       // 加载整数局部变量
	OP_ISTORE                      // 存储整数局部变量
	OP_ASTORE                      // 存储引用局部变量
	OP_IADD                        // 整数加法
	OP_ISUB                        // 整数减法
	OP_IMUL                        // 整数乘法
	OP_IDIV                        // 整数除法
	OP_IREM                        // 整数取余
	OP_NEWLIST                     // 构造一个空 ArrayList
	OP_GETSTATIC_OUT               // 压入 System.out
	OP_SWAP                        // 交换栈顶两个值
	OP_PRINTLN                     // 调用 println(int)
	OP_RETURN                      // 从 main 返回
)

// Instruction 一条抽象指令
//
// Arg 只对 OP_ICONST（常量值）和 OP_ILOAD/OP_ISTORE/OP_ASTORE
// （局部变量槽号）有意义。
type Instruction struct {
	Op  Opcode
	Arg int
}

// String 指令的助记符表示
func (i Instruction) String() string {
	switch i.Op {
	case OP_ICONST:
		return fmt.Sprintf("iconst %d", i.Arg)
	case OP_ILOAD:
		return fmt.Sprintf("iload %d", i.Arg)
	case OP_ISTORE:
		return fmt.Sprintf("istore %d", i.Arg)
	case OP_ASTORE:
		return fmt.Sprintf("astore %d", i.Arg)
	case OP_IADD:
		return "iadd"
	case OP_ISUB:
		return "isub"
	case OP_IMUL:
		return "imul"
	case OP_IDIV:
		return "idiv"
	case OP_IREM:
		return "irem"
	case OP_NEWLIST:
		return "newlist"
	case OP_GETSTATIC_OUT:
		return "getstatic System.out"
	case OP_SWAP:
		return "swap"
	case OP_PRINTLN:
		return "println"
	case OP_RETURN:
		return "return"
	default:
		return fmt.Sprintf("op(%d)", int(i.Op))
	}
}

// stackEffect 返回指令的栈峰值增量和净增量
//
// OP_NEWLIST 展开为 new/dup/invokespecial：峰值 +2，净 +1。
func (i Instruction) stackEffect() (peak, net int) {
	switch i.Op {
	case OP_ICONST, OP_ILOAD, OP_GETSTATIC_OUT:
		return 1, 1
	case OP_ISTORE, OP_ASTORE:
		return 0, -1
	case OP_IADD, OP_ISUB, OP_IMUL, OP_IDIV, OP_IREM:
		return 0, -1
	case OP_NEWLIST:
		return 2, 1
	case OP_SWAP:
		return 0, 0
	case OP_PRINTLN:
		return 0, -2
	case OP_RETURN:
		return 0, 0
	default:
		return 0, 0
	}
}

// MaxStack 计算指令序列需要的最大操作数栈深度
func MaxStack(code []Instruction) int {
	depth, max := 0, 0
	for _, ins := range code {
		peak, net := ins.stackEffect()
		if depth+peak > max {
			max = depth + peak
		}
		depth += net
		if depth > max {
			max = depth
		}
	}
	return max
}
