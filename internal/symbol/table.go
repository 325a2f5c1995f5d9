// Package symbol 实现作用域栈符号表和全局类表
package symbol

import (
	"fmt"
)

// 结构化类型标签。不是封闭的类型系统：
// 类的实例类型直接用类名作标签。
const (
	TypeInt     = "int"
	TypeBoolean = "boolean"
	TypeString  = "string"
	TypeObject  = "Object" // list 等引用类型的统称
	TypeError   = "error"  // 已报告过的错误，下游不再重复报告
	TypeMethod  = "method" // 类中可调用的成员
)

// Symbol 表示一条声明记录
type Symbol struct {
	Name   string // 名称
	Type   string // 类型标签
	Line   int    // 声明行号
	Column int    // 声明列号
}

// ClassSymbol 表示一个已声明的类
//
// 字段和方法共用一张成员表，同名成员只能出现一次。
type ClassSymbol struct {
	Name    string
	Line    int
	Column  int
	members map[string]*Symbol
}

// DeclareMember 在成员表中登记一个成员
func (c *ClassSymbol) DeclareMember(name, typ string, line, column int) error {
	if _, exists := c.members[name]; exists {
		return fmt.Errorf("member %q already declared in class %q", name, c.Name)
	}
	c.members[name] = &Symbol{Name: name, Type: typ, Line: line, Column: column}
	return nil
}

// LookupMember 查找成员，未找到返回 nil
func (c *ClassSymbol) LookupMember(name string) *Symbol {
	return c.members[name]
}

// IsMemberDeclared 检查成员是否已声明
func (c *ClassSymbol) IsMemberDeclared(name string) bool {
	_, ok := c.members[name]
	return ok
}

// Table 符号表
//
// 变量放在一个作用域栈里：每个作用域是一张名字到符号的平面映射，
// 查找从最内层向外走，返回第一个匹配（允许遮蔽）。
// 类放在栈之外的一张平面全局表里，类不随块作用域生灭。
// 栈上始终至少有全局作用域，全局作用域不可退出。
type Table struct {
	scopes  []map[string]*Symbol
	classes map[string]*ClassSymbol
}

// New 创建一个新的符号表，自带全局作用域
func New() *Table {
	return &Table{
		scopes:  []map[string]*Symbol{make(map[string]*Symbol)},
		classes: make(map[string]*ClassSymbol),
	}
}

// EnterScope 压入一个空作用域
func (t *Table) EnterScope() {
	t.scopes = append(t.scopes, make(map[string]*Symbol))
}

// ExitScope 弹出最内层作用域
//
// 只剩全局作用域时 panic：退出全局作用域是编译器自身的
// 契约错误，不是用户程序的错误。
func (t *Table) ExitScope() {
	if len(t.scopes) == 1 {
		panic("symbol: cannot exit the global scope")
	}
	t.scopes = t.scopes[:len(t.scopes)-1]
}

// Depth 返回当前作用域深度（全局作用域为 1）
func (t *Table) Depth() int {
	return len(t.scopes)
}

// Declare 在最内层作用域登记一个符号
//
// 同一作用域内重名返回错误；跨作用域遮蔽是允许的。
func (t *Table) Declare(name, typ string, line, column int) error {
	scope := t.scopes[len(t.scopes)-1]
	if _, exists := scope[name]; exists {
		return fmt.Errorf("symbol %q already declared in this scope", name)
	}
	scope[name] = &Symbol{Name: name, Type: typ, Line: line, Column: column}
	return nil
}

// Lookup 从最内层向外查找符号，返回第一个匹配，未找到返回 nil
func (t *Table) Lookup(name string) *Symbol {
	for i := len(t.scopes) - 1; i >= 0; i-- {
		if sym, ok := t.scopes[i][name]; ok {
			return sym
		}
	}
	return nil
}

// IsDeclaredInCurrentScope 只检查最内层作用域
func (t *Table) IsDeclaredInCurrentScope(name string) bool {
	_, ok := t.scopes[len(t.scopes)-1][name]
	return ok
}

// DeclareClass 在全局类表登记一个类
func (t *Table) DeclareClass(name string, line, column int) (*ClassSymbol, error) {
	if _, exists := t.classes[name]; exists {
		return nil, fmt.Errorf("class %q already declared", name)
	}
	cls := &ClassSymbol{
		Name:    name,
		Line:    line,
		Column:  column,
		members: make(map[string]*Symbol),
	}
	t.classes[name] = cls
	return cls, nil
}

// LookupClass 查找类，未找到返回 nil
func (t *Table) LookupClass(name string) *ClassSymbol {
	return t.classes[name]
}
