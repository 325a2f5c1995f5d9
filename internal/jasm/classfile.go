package jasm

import (
	"bytes"
	"encoding/binary"
	"fmt"
)

// class 文件常量池 tag
const (
	tagUtf8        = 1
	tagInteger     = 3
	tagClass       = 7
	tagFieldref    = 9
	tagMethodref   = 10
	tagNameAndType = 12
)

// JVM 字节码操作码
const (
	bcIconstM1      = 0x02
	bcIconst0       = 0x03
	bcBipush        = 0x10
	bcSipush        = 0x11
	bcLdc           = 0x12
	bcLdcW          = 0x13
	bcIload         = 0x15
	bcAload0        = 0x2a
	bcIstore        = 0x36
	bcAstore        = 0x3a
	bcIload0        = 0x1a
	bcIstore0       = 0x3b
	bcAstore0       = 0x4b
	bcDup           = 0x59
	bcSwap          = 0x5f
	bcIadd          = 0x60
	bcIsub          = 0x64
	bcImul          = 0x68
	bcIdiv          = 0x6c
	bcIrem          = 0x70
	bcReturn        = 0xb1
	bcGetstatic     = 0xb2
	bcInvokevirtual = 0xb6
	bcInvokespecial = 0xb7
	bcNew           = 0xbb
)

// constPool 常量池构造器，相同条目只登记一次
type constPool struct {
	buf   bytes.Buffer
	count uint16 // 已写入的条目数（常量池索引从 1 起）
	index map[string]uint16
}

func newConstPool() *constPool {
	return &constPool{index: make(map[string]uint16)}
}

// add 写入一个新条目并返回其索引
func (p *constPool) add(key string, write func(*bytes.Buffer)) uint16 {
	if idx, ok := p.index[key]; ok {
		return idx
	}
	p.count++
	write(&p.buf)
	p.index[key] = p.count
	return p.count
}

func (p *constPool) utf8(s string) uint16 {
	return p.add("u:"+s, func(b *bytes.Buffer) {
		b.WriteByte(tagUtf8)
		writeU16(b, uint16(len(s)))
		b.WriteString(s)
	})
}

func (p *constPool) class(name string) uint16 {
	nameIdx := p.utf8(name)
	return p.add("c:"+name, func(b *bytes.Buffer) {
		b.WriteByte(tagClass)
		writeU16(b, nameIdx)
	})
}

func (p *constPool) integer(v int32) uint16 {
	return p.add(fmt.Sprintf("i:%d", v), func(b *bytes.Buffer) {
		b.WriteByte(tagInteger)
		writeU32(b, uint32(v))
	})
}

func (p *constPool) nameAndType(name, descriptor string) uint16 {
	nameIdx := p.utf8(name)
	descIdx := p.utf8(descriptor)
	return p.add("nt:"+name+":"+descriptor, func(b *bytes.Buffer) {
		b.WriteByte(tagNameAndType)
		writeU16(b, nameIdx)
		writeU16(b, descIdx)
	})
}

func (p *constPool) fieldref(class, name, descriptor string) uint16 {
	classIdx := p.class(class)
	ntIdx := p.nameAndType(name, descriptor)
	return p.add("f:"+class+"."+name+":"+descriptor, func(b *bytes.Buffer) {
		b.WriteByte(tagFieldref)
		writeU16(b, classIdx)
		writeU16(b, ntIdx)
	})
}

func (p *constPool) methodref(class, name, descriptor string) uint16 {
	classIdx := p.class(class)
	ntIdx := p.nameAndType(name, descriptor)
	return p.add("m:"+class+"."+name+":"+descriptor, func(b *bytes.Buffer) {
		b.WriteByte(tagMethodref)
		writeU16(b, classIdx)
		writeU16(b, ntIdx)
	})
}

func writeU16(b *bytes.Buffer, v uint16) {
	binary.Write(b, binary.BigEndian, v)
}

func writeU32(b *bytes.Buffer, v uint32) {
	binary.Write(b, binary.BigEndian, v)
}

// Assemble 把抽象指令序列装配成一个完整的 class 文件
//
// 生成的类包含一个调用 Object 构造器的默认 <init> 和一个
// public static void main，指令序列就是 main 的方法体。
// maxLocals 是局部变量表大小（槽 0 被 args 参数占用）。
func Assemble(className string, code []Instruction, maxLocals int) ([]byte, error) {
	pool := newConstPool()

	thisClass := pool.class(className)
	superClass := pool.class("java/lang/Object")
	objectInit := pool.methodref("java/lang/Object", "<init>", "()V")
	outField := pool.fieldref("java/lang/System", "out", "Ljava/io/PrintStream;")
	printlnRef := pool.methodref("java/io/PrintStream", "println", "(I)V")
	arrayList := pool.class("java/util/ArrayList")
	arrayListInit := pool.methodref("java/util/ArrayList", "<init>", "()V")

	body, err := assembleCode(code, pool, outField, printlnRef, arrayList, arrayListInit)
	if err != nil {
		return nil, err
	}

	initName := pool.utf8("<init>")
	initDesc := pool.utf8("()V")
	codeAttr := pool.utf8("Code")
	mainName := pool.utf8("main")
	mainDesc := pool.utf8("([Ljava/lang/String;)V")

	var out bytes.Buffer
	writeU32(&out, 0xCAFEBABE)
	writeU16(&out, 0)  // minor version
	writeU16(&out, 52) // major version: Java 8
	writeU16(&out, pool.count+1)
	out.Write(pool.buf.Bytes())

	writeU16(&out, 0x0021) // ACC_PUBLIC | ACC_SUPER
	writeU16(&out, thisClass)
	writeU16(&out, superClass)
	writeU16(&out, 0) // interfaces
	writeU16(&out, 0) // fields
	writeU16(&out, 2) // methods

	// <init>
	initBody := []byte{bcAload0, bcInvokespecial, byte(objectInit >> 8), byte(objectInit), bcReturn}
	writeMethod(&out, 0x0001, initName, initDesc, codeAttr, 1, 1, initBody)

	// main
	maxStack := MaxStack(code)
	if maxStack < 1 {
		maxStack = 1
	}
	writeMethod(&out, 0x0009, mainName, mainDesc, codeAttr, maxStack, maxLocals, body)

	writeU16(&out, 0) // class attributes
	return out.Bytes(), nil
}

// writeMethod 写入一个 method_info，带单个 Code 属性
func writeMethod(out *bytes.Buffer, access uint16, nameIdx, descIdx, codeAttrIdx uint16, maxStack, maxLocals int, body []byte) {
	writeU16(out, access)
	writeU16(out, nameIdx)
	writeU16(out, descIdx)
	writeU16(out, 1) // attributes

	writeU16(out, codeAttrIdx)
	writeU32(out, uint32(12+len(body))) // attribute_length
	writeU16(out, uint16(maxStack))
	writeU16(out, uint16(maxLocals))
	writeU32(out, uint32(len(body)))
	out.Write(body)
	writeU16(out, 0) // exception table
	writeU16(out, 0) // code attributes
}

// assembleCode 把抽象指令翻译成 JVM 字节码
func assembleCode(code []Instruction, pool *constPool, outField, printlnRef, arrayList, arrayListInit uint16) ([]byte, error) {
	var b bytes.Buffer
	for _, ins := range code {
		switch ins.Op {
		case OP_ICONST:
			emitIconst(&b, pool, ins.Arg)
		case OP_ILOAD:
			if err := emitLocal(&b, bcIload0, bcIload, ins.Arg); err != nil {
				return nil, err
			}
		case OP_ISTORE:
			if err := emitLocal(&b, bcIstore0, bcIstore, ins.Arg); err != nil {
				return nil, err
			}
		case OP_ASTORE:
			if err := emitLocal(&b, bcAstore0, bcAstore, ins.Arg); err != nil {
				return nil, err
			}
		case OP_IADD:
			b.WriteByte(bcIadd)
		case OP_ISUB:
			b.WriteByte(bcIsub)
		case OP_IMUL:
			b.WriteByte(bcImul)
		case OP_IDIV:
			b.WriteByte(bcIdiv)
		case OP_IREM:
			b.WriteByte(bcIrem)
		case OP_NEWLIST:
			b.WriteByte(bcNew)
			writeU16(&b, arrayList)
			b.WriteByte(bcDup)
			b.WriteByte(bcInvokespecial)
			writeU16(&b, arrayListInit)
		case OP_GETSTATIC_OUT:
			b.WriteByte(bcGetstatic)
			writeU16(&b, outField)
		case OP_SWAP:
			b.WriteByte(bcSwap)
		case OP_PRINTLN:
			b.WriteByte(bcInvokevirtual)
			writeU16(&b, printlnRef)
		case OP_RETURN:
			b.WriteByte(bcReturn)
		default:
			return nil, fmt.Errorf("jasm: unknown opcode %d", int(ins.Op))
		}
	}
	return b.Bytes(), nil
}

// emitIconst 按常量大小选择最短的压栈指令
func emitIconst(b *bytes.Buffer, pool *constPool, v int) {
	switch {
	case v >= -1 && v <= 5:
		b.WriteByte(byte(bcIconst0 + v))
	case v >= -128 && v <= 127:
		b.WriteByte(bcBipush)
		b.WriteByte(byte(int8(v)))
	case v >= -32768 && v <= 32767:
		b.WriteByte(bcSipush)
		writeU16(b, uint16(int16(v)))
	default:
		idx := pool.integer(int32(v))
		if idx <= 255 {
			b.WriteByte(bcLdc)
			b.WriteByte(byte(idx))
		} else {
			b.WriteByte(bcLdcW)
			writeU16(b, idx)
		}
	}
}

// emitLocal 按槽号选择短形式或带操作数形式
func emitLocal(b *bytes.Buffer, shortBase, long byte, slot int) error {
	if slot < 0 || slot > 255 {
		return fmt.Errorf("jasm: local variable slot %d out of range", slot)
	}
	if slot <= 3 {
		b.WriteByte(shortBase + byte(slot))
		return nil
	}
	b.WriteByte(long)
	b.WriteByte(byte(slot))
	return nil
}
