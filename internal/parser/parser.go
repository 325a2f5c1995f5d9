package parser

import (
	"strconv"

	"github.com/tangzhangming/tava/internal/i18n"
	"github.com/tangzhangming/tava/internal/lexer"
	"github.com/tangzhangming/tava/internal/report"
)

// Parser 语法分析器
//
// 语句用递归下降解析，表达式用运算符优先级爬升解析。
// 语法错误通过 reporter 记录，解析从不中断：consume 在不匹配时
// 报告错误并照常前进，未知语句则替换为合成的 print 0 语句。
type Parser struct {
	tokens    []lexer.Token
	pos       int
	curToken  lexer.Token
	peekToken lexer.Token
	reporter  *report.Reporter
}

// New 创建一个新的语法分析器
func New(tokens []lexer.Token, reporter *report.Reporter) *Parser {
	p := &Parser{tokens: tokens, reporter: reporter}
	p.curToken = p.tokenAt(0)
	p.peekToken = p.tokenAt(1)
	return p
}

// Parse 解析一段源码，便捷入口
func Parse(source string, reporter *report.Reporter) *Program {
	tokens := lexer.Tokenize(source, reporter)
	return New(tokens, reporter).ParseProgram()
}

// tokenAt 返回下标处的 token，越界时返回末尾的 EOF
func (p *Parser) tokenAt(i int) lexer.Token {
	if i < len(p.tokens) {
		return p.tokens[i]
	}
	if len(p.tokens) > 0 {
		return p.tokens[len(p.tokens)-1]
	}
	return lexer.Token{Type: lexer.TOKEN_EOF, Line: 1, Column: 1}
}

// nextToken 前进到下一个 token，到达 EOF 后不再前进
func (p *Parser) nextToken() {
	if p.curToken.Type == lexer.TOKEN_EOF {
		return
	}
	p.pos++
	p.curToken = p.tokenAt(p.pos)
	p.peekToken = p.tokenAt(p.pos + 1)
}

// curTokenIs 检查当前 token 类型
func (p *Parser) curTokenIs(t lexer.TokenType) bool {
	return p.curToken.Type == t
}

// peekTokenIs 检查下一个 token 类型
func (p *Parser) peekTokenIs(t lexer.TokenType) bool {
	return p.peekToken.Type == t
}

// consume 消费一个期望类型的 token
//
// 当前 token 匹配时前进并返回它；否则在当前位置记录语法错误，
// 仍然前进并返回当前 token，保证解析总是向前推进。
func (p *Parser) consume(t lexer.TokenType) lexer.Token {
	tok := p.curToken
	if tok.Type != t {
		p.reporter.ReportSyntaxError(
			i18n.T(i18n.ErrExpectedToken, lexer.TokenTypeName(t), lexer.TokenTypeName(tok.Type)),
			tok.Line, tok.Column)
	}
	p.nextToken()
	return tok
}

// skipSemicolon 消费可选的语句结尾分号
func (p *Parser) skipSemicolon() {
	if p.curTokenIs(lexer.TOKEN_SEMICOLON) {
		p.nextToken()
	}
}

// ParseProgram 解析整个程序
func (p *Parser) ParseProgram() *Program {
	program := &Program{}
	for !p.curTokenIs(lexer.TOKEN_EOF) {
		program.Statements = append(program.Statements, p.parseStatement())
	}
	return program
}

// parseStatement 按起始 token 分派语句解析
func (p *Parser) parseStatement() Statement {
	switch p.curToken.Type {
	case lexer.TOKEN_VAR:
		return p.parseVarDecl()
	case lexer.TOKEN_PRINT:
		return p.parsePrintStmt()
	case lexer.TOKEN_IF:
		return p.parseIfStmt()
	case lexer.TOKEN_WHILE:
		return p.parseWhileStmt()
	case lexer.TOKEN_FOR:
		return p.parseForStmt()
	case lexer.TOKEN_FUN:
		return p.parseFunDecl()
	case lexer.TOKEN_CLASS:
		return p.parseClassDecl()
	case lexer.TOKEN_IDENT:
		return p.parseSimpleStatement()
	default:
		// 报告错误并替换为合成的 print 0，让后续语句还能继续解析
		tok := p.curToken
		p.reporter.ReportSyntaxError(
			i18n.T(i18n.ErrUnexpectedStmt, lexer.TokenTypeName(tok.Type)),
			tok.Line, tok.Column)
		p.nextToken()
		return &PrintStmt{Token: tok, Value: &IntegerLiteral{Token: tok, Value: 0}}
	}
}

// parseVarDecl 解析变量声明: var name = expr
func (p *Parser) parseVarDecl() Statement {
	tok := p.curToken
	p.nextToken()
	nameTok := p.consume(lexer.TOKEN_IDENT)
	p.consume(lexer.TOKEN_ASSIGN)
	value := p.parseExpression(LOWEST)
	p.skipSemicolon()
	return &VarDeclStmt{Token: tok, Name: nameTok.Literal, Value: value}
}

// parsePrintStmt 解析打印语句: print expr
func (p *Parser) parsePrintStmt() Statement {
	tok := p.curToken
	p.nextToken()
	value := p.parseExpression(LOWEST)
	p.skipSemicolon()
	return &PrintStmt{Token: tok, Value: value}
}

// parseSimpleStatement 解析以标识符开头的语句：
// 赋值、成员赋值、成员访问、方法或函数调用
func (p *Parser) parseSimpleStatement() Statement {
	nameTok := p.curToken

	if p.peekTokenIs(lexer.TOKEN_DOT) || p.peekTokenIs(lexer.TOKEN_LPAREN) {
		expr := p.parseExpression(LOWEST)
		if ma, ok := expr.(*MemberAccessExpr); ok && p.curTokenIs(lexer.TOKEN_ASSIGN) {
			p.nextToken()
			value := p.parseExpression(LOWEST)
			p.skipSemicolon()
			return &MemberAssignStmt{Token: nameTok, Object: ma.Object, Member: ma.Member, Value: value}
		}
		p.skipSemicolon()
		return &ExprStmt{Token: nameTok, Expression: expr}
	}

	// 普通赋值，缺少 '=' 时由 consume 报告
	p.nextToken()
	p.consume(lexer.TOKEN_ASSIGN)
	value := p.parseExpression(LOWEST)
	p.skipSemicolon()
	return &AssignStmt{Token: nameTok, Name: nameTok.Literal, Value: value}
}

// parseBlock 解析 { } 语句块
func (p *Parser) parseBlock() *BlockStmt {
	block := &BlockStmt{Token: p.curToken}
	p.consume(lexer.TOKEN_LBRACE)
	for !p.curTokenIs(lexer.TOKEN_RBRACE) && !p.curTokenIs(lexer.TOKEN_EOF) {
		block.Statements = append(block.Statements, p.parseStatement())
	}
	p.consume(lexer.TOKEN_RBRACE)
	return block
}

// parseIfStmt 解析 if/else 语句
func (p *Parser) parseIfStmt() Statement {
	stmt := &IfStmt{Token: p.curToken}
	p.nextToken()
	stmt.Condition = p.parseExpression(LOWEST)
	stmt.Then = p.parseBlock()
	if p.curTokenIs(lexer.TOKEN_ELSE) {
		p.nextToken()
		stmt.Else = p.parseBlock()
	}
	return stmt
}

// parseWhileStmt 解析 while 循环
func (p *Parser) parseWhileStmt() Statement {
	stmt := &WhileStmt{Token: p.curToken}
	p.nextToken()
	stmt.Condition = p.parseExpression(LOWEST)
	stmt.Body = p.parseBlock()
	return stmt
}

// parseForStmt 解析 for 循环: for init; cond; update { }
// init 和 update 可省略，省略 init 时写一个裸分号
func (p *Parser) parseForStmt() Statement {
	stmt := &ForStmt{Token: p.curToken}
	p.nextToken()

	if p.curTokenIs(lexer.TOKEN_SEMICOLON) {
		p.nextToken()
	} else if p.curTokenIs(lexer.TOKEN_VAR) {
		stmt.Init = p.parseVarDecl()
	} else {
		stmt.Init = p.parseSimpleStatement()
	}

	stmt.Condition = p.parseExpression(LOWEST)
	p.consume(lexer.TOKEN_SEMICOLON)

	if !p.curTokenIs(lexer.TOKEN_LBRACE) {
		stmt.Update = p.parseSimpleStatement()
	}

	stmt.Body = p.parseBlock()
	return stmt
}

// parseFunDecl 解析函数声明: fun name(a, b) { }
func (p *Parser) parseFunDecl() Statement {
	stmt := &FunDeclStmt{Token: p.curToken}
	p.nextToken()
	stmt.Name = p.consume(lexer.TOKEN_IDENT).Literal
	p.consume(lexer.TOKEN_LPAREN)
	if !p.curTokenIs(lexer.TOKEN_RPAREN) {
		stmt.Params = append(stmt.Params, p.consume(lexer.TOKEN_IDENT).Literal)
		for p.curTokenIs(lexer.TOKEN_COMMA) {
			p.nextToken()
			stmt.Params = append(stmt.Params, p.consume(lexer.TOKEN_IDENT).Literal)
		}
	}
	p.consume(lexer.TOKEN_RPAREN)
	stmt.Body = p.parseBlock()
	return stmt
}

// parseClassDecl 解析类声明: class Name { 成员... }
func (p *Parser) parseClassDecl() Statement {
	stmt := &ClassDeclStmt{Token: p.curToken}
	p.nextToken()
	stmt.Name = p.consume(lexer.TOKEN_IDENT).Literal
	p.consume(lexer.TOKEN_LBRACE)
	for !p.curTokenIs(lexer.TOKEN_RBRACE) && !p.curTokenIs(lexer.TOKEN_EOF) {
		stmt.Members = append(stmt.Members, p.parseStatement())
	}
	p.consume(lexer.TOKEN_RBRACE)
	return stmt
}

// 运算符优先级，从低到高
const (
	_ int = iota
	LOWEST
	LOGICAL    // and or
	COMPARISON // == != < > <= >=
	SUM        // + -
	PRODUCT    // * / %
	PREFIX     // not
	CALL       // foo(x) obj.member
)

var precedences = map[lexer.TokenType]int{
	lexer.TOKEN_AND:      LOGICAL,
	lexer.TOKEN_OR:       LOGICAL,
	lexer.TOKEN_EQ:       COMPARISON,
	lexer.TOKEN_NOT_EQ:   COMPARISON,
	lexer.TOKEN_LT:       COMPARISON,
	lexer.TOKEN_GT:       COMPARISON,
	lexer.TOKEN_LT_EQ:    COMPARISON,
	lexer.TOKEN_GT_EQ:    COMPARISON,
	lexer.TOKEN_PLUS:     SUM,
	lexer.TOKEN_MINUS:    SUM,
	lexer.TOKEN_ASTERISK: PRODUCT,
	lexer.TOKEN_SLASH:    PRODUCT,
	lexer.TOKEN_PERCENT:  PRODUCT,
	lexer.TOKEN_LPAREN:   CALL,
	lexer.TOKEN_DOT:      CALL,
}

// curPrecedence 获取当前 token 的优先级
func (p *Parser) curPrecedence() int {
	if prec, ok := precedences[p.curToken.Type]; ok {
		return prec
	}
	return LOWEST
}

// parseExpression 优先级爬升解析表达式
//
// 进入时 curToken 是表达式的第一个 token，
// 返回时 curToken 是表达式之后的第一个 token。
func (p *Parser) parseExpression(precedence int) Expression {
	left := p.parsePrimary()

	for precedence < p.curPrecedence() {
		switch p.curToken.Type {
		case lexer.TOKEN_PLUS, lexer.TOKEN_MINUS, lexer.TOKEN_ASTERISK, lexer.TOKEN_SLASH,
			lexer.TOKEN_PERCENT, lexer.TOKEN_EQ, lexer.TOKEN_NOT_EQ, lexer.TOKEN_LT,
			lexer.TOKEN_GT, lexer.TOKEN_LT_EQ, lexer.TOKEN_GT_EQ, lexer.TOKEN_AND,
			lexer.TOKEN_OR:
			left = p.parseInfixExpression(left)
		case lexer.TOKEN_LPAREN:
			left = p.parseCallExpression(left)
		case lexer.TOKEN_DOT:
			left = p.parseMemberExpression(left)
		default:
			return left
		}
	}

	return left
}

// parsePrimary 解析基本表达式
func (p *Parser) parsePrimary() Expression {
	tok := p.curToken

	switch tok.Type {
	case lexer.TOKEN_INT:
		p.nextToken()
		value, err := strconv.Atoi(tok.Literal)
		if err != nil {
			p.reporter.ReportSyntaxError(i18n.T(i18n.ErrInvalidInteger, tok.Literal), tok.Line, tok.Column)
		}
		return &IntegerLiteral{Token: tok, Value: value}
	case lexer.TOKEN_TRUE:
		p.nextToken()
		return &BooleanLiteral{Token: tok, Value: true}
	case lexer.TOKEN_FALSE:
		p.nextToken()
		return &BooleanLiteral{Token: tok, Value: false}
	case lexer.TOKEN_STRING:
		p.nextToken()
		return &StringLiteral{Token: tok, Value: tok.Literal}
	case lexer.TOKEN_LIST:
		p.nextToken()
		return &ListExpr{Token: tok}
	case lexer.TOKEN_IDENT:
		p.nextToken()
		return &VariableRef{Token: tok, Name: tok.Literal}
	case lexer.TOKEN_NOT:
		p.nextToken()
		return &UnaryExpr{Token: tok, Operator: "not", Operand: p.parseExpression(PREFIX)}
	case lexer.TOKEN_NEW:
		return p.parseNewExpression()
	case lexer.TOKEN_LPAREN:
		p.nextToken()
		expr := p.parseExpression(LOWEST)
		p.consume(lexer.TOKEN_RPAREN)
		return expr
	default:
		// 替换为合成的 0 字面量，避免级联错误
		p.reporter.ReportSyntaxError(
			i18n.T(i18n.ErrExpectedExpression, lexer.TokenTypeName(tok.Type)),
			tok.Line, tok.Column)
		p.nextToken()
		return &IntegerLiteral{Token: tok, Value: 0}
	}
}

// parseNewExpression 解析类实例化: new Name(args)
func (p *Parser) parseNewExpression() Expression {
	tok := p.curToken
	p.nextToken()
	nameTok := p.consume(lexer.TOKEN_IDENT)
	p.consume(lexer.TOKEN_LPAREN)
	args := p.parseCallArgs()
	return &NewExpr{Token: tok, ClassName: nameTok.Literal, Args: args}
}

// parseCallArgs 解析调用实参列表，进入时 '(' 已被消费
func (p *Parser) parseCallArgs() []Expression {
	var args []Expression
	if p.curTokenIs(lexer.TOKEN_RPAREN) {
		p.nextToken()
		return args
	}
	args = append(args, p.parseExpression(LOWEST))
	for p.curTokenIs(lexer.TOKEN_COMMA) {
		p.nextToken()
		args = append(args, p.parseExpression(LOWEST))
	}
	p.consume(lexer.TOKEN_RPAREN)
	return args
}

// parseInfixExpression 解析二元中缀表达式（左结合）
func (p *Parser) parseInfixExpression(left Expression) Expression {
	opTok := p.curToken
	prec := p.curPrecedence()
	p.nextToken()
	right := p.parseExpression(prec)
	return &BinaryExpr{Token: opTok, Operator: opTok.Literal, Left: left, Right: right}
}

// parseCallExpression 解析函数调用，仅函数名可被调用
func (p *Parser) parseCallExpression(left Expression) Expression {
	lparen := p.curToken
	p.nextToken()
	args := p.parseCallArgs()

	ref, ok := left.(*VariableRef)
	if !ok {
		p.reporter.ReportSyntaxError(i18n.T(i18n.ErrCallTarget), lparen.Line, lparen.Column)
		return left
	}
	return &CallExpr{Token: ref.Token, Name: ref.Name, Args: args}
}

// parseMemberExpression 解析成员访问或方法调用
func (p *Parser) parseMemberExpression(left Expression) Expression {
	dotTok := p.curToken
	p.nextToken()
	memberTok := p.consume(lexer.TOKEN_IDENT)

	if p.curTokenIs(lexer.TOKEN_LPAREN) {
		p.nextToken()
		args := p.parseCallArgs()
		return &MethodCallExpr{Token: dotTok, Object: left, Method: memberTok.Literal, Args: args}
	}
	return &MemberAccessExpr{Token: dotTok, Object: left, Member: memberTok.Literal}
}
