package lexer

import (
	"unicode"

	"github.com/tangzhangming/tava/internal/i18n"
	"github.com/tangzhangming/tava/internal/report"
)

// Lexer 词法分析器
//
// 对输入做单次从左到右扫描。词法错误通过 reporter 记录后继续扫描，
// 扫描永远不会中断，最终总是产出以 EOF 结尾的 token 流。
type Lexer struct {
	input    string
	pos      int  // 当前位置
	readPos  int  // 下一个读取位置
	ch       byte // 当前字符
	line     int  // 当前行号 (1 起始)
	column   int  // 当前列号 (1 起始)
	reporter *report.Reporter
}

// New 创建一个新的词法分析器
func New(input string, reporter *report.Reporter) *Lexer {
	l := &Lexer{
		input:    input,
		line:     1,
		column:   0,
		reporter: reporter,
	}
	l.readChar()
	return l
}

// readChar 读取下一个字符
func (l *Lexer) readChar() {
	if l.readPos >= len(l.input) {
		l.ch = 0
	} else {
		l.ch = l.input[l.readPos]
	}
	l.pos = l.readPos
	l.readPos++
	l.column++
	if l.ch == '\n' {
		l.line++
		l.column = 0
	}
}

// peekChar 查看下一个字符但不移动位置
func (l *Lexer) peekChar() byte {
	if l.readPos >= len(l.input) {
		return 0
	}
	return l.input[l.readPos]
}

// NextToken 获取下一个 token
//
// 遇到词法错误时记录诊断并跳过出错字符，继续扫描下一个 token。
func (l *Lexer) NextToken() Token {
	for {
		l.skipWhitespace()

		line, column := l.line, l.column

		switch l.ch {
		case '=':
			if l.peekChar() == '=' {
				l.readChar()
				l.readChar()
				return Token{Type: TOKEN_EQ, Literal: "==", Line: line, Column: column}
			}
			l.readChar()
			return Token{Type: TOKEN_ASSIGN, Literal: "=", Line: line, Column: column}
		case '<':
			if l.peekChar() == '=' {
				l.readChar()
				l.readChar()
				return Token{Type: TOKEN_LT_EQ, Literal: "<=", Line: line, Column: column}
			}
			l.readChar()
			return Token{Type: TOKEN_LT, Literal: "<", Line: line, Column: column}
		case '>':
			if l.peekChar() == '=' {
				l.readChar()
				l.readChar()
				return Token{Type: TOKEN_GT_EQ, Literal: ">=", Line: line, Column: column}
			}
			l.readChar()
			return Token{Type: TOKEN_GT, Literal: ">", Line: line, Column: column}
		case '!':
			// '!' 只能作为 '!=' 的开头
			if l.peekChar() == '=' {
				l.readChar()
				l.readChar()
				return Token{Type: TOKEN_NOT_EQ, Literal: "!=", Line: line, Column: column}
			}
			l.reporter.ReportLexicalError(i18n.T(i18n.ErrUnexpectedChar, "!"), line, column)
			l.readChar()
			continue
		case '+':
			return l.newToken(TOKEN_PLUS, line, column)
		case '-':
			return l.newToken(TOKEN_MINUS, line, column)
		case '*':
			return l.newToken(TOKEN_ASTERISK, line, column)
		case '/':
			return l.newToken(TOKEN_SLASH, line, column)
		case '%':
			return l.newToken(TOKEN_PERCENT, line, column)
		case ',':
			return l.newToken(TOKEN_COMMA, line, column)
		case ';':
			return l.newToken(TOKEN_SEMICOLON, line, column)
		case '.':
			return l.newToken(TOKEN_DOT, line, column)
		case '(':
			return l.newToken(TOKEN_LPAREN, line, column)
		case ')':
			return l.newToken(TOKEN_RPAREN, line, column)
		case '{':
			return l.newToken(TOKEN_LBRACE, line, column)
		case '}':
			return l.newToken(TOKEN_RBRACE, line, column)
		case '"':
			literal := l.readString(line, column)
			return Token{Type: TOKEN_STRING, Literal: literal, Line: line, Column: column}
		case 0:
			return Token{Type: TOKEN_EOF, Literal: "", Line: line, Column: column}
		default:
			if l.isLetter(l.ch) {
				literal := l.readIdentifier()
				return Token{Type: LookupIdent(literal), Literal: literal, Line: line, Column: column}
			}
			if l.isDigit(l.ch) {
				literal := l.readNumber()
				return Token{Type: TOKEN_INT, Literal: literal, Line: line, Column: column}
			}
			l.reporter.ReportLexicalError(i18n.T(i18n.ErrUnexpectedChar, string(l.ch)), line, column)
			l.readChar()
			continue
		}
	}
}

// newToken 创建单字符 token 并前进
func (l *Lexer) newToken(tokenType TokenType, line, column int) Token {
	tok := Token{Type: tokenType, Literal: string(l.ch), Line: line, Column: column}
	l.readChar()
	return tok
}

// skipWhitespace 跳过空白字符
func (l *Lexer) skipWhitespace() {
	for l.ch == ' ' || l.ch == '\t' || l.ch == '\n' || l.ch == '\r' {
		l.readChar()
	}
}

// readIdentifier 读取标识符
func (l *Lexer) readIdentifier() string {
	pos := l.pos
	for l.isLetter(l.ch) || l.isDigit(l.ch) {
		l.readChar()
	}
	return l.input[pos:l.pos]
}

// readNumber 读取整数（最长数字串）
func (l *Lexer) readNumber() string {
	pos := l.pos
	for l.isDigit(l.ch) {
		l.readChar()
	}
	return l.input[pos:l.pos]
}

// readString 读取双引号字符串，返回不含引号的内容
//
// 反斜杠让下一个字符原样通过，不做转义序列解释。
// 输入在闭合引号前结束时记录"未闭合"词法错误，
// 仍返回已读到的内容。
func (l *Lexer) readString(line, column int) string {
	var content []byte
	l.readChar() // 跳过开头的 "
	for {
		if l.ch == '"' {
			l.readChar() // 跳过结尾的 "
			return string(content)
		}
		if l.ch == 0 {
			l.reporter.ReportLexicalError(i18n.T(i18n.ErrUnterminatedString), line, column)
			return string(content)
		}
		if l.ch == '\\' {
			l.readChar()
			if l.ch == 0 {
				l.reporter.ReportLexicalError(i18n.T(i18n.ErrUnterminatedString), line, column)
				return string(content)
			}
		}
		content = append(content, l.ch)
		l.readChar()
	}
}

// isLetter 判断是否为字母
func (l *Lexer) isLetter(ch byte) bool {
	return unicode.IsLetter(rune(ch)) || ch == '_'
}

// isDigit 判断是否为数字
func (l *Lexer) isDigit(ch byte) bool {
	return ch >= '0' && ch <= '9'
}

// Tokenize 将输入字符串转换为 token 列表，以单个 EOF token 结尾
func Tokenize(input string, reporter *report.Reporter) []Token {
	l := New(input, reporter)
	var tokens []Token
	for {
		tok := l.NextToken()
		tokens = append(tokens, tok)
		if tok.Type == TOKEN_EOF {
			break
		}
	}
	return tokens
}
