package lexer

// TokenType 表示 token 的类型
type TokenType int

const (
	// 特殊 token
	TOKEN_ILLEGAL TokenType = iota
	TOKEN_EOF

	// 标识符和字面量
	TOKEN_IDENT  // 标识符
	TOKEN_INT    // 整数
	TOKEN_STRING // 字符串
	TOKEN_TRUE   // true
	TOKEN_FALSE  // false

	// 运算符
	TOKEN_ASSIGN   // =
	TOKEN_PLUS     // +
	TOKEN_MINUS    // -
	TOKEN_ASTERISK // *
	TOKEN_SLASH    // /
	TOKEN_PERCENT  // %

	TOKEN_EQ     // ==
	TOKEN_NOT_EQ // !=
	TOKEN_LT     // <
	TOKEN_GT     // >
	TOKEN_LT_EQ  // <=
	TOKEN_GT_EQ  // >=

	// 逻辑关键字
	TOKEN_AND // and
	TOKEN_OR  // or
	TOKEN_NOT // not

	// 分隔符
	TOKEN_COMMA     // ,
	TOKEN_SEMICOLON // ;
	TOKEN_DOT       // .
	TOKEN_LPAREN    // (
	TOKEN_RPAREN    // )
	TOKEN_LBRACE    // {
	TOKEN_RBRACE    // }

	// 关键字
	TOKEN_VAR   // var
	TOKEN_PRINT // print
	TOKEN_LIST  // list
	TOKEN_IF    // if
	TOKEN_ELSE  // else
	TOKEN_WHILE // while
	TOKEN_FOR   // for
	TOKEN_FUN   // fun
	TOKEN_CLASS // class
	TOKEN_NEW   // new
)

// Token 表示一个词法单元
type Token struct {
	Type    TokenType
	Literal string
	Line    int
	Column  int
}

var keywords = map[string]TokenType{
	"var":   TOKEN_VAR,
	"print": TOKEN_PRINT,
	"list":  TOKEN_LIST,
	"if":    TOKEN_IF,
	"else":  TOKEN_ELSE,
	"while": TOKEN_WHILE,
	"for":   TOKEN_FOR,
	"fun":   TOKEN_FUN,
	"class": TOKEN_CLASS,
	"new":   TOKEN_NEW,
	"true":  TOKEN_TRUE,
	"false": TOKEN_FALSE,
	"and":   TOKEN_AND,
	"or":    TOKEN_OR,
	"not":   TOKEN_NOT,
}

// LookupIdent 查找标识符是否为关键字
func LookupIdent(ident string) TokenType {
	if tok, ok := keywords[ident]; ok {
		return tok
	}
	return TOKEN_IDENT
}

// TokenTypeName 返回 token 类型的名称
func TokenTypeName(t TokenType) string {
	names := map[TokenType]string{
		TOKEN_ILLEGAL:   "ILLEGAL",
		TOKEN_EOF:       "EOF",
		TOKEN_IDENT:     "IDENT",
		TOKEN_INT:       "INT",
		TOKEN_STRING:    "STRING",
		TOKEN_TRUE:      "true",
		TOKEN_FALSE:     "false",
		TOKEN_ASSIGN:    "=",
		TOKEN_PLUS:      "+",
		TOKEN_MINUS:     "-",
		TOKEN_ASTERISK:  "*",
		TOKEN_SLASH:     "/",
		TOKEN_PERCENT:   "%",
		TOKEN_EQ:        "==",
		TOKEN_NOT_EQ:    "!=",
		TOKEN_LT:        "<",
		TOKEN_GT:        ">",
		TOKEN_LT_EQ:     "<=",
		TOKEN_GT_EQ:     ">=",
		TOKEN_AND:       "and",
		TOKEN_OR:        "or",
		TOKEN_NOT:       "not",
		TOKEN_COMMA:     ",",
		TOKEN_SEMICOLON: ";",
		TOKEN_DOT:       ".",
		TOKEN_LPAREN:    "(",
		TOKEN_RPAREN:    ")",
		TOKEN_LBRACE:    "{",
		TOKEN_RBRACE:    "}",
		TOKEN_VAR:       "var",
		TOKEN_PRINT:     "print",
		TOKEN_LIST:      "list",
		TOKEN_IF:        "if",
		TOKEN_ELSE:      "else",
		TOKEN_WHILE:     "while",
		TOKEN_FOR:       "for",
		TOKEN_FUN:       "fun",
		TOKEN_CLASS:     "class",
		TOKEN_NEW:       "new",
	}
	if name, ok := names[t]; ok {
		return name
	}
	return "UNKNOWN"
}
