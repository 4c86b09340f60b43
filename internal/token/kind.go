package token

// Kind enumerates every lexeme class the scanner can produce.
type Kind uint8

const (
	EOF Kind = iota
	Error

	Ident
	Number
	String

	// Punctuation
	LParen
	RParen
	LBrace
	RBrace
	LBracket
	RBracket
	Semicolon
	Comma
	Dot
	Ellipsis
	Colon
	Question
	Arrow

	// Operators
	Assign     // =
	Plus       // +
	Minus      // -
	Star       // *
	Slash      // /
	Percent    // %
	StarStar   // **
	Eq         // ==
	NotEq      // !=
	StrictEq   // ===
	StrictNeq  // !==
	Lt         // <
	Gt         // >
	LtEq       // <=
	GtEq       // >=
	AndAnd     // &&
	OrOr       // ||
	Nullish    // ??
	Not        // !
	BitNot     // ~
	BitAnd     // &
	BitOr      // |
	BitXor     // ^
	Shl        // <<
	Shr        // >>
	UShr       // >>>
	PlusPlus   // ++
	MinusMinus // --

	// Compound assignment
	PlusAssign    // +=
	MinusAssign   // -=
	StarAssign    // *=
	SlashAssign   // /=
	PercentAssign // %=
	StarStarAssign
	AndAssign // &=
	OrAssign  // |=
	XorAssign // ^=
	ShlAssign // <<=
	ShrAssign // >>=
	UShrAssign

	// Keywords
	KwVar
	KwLet
	KwConst
	KwFunction
	KwReturn
	KwIf
	KwElse
	KwWhile
	KwDo
	KwFor
	KwBreak
	KwContinue
	KwNew
	KwTypeof
	KwDelete
	KwVoid
	KwIn
	KwInstanceof
	KwThis
	KwNull
	KwTrue
	KwFalse
	KwImport
	KwExport
	KwThrow
	KwDebugger
)

var kindNames = map[Kind]string{
	EOF:            "EOF",
	Error:          "error",
	Ident:          "identifier",
	Number:         "number",
	String:         "string",
	LParen:         "'('",
	RParen:         "')'",
	LBrace:         "'{'",
	RBrace:         "'}'",
	LBracket:       "'['",
	RBracket:       "']'",
	Semicolon:      "';'",
	Comma:          "','",
	Dot:            "'.'",
	Ellipsis:       "'...'",
	Colon:          "':'",
	Question:       "'?'",
	Arrow:          "'=>'",
	Assign:         "'='",
	Plus:           "'+'",
	Minus:          "'-'",
	Star:           "'*'",
	Slash:          "'/'",
	Percent:        "'%'",
	StarStar:       "'**'",
	Eq:             "'=='",
	NotEq:          "'!='",
	StrictEq:       "'==='",
	StrictNeq:      "'!=='",
	Lt:             "'<'",
	Gt:             "'>'",
	LtEq:           "'<='",
	GtEq:           "'>='",
	AndAnd:         "'&&'",
	OrOr:           "'||'",
	Nullish:        "'??'",
	Not:            "'!'",
	BitNot:         "'~'",
	BitAnd:         "'&'",
	BitOr:          "'|'",
	BitXor:         "'^'",
	Shl:            "'<<'",
	Shr:            "'>>'",
	UShr:           "'>>>'",
	PlusPlus:       "'++'",
	MinusMinus:     "'--'",
	PlusAssign:     "'+='",
	MinusAssign:    "'-='",
	StarAssign:     "'*='",
	SlashAssign:    "'/='",
	PercentAssign:  "'%='",
	StarStarAssign: "'**='",
	AndAssign:      "'&='",
	OrAssign:       "'|='",
	XorAssign:      "'^='",
	ShlAssign:      "'<<='",
	ShrAssign:      "'>>='",
	UShrAssign:     "'>>>='",
	KwVar:          "'var'",
	KwLet:          "'let'",
	KwConst:        "'const'",
	KwFunction:     "'function'",
	KwReturn:       "'return'",
	KwIf:           "'if'",
	KwElse:         "'else'",
	KwWhile:        "'while'",
	KwDo:           "'do'",
	KwFor:          "'for'",
	KwBreak:        "'break'",
	KwContinue:     "'continue'",
	KwNew:          "'new'",
	KwTypeof:       "'typeof'",
	KwDelete:       "'delete'",
	KwVoid:         "'void'",
	KwIn:           "'in'",
	KwInstanceof:   "'instanceof'",
	KwThis:         "'this'",
	KwNull:         "'null'",
	KwTrue:         "'true'",
	KwFalse:        "'false'",
	KwImport:       "'import'",
	KwExport:       "'export'",
	KwThrow:        "'throw'",
	KwDebugger:     "'debugger'",
}

func (k Kind) String() string {
	if s, ok := kindNames[k]; ok {
		return s
	}
	return "unknown"
}

// IsAssign reports whether k is '=' or a compound assignment operator.
func (k Kind) IsAssign() bool {
	return k == Assign || (k >= PlusAssign && k <= UShrAssign)
}
