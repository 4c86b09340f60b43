package parser

import "velox/internal/token"

// binOp describes one binary or logical operator for the precedence
// climber. Higher bp binds tighter.
type binOp struct {
	bp         uint8
	text       string
	logical    bool
	rightAssoc bool
}

var binOps = map[token.Kind]binOp{
	token.Nullish: {bp: 1, text: "??", logical: true},
	token.OrOr:    {bp: 2, text: "||", logical: true},
	token.AndAnd:  {bp: 3, text: "&&", logical: true},

	token.BitOr:  {bp: 4, text: "|"},
	token.BitXor: {bp: 5, text: "^"},
	token.BitAnd: {bp: 6, text: "&"},

	token.Eq:        {bp: 7, text: "=="},
	token.NotEq:     {bp: 7, text: "!="},
	token.StrictEq:  {bp: 7, text: "==="},
	token.StrictNeq: {bp: 7, text: "!=="},

	token.Lt:           {bp: 8, text: "<"},
	token.Gt:           {bp: 8, text: ">"},
	token.LtEq:         {bp: 8, text: "<="},
	token.GtEq:         {bp: 8, text: ">="},
	token.KwIn:         {bp: 8, text: "in"},
	token.KwInstanceof: {bp: 8, text: "instanceof"},

	token.Shl:  {bp: 9, text: "<<"},
	token.Shr:  {bp: 9, text: ">>"},
	token.UShr: {bp: 9, text: ">>>"},

	token.Plus:  {bp: 10, text: "+"},
	token.Minus: {bp: 10, text: "-"},

	token.Star:    {bp: 11, text: "*"},
	token.Slash:   {bp: 11, text: "/"},
	token.Percent: {bp: 11, text: "%"},

	token.StarStar: {bp: 12, text: "**", rightAssoc: true},
}

var assignOps = map[token.Kind]string{
	token.Assign:         "=",
	token.PlusAssign:     "+=",
	token.MinusAssign:    "-=",
	token.StarAssign:     "*=",
	token.SlashAssign:    "/=",
	token.PercentAssign:  "%=",
	token.StarStarAssign: "**=",
	token.AndAssign:      "&=",
	token.OrAssign:       "|=",
	token.XorAssign:      "^=",
	token.ShlAssign:      "<<=",
	token.ShrAssign:      ">>=",
	token.UShrAssign:     ">>>=",
}

var unaryOps = map[token.Kind]string{
	token.Not:      "!",
	token.BitNot:   "~",
	token.Plus:     "+",
	token.Minus:    "-",
	token.KwTypeof: "typeof",
	token.KwVoid:   "void",
	token.KwDelete: "delete",
}
