package token

var keywords = map[string]Kind{
	"var":        KwVar,
	"let":        KwLet,
	"const":      KwConst,
	"function":   KwFunction,
	"return":     KwReturn,
	"if":         KwIf,
	"else":       KwElse,
	"while":      KwWhile,
	"do":         KwDo,
	"for":        KwFor,
	"break":      KwBreak,
	"continue":   KwContinue,
	"new":        KwNew,
	"typeof":     KwTypeof,
	"delete":     KwDelete,
	"void":       KwVoid,
	"in":         KwIn,
	"instanceof": KwInstanceof,
	"this":       KwThis,
	"null":       KwNull,
	"true":       KwTrue,
	"false":      KwFalse,
	"import":     KwImport,
	"export":     KwExport,
	"throw":      KwThrow,
	"debugger":   KwDebugger,
}

// LookupKeyword classifies an identifier-shaped lexeme.
// "from" and "default" stay contextual: they are ordinary identifiers
// except inside import/export items, so the parser resolves them itself.
func LookupKeyword(name string) (Kind, bool) {
	k, ok := keywords[name]
	return k, ok
}
