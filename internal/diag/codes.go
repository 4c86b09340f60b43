package diag

import "fmt"

type Code uint16

const (
	UnknownCode Code = 0

	// Lexical
	LexUnknownChar              Code = 1001
	LexUnterminatedString       Code = 1002
	LexUnterminatedBlockComment Code = 1003
	LexBadNumber                Code = 1004
	LexBadEscape                Code = 1005

	// Syntactic
	SynUnexpectedToken     Code = 2001
	SynExpectToken         Code = 2002
	SynExpectExpression    Code = 2003
	SynExpectIdentifier    Code = 2004
	SynExpectSemicolon     Code = 2005
	SynBadAssignTarget     Code = 2006
	SynBadForHeader        Code = 2007
	SynMissingInitializer  Code = 2008
	SynTrailingDecorations Code = 2009
	SynModuleItemInScript  Code = 2010
	SynBadImport           Code = 2011
	SynBadExport           Code = 2012
	SynBadParams           Code = 2013
	SynBadProperty         Code = 2014
)

func (c Code) String() string {
	return fmt.Sprintf("E%04d", uint16(c))
}
