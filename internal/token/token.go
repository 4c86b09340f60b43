package token

import "velox/internal/source"

// Token is one significant lexeme. Text aliases the source content for
// identifiers, numbers and raw string text; it is empty for punctuation.
type Token struct {
	Kind Kind
	Span source.Span
	Text string
}

// CommentKind distinguishes the two comment forms.
type CommentKind uint8

const (
	CommentLine CommentKind = iota
	CommentBlock
)

func (k CommentKind) String() string {
	if k == CommentBlock {
		return "Block"
	}
	return "Line"
}

// Comment is one comment span in document order. The span covers the
// delimiters; Text is the interior only (without // or /* */).
type Comment struct {
	Kind CommentKind
	Span source.Span
	Text string
}
