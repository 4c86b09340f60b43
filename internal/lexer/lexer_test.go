package lexer_test

import (
	"testing"

	"velox/internal/diag"
	"velox/internal/lexer"
	"velox/internal/source"
	"velox/internal/token"
)

func makeLexer(input string) (*lexer.Lexer, *diag.Bag) {
	bag := diag.NewBag(0)
	f := source.FromString("test.js", input)
	return lexer.New(f, diag.BagReporter{Bag: bag}), bag
}

func collect(lx *lexer.Lexer) []token.Token {
	var toks []token.Token
	for {
		t := lx.Next()
		toks = append(toks, t)
		if t.Kind == token.EOF {
			return toks
		}
	}
}

func kinds(toks []token.Token) []token.Kind {
	out := make([]token.Kind, len(toks))
	for i, t := range toks {
		out[i] = t.Kind
	}
	return out
}

func TestScanStatement(t *testing.T) {
	lx, bag := makeLexer("const x = 42;")
	got := kinds(collect(lx))
	want := []token.Kind{token.KwConst, token.Ident, token.Assign, token.Number, token.Semicolon, token.EOF}
	if len(got) != len(want) {
		t.Fatalf("got %d tokens, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("token %d: got %s, want %s", i, got[i], want[i])
		}
	}
	if bag.HasErrors() {
		t.Fatalf("unexpected diagnostics: %v", bag.Items())
	}
}

func TestScanOperators(t *testing.T) {
	tests := []struct {
		input string
		want  token.Kind
	}{
		{"===", token.StrictEq},
		{"!==", token.StrictNeq},
		{">>>", token.UShr},
		{">>>=", token.UShrAssign},
		{"**", token.StarStar},
		{"??", token.Nullish},
		{"=>", token.Arrow},
		{"...", token.Ellipsis},
		{"<<=", token.ShlAssign},
		{"++", token.PlusPlus},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			lx, _ := makeLexer(tt.input)
			got := lx.Next()
			if got.Kind != tt.want {
				t.Fatalf("got %s, want %s", got.Kind, tt.want)
			}
			if lx.Next().Kind != token.EOF {
				t.Fatal("operator did not consume the whole input")
			}
		})
	}
}

func TestScanNumbers(t *testing.T) {
	inputs := []string{"0", "42", "3.14", ".5", "1e10", "2.5e-3", "0xFF", "0o17", "0b101"}
	for _, input := range inputs {
		t.Run(input, func(t *testing.T) {
			lx, bag := makeLexer(input)
			got := lx.Next()
			if got.Kind != token.Number {
				t.Fatalf("got %s", got.Kind)
			}
			if got.Text != input {
				t.Fatalf("text = %q, want %q", got.Text, input)
			}
			if bag.HasErrors() {
				t.Fatalf("unexpected diagnostics: %v", bag.Items())
			}
		})
	}
}

func TestScanStrings(t *testing.T) {
	lx, bag := makeLexer(`'single' "double"`)
	a := lx.Next()
	b := lx.Next()
	if a.Kind != token.String || b.Kind != token.String {
		t.Fatalf("kinds: %s %s", a.Kind, b.Kind)
	}
	if a.Text != "single" || b.Text != "double" {
		t.Fatalf("interiors: %q %q", a.Text, b.Text)
	}
	if bag.HasErrors() {
		t.Fatal("unexpected diagnostics")
	}
}

func TestUnterminatedString(t *testing.T) {
	lx, bag := makeLexer(`'oops`)
	if got := lx.Next(); got.Kind != token.String {
		t.Fatalf("got %s", got.Kind)
	}
	if !bag.HasErrors() {
		t.Fatal("expected a diagnostic")
	}
	if bag.Items()[0].Code != diag.LexUnterminatedString {
		t.Fatalf("code = %s", bag.Items()[0].Code)
	}
}

func TestComments(t *testing.T) {
	input := "// head\nlet x; /* body */ let y;"
	lx, bag := makeLexer(input)
	collect(lx)

	comments := lx.Comments()
	if len(comments) != 2 {
		t.Fatalf("got %d comments, want 2", len(comments))
	}

	line := comments[0]
	if line.Kind != token.CommentLine || line.Text != " head" {
		t.Errorf("line comment: kind=%v text=%q", line.Kind, line.Text)
	}
	if line.Span.Start != 0 || line.Span.End != 7 {
		t.Errorf("line comment span = [%d, %d), want [0, 7)", line.Span.Start, line.Span.End)
	}

	block := comments[1]
	if block.Kind != token.CommentBlock || block.Text != " body " {
		t.Errorf("block comment: kind=%v text=%q", block.Kind, block.Text)
	}
	if block.Span.Start != 15 || block.Span.End != 25 {
		t.Errorf("block comment span = [%d, %d), want [15, 25)", block.Span.Start, block.Span.End)
	}

	if bag.HasErrors() {
		t.Fatal("unexpected diagnostics")
	}
}

func TestUnterminatedBlockComment(t *testing.T) {
	lx, bag := makeLexer("let x; /* never closed")
	collect(lx)

	if len(lx.Comments()) != 1 {
		t.Fatalf("got %d comments", len(lx.Comments()))
	}
	if !bag.HasErrors() {
		t.Fatal("expected a diagnostic")
	}
	if bag.Items()[0].Code != diag.LexUnterminatedBlockComment {
		t.Fatalf("code = %s", bag.Items()[0].Code)
	}
}

func TestUnknownByte(t *testing.T) {
	lx, bag := makeLexer("let x = 1 # 2;")
	collect(lx)
	if !bag.HasErrors() {
		t.Fatal("expected a diagnostic for '#'")
	}
}
