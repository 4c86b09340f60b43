package diagfmt_test

import (
	"strings"
	"testing"

	"velox/internal/diag"
	"velox/internal/diagfmt"
	"velox/internal/source"
)

func TestFormat(t *testing.T) {
	f := source.FromString("app.js", "const x =\nlet y;")
	d := diag.Diagnostic{
		Severity: diag.SevError,
		Code:     diag.SynExpectExpression,
		Message:  "expected an expression, found 'let'",
		Primary:  source.Span{Start: 10, End: 13},
	}

	got := diagfmt.Format(d, f, diagfmt.Opts{})
	if !strings.HasPrefix(got, "app.js:2:1: error[E2003]: expected an expression, found 'let'") {
		t.Fatalf("header wrong:\n%s", got)
	}
	if !strings.Contains(got, "let y;") {
		t.Fatalf("source line missing:\n%s", got)
	}
	if !strings.Contains(got, "^~~") {
		t.Fatalf("underline missing:\n%s", got)
	}
}

func TestFormatWithoutPath(t *testing.T) {
	f := source.FromString("", "x")
	d := diag.Diagnostic{
		Severity: diag.SevError,
		Code:     diag.SynUnexpectedToken,
		Message:  "bad",
		Primary:  source.Span{Start: 0, End: 1},
	}
	got := diagfmt.Format(d, f, diagfmt.Opts{})
	if !strings.HasPrefix(got, "<source>:1:1:") {
		t.Fatalf("got:\n%s", got)
	}
}

func TestStringsSortsBySpan(t *testing.T) {
	f := source.FromString("app.js", "aaa bbb ccc")
	bag := diag.NewBag(0)
	bag.Add(diag.Diagnostic{Severity: diag.SevError, Code: diag.SynUnexpectedToken, Message: "second", Primary: source.Span{Start: 8, End: 11}})
	bag.Add(diag.Diagnostic{Severity: diag.SevError, Code: diag.SynUnexpectedToken, Message: "first", Primary: source.Span{Start: 0, End: 3}})

	out := diagfmt.Strings(bag, f, diagfmt.Opts{})
	if len(out) != 2 {
		t.Fatalf("got %d entries", len(out))
	}
	if !strings.Contains(out[0], "first") || !strings.Contains(out[1], "second") {
		t.Fatalf("order wrong: %v", out)
	}
}

func TestStringsEmptyBag(t *testing.T) {
	f := source.FromString("app.js", "")
	if out := diagfmt.Strings(diag.NewBag(0), f, diagfmt.Opts{}); out != nil {
		t.Fatalf("got %v", out)
	}
}
