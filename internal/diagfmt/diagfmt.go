// Package diagfmt renders diagnostics into the formatted strings the
// public API returns, with optional color for terminal use.
package diagfmt

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/mattn/go-runewidth"

	"velox/internal/diag"
	"velox/internal/source"
)

type Opts struct {
	Color bool
	// Context reserved for future surrounding-lines output.
	Context int
}

var (
	errColor  = color.New(color.FgRed, color.Bold)
	warnColor = color.New(color.FgYellow, color.Bold)
	infoColor = color.New(color.FgCyan)
)

// Format renders one diagnostic:
//
//	path:line:col: error[E2001]: message
//	  const x =
//	          ^~~
func Format(d diag.Diagnostic, f *source.File, opts Opts) string {
	lc := f.LineCol(d.Primary.Start)

	sev := d.Severity.String()
	if opts.Color {
		sev = sevColor(d.Severity).Sprint(sev)
	}

	var b strings.Builder
	path := f.Path
	if path == "" {
		path = "<source>"
	}
	fmt.Fprintf(&b, "%s:%d:%d: %s[%s]: %s", path, lc.Line, lc.Col, sev, d.Code, d.Message)

	line := f.Line(lc.Line)
	if len(line) > 0 {
		b.WriteByte('\n')
		b.WriteString("  ")
		b.Write(line)
		b.WriteByte('\n')
		b.WriteString("  ")
		b.WriteString(underline(line, lc.Col, d.Primary.Len()))
	}
	return b.String()
}

// Strings renders a whole bag in span order.
func Strings(bag *diag.Bag, f *source.File, opts Opts) []string {
	if bag.Len() == 0 {
		return nil
	}
	bag.Sort()
	out := make([]string, 0, bag.Len())
	for _, d := range bag.Items() {
		out = append(out, Format(d, f, opts))
	}
	return out
}

func sevColor(s diag.Severity) *color.Color {
	switch s {
	case diag.SevError:
		return errColor
	case diag.SevWarning:
		return warnColor
	}
	return infoColor
}

// underline builds the ^~~ marker for a span beginning at a 1-based
// column. Display width is computed with runewidth so wide characters
// in the source line keep the caret in place.
func underline(line []byte, col uint32, spanLen uint32) string {
	if int(col) > len(line)+1 {
		return "^"
	}
	pad := runewidth.StringWidth(string(line[:col-1]))

	rest := line[col-1:]
	if spanLen == 0 {
		spanLen = 1
	}
	if int(spanLen) > len(rest) {
		spanLen = uint32(len(rest))
	}
	width := 1
	if spanLen > 0 {
		width = runewidth.StringWidth(string(rest[:spanLen]))
	}

	var b strings.Builder
	b.Grow(pad + width)
	b.WriteString(strings.Repeat(" ", pad))
	b.WriteByte('^')
	for i := 1; i < width; i++ {
		b.WriteByte('~')
	}
	return b.String()
}
