package source_test

import (
	"os"
	"path/filepath"
	"testing"

	"velox/internal/source"
)

func TestLineCol(t *testing.T) {
	f := source.FromString("test.js", "let a = 1;\nlet b = 2;\n")

	tests := []struct {
		off  uint32
		line uint32
		col  uint32
	}{
		{0, 1, 1},
		{4, 1, 5},
		{9, 1, 10},
		{11, 2, 1},
		{15, 2, 5},
	}
	for _, tt := range tests {
		lc := f.LineCol(tt.off)
		if lc.Line != tt.line || lc.Col != tt.col {
			t.Errorf("LineCol(%d) = %d:%d, want %d:%d", tt.off, lc.Line, lc.Col, tt.line, tt.col)
		}
	}
}

func TestLine(t *testing.T) {
	f := source.FromString("test.js", "first\nsecond\nthird")

	if got := string(f.Line(1)); got != "first" {
		t.Errorf("Line(1) = %q", got)
	}
	if got := string(f.Line(2)); got != "second" {
		t.Errorf("Line(2) = %q", got)
	}
	if got := string(f.Line(3)); got != "third" {
		t.Errorf("Line(3) = %q", got)
	}
	if got := f.Line(4); got != nil {
		t.Errorf("Line(4) = %q, want nil", got)
	}
}

func TestTextStringAliasesContent(t *testing.T) {
	f := source.FromString("test.js", "hello world")
	s := f.TextString(source.Span{Start: 6, End: 11})
	if s != "world" {
		t.Fatalf("got %q", s)
	}
	// Mutating the content must show through the string; that is the
	// aliasing contract the raw transfer path depends on.
	f.Content[6] = 'W'
	if s != "World" {
		t.Fatalf("TextString copied instead of aliasing: %q", s)
	}
}

func TestLoadStripsBOM(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "bom.js")
	if err := os.WriteFile(path, append([]byte{0xEF, 0xBB, 0xBF}, "let x = 1;"...), 0o644); err != nil {
		t.Fatal(err)
	}

	f, err := source.Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if string(f.Content) != "let x = 1;" {
		t.Fatalf("content = %q", f.Content)
	}
	if f.Flags&source.FileHadBOM == 0 {
		t.Fatal("FileHadBOM not set")
	}
}

func TestLoadTranscodesUTF16(t *testing.T) {
	// "hi" as UTF-16LE with BOM.
	raw := []byte{0xFF, 0xFE, 'h', 0x00, 'i', 0x00}
	dir := t.TempDir()
	path := filepath.Join(dir, "utf16.js")
	if err := os.WriteFile(path, raw, 0o644); err != nil {
		t.Fatal(err)
	}

	f, err := source.Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if string(f.Content) != "hi" {
		t.Fatalf("content = %q", f.Content)
	}
	if f.Flags&source.FileTranscodedUTF16 == 0 {
		t.Fatal("FileTranscodedUTF16 not set")
	}
}

func TestTypeFromString(t *testing.T) {
	tests := []struct {
		in   string
		want source.Type
		ok   bool
	}{
		{"", source.TypeUnset, true},
		{"script", source.TypeScript, true},
		{"module", source.TypeModule, true},
		{"unambiguous", source.TypeUnambiguous, true},
		{"commonjs", source.TypeUnset, false},
	}
	for _, tt := range tests {
		got, ok := source.TypeFromString(tt.in)
		if got != tt.want || ok != tt.ok {
			t.Errorf("TypeFromString(%q) = %v, %v", tt.in, got, ok)
		}
	}
}

func TestTypeFromPath(t *testing.T) {
	tests := []struct {
		path string
		want source.Type
	}{
		{"a.mjs", source.TypeModule},
		{"a.mts", source.TypeModule},
		{"a.cjs", source.TypeScript},
		{"a.cts", source.TypeScript},
		{"a.js", source.TypeUnambiguous},
		{"a.ts", source.TypeUnambiguous},
		{"a", source.TypeUnambiguous},
	}
	for _, tt := range tests {
		if got := source.TypeFromPath(tt.path); got != tt.want {
			t.Errorf("TypeFromPath(%q) = %v, want %v", tt.path, got, tt.want)
		}
	}
}
