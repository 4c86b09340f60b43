package estree_test

import (
	"bytes"
	"encoding/json"
	"testing"

	"velox/internal/arena"
	"velox/internal/estree"
	"velox/internal/parser"
	"velox/internal/source"
)

func parseProgram(t *testing.T, input string) (*arena.Arena, parser.Result) {
	t.Helper()
	a := arena.New(arena.MinSize + len(input)*64)
	f := source.FromString("test.js", input)
	return a, parser.Parse(a, f, parser.Options{PreserveParens: true})
}

func TestProgramJSON(t *testing.T) {
	_, res := parseProgram(t, "const x = 1;")
	out, err := estree.ProgramJSON(res.Program)
	if err != nil {
		t.Fatal(err)
	}

	var tree map[string]any
	if err := json.Unmarshal([]byte(out), &tree); err != nil {
		t.Fatalf("payload is not valid JSON: %v", err)
	}
	if tree["type"] != "Program" {
		t.Fatalf("type = %v", tree["type"])
	}
	if tree["sourceType"] != "script" {
		t.Fatalf("sourceType = %v", tree["sourceType"])
	}
	body := tree["body"].([]any)
	decl := body[0].(map[string]any)
	if decl["type"] != "VariableDeclaration" || decl["kind"] != "const" {
		t.Fatalf("declaration = %v", decl)
	}
}

func TestJSONFieldOrder(t *testing.T) {
	_, res := parseProgram(t, "x;")
	out, err := estree.ProgramJSON(res.Program)
	if err != nil {
		t.Fatal(err)
	}
	// type/start/end lead every node, matching the schema.
	prefix := `{"type":"Program","start":0,"end":2,`
	if len(out) < len(prefix) || out[:len(prefix)] != prefix {
		t.Fatalf("payload starts with %q", out[:min(len(out), len(prefix))])
	}
}

func TestBinaryDecodesGenerically(t *testing.T) {
	_, res := parseProgram(t, "let y = 'hi';")
	payload, err := estree.ProgramBinary(res.Program)
	if err != nil {
		t.Fatal(err)
	}

	v, err := estree.Decode(payload)
	if err != nil {
		t.Fatal(err)
	}
	doc, ok := v.(estree.Document)
	if !ok {
		t.Fatalf("decoded %T", v)
	}
	if s, _ := doc.GetString("type"); s != "Program" {
		t.Fatalf("type = %q", s)
	}
	if s, _ := doc.GetString("sourceType"); s != "script" {
		t.Fatalf("sourceType = %q", s)
	}
	if doc.Get("body") == nil {
		t.Fatal("body missing")
	}
}

func TestBinaryRoundTripIsByteIdentical(t *testing.T) {
	inputs := []string{
		"const x = 1;",
		"function f(a) { return a * 2; }",
		"import { a as b } from 'mod';",
		"[1, , 3, ...rest];",
	}
	for _, input := range inputs {
		t.Run(input, func(t *testing.T) {
			_, res := parseProgram(t, input)
			payload, err := estree.ProgramBinary(res.Program)
			if err != nil {
				t.Fatal(err)
			}

			v, err := estree.Decode(payload)
			if err != nil {
				t.Fatal(err)
			}
			back, err := estree.Encode(v)
			if err != nil {
				t.Fatal(err)
			}
			if !bytes.Equal(payload, back) {
				t.Fatalf("re-encoded payload differs:\n  %x\n  %x", payload, back)
			}
		})
	}
}

func TestDocumentPreservesKeyOrder(t *testing.T) {
	_, res := parseProgram(t, "x;")
	payload, err := estree.ProgramBinary(res.Program)
	if err != nil {
		t.Fatal(err)
	}
	v, err := estree.Decode(payload)
	if err != nil {
		t.Fatal(err)
	}
	doc := v.(estree.Document)
	want := []string{"type", "start", "end", "sourceType", "body"}
	if len(doc) != len(want) {
		t.Fatalf("got %d keys", len(doc))
	}
	for i, k := range want {
		if doc[i].Key != k {
			t.Fatalf("key %d = %q, want %q", i, doc[i].Key, k)
		}
	}
}
