package velox_test

import (
	"encoding/json"
	"strings"
	"testing"

	"velox"
	"velox/internal/workers"
)

func TestParseSyncClean(t *testing.T) {
	res := velox.ParseSync("const x = 1;", nil)
	if len(res.Errors) != 0 {
		t.Fatalf("unexpected errors: %v", res.Errors)
	}

	var tree map[string]any
	if err := json.Unmarshal([]byte(res.Program), &tree); err != nil {
		t.Fatalf("program is not valid JSON: %v", err)
	}
	if tree["type"] != "Program" {
		t.Fatalf("type = %v", tree["type"])
	}
	if len(res.Comments) != 0 {
		t.Fatalf("unexpected comments: %v", res.Comments)
	}
}

func TestParseSyncBrokenInputStillYieldsProgram(t *testing.T) {
	res := velox.ParseSync("function (", nil)
	if len(res.Errors) == 0 {
		t.Fatal("expected errors")
	}
	var tree map[string]any
	if err := json.Unmarshal([]byte(res.Program), &tree); err != nil {
		t.Fatalf("partial program is not valid JSON: %v", err)
	}
	if tree["type"] != "Program" {
		t.Fatal("partial program missing root")
	}
}

func TestParseSyncComments(t *testing.T) {
	res := velox.ParseSync("// note\nlet x; /* block */", nil)
	if len(res.Comments) != 2 {
		t.Fatalf("got %d comments", len(res.Comments))
	}
	if res.Comments[0].Type != "Line" || res.Comments[0].Value != " note" {
		t.Fatalf("first comment: %+v", res.Comments[0])
	}
	if res.Comments[1].Type != "Block" || res.Comments[1].Value != " block " {
		t.Fatalf("second comment: %+v", res.Comments[1])
	}
}

func TestSourceTypeResolution(t *testing.T) {
	tests := []struct {
		name string
		src  string
		opts *velox.Options
		want string
	}{
		{"default script", "let x;", nil, `"sourceType":"script"`},
		{"content detection", "import a from 'b';", nil, `"sourceType":"module"`},
		{"explicit module", "let x;", &velox.Options{SourceType: "module"}, `"sourceType":"module"`},
		{"mjs extension", "let x;", &velox.Options{SourceFilename: "a.mjs"}, `"sourceType":"module"`},
		{"cjs extension", "import a from 'b';", &velox.Options{SourceFilename: "a.cjs"}, `"sourceType":"script"`},
		{"explicit beats extension", "let x;", &velox.Options{SourceType: "module", SourceFilename: "a.cjs"}, `"sourceType":"module"`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := velox.ParseSync(tt.src, tt.opts)
			if !strings.Contains(res.Program, tt.want) {
				t.Fatalf("program does not contain %s:\n%s", tt.want, res.Program)
			}
		})
	}
}

func TestScriptGoalRejectsImport(t *testing.T) {
	res := velox.ParseSync("import a from 'b';", &velox.Options{SourceType: "script"})
	if len(res.Errors) == 0 {
		t.Fatal("expected an error for import under the script goal")
	}
}

func TestPreserveParensOption(t *testing.T) {
	on := velox.ParseSync("(a);", nil)
	if !strings.Contains(on.Program, "ParenthesizedExpression") {
		t.Fatal("parens not preserved by default")
	}

	off := false
	res := velox.ParseSync("(a);", &velox.Options{PreserveParens: &off})
	if strings.Contains(res.Program, "ParenthesizedExpression") {
		t.Fatal("parens preserved despite the option")
	}
}

func TestParseSyncBuffer(t *testing.T) {
	payload := velox.ParseSyncBuffer("let x = 1;", nil)
	if len(payload) == 0 {
		t.Fatal("empty payload")
	}
	// msgpack map header leads the payload.
	if payload[0]>>4 != 0x8 {
		t.Fatalf("payload does not start with a fixmap: %#x", payload[0])
	}
}

func TestParseAsyncMatchesSync(t *testing.T) {
	src := "const a = [1, 2, 3].length;"
	sync := velox.ParseSync(src, nil)

	pending := velox.ParseAsync(src, nil)
	async, err := pending.Wait()
	if err != nil {
		t.Fatal(err)
	}
	if async.Program != sync.Program {
		t.Fatal("async program differs from sync")
	}
	if len(async.Errors) != len(sync.Errors) {
		t.Fatal("async errors differ from sync")
	}
}

func TestParseAsyncMany(t *testing.T) {
	srcs := []string{"let a;", "let b = 2;", "function f() {}", "broken(((", "x ** y;"}
	handles := make([]*workers.Pending[velox.Result], len(srcs))
	for i, s := range srcs {
		handles[i] = velox.ParseAsync(s, nil)
	}
	for i, h := range handles {
		res, err := h.Wait()
		if err != nil {
			t.Fatalf("%q: %v", srcs[i], err)
		}
		if res.Program == "" {
			t.Fatalf("%q: empty program", srcs[i])
		}
	}
}

func TestSchema(t *testing.T) {
	raw := velox.Schema()

	var defs []struct {
		Name   string `json:"name"`
		Fields []struct {
			Name string `json:"name"`
			Type string `json:"type"`
		} `json:"fields"`
	}
	if err := json.Unmarshal([]byte(raw), &defs); err != nil {
		t.Fatalf("schema is not valid JSON: %v", err)
	}
	if len(defs) == 0 {
		t.Fatal("empty schema")
	}

	byName := map[string][]string{}
	for _, d := range defs {
		var fields []string
		for _, f := range d.Fields {
			fields = append(fields, f.Name)
		}
		byName[d.Name] = fields
	}

	prog, ok := byName["Program"]
	if !ok {
		t.Fatal("Program missing from schema")
	}
	want := []string{"type", "start", "end", "sourceType", "body"}
	if len(prog) != len(want) {
		t.Fatalf("Program fields = %v", prog)
	}
	for i := range want {
		if prog[i] != want[i] {
			t.Fatalf("Program field %d = %q, want %q", i, prog[i], want[i])
		}
	}

	for _, name := range []string{"Identifier", "Literal", "BinaryExpression", "ImportDeclaration", "ArrowFunctionExpression"} {
		if _, ok := byName[name]; !ok {
			t.Fatalf("%s missing from schema", name)
		}
	}
}
