package velox_test

import (
	"testing"
	"unsafe"

	"velox"
	"velox/internal/ast"
	"velox/internal/rawbuf"
)

// The raw buffer is 2 GiB of virtual address space; pages are only
// committed as they are touched, so these tests are cheap despite the
// size.

func TestCreateBuffer(t *testing.T) {
	buf := velox.CreateBuffer()
	defer buf.Close()

	b := buf.Bytes()
	if len(b) != rawbuf.BufferSize {
		t.Fatalf("len = %d", len(b))
	}
	if !rawbuf.Aligned(b) {
		t.Fatal("buffer base is not aligned")
	}

	// The window must be writable end to end.
	b[0] = 1
	b[len(b)-1] = 1
}

func TestParseSyncRaw(t *testing.T) {
	buf := velox.CreateBuffer()
	defer buf.Close()
	b := buf.Bytes()

	src := "const answer = 42; // cached"
	copy(b, src)

	velox.ParseSyncRaw(b, uint32(len(src)), nil)

	off := rawbuf.RootOffset(b)
	if off == 0 {
		t.Fatal("root offset not written")
	}
	if int(off) >= len(b) {
		t.Fatalf("root offset %d out of range", off)
	}

	prog := (*ast.Program)(unsafe.Pointer(&b[off]))
	if prog.Type != "Program" {
		t.Fatalf("root type = %q", prog.Type)
	}
	if prog.SourceType != "script" {
		t.Fatalf("sourceType = %q", prog.SourceType)
	}
	if len(prog.Body) != 1 {
		t.Fatalf("got %d statements", len(prog.Body))
	}

	decl, ok := prog.Body[0].(*ast.VariableDeclaration)
	if !ok {
		t.Fatalf("statement is %T", prog.Body[0])
	}
	if decl.Kind != "const" {
		t.Fatalf("kind = %q", decl.Kind)
	}
	id := decl.Declarations[0].ID.(*ast.Identifier)
	if id.Name != "answer" {
		t.Fatalf("name = %q", id.Name)
	}

	// Every string in the tree must alias buffer memory.
	base := uintptr(unsafe.Pointer(&b[0]))
	assertInBuffer(t, base, id.Name, "identifier name")
	lit := decl.Declarations[0].Init.(*ast.Literal)
	assertInBuffer(t, base, lit.Raw, "literal raw")
}

func assertInBuffer(t *testing.T, base uintptr, s string, what string) {
	t.Helper()
	addr := uintptr(unsafe.Pointer(unsafe.StringData(s)))
	if addr < base || addr >= base+rawbuf.BufferSize {
		t.Fatalf("%s escapes the buffer: %#x not in [%#x, %#x)", what, addr, base, base+rawbuf.BufferSize)
	}
}

func TestParseSyncRawModule(t *testing.T) {
	buf := velox.CreateBuffer()
	defer buf.Close()
	b := buf.Bytes()

	src := "export default 1;"
	copy(b, src)
	velox.ParseSyncRaw(b, uint32(len(src)), nil)

	prog := (*ast.Program)(unsafe.Pointer(&b[rawbuf.RootOffset(b)]))
	if prog.SourceType != "module" {
		t.Fatalf("sourceType = %q", prog.SourceType)
	}
}

func TestParseSyncRawReusableBuffer(t *testing.T) {
	buf := velox.CreateBuffer()
	defer buf.Close()
	b := buf.Bytes()

	for i, src := range []string{"let a = 1;", "let b = 2, c = 3;"} {
		copy(b, src)
		velox.ParseSyncRaw(b, uint32(len(src)), nil)
		prog := (*ast.Program)(unsafe.Pointer(&b[rawbuf.RootOffset(b)]))
		if prog.Type != "Program" {
			t.Fatalf("round %d: root type = %q", i, prog.Type)
		}
	}
}

func TestParseSyncRawRejectsWrongSize(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic for undersized buffer")
		}
	}()
	velox.ParseSyncRaw(make([]byte, 1024), 0, nil)
}

func TestParseSyncRawRejectsInvalidUTF8(t *testing.T) {
	buf := velox.CreateBuffer()
	defer buf.Close()
	b := buf.Bytes()
	b[0] = 0xFF

	defer func() {
		if recover() == nil {
			t.Fatal("expected panic for invalid UTF-8")
		}
	}()
	velox.ParseSyncRaw(b, 1, nil)
}
