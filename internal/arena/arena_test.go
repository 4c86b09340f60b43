package arena_test

import (
	"testing"
	"unsafe"

	"velox/internal/arena"
)

func TestAllocValuesLiveInArena(t *testing.T) {
	a := arena.New(arena.MinSize)
	defer a.Release()

	type node struct {
		Start, End uint32
		Name       string
	}
	n := arena.Alloc(a, node{Start: 1, End: 5, Name: "x"})
	if n.Start != 1 || n.End != 5 || n.Name != "x" {
		t.Fatalf("allocated value corrupted: %+v", n)
	}

	addr := uintptr(unsafe.Pointer(n))
	if addr < a.Base() || addr >= a.Base()+uintptr(a.Cap()) {
		t.Fatalf("allocation at %#x outside region [%#x, %#x)", addr, a.Base(), a.Base()+uintptr(a.Cap()))
	}
	if a.Used() == 0 {
		t.Fatal("Used() did not advance")
	}
}

func TestSlice(t *testing.T) {
	a := arena.New(arena.MinSize)
	defer a.Release()

	vals := []int32{1, 2, 3}
	s := arena.Slice(a, vals)
	if len(s) != 3 || s[0] != 1 || s[2] != 3 {
		t.Fatalf("slice copy wrong: %v", s)
	}
	vals[0] = 99
	if s[0] != 1 {
		t.Fatal("arena slice aliases the input")
	}

	if got := arena.Slice(a, []int32(nil)); got != nil {
		t.Fatalf("empty input should yield nil, got %v", got)
	}
}

func TestString(t *testing.T) {
	a := arena.New(arena.MinSize)
	defer a.Release()

	s := arena.String(a, "hello")
	if s != "hello" {
		t.Fatalf("got %q", s)
	}
	if arena.String(a, "") != "" {
		t.Fatal("empty string should stay empty")
	}
}

func TestOverflowPanics(t *testing.T) {
	a := arena.New(arena.MinSize)
	defer a.Release()

	defer func() {
		if recover() == nil {
			t.Fatal("expected panic on overflow")
		}
	}()
	a.AllocBytes(arena.MinSize + 1)
}

func TestUseAfterReleasePanics(t *testing.T) {
	a := arena.New(arena.MinSize)
	a.Release()

	defer func() {
		if recover() == nil {
			t.Fatal("expected panic on use after Release")
		}
	}()
	a.AllocBytes(8)
}

func TestFromRawParts(t *testing.T) {
	// Over-allocate so an aligned window can be carved regardless of
	// where the backing slice lands.
	backing := make([]byte, arena.MinSize+arena.BaseAlign)
	base := uintptr(unsafe.Pointer(unsafe.SliceData(backing)))
	pad := (arena.BaseAlign - base%arena.BaseAlign) % arena.BaseAlign
	region := backing[pad : pad+arena.MinSize]

	a := arena.FromRawParts(region)
	if a.Owned() {
		t.Fatal("raw arena must not report ownership")
	}
	b := a.AllocBytes(32)
	if len(b) != 32 {
		t.Fatalf("got %d bytes", len(b))
	}
	addr := uintptr(unsafe.Pointer(unsafe.SliceData(b)))
	if addr < a.Base() || addr >= a.Base()+uintptr(arena.MinSize) {
		t.Fatal("allocation escaped the raw region")
	}
}

func TestFromRawPartsRejectsSmallRegion(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic for undersized region")
		}
	}()
	arena.FromRawParts(make([]byte, arena.MinSize/2))
}

func TestAlignment(t *testing.T) {
	a := arena.New(arena.MinSize)
	defer a.Release()

	a.AllocBytes(1)
	n := arena.Alloc(a, uint64(7))
	if uintptr(unsafe.Pointer(n))%8 != 0 {
		t.Fatalf("uint64 allocation misaligned: %#x", uintptr(unsafe.Pointer(n)))
	}
}
