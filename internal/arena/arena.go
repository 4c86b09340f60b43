// Package arena implements a bump allocator over one contiguous byte
// region. There is no growth strategy: the region is sized up front and
// an allocation that would overflow it panics. The raw transfer path
// hands the arena a caller-owned window of a fixed-layout buffer, so
// relocation or spill chunks would break the address-to-offset
// truncation scheme.
package arena

import (
	"fmt"
	"unsafe"
)

const (
	// MinSize is the smallest usable backing region.
	MinSize = 1 << 12

	// BaseAlign is the alignment FromRawParts requires of the region base.
	BaseAlign = 16
)

// Arena hands out addresses from [base, base+len) by advancing a cursor.
// Allocations are never individually freed and never move.
type Arena struct {
	buf   []byte
	off   uintptr
	owned bool
}

// New creates an arena over its own heap-backed region, released in bulk
// when the arena (and everything allocated from it) becomes unreachable.
func New(size int) *Arena {
	if size < MinSize {
		size = MinSize
	}
	return &Arena{buf: make([]byte, size), owned: true}
}

// FromRawParts constructs an arena over memory the caller owns.
//
// Contract, not checked beyond the asserts below: the region outlives the
// arena and every reference handed out of it, and the caller remains sole
// owner. Release never touches the backing memory in this mode.
func FromRawParts(buf []byte) *Arena {
	if len(buf) < MinSize {
		panic(fmt.Sprintf("arena: raw region too small: %d < %d", len(buf), MinSize))
	}
	if uintptr(unsafe.Pointer(unsafe.SliceData(buf)))%BaseAlign != 0 {
		panic("arena: raw region base is not 16-byte aligned")
	}
	return &Arena{buf: buf}
}

// Base returns the address of the first byte of the managed region.
func (a *Arena) Base() uintptr {
	return uintptr(unsafe.Pointer(unsafe.SliceData(a.buf)))
}

// Owned reports whether the arena owns its backing region.
func (a *Arena) Owned() bool {
	return a.owned
}

// Used returns the number of bytes consumed so far, padding included.
func (a *Arena) Used() int {
	return int(a.off)
}

// Cap returns the total size of the managed region.
func (a *Arena) Cap() int {
	return len(a.buf)
}

// alloc advances the cursor by size bytes at the requested alignment and
// returns the address. Panics when the region is exhausted; capacity is
// a fatal condition, not an error.
func (a *Arena) alloc(size, align uintptr) unsafe.Pointer {
	if a.buf == nil {
		panic("arena: use after Release")
	}
	base := a.Base()
	off := ((base + a.off + align - 1) &^ (align - 1)) - base
	end := off + size
	if end > uintptr(len(a.buf)) || end < off {
		panic(fmt.Sprintf("arena: out of capacity: need %d at offset %d, cap %d", size, off, len(a.buf)))
	}
	a.off = end
	return unsafe.Pointer(&a.buf[off])
}

// AllocBytes returns an n-byte slice inside the arena, zeroed, 8-aligned.
func (a *Arena) AllocBytes(n int) []byte {
	if n <= 0 {
		return nil
	}
	p := a.alloc(uintptr(n), 8)
	b := unsafe.Slice((*byte)(p), n)
	clear(b)
	return b
}

// Release detaches the arena from its region. In owned mode the backing
// memory is reclaimed in bulk once no allocated value is referenced; in
// raw mode it stays untouched since ownership was never transferred here.
func (a *Arena) Release() {
	a.buf = nil
	a.off = 0
}
