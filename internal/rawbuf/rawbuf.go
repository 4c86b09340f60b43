// Package rawbuf acquires and lays out the large aligned buffer used as
// the shared medium of the zero-copy transfer path.
//
// The buffer is 2 GiB placed on a 4 GiB boundary. Because the whole
// buffer is smaller than its alignment, every address inside it shares
// the high 32 bits with the base address, so any interior address can be
// truncated to a 32-bit offset and reconstructed losslessly on the other
// side of the runtime boundary.
package rawbuf

import (
	"fmt"
	"unsafe"

	"golang.org/x/sys/unix"
)

const (
	// BufferSize is the total buffer size, 2 GiB.
	BufferSize = 1 << 31
	// BufferAlign is the required base alignment, 4 GiB.
	BufferAlign = 1 << 32
	// TrailerSize is the fixed control region at the end of the buffer.
	TrailerSize = 16

	// allocAttempts bounds the reduced-alignment fallback loop.
	allocAttempts = 10
)

// 32-bit address spaces cannot satisfy the truncation scheme; refuse to build.
const _ uintptr = BufferAlign

// Buffer is one acquired raw buffer. Ownership transfers wholly to the
// caller on creation; Close releases the underlying mapping exactly once.
type Buffer struct {
	data    []byte
	release func()
}

// Bytes exposes the full BufferSize window.
func (b *Buffer) Bytes() []byte {
	return b.data
}

// Close releases the mapping. The buffer and every slice derived from it
// are invalid afterwards.
func (b *Buffer) Close() {
	if b.release != nil {
		b.release()
		b.release = nil
		b.data = nil
	}
}

// Create acquires one BufferSize block aligned to BufferAlign.
//
// The ideal path over-maps size+align and carves the aligned window out
// of it; the pages outside the window are never touched, so they cost
// address space only. When the environment cannot satisfy the over-map,
// a bounded number of exact-size mappings are tried, accepting the first
// whose base happens to be aligned; every reject is unmapped before
// returning. Exhausting the attempts is an environment failure, not a
// user error, and panics.
func Create() *Buffer {
	const prot = unix.PROT_READ | unix.PROT_WRITE
	const flags = unix.MAP_PRIVATE | unix.MAP_ANON

	if m, err := unix.Mmap(-1, 0, BufferSize+BufferAlign, prot, flags); err == nil {
		base := uintptr(unsafe.Pointer(unsafe.SliceData(m)))
		pad := (BufferAlign - base%BufferAlign) % BufferAlign
		return &Buffer{
			data:    m[pad : pad+BufferSize : pad+BufferSize],
			release: func() { _ = unix.Munmap(m) },
		}
	}

	var rejected [][]byte
	var data []byte
	for i := 0; i < allocAttempts; i++ {
		m, err := unix.Mmap(-1, 0, BufferSize, prot, flags)
		if err != nil {
			break
		}
		if Aligned(m) {
			data = m
			break
		}
		rejected = append(rejected, m)
	}
	for _, m := range rejected {
		_ = unix.Munmap(m)
	}
	if data == nil {
		panic(fmt.Sprintf("rawbuf: failed to acquire %d bytes at %d alignment", BufferSize, BufferAlign))
	}
	return &Buffer{
		data:    data,
		release: func() { _ = unix.Munmap(data) },
	}
}

// Aligned reports whether the slice base sits on a BufferAlign boundary.
func Aligned(buf []byte) bool {
	return uintptr(unsafe.Pointer(unsafe.SliceData(buf)))%BufferAlign == 0
}
