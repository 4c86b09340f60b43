package velox

import (
	"fmt"
	"unicode/utf8"
	"unsafe"

	"fortio.org/safecast"

	"velox/internal/arena"
	"velox/internal/parser"
	"velox/internal/rawbuf"
	"velox/internal/source"
)

// CreateBuffer acquires one raw transfer buffer: 2 GiB on a 4 GiB
// boundary. Ownership transfers wholly to the caller; Close it when the
// host side is done with every tree built inside it.
func CreateBuffer() *rawbuf.Buffer {
	return rawbuf.Create()
}

// ParseSyncRaw parses source text already written into the head of a raw
// transfer buffer and builds the tree inside the same buffer.
//
// On entry buf[:sourceLen] holds the UTF-8 source. On return the trailer
// holds the root node's 32-bit buffer offset; every string in the tree
// aliases buffer memory, so nothing needs to cross the boundary by copy.
// The buffer layout is fixed, so violations of the contract (wrong
// buffer size, misaligned base, invalid UTF-8, source so large the data
// region vanishes) are caller bugs and panic.
func ParseSyncRaw(buf []byte, sourceLen uint32, opts *Options) {
	if len(buf) != rawbuf.BufferSize {
		panic(fmt.Sprintf("velox: raw buffer must be %d bytes, got %d", rawbuf.BufferSize, len(buf)))
	}
	if !rawbuf.Aligned(buf) {
		panic("velox: raw buffer base is not aligned")
	}
	src := buf[:sourceLen]
	if !utf8.Valid(src) {
		panic("velox: raw buffer source is not valid UTF-8")
	}

	dataOff := rawbuf.DataOffset(int(sourceLen))
	dataSize := rawbuf.DataSize(len(buf), int(sourceLen))
	if dataSize < arena.MinSize {
		panic(fmt.Sprintf("velox: source of %d bytes leaves no data region", sourceLen))
	}

	a := arena.FromRawParts(buf[dataOff : dataOff+dataSize : dataOff+dataSize])
	defer a.Release()

	f := source.FromBytes(filenameOf(opts), src)
	ret := parser.Parse(a, f, parserOptions(opts, f))

	root := uintptr(unsafe.Pointer(ret.Program))
	base := uintptr(unsafe.Pointer(unsafe.SliceData(buf)))
	off, err := safecast.Conv[uint32](root - base)
	if err != nil {
		panic(fmt.Errorf("velox: root offset does not fit u32: %w", err))
	}
	rawbuf.WriteRootOffset(buf, off)
}
