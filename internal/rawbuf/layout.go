package rawbuf

import "encoding/binary"

// Buffer layout, byte-exact:
//
//	[0, sourceLen)                      source text, caller-written
//	[DataOffset(sourceLen), ...)        arena-managed data region
//	[len-16, len-12)                    root offset, little-endian u32
//	[len-12, len)                       reserved, never written
//
// The trailer helpers address relative to the slice end so the layout
// arithmetic stays testable on reduced-size buffers; the protocol layer
// is what pins len(buf) to BufferSize.

// DataOffset returns the start of the arena data region: the source
// length rounded up to 16 bytes.
func DataOffset(sourceLen int) int {
	return (sourceLen + 15) &^ 15
}

// DataSize returns the size of the arena data region for a buffer of
// totalSize bytes. Negative results mean the source leaves no room.
func DataSize(totalSize, sourceLen int) int {
	return totalSize - TrailerSize - DataOffset(sourceLen)
}

// WriteRootOffset stores the tree root's buffer offset in the trailer.
// The 12 reserved trailer bytes are left untouched.
func WriteRootOffset(buf []byte, off uint32) {
	binary.LittleEndian.PutUint32(buf[len(buf)-TrailerSize:], off)
}

// RootOffset reads the tree root's buffer offset back from the trailer.
func RootOffset(buf []byte) uint32 {
	return binary.LittleEndian.Uint32(buf[len(buf)-TrailerSize:])
}
