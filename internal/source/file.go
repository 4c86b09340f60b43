package source

import (
	"fmt"
	"os"
	"sort"
	"unsafe"

	"fortio.org/safecast"
)

// FromBytes wraps an in-memory source text. The bytes are aliased, not
// copied; the caller must keep them alive for the lifetime of the File.
func FromBytes(path string, content []byte) *File {
	return newFile(path, content, FileVirtual)
}

// FromString wraps an in-memory source text.
func FromString(path, text string) *File {
	return newFile(path, []byte(text), FileVirtual)
}

// Load reads a file from disk and decodes it (BOM stripping, UTF-16
// transcoding) into UTF-8 content.
func Load(path string) (*File, error) {
	// #nosec G304 -- path is provided by the caller
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	content, flags, err := decode(raw)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}
	return newFile(path, content, flags), nil
}

func newFile(path string, content []byte, flags FileFlags) *File {
	if _, err := safecast.Conv[uint32](len(content)); err != nil {
		panic(fmt.Errorf("source length overflow: %w", err))
	}
	return &File{
		Path:    path,
		Content: content,
		LineIdx: buildLineIndex(content),
		Flags:   flags,
	}
}

// buildLineIndex returns the byte offset of each line start.
func buildLineIndex(content []byte) []uint32 {
	idx := make([]uint32, 1, 16)
	for i, b := range content {
		if b == '\n' {
			idx = append(idx, uint32(i)+1)
		}
	}
	return idx
}

// LineCol resolves a byte offset to a 1-based line/column pair.
func (f *File) LineCol(off uint32) LineCol {
	line := sort.Search(len(f.LineIdx), func(i int) bool {
		return f.LineIdx[i] > off
	})
	// line is now 1-based index of the line containing off
	start := f.LineIdx[line-1]
	return LineCol{
		Line: uint32(line),
		Col:  off - start + 1,
	}
}

// Line returns the content of a 1-based line, without the trailing newline.
func (f *File) Line(n uint32) []byte {
	if n == 0 || int(n) > len(f.LineIdx) {
		return nil
	}
	start := f.LineIdx[n-1]
	end := uint32(len(f.Content))
	if int(n) < len(f.LineIdx) {
		end = f.LineIdx[n] - 1
	}
	return f.Content[start:end]
}

// Text returns the slice of Content covered by the span.
func (f *File) Text(sp Span) []byte {
	return f.Content[sp.Start:sp.End]
}

// TextString returns the span's text as a string that aliases Content
// instead of copying it. On the raw transfer path this keeps every
// string header inside the tree pointing at buffer memory, which the
// offset-truncation scheme depends on.
func (f *File) TextString(sp Span) string {
	if sp.Empty() {
		return ""
	}
	return unsafe.String(&f.Content[sp.Start], sp.Len())
}
