package source

// FileFlags encodes metadata about a source text.
type FileFlags uint8

const (
	// FileVirtual indicates the text was supplied from memory (API call, test, stdin).
	FileVirtual FileFlags = 1 << iota
	FileHadBOM
	FileTranscodedUTF16
)

// File captures content and derived metadata for one source text.
// Content is the exact byte range the lexer and all spans refer to;
// it is never copied or normalized after construction.
type File struct {
	Path    string
	Content []byte
	LineIdx []uint32 // byte offset of each line start, LineIdx[0] == 0
	Flags   FileFlags
}

// LineCol represents a human-readable position in a source file.
type LineCol struct {
	Line uint32 // 1-based
	Col  uint32 // 1-based, in bytes
}
