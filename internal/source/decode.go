package source

import (
	"bytes"

	"golang.org/x/text/encoding/unicode"
)

var (
	bomUTF8    = []byte{0xEF, 0xBB, 0xBF}
	bomUTF16LE = []byte{0xFF, 0xFE}
	bomUTF16BE = []byte{0xFE, 0xFF}
)

// decode normalizes raw file bytes to BOM-free UTF-8.
// UTF-16 texts (detected by BOM) are transcoded; anything else is
// passed through untouched and validated later by the caller.
func decode(raw []byte) ([]byte, FileFlags, error) {
	switch {
	case bytes.HasPrefix(raw, bomUTF8):
		return raw[len(bomUTF8):], FileHadBOM, nil

	case bytes.HasPrefix(raw, bomUTF16LE), bytes.HasPrefix(raw, bomUTF16BE):
		// UseBOM consumes the mark and picks the byte order from it.
		dec := unicode.UTF16(unicode.LittleEndian, unicode.UseBOM).NewDecoder()
		out, err := dec.Bytes(raw)
		if err != nil {
			return nil, 0, err
		}
		return out, FileHadBOM | FileTranscodedUTF16, nil
	}
	return raw, 0, nil
}
