package arena

import "unsafe"

// Alloc copies v into the arena and returns a pointer to the copy.
// The pointer stays valid and stable for the arena's whole lifetime.
func Alloc[T any](a *Arena, v T) *T {
	p := (*T)(a.alloc(unsafe.Sizeof(v), unsafe.Alignof(v)))
	*p = v
	return p
}

// Slice copies vals into a fresh arena-backed slice.
// Returns nil for an empty input so empty node lists stay allocation-free.
func Slice[T any](a *Arena, vals []T) []T {
	if len(vals) == 0 {
		return nil
	}
	var zero T
	p := a.alloc(unsafe.Sizeof(zero)*uintptr(len(vals)), unsafe.Alignof(zero))
	out := unsafe.Slice((*T)(p), len(vals))
	copy(out, vals)
	return out
}

// String copies s into the arena and returns a string aliasing that copy.
// Used for cooked literal values that cannot alias the source text.
func String(a *Arena, s string) string {
	if len(s) == 0 {
		return ""
	}
	b := a.AllocBytes(len(s))
	copy(b, s)
	return unsafe.String(unsafe.SliceData(b), len(b))
}
