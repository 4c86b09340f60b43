package source

import "path/filepath"

// Type is the goal symbol a text is parsed against.
type Type uint8

const (
	// TypeUnset defers the decision to filename and content detection.
	TypeUnset Type = iota
	TypeScript
	TypeModule
	// TypeUnambiguous parses permissively and lets the parser decide from
	// the presence of import/export items.
	TypeUnambiguous
)

func (t Type) String() string {
	switch t {
	case TypeScript:
		return "script"
	case TypeModule:
		return "module"
	case TypeUnambiguous:
		return "unambiguous"
	}
	return "unset"
}

// TypeFromString maps an option value to a Type.
func TypeFromString(s string) (Type, bool) {
	switch s {
	case "":
		return TypeUnset, true
	case "script":
		return TypeScript, true
	case "module":
		return TypeModule, true
	case "unambiguous":
		return TypeUnambiguous, true
	}
	return TypeUnset, false
}

// TypeFromPath derives a Type from a filename extension.
// Extensions that pin the goal symbol win; everything else is left
// to content-based disambiguation.
func TypeFromPath(path string) Type {
	switch filepath.Ext(path) {
	case ".mjs", ".mts":
		return TypeModule
	case ".cjs", ".cts":
		return TypeScript
	}
	return TypeUnambiguous
}
