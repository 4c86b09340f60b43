// Package estree serializes the tree for the two normal-path payload
// forms: ESTree JSON text and a self-describing compact binary form.
// Neither codec is hand-rolled; both lean on the node structs' tags, so
// field order in the payloads matches declaration order in the ast
// package and therefore the published schema.
package estree

import (
	"encoding/json"

	"github.com/vmihailenco/msgpack/v5"

	"velox/internal/ast"
)

// ProgramJSON renders the tree as ESTree JSON text.
func ProgramJSON(p *ast.Program) (string, error) {
	out, err := json.Marshal(p)
	if err != nil {
		return "", err
	}
	return string(out), nil
}

// ProgramBinary renders the tree as msgpack: string-keyed maps in
// declaration order, so the payload can be decoded without this
// package's type definitions.
func ProgramBinary(p *ast.Program) ([]byte, error) {
	return msgpack.Marshal(p)
}
