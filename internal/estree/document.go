package estree

import (
	"bytes"
	"fmt"

	"github.com/vmihailenco/msgpack/v5"
	"github.com/vmihailenco/msgpack/v5/msgpcode"
)

// Document is an order-preserving generic view of one binary payload:
// the schema-driven counterpart of decoding into typed nodes. Scalars
// keep their raw msgpack encoding, so re-encoding a decoded document
// reproduces the payload byte for byte.
type Document []DocEntry

type DocEntry struct {
	Key string
	Val any // Document, []any, or msgpack.RawMessage
}

// Get returns the value for a key, or nil.
func (d Document) Get(key string) any {
	for _, e := range d {
		if e.Key == key {
			return e.Val
		}
	}
	return nil
}

// GetString decodes a scalar field as a string.
func (d Document) GetString(key string) (string, bool) {
	raw, ok := d.Get(key).(msgpack.RawMessage)
	if !ok {
		return "", false
	}
	var s string
	if err := msgpack.Unmarshal(raw, &s); err != nil {
		return "", false
	}
	return s, true
}

// Decode parses a binary payload into a generic value.
func Decode(data []byte) (any, error) {
	dec := msgpack.NewDecoder(bytes.NewReader(data))
	return decodeValue(dec)
}

// Encode is the inverse of Decode.
func Encode(v any) ([]byte, error) {
	var buf bytes.Buffer
	enc := msgpack.NewEncoder(&buf)
	if err := encodeValue(enc, v); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func decodeValue(dec *msgpack.Decoder) (any, error) {
	code, err := dec.PeekCode()
	if err != nil {
		return nil, err
	}

	switch {
	case msgpcode.IsFixedMap(code), code == msgpcode.Map16, code == msgpcode.Map32:
		n, err := dec.DecodeMapLen()
		if err != nil {
			return nil, err
		}
		doc := make(Document, 0, n)
		for i := 0; i < n; i++ {
			key, err := dec.DecodeString()
			if err != nil {
				return nil, fmt.Errorf("map key: %w", err)
			}
			val, err := decodeValue(dec)
			if err != nil {
				return nil, fmt.Errorf("field %q: %w", key, err)
			}
			doc = append(doc, DocEntry{Key: key, Val: val})
		}
		return doc, nil

	case msgpcode.IsFixedArray(code), code == msgpcode.Array16, code == msgpcode.Array32:
		n, err := dec.DecodeArrayLen()
		if err != nil {
			return nil, err
		}
		arr := make([]any, 0, n)
		for i := 0; i < n; i++ {
			v, err := decodeValue(dec)
			if err != nil {
				return nil, err
			}
			arr = append(arr, v)
		}
		return arr, nil
	}

	return dec.DecodeRaw()
}

func encodeValue(enc *msgpack.Encoder, v any) error {
	switch t := v.(type) {
	case Document:
		if err := enc.EncodeMapLen(len(t)); err != nil {
			return err
		}
		for _, e := range t {
			if err := enc.EncodeString(e.Key); err != nil {
				return err
			}
			if err := encodeValue(enc, e.Val); err != nil {
				return err
			}
		}
		return nil
	case []any:
		if err := enc.EncodeArrayLen(len(t)); err != nil {
			return err
		}
		for _, e := range t {
			if err := encodeValue(enc, e); err != nil {
				return err
			}
		}
		return nil
	case msgpack.RawMessage:
		return enc.Encode(t)
	}
	return fmt.Errorf("estree: cannot encode %T", v)
}
