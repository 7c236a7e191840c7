package domain

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
)

var ErrNotObject = errors.New("payload is not a JSON object")

// DecodeObject reads exactly one JSON object from r. Numbers are normalised
// with NormalizeNumbers so templates see integers where the sender wrote them.
func DecodeObject(r io.Reader) (map[string]any, error) {
	dec := json.NewDecoder(r)
	dec.UseNumber()

	var raw any
	if err := dec.Decode(&raw); err != nil {
		return nil, fmt.Errorf("decode payload: %w", err)
	}

	if err := dec.Decode(&struct{}{}); err != io.EOF {
		return nil, errors.New("decode payload: unexpected data after JSON value")
	}

	obj, ok := NormalizeNumbers(raw).(map[string]any)
	if !ok {
		return nil, ErrNotObject
	}
	return obj, nil
}

// DecodeObjectBytes is DecodeObject over a byte slice.
func DecodeObjectBytes(data []byte) (map[string]any, error) {
	return DecodeObject(bytes.NewReader(data))
}

// NormalizeNumbers walks a decoded JSON tree and replaces json.Number leaves
// with int64 when integral and float64 otherwise. Maps and slices are
// rewritten in place.
func NormalizeNumbers(v any) any {
	switch t := v.(type) {
	case map[string]any:
		for k, child := range t {
			t[k] = NormalizeNumbers(child)
		}
		return t
	case []any:
		for i, child := range t {
			t[i] = NormalizeNumbers(child)
		}
		return t
	case json.Number:
		if n, err := t.Int64(); err == nil {
			return n
		}
		if f, err := t.Float64(); err == nil {
			return f
		}
		return t.String()
	default:
		return v
	}
}
