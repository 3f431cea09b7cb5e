package jstore

import (
	"encoding/json"
	"fmt"

	"gopkg.in/yaml.v3"
)

// Codec adapts an external serialization library. Encode turns a value into
// bytes or fails with the library's own error; Decode is the reverse. The
// library's error carries no location information, which is why
// FindUnserializablePaths exists.
type Codec interface {
	Encode(v any) ([]byte, error)
	Decode(data []byte, out *any) error
}

// JSON is the default codec. Output is deterministic for equal logical
// content: encoding/json sorts mapping keys at every level, and the fixed
// indent keeps files diffable.
type JSON struct{}

const jsonIndent = "    "

func (JSON) Encode(v any) ([]byte, error) {
	return json.MarshalIndent(v, "", jsonIndent)
}

func (JSON) Decode(data []byte, out *any) error {
	return json.Unmarshal(data, out)
}

// YAML encodes with gopkg.in/yaml.v3, which also emits mapping keys in
// sorted order for Go maps.
type YAML struct{}

func (YAML) Encode(v any) (data []byte, err error) {
	// yaml.v3 reports an unsupported type by panicking with a plain
	// string ("cannot marshal type: ..."); its internal recover only
	// catches its own error type, so the panic has to be caught here to
	// honor the encode-or-fail contract.
	defer func() {
		if r := recover(); r != nil {
			data = nil
			err = fmt.Errorf("yaml: %v", r)
		}
	}()
	return yaml.Marshal(v)
}

func (YAML) Decode(data []byte, out *any) error {
	return yaml.Unmarshal(data, out)
}

// Funcs adapts a marshal/unmarshal function pair to the Codec interface, so
// any serialization library with the usual signatures can be plugged in
// without a named type.
type Funcs struct {
	Marshal   func(v any) ([]byte, error)
	Unmarshal func(data []byte, out any) error
}

func (f Funcs) Encode(v any) ([]byte, error) {
	return f.Marshal(v)
}

func (f Funcs) Decode(data []byte, out *any) error {
	return f.Unmarshal(data, out)
}
