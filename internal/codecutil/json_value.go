// Package codecutil provides a generic collections.ValueCodec built on
// encoding/json, used wherever the teacher would normally supply
// codec.CollValue[T] over a protoc-generated proto.Message. See DESIGN.md.
package codecutil

import (
	"encoding/json"
	"fmt"

	"cosmossdk.io/collections"
)

// JSONValue implements collections.ValueCodec[T] for any T that round-trips
// through encoding/json, so collections.Map/Item/IndexedMap can store plain
// Go structs without a protoc-generated Marshal/Unmarshal pair.
type JSONValue[T any] struct {
	name string
}

// NewJSONValue returns a JSONValue codec; name is used only for
// collections.ValueCodec's human-readable metadata.
func NewJSONValue[T any](name string) JSONValue[T] {
	return JSONValue[T]{name: name}
}

var _ collections.ValueCodec[struct{}] = JSONValue[struct{}]{}

func (c JSONValue[T]) Encode(value T) ([]byte, error) {
	return json.Marshal(value)
}

func (c JSONValue[T]) Decode(b []byte) (T, error) {
	var v T
	if err := json.Unmarshal(b, &v); err != nil {
		return v, fmt.Errorf("codecutil: decode %s: %w", c.name, err)
	}
	return v, nil
}

func (c JSONValue[T]) EncodeJSON(value T) ([]byte, error) {
	return json.Marshal(value)
}

func (c JSONValue[T]) DecodeJSON(b []byte) (T, error) {
	return c.Decode(b)
}

func (c JSONValue[T]) Stringify(value T) string {
	b, err := json.Marshal(value)
	if err != nil {
		return fmt.Sprintf("<%s: encode error: %v>", c.name, err)
	}
	return string(b)
}

func (c JSONValue[T]) ValueType() string {
	if c.name != "" {
		return c.name
	}
	return "codecutil.JSONValue"
}
