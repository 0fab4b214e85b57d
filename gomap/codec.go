package gomap

import "github.com/compound-format/go-compound/tag"

// TypeCodec is a bidirectional converter between a record type and the
// tag encoding, built around ToTag and FromTag.
type TypeCodec[T any] struct{}

// For produces the codec for T.
func For[T any]() *TypeCodec[T] {
	return &TypeCodec[T]{}
}

func (c *TypeCodec[T]) Marshal(v T) (*tag.Tag, error) {
	return ToTag(v)
}

func (c *TypeCodec[T]) Unmarshal(t *tag.Tag) (T, error) {
	var v T
	if err := FromTag(t, &v); err != nil {
		var zero T
		return zero, err
	}
	return v, nil
}
