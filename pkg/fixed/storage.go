package fixed

import (
	"bytes"
	"fmt"
)

// Capacity is implemented by the zero-size marker types that fix the capacity of
// a Storage. Each marker yields a distinct Storage type, so an AuthToken can never
// be passed where a NetworkName is expected.
type Capacity interface {
	Capacity() int
}

// Storage is an immutable byte string bounded by the capacity of C.
// The zero value is an empty Storage.
type Storage[C Capacity] struct {
	data []byte
}

// StorageFrom copies content into a new Storage. Content longer than the
// capacity is rejected, never truncated.
func StorageFrom[C Capacity](content []byte) (Storage[C], error) {
	var c C
	if len(content) > c.Capacity() {
		return Storage[C]{}, fmt.Errorf("%d bytes do not fit %d: %w", len(content), c.Capacity(), ErrOverflow)
	}
	return Storage[C]{data: bytes.Clone(content)}, nil
}

// StorageFromString is StorageFrom for text content.
func StorageFromString[C Capacity](content string) (Storage[C], error) {
	return StorageFrom[C]([]byte(content))
}

// Bytes returns a copy of the stored bytes.
func (s Storage[C]) Bytes() []byte {
	return bytes.Clone(s.data)
}

func (s Storage[C]) String() string {
	return string(s.data)
}

func (s Storage[C]) Len() int {
	return len(s.data)
}

func (s Storage[C]) Cap() int {
	var c C
	return c.Capacity()
}

func (s Storage[C]) IsEmpty() bool {
	return len(s.data) == 0
}

// Equal compares the stored bytes.
func (s Storage[C]) Equal(other Storage[C]) bool {
	return bytes.Equal(s.data, other.data)
}
