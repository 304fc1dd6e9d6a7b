package fixed

import (
	"errors"
	"fmt"
)

var ErrOverflow = errors.New("fixed: capacity exceeded")

// Buffer is a byte buffer whose backing storage is allocated once and never grows.
//
// Writes are all-or-nothing: a write that does not fit the current limit stores
// nothing and marks the buffer as overflowed until the next Reset. Buffer
// implements io.Writer so encoders can stream straight into it.
type Buffer struct {
	data       []byte
	limit      int
	overflowed bool
}

// NewBuffer allocates a buffer able to hold at most capacity bytes.
func NewBuffer(capacity int) *Buffer {
	if capacity < 0 {
		capacity = 0
	}
	return &Buffer{
		data:  make([]byte, 0, capacity),
		limit: capacity,
	}
}

// Reset empties the buffer and restricts the next writes to limit bytes.
// The limit can never exceed the capacity given to NewBuffer.
func (b *Buffer) Reset(limit int) error {
	b.data = b.data[:0]
	b.overflowed = false
	if limit < 0 || limit > cap(b.data) {
		b.limit = 0
		return fmt.Errorf("reserve %d bytes out of %d: %w", limit, cap(b.data), ErrOverflow)
	}
	b.limit = limit
	return nil
}

func (b *Buffer) Write(p []byte) (int, error) {
	if b.overflowed || len(p) > b.limit-len(b.data) {
		b.overflowed = true
		return 0, ErrOverflow
	}
	b.data = append(b.data, p...)
	return len(p), nil
}

func (b *Buffer) WriteString(s string) (int, error) {
	if b.overflowed || len(s) > b.limit-len(b.data) {
		b.overflowed = true
		return 0, ErrOverflow
	}
	b.data = append(b.data, s...)
	return len(s), nil
}

// Truncate discards all but the first n buffered bytes. It keeps the overflow
// state.
func (b *Buffer) Truncate(n int) {
	if n < 0 {
		n = 0
	}
	if n < len(b.data) {
		b.data = b.data[:n]
	}
}

// Bytes returns a view of the buffered bytes. The view is only valid until the
// next Reset or Write.
func (b *Buffer) Bytes() []byte {
	return b.data
}

func (b *Buffer) String() string {
	return string(b.data)
}

func (b *Buffer) Len() int {
	return len(b.data)
}

// Limit returns the number of bytes the buffer accepts since the last Reset.
func (b *Buffer) Limit() int {
	return b.limit
}

// Cap returns the capacity the buffer was created with.
func (b *Buffer) Cap() int {
	return cap(b.data)
}

// Overflowed reports whether a write was rejected since the last Reset.
func (b *Buffer) Overflowed() bool {
	return b.overflowed
}
