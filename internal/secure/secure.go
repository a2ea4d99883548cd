// Package secure provides scoped handling of byte buffers that hold secret
// material (entropy, phrases, seeds, derived keys). Every buffer obtained
// here is overwritten with zeros when its owner is done with it.
package secure

import (
	"crypto/subtle"
	"runtime"
)

// Wipe overwrites every given slice with zeros.
func Wipe(bufs ...[]byte) {
	for _, b := range bufs {
		if len(b) == 0 {
			continue
		}
		clear(b)
		// Keep the store from being elided as dead.
		runtime.KeepAlive(b)
	}
}

// Buffer owns a byte slice holding secret material.
// The zero value is an empty, already-wiped buffer.
type Buffer struct {
	b []byte
}

// NewBuffer allocates a zeroed buffer of n bytes.
func NewBuffer(n int) *Buffer {
	if n <= 0 {
		return &Buffer{}
	}
	return &Buffer{b: make([]byte, n)}
}

// FromBytes copies src into a new Buffer. src is left untouched; callers that
// own src should wipe it themselves.
func FromBytes(src []byte) *Buffer {
	buf := NewBuffer(len(src))
	copy(buf.b, src)
	return buf
}

// Take adopts src without copying. The Buffer becomes the owner and src must
// not be used by the caller afterwards.
func Take(src []byte) *Buffer {
	return &Buffer{b: src}
}

// Bytes returns the underlying slice. It aliases the buffer and becomes all
// zeros after Wipe.
func (b *Buffer) Bytes() []byte {
	if b == nil {
		return nil
	}
	return b.b
}

// Copy returns an independent copy of the contents. The caller owns it.
func (b *Buffer) Copy() []byte {
	if b == nil || b.b == nil {
		return nil
	}
	out := make([]byte, len(b.b))
	copy(out, b.b)
	return out
}

// Len returns the buffer length, or 0 after Wipe.
func (b *Buffer) Len() int {
	if b == nil {
		return 0
	}
	return len(b.b)
}

// Wipe zeros the contents and releases the slice. Safe to call more than once.
func (b *Buffer) Wipe() {
	if b == nil {
		return
	}
	Wipe(b.b)
	b.b = nil
}

// Scoped allocates an n-byte buffer, passes it to fn, and wipes it on every
// exit path, including a panic inside fn.
func Scoped(n int, fn func(buf []byte) error) error {
	buf := make([]byte, n)
	defer Wipe(buf)
	return fn(buf)
}

// Equal reports whether a and b hold the same bytes, in constant time for
// equal-length inputs.
func Equal(a, b []byte) bool {
	return subtle.ConstantTimeCompare(a, b) == 1
}
