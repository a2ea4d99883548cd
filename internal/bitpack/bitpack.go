// Package bitpack serializes fixed-width unsigned values into a contiguous
// MSB-first bit stream and back.
package bitpack

import (
	"errors"
	"fmt"
)

// MaxWidth is the widest value Pack and Unpack accept.
const MaxWidth = 16

var (
	// ErrWidth is returned for a width outside [1, MaxWidth].
	ErrWidth = errors.New("bitpack: width out of range")

	// ErrValueRange is returned when a value does not fit in the width.
	ErrValueRange = errors.New("bitpack: value exceeds width")

	// ErrShortBuffer is returned when the buffer holds fewer bits than requested.
	ErrShortBuffer = errors.New("bitpack: buffer too short")
)

// PackedLen returns the number of bytes needed to hold count values of width bits.
func PackedLen(count, width int) int {
	return (count*width + 7) / 8
}

// Pack writes values as a continuous MSB-first bit stream, width bits each.
// The trailing bits of the last byte are zero.
func Pack(values []uint16, width int) ([]byte, error) {
	if width < 1 || width > MaxWidth {
		return nil, fmt.Errorf("%w: %d", ErrWidth, width)
	}

	out := make([]byte, PackedLen(len(values), width))
	bit := 0
	for i, v := range values {
		if uint32(v) >= 1<<uint(width) {
			clear(out)
			return nil, fmt.Errorf("%w: values[%d] = %d, width %d", ErrValueRange, i, v, width)
		}
		for shift := width - 1; shift >= 0; shift-- {
			if (v>>uint(shift))&1 == 1 {
				out[bit/8] |= 0x80 >> uint(bit%8)
			}
			bit++
		}
	}
	return out, nil
}

// Unpack reads count values of width bits from buf, MSB-first, ignoring
// byte alignment. Bits past count*width are not inspected.
func Unpack(buf []byte, width, count int) ([]uint16, error) {
	if width < 1 || width > MaxWidth {
		return nil, fmt.Errorf("%w: %d", ErrWidth, width)
	}
	if count < 0 || len(buf)*8 < count*width {
		return nil, fmt.Errorf("%w: have %d bits, need %d", ErrShortBuffer, len(buf)*8, count*width)
	}

	out := make([]uint16, count)
	bit := 0
	for i := range out {
		var v uint16
		for j := 0; j < width; j++ {
			v <<= 1
			if buf[bit/8]&(0x80>>uint(bit%8)) != 0 {
				v |= 1
			}
			bit++
		}
		out[i] = v
	}
	return out, nil
}
