package bitpack

import (
	"bytes"
	"errors"
	"math/rand/v2"
	"slices"
	"testing"
)

func TestPack_KnownLayout(t *testing.T) {
	tests := []struct {
		name   string
		values []uint16
		width  int
		want   []byte
	}{
		{"empty", nil, 11, []byte{}},
		{"single 11-bit max", []uint16{2047}, 11, []byte{0xff, 0xe0}},
		{"two 11-bit", []uint16{1, 2047}, 11, []byte{0x00, 0x3f, 0xfc}},
		{"byte aligned", []uint16{0xab, 0xcd}, 8, []byte{0xab, 0xcd}},
		{"nibbles", []uint16{0x1, 0x2, 0x3}, 4, []byte{0x12, 0x30}},
		{"single bits", []uint16{1, 0, 1, 1, 0, 0, 0, 1, 1}, 1, []byte{0xb1, 0x80}},
		{"16-bit", []uint16{0xbeef}, 16, []byte{0xbe, 0xef}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Pack(tt.values, tt.width)
			if err != nil {
				t.Fatalf("Pack() error: %v", err)
			}
			if !bytes.Equal(got, tt.want) {
				t.Errorf("Pack() = %x, want %x", got, tt.want)
			}
		})
	}
}

func TestPack_Length(t *testing.T) {
	for width := 1; width <= MaxWidth; width++ {
		for count := 0; count < 30; count++ {
			buf, err := Pack(make([]uint16, count), width)
			if err != nil {
				t.Fatalf("Pack(%d, %d) error: %v", count, width, err)
			}
			want := (count*width + 7) / 8
			if len(buf) != want {
				t.Errorf("len(Pack(%d values, width %d)) = %d, want %d", count, width, len(buf), want)
			}
		}
	}
}

func TestRoundTrip(t *testing.T) {
	rng := rand.New(rand.NewPCG(1, 2))
	for width := 1; width <= MaxWidth; width++ {
		for count := 0; count < 40; count++ {
			values := make([]uint16, count)
			for i := range values {
				values[i] = uint16(rng.IntN(1 << width))
			}

			buf, err := Pack(values, width)
			if err != nil {
				t.Fatalf("Pack() error: %v", err)
			}
			got, err := Unpack(buf, width, count)
			if err != nil {
				t.Fatalf("Unpack() error: %v", err)
			}
			if !slices.Equal(got, values) {
				t.Fatalf("width %d count %d: Unpack(Pack(x)) = %v, want %v", width, count, got, values)
			}
		}
	}
}

func TestPack_TrailingBitsZero(t *testing.T) {
	buf, err := Pack([]uint16{0x7ff, 0x7ff, 0x7ff}, 11)
	if err != nil {
		t.Fatalf("Pack() error: %v", err)
	}
	// 33 bits used, 7 padding bits in the last byte.
	if last := buf[len(buf)-1]; last != 0x80 {
		t.Errorf("last byte = %08b, want 10000000", last)
	}
}

func TestUnpack_IgnoresAlignment(t *testing.T) {
	// 0b1010_1010 0b1100_0000 read as 3-bit groups: 101 010 101 100
	got, err := Unpack([]byte{0xaa, 0xc0}, 3, 4)
	if err != nil {
		t.Fatalf("Unpack() error: %v", err)
	}
	want := []uint16{5, 2, 5, 4}
	if !slices.Equal(got, want) {
		t.Errorf("Unpack() = %v, want %v", got, want)
	}
}

func TestPack_Errors(t *testing.T) {
	if _, err := Pack([]uint16{1}, 0); !errors.Is(err, ErrWidth) {
		t.Errorf("width 0: err = %v, want ErrWidth", err)
	}
	if _, err := Pack([]uint16{1}, 17); !errors.Is(err, ErrWidth) {
		t.Errorf("width 17: err = %v, want ErrWidth", err)
	}
	if _, err := Pack([]uint16{2048}, 11); !errors.Is(err, ErrValueRange) {
		t.Errorf("value 2048 width 11: err = %v, want ErrValueRange", err)
	}
}

func TestUnpack_Errors(t *testing.T) {
	if _, err := Unpack([]byte{0xff}, 11, 1); !errors.Is(err, ErrShortBuffer) {
		t.Errorf("short buffer: err = %v, want ErrShortBuffer", err)
	}
	if _, err := Unpack([]byte{0xff}, 0, 1); !errors.Is(err, ErrWidth) {
		t.Errorf("width 0: err = %v, want ErrWidth", err)
	}
	if _, err := Unpack([]byte{0xff}, 4, -1); !errors.Is(err, ErrShortBuffer) {
		t.Errorf("negative count: err = %v, want ErrShortBuffer", err)
	}
}
