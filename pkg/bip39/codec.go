package bip39

import (
	"fmt"
	"strings"

	"github.com/Klingon-tech/klingnet-bip39/internal/bitpack"
	"github.com/Klingon-tech/klingnet-bip39/internal/secure"
)

// Encode converts entropy into a phrase over wl. Entropy must be 16, 20, 24,
// 28 or 32 bytes; anything else fails with *InvalidKeysizeError.
func Encode(entropy []byte, wl WordList) (string, error) {
	phrase, err := encodePhrase(entropy, wl)
	if err != nil {
		return "", err
	}
	defer secure.Wipe(phrase)
	return string(phrase), nil
}

// encodePhrase returns the phrase as a byte slice owned by the caller.
func encodePhrase(entropy []byte, wl WordList) ([]byte, error) {
	typ, err := ForKeySize(len(entropy) * 8)
	if err != nil {
		return nil, err
	}

	var phrase []byte
	err = secure.Scoped(len(entropy)+1, func(stream []byte) error {
		// entropy || checksum, checksum bits left-aligned in the final byte.
		copy(stream, entropy)
		stream[len(entropy)] = Checksum(entropy) << uint(8-typ.ChecksumBits())

		indices, err := bitpack.Unpack(stream, bitsPerWord, typ.WordCount())
		if err != nil {
			return fmt.Errorf("split checksummed entropy: %w", err)
		}
		defer clear(indices)

		// Size exactly so append never reallocates and strands a copy.
		n := len(indices) - 1
		for _, idx := range indices {
			n += len(wl.Word(idx))
		}
		phrase = make([]byte, 0, n)
		for i, idx := range indices {
			if i > 0 {
				phrase = append(phrase, ' ')
			}
			phrase = append(phrase, wl.Word(idx)...)
		}
		return nil
	})
	if err != nil {
		secure.Wipe(phrase)
		return nil, err
	}
	return phrase, nil
}

// Decode validates phrase against wl and returns its entropy. Words are
// separated by any run of whitespace and matched exactly.
//
// Failures: *InvalidWordLengthError for a word count other than 12, 15, 18,
// 21 or 24; ErrInvalidWord for a token missing from wl; ErrInvalidChecksum
// when the embedded checksum does not match.
func Decode(phrase string, wl WordList) ([]byte, error) {
	words := strings.Fields(phrase)
	typ, err := ForWordCount(len(words))
	if err != nil {
		return nil, err
	}

	indices := make([]uint16, len(words))
	defer clear(indices)
	for i, w := range words {
		idx, err := wl.Index(w)
		if err != nil {
			return nil, fmt.Errorf("word %d: %w", i+1, err)
		}
		indices[i] = idx
	}

	stream, err := bitpack.Pack(indices, bitsPerWord)
	if err != nil {
		return nil, fmt.Errorf("join word indices: %w", err)
	}
	defer secure.Wipe(stream)

	n := typ.EntropyBytes()
	got := stream[n] >> uint(8-typ.ChecksumBits())
	if got != Checksum(stream[:n]) {
		return nil, ErrInvalidChecksum
	}

	entropy := make([]byte, n)
	copy(entropy, stream[:n])
	return entropy, nil
}

// Validate reports whether phrase decodes cleanly over wl.
func Validate(phrase string, wl WordList) error {
	entropy, err := Decode(phrase, wl)
	secure.Wipe(entropy)
	return err
}
