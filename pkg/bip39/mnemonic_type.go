package bip39

import "fmt"

// MnemonicType selects one of the five standard phrase lengths.
type MnemonicType int

// The five BIP-39 sizes. The zero value is not a valid type.
const (
	Words12 MnemonicType = iota + 1
	Words15
	Words18
	Words21
	Words24
)

// Types lists every valid MnemonicType from shortest to longest.
var Types = []MnemonicType{Words12, Words15, Words18, Words21, Words24}

// entropyBits indexed by MnemonicType.
var entropyBits = [...]int{
	Words12: 128,
	Words15: 160,
	Words18: 192,
	Words21: 224,
	Words24: 256,
}

// Valid reports whether t is one of the five standard sizes.
func (t MnemonicType) Valid() bool {
	return t >= Words12 && t <= Words24
}

// EntropyBits returns the entropy size in bits, or 0 for an invalid type.
func (t MnemonicType) EntropyBits() int {
	if !t.Valid() {
		return 0
	}
	return entropyBits[t]
}

// EntropyBytes returns the entropy size in bytes.
func (t MnemonicType) EntropyBytes() int {
	return t.EntropyBits() / 8
}

// ChecksumBits returns the number of checksum bits appended to the entropy.
func (t MnemonicType) ChecksumBits() int {
	return ChecksumBitCount(t.EntropyBits())
}

// TotalBits returns entropy plus checksum bits; always a multiple of 11.
func (t MnemonicType) TotalBits() int {
	return t.EntropyBits() + t.ChecksumBits()
}

// WordCount returns the number of words in a phrase of this type.
func (t MnemonicType) WordCount() int {
	return t.TotalBits() / bitsPerWord
}

func (t MnemonicType) String() string {
	if !t.Valid() {
		return fmt.Sprintf("MnemonicType(%d)", int(t))
	}
	return fmt.Sprintf("Words%d", t.WordCount())
}

// ForWordCount returns the type for a phrase of n words.
func ForWordCount(n int) (MnemonicType, error) {
	for _, t := range Types {
		if t.WordCount() == n {
			return t, nil
		}
	}
	return 0, &InvalidWordLengthError{Count: n}
}

// ForKeySize returns the type for entropy of the given size in bits.
func ForKeySize(bits int) (MnemonicType, error) {
	for _, t := range Types {
		if t.EntropyBits() == bits {
			return t, nil
		}
	}
	return 0, &InvalidKeysizeError{Bits: bits}
}

// CheckEntropy verifies that entropy has exactly the size t requires.
func (t MnemonicType) CheckEntropy(entropy []byte) error {
	if !t.Valid() || len(entropy) != t.EntropyBytes() {
		return &InvalidEntropyLengthError{Bits: len(entropy) * 8, Type: t}
	}
	return nil
}
