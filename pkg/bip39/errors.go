package bip39

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidChecksum is returned when the checksum bits carried by a
	// phrase do not match the checksum of its entropy.
	ErrInvalidChecksum = errors.New("invalid checksum")

	// ErrInvalidWord is returned when a phrase token is not in the word list.
	ErrInvalidWord = errors.New("invalid word in phrase")

	// ErrInvalidOrder is returned when a custom word list is not strictly
	// increasing.
	ErrInvalidOrder = errors.New("invalid word list order")

	// ErrUnknownLanguage is returned for an unsupported language code.
	ErrUnknownLanguage = errors.New("unknown language")
)

// InvalidKeysizeError reports entropy whose size is not 128, 160, 192, 224
// or 256 bits.
type InvalidKeysizeError struct {
	Bits int
}

func (e *InvalidKeysizeError) Error() string {
	return fmt.Sprintf("invalid keysize: %d", e.Bits)
}

// InvalidWordLengthError reports a phrase whose word count is not 12, 15,
// 18, 21 or 24.
type InvalidWordLengthError struct {
	Count int
}

func (e *InvalidWordLengthError) Error() string {
	return fmt.Sprintf("invalid number of words in phrase: %d", e.Count)
}

// InvalidWordCountError reports a custom word list that does not hold
// exactly WordListSize words.
type InvalidWordCountError struct {
	Count int
}

func (e *InvalidWordCountError) Error() string {
	return fmt.Sprintf("invalid number of words in word list: %d", e.Count)
}

// InvalidEntropyLengthError reports entropy that does not match the size a
// specific MnemonicType requires.
type InvalidEntropyLengthError struct {
	Bits int
	Type MnemonicType
}

func (e *InvalidEntropyLengthError) Error() string {
	return fmt.Sprintf("invalid entropy length %dbits for mnemonic type %s", e.Bits, e.Type)
}
