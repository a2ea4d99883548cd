// Package ffi implements the C-callable seed functions on Go slices. The cgo
// wrappers in cmd/libbip39 only translate pointers; every check, status code
// and wipe lives here so it can be tested without cgo.
//
// Both entry points use the English word list and an empty passphrase, and
// never panic: malformed input becomes a Status.
package ffi

import (
	"crypto/rand"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/Klingon-tech/klingnet-bip39/internal/log"
	"github.com/Klingon-tech/klingnet-bip39/pkg/bip39"
)

// MaxPhraseLen bounds every length taken from a C caller. The longest
// English phrase is 215 bytes; anything past this is never a mnemonic.
const MaxPhraseLen = 4096

var registry = bip39.NewRegistry()

// english panics if the built-in list is broken; callers run it under
// recoverStatus.
func english() *bip39.BuiltinList {
	return registry.MustWordList(bip39.English)
}

// ClampLen converts a C length to an int no larger than limit. Lengths
// above limit, including ones that would overflow int, become limit.
func ClampLen(n uint64, limit int) int {
	if limit < 0 {
		return 0
	}
	if n > uint64(limit) {
		return limit
	}
	return int(n)
}

// entropySource feeds Generate. Tests swap it to simulate failures.
var entropySource io.Reader = rand.Reader

func typeForWordCount(n int) (bip39.MnemonicType, bool) {
	switch n {
	case 12:
		return bip39.Words12, true
	case 18:
		return bip39.Words18, true
	case 24:
		return bip39.Words24, true
	}
	return 0, false
}

// recoverStatus turns a panic into StatusInternalFault.
func recoverStatus(op string, st *Status) {
	if r := recover(); r != nil {
		log.FFI.Error().Str("op", op).Msg("recovered internal fault")
		*st = StatusInternalFault
	}
}

// Generate creates a random mnemonic of wordCount words, writes it to
// phraseOut as a NUL-terminated string and writes the 64-byte seed for an
// empty passphrase to seedOut. Nothing is written unless the result is
// StatusOK.
func Generate(wordCount int, phraseOut, seedOut []byte) (st Status) {
	defer func() {
		log.FFI.Debug().Int("words", wordCount).Stringer("status", st).Msg("generate")
	}()
	defer recoverStatus("generate", &st)

	typ, ok := typeForWordCount(wordCount)
	if !ok {
		return StatusWordCount
	}
	if len(seedOut) != bip39.SeedSize {
		return StatusInternalLength
	}

	m, err := bip39.NewWithReader(typ, english(), entropySource)
	if err != nil {
		return StatusEntropy
	}
	defer m.Destroy()

	n := m.PhraseLen()
	if n+1 > len(phraseOut) {
		return StatusCapacity
	}

	seed := bip39.NewSeed(m, "")
	defer seed.Destroy()

	if seed.CopyTo(seedOut) != bip39.SeedSize {
		return StatusInternalLength
	}
	m.CopyPhrase(phraseOut[:n])
	phraseOut[n] = 0
	return StatusOK
}

// Regenerate validates phrase, which must hold exactly declaredLen bytes,
// and writes the 64-byte seed for an empty passphrase to seedOut. Only 12,
// 18 and 24 word phrases are accepted, and a phrase longer than
// MaxPhraseLen fails with StatusDecode. seedOut is untouched on failure.
func Regenerate(phrase []byte, declaredLen int, seedOut []byte) (st Status) {
	defer func() {
		log.FFI.Debug().Stringer("status", st).Msg("regenerate")
	}()
	defer recoverStatus("regenerate", &st)

	if declaredLen != len(phrase) {
		return StatusLengthMismatch
	}
	if len(phrase) > MaxPhraseLen {
		return StatusDecode
	}
	if len(seedOut) != bip39.SeedSize {
		return StatusInternalLength
	}
	if !utf8.Valid(phrase) {
		return StatusDecode
	}

	text := string(phrase)
	words := len(strings.Fields(text))
	typ, ok := typeForWordCount(words)
	if !ok {
		return StatusWordCount
	}

	m, err := bip39.FromPhrase(text, english())
	if err != nil {
		return StatusDecode
	}
	defer m.Destroy()

	if m.Type() != typ {
		return StatusInternalLength
	}

	seed := bip39.NewSeed(m, "")
	defer seed.Destroy()

	if seed.CopyTo(seedOut) != bip39.SeedSize {
		return StatusInternalLength
	}
	return StatusOK
}
