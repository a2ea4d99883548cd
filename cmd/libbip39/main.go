// Command libbip39 builds the C shared library:
//
//	go build -buildmode=c-shared -o libbip39.so ./cmd/libbip39
//
// The exported functions convert C pointers to Go slices and delegate to
// internal/ffi, which owns validation, status codes and wiping.
package main

/*
#include <stdint.h>
#include <stddef.h>
#include <string.h>
*/
import "C"

import (
	"unsafe"

	"github.com/Klingon-tech/klingnet-bip39/internal/ffi"
	"github.com/Klingon-tech/klingnet-bip39/pkg/bip39"
)

// recoverShim turns a panic in the pointer conversion into a status so it
// never unwinds into C.
func recoverShim(st *C.int8_t) {
	if r := recover(); r != nil {
		*st = C.int8_t(ffi.StatusInternalFault)
	}
}

// bip39_generate_new_seed writes a fresh NUL-terminated English phrase of
// wordCount words (12, 18 or 24) into phraseOut and its 64-byte seed, for an
// empty passphrase, into seedOut. Only the first MaxPhraseLen bytes of
// phraseOut are ever used.
//
//export bip39_generate_new_seed
func bip39_generate_new_seed(wordCount C.uint8_t, phraseOut *C.char, capacity C.size_t, seedOut *C.uint8_t) (st C.int8_t) {
	defer recoverShim(&st)

	if phraseOut == nil || seedOut == nil {
		return C.int8_t(ffi.StatusNullPointer)
	}
	n := ffi.ClampLen(uint64(capacity), ffi.MaxPhraseLen)
	phrase := unsafe.Slice((*byte)(unsafe.Pointer(phraseOut)), n)
	seed := unsafe.Slice((*byte)(unsafe.Pointer(seedOut)), bip39.SeedSize)
	return C.int8_t(ffi.Generate(int(wordCount), phrase, seed))
}

// bip39_regenerate_seed_from_mnemonic validates the NUL-terminated phrase,
// whose length must equal length, and writes its 64-byte seed for an empty
// passphrase into seedOut. At most MaxPhraseLen+1 bytes of phrase are read.
//
//export bip39_regenerate_seed_from_mnemonic
func bip39_regenerate_seed_from_mnemonic(phrase *C.char, length C.size_t, seedOut *C.uint8_t) (st C.int8_t) {
	defer recoverShim(&st)

	if phrase == nil || seedOut == nil {
		return C.int8_t(ffi.StatusNullPointer)
	}
	limit := ffi.MaxPhraseLen + 1
	n := int(C.strnlen(phrase, C.size_t(limit)))
	declared := ffi.ClampLen(uint64(length), limit)
	in := unsafe.Slice((*byte)(unsafe.Pointer(phrase)), n)
	seed := unsafe.Slice((*byte)(unsafe.Pointer(seedOut)), bip39.SeedSize)
	return C.int8_t(ffi.Regenerate(in, declared, seed))
}

func main() {}
