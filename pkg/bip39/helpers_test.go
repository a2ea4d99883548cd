package bip39

import (
	"crypto/rand"
	"encoding/hex"
	"testing"
)

var testRegistry = NewRegistry()

func english(t *testing.T) *BuiltinList {
	t.Helper()
	wl, err := testRegistry.WordList(English)
	if err != nil {
		t.Fatalf("WordList(English) error: %v", err)
	}
	return wl
}

func mustHex(t *testing.T, s string) []byte {
	t.Helper()
	b, err := hex.DecodeString(s)
	if err != nil {
		t.Fatalf("bad hex %q: %v", s, err)
	}
	return b
}

func randomEntropy(t *testing.T, n int) []byte {
	t.Helper()
	b := make([]byte, n)
	if _, err := rand.Read(b); err != nil {
		t.Fatalf("rand.Read() error: %v", err)
	}
	return b
}

func repeatByte(b byte, n int) []byte {
	out := make([]byte, n)
	for i := range out {
		out[i] = b
	}
	return out
}
