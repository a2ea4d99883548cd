package bip39

import (
	"bytes"
	"encoding/hex"
	"sync"
	"testing"
)

const abandonAbout = "abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon about"

func TestDeriveSeed_KnownVectors(t *testing.T) {
	tests := []struct {
		name       string
		passphrase string
		want       string
	}{
		{
			name:       "TREZOR passphrase",
			passphrase: "TREZOR",
			want:       "c55257c360c07c72029aebc1b53c05ed0362ada38ead3e3e9efa3708e53495531f09a6987599d18264c1e1c92f2cf141630c7a3c4ab7c81b2f001698e7463b04",
		},
		{
			name:       "empty passphrase",
			passphrase: "",
			want:       "5eb00bbddcf069084889a8ab9155568165f5c453ccb85e70811aaed6f6da5fc19a5ac40b389cd370d086206dec8aa6c43daea6690f20ad3d8d48b2d2ce9e38e4",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			seed := DeriveSeed(abandonAbout, tt.passphrase)
			if got := seed.Hex(); got != tt.want {
				t.Errorf("seed = %s, want %s", got, tt.want)
			}
		})
	}
}

func TestNewSeed_FromZeroEntropy(t *testing.T) {
	m, err := FromEntropy(make([]byte, 16), english(t))
	if err != nil {
		t.Fatalf("FromEntropy() error: %v", err)
	}
	if m.Phrase() != abandonAbout {
		t.Fatalf("Phrase() = %q, want %q", m.Phrase(), abandonAbout)
	}

	seed := NewSeed(m, "")
	want := "5eb00bbddcf069084889a8ab9155568165f5c453ccb85e70811aaed6f6da5fc19a5ac40b389cd370d086206dec8aa6c43daea6690f20ad3d8d48b2d2ce9e38e4"
	if seed.Hex() != want {
		t.Errorf("seed = %s, want %s", seed.Hex(), want)
	}
}

func TestSeed_IndependentOfMnemonic(t *testing.T) {
	m, err := FromPhrase(abandonAbout, english(t))
	if err != nil {
		t.Fatalf("FromPhrase() error: %v", err)
	}
	seed := NewSeed(m, "TREZOR")
	before := seed.Bytes()

	m.Destroy()

	if !bytes.Equal(seed.Bytes(), before) {
		t.Error("destroying the mnemonic must not affect the seed")
	}
}

func TestDeriveSeed_Deterministic(t *testing.T) {
	s1 := DeriveSeed(abandonAbout, "test")
	s2 := DeriveSeed(abandonAbout, "test")
	if !bytes.Equal(s1.Bytes(), s2.Bytes()) {
		t.Error("same mnemonic + passphrase should produce same seed")
	}
	if len(s1.Bytes()) != SeedSize {
		t.Errorf("seed length = %d, want %d", len(s1.Bytes()), SeedSize)
	}
}

func TestDeriveSeed_PassphraseChanges(t *testing.T) {
	s1 := DeriveSeed(abandonAbout, "")
	s2 := DeriveSeed(abandonAbout, "nonempty")
	if bytes.Equal(s1.Bytes(), s2.Bytes()) {
		t.Error("different passphrases should produce different seeds")
	}
}

func TestDeriveSeed_NormalizesInput(t *testing.T) {
	// Precomposed and decomposed forms of "café" must derive the same seed.
	composed := DeriveSeed(abandonAbout, "caf\u00e9")
	decomposed := DeriveSeed(abandonAbout, "cafe\u0301")
	if !bytes.Equal(composed.Bytes(), decomposed.Bytes()) {
		t.Error("passphrase should be NFKD-normalized")
	}

	// Compatibility forms too: U+FB01 (fi ligature) normalizes to "fi".
	lig := DeriveSeed(abandonAbout, "\ufb01")
	plain := DeriveSeed(abandonAbout, "fi")
	if !bytes.Equal(lig.Bytes(), plain.Bytes()) {
		t.Error("passphrase should get compatibility normalization")
	}
}

func TestDeriveSeed_TotalOnInvalidPhrase(t *testing.T) {
	// Derivation never fails; validity is the codec's concern.
	for _, phrase := range []string{"", "not a mnemonic", "\x00\xff"} {
		if s := DeriveSeed(phrase, ""); len(s.Bytes()) != SeedSize {
			t.Errorf("DeriveSeed(%q) produced %d bytes", phrase, len(s.Bytes()))
		}
	}
}

func TestDeriveSeed_Concurrent(t *testing.T) {
	want := DeriveSeed(abandonAbout, "TREZOR").Hex()
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if got := DeriveSeed(abandonAbout, "TREZOR").Hex(); got != want {
				t.Errorf("concurrent seed = %s, want %s", got, want)
			}
		}()
	}
	wg.Wait()
}

func TestSeed_CopyToAndDestroy(t *testing.T) {
	seed := DeriveSeed(abandonAbout, "TREZOR")

	out := make([]byte, SeedSize)
	if n := seed.CopyTo(out); n != SeedSize {
		t.Fatalf("CopyTo() = %d, want %d", n, SeedSize)
	}
	if hex.EncodeToString(out) != seed.Hex() {
		t.Error("CopyTo() should match Hex()")
	}

	seed.Destroy()
	if !bytes.Equal(seed.Bytes(), make([]byte, SeedSize)) {
		t.Error("Destroy() should zero the seed")
	}
	var nilSeed *Seed
	nilSeed.Destroy()
}
