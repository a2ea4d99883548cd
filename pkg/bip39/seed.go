package bip39

import (
	"crypto/sha512"
	"encoding/hex"

	"golang.org/x/crypto/pbkdf2"
	"golang.org/x/text/unicode/norm"

	"github.com/Klingon-tech/klingnet-bip39/internal/secure"
)

// SeedSize is the length of a derived seed in bytes (512 bits).
const SeedSize = 64

const (
	seedIterations = 2048
	seedSaltPrefix = "mnemonic"
)

// Seed is the 64-byte output of BIP-39 key derivation. It holds no reference
// to the mnemonic it came from. Call Destroy when done.
type Seed struct {
	b [SeedSize]byte
}

// NewSeed derives the seed for m and passphrase.
func NewSeed(m *Mnemonic, passphrase string) *Seed {
	return deriveSeed(m.phrase.Bytes(), passphrase)
}

// DeriveSeed derives a seed from any phrase and passphrase using
// PBKDF2-HMAC-SHA512 with 2048 iterations. Both inputs are NFKD-normalized and
// the salt is "mnemonic" followed by the passphrase. It never fails; checking
// the phrase is Decode's job.
func DeriveSeed(phrase, passphrase string) *Seed {
	p := []byte(phrase)
	defer secure.Wipe(p)
	return deriveSeed(p, passphrase)
}

func deriveSeed(phrase []byte, passphrase string) *Seed {
	// Append always copies, so wiping password never touches phrase.
	password := norm.NFKD.Append(nil, phrase...)
	pass := []byte(passphrase)
	salt := norm.NFKD.Append([]byte(seedSaltPrefix), pass...)
	key := pbkdf2.Key(password, salt, seedIterations, SeedSize, sha512.New)
	defer secure.Wipe(password, pass, salt, key)

	s := &Seed{}
	copy(s.b[:], key)
	return s
}

// Bytes returns a copy of the seed. The caller owns and should wipe it.
func (s *Seed) Bytes() []byte {
	out := make([]byte, SeedSize)
	copy(out, s.b[:])
	return out
}

// CopyTo copies the seed into dst and returns the number of bytes copied.
func (s *Seed) CopyTo(dst []byte) int {
	return copy(dst, s.b[:])
}

// Hex returns the seed as lowercase hex.
func (s *Seed) Hex() string {
	return hex.EncodeToString(s.b[:])
}

// Destroy wipes the seed.
func (s *Seed) Destroy() {
	if s == nil {
		return
	}
	secure.Wipe(s.b[:])
}
