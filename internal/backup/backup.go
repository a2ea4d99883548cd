// Package backup seals mnemonic entropy under a password so it can be kept
// somewhere less trusted than the user's memory. Keys come from Argon2id and
// the entropy is encrypted with XChaCha20-Poly1305.
package backup

import (
	"crypto/rand"
	"encoding/binary"
	"errors"
	"fmt"
	"io"

	"golang.org/x/crypto/argon2"
	"golang.org/x/crypto/chacha20poly1305"

	"github.com/Klingon-tech/klingnet-bip39/internal/log"
	"github.com/Klingon-tech/klingnet-bip39/internal/secure"
	"github.com/Klingon-tech/klingnet-bip39/pkg/bip39"
)

// Blob layout constants.
const (
	Version  = 1
	SaltSize = 32
	// Blob format: [version(1)][salt(32)][memory(4)][iterations(4)][parallelism(1)][nonce(24)][ciphertext...]
	headerSize = 1 + SaltSize + 4 + 4 + 1

	// MaxMemory caps the Argon2 memory (KiB) a blob may demand on Open.
	MaxMemory = 1 << 20
)

var (
	// ErrTooShort is returned for a blob smaller than header + nonce + tag.
	ErrTooShort = errors.New("backup blob too short")

	// ErrVersion is returned for an unknown blob version.
	ErrVersion = errors.New("unsupported backup version")

	// ErrParams is returned when a blob carries unusable Argon2 parameters.
	ErrParams = errors.New("invalid key derivation parameters")

	// ErrDecrypt is returned for a wrong password or a tampered blob.
	ErrDecrypt = errors.New("decrypt backup: wrong password or corrupted data")
)

// Params holds Argon2id parameters.
type Params struct {
	Memory      uint32 // in KiB
	Iterations  uint32
	Parallelism uint8
}

// DefaultParams returns recommended Argon2id parameters.
func DefaultParams() Params {
	return Params{
		Memory:      64 * 1024, // 64 MB
		Iterations:  3,
		Parallelism: 4,
	}
}

// Validate checks that p is usable and within MaxMemory.
func (p Params) Validate() error {
	if p.Iterations == 0 || p.Parallelism == 0 {
		return fmt.Errorf("%w: iterations and parallelism must be positive", ErrParams)
	}
	if p.Memory < 8*uint32(p.Parallelism) || p.Memory > MaxMemory {
		return fmt.Errorf("%w: memory %d KiB", ErrParams, p.Memory)
	}
	return nil
}

// deriveKey uses Argon2id to derive a 32-byte encryption key from password and salt.
func deriveKey(password, salt []byte, params Params) []byte {
	return argon2.IDKey(
		password,
		salt,
		params.Iterations,
		params.Memory,
		params.Parallelism,
		chacha20poly1305.KeySize,
	)
}

// Seal encrypts entropy with password. The entropy must be a valid BIP-39
// size; the header is authenticated along with the ciphertext.
func Seal(entropy, password []byte, params Params) ([]byte, error) {
	if _, err := bip39.ForKeySize(len(entropy) * 8); err != nil {
		return nil, err
	}
	if err := params.Validate(); err != nil {
		return nil, err
	}

	header := make([]byte, 0, headerSize)
	header = append(header, Version)
	salt := make([]byte, SaltSize)
	if _, err := io.ReadFull(rand.Reader, salt); err != nil {
		return nil, fmt.Errorf("generate salt: %w", err)
	}
	header = append(header, salt...)
	header = binary.LittleEndian.AppendUint32(header, params.Memory)
	header = binary.LittleEndian.AppendUint32(header, params.Iterations)
	header = append(header, params.Parallelism)

	key := deriveKey(password, salt, params)
	defer secure.Wipe(key)

	aead, err := chacha20poly1305.NewX(key)
	if err != nil {
		return nil, fmt.Errorf("create cipher: %w", err)
	}

	nonce := make([]byte, aead.NonceSize())
	if _, err := io.ReadFull(rand.Reader, nonce); err != nil {
		return nil, fmt.Errorf("generate nonce: %w", err)
	}

	out := make([]byte, 0, headerSize+len(nonce)+len(entropy)+aead.Overhead())
	out = append(out, header...)
	out = append(out, nonce...)
	out = aead.Seal(out, nonce, entropy, header)

	log.Backup.Debug().
		Int("entropy_bits", len(entropy)*8).
		Uint32("memory_kib", params.Memory).
		Msg("sealed backup")
	return out, nil
}

// Open decrypts a blob produced by Seal. The caller owns and should wipe
// the returned entropy.
func Open(blob, password []byte) ([]byte, error) {
	nonceSize := chacha20poly1305.NonceSizeX
	minSize := headerSize + nonceSize + chacha20poly1305.Overhead
	if len(blob) < minSize {
		return nil, fmt.Errorf("%w: %d bytes, need at least %d", ErrTooShort, len(blob), minSize)
	}
	if blob[0] != Version {
		return nil, fmt.Errorf("%w: %d", ErrVersion, blob[0])
	}

	header := blob[:headerSize]
	salt := header[1 : 1+SaltSize]
	params := Params{
		Memory:      binary.LittleEndian.Uint32(header[1+SaltSize:]),
		Iterations:  binary.LittleEndian.Uint32(header[1+SaltSize+4:]),
		Parallelism: header[1+SaltSize+8],
	}
	if err := params.Validate(); err != nil {
		return nil, err
	}

	nonce := blob[headerSize : headerSize+nonceSize]
	ciphertext := blob[headerSize+nonceSize:]

	key := deriveKey(password, salt, params)
	defer secure.Wipe(key)

	aead, err := chacha20poly1305.NewX(key)
	if err != nil {
		return nil, fmt.Errorf("create cipher: %w", err)
	}

	entropy, err := aead.Open(nil, nonce, ciphertext, header)
	if err != nil {
		log.Backup.Warn().Msg("backup authentication failed")
		return nil, ErrDecrypt
	}
	if _, err := bip39.ForKeySize(len(entropy) * 8); err != nil {
		secure.Wipe(entropy)
		return nil, err
	}
	return entropy, nil
}

// SealMnemonic seals the entropy of m.
func SealMnemonic(m *bip39.Mnemonic, password []byte, params Params) ([]byte, error) {
	entropy := m.Entropy()
	defer secure.Wipe(entropy)
	return Seal(entropy, password, params)
}

// OpenMnemonic opens blob and rebuilds the mnemonic over wl.
func OpenMnemonic(blob, password []byte, wl bip39.WordList) (*bip39.Mnemonic, error) {
	entropy, err := Open(blob, password)
	if err != nil {
		return nil, err
	}
	defer secure.Wipe(entropy)
	return bip39.FromEntropy(entropy, wl)
}
