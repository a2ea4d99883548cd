// Package hdkey derives BIP-32 keys and BIP-44 addresses from a BIP-39 seed.
package hdkey

import (
	"encoding/hex"
	"errors"
	"fmt"

	"github.com/decred/dcrd/dcrec/secp256k1/v4"
	"github.com/tyler-smith/go-bip32"
	"github.com/zeebo/blake3"

	"github.com/Klingon-tech/klingnet-bip39/internal/secure"
	"github.com/Klingon-tech/klingnet-bip39/pkg/bip39"
)

// BIP-44 derivation path constants.
// Full path: m/44'/CoinType'/account'/change/index
const (
	// PurposeBIP44 is the BIP-44 purpose field (hardened).
	PurposeBIP44 = bip32.FirstHardenedChild + 44

	// CoinTypeKlingnet is the coin type used for addresses (hardened).
	CoinTypeKlingnet = bip32.FirstHardenedChild + 8888

	// ChangeExternal is for receiving addresses.
	ChangeExternal = 0

	// ChangeInternal is for change addresses.
	ChangeInternal = 1
)

// AddressSize is the length of an address in bytes.
const AddressSize = 20

// ErrPublicOnly is returned when a private key is needed from a neutered key.
var ErrPublicOnly = errors.New("key has no private part")

// Address is the first 20 bytes of BLAKE3(compressed public key).
type Address [AddressSize]byte

// String returns the address as lowercase hex.
func (a Address) String() string {
	return hex.EncodeToString(a[:])
}

// IsZero reports whether the address is all zeros.
func (a Address) IsZero() bool {
	return a == Address{}
}

// HDKey represents a hierarchical deterministic key (BIP-32).
type HDKey struct {
	key *bip32.Key
}

// NewMasterKey creates a master HD key from a BIP-39 seed.
func NewMasterKey(seed *bip39.Seed) (*HDKey, error) {
	if seed == nil {
		return nil, errors.New("nil seed")
	}
	var master *bip32.Key
	err := secure.Scoped(bip39.SeedSize, func(raw []byte) error {
		seed.CopyTo(raw)
		var err error
		master, err = bip32.NewMasterKey(raw)
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("create master key: %w", err)
	}
	return &HDKey{key: master}, nil
}

// DeriveChild derives a child key at the given index.
// For hardened derivation, add bip32.FirstHardenedChild to the index.
func (k *HDKey) DeriveChild(index uint32) (*HDKey, error) {
	child, err := k.key.NewChildKey(index)
	if err != nil {
		return nil, fmt.Errorf("derive child %d: %w", index, err)
	}
	return &HDKey{key: child}, nil
}

// DerivePath derives a key along a sequence of indices. Intermediate keys
// are wiped.
func (k *HDKey) DerivePath(indices ...uint32) (*HDKey, error) {
	current := k
	for _, idx := range indices {
		child, err := current.DeriveChild(idx)
		if current != k {
			current.Destroy()
		}
		if err != nil {
			return nil, err
		}
		current = child
	}
	return current, nil
}

// DeriveAddress derives the key at m/44'/8888'/account'/change/index.
func (k *HDKey) DeriveAddress(account, change, index uint32) (*HDKey, error) {
	return k.DerivePath(
		PurposeBIP44,
		CoinTypeKlingnet,
		bip32.FirstHardenedChild+account,
		change,
		index,
	)
}

// PrivateKeyBytes returns a copy of the raw 32-byte private key, or
// ErrPublicOnly for a neutered key.
func (k *HDKey) PrivateKeyBytes() ([]byte, error) {
	if !k.key.IsPrivate {
		return nil, ErrPublicOnly
	}
	// bip32 Key.Key is 33 bytes with a leading 0x00 for private keys.
	raw := k.key.Key
	if len(raw) == 33 && raw[0] == 0 {
		raw = raw[1:]
	}
	out := make([]byte, len(raw))
	copy(out, raw)
	return out, nil
}

// PublicKeyBytes returns the compressed 33-byte public key.
func (k *HDKey) PublicKeyBytes() []byte {
	return k.key.PublicKey().Key
}

// PublicKey parses the compressed public key into a secp256k1 point.
func (k *HDKey) PublicKey() (*secp256k1.PublicKey, error) {
	pub, err := secp256k1.ParsePubKey(k.PublicKeyBytes())
	if err != nil {
		return nil, fmt.Errorf("parse public key: %w", err)
	}
	return pub, nil
}

// Address derives the address for this key's public key.
// Address = first 20 bytes of BLAKE3(compressed_pubkey).
func (k *HDKey) Address() Address {
	hash := blake3.Sum256(k.PublicKeyBytes())
	var addr Address
	copy(addr[:], hash[:AddressSize])
	return addr
}

// String returns the base58 extended key (xprv or xpub).
func (k *HDKey) String() string {
	return k.key.String()
}

// IsPrivate returns true if this key contains a private key.
func (k *HDKey) IsPrivate() bool {
	return k.key.IsPrivate
}

// Depth returns the derivation depth (0 for master).
func (k *HDKey) Depth() uint8 {
	return k.key.Depth
}

// Neuter returns a public-key-only copy (for watch-only use).
// The chain code is copied so Destroy on either key leaves the other intact.
func (k *HDKey) Neuter() *HDKey {
	pub := k.key.PublicKey()
	pub.ChainCode = append([]byte(nil), pub.ChainCode...)
	return &HDKey{key: pub}
}

// Destroy wipes the key material. The key must not be used after.
func (k *HDKey) Destroy() {
	if k == nil || k.key == nil {
		return
	}
	if k.key.IsPrivate {
		secure.Wipe(k.key.Key)
	}
	secure.Wipe(k.key.ChainCode)
}
