package bip39

import (
	"github.com/minio/sha256-simd"
)

// ChecksumBitCount returns how many checksum bits protect entropy of the
// given size: one bit per 32 bits of entropy.
func ChecksumBitCount(entropyBits int) int {
	return entropyBits / 32
}

// Checksum returns the first ChecksumBitCount(len(entropy)*8) bits of
// SHA-256(entropy), right-aligned in the returned byte. It is defined only
// for the five BIP-39 entropy sizes (16 to 32 bytes), whose checksums are
// 4 to 8 bits; other lengths return 0.
func Checksum(entropy []byte) byte {
	if _, err := ForKeySize(len(entropy) * 8); err != nil {
		return 0
	}
	n := ChecksumBitCount(len(entropy) * 8)
	sum := sha256.Sum256(entropy)
	return sum[0] >> uint(8-n)
}
