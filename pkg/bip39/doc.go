// Package bip39 implements BIP-39 mnemonic phrases: entropy to phrase
// encoding with an embedded SHA-256 checksum, phrase validation and
// decoding, and PBKDF2-HMAC-SHA512 seed derivation.
//
// Word lists are supplied through the WordList interface. Built-in languages
// come from a Registry, which builds each list once and shares it; callers
// may also load their own list with NewCustomList.
//
// Types that hold secret material (Mnemonic, Seed) keep it in buffers that
// are zeroed by Destroy.
package bip39
