package bip39

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"io"

	"github.com/Klingon-tech/klingnet-bip39/internal/secure"
)

// Mnemonic is a validated phrase together with the entropy it encodes.
// It is immutable; call Destroy when done to wipe the entropy and phrase.
type Mnemonic struct {
	typ     MnemonicType
	wl      WordList
	entropy *secure.Buffer
	phrase  *secure.Buffer
}

// New creates a mnemonic of the given type from fresh crypto/rand entropy.
func New(typ MnemonicType, wl WordList) (*Mnemonic, error) {
	return NewWithReader(typ, wl, rand.Reader)
}

// NewWithReader is like New but reads entropy from r. A short read or read
// error fails the call; there is no fallback source.
func NewWithReader(typ MnemonicType, wl WordList, r io.Reader) (*Mnemonic, error) {
	if !typ.Valid() {
		return nil, fmt.Errorf("invalid mnemonic type: %s", typ)
	}

	var m *Mnemonic
	err := secure.Scoped(typ.EntropyBytes(), func(entropy []byte) error {
		if _, err := io.ReadFull(r, entropy); err != nil {
			return fmt.Errorf("read entropy: %w", err)
		}
		var err error
		m, err = fromEntropy(typ, entropy, wl)
		return err
	})
	if err != nil {
		return nil, err
	}
	return m, nil
}

// FromEntropy creates a mnemonic for entropy of any supported size.
// The entropy is copied; the caller keeps ownership of its slice.
func FromEntropy(entropy []byte, wl WordList) (*Mnemonic, error) {
	typ, err := ForKeySize(len(entropy) * 8)
	if err != nil {
		return nil, err
	}
	return fromEntropy(typ, entropy, wl)
}

// FromEntropyType is like FromEntropy but requires entropy sized for typ,
// failing with *InvalidEntropyLengthError otherwise.
func FromEntropyType(typ MnemonicType, entropy []byte, wl WordList) (*Mnemonic, error) {
	if err := typ.CheckEntropy(entropy); err != nil {
		return nil, err
	}
	return fromEntropy(typ, entropy, wl)
}

// FromPhrase validates phrase against wl. The stored phrase is the canonical
// single-space form.
func FromPhrase(phrase string, wl WordList) (*Mnemonic, error) {
	entropy, err := Decode(phrase, wl)
	if err != nil {
		return nil, err
	}
	defer secure.Wipe(entropy)
	return FromEntropy(entropy, wl)
}

func fromEntropy(typ MnemonicType, entropy []byte, wl WordList) (*Mnemonic, error) {
	phrase, err := encodePhrase(entropy, wl)
	if err != nil {
		return nil, err
	}
	return &Mnemonic{
		typ:     typ,
		wl:      wl,
		entropy: secure.FromBytes(entropy),
		phrase:  secure.Take(phrase),
	}, nil
}

// Type returns the mnemonic's size.
func (m *Mnemonic) Type() MnemonicType {
	return m.typ
}

// WordList returns the list the phrase is written in.
func (m *Mnemonic) WordList() WordList {
	return m.wl
}

// Language returns the language of the phrase.
func (m *Mnemonic) Language() Language {
	return m.wl.Language()
}

// Phrase returns the phrase. Go strings cannot be wiped; callers that must
// control every copy should use PhraseLen and CopyPhrase instead.
func (m *Mnemonic) Phrase() string {
	return string(m.phrase.Bytes())
}

// PhraseLen returns the phrase length in bytes.
func (m *Mnemonic) PhraseLen() int {
	return m.phrase.Len()
}

// CopyPhrase copies the phrase into dst and returns the number of bytes
// copied, which is less than PhraseLen if dst is too small.
func (m *Mnemonic) CopyPhrase(dst []byte) int {
	return copy(dst, m.phrase.Bytes())
}

// Entropy returns a copy of the entropy. The caller owns and should wipe it.
func (m *Mnemonic) Entropy() []byte {
	return m.entropy.Copy()
}

// Hex returns the entropy as lowercase hex.
func (m *Mnemonic) Hex() string {
	return hex.EncodeToString(m.entropy.Bytes())
}

// Destroy wipes the entropy and phrase. The Mnemonic must not be used after.
func (m *Mnemonic) Destroy() {
	if m == nil {
		return
	}
	m.entropy.Wipe()
	m.phrase.Wipe()
}
