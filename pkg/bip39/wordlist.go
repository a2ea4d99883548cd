package bip39

import (
	"fmt"
	"strings"

	"golang.org/x/text/unicode/norm"
)

// WordListSize is the number of words in every BIP-39 word list.
const WordListSize = 2048

// bitsPerWord is the width of one word index.
const bitsPerWord = 11

// WordList maps 11-bit indices to words and back for one language.
// Implementations are immutable after construction and safe for concurrent use.
type WordList interface {
	// Word returns the word at index. index must be below WordListSize.
	Word(index uint16) string

	// Index returns the position of word, or ErrInvalidWord.
	Index(word string) (uint16, error)

	// Language identifies the list.
	Language() Language
}

// BuiltinList is a precomputed word list for one of the built-in languages.
type BuiltinList struct {
	lang  Language
	words [WordListSize]string
	index map[string]uint16
}

func newBuiltinList(lang Language, source []string) (*BuiltinList, error) {
	if len(source) != WordListSize {
		return nil, &InvalidWordCountError{Count: len(source)}
	}

	l := &BuiltinList{
		lang:  lang,
		index: make(map[string]uint16, WordListSize),
	}
	for i, w := range source {
		w = norm.NFKD.String(strings.TrimSpace(w))
		if w == "" {
			return nil, fmt.Errorf("%s word list: empty word at index %d", lang, i)
		}
		if prev, dup := l.index[w]; dup {
			return nil, fmt.Errorf("%s word list: %q at index %d duplicates index %d", lang, w, i, prev)
		}
		l.words[i] = w
		l.index[w] = uint16(i)
	}
	return l, nil
}

// Word returns the word at index.
func (l *BuiltinList) Word(index uint16) string {
	return l.words[index]
}

// Index returns the position of word in the list.
func (l *BuiltinList) Index(word string) (uint16, error) {
	i, ok := l.index[word]
	if !ok {
		return 0, ErrInvalidWord
	}
	return i, nil
}

// Language returns the list's language.
func (l *BuiltinList) Language() Language {
	return l.lang
}

// WordsWithPrefix returns, in list order, every word of wl that starts with
// prefix. An empty prefix returns the whole list.
func WordsWithPrefix(wl WordList, prefix string) []string {
	var out []string
	for i := 0; i < WordListSize; i++ {
		w := wl.Word(uint16(i))
		if strings.HasPrefix(w, prefix) {
			out = append(out, w)
		}
	}
	return out
}
