package bip39

import (
	"fmt"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/unicode/norm"
)

// span is a byte range of one word inside CustomList.text.
type span struct {
	start, end uint32
}

// CustomList is a caller-supplied word list. The normalized source is kept as
// one immutable block and every word is a span into it.
type CustomList struct {
	text  string
	spans []span
	index map[string]uint16
}

// NewCustomList builds a word list from whitespace-separated words. The
// source is NFKD-normalized first. Words must be in strictly increasing byte
// order (ErrInvalidOrder) and there must be exactly WordListSize of them
// (*InvalidWordCountError).
func NewCustomList(source string) (*CustomList, error) {
	text := norm.NFKD.String(source)

	var (
		spans []span
		prev  string
	)
	i := 0
	for i < len(text) {
		r, size := utf8.DecodeRuneInString(text[i:])
		if unicode.IsSpace(r) {
			i += size
			continue
		}

		start := i
		for i < len(text) {
			r, size = utf8.DecodeRuneInString(text[i:])
			if unicode.IsSpace(r) {
				break
			}
			i += size
		}

		word := text[start:i]
		if word <= prev {
			return nil, fmt.Errorf("%w: %q after %q", ErrInvalidOrder, word, prev)
		}
		prev = word
		spans = append(spans, span{start: uint32(start), end: uint32(i)})
	}

	if len(spans) != WordListSize {
		return nil, &InvalidWordCountError{Count: len(spans)}
	}

	l := &CustomList{
		text:  text,
		spans: spans,
		index: make(map[string]uint16, WordListSize),
	}
	for idx := range spans {
		l.index[l.Word(uint16(idx))] = uint16(idx)
	}
	return l, nil
}

// Word returns the word at index.
func (l *CustomList) Word(index uint16) string {
	s := l.spans[index]
	return l.text[s.start:s.end]
}

// Index returns the position of word in the list.
func (l *CustomList) Index(word string) (uint16, error) {
	i, ok := l.index[word]
	if !ok {
		return 0, ErrInvalidWord
	}
	return i, nil
}

// Language returns Custom.
func (l *CustomList) Language() Language {
	return Custom
}
