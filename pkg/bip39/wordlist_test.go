package bip39

import (
	"errors"
	"fmt"
	"slices"
	"strings"
	"sync"
	"testing"

	"github.com/tyler-smith/go-bip39/wordlists"
)

func TestRegistry_AllLanguages(t *testing.T) {
	reg := NewRegistry()
	for _, lang := range Languages() {
		t.Run(string(lang), func(t *testing.T) {
			wl, err := reg.WordList(lang)
			if err != nil {
				t.Fatalf("WordList(%s) error: %v", lang, err)
			}
			if wl.Language() != lang {
				t.Errorf("Language() = %s, want %s", wl.Language(), lang)
			}
			for i := 0; i < WordListSize; i++ {
				w := wl.Word(uint16(i))
				idx, err := wl.Index(w)
				if err != nil {
					t.Fatalf("Index(%q) error: %v", w, err)
				}
				if int(idx) != i {
					t.Fatalf("Index(Word(%d)) = %d", i, idx)
				}
			}
		})
	}
}

func TestRegistry_RoundTripEveryLanguage(t *testing.T) {
	reg := NewRegistry()
	for _, lang := range Languages() {
		wl := reg.MustWordList(lang)
		entropy := randomEntropy(t, 32)
		phrase, err := Encode(entropy, wl)
		if err != nil {
			t.Fatalf("%s: Encode() error: %v", lang, err)
		}
		got, err := Decode(phrase, wl)
		if err != nil {
			t.Fatalf("%s: Decode() error: %v", lang, err)
		}
		if !slices.Equal(got, entropy) {
			t.Errorf("%s: round trip mismatch", lang)
		}
	}
}

func TestRegistry_BuiltOnce(t *testing.T) {
	reg := NewRegistry()

	const workers = 16
	lists := make([]*BuiltinList, workers)
	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			wl, err := reg.WordList(Japanese)
			if err != nil {
				t.Errorf("WordList() error: %v", err)
				return
			}
			lists[i] = wl
		}(i)
	}
	wg.Wait()

	for i := 1; i < workers; i++ {
		if lists[i] != lists[0] {
			t.Fatal("every caller should observe the same built list")
		}
	}
}

func TestRegistry_UnknownLanguage(t *testing.T) {
	_, err := NewRegistry().WordList(Language("xx"))
	if !errors.Is(err, ErrUnknownLanguage) {
		t.Errorf("WordList(xx) err = %v, want ErrUnknownLanguage", err)
	}
}

func TestRegistry_Languages(t *testing.T) {
	got := NewRegistry().Languages()
	if !slices.Equal(got, Languages()) {
		t.Errorf("Registry.Languages() = %v, want %v", got, Languages())
	}
	if len(got) != 9 {
		t.Errorf("len(Languages()) = %d, want 9", len(got))
	}
}

func TestBuiltinList_InvalidWord(t *testing.T) {
	wl := english(t)
	if _, err := wl.Index("notaword"); !errors.Is(err, ErrInvalidWord) {
		t.Errorf("Index(notaword) err = %v, want ErrInvalidWord", err)
	}
	if got := wl.Word(0); got != "abandon" {
		t.Errorf("Word(0) = %q, want abandon", got)
	}
	if got := wl.Word(2047); got != "zoo" {
		t.Errorf("Word(2047) = %q, want zoo", got)
	}
}

func TestParseLanguage(t *testing.T) {
	tests := []struct {
		in   string
		want Language
	}{
		{"en", English},
		{"En", English},
		{" english ", English},
		{"Zh-Hans", ChineseSimplified},
		{"zh-hanT", ChineseTraditional},
		{"cs", Czech},
		{"fr", French},
		{"It", Italian},
		{"Ja", Japanese},
		{"kO", Korean},
		{"ES", Spanish},
		{"spanish", Spanish},
	}
	for _, tt := range tests {
		got, err := ParseLanguage(tt.in)
		if err != nil {
			t.Errorf("ParseLanguage(%q) error: %v", tt.in, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseLanguage(%q) = %s, want %s", tt.in, got, tt.want)
		}
	}

	for _, bad := range []string{"", "not a real language", "custom", "de"} {
		if _, err := ParseLanguage(bad); !errors.Is(err, ErrUnknownLanguage) {
			t.Errorf("ParseLanguage(%q) err = %v, want ErrUnknownLanguage", bad, err)
		}
	}
}

func TestWordsWithPrefix(t *testing.T) {
	wl := english(t)

	if got := WordsWithPrefix(wl, "woo"); !slices.Equal(got, []string{"wood", "wool"}) {
		t.Errorf("WordsWithPrefix(woo) = %v, want [wood wool]", got)
	}
	if got := WordsWithPrefix(wl, ""); len(got) != WordListSize {
		t.Errorf("WordsWithPrefix(\"\") returned %d words, want %d", len(got), WordListSize)
	}
	if got := WordsWithPrefix(wl, "woof"); len(got) != 0 {
		t.Errorf("WordsWithPrefix(woof) = %v, want empty", got)
	}
}

func TestCustomList_InvalidOrder(t *testing.T) {
	tests := []string{
		"alpha\ngamma\nbeta",
		"beta alpha",
		"alpha alpha",
	}
	for _, src := range tests {
		if _, err := NewCustomList(src); !errors.Is(err, ErrInvalidOrder) {
			t.Errorf("NewCustomList(%q) err = %v, want ErrInvalidOrder", src, err)
		}
	}
}

func TestCustomList_InvalidCount(t *testing.T) {
	tests := []struct {
		name  string
		words []string
	}{
		{"three", []string{"alpha", "beta", "gamma"}},
		{"empty", nil},
		{"2047", wordlists.English[:2047]},
		{"2049", append(slices.Clone(wordlists.English), "zzz")},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewCustomList(strings.Join(tt.words, "\n"))
			var wc *InvalidWordCountError
			if !errors.As(err, &wc) {
				t.Fatalf("NewCustomList() err = %v, want *InvalidWordCountError", err)
			}
			if wc.Count != len(tt.words) {
				t.Errorf("Count = %d, want %d", wc.Count, len(tt.words))
			}
		})
	}
}

func TestCustomList_MatchesBuiltinEnglish(t *testing.T) {
	custom, err := NewCustomList(strings.Join(wordlists.English, "\n"))
	if err != nil {
		t.Fatalf("NewCustomList() error: %v", err)
	}
	builtin := english(t)
	for i := 0; i < WordListSize; i++ {
		if custom.Word(uint16(i)) != builtin.Word(uint16(i)) {
			t.Fatalf("Word(%d) = %q, want %q", i, custom.Word(uint16(i)), builtin.Word(uint16(i)))
		}
	}
	if custom.Language() != Custom {
		t.Errorf("Language() = %s, want custom", custom.Language())
	}
}

func TestCustomList_Decode(t *testing.T) {
	custom, err := NewCustomList(strings.Join(wordlists.English, "\r\n\t"))
	if err != nil {
		t.Fatalf("NewCustomList() error: %v", err)
	}

	m, err := FromPhrase("crop cash unable insane eight faith inflict route frame loud box vibrant", custom)
	if err != nil {
		t.Fatalf("FromPhrase() error: %v", err)
	}
	defer m.Destroy()

	if got := strings.ToUpper(m.Hex()); got != "33E46BB13A746EA41CDDE45C90846A79" {
		t.Errorf("Hex() = %s, want 33E46BB13A746EA41CDDE45C90846A79", got)
	}
}

func TestCustomList_SyntheticWords(t *testing.T) {
	words := make([]string, WordListSize)
	for i := range words {
		words[i] = fmt.Sprintf("w%04d", i)
	}
	wl, err := NewCustomList(strings.Join(words, " "))
	if err != nil {
		t.Fatalf("NewCustomList() error: %v", err)
	}
	if idx, err := wl.Index("w1234"); err != nil || idx != 1234 {
		t.Errorf("Index(w1234) = %d, %v; want 1234", idx, err)
	}
	if _, err := wl.Index("w2048"); !errors.Is(err, ErrInvalidWord) {
		t.Errorf("Index(w2048) err = %v, want ErrInvalidWord", err)
	}
}
