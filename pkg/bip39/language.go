package bip39

import (
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/tyler-smith/go-bip39/wordlists"

	"github.com/Klingon-tech/klingnet-bip39/internal/log"
)

// Language identifies a word list by its short code.
type Language string

// Built-in languages.
const (
	English            Language = "en"
	ChineseSimplified  Language = "zh-hans"
	ChineseTraditional Language = "zh-hant"
	Czech              Language = "cs"
	French             Language = "fr"
	Italian            Language = "it"
	Japanese           Language = "ja"
	Korean             Language = "ko"
	Spanish            Language = "es"

	// Custom identifies caller-supplied lists built by NewCustomList.
	Custom Language = "custom"
)

// builtinLanguages is the stable listing order.
var builtinLanguages = []Language{
	English,
	ChineseSimplified,
	ChineseTraditional,
	Czech,
	French,
	Italian,
	Japanese,
	Korean,
	Spanish,
}

var builtinSources = map[Language][]string{
	English:            wordlists.English,
	ChineseSimplified:  wordlists.ChineseSimplified,
	ChineseTraditional: wordlists.ChineseTraditional,
	Czech:              wordlists.Czech,
	French:             wordlists.French,
	Italian:            wordlists.Italian,
	Japanese:           wordlists.Japanese,
	Korean:             wordlists.Korean,
	Spanish:            wordlists.Spanish,
}

var languageAliases = map[string]Language{
	"english":             English,
	"chinese-simplified":  ChineseSimplified,
	"chinese_simplified":  ChineseSimplified,
	"chinese-traditional": ChineseTraditional,
	"chinese_traditional": ChineseTraditional,
	"czech":               Czech,
	"french":              French,
	"italian":             Italian,
	"japanese":            Japanese,
	"korean":              Korean,
	"spanish":             Spanish,
}

// ParseLanguage resolves a language code ("en", "zh-Hans", "ja", ...) or an
// English language name. Matching is case-insensitive.
func ParseLanguage(code string) (Language, error) {
	c := strings.ToLower(strings.TrimSpace(code))
	if _, ok := builtinSources[Language(c)]; ok {
		return Language(c), nil
	}
	if lang, ok := languageAliases[c]; ok {
		return lang, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownLanguage, code)
}

// Languages returns the built-in languages.
func Languages() []Language {
	out := make([]Language, len(builtinLanguages))
	copy(out, builtinLanguages)
	return out
}

func (l Language) String() string {
	return string(l)
}

// Registry builds each built-in word list at most once and hands out the
// shared, read-only result. Create one per process and pass it to whatever
// needs word lists.
type Registry struct {
	entries map[Language]*registryEntry
}

type registryEntry struct {
	once   sync.Once
	source []string
	list   *BuiltinList
	err    error
}

// NewRegistry returns a registry for every built-in language. Lists are
// built on first use.
func NewRegistry() *Registry {
	r := &Registry{entries: make(map[Language]*registryEntry, len(builtinSources))}
	for lang, words := range builtinSources {
		r.entries[lang] = &registryEntry{source: words}
	}
	return r
}

// WordList returns the built-in list for lang.
func (r *Registry) WordList(lang Language) (*BuiltinList, error) {
	e, ok := r.entries[lang]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownLanguage, string(lang))
	}
	e.once.Do(func() {
		start := time.Now()
		e.list, e.err = newBuiltinList(lang, e.source)
		if e.err != nil {
			log.Wordlist.Error().Err(e.err).Str("language", string(lang)).Msg("Word list rejected")
			return
		}
		log.Wordlist.Debug().
			Str("language", string(lang)).
			Dur("took", time.Since(start)).
			Msg("Word list built")
	})
	return e.list, e.err
}

// Languages returns the languages the registry can build.
func (r *Registry) Languages() []Language {
	out := make([]Language, 0, len(r.entries))
	for _, lang := range builtinLanguages {
		if _, ok := r.entries[lang]; ok {
			out = append(out, lang)
		}
	}
	return out
}

// MustWordList is like WordList but panics on error. Intended for
// package-level setup with a known language.
func (r *Registry) MustWordList(lang Language) *BuiltinList {
	wl, err := r.WordList(lang)
	if err != nil {
		panic(err)
	}
	return wl
}
