package dict

import (
	"fmt"
	"os"
	"strings"

	"github.com/kljensen/snowball"
	"gopkg.in/yaml.v3"
)

// Dictionary answers membership queries for a reference language's
// vocabulary. Tokens absent from the dictionary count as foreign.
// Implementations must be safe for concurrent reads.
type Dictionary interface {
	Contains(token string) bool
}

// WordList is a set-backed Dictionary. Lookups are case-insensitive and
// can optionally fall back to a stemmed form, so that inflections of a
// known word ("running" for "run") are not counted as foreign.
type WordList struct {
	words    map[string]struct{}
	stems    map[string]struct{}
	language string
}

// Options configures WordList construction.
type Options struct {
	// StemLanguage enables stemmed fallback lookups using the named
	// snowball language ("english", "russian", ...). Empty disables
	// stemming.
	StemLanguage string
}

// NewWordList creates a dictionary from a vocabulary slice.
func NewWordList(words []string, opts Options) *WordList {
	w := &WordList{
		words:    make(map[string]struct{}, len(words)),
		language: opts.StemLanguage,
	}
	if w.language != "" {
		w.stems = make(map[string]struct{}, len(words))
	}

	for _, word := range words {
		lower := strings.ToLower(strings.TrimSpace(word))
		if lower == "" {
			continue
		}
		w.words[lower] = struct{}{}
		if w.stems != nil {
			if stem, err := snowball.Stem(lower, w.language, false); err == nil {
				w.stems[stem] = struct{}{}
			}
		}
	}
	return w
}

// Contains reports whether the token (or its stem, when stemming is
// enabled) is part of the vocabulary.
func (w *WordList) Contains(token string) bool {
	lower := strings.ToLower(token)
	if _, ok := w.words[lower]; ok {
		return true
	}
	if w.stems == nil {
		return false
	}
	stem, err := snowball.Stem(lower, w.language, false)
	if err != nil {
		return false
	}
	_, ok := w.stems[stem]
	return ok
}

// Len returns the vocabulary size.
func (w *WordList) Len() int { return len(w.words) }

// LoadFromYAML loads a word list from a YAML file.
//
// Expected format:
//
//	language: english
//	stem: true
//	words:
//	  - hello
//	  - world
func LoadFromYAML(path string) (*WordList, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var config struct {
		Language string   `yaml:"language"`
		Stem     bool     `yaml:"stem"`
		Words    []string `yaml:"words"`
	}
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("parse word list: %w", err)
	}

	var opts Options
	if config.Stem {
		language := config.Language
		if language == "" {
			language = "english"
		}
		opts.StemLanguage = language
	}
	return NewWordList(config.Words, opts), nil
}
