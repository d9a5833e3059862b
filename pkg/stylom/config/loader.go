package config

import (
	"fmt"

	"github.com/stylom/stylom/pkg/stylom/dict"
	"github.com/stylom/stylom/pkg/stylom/internalerr"
	"github.com/stylom/stylom/pkg/stylom/prepare"
	"github.com/stylom/stylom/pkg/stylom/segment"
	"github.com/stylom/stylom/pkg/stylom/tag"
)

// Loader loads configuration files and constructs components. Empty
// paths select the built-in defaults.
type Loader struct {
	DictionaryPath string
	TagLexiconPath string
	ExtractionPath string
}

// Components holds all constructed components.
type Components struct {
	Tokenizer  segment.Tokenizer
	Segmenter  segment.SentenceSegmenter
	Tagger     tag.Tagger
	Dictionary dict.Dictionary
	Workers    int
	Process    prepare.ProcessOptions
}

// Load reads the configured files and returns initialized components.
func (l *Loader) Load() (*Components, error) {
	comp := &Components{
		Tokenizer: segment.NewWordTokenizer(),
		Segmenter: segment.NewBoundarySegmenter(),
		Workers:   1,
		Process:   prepare.DefaultProcessOptions(),
	}

	if l.DictionaryPath != "" {
		words, err := dict.LoadFromYAML(l.DictionaryPath)
		if err != nil {
			return nil, fmt.Errorf("load dictionary: %w", err)
		}
		comp.Dictionary = words
	}

	if l.TagLexiconPath != "" {
		lexConfig, err := LoadTagLexicon(l.TagLexiconPath)
		if err != nil {
			return nil, fmt.Errorf("load tag lexicon: %w", err)
		}
		lexicon, err := buildTagLexicon(lexConfig)
		if err != nil {
			return nil, err
		}
		comp.Tagger = tag.NewLexiconTagger(lexicon)
	} else {
		comp.Tagger = tag.NewHeuristicTagger()
	}

	if l.ExtractionPath != "" {
		ext, err := LoadExtraction(l.ExtractionPath)
		if err != nil {
			return nil, fmt.Errorf("load extraction settings: %w", err)
		}
		comp.Workers = ext.Workers
		comp.Process = prepare.ProcessOptions{
			Lower:             ext.Lower,
			RemovePunctuation: ext.RemovePunctuation,
		}
	}

	return comp, nil
}

// buildTagLexicon validates category names against the fixed set and
// inverts the config into a word-to-category map.
func buildTagLexicon(lex *TagLexicon) (map[string]tag.Category, error) {
	known := make(map[string]tag.Category, len(tag.Categories()))
	for _, cat := range tag.Categories() {
		known[string(cat)] = cat
	}

	out := make(map[string]tag.Category)
	for name, words := range lex.Categories {
		cat, ok := known[name]
		if !ok {
			return nil, fmt.Errorf("%w: unknown POS category %q",
				internalerr.ErrInvalidConfig, name)
		}
		for _, word := range words {
			out[word] = cat
		}
	}
	return out, nil
}
