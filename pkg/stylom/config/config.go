package config

import (
	"os"

	"gopkg.in/yaml.v3"
)

// Extraction holds tunable feature-extraction settings.
type Extraction struct {
	Workers           int  `yaml:"workers"`
	Lower             bool `yaml:"lower"`
	RemovePunctuation bool `yaml:"remove_punctuation"`
}

// LoadExtraction loads extraction settings from a YAML file.
func LoadExtraction(path string) (*Extraction, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	// Defaults match the extractor's own
	ext := Extraction{Workers: 1, Lower: true, RemovePunctuation: true}
	if err := yaml.Unmarshal(data, &ext); err != nil {
		return nil, err
	}

	return &ext, nil
}

// TagLexicon maps coarse POS category names to word lists that override
// the built-in tagger heuristics.
type TagLexicon struct {
	Categories map[string][]string `yaml:"categories"`
}

// LoadTagLexicon loads a tag lexicon from a YAML file.
//
// Expected format:
//
//	categories:
//	  NOUN: [fox, dog]
//	  VERB: [jumps]
func LoadTagLexicon(path string) (*TagLexicon, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var lex TagLexicon
	if err := yaml.Unmarshal(data, &lex); err != nil {
		return nil, err
	}

	return &lex, nil
}
