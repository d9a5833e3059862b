package features

import (
	"fmt"
	"unicode/utf8"

	"gonum.org/v1/gonum/stat"

	"github.com/stylom/stylom/pkg/stylom/dict"
	"github.com/stylom/stylom/pkg/stylom/tag"
)

// Feature functions are pure: one call consumes one sample's tokens,
// sentences or text and returns a fixed-width numeric vector. They hold
// no state, so the extractor may invoke them concurrently across
// samples.

// AvgLength returns the mean element length in runes as a 1-wide vector.
// Applied to tokens it measures average word length, applied to
// sentences it measures average sentence length. Empty input yields [0].
func AvgLength(items []string) []float64 {
	if len(items) == 0 {
		return []float64{0}
	}
	lengths := make([]float64, len(items))
	for i, item := range items {
		lengths[i] = float64(utf8.RuneCountInString(item))
	}
	return []float64{stat.Mean(lengths, nil)}
}

// LexiconSize returns the number of distinct tokens as a 1-wide vector.
// The count is raw, not normalized by token count.
func LexiconSize(tokens []string) []float64 {
	seen := make(map[string]struct{}, len(tokens))
	for _, tok := range tokens {
		seen[tok] = struct{}{}
	}
	return []float64{float64(len(seen))}
}

// ForeignRatio returns the fraction of tokens absent from the reference
// dictionary as a 1-wide vector. A nil dictionary counts every token as
// known; empty input yields [0].
func ForeignRatio(tokens []string, d dict.Dictionary) []float64 {
	if len(tokens) == 0 || d == nil {
		return []float64{0}
	}
	foreign := 0
	for _, tok := range tokens {
		if !d.Contains(tok) {
			foreign++
		}
	}
	return []float64{float64(foreign) / float64(len(tokens))}
}

// POSDistribution tags every token and returns the normalized frequency
// vector over the fixed category set, in tag.Categories order. The
// vector sums to 1 for non-empty input; empty input yields the zero
// vector. A tagger that breaks the one-category-per-token contract is an
// error.
func POSDistribution(tokens []string, tagger tag.Tagger) ([]float64, error) {
	categories := tag.Categories()
	vector := make([]float64, len(categories))
	if len(tokens) == 0 {
		return vector, nil
	}

	index := make(map[tag.Category]int, len(categories))
	for i, cat := range categories {
		index[cat] = i
	}

	tags := tagger.Tag(tokens)
	if len(tags) != len(tokens) {
		return nil, fmt.Errorf("tagger returned %d categories for %d tokens",
			len(tags), len(tokens))
	}
	for _, cat := range tags {
		i, ok := index[cat]
		if !ok {
			return nil, fmt.Errorf("tagger returned unknown category %q", cat)
		}
		vector[i]++
	}

	total := float64(len(tokens))
	for i := range vector {
		vector[i] /= total
	}
	return vector, nil
}

// PunctuationMarks is the fixed punctuation symbol set the punctuation
// distribution is computed over, in column order.
var PunctuationMarks = []rune{
	'.', ',', '!', '?', ';', ':', '-', '(', ')', '"', '\'', '…',
}

// PunctuationsDistribution returns the normalized frequency vector of
// PunctuationMarks occurrences in text. Computed on normalized text, not
// on punctuation-stripped tokens. Text without any tracked mark yields
// the zero vector.
func PunctuationsDistribution(text string) []float64 {
	index := make(map[rune]int, len(PunctuationMarks))
	for i, r := range PunctuationMarks {
		index[r] = i
	}

	vector := make([]float64, len(PunctuationMarks))
	total := 0.0
	for _, r := range text {
		if i, ok := index[r]; ok {
			vector[i]++
			total++
		}
	}
	if total == 0 {
		return vector
	}
	for i := range vector {
		vector[i] /= total
	}
	return vector
}
