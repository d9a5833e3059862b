package prepare

import (
	"fmt"
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/stylom/stylom/pkg/stylom/corpus"
	"github.com/stylom/stylom/pkg/stylom/internalerr"
	"github.com/stylom/stylom/pkg/stylom/segment"
)

// punctOnly matches tokens made of nothing but punctuation or symbol
// runes.
var punctOnly = regexp.MustCompile(`^[\p{P}\p{S}]+$`)

// punctRunes matches individual punctuation/symbol runes inside a
// sentence.
var punctRunes = regexp.MustCompile(`[\p{P}\p{S}]`)

// Preparator turns raw tabular samples into normalized texts, token
// lists and sentence lists. It owns the loaded text buffers for the
// lifetime of one preparation pass; derivation methods are read-only and
// safe to call concurrently after Load.
type Preparator struct {
	tokenizer segment.Tokenizer
	segmenter segment.SentenceSegmenter

	texts      []string
	authors    []string
	hasAuthors bool
	loaded     bool
}

// Options configures a Preparator. Nil capabilities fall back to the
// built-in segmenters.
type Options struct {
	Tokenizer segment.Tokenizer
	Segmenter segment.SentenceSegmenter
}

// New creates a Preparator.
func New(opts Options) *Preparator {
	if opts.Tokenizer == nil {
		opts.Tokenizer = segment.NewWordTokenizer()
	}
	if opts.Segmenter == nil {
		opts.Segmenter = segment.NewBoundarySegmenter()
	}
	return &Preparator{
		tokenizer: opts.Tokenizer,
		segmenter: opts.Segmenter,
	}
}

// Load validates the table schema and captures its samples. Rows whose
// text cell is null are silently dropped, so the retained sample count
// may be lower than the table's row count; order among survivors is
// preserved. An optional author column is captured alongside.
func (p *Preparator) Load(table *corpus.Table) error {
	if table == nil {
		return fmt.Errorf("%w: input is not tabular", internalerr.ErrSchema)
	}
	textCol, ok := table.Column(corpus.ColText)
	if !ok {
		return fmt.Errorf("%w: required column %q is missing",
			internalerr.ErrSchema, corpus.ColText)
	}
	authorCol, hasAuthors := table.Column(corpus.ColAuthor)

	texts := make([]string, 0, len(textCol))
	var authors []string
	if hasAuthors {
		authors = make([]string, 0, len(textCol))
	}

	for i, cell := range textCol {
		if cell == nil {
			continue
		}
		if !utf8.ValidString(*cell) {
			return fmt.Errorf("%w: text cell at row %d is not valid UTF-8",
				internalerr.ErrValueType, i)
		}
		texts = append(texts, *cell)
		if hasAuthors {
			if authorCol[i] != nil {
				authors = append(authors, *authorCol[i])
			} else {
				authors = append(authors, "")
			}
		}
	}

	p.texts = texts
	p.authors = authors
	p.hasAuthors = hasAuthors
	p.loaded = true
	return nil
}

// LoadTexts captures raw texts directly, bypassing schema validation.
// Used when the caller already holds a plain text slice.
func (p *Preparator) LoadTexts(texts []string) {
	p.texts = make([]string, len(texts))
	copy(p.texts, texts)
	p.authors = nil
	p.hasAuthors = false
	p.loaded = true
}

// Len returns the number of retained samples.
func (p *Preparator) Len() int { return len(p.texts) }

// RawTexts returns the retained raw texts in order.
func (p *Preparator) RawTexts() []string {
	out := make([]string, len(p.texts))
	copy(out, p.texts)
	return out
}

// Authors returns the retained author labels and whether the input had
// an author column. Rows with a null author carry an empty label.
func (p *Preparator) Authors() ([]string, bool) {
	if !p.hasAuthors {
		return nil, false
	}
	out := make([]string, len(p.authors))
	copy(out, p.authors)
	return out, true
}

// Texts returns one normalized text per retained sample: lowercased,
// whitespace-collapsed, URL-stripped. Empty raw text yields an empty
// entry, never a dropped one.
func (p *Preparator) Texts() ([]string, error) {
	if !p.loaded {
		return nil, internalerr.ErrNotLoaded
	}
	out := make([]string, len(p.texts))
	for i, raw := range p.texts {
		out[i] = Normalize(raw, NormalizeOptions{
			Lower:              true,
			CollapseWhitespace: true,
			StripURLs:          true,
		})
	}
	return out, nil
}

// ProcessOptions selects how tokens and sentences are post-processed.
type ProcessOptions struct {
	Lower             bool
	RemovePunctuation bool
}

// DefaultProcessOptions returns the defaults used by feature extraction:
// lowercased output with punctuation tokens removed.
func DefaultProcessOptions() ProcessOptions {
	return ProcessOptions{Lower: true, RemovePunctuation: true}
}

// Tokens returns one token list per retained sample. Each sample's text
// is normalized (lowercased per opts, whitespace-collapsed,
// URL-stripped), tokenized, and optionally stripped of punctuation-only
// tokens. An empty text yields an empty token list.
func (p *Preparator) Tokens(opts ProcessOptions) ([][]string, error) {
	if !p.loaded {
		return nil, internalerr.ErrNotLoaded
	}
	out := make([][]string, len(p.texts))
	for i := range p.texts {
		out[i] = p.tokensFor(i, opts)
	}
	return out, nil
}

// TokensAt returns the token list for one sample.
func (p *Preparator) TokensAt(index int, opts ProcessOptions) ([]string, error) {
	if !p.loaded {
		return nil, internalerr.ErrNotLoaded
	}
	if index < 0 || index >= len(p.texts) {
		return nil, fmt.Errorf("%w: index %d, have %d samples",
			internalerr.ErrIndex, index, len(p.texts))
	}
	return p.tokensFor(index, opts), nil
}

func (p *Preparator) tokensFor(index int, opts ProcessOptions) []string {
	text := Normalize(p.texts[index], NormalizeOptions{
		Lower:              opts.Lower,
		CollapseWhitespace: true,
		StripURLs:          true,
	})
	if text == "" {
		return []string{}
	}

	tokens := p.tokenizer.Tokenize(text)
	if !opts.RemovePunctuation {
		return tokens
	}
	kept := make([]string, 0, len(tokens))
	for _, tok := range tokens {
		if punctOnly.MatchString(tok) {
			continue
		}
		kept = append(kept, tok)
	}
	return kept
}

// Sentences returns one sentence list per retained sample. The text is
// normalized without lowering, so that casing keeps carrying sentence
// boundary cues; lowering per opts applies to the segmented sentences.
// With RemovePunctuation, punctuation runes are replaced by spaces and
// whitespace re-collapsed inside each sentence.
//
// A sample whose normalized text is empty yields an empty sentence list,
// keeping the result aligned 1:1 with the sample count.
func (p *Preparator) Sentences(opts ProcessOptions) ([][]string, error) {
	if !p.loaded {
		return nil, internalerr.ErrNotLoaded
	}
	out := make([][]string, len(p.texts))
	for i := range p.texts {
		out[i] = p.sentencesFor(i, opts)
	}
	return out, nil
}

// SentencesAt returns the sentence list for one sample.
func (p *Preparator) SentencesAt(index int, opts ProcessOptions) ([]string, error) {
	if !p.loaded {
		return nil, internalerr.ErrNotLoaded
	}
	if index < 0 || index >= len(p.texts) {
		return nil, fmt.Errorf("%w: index %d, have %d samples",
			internalerr.ErrIndex, index, len(p.texts))
	}
	return p.sentencesFor(index, opts), nil
}

func (p *Preparator) sentencesFor(index int, opts ProcessOptions) []string {
	text := Normalize(p.texts[index], NormalizeOptions{
		Lower:              false,
		CollapseWhitespace: true,
		StripURLs:          true,
	})
	if text == "" {
		return []string{}
	}

	sentences := p.segmenter.Sentences(text)
	out := make([]string, 0, len(sentences))
	for _, sentence := range sentences {
		if opts.Lower {
			sentence = strings.ToLower(sentence)
		}
		if opts.RemovePunctuation {
			sentence = punctRunes.ReplaceAllString(sentence, " ")
			sentence = strings.TrimSpace(whitespacePattern.ReplaceAllString(sentence, " "))
		}
		if sentence == "" {
			continue
		}
		out = append(out, sentence)
	}
	return out
}
