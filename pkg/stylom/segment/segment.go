package segment

import (
	"regexp"
	"strings"
	"unicode"
)

// Tokenizer segments text into an ordered sequence of tokens. Word and
// punctuation spans are emitted as separate tokens; callers decide what
// to filter. Implementations must be safe for concurrent use.
type Tokenizer interface {
	Tokenize(text string) []string
}

// SentenceSegmenter segments text into an ordered sequence of sentence
// spans. Implementations must be safe for concurrent use.
type SentenceSegmenter interface {
	Sentences(text string) []string
}

// WordTokenizer is the default Tokenizer: a rune scanner that groups
// letters, digits and word-internal hyphens/apostrophes into word tokens
// and contiguous runs of other visible symbols into punctuation tokens.
type WordTokenizer struct{}

// NewWordTokenizer creates the default tokenizer.
func NewWordTokenizer() *WordTokenizer {
	return &WordTokenizer{}
}

// Tokenize splits text into word and punctuation tokens, in order.
func (w *WordTokenizer) Tokenize(text string) []string {
	var tokens []string
	var word, punct strings.Builder

	flushWord := func() {
		if word.Len() > 0 {
			tokens = append(tokens, trimWord(word.String()))
			word.Reset()
		}
	}
	flushPunct := func() {
		if punct.Len() > 0 {
			tokens = append(tokens, punct.String())
			punct.Reset()
		}
	}

	for _, r := range text {
		switch {
		case unicode.IsLetter(r) || unicode.IsNumber(r) || r == '-' || r == '\'':
			flushPunct()
			word.WriteRune(r)
		case unicode.IsSpace(r):
			flushWord()
			flushPunct()
		default:
			flushWord()
			punct.WriteRune(r)
		}
	}
	flushWord()
	flushPunct()

	// Tokens reduced to nothing by trimming are dropped
	out := tokens[:0]
	for _, tok := range tokens {
		if tok != "" {
			out = append(out, tok)
		}
	}
	return out
}

// trimWord strips hyphens and apostrophes that ended up at the token
// edges, e.g. from dashes used as separators or quoted words.
func trimWord(tok string) string {
	return strings.Trim(tok, "-'")
}

// boundary matches a sentence-terminating punctuation run followed by
// whitespace or end of input.
var boundary = regexp.MustCompile(`([.!?…]+["')\]]?)(\s+|$)`)

// BoundarySegmenter is the default SentenceSegmenter: it splits on
// terminal punctuation followed by whitespace. Trailing text without a
// terminator is emitted as a final sentence.
type BoundarySegmenter struct{}

// NewBoundarySegmenter creates the default sentence segmenter.
func NewBoundarySegmenter() *BoundarySegmenter {
	return &BoundarySegmenter{}
}

// Sentences splits text into trimmed, non-empty sentence spans.
func (b *BoundarySegmenter) Sentences(text string) []string {
	delimited := boundary.ReplaceAllString(text, "$1\x1f")
	parts := strings.Split(delimited, "\x1f")

	var sentences []string
	for _, part := range parts {
		trimmed := strings.TrimSpace(part)
		if trimmed != "" {
			sentences = append(sentences, trimmed)
		}
	}
	return sentences
}
