package tag

import (
	"strings"
	"unicode"
)

// Category is a coarse part-of-speech class.
type Category string

// The fixed coarse category set. POS distribution vectors have one
// dimension per entry, in this order.
const (
	Noun         Category = "NOUN"
	Verb         Category = "VERB"
	Adjective    Category = "ADJ"
	Adverb       Category = "ADV"
	Pronoun      Category = "PRON"
	Adposition   Category = "ADP"
	Determiner   Category = "DET"
	Conjunction  Category = "CONJ"
	Numeral      Category = "NUM"
	Particle     Category = "PART"
	Interjection Category = "INTJ"
	Other        Category = "X"
)

// Categories returns the fixed category set in canonical order.
func Categories() []Category {
	return []Category{
		Noun, Verb, Adjective, Adverb, Pronoun, Adposition,
		Determiner, Conjunction, Numeral, Particle, Interjection, Other,
	}
}

// Tagger assigns one coarse category per token. Implementations must be
// safe for concurrent use and return exactly one category per input
// token, in input order.
type Tagger interface {
	Tag(tokens []string) []Category
}

// HeuristicTagger is the default Tagger: closed-class word lists plus
// suffix heuristics, with NOUN as the open-class fallback. It is a cheap
// stand-in for a real tagger and deterministic by construction.
type HeuristicTagger struct {
	closed map[string]Category
}

// NewHeuristicTagger creates a tagger with the built-in English
// closed-class lexicon.
func NewHeuristicTagger() *HeuristicTagger {
	t := &HeuristicTagger{closed: make(map[string]Category)}
	add := func(cat Category, words ...string) {
		for _, w := range words {
			t.closed[w] = cat
		}
	}

	add(Pronoun,
		"i", "you", "he", "she", "it", "we", "they", "me", "him", "her",
		"us", "them", "my", "your", "his", "its", "our", "their", "mine",
		"yours", "hers", "ours", "theirs", "myself", "yourself", "himself",
		"herself", "itself", "ourselves", "themselves", "who", "whom",
		"whose", "which", "what", "this", "that", "these", "those",
		"someone", "anyone", "everyone", "nobody", "something", "anything",
		"everything", "nothing")
	add(Adposition,
		"in", "on", "at", "by", "for", "with", "about", "against",
		"between", "into", "through", "during", "before", "after", "above",
		"below", "from", "up", "down", "of", "off", "over", "under",
		"again", "near", "without", "within", "along", "across", "behind",
		"beyond", "toward", "towards", "upon", "among", "around")
	add(Determiner, "the", "a", "an", "each", "every", "either", "neither",
		"some", "any", "no", "all", "both", "few", "many", "several",
		"such", "another", "other")
	add(Conjunction, "and", "but", "or", "nor", "so", "yet", "because",
		"although", "though", "while", "whereas", "unless", "since", "if",
		"when", "whenever", "where", "wherever", "than", "whether")
	add(Particle, "to", "not", "n't")
	add(Interjection, "oh", "ah", "wow", "ouch", "hey", "hmm",
		"please", "okay", "alas", "hello", "hi", "bye")
	add(Verb,
		"be", "am", "is", "are", "was", "were", "been", "being", "have",
		"has", "had", "having", "do", "does", "did", "doing", "will",
		"would", "shall", "should", "can", "could", "may", "might", "must",
		"go", "goes", "went", "gone", "get", "gets", "got", "say", "says",
		"said", "make", "makes", "made", "know", "knows", "knew", "think",
		"thinks", "thought", "see", "sees", "saw", "seen", "come", "comes",
		"came", "take", "takes", "took", "want", "wants", "wanted")
	add(Adverb, "very", "too", "also", "just", "only", "quite", "rather",
		"almost", "always", "never", "often", "sometimes", "usually",
		"here", "there", "now", "then", "soon", "still", "already", "even",
		"perhaps", "maybe", "again")

	return t
}

// Tag assigns one category per token.
func (t *HeuristicTagger) Tag(tokens []string) []Category {
	cats := make([]Category, len(tokens))
	for i, tok := range tokens {
		cats[i] = t.tagOne(tok)
	}
	return cats
}

func (t *HeuristicTagger) tagOne(tok string) Category {
	word := strings.ToLower(tok)
	if word == "" {
		return Other
	}
	if cat, ok := t.closed[word]; ok {
		return cat
	}
	if isNumeric(word) {
		return Numeral
	}
	if !isWordLike(word) {
		return Other
	}

	switch {
	case strings.HasSuffix(word, "ly") && len(word) > 4:
		return Adverb
	case hasAnySuffix(word, "ous", "ful", "less", "able", "ible", "ive",
		"ical", "ish", "est") && len(word) > 5:
		return Adjective
	case hasAnySuffix(word, "ing", "ed", "ize", "ise", "ify") && len(word) > 5:
		return Verb
	}
	return Noun
}

func hasAnySuffix(word string, suffixes ...string) bool {
	for _, suffix := range suffixes {
		if strings.HasSuffix(word, suffix) {
			return true
		}
	}
	return false
}

func isNumeric(word string) bool {
	hasDigit := false
	for _, r := range word {
		if unicode.IsDigit(r) {
			hasDigit = true
			continue
		}
		if r != '.' && r != ',' && r != '-' {
			return false
		}
	}
	return hasDigit
}

func isWordLike(word string) bool {
	for _, r := range word {
		if unicode.IsLetter(r) || r == '-' || r == '\'' {
			continue
		}
		return false
	}
	return true
}

// LexiconTagger wraps HeuristicTagger with a user-supplied closed-class
// lexicon that takes precedence, e.g. loaded from a YAML tag lexicon.
type LexiconTagger struct {
	base    *HeuristicTagger
	lexicon map[string]Category
}

// NewLexiconTagger creates a tagger whose lexicon entries override the
// built-in heuristics. Lexicon keys are lowercased.
func NewLexiconTagger(lexicon map[string]Category) *LexiconTagger {
	lower := make(map[string]Category, len(lexicon))
	for word, cat := range lexicon {
		lower[strings.ToLower(word)] = cat
	}
	return &LexiconTagger{
		base:    NewHeuristicTagger(),
		lexicon: lower,
	}
}

// Tag assigns one category per token, consulting the lexicon first.
func (t *LexiconTagger) Tag(tokens []string) []Category {
	cats := make([]Category, len(tokens))
	for i, tok := range tokens {
		if cat, ok := t.lexicon[strings.ToLower(tok)]; ok {
			cats[i] = cat
			continue
		}
		cats[i] = t.base.tagOne(tok)
	}
	return cats
}
