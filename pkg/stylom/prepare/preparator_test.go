package prepare

import (
	"errors"
	"reflect"
	"testing"

	"github.com/stylom/stylom/pkg/stylom/corpus"
	"github.com/stylom/stylom/pkg/stylom/internalerr"
)

func loadedPreparator(t *testing.T, samples []corpus.Sample) *Preparator {
	t.Helper()
	prep := New(Options{})
	if err := prep.Load(corpus.FromSamples(samples)); err != nil {
		t.Fatalf("Load: %v", err)
	}
	return prep
}

func TestLoadRejectsNilTable(t *testing.T) {
	prep := New(Options{})
	if err := prep.Load(nil); !errors.Is(err, internalerr.ErrSchema) {
		t.Errorf("Load(nil) error = %v, want ErrSchema", err)
	}
}

func TestLoadRequiresTextColumn(t *testing.T) {
	table := corpus.NewTable(2)
	table.SetColumn("body", []*string{corpus.String("a"), corpus.String("b")})

	prep := New(Options{})
	if err := prep.Load(table); !errors.Is(err, internalerr.ErrSchema) {
		t.Errorf("Load error = %v, want ErrSchema", err)
	}
}

func TestLoadRejectsInvalidUTF8(t *testing.T) {
	table := corpus.NewTable(1)
	table.SetColumn(corpus.ColText, []*string{corpus.String("bad \xff bytes")})

	prep := New(Options{})
	if err := prep.Load(table); !errors.Is(err, internalerr.ErrValueType) {
		t.Errorf("Load error = %v, want ErrValueType", err)
	}
}

func TestLoadDropsNullTextRows(t *testing.T) {
	prep := loadedPreparator(t, []corpus.Sample{
		{Text: corpus.String("first text")},
		{Text: nil},
		{Text: corpus.String("third text")},
	})

	if prep.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", prep.Len())
	}
	want := []string{"first text", "third text"}
	if got := prep.RawTexts(); !reflect.DeepEqual(got, want) {
		t.Errorf("RawTexts() = %v, want %v", got, want)
	}
}

func TestLoadCapturesAuthors(t *testing.T) {
	prep := loadedPreparator(t, []corpus.Sample{
		{Text: corpus.String("one"), Author: corpus.String("X")},
		{Text: nil, Author: corpus.String("dropped")},
		{Text: corpus.String("two"), Author: nil},
	})

	authors, ok := prep.Authors()
	if !ok {
		t.Fatal("Authors() ok = false, want true")
	}
	// Null-text rows drop; null authors become empty labels
	want := []string{"X", ""}
	if !reflect.DeepEqual(authors, want) {
		t.Errorf("Authors() = %v, want %v", authors, want)
	}
}

func TestAuthorsAbsentColumn(t *testing.T) {
	table := corpus.NewTable(1)
	table.SetColumn(corpus.ColText, []*string{corpus.String("no labels")})

	prep := New(Options{})
	if err := prep.Load(table); err != nil {
		t.Fatal(err)
	}
	if _, ok := prep.Authors(); ok {
		t.Error("Authors() ok = true for input without author column")
	}
}

func TestTokensCountMatchesSamples(t *testing.T) {
	prep := loadedPreparator(t, []corpus.Sample{
		{Text: corpus.String("Hello world. Foo bar!")},
		{Text: corpus.String("Bar baz qux.")},
	})

	tokens, err := prep.Tokens(DefaultProcessOptions())
	if err != nil {
		t.Fatal(err)
	}
	if len(tokens) != 2 {
		t.Fatalf("got %d token lists, want 2", len(tokens))
	}
	want := []string{"hello", "world", "foo", "bar"}
	if !reflect.DeepEqual(tokens[0], want) {
		t.Errorf("tokens[0] = %v, want %v", tokens[0], want)
	}
}

func TestTokensKeepPunctuationWhenAsked(t *testing.T) {
	prep := loadedPreparator(t, []corpus.Sample{
		{Text: corpus.String("Hello, world!")},
	})

	tokens, err := prep.Tokens(ProcessOptions{Lower: true, RemovePunctuation: false})
	if err != nil {
		t.Fatal(err)
	}
	want := []string{"hello", ",", "world", "!"}
	if !reflect.DeepEqual(tokens[0], want) {
		t.Errorf("tokens[0] = %v, want %v", tokens[0], want)
	}
}

func TestTokensWithoutLowering(t *testing.T) {
	prep := loadedPreparator(t, []corpus.Sample{
		{Text: corpus.String("Hello World")},
	})

	tokens, err := prep.Tokens(ProcessOptions{Lower: false, RemovePunctuation: true})
	if err != nil {
		t.Fatal(err)
	}
	want := []string{"Hello", "World"}
	if !reflect.DeepEqual(tokens[0], want) {
		t.Errorf("tokens[0] = %v, want %v", tokens[0], want)
	}
}

func TestTokensStripURLs(t *testing.T) {
	prep := loadedPreparator(t, []corpus.Sample{
		{Text: corpus.String("see https://example.com/a?b=c now")},
	})

	tokens, err := prep.Tokens(DefaultProcessOptions())
	if err != nil {
		t.Fatal(err)
	}
	want := []string{"see", "now"}
	if !reflect.DeepEqual(tokens[0], want) {
		t.Errorf("tokens[0] = %v, want %v", tokens[0], want)
	}
}

func TestTokensAtBounds(t *testing.T) {
	prep := loadedPreparator(t, []corpus.Sample{
		{Text: corpus.String("only one")},
	})

	if _, err := prep.TokensAt(1, DefaultProcessOptions()); !errors.Is(err, internalerr.ErrIndex) {
		t.Errorf("TokensAt(1) error = %v, want ErrIndex", err)
	}
	if _, err := prep.TokensAt(-1, DefaultProcessOptions()); !errors.Is(err, internalerr.ErrIndex) {
		t.Errorf("TokensAt(-1) error = %v, want ErrIndex", err)
	}

	tokens, err := prep.TokensAt(0, DefaultProcessOptions())
	if err != nil {
		t.Fatal(err)
	}
	want := []string{"only", "one"}
	if !reflect.DeepEqual(tokens, want) {
		t.Errorf("TokensAt(0) = %v, want %v", tokens, want)
	}
}

func TestSentencesBasic(t *testing.T) {
	prep := loadedPreparator(t, []corpus.Sample{
		{Text: corpus.String("Hello world. Foo bar!")},
	})

	sentences, err := prep.Sentences(DefaultProcessOptions())
	if err != nil {
		t.Fatal(err)
	}
	want := [][]string{{"hello world", "foo bar"}}
	if !reflect.DeepEqual(sentences, want) {
		t.Errorf("Sentences() = %v, want %v", sentences, want)
	}
}

func TestSentencesKeepPunctuationAndCase(t *testing.T) {
	prep := loadedPreparator(t, []corpus.Sample{
		{Text: corpus.String("Hello world. Foo bar!")},
	})

	sentences, err := prep.Sentences(ProcessOptions{Lower: false, RemovePunctuation: false})
	if err != nil {
		t.Fatal(err)
	}
	want := [][]string{{"Hello world.", "Foo bar!"}}
	if !reflect.DeepEqual(sentences, want) {
		t.Errorf("Sentences() = %v, want %v", sentences, want)
	}
}

func TestEmptyTextKeepsAlignment(t *testing.T) {
	// A sample whose normalized text is empty must still occupy its
	// slot in both lists
	prep := loadedPreparator(t, []corpus.Sample{
		{Text: corpus.String("   ")},
		{Text: corpus.String("Real content here.")},
	})

	tokens, err := prep.Tokens(DefaultProcessOptions())
	if err != nil {
		t.Fatal(err)
	}
	sentences, err := prep.Sentences(DefaultProcessOptions())
	if err != nil {
		t.Fatal(err)
	}

	if len(tokens) != 2 || len(sentences) != 2 {
		t.Fatalf("got %d token lists and %d sentence lists, want 2 and 2",
			len(tokens), len(sentences))
	}
	if len(tokens[0]) != 0 {
		t.Errorf("tokens[0] = %v, want empty", tokens[0])
	}
	if len(sentences[0]) != 0 {
		t.Errorf("sentences[0] = %v, want empty", sentences[0])
	}
}

func TestDerivationBeforeLoad(t *testing.T) {
	prep := New(Options{})

	if _, err := prep.Tokens(DefaultProcessOptions()); !errors.Is(err, internalerr.ErrNotLoaded) {
		t.Errorf("Tokens() error = %v, want ErrNotLoaded", err)
	}
	if _, err := prep.Sentences(DefaultProcessOptions()); !errors.Is(err, internalerr.ErrNotLoaded) {
		t.Errorf("Sentences() error = %v, want ErrNotLoaded", err)
	}
	if _, err := prep.Texts(); !errors.Is(err, internalerr.ErrNotLoaded) {
		t.Errorf("Texts() error = %v, want ErrNotLoaded", err)
	}
}

func TestTextsNormalized(t *testing.T) {
	prep := loadedPreparator(t, []corpus.Sample{
		{Text: corpus.String("  Mixed CASE  and https://example.com spacing ")},
	})

	texts, err := prep.Texts()
	if err != nil {
		t.Fatal(err)
	}
	want := "mixed case and spacing"
	if texts[0] != want {
		t.Errorf("Texts()[0] = %q, want %q", texts[0], want)
	}
}
