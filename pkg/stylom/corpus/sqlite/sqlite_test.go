package sqlite

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stylom/stylom/pkg/stylom/corpus"
)

func openTestStore(t *testing.T) corpus.Store {
	t.Helper()
	store, err := Open(context.Background(), filepath.Join(t.TempDir(), "corpus.db"))
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestPutAndCount(t *testing.T) {
	store := openTestStore(t)
	ctx := context.Background()

	for _, text := range []string{"first", "second", "third"} {
		if err := store.PutSample(ctx, corpus.Sample{Text: corpus.String(text)}); err != nil {
			t.Fatalf("PutSample: %v", err)
		}
	}

	n, err := store.Count(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if n != 3 {
		t.Errorf("Count() = %d, want 3", n)
	}
}

func TestSamplesPreservesInsertionOrder(t *testing.T) {
	store := openTestStore(t)
	ctx := context.Background()

	inputs := []corpus.Sample{
		{Text: corpus.String("alpha"), Author: corpus.String("X")},
		{Text: corpus.String("beta"), Author: corpus.String("Y")},
		{Text: corpus.String("gamma"), Author: corpus.String("X")},
	}
	for _, s := range inputs {
		if err := store.PutSample(ctx, s); err != nil {
			t.Fatal(err)
		}
	}

	table, err := store.Samples(ctx)
	if err != nil {
		t.Fatal(err)
	}
	texts, _ := table.Column(corpus.ColText)
	for i, want := range []string{"alpha", "beta", "gamma"} {
		if texts[i] == nil || *texts[i] != want {
			t.Errorf("texts[%d] = %v, want %q", i, texts[i], want)
		}
	}
}

func TestSamplesRoundTripsNulls(t *testing.T) {
	store := openTestStore(t)
	ctx := context.Background()

	if err := store.PutSample(ctx, corpus.Sample{Text: nil, Author: corpus.String("Z")}); err != nil {
		t.Fatal(err)
	}
	if err := store.PutSample(ctx, corpus.Sample{Text: corpus.String("words"), Author: nil}); err != nil {
		t.Fatal(err)
	}

	table, err := store.Samples(ctx)
	if err != nil {
		t.Fatal(err)
	}
	texts, _ := table.Column(corpus.ColText)
	authors, _ := table.Column(corpus.ColAuthor)
	if texts[0] != nil {
		t.Errorf("texts[0] = %q, want null", *texts[0])
	}
	if authors[1] != nil {
		t.Errorf("authors[1] = %q, want null", *authors[1])
	}
}

func TestEmptyStore(t *testing.T) {
	store := openTestStore(t)
	ctx := context.Background()

	n, err := store.Count(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if n != 0 {
		t.Errorf("Count() = %d, want 0", n)
	}

	table, err := store.Samples(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if table.Rows() != 0 {
		t.Errorf("Rows() = %d, want 0", table.Rows())
	}
}
