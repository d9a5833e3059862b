// Package stylom computes fixed-width stylometric feature matrices from
// raw text samples, for use as classifier input in authorship
// attribution. The facade wires the text preparation stage to the
// feature extractor; the leaf packages can also be used directly.
package stylom

import (
	"context"
	"log/slog"

	"github.com/stylom/stylom/pkg/stylom/corpus"
	"github.com/stylom/stylom/pkg/stylom/dict"
	"github.com/stylom/stylom/pkg/stylom/features"
	"github.com/stylom/stylom/pkg/stylom/prepare"
	"github.com/stylom/stylom/pkg/stylom/segment"
	"github.com/stylom/stylom/pkg/stylom/tag"
)

// Engine is the main facade: it prepares raw tabular samples and
// extracts their feature matrix in one call.
type Engine struct {
	extractor *features.Extractor
	prepOpts  prepare.Options
}

// Options configures an Engine. Zero values select single-threaded
// execution, silent logging and the built-in capabilities.
type Options struct {
	Workers    int
	Logger     *slog.Logger
	Tokenizer  segment.Tokenizer
	Segmenter  segment.SentenceSegmenter
	Tagger     tag.Tagger
	Dictionary dict.Dictionary
}

// New creates an Engine with the given dependencies.
func New(opts Options) *Engine {
	return &Engine{
		extractor: features.NewExtractor(features.Options{
			Workers:    opts.Workers,
			Logger:     opts.Logger,
			Tokenizer:  opts.Tokenizer,
			Segmenter:  opts.Segmenter,
			Tagger:     opts.Tagger,
			Dictionary: opts.Dictionary,
		}),
		prepOpts: prepare.Options{
			Tokenizer: opts.Tokenizer,
			Segmenter: opts.Segmenter,
		},
	}
}

// Result pairs the feature matrix with the author labels retained from
// the input, aligned row for row. Authors is nil when the input had no
// author column.
type Result struct {
	Matrix  *features.Matrix
	Authors []string
}

// ExtractTable validates, prepares and transforms an in-memory table.
// Rows with a null text cell are dropped during preparation; every
// retained sample produces exactly one matrix row, in input order.
func (e *Engine) ExtractTable(ctx context.Context, table *corpus.Table) (*Result, error) {
	prep := prepare.New(e.prepOpts)
	if err := prep.Load(table); err != nil {
		return nil, err
	}

	matrix, err := e.extractor.Transform(ctx, features.Unprepared(prep.RawTexts()))
	if err != nil {
		return nil, err
	}

	authors, _ := prep.Authors()
	return &Result{Matrix: matrix, Authors: authors}, nil
}

// ExtractStore reads all samples from a store and extracts their
// feature matrix.
func (e *Engine) ExtractStore(ctx context.Context, store corpus.Store) (*Result, error) {
	table, err := store.Samples(ctx)
	if err != nil {
		return nil, err
	}
	return e.ExtractTable(ctx, table)
}

// Extractor exposes the underlying feature extractor for callers that
// already hold prepared token/sentence lists.
func (e *Engine) Extractor() *features.Extractor {
	return e.extractor
}
