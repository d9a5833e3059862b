package features

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strconv"

	"github.com/oklog/ulid/v2"

	"github.com/stylom/stylom/pkg/stylom/dict"
	"github.com/stylom/stylom/pkg/stylom/internalerr"
	"github.com/stylom/stylom/pkg/stylom/parallel"
	"github.com/stylom/stylom/pkg/stylom/prepare"
	"github.com/stylom/stylom/pkg/stylom/segment"
	"github.com/stylom/stylom/pkg/stylom/tag"
)

// Input is the extractor's tagged input variant: either raw texts that
// still need preparation, or texts with pre-derived token/sentence
// lists. In the prepared form, a nil tokens or sentences slice asks the
// extractor to derive the missing part itself, so callers can skip
// redundant preparation work for whatever they already have.
type Input struct {
	texts     []string
	tokens    [][]string
	sentences [][]string
	prepared  bool
}

// Unprepared wraps raw texts; the extractor derives normalized texts,
// tokens and sentences from them.
func Unprepared(texts []string) Input {
	return Input{texts: texts}
}

// Prepared wraps already-normalized texts with optional token and
// sentence lists. Nil parts are derived; non-nil parts are used as-is
// and must be aligned 1:1 with texts. Passing nil for both behaves like
// Unprepared.
func Prepared(texts []string, tokens, sentences [][]string) Input {
	return Input{texts: texts, tokens: tokens, sentences: sentences, prepared: true}
}

// Extractor computes the feature matrix from prepared or raw samples.
// It is stateless across calls: Fit learns nothing and Transform keeps
// no results, so one Extractor may serve concurrent batches.
type Extractor struct {
	workers    int
	logger     *slog.Logger
	tokenizer  segment.Tokenizer
	segmenter  segment.SentenceSegmenter
	tagger     tag.Tagger
	dictionary dict.Dictionary
}

// Options configures an Extractor. Zero values select single-threaded
// execution, silent logging and the built-in capabilities; a nil
// Dictionary counts every token as known.
type Options struct {
	Workers    int
	Logger     *slog.Logger
	Tokenizer  segment.Tokenizer
	Segmenter  segment.SentenceSegmenter
	Tagger     tag.Tagger
	Dictionary dict.Dictionary
}

// NewExtractor creates an Extractor.
func NewExtractor(opts Options) *Extractor {
	if opts.Workers <= 0 {
		opts.Workers = 1
	}
	if opts.Logger == nil {
		opts.Logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	if opts.Tokenizer == nil {
		opts.Tokenizer = segment.NewWordTokenizer()
	}
	if opts.Segmenter == nil {
		opts.Segmenter = segment.NewBoundarySegmenter()
	}
	if opts.Tagger == nil {
		opts.Tagger = tag.NewHeuristicTagger()
	}
	return &Extractor{
		workers:    opts.Workers,
		logger:     opts.Logger,
		tokenizer:  opts.Tokenizer,
		segmenter:  opts.Segmenter,
		tagger:     opts.Tagger,
		dictionary: opts.Dictionary,
	}
}

// Fit is a no-op: the feature functions are deterministic and
// parameter-free. It exists so the extractor slots into fit/transform
// pipelines.
func (e *Extractor) Fit(in Input) *Extractor { return e }

// Transform computes the feature matrix for the input samples. Output
// row i always corresponds to input sample i, independent of worker
// completion order, and the row count equals the sample count. Any
// per-sample failure aborts the whole call; no partial matrix is
// returned.
func (e *Extractor) Transform(ctx context.Context, in Input) (*Matrix, error) {
	runID := ulid.Make().String()
	logger := e.logger.With("run_id", runID)

	texts, tokens, sentences, err := e.resolve(in)
	if err != nil {
		return nil, err
	}
	logger.Info("feature extraction starting",
		"samples", len(texts), "workers", e.workers)

	blocks := map[string][][]float64{}

	blocks[FamilyAvgWords], err = parallel.Map(ctx, e.workers, tokens,
		func(_ context.Context, _ int, toks []string) ([]float64, error) {
			return AvgLength(toks), nil
		})
	if err != nil {
		return nil, err
	}

	blocks[FamilyAvgSentences], err = parallel.Map(ctx, e.workers, sentences,
		func(_ context.Context, _ int, sents []string) ([]float64, error) {
			return AvgLength(sents), nil
		})
	if err != nil {
		return nil, err
	}

	blocks[FamilyPOSDistribution], err = parallel.Map(ctx, e.workers, tokens,
		func(_ context.Context, i int, toks []string) ([]float64, error) {
			vec, err := POSDistribution(toks, e.tagger)
			if err != nil {
				return nil, fmt.Errorf("sample %d: %w", i, err)
			}
			return vec, nil
		})
	if err != nil {
		return nil, err
	}

	blocks[FamilyLexiconSize], err = parallel.Map(ctx, e.workers, tokens,
		func(_ context.Context, _ int, toks []string) ([]float64, error) {
			return LexiconSize(toks), nil
		})
	if err != nil {
		return nil, err
	}

	blocks[FamilyForeignRatio], err = parallel.Map(ctx, e.workers, tokens,
		func(_ context.Context, _ int, toks []string) ([]float64, error) {
			return ForeignRatio(toks, e.dictionary), nil
		})
	if err != nil {
		return nil, err
	}

	blocks[FamilyPunctuationsDistribution], err = parallel.Map(ctx, e.workers, texts,
		func(_ context.Context, _ int, text string) ([]float64, error) {
			return PunctuationsDistribution(text), nil
		})
	if err != nil {
		return nil, err
	}

	matrix, err := assemble(len(texts), blocks)
	if err != nil {
		return nil, err
	}

	logger.Info("feature extraction completed",
		"rows", matrix.Rows(), "columns", len(matrix.columns))
	return matrix, nil
}

// resolve fills the gaps in the input. Both parts missing means the
// texts are unprocessed raw input, so texts themselves are re-derived in
// normalized form too.
func (e *Extractor) resolve(in Input) ([]string, [][]string, [][]string, error) {
	prep := prepare.New(prepare.Options{
		Tokenizer: e.tokenizer,
		Segmenter: e.segmenter,
	})
	prep.LoadTexts(in.texts)
	popts := prepare.DefaultProcessOptions()

	texts, tokens, sentences := in.texts, in.tokens, in.sentences
	var err error

	switch {
	case !in.prepared || (tokens == nil && sentences == nil):
		if texts, err = prep.Texts(); err != nil {
			return nil, nil, nil, err
		}
		if tokens, err = prep.Tokens(popts); err != nil {
			return nil, nil, nil, err
		}
		if sentences, err = prep.Sentences(popts); err != nil {
			return nil, nil, nil, err
		}
	case tokens == nil:
		if tokens, err = prep.Tokens(popts); err != nil {
			return nil, nil, nil, err
		}
	case sentences == nil:
		if sentences, err = prep.Sentences(popts); err != nil {
			return nil, nil, nil, err
		}
	}

	if len(tokens) != len(texts) || len(sentences) != len(texts) {
		return nil, nil, nil, fmt.Errorf(
			"%w: misaligned input: %d texts, %d token lists, %d sentence lists",
			internalerr.ErrSchema, len(texts), len(tokens), len(sentences))
	}
	return texts, tokens, sentences, nil
}

// familyWidth is the fixed column-block width per family.
func familyWidth(family string) int {
	switch family {
	case FamilyPOSDistribution:
		return len(tag.Categories())
	case FamilyPunctuationsDistribution:
		return len(PunctuationMarks)
	default:
		return 1
	}
}

// assemble concatenates the family blocks column-wise, in fixed family
// order, verifying that every vector has its family's fixed width.
func assemble(rows int, blocks map[string][][]float64) (*Matrix, error) {
	var columns []string
	data := make([][]float64, rows)

	for _, family := range familyOrder {
		block := blocks[family]
		if len(block) != rows {
			return nil, fmt.Errorf("family %s produced %d rows, want %d",
				family, len(block), rows)
		}
		width := familyWidth(family)
		for i, vec := range block {
			if len(vec) != width {
				return nil, fmt.Errorf("family %s produced a %d-wide vector at row %d, want %d",
					family, len(vec), i, width)
			}
			data[i] = append(data[i], vec...)
		}
		for k := 1; k <= width; k++ {
			columns = append(columns, family+"_"+strconv.Itoa(k))
		}
	}

	return &Matrix{columns: columns, data: data}, nil
}
