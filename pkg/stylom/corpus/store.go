package corpus

import "context"

// Store provides access to a persisted collection of raw samples.
// Implementations must preserve insertion order: Samples returns rows in
// the order they were put, since row position is the sample identity.
type Store interface {
	Close() error

	// PutSample appends one raw sample.
	PutSample(ctx context.Context, s Sample) error

	// Samples returns all stored samples as a table with text and author
	// columns, in insertion order.
	Samples(ctx context.Context) (*Table, error)

	// Count returns the number of stored samples.
	Count(ctx context.Context) (int64, error)
}
