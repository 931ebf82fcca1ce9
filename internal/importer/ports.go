package importer

import "context"

// Batch executes record upserts inside one surrounding transaction. An
// Upsert failure must leave the transaction usable so the batch can
// continue with the next record.
type Batch interface {
	Upsert(ctx context.Context, rec Record) error
}

// Store opens one write transaction per batch: fn's error rolls everything
// back, a clean return commits.
type Store interface {
	ImportBatch(ctx context.Context, fn func(Batch) error) error
}
