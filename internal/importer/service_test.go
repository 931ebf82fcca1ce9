package importer

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubBatch struct {
	upserted []Record
	failOn   map[string]error
}

func (b *stubBatch) Upsert(ctx context.Context, rec Record) error {
	if err := b.failOn[rec.BookNumber]; err != nil {
		return err
	}
	b.upserted = append(b.upserted, rec)
	return nil
}

type stubStore struct {
	batch    *stubBatch
	batchErr error
	opened   int
}

func (s *stubStore) ImportBatch(ctx context.Context, fn func(Batch) error) error {
	if s.batchErr != nil {
		return s.batchErr
	}
	s.opened++
	return fn(s.batch)
}

func TestService_Import(t *testing.T) {
	t.Run("skips invalid records, keeps the rest", func(t *testing.T) {
		store := &stubStore{batch: &stubBatch{}}
		svc := NewService(store)

		report, err := svc.Import(context.Background(), []Record{
			{Title: "Book A", BookNumber: "B001"},
			{Title: "", BookNumber: "B002"},
			{Title: "Book C", BookNumber: ""},
			{Title: "Book D", BookNumber: "B004", Author: "  Someone  "},
		})
		require.NoError(t, err)

		assert.Equal(t, 2, report.Processed)
		assert.Equal(t, 2, report.Skipped)
		assert.Equal(t, 4, report.Total)
		require.Len(t, report.SkippedRows, 2)
		assert.Equal(t, SkippedRow{Index: 1, Reason: "missing title"}, report.SkippedRows[0])
		assert.Equal(t, SkippedRow{Index: 2, Reason: "missing bookNumber"}, report.SkippedRows[1])

		require.Len(t, store.batch.upserted, 2)
		assert.Equal(t, "Someone", store.batch.upserted[1].Author, "fields are trimmed before upsert")
	})

	t.Run("upsert failure skips the record only", func(t *testing.T) {
		store := &stubStore{batch: &stubBatch{
			failOn: map[string]error{"B002": errors.New("boom")},
		}}
		svc := NewService(store)

		report, err := svc.Import(context.Background(), []Record{
			{Title: "A", BookNumber: "B001"},
			{Title: "B", BookNumber: "B002"},
			{Title: "C", BookNumber: "B003"},
		})
		require.NoError(t, err)

		assert.Equal(t, 2, report.Processed)
		assert.Equal(t, 1, report.Skipped)
		require.Len(t, report.SkippedRows, 1)
		assert.Equal(t, 1, report.SkippedRows[0].Index)
		assert.Contains(t, report.SkippedRows[0].Reason, "store error")
	})

	t.Run("single batch per call", func(t *testing.T) {
		store := &stubStore{batch: &stubBatch{}}
		svc := NewService(store)

		_, err := svc.Import(context.Background(), []Record{
			{Title: "A", BookNumber: "1"},
			{Title: "B", BookNumber: "2"},
		})
		require.NoError(t, err)
		assert.Equal(t, 1, store.opened)
	})

	t.Run("batch failure discards the report", func(t *testing.T) {
		store := &stubStore{batchErr: errors.New("begin tx: connection refused")}
		svc := NewService(store)

		report, err := svc.Import(context.Background(), []Record{{Title: "A", BookNumber: "1"}})
		require.Error(t, err)
		assert.Zero(t, report.Total)
	})
}
