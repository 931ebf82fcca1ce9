package importer

import (
	"context"
	"log"
	"strings"
)

// Service runs bulk imports: one transaction per batch, skip-on-error per
// record. Records missing a title or book number are counted as skipped and
// never reach the store.
type Service struct {
	store Store
}

func NewService(store Store) *Service {
	return &Service{store: store}
}

func (s *Service) Import(ctx context.Context, records []Record) (Report, error) {
	report := Report{Total: len(records)}

	err := s.store.ImportBatch(ctx, func(b Batch) error {
		for i, rec := range records {
			rec.Title = strings.TrimSpace(rec.Title)
			rec.Author = strings.TrimSpace(rec.Author)
			rec.BookNumber = strings.TrimSpace(rec.BookNumber)
			rec.CategoryName = strings.TrimSpace(rec.CategoryName)

			var reason string
			switch {
			case rec.Title == "":
				reason = "missing title"
			case rec.BookNumber == "":
				reason = "missing bookNumber"
			}
			if reason == "" {
				if err := b.Upsert(ctx, rec); err != nil {
					log.Printf("bulk import: record %d failed: %v", i, err)
					reason = "store error: " + err.Error()
				}
			}

			if reason != "" {
				report.Skipped++
				report.SkippedRows = append(report.SkippedRows, SkippedRow{Index: i, Reason: reason})
				continue
			}
			report.Processed++
		}
		return nil
	})
	if err != nil {
		return Report{}, err
	}
	return report, nil
}
