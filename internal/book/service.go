package book

import (
	"context"
	"fmt"
	"log"
	"strings"
)

// UpdateInput is a partial update as sent by the admin UI. The PDF fields
// encode three transitions:
//   - OldPublicID set, PDFURL absent: detach the PDF (asset deleted, columns nulled)
//   - PDFURL and PublicID set: attach or replace (old asset deleted first if
//     OldPublicID is given)
//   - otherwise: PDF columns untouched
type UpdateInput struct {
	Title       *string
	Author      *string
	BookNumber  *string
	PDFURL      *string
	PublicID    *string
	OldPublicID string
	CategoryIDs []int64
}

// Service provides catalog business logic on top of the repository and the
// asset store.
type Service struct {
	repo   Repository
	assets AssetStore
}

func NewService(repo Repository, assets AssetStore) *Service {
	return &Service{repo: repo, assets: assets}
}

// List returns one page of books plus the unpaginated match count.
func (s *Service) List(ctx context.Context, q Query) ([]Book, int, error) {
	if q.Page < 1 {
		q.Page = 1
	}
	if q.Limit <= 0 {
		q.Limit = 12
	}
	return s.repo.List(ctx, q)
}

func (s *Service) Create(ctx context.Context, in CreateInput) (int64, error) {
	if strings.TrimSpace(in.Title) == "" {
		return 0, ErrTitleRequired
	}
	return s.repo.Create(ctx, in)
}

// Update applies a partial update. Asset-store calls happen outside the
// database transaction: a failure after the old asset is gone but before
// commit leaves the stores inconsistent. Known limitation of the design.
func (s *Service) Update(ctx context.Context, id int64, in UpdateInput) error {
	fields := UpdateFields{
		Title:       in.Title,
		Author:      in.Author,
		BookNumber:  in.BookNumber,
		CategoryIDs: in.CategoryIDs,
	}

	switch {
	case in.PDFURL != nil && in.PublicID != nil:
		// Attach or replace. A failed delete of the old asset aborts the
		// update so the row never points at a replaced attachment while the
		// old object lingers unreferenced.
		if in.OldPublicID != "" {
			if err := s.assets.Destroy(ctx, in.OldPublicID); err != nil {
				return fmt.Errorf("delete replaced asset %s: %w", in.OldPublicID, err)
			}
		}
		fields.SetPDF = &PDFAttachment{URL: *in.PDFURL, PublicID: *in.PublicID}
	case in.OldPublicID != "" && in.PDFURL == nil:
		// Detach. Asset deletion is best effort here.
		if err := s.assets.Destroy(ctx, in.OldPublicID); err != nil {
			log.Printf("asset delete failed for %s: %v", in.OldPublicID, err)
		}
		fields.ClearPDF = true
	}

	return s.repo.Update(ctx, id, fields)
}

// Delete removes a book, releasing its attached asset first. An asset-store
// failure is logged but does not block the row delete.
func (s *Service) Delete(ctx context.Context, id int64) error {
	publicID, err := s.repo.FindPublicID(ctx, id)
	if err != nil {
		return err
	}
	if publicID != "" {
		if err := s.assets.Destroy(ctx, publicID); err != nil {
			log.Printf("asset delete failed for %s: %v", publicID, err)
		}
	}
	return s.repo.Delete(ctx, id)
}
