package book

import (
	"context"
)

// PDFAttachment is a reference into the asset store.
type PDFAttachment struct {
	URL      string
	PublicID string
}

// UpdateFields describes a partial update as seen by the repository. Nil
// pointer fields are left untouched. SetPDF and ClearPDF are mutually
// exclusive; both unset means the PDF columns stay as they are. A nil
// CategoryIDs leaves associations alone, a non-nil slice (empty included)
// replaces them wholesale.
type UpdateFields struct {
	Title       *string
	Author      *string
	BookNumber  *string
	SetPDF      *PDFAttachment
	ClearPDF    bool
	CategoryIDs []int64
}

// CreateInput holds the fields for a new book row.
type CreateInput struct {
	Title       string
	Author      *string
	BookNumber  *string
	PDF         *PDFAttachment
	CategoryIDs []int64
}

// Repository defines the contract for book storage. Every method that
// touches more than one table runs inside a single transaction.
type Repository interface {
	List(ctx context.Context, q Query) ([]Book, int, error)
	Create(ctx context.Context, in CreateInput) (int64, error)
	Update(ctx context.Context, id int64, fields UpdateFields) error
	FindPublicID(ctx context.Context, id int64) (string, error)
	Delete(ctx context.Context, id int64) error
}

// AssetStore is the boundary to the external binary-object store. Deleting
// an asset is not transactional with the database.
type AssetStore interface {
	Destroy(ctx context.Context, publicID string) error
}
