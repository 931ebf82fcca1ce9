package category

import "context"

// Repository defines the contract for category storage. Deleting a category
// also removes its book associations; the books themselves stay.
type Repository interface {
	List(ctx context.Context) ([]Category, error)
	Create(ctx context.Context, name string) (int64, error)
	Rename(ctx context.Context, id int64, name string) error
	Delete(ctx context.Context, id int64) error
}
