package video

import "context"

// Repository defines the contract for video storage.
type Repository interface {
	List(ctx context.Context) ([]Video, error)
	Create(ctx context.Context, v Video) (int64, error)
	Update(ctx context.Context, v Video) error
	Delete(ctx context.Context, id int64) error
}
