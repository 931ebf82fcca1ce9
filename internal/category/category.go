package category

import "errors"

var (
	// ErrNameRequired is returned when a category is created or renamed
	// without a non-blank name.
	ErrNameRequired = errors.New("category name is required")
	// ErrDuplicateName is returned when the unique name constraint trips.
	ErrDuplicateName = errors.New("category name already exists")
)

type Category struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}
