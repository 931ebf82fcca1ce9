package book

import (
	"errors"
	"strings"
)

// ErrNotFound is returned when a book is not found.
var ErrNotFound = errors.New("book not found")

// ErrTitleRequired is returned when a book is created without a title.
var ErrTitleRequired = errors.New("book title is required")

// Book represents a catalog entry. PDFURL and PublicID are set and cleared
// together: PublicID is the asset store's handle for the attached file.
type Book struct {
	ID            int64    `json:"id"`
	Title         string   `json:"title"`
	Author        *string  `json:"author"`
	BookNumber    *string  `json:"bookNumber"`
	PDFURL        *string  `json:"pdfUrl"`
	PublicID      *string  `json:"publicId"`
	CategoryIDs   []int64  `json:"category_ids"`
	CategoryNames []string `json:"category_names"`
}

// Query defines filters and pagination for listing books.
type Query struct {
	Q          string
	CategoryID int64
	Page       int
	Limit      int
}

// searchPattern turns a free-text query into the single LIKE pattern the
// catalog search runs on: tokens joined by %, so every token must appear as
// a substring in the given order. "great gatsby" becomes %great%gatsby%.
func searchPattern(q string) string {
	tokens := strings.Fields(strings.TrimSpace(q))
	return "%" + strings.Join(tokens, "%") + "%"
}
