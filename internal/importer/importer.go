package importer

// Record is one book-like row from a bulk import payload or an Excel sheet.
// Books are identified by BookNumber: an existing book with the same number
// is updated in place, anything else becomes a new row.
type Record struct {
	Title        string `json:"title"`
	Author       string `json:"author"`
	BookNumber   string `json:"bookNumber"`
	CategoryName string `json:"categoryName"`
}

// SkippedRow names a rejected record and why it was rejected.
type SkippedRow struct {
	Index  int    `json:"index"`
	Reason string `json:"reason"`
}

// Report summarizes one import batch.
type Report struct {
	Processed   int          `json:"processed"`
	Skipped     int          `json:"skipped"`
	Total       int          `json:"total"`
	SkippedRows []SkippedRow `json:"skippedRows,omitempty"`
}
