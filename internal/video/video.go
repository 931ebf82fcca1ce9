package video

import "errors"

// ErrNotFound is returned when a video is not found.
var ErrNotFound = errors.New("video not found")

// Video is an e-content entry: a YouTube link shelved under a free-form
// academic year label such as "2024-25".
type Video struct {
	ID           int64  `json:"id"`
	Title        string `json:"title"`
	YouTubeURL   string `json:"youtube_url"`
	AcademicYear string `json:"academic_year"`
}
