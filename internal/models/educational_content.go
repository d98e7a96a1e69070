package models

import "time"

// Educational content types.
const (
	ContentTypeGuide = "guide"
	ContentTypeVideo = "video"
	ContentTypeQuiz  = "quiz"
)

// EducationalContent is a public awareness item (guide, video or quiz).
// UpdatedAt is refreshed on every successful update regardless of which
// fields changed.
type EducationalContent struct {
	ID          int64     `db:"id" json:"id"`
	Title       string    `db:"title" json:"title"`
	Description string    `db:"description" json:"description"`
	Type        string    `db:"type" json:"type"`
	Content     string    `db:"content" json:"content"`
	ImageURL    *string   `db:"image_url" json:"imageUrl"`
	Views       int       `db:"views" json:"views"`
	CreatedAt   time.Time `db:"created_at" json:"createdAt"`
	UpdatedAt   time.Time `db:"updated_at" json:"updatedAt"`
}

// EducationalContentPatch carries fields of a partial update.
type EducationalContentPatch struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	Type        *string `json:"type"`
	Content     *string `json:"content"`
	ImageURL    *string `json:"imageUrl"`
	Views       *int    `json:"views"`
}
