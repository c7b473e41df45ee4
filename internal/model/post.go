package model

// Post is a published article as returned by a post source.
// Date is kept as the ISO-8601 string the source supplied.
type Post struct {
	ID          int64  `json:"id" db:"id"`
	Title       string `json:"title" db:"title" validate:"required"`
	Description string `json:"description" db:"description" validate:"required"`
	Image       string `json:"image" db:"image" validate:"required"`
	Date        string `json:"date" db:"date" validate:"required"`
}
