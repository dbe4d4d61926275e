package models

// Teacher represents a teacher row. The identity is assigned by the store
// on insert and never changes afterwards.
type Teacher struct {
	ID         int64  `json:"id" db:"id"`
	Name       string `json:"name" db:"name"`
	PictureURL string `json:"picture_url" db:"picture_url"`
	Profile    string `json:"profile" db:"profile"`
}

// CreateTeacher is the payload for creating a teacher. Every column of the
// teacher table is required.
type CreateTeacher struct {
	Name       string `json:"name" binding:"required"`
	PictureURL string `json:"picture_url" binding:"required"`
	Profile    string `json:"profile" binding:"required"`
}

// UpdateTeacher carries a partial update. A nil field means "keep the
// stored value"; an all-nil payload is a legal no-op update.
type UpdateTeacher struct {
	Name       *string `json:"name"`
	PictureURL *string `json:"picture_url"`
	Profile    *string `json:"profile"`
}
