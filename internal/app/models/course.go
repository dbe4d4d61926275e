package models

import "time"

// Course represents a course row, scoped under the teacher that offers it.
// Pointer fields map to nullable columns; a full row read always carries
// every field, with null columns serialized as JSON null.
type Course struct {
	ID          int64      `json:"id" db:"id"`
	TeacherID   int64      `json:"teacher_id" db:"teacher_id"`
	Name        string     `json:"name" db:"name"`
	Time        *time.Time `json:"time" db:"time"`
	Description *string    `json:"description" db:"description"`
	Format      *string    `json:"format" db:"format"`
	Structure   *string    `json:"structure" db:"structure"`
	Duration    *string    `json:"duration" db:"duration"`
	Price       *int       `json:"price" db:"price"`
	Language    *string    `json:"language" db:"language"`
	Level       *string    `json:"level" db:"level"`
}

// CreateCourse is the payload for creating a course. Nullable columns may
// be omitted; teacher_id and name are required by the table.
type CreateCourse struct {
	TeacherID   int64      `json:"teacher_id" binding:"required"`
	Name        string     `json:"name" binding:"required"`
	Time        *time.Time `json:"time"`
	Description *string    `json:"description"`
	Format      *string    `json:"format"`
	Structure   *string    `json:"structure"`
	Duration    *string    `json:"duration"`
	Price       *int       `json:"price"`
	Language    *string    `json:"language"`
	Level       *string    `json:"level"`
}

// UpdateCourse carries a partial update. A nil field means "keep the
// stored value". The key fields (teacher_id, id) come from the path and
// are never updatable.
type UpdateCourse struct {
	Name        *string    `json:"name"`
	Time        *time.Time `json:"time"`
	Description *string    `json:"description"`
	Format      *string    `json:"format"`
	Structure   *string    `json:"structure"`
	Duration    *string    `json:"duration"`
	Price       *int       `json:"price"`
	Language    *string    `json:"language"`
	Level       *string    `json:"level"`
}
