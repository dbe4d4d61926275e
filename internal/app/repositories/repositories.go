package repositories

import (
	"github.com/jackc/pgx/v5/pgxpool"
)

// Repositories holds all the repository instances.
type Repositories struct {
	TeacherRepository *TeacherRepository
	CourseRepository  *CourseRepository
}

// NewRepositories initializes all repositories over the shared pool.
func NewRepositories(db *pgxpool.Pool) *Repositories {
	return &Repositories{
		TeacherRepository: NewTeacherRepository(db),
		CourseRepository:  NewCourseRepository(db),
	}
}
