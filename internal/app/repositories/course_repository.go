package repositories

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/oztrk/teacherhub/internal/app/models"
	"github.com/oztrk/teacherhub/internal/pkg/apperrors"
	"github.com/oztrk/teacherhub/internal/pkg/dberrors"
	"github.com/oztrk/teacherhub/internal/pkg/logger"
)

// CourseRepository handles database operations for courses. Courses are
// keyed by the composite (teacher_id, id).
type CourseRepository struct {
	db *pgxpool.Pool
}

// NewCourseRepository creates a new course repository.
func NewCourseRepository(db *pgxpool.Pool) *CourseRepository {
	return &CourseRepository{
		db: db,
	}
}

// Create inserts a new course scoped to its teacher. The teacher_id
// foreign key is enforced by the store, not re-validated here; a
// violation surfaces as a generic database error.
func (r *CourseRepository) Create(ctx context.Context, payload models.CreateCourse) (*models.Course, error) {
	query := `
		INSERT INTO course (teacher_id, name, time, description, format, structure, duration, price, language, level)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING id
	`

	course := models.Course{
		TeacherID:   payload.TeacherID,
		Name:        payload.Name,
		Time:        payload.Time,
		Description: payload.Description,
		Format:      payload.Format,
		Structure:   payload.Structure,
		Duration:    payload.Duration,
		Price:       payload.Price,
		Language:    payload.Language,
		Level:       payload.Level,
	}

	err := r.db.QueryRow(ctx, query,
		payload.TeacherID,
		payload.Name,
		payload.Time,
		payload.Description,
		payload.Format,
		payload.Structure,
		payload.Duration,
		payload.Price,
		payload.Language,
		payload.Level,
	).Scan(&course.ID)
	if err != nil {
		if dberrors.IsForeignKeyViolation(err) {
			logger.Warn().Int64("teacherId", payload.TeacherID).Msg("Course insert references missing teacher")
		} else {
			logger.Error().Err(err).Msg("Failed to insert course")
		}
		return nil, apperrors.NewDBError("unable to create course")
	}

	return &course, nil
}

// GetAllByTeacher retrieves all courses for a teacher. Unlike the teacher
// listing, zero rows here is a successful empty sequence.
func (r *CourseRepository) GetAllByTeacher(ctx context.Context, teacherID int64) ([]models.Course, error) {
	query := `
		SELECT id, teacher_id, name, time, description, format, structure, duration, price, language, level
		FROM course
		WHERE teacher_id = $1
	`

	rows, err := r.db.Query(ctx, query, teacherID)
	if err != nil {
		logger.Error().Err(err).Int64("teacherId", teacherID).Msg("Failed to query courses")
		return nil, apperrors.NewDBError("unable to retrieve courses")
	}
	defer rows.Close()

	courses := []models.Course{}
	for rows.Next() {
		var course models.Course
		if err := scanCourse(rows, &course); err != nil {
			logger.Error().Err(err).Msg("Failed to scan course row")
			return nil, apperrors.NewDBError("unable to retrieve courses")
		}
		courses = append(courses, course)
	}

	if err := rows.Err(); err != nil {
		logger.Error().Err(err).Msg("Failed to read course rows")
		return nil, apperrors.NewDBError("unable to retrieve courses")
	}

	return courses, nil
}

// GetByID retrieves one course by its composite key.
func (r *CourseRepository) GetByID(ctx context.Context, teacherID, courseID int64) (*models.Course, error) {
	query := `
		SELECT id, teacher_id, name, time, description, format, structure, duration, price, language, level
		FROM course
		WHERE teacher_id = $1 AND id = $2
	`

	var course models.Course
	err := scanCourse(r.db.QueryRow(ctx, query, teacherID, courseID), &course)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFoundError("course id not found")
		}
		logger.Error().Err(err).Int64("teacherId", teacherID).Int64("courseId", courseID).Msg("Failed to query course")
		return nil, apperrors.NewDBError("unable to retrieve course")
	}

	return &course, nil
}

// Update applies a partial update to a course. The current row is fetched
// by the full composite key (absent row fails with NotFound before any
// write), effective values fall back from payload to stored value to type
// default for nullable columns, and one statement rewrites every
// updatable column. No null is ever written back. Not transactional;
// concurrent updates to the same row are last-writer-wins.
func (r *CourseRepository) Update(ctx context.Context, teacherID, courseID int64, payload models.UpdateCourse) (string, error) {
	current, err := r.GetByID(ctx, teacherID, courseID)
	if err != nil {
		return "", err
	}

	values := mergeCourse(*current, payload)

	query := `
		UPDATE course
		SET name = $1, time = $2, description = $3, format = $4, structure = $5, duration = $6, price = $7, language = $8, level = $9
		WHERE teacher_id = $10 AND id = $11
	`

	tag, err := r.db.Exec(ctx, query,
		values.Name,
		values.Time,
		values.Description,
		values.Format,
		values.Structure,
		values.Duration,
		values.Price,
		values.Language,
		values.Level,
		teacherID,
		courseID,
	)
	if err != nil {
		logger.Error().Err(err).Int64("teacherId", teacherID).Int64("courseId", courseID).Msg("Failed to update course")
		return "", apperrors.NewDBError("unable to update course")
	}

	return fmt.Sprintf("updated %d record", tag.RowsAffected()), nil
}

// Delete removes a course by its composite key. A zero affected-row count
// is promoted to NotFound.
func (r *CourseRepository) Delete(ctx context.Context, teacherID, courseID int64) (string, error) {
	query := `DELETE FROM course WHERE teacher_id = $1 AND id = $2`

	tag, err := r.db.Exec(ctx, query, teacherID, courseID)
	if err != nil {
		logger.Error().Err(err).Int64("teacherId", teacherID).Int64("courseId", courseID).Msg("Failed to delete course")
		return "", apperrors.NewDBError("unable to delete course")
	}

	if tag.RowsAffected() == 0 {
		return "", apperrors.NewNotFoundError("course id not found")
	}

	return fmt.Sprintf("deleted %d record", tag.RowsAffected()), nil
}

// scanCourse scans a full course row in column order.
func scanCourse(row pgx.Row, course *models.Course) error {
	return row.Scan(
		&course.ID,
		&course.TeacherID,
		&course.Name,
		&course.Time,
		&course.Description,
		&course.Format,
		&course.Structure,
		&course.Duration,
		&course.Price,
		&course.Language,
		&course.Level,
	)
}

// courseValues holds the effective values written back by Update. Every
// field is concrete: nullable columns that are absent from both the
// payload and the stored row collapse to their type default.
type courseValues struct {
	Name        string
	Time        time.Time
	Description string
	Format      string
	Structure   string
	Duration    string
	Price       int
	Language    string
	Level       string
}

// mergeCourse computes the effective values for a partial update: the
// payload field if present, else the stored value, else the type default
// for nullable columns (empty string, zero, zero time).
func mergeCourse(current models.Course, patch models.UpdateCourse) courseValues {
	values := courseValues{
		Name:        current.Name,
		Time:        timeOrZero(current.Time),
		Description: stringOrEmpty(current.Description),
		Format:      stringOrEmpty(current.Format),
		Structure:   stringOrEmpty(current.Structure),
		Duration:    stringOrEmpty(current.Duration),
		Price:       intOrZero(current.Price),
		Language:    stringOrEmpty(current.Language),
		Level:       stringOrEmpty(current.Level),
	}

	if patch.Name != nil {
		values.Name = *patch.Name
	}
	if patch.Time != nil {
		values.Time = *patch.Time
	}
	if patch.Description != nil {
		values.Description = *patch.Description
	}
	if patch.Format != nil {
		values.Format = *patch.Format
	}
	if patch.Structure != nil {
		values.Structure = *patch.Structure
	}
	if patch.Duration != nil {
		values.Duration = *patch.Duration
	}
	if patch.Price != nil {
		values.Price = *patch.Price
	}
	if patch.Language != nil {
		values.Language = *patch.Language
	}
	if patch.Level != nil {
		values.Level = *patch.Level
	}

	return values
}

func stringOrEmpty(s *string) string {
	if s != nil {
		return *s
	}
	return ""
}

func intOrZero(n *int) int {
	if n != nil {
		return *n
	}
	return 0
}

func timeOrZero(t *time.Time) time.Time {
	if t != nil {
		return *t
	}
	return time.Time{}
}
