package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/oztrk/teacherhub/internal/app/models"
	"github.com/oztrk/teacherhub/internal/pkg/apperrors"
	"github.com/oztrk/teacherhub/internal/pkg/logger"
)

// TeacherRepository handles database operations for teachers.
type TeacherRepository struct {
	db *pgxpool.Pool
}

// NewTeacherRepository creates a new teacher repository.
func NewTeacherRepository(db *pgxpool.Pool) *TeacherRepository {
	return &TeacherRepository{
		db: db,
	}
}

// Create inserts a new teacher. The store assigns the id, which is
// scanned back into the returned row.
func (r *TeacherRepository) Create(ctx context.Context, payload models.CreateTeacher) (*models.Teacher, error) {
	query := `
		INSERT INTO teacher (name, picture_url, profile)
		VALUES ($1, $2, $3)
		RETURNING id
	`

	teacher := models.Teacher{
		Name:       payload.Name,
		PictureURL: payload.PictureURL,
		Profile:    payload.Profile,
	}

	err := r.db.QueryRow(ctx, query, payload.Name, payload.PictureURL, payload.Profile).Scan(&teacher.ID)
	if err != nil {
		logger.Error().Err(err).Msg("Failed to insert teacher")
		return nil, apperrors.NewDBError("unable to create teacher")
	}

	return &teacher, nil
}

// GetAll retrieves all teachers. An empty table is reported as NotFound
// rather than an empty sequence; callers distinguish "nothing exists yet"
// by the error kind, not by checking length.
func (r *TeacherRepository) GetAll(ctx context.Context) ([]models.Teacher, error) {
	query := `
		SELECT id, name, picture_url, profile
		FROM teacher
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		logger.Error().Err(err).Msg("Failed to query teachers")
		return nil, apperrors.NewDBError("unable to retrieve teachers")
	}
	defer rows.Close()

	var teachers []models.Teacher
	for rows.Next() {
		var teacher models.Teacher
		if err := rows.Scan(
			&teacher.ID,
			&teacher.Name,
			&teacher.PictureURL,
			&teacher.Profile,
		); err != nil {
			logger.Error().Err(err).Msg("Failed to scan teacher row")
			return nil, apperrors.NewDBError("unable to retrieve teachers")
		}
		teachers = append(teachers, teacher)
	}

	if err := rows.Err(); err != nil {
		logger.Error().Err(err).Msg("Failed to read teacher rows")
		return nil, apperrors.NewDBError("unable to retrieve teachers")
	}

	if len(teachers) == 0 {
		return nil, apperrors.NewNotFoundError("no teachers found")
	}

	return teachers, nil
}

// GetByID retrieves a teacher by id.
func (r *TeacherRepository) GetByID(ctx context.Context, id int64) (*models.Teacher, error) {
	query := `
		SELECT id, name, picture_url, profile
		FROM teacher
		WHERE id = $1
	`

	var teacher models.Teacher
	err := r.db.QueryRow(ctx, query, id).Scan(
		&teacher.ID,
		&teacher.Name,
		&teacher.PictureURL,
		&teacher.Profile,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFoundError("teacher id not found")
		}
		logger.Error().Err(err).Int64("teacherId", id).Msg("Failed to query teacher")
		return nil, apperrors.NewDBError("unable to retrieve teacher")
	}

	return &teacher, nil
}

// Update applies a partial update: the current row is fetched first
// (absent row fails with NotFound before any write), effective values are
// computed per field, and a single statement rewrites every updatable
// column. The fetch-then-write window is not transactional; concurrent
// updates to the same row are last-writer-wins.
func (r *TeacherRepository) Update(ctx context.Context, id int64, payload models.UpdateTeacher) (string, error) {
	current, err := r.GetByID(ctx, id)
	if err != nil {
		return "", err
	}

	teacher := mergeTeacher(*current, payload)

	query := `
		UPDATE teacher
		SET name = $1, picture_url = $2, profile = $3
		WHERE id = $4
	`

	tag, err := r.db.Exec(ctx, query, teacher.Name, teacher.PictureURL, teacher.Profile, id)
	if err != nil {
		logger.Error().Err(err).Int64("teacherId", id).Msg("Failed to update teacher")
		return "", apperrors.NewDBError("unable to update teacher")
	}

	return fmt.Sprintf("updated %d record", tag.RowsAffected()), nil
}

// Delete removes a teacher by id. A zero affected-row count is promoted
// to NotFound so deleting a missing id is distinguishable from success.
func (r *TeacherRepository) Delete(ctx context.Context, id int64) (string, error) {
	query := `DELETE FROM teacher WHERE id = $1`

	tag, err := r.db.Exec(ctx, query, id)
	if err != nil {
		logger.Error().Err(err).Int64("teacherId", id).Msg("Failed to delete teacher")
		return "", apperrors.NewDBError("unable to delete teacher")
	}

	if tag.RowsAffected() == 0 {
		return "", apperrors.NewNotFoundError("teacher id not found")
	}

	return fmt.Sprintf("deleted %d record", tag.RowsAffected()), nil
}

// mergeTeacher computes the effective row for a partial update: a present
// payload field replaces the stored value, an absent one keeps it.
func mergeTeacher(current models.Teacher, patch models.UpdateTeacher) models.Teacher {
	merged := current

	if patch.Name != nil {
		merged.Name = *patch.Name
	}
	if patch.PictureURL != nil {
		merged.PictureURL = *patch.PictureURL
	}
	if patch.Profile != nil {
		merged.Profile = *patch.Profile
	}

	return merged
}
