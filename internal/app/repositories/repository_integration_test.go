package repositories

import (
	"context"
	"errors"
	"os"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oztrk/teacherhub/internal/app/models"
	"github.com/oztrk/teacherhub/internal/pkg/apperrors"
)

const testSchema = `
CREATE TABLE IF NOT EXISTS teacher (
	id SERIAL PRIMARY KEY,
	name VARCHAR(100) NOT NULL,
	picture_url VARCHAR(255) NOT NULL,
	profile VARCHAR(255) NOT NULL
);
CREATE TABLE IF NOT EXISTS course (
	id SERIAL PRIMARY KEY,
	teacher_id INTEGER NOT NULL REFERENCES teacher(id),
	name VARCHAR(140) NOT NULL,
	time TIMESTAMP,
	description VARCHAR(2000),
	format VARCHAR(30),
	structure VARCHAR(200),
	duration VARCHAR(30),
	price INTEGER,
	language VARCHAR(30),
	level VARCHAR(30)
);
`

// setupTestDB connects to the database named by
// TEACHERHUB_TEST_DATABASE_URL, applies the schema, and truncates both
// tables. Tests are skipped when the variable is unset.
func setupTestDB(t *testing.T) (*pgxpool.Pool, func()) {
	t.Helper()

	url := os.Getenv("TEACHERHUB_TEST_DATABASE_URL")
	if url == "" {
		t.Skip("TEACHERHUB_TEST_DATABASE_URL not set, skipping repository integration tests")
	}

	ctx := context.Background()
	pool, err := pgxpool.New(ctx, url)
	require.NoError(t, err)

	_, err = pool.Exec(ctx, testSchema)
	require.NoError(t, err)

	_, err = pool.Exec(ctx, `TRUNCATE course, teacher RESTART IDENTITY CASCADE`)
	require.NoError(t, err)

	cleanup := func() {
		pool.Close()
	}
	return pool, cleanup
}

func createTestTeacher(t *testing.T, repo *TeacherRepository) *models.Teacher {
	t.Helper()
	teacher, err := repo.Create(context.Background(), models.CreateTeacher{
		Name:       "A New Teacher",
		PictureURL: "https://example/img.jpg",
		Profile:    "profile text",
	})
	require.NoError(t, err)
	return teacher
}

func TestTeacherRepository_CreateThenGetRoundTrip(t *testing.T) {
	pool, cleanup := setupTestDB(t)
	defer cleanup()
	repo := NewTeacherRepository(pool)

	created := createTestTeacher(t, repo)
	require.NotZero(t, created.ID)

	got, err := repo.GetByID(context.Background(), created.ID)
	require.NoError(t, err)
	assert.Equal(t, "A New Teacher", got.Name)
	assert.Equal(t, "https://example/img.jpg", got.PictureURL)
	assert.Equal(t, "profile text", got.Profile)
}

func TestTeacherRepository_GetAllEmptyTableIsNotFound(t *testing.T) {
	pool, cleanup := setupTestDB(t)
	defer cleanup()
	repo := NewTeacherRepository(pool)

	_, err := repo.GetAll(context.Background())
	require.Error(t, err)
	assert.True(t, errors.Is(err, apperrors.ErrNotFound))
}

func TestTeacherRepository_GetByIDMissingIsNotFound(t *testing.T) {
	pool, cleanup := setupTestDB(t)
	defer cleanup()
	repo := NewTeacherRepository(pool)

	_, err := repo.GetByID(context.Background(), 9999)
	require.Error(t, err)
	assert.True(t, errors.Is(err, apperrors.ErrNotFound))
	assert.False(t, errors.Is(err, apperrors.ErrDBError))
}

func TestTeacherRepository_UpdateAllAbsentIsNoOp(t *testing.T) {
	pool, cleanup := setupTestDB(t)
	defer cleanup()
	repo := NewTeacherRepository(pool)

	created := createTestTeacher(t, repo)

	msg, err := repo.Update(context.Background(), created.ID, models.UpdateTeacher{})
	require.NoError(t, err)
	assert.NotEmpty(t, msg)

	got, err := repo.GetByID(context.Background(), created.ID)
	require.NoError(t, err)
	assert.Equal(t, created, got)
}

func TestTeacherRepository_UpdateMissingIsNotFoundBeforeWrite(t *testing.T) {
	pool, cleanup := setupTestDB(t)
	defer cleanup()
	repo := NewTeacherRepository(pool)

	name := "Ghost"
	_, err := repo.Update(context.Background(), 9999, models.UpdateTeacher{Name: &name})
	require.Error(t, err)
	assert.True(t, errors.Is(err, apperrors.ErrNotFound))
}

func TestTeacherRepository_DeleteMissingIsNotFound(t *testing.T) {
	pool, cleanup := setupTestDB(t)
	defer cleanup()
	repo := NewTeacherRepository(pool)

	_, err := repo.Delete(context.Background(), 9999)
	require.Error(t, err)
	assert.True(t, errors.Is(err, apperrors.ErrNotFound))
}

func TestCourseRepository_Scenario(t *testing.T) {
	pool, cleanup := setupTestDB(t)
	defer cleanup()
	teacherRepo := NewTeacherRepository(pool)
	courseRepo := NewCourseRepository(pool)
	ctx := context.Background()

	teacher := createTestTeacher(t, teacherRepo)

	courseTime := time.Date(2025, 7, 12, 10, 15, 0, 0, time.UTC)
	created, err := courseRepo.Create(ctx, models.CreateCourse{
		TeacherID: teacher.ID,
		Name:      "Test course",
		Time:      &courseTime,
		Language:  strPtr("English"),
		Level:     strPtr("Beginner"),
	})
	require.NoError(t, err)
	require.NotZero(t, created.ID)

	// Read-back equals the submitted payload, nullable omissions stay null.
	got, err := courseRepo.GetByID(ctx, teacher.ID, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Test course", got.Name)
	require.NotNil(t, got.Time)
	assert.True(t, courseTime.Equal(*got.Time))
	require.NotNil(t, got.Language)
	assert.Equal(t, "English", *got.Language)
	require.NotNil(t, got.Level)
	assert.Equal(t, "Beginner", *got.Level)
	assert.Nil(t, got.Description)
	assert.Nil(t, got.Format)
	assert.Nil(t, got.Structure)
	assert.Nil(t, got.Duration)
	assert.Nil(t, got.Price)

	// Partial update changes only the named fields.
	_, err = courseRepo.Update(ctx, teacher.ID, created.ID, models.UpdateCourse{
		Name:     strPtr("Course name changed"),
		Language: strPtr("Chinese"),
	})
	require.NoError(t, err)

	got, err = courseRepo.GetByID(ctx, teacher.ID, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Course name changed", got.Name)
	require.NotNil(t, got.Language)
	assert.Equal(t, "Chinese", *got.Language)
	require.NotNil(t, got.Time)
	assert.True(t, courseTime.Equal(*got.Time))
	require.NotNil(t, got.Level)
	assert.Equal(t, "Beginner", *got.Level)

	// Delete then get fails with NotFound.
	_, err = courseRepo.Delete(ctx, teacher.ID, created.ID)
	require.NoError(t, err)

	_, err = courseRepo.GetByID(ctx, teacher.ID, created.ID)
	require.Error(t, err)
	assert.True(t, errors.Is(err, apperrors.ErrNotFound))
}

func TestCourseRepository_ListEmptyIsEmptySequence(t *testing.T) {
	pool, cleanup := setupTestDB(t)
	defer cleanup()
	teacherRepo := NewTeacherRepository(pool)
	courseRepo := NewCourseRepository(pool)

	teacher := createTestTeacher(t, teacherRepo)

	// A teacher with zero courses lists successfully, unlike the teacher
	// listing which reports NotFound on an empty table.
	courses, err := courseRepo.GetAllByTeacher(context.Background(), teacher.ID)
	require.NoError(t, err)
	assert.NotNil(t, courses)
	assert.Empty(t, courses)
}

func TestCourseRepository_DeleteMissingIsNotFound(t *testing.T) {
	pool, cleanup := setupTestDB(t)
	defer cleanup()
	teacherRepo := NewTeacherRepository(pool)
	courseRepo := NewCourseRepository(pool)

	teacher := createTestTeacher(t, teacherRepo)

	_, err := courseRepo.Delete(context.Background(), teacher.ID, 9999)
	require.Error(t, err)
	assert.True(t, errors.Is(err, apperrors.ErrNotFound))
}

func TestCourseRepository_CreateWithMissingTeacherIsDBError(t *testing.T) {
	pool, cleanup := setupTestDB(t)
	defer cleanup()
	courseRepo := NewCourseRepository(pool)

	// FK violations are not a dedicated kind; they surface as the generic
	// store error.
	_, err := courseRepo.Create(context.Background(), models.CreateCourse{
		TeacherID: 9999,
		Name:      "Orphan course",
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, apperrors.ErrDBError))
}
