package services

import (
	"context"

	"github.com/oztrk/teacherhub/internal/app/models"
	"github.com/oztrk/teacherhub/internal/app/repositories"
	"github.com/oztrk/teacherhub/internal/pkg/apperrors"
)

// CourseService defines the interface for course-related operations.
// Courses are addressed by the composite (teacher_id, id).
type CourseService interface {
	CreateCourse(ctx context.Context, payload models.CreateCourse) (*models.Course, error)
	GetCoursesForTeacher(ctx context.Context, teacherID int64) ([]models.Course, error)
	GetCourseByID(ctx context.Context, teacherID, courseID int64) (*models.Course, error)
	UpdateCourse(ctx context.Context, teacherID, courseID int64, payload models.UpdateCourse) (string, error)
	DeleteCourse(ctx context.Context, teacherID, courseID int64) (string, error)
}

// courseServiceImpl implements the CourseService interface.
type courseServiceImpl struct {
	courseRepo *repositories.CourseRepository
}

// NewCourseService creates a new course service instance.
func NewCourseService(courseRepo *repositories.CourseRepository) CourseService {
	return &courseServiceImpl{
		courseRepo: courseRepo,
	}
}

func validateCourseKey(teacherID, courseID int64) error {
	if teacherID <= 0 {
		return apperrors.NewInvalidInputError("teacher id must be positive")
	}
	if courseID <= 0 {
		return apperrors.NewInvalidInputError("course id must be positive")
	}
	return nil
}

// CreateCourse creates a new course under its teacher. Whether the
// teacher exists is left to the store's foreign key.
func (s *courseServiceImpl) CreateCourse(ctx context.Context, payload models.CreateCourse) (*models.Course, error) {
	if payload.TeacherID <= 0 {
		return nil, apperrors.NewInvalidInputError("teacher id must be positive")
	}
	return s.courseRepo.Create(ctx, payload)
}

// GetCoursesForTeacher lists the teacher's courses; zero courses is a
// successful empty sequence.
func (s *courseServiceImpl) GetCoursesForTeacher(ctx context.Context, teacherID int64) ([]models.Course, error) {
	if teacherID <= 0 {
		return nil, apperrors.NewInvalidInputError("teacher id must be positive")
	}
	return s.courseRepo.GetAllByTeacher(ctx, teacherID)
}

// GetCourseByID retrieves one course.
func (s *courseServiceImpl) GetCourseByID(ctx context.Context, teacherID, courseID int64) (*models.Course, error) {
	if err := validateCourseKey(teacherID, courseID); err != nil {
		return nil, err
	}
	return s.courseRepo.GetByID(ctx, teacherID, courseID)
}

// UpdateCourse applies a partial update and returns a confirmation.
func (s *courseServiceImpl) UpdateCourse(ctx context.Context, teacherID, courseID int64, payload models.UpdateCourse) (string, error) {
	if err := validateCourseKey(teacherID, courseID); err != nil {
		return "", err
	}
	return s.courseRepo.Update(ctx, teacherID, courseID, payload)
}

// DeleteCourse removes one course and returns a confirmation.
func (s *courseServiceImpl) DeleteCourse(ctx context.Context, teacherID, courseID int64) (string, error) {
	if err := validateCourseKey(teacherID, courseID); err != nil {
		return "", err
	}
	return s.courseRepo.Delete(ctx, teacherID, courseID)
}
