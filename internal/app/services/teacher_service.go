package services

import (
	"context"

	"github.com/oztrk/teacherhub/internal/app/models"
	"github.com/oztrk/teacherhub/internal/app/repositories"
	"github.com/oztrk/teacherhub/internal/pkg/apperrors"
)

// TeacherService defines the interface for teacher-related operations.
type TeacherService interface {
	CreateTeacher(ctx context.Context, payload models.CreateTeacher) (*models.Teacher, error)
	GetAllTeachers(ctx context.Context) ([]models.Teacher, error)
	GetTeacherByID(ctx context.Context, id int64) (*models.Teacher, error)
	UpdateTeacher(ctx context.Context, id int64, payload models.UpdateTeacher) (string, error)
	DeleteTeacher(ctx context.Context, id int64) (string, error)
}

// teacherServiceImpl implements the TeacherService interface.
type teacherServiceImpl struct {
	teacherRepo *repositories.TeacherRepository
}

// NewTeacherService creates a new teacher service instance.
func NewTeacherService(teacherRepo *repositories.TeacherRepository) TeacherService {
	return &teacherServiceImpl{
		teacherRepo: teacherRepo,
	}
}

// validateTeacherID rejects non-positive ids before the store is touched.
func validateTeacherID(id int64) error {
	if id <= 0 {
		return apperrors.NewInvalidInputError("teacher id must be positive")
	}
	return nil
}

// CreateTeacher creates a new teacher. Required-field validation happens
// at the transport boundary; the payload is assumed well-formed here.
func (s *teacherServiceImpl) CreateTeacher(ctx context.Context, payload models.CreateTeacher) (*models.Teacher, error) {
	return s.teacherRepo.Create(ctx, payload)
}

// GetAllTeachers retrieves all teachers. An empty table surfaces as
// NotFound, by design.
func (s *teacherServiceImpl) GetAllTeachers(ctx context.Context) ([]models.Teacher, error) {
	return s.teacherRepo.GetAll(ctx)
}

// GetTeacherByID retrieves a teacher by id.
func (s *teacherServiceImpl) GetTeacherByID(ctx context.Context, id int64) (*models.Teacher, error) {
	if err := validateTeacherID(id); err != nil {
		return nil, err
	}
	return s.teacherRepo.GetByID(ctx, id)
}

// UpdateTeacher applies a partial update and returns a confirmation.
func (s *teacherServiceImpl) UpdateTeacher(ctx context.Context, id int64, payload models.UpdateTeacher) (string, error) {
	if err := validateTeacherID(id); err != nil {
		return "", err
	}
	return s.teacherRepo.Update(ctx, id, payload)
}

// DeleteTeacher removes a teacher and returns a confirmation.
func (s *teacherServiceImpl) DeleteTeacher(ctx context.Context, id int64) (string, error) {
	if err := validateTeacherID(id); err != nil {
		return "", err
	}
	return s.teacherRepo.Delete(ctx, id)
}
